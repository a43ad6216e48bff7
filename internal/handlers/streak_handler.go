// internal/handlers/streak_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_lesson_progress/internal/middleware"
	"go_5_lesson_progress/internal/model"
	"go_5_lesson_progress/internal/service"
	"go_5_lesson_progress/internal/webutil"

	"github.com/go-playground/validator/v10"
)

// StreakHandler は連続学習記録のエンドポイント群です。
// いずれもサインイン済みの学習者のみが対象です (ゲストに連続学習記録はない)。
type StreakHandler struct {
	service service.StreakService
	logger  *slog.Logger
}

func NewStreakHandler(s service.StreakService, logger *slog.Logger) *StreakHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StreakHandler{
		service: s,
		logger:  logger,
	}
}

// PostLogin はサインイン時の学習日を記録するためのハンドラ。
// 記録の成否に関わらず 202 を返します (失敗してもログインを妨げない)。
func (h *StreakHandler) PostLogin(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostLogin"))

	userID, err := middleware.RequireUserID(r.Context())
	if err != nil {
		logger.Warn("Guest attempted to record login streak")
		webutil.HandleError(w, err)
		return
	}

	h.service.RecordLogin(r.Context(), userID)

	logger.Info("Login day recorded", slog.String("user_id", userID.String()))
	w.WriteHeader(http.StatusAccepted)
}

// PostActivity は学習アクティビティ完了を記録するためのハンドラ。
// バックエンドが更新後のスナップショットを返した場合はそれを、
// 返さない場合 (バックエンド無効・記録失敗) は 204 を返します。
func (h *StreakHandler) PostActivity(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostActivity"))

	userID, err := middleware.RequireUserID(r.Context())
	if err != nil {
		logger.Warn("Guest attempted to record activity streak")
		webutil.HandleError(w, err)
		return
	}

	var req model.RecordActivityRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()))

			firstErr := validationErrors[0]
			appErr := model.NewAppError(
				"VALIDATION_ERROR",
				firstErr.Translate(webutil.Trans),
				firstErr.Field(),
				model.ErrInvalidInput,
			)
			webutil.HandleError(w, appErr)
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, err)
		}
		return
	}

	streak, err := h.service.RecordActivity(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error recording activity in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	if streak == nil {
		logger.Info("Activity recorded without streak snapshot", slog.String("kind", string(req.Kind)))
		w.WriteHeader(http.StatusNoContent)
		return
	}

	logger.Info("Activity recorded successfully",
		slog.String("kind", string(req.Kind)),
		slog.Int("current_streak", streak.CurrentStreak),
	)
	webutil.RespondWithJSON(w, http.StatusOK, streak)
}

// GetCurrent は現在の連続学習記録を取得するためのハンドラ。
// 記録がない場合 (未記録・バックエンド無効) は 204 を返します。
func (h *StreakHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCurrent"))

	userID, err := middleware.RequireUserID(r.Context())
	if err != nil {
		logger.Warn("Guest attempted to fetch streak")
		webutil.HandleError(w, err)
		return
	}

	streak, err := h.service.CurrentStreak(r.Context(), userID)
	if err != nil {
		logger.Error("Error fetching current streak in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	if streak == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	logger.Info("Current streak fetched successfully", slog.Int("current_streak", streak.CurrentStreak))
	webutil.RespondWithJSON(w, http.StatusOK, streak)
}
