// internal/handlers/mastery_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_lesson_progress/internal/middleware"
	"go_5_lesson_progress/internal/model"
	"go_5_lesson_progress/internal/service"
	"go_5_lesson_progress/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type MasteryHandler struct {
	service service.MasteryService
	logger  *slog.Logger
}

func NewMasteryHandler(s service.MasteryService, logger *slog.Logger) *MasteryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MasteryHandler{
		service: s,
		logger:  logger,
	}
}

// PutMastery は語彙の習得状態を設定するためのハンドラ。
// サインイン済みはバックエンド、ゲストは端末ストアに保存されます。
func (h *MasteryHandler) PutMastery(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutMastery"))

	vocabIDStr := chi.URLParam(r, "vocab_id")
	vocabID, err := uuid.Parse(vocabIDStr)
	if err != nil {
		logger.Warn("Invalid vocab ID format in URL", slog.String("vocab_id_str", vocabIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "vocab_idの形式が正しくありません。", "vocab_id", model.ErrInvalidInput)
		webutil.HandleError(w, appErr)
		return
	}
	logger = logger.With(slog.String("vocab_id", vocabID.String()))

	var req model.SetMasteryRequest
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

	userID := middleware.GetUserIDFromContext(r.Context())
	deviceKey := middleware.GetDeviceKeyFromContext(r.Context())

	resp, err := h.service.SetMastered(r.Context(), userID, deviceKey, vocabID, *req.Mastered)
	if err != nil {
		logger.Error("Error setting mastery in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	logger.Info("Mastery set successfully", slog.Bool("mastered", resp.Mastered))
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}
