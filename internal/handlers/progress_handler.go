// internal/handlers/progress_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_lesson_progress/internal/middleware"
	"go_5_lesson_progress/internal/model"
	"go_5_lesson_progress/internal/service"
	"go_5_lesson_progress/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type ProgressHandler struct {
	service service.ProgressService
	logger  *slog.Logger
}

func NewProgressHandler(s service.ProgressService, logger *slog.Logger) *ProgressHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressHandler{
		service: s,
		logger:  logger,
	}
}

// GetLessonStats はレッスンごとの進捗集計を取得するためのハンドラ
func (h *ProgressHandler) GetLessonStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLessonStats"))

	userID := middleware.GetUserIDFromContext(r.Context())
	deviceKey := middleware.GetDeviceKeyFromContext(r.Context())

	stats, err := h.service.ListLessonStats(r.Context(), userID, deviceKey)
	if err != nil {
		logger.Error("Error listing lesson stats in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	if stats == nil {
		stats = []*model.LessonStatsResponse{}
	}
	logger.Info("Lesson stats listed successfully", slog.Int("count", len(stats)))
	webutil.RespondWithJSON(w, http.StatusOK, stats)
}

// GetCourseStats はコースごとの進捗集計を取得するためのハンドラ
func (h *ProgressHandler) GetCourseStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCourseStats"))

	userID := middleware.GetUserIDFromContext(r.Context())
	deviceKey := middleware.GetDeviceKeyFromContext(r.Context())

	stats, err := h.service.ListCourseStats(r.Context(), userID, deviceKey)
	if err != nil {
		logger.Error("Error listing course stats in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	if stats == nil {
		stats = []*model.CourseStats{}
	}
	logger.Info("Course stats listed successfully", slog.Int("count", len(stats)))
	webutil.RespondWithJSON(w, http.StatusOK, stats)
}

// GetDefaultLesson は次に学習すべきレッスンを取得するためのハンドラ。
// course クエリパラメータで対象コースを絞り込めます。
func (h *ProgressHandler) GetDefaultLesson(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDefaultLesson"))

	userID := middleware.GetUserIDFromContext(r.Context())
	deviceKey := middleware.GetDeviceKeyFromContext(r.Context())
	course := r.URL.Query().Get("course")

	resp, err := h.service.DefaultLesson(r.Context(), userID, deviceKey, course)
	if err != nil {
		logger.Error("Error selecting default lesson in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	if resp == nil {
		// 提案できるレッスンがない (コース絞り込みで空など)
		logger.Info("No lessons available for default selection", slog.String("course", course))
		w.WriteHeader(http.StatusNoContent)
		return
	}

	logger.Info("Default lesson selected successfully", slog.String("lesson_id", resp.LessonID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

// GetHighestMasteredUnit はコースのリーダーボード指標を取得するためのハンドラ
func (h *ProgressHandler) GetHighestMasteredUnit(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetHighestMasteredUnit"))

	userID := middleware.GetUserIDFromContext(r.Context())
	deviceKey := middleware.GetDeviceKeyFromContext(r.Context())
	course := chi.URLParam(r, "course")

	highest, err := h.service.HighestMasteredUnit(r.Context(), userID, deviceKey, course)
	if err != nil {
		logger.Error("Error computing highest mastered unit in service", slog.Any("error", err), slog.String("course", course))
		webutil.HandleError(w, err)
		return
	}

	logger.Info("Highest mastered unit computed successfully", slog.String("course", course))
	webutil.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"course":                course,
		"highest_mastered_unit": highest, // 完全習得レッスンがなければ null
	})
}
