// internal/handlers/content_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_lesson_progress/internal/service"
	"go_5_lesson_progress/internal/webutil"
)

type ContentHandler struct {
	service service.ContentService
	logger  *slog.Logger
}

func NewContentHandler(s service.ContentService, logger *slog.Logger) *ContentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContentHandler{
		service: s,
		logger:  logger,
	}
}

// GetLessons はカリキュラムのレッスン一覧を取得するためのハンドラ
func (h *ContentHandler) GetLessons(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLessons"))

	lessons := h.service.ListLessons(r.Context())

	logger.Info("Lessons listed successfully", slog.Int("count", len(lessons)))
	webutil.RespondWithJSON(w, http.StatusOK, lessons)
}
