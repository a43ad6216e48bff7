// internal/service/content_service.go
package service

import (
	"context"

	"go_5_lesson_progress/internal/config"
	"go_5_lesson_progress/internal/middleware"
	"go_5_lesson_progress/internal/model"
	"go_5_lesson_progress/internal/progress"
	"go_5_lesson_progress/internal/repository"

	"gorm.io/gorm"
)

type ContentService interface {
	// GetContent はカリキュラム全体 (レッスンと語彙) を返します。
	// バックエンドが無効・取得失敗・0件のいずれの場合もバンドルされた
	// デモ用コンテンツにフォールバックするため、エラーを返しません。
	GetContent(ctx context.Context) ([]*model.Lesson, []*model.VocabularyItem)
	ListLessons(ctx context.Context) []*model.LessonResponse
}

type contentService struct {
	db          *gorm.DB
	contentRepo repository.ContentRepository
	cfg         *config.Config
}

func NewContentService(db *gorm.DB, contentRepo repository.ContentRepository, cfg *config.Config) ContentService {
	return &contentService{
		db:          db,
		contentRepo: contentRepo,
		cfg:         cfg,
	}
}

func (s *contentService) GetContent(ctx context.Context) ([]*model.Lesson, []*model.VocabularyItem) {
	logger := middleware.GetLogger(ctx)

	if !s.cfg.Backend.Enabled || s.db == nil {
		return model.DefaultLessons(), model.DefaultVocabulary()
	}

	lessons, err := s.contentRepo.FindLessons(ctx, s.db)
	if err != nil {
		logger.Warn("Failed to load lessons, falling back to bundled content", "error", err)
		return model.DefaultLessons(), model.DefaultVocabulary()
	}
	if len(lessons) == 0 {
		// コンテンツの用意はこのサービスの責務ではないが、空へのフォールバックは行う
		logger.Info("No lessons in backend, falling back to bundled content")
		return model.DefaultLessons(), model.DefaultVocabulary()
	}

	items, err := s.contentRepo.FindVocabulary(ctx, s.db)
	if err != nil {
		// レッスンと語彙は対で使うため、片方だけの取得成功は採用しない
		logger.Warn("Failed to load vocabulary, falling back to bundled content", "error", err)
		return model.DefaultLessons(), model.DefaultVocabulary()
	}

	return lessons, items
}

func (s *contentService) ListLessons(ctx context.Context) []*model.LessonResponse {
	lessons, items := s.GetContent(ctx)

	counts := make(map[string]int, len(lessons))
	for _, item := range items {
		counts[item.LessonID.String()]++
	}

	ordered := progress.SortLessons(lessons)
	responses := make([]*model.LessonResponse, 0, len(ordered))
	for _, l := range ordered {
		responses = append(responses, &model.LessonResponse{
			LessonID:       l.LessonID,
			Level:          l.Level,
			SequenceNumber: l.EffectiveSequence(),
			Course:         l.CourseLabel(),
			Title:          l.Title,
			VocabCount:     counts[l.LessonID.String()],
		})
	}
	return responses
}
