//go:generate mockery --name ContentRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_5_lesson_progress/internal/middleware"
	"go_5_lesson_progress/internal/model"

	"gorm.io/gorm"
)

type ContentRepository interface {
	FindLessons(ctx context.Context, db *gorm.DB) ([]*model.Lesson, error)
	FindVocabulary(ctx context.Context, db *gorm.DB) ([]*model.VocabularyItem, error)
}

type gormContentRepository struct{}

func NewGormContentRepository() ContentRepository {
	return &gormContentRepository{}
}

func (r *gormContentRepository) FindLessons(ctx context.Context, db *gorm.DB) ([]*model.Lesson, error) {
	logger := middleware.GetLogger(ctx)
	var lessons []*model.Lesson

	// 表示順序は (level, sequence_number) 昇順
	result := db.WithContext(ctx).
		Order("level ASC, sequence_number ASC").
		Find(&lessons)
	if result.Error != nil {
		logger.Error("Error finding lessons in DB", "error", result.Error)
		return nil, fmt.Errorf("gormContentRepository.FindLessons: %w", result.Error)
	}
	return lessons, nil
}

func (r *gormContentRepository) FindVocabulary(ctx context.Context, db *gorm.DB) ([]*model.VocabularyItem, error) {
	logger := middleware.GetLogger(ctx)
	var items []*model.VocabularyItem

	result := db.WithContext(ctx).Find(&items)
	if result.Error != nil {
		logger.Error("Error finding vocabulary items in DB", "error", result.Error)
		return nil, fmt.Errorf("gormContentRepository.FindVocabulary: %w", result.Error)
	}
	return items, nil
}
