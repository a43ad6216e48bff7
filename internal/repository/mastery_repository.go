//go:generate mockery --name MasteryRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_lesson_progress/internal/middleware"
	"go_5_lesson_progress/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type MasteryRepository interface {
	// FindMasteredByUser は mastered = true の記録のみを返します
	FindMasteredByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.MasteryRecord, error)
	Upsert(ctx context.Context, tx *gorm.DB, record *model.MasteryRecord) error // トランザクション対応
}

type gormMasteryRepository struct{}

func NewGormMasteryRepository() MasteryRepository {
	return &gormMasteryRepository{}
}

func (r *gormMasteryRepository) FindMasteredByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.MasteryRecord, error) {
	logger := middleware.GetLogger(ctx)
	var records []*model.MasteryRecord

	result := db.WithContext(ctx).
		Where("user_id = ? AND mastered = ?", userID, true).
		Find(&records)
	if result.Error != nil {
		logger.Error(
			"Error finding mastery records in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormMasteryRepository.FindMasteredByUser: %w", result.Error)
	}
	return records, nil
}

func (r *gormMasteryRepository) Upsert(ctx context.Context, tx *gorm.DB, record *model.MasteryRecord) error {
	logger := middleware.GetLogger(ctx)

	// (user_id, vocab_id) の既存行を更新、なければ作成
	var existing model.MasteryRecord
	result := tx.WithContext(ctx).
		Where("user_id = ? AND vocab_id = ?", record.UserID, record.VocabID).
		First(&existing)

	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			logger.Error("Error finding mastery record for upsert", "error", result.Error)
			return fmt.Errorf("gormMasteryRepository.Upsert: %w", result.Error)
		}

		createResult := tx.WithContext(ctx).Create(record)
		if createResult.Error != nil {
			var pgErr *pgconn.PgError
			if errors.As(createResult.Error, &pgErr) && pgErr.Code == "23505" {
				// 同時作成による複合ユニーク制約違反
				logger.Warn(
					"Duplicate key error on create mastery record",
					"error", createResult.Error,
					"user_id", record.UserID.String(),
					"vocab_id", record.VocabID.String(),
				)
				return model.ErrConflict
			}
			logger.Error("Error creating mastery record in DB", "error", createResult.Error)
			return fmt.Errorf("gormMasteryRepository.Upsert: %w", createResult.Error)
		}
		return nil
	}

	existing.Mastered = record.Mastered
	updateResult := tx.WithContext(ctx).Save(&existing)
	if updateResult.Error != nil {
		logger.Error("Error updating mastery record in DB", "error", updateResult.Error)
		return fmt.Errorf("gormMasteryRepository.Upsert: %w", updateResult.Error)
	}
	record.MasteryID = existing.MasteryID
	return nil
}
