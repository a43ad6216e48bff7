//go:generate mockery --name StreakRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_5_lesson_progress/internal/middleware"
	"go_5_lesson_progress/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type StreakRepository interface {
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.UserStreak, error)
	// RecordDay は (localDay, timezone) で連続学習記録を更新し、更新後のスナップショットを返します。
	// 同一日の重複呼び出しは冪等です。
	RecordDay(ctx context.Context, tx *gorm.DB, userID uuid.UUID, localDay, timezone string) (*model.UserStreak, error)
}

type gormStreakRepository struct{}

func NewGormStreakRepository() StreakRepository {
	return &gormStreakRepository{}
}

func (r *gormStreakRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.UserStreak, error) {
	logger := middleware.GetLogger(ctx)
	var streak model.UserStreak

	result := db.WithContext(ctx).Where("user_id = ?", userID).First(&streak)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error(
			"Error finding streak in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormStreakRepository.FindByUser: %w", result.Error)
	}
	return &streak, nil
}

func (r *gormStreakRepository) RecordDay(ctx context.Context, tx *gorm.DB, userID uuid.UUID, localDay, timezone string) (*model.UserStreak, error) {
	logger := middleware.GetLogger(ctx)

	var streak model.UserStreak
	result := tx.WithContext(ctx).Where("user_id = ?", userID).First(&streak)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			logger.Error("Error finding streak for record", "error", result.Error)
			return nil, fmt.Errorf("gormStreakRepository.RecordDay: %w", result.Error)
		}

		streak = model.UserStreak{
			UserID:           userID,
			CurrentStreak:    1,
			LongestStreak:    1,
			LastQualifiedDay: localDay,
			Timezone:         timezone,
		}
		createResult := tx.WithContext(ctx).Create(&streak)
		if createResult.Error != nil {
			var pgErr *pgconn.PgError
			if errors.As(createResult.Error, &pgErr) && pgErr.Code == "23505" {
				// 同時作成 (同一日の並行リクエスト) は冪等に成功扱い
				logger.Warn("Duplicate key on create streak, treating as recorded", "user_id", userID.String())
				return r.FindByUser(ctx, tx, userID)
			}
			logger.Error("Error creating streak in DB", "error", createResult.Error)
			return nil, fmt.Errorf("gormStreakRepository.RecordDay: %w", createResult.Error)
		}
		return &streak, nil
	}

	// 同一日の再記録は何もしない (冪等)
	if streak.LastQualifiedDay == localDay {
		return &streak, nil
	}

	if isNextDay(streak.LastQualifiedDay, localDay) {
		streak.CurrentStreak++
	} else {
		streak.CurrentStreak = 1
	}
	if streak.CurrentStreak > streak.LongestStreak {
		streak.LongestStreak = streak.CurrentStreak
	}
	streak.LastQualifiedDay = localDay
	streak.Timezone = timezone

	if err := tx.WithContext(ctx).Save(&streak).Error; err != nil {
		logger.Error("Error updating streak in DB", "error", err)
		return nil, fmt.Errorf("gormStreakRepository.RecordDay: %w", err)
	}
	return &streak, nil
}

// isNextDay は next が prev の翌日かどうかを判定します (YYYY-MM-DD 比較)。
// どちらかがパース不能な場合は連続とみなしません。
func isNextDay(prev, next string) bool {
	prevDate, err := time.Parse("2006-01-02", prev)
	if err != nil {
		return false
	}
	nextDate, err := time.Parse("2006-01-02", next)
	if err != nil {
		return false
	}
	return prevDate.AddDate(0, 0, 1).Equal(nextDate)
}
