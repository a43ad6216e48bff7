// internal/service/streak_service.go
package service

import (
	"context"
	"errors"
	"time"

	"go_5_lesson_progress/internal/config"
	"go_5_lesson_progress/internal/localday"
	"go_5_lesson_progress/internal/middleware"
	"go_5_lesson_progress/internal/model"
	"go_5_lesson_progress/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StreakService は連続学習記録の更新と参照を行います。
// 連続日数の判定 (継続・リセット・最長更新) はバックエンド側のロジックであり、
// このサービスは「今日この学習者が学習した」という事実の転送だけを行います。
// バックエンドが無効な場合、すべての操作は決定的なno-opになります。
type StreakService interface {
	// RecordLogin はサインイン時の学習日を記録します。失敗してもエラーは返しません。
	RecordLogin(ctx context.Context, userID uuid.UUID)

	// RecordActivity は学習アクティビティ完了による学習日を記録し、
	// 更新後のスナップショットを返します。バックエンド無効・取得失敗時は nil を返します。
	RecordActivity(ctx context.Context, userID uuid.UUID, req *model.RecordActivityRequest) (*model.UserStreak, error)

	// CurrentStreak は現在の連続学習記録を返します。記録がない場合は nil です。
	CurrentStreak(ctx context.Context, userID uuid.UUID) (*model.UserStreak, error)
}

type streakService struct {
	db         *gorm.DB
	streakRepo repository.StreakRepository
	cfg        *config.Config
	now        func() time.Time // テストで固定するための時刻源
}

func NewStreakService(db *gorm.DB, streakRepo repository.StreakRepository, cfg *config.Config) StreakService {
	return &streakService{
		db:         db,
		streakRepo: streakRepo,
		cfg:        cfg,
		now:        time.Now,
	}
}

// localDay は設定されたタイムゾーンでの今日の日付と、転送用のタイムゾーン名を返します。
func (s *streakService) localDay() (string, string) {
	loc, tzName := localday.Resolve(s.cfg.App.Timezone)
	return localday.Day(s.now(), loc), tzName
}

func (s *streakService) enabled() bool {
	return s.cfg.Backend.Enabled && s.db != nil
}

func (s *streakService) RecordLogin(ctx context.Context, userID uuid.UUID) {
	logger := middleware.GetLogger(ctx)

	if !s.enabled() {
		logger.Debug("Streak backend disabled, skipping login record")
		return
	}

	day, tzName := s.localDay()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.streakRepo.RecordDay(ctx, tx, userID, day, tzName)
		return err
	})
	if err != nil {
		// ログイン記録は付随的な処理なので、失敗してもログインを妨げない
		logger.Warn("Failed to record login streak", "error", err, "user_id", userID.String())
	}
}

func (s *streakService) RecordActivity(ctx context.Context, userID uuid.UUID, req *model.RecordActivityRequest) (*model.UserStreak, error) {
	logger := middleware.GetLogger(ctx)

	if !req.Kind.Valid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "不明なアクティビティ種別です。", "kind", model.ErrInvalidInput)
	}

	if !s.enabled() {
		logger.Debug("Streak backend disabled, skipping activity record", "kind", string(req.Kind))
		return nil, nil
	}

	day, tzName := s.localDay()
	var streak *model.UserStreak
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		streak, err = s.streakRepo.RecordDay(ctx, tx, userID, day, tzName)
		return err
	})
	if err != nil {
		// 記録に失敗しても学習体験は継続させる。スナップショットなしとして返す。
		logger.Warn("Failed to record activity streak", "error", err, "user_id", userID.String(), "kind", string(req.Kind))
		return nil, nil
	}

	return streak, nil
}

func (s *streakService) CurrentStreak(ctx context.Context, userID uuid.UUID) (*model.UserStreak, error) {
	logger := middleware.GetLogger(ctx)

	if !s.enabled() {
		return nil, nil
	}

	streak, err := s.streakRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// まだ一度も記録していない学習者
			return nil, nil
		}
		logger.Warn("Failed to fetch current streak, treating as absent", "error", err, "user_id", userID.String())
		return nil, nil
	}
	return streak, nil
}
