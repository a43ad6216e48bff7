// internal/service/mastery_service.go
package service

import (
	"context"
	"errors"

	"go_5_lesson_progress/internal/config"
	"go_5_lesson_progress/internal/middleware"
	"go_5_lesson_progress/internal/model"
	"go_5_lesson_progress/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MasteryService interface {
	// SetMastered は語彙の習得状態を更新します。
	// userID が nil の場合はゲストとして端末ストアに書き込みます。
	SetMastered(ctx context.Context, userID *uuid.UUID, deviceKey string, vocabID uuid.UUID, mastered bool) (*model.MasteryResponse, error)
}

type masteryService struct {
	db          *gorm.DB
	masteryRepo repository.MasteryRepository
	guestStore  repository.GuestStore
	cfg         *config.Config
}

func NewMasteryService(db *gorm.DB, masteryRepo repository.MasteryRepository, guestStore repository.GuestStore, cfg *config.Config) MasteryService {
	return &masteryService{
		db:          db,
		masteryRepo: masteryRepo,
		guestStore:  guestStore,
		cfg:         cfg,
	}
}

func (s *masteryService) SetMastered(ctx context.Context, userID *uuid.UUID, deviceKey string, vocabID uuid.UUID, mastered bool) (*model.MasteryResponse, error) {
	if userID == nil {
		return s.setGuestMastered(ctx, deviceKey, vocabID, mastered)
	}
	return s.setUserMastered(ctx, *userID, vocabID, mastered)
}

func (s *masteryService) setGuestMastered(ctx context.Context, deviceKey string, vocabID uuid.UUID, mastered bool) (*model.MasteryResponse, error) {
	logger := middleware.GetLogger(ctx)

	if deviceKey == "" {
		return nil, model.NewAppError("DEVICE_KEY_REQUIRED", "ゲストの進捗保存には X-Device-ID ヘッダーが必要です。", "", model.ErrInvalidInput)
	}

	current, err := s.guestStore.Load(ctx, deviceKey)
	if err != nil {
		logger.Error("Failed to load guest mastery for update", "error", err, "device_key", deviceKey)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "習得状態の更新に失敗しました。", "", model.ErrInternalServer)
	}

	if mastered {
		current[vocabID] = true
	} else {
		delete(current, vocabID)
	}

	if err := s.guestStore.Save(ctx, deviceKey, current); err != nil {
		logger.Error("Failed to save guest mastery", "error", err, "device_key", deviceKey)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "習得状態の更新に失敗しました。", "", model.ErrInternalServer)
	}

	return &model.MasteryResponse{VocabID: vocabID, Mastered: mastered}, nil
}

func (s *masteryService) setUserMastered(ctx context.Context, userID, vocabID uuid.UUID, mastered bool) (*model.MasteryResponse, error) {
	logger := middleware.GetLogger(ctx)

	if !s.cfg.Backend.Enabled || s.db == nil {
		// サインイン済みの書き込みは黙って捨てられないため、縮退中であることを返す
		return nil, model.NewAppError("BACKEND_DISABLED", "バックエンドが構成されていないため保存できません。", "", model.ErrBackendDisabled)
	}

	record := &model.MasteryRecord{
		MasteryID: uuid.New(),
		UserID:    userID,
		VocabID:   vocabID,
		Mastered:  mastered,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.masteryRepo.Upsert(ctx, tx, record)
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			// 並行作成との衝突。同じ内容を書こうとしていただけなので衝突として返す。
			return nil, model.NewAppError("CONFLICT", "習得状態が同時に更新されました。再試行してください。", "", model.ErrConflict)
		}
		logger.Error("Transaction failed for SetMastered", "error", err, "user_id", userID.String(), "vocab_id", vocabID.String())
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "習得状態の更新に失敗しました。", "", model.ErrInternalServer)
	}

	return &model.MasteryResponse{VocabID: vocabID, Mastered: mastered}, nil
}
