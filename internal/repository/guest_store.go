//go:generate mockery --name GuestStore --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go_5_lesson_progress/internal/middleware"
	"go_5_lesson_progress/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GuestStore はゲスト学習者の端末ローカルな習得状態を保持するキーバリューストアです。
// デバイスキーごとに1件、シリアライズした MasteredMap を保存します。
type GuestStore interface {
	Load(ctx context.Context, deviceKey string) (model.MasteredMap, error)
	Save(ctx context.Context, deviceKey string, mastered model.MasteredMap) error
}

type gormGuestStore struct {
	db *gorm.DB
}

func NewGormGuestStore(db *gorm.DB) GuestStore {
	return &gormGuestStore{db: db}
}

func (s *gormGuestStore) Load(ctx context.Context, deviceKey string) (model.MasteredMap, error) {
	logger := middleware.GetLogger(ctx)

	var row model.GuestMastery
	result := s.db.WithContext(ctx).Where("device_key = ?", deviceKey).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			// 未保存のデバイスは空のマップ
			return model.MasteredMap{}, nil
		}
		logger.Error("Error loading guest mastery", "error", result.Error, "device_key", deviceKey)
		return nil, fmt.Errorf("gormGuestStore.Load: %w", result.Error)
	}

	var ids []uuid.UUID
	if err := json.Unmarshal([]byte(row.Mastered), &ids); err != nil {
		// 壊れたデータは空扱いにする (ゲストの進捗は端末ストアの寿命に従う)
		logger.Warn("Corrupt guest mastery data, treating as empty", "error", err, "device_key", deviceKey)
		return model.MasteredMap{}, nil
	}

	mastered := make(model.MasteredMap, len(ids))
	for _, id := range ids {
		mastered[id] = true
	}
	return mastered, nil
}

func (s *gormGuestStore) Save(ctx context.Context, deviceKey string, mastered model.MasteredMap) error {
	logger := middleware.GetLogger(ctx)

	ids := make([]uuid.UUID, 0, len(mastered))
	for id, ok := range mastered {
		if ok {
			ids = append(ids, id)
		}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("gormGuestStore.Save: %w", err)
	}

	row := model.GuestMastery{
		DeviceKey: deviceKey,
		Mastered:  string(data),
		UpdatedAt: time.Now(),
	}
	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		logger.Error("Error saving guest mastery", "error", err, "device_key", deviceKey)
		return fmt.Errorf("gormGuestStore.Save: %w", err)
	}
	return nil
}
