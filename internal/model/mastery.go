// internal/model/mastery.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// MasteredMap は習得済み語彙IDの集合です (キーの存在のみが意味を持つ)
type MasteredMap map[uuid.UUID]bool

// MasteryRecord はサインイン済み学習者の習得記録です (バックエンドが正)
type MasteryRecord struct {
	MasteryID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_user_vocab,unique"` // 複合ユニークインデックスの一部
	VocabID   uuid.UUID `gorm:"type:uuid;not null;index:idx_user_vocab,unique"` // 複合ユニークインデックスの一部
	Mastered  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (MasteryRecord) TableName() string {
	return "mastery_records"
}

// GuestMastery はゲスト学習者の端末ローカルな習得状態です。
// デバイスキーごとに1行、シリアライズした MasteredMap を保持します。
type GuestMastery struct {
	DeviceKey string    `gorm:"primaryKey"`
	Mastered  string    `gorm:"not null"` // JSONシリアライズした語彙ID配列
	UpdatedAt time.Time
}

func (GuestMastery) TableName() string {
	return "guest_masteries"
}

// 習得状態更新リクエストDTO
type SetMasteryRequest struct {
	Mastered *bool `json:"mastered" validate:"required"`
}

// MasteryResponse は習得状態更新後のレスポンス
type MasteryResponse struct {
	VocabID  uuid.UUID `json:"vocab_id"`
	Mastered bool      `json:"mastered"`
}
