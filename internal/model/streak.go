// internal/model/streak.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityKind は連続学習記録の対象となる学習アクティビティの種別
type ActivityKind string

const (
	ActivityFlashcards ActivityKind = "flashcards"
	ActivityMatching   ActivityKind = "matching"
	ActivityQuiz       ActivityKind = "quiz"
)

// Valid は既知のアクティビティ種別かどうかを返します
func (k ActivityKind) Valid() bool {
	switch k {
	case ActivityFlashcards, ActivityMatching, ActivityQuiz:
		return true
	}
	return false
}

// UserStreak は学習者の連続学習記録のスナップショットです (バックエンド所有)
type UserStreak struct {
	UserID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	CurrentStreak    int       `gorm:"not null;default:0" json:"current_streak"`
	LongestStreak    int       `gorm:"not null;default:0" json:"longest_streak"`
	LastQualifiedDay string    `gorm:"not null" json:"last_qualified_day"` // YYYY-MM-DD
	Timezone         string    `json:"timezone,omitempty"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}

func (UserStreak) TableName() string {
	return "user_streaks"
}

// アクティビティ記録リクエストDTO
type RecordActivityRequest struct {
	Kind           ActivityKind `json:"kind" validate:"required,oneof=flashcards matching quiz"`
	VocabID        *uuid.UUID   `json:"vocab_id,omitempty"`
	BecameMastered bool         `json:"became_mastered,omitempty"`
}
