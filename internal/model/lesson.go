// internal/model/lesson.go
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lesson はカリキュラム上の1つの教材単位を表します
type Lesson struct {
	LessonID       uuid.UUID      `gorm:"type:uuid;primaryKey" json:"lesson_id"`
	Level          int            `gorm:"not null;index:idx_level_seq" json:"level"`                 // コース/レベル番号
	SequenceNumber int            `gorm:"not null;index:idx_level_seq" json:"sequence_number"`       // レベル内の順序
	LessonNumber   int            `gorm:"column:lesson_number" json:"lesson_number,omitempty"`       // 旧フィールド (SequenceNumber未設定時のフォールバック)
	Course         string         `gorm:"column:course" json:"course,omitempty"`                     // 表示用ラベル (空なら "EC"+Level)
	Title          string         `gorm:"not null" json:"title"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// 関連 (Preload用)
	VocabularyItems []VocabularyItem `gorm:"foreignKey:LessonID;references:LessonID" json:"-"`
}

func (Lesson) TableName() string {
	return "lessons"
}

// EffectiveSequence はレベル内の実効順序番号を返します。
// SequenceNumber が未設定 (0以下) の場合は旧 LessonNumber にフォールバックします。
func (l *Lesson) EffectiveSequence() int {
	if l.SequenceNumber > 0 {
		return l.SequenceNumber
	}
	return l.LessonNumber
}

// CourseLabel はレッスンの所属コースラベルを返します。
// Course フィールドが空の場合は "EC" + Level を導出します。
func (l *Lesson) CourseLabel() string {
	if l.Course != "" {
		return l.Course
	}
	return fmt.Sprintf("EC%d", l.Level)
}

// VocabularyItem はちょうど1つのレッスンに属する学習単位です
type VocabularyItem struct {
	VocabID    uuid.UUID      `gorm:"type:uuid;primaryKey" json:"vocab_id"`
	LessonID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"lesson_id"`
	Term       string         `gorm:"not null" json:"term"`
	Definition string         `gorm:"not null" json:"definition"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (VocabularyItem) TableName() string {
	return "vocabulary_items"
}

// LessonResponse はクライアントに返すレッスン情報の構造体
type LessonResponse struct {
	LessonID       uuid.UUID `json:"lesson_id"`
	Level          int       `json:"level"`
	SequenceNumber int       `json:"sequence_number"`
	Course         string    `json:"course"`
	Title          string    `json:"title"`
	VocabCount     int       `json:"vocab_count"`
}
