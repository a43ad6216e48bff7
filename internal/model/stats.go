// internal/model/stats.go
package model

import "github.com/google/uuid"

// LessonStats はレッスン単位の進捗集計です。永続化せず、都度導出します。
type LessonStats struct {
	Total      int  `json:"total"`
	Mastered   int  `json:"mastered"`
	IsComplete bool `json:"is_complete"` // mastered == total かつ total > 0
}

// CourseStats はコースラベル単位の進捗集計です
type CourseStats struct {
	Course              string `json:"course"`
	Lessons             int    `json:"lessons"`
	TotalWords          int    `json:"total_words"`
	MasteredWords       int    `json:"mastered_words"`
	CompletedLessons    int    `json:"completed_lessons"`
	HighestMasteredUnit *int   `json:"highest_mastered_unit"` // 完全習得レッスンがなければ null
}

// LessonStatsResponse はレッスン進捗一覧のレスポンス要素
type LessonStatsResponse struct {
	LessonID       uuid.UUID `json:"lesson_id"`
	Level          int       `json:"level"`
	SequenceNumber int       `json:"sequence_number"`
	Course         string    `json:"course"`
	Title          string    `json:"title"`
	LessonStats
}

// DefaultLessonResponse は次に学習すべきレッスンのレスポンス
type DefaultLessonResponse struct {
	LessonID uuid.UUID `json:"lesson_id"`
}
