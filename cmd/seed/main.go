// cmd/seed/main.go
//
// バックエンドストアにテーブルを作成し、デモ用カリキュラムを投入する開発用ツール。
//
//	DATABASE_URL=postgres://... go run ./cmd/seed
package main

import (
	"log"
	"os"
	"time"

	"go_5_lesson_progress/internal/model"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{Logger: newLogger})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// --- 1. テーブル作成 ---
	err = db.AutoMigrate(
		&model.Lesson{},
		&model.VocabularyItem{},
		&model.MasteryRecord{},
		&model.UserStreak{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}
	log.Println("Tables migrated")

	// --- 2. デモ用カリキュラムの投入 ---
	// 既にレッスンが存在する場合は何もしない (再実行しても安全)
	var count int64
	if err := db.Model(&model.Lesson{}).Count(&count).Error; err != nil {
		log.Fatalf("Failed to count lessons: %v", err)
	}
	if count > 0 {
		log.Printf("Lessons already present (%d), skipping seed", count)
		return
	}

	lessons := []*model.Lesson{
		{LessonID: uuid.New(), Level: 1, SequenceNumber: 1, Course: "EC1", Title: "Greetings"},
		{LessonID: uuid.New(), Level: 1, SequenceNumber: 2, Course: "EC1", Title: "Numbers"},
		{LessonID: uuid.New(), Level: 1, SequenceNumber: 3, Course: "EC1", Title: "Colors"},
		{LessonID: uuid.New(), Level: 2, SequenceNumber: 1, Course: "EC2", Title: "Travel"},
		{LessonID: uuid.New(), Level: 2, SequenceNumber: 2, Course: "EC2", Title: "Food"},
	}

	vocab := map[string][][2]string{
		"Greetings": {{"hello", "こんにちは"}, {"goodbye", "さようなら"}, {"thanks", "ありがとう"}},
		"Numbers":   {{"one", "いち"}, {"two", "に"}, {"three", "さん"}},
		"Colors":    {{"red", "あか"}, {"blue", "あお"}, {"green", "みどり"}},
		"Travel":    {{"station", "えき"}, {"ticket", "きっぷ"}},
		"Food":      {{"rice", "ごはん"}, {"water", "みず"}},
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, l := range lessons {
			if err := tx.Create(l).Error; err != nil {
				return err
			}
			for _, v := range vocab[l.Title] {
				item := &model.VocabularyItem{
					VocabID:    uuid.New(),
					LessonID:   l.LessonID,
					Term:       v[0],
					Definition: v[1],
				}
				if err := tx.Create(item).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to seed curriculum: %v", err)
	}

	log.Printf("Seeded %d lessons", len(lessons))
}
