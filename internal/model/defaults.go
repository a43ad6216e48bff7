// internal/model/defaults.go
package model

import "github.com/google/uuid"

// バックエンドがコンテンツを1件も返さない場合に使うデモ用カリキュラム。
// コンテンツの用意はコアの責務ではないが、空の結果へのフォールバックはコアが行う。
var (
	defaultLesson1 = uuid.MustParse("00000000-0000-4000-8000-000000000101")
	defaultLesson2 = uuid.MustParse("00000000-0000-4000-8000-000000000102")
	defaultLesson3 = uuid.MustParse("00000000-0000-4000-8000-000000000103")
)

// DefaultLessons はバンドルされたデモ用レッスンを返します
func DefaultLessons() []*Lesson {
	return []*Lesson{
		{LessonID: defaultLesson1, Level: 1, SequenceNumber: 1, Title: "Greetings"},
		{LessonID: defaultLesson2, Level: 1, SequenceNumber: 2, Title: "Numbers"},
		{LessonID: defaultLesson3, Level: 1, SequenceNumber: 3, Title: "Colors"},
	}
}

// DefaultVocabulary はバンドルされたデモ用語彙を返します
func DefaultVocabulary() []*VocabularyItem {
	return []*VocabularyItem{
		{VocabID: uuid.MustParse("00000000-0000-4000-8000-000000000201"), LessonID: defaultLesson1, Term: "hello", Definition: "こんにちは"},
		{VocabID: uuid.MustParse("00000000-0000-4000-8000-000000000202"), LessonID: defaultLesson1, Term: "goodbye", Definition: "さようなら"},
		{VocabID: uuid.MustParse("00000000-0000-4000-8000-000000000203"), LessonID: defaultLesson2, Term: "one", Definition: "いち"},
		{VocabID: uuid.MustParse("00000000-0000-4000-8000-000000000204"), LessonID: defaultLesson2, Term: "two", Definition: "に"},
		{VocabID: uuid.MustParse("00000000-0000-4000-8000-000000000205"), LessonID: defaultLesson3, Term: "red", Definition: "あか"},
		{VocabID: uuid.MustParse("00000000-0000-4000-8000-000000000206"), LessonID: defaultLesson3, Term: "blue", Definition: "あお"},
	}
}
