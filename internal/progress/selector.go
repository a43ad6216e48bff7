// internal/progress/selector.go
package progress

import (
	"go_5_lesson_progress/internal/model"

	"github.com/google/uuid"
)

// DefaultLessonAfterLargestCompleted は学習者が次に開くべきレッスンを選びます。
// courseFilter が空でなければ、そのコースラベルのレッスンに限定します。
//
//   - (level, sequence) 順で最大の完全習得レッスンを探し、その直後のレッスンを返す
//   - 完全習得レッスンがなければ先頭のレッスン (最初から開始)
//   - 全レッスンが完全習得なら末尾のレッスン (後続がないため最終レッスンを再提示)
//   - 対象レッスンが0件のときだけ nil
//
// 途中に未習得レッスンがあっても、順序キー最大の完全習得レッスンを基準にします。
func DefaultLessonAfterLargestCompleted(lessons []*model.Lesson, stats map[uuid.UUID]model.LessonStats, courseFilter string) *uuid.UUID {
	scoped := lessons
	if courseFilter != "" {
		scoped = make([]*model.Lesson, 0, len(lessons))
		for _, l := range lessons {
			if l.CourseLabel() == courseFilter {
				scoped = append(scoped, l)
			}
		}
	}
	if len(scoped) == 0 {
		return nil
	}

	ordered := SortLessons(scoped)

	largestCompleted := -1
	for i, l := range ordered {
		if stats[l.LessonID].IsComplete {
			largestCompleted = i
		}
	}

	if largestCompleted == -1 {
		id := ordered[0].LessonID
		return &id
	}

	next := largestCompleted + 1
	if next >= len(ordered) {
		next = len(ordered) - 1
	}
	id := ordered[next].LessonID
	return &id
}
