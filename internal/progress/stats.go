// internal/progress/stats.go
package progress

import (
	"sort"

	"go_5_lesson_progress/internal/model"

	"github.com/google/uuid"
)

// BuildLessonStats はレッスンごとの進捗集計を導出します。
// lessons に含まれる全レッスンが結果に現れます (語彙0件のレッスンは total=0)。
// 存在しないレッスンを参照する語彙は、そのレッスンの集計から黙って除外します。
// O(|items| + |lessons|)、副作用なし。
func BuildLessonStats(lessons []*model.Lesson, items []*model.VocabularyItem, mastered model.MasteredMap) map[uuid.UUID]model.LessonStats {
	stats := make(map[uuid.UUID]model.LessonStats, len(lessons))
	for _, l := range lessons {
		stats[l.LessonID] = model.LessonStats{}
	}

	for _, item := range items {
		s, ok := stats[item.LessonID]
		if !ok {
			continue
		}
		s.Total++
		if mastered[item.VocabID] {
			s.Mastered++
		}
		stats[item.LessonID] = s
	}

	for id, s := range stats {
		s.IsComplete = s.Total > 0 && s.Mastered == s.Total
		stats[id] = s
	}
	return stats
}

// SortLessons は (level, sequence) 昇順に並べたコピーを返します。入力は変更しません。
func SortLessons(lessons []*model.Lesson) []*model.Lesson {
	sorted := make([]*model.Lesson, len(lessons))
	copy(sorted, lessons)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Level != sorted[j].Level {
			return sorted[i].Level < sorted[j].Level
		}
		return sorted[i].EffectiveSequence() < sorted[j].EffectiveSequence()
	})
	return sorted
}

// BuildCourseStats はレッスン集計をコースラベル単位にロールアップします。
// HighestMasteredUnit は完全習得 (IsComplete) のレッスンのみを対象とした
// 実効順序番号の最大値で、対象がなければ nil のままです。
func BuildCourseStats(lessons []*model.Lesson, stats map[uuid.UUID]model.LessonStats) map[string]model.CourseStats {
	courses := make(map[string]model.CourseStats)
	for _, l := range lessons {
		label := l.CourseLabel()
		cs := courses[label]
		cs.Course = label
		cs.Lessons++

		ls := stats[l.LessonID]
		cs.TotalWords += ls.Total
		cs.MasteredWords += ls.Mastered
		if ls.IsComplete {
			cs.CompletedLessons++
			seq := l.EffectiveSequence()
			if cs.HighestMasteredUnit == nil || seq > *cs.HighestMasteredUnit {
				v := seq
				cs.HighestMasteredUnit = &v
			}
		}
		courses[label] = cs
	}
	return courses
}

// HighestMasteredUnitForCourse は指定コースのリーダーボード指標を返します。
// レッスン集計は内部で再計算します。部分的な習得はカウントしません。
// 順序番号が重複していても最大値が勝ちます。
func HighestMasteredUnitForCourse(lessons []*model.Lesson, items []*model.VocabularyItem, mastered model.MasteredMap, course string) *int {
	stats := BuildLessonStats(lessons, items, mastered)

	var highest *int
	for _, l := range lessons {
		if l.CourseLabel() != course {
			continue
		}
		if !stats[l.LessonID].IsComplete {
			continue
		}
		seq := l.EffectiveSequence()
		if highest == nil || seq > *highest {
			v := seq
			highest = &v
		}
	}
	return highest
}
