// internal/service/progress_service.go
package service

import (
	"context"

	"go_5_lesson_progress/internal/model"
	"go_5_lesson_progress/internal/progress"

	"github.com/google/uuid"
)

type ProgressService interface {
	ListLessonStats(ctx context.Context, userID *uuid.UUID, deviceKey string) ([]*model.LessonStatsResponse, error)
	ListCourseStats(ctx context.Context, userID *uuid.UUID, deviceKey string) ([]*model.CourseStats, error)
	DefaultLesson(ctx context.Context, userID *uuid.UUID, deviceKey, course string) (*model.DefaultLessonResponse, error)
	HighestMasteredUnit(ctx context.Context, userID *uuid.UUID, deviceKey, course string) (*int, error)
}

type progressService struct {
	content  ContentService
	resolver MasteryResolver
}

func NewProgressService(content ContentService, resolver MasteryResolver) ProgressService {
	return &progressService{
		content:  content,
		resolver: resolver,
	}
}

func (s *progressService) ListLessonStats(ctx context.Context, userID *uuid.UUID, deviceKey string) ([]*model.LessonStatsResponse, error) {
	lessons, items := s.content.GetContent(ctx)
	mastered := s.resolver.Fetch(ctx, userID, deviceKey)
	stats := progress.BuildLessonStats(lessons, items, mastered)

	ordered := progress.SortLessons(lessons)
	responses := make([]*model.LessonStatsResponse, 0, len(ordered))
	for _, l := range ordered {
		responses = append(responses, &model.LessonStatsResponse{
			LessonID:       l.LessonID,
			Level:          l.Level,
			SequenceNumber: l.EffectiveSequence(),
			Course:         l.CourseLabel(),
			Title:          l.Title,
			LessonStats:    stats[l.LessonID],
		})
	}
	return responses, nil
}

func (s *progressService) ListCourseStats(ctx context.Context, userID *uuid.UUID, deviceKey string) ([]*model.CourseStats, error) {
	lessons, items := s.content.GetContent(ctx)
	mastered := s.resolver.Fetch(ctx, userID, deviceKey)
	stats := progress.BuildLessonStats(lessons, items, mastered)
	courses := progress.BuildCourseStats(lessons, stats)

	// コースの並び順は (level, sequence) 順での初出順に固定する
	ordered := progress.SortLessons(lessons)
	seen := make(map[string]bool, len(courses))
	responses := make([]*model.CourseStats, 0, len(courses))
	for _, l := range ordered {
		label := l.CourseLabel()
		if seen[label] {
			continue
		}
		seen[label] = true
		cs := courses[label]
		responses = append(responses, &cs)
	}
	return responses, nil
}

func (s *progressService) DefaultLesson(ctx context.Context, userID *uuid.UUID, deviceKey, course string) (*model.DefaultLessonResponse, error) {
	lessons, items := s.content.GetContent(ctx)
	mastered := s.resolver.Fetch(ctx, userID, deviceKey)
	stats := progress.BuildLessonStats(lessons, items, mastered)

	lessonID := progress.DefaultLessonAfterLargestCompleted(lessons, stats, course)
	if lessonID == nil {
		// 対象レッスンなし (コース絞り込みで空になった場合など) は提案なし
		return nil, nil
	}
	return &model.DefaultLessonResponse{LessonID: *lessonID}, nil
}

func (s *progressService) HighestMasteredUnit(ctx context.Context, userID *uuid.UUID, deviceKey, course string) (*int, error) {
	if course == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "コースの指定は必須です。", "course", model.ErrInvalidInput)
	}

	lessons, items := s.content.GetContent(ctx)
	mastered := s.resolver.Fetch(ctx, userID, deviceKey)
	return progress.HighestMasteredUnitForCourse(lessons, items, mastered, course), nil
}
