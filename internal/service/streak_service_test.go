// internal/service/streak_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_5_lesson_progress/internal/model"
	"go_5_lesson_progress/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// 時刻を固定したストリークサービスを組み立てる
func newTestStreakService(streakRepo *mocks.StreakRepository, backendOff bool) *streakService {
	cfg := enabledConfig()
	if backendOff {
		cfg = disabledConfig()
	}
	cfg.App.Timezone = "UTC"

	s := NewStreakService(setupTestDB(), streakRepo, cfg).(*streakService)
	s.now = func() time.Time {
		return time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	}
	return s
}

func Test_streakService_RecordActivity(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name       string
		req        *model.RecordActivityRequest
		backendOff bool
		setupMock  func(streakRepo *mocks.StreakRepository)
		wantErr    error
		wantStreak *model.UserStreak
	}{
		{
			name: "正常系: 学習日が記録されスナップショットが返る",
			req:  &model.RecordActivityRequest{Kind: model.ActivityFlashcards},
			setupMock: func(streakRepo *mocks.StreakRepository) {
				streakRepo.On("RecordDay", ctx, mock.AnythingOfType("*gorm.DB"), userID, "2026-09-01", "UTC").
					Return(&model.UserStreak{
						UserID:           userID,
						CurrentStreak:    3,
						LongestStreak:    5,
						LastQualifiedDay: "2026-09-01",
					}, nil).Once()
			},
			wantStreak: &model.UserStreak{
				UserID:           userID,
				CurrentStreak:    3,
				LongestStreak:    5,
				LastQualifiedDay: "2026-09-01",
			},
		},
		{
			name:       "正常系: バックエンド無効は記録せずスナップショットなし",
			req:        &model.RecordActivityRequest{Kind: model.ActivityQuiz},
			backendOff: true,
			setupMock: func(streakRepo *mocks.StreakRepository) {
				// リポジトリは呼ばれないはず
			},
			wantStreak: nil,
		},
		{
			name: "異常系: 不明なアクティビティ種別",
			req:  &model.RecordActivityRequest{Kind: "sleeping"},
			setupMock: func(streakRepo *mocks.StreakRepository) {
				// リポジトリは呼ばれないはず
			},
			wantErr: model.ErrInvalidInput,
		},
		{
			name: "異常系: 記録失敗はスナップショットなしとして返す (学習は継続)",
			req:  &model.RecordActivityRequest{Kind: model.ActivityMatching},
			setupMock: func(streakRepo *mocks.StreakRepository) {
				streakRepo.On("RecordDay", ctx, mock.AnythingOfType("*gorm.DB"), userID, "2026-09-01", "UTC").
					Return(nil, errors.New("db connection error")).Once()
			},
			wantStreak: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStreakRepo := new(mocks.StreakRepository)
			tt.setupMock(mockStreakRepo)

			streakService := newTestStreakService(mockStreakRepo, tt.backendOff)
			streak, err := streakService.RecordActivity(ctx, userID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantStreak, streak)
			}
			mockStreakRepo.AssertExpectations(t)
		})
	}
}

func Test_streakService_RecordLogin(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("正常系: ログイン日が記録される", func(t *testing.T) {
		mockStreakRepo := new(mocks.StreakRepository)
		mockStreakRepo.On("RecordDay", ctx, mock.AnythingOfType("*gorm.DB"), userID, "2026-09-01", "UTC").
			Return(&model.UserStreak{UserID: userID, CurrentStreak: 1, LongestStreak: 1}, nil).Once()

		streakService := newTestStreakService(mockStreakRepo, false)
		streakService.RecordLogin(ctx, userID)

		mockStreakRepo.AssertExpectations(t)
	})

	t.Run("正常系: バックエンド無効は何もしない", func(t *testing.T) {
		mockStreakRepo := new(mocks.StreakRepository)

		streakService := newTestStreakService(mockStreakRepo, true)
		streakService.RecordLogin(ctx, userID)

		mockStreakRepo.AssertNotCalled(t, "RecordDay", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 記録失敗でもパニックしない (付随処理)", func(t *testing.T) {
		mockStreakRepo := new(mocks.StreakRepository)
		mockStreakRepo.On("RecordDay", ctx, mock.AnythingOfType("*gorm.DB"), userID, "2026-09-01", "UTC").
			Return(nil, errors.New("db connection error")).Once()

		streakService := newTestStreakService(mockStreakRepo, false)
		streakService.RecordLogin(ctx, userID)

		mockStreakRepo.AssertExpectations(t)
	})
}

func Test_streakService_CurrentStreak(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name       string
		backendOff bool
		setupMock  func(streakRepo *mocks.StreakRepository)
		wantStreak *model.UserStreak
	}{
		{
			name: "正常系: 現在の記録を返す",
			setupMock: func(streakRepo *mocks.StreakRepository) {
				streakRepo.On("FindByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
					Return(&model.UserStreak{UserID: userID, CurrentStreak: 7, LongestStreak: 10}, nil).Once()
			},
			wantStreak: &model.UserStreak{UserID: userID, CurrentStreak: 7, LongestStreak: 10},
		},
		{
			name: "正常系: 記録がない学習者は nil",
			setupMock: func(streakRepo *mocks.StreakRepository) {
				streakRepo.On("FindByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantStreak: nil,
		},
		{
			name:       "正常系: バックエンド無効は nil",
			backendOff: true,
			setupMock: func(streakRepo *mocks.StreakRepository) {
				// リポジトリは呼ばれないはず
			},
			wantStreak: nil,
		},
		{
			name: "異常系: 取得失敗は nil として扱う",
			setupMock: func(streakRepo *mocks.StreakRepository) {
				streakRepo.On("FindByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
					Return(nil, errors.New("db connection error")).Once()
			},
			wantStreak: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStreakRepo := new(mocks.StreakRepository)
			tt.setupMock(mockStreakRepo)

			streakService := newTestStreakService(mockStreakRepo, tt.backendOff)
			streak, err := streakService.CurrentStreak(ctx, userID)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStreak, streak)
			mockStreakRepo.AssertExpectations(t)
		})
	}
}
