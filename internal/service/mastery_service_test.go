// internal/service/mastery_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"go_5_lesson_progress/internal/model"
	"go_5_lesson_progress/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_masteryService_SetMastered_Guest(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()

	vocabID := uuid.New()
	otherID := uuid.New()

	tests := []struct {
		name      string
		deviceKey string
		mastered  bool
		setupMock func(guestStore *mocks.GuestStore)
		wantErr   error
	}{
		{
			name:      "正常系: 習得済みに設定すると端末ストアに追加される",
			deviceKey: "device-1",
			mastered:  true,
			setupMock: func(guestStore *mocks.GuestStore) {
				guestStore.On("Load", ctx, "device-1").
					Return(model.MasteredMap{otherID: true}, nil).Once()
				guestStore.On("Save", ctx, "device-1", mock.AnythingOfType("model.MasteredMap")).
					Run(func(args mock.Arguments) {
						saved := args.Get(2).(model.MasteredMap)
						assert.True(t, saved[vocabID])
						assert.True(t, saved[otherID])
					}).Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name:      "正常系: 未習得に戻すと端末ストアから取り除かれる",
			deviceKey: "device-1",
			mastered:  false,
			setupMock: func(guestStore *mocks.GuestStore) {
				guestStore.On("Load", ctx, "device-1").
					Return(model.MasteredMap{vocabID: true, otherID: true}, nil).Once()
				guestStore.On("Save", ctx, "device-1", mock.AnythingOfType("model.MasteredMap")).
					Run(func(args mock.Arguments) {
						saved := args.Get(2).(model.MasteredMap)
						_, exists := saved[vocabID]
						assert.False(t, exists)
						assert.True(t, saved[otherID])
					}).Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name:      "異常系: 端末キーなしは保存できない",
			deviceKey: "",
			mastered:  true,
			setupMock: func(guestStore *mocks.GuestStore) {
				// ストアは呼ばれないはず
			},
			wantErr: model.ErrInvalidInput,
		},
		{
			name:      "異常系: 端末ストアの読み取り失敗",
			deviceKey: "device-1",
			mastered:  true,
			setupMock: func(guestStore *mocks.GuestStore) {
				guestStore.On("Load", ctx, "device-1").
					Return(nil, errors.New("disk error")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
		{
			name:      "異常系: 端末ストアの書き込み失敗",
			deviceKey: "device-1",
			mastered:  true,
			setupMock: func(guestStore *mocks.GuestStore) {
				guestStore.On("Load", ctx, "device-1").
					Return(model.MasteredMap{}, nil).Once()
				guestStore.On("Save", ctx, "device-1", mock.AnythingOfType("model.MasteredMap")).
					Return(errors.New("disk error")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGuestStore := new(mocks.GuestStore)
			tt.setupMock(mockGuestStore)

			masteryService := NewMasteryService(db, new(mocks.MasteryRepository), mockGuestStore, enabledConfig())
			resp, err := masteryService.SetMastered(ctx, nil, tt.deviceKey, vocabID, tt.mastered)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				require.NotNil(t, resp)
				assert.Equal(t, vocabID, resp.VocabID)
				assert.Equal(t, tt.mastered, resp.Mastered)
			}
			mockGuestStore.AssertExpectations(t)
		})
	}
}

func Test_masteryService_SetMastered_SignedIn(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()

	userID := uuid.New()
	vocabID := uuid.New()

	tests := []struct {
		name       string
		backendOff bool
		setupMock  func(masteryRepo *mocks.MasteryRepository)
		wantErr    error
	}{
		{
			name: "正常系: バックエンドに保存される",
			setupMock: func(masteryRepo *mocks.MasteryRepository) {
				masteryRepo.On("Upsert", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.MasteryRecord")).
					Run(func(args mock.Arguments) {
						record := args.Get(2).(*model.MasteryRecord)
						assert.Equal(t, userID, record.UserID)
						assert.Equal(t, vocabID, record.VocabID)
						assert.True(t, record.Mastered)
						assert.NotEqual(t, uuid.Nil, record.MasteryID)
					}).Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name:       "異常系: バックエンド無効のサインイン済み書き込みは拒否",
			backendOff: true,
			setupMock: func(masteryRepo *mocks.MasteryRepository) {
				// リポジトリは呼ばれないはず
			},
			wantErr: model.ErrBackendDisabled,
		},
		{
			name: "異常系: 並行更新の衝突",
			setupMock: func(masteryRepo *mocks.MasteryRepository) {
				masteryRepo.On("Upsert", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.MasteryRecord")).
					Return(model.ErrConflict).Once()
			},
			wantErr: model.ErrConflict,
		},
		{
			name: "異常系: 保存失敗",
			setupMock: func(masteryRepo *mocks.MasteryRepository) {
				masteryRepo.On("Upsert", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.MasteryRecord")).
					Return(errors.New("db connection error")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockMasteryRepo := new(mocks.MasteryRepository)
			tt.setupMock(mockMasteryRepo)

			cfg := enabledConfig()
			if tt.backendOff {
				cfg = disabledConfig()
			}
			masteryService := NewMasteryService(db, mockMasteryRepo, new(mocks.GuestStore), cfg)
			resp, err := masteryService.SetMastered(ctx, &userID, "", vocabID, true)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				require.NotNil(t, resp)
				assert.Equal(t, vocabID, resp.VocabID)
				assert.True(t, resp.Mastered)
			}
			mockMasteryRepo.AssertExpectations(t)
		})
	}
}
