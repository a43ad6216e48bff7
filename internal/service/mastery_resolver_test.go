// internal/service/mastery_resolver_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_5_lesson_progress/internal/config"
	"go_5_lesson_progress/internal/model"
	"go_5_lesson_progress/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 ---
func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func enabledConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Backend.Enabled = true
	return cfg
}

func disabledConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Backend.Enabled = false
	return cfg
}

// --- Test Fetch ---
func Test_masteryResolver_Fetch(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()

	userID := uuid.New()
	vocab1 := uuid.New()
	vocab2 := uuid.New()

	tests := []struct {
		name      string
		userID    *uuid.UUID
		deviceKey string
		cfg       *config.Config
		setupMock func(masteryRepo *mocks.MasteryRepository, guestStore *mocks.GuestStore)
		want      model.MasteredMap
	}{
		{
			name:   "正常系: サインイン済みはバックエンドの習得記録を返す",
			userID: &userID,
			cfg:    enabledConfig(),
			setupMock: func(masteryRepo *mocks.MasteryRepository, guestStore *mocks.GuestStore) {
				masteryRepo.On("FindMasteredByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
					Return([]*model.MasteryRecord{
						{UserID: userID, VocabID: vocab1, Mastered: true},
						{UserID: userID, VocabID: vocab2, Mastered: true},
					}, nil).Once()
			},
			want: model.MasteredMap{vocab1: true, vocab2: true},
		},
		{
			name:      "正常系: ゲストは端末ストアを読む",
			userID:    nil,
			deviceKey: "device-1",
			cfg:       enabledConfig(),
			setupMock: func(masteryRepo *mocks.MasteryRepository, guestStore *mocks.GuestStore) {
				guestStore.On("Load", ctx, "device-1").
					Return(model.MasteredMap{vocab1: true}, nil).Once()
			},
			want: model.MasteredMap{vocab1: true},
		},
		{
			name:      "正常系: 端末キーなしのゲストは常に空",
			userID:    nil,
			deviceKey: "",
			cfg:       enabledConfig(),
			setupMock: func(masteryRepo *mocks.MasteryRepository, guestStore *mocks.GuestStore) {
				// ストアは呼ばれないはず
			},
			want: model.MasteredMap{},
		},
		{
			name:   "正常系: バックエンド無効のサインイン済みは空 (縮退)",
			userID: &userID,
			cfg:    disabledConfig(),
			setupMock: func(masteryRepo *mocks.MasteryRepository, guestStore *mocks.GuestStore) {
				// リポジトリは呼ばれないはず
			},
			want: model.MasteredMap{},
		},
		{
			name:   "異常系: 取得失敗は空のマップとして扱う",
			userID: &userID,
			cfg:    enabledConfig(),
			setupMock: func(masteryRepo *mocks.MasteryRepository, guestStore *mocks.GuestStore) {
				masteryRepo.On("FindMasteredByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
					Return(nil, errors.New("db connection error")).Once()
			},
			want: model.MasteredMap{},
		},
		{
			name:      "異常系: 端末ストアの読み取り失敗は空のマップとして扱う",
			userID:    nil,
			deviceKey: "device-1",
			cfg:       enabledConfig(),
			setupMock: func(masteryRepo *mocks.MasteryRepository, guestStore *mocks.GuestStore) {
				guestStore.On("Load", ctx, "device-1").
					Return(nil, errors.New("disk error")).Once()
			},
			want: model.MasteredMap{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockMasteryRepo := new(mocks.MasteryRepository)
			mockGuestStore := new(mocks.GuestStore)
			tt.setupMock(mockMasteryRepo, mockGuestStore)

			resolver := NewMasteryResolver(db, mockMasteryRepo, mockGuestStore, tt.cfg)
			got := resolver.Fetch(ctx, tt.userID, tt.deviceKey)

			assert.Equal(t, tt.want, got)
			mockMasteryRepo.AssertExpectations(t)
			mockGuestStore.AssertExpectations(t)
		})
	}
}

// --- Test SetIdentity ---

// ゲストで3件習得済みの状態からサインインし、バックエンドに記録が1件も
// ない場合、保持される習得状態は空になる (ゲストの状態を引き継がない)。
func Test_masteryResolver_SetIdentity_SwitchToEmptyUser(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	mockMasteryRepo := new(mocks.MasteryRepository)
	mockGuestStore := new(mocks.GuestStore)

	guestMastered := model.MasteredMap{uuid.New(): true, uuid.New(): true, uuid.New(): true}
	mockGuestStore.On("Load", ctx, "device-1").Return(guestMastered, nil).Once()

	userID := uuid.New()
	mockMasteryRepo.On("FindMasteredByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
		Return([]*model.MasteryRecord{}, nil).Once()

	resolver := NewMasteryResolver(db, mockMasteryRepo, mockGuestStore, enabledConfig())

	resolver.SetIdentity(ctx, nil, "device-1")
	require.Eventually(t, func() bool {
		snapshot, loading := resolver.Snapshot()
		return !loading && len(snapshot) == 3
	}, time.Second, 10*time.Millisecond, "guest mastery should be loaded")

	resolver.SetIdentity(ctx, &userID, "")
	require.Eventually(t, func() bool {
		snapshot, loading := resolver.Snapshot()
		return !loading && len(snapshot) == 0
	}, time.Second, 10*time.Millisecond, "signed-in mastery should replace guest mastery")

	mockMasteryRepo.AssertExpectations(t)
	mockGuestStore.AssertExpectations(t)
}

// 切り替えが連続した場合、遅れて届いた古いアイデンティティの取得結果は破棄される。
func Test_masteryResolver_SetIdentity_LastIdentityWins(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	mockMasteryRepo := new(mocks.MasteryRepository)
	mockGuestStore := new(mocks.GuestStore)

	slowUserID := uuid.New()
	staleVocab := uuid.New()
	mockMasteryRepo.On("FindMasteredByUser", ctx, mock.AnythingOfType("*gorm.DB"), slowUserID).
		Run(func(args mock.Arguments) {
			time.Sleep(100 * time.Millisecond) // 取得中に切り替えが起きる状況を再現
		}).
		Return([]*model.MasteryRecord{{UserID: slowUserID, VocabID: staleVocab, Mastered: true}}, nil).Once()

	freshVocab := uuid.New()
	mockGuestStore.On("Load", ctx, "device-2").
		Return(model.MasteredMap{freshVocab: true}, nil).Once()

	resolver := NewMasteryResolver(db, mockMasteryRepo, mockGuestStore, enabledConfig())

	resolver.SetIdentity(ctx, &slowUserID, "")
	resolver.SetIdentity(ctx, nil, "device-2")

	require.Eventually(t, func() bool {
		snapshot, loading := resolver.Snapshot()
		return !loading && snapshot[freshVocab]
	}, time.Second, 10*time.Millisecond)

	// 遅れて完了した古い取得が結果を上書きしていないこと
	time.Sleep(200 * time.Millisecond)
	snapshot, loading := resolver.Snapshot()
	assert.False(t, loading)
	assert.True(t, snapshot[freshVocab])
	assert.False(t, snapshot[staleVocab], "stale fetch result must be discarded")

	mockMasteryRepo.AssertExpectations(t)
	mockGuestStore.AssertExpectations(t)
}
