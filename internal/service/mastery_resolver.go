// internal/service/mastery_resolver.go
package service

import (
	"context"
	"sync"

	"go_5_lesson_progress/internal/config"
	"go_5_lesson_progress/internal/middleware"
	"go_5_lesson_progress/internal/model"
	"go_5_lesson_progress/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MasteryResolver は現在のアイデンティティに対応する習得状態を解決します。
//
//   - サインイン済み: バックエンドの習得記録を1回取得
//   - ゲスト: 端末ストアを同期的に読み取り
//   - 取得失敗: 空のマップ (進捗なしとして扱い、致命的エラーにはしない)
//
// SetIdentity はアイデンティティの切り替えを非同期に反映します。
// 切り替えが連続した場合、古い取得結果は世代番号の比較で破棄され、
// 最後に設定されたアイデンティティの結果だけが残ります。
type MasteryResolver interface {
	// Fetch は指定アイデンティティの習得状態を同期的に解決します。
	// userID が nil の場合はゲスト (deviceKey) として解決します。
	Fetch(ctx context.Context, userID *uuid.UUID, deviceKey string) model.MasteredMap

	// SetIdentity は保持するアイデンティティを切り替え、習得状態の再取得を開始します。
	SetIdentity(ctx context.Context, userID *uuid.UUID, deviceKey string)

	// Snapshot は現在保持している習得状態と、取得中かどうかを返します。
	Snapshot() (model.MasteredMap, bool)
}

type masteryResolver struct {
	db          *gorm.DB
	masteryRepo repository.MasteryRepository
	guestStore  repository.GuestStore
	cfg         *config.Config

	mu         sync.Mutex
	generation uint64
	loading    bool
	current    model.MasteredMap
}

func NewMasteryResolver(db *gorm.DB, masteryRepo repository.MasteryRepository, guestStore repository.GuestStore, cfg *config.Config) MasteryResolver {
	return &masteryResolver{
		db:          db,
		masteryRepo: masteryRepo,
		guestStore:  guestStore,
		cfg:         cfg,
		current:     model.MasteredMap{},
	}
}

func (r *masteryResolver) Fetch(ctx context.Context, userID *uuid.UUID, deviceKey string) model.MasteredMap {
	logger := middleware.GetLogger(ctx)

	if userID == nil {
		if deviceKey == "" {
			// 端末キーなしのゲストは常に進捗なし
			return model.MasteredMap{}
		}
		mastered, err := r.guestStore.Load(ctx, deviceKey)
		if err != nil {
			logger.Warn("Failed to load guest mastery, treating as empty", "error", err, "device_key", deviceKey)
			return model.MasteredMap{}
		}
		return mastered
	}

	if !r.cfg.Backend.Enabled || r.db == nil {
		return model.MasteredMap{}
	}

	records, err := r.masteryRepo.FindMasteredByUser(ctx, r.db, *userID)
	if err != nil {
		logger.Warn("Failed to fetch mastery records, treating as empty", "error", err, "user_id", userID.String())
		return model.MasteredMap{}
	}

	mastered := make(model.MasteredMap, len(records))
	for _, record := range records {
		mastered[record.VocabID] = true
	}
	return mastered
}

func (r *masteryResolver) SetIdentity(ctx context.Context, userID *uuid.UUID, deviceKey string) {
	r.mu.Lock()
	r.generation++
	generation := r.generation
	r.loading = true
	r.mu.Unlock()

	go func() {
		mastered := r.Fetch(ctx, userID, deviceKey)

		r.mu.Lock()
		defer r.mu.Unlock()
		if generation != r.generation {
			// 取得中に別のアイデンティティへ切り替わった。後勝ちのため破棄する。
			return
		}
		r.current = mastered
		r.loading = false
	}()
}

func (r *masteryResolver) Snapshot() (model.MasteredMap, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make(model.MasteredMap, len(r.current))
	for id, ok := range r.current {
		snapshot[id] = ok
	}
	return snapshot, r.loading
}
