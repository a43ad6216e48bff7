// internal/middleware/dev_auth.go
package middleware

import (
	"context"
	"log"
	"net/http"

	"go_5_lesson_progress/internal/model"

	"github.com/google/uuid"
)

// DevIdentityMiddleware は開発・テスト用ミドルウェアです。
// X-User-ID ヘッダーがあればUUIDとしてパースしてサインイン済み扱い、
// なければ X-Device-ID をゲストの端末キーとして設定します。
// JWTの検証は行いません。
func DevIdentityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			ctx := context.WithValue(r.Context(), model.DeviceKeyKey, r.Header.Get("X-Device-ID"))
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			log.Printf("[DEV AUTH] Failed: Invalid X-User-ID format: %s", userIDStr)
			webErr := model.NewAppError("UNAUTHORIZED", "[DEV] X-User-IDの形式が不正です。", "", model.ErrForbidden)
			http.Error(w, webErr.Detail.Message, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
