package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go_5_lesson_progress/internal/config"
	"go_5_lesson_progress/internal/model"
	"go_5_lesson_progress/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// IdentityMiddleware は学習者のアイデンティティをコンテキストに設定するミドルウェアです。
//   - Authorization: Bearer {token} があれば検証し、subject をユーザーIDとして設定
//   - ヘッダーがなければゲスト扱い。X-Device-ID ヘッダーを端末キーとして設定
//
// ゲストとサインイン済みは同時には存在しません (どちらか一方のみが正)。
func IdentityMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				// ゲスト経路。端末キーは任意 (なければ進捗なしのゲスト)。
				deviceKey := r.Header.Get("X-Device-ID")
				ctx := context.WithValue(r.Context(), model.DeviceKeyKey, deviceKey)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				appErr := model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーの形式が正しくありません。", "", model.ErrForbidden)
				webutil.HandleError(w, appErr)
				return
			}
			tokenString := headerParts[1]

			// 署名と有効期限を検証
			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWT.SecretKey), nil
			})
			if err != nil {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", model.ErrForbidden)
				webutil.HandleError(w, appErr)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok || !token.Valid {
				logger.Warn("JWT auth failed: Unknown claims type or invalid token")
				appErr := model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", model.ErrForbidden)
				webutil.HandleError(w, appErr)
				return
			}

			subject, err := claims.GetSubject()
			if err != nil {
				logger.Warn("JWT auth failed: Subject (sub) claim missing", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "トークンにユーザー情報が含まれていません。", "", model.ErrForbidden)
				webutil.HandleError(w, appErr)
				return
			}

			userID, err := uuid.Parse(subject)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid subject (sub) format", "subject", subject, "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "トークンのユーザー情報が不正です。", "", model.ErrForbidden)
				webutil.HandleError(w, appErr)
				return
			}

			ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext はサインイン済みユーザーのIDを返します。
// ゲストの場合は (nil, nil) を返します。
func GetUserIDFromContext(ctx context.Context) *uuid.UUID {
	if value, ok := ctx.Value(model.UserIDKey).(uuid.UUID); ok {
		return &value
	}
	return nil
}

// GetDeviceKeyFromContext はゲストの端末キーを返します (未設定なら空文字列)。
func GetDeviceKeyFromContext(ctx context.Context) string {
	if value, ok := ctx.Value(model.DeviceKeyKey).(string); ok {
		return value
	}
	return ""
}

// RequireUserID はサインイン済みユーザーのIDを返します。ゲストはエラーになります。
func RequireUserID(ctx context.Context) (uuid.UUID, error) {
	if value, ok := ctx.Value(model.UserIDKey).(uuid.UUID); ok {
		return value, nil
	}
	return uuid.Nil, model.NewAppError("UNAUTHORIZED", "サインインが必要です。", "", model.ErrForbidden)
}
