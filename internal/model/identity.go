// internal/model/identity.go
package model

type ContextKey string

const (
	// UserIDKey はサインイン済み学習者のIDをコンテキストに格納するキー
	UserIDKey ContextKey = "userID"
	// DeviceKeyKey はゲスト学習者の端末キーをコンテキストに格納するキー
	DeviceKeyKey ContextKey = "deviceKey"
)
