// internal/handlers/helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// createRequest はアイデンティティヘッダー付きのテストリクエストを作ります。
// userID があればサインイン済み (X-User-ID)、なければゲスト (X-Device-ID) です。
// DevIdentityMiddleware と組み合わせて使います。
func createRequest(t *testing.T, method, path string, body interface{}, userID *uuid.UUID, deviceKey string) *http.Request {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	if userID != nil {
		req.Header.Set("X-User-ID", userID.String())
	} else if deviceKey != "" {
		req.Header.Set("X-Device-ID", deviceKey)
	}
	return req
}
