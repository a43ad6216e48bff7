// internal/handlers/mastery_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go_5_lesson_progress/internal/handlers"
	"go_5_lesson_progress/internal/middleware"
	"go_5_lesson_progress/internal/model"
	"go_5_lesson_progress/internal/service/mocks"
)

func newMasteryRouter(mockService *mocks.MockMasteryService) *chi.Mux {
	handler := handlers.NewMasteryHandler(mockService, nil)
	router := chi.NewRouter()
	router.Use(middleware.DevIdentityMiddleware)
	router.Put("/api/v1/mastery/{vocab_id}", handler.PutMastery)
	return router
}

func boolPtr(b bool) *bool { return &b }

func TestMasteryHandler_PutMastery(t *testing.T) {
	vocabID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name           string
		path           string
		userID         *uuid.UUID
		deviceKey      string
		body           interface{}
		setupMock      func(mockService *mocks.MockMasteryService)
		expectedStatus int
	}{
		{
			name:      "正常系: ゲストの習得状態を設定",
			path:      "/api/v1/mastery/" + vocabID.String(),
			deviceKey: "device-1",
			body:      model.SetMasteryRequest{Mastered: boolPtr(true)},
			setupMock: func(mockService *mocks.MockMasteryService) {
				mockService.On("SetMastered", mock.Anything, (*uuid.UUID)(nil), "device-1", vocabID, true).
					Return(&model.MasteryResponse{VocabID: vocabID, Mastered: true}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "正常系: サインイン済みの習得状態を解除",
			path:   "/api/v1/mastery/" + vocabID.String(),
			userID: &userID,
			body:   model.SetMasteryRequest{Mastered: boolPtr(false)},
			setupMock: func(mockService *mocks.MockMasteryService) {
				mockService.On("SetMastered", mock.Anything, &userID, "", vocabID, false).
					Return(&model.MasteryResponse{VocabID: vocabID, Mastered: false}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: vocab_idの形式不正",
			path:           "/api/v1/mastery/not-a-uuid",
			deviceKey:      "device-1",
			body:           model.SetMasteryRequest{Mastered: boolPtr(true)},
			setupMock:      func(mockService *mocks.MockMasteryService) { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "異常系: masteredフィールドなし",
			path:           "/api/v1/mastery/" + vocabID.String(),
			deviceKey:      "device-1",
			body:           map[string]interface{}{},
			setupMock:      func(mockService *mocks.MockMasteryService) { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:      "異常系: バックエンド無効のサインイン済み書き込みは503",
			path:      "/api/v1/mastery/" + vocabID.String(),
			userID:    &userID,
			body:      model.SetMasteryRequest{Mastered: boolPtr(true)},
			setupMock: func(mockService *mocks.MockMasteryService) {
				mockService.On("SetMastered", mock.Anything, &userID, "", vocabID, true).
					Return(nil, model.NewAppError("BACKEND_DISABLED", "バックエンドが構成されていないため保存できません。", "", model.ErrBackendDisabled)).Once()
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockMasteryService(t)
			tt.setupMock(mockService)

			req := createRequest(t, "PUT", tt.path, tt.body, tt.userID, tt.deviceKey)
			rr := httptest.NewRecorder()
			newMasteryRouter(mockService).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp model.MasteryResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, vocabID, resp.VocabID)
			} else {
				var errResp model.APIErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
				assert.NotEmpty(t, errResp.Error.Code)
			}
		})
	}
}
