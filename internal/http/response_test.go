package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Audacity88/chatcache/internal/domain/dto"
	"github.com/Audacity88/chatcache/internal/domain/model"
	"github.com/Audacity88/chatcache/internal/i18n"
	"github.com/Audacity88/chatcache/internal/middleware"
)

func newBuilderContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	middleware.RequestID()(c)
	return c, w
}

func TestResponseBuilder_Success(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		data       interface{}
		validate   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:       "SuccessOK with channel",
			statusCode: http.StatusOK,
			data:       model.Channel{ID: "c1", Slug: "general", CreatedBy: "u1"},
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)
				assert.Equal(t, http.StatusOK, w.Code)
				assert.NotEmpty(t, resp.RequestID)
				assert.NotZero(t, resp.Timestamp)
				assert.NotNil(t, resp.Data)
			},
		},
		{
			name:       "Success with custom status",
			statusCode: http.StatusCreated,
			data:       map[string]string{"message": "created"},
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)
				assert.Equal(t, http.StatusCreated, w.Code)
				assert.NotEmpty(t, resp.RequestID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newBuilderContext(t)

			builder := NewResponseBuilder(c)
			builder.Success(tt.statusCode, tt.data)

			if tt.validate != nil {
				tt.validate(t, w)
			}
		})
	}
}

func TestResponseBuilder_Error(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		messageKey string
		wantCode   string
	}{
		{
			name:       "not found",
			statusCode: http.StatusNotFound,
			messageKey: i18n.ErrKeyNotFound,
			wantCode:   dto.ErrCodeNotFound,
		},
		{
			name:       "bad request",
			statusCode: http.StatusBadRequest,
			messageKey: i18n.ErrKeyInvalidRequest,
			wantCode:   dto.ErrCodeInvalidRequest,
		},
		{
			name:       "internal error",
			statusCode: http.StatusInternalServerError,
			messageKey: i18n.ErrKeyInternalError,
			wantCode:   dto.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newBuilderContext(t)

			builder := NewResponseBuilder(c)
			builder.Error(tt.statusCode, tt.messageKey, nil)

			var resp dto.ErrorResponse
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)
			assert.Equal(t, tt.statusCode, w.Code)
			assert.Equal(t, tt.wantCode, resp.Error)
			assert.NotEmpty(t, resp.Message)
			assert.NotEmpty(t, resp.RequestID)
			assert.True(t, c.IsAborted())
		})
	}
}

func TestResponseBuilder_ErrorWithMessage(t *testing.T) {
	c, w := newBuilderContext(t)

	builder := NewResponseBuilder(c)
	builder.ErrorWithMessage(http.StatusBadRequest, "custom message", nil)

	var resp dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "custom message", resp.Message)
	assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
}
