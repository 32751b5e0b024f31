//go:build !integration

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Audacity88/chatcache/internal/domain/dto"
	"github.com/Audacity88/chatcache/internal/domain/model"
	"github.com/Audacity88/chatcache/internal/middleware"
	"github.com/Audacity88/chatcache/internal/search"
)

func newSearchTestRouter(index *search.Index) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/api/search", NewSearchHandler(index).Search)
	return router
}

func populatedIndex(t *testing.T) *search.Index {
	t.Helper()

	index := search.NewIndex()
	index.IndexChannel(model.Channel{
		ID:         "c1",
		Slug:       "release-planning",
		CreatedBy:  "u1",
		InsertedAt: time.Now().Add(-time.Hour),
	})
	index.IndexMessage(model.Message{
		ID:         "m1",
		ChannelID:  "c1",
		Content:    "release notes draft",
		Type:       model.MessageTypeText,
		Author:     model.User{ID: "u1", Username: "grace"},
		InsertedAt: time.Now(),
	})
	return index
}

func TestSearchHandler_Search(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		expectedStatus int
		expectedIDs    []string
	}{
		{
			name:           "matches channels and messages",
			url:            "/api/search?q=release",
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{"m1", "c1"},
		},
		{
			name:           "type filter narrows results",
			url:            "/api/search?q=release&types=message",
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{"m1"},
		},
		{
			name:           "empty query returns empty results",
			url:            "/api/search?q=",
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{},
		},
		{
			name:           "unknown type filter is rejected",
			url:            "/api/search?q=release&types=bogus",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newSearchTestRouter(populatedIndex(t))

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.Error)
				return
			}

			var resp struct {
				Data []search.Result `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

			ids := make([]string, 0, len(resp.Data))
			for _, result := range resp.Data {
				ids = append(ids, result.Item.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestSearchHandler_SearchHighlights(t *testing.T) {
	router := newSearchTestRouter(populatedIndex(t))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search?q=draft&types=message", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []search.Result `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	require.NotEmpty(t, resp.Data[0].Highlights)
	assert.Equal(t, "content", resp.Data[0].Highlights[0].Field)
	assert.Contains(t, resp.Data[0].Highlights[0].Matches, "draft")
}
