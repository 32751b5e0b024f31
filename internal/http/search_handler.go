package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Audacity88/chatcache/internal/domain/dto"
	"github.com/Audacity88/chatcache/internal/i18n"
	"github.com/Audacity88/chatcache/internal/search"
)

// SearchHandler provides the HTTP handler for free-text search.
type SearchHandler struct {
	searcher search.Searcher
}

// NewSearchHandler creates a new SearchHandler over searcher.
func NewSearchHandler(searcher search.Searcher) *SearchHandler {
	return &SearchHandler{searcher: searcher}
}

// Search handles GET /api/search requests.
//
// @Summary      Search chat content
// @Description  Matches query terms case-insensitively against indexed channels and messages and returns ranked results with per-field highlights. An empty query yields an empty result set.
// @Tags         Search
// @Produce      json
// @Param        q query string false "Free-text query"
// @Param        types query string false "Comma-separated result types (channel, message, direct_message)"
// @Success      200 {object} dto.SuccessResponse "Ranked search results"
// @Failure      400 {object} dto.ErrorResponse "Unsupported result type filter"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	filter := search.Filter{}
	for _, raw := range req.TypeList() {
		itemType, err := search.ParseItemType(raw)
		if err != nil {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidSearchFilter, err)
			return
		}
		filter.Types = append(filter.Types, itemType)
	}

	results, err := h.searcher.Search(req.Query, filter)
	if err != nil {
		var searchErr *search.SearchError
		if errors.As(err, &searchErr) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidSearchFilter, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if results == nil {
		results = []search.Result{}
	}

	builder.SuccessOK(results)
}
