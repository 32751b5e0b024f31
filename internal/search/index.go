package search

import (
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/Audacity88/chatcache/internal/domain/model"
	"github.com/Audacity88/chatcache/internal/metrics"
)

// Index is the in-memory search index over chat entities.
//
// Indexing is an idempotent upsert: re-indexing an id replaces its prior
// projection entirely. Items never expire; they are only replaced or
// explicitly removed. All methods are safe for concurrent use.
type Index struct {
	mu    sync.Mutex
	items map[string]*Item
}

// NewIndex creates an empty search index.
func NewIndex() *Index {
	return &Index{items: make(map[string]*Item)}
}

// IndexChannel indexes a channel under its id.
func (ix *Index) IndexChannel(ch model.Channel) {
	ix.upsert(&Item{
		ID:      ch.ID,
		Type:    ItemTypeChannel,
		Content: ch.Slug,
		Metadata: map[string]string{
			"slug":       ch.Slug,
			"created_by": ch.CreatedBy,
		},
		Timestamp: ch.InsertedAt,
	})
}

// IndexMessage indexes a channel message or, when the record is marked
// direct, a direct message.
func (ix *Index) IndexMessage(m model.Message) {
	itemType := ItemTypeMessage
	if m.Direct {
		itemType = ItemTypeDirectMessage
	}
	metadata := map[string]string{
		"channel_id":   m.ChannelID,
		"author_id":    m.Author.ID,
		"username":     m.Author.Username,
		"message_type": string(m.Type),
	}
	if m.Author.FullName != "" {
		metadata["full_name"] = m.Author.FullName
	}
	ix.upsert(&Item{
		ID:        m.ID,
		Type:      itemType,
		Content:   m.Content,
		Metadata:  metadata,
		Timestamp: m.Timestamp(),
	})
}

// Remove drops an item from the index. Unknown ids are a no-op.
func (ix *Index) Remove(id string) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	delete(ix.items, id)
	metrics.IndexedItems.Set(float64(len(ix.items)))
}

// RemoveByMetadata drops every item whose metadata field key equals value,
// e.g. all messages of a deleted channel.
func (ix *Index) RemoveByMetadata(key, value string) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	for id, item := range ix.items {
		if item.Metadata[key] == value {
			delete(ix.items, id)
		}
	}
	metrics.IndexedItems.Set(float64(len(ix.items)))
}

// Len returns the number of indexed items.
func (ix *Index) Len() int {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return len(ix.items)
}

// Clear drops every indexed item.
func (ix *Index) Clear() {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.items = make(map[string]*Item)
	metrics.IndexedItems.Set(0)
}

func (ix *Index) upsert(item *Item) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.items[item.ID] = item
	metrics.IndexedItems.Set(float64(len(ix.items)))
}

// Search matches query terms case-insensitively against item content and
// metadata and returns ranked results with per-field highlights.
//
// An empty or whitespace-only query means "no search active": it yields an
// empty result set and no error. Ranking is deterministic: relevance first
// (content matches weigh double), then timestamp descending, then id, so an
// unchanged index always returns the same order for the same query.
func (ix *Index) Search(query string, filter Filter) ([]Result, error) {
	start := time.Now()

	if err := filter.validate(); err != nil {
		metrics.RecordSearch(time.Since(start), "error")
		return nil, err
	}

	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return []Result{}, nil
	}

	ix.mu.Lock()
	candidates := make([]*Item, 0, len(ix.items))
	for _, item := range ix.items {
		if filter.allows(item.Type) {
			candidates = append(candidates, item)
		}
	}
	ix.mu.Unlock()

	type scored struct {
		result Result
		score  int
	}
	var hits []scored
	for _, item := range candidates {
		result, score := matchItem(item, terms)
		if score > 0 {
			hits = append(hits, scored{result: result, score: score})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		if !hits[i].result.Item.Timestamp.Equal(hits[j].result.Item.Timestamp) {
			return hits[i].result.Item.Timestamp.After(hits[j].result.Item.Timestamp)
		}
		return hits[i].result.Item.ID < hits[j].result.Item.ID
	})

	results := make([]Result, len(hits))
	for i, h := range hits {
		results[i] = h.result
	}

	metrics.RecordSearch(time.Since(start), "success")
	return results, nil
}

// matchItem scores one item against the query terms. Every term must match
// at least one field for the item to qualify; the score is the total number
// of occurrences, with content occurrences counted twice.
func matchItem(item *Item, terms []string) (Result, int) {
	fields := searchFields(item)

	score := 0
	highlightsByField := make(map[string][]fieldMatch, len(fields))
	for _, term := range terms {
		termScore := 0
		for _, f := range fields {
			matches := findMatches(f.text, term)
			if len(matches) == 0 {
				continue
			}
			weight := 1
			if f.name == "content" {
				weight = 2
			}
			termScore += weight * len(matches)
			highlightsByField[f.name] = append(highlightsByField[f.name], matches...)
		}
		if termScore == 0 {
			return Result{}, 0
		}
		score += termScore
	}

	result := Result{Item: *item}
	for _, f := range fields {
		matches := highlightsByField[f.name]
		if len(matches) == 0 {
			continue
		}
		sort.Slice(matches, func(i, j int) bool { return matches[i].pos < matches[j].pos })
		literals := make([]string, len(matches))
		for i, m := range matches {
			literals[i] = m.literal
		}
		result.Highlights = append(result.Highlights, FieldHighlight{Field: f.name, Matches: literals})
	}
	return result, score
}

type searchField struct {
	name string
	text string
}

// searchFields lists an item's matchable fields in a stable order: content
// first, then metadata keys sorted alphabetically.
func searchFields(item *Item) []searchField {
	fields := []searchField{{name: "content", text: item.Content}}
	keys := make([]string, 0, len(item.Metadata))
	for k := range item.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fields = append(fields, searchField{name: k, text: item.Metadata[k]})
	}
	return fields
}

type fieldMatch struct {
	pos     int
	literal string
}

// findMatches locates all non-overlapping case-insensitive occurrences of
// term within text, returning the matched substrings with original casing.
// Lowering can change a rune's byte length, so offsets into the lowered
// string are mapped back to the original before slicing.
func findMatches(text, term string) []fieldMatch {
	if term == "" || text == "" {
		return nil
	}
	lower, offsets := foldCase(text)
	var matches []fieldMatch
	start := 0
	for {
		idx := strings.Index(lower[start:], term)
		if idx == -1 {
			break
		}
		from := start + idx
		to := from + len(term)
		origFrom := offsets[from]
		origTo := len(text)
		if to < len(lower) {
			origTo = offsets[to]
		}
		matches = append(matches, fieldMatch{pos: origFrom, literal: text[origFrom:origTo]})
		start = to
	}
	return matches
}

// foldCase lowers text rune by rune and returns, per byte of the lowered
// string, the offset of the original rune that produced it. offsets has one
// entry for every byte of the returned string.
func foldCase(text string) (string, []int) {
	var b strings.Builder
	b.Grow(len(text))
	offsets := make([]int, 0, len(text))
	for i, r := range text {
		lr := unicode.ToLower(r)
		for n := utf8.RuneLen(lr); n > 0; n-- {
			offsets = append(offsets, i)
		}
		b.WriteRune(lr)
	}
	return b.String(), offsets
}
