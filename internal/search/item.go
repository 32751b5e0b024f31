// Package search provides the in-memory search index over chat entities and
// the debounced query front-end that drives it.
package search

import (
	"fmt"
	"time"
)

// ItemType classifies a searchable item.
type ItemType string

const (
	// ItemTypeChannel is an indexed chat channel.
	ItemTypeChannel ItemType = "channel"
	// ItemTypeMessage is an indexed channel message.
	ItemTypeMessage ItemType = "message"
	// ItemTypeDirectMessage is an indexed direct message.
	ItemTypeDirectMessage ItemType = "direct_message"
)

// ParseItemType validates a raw item type string.
func ParseItemType(s string) (ItemType, error) {
	switch ItemType(s) {
	case ItemTypeChannel, ItemTypeMessage, ItemTypeDirectMessage:
		return ItemType(s), nil
	default:
		return "", &SearchError{Reason: fmt.Sprintf("unknown item type %q", s)}
	}
}

// Item is the normalized, indexed projection of a domain record.
//
// The index owns its items outright; they are copies, never shared with the
// entity caches, so re-indexing never reads cache state.
//
// @Description Searchable projection of a chat entity
type Item struct {
	ID       string            `json:"id"`
	Type     ItemType          `json:"type"`
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata,omitempty"`
	// Timestamp orders equally-relevant results, newest first.
	Timestamp time.Time `json:"timestamp"`
}

// FieldHighlight records the literal matched substrings of one field, in
// text order, with the original casing of the source preserved.
type FieldHighlight struct {
	Field   string   `json:"field"`
	Matches []string `json:"matches"`
}

// Result is one ranked search hit. It is derived per query and never stored.
//
// @Description Single search result with per-field match highlights
type Result struct {
	Item       Item             `json:"item"`
	Highlights []FieldHighlight `json:"highlights"`
}

// Filter restricts a search to a subset of item types. The zero value
// matches every type.
type Filter struct {
	Types []ItemType `json:"types,omitempty"`
}

// allows reports whether the filter admits the given type.
func (f Filter) allows(t ItemType) bool {
	if len(f.Types) == 0 {
		return true
	}
	for _, ft := range f.Types {
		if ft == t {
			return true
		}
	}
	return false
}

// validate rejects filters carrying unknown item types.
func (f Filter) validate() error {
	for _, t := range f.Types {
		if _, err := ParseItemType(string(t)); err != nil {
			return err
		}
	}
	return nil
}

// SearchError reports a failed query execution, e.g. a malformed filter.
type SearchError struct {
	Reason string
}

// Error implements the error interface.
func (e *SearchError) Error() string {
	return "search: " + e.Reason
}
