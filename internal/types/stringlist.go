// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"strings"
)

// StringOrList holds a value that callers may supply either as a JSON array
// of strings or as a single pre-joined display string. The two shapes are
// resolved once at unmarshal time so downstream code never re-checks which
// form the caller used.
type StringOrList struct {
	items  []string
	joined string
	isList bool
}

// NewStringList builds a StringOrList from individual items.
func NewStringList(items ...string) StringOrList {
	return StringOrList{items: items, isList: true}
}

// NewJoinedString builds a StringOrList from an already-joined display string.
func NewJoinedString(s string) StringOrList {
	return StringOrList{joined: s}
}

// IsZero reports whether the value is absent (no items and no joined string).
func (s StringOrList) IsZero() bool {
	return !s.isList && s.joined == ""
}

// IsList reports whether the value arrived as a sequence.
func (s StringOrList) IsList() bool {
	return s.isList
}

// Items returns a copy of the underlying items. For a pre-joined string the
// result is empty; use Display instead.
func (s StringOrList) Items() []string {
	if len(s.items) == 0 {
		return nil
	}
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Display returns the render-ready string: a sequence is joined with sep,
// a pre-joined string passes through unchanged.
func (s StringOrList) Display(sep string) string {
	if s.isList {
		return strings.Join(s.items, sep)
	}
	return s.joined
}

// Clone returns a deep copy that shares no memory with the receiver.
func (s StringOrList) Clone() StringOrList {
	out := StringOrList{joined: s.joined, isList: s.isList}
	if s.items != nil {
		out.items = make([]string, len(s.items))
		copy(out.items, s.items)
	}
	return out
}

// UnmarshalJSON accepts either a JSON array of strings or a single string.
// Any other shape is an error so that untyped data never crosses the boundary.
func (s *StringOrList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*s = StringOrList{}
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*s = StringOrList{items: items, isList: true}
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	*s = StringOrList{joined: joined}
	return nil
}

// MarshalJSON emits the same shape the value arrived in.
func (s StringOrList) MarshalJSON() ([]byte, error) {
	if s.isList {
		return json.Marshal(s.items)
	}
	return json.Marshal(s.joined)
}
