// Package movie builds movie records from provider JSON documents.
package movie

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
)

// MaxAPICalls is the provider's daily request allowance.
const MaxAPICalls = 100

// Keyword is one provider keyword.
type Keyword struct {
	Name string `json:"name"`
}

// Stream is one streaming service offering the movie.
type Stream struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Movie is the displayable part of one provider response. Empty strings and
// nil slices mean the field was absent or had the wrong type.
type Movie struct {
	Title       string
	Year        string
	Description string
	Type        string
	IMDbID      string
	Streams     []Stream
	Keywords    []Keyword
	// APIUsed is nil unless the document carried an integer counter
	APIUsed *int
}

// Parse builds a Movie from a JSON document. Only malformed JSON is an
// error; missing or mistyped fields are left empty.
func Parse(data []byte) (Movie, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Movie{}, fmt.Errorf("failed to parse movie details: %w", err)
	}

	m := Movie{
		Title:       stringField(fields, "title"),
		Year:        textField(fields, "year"),
		Description: stringField(fields, "description"),
		Type:        stringField(fields, "type"),
		IMDbID:      stringField(fields, "imdbid"),
		Streams:     streamsField(fields),
		Keywords:    keywordsField(fields),
	}

	var used int
	if raw, ok := fields["apiused"]; ok && json.Unmarshal(raw, &used) == nil && string(raw) != "null" {
		m.APIUsed = &used
	}

	return m, nil
}

// RemainingAPICalls returns how many provider calls are left today.
// ok is false when the document had no integer usage counter.
func (m Movie) RemainingAPICalls() (remaining int, ok bool) {
	if m.APIUsed == nil {
		return 0, false
	}
	used := *m.APIUsed
	if used < 0 || used >= MaxAPICalls {
		return 0, true
	}
	return MaxAPICalls - used, true
}

// Equal reports whether other is a Movie with identical fields.
func (m Movie) Equal(other any) bool {
	var o Movie
	switch v := other.(type) {
	case Movie:
		o = v
	case *Movie:
		if v == nil {
			return false
		}
		o = *v
	default:
		return false
	}

	if m.Title != o.Title || m.Year != o.Year || m.Description != o.Description ||
		m.Type != o.Type || m.IMDbID != o.IMDbID {
		return false
	}
	if (m.APIUsed == nil) != (o.APIUsed == nil) || (m.APIUsed != nil && *m.APIUsed != *o.APIUsed) {
		return false
	}
	return slices.Equal(m.Streams, o.Streams) && slices.Equal(m.Keywords, o.Keywords)
}

func stringField(fields map[string]json.RawMessage, key string) string {
	var s string
	if raw, ok := fields[key]; ok {
		_ = json.Unmarshal(raw, &s)
	}
	return s
}

// textField accepts strings and numbers, rendering numbers as text.
func textField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	var n json.Number
	if json.Unmarshal(raw, &n) == nil {
		if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
			return strconv.FormatInt(i, 10)
		}
		return n.String()
	}
	return ""
}

func keywordsField(fields map[string]json.RawMessage) []Keyword {
	var items []json.RawMessage
	if raw, ok := fields["keywords"]; !ok || json.Unmarshal(raw, &items) != nil {
		return nil
	}

	keywords := make([]Keyword, 0, len(items))
	for _, item := range items {
		var kw struct {
			Name *string `json:"name"`
		}
		if json.Unmarshal(item, &kw) != nil || kw.Name == nil {
			continue
		}
		keywords = append(keywords, Keyword{Name: *kw.Name})
	}
	if len(keywords) == 0 {
		return nil
	}
	return keywords
}

func streamsField(fields map[string]json.RawMessage) []Stream {
	var items []json.RawMessage
	if raw, ok := fields["streams"]; !ok || json.Unmarshal(raw, &items) != nil {
		return nil
	}

	streams := make([]Stream, 0, len(items))
	for _, item := range items {
		var s Stream
		if json.Unmarshal(item, &s) != nil {
			continue
		}
		streams = append(streams, s)
	}
	if len(streams) == 0 {
		return nil
	}
	return streams
}
