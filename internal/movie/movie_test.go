package movie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestParseFullDocument(t *testing.T) {
	doc := `{
		"title": "Titanic",
		"year": 1997,
		"description": "A seventeen-year-old aristocrat falls in love.",
		"type": "movie",
		"imdbid": "tt0120338",
		"streams": [{"id": 1, "name": "Netflix"}],
		"keywords": [{"id": 10, "name": "ship"}, {"id": 11, "name": "iceberg"}],
		"apiused": 60
	}`

	m, err := Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "Titanic", m.Title)
	assert.Equal(t, "1997", m.Year)
	assert.Equal(t, "A seventeen-year-old aristocrat falls in love.", m.Description)
	assert.Equal(t, "movie", m.Type)
	assert.Equal(t, "tt0120338", m.IMDbID)
	assert.Equal(t, []Stream{{ID: 1, Name: "Netflix"}}, m.Streams)
	assert.Equal(t, []Keyword{{Name: "ship"}, {Name: "iceberg"}}, m.Keywords)
	require.NotNil(t, m.APIUsed)
	assert.Equal(t, 60, *m.APIUsed)
}

func TestParseMistypedFieldsBecomeAbsent(t *testing.T) {
	doc := `{
		"title": 12,
		"year": "1997",
		"description": null,
		"streams": "none",
		"keywords": [{"name": 5}, "ship", {"name": "iceberg"}],
		"apiused": "50"
	}`

	m, err := Parse([]byte(doc))
	require.NoError(t, err)

	assert.Empty(t, m.Title)
	assert.Equal(t, "1997", m.Year)
	assert.Empty(t, m.Description)
	assert.Nil(t, m.Streams)
	assert.Equal(t, []Keyword{{Name: "iceberg"}}, m.Keywords)
	assert.Nil(t, m.APIUsed)
}

func TestParseMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"title": "Jaws"`))
	require.Error(t, err)

	_, err = Parse([]byte(`["not", "an", "object"]`))
	require.Error(t, err)
}

func TestParseEmptyKeywordsAreAbsent(t *testing.T) {
	m, err := Parse([]byte(`{"title": "Jaws", "keywords": []}`))
	require.NoError(t, err)
	assert.Nil(t, m.Keywords)
}

func TestRemainingAPICalls(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		remaining int
		ok        bool
	}{
		{"within allowance", `{"apiused": 60}`, 40, true},
		{"zero used", `{"apiused": 0}`, 100, true},
		{"last call", `{"apiused": 99}`, 1, true},
		{"exhausted", `{"apiused": 100}`, 0, true},
		{"exceeds allowance", `{"apiused": 120}`, 0, true},
		{"negative", `{"apiused": -1}`, 0, true},
		{"string counter", `{"apiused": "50"}`, 0, false},
		{"fractional counter", `{"apiused": 50.5}`, 0, false},
		{"null counter", `{"apiused": null}`, 0, false},
		{"missing counter", `{}`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse([]byte(tt.doc))
			require.NoError(t, err)

			remaining, ok := m.RemainingAPICalls()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.remaining, remaining)
		})
	}
}

func TestEqual(t *testing.T) {
	base := Movie{
		Title:    "Jaws",
		Year:     "1975",
		Keywords: []Keyword{{Name: "shark"}},
		Streams:  []Stream{{ID: 2, Name: "Prime Video"}},
		APIUsed:  intPtr(3),
	}
	same := Movie{
		Title:    "Jaws",
		Year:     "1975",
		Keywords: []Keyword{{Name: "shark"}},
		Streams:  []Stream{{ID: 2, Name: "Prime Video"}},
		APIUsed:  intPtr(3),
	}

	assert.True(t, base.Equal(same))
	assert.True(t, base.Equal(&same))

	changes := map[string]func(m *Movie){
		"title":       func(m *Movie) { m.Title = "Jaws 2" },
		"year":        func(m *Movie) { m.Year = "1978" },
		"description": func(m *Movie) { m.Description = "A shark." },
		"type":        func(m *Movie) { m.Type = "show" },
		"imdbid":      func(m *Movie) { m.IMDbID = "tt0073195" },
		"keywords":    func(m *Movie) { m.Keywords = []Keyword{{Name: "beach"}} },
		"streams":     func(m *Movie) { m.Streams = nil },
		"apiused":     func(m *Movie) { m.APIUsed = intPtr(4) },
		"apiused nil": func(m *Movie) { m.APIUsed = nil },
	}
	for name, change := range changes {
		t.Run(name, func(t *testing.T) {
			other := same
			change(&other)
			assert.False(t, base.Equal(other))
		})
	}
}

func TestEqualAgainstOtherTypes(t *testing.T) {
	m := Movie{Title: "Jaws"}

	assert.False(t, m.Equal("Jaws"))
	assert.False(t, m.Equal(nil))
	assert.False(t, m.Equal((*Movie)(nil)))
	assert.False(t, m.Equal(map[string]any{"title": "Jaws"}))
}

func TestParsedRecordsCompareEqual(t *testing.T) {
	a, err := Parse([]byte(`{"title": "Jaws"}`))
	require.NoError(t, err)
	b, err := Parse([]byte(`{"title": "Jaws"}`))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(Movie{Title: "Jaws"}))
}
