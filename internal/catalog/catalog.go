// Package catalog holds the quiz catalog of movies and localized titles.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var builtin []byte

// ErrEmptyCatalog is returned when a catalog has no entries.
var ErrEmptyCatalog = errors.New("catalog has no movies")

// Entry pairs a display title with its external identifier.
type Entry struct {
	Title string
	ID    string
}

// Catalog is an immutable list of entries sorted by title.
type Catalog struct {
	entries []Entry
}

// Dictionary maps English titles to a localized title.
type Dictionary map[string]string

// Lookup returns the localized title and whether the dictionary lists it.
func (d Dictionary) Lookup(title string) (string, bool) {
	localized, ok := d[title]
	return localized, ok
}

// Data is the parsed catalog file.
type Data struct {
	Catalog *Catalog
	// Titles holds one dictionary per language code
	Titles map[string]Dictionary
}

type fileFormat struct {
	Movies map[string]string     `yaml:"movies"`
	Titles map[string]Dictionary `yaml:"titles"`
}

// New builds a catalog from a title to identifier mapping.
func New(movies map[string]string) (*Catalog, error) {
	if len(movies) == 0 {
		return nil, ErrEmptyCatalog
	}

	entries := make([]Entry, 0, len(movies))
	for title, id := range movies {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("movie %q has no identifier", title)
		}
		entries = append(entries, Entry{Title: title, ID: id})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Title < entries[j].Title })

	return &Catalog{entries: entries}, nil
}

// PickID returns one identifier chosen uniformly at random.
func (c *Catalog) PickID(r *rand.Rand) string {
	return c.entries[r.IntN(len(c.entries))].ID
}

// Entries returns a copy of the entries in title order.
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Data, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	cat, err := New(f.Movies)
	if err != nil {
		return nil, err
	}

	titles := f.Titles
	if titles == nil {
		titles = map[string]Dictionary{}
	}
	return &Data{Catalog: cat, Titles: titles}, nil
}

// Builtin returns the catalog shipped with the binary.
func Builtin() *Data {
	data, err := Parse(builtin)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return data
}

// Load returns the built-in catalog, or the catalog at path when path is set.
// A file without a titles section keeps the built-in dictionaries.
func Load(path string) (*Data, error) {
	data := Builtin()
	if path == "" {
		return data, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	custom, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	for lang, dict := range data.Titles {
		if _, ok := custom.Titles[lang]; !ok {
			custom.Titles[lang] = dict
		}
	}
	return custom, nil
}
