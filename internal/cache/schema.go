package cache

import "fmt"

// Table names. All cache tables use "cache_key" as the primary key column.
const (
	// TranslationTable stores machine translations keyed by target language and text
	TranslationTable = "translation_cache"
	// IMDbAPITable stores imdb-api.com lookup responses
	IMDbAPITable = "imdbapi_cache"
)

func keyValueSchema(tableName string) string {
	return fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %[1]s (
	cache_key TEXT PRIMARY KEY NOT NULL,
	data TEXT NOT NULL,
	cached_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_%[1]s_cached_at ON %[1]s(cached_at);
`, tableName)
}

// AllCacheSchemas contains all cache table schemas for easy initialization
var AllCacheSchemas = []string{
	keyValueSchema(TranslationTable),
	keyValueSchema(IMDbAPITable),
}

// ValidCacheTableNames is the whitelist of allowed cache table names
// Used to prevent SQL injection when interpolating table names
var ValidCacheTableNames = map[string]bool{
	TranslationTable: true,
	IMDbAPITable:     true,
}

// SourceTables maps the source names accepted on the command line to tables
var SourceTables = map[string]string{
	"translation": TranslationTable,
	"imdbapi":     IMDbAPITable,
}
