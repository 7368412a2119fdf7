package imdbapi

// SearchResult is one entry of a title search.
type SearchResult struct {
	ID          string `json:"id"`
	ResultType  string `json:"resultType"`
	Image       string `json:"image"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SearchResponse is the SearchTitle payload.
type SearchResponse struct {
	SearchType   string         `json:"searchType"`
	Expression   string         `json:"expression"`
	Results      []SearchResult `json:"results"`
	ErrorMessage string         `json:"errorMessage"`
}

func (r *SearchResponse) apiError() string { return r.ErrorMessage }

// ExternalSite is a link to a title on another site.
type ExternalSite struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// ExternalSites lists the sites a title is known on. Entries are nil when
// the site has no page for the title.
type ExternalSites struct {
	IMDbID       string        `json:"imDbId"`
	Title        string        `json:"title"`
	FullTitle    string        `json:"fullTitle"`
	Type         string        `json:"type"`
	Year         string        `json:"year"`
	Netflix      *ExternalSite `json:"netflix"`
	AmazonPrime  *ExternalSite `json:"amazonPrime"`
	Disney       *ExternalSite `json:"disney"`
	ErrorMessage string        `json:"errorMessage"`
}

func (r *ExternalSites) apiError() string { return r.ErrorMessage }

// AdvancedSearchResult is one entry of an advanced search.
type AdvancedSearchResult struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AdvancedSearchResponse is the AdvancedSearch payload.
type AdvancedSearchResponse struct {
	Queries      string                 `json:"queries"`
	Results      []AdvancedSearchResult `json:"results"`
	ErrorMessage string                 `json:"errorMessage"`
}

func (r *AdvancedSearchResponse) apiError() string { return r.ErrorMessage }

// Contains reports whether a result has the given IMDb identifier.
func (r *AdvancedSearchResponse) Contains(id string) bool {
	for _, result := range r.Results {
		if result.ID == id {
			return true
		}
	}
	return false
}

type apiResponse interface {
	apiError() string
}
