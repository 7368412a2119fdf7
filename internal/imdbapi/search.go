package imdbapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
)

// ErrNoResults is returned when a title search matches nothing.
var ErrNoResults = errors.New("no results")

// SearchTitle searches titles matching query.
func (c *Client) SearchTitle(ctx context.Context, query string) ([]SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("empty search query")
	}

	endpoint := fmt.Sprintf("%s/en/API/SearchTitle/%s/%s", c.baseURL, url.PathEscape(c.apiKey), url.PathEscape(query))
	resp, err := fetch(c, "search|"+strings.ToLower(query), func() (*SearchResponse, error) {
		var out SearchResponse
		if err := c.getJSON(ctx, endpoint, &out); err != nil {
			return nil, err
		}
		return &out, nil
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("imdb-api title search", "query", query, "results", len(resp.Results))
	if len(resp.Results) == 0 {
		return nil, ErrNoResults
	}
	return resp.Results, nil
}

// ExternalSites returns the external site links of a title.
func (c *Client) ExternalSites(ctx context.Context, id string) (*ExternalSites, error) {
	if id == "" {
		return nil, fmt.Errorf("empty IMDb ID")
	}

	endpoint := fmt.Sprintf("%s/de/API/ExternalSites/%s/%s", c.baseURL, url.PathEscape(c.apiKey), url.PathEscape(id))
	return fetch(c, "external|"+id, func() (*ExternalSites, error) {
		var out ExternalSites
		if err := c.getJSON(ctx, endpoint, &out); err != nil {
			return nil, err
		}
		return &out, nil
	})
}

// AdvancedSearch searches titles named title that are available through
// the given online_availability filter.
func (c *Client) AdvancedSearch(ctx context.Context, title, availability string) (*AdvancedSearchResponse, error) {
	params := url.Values{}
	params.Set("title", title)
	params.Set("online_availability", availability)
	endpoint := fmt.Sprintf("%s/API/AdvancedSearch/%s?%s", c.baseURL, url.PathEscape(c.apiKey), params.Encode())

	return fetch(c, "advanced|"+availability+"|"+strings.ToLower(title), func() (*AdvancedSearchResponse, error) {
		var out AdvancedSearchResponse
		if err := c.getJSON(ctx, endpoint, &out); err != nil {
			return nil, err
		}
		return &out, nil
	})
}

func fetch[T any](c *Client, cacheKey string, fetcher func() (*T, error)) (*T, error) {
	if !c.useCache {
		return fetcher()
	}
	data, _, err := getCached(cacheKey, fetcher)
	return data, err
}
