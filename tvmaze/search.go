package tvmaze

import (
	"context"
	"strconv"
	"strings"
)

// ExternalSource names a third-party id namespace accepted by the lookup endpoint
type ExternalSource string

const (
	SourceIMDb    ExternalSource = "imdb"
	SourceTheTVDB ExternalSource = "thetvdb"
	SourceTVRage  ExternalSource = "tvrage"
)

// ExternalID identifies a show on another service
type ExternalID struct {
	Source ExternalSource
	Value  string
}

// IMDb returns an IMDb id such as "tt0944947"
func IMDb(id string) ExternalID {
	return ExternalID{Source: SourceIMDb, Value: id}
}

// TheTVDB returns a TheTVDB series id
func TheTVDB(id int) ExternalID {
	return ExternalID{Source: SourceTheTVDB, Value: strconv.Itoa(id)}
}

// TVRage returns a TVRage show id
func TVRage(id int) ExternalID {
	return ExternalID{Source: SourceTVRage, Value: strconv.Itoa(id)}
}

func (e ExternalID) validate() error {
	switch e.Source {
	case SourceIMDb, SourceTheTVDB, SourceTVRage:
	default:
		return invalidArgument("unknown external id source %q", e.Source)
	}
	if strings.TrimSpace(e.Value) == "" {
		return invalidArgument("empty %s id", e.Source)
	}
	return nil
}

// SearchShows runs a fuzzy search over show names
func (c *Client) SearchShows(ctx context.Context, query string) ([]ShowSearchResult, error) {
	q, err := searchQuery(query)
	if err != nil {
		return nil, err
	}
	return get[[]ShowSearchResult](ctx, c, "search.shows", "/search/shows", q)
}

// SingleSearchShow returns the single best match for query, or an ErrNotFound API error
func (c *Client) SingleSearchShow(ctx context.Context, query string, embed ...string) (*Show, error) {
	q, err := searchQuery(query)
	if err != nil {
		return nil, err
	}
	if err := q.addEmbed(embed); err != nil {
		return nil, err
	}
	return getOne[Show](ctx, c, "singlesearch.shows", "/singlesearch/shows", q)
}

// LookupShow resolves a show through an IMDb, TheTVDB or TVRage id
func (c *Client) LookupShow(ctx context.Context, id ExternalID) (*Show, error) {
	if err := id.validate(); err != nil {
		return nil, err
	}
	var q Query
	q.Add(string(id.Source), id.Value)
	return getOne[Show](ctx, c, "lookup.shows", "/lookup/shows", q)
}

// SearchPeople runs a fuzzy search over person names
func (c *Client) SearchPeople(ctx context.Context, query string) ([]PersonSearchResult, error) {
	q, err := searchQuery(query)
	if err != nil {
		return nil, err
	}
	return get[[]PersonSearchResult](ctx, c, "search.people", "/search/people", q)
}

func searchQuery(query string) (Query, error) {
	var q Query
	if strings.TrimSpace(query) == "" {
		return q, invalidArgument("empty search query")
	}
	q.Add("q", query)
	return q, nil
}
