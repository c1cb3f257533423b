package tvmaze

import (
	"context"
	"fmt"
)

// EpisodeListOptions controls GetShowEpisodes
type EpisodeListOptions struct {
	// Specials includes special episodes in the list
	Specials bool
}

// GetShow fetches a show by its TVMaze id, optionally embedding sub-resources
// such as "episodes", "cast" or "nextepisode".
func (c *Client) GetShow(ctx context.Context, id int, embed ...string) (*Show, error) {
	if err := requireID("show id", id); err != nil {
		return nil, err
	}
	var q Query
	if err := q.addEmbed(embed); err != nil {
		return nil, err
	}
	return getOne[Show](ctx, c, "shows", fmt.Sprintf("/shows/%d", id), q)
}

// GetShowEpisodes lists the episodes of a show in airing order
func (c *Client) GetShowEpisodes(ctx context.Context, id int, opts EpisodeListOptions) ([]Episode, error) {
	if err := requireID("show id", id); err != nil {
		return nil, err
	}
	var q Query
	if opts.Specials {
		q.Add("specials", "1")
	}
	return get[[]Episode](ctx, c, "shows.episodes", fmt.Sprintf("/shows/%d/episodes", id), q)
}

// GetEpisodeByNumber fetches one episode by season and episode number.
// A missing episode is reported as an APIError matching ErrNotFound.
func (c *Client) GetEpisodeByNumber(ctx context.Context, showID, season, number int) (*Episode, error) {
	if err := requireID("show id", showID); err != nil {
		return nil, err
	}
	if season < 0 {
		return nil, invalidArgument("season must not be negative, got %d", season)
	}
	if number <= 0 {
		return nil, invalidArgument("episode number must be positive, got %d", number)
	}
	var q Query
	q.AddInt("season", season)
	q.AddInt("number", number)
	return getOne[Episode](ctx, c, "shows.episodebynumber", fmt.Sprintf("/shows/%d/episodebynumber", showID), q)
}

// GetEpisodesByDate lists the episodes of a show that aired on date.
// No episode on that day is reported as an APIError matching ErrNotFound.
func (c *Client) GetEpisodesByDate(ctx context.Context, showID int, date Date) ([]Episode, error) {
	if err := requireID("show id", showID); err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, invalidArgument("date is required")
	}
	var q Query
	q.AddDate("date", date.Time)
	return get[[]Episode](ctx, c, "shows.episodesbydate", fmt.Sprintf("/shows/%d/episodesbydate", showID), q)
}

// GetShowSeasons lists the seasons of a show in ascending order
func (c *Client) GetShowSeasons(ctx context.Context, id int) ([]Season, error) {
	if err := requireID("show id", id); err != nil {
		return nil, err
	}
	return get[[]Season](ctx, c, "shows.seasons", fmt.Sprintf("/shows/%d/seasons", id), Query{})
}

// GetSeasonEpisodes lists the episodes of a season, specials included
func (c *Client) GetSeasonEpisodes(ctx context.Context, seasonID int) ([]Episode, error) {
	if err := requireID("season id", seasonID); err != nil {
		return nil, err
	}
	return get[[]Episode](ctx, c, "seasons.episodes", fmt.Sprintf("/seasons/%d/episodes", seasonID), Query{})
}

// GetShowCast lists the main cast of a show, most prominent characters first
func (c *Client) GetShowCast(ctx context.Context, id int) ([]CastMember, error) {
	if err := requireID("show id", id); err != nil {
		return nil, err
	}
	return get[[]CastMember](ctx, c, "shows.cast", fmt.Sprintf("/shows/%d/cast", id), Query{})
}

// GetShowCrew lists the main crew of a show
func (c *Client) GetShowCrew(ctx context.Context, id int) ([]CrewMember, error) {
	if err := requireID("show id", id); err != nil {
		return nil, err
	}
	return get[[]CrewMember](ctx, c, "shows.crew", fmt.Sprintf("/shows/%d/crew", id), Query{})
}

// GetShowAliases lists the alternative names of a show
func (c *Client) GetShowAliases(ctx context.Context, id int) ([]Alias, error) {
	if err := requireID("show id", id); err != nil {
		return nil, err
	}
	return get[[]Alias](ctx, c, "shows.akas", fmt.Sprintf("/shows/%d/akas", id), Query{})
}

// GetShowImages lists all images of a show
func (c *Client) GetShowImages(ctx context.Context, id int) ([]ShowImage, error) {
	if err := requireID("show id", id); err != nil {
		return nil, err
	}
	return get[[]ShowImage](ctx, c, "shows.images", fmt.Sprintf("/shows/%d/images", id), Query{})
}

// GetShowIndex lists one page of all shows, up to 250 per page, paged by id.
// Page 0 is treated as page 1. Pages past the end return an APIError matching ErrNotFound.
func (c *Client) GetShowIndex(ctx context.Context, page int) ([]Show, error) {
	q, err := pageQuery(page)
	if err != nil {
		return nil, err
	}
	return get[[]Show](ctx, c, "shows.index", "/shows", q)
}
