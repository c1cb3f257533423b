package tvmaze

import (
	"context"
	"fmt"
)

// GetEpisode fetches an episode by its TVMaze id; embed "show" to include its show
func (c *Client) GetEpisode(ctx context.Context, id int, embed ...string) (*Episode, error) {
	if err := requireID("episode id", id); err != nil {
		return nil, err
	}
	var q Query
	if err := q.addEmbed(embed); err != nil {
		return nil, err
	}
	return getOne[Episode](ctx, c, "episodes", fmt.Sprintf("/episodes/%d", id), q)
}

// GetEpisodeGuestCast lists the guest cast of an episode
func (c *Client) GetEpisodeGuestCast(ctx context.Context, id int) ([]CastMember, error) {
	if err := requireID("episode id", id); err != nil {
		return nil, err
	}
	return get[[]CastMember](ctx, c, "episodes.guestcast", fmt.Sprintf("/episodes/%d/guestcast", id), Query{})
}

// GetEpisodeGuestCrew lists the guest crew of an episode
func (c *Client) GetEpisodeGuestCrew(ctx context.Context, id int) ([]CrewMember, error) {
	if err := requireID("episode id", id); err != nil {
		return nil, err
	}
	return get[[]CrewMember](ctx, c, "episodes.guestcrew", fmt.Sprintf("/episodes/%d/guestcrew", id), Query{})
}
