package tvmaze

import (
	"context"
)

// UpdateWindow limits update listings to a recent period
type UpdateWindow string

const (
	// UpdatesAll lists every record; it is the zero value
	UpdatesAll   UpdateWindow = ""
	UpdatesDay   UpdateWindow = "day"
	UpdatesWeek  UpdateWindow = "week"
	UpdatesMonth UpdateWindow = "month"
)

func (w UpdateWindow) query() (Query, error) {
	var q Query
	switch w {
	case UpdatesAll:
	case UpdatesDay, UpdatesWeek, UpdatesMonth:
		q.Add("since", string(w))
	default:
		return q, invalidArgument("unknown update window %q", string(w))
	}
	return q, nil
}

// GetShowUpdates maps show ids to the unix time of their last update
func (c *Client) GetShowUpdates(ctx context.Context, since UpdateWindow) (map[int]int64, error) {
	q, err := since.query()
	if err != nil {
		return nil, err
	}
	return get[map[int]int64](ctx, c, "updates.shows", "/updates/shows", q)
}

// GetPersonUpdates maps person ids to the unix time of their last update
func (c *Client) GetPersonUpdates(ctx context.Context, since UpdateWindow) (map[int]int64, error) {
	q, err := since.query()
	if err != nil {
		return nil, err
	}
	return get[map[int]int64](ctx, c, "updates.people", "/updates/people", q)
}
