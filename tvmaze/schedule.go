package tvmaze

import (
	"context"
	"time"
)

// DefaultCountry is used by GetSchedule when no country is given
const DefaultCountry = "US"

// ScheduleOptions selects the day and country of the broadcast schedule
type ScheduleOptions struct {
	// Country is an ISO 3166-1 code; empty means DefaultCountry
	Country string
	// Date is the day to list; zero means today (in the country's time zone, decided by TVMaze)
	Date time.Time
}

// StreamingScheduleOptions selects the day and country of the streaming schedule
type StreamingScheduleOptions struct {
	// Date is the day to list; zero means today
	Date time.Time
	// Country filters web channels: nil lists local and global channels,
	// CountryCode("") lists global channels only, a code lists that country only.
	Country *string
}

// CountryCode returns a pointer to code for StreamingScheduleOptions.Country
func CountryCode(code string) *string {
	return &code
}

// GetSchedule lists the episodes airing on broadcast networks on one day
func (c *Client) GetSchedule(ctx context.Context, opts ScheduleOptions) ([]ScheduleEntry, error) {
	var q Query
	country := opts.Country
	if country == "" {
		country = DefaultCountry
	}
	q.Add("country", country)
	if !opts.Date.IsZero() {
		q.AddDate("date", opts.Date)
	}
	return get[[]ScheduleEntry](ctx, c, "schedule", "/schedule", q)
}

// GetStreamingSchedule lists the episodes released on web channels on one day
func (c *Client) GetStreamingSchedule(ctx context.Context, opts StreamingScheduleOptions) ([]ScheduleEntry, error) {
	var q Query
	if !opts.Date.IsZero() {
		q.AddDate("date", opts.Date)
	}
	if opts.Country != nil {
		q.Add("country", *opts.Country)
	}
	return get[[]ScheduleEntry](ctx, c, "schedule.web", "/schedule/web", q)
}

// GetFullSchedule lists every future episode known to TVMaze. The response is
// large and refreshed by TVMaze once a day; callers wanting to cache it must do so themselves.
func (c *Client) GetFullSchedule(ctx context.Context) ([]ScheduleEntry, error) {
	return get[[]ScheduleEntry](ctx, c, "schedule.full", "/schedule/full", Query{})
}
