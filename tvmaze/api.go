package tvmaze

import (
	"context"
)

// API defines the TVMaze operations offered by Client
type API interface {
	// Search
	SearchShows(ctx context.Context, query string) ([]ShowSearchResult, error)
	SingleSearchShow(ctx context.Context, query string, embed ...string) (*Show, error)
	LookupShow(ctx context.Context, id ExternalID) (*Show, error)
	SearchPeople(ctx context.Context, query string) ([]PersonSearchResult, error)

	// Schedule
	GetSchedule(ctx context.Context, opts ScheduleOptions) ([]ScheduleEntry, error)
	GetStreamingSchedule(ctx context.Context, opts StreamingScheduleOptions) ([]ScheduleEntry, error)
	GetFullSchedule(ctx context.Context) ([]ScheduleEntry, error)

	// Shows
	GetShow(ctx context.Context, id int, embed ...string) (*Show, error)
	GetShowEpisodes(ctx context.Context, id int, opts EpisodeListOptions) ([]Episode, error)
	GetEpisodeByNumber(ctx context.Context, showID, season, number int) (*Episode, error)
	GetEpisodesByDate(ctx context.Context, showID int, date Date) ([]Episode, error)
	GetShowSeasons(ctx context.Context, id int) ([]Season, error)
	GetSeasonEpisodes(ctx context.Context, seasonID int) ([]Episode, error)
	GetShowCast(ctx context.Context, id int) ([]CastMember, error)
	GetShowCrew(ctx context.Context, id int) ([]CrewMember, error)
	GetShowAliases(ctx context.Context, id int) ([]Alias, error)
	GetShowImages(ctx context.Context, id int) ([]ShowImage, error)
	GetShowIndex(ctx context.Context, page int) ([]Show, error)

	// Episodes
	GetEpisode(ctx context.Context, id int, embed ...string) (*Episode, error)
	GetEpisodeGuestCast(ctx context.Context, id int) ([]CastMember, error)
	GetEpisodeGuestCrew(ctx context.Context, id int) ([]CrewMember, error)

	// People
	GetPerson(ctx context.Context, id int, embed ...string) (*Person, error)
	GetPersonCastCredits(ctx context.Context, id int, embed ...string) ([]CastCredit, error)
	GetPersonGuestCastCredits(ctx context.Context, id int, embed ...string) ([]CastCredit, error)
	GetPersonCrewCredits(ctx context.Context, id int, embed ...string) ([]CrewCredit, error)
	GetPersonIndex(ctx context.Context, page int) ([]Person, error)

	// Updates
	GetShowUpdates(ctx context.Context, since UpdateWindow) (map[int]int64, error)
	GetPersonUpdates(ctx context.Context, since UpdateWindow) (map[int]int64, error)
}

var _ API = (*Client)(nil)
