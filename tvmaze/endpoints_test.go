package tvmaze

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointRequests(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		body      string
		call      func(c *Client) error
		wantPath  string
		wantQuery string
	}{
		{
			name:      "search shows",
			body:      `[]`,
			call:      func(c *Client) error { _, err := c.SearchShows(ctx, "girls"); return err },
			wantPath:  "/search/shows",
			wantQuery: "q=girls",
		},
		{
			name:      "search shows escapes the query",
			body:      `[]`,
			call:      func(c *Client) error { _, err := c.SearchShows(ctx, "the office"); return err },
			wantPath:  "/search/shows",
			wantQuery: "q=the+office",
		},
		{
			name:      "single search",
			body:      `{}`,
			call:      func(c *Client) error { _, err := c.SingleSearchShow(ctx, "girls"); return err },
			wantPath:  "/singlesearch/shows",
			wantQuery: "q=girls",
		},
		{
			name:      "single search with embed",
			body:      `{}`,
			call:      func(c *Client) error { _, err := c.SingleSearchShow(ctx, "girls", "episodes"); return err },
			wantPath:  "/singlesearch/shows",
			wantQuery: "q=girls&embed=episodes",
		},
		{
			name:      "lookup imdb",
			body:      `{}`,
			call:      func(c *Client) error { _, err := c.LookupShow(ctx, IMDb("tt0944947")); return err },
			wantPath:  "/lookup/shows",
			wantQuery: "imdb=tt0944947",
		},
		{
			name:      "lookup thetvdb",
			body:      `{}`,
			call:      func(c *Client) error { _, err := c.LookupShow(ctx, TheTVDB(81189)); return err },
			wantPath:  "/lookup/shows",
			wantQuery: "thetvdb=81189",
		},
		{
			name:      "lookup tvrage",
			body:      `{}`,
			call:      func(c *Client) error { _, err := c.LookupShow(ctx, TVRage(24493)); return err },
			wantPath:  "/lookup/shows",
			wantQuery: "tvrage=24493",
		},
		{
			name:      "search people",
			body:      `[]`,
			call:      func(c *Client) error { _, err := c.SearchPeople(ctx, "lauren"); return err },
			wantPath:  "/search/people",
			wantQuery: "q=lauren",
		},
		{
			name:      "schedule defaults to US",
			body:      `[]`,
			call:      func(c *Client) error { _, err := c.GetSchedule(ctx, ScheduleOptions{}); return err },
			wantPath:  "/schedule",
			wantQuery: "country=US",
		},
		{
			name: "schedule with country and date",
			body: `[]`,
			call: func(c *Client) error {
				_, err := c.GetSchedule(ctx, ScheduleOptions{Country: "GB", Date: day})
				return err
			},
			wantPath:  "/schedule",
			wantQuery: "country=GB&date=2024-01-15",
		},
		{
			name:      "streaming schedule without country",
			body:      `[]`,
			call:      func(c *Client) error { _, err := c.GetStreamingSchedule(ctx, StreamingScheduleOptions{}); return err },
			wantPath:  "/schedule/web",
			wantQuery: "",
		},
		{
			name: "streaming schedule global only",
			body: `[]`,
			call: func(c *Client) error {
				_, err := c.GetStreamingSchedule(ctx, StreamingScheduleOptions{Country: CountryCode("")})
				return err
			},
			wantPath:  "/schedule/web",
			wantQuery: "country=",
		},
		{
			name: "streaming schedule local only",
			body: `[]`,
			call: func(c *Client) error {
				_, err := c.GetStreamingSchedule(ctx, StreamingScheduleOptions{Country: CountryCode("GB")})
				return err
			},
			wantPath:  "/schedule/web",
			wantQuery: "country=GB",
		},
		{
			name: "streaming schedule with date",
			body: `[]`,
			call: func(c *Client) error {
				_, err := c.GetStreamingSchedule(ctx, StreamingScheduleOptions{Date: day, Country: CountryCode("GB")})
				return err
			},
			wantPath:  "/schedule/web",
			wantQuery: "date=2024-01-15&country=GB",
		},
		{
			name:     "full schedule",
			body:     `[]`,
			call:     func(c *Client) error { _, err := c.GetFullSchedule(ctx); return err },
			wantPath: "/schedule/full",
		},
		{
			name:     "show",
			body:     `{}`,
			call:     func(c *Client) error { _, err := c.GetShow(ctx, 82); return err },
			wantPath: "/shows/82",
		},
		{
			name:      "show with one embed",
			body:      `{}`,
			call:      func(c *Client) error { _, err := c.GetShow(ctx, 82, "cast"); return err },
			wantPath:  "/shows/82",
			wantQuery: "embed=cast",
		},
		{
			name:      "show with several embeds",
			body:      `{}`,
			call:      func(c *Client) error { _, err := c.GetShow(ctx, 82, "episodes", "cast"); return err },
			wantPath:  "/shows/82",
			wantQuery: "embed[]=episodes&embed[]=cast",
		},
		{
			name: "show episodes",
			body: `[]`,
			call: func(c *Client) error {
				_, err := c.GetShowEpisodes(ctx, 1, EpisodeListOptions{})
				return err
			},
			wantPath: "/shows/1/episodes",
		},
		{
			name: "show episodes with specials",
			body: `[]`,
			call: func(c *Client) error {
				_, err := c.GetShowEpisodes(ctx, 1, EpisodeListOptions{Specials: true})
				return err
			},
			wantPath:  "/shows/1/episodes",
			wantQuery: "specials=1",
		},
		{
			name:      "episode by number",
			body:      `{}`,
			call:      func(c *Client) error { _, err := c.GetEpisodeByNumber(ctx, 1, 1, 1); return err },
			wantPath:  "/shows/1/episodebynumber",
			wantQuery: "season=1&number=1",
		},
		{
			name:      "episodes by date",
			body:      `[]`,
			call:      func(c *Client) error { _, err := c.GetEpisodesByDate(ctx, 1, NewDate(2013, time.July, 1)); return err },
			wantPath:  "/shows/1/episodesbydate",
			wantQuery: "date=2013-07-01",
		},
		{
			name:     "show seasons",
			body:     `[]`,
			call:     func(c *Client) error { _, err := c.GetShowSeasons(ctx, 1); return err },
			wantPath: "/shows/1/seasons",
		},
		{
			name:     "season episodes",
			body:     `[]`,
			call:     func(c *Client) error { _, err := c.GetSeasonEpisodes(ctx, 1); return err },
			wantPath: "/seasons/1/episodes",
		},
		{
			name:     "show cast",
			body:     `[]`,
			call:     func(c *Client) error { _, err := c.GetShowCast(ctx, 1); return err },
			wantPath: "/shows/1/cast",
		},
		{
			name:     "show crew",
			body:     `[]`,
			call:     func(c *Client) error { _, err := c.GetShowCrew(ctx, 49); return err },
			wantPath: "/shows/49/crew",
		},
		{
			name:     "show aliases",
			body:     `[]`,
			call:     func(c *Client) error { _, err := c.GetShowAliases(ctx, 1); return err },
			wantPath: "/shows/1/akas",
		},
		{
			name:     "show images",
			body:     `[]`,
			call:     func(c *Client) error { _, err := c.GetShowImages(ctx, 1); return err },
			wantPath: "/shows/1/images",
		},
		{
			name:      "show index",
			body:      `[]`,
			call:      func(c *Client) error { _, err := c.GetShowIndex(ctx, 7); return err },
			wantPath:  "/shows",
			wantQuery: "page=7",
		},
		{
			name:      "show index default page",
			body:      `[]`,
			call:      func(c *Client) error { _, err := c.GetShowIndex(ctx, 0); return err },
			wantPath:  "/shows",
			wantQuery: "page=1",
		},
		{
			name:     "episode",
			body:     `{}`,
			call:     func(c *Client) error { _, err := c.GetEpisode(ctx, 1); return err },
			wantPath: "/episodes/1",
		},
		{
			name:      "episode with show",
			body:      `{}`,
			call:      func(c *Client) error { _, err := c.GetEpisode(ctx, 1, "show"); return err },
			wantPath:  "/episodes/1",
			wantQuery: "embed=show",
		},
		{
			name:     "episode guest cast",
			body:     `[]`,
			call:     func(c *Client) error { _, err := c.GetEpisodeGuestCast(ctx, 1); return err },
			wantPath: "/episodes/1/guestcast",
		},
		{
			name:     "episode guest crew",
			body:     `[]`,
			call:     func(c *Client) error { _, err := c.GetEpisodeGuestCrew(ctx, 1); return err },
			wantPath: "/episodes/1/guestcrew",
		},
		{
			name:      "person",
			body:      `{}`,
			call:      func(c *Client) error { _, err := c.GetPerson(ctx, 1, "castcredits"); return err },
			wantPath:  "/people/1",
			wantQuery: "embed=castcredits",
		},
		{
			name:      "person cast credits",
			body:      `[]`,
			call:      func(c *Client) error { _, err := c.GetPersonCastCredits(ctx, 1, "show"); return err },
			wantPath:  "/people/1/castcredits",
			wantQuery: "embed=show",
		},
		{
			name:      "person cast credits with several embeds",
			body:      `[]`,
			call:      func(c *Client) error { _, err := c.GetPersonCastCredits(ctx, 1, "show", "character"); return err },
			wantPath:  "/people/1/castcredits",
			wantQuery: "embed[]=show&embed[]=character",
		},
		{
			name:     "person guest cast credits",
			body:     `[]`,
			call:     func(c *Client) error { _, err := c.GetPersonGuestCastCredits(ctx, 1); return err },
			wantPath: "/people/1/guestcastcredits",
		},
		{
			name:      "person crew credits",
			body:      `[]`,
			call:      func(c *Client) error { _, err := c.GetPersonCrewCredits(ctx, 100, "show"); return err },
			wantPath:  "/people/100/crewcredits",
			wantQuery: "embed=show",
		},
		{
			name:      "person index",
			body:      `[]`,
			call:      func(c *Client) error { _, err := c.GetPersonIndex(ctx, 3); return err },
			wantPath:  "/people",
			wantQuery: "page=3",
		},
		{
			name:     "show updates",
			body:     `{}`,
			call:     func(c *Client) error { _, err := c.GetShowUpdates(ctx, UpdatesAll); return err },
			wantPath: "/updates/shows",
		},
		{
			name:      "person updates since week",
			body:      `{}`,
			call:      func(c *Client) error { _, err := c.GetPersonUpdates(ctx, UpdatesWeek); return err },
			wantPath:  "/updates/people",
			wantQuery: "since=week",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{body: tt.body}
			client := newTestClient(t, rec, Config{})

			require.NoError(t, tt.call(client))

			req := rec.last(t)
			assert.Equal(t, "GET", req.Method)
			assert.Equal(t, tt.wantPath, req.URL.Path)
			assert.Equal(t, tt.wantQuery, req.URL.RawQuery)
			assert.Equal(t, 1, rec.count())
		})
	}
}

func TestInvalidArguments(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		call func(c *Client) error
	}{
		{"empty search", func(c *Client) error { _, err := c.SearchShows(ctx, " "); return err }},
		{"empty single search", func(c *Client) error { _, err := c.SingleSearchShow(ctx, ""); return err }},
		{"empty people search", func(c *Client) error { _, err := c.SearchPeople(ctx, ""); return err }},
		{"empty embed token", func(c *Client) error { _, err := c.GetShow(ctx, 1, ""); return err }},
		{"zero show id", func(c *Client) error { _, err := c.GetShow(ctx, 0); return err }},
		{"negative season id", func(c *Client) error { _, err := c.GetSeasonEpisodes(ctx, -4); return err }},
		{"negative season", func(c *Client) error { _, err := c.GetEpisodeByNumber(ctx, 1, -1, 1); return err }},
		{"zero episode number", func(c *Client) error { _, err := c.GetEpisodeByNumber(ctx, 1, 1, 0); return err }},
		{"zero date", func(c *Client) error { _, err := c.GetEpisodesByDate(ctx, 1, Date{}); return err }},
		{"negative page", func(c *Client) error { _, err := c.GetPersonIndex(ctx, -1); return err }},
		{"unknown external source", func(c *Client) error {
			_, err := c.LookupShow(ctx, ExternalID{Source: "tmdb", Value: "1"})
			return err
		}},
		{"empty external id", func(c *Client) error { _, err := c.LookupShow(ctx, IMDb("")); return err }},
		{"unknown update window", func(c *Client) error { _, err := c.GetShowUpdates(ctx, "year"); return err }},
		{"empty crew credits embed", func(c *Client) error { _, err := c.GetPersonCrewCredits(ctx, 1, "show", " "); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{body: `{}`}
			client := newTestClient(t, rec, Config{})

			err := tt.call(client)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Equal(t, 0, rec.count(), "no request is sent for invalid arguments")
		})
	}
}

func TestSearchShows(t *testing.T) {
	rec := &recorder{body: `[{"score":0.9,"show":{"id":1,"name":"X"}}]`}
	client := newTestClient(t, rec, Config{})

	results, err := client.SearchShows(context.Background(), "foo")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Show.ID)
	assert.Equal(t, "X", results[0].Show.Name)
	assert.InDelta(t, 0.9, results[0].Score, 0.0001)
	assert.Equal(t, "/search/shows", rec.last(t).URL.Path)
	assert.Equal(t, "q=foo", rec.last(t).URL.RawQuery)
}

func TestGetShowIndexURL(t *testing.T) {
	rec := &recorder{body: `[{"id":1750,"name":"Show"}]`}
	client := newTestClient(t, rec, Config{})

	shows, err := client.GetShowIndex(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, shows, 1)
	assert.Equal(t, "/shows?page=7", rec.last(t).URL.RequestURI())
}

func TestGetSeasonEpisodesSpecials(t *testing.T) {
	rec := &recorder{body: `[
		{"id":1,"name":"Pilot","season":1,"number":1,"airdate":"2013-06-24"},
		{"id":2,"name":"Behind the Scenes","season":1,"number":null,"type":"insignificant_special","airdate":""}
	]`}
	client := newTestClient(t, rec, Config{})

	episodes, err := client.GetSeasonEpisodes(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, episodes, 2)

	assert.False(t, episodes[0].IsSpecial())
	assert.Equal(t, 1, *episodes[0].Number)
	assert.Equal(t, "2013-06-24", episodes[0].Airdate.String())

	assert.True(t, episodes[1].IsSpecial())
	assert.True(t, episodes[1].Airdate.IsZero())
	assert.Equal(t, "insignificant_special", episodes[1].Type)
}

func TestGetShowWithEmbeds(t *testing.T) {
	rec := &recorder{body: `{
		"id": 1,
		"name": "Under the Dome",
		"type": "Scripted",
		"genres": ["Drama", "Science-Fiction", "Thriller"],
		"premiered": "2013-06-24",
		"ended": "2015-09-10",
		"rating": {"average": 6.5},
		"network": {"id": 2, "name": "CBS", "country": {"name": "United States", "code": "US", "timezone": "America/New_York"}},
		"webChannel": null,
		"externals": {"tvrage": 25988, "thetvdb": 264492, "imdb": "tt1553656"},
		"_links": {"self": {"href": "https://api.tvmaze.com/shows/1"}},
		"_embedded": {
			"cast": [{"person": {"id": 1, "name": "Mike Vogel"}, "character": {"id": 1, "name": "Dale Barbara"}, "self": false, "voice": false}],
			"nextepisode": null
		}
	}`}
	client := newTestClient(t, rec, Config{})

	show, err := client.GetShow(context.Background(), 1, "cast", "nextepisode")
	require.NoError(t, err)

	assert.Equal(t, "Under the Dome", show.Name)
	assert.True(t, show.HasGenre("Drama"))
	assert.False(t, show.HasGenre("drama"))
	assert.Equal(t, 2013, show.Premiered.Year())
	require.NotNil(t, show.Rating.Average)
	assert.InDelta(t, 6.5, *show.Rating.Average, 0.001)
	require.NotNil(t, show.Network)
	assert.Equal(t, "US", show.Network.Country.Code)
	assert.Nil(t, show.WebChannel)
	assert.Equal(t, "tt1553656", *show.Externals.IMDb)
	require.NotNil(t, show.Links.Self)
	require.NotNil(t, show.Embedded)
	require.Len(t, show.Embedded.Cast, 1)
	assert.Equal(t, "Dale Barbara", show.Embedded.Cast[0].Character.Name)
	assert.Nil(t, show.Embedded.NextEpisode)
}

func TestGetShowAliasesAndImages(t *testing.T) {
	ctx := context.Background()

	t.Run("alias without country", func(t *testing.T) {
		rec := &recorder{body: `[{"name":"Uchitel v zakone","country":{"name":"Russian Federation","code":"RU","timezone":"Asia/Kamchatka"}},{"name":"Dome","country":null}]`}
		client := newTestClient(t, rec, Config{})

		aliases, err := client.GetShowAliases(ctx, 1)
		require.NoError(t, err)
		require.Len(t, aliases, 2)
		assert.Equal(t, "RU", aliases[0].Country.Code)
		assert.Nil(t, aliases[1].Country)
	})

	t.Run("legacy image without type", func(t *testing.T) {
		rec := &recorder{body: `[{"id":1,"type":"poster","main":true,"resolutions":{"original":{"url":"https://x/1.jpg","width":680,"height":1000}}},{"id":2,"type":null,"main":false,"resolutions":{}}]`}
		client := newTestClient(t, rec, Config{})

		images, err := client.GetShowImages(ctx, 1)
		require.NoError(t, err)
		require.Len(t, images, 2)
		require.NotNil(t, images[0].Type)
		assert.Equal(t, "poster", *images[0].Type)
		assert.Equal(t, 680, images[0].Resolutions["original"].Width)
		assert.Nil(t, images[1].Type)
	})
}

func TestScheduleEntries(t *testing.T) {
	ctx := context.Background()

	t.Run("broadcast schedule carries show inline", func(t *testing.T) {
		rec := &recorder{body: `[{"id":10,"name":"Ep","season":2,"number":3,"airtime":"20:00","airstamp":"2024-01-15T20:00:00+00:00","show":{"id":5,"name":"News"}}]`}
		client := newTestClient(t, rec, Config{})

		entries, err := client.GetSchedule(ctx, ScheduleOptions{})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 10, entries[0].ID)
		require.NotNil(t, entries[0].ScheduledShow())
		assert.Equal(t, "News", entries[0].ScheduledShow().Name)
		require.NotNil(t, entries[0].Airstamp)
		assert.Equal(t, 20, entries[0].Airstamp.UTC().Hour())
	})

	t.Run("streaming schedule embeds show", func(t *testing.T) {
		rec := &recorder{body: `[{"id":11,"name":"Ep","season":1,"number":1,"_embedded":{"show":{"id":6,"name":"Web Show"}}}]`}
		client := newTestClient(t, rec, Config{})

		entries, err := client.GetStreamingSchedule(ctx, StreamingScheduleOptions{})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Nil(t, entries[0].Show)
		require.NotNil(t, entries[0].ScheduledShow())
		assert.Equal(t, "Web Show", entries[0].ScheduledShow().Name)
	})
}

func TestGetPersonCredits(t *testing.T) {
	rec := &recorder{body: `[{"self":false,"voice":true,"_links":{"show":{"href":"https://api.tvmaze.com/shows/1"},"character":{"href":"https://api.tvmaze.com/characters/1"}},"_embedded":{"show":{"id":1,"name":"Under the Dome"}}}]`}
	client := newTestClient(t, rec, Config{})

	credits, err := client.GetPersonCastCredits(context.Background(), 1, "show")
	require.NoError(t, err)
	require.Len(t, credits, 1)
	assert.True(t, credits[0].Voice)
	require.NotNil(t, credits[0].Links.Show)
	assert.Equal(t, "https://api.tvmaze.com/shows/1", credits[0].Links.Show.Href)
	require.NotNil(t, credits[0].Embedded)
	assert.Equal(t, "Under the Dome", credits[0].Embedded.Show.Name)
}

func TestGetShowUpdates(t *testing.T) {
	rec := &recorder{body: `{"1":1704067200,"2":1704153600}`}
	client := newTestClient(t, rec, Config{})

	updates, err := client.GetShowUpdates(context.Background(), UpdatesDay)
	require.NoError(t, err)
	assert.Equal(t, map[int]int64{1: 1704067200, 2: 1704153600}, updates)
	assert.Equal(t, "since=day", rec.last(t).URL.RawQuery)
}
