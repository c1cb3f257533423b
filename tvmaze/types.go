package tvmaze

import (
	"bytes"
	"strconv"
	"time"
)

// Date is a calendar date as TVMaze sends it ("2013-06-24").
// Empty strings and null decode to the zero Date.
type Date struct {
	time.Time
}

// NewDate returns the Date for the given calendar day
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(d.String())), nil
}

// String formats the date as yyyy-mm-dd, or "" for the zero Date
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

// Link is a HAL link
type Link struct {
	Href string `json:"href"`
	Name string `json:"name,omitempty"`
}

// Links holds the HAL links of a record; only the ones present are set
type Links struct {
	Self            *Link `json:"self,omitempty"`
	PreviousEpisode *Link `json:"previousepisode,omitempty"`
	NextEpisode     *Link `json:"nextepisode,omitempty"`
	Show            *Link `json:"show,omitempty"`
	Character       *Link `json:"character,omitempty"`
	Episode         *Link `json:"episode,omitempty"`
}

// Country is a country as used by networks, people and aliases
type Country struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Timezone string `json:"timezone"`
}

// Image holds poster or photo URLs
type Image struct {
	Medium   string `json:"medium"`
	Original string `json:"original"`
}

// Rating is an average user rating; Average is nil when there are too few votes
type Rating struct {
	Average *float64 `json:"average"`
}

// Schedule is the regular airing slot of a show
type Schedule struct {
	Time string   `json:"time"`
	Days []string `json:"days"`
}

// Externals holds the ids of a show on other services
type Externals struct {
	TVRage  *int    `json:"tvrage"`
	TheTVDB *int    `json:"thetvdb"`
	IMDb    *string `json:"imdb"`
}

// Network is a broadcast network
type Network struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Country      *Country `json:"country"`
	OfficialSite *string  `json:"officialSite"`
}

// WebChannel is a streaming service
type WebChannel struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Country      *Country `json:"country"`
	OfficialSite *string  `json:"officialSite"`
}

// Show represents a TV show
type Show struct {
	ID             int           `json:"id"`
	URL            string        `json:"url"`
	Name           string        `json:"name"`
	Type           string        `json:"type"`
	Language       *string       `json:"language"`
	Genres         []string      `json:"genres"`
	Status         string        `json:"status"`
	Runtime        *int          `json:"runtime"`
	AverageRuntime *int          `json:"averageRuntime"`
	Premiered      Date          `json:"premiered"`
	Ended          Date          `json:"ended"`
	OfficialSite   *string       `json:"officialSite"`
	Schedule       Schedule      `json:"schedule"`
	Rating         Rating        `json:"rating"`
	Weight         int           `json:"weight"`
	Network        *Network      `json:"network"`
	WebChannel     *WebChannel   `json:"webChannel"`
	DVDCountry     *Country      `json:"dvdCountry"`
	Externals      Externals     `json:"externals"`
	Image          *Image        `json:"image"`
	Summary        *string       `json:"summary"`
	Updated        int64         `json:"updated"`
	Links          Links         `json:"_links"`
	Embedded       *ShowEmbedded `json:"_embedded,omitempty"`
}

// HasGenre reports whether the show is tagged with genre (exact match)
func (s *Show) HasGenre(genre string) bool {
	for _, g := range s.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// ShowEmbedded holds sub-resources requested with embed selectors
type ShowEmbedded struct {
	Episodes        []Episode    `json:"episodes,omitempty"`
	Seasons         []Season     `json:"seasons,omitempty"`
	Cast            []CastMember `json:"cast,omitempty"`
	Crew            []CrewMember `json:"crew,omitempty"`
	Akas            []Alias      `json:"akas,omitempty"`
	Images          []ShowImage  `json:"images,omitempty"`
	NextEpisode     *Episode     `json:"nextepisode,omitempty"`
	PreviousEpisode *Episode     `json:"previousepisode,omitempty"`
}

// Episode represents a single episode. Number is nil for specials.
type Episode struct {
	ID       int              `json:"id"`
	URL      string           `json:"url"`
	Name     string           `json:"name"`
	Season   int              `json:"season"`
	Number   *int             `json:"number"`
	Type     string           `json:"type"`
	Airdate  Date             `json:"airdate"`
	Airtime  string           `json:"airtime"`
	Airstamp *time.Time       `json:"airstamp"`
	Runtime  *int             `json:"runtime"`
	Rating   Rating           `json:"rating"`
	Image    *Image           `json:"image"`
	Summary  *string          `json:"summary"`
	Links    Links            `json:"_links"`
	Embedded *EpisodeEmbedded `json:"_embedded,omitempty"`
}

// IsSpecial reports whether the episode has no regular episode number
func (e *Episode) IsSpecial() bool {
	return e.Number == nil
}

// EpisodeEmbedded holds sub-resources requested with embed selectors
type EpisodeEmbedded struct {
	Show      *Show        `json:"show,omitempty"`
	GuestCast []CastMember `json:"guestcast,omitempty"`
	GuestCrew []CrewMember `json:"guestcrew,omitempty"`
}

// ScheduleEntry is an episode as listed by the schedule endpoints.
// The regular schedule carries the show inline; the streaming schedule embeds it.
type ScheduleEntry struct {
	Episode
	Show *Show `json:"show,omitempty"`
}

// ScheduledShow returns the show of the entry whichever way it was sent
func (s *ScheduleEntry) ScheduledShow() *Show {
	if s.Show != nil {
		return s.Show
	}
	if s.Embedded != nil {
		return s.Embedded.Show
	}
	return nil
}

// Season represents a season of a show
type Season struct {
	ID           int         `json:"id"`
	URL          string      `json:"url"`
	Number       int         `json:"number"`
	Name         string      `json:"name"`
	EpisodeOrder *int        `json:"episodeOrder"`
	PremiereDate Date        `json:"premiereDate"`
	EndDate      Date        `json:"endDate"`
	Network      *Network    `json:"network"`
	WebChannel   *WebChannel `json:"webChannel"`
	Image        *Image      `json:"image"`
	Summary      *string     `json:"summary"`
	Links        Links       `json:"_links"`
}

// Person represents a cast or crew member
type Person struct {
	ID       int             `json:"id"`
	URL      string          `json:"url"`
	Name     string          `json:"name"`
	Country  *Country        `json:"country"`
	Birthday Date            `json:"birthday"`
	Deathday Date            `json:"deathday"`
	Gender   *string         `json:"gender"`
	Image    *Image          `json:"image"`
	Updated  int64           `json:"updated"`
	Links    Links           `json:"_links"`
	Embedded *PersonEmbedded `json:"_embedded,omitempty"`
}

// PersonEmbedded holds sub-resources requested with embed selectors
type PersonEmbedded struct {
	CastCredits []CastCredit `json:"castcredits,omitempty"`
}

// Character is a role played in a show
type Character struct {
	ID    int    `json:"id"`
	URL   string `json:"url"`
	Name  string `json:"name"`
	Image *Image `json:"image"`
	Links Links  `json:"_links"`
}

// CastMember is a person playing a character in a show or episode
type CastMember struct {
	Person    Person    `json:"person"`
	Character Character `json:"character"`
	Self      bool      `json:"self"`
	Voice     bool      `json:"voice"`
}

// CrewMember is a person with a crew role in a show or episode
type CrewMember struct {
	Type   string `json:"type"`
	Person Person `json:"person"`
}

// CastCredit links a person to a show through a character
type CastCredit struct {
	Self     bool            `json:"self"`
	Voice    bool            `json:"voice"`
	Links    Links           `json:"_links"`
	Embedded *CreditEmbedded `json:"_embedded,omitempty"`
}

// CrewCredit links a person to a show through a crew role
type CrewCredit struct {
	Type     string          `json:"type"`
	Links    Links           `json:"_links"`
	Embedded *CreditEmbedded `json:"_embedded,omitempty"`
}

// CreditEmbedded holds sub-resources requested with embed selectors
type CreditEmbedded struct {
	Show      *Show      `json:"show,omitempty"`
	Character *Character `json:"character,omitempty"`
	Episode   *Episode   `json:"episode,omitempty"`
}

// Alias is an alternative name of a show. A nil Country means the show's origin country.
type Alias struct {
	Name    string   `json:"name"`
	Country *Country `json:"country"`
}

// Resolution is one rendition of an image
type Resolution struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ShowImage is an image attached to a show. Type is nil for legacy unclassified images.
type ShowImage struct {
	ID          int                   `json:"id"`
	Type        *string               `json:"type"`
	Main        bool                  `json:"main"`
	Resolutions map[string]Resolution `json:"resolutions"`
}

// ShowSearchResult is a fuzzy search hit
type ShowSearchResult struct {
	Score float64 `json:"score"`
	Show  Show    `json:"show"`
}

// PersonSearchResult is a fuzzy search hit
type PersonSearchResult struct {
	Score  float64 `json:"score"`
	Person Person  `json:"person"`
}
