package tvmaze

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatOptions contains options for formatting output
type FormatOptions struct {
	ShowDetails bool
	ShowSummary bool
}

// ConsoleFormatter renders records as trees for terminal output
type ConsoleFormatter struct {
	now func() time.Time
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{now: time.Now}
}

var htmlTags = regexp.MustCompile(`<[^>]*>`)

// treeItem is one entry of a tree listing
type treeItem struct {
	title string
	lines []string
}

func writeTree(sb *strings.Builder, heading string, items []treeItem) {
	fmt.Fprintf(sb, "\n%s (%d):\n\n", heading, len(items))

	for i, item := range items {
		isLast := i == len(items)-1
		prefix := "├"
		indent := "│   "
		if isLast {
			prefix = "╰"
			indent = "    "
		}

		fmt.Fprintf(sb, "%s── %s\n", prefix, item.title)
		for _, line := range item.lines {
			fmt.Fprintf(sb, "%s%s\n", indent, line)
		}

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// FormatShows formats a list of shows for console display
func (f *ConsoleFormatter) FormatShows(shows []Show, options FormatOptions) string {
	if len(shows) == 0 {
		return "No shows found"
	}

	items := make([]treeItem, 0, len(shows))
	for _, show := range shows {
		items = append(items, f.showItem(show, options))
	}

	var sb strings.Builder
	writeTree(&sb, plural("Show", len(shows)), items)
	return sb.String()
}

// FormatSearchResults formats show search hits with their scores
func (f *ConsoleFormatter) FormatSearchResults(results []ShowSearchResult, options FormatOptions) string {
	if len(results) == 0 {
		return "No shows found"
	}

	items := make([]treeItem, 0, len(results))
	for _, r := range results {
		item := f.showItem(r.Show, options)
		item.lines = append([]string{fmt.Sprintf("Score: %.2f", r.Score)}, item.lines...)
		items = append(items, item)
	}

	heading := "Matches"
	if len(results) == 1 {
		heading = "Match"
	}

	var sb strings.Builder
	writeTree(&sb, heading, items)
	return sb.String()
}

func (f *ConsoleFormatter) showItem(show Show, options FormatOptions) treeItem {
	title := show.Name
	if !show.Premiered.IsZero() {
		title = fmt.Sprintf("%s (%d)", show.Name, show.Premiered.Year())
	}
	title = fmt.Sprintf("%s [id %d]", title, show.ID)

	var lines []string
	var parts []string
	if show.Status != "" {
		parts = append(parts, show.Status)
	}
	if show.Type != "" {
		parts = append(parts, show.Type)
	}
	if show.Network != nil {
		parts = append(parts, show.Network.Name)
	} else if show.WebChannel != nil {
		parts = append(parts, show.WebChannel.Name)
	}
	if len(parts) > 0 {
		lines = append(lines, strings.Join(parts, " | "))
	}

	if options.ShowDetails {
		if len(show.Genres) > 0 {
			lines = append(lines, "Genres: "+strings.Join(show.Genres, ", "))
		}
		if show.Rating.Average != nil {
			lines = append(lines, fmt.Sprintf("Rating: %.1f", *show.Rating.Average))
		}
		if len(show.Schedule.Days) > 0 {
			lines = append(lines, fmt.Sprintf("Airs: %s %s", strings.Join(show.Schedule.Days, ", "), show.Schedule.Time))
		}
		if show.Externals.IMDb != nil {
			lines = append(lines, "IMDb: "+*show.Externals.IMDb)
		}
	}

	if options.ShowSummary && show.Summary != nil {
		if s := stripHTML(*show.Summary); s != "" {
			lines = append(lines, s)
		}
	}

	return treeItem{title: title, lines: lines}
}

// FormatEpisodes formats episodes with their season/number codes
func (f *ConsoleFormatter) FormatEpisodes(episodes []Episode, options FormatOptions) string {
	if len(episodes) == 0 {
		return "No episodes found"
	}

	items := make([]treeItem, 0, len(episodes))
	for _, ep := range episodes {
		items = append(items, f.episodeItem(ep, options))
	}

	var sb strings.Builder
	writeTree(&sb, plural("Episode", len(episodes)), items)
	return sb.String()
}

func (f *ConsoleFormatter) episodeItem(ep Episode, options FormatOptions) treeItem {
	item := treeItem{title: fmt.Sprintf("%s %s", EpisodeCode(ep), ep.Name)}

	if !ep.Airdate.IsZero() {
		aired := "Airdate: " + ep.Airdate.String()
		if ep.Airstamp != nil {
			aired += " (" + humanize.RelTime(*ep.Airstamp, f.now(), "ago", "from now") + ")"
		}
		item.lines = append(item.lines, aired)
	}
	if options.ShowDetails {
		if ep.Runtime != nil {
			item.lines = append(item.lines, fmt.Sprintf("Runtime: %d min", *ep.Runtime))
		}
		if ep.Rating.Average != nil {
			item.lines = append(item.lines, fmt.Sprintf("Rating: %.1f", *ep.Rating.Average))
		}
	}
	if options.ShowSummary && ep.Summary != nil {
		if s := stripHTML(*ep.Summary); s != "" {
			item.lines = append(item.lines, s)
		}
	}
	return item
}

// FormatSchedule formats schedule entries grouped under their show names
func (f *ConsoleFormatter) FormatSchedule(entries []ScheduleEntry, options FormatOptions) string {
	if len(entries) == 0 {
		return "Nothing scheduled"
	}

	items := make([]treeItem, 0, len(entries))
	for _, e := range entries {
		item := f.episodeItem(e.Episode, options)
		if show := e.ScheduledShow(); show != nil {
			item.title = show.Name + " " + item.title
			if show.Network != nil {
				item.lines = append([]string{"Network: " + show.Network.Name}, item.lines...)
			} else if show.WebChannel != nil {
				item.lines = append([]string{"Streaming: " + show.WebChannel.Name}, item.lines...)
			}
		}
		if e.Airtime != "" {
			item.lines = append(item.lines, "Airtime: "+e.Airtime)
		}
		items = append(items, item)
	}

	var sb strings.Builder
	writeTree(&sb, "Schedule", items)
	return sb.String()
}

// FormatSeasons formats the seasons of a show
func (f *ConsoleFormatter) FormatSeasons(seasons []Season) string {
	if len(seasons) == 0 {
		return "No seasons found"
	}

	items := make([]treeItem, 0, len(seasons))
	for _, s := range seasons {
		item := treeItem{title: fmt.Sprintf("Season %d [id %d]", s.Number, s.ID)}
		if s.Name != "" {
			item.title += " " + s.Name
		}
		if s.EpisodeOrder != nil {
			item.lines = append(item.lines, fmt.Sprintf("%d %s", *s.EpisodeOrder, plural("episode", *s.EpisodeOrder)))
		}
		if !s.PremiereDate.IsZero() {
			span := "Aired: " + s.PremiereDate.String()
			if !s.EndDate.IsZero() {
				span += " to " + s.EndDate.String()
			}
			item.lines = append(item.lines, span)
		}
		items = append(items, item)
	}

	var sb strings.Builder
	writeTree(&sb, plural("Season", len(seasons)), items)
	return sb.String()
}

// FormatCast formats cast members as "Person as Character"
func (f *ConsoleFormatter) FormatCast(cast []CastMember) string {
	if len(cast) == 0 {
		return "No cast found"
	}

	items := make([]treeItem, 0, len(cast))
	for _, m := range cast {
		item := treeItem{title: fmt.Sprintf("%s as %s", m.Person.Name, m.Character.Name)}
		var flags []string
		if m.Self {
			flags = append(flags, "self")
		}
		if m.Voice {
			flags = append(flags, "voice")
		}
		if len(flags) > 0 {
			item.lines = append(item.lines, "Role: "+strings.Join(flags, ", "))
		}
		items = append(items, item)
	}

	var sb strings.Builder
	writeTree(&sb, "Cast", items)
	return sb.String()
}

// FormatCrew formats crew members with their roles
func (f *ConsoleFormatter) FormatCrew(crew []CrewMember) string {
	if len(crew) == 0 {
		return "No crew found"
	}

	items := make([]treeItem, 0, len(crew))
	for _, m := range crew {
		items = append(items, treeItem{title: fmt.Sprintf("%s (%s)", m.Person.Name, m.Type)})
	}

	var sb strings.Builder
	writeTree(&sb, "Crew", items)
	return sb.String()
}

// FormatPeople formats people with birth and death dates
func (f *ConsoleFormatter) FormatPeople(people []Person) string {
	if len(people) == 0 {
		return "No people found"
	}

	items := make([]treeItem, 0, len(people))
	for _, p := range people {
		item := treeItem{title: fmt.Sprintf("%s [id %d]", p.Name, p.ID)}
		if !p.Birthday.IsZero() {
			life := "Born: " + p.Birthday.String()
			if !p.Deathday.IsZero() {
				life += ", died: " + p.Deathday.String()
			}
			item.lines = append(item.lines, life)
		}
		if p.Country != nil {
			item.lines = append(item.lines, "Country: "+p.Country.Name)
		}
		items = append(items, item)
	}

	var sb strings.Builder
	writeTree(&sb, "People", items)
	return sb.String()
}

// EpisodeCode renders S01E02 style codes; specials get "S01 Special"
func EpisodeCode(ep Episode) string {
	if ep.Number == nil {
		return fmt.Sprintf("S%02d Special", ep.Season)
	}
	return fmt.Sprintf("S%02dE%02d", ep.Season, *ep.Number)
}

func stripHTML(s string) string {
	return strings.TrimSpace(htmlTags.ReplaceAllString(s, ""))
}
