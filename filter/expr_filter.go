package filter

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/file"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/tvmaze/tvmaze"
)

// Filter is a compiled filter expression that can be evaluated against
// shows and episodes
type Filter struct {
	program *vm.Program
	expr    string
}

// helpers are available to every expression regardless of the record type
func helpers() map[string]any {
	return map[string]any{
		// Date helpers
		"daysSince": func(t time.Time) int {
			if t.IsZero() {
				return -1
			}
			return int(time.Since(t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"monthsAgo": func(months int) time.Time {
			return time.Now().AddDate(0, -months, 0)
		},
		"yearsAgo": func(years int) time.Time {
			return time.Now().AddDate(-years, 0, 0)
		},
		"parseDate": func(dateStr string) time.Time {
			t, _ := time.Parse("2006-01-02", dateStr)
			return t
		},
		// String helpers; contains, startsWith and endsWith are operators
		"icontains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		"now":   time.Now,
	}
}

// Compile compiles a filter expression. Variables that only exist for one
// record type (Season on episodes, Genres on shows) evaluate to nil on the other.
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
			Position:   -1,
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(helpers()),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		cerr := &CompilationError{
			Expression: expression,
			Reason:     err.Error(),
			Position:   -1,
			Err:        err,
		}
		var ferr *file.Error
		if errors.As(err, &ferr) {
			cerr.Reason = ferr.Message
			cerr.Position = ferr.Column
		}
		return nil, cerr
	}

	return &Filter{program: program, expr: expression}, nil
}

// String returns the original expression
func (f *Filter) String() string {
	return f.expr
}

// MatchShow evaluates the filter against a show
func (f *Filter) MatchShow(show tvmaze.Show) (bool, error) {
	return f.run(showEnv(show), RecordShow, show.Name)
}

// MatchEpisode evaluates the filter against an episode
func (f *Filter) MatchEpisode(ep tvmaze.Episode) (bool, error) {
	return f.run(episodeEnv(ep), RecordEpisode, tvmaze.EpisodeCode(ep))
}

func (f *Filter) run(env map[string]any, kind RecordKind, record string) (bool, error) {
	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expr,
			Kind:       kind,
			Record:     record,
			Reason:     err.Error(),
			Err:        err,
		}
	}

	match, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expr,
			Kind:       kind,
			Record:     record,
			Reason:     fmt.Sprintf("expression returned %T, not bool", result),
		}
	}
	return match, nil
}

// Shows returns the shows the filter matches, keeping their order.
// A nil filter matches everything.
func (f *Filter) Shows(shows []tvmaze.Show) ([]tvmaze.Show, error) {
	if f == nil {
		return shows, nil
	}
	var out []tvmaze.Show
	for _, show := range shows {
		ok, err := f.MatchShow(show)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, show)
		}
	}
	return out, nil
}

// Episodes returns the episodes the filter matches, keeping their order.
// A nil filter matches everything.
func (f *Filter) Episodes(episodes []tvmaze.Episode) ([]tvmaze.Episode, error) {
	if f == nil {
		return episodes, nil
	}
	var out []tvmaze.Episode
	for _, ep := range episodes {
		ok, err := f.MatchEpisode(ep)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, ep)
		}
	}
	return out, nil
}

func showEnv(show tvmaze.Show) map[string]any {
	env := helpers()

	env["Show"] = show
	env["hasGenre"] = func(genre string) bool {
		for _, g := range show.Genres {
			if strings.EqualFold(g, genre) {
				return true
			}
		}
		return false
	}
	env["airsOn"] = func(day string) bool {
		for _, d := range show.Schedule.Days {
			if strings.EqualFold(d, day) {
				return true
			}
		}
		return false
	}

	env["ID"] = show.ID
	env["Name"] = show.Name
	env["Type"] = show.Type
	env["Status"] = show.Status
	env["Genres"] = show.Genres
	env["Language"] = deref(show.Language)
	env["Runtime"] = deref(show.Runtime)
	env["Rating"] = deref(show.Rating.Average)
	env["Weight"] = show.Weight
	env["Premiered"] = show.Premiered.Time
	env["Ended"] = show.Ended.Time
	env["IMDb"] = deref(show.Externals.IMDb)
	env["Summary"] = deref(show.Summary)

	env["Network"] = ""
	env["Country"] = ""
	if show.Network != nil {
		env["Network"] = show.Network.Name
		if show.Network.Country != nil {
			env["Country"] = show.Network.Country.Code
		}
	}
	env["WebChannel"] = ""
	if show.WebChannel != nil {
		env["WebChannel"] = show.WebChannel.Name
	}

	return env
}

func episodeEnv(ep tvmaze.Episode) map[string]any {
	env := helpers()

	env["Episode"] = ep
	env["ID"] = ep.ID
	env["Name"] = ep.Name
	env["Type"] = ep.Type
	env["Season"] = ep.Season
	env["Number"] = deref(ep.Number)
	env["Special"] = ep.IsSpecial()
	env["Airdate"] = ep.Airdate.Time
	env["Runtime"] = deref(ep.Runtime)
	env["Rating"] = deref(ep.Rating.Average)
	env["Summary"] = deref(ep.Summary)

	return env
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
