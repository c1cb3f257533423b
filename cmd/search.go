package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tvmaze/tvmaze"
)

var (
	searchEmbed []string
	lookupIMDb  string
	lookupTVDB  int
	lookupRage  int
)

// searchCmd groups the search subcommands
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search shows and people by name",
}

var searchShowsCmd = &cobra.Command{
	Use:     "shows <query>",
	Short:   "Fuzzy search for shows",
	Args:    cobra.MinimumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runSearchShows,
}

var searchShowCmd = &cobra.Command{
	Use:     "show <query>",
	Short:   "Return the single best matching show",
	Args:    cobra.MinimumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runSearchShow,
}

var searchPeopleCmd = &cobra.Command{
	Use:     "people <query>",
	Short:   "Fuzzy search for people",
	Args:    cobra.MinimumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runSearchPeople,
}

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Find a show by its IMDb, TheTVDB or TVRage id",
	Long: `Find a show by the id it has on another service. Exactly one of
--imdb, --thetvdb or --tvrage must be given.`,
	Args:    cobra.NoArgs,
	PreRunE: initializeApp,
	RunE:    runLookup,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(lookupCmd)
	searchCmd.AddCommand(searchShowsCmd, searchShowCmd, searchPeopleCmd)

	searchShowCmd.Flags().StringSliceVarP(&searchEmbed, "embed", "e", nil, "sub-resources to embed (episodes, cast, nextepisode, ...)")

	lookupCmd.Flags().StringVar(&lookupIMDb, "imdb", "", "IMDb id, e.g. tt0944947")
	lookupCmd.Flags().IntVar(&lookupTVDB, "thetvdb", 0, "TheTVDB id")
	lookupCmd.Flags().IntVar(&lookupRage, "tvrage", 0, "TVRage id")
	lookupCmd.MarkFlagsMutuallyExclusive("imdb", "thetvdb", "tvrage")
	lookupCmd.MarkFlagsOneRequired("imdb", "thetvdb", "tvrage")
}

func runSearchShows(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	logger.Info().Str("query", query).Msg("Searching shows")

	f, err := resolveFilter()
	if err != nil {
		return err
	}

	results, err := client.SearchShows(context.Background(), query)
	if err != nil {
		return fmt.Errorf("failed to search shows: %w", err)
	}

	if f != nil {
		var kept []tvmaze.ShowSearchResult
		for _, r := range results {
			ok, err := f.MatchShow(r.Show)
			if err != nil {
				return err
			}
			if ok {
				kept = append(kept, r)
			}
		}
		results = kept
	}

	return render(results, func() string {
		return formatter.FormatSearchResults(results, formatOptions())
	})
}

func runSearchShow(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	show, err := client.SingleSearchShow(context.Background(), query, searchEmbed...)
	if err != nil {
		return fmt.Errorf("failed to find show: %w", err)
	}

	return renderShow(show)
}

func runSearchPeople(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	logger.Info().Str("query", query).Msg("Searching people")

	results, err := client.SearchPeople(context.Background(), query)
	if err != nil {
		return fmt.Errorf("failed to search people: %w", err)
	}

	people := make([]tvmaze.Person, 0, len(results))
	for _, r := range results {
		people = append(people, r.Person)
	}

	return render(results, func() string {
		return formatter.FormatPeople(people)
	})
}

func runLookup(cmd *cobra.Command, args []string) error {
	var id tvmaze.ExternalID
	switch {
	case lookupIMDb != "":
		id = tvmaze.IMDb(lookupIMDb)
	case lookupTVDB != 0:
		id = tvmaze.TheTVDB(lookupTVDB)
	default:
		id = tvmaze.TVRage(lookupRage)
	}

	show, err := client.LookupShow(context.Background(), id)
	if err != nil {
		return fmt.Errorf("failed to look up %s id %s: %w", id.Source, id.Value, err)
	}

	return renderShow(show)
}

// renderShow prints one show with whatever was embedded into it
func renderShow(show *tvmaze.Show) error {
	return render(show, func() string {
		var sb strings.Builder
		sb.WriteString(formatter.FormatShows([]tvmaze.Show{*show}, formatOptions()))

		if e := show.Embedded; e != nil {
			if len(e.Episodes) > 0 {
				sb.WriteString(formatter.FormatEpisodes(e.Episodes, formatOptions()))
			}
			if len(e.Seasons) > 0 {
				sb.WriteString(formatter.FormatSeasons(e.Seasons))
			}
			if len(e.Cast) > 0 {
				sb.WriteString(formatter.FormatCast(e.Cast))
			}
			if len(e.Crew) > 0 {
				sb.WriteString(formatter.FormatCrew(e.Crew))
			}
			var next []tvmaze.Episode
			if e.PreviousEpisode != nil {
				next = append(next, *e.PreviousEpisode)
			}
			if e.NextEpisode != nil {
				next = append(next, *e.NextEpisode)
			}
			if len(next) > 0 {
				sb.WriteString(formatter.FormatEpisodes(next, formatOptions()))
			}
		}
		return sb.String()
	})
}
