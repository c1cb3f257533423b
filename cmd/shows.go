package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tvmaze/tvmaze"
)

var (
	showEmbed      []string
	withSpecials   bool
	episodesOnDate string
	guestCredits   bool
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show details of one or more shows",
	Long: `Fetch shows by their TVMaze id. Several ids are fetched concurrently,
bounded by http.concurrency.`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runShow,
}

var episodesCmd = &cobra.Command{
	Use:     "episodes <show-id>",
	Short:   "List the episodes of a show",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runEpisodes,
}

var episodeCmd = &cobra.Command{
	Use:   "episode <episode-id> | <show-id> <season> <number>",
	Short: "Show a single episode",
	Long: `Fetch an episode by its TVMaze id, or by show id, season and episode
number.`,
	Args:    cobra.MatchAll(cobra.MinimumNArgs(1), cobra.MaximumNArgs(3)),
	PreRunE: initializeApp,
	RunE:    runEpisode,
}

var seasonsCmd = &cobra.Command{
	Use:     "seasons <show-id>",
	Short:   "List the seasons of a show",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runSeasons,
}

var seasonCmd = &cobra.Command{
	Use:     "season <season-id>",
	Short:   "List the episodes of a season, specials included",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runSeason,
}

var castCmd = &cobra.Command{
	Use:     "cast <show-id>",
	Short:   "List the main cast of a show, or the guest cast of an episode with --guest",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runCast,
}

var crewCmd = &cobra.Command{
	Use:     "crew <show-id>",
	Short:   "List the crew of a show, or the guest crew of an episode with --guest",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runCrew,
}

var aliasesCmd = &cobra.Command{
	Use:     "aliases <show-id>",
	Short:   "List the alternative names of a show",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runAliases,
}

var imagesCmd = &cobra.Command{
	Use:     "images <show-id>",
	Short:   "List the images of a show",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runImages,
}

func init() {
	rootCmd.AddCommand(showCmd, episodesCmd, episodeCmd, seasonsCmd, seasonCmd, castCmd, crewCmd, aliasesCmd, imagesCmd)

	showCmd.Flags().StringSliceVarP(&showEmbed, "embed", "e", nil, "sub-resources to embed (episodes, seasons, cast, crew, akas, images, nextepisode, previousepisode)")
	episodeCmd.Flags().StringSliceVarP(&showEmbed, "embed", "e", nil, "sub-resources to embed (show, guestcast, guestcrew)")

	episodesCmd.Flags().BoolVar(&withSpecials, "specials", false, "include specials")
	episodesCmd.Flags().StringVar(&episodesOnDate, "date", "", "only episodes that aired on this day (YYYY-MM-DD)")
	episodesCmd.MarkFlagsMutuallyExclusive("specials", "date")

	castCmd.Flags().BoolVar(&guestCredits, "guest", false, "treat the id as an episode id and list its guest cast")
	crewCmd.Flags().BoolVar(&guestCredits, "guest", false, "treat the id as an episode id and list its guest crew")
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := parseID(arg, "show id")
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}

	if len(ids) == 1 {
		show, err := client.GetShow(ctx, ids[0], showEmbed...)
		if err != nil {
			return fmt.Errorf("failed to get show %d: %w", ids[0], err)
		}
		return renderShow(show)
	}

	logger.Info().Ints("ids", ids).Msg("Fetching shows")

	fetched, err := client.GetShows(ctx, ids, showEmbed...)
	if err != nil {
		return fmt.Errorf("failed to get shows: %w", err)
	}

	shows := make([]tvmaze.Show, 0, len(fetched))
	for _, s := range fetched {
		shows = append(shows, *s)
	}
	return renderShows(shows)
}

// renderShows filters and prints a list of shows
func renderShows(shows []tvmaze.Show) error {
	f, err := resolveFilter()
	if err != nil {
		return err
	}
	shows, err = f.Shows(shows)
	if err != nil {
		return err
	}

	return render(shows, func() string {
		return formatter.FormatShows(shows, formatOptions())
	})
}

// renderEpisodes filters and prints a list of episodes
func renderEpisodes(episodes []tvmaze.Episode) error {
	f, err := resolveFilter()
	if err != nil {
		return err
	}
	episodes, err = f.Episodes(episodes)
	if err != nil {
		return err
	}

	return render(episodes, func() string {
		return formatter.FormatEpisodes(episodes, formatOptions())
	})
}

func runEpisodes(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	showID, err := parseID(args[0], "show id")
	if err != nil {
		return err
	}

	var episodes []tvmaze.Episode
	if episodesOnDate != "" {
		day, err := time.Parse("2006-01-02", episodesOnDate)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", episodesOnDate, err)
		}
		episodes, err = client.GetEpisodesByDate(ctx, showID, tvmaze.NewDate(day.Date()))
		if err != nil {
			return fmt.Errorf("failed to get episodes of show %d on %s: %w", showID, episodesOnDate, err)
		}
	} else {
		episodes, err = client.GetShowEpisodes(ctx, showID, tvmaze.EpisodeListOptions{Specials: withSpecials})
		if err != nil {
			return fmt.Errorf("failed to get episodes of show %d: %w", showID, err)
		}
	}

	return renderEpisodes(episodes)
}

func runEpisode(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if len(args) == 2 {
		return fmt.Errorf("expected an episode id, or a show id with season and number")
	}

	var (
		ep  *tvmaze.Episode
		err error
	)
	if len(args) == 1 {
		id, perr := parseID(args[0], "episode id")
		if perr != nil {
			return perr
		}
		ep, err = client.GetEpisode(ctx, id, showEmbed...)
	} else {
		showID, perr := parseID(args[0], "show id")
		if perr != nil {
			return perr
		}
		season, serr := strconv.Atoi(args[1])
		number, nerr := strconv.Atoi(args[2])
		if serr != nil || nerr != nil {
			return fmt.Errorf("season and number must be integers: %s", strings.Join(args[1:], " "))
		}
		ep, err = client.GetEpisodeByNumber(ctx, showID, season, number)
	}
	if err != nil {
		return fmt.Errorf("failed to get episode: %w", err)
	}

	return render(ep, func() string {
		var sb strings.Builder
		if ep.Embedded != nil && ep.Embedded.Show != nil {
			sb.WriteString(formatter.FormatShows([]tvmaze.Show{*ep.Embedded.Show}, formatOptions()))
		}
		sb.WriteString(formatter.FormatEpisodes([]tvmaze.Episode{*ep}, formatOptions()))
		if ep.Embedded != nil && len(ep.Embedded.GuestCast) > 0 {
			sb.WriteString(formatter.FormatCast(ep.Embedded.GuestCast))
		}
		if ep.Embedded != nil && len(ep.Embedded.GuestCrew) > 0 {
			sb.WriteString(formatter.FormatCrew(ep.Embedded.GuestCrew))
		}
		return sb.String()
	})
}

func runSeasons(cmd *cobra.Command, args []string) error {
	showID, err := parseID(args[0], "show id")
	if err != nil {
		return err
	}

	seasons, err := client.GetShowSeasons(context.Background(), showID)
	if err != nil {
		return fmt.Errorf("failed to get seasons of show %d: %w", showID, err)
	}

	return render(seasons, func() string {
		return formatter.FormatSeasons(seasons)
	})
}

func runSeason(cmd *cobra.Command, args []string) error {
	seasonID, err := parseID(args[0], "season id")
	if err != nil {
		return err
	}

	episodes, err := client.GetSeasonEpisodes(context.Background(), seasonID)
	if err != nil {
		return fmt.Errorf("failed to get episodes of season %d: %w", seasonID, err)
	}

	return renderEpisodes(episodes)
}

func runCast(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	id, err := parseID(args[0], "id")
	if err != nil {
		return err
	}

	var cast []tvmaze.CastMember
	if guestCredits {
		cast, err = client.GetEpisodeGuestCast(ctx, id)
	} else {
		cast, err = client.GetShowCast(ctx, id)
	}
	if err != nil {
		return fmt.Errorf("failed to get cast: %w", err)
	}

	return render(cast, func() string {
		return formatter.FormatCast(cast)
	})
}

func runCrew(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	id, err := parseID(args[0], "id")
	if err != nil {
		return err
	}

	var crew []tvmaze.CrewMember
	if guestCredits {
		crew, err = client.GetEpisodeGuestCrew(ctx, id)
	} else {
		crew, err = client.GetShowCrew(ctx, id)
	}
	if err != nil {
		return fmt.Errorf("failed to get crew: %w", err)
	}

	return render(crew, func() string {
		return formatter.FormatCrew(crew)
	})
}

func runAliases(cmd *cobra.Command, args []string) error {
	showID, err := parseID(args[0], "show id")
	if err != nil {
		return err
	}

	aliases, err := client.GetShowAliases(context.Background(), showID)
	if err != nil {
		return fmt.Errorf("failed to get aliases of show %d: %w", showID, err)
	}

	return render(aliases, func() string {
		if len(aliases) == 0 {
			return "No aliases found"
		}
		var sb strings.Builder
		for _, a := range aliases {
			country := "original"
			if a.Country != nil {
				country = a.Country.Name
			}
			fmt.Fprintf(&sb, "• %s (%s)\n", a.Name, country)
		}
		return sb.String()
	})
}

func runImages(cmd *cobra.Command, args []string) error {
	showID, err := parseID(args[0], "show id")
	if err != nil {
		return err
	}

	images, err := client.GetShowImages(context.Background(), showID)
	if err != nil {
		return fmt.Errorf("failed to get images of show %d: %w", showID, err)
	}

	return render(images, func() string {
		if len(images) == 0 {
			return "No images found"
		}
		var sb strings.Builder
		for _, img := range images {
			kind := "unclassified"
			if img.Type != nil {
				kind = *img.Type
			}
			if img.Main {
				kind += ", main"
			}
			original := img.Resolutions["original"]
			fmt.Fprintf(&sb, "• [%d] %s %dx%d %s\n", img.ID, kind, original.Width, original.Height, original.URL)
		}
		return sb.String()
	})
}
