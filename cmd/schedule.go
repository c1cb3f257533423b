package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tvmaze/tvmaze"
)

var (
	scheduleCountry string
	scheduleDate    string
	scheduleWeb     bool
	scheduleGlobal  bool
	scheduleFull    bool
)

// scheduleCmd represents the schedule command
var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Print the broadcast or streaming schedule",
	Long: `Print the episodes airing on a given day.

By default this is the broadcast schedule of one country (US unless --country
is given) for today. With --web the streaming schedule is printed instead:
without --country it holds both global and local releases, --country limits it
to one country and --global to releases without a country. --full prints every
future episode known to TVMaze.`,
	Args:    cobra.NoArgs,
	PreRunE: initializeApp,
	RunE:    runSchedule,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)

	scheduleCmd.Flags().StringVarP(&scheduleCountry, "country", "c", "", "ISO 3166-1 country code")
	scheduleCmd.Flags().StringVar(&scheduleDate, "date", "", "day to list (YYYY-MM-DD), default today")
	scheduleCmd.Flags().BoolVar(&scheduleWeb, "web", false, "streaming schedule instead of broadcast")
	scheduleCmd.Flags().BoolVar(&scheduleGlobal, "global", false, "with --web, only releases without a country")
	scheduleCmd.Flags().BoolVar(&scheduleFull, "full", false, "every future episode")
	scheduleCmd.MarkFlagsMutuallyExclusive("country", "global")
	scheduleCmd.MarkFlagsMutuallyExclusive("full", "web")
	scheduleCmd.MarkFlagsMutuallyExclusive("full", "date")
}

func runSchedule(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	var day time.Time
	if scheduleDate != "" {
		var err error
		day, err = time.Parse("2006-01-02", scheduleDate)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", scheduleDate, err)
		}
	}

	if scheduleGlobal && !scheduleWeb {
		return fmt.Errorf("--global only applies to the streaming schedule (--web)")
	}

	var (
		entries []tvmaze.ScheduleEntry
		err     error
	)
	switch {
	case scheduleFull:
		logger.Info().Msg("Fetching full schedule, this is a large download")
		entries, err = client.GetFullSchedule(ctx)
	case scheduleWeb:
		opts := tvmaze.StreamingScheduleOptions{Date: day}
		switch {
		case scheduleGlobal:
			opts.Country = tvmaze.CountryCode("")
		case scheduleCountry != "":
			opts.Country = tvmaze.CountryCode(scheduleCountry)
		}
		entries, err = client.GetStreamingSchedule(ctx, opts)
	default:
		entries, err = client.GetSchedule(ctx, tvmaze.ScheduleOptions{
			Country: scheduleCountry,
			Date:    day,
		})
	}
	if err != nil {
		return fmt.Errorf("failed to get schedule: %w", err)
	}

	f, err := resolveFilter()
	if err != nil {
		return err
	}
	if f != nil {
		var kept []tvmaze.ScheduleEntry
		for _, e := range entries {
			ok, err := f.MatchEpisode(e.Episode)
			if err != nil {
				return err
			}
			if ok {
				kept = append(kept, e)
			}
		}
		entries = kept
	}

	return render(entries, func() string {
		return formatter.FormatSchedule(entries, formatOptions())
	})
}
