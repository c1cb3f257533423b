package cmd

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/s0up4200/tvmaze/tvmaze"
)

var (
	updatesSince string
	updatesLimit int
)

// indexCmd pages through every show or person in the database
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Page through the full show or people index",
	Long: `Page through every show or person known to TVMaze, ordered by id.
A page holds up to 250 records; page numbering starts at 1.`,
}

var indexShowsCmd = &cobra.Command{
	Use:     "shows [page]",
	Short:   "List one page of the show index",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runIndexShows,
}

var indexPeopleCmd = &cobra.Command{
	Use:     "people [page]",
	Short:   "List one page of the people index",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runIndexPeople,
}

// updatesCmd lists when records last changed
var updatesCmd = &cobra.Command{
	Use:   "updates",
	Short: "List when shows or people were last updated",
}

var updatesShowsCmd = &cobra.Command{
	Use:     "shows",
	Short:   "List show update timestamps",
	Args:    cobra.NoArgs,
	PreRunE: initializeApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpdates(client.GetShowUpdates)
	},
}

var updatesPeopleCmd = &cobra.Command{
	Use:     "people",
	Short:   "List person update timestamps",
	Args:    cobra.NoArgs,
	PreRunE: initializeApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpdates(client.GetPersonUpdates)
	},
}

func init() {
	rootCmd.AddCommand(indexCmd, updatesCmd)
	indexCmd.AddCommand(indexShowsCmd, indexPeopleCmd)
	updatesCmd.AddCommand(updatesShowsCmd, updatesPeopleCmd)

	updatesCmd.PersistentFlags().StringVar(&updatesSince, "since", "day", "time window: day, week, month or all")
	updatesCmd.PersistentFlags().IntVar(&updatesLimit, "limit", 25, "print at most this many entries, most recent first (0 for all)")
}

func pageArg(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	page, err := strconv.Atoi(args[0])
	if err != nil || page < 1 {
		return 0, fmt.Errorf("invalid page: %q", args[0])
	}
	return page, nil
}

func runIndexShows(cmd *cobra.Command, args []string) error {
	page, err := pageArg(args)
	if err != nil {
		return err
	}

	shows, err := client.GetShowIndex(context.Background(), page)
	if err != nil {
		return fmt.Errorf("failed to get show index page %d: %w", page, err)
	}
	logger.Debug().Int("page", page).Int("count", len(shows)).Msg("Fetched show index")

	return renderShows(shows)
}

func runIndexPeople(cmd *cobra.Command, args []string) error {
	page, err := pageArg(args)
	if err != nil {
		return err
	}

	people, err := client.GetPersonIndex(context.Background(), page)
	if err != nil {
		return fmt.Errorf("failed to get people index page %d: %w", page, err)
	}

	return render(people, func() string {
		return formatter.FormatPeople(people)
	})
}

func runUpdates(fetch func(context.Context, tvmaze.UpdateWindow) (map[int]int64, error)) error {
	window := tvmaze.UpdateWindow(updatesSince)
	if updatesSince == "all" {
		window = tvmaze.UpdatesAll
	}

	updates, err := fetch(context.Background(), window)
	if err != nil {
		return fmt.Errorf("failed to get updates: %w", err)
	}

	return render(updates, func() string {
		return formatUpdates(updates, updatesLimit, time.Now())
	})
}

// formatUpdates lists ids with their update times, most recent first
func formatUpdates(updates map[int]int64, limit int, now time.Time) string {
	if len(updates) == 0 {
		return "No updates found"
	}

	ids := make([]int, 0, len(updates))
	for id := range updates {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if updates[ids[i]] != updates[ids[j]] {
			return updates[ids[i]] > updates[ids[j]]
		}
		return ids[i] < ids[j]
	})
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\nUpdated (%d of %d):\n\n", len(ids), len(updates))
	for _, id := range ids {
		at := time.Unix(updates[id], 0)
		fmt.Fprintf(&sb, "• %-8d %s (%s)\n", id, at.UTC().Format(time.RFC3339), humanize.RelTime(at, now, "ago", "from now"))
	}
	return sb.String()
}
