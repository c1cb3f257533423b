package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tvmaze/tvmaze"
)

var (
	personEmbed  []string
	creditsCrew  bool
	creditsGuest bool
)

// personCmd represents the person command
var personCmd = &cobra.Command{
	Use:     "person <person-id>",
	Short:   "Show details of a person",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runPerson,
}

// creditsCmd represents the credits command
var creditsCmd = &cobra.Command{
	Use:   "credits <person-id>",
	Short: "List the shows a person played in or worked on",
	Long: `List the cast credits of a person. With --crew the crew credits are
listed instead, with --guest the guest appearances in single episodes.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runCredits,
}

func init() {
	rootCmd.AddCommand(personCmd, creditsCmd)

	personCmd.Flags().StringSliceVarP(&personEmbed, "embed", "e", nil, "sub-resources to embed (castcredits)")

	creditsCmd.Flags().BoolVar(&creditsCrew, "crew", false, "list crew credits")
	creditsCmd.Flags().BoolVar(&creditsGuest, "guest", false, "list guest cast credits")
	creditsCmd.MarkFlagsMutuallyExclusive("crew", "guest")
}

func runPerson(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0], "person id")
	if err != nil {
		return err
	}

	person, err := client.GetPerson(context.Background(), id, personEmbed...)
	if err != nil {
		return fmt.Errorf("failed to get person %d: %w", id, err)
	}

	return render(person, func() string {
		out := formatter.FormatPeople([]tvmaze.Person{*person})
		if person.Embedded != nil && len(person.Embedded.CastCredits) > 0 {
			out += formatCredits(person.Embedded.CastCredits, nil)
		}
		return out
	})
}

func runCredits(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	id, err := parseID(args[0], "person id")
	if err != nil {
		return err
	}

	// embed the show so credits can be printed by name
	if creditsCrew {
		credits, err := client.GetPersonCrewCredits(ctx, id, "show")
		if err != nil {
			return fmt.Errorf("failed to get crew credits of person %d: %w", id, err)
		}
		return render(credits, func() string {
			return formatCredits(nil, credits)
		})
	}

	var credits []tvmaze.CastCredit
	if creditsGuest {
		credits, err = client.GetPersonGuestCastCredits(ctx, id, "episode")
	} else {
		credits, err = client.GetPersonCastCredits(ctx, id, "show", "character")
	}
	if err != nil {
		return fmt.Errorf("failed to get cast credits of person %d: %w", id, err)
	}

	return render(credits, func() string {
		return formatCredits(credits, nil)
	})
}

func formatCredits(cast []tvmaze.CastCredit, crew []tvmaze.CrewCredit) string {
	if len(cast) == 0 && len(crew) == 0 {
		return "No credits found"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\nCredits (%d):\n\n", len(cast)+len(crew))
	for _, c := range cast {
		fmt.Fprintf(&sb, "• %s\n", creditTitle(c.Embedded, c.Links))
		if c.Embedded != nil && c.Embedded.Character != nil {
			fmt.Fprintf(&sb, "  as %s\n", c.Embedded.Character.Name)
		}
	}
	for _, c := range crew {
		fmt.Fprintf(&sb, "• %s (%s)\n", creditTitle(c.Embedded, c.Links), c.Type)
	}
	return sb.String()
}

// creditTitle names the credited show or episode, falling back to its link
func creditTitle(e *tvmaze.CreditEmbedded, links tvmaze.Links) string {
	switch {
	case e != nil && e.Show != nil:
		return e.Show.Name
	case e != nil && e.Episode != nil:
		return fmt.Sprintf("%s %s", tvmaze.EpisodeCode(*e.Episode), e.Episode.Name)
	case links.Show != nil:
		return links.Show.Href
	case links.Episode != nil:
		return links.Episode.Href
	}
	return "unknown"
}
