package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const repositorySlug = "s0up4200/tvmaze"

var (
	appVersion   = "dev"
	appBuildTime = "unknown"
)

// SetVersion records the build version and time injected by main
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tvmaze %s (built %s, %s/%s)\n", appVersion, appBuildTime, runtime.GOOS, runtime.GOARCH)
	},
}

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update tvmaze to the latest release",
	Long: `Check GitHub for a newer release of tvmaze and replace the running
binary with it. Development builds cannot be updated.`,
	Args: cobra.NoArgs,
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(versionCmd, updateCmd)
}

// currentVersion parses the build version, tolerating a leading "v"
func currentVersion() (semver.Version, error) {
	v, err := semver.ParseTolerant(appVersion)
	if err != nil {
		return semver.Version{}, fmt.Errorf("cannot update a development build (version %q)", appVersion)
	}
	return v, nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	current, err := currentVersion()
	if err != nil {
		return err
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repositorySlug))
	if err != nil {
		return fmt.Errorf("error occurred while detecting version: %w", err)
	}
	if !found {
		return errors.New("no release found for " + runtime.GOOS + "/" + runtime.GOARCH)
	}

	if latest.LessOrEqual(current.String()) {
		fmt.Printf("tvmaze %s is the latest version\n", current)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	log.Info().Str("from", current.String()).Str("to", latest.Version()).Msg("Updating")
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}

	fmt.Printf("Successfully updated to version %s\n", latest.Version())
	return nil
}
