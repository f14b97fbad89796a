package cmd

import (
	"context"
	"fmt"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const repoSlug = "s0up4200/hubwire"

// upgradeCmd represents the upgrade command
var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade hubwire to the latest release",
	Long:  `Check GitHub releases for a newer version of hubwire and replace the current binary.`,
	RunE:  runUpgrade,
}

func init() {
	rootCmd.AddCommand(upgradeCmd)
}

func runUpgrade(cmd *cobra.Command, args []string) error {
	current, err := semver.ParseTolerant(version)
	if err != nil {
		return fmt.Errorf("cannot upgrade a development build (version %q)", version)
	}

	ctx := context.Background()

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repoSlug))
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s", repoSlug)
	}

	if latest.LessOrEqual(current.String()) {
		fmt.Printf("✓ Already up to date (v%s)\n", current)
		return nil
	}

	fmt.Printf("Upgrading v%s → v%s...\n", current, latest.Version())

	release, err := selfupdate.UpdateSelf(ctx, current.String(), selfupdate.ParseSlug(repoSlug))
	if err != nil {
		return fmt.Errorf("failed to upgrade: %w", err)
	}

	fmt.Printf("✓ Upgraded to v%s\n", release.Version())
	return nil
}
