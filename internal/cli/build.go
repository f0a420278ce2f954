package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/ariel-frischer/fraglog/internal/errors"
	"github.com/ariel-frischer/fraglog/internal/git"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the next changelog entry and write it into the changelog",
	Long: `Build collects the fragments from the configured directory, composes
the changelog entry for the configured version, and splices it into the
changelog file after the start marker.

Examples:
  fraglog build                       # Write today's entry
  fraglog build --date 2026-08-23     # Stamp an explicit release date
  fraglog build --remove --stage      # Consume fragments and stage the result`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

var (
	buildDateFlag   string
	buildStageFlag  bool
	buildRemoveFlag bool
)

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&buildDateFlag, "date", "d", "", "entry date in YYYY-MM-DD form (default: today)")
	buildCmd.Flags().BoolVar(&buildStageFlag, "stage", false, "stage the updated changelog with git")
	buildCmd.Flags().BoolVar(&buildRemoveFlag, "remove", false, "remove the consumed fragment files with git")
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	b, err := newBuilder(cfg, buildDateFlag)
	if err != nil {
		return err
	}

	// Snapshot the fragment paths before writing so --remove deletes
	// exactly the files this build consumed.
	var fragments []string
	if buildRemoveFlag {
		fragments, err = b.FragmentPaths()
		if err != nil {
			return apperrors.Wrap(err, apperrors.Runtime)
		}
	}

	if err := b.Write(); err != nil {
		return asChangelogError(err, b.OutputPath())
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote entry to %s\n", b.OutputPath())

	if buildRemoveFlag {
		if err := git.Remove(b.FragmentsDir(), fragments); err != nil {
			return apperrors.Wrap(err, apperrors.Prerequisite,
				"Ensure the workspace is inside a git repository and the fragments are tracked",
				"Or drop the --remove flag and delete the files yourself")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d fragment(s)\n", len(fragments))
	}

	if buildStageFlag {
		if err := git.Stage(b.FragmentsDir(), []string{b.OutputPath()}); err != nil {
			return apperrors.Wrap(err, apperrors.Prerequisite,
				"Ensure the workspace is inside a git repository",
				"Or drop the --stage flag and run 'git add' yourself")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Staged %s\n", b.OutputPath())
	}

	return nil
}
