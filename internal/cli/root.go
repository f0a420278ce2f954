// Package cli wires the fraglog commands together with cobra. Each
// command lives in its own file and registers itself with the root
// command in an init function.
package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/fraglog/internal/builder"
	"github.com/ariel-frischer/fraglog/internal/config"
	apperrors "github.com/ariel-frischer/fraglog/internal/errors"
)

var (
	configFlag    string
	directoryFlag string
)

var rootCmd = &cobra.Command{
	Use:   "fraglog",
	Short: "Build changelogs from news fragments",
	Long: `fraglog assembles changelog entries from small per-change fragment
files and splices them into your changelog.

A fragment is a file named <id>.<type>, e.g. changes/1024.fix, whose
content describes one change. 'fraglog build' collects the fragments,
groups them into sections, renders them through your configured
formats, and inserts the finished entry after the start marker in the
changelog.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if directoryFlag == "" {
			return nil
		}
		if err := os.Chdir(directoryFlag); err != nil {
			return apperrors.WrapWithMessage(err, apperrors.Argument,
				fmt.Sprintf("changing directory to %s", directoryFlag))
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "C", "",
		"path to the configuration file (default: discover fraglog.toml)")
	rootCmd.PersistentFlags().StringVarP(&directoryFlag, "directory", "D", "",
		"run as if started in this directory")
}

// Execute runs the CLI. Errors are printed here with category and
// remediation formatting; callers only need the exit decision.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if cliErr := apperrors.AsCLIError(err); cliErr != nil {
			apperrors.PrintError(cliErr)
		} else {
			apperrors.PrintError(apperrors.Wrap(err, apperrors.Runtime))
		}
	}
	return err
}

// loadConfig resolves and loads the workspace configuration, honoring
// the --config flag and falling back to discovery in the current
// directory.
func loadConfig() (*config.Config, error) {
	path := configFlag
	if path == "" {
		discovered, err := config.Discover(".")
		if err != nil {
			wd, wdErr := os.Getwd()
			if wdErr != nil {
				wd = "."
			}
			return nil, apperrors.MissingConfig(wd)
		}
		path = discovered
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, apperrors.InvalidConfig(path, err)
	}
	return cfg, nil
}

// newBuilder constructs a Builder for the loaded config, dated either
// by the --date flag (YYYY-MM-DD) or today.
func newBuilder(cfg *config.Config, dateFlag string) (*builder.Builder, error) {
	date := time.Now()
	if dateFlag != "" {
		parsed, err := time.Parse("2006-01-02", dateFlag)
		if err != nil {
			return nil, apperrors.NewArgumentError(
				fmt.Sprintf("invalid date %q", dateFlag),
				"Use the YYYY-MM-DD form, e.g. --date 2026-08-23",
			)
		}
		date = parsed
	}

	b, err := builder.New(cfg, date)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Configuration,
			"Check the [formats] templates in your configuration")
	}
	return b, nil
}

// asChangelogError maps a missing output file to the structured
// prerequisite error, leaving other failures as runtime errors.
func asChangelogError(err error, path string) error {
	if errors.Is(err, os.ErrNotExist) {
		return apperrors.MissingChangelog(path)
	}
	return apperrors.Wrap(err, apperrors.Runtime)
}
