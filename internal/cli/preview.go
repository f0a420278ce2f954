package cli

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/fraglog/internal/builder"
	apperrors "github.com/ariel-frischer/fraglog/internal/errors"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the next changelog entry without writing it",
	Long: `Preview composes the changelog entry exactly as 'fraglog build' would
and prints it to stdout. The changelog file is never touched.

With --watch, the entry is re-rendered whenever a fragment changes,
which is handy while polishing fragment wording.`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

var (
	previewDateFlag  string
	previewWatchFlag bool
)

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVarP(&previewDateFlag, "date", "d", "", "entry date in YYYY-MM-DD form (default: today)")
	previewCmd.Flags().BoolVarP(&previewWatchFlag, "watch", "w", false, "re-render whenever the fragments directory changes")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	b, err := newBuilder(cfg, previewDateFlag)
	if err != nil {
		return err
	}

	if err := b.Preview(cmd.OutOrStdout()); err != nil {
		return apperrors.Wrap(err, apperrors.Runtime)
	}

	if !previewWatchFlag {
		return nil
	}
	return watchPreview(cmd, b)
}

// watchPreview re-renders the entry on every change in the fragments
// directory until the command's context is cancelled. Render errors do
// not stop the loop; a half-saved fragment should not kill the watch.
func watchPreview(cmd *cobra.Command, b *builder.Builder) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return apperrors.Wrap(err, apperrors.Runtime)
	}
	defer watcher.Close()

	if err := watcher.Add(b.FragmentsDir()); err != nil {
		return apperrors.WrapWithMessage(err, apperrors.Prerequisite,
			fmt.Sprintf("watching %s", b.FragmentsDir()),
			"Ensure the fragments directory exists")
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s for changes, Ctrl-C to stop\n", b.FragmentsDir())

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout())
			if err := b.Preview(cmd.OutOrStdout()); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "render failed: %v\n", err)
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watch error: %v\n", watchErr)
		}
	}
}
