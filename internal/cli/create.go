package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/fraglog/internal/editor"
	apperrors "github.com/ariel-frischer/fraglog/internal/errors"
	"github.com/ariel-frischer/fraglog/internal/fragment"
)

// placeholderContent seeds new fragments so a forgotten edit is obvious
// in review.
const placeholderContent = "Add the fragment content here."

var createCmd = &cobra.Command{
	Use:   "create <id>.<type>[.<suffix>]",
	Short: "Create a new fragment file",
	Long: `Create writes a new fragment file into the fragments directory.

The name must be a valid fragment identifier: a numeric id like
1024.fix, or a textual id prefixed with '~' like ~note.internal. Any
trailing suffix (e.g. .md) is allowed and ignored by the build.

Examples:
  fraglog create 1024.fix                         # Create with a placeholder line
  fraglog create 1024.fix --content "Fixed X."    # Create with content
  fraglog create ~note.internal --edit            # Create and open your editor`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

var (
	createContentFlag string
	createEditFlag    bool
)

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVarP(&createContentFlag, "content", "c", "", "fragment content (default: a placeholder line)")
	createCmd.Flags().BoolVarP(&createEditFlag, "edit", "e", false, "open the new fragment in $VISUAL or $EDITOR")
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := fragment.Validate(name); err != nil {
		return apperrors.InvalidFragmentName(name, err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Paths.Directory, 0o755); err != nil {
		return apperrors.Wrap(err, apperrors.Runtime)
	}

	path := filepath.Join(cfg.Paths.Directory, name)
	content := createContentFlag
	if content == "" {
		content = placeholderContent
	}

	if err := writeNewFile(path, content+"\n"); err != nil {
		if errors.Is(err, os.ErrExist) {
			return apperrors.FragmentExists(path)
		}
		return apperrors.Wrap(err, apperrors.Runtime)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)

	if createEditFlag {
		if err := editor.Open(path); err != nil {
			return apperrors.Wrap(err, apperrors.Prerequisite,
				"Set the VISUAL or EDITOR environment variable",
				"Or pass --content instead of --edit")
		}
	}
	return nil
}

// writeNewFile creates path exclusively, failing if it already exists.
func writeNewFile(path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
