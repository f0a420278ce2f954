package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/fraglog/internal/config"
	apperrors "github.com/ariel-frischer/fraglog/internal/errors"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a fraglog workspace in the current directory",
	Long: `Init creates everything a workspace needs:

  1. fraglog.toml with a commented starter configuration
  2. The fragments directory (changes/)
  3. CHANGELOG.md containing the start marker

Existing files are left untouched, so init is safe to re-run.

Examples:
  fraglog init --name myproject --url https://github.com/me/myproject`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var (
	initNameFlag string
	initURLFlag  string
)

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initNameFlag, "name", "", "project name (default: current directory name)")
	initCmd.Flags().StringVar(&initURLFlag, "url", "", "project URL used in link templates")
}

func runInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	name := initNameFlag
	if name == "" {
		wd, err := os.Getwd()
		if err != nil {
			return apperrors.Wrap(err, apperrors.Runtime)
		}
		name = filepath.Base(wd)
	}

	created, err := writeIfMissing(config.WorkspaceFiles[0], config.StarterTemplate(name, initURLFlag))
	if err != nil {
		return apperrors.Wrap(err, apperrors.Runtime)
	}
	reportInitStep(out, config.WorkspaceFiles[0], created)

	defaults := config.Defaults()
	fragmentsDir := defaults["paths"].(map[string]interface{})["directory"].(string)
	if err := os.MkdirAll(fragmentsDir, 0o755); err != nil {
		return apperrors.Wrap(err, apperrors.Runtime)
	}
	// .gitkeep so the directory survives commits while empty.
	if _, err := writeIfMissing(filepath.Join(fragmentsDir, ".gitkeep"), ""); err != nil {
		return apperrors.Wrap(err, apperrors.Runtime)
	}
	fmt.Fprintf(out, "✓ %s/\n", fragmentsDir)

	output := defaults["paths"].(map[string]interface{})["output"].(string)
	marker := defaults["start"].(string)
	created, err = writeIfMissing(output, "# Changelog\n\n"+marker+"\n")
	if err != nil {
		return apperrors.Wrap(err, apperrors.Runtime)
	}
	reportInitStep(out, output, created)

	return nil
}

func reportInitStep(out io.Writer, path string, created bool) {
	if created {
		fmt.Fprintf(out, "✓ %s\n", path)
	} else {
		fmt.Fprintf(out, "✓ %s (already exists)\n", path)
	}
}

// writeIfMissing writes content to path unless the file already exists.
// It reports whether the file was created.
func writeIfMissing(path, content string) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return false, nil
		}
		return false, err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return false, err
	}
	return true, f.Close()
}
