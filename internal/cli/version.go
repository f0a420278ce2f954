package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/fraglog/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the fraglog version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fraglog %s\n", version.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
