package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yhao3/hinto/internal/output"
	"github.com/yhao3/hinto/internal/platform"
	"github.com/yhao3/hinto/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "hinto",
	Short: "Click anything on screen by typing a short label",
	Long: `hinto labels every clickable element in the frontmost window so it can
be clicked, right-clicked, or scrolled to entirely from the keyboard.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.Date)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if platform.RequestPermissionsFunc != nil {
			platform.RequestPermissionsFunc()
		}

		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "", "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty
		return nil
	}
}
