package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yhao3/hinto/internal/output"
	"github.com/yhao3/hinto/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		return output.Print(struct {
			Version string `yaml:"version" json:"version"`
			Commit  string `yaml:"commit"  json:"commit"`
			Date    string `yaml:"date"    json:"date"`
		}{version.Version, version.Commit, version.Date})
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
