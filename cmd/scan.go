package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/yhao3/hinto/internal/logging"
	"github.com/yhao3/hinto/internal/model"
	"github.com/yhao3/hinto/internal/output"
	"github.com/yhao3/hinto/internal/platform"
	"github.com/yhao3/hinto/internal/scan"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run one discovery cycle and print the labeled elements",
	Long: `Scan the frontmost window once, assign labels, and print the result.
Useful for checking what the interactive mode would label without
engaging it.

Examples:
  hinto scan
  hinto scan --format json --pretty
  hinto scan --timing --log-level debug
  hinto scan --annotate /tmp/labels.png`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().Bool("timing", false, "Log per-scanner timing")
	scanCmd.Flags().String("alphabet", "", "Label alphabet override")
	scanCmd.Flags().String("annotate", "", "Write a screenshot with label boxes to this PNG path")
	scanCmd.Flags().String("log-level", "info", "Log level: debug, info, warn, error")
}

func runScan(cmd *cobra.Command, args []string) error {
	timing, _ := cmd.Flags().GetBool("timing")
	alphabet, _ := cmd.Flags().GetString("alphabet")
	annotatePath, _ := cmd.Flags().GetString("annotate")
	level, _ := cmd.Flags().GetString("log-level")

	log, err := logging.New(logging.Options{Level: level})
	if err != nil {
		return err
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	builder := scan.NewBuilder(provider.AX, log, timing)
	cycle, elements, err := builder.DiscoverCycle()
	if err != nil {
		return err
	}
	labeled := model.AssignLabels(elements, alphabet)

	result := output.ScanResult{
		Cycle:    cycle.String(),
		TS:       time.Now().Unix(),
		Count:    len(labeled),
		Elements: make([]output.ScanElement, 0, len(labeled)),
	}
	for _, l := range labeled {
		cx, cy := l.Element.Frame.Center()
		result.Elements = append(result.Elements, output.ScanElement{
			Label: l.Label,
			Role:  l.Element.Role,
			X:     l.Element.Frame.X,
			Y:     l.Element.Frame.Y,
			W:     l.Element.Frame.W,
			H:     l.Element.Frame.H,
			CX:    cx,
			CY:    cy,
		})
	}

	if annotatePath != "" {
		if err := writeAnnotated(annotatePath, labeled); err != nil {
			return err
		}
	}

	return output.Print(result)
}
