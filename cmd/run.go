package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yhao3/hinto/internal/config"
	"github.com/yhao3/hinto/internal/hook"
	"github.com/yhao3/hinto/internal/logging"
	"github.com/yhao3/hinto/internal/mode"
	"github.com/yhao3/hinto/internal/model"
	"github.com/yhao3/hinto/internal/overlay"
	"github.com/yhao3/hinto/internal/platform"
	"github.com/yhao3/hinto/internal/scan"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive mode daemon",
	Long: `Run the global key monitor. Press the activation hotkey to label every
clickable element in the frontmost window, type a label, and press enter
to click it. Tab switches to scroll mode (hjkl), escape cancels.

Configuration comes from the environment or a .env file next to the
binary: HINTO_HOTKEY, HINTO_ALPHABET, HINTO_AUTO_CLICK, HINTO_SCAN_TIMING,
HINTO_LOG_LEVEL.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().String("hotkey", "", "Activation hotkey, overrides HINTO_HOTKEY")
	runCmd.Flags().Bool("timing", false, "Log per-scanner timing")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetString("hotkey"); v != "" {
		cfg.Hotkey = v
	}
	if v, _ := cmd.Flags().GetBool("timing"); v {
		cfg.ScanTiming = true
	}

	log, err := logging.New(logging.Options{Level: cfg.LogLevel})
	if err != nil {
		return err
	}

	hotkey, err := hook.ParseHotkey(cfg.Hotkey)
	if err != nil {
		return err
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	builder := scan.NewBuilder(provider.AX, log, cfg.ScanTiming)
	discover := func() ([]model.Labeled, error) {
		elements, err := builder.Discover()
		if err != nil {
			return nil, err
		}
		return model.AssignLabels(elements, cfg.Alphabet), nil
	}

	ctrl := mode.NewController(
		mode.Config{AutoClick: cfg.AutoClick},
		log,
		discover,
		&overlay.Debug{Log: log},
		provider.Input,
	)

	// The hook invokes both callbacks from its single event loop, which
	// keeps all controller access on one goroutine.
	monitor := hook.NewMonitor(hotkey, log, ctrl.Toggle, ctrl.HandleKey)
	if err := monitor.Start(); err != nil {
		return err
	}
	defer monitor.Stop()

	log.Info("hinto running", "hotkey", hotkey.Spec)
	fmt.Fprintf(os.Stderr, "hinto running; press %s to activate, ctrl-c to quit\n", hotkey.Spec)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	log.Info("shutting down")
	return nil
}
