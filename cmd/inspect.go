package cmd

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"firestige.xyz/strix/internal/config"
	"firestige.xyz/strix/internal/core"
	"firestige.xyz/strix/internal/decode"
	"firestige.xyz/strix/internal/inspect"
	"firestige.xyz/strix/internal/log"
	"firestige.xyz/strix/internal/pipeline"
	"firestige.xyz/strix/internal/sink/console"
	"firestige.xyz/strix/internal/source/file"
)

var profilePath string

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspect a pcap capture",
	Long: `
Read a pcap file and print one line per decoded datagram.

Examples:
  strix inspect                         # Use input/output from strix.yml
  strix inspect -c voice.yml            # Use an alternate config
  strix inspect -p discord.yml          # Overlay an inspection profile
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(configFile)
		if err != nil {
			exitWithError("failed to load config", err)
		}

		if profilePath != "" {
			profile, err := config.LoadProfile(profilePath)
			if err != nil {
				exitWithError("failed to load profile", err)
			}
			cfg.ApplyProfile(profile)
		}

		if err := log.Init(cfg.Log); err != nil {
			exitWithError("failed to init logging", err)
		}

		if err := runInspect(cfg); err != nil {
			exitWithError("inspect failed", err)
		}
	},
}

func init() {
	inspectCmd.Flags().StringVarP(&profilePath, "profile", "p", "",
		"inspection profile file")
}

// runInspect wires source, decoder, inspector, and sink into a pipeline
// and runs it until the capture is exhausted or the process is signalled.
func runInspect(cfg *config.Config) error {
	src, err := file.NewSource(cfg.Input.File)
	if err != nil {
		return err
	}
	if err := src.Start(); err != nil {
		return err
	}
	if err := src.SetFilter(cfg.Input.Filter); err != nil {
		src.Stop()
		return err
	}

	inspector, err := inspect.NewFromMap(cfg.Inspect)
	if err != nil {
		src.Stop()
		return err
	}

	p := pipeline.New(pipeline.Config{
		Source:     src,
		Decoder:    decode.NewUDPDecoder(src.LinkType()),
		Inspector:  inspector,
		Sink:       console.NewSink(),
		BufferSize: cfg.Input.BufferSize,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Interrupt is a clean shutdown, not a failure.
	if err := p.Run(ctx); err != nil && !errors.Is(err, core.ErrPipelineStopped) {
		return err
	}
	return nil
}
