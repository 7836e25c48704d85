package main

import (
	"fmt"
	"io"
	"time"

	"formbuilder/src/client"
	"formbuilder/src/renderer"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type cli struct {
	out     io.Writer
	server  string
	timeout time.Duration
	verbose bool

	log    *zap.Logger
	api    *client.Client
	prompt func(io.Writer) renderer.PromptDriver
}

// newRootCmd builds the command tree. prompt overrides the terminal prompter when non-nil.
func newRootCmd(out io.Writer, prompt func(io.Writer) renderer.PromptDriver) *cobra.Command {
	c := &cli{out: out, prompt: prompt}
	if c.prompt == nil {
		c.prompt = renderer.NewSurveyDriver
	}

	root := &cobra.Command{
		Use:           "formctl",
		Short:         "Build, share and answer forms from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if c.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			if c.log, err = config.Build(); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.api = client.New(c.server, c.timeout)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.log != nil {
				_ = c.log.Sync()
			}
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&c.server, "server", "http://localhost:8888", "form server base URL")
	flags.DurationVar(&c.timeout, "timeout", 10*time.Second, "per-request timeout")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		c.createCmd(),
		c.showCmd(),
		c.fillCmd(),
		c.respondCmd(),
		c.statsCmd(),
		c.shareCmd(),
	)
	return root
}
