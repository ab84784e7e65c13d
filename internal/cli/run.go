package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Delay   time.Duration
	LogFile string
	Seed    uint64
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate templates continuously until stopped",
		Long: `Run the generator in endless mode: one template per --delay until
interrupted. A failed cycle is logged and retried after twice the delay.

On Ctrl-C or SIGTERM the cycle in progress completes before the generator
stops. Log lines also go to --log-file.

Example:
  catalogue run --delay 10s
  catalogue run --log-file /var/log/catalogue.log --verbose`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEndless(opts, cmd)
		},
	}

	cmd.Flags().DurationVar(&opts.Delay, "delay", 0, "pause between templates (default from config, 5s)")
	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "append log lines to this file (default from config)")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "random seed for reproducible output (0 = random)")

	return cmd
}

func runEndless(opts *RunOptions, cmd *cobra.Command) error {
	cfg, f, _, err := opts.setup(cmd)
	if err != nil {
		return err
	}
	delay := cfg.Delay
	if cmd.Flags().Changed("delay") {
		delay = opts.Delay
	}
	if delay < 0 {
		return f.Fail(ExitCommandError, ErrCodeGeneric, fmt.Sprintf("invalid delay %s", delay), nil)
	}
	logPath := cfg.LogFile
	if cmd.Flags().Changed("log-file") {
		logPath = opts.LogFile
	}

	// Log to stderr and, when configured, the log file
	var logFile io.Writer
	if logPath != "" {
		lf, err := openLogFile(logPath)
		if err != nil {
			return f.Fail(ExitCommandError, ErrCodeWrite, "failed to open log file", err)
		}
		defer lf.Close()
		logFile = lf
	}
	logger := newLogger(opts.logLevel(), cmd.ErrOrStderr(), logFile)

	runner, index, err := newRunner(cfg, f, logger, opts.Seed, nil)
	if err != nil {
		return err
	}
	defer closeIndex(index, logger)

	ctx, stop := signalContext(cmd, logger)
	defer stop()

	if f.Format == "text" {
		fmt.Fprintf(cmd.OutOrStdout(), "Generator started (one template every %s).\n", delay)
		fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl-C to stop.")
	}

	sum := runner.Endless(ctx, delay)

	return f.Result(sum, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Generator stopped. Total generated: %d (failed cycles: %d)\n", sum.Generated, sum.Failed)
		return err
	})
}
