package main

import (
	"fmt"
	"os"

	apppkg "github.com/kk-code-lab/twinpane/internal/app"
	"github.com/kk-code-lab/twinpane/internal/config"
	"github.com/kk-code-lab/twinpane/internal/logging"
	"github.com/kk-code-lab/twinpane/internal/shellsetup"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile string
	cwdFile    string
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "twinpane [directory]",
		Short: "Dual-pane terminal file browser",
		Long: `twinpane lists a directory on the left and previews the selected entry on
the right. Files open in $EDITOR; marks, filtering, rename, create and delete
work without leaving the browser. Press ? inside for key bindings.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			startDir := ""
			if len(args) > 0 {
				startDir = args[0]
			}
			return runBrowser(cmd, opts, startDir)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/twinpane/config.yaml)")
	flags.String("editor", "", "editor command, overrides $VISUAL and $EDITOR")
	flags.String("log-file", "", "append logs to this file")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.Bool("no-watch", false, "do not refresh the listing on filesystem changes")
	flags.StringVar(&opts.cwdFile, "cwd-file", "", "write the last directory to this file on exit")

	cmd.AddCommand(newInitCmd())
	return cmd
}

func runBrowser(cmd *cobra.Command, opts rootOptions, startDir string) error {
	cfg, err := config.Load(config.Options{File: opts.configFile, Flags: cmd.Flags()})
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger, closer, err := logging.New(cfg.LogFile, level)
	if err != nil {
		return err
	}
	defer closer.Close()
	if cfg.File != "" {
		logger.WithField("file", cfg.File).Debug("config loaded")
	}

	app, err := apppkg.NewApplication(apppkg.Options{
		Config:   cfg,
		StartDir: startDir,
		Logger:   logger,
	})
	if err != nil {
		logger.WithError(err).Error("cannot start")
		return fmt.Errorf("cannot start: %w", err)
	}
	app.Run()
	lastDir := app.GetCurrentPath()
	if err := app.Close(); err != nil {
		logger.WithError(err).Warn("close failed")
	}

	if opts.cwdFile != "" && lastDir != "" {
		if err := os.WriteFile(opts.cwdFile, []byte(lastDir), 0o600); err != nil {
			return fmt.Errorf("cannot write %s: %w", opts.cwdFile, err)
		}
	}
	return nil
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [shell]",
		Short: "Print a shell function that changes into the last browsed directory",
		Long: `Print a wrapper function for bash, zsh, sh, ksh, fish or pwsh. Add it to
your shell startup file, for example:

    eval "$(twinpane init bash)"

The shell is detected from $SHELL when omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := ""
			if len(args) > 0 {
				shell = args[0]
			}
			return shellsetup.Write(cmd.OutOrStdout(), shell, shellsetup.Config{})
		},
	}
}
