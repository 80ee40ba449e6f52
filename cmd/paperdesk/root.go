package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/paperdesk/config"
)

// Set via -ldflags "-X main.version=..."
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app holds state shared by all commands
type app struct {
	configPath string
	verbose    bool
	debug      bool

	config *config.Result
}

func newApp() *app {
	return &app{}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "paperdesk",
		Short:        "A terminal desk of papers you can drag and rotate",
		Long:         `paperdesk lays sticky-note style papers on the terminal. Drag with the left button to move a paper, drag with the right button to rotate it.`,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			res, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.config = res
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDesk(cmd.Context())
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("paperdesk %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	flags.BoolVar(&a.debug, "debug", false, "write a debug log under "+logDir+"/")

	root.AddCommand(a.runCommand())
	root.AddCommand(a.replayCommand())
	root.AddCommand(a.configCommand())
	root.AddCommand(a.versionCommand())

	return root
}

// level resolves the log level from config, raised to debug by --verbose or --debug
func (a *app) level() log.Level {
	if a.verbose || a.debug {
		return log.DebugLevel
	}
	if a.config == nil {
		return log.InfoLevel
	}
	lvl, err := log.ParseLevel(a.config.Config.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// reportConfig logs where the config came from and what it did not understand
func (a *app) reportConfig(logger *log.Logger) {
	logger.Debug("config loaded", "source", a.config.Source, "papers", len(a.config.Config.Papers))
	for _, key := range a.config.Unused {
		logger.Warn("unknown config key", "key", key)
	}
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// Version needs no config
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "paperdesk %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
		},
	}
}

func (a *app) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the desk configuration",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:               "init [path]",
		Short:             "Write the built-in desk to a config file",
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath()
			if a.configPath != "" {
				path = a.configPath
			}
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Write(path, config.Default()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.config.Config.Encode()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n%s", a.config.Source, data)
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
