package main

import (
	"fmt"
	"io"
	"os"

	"lugisami/internal/config"
	"lugisami/internal/log"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
)

type rootOptions struct {
	cfgFile string
	debug   bool
	cfg     *config.Config
}

// NewRootCmd creates the root command. Without a subcommand it opens the GUI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "lugisami",
		Short:   "ISAMI lug input generator",
		Long:    `lugisami prepares ISAMI input files for lug analyses and extracts Kt from ISAMI HTML or CZM reports.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, opts)
		},
		SilenceUsage: true,
	}

	// Prepend the banner to help output
	helpTemplate := banner() + "\n\n" + rootCmd.UsageTemplate()
	rootCmd.SetUsageTemplate(helpTemplate)
	rootCmd.SetHelpTemplate(helpTemplate)

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.config/lugisami/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(guiCmd(opts))
	rootCmd.AddCommand(tuiCmd(opts))
	rootCmd.AddCommand(generateCmd(opts))
	rootCmd.AddCommand(helpDocCmd(opts))
	rootCmd.AddCommand(configCmd(opts))

	return rootCmd
}

func banner() string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#4F4FB7")).
		Bold(true).
		Padding(0, 2).
		Render("ISAMI LUG " + version)
}

// load reads the configuration. A missing file yields the defaults; a broken
// one is an error.
func (o *rootOptions) load() error {
	var err error
	if o.cfgFile != "" {
		o.cfg, err = config.LoadConfigFile(o.cfgFile)
	} else {
		o.cfg, err = config.LoadConfig()
	}
	if err != nil {
		return err
	}
	log.SetDebug(o.debug || o.cfg.Logging.Debug)
	return nil
}

// configureLogging points the package logger at out plus the configured file
func (o *rootOptions) configureLogging(out io.Writer) {
	var logOpts []log.Option
	logOpts = append(logOpts, log.WithOutput(out))
	if o.cfg.Logging.JSON {
		logOpts = append(logOpts, log.WithJSON())
	}
	if o.cfg.Logging.File != "" {
		logOpts = append(logOpts, log.WithFile(o.cfg.Logging.File))
	}
	log.Configure(logOpts...)
}

// Entry point for the application
func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
