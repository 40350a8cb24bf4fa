package main

import (
	"fmt"
	"io"

	"lugisami/internal/collaborator"
	"lugisami/internal/config"
	"lugisami/internal/controller"
	"lugisami/internal/errors"
	"lugisami/internal/form"
	"lugisami/internal/gui"
	"lugisami/internal/help"
	"lugisami/internal/log"
	"lugisami/internal/report"
	"lugisami/internal/tui"
	"lugisami/internal/workflow"

	"github.com/spf13/cobra"
)

// errGenerateFailed makes the process exit non-zero after a failed report.
// The report itself has already been printed.
var errGenerateFailed = errors.New("generate failed")

// runGUI opens the window, or the terminal UI in builds without one
func runGUI(cmd *cobra.Command, opts *rootOptions) error {
	if !gui.IsGUIAvailable() {
		log.Warn("GUI not available in this build, starting the terminal interface")
		return runTUI(cmd, opts)
	}
	opts.configureLogging(cmd.ErrOrStderr())
	return gui.Start(cmd.Context(), opts.cfg, collaborator.Factories(opts.cfg, nil))
}

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	// Log lines would corrupt the screen; only the log file receives them
	opts.configureLogging(io.Discard)
	if err := tui.Run(cmd.Context(), opts.cfg, collaborator.Factories(opts.cfg, nil)); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

// guiCmd creates the GUI command for the CLI
func guiCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Launch the graphical user interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, opts)
		},
	}
}

// tuiCmd represents the TUI command
func tuiCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the terminal user interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}
}

// generateCmd runs one Generate cycle without a user interface
func generateCmd(opts *rootOptions) *cobra.Command {
	var (
		workflowName string
		input        string
		folder       string
		name         string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run a workflow headless and print its report",
		Long: `Run one workflow with the given paths and print the report the
form would show. The exit status is non-zero when the report is an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.configureLogging(cmd.ErrOrStderr())

			choice, err := workflow.ParseChoice(workflowName)
			if err != nil {
				return err
			}

			ctrl := newHeadlessController(opts.cfg, collaborator.Factories(opts.cfg, nil), report.NewWriter(cmd.OutOrStdout()))
			ctrl.Selector().Set(choice)
			if err := fill(ctrl.Fields(), input, folder, name); err != nil {
				return err
			}

			if !ctrl.Generate(cmd.Context()) {
				return errGenerateFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workflowName, "workflow", "w", "", "workflow to run: create-input or read-report")
	cmd.Flags().StringVarP(&input, "input", "i", "", "input file")
	cmd.Flags().StringVarP(&folder, "output-folder", "o", "", "output folder")
	cmd.Flags().StringVarP(&name, "output-name", "n", "", "output file name")

	return cmd
}

func newHeadlessController(cfg *config.Config, collaborators workflow.Collaborators, out report.Reporter) *controller.Controller {
	return controller.New(
		form.NewRegistry(form.DefaultFields()...),
		workflow.NewSelector(),
		workflow.NewDispatcher(collaborators),
		out,
		help.NewLauncher(cfg.Help.Document),
	)
}

// fill sets the form from flags. Path flags go through the picker bridge so
// they follow the same rules as a dialog selection.
func fill(fields *form.Registry, input, folder, name string) error {
	bridge := form.NewBridge(fields, form.Preset{File: input, Folder: folder})
	if err := bridge.PickFile(form.InputFile); err != nil {
		return err
	}
	if err := bridge.PickFolder(form.OutputFolder); err != nil {
		return err
	}
	return fields.SetValue(form.OutputName, name)
}

// helpDocCmd opens the help document
func helpDocCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "help-doc",
		Short: "Open the help document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.configureLogging(cmd.ErrOrStderr())
			launcher := help.NewLauncher(opts.cfg.Help.Document)
			if err := launcher.Launch(); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), controller.MsgHelpUnavailable)
				return err
			}
			return nil
		},
	}
}

// configCmd manages the configuration file
func configCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
		// The existing file may be the broken one being replaced
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.cfgFile
			if len(args) > 0 {
				path = args[0]
			}
			if path == "" {
				var err error
				if path, err = config.DefaultPath(); err != nil {
					return err
				}
			}
			if err := config.SaveConfig(config.New(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
			return nil
		},
	})

	return cmd
}
