package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"todo-editor/internal/script"

	"github.com/spf13/cobra"
)

type scriptOptions struct {
	format string
	pretty bool
	trace  bool
}

func newRunCmd(app *App) *cobra.Command {
	var opts scriptOptions

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Replay editor input events from a script file (or stdin) and print the list",
		Long:  "Replay editor input events from a script file (or stdin) and print the list.\n\nRun `todo docs script` for the script syntax.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || args[0] == "-" {
				return runScript(cmd, app, cmd.InOrStdin(), opts)
			}
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open script: %w", err)
			}
			defer f.Close()
			return runScript(cmd, app, f, opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", envOr("TODO_FORMAT", "text"), "Output format (text|markdown|json|edn)")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Pretty-print JSON/EDN output")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "Print the list after every script line")

	return cmd
}

func runScript(cmd *cobra.Command, app *App, in io.Reader, opts scriptOptions) error {
	ed, err := app.newEditor()
	if err != nil {
		return err
	}
	r := &script.Runner{
		Editor: ed,
		Out:    cmd.OutOrStdout(),
		Logger: app.logger,
		Format: strings.TrimSpace(opts.format),
		Pretty: opts.pretty,
		Trace:  opts.trace,
	}
	return r.Run(in)
}
