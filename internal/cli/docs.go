package cli

import (
	"fmt"
	"os"
	"strings"

	"todo-editor/internal/docs"

	"github.com/spf13/cobra"
)

func newDocsCmd(app *App) *cobra.Command {
	var raw bool
	var width int

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show built-in documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				_, err := fmt.Fprintln(out, strings.Join(docs.Topics(), "\n"))
				return err
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return fmt.Errorf("unknown docs topic: %q (run `todo docs` to list topics)", topic)
			}
			if raw {
				_, err := fmt.Fprint(out, body)
				return err
			}

			rendered, err := docs.Render(body, width, docsStyle(app, out == os.Stdout))
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width for rendered output")

	return cmd
}

// docsStyle picks a glamour style: plain when not writing to a terminal, else by theme.
func docsStyle(app *App, toStdout bool) string {
	if !toStdout || !isTerminal(os.Stdout.Fd()) || strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		return "notty"
	}
	if strings.EqualFold(strings.TrimSpace(app.cfg.TUI.Theme), "light") {
		return "light"
	}
	return "dark"
}
