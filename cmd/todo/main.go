package main

import (
	"os"
	"strings"

	"todo-editor/internal/cli"
)

func isScriptPath(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasSuffix(s, ".todo") && len(s) > len(".todo")
}

func rewriteDirectScriptArgs(argv []string) []string {
	// Convenience: `todo demo.todo` works like `todo run demo.todo`.
	//
	// Cobra treats the first non-flag token as a subcommand, so we rewrite argv before parsing.
	// Persistent flags may come first (e.g. `todo --ids clock demo.todo`), so we look for the
	// first positional token, not just argv[1].
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--config":    true,
		"--ids":       true,
		"--log-file":  true,
		"--log-level": true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && isScriptPath(argv[i+1]) {
				return insertRun(argv, i)
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++ // skip value
			}
			continue
		}

		if isScriptPath(a) {
			return insertRun(argv, i)
		}
		return argv
	}
	return argv
}

func insertRun(argv []string, at int) []string {
	out := make([]string, 0, len(argv)+1)
	out = append(out, argv[:at]...)
	out = append(out, "run")
	out = append(out, argv[at:]...)
	return out
}

func main() {
	os.Args = rewriteDirectScriptArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
