package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type runResult struct {
	stdout string
	stderr string
	err    error
}

func runCLI(t *testing.T, stdin string, args ...string) runResult {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TODO_CONFIG", "")
	t.Setenv("TODO_IDS", "")
	t.Setenv("TODO_FORMAT", "")

	app := &App{interactive: func() bool { return false }}
	cmd := newRootCmd(app)
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if args == nil {
		// cobra falls back to os.Args when args is nil.
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return runResult{stdout: out.String(), stderr: errOut.String(), err: err}
}

func TestRoot_NonInteractiveRunsScriptFromStdin(t *testing.T) {
	res := runCLI(t, "add Buy milk\nedit 1\ntype Buy oat milk\nsubmit\n")
	if res.err != nil {
		t.Fatalf("execute: %v\nstderr: %s", res.err, res.stderr)
	}
	want := "# Todo\n> (Add a new Todo) [Add]\n1. Buy oat milk  [Edit] [Delete]\n"
	if res.stdout != want {
		t.Fatalf("stdout:\n got: %q\nwant: %q", res.stdout, want)
	}
}

func TestRoot_NonInteractiveHonoursFormatEnv(t *testing.T) {
	app := &App{interactive: func() bool { return false }}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TODO_CONFIG", "")
	t.Setenv("TODO_IDS", "")
	t.Setenv("TODO_FORMAT", "json")

	cmd := newRootCmd(app)
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader("add A\n"))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), `"rows":[{"position":1,"id":1,"name":"A"}]`) {
		t.Fatalf("expected json output; got %q", out.String())
	}
}

func TestRoot_RejectsPositionalArgs(t *testing.T) {
	res := runCLI(t, "", "whatever")
	if res.err == nil {
		t.Fatalf("expected error for unexpected positional arg")
	}
}

func TestRun_FileWithTraceAndJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "demo.todo")
	if err := os.WriteFile(p, []byte("add A\nadd B\ndelete 1\n"), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}

	res := runCLI(t, "", "run", p, "--format", "json")
	if res.err != nil {
		t.Fatalf("execute: %v", res.err)
	}
	if !strings.Contains(res.stdout, `"rows":[{"position":1,"id":2,"name":"B"}]`) {
		t.Fatalf("unexpected json: %s", res.stdout)
	}

	res = runCLI(t, "", "run", p, "--trace")
	if res.err != nil {
		t.Fatalf("execute: %v", res.err)
	}
	if n := strings.Count(res.stdout, "$ "); n != 3 {
		t.Fatalf("expected 3 traced lines; got %d:\n%s", n, res.stdout)
	}
}

func TestRun_MissingFile(t *testing.T) {
	res := runCLI(t, "", "run", filepath.Join(t.TempDir(), "missing.todo"))
	if res.err == nil || !strings.Contains(res.err.Error(), "open script") {
		t.Fatalf("expected open error; got %v", res.err)
	}
}

func TestRun_ParseErrorSurfaces(t *testing.T) {
	res := runCLI(t, "add A\nbogus\n", "run")
	if res.err == nil || !strings.Contains(res.err.Error(), "line 2") {
		t.Fatalf("expected parse error on line 2; got %v", res.err)
	}
}

func TestClockIDsFlag(t *testing.T) {
	res := runCLI(t, "add A\nadd B\n", "run", "--ids", "clock", "--format", "json")
	if res.err != nil {
		t.Fatalf("execute: %v", res.err)
	}
	if strings.Contains(res.stdout, `"id":1,`) {
		t.Fatalf("expected timestamp ids, got counter ids: %s", res.stdout)
	}

	res = runCLI(t, "", "run", "--ids", "uuid")
	if res.err == nil || !strings.Contains(res.err.Error(), "unknown id generator") {
		t.Fatalf("expected generator error; got %v", res.err)
	}
}

func TestConfigFile_SeedsCounter(t *testing.T) {
	p := filepath.Join(t.TempDir(), "todo.toml")
	if err := os.WriteFile(p, []byte("id_seed = 41\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	res := runCLI(t, "add A\n", "--config", p, "run", "--format", "json")
	if res.err != nil {
		t.Fatalf("execute: %v", res.err)
	}
	if !strings.Contains(res.stdout, `"id":42`) {
		t.Fatalf("expected seeded id 42: %s", res.stdout)
	}
}

func TestLogFile_ReceivesDispatchLogs(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "todo.log")
	res := runCLI(t, "add A\n", "--log-file", logPath, "--log-level", "debug")
	if res.err != nil {
		t.Fatalf("execute: %v", res.err)
	}
	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "dispatch") {
		t.Fatalf("expected dispatch log lines; got %q", string(b))
	}
	if res.stderr != "" {
		t.Fatalf("logs should go to the file, not stderr: %q", res.stderr)
	}
}

func TestDocs(t *testing.T) {
	res := runCLI(t, "", "docs")
	if res.err != nil {
		t.Fatalf("execute: %v", res.err)
	}
	if res.stdout != "config\nkeys\nscript\n" {
		t.Fatalf("topics: %q", res.stdout)
	}

	res = runCLI(t, "", "docs", "keys", "--raw")
	if res.err != nil || !strings.HasPrefix(res.stdout, "# Keys") {
		t.Fatalf("raw docs: err=%v out=%q", res.err, res.stdout)
	}

	res = runCLI(t, "", "docs", "script")
	if res.err != nil || !strings.Contains(res.stdout, "Script mode") {
		t.Fatalf("rendered docs: err=%v out=%q", res.err, res.stdout)
	}

	res = runCLI(t, "", "docs", "nope")
	if res.err == nil {
		t.Fatalf("expected unknown topic error")
	}
}
