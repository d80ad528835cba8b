package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(call string) { s.calls = append(s.calls, call) }

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }

func (s *stubExec) Register(context.Context) { s.record("register"); s.loggedIn = true }
func (s *stubExec) Login(context.Context)    { s.record("login"); s.loggedIn = true }
func (s *stubExec) Logout(context.Context)   { s.record("logout"); s.loggedIn = false }
func (s *stubExec) List(context.Context)     { s.record("list") }
func (s *stubExec) Board(context.Context)    { s.record("board") }

func (s *stubExec) Add(_ context.Context, title string)    { s.record("add " + title) }
func (s *stubExec) AddSub(_ context.Context, title string) { s.record("addsub " + title) }

func (s *stubExec) Toggle(_ context.Context, args []string)  { s.record("toggle " + strings.Join(args, " ")) }
func (s *stubExec) Del(_ context.Context, args []string)     { s.record("del " + strings.Join(args, " ")) }
func (s *stubExec) Open(_ context.Context, args []string)    { s.record("open " + strings.Join(args, " ")) }
func (s *stubExec) Move(_ context.Context, args []string)    { s.record("move " + strings.Join(args, " ")) }
func (s *stubExec) EditSub(_ context.Context, args []string) { s.record("editsub " + strings.Join(args, " ")) }
func (s *stubExec) DelSub(_ context.Context, args []string)  { s.record("delsub " + strings.Join(args, " ")) }

func runScript(t *testing.T, exec *stubExec, script string) []string {
	t.Helper()

	var output []string
	restore := printlnFn
	printlnFn = func(a ...any) {
		line := make([]string, len(a))
		for i, v := range a {
			line[i] = v.(string)
		}
		output = append(output, strings.Join(line, " "))
	}
	defer func() { printlnFn = restore }()

	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), exec, func() string { return "status" }, scanner)
	return output
}

func TestREPL_DispatchesCommands(t *testing.T) {
	exec := &stubExec{loggedIn: true}
	runScript(t, exec, strings.Join([]string{
		"list",
		"add buy milk",
		"toggle 1 completed",
		"open 1",
		"board",
		"addsub draft outline",
		"move 2 review",
		"editsub 2 new title",
		"delsub 2",
		"del 1",
		"exit",
	}, "\n"))

	assert.Equal(t, []string{
		"list",
		"add buy milk",
		"toggle 1 completed",
		"open 1",
		"board",
		"addsub draft outline",
		"move 2 review",
		"editsub 2 new title",
		"delsub 2",
		"del 1",
	}, exec.calls)
}

func TestREPL_GuardsAuthenticatedCommands(t *testing.T) {
	exec := &stubExec{}
	output := runScript(t, exec, "list\nboard\nlogin\nlist\n")

	assert.Equal(t, []string{"login", "list"}, exec.calls,
		"commands before login must not reach the app")

	var unknown int
	for _, line := range output {
		if strings.HasPrefix(line, "Unknown command") {
			unknown++
		}
	}
	assert.Equal(t, 2, unknown)
}

func TestREPL_HelpFollowsLoginState(t *testing.T) {
	exec := &stubExec{}
	output := runScript(t, exec, "help\nregister\nhelp\nexit\n")

	var helps []string
	for _, line := range output {
		if strings.HasPrefix(line, "Available commands") {
			helps = append(helps, line)
		}
	}
	if assert.Len(t, helps, 2) {
		assert.Contains(t, helps[0], "register, login")
		assert.Contains(t, helps[1], "board")
	}
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	exec := &stubExec{loggedIn: true}
	runScript(t, exec, "list")
	assert.Equal(t, []string{"list"}, exec.calls)
}

func TestREPL_QuitAlias(t *testing.T) {
	exec := &stubExec{loggedIn: true}
	runScript(t, exec, "quit\nlist\n")
	assert.Empty(t, exec.calls)
}
