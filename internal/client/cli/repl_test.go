package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }
func (s *stubExec) Register(ctx context.Context) error {
	s.calls = append(s.calls, "register")
	return nil
}
func (s *stubExec) Login(ctx context.Context) error {
	s.calls = append(s.calls, "login")
	return nil
}
func (s *stubExec) Logout(ctx context.Context) error {
	s.calls = append(s.calls, "logout")
	return nil
}
func (s *stubExec) ShowTab(ctx context.Context, tab Tab) error {
	s.calls = append(s.calls, "tab:"+string(tab))
	return nil
}
func (s *stubExec) AddEntry(ctx context.Context) error {
	s.calls = append(s.calls, "add")
	return nil
}
func (s *stubExec) DeleteEntry(ctx context.Context) error {
	s.calls = append(s.calls, "delete")
	return nil
}
func (s *stubExec) Refresh(ctx context.Context) error {
	s.calls = append(s.calls, "refresh")
	return nil
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runWithInput(t *testing.T, exec *stubExec, input string) []string {
	t.Helper()
	lines := captureOutput(t)
	scanner := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), exec, func() string { return "(test)" }, scanner)
	return *lines
}

func TestREPL_DispatchesCommands(t *testing.T) {
	exec := &stubExec{loggedIn: true}
	runWithInput(t, exec, "dashboard\nanalytics\nhistory\ninsights\nadd\ndelete\nrefresh\nlogout\nexit\n")

	require.Equal(t, []string{
		"tab:dashboard", "tab:analytics", "tab:history", "tab:insights",
		"add", "delete", "refresh", "logout",
	}, exec.calls)
}

func TestREPL_AuthCommands(t *testing.T) {
	exec := &stubExec{}
	runWithInput(t, exec, "register\nlogin\nquit\n")
	require.Equal(t, []string{"register", "login"}, exec.calls)
}

func TestREPL_HelpReflectsAuthState(t *testing.T) {
	out := runWithInput(t, &stubExec{}, "help\nexit\n")
	require.Contains(t, strings.Join(out, ""), "register, login, exit")

	out = runWithInput(t, &stubExec{loggedIn: true}, "help\nexit\n")
	require.Contains(t, strings.Join(out, ""), "dashboard, analytics, history, insights")
}

func TestREPL_UnknownCommand(t *testing.T) {
	out := runWithInput(t, &stubExec{}, "frobnicate\nexit\n")
	require.Contains(t, strings.Join(out, ""), "Unknown command: frobnicate")
}

func TestREPL_BlankLinesIgnored(t *testing.T) {
	exec := &stubExec{}
	runWithInput(t, exec, "\n   \nexit\n")
	require.Empty(t, exec.calls)
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	exec := &stubExec{}
	runWithInput(t, exec, "login\n") // no exit command, scanner hits EOF
	require.Equal(t, []string{"login"}, exec.calls)
}
