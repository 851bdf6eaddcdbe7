package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
	pumps    int
}

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }
func (s *stubExec) pumpEvents()      { s.pumps++ }

func (s *stubExec) Register(ctx context.Context) error { s.calls = append(s.calls, "Register"); return nil }
func (s *stubExec) Login(ctx context.Context) error    { s.calls = append(s.calls, "Login"); return nil }
func (s *stubExec) Logout(ctx context.Context) error   { s.calls = append(s.calls, "Logout"); return nil }
func (s *stubExec) Products(ctx context.Context) error { s.calls = append(s.calls, "Products"); return nil }
func (s *stubExec) Refresh(ctx context.Context) error  { s.calls = append(s.calls, "Refresh"); return nil }
func (s *stubExec) ShowCart(ctx context.Context) error { s.calls = append(s.calls, "ShowCart"); return nil }
func (s *stubExec) Checkout(ctx context.Context) error { s.calls = append(s.calls, "Checkout"); return nil }

func (s *stubExec) AddToCart(ctx context.Context, args []string) error {
	s.calls = append(s.calls, "AddToCart "+strings.Join(args, " "))
	return nil
}

func (s *stubExec) SetQuantity(ctx context.Context, args []string) error {
	s.calls = append(s.calls, "SetQuantity "+strings.Join(args, " "))
	return nil
}

func (s *stubExec) RemoveFromCart(ctx context.Context, args []string) error {
	s.calls = append(s.calls, "RemoveFromCart "+strings.Join(args, " "))
	return nil
}

func runLines(t *testing.T, exec *stubExec, lines string) []string {
	t.Helper()
	var out []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		out = append(out, strings.TrimSpace(fmt.Sprintln(a...)))
		return 0, nil
	}
	defer func() { printlnFn = orig }()

	scanner := bufio.NewScanner(strings.NewReader(lines))
	runREPL(context.Background(), exec, func() string { return "test" }, scanner)
	return out
}

func TestREPL_DispatchesCommands(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"register", "Register"},
		{"login", "Login"},
		{"logout", "Logout"},
		{"products", "Products"},
		{"p", "Products"},
		{"refresh", "Refresh"},
		{"add 3", "AddToCart 3"},
		{"cart", "ShowCart"},
		{"c", "ShowCart"},
		{"qty 3 2", "SetQuantity 3 2"},
		{"remove 3", "RemoveFromCart 3"},
		{"checkout", "Checkout"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			exec := &stubExec{}
			runLines(t, exec, tt.line+"\n")
			assert.Equal(t, []string{tt.want}, exec.calls)
		})
	}
}

func TestREPL_ExitStopsLoop(t *testing.T) {
	exec := &stubExec{}
	out := runLines(t, exec, "exit\nlogin\n")

	assert.Empty(t, exec.calls, "nothing after exit must be dispatched")
	assert.Contains(t, out, "Bye!")
}

func TestREPL_QuitStopsLoop(t *testing.T) {
	exec := &stubExec{}
	out := runLines(t, exec, "quit\n")
	assert.Contains(t, out, "Bye!")
}

func TestREPL_UnknownCommand(t *testing.T) {
	exec := &stubExec{}
	out := runLines(t, exec, "frobnicate\n")

	assert.Empty(t, exec.calls)
	assert.Contains(t, out, "Unknown command: frobnicate")
}

func TestREPL_EmptyLineIsIgnored(t *testing.T) {
	exec := &stubExec{}
	out := runLines(t, exec, "\n   \nlogin\n")

	assert.Equal(t, []string{"Login"}, exec.calls)
	for _, line := range out {
		assert.NotContains(t, line, "Unknown command")
	}
}

func TestREPL_HelpDependsOnSessionState(t *testing.T) {
	exec := &stubExec{loggedIn: false}
	out := runLines(t, exec, "help\n")
	assert.Contains(t, out, "Available commands: register, login, exit")

	exec = &stubExec{loggedIn: true}
	out = runLines(t, exec, "help\n")
	assert.Contains(t, out, "Available commands: (p)roducts, refresh, add <id>, (c)art, qty <id> <n>, remove <id>, checkout, logout, exit")
}

func TestREPL_PumpsEventsBeforeEachPrompt(t *testing.T) {
	exec := &stubExec{}
	runLines(t, exec, "login\nlogin\n")

	// One pump per prompt: two commands plus the final EOF prompt.
	assert.Equal(t, 3, exec.pumps)
}
