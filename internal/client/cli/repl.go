package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Home(ctx context.Context) error
	Resume(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Analytics(ctx context.Context) error
	Status(ctx context.Context) error
	Health(ctx context.Context) error
}

const helpText = `Available commands:
  signup       create an account
  login        sign in
  resume       continue onboarding where you left off
  dashboard    show your dashboard
  analytics    show onboarding analytics
  status       show the local session
  health       check the API
  logout       sign out
  exit | quit  leave the program
At any question, type 'back' to return here or 'logout' to sign out.`

// runREPL starts a simple read–eval–print loop for the SleepCoach CLI.
//
// It reads a line from in, parses the first token as the command, and
// dispatches to methods on a. Errors returned by commands are printed and
// the loop continues. The loop exits on end of input or when the user types
// "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "sleepcoach%s> ", prefixSpace(statusFn()))
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(out)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		var cmdErr error
		switch cmd := strings.ToLower(parts[0]); cmd {
		case "help":
			fmt.Fprintln(out, helpText)
		case "home":
			cmdErr = a.Home(ctx)
		case "signup", "register":
			cmdErr = a.Signup(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "resume", "onboarding":
			cmdErr = a.Resume(ctx)
		case "dashboard":
			cmdErr = a.Dashboard(ctx)
		case "analytics":
			cmdErr = a.Analytics(ctx)
		case "status":
			cmdErr = a.Status(ctx)
		case "health":
			cmdErr = a.Health(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if errors.Is(cmdErr, io.EOF) {
			fmt.Fprintln(out)
			return
		}
		if cmdErr != nil {
			fmt.Fprintln(out, "Error:", cmdErr)
		}
	}
}

func prefixSpace(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}
