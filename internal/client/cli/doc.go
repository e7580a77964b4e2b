// Package cli provides the interactive SleepCoach command-line client.
//
// It wires configuration, the local session store, the API services and an
// interactive REPL. Each onboarding page of the product is a REPL screen
// identified by its route (see package flow). Navigate moves between screens:
// on every step it asks the flow resolver whether the screen may be shown,
// follows redirects, and runs the screen's controller, which prompts for one
// set of answers, submits them and names the next screen.
//
// At any prompt "back" returns to the command prompt and "logout" ends the
// session and opens the login screen.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
