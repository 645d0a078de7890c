// Package cli provides the interactive Ecom command-line client.
//
// It wires configuration, the local session store, the identity gateway and
// an interactive REPL that walks the sign-in flow. Typical flow: check for a
// stored session, prompt for credentials if there is none, run the phone
// verification step, and land on the signed-in command set.
//
// Key features:
//   - Login / Sign-up / Logout against the identity provider
//   - Phone verification via the simulated one-time-code challenge
//   - Profile display, update and picture upload
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, NewApp, and runREPL for details.
package cli
