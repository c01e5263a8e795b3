// Package cli provides the interactive event client.
//
// It wires configuration, the encrypted on-device session store, the HTTP
// API client and the state stores, then serves commands from a REPL. On
// start the persisted token is restored; signing in or out resets every
// store and refreshes the signed-in user.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
