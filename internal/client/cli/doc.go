// Package cli is the interactive SealNotes terminal client.
//
// It hosts the client core (services.Notebook) behind a REPL: register,
// log in, list and search notes, open a note, and author new notes either as
// typed text or as a drawing loaded from an image file. A background watcher
// probes the service and shows online/offline status in the prompt.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
