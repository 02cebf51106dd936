// Package cryptox implements the notes service's cryptography: sealing note
// fields with AES-256-GCM, signing sealed content with Ed25519, and argon2id
// password hashing. Keys are persisted to files and created on first use.
package cryptox
