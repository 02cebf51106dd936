// Package models holds the client's view of notes and drafts, plus the wire
// payloads exchanged with the notes service.
package models

import (
	"github.com/dmitrijs2005/sealnotes/internal/timex"
)

// PreviewLen is how many characters of the sealed title a list shows.
const PreviewLen = 50

// NoteSummary is a note as returned by list, search and create. Every text
// field is sealed by the service; the client treats them as opaque strings.
type NoteSummary struct {
	ID                int64      `json:"id"`
	EncryptedTitle    string     `json:"encrypted_title"`
	EncryptedContent  string     `json:"encrypted_content"`
	EncryptedKeywords string     `json:"encrypted_keywords"`
	Signature         string     `json:"signature"`
	CreatedAt         timex.Time `json:"created_at"`
	UpdatedAt         timex.Time `json:"updated_at"`
}

// Preview returns the first PreviewLen characters of the sealed title,
// followed by "..." when it was cut.
func (n NoteSummary) Preview() string {
	r := []rune(n.EncryptedTitle)
	if len(r) <= PreviewLen {
		return n.EncryptedTitle
	}
	return string(r[:PreviewLen]) + "..."
}

// NoteDetail is a single note decrypted by the service.
type NoteDetail struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Keywords  string     `json:"keywords"`
	Drawing   Image      `json:"drawing,omitempty"`
	CreatedAt timex.Time `json:"created_at"`
	UpdatedAt timex.Time `json:"updated_at"`
}

// HasDrawing reports whether the note carries an attached drawing.
func (n NoteDetail) HasDrawing() bool {
	return n.Drawing != ""
}

// Credentials is the body of register and login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is the body returned by login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// CreateNoteRequest is the flat wire payload of POST /notes/. Drawing is
// omitted from the JSON when empty.
type CreateNoteRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Keywords string `json:"keywords"`
	Drawing  Image  `json:"drawing,omitempty"`
}
