package notes

import "time"

// Note is a stored note. Every text field is sealed; EncryptedDrawing holds a
// blobstore reference or "" when the note has no drawing.
type Note struct {
	ID                int64
	UserID            int64
	EncryptedTitle    string
	EncryptedContent  string
	EncryptedKeywords string
	EncryptedDrawing  string
	Signature         string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Detail is a note opened for its owner.
type Detail struct {
	ID        int64
	Title     string
	Content   string
	Keywords  string
	Drawing   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Draft is what a client submits. An empty Drawing means none.
type Draft struct {
	Title    string
	Content  string
	Keywords string
	Drawing  string
}
