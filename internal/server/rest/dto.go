package rest

import (
	"github.com/dmitrijs2005/sealnotes/internal/server/notes"
	"github.com/dmitrijs2005/sealnotes/internal/server/users"
	"github.com/dmitrijs2005/sealnotes/internal/timex"
	"github.com/gin-gonic/gin"
)

type credentials struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type userRead struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	CreatedAt timex.Time `json:"created_at"`
}

func newUserRead(u *users.User) userRead {
	return userRead{ID: u.ID, Username: u.Username, CreatedAt: timex.NewTime(u.CreatedAt)}
}

type noteCreate struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Keywords *string `json:"keywords"`
	Drawing  *string `json:"drawing"`
}

// noteRead is a note with its sealed fields, as returned by list, search
// and create.
type noteRead struct {
	ID                int64      `json:"id"`
	EncryptedTitle    string     `json:"encrypted_title"`
	EncryptedContent  string     `json:"encrypted_content"`
	EncryptedKeywords string     `json:"encrypted_keywords"`
	Signature         string     `json:"signature"`
	CreatedAt         timex.Time `json:"created_at"`
	UpdatedAt         timex.Time `json:"updated_at"`
}

func newNoteRead(n notes.Note) noteRead {
	return noteRead{
		ID:                n.ID,
		EncryptedTitle:    n.EncryptedTitle,
		EncryptedContent:  n.EncryptedContent,
		EncryptedKeywords: n.EncryptedKeywords,
		Signature:         n.Signature,
		CreatedAt:         timex.NewTime(n.CreatedAt),
		UpdatedAt:         timex.NewTime(n.UpdatedAt),
	}
}

func newNoteReads(ns []notes.Note) []noteRead {
	out := make([]noteRead, 0, len(ns))
	for _, n := range ns {
		out = append(out, newNoteRead(n))
	}
	return out
}

type noteDetail struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Keywords  string     `json:"keywords"`
	Drawing   *string    `json:"drawing"`
	CreatedAt timex.Time `json:"created_at"`
	UpdatedAt timex.Time `json:"updated_at"`
}

func newNoteDetail(d *notes.Detail) noteDetail {
	out := noteDetail{
		ID:        d.ID,
		Title:     d.Title,
		Content:   d.Content,
		Keywords:  d.Keywords,
		CreatedAt: timex.NewTime(d.CreatedAt),
		UpdatedAt: timex.NewTime(d.UpdatedAt),
	}
	if d.Drawing != "" {
		out.Drawing = &d.Drawing
	}
	return out
}

func detail(msg string) gin.H {
	return gin.H{"detail": msg}
}

// validationError mirrors the list-shaped detail of a 422 response.
func validationError(msg string, loc ...string) gin.H {
	return gin.H{"detail": []gin.H{{"loc": loc, "msg": msg, "type": "value_error"}}}
}
