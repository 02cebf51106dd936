package models

import (
	"fmt"

	"github.com/dmitrijs2005/sealnotes/internal/common"
)

// DrawingPlaceholder is sent as content for notes authored as drawings.
const DrawingPlaceholder = common.DrawingPlaceholder

// Image is a raster drawing encoded as a data URL
// ("data:image/png;base64,...").
type Image string

// Mode selects how the body of a draft is authored.
type Mode string

const (
	ModeText    Mode = "text"
	ModeDrawing Mode = "drawing"
)

// ParseMode validates s as a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeText, ModeDrawing:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mode %q", s)
	}
}

// Draft is the note being composed. Content is only meaningful in text mode
// and PendingDrawing only in drawing mode.
type Draft struct {
	Title          string
	Keywords       string
	Mode           Mode
	Content        string
	PendingDrawing Image
}

// Body is the authored part of a draft: TextBody or DrawingBody.
type Body interface {
	isBody()
}

type TextBody struct {
	Text string
}

// DrawingBody holds the captured image; Image may be empty when the user
// switched to drawing mode without capturing anything.
type DrawingBody struct {
	Image Image
}

func (TextBody) isBody()    {}
func (DrawingBody) isBody() {}

// Body returns the variant selected by the draft's mode.
func (d Draft) Body() Body {
	if d.Mode == ModeDrawing {
		return DrawingBody{Image: d.PendingDrawing}
	}
	return TextBody{Text: d.Content}
}

// NewCreateNoteRequest flattens a body into the wire payload.
func NewCreateNoteRequest(title, keywords string, body Body) CreateNoteRequest {
	req := CreateNoteRequest{Title: title, Keywords: keywords}

	switch b := body.(type) {
	case DrawingBody:
		req.Content = DrawingPlaceholder
		req.Drawing = b.Image
	case TextBody:
		req.Content = b.Text
	}
	return req
}
