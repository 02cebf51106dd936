package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/sealnotes/internal/client/models"
	"github.com/dmitrijs2005/sealnotes/internal/client/services"
	"github.com/dmitrijs2005/sealnotes/internal/filex"
)

// getMultiline is swapped in tests.
var getMultiline = GetMultiline

// AddNote walks through the draft fields and submits. Pressing Enter keeps
// a field's current value, so a failed save can be retried without
// retyping.
func (a *App) AddNote(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.println("Please log in first.")
		return nil
	}

	draft := a.nb.Composer.Draft()

	title, err := promptKeep(a.reader, a.out, "Title", draft.Title)
	if err != nil {
		return err
	}
	keywords, err := promptKeep(a.reader, a.out, "Keywords (comma-separated)", draft.Keywords)
	if err != nil {
		return err
	}
	a.nb.Composer.SetTitle(title)
	a.nb.Composer.SetKeywords(keywords)

	if draft.Mode == models.ModeText {
		content, err := getMultiline(a.reader, "Content", a.out)
		if err != nil {
			return err
		}
		if content != "" {
			a.nb.Composer.SetContent(content)
		}
	} else if draft.PendingDrawing == "" {
		a.println("No drawing captured yet; the note will be saved without one. Use draw <image> to attach it.")
	}

	return a.Save(ctx)
}

// Save submits the draft as it stands.
func (a *App) Save(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.println("Please log in first.")
		return nil
	}

	created, err := a.nb.Composer.Submit(ctx, a.nb.Store.Session())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTitleRequired):
			a.println("A title is required. Your draft is kept.")
		default:
			a.println(describeError("Saving failed", err), "(draft kept, run save to retry)")
		}
		return err
	}

	a.printf("Note #%d saved.\n", created.ID)
	return nil
}

// SetMode switches the draft between text and drawing.
func (a *App) SetMode(ctx context.Context, arg string) error {
	mode, err := models.ParseMode(arg)
	if err != nil {
		a.println("Usage: mode text|drawing")
		return err
	}
	if err := a.nb.Composer.SetMode(mode); err != nil {
		a.println(err)
		return err
	}
	a.printf("Authoring mode: %s\n", mode)
	return nil
}

// Draw captures an image file as the draft's drawing, switching to drawing
// mode first when needed.
func (a *App) Draw(ctx context.Context, path string) error {
	if path == "" {
		a.println("Usage: draw <image file>")
		return nil
	}

	img, err := filex.ReadAsDataURL(path)
	if err != nil {
		a.println("Cannot use drawing:", err)
		return err
	}

	if a.nb.Composer.Draft().Mode != models.ModeDrawing {
		if err := a.nb.Composer.SetMode(models.ModeDrawing); err != nil {
			return err
		}
		a.println("Authoring mode: drawing")
	}
	if err := a.nb.Composer.CaptureDrawing(models.Image(img)); err != nil {
		a.println(err)
		return err
	}

	a.println(services.DrawingCapturedNotice)
	return nil
}

// ShowDraft prints the draft being composed.
func (a *App) ShowDraft(ctx context.Context) error {
	d := a.nb.Composer.Draft()
	a.println("Mode:    ", d.Mode)
	a.println("Title:   ", d.Title)
	a.println("Keywords:", d.Keywords)
	switch body := d.Body().(type) {
	case models.TextBody:
		a.println("Content: ", body.Text)
	case models.DrawingBody:
		if body.Image == "" {
			a.println("Drawing:  none captured")
		} else {
			a.println("Drawing:  captured")
		}
	}
	return nil
}
