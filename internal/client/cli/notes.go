package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/sealnotes/internal/client/client"
	"github.com/dmitrijs2005/sealnotes/internal/client/models"
	"github.com/dmitrijs2005/sealnotes/internal/filex"
)

const timeLayout = "2006-01-02 15:04"

// List prints the displayed notes. While a search is active it also prints
// how many of the loaded notes match.
func (a *App) List(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.println("Please log in first.")
		return nil
	}

	shown := a.nb.Search.Displayed()
	if a.nb.Search.Filtered() {
		a.printf("Search %q: showing %d of %d notes\n", a.nb.Search.Term(), len(shown), a.nb.Notes.Len())
	}

	if len(shown) == 0 {
		if a.nb.Search.Filtered() {
			a.println("No notes match.")
		} else {
			a.println("No notes yet. Use addnote to create one.")
		}
		return nil
	}

	for _, n := range shown {
		a.printf("#%-5d %s  %s\n", n.ID, n.CreatedAt.Local().Format(timeLayout), n.Preview())
	}
	return nil
}

// Search sets the query and lists the result. An empty term clears it.
func (a *App) Search(ctx context.Context, term string) error {
	if !a.isLoggedIn() {
		a.println("Please log in first.")
		return nil
	}

	if err := a.nb.Search.SetQuery(ctx, a.nb.Store.Session(), term); err != nil {
		a.println(describeError("Search failed", err))
	}
	return a.List(ctx)
}

// Show fetches and prints one decrypted note. An attached drawing is saved
// under the download directory.
func (a *App) Show(ctx context.Context, arg string) error {
	if !a.isLoggedIn() {
		a.println("Please log in first.")
		return nil
	}

	id, err := strconv.ParseInt(strings.TrimPrefix(arg, "#"), 10, 64)
	if err != nil {
		a.println("Usage: show <id>")
		return nil
	}

	note, err := a.nb.Notes.FetchDetail(ctx, a.nb.Store.Session(), id)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			a.println("Note not found.")
		} else {
			a.println(describeError("Could not open note", err))
		}
		return err
	}

	a.printNote(note)

	if note.HasDrawing() {
		path, err := filex.WriteDataURL(a.config.DownloadDir, fmt.Sprintf("note-%d", note.ID), string(note.Drawing))
		if err != nil {
			a.log.Warn(ctx, "saving drawing failed", "id", note.ID, "error", err)
			a.println("Drawing attached but could not be saved:", err)
			return nil
		}
		a.println("Drawing saved to", path)
	}
	return nil
}

func (a *App) printNote(n *models.NoteDetail) {
	a.println("Title:   ", n.Title)
	a.println("Keywords:", n.Keywords)
	a.println("Created: ", n.CreatedAt.Local().Format(timeLayout))
	if !n.UpdatedAt.IsZero() && !n.UpdatedAt.Equal(n.CreatedAt.Time) {
		a.println("Updated: ", n.UpdatedAt.Local().Format(timeLayout))
	}
	a.println("---")
	a.println(n.Content)
	a.println("---")
}
