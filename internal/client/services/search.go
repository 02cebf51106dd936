package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/sealnotes/internal/client/client"
	"github.com/dmitrijs2005/sealnotes/internal/client/models"
	"github.com/dmitrijs2005/sealnotes/internal/client/session"
	"github.com/dmitrijs2005/sealnotes/internal/logging"
)

// searchKey identifies the inputs of an issued search.
type searchKey struct {
	term    string
	token   string
	version uint64
}

// SearchCoordinator derives the displayed notes from the repository and the
// query. An empty (after trimming) query shows the live repository; any other
// query shows the service's last applied search response, or nothing when
// that search failed.
type SearchCoordinator struct {
	client client.Client
	repo   *NoteRepository
	log    logging.Logger

	mu        sync.Mutex
	term      string
	filtered  bool
	results   []models.NoteSummary
	seq       uint64
	issued    searchKey
	hasIssued bool
}

func NewSearchCoordinator(c client.Client, repo *NoteRepository, log logging.Logger) *SearchCoordinator {
	return &SearchCoordinator{client: c, repo: repo, log: log.With("component", "search")}
}

// SetQuery stores term and recomputes the displayed set.
func (s *SearchCoordinator) SetQuery(ctx context.Context, sess session.Session, term string) error {
	s.mu.Lock()
	s.term = term
	s.mu.Unlock()

	return s.Recompute(ctx, sess)
}

// Recompute brings the displayed set in line with the current query and
// repository. A search already issued for the same term, token and
// repository version is not sent again. Responses to superseded requests
// are dropped.
func (s *SearchCoordinator) Recompute(ctx context.Context, sess session.Session) error {
	s.mu.Lock()
	term := s.term

	if strings.TrimSpace(term) == "" {
		s.filtered = false
		s.results = nil
		s.invalidateLocked()
		s.mu.Unlock()
		return nil
	}

	if !sess.Authenticated() {
		s.filtered = true
		s.results = []models.NoteSummary{}
		s.invalidateLocked()
		s.mu.Unlock()
		return ErrNotAuthenticated
	}

	key := searchKey{term: term, token: sess.Token, version: s.repo.Version()}
	if s.hasIssued && s.issued == key {
		s.mu.Unlock()
		return nil
	}

	s.seq++
	seq := s.seq
	s.issued = key
	s.hasIssued = true
	s.mu.Unlock()

	results, err := s.client.SearchNotes(ctx, sess, term)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		s.log.Debug(ctx, "dropping stale search response", "term", term, "seq", seq, "latest", s.seq)
		return nil
	}

	s.filtered = true
	if err != nil {
		s.results = []models.NoteSummary{}
		s.hasIssued = false
		s.issued = searchKey{}
		s.log.Warn(ctx, "search failed", "term", term, "error", err)
		return fmt.Errorf("search %q: %w", term, err)
	}
	if results == nil {
		results = []models.NoteSummary{}
	}
	s.results = results
	return nil
}

// Displayed returns the notes to show: the live repository while
// unfiltered, the last applied search response otherwise.
func (s *SearchCoordinator) Displayed() []models.NoteSummary {
	s.mu.Lock()
	if !s.filtered {
		s.mu.Unlock()
		return s.repo.Notes()
	}
	out := make([]models.NoteSummary, len(s.results))
	copy(out, s.results)
	s.mu.Unlock()
	return out
}

// Term returns the query as typed.
func (s *SearchCoordinator) Term() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.term
}

// Filtered reports whether Displayed reflects a search response.
func (s *SearchCoordinator) Filtered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filtered
}

// Reset clears the query and results and drops any in-flight response.
func (s *SearchCoordinator) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.term = ""
	s.filtered = false
	s.results = nil
	s.invalidateLocked()
}

func (s *SearchCoordinator) invalidateLocked() {
	s.seq++
	s.issued = searchKey{}
	s.hasIssued = false
}
