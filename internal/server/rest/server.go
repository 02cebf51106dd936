// Package rest exposes the notes service over HTTP/JSON with gin.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/sealnotes/internal/logging"
	"github.com/dmitrijs2005/sealnotes/internal/server/notes"
	"github.com/dmitrijs2005/sealnotes/internal/server/users"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

const (
	shutdownTimeout = 5 * time.Second
	maxBodyBytes    = 10 << 20
)

// UserService is the account side of the API.
type UserService interface {
	Register(ctx context.Context, username, password string) (*users.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Authenticate(ctx context.Context, token string) (*users.User, error)
}

// NoteService is the notes side of the API. Every call is scoped to userID.
type NoteService interface {
	Create(ctx context.Context, userID int64, d notes.Draft) (*notes.Note, error)
	List(ctx context.Context, userID int64) ([]notes.Note, error)
	Get(ctx context.Context, userID, id int64) (*notes.Detail, error)
	Search(ctx context.Context, userID int64, q string) ([]notes.Note, error)
}

type Options struct {
	LoginRate  rate.Limit
	LoginBurst int
	// Registerer receives the HTTP metrics. Nil means a private registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

type Server struct {
	address string
	users   UserService
	notes   NoteService
	logger  logging.Logger
	engine  *gin.Engine
}

func NewServer(address string, l logging.Logger, us UserService, ns NoteService, opts Options) *Server {
	s := &Server{
		address: address,
		users:   us,
		notes:   ns,
		logger:  l.With("module", "rest_server"),
	}
	s.engine = s.routes(opts)
	return s
}

// Handler returns the routed engine, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-stopped
}
