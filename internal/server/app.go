// Package server wires the notes service together: storage, keys, drawing
// store, domain services and the HTTP API. It also handles graceful shutdown
// and the purge maintenance task.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/sealnotes/internal/cryptox"
	"github.com/dmitrijs2005/sealnotes/internal/dbx"
	"github.com/dmitrijs2005/sealnotes/internal/logging"
	"github.com/dmitrijs2005/sealnotes/internal/server/auth"
	"github.com/dmitrijs2005/sealnotes/internal/server/blobstore"
	"github.com/dmitrijs2005/sealnotes/internal/server/config"
	"github.com/dmitrijs2005/sealnotes/internal/server/migrations"
	"github.com/dmitrijs2005/sealnotes/internal/server/notes"
	"github.com/dmitrijs2005/sealnotes/internal/server/rest"
	"github.com/dmitrijs2005/sealnotes/internal/server/users"
	"golang.org/x/time/rate"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	noteService *notes.Service
	httpServer  *rest.Server
}

var newS3Store = func(ctx context.Context, c blobstore.S3Config) (blobstore.Store, error) {
	return blobstore.NewS3(ctx, c)
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, dialect, err := dbx.Open(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := migrations.Up(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	cipher, signer, err := cryptox.LoadKeys(c.KeyDir)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("load keys: %w", err)
	}

	drawings, err := drawingStore(ctx, c)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	tokens := auth.NewIssuer(c.Issuer, []byte(c.SecretKey), c.TokenTTL)
	us := users.NewService(users.NewSQLRepository(db, dialect), tokens)
	ns := notes.NewService(notes.NewSQLRepository(db, dialect), cipher, signer, drawings, logger)

	srv := rest.NewServer(c.ListenAddr, logger, us, ns, rest.Options{
		LoginRate:  rate.Limit(c.LoginRate),
		LoginBurst: c.LoginBurst,
	})

	logger.Info(ctx, "App initialized", "dialect", string(dialect), "drawing_store", c.DrawingStore)

	return &App{
		config:      c,
		logger:      logger,
		db:          db,
		noteService: ns,
		httpServer:  srv,
	}, nil
}

func drawingStore(ctx context.Context, c *config.Config) (blobstore.Store, error) {
	if c.DrawingStore != config.DrawingStoreS3 {
		return blobstore.Inline{}, nil
	}
	st, err := newS3Store(ctx, blobstore.S3Config{
		AccessKey:    c.S3AccessKey,
		SecretKey:    c.S3SecretKey,
		Bucket:       c.S3Bucket,
		Region:       c.S3Region,
		BaseEndpoint: c.S3BaseEndpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("s3 drawing store: %w", err)
	}
	return st, nil
}

// Handler exposes the HTTP API without binding a socket.
func (app *App) Handler() http.Handler {
	return app.httpServer.Handler()
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.httpServer.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves the API until a termination signal arrives or ctx is cancelled.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "address", app.config.ListenAddr)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.logger.Info(ctx, "App stopped")
}

// PurgeNotes deletes every stored note and drawing.
func (app *App) PurgeNotes(ctx context.Context) (int64, error) {
	return app.noteService.Purge(ctx)
}

func (app *App) Close() error {
	return app.db.Close()
}
