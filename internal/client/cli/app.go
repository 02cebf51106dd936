package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/sealnotes/internal/client/config"
	"github.com/dmitrijs2005/sealnotes/internal/client/services"
	"github.com/dmitrijs2005/sealnotes/internal/logging"
)

// Connectivity is the last observed reachability of the service.
type Connectivity string

const (
	ConnUnknown Connectivity = ""
	ConnOnline  Connectivity = "online"
	ConnOffline Connectivity = "offline"
)

// pingTimeout bounds a single health probe.
const pingTimeout = 3 * time.Second

type App struct {
	config   *config.Config
	nb       *services.Notebook
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	userName string

	mu   sync.Mutex
	conn Connectivity
}

func NewApp(cfg *config.Config, nb *services.Notebook, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		config: cfg,
		nb:     nb,
		log:    log,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Run starts the status watcher and blocks in the REPL until exit or EOF.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.println("Welcome to SealNotes (type 'help' for commands)")

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.nb.Store.Session().Authenticated()
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) connectivity() Connectivity {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.conn
}

func (a *App) setConnectivity(ctx context.Context, c Connectivity) {
	a.mu.Lock()
	changed := a.conn != c
	a.conn = c
	a.mu.Unlock()

	if changed {
		a.log.Info(ctx, "connectivity changed", "status", string(c))
	}
}

// StartOnlineStatusWatcher probes the service right away and then every
// interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	probe := func() {
		pctx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := a.nb.Auth.Ping(pctx); err != nil {
			a.setConnectivity(ctx, ConnOffline)
			return
		}
		a.setConnectivity(ctx, ConnOnline)
	}

	probe()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probe()
		case <-ctx.Done():
			return
		}
	}
}
