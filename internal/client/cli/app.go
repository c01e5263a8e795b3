package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/common-nighthawk/go-figure"
	"github.com/dmitrijs2005/eventclient/internal/client/client"
	"github.com/dmitrijs2005/eventclient/internal/client/config"
	"github.com/dmitrijs2005/eventclient/internal/client/notify"
	"github.com/dmitrijs2005/eventclient/internal/client/persist"
	"github.com/dmitrijs2005/eventclient/internal/client/services"
	"github.com/dmitrijs2005/eventclient/internal/client/store"
	"github.com/dmitrijs2005/eventclient/internal/filex"
	"github.com/dmitrijs2005/eventclient/internal/logging"
)

const appName = "eventclient"

// App is the interactive client: the stores, the session that keeps them
// consistent and the services, driven by REPL commands.
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	stores   *store.Stores
	session  *store.Session
	reporter *notify.Reporter
	chat     services.ChatService
	poller   *services.Poller
	feed     services.FeedService
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp opens the local database under c.DataDir and wires the client
// against c.BaseURL.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	dir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	db, err := persist.OpenDatabase(ctx, filepath.Join(dir, "client.db"))
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	api := client.NewHTTPClient(c.BaseURL, nil)
	reporter := notify.NewReporter(notify.NewWriterNotifier(os.Stdout), log, c.IsProduction())

	a := newApp(c, log, api, persist.NewSecureStore(db, c.Secret()), reporter, bufio.NewReader(os.Stdin), os.Stdout)
	a.db = db
	return a, nil
}

func newApp(c *config.Config, log logging.Logger, api client.Client, persister store.SnapshotStore,
	reporter *notify.Reporter, reader *bufio.Reader, out io.Writer) *App {
	stores := store.NewStores(api)
	chat := services.NewChatService(api, stores.Auth)

	return &App{
		config:   c,
		log:      log,
		stores:   stores,
		session:  store.NewSession(stores, persister, reporter, log),
		reporter: reporter,
		chat:     chat,
		poller:   services.NewPoller(chat, reporter, c.ChatPollInterval),
		feed:     services.NewFeedService(api, stores.Auth),
		reader:   reader,
		out:      out,
	}
}

// Run restores the session and serves commands until exit or EOF.
func (a *App) Run(ctx context.Context) {
	displayAppname(a.out, appName)
	fmt.Fprintln(a.out, "Type 'help' for commands")

	a.session.Start(ctx)
	runREPL(ctx, a, a.status, a.reader)
}

// Close releases the session subscription and the local database.
func (a *App) Close() error {
	a.session.Close()
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.stores.Auth.Token() != ""
}

func (a *App) handle(ctx context.Context, err error) {
	a.reporter.Handle(ctx, err, "")
}

// status renders the prompt suffix: the navigation state and, once known,
// the signed-in username.
func (a *App) status() string {
	nav := a.stores.Nav()
	if nav != store.NavMain {
		return string(nav)
	}
	if u, ok := a.stores.Users.CurrentUser(); ok {
		return u.Username
	}
	return string(nav)
}

func displayAppname(w io.Writer, name string) {
	fig := figure.NewFigure(name, "cybermedium", true)
	fmt.Fprintln(w, fig.String())
}
