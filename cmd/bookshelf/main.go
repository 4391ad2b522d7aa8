package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/bookshelf"
	"github.com/fwojciec/bookshelf/etree"
	"github.com/fwojciec/bookshelf/fs"
	"github.com/fwojciec/bookshelf/html"
	"github.com/fwojciec/bookshelf/htmltomarkdown"
	"github.com/fwojciec/bookshelf/shelf"
	bsslog "github.com/fwojciec/bookshelf/slog"
	"github.com/fwojciec/bookshelf/snapshot"
	"github.com/fwojciec/bookshelf/sqlite"
	"github.com/fwojciec/bookshelf/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Backend names accepted by --backend.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Main represents the program.
type Main struct {
	// Default database path. Set before calling Run().
	DBPath string

	// SQLite database, when the sqlite or memory backend is in use.
	DB *sqlite.DB

	// Collection store, available after Run() for end-to-end testing.
	Store *shelf.Store
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("bookshelf"),
		kong.Description("Keep track of the books you are reading and have read."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"db": m.DBPath, "key": snapshot.DefaultKey},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'bookshelf --help' to see available commands")
	}

	switch args[0] {
	case "help", "--help", "-h":
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	blobs, location := m.openBlobStore(cli, logger, stderr)
	defer m.Close()

	var store bookshelf.BlobStore
	if blobs != nil {
		store = blobs
		if cli.Verbose {
			store = bsslog.NewLoggingBlobStore(blobs, logger)
		}
	}
	snap := snapshot.NewGateway(store, cli.Key)
	var gateway bookshelf.PersistenceGateway = snap
	if cli.Verbose {
		gateway = bsslog.NewLoggingGateway(gateway, logger)
	}

	m.Store = shelf.NewStore(gateway)
	if cli.Verbose {
		m.Store.Logger = logger
	}
	m.Store.OnWarning(func(err error) {
		fmt.Fprintf(stderr, "warning: %s\n", bookshelf.ErrorMessage(err))
	})
	m.Store.OnPersisted(func() {
		logger.Info("collection persisted", "backend", cli.Backend, "location", location)
	})

	// A corrupt snapshot has already been reported and the shelf starts empty.
	if err := m.Store.Load(ctx); err != nil && bookshelf.ErrorCode(err) != bookshelf.ECORRUPT {
		return err
	}

	deps.Books = m.Store
	deps.Exporters = newExporters()
	deps.Storage = &Storage{
		Backend:    cli.Backend,
		Location:   location,
		Key:        snap.Key(),
		Persistent: m.Store.Persistent(),
	}
	if inspector, ok := blobs.(bookshelf.BlobInspector); ok {
		deps.Storage.Inspector = inspector
	}

	return kongCtx.Run(deps)
}

// openBlobStore opens the blob store selected by --backend. When it cannot
// be opened a nil store is returned and the shelf runs in memory only.
func (m *Main) openBlobStore(cli *CLI, logger *slog.Logger, stderr io.Writer) (bookshelf.BlobStore, string) {
	switch cli.Backend {
	case BackendFile:
		dir := blobDir(cli.DB)
		return fs.NewBlobStore(dir), dir
	case BackendMemory:
		m.DB = sqlite.NewDB(":memory:")
		if err := m.DB.Open(); err != nil {
			logger.Error("failed to open in-memory database", "err", err)
			m.DB = nil
			return nil, ":memory:"
		}
		return sqlite.NewBlobStore(m.DB), m.DB.Path()
	default:
		if dir := filepath.Dir(cli.DB); dir != "" {
			_ = os.MkdirAll(dir, 0755)
		}
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set BOOKSHELF_DB to use a different database path\n")
			logger.Error("failed to open database", "path", cli.DB, "err", err)
			m.DB = nil
			return nil, cli.DB
		}
		return sqlite.NewBlobStore(m.DB), m.DB.Path()
	}
}

// newExporters returns the exporters available to the export command.
func newExporters() map[bookshelf.Format]bookshelf.Exporter {
	page := html.NewRenderer()
	return map[bookshelf.Format]bookshelf.Exporter{
		bookshelf.FormatJSON:     snapshot.NewExporter(),
		bookshelf.FormatYAML:     yaml.NewExporter(),
		bookshelf.FormatXML:      etree.NewExporter(),
		bookshelf.FormatHTML:     page,
		bookshelf.FormatMarkdown: htmltomarkdown.NewExporter(page),
	}
}

// blobDir returns the directory the file backend keeps its blobs in,
// next to the database path.
func blobDir(dbPath string) string {
	return filepath.Join(filepath.Dir(dbPath), "blobs")
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "bookshelf.db"
	}
	return filepath.Join(home, ".bookshelf", "bookshelf.db")
}
