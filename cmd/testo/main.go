package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/aferrari/testo"
	"github.com/aferrari/testo/goquery"
	"github.com/aferrari/testo/htmltomarkdown"
	"github.com/aferrari/testo/pipeline"
	tslog "github.com/aferrari/testo/slog"
	"github.com/aferrari/testo/sqlite"
	"github.com/aferrari/testo/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services exposed for end-to-end testing.
	AnalysisService testo.AnalysisService
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
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("testo"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'testo --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set TESTO_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	m.AnalysisService = sqlite.NewAnalysisService(m.DB)
	deps.DB = m.DB
	deps.Analyses = m.AnalysisService
	deps.Parser = tslog.NewLoggingParser(pipeline.New(), logger)

	if cmd == "analyze" && cli.Analyze.HTML {
		deps.Extractor = trafilatura.NewExtractor()
		deps.Converter = htmltomarkdown.NewConverter()
	}

	return kongCtx.Run(deps)
}

// fallbackExtractor is used when trafilatura finds no content node.
func fallbackExtractor() testo.Extractor {
	return goquery.NewExtractor()
}

func defaultDBPath() string {
	if path := os.Getenv("TESTO_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "testo.db"
	}
	dir := filepath.Join(home, ".testo")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "testo.db")
}
