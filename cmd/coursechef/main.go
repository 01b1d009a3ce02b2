package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/coursechef"
	"github.com/fwojciec/coursechef/cache"
	"github.com/fwojciec/coursechef/chef"
	"github.com/fwojciec/coursechef/etree"
	"github.com/fwojciec/coursechef/fs"
	"github.com/fwojciec/coursechef/gemini"
	"github.com/fwojciec/coursechef/goldmark"
	"github.com/fwojciec/coursechef/goquery"
	"github.com/fwojciec/coursechef/htmltomarkdown"
	chefslog "github.com/fwojciec/coursechef/slog"
	"github.com/fwojciec/coursechef/sqlite"
	"github.com/fwojciec/coursechef/yaml"
	"github.com/fwojciec/coursechef/zip"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database holding the translation cache and the run log.
	DB *sqlite.DB
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
		kong.Name("coursechef"),
		kong.Description("Convert staged Open edX course exports into a content channel."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'coursechef --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	command := kongCtx.Command()

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger
	deps.DataDir = cli.Data

	vocab := coursechef.DefaultVocabulary()
	if cli.Vocabulary != "" {
		vocab, err = yaml.LoadVocabulary(cli.Vocabulary, vocab)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", coursechef.ErrorMessage(err))
			return err
		}
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set COURSECHEF_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	deps.Runs = sqlite.NewRunService(m.DB)
	deps.Cache = sqlite.NewCache(m.DB, sqlite.DefaultCacheTTL)
	deps.Chef = newChef(cli, vocab, deps.Runs, logger)

	if strings.HasPrefix(command, "print") && cli.Print.Translate {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Translator = &cache.Translator{
			Translator: chefslog.NewLoggingTranslator(gemini.NewTranslator(client, gemini.DefaultRPS), logger),
			Cache:      deps.Cache,
			Logger:     logger,
		}
	}

	return kongCtx.Run(deps)
}

// newChef wires the conversion pipeline from its adapters.
func newChef(cli *CLI, vocab *coursechef.Vocabulary, runs coursechef.RunService, logger *slog.Logger) *chef.Chef {
	locator := fs.NewAssetLocator()
	resolver := chefslog.NewLoggingResolver(etree.NewResolver(nil, logger), logger)
	bundler := chefslog.NewLoggingBundler(zip.NewBundler(filepath.Join(cli.Data, bundleDir)), logger)

	var license *coursechef.License
	if cli.License != "" {
		license = &coursechef.License{ID: cli.License, CopyrightHolder: cli.CopyrightHolder}
	}

	return &chef.Chef{
		Builder: &chef.Builder{Resolver: resolver, Logger: logger},
		Pruner: &chef.Pruner{
			Vocabulary: vocab,
			Videos:     etree.NewVideoParser(),
			Resources:  goquery.NewResourceExtractor(locator),
			Texts:      goquery.NewTextExtractor(htmltomarkdown.NewConverter(), vocab),
			Questions:  etree.NewQuestionParser(vocab),
			Logger:     logger,
		},
		Transformer: &chef.Transformer{
			Vocabulary: vocab,
			Language:   cli.Language,
			License:    license,
			Author:     cli.Author,
			Locator:    locator,
			Pages:      goquery.NewPageBuilder(),
			Renderer:   goldmark.NewRenderer(),
			Bundler:    bundler,
			Logger:     logger,
		},
		Trees:  fs.NewTreeWriter(cli.Data, channelFile),
		Runs:   runs,
		Logger: logger,
	}
}

// Output layout under the data directory.
const (
	bundleDir   = "zipfiles"
	channelFile = "channel.json"
)

func defaultDBPath() string {
	if path := os.Getenv("COURSECHEF_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "coursechef.db"
	}
	dir := filepath.Join(home, ".coursechef")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "coursechef.db")
}
