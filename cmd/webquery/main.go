package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/webquery"
	"github.com/fwojciec/webquery/goquery"
	"github.com/fwojciec/webquery/htmltomarkdown"
	wqhttp "github.com/fwojciec/webquery/http"
	"github.com/fwojciec/webquery/inmem"
	"github.com/fwojciec/webquery/ollama"
	"github.com/fwojciec/webquery/rag"
	"github.com/fwojciec/webquery/readability"
	wqslog "github.com/fwojciec/webquery/slog"
	"github.com/fwojciec/webquery/split"
	"github.com/fwojciec/webquery/trafilatura"
	"github.com/fwojciec/webquery/xxhash"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", webquery.ErrorMessage(err))
		os.Exit(ExitCode(err))
	}
}

// ExitCode maps an error returned by Run to a process exit status:
// 2 for invalid arguments or configuration, 1 for everything else.
func ExitCode(err error) int {
	switch webquery.ErrorCode(err) {
	case "":
		return 0
	case webquery.EINVALID:
		return 2
	default:
		return 1
	}
}

// DefaultConfigPath is the optional JSON file holding flag defaults.
const DefaultConfigPath = "~/.config/webquery/config.json"

// Main represents the program.
type Main struct {
	// ConfigPaths lists JSON files read for flag defaults. Missing files
	// are ignored.
	ConfigPaths []string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPaths: []string{DefaultConfigPath},
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("webquery"),
		kong.Description("Answer a question about a web page with a local Ollama model."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Configuration(kong.JSON, m.ConfigPaths...),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return webquery.Errorf(webquery.EINVALID, "no arguments provided. Run 'webquery --help' for usage")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return webquery.Wrap(webquery.EINVALID, err, "invalid arguments")
	}
	if err := cli.validate(); err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.DiscardHandler),
	}
	if cli.Verbose {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	fetcher, err := m.wire(cli, deps)
	if err != nil {
		return err
	}
	defer fetcher.Close()

	cmd := &QueryCmd{
		Website:    cli.Website,
		Question:   cli.Question,
		BaseURL:    cli.BaseURL,
		TopMatches: cli.TopMatches,
		Sources:    cli.Sources,
	}
	return cmd.Run(deps)
}

// wire builds the pipeline described by cli into deps and returns the page
// fetcher, which the caller must close.
func (m *Main) wire(cli *CLI, deps *Dependencies) (webquery.Fetcher, error) {
	verbose := cli.Verbose
	logger := deps.Logger

	var health webquery.HealthChecker = wqhttp.NewHealthChecker(cli.Timeout)
	var fetcher webquery.Fetcher
	if cli.Render {
		fetcher = &browserFetcher{timeout: cli.Timeout}
	} else {
		fetcher = wqhttp.NewFetcher(wqhttp.WithTimeout(cli.Timeout))
	}
	if verbose {
		health = wqslog.NewLoggingHealthChecker(health, logger)
		fetcher = wqslog.NewLoggingFetcher(fetcher, logger)
	}

	var extractor webquery.Extractor
	switch cli.Extractor {
	case "trafilatura":
		extractor = trafilatura.NewExtractor()
	case "readability":
		extractor = readability.NewExtractor().WithPageURL(cli.Website)
	default:
		extractor = goquery.NewExtractor()
	}

	var converter webquery.Converter
	switch cli.Format {
	case "markdown":
		converter = htmltomarkdown.NewConverter()
	default:
		converter = goquery.NewConverter()
	}

	splitter, err := split.NewRecursiveSplitter(cli.ChunkSize, cli.ChunkOverlap)
	if err != nil {
		return nil, err
	}

	client, err := ollama.NewClient(cli.BaseURL, cli.InferenceTimeout)
	if err != nil {
		return nil, err
	}

	var embedder webquery.Embedder
	switch cli.Embedder {
	case "ollama":
		embedder = ollama.NewEmbedder(client, cli.EmbedModel)
	default:
		embedder = xxhash.NewEmbedder()
	}

	var generator webquery.Generator = ollama.NewGenerator(client, cli.Model)
	if verbose {
		embedder = wqslog.NewLoggingEmbedder(embedder, logger)
		generator = wqslog.NewLoggingGenerator(generator, logger)
	}

	deps.Pipeline = &rag.Pipeline{
		Health: health,
		Loader: &rag.Loader{
			Fetcher:   fetcher,
			Extractor: extractor,
			Converter: converter,
		},
		Splitter: splitter,
		Builder:  inmem.NewBuilder(embedder),
		Embedder: embedder,
		Asker: &rag.Asker{
			Generator:     generator,
			System:        cli.System,
			Temperature:   cli.Temp,
			ContextWindow: cli.NumCtx,
		},
		Progress: func(e rag.Event) {
			if e.State == webquery.StateChecked {
				fmt.Fprintf(deps.Stderr, "Successfully connected to Ollama at %s\n", cli.BaseURL)
			}
			logger.Info("pipeline", "state", e.State.String(), "count", e.Count, "err", e.Err)
		},
	}
	return fetcher, nil
}
