package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/zealdoc"
	"github.com/fwojciec/zealdoc/etree"
	"github.com/fwojciec/zealdoc/fs"
	"github.com/fwojciec/zealdoc/goquery"
	"github.com/fwojciec/zealdoc/htmltomarkdown"
	"github.com/fwojciec/zealdoc/readability"
	"github.com/fwojciec/zealdoc/search"
	zslog "github.com/fwojciec/zealdoc/slog"
	"github.com/fwojciec/zealdoc/sqlite"
	"github.com/fwojciec/zealdoc/trafilatura"
	"github.com/fwojciec/zealdoc/yaml"
	"github.com/mattn/go-isatty"
)

// Environment variables consulted when the matching flag is not set.
const (
	envDocsetsDir = "ZEALDOC_DOCSETS_DIR"
	envConfig     = "ZEALDOC_CONFIG"
)

// defaultViewer is the companion documentation browser.
const defaultViewer = "zeal"

func main() {
	ctx := context.Background()

	m := NewMain()

	// Run reports errors on stderr itself.
	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// DefaultDocsetsDir is used when neither flags, environment nor the
	// config file name a docsets directory.
	DefaultDocsetsDir string

	// ConfigPath is the config file read when neither --config nor
	// ZEALDOC_CONFIG are set.
	ConfigPath string

	// Getenv looks up environment variables.
	Getenv func(string) string

	// LookPath locates the viewer executable.
	LookPath func(file string) (string, error)

	// IsTerminal reports whether w is an interactive terminal.
	IsTerminal func(w io.Writer) bool
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	docsetsDir, _ := fs.DefaultDocsetsDir()
	configPath, _ := yaml.DefaultConfigPath()
	return &Main{
		DefaultDocsetsDir: docsetsDir,
		ConfigPath:        configPath,
		Getenv:            os.Getenv,
		LookPath:          exec.LookPath,
		IsTerminal:        isTerminal,
	}
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
		kong.Name("zealdoc"),
		kong.Description("Search Dash/Zeal docsets from the command line."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		fmt.Fprintln(stderr, "error: no command specified. Run 'zealdoc --help' to see available commands")
		return zealdoc.Errorf(zealdoc.EINVALID, "no command specified")
	}

	switch args[0] {
	case "help", "--help", "-h":
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}

	cfg, err := yaml.LoadConfig(first(cli.Config, m.Getenv(envConfig), m.ConfigPath))
	if err != nil {
		fmt.Fprintf(stderr, "error: config: %s\n", zealdoc.ErrorMessage(err))
		return err
	}

	opts, err := m.resolve(cli, cfg, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", zealdoc.ErrorMessage(err))
		return err
	}

	if _, err := m.LookPath(opts.viewer); err != nil {
		fmt.Fprintf(stderr, "Cannot find binary `%s`\n", opts.viewer)
	}

	var docsets zealdoc.DocsetService = fs.NewDocsetService(opts.docsetsDir, etree.NewInfoReader())
	var indexes zealdoc.IndexOpener = sqlite.NewIndexOpener()
	var searcher zealdoc.Searcher = &search.Searcher{Indexes: indexes}
	if cli.Debug {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		docsets = zslog.NewLoggingDocsetService(docsets, logger)
		searcher = &search.Searcher{Indexes: zslog.NewLoggingIndexOpener(indexes, logger)}
		searcher = zslog.NewLoggingSearcher(searcher, logger)
	}

	deps.Docsets = docsets
	deps.Searcher = searcher
	deps.Formatter = &zealdoc.Formatter{
		Glyphs:   zealdoc.NewGlyphTable(cfg.Glyphs),
		Decorate: opts.icons,
		Color:    opts.color,
	}
	deps.ReadDocument = fs.ReadDocument
	deps.Sectioner = goquery.NewSectioner()
	deps.Extractor = trafilatura.NewExtractor(readability.NewExtractor())
	deps.Converter = htmltomarkdown.NewConverter()

	return kongCtx.Run(deps)
}

// settings are the effective options after merging flags, environment,
// config file and defaults.
type settings struct {
	docsetsDir string
	icons      bool
	color      bool
	viewer     string
}

func (m *Main) resolve(cli *CLI, cfg *zealdoc.Config, stdout io.Writer) (*settings, error) {
	s := &settings{
		docsetsDir: first(cli.DocsetsDir, m.Getenv(envDocsetsDir), cfg.DocsetsDir, m.DefaultDocsetsDir),
		icons:      cli.Icons || cfg.Icons,
		viewer:     first(cfg.Viewer, defaultViewer),
	}
	if s.docsetsDir == "" {
		return nil, zealdoc.Errorf(zealdoc.EINVALID, "cannot determine the docsets directory; use --docsets-dir or %s", envDocsetsDir)
	}

	mode := first(cli.Color, cfg.ColorMode, zealdoc.ColorModeAuto)
	switch mode {
	case zealdoc.ColorModeAlways:
		s.color = true
	case zealdoc.ColorModeNever:
	case zealdoc.ColorModeAuto:
		s.color = m.Getenv("NO_COLOR") == "" && m.IsTerminal(stdout)
	default:
		return nil, zealdoc.Errorf(zealdoc.EINVALID, "--color must be one of auto, always, never: got %q", mode)
	}
	return s, nil
}

// first returns the first non-empty value.
func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
