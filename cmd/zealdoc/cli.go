package main

import (
	"context"
	"io"

	"github.com/fwojciec/zealdoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	Docsets      zealdoc.DocsetService
	Searcher     zealdoc.Searcher
	Formatter    *zealdoc.Formatter
	ReadDocument func(path string) (string, error)
	Sectioner    zealdoc.Sectioner
	Extractor    zealdoc.Extractor
	Converter    zealdoc.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DocsetsDir string `name:"docsets-dir" short:"d" type:"path" help:"Docsets directory (env ZEALDOC_DOCSETS_DIR)"`
	Config     string `type:"path" help:"Configuration file (env ZEALDOC_CONFIG)"`
	Icons      bool   `short:"i" help:"Show a glyph for the kind of each result"`
	Color      string `placeholder:"auto|always|never" help:"Colour glyphs: auto, always or never"`
	Debug      bool   `help:"Log operations to stderr"`

	List   ListCmd   `cmd:"" name:"list-docsets" aliases:"ls" help:"List installed docsets"`
	Search SearchCmd `cmd:"" help:"Search a docset"`
	Show   ShowCmd   `cmd:"" help:"Print the documentation of a search result as Markdown"`
}

// ListCmd is the "list-docsets" subcommand.
type ListCmd struct{}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Docset      string   `arg:"" help:"Docset name, e.g. Rust or Rust.docset"`
	Query       []string `arg:"" optional:"" help:"Search query; omit to list every entry"`
	Limit       int      `short:"n" help:"Maximum number of results (0 means no limit)"`
	NoPrefilter bool     `name:"no-prefilter" help:"Score every index entry, not only names containing the query"`
	Unique      bool     `short:"u" help:"Collapse entries with identical name, kind and path"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Docset      string   `arg:"" help:"Docset name, e.g. Rust or Rust.docset"`
	Query       []string `arg:"" optional:"" help:"Search query"`
	Nth         int      `default:"1" help:"Show the nth result instead of the best one"`
	NoPrefilter bool     `name:"no-prefilter" help:"Score every index entry, not only names containing the query"`
}
