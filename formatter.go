package zealdoc

import "strings"

// Formatter renders ranked results as tab-separated output lines.
type Formatter struct {
	// Glyphs is consulted when Decorate is set.
	Glyphs *GlyphTable

	// Decorate fills the first column with a glyph for the result kind.
	Decorate bool

	// Color paints glyphs with their ANSI colour.
	Color bool
}

// Format returns the output line for a result:
//
//	<glyph>\t<name>\t<kind>\t<resolved path>
//
// The glyph column is empty unless decoration is enabled. Kinds without a
// glyph show their raw kind string in the glyph column.
func (f *Formatter) Format(r *Result) string {
	return strings.Join([]string{
		f.decoration(r.Record.Kind),
		r.Record.Name,
		r.Record.Kind,
		r.ResolvedPath,
	}, "\t")
}

// FormatResults formats results one per line.
func (f *Formatter) FormatResults(results []*Result) string {
	if len(results) == 0 {
		return ""
	}

	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, f.Format(r))
	}
	return strings.Join(lines, "\n")
}

func (f *Formatter) decoration(kind string) string {
	if !f.Decorate {
		return ""
	}
	if f.Glyphs == nil {
		return kind
	}
	g, ok := f.Glyphs.Lookup(kind)
	if !ok {
		return kind
	}
	if f.Color {
		return g.Color.Paint(g.Symbol)
	}
	return g.Symbol
}
