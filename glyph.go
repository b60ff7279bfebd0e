package zealdoc

import "strings"

// Kind is a known symbol kind of a docset index entry.
type Kind int

// Known kinds. KindUnknown covers every kind string not listed here.
const (
	KindUnknown Kind = iota
	KindGuide
	KindSection
	KindFunction
	KindMethod
	KindClass
	KindStruct
	KindEnum
	KindConstant
	KindProperty
	KindMacro
	KindInterface
	KindType
	KindAttribute
	KindEvent
	KindVariable
	KindModule
	KindConstructor
)

var kindNames = [...]string{
	KindUnknown:     "unknown",
	KindGuide:       "guide",
	KindSection:     "section",
	KindFunction:    "function",
	KindMethod:      "method",
	KindClass:       "class",
	KindStruct:      "struct",
	KindEnum:        "enum",
	KindConstant:    "constant",
	KindProperty:    "property",
	KindMacro:       "macro",
	KindInterface:   "interface",
	KindType:        "type",
	KindAttribute:   "attribute",
	KindEvent:       "event",
	KindVariable:    "variable",
	KindModule:      "module",
	KindConstructor: "constructor",
}

// kindAliases maps lower-cased index kind strings onto known kinds.
var kindAliases = map[string]Kind{
	"_struct": KindStruct,
	"typedef": KindType,
}

// ParseKind maps an index kind string onto a known kind, ignoring case.
// Unrecognised strings yield KindUnknown.
func ParseKind(s string) Kind {
	s = strings.ToLower(s)
	if k, ok := kindAliases[s]; ok {
		return k
	}
	for k, name := range kindNames {
		if k != int(KindUnknown) && name == s {
			return Kind(k)
		}
	}
	return KindUnknown
}

// String returns the canonical lower-case name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// Color is a terminal colour for a glyph.
type Color int

// Supported glyph colours.
const (
	ColorNone Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorPurple
	ColorCyan
)

var colorNames = [...]string{
	ColorNone:   "none",
	ColorRed:    "red",
	ColorGreen:  "green",
	ColorYellow: "yellow",
	ColorBlue:   "blue",
	ColorPurple: "purple",
	ColorCyan:   "cyan",
}

var colorCodes = [...]string{
	ColorRed:    "\x1b[31m",
	ColorGreen:  "\x1b[32m",
	ColorYellow: "\x1b[33m",
	ColorBlue:   "\x1b[34m",
	ColorPurple: "\x1b[35m",
	ColorCyan:   "\x1b[36m",
}

const colorReset = "\x1b[0m"

// ParseColor parses a colour name.
// Returns EINVALID for unknown names.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(s)
	for c, name := range colorNames {
		if name == s {
			return Color(c), nil
		}
	}
	return ColorNone, Errorf(EINVALID, "unknown color %q", s)
}

// String returns the colour name.
func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return colorNames[ColorNone]
	}
	return colorNames[c]
}

// Paint wraps s in the colour's ANSI escape sequence.
func (c Color) Paint(s string) string {
	if c <= ColorNone || int(c) >= len(colorCodes) {
		return s
	}
	return colorCodes[c] + s + colorReset
}

// Glyph is the decoration shown in front of a result of a given kind.
type Glyph struct {
	Symbol string
	Color  Color
}

// defaultGlyphs expects a Nerd Font for the private-use code points.
var defaultGlyphs = map[Kind]Glyph{
	KindGuide:       {Symbol: "\U000F05DA", Color: ColorGreen},
	KindSection:     {Symbol: "§", Color: ColorYellow},
	KindFunction:    {Symbol: "ƒ", Color: ColorCyan},
	KindMethod:      {Symbol: "m", Color: ColorBlue},
	KindClass:       {Symbol: "\U0001F152", Color: ColorPurple},
	KindStruct:      {Symbol: "\U0001F162", Color: ColorRed},
	KindEnum:        {Symbol: "\U0001F134", Color: ColorPurple},
	KindConstant:    {Symbol: "\U0001D46A", Color: ColorBlue},
	KindProperty:    {Symbol: "\uF084", Color: ColorYellow},
	KindMacro:       {Symbol: "μ", Color: ColorCyan},
	KindInterface:   {Symbol: "\U0001F138", Color: ColorPurple},
	KindType:        {Symbol: "\U0001D64F", Color: ColorCyan},
	KindAttribute:   {Symbol: "\U000F04F9", Color: ColorYellow},
	KindEvent:       {Symbol: "\uEA86", Color: ColorCyan},
	KindVariable:    {Symbol: "\U0001D69F", Color: ColorBlue},
	KindModule:      {Symbol: "\U000F03D6", Color: ColorYellow},
	KindConstructor: {Symbol: "\uF135", Color: ColorRed},
}

// GlyphTable maps known kinds to glyphs. It is immutable once built.
type GlyphTable struct {
	glyphs map[Kind]Glyph
}

// NewGlyphTable returns the default glyph table with overrides applied.
// Overrides for KindUnknown are ignored: unknown kinds always pass through.
func NewGlyphTable(overrides map[Kind]Glyph) *GlyphTable {
	glyphs := make(map[Kind]Glyph, len(defaultGlyphs))
	for k, g := range defaultGlyphs {
		glyphs[k] = g
	}
	for k, g := range overrides {
		if k == KindUnknown {
			continue
		}
		glyphs[k] = g
	}
	return &GlyphTable{glyphs: glyphs}
}

// Lookup returns the glyph for an index kind string.
func (t *GlyphTable) Lookup(kind string) (Glyph, bool) {
	k := ParseKind(kind)
	if k == KindUnknown {
		return Glyph{}, false
	}
	g, ok := t.glyphs[k]
	return g, ok
}
