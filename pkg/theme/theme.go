// Package theme maps semantic style names such as "table.header" or "error"
// to concrete styles.
//
// Themes are loaded from TOML or YAML files. Each entry under "styles" is
// either a style definition string ("bold red on white") or a table of
// attributes:
//
//	[styles]
//	error = "bold red"
//
//	[styles."markdown.h1"]
//	bold = true
//	foreground = "#ff8800"
//
// The built-in theme is embedded from default.yaml.
package theme

import (
	_ "embed"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/inkwell/pkg/errors"
	"github.com/arthur-debert/inkwell/pkg/logging"
	"github.com/arthur-debert/inkwell/pkg/style"
)

//go:embed default.yaml
var embeddedDefault []byte

// Format identifies the encoding of theme data
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// StyleDef is the table form of a style entry
type StyleDef struct {
	Style      string `yaml:"style" toml:"style"`
	Bold       bool   `yaml:"bold" toml:"bold"`
	Dim        bool   `yaml:"dim" toml:"dim"`
	Italic     bool   `yaml:"italic" toml:"italic"`
	Underline  bool   `yaml:"underline" toml:"underline"`
	Strike     bool   `yaml:"strike" toml:"strike"`
	Reverse    bool   `yaml:"reverse" toml:"reverse"`
	Foreground string `yaml:"foreground" toml:"foreground"`
	Background string `yaml:"background" toml:"background"`
	Link       string `yaml:"link" toml:"link"`
}

// spec flattens the definition into a style definition string
func (d StyleDef) spec() string {
	parts := []string{d.Style}
	flags := []struct {
		on   bool
		name string
	}{
		{d.Bold, "bold"}, {d.Dim, "dim"}, {d.Italic, "italic"},
		{d.Underline, "underline"}, {d.Strike, "strike"}, {d.Reverse, "reverse"},
	}
	for _, f := range flags {
		if f.on {
			parts = append(parts, f.name)
		}
	}
	if d.Foreground != "" {
		parts = append(parts, d.Foreground)
	}
	if d.Background != "" {
		parts = append(parts, "on", d.Background)
	}
	if d.Link != "" {
		parts = append(parts, "link="+d.Link)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// file is the on-disk layout shared by both formats
type file struct {
	Styles map[string]interface{} `yaml:"styles" toml:"styles"`
}

// Theme is an immutable set of named styles. A nil *Theme has no entries.
type Theme struct {
	styles map[string]style.Style
}

// New builds a theme from already parsed styles
func New(styles map[string]style.Style) *Theme {
	t := &Theme{styles: make(map[string]style.Style, len(styles))}
	for name, s := range styles {
		t.styles[name] = s
	}
	return t
}

// FromSpecs builds a theme from style definition strings
func FromSpecs(specs map[string]string) (*Theme, error) {
	t := &Theme{styles: make(map[string]style.Style, len(specs))}
	for name, spec := range specs {
		s, err := style.Parse(spec)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrThemeLoad, "invalid style for %q", name).
				WithDetail("name", name)
		}
		t.styles[name] = s
	}
	return t, nil
}

var (
	defaultOnce  sync.Once
	defaultTheme *Theme
)

// Default returns the built-in theme
func Default() *Theme {
	defaultOnce.Do(func() {
		t, err := LoadData(embeddedDefault, FormatYAML)
		if err != nil {
			// The embedded file is part of the build; failing here is a bug.
			panic(err)
		}
		defaultTheme = t
	})
	return defaultTheme
}

// Load reads a theme file, choosing the format from the file extension
func Load(path string) (*Theme, error) {
	logger := logging.GetLogger("theme")

	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		format = FormatTOML
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		return nil, errors.Newf(errors.ErrThemeLoad, "unsupported theme file extension %q", filepath.Ext(path)).
			WithDetail("path", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrThemeLoad, "failed to read theme file %s", path).
			WithDetail("path", path)
	}

	t, err := LoadData(data, format)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("path", path).Int("styles", len(t.styles)).Msg("Loaded theme")
	return t, nil
}

// LoadData parses theme data in the given format
func LoadData(data []byte, format Format) (*Theme, error) {
	var f file
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &f)
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	default:
		return nil, errors.Newf(errors.ErrThemeLoad, "unknown theme format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrThemeLoad, "failed to parse %s theme", format)
	}

	return FromTable(f.Styles)
}

// FromTable builds a theme from decoded style entries, as found under the
// "styles" key of a theme file. Nested tables become dotted names.
func FromTable(entries map[string]interface{}) (*Theme, error) {
	specs := make(map[string]string, len(entries))
	if err := collectSpecs("", entries, specs); err != nil {
		return nil, err
	}
	return FromSpecs(specs)
}

var styleDefKeys = map[string]bool{
	"style": true, "bold": true, "dim": true, "italic": true, "underline": true,
	"strike": true, "reverse": true, "foreground": true, "background": true, "link": true,
}

// collectSpecs flattens nested tables into dotted names, so an unquoted TOML
// key like table.header lands under "table.header".
func collectSpecs(prefix string, entries map[string]interface{}, out map[string]string) error {
	for key, raw := range entries {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}
		if table, ok := raw.(map[string]interface{}); ok && !isStyleDef(table) {
			if err := collectSpecs(name, table, out); err != nil {
				return err
			}
			continue
		}
		spec, err := entrySpec(name, raw)
		if err != nil {
			return err
		}
		out[name] = spec
	}
	return nil
}

func isStyleDef(table map[string]interface{}) bool {
	for key := range table {
		if !styleDefKeys[key] {
			return false
		}
	}
	return len(table) > 0
}

// entrySpec accepts either a string or a table for a style entry. Both
// decoders produce map[string]interface{} for tables, so the table is
// re-encoded as YAML to reuse the StyleDef tags.
func entrySpec(name string, raw interface{}) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case map[string]interface{}:
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrThemeLoad, "invalid style table for %q", name)
		}
		var def StyleDef
		if err := yaml.Unmarshal(data, &def); err != nil {
			return "", errors.Wrapf(err, errors.ErrThemeLoad, "invalid style table for %q", name).
				WithDetail("name", name)
		}
		return def.spec(), nil
	default:
		return "", errors.Newf(errors.ErrThemeLoad, "style %q must be a string or a table", name).
			WithDetail("name", name)
	}
}

// Lookup implements style.Resolver
func (t *Theme) Lookup(name string) (style.Style, bool) {
	if t == nil {
		return style.Null, false
	}
	s, ok := t.styles[name]
	return s, ok
}

// Get returns the named style, or the null style when it is not defined
func (t *Theme) Get(name string) style.Style {
	s, _ := t.Lookup(name)
	return s
}

// Merge returns a new theme with the entries of other layered over t
func (t *Theme) Merge(other *Theme) *Theme {
	out := &Theme{styles: make(map[string]style.Style)}
	if t != nil {
		for k, v := range t.styles {
			out.styles[k] = v
		}
	}
	if other != nil {
		for k, v := range other.styles {
			out.styles[k] = v
		}
	}
	return out
}

// Names returns the defined style names in sorted order
func (t *Theme) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.styles))
	for name := range t.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of named styles
func (t *Theme) Len() int {
	if t == nil {
		return 0
	}
	return len(t.styles)
}
