package style

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/unkn0wn-root/hurlhtml/internal/errdef"
	"github.com/unkn0wn-root/hurlhtml/internal/util"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

type Metadata struct {
	Name        string `json:"name"        toml:"name"        yaml:"name"`
	Description string `json:"description" toml:"description" yaml:"description"`
	Author      string `json:"author"      toml:"author"      yaml:"author"`
}

type ClassSpec struct {
	Foreground *string `json:"foreground" toml:"foreground" yaml:"foreground"`
	Background *string `json:"background" toml:"background" yaml:"background"`
	Bold       *bool   `json:"bold"       toml:"bold"       yaml:"bold"`
	Italic     *bool   `json:"italic"     toml:"italic"     yaml:"italic"`
	Underline  *bool   `json:"underline"  toml:"underline"  yaml:"underline"`
}

// ThemeSpec is the on-disk form of a theme. Extends names the palette the
// spec is applied over: "default" or a chroma style.
type ThemeSpec struct {
	Metadata *Metadata            `json:"metadata" toml:"metadata" yaml:"metadata"`
	Extends  string               `json:"extends"  toml:"extends"  yaml:"extends"`
	Base     *ClassSpec           `json:"base"     toml:"base"     yaml:"base"`
	Classes  map[string]ClassSpec `json:"classes"  toml:"classes"  yaml:"classes"`
}

type Definition struct {
	Key         string
	DisplayName string
	Metadata    Metadata
	Palette     Palette
	Format      Format
	Path        string
}

// Catalog holds loaded themes keyed by slug, ordered by display name.
type Catalog struct {
	defs map[string]Definition
	keys []string
}

func newCatalog(defs []Definition) Catalog {
	sort.SliceStable(defs, func(i, j int) bool {
		a, b := strings.ToLower(defs[i].DisplayName), strings.ToLower(defs[j].DisplayName)
		if a != b {
			return a < b
		}
		return defs[i].Key < defs[j].Key
	})
	c := Catalog{defs: make(map[string]Definition, len(defs))}
	for _, def := range defs {
		c.defs[def.Key] = def
		c.keys = append(c.keys, def.Key)
	}
	return c
}

func (c Catalog) Keys() []string {
	return append([]string(nil), c.keys...)
}

func (c Catalog) All() []Definition {
	out := make([]Definition, 0, len(c.keys))
	for _, key := range c.keys {
		out = append(out, c.defs[key])
	}
	return out
}

func (c Catalog) Get(key string) (Definition, bool) {
	def, ok := c.defs[key]
	return def, ok
}

// LoadThemes reads every theme file in dirs. Missing directories are
// skipped; broken files are reported in the joined error while the rest of
// the catalog is still returned.
func LoadThemes(dirs []string) (Catalog, error) {
	taken := map[string]bool{"default": true}
	var (
		defs []Definition
		errs []error
	)
	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		loaded, err := loadDir(dir)
		errs = append(errs, err)
		for _, def := range loaded {
			def.Key = uniqueKey(def.Key, taken)
			if def.DisplayName == "" {
				def.DisplayName = humaniseSlug(def.Key)
			}
			defs = append(defs, def)
		}
	}
	return newCatalog(defs), errors.Join(errs...)
}

func loadDir(dir string) ([]Definition, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeFilesystem, err, "themes: read directory %q", dir)
	}

	var (
		defs []Definition
		errs []error
	)
	for _, entry := range entries {
		format, ok := formatOf(entry.Name())
		if entry.IsDir() || !ok {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		def, err := loadTheme(path, format)
		if err != nil {
			errs = append(errs, errdef.Wrap(errdef.CodeTheme, err, "themes: load %q", path))
			continue
		}
		defs = append(defs, def)
	}
	return defs, errors.Join(errs...)
}

func formatOf(name string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		return FormatTOML, true
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	}
	return "", false
}

func loadTheme(path string, format Format) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, err
	}
	spec, err := DecodeThemeSpec(data, format)
	if err != nil {
		return Definition{}, err
	}
	base, err := extendsPalette(spec.Extends)
	if err != nil {
		return Definition{}, err
	}
	palette, err := ApplySpec(base, spec)
	if err != nil {
		return Definition{}, err
	}

	meta := Metadata{}
	if spec.Metadata != nil {
		meta = *spec.Metadata
	}
	slug := slugify(meta.Name)
	if slug == "" {
		slug = slugify(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	}
	return Definition{
		Key:         slug,
		DisplayName: strings.TrimSpace(meta.Name),
		Metadata:    meta,
		Palette:     palette,
		Format:      format,
		Path:        path,
	}, nil
}

func extendsPalette(name string) (Palette, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "default" {
		return DefaultPalette(), nil
	}
	return FromChroma(name)
}

func DecodeThemeSpec(data []byte, format Format) (ThemeSpec, error) {
	var spec ThemeSpec
	switch format {
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&spec); err != nil {
			return ThemeSpec{}, err
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &spec); err != nil {
			return ThemeSpec{}, err
		}
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&spec); err != nil {
			return ThemeSpec{}, err
		}
	default:
		return ThemeSpec{}, fmt.Errorf("decode: unsupported format %q", format)
	}
	return spec, nil
}

// ApplySpec overlays spec on base. Unknown classes and malformed colours
// are rejected.
func ApplySpec(base Palette, spec ThemeSpec) (Palette, error) {
	out := base.clone()
	if spec.Base != nil {
		s, err := applyClass(out.Base, *spec.Base)
		if err != nil {
			return Palette{}, fmt.Errorf("base: %w", err)
		}
		out.Base = s
	}
	names := make([]string, 0, len(spec.Classes))
	for name := range spec.Classes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !KnownClass(name) {
			return Palette{}, fmt.Errorf("unknown class %q", name)
		}
		s, err := applyClass(out.Classes[name], spec.Classes[name])
		if err != nil {
			return Palette{}, fmt.Errorf("class %q: %w", name, err)
		}
		out.Classes[name] = s
	}
	return out, nil
}

func applyClass(s ClassStyle, spec ClassSpec) (ClassStyle, error) {
	if spec.Foreground != nil {
		c := strings.TrimSpace(*spec.Foreground)
		if !validColour(c) {
			return ClassStyle{}, fmt.Errorf("invalid foreground colour %q", c)
		}
		s.Foreground = c
	}
	if spec.Background != nil {
		c := strings.TrimSpace(*spec.Background)
		if !validColour(c) {
			return ClassStyle{}, fmt.Errorf("invalid background colour %q", c)
		}
		s.Background = c
	}
	if spec.Bold != nil {
		s.Bold = *spec.Bold
	}
	if spec.Italic != nil {
		s.Italic = *spec.Italic
	}
	if spec.Underline != nil {
		s.Underline = *spec.Underline
	}
	return s, nil
}

// Resolve picks the palette named name: the default palette, a catalog
// theme, or a chroma style, in that order.
func Resolve(name string, catalog Catalog) (Palette, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "default" {
		return DefaultPalette(), nil
	}
	if def, ok := catalog.Get(name); ok {
		return def.Palette, nil
	}
	if _, ok := lookupChroma(name); ok {
		return FromChroma(name)
	}
	return Palette{}, errdef.New(errdef.CodeTheme, "unknown style %q", name)
}

// Names lists every name Resolve accepts, sorted.
func Names(catalog Catalog) []string {
	names := append([]string{"default"}, catalog.Keys()...)
	return util.SortedUnique(append(names, ChromaStyles()...))
}

// uniqueKey returns key, or key-N for the lowest free N, and marks the
// result as taken.
func uniqueKey(key string, taken map[string]bool) string {
	if key == "" {
		key = "theme"
	}
	candidate := key
	for n := 1; taken[candidate]; n++ {
		candidate = key + "-" + strconv.Itoa(n)
	}
	taken[candidate] = true
	return candidate
}

// slugify lowercases name and joins its letter and digit runs with dashes.
func slugify(name string) string {
	words := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(words, "-")
}

func humaniseSlug(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool { return r == '-' })
	if len(words) == 0 {
		return "Theme"
	}
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
