package style

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MakeNowJust/heredoc"

	"github.com/unkn0wn-root/hurlhtml/internal/errdef"
)

func writeTheme(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write theme %s: %v", name, err)
	}
}

func TestLoadThemesAllFormats(t *testing.T) {
	dir := t.TempDir()

	writeTheme(t, dir, "oceanic.toml", heredoc.Doc(`
		extends = "default"

		[metadata]
		name = "Oceanic"
		author = "QA"

		[classes.method]
		foreground = "#ddeeff"
		bold = false
	`))
	writeTheme(t, dir, "sunset.json", heredoc.Doc(`
		{
		  "metadata": {"name": "Oceanic"},
		  "classes": {"url": {"foreground": "#ff9900"}}
		}
	`))
	writeTheme(t, dir, "paper.yaml", heredoc.Doc(`
		base:
		  background: "#fff"
		classes:
		  comment:
		    italic: false
	`))
	writeTheme(t, dir, "notes.txt", "ignored")

	catalog, err := LoadThemes([]string{dir, filepath.Join(dir, "missing")})
	if err != nil {
		t.Fatalf("LoadThemes returned error: %v", err)
	}
	if got := len(catalog.All()); got != 3 {
		t.Fatalf("expected 3 themes, got %d (%v)", got, catalog.Keys())
	}

	oceanic, ok := catalog.Get("oceanic")
	if !ok {
		t.Fatalf("expected oceanic theme to load")
	}
	if oceanic.Metadata.Author != "QA" {
		t.Fatalf("expected author QA, got %q", oceanic.Metadata.Author)
	}
	method := oceanic.Palette.Classes["method"]
	if method.Foreground != "#ddeeff" || method.Bold {
		t.Fatalf("expected method override, got %+v", method)
	}
	if oceanic.Palette.Classes["url"] != DefaultPalette().Classes["url"] {
		t.Fatalf("expected untouched classes to keep defaults")
	}

	duplicate, ok := catalog.Get("oceanic-1")
	if !ok {
		t.Fatalf("expected duplicate slug to be uniquified, got %v", catalog.Keys())
	}
	if duplicate.Format != FormatJSON {
		t.Fatalf("expected json format, got %q", duplicate.Format)
	}
	if duplicate.Palette.Classes["url"].Foreground != "#ff9900" {
		t.Fatalf("expected JSON override, got %+v", duplicate.Palette.Classes["url"])
	}

	paper, ok := catalog.Get("paper")
	if !ok {
		t.Fatalf("expected theme keyed by file name")
	}
	if paper.DisplayName != "Paper" {
		t.Fatalf("expected humanised display name, got %q", paper.DisplayName)
	}
	if paper.Palette.Base.Background != "#fff" {
		t.Fatalf("expected base background override, got %+v", paper.Palette.Base)
	}
	if paper.Palette.Classes["comment"].Italic {
		t.Fatalf("expected comment italic to be cleared")
	}
}

func TestLoadThemesReportsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "good.toml", "[classes.url]\nforeground = \"#123456\"\n")
	writeTheme(t, dir, "badclass.toml", "[classes.bogus]\nforeground = \"#123456\"\n")
	writeTheme(t, dir, "badcolour.json", `{"classes": {"url": {"foreground": "red"}}}`)
	writeTheme(t, dir, "unknown.json", `{"colors": {}}`)
	writeTheme(t, dir, "unknownkey.yaml", "palette: {}\n")

	catalog, err := LoadThemes([]string{dir})
	if err == nil {
		t.Fatalf("expected error for broken themes")
	}
	if errdef.CodeOf(err) != errdef.CodeTheme {
		t.Fatalf("expected theme error code, got %q", errdef.CodeOf(err))
	}
	for _, name := range []string{"badclass.toml", "badcolour.json", "unknown.json", "unknownkey.yaml"} {
		if !strings.Contains(err.Error(), name) {
			t.Fatalf("expected error to mention %s, got %v", name, err)
		}
	}
	if _, ok := catalog.Get("good"); !ok {
		t.Fatalf("expected valid theme to survive, got %v", catalog.Keys())
	}
}

func TestLoadThemesExtendsChroma(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "night.toml", "extends = \"monokai\"\n")
	writeTheme(t, dir, "nowhere.toml", "extends = \"no-such-style\"\n")

	catalog, err := LoadThemes([]string{dir})
	if err == nil || !strings.Contains(err.Error(), "nowhere.toml") {
		t.Fatalf("expected unknown base style error, got %v", err)
	}
	night, ok := catalog.Get("night")
	if !ok {
		t.Fatalf("expected night theme")
	}
	want, err := FromChroma("monokai")
	if err != nil {
		t.Fatalf("FromChroma: %v", err)
	}
	if night.Palette.Base != want.Base {
		t.Fatalf("expected monokai base, got %+v", night.Palette.Base)
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "custom.toml", "[classes.url]\nforeground = \"#abcdef\"\n")
	catalog, err := LoadThemes([]string{dir})
	if err != nil {
		t.Fatalf("LoadThemes: %v", err)
	}

	p, err := Resolve("", catalog)
	if err != nil || p.Classes["url"] != DefaultPalette().Classes["url"] {
		t.Fatalf("expected default palette, got %+v, %v", p.Classes["url"], err)
	}
	p, err = Resolve("custom", catalog)
	if err != nil || p.Classes["url"].Foreground != "#abcdef" {
		t.Fatalf("expected catalog palette, got %+v, %v", p.Classes["url"], err)
	}
	if _, err := Resolve("Monokai", catalog); err != nil {
		t.Fatalf("expected chroma style lookup to ignore case, got %v", err)
	}
	_, err = Resolve("does-not-exist", catalog)
	if errdef.CodeOf(err) != errdef.CodeTheme {
		t.Fatalf("expected theme error, got %v", err)
	}
}

func TestNamesSortedAndUnique(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "monokai.toml", "")
	catalog, err := LoadThemes([]string{dir})
	if err != nil {
		t.Fatalf("LoadThemes: %v", err)
	}
	names := Names(catalog)
	if len(names) == 0 || names[0] > names[len(names)-1] {
		t.Fatalf("expected sorted names, got %v", names)
	}
	seen := map[string]bool{}
	for i, name := range names {
		if seen[name] {
			t.Fatalf("duplicate name %q", name)
		}
		seen[name] = true
		if i > 0 && names[i-1] > name {
			t.Fatalf("names not sorted at %d: %v", i, names)
		}
	}
	if !seen["default"] || !seen["monokai"] {
		t.Fatalf("expected default and monokai, got %v", names)
	}
}

func TestLoadThemesNonASCIIFileName(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "élan.toml", "[classes.url]\nforeground = \"#123456\"\n")

	catalog, err := LoadThemes([]string{dir})
	if err != nil {
		t.Fatalf("LoadThemes: %v", err)
	}
	def, ok := catalog.Get("élan")
	if !ok {
		t.Fatalf("expected theme keyed by file name, got %v", catalog.Keys())
	}
	if def.DisplayName != "Élan" {
		t.Fatalf("expected display name %q, got %q", "Élan", def.DisplayName)
	}
}

func TestHumaniseSlug(t *testing.T) {
	cases := map[string]string{
		"":               "Theme",
		"solarized-dark": "Solarized Dark",
		"oceanic-1":      "Oceanic 1",
		"élan-über":      "Élan Über",
		"--a--b":         "A B",
	}
	for in, want := range cases {
		if got := humaniseSlug(in); got != want {
			t.Fatalf("humaniseSlug(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Solarized Dark":  "solarized-dark",
		"  spaced__out  ": "spaced-out",
		"Night (v2)":      "night-v2",
		"":                "",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Fatalf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
