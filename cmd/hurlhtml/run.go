package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/muesli/termenv"

	"github.com/unkn0wn-root/hurlhtml/internal/config"
	"github.com/unkn0wn-root/hurlhtml/internal/htmlfmt"
	"github.com/unkn0wn-root/hurlhtml/internal/roundtrip"
	"github.com/unkn0wn-root/hurlhtml/internal/sample"
	"github.com/unkn0wn-root/hurlhtml/internal/style"
	"github.com/unkn0wn-root/hurlhtml/internal/termview"
)

type cliOptions struct {
	style      string
	themeDirs  []string
	minify     bool
	output     string
	listStyles bool
	static     bool
	preview    bool
	page       bool
	save       bool
	profile    termenv.Profile
}

func run(opts cliOptions, stdout io.Writer) error {
	settings, handle, err := config.LoadSettings()
	if err != nil {
		log.Printf("settings: %v (using defaults)", err)
		settings = config.DefaultSettings()
	}
	settings = applyFlags(settings, opts)

	if opts.save {
		if err := config.SaveSettings(settings, handle); err != nil {
			return err
		}
		log.Printf("saved settings to %s", handle.Path)
	}

	catalog, err := style.LoadThemes(settings.ThemeDirs)
	if err != nil {
		// broken themes are skipped, the rest of the catalog is usable
		log.Printf("themes: %v", err)
	}

	if opts.listStyles {
		for _, name := range style.Names(catalog) {
			if _, err := fmt.Fprintln(stdout, name); err != nil {
				return err
			}
		}
		return nil
	}

	pal, err := style.Resolve(settings.Style, catalog)
	if err != nil {
		return err
	}

	if opts.preview {
		return writePreview(stdout, pal, opts.profile)
	}

	css, err := stylesheet(settings, pal, opts.static)
	if err != nil {
		return err
	}
	out := css
	if opts.page {
		out = htmlfmt.Format(sample.Document(), htmlfmt.Options{
			Standalone: true,
			Language:   settings.Language,
			Title:      settings.Title,
			Stylesheet: css,
		})
	}
	return writeOutput(opts.output, stdout, out)
}

func applyFlags(settings config.Settings, opts cliOptions) config.Settings {
	if s := strings.TrimSpace(opts.style); s != "" {
		settings.Style = s
	}
	if len(opts.themeDirs) > 0 {
		settings.ThemeDirs = opts.themeDirs
	}
	if opts.minify {
		settings.Minify = true
	}
	return config.NormaliseSettings(settings)
}

func stylesheet(settings config.Settings, pal style.Palette, static bool) (string, error) {
	selector := ".language-" + htmlfmt.LanguageClass(settings.Language)
	css := style.ScopedCSS(selector)
	if !static {
		css = pal.CSS(selector)
	}
	if !settings.Minify {
		return css, nil
	}
	return style.Minify(css)
}

func writePreview(w io.Writer, pal style.Palette, profile termenv.Profile) error {
	rendered := htmlfmt.Fragment(sample.Document())
	if err := roundtrip.Check(sample.Source, rendered); err != nil {
		return err
	}
	text, err := termview.Render(rendered, pal, profile)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}

func writeOutput(path string, stdout io.Writer, content string) error {
	if path == "" {
		_, err := io.WriteString(stdout, content)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	return nil
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
