package config

import (
	"strings"

	"github.com/unkn0wn-root/hurlhtml/internal/util"
)

const (
	StyleDefault    = "default"
	TitleDefault    = "Hurl File"
	LanguageDefault = "hurl"
)

func DefaultSettings() Settings {
	return Settings{
		Style:     StyleDefault,
		ThemeDirs: []string{ThemesDir()},
		Minify:    false,
		Title:     TitleDefault,
		Language:  LanguageDefault,
	}
}

// NormaliseSettings fills empty fields with defaults and cleans up the
// theme directory list.
func NormaliseSettings(in Settings) Settings {
	out := DefaultSettings()
	out.Style = orDefault(in.Style, StyleDefault)
	out.Title = orDefault(in.Title, TitleDefault)
	out.Language = strings.ToLower(orDefault(in.Language, LanguageDefault))
	out.Minify = in.Minify
	if dirs := util.CompactStrings(in.ThemeDirs); len(dirs) > 0 {
		out.ThemeDirs = dirs
	}
	return out
}

func orDefault(value, def string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}
	return value
}
