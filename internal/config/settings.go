package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/unkn0wn-root/hurlhtml/internal/errdef"
)

type SettingsFormat string

const (
	SettingsFormatTOML SettingsFormat = "toml"
	SettingsFormatJSON SettingsFormat = "json"
)

// Settings are the CLI defaults a user may persist between runs.
type Settings struct {
	Style     string   `json:"style"      toml:"style"`
	ThemeDirs []string `json:"theme_dirs" toml:"theme_dirs"`
	Minify    bool     `json:"minify"     toml:"minify"`
	Title     string   `json:"title"      toml:"title"`
	Language  string   `json:"language"   toml:"language"`
}

// SettingsHandle records where settings were read from so a save goes
// back to the same file in the same format.
type SettingsHandle struct {
	Path   string
	Format SettingsFormat
}

type settingsCodec struct {
	decode func([]byte, *Settings) error
	encode func(Settings) ([]byte, error)
}

var codecs = map[SettingsFormat]settingsCodec{
	SettingsFormatTOML: {
		decode: func(data []byte, s *Settings) error { return toml.Unmarshal(data, s) },
		encode: func(s Settings) ([]byte, error) { return toml.Marshal(s) },
	},
	SettingsFormatJSON: {
		decode: decodeJSON,
		encode: encodeJSON,
	},
}

func decodeJSON(data []byte, s *Settings) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(s)
}

func encodeJSON(s Settings) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// lookup order; the first existing file wins
func settingsCandidates(dir string) []SettingsHandle {
	return []SettingsHandle{
		{Path: filepath.Join(dir, "settings.toml"), Format: SettingsFormatTOML},
		{Path: filepath.Join(dir, "settings.json"), Format: SettingsFormatJSON},
	}
}

// LoadSettings reads settings.toml, or settings.json when there is no TOML
// file, from Dir. A malformed file is an error; when neither exists the
// defaults are returned with a handle pointing at settings.toml.
func LoadSettings() (Settings, SettingsHandle, error) {
	candidates := settingsCandidates(Dir())

	var readErr error
	for _, handle := range candidates {
		data, err := os.ReadFile(handle.Path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			continue
		case err != nil:
			readErr = errors.Join(readErr,
				errdef.Wrap(errdef.CodeFilesystem, err, "read settings %q", handle.Path))
			continue
		}

		var settings Settings
		if err := codecs[handle.Format].decode(data, &settings); err != nil {
			return Settings{}, SettingsHandle{},
				errdef.Wrap(errdef.CodeConfig, err, "parse settings %q", handle.Path)
		}
		return NormaliseSettings(settings), handle, nil
	}
	if readErr != nil {
		return Settings{}, SettingsHandle{}, readErr
	}
	return DefaultSettings(), candidates[0], nil
}

// SaveSettings writes normalised settings to handle. An empty handle means
// settings.toml in Dir.
func SaveSettings(settings Settings, handle SettingsHandle) error {
	if handle.Path == "" {
		handle.Path = settingsCandidates(Dir())[0].Path
	}
	if handle.Format == "" {
		handle.Format = SettingsFormatTOML
	}
	codec, ok := codecs[handle.Format]
	if !ok {
		return errdef.New(errdef.CodeConfig, "unsupported settings format %q", handle.Format)
	}

	data, err := codec.encode(NormaliseSettings(settings))
	if err != nil {
		return errdef.Wrap(errdef.CodeConfig, err, "encode settings")
	}
	if err := os.MkdirAll(filepath.Dir(handle.Path), 0o755); err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "create settings directory")
	}
	if err := replaceFile(handle.Path, data, 0o644); err != nil {
		return errdef.Wrap(errdef.CodeFilesystem, err, "write settings %q", handle.Path)
	}
	return nil
}

// replaceFile writes data next to path and renames it into place, so a
// reader sees either the old file or the new one.
func replaceFile(path string, data []byte, perm fs.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".hurlhtml-settings-*.tmp")
	if err != nil {
		return err
	}
	name := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(name)
		}
	}()

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Chmod(perm)
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}
	return os.Rename(name, path)
}
