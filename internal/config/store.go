package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// ErrAlreadyLocked is returned when another tkg process is writing the
// configuration file.
var ErrAlreadyLocked = errors.New("another tkg command is writing the configuration")

// ErrConfigExists is returned when Save would overwrite an existing file
// without being asked to.
var ErrConfigExists = errors.New("configuration file already exists")

// ErrUnsupportedFormat is returned for file extensions other than .yaml,
// .yml and .toml.
var ErrUnsupportedFormat = errors.New("unsupported configuration format")

// Flocker abstracts the subset of flock.Flock used to guard writes.
type Flocker interface {
	TryLock() (bool, error)
	Unlock() error
}

// Store reads and writes one configuration file. The format follows the
// file extension.
type Store struct {
	path    string
	flocker Flocker
}

// NewStore creates a Store for path, guarded by an advisory lock on
// path + ".lock".
func NewStore(path string) *Store {
	return NewStoreWithLock(path, flock.New(path+".lock"))
}

// NewStoreWithLock creates a Store using the given Flocker.
func NewStoreWithLock(path string, f Flocker) *Store {
	return &Store{path: path, flocker: f}
}

// Path returns the configuration file path.
func (s *Store) Path() string {
	return s.path
}

// DefaultPath returns $XDG_CONFIG_HOME/tkg/config.yaml, or the platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, "tkg", "config.yaml"), nil
}

// Load reads and validates the file. A missing file yields Default and
// found == false.
func (s *Store) Load(ctx context.Context) (f *File, found bool, err error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading config %s: %w", s.path, err)
	}

	f, err = Decode(formatOf(s.path), data)
	if err != nil {
		return nil, true, fmt.Errorf("%s: %w", s.path, err)
	}
	return f, true, nil
}

// Save writes f, holding the advisory lock for the duration. It fails with
// ErrConfigExists if the file exists and overwrite is false.
func (s *Store) Save(ctx context.Context, f *File, overwrite bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := Encode(formatOf(s.path), f)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	ok, err := s.flocker.TryLock()
	if err != nil {
		return fmt.Errorf("acquiring lock: %w", err)
	}
	if !ok {
		return ErrAlreadyLocked
	}
	defer s.flocker.Unlock()

	if !overwrite {
		if _, err := os.Stat(s.path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, s.path)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Format identifies a configuration file syntax.
type Format string

const (
	// FormatYAML is the default format.
	FormatYAML Format = "yaml"
	// FormatTOML is selected by a .toml extension.
	FormatTOML Format = "toml"
)

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", "":
		return FormatYAML
	case ".toml":
		return FormatTOML
	}
	return Format(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Decode parses data in the given format. Unknown keys are rejected.
func Decode(format Format, data []byte) (*File, error) {
	var f File
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, fmt.Errorf("parsing toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("parsing toml: unknown key %q", undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := f.normalize(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Encode renders f in the given format.
func Encode(format Format, f *File) ([]byte, error) {
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(f)
		if err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		return data, nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(f); err != nil {
			return nil, fmt.Errorf("encoding toml: %w", err)
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
