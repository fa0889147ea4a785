// Package apiconfig loads named configuration profiles and resolves the
// secret references they contain.
//
// A profile is a TOML file in Dir. Values that hold secrets may be
// written as references instead of literals:
//
//	env:NAME     the value of environment variable NAME
//	op://...     a 1Password secret reference, read with the op CLI
//
// Anything else is used as is.
package apiconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/mstetson/godaddy-cli/opsecret"
)

// DirEnv names the environment variable that overrides Dir.
const DirEnv = "GODADDY_CONFIG_DIR"

// DefaultName is the profile loaded when no name is given.
const DefaultName = "config"

// ErrNotFound is returned by Load when the profile file does not exist.
type ErrNotFound struct {
	Path string
}

func (e ErrNotFound) Error() string {
	return "config not found: " + e.Path
}

// Dir returns the directory holding configuration profiles.
func Dir() (string, error) {
	if d := os.Getenv(DirEnv); d != "" {
		return d, nil
	}
	d, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "godaddy"), nil
}

// Path returns the file name of the named profile.
func Path(name string) (string, error) {
	if name == "" {
		name = DefaultName
	}
	if strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("bad config name %q", name)
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name+".toml"), nil
}

// Load decodes the named profile into v, which must be a pointer to a struct.
// Unknown keys are an error. If the file does not exist,
// the error is an ErrNotFound and v is left unchanged.
func Load(v any, name string) error {
	path, err := Path(name)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound{Path: path}
	}
	if err != nil {
		return err
	}
	defer f.Close()
	err = toml.NewDecoder(f).DisallowUnknownFields().Decode(v)
	if err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("%s:%d:%d: %s", path, row, col, derr)
		}
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadDotEnv sets environment variables from the given .env files,
// or from .env in the working directory if none are given.
// Variables already set are not changed and missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, name := range files {
		err := godotenv.Load(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// Deref resolves a possible secret reference.
func Deref(s string) (string, error) {
	switch {
	case strings.HasPrefix(s, "env:"):
		name := strings.TrimPrefix(s, "env:")
		v, ok := os.LookupEnv(name)
		if !ok {
			return "", fmt.Errorf("environment variable %s not set", name)
		}
		return v, nil
	case opsecret.IsRef(s):
		return opsecret.Get(s)
	default:
		return s, nil
	}
}

// A Dereffer resolves several values, keeping the first error.
// After an error, further calls return zero values.
type Dereffer struct {
	Error error
}

// String resolves s.
func (d *Dereffer) String(s string) string {
	if d.Error != nil {
		return ""
	}
	v, err := Deref(s)
	if err != nil {
		d.Error = err
		return ""
	}
	return v
}
