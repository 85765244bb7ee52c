package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ErrLoad marks a document-level failure: missing file, unsupported format or
// content that does not decode.
var ErrLoad = errors.New("failed to load bindings document")

// LoadError wraps the underlying cause of a document-level failure.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s %s: %v", ErrLoad, e.Path, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{ErrLoad, e.Err}
}

// SupportedExtensions lists the document formats understood by Load and Write.
var SupportedExtensions = []string{".yaml", ".yml", ".toml", ".json"}

// Load reads a bindings document. The format is chosen from the file extension.
func Load(path string) (*Document, error) {
	if !isSupported(path) {
		return nil, &LoadError{
			Path: path,
			Err:  fmt.Errorf("unsupported extension %q (want one of %s)", filepath.Ext(path), strings.Join(SupportedExtensions, ", ")),
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	doc := &Document{}
	if err := v.Unmarshal(doc); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("decode: %w", err)}
	}

	if doc.Settings.ResetPointerOnEnter == nil && v.IsSet(legacyKeyResetPointerOnEnter) {
		doc.Settings.ResetPointerOnEnter = Bool(v.GetBool(legacyKeyResetPointerOnEnter))
	}

	return doc, nil
}

func isSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}
