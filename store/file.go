// SPDX-License-Identifier: MIT
// Package: trafficpath/store
//
// file.go - format selection and file level load/save.

package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/trafficpath/core"
)

// Format names a file encoding.
type Format string

const (
	// FormatLegacy is the whitespace text format.
	FormatLegacy Format = "legacy"

	// FormatYAML is the YAML document format.
	FormatYAML Format = "yaml"
)

// FormatFor picks the encoding implied by path's extension.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatLegacy
	}
}

// ParseFormat resolves a user supplied format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "legacy", "txt", "text":
		return FormatLegacy, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Read decodes r using format f.
func Read(r io.Reader, f Format, opts ...LoadOption) (*core.Graph, error) {
	switch f {
	case FormatLegacy:
		return ReadLegacy(r, opts...)
	case FormatYAML:
		return ReadYAML(r, opts...)
	default:
		return nil, fmt.Errorf("Read: %w: %q", ErrUnknownFormat, f)
	}
}

// Write encodes g to w using format f.
func Write(w io.Writer, g *core.Graph, f Format) error {
	switch f {
	case FormatLegacy:
		return WriteLegacy(w, g)
	case FormatYAML:
		return WriteYAML(w, g)
	default:
		return fmt.Errorf("Write: %w: %q", ErrUnknownFormat, f)
	}
}

// LoadFile reads the network stored at path. A missing file wraps
// ErrNotFound so callers can start from an empty network instead.
func LoadFile(path string, opts ...LoadOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("LoadFile(%s): %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("LoadFile(%s): %w", path, err)
	}
	defer f.Close()

	g, err := Read(f, FormatFor(path), opts...)
	if err != nil {
		return nil, fmt.Errorf("LoadFile(%s): %w", path, err)
	}

	return g, nil
}

// SaveFile writes g to path, replacing any existing file.
func SaveFile(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("SaveFile(%s): %w", path, err)
	}
	if err := Write(f, g, FormatFor(path)); err != nil {
		_ = f.Close()
		return fmt.Errorf("SaveFile(%s): %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("SaveFile(%s): %w", path, err)
	}

	return nil
}
