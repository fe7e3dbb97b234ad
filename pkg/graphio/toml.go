package graphio

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// ReadTOML decodes a TOML graph document from r. Edges are [[edge]] tables
// with integer "from" and "to" keys.
func ReadTOML(r io.Reader) (Document, error) {
	var doc Document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode: %w", err)
	}
	return doc, nil
}

// ImportTOML reads the TOML file at path and returns the decoded document.
func ImportTOML(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := ReadTOML(f)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
