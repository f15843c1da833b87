package parser

import (
	"bytes"
	"io"
	"os"
)

type FileType string

const (
	FIT     FileType = "fit"
	TOML    FileType = "toml"
	YAML    FileType = "yaml"
	Unknown FileType = "unknown"
)

var (
	fitSignature = []byte(".FIT")
	tomlMarker   = []byte("[[package]]")
	yamlMarker   = []byte("packages:")
)

// DetectFileTypeFromFile inspects the first bytes of filename.
func DetectFileTypeFromFile(filename string) (FileType, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Unknown, err
	}
	defer file.Close()

	// Read first 512 bytes for detection
	header := make([]byte, 512)
	n, err := io.ReadFull(file, header)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Unknown, err
	}

	return DetectFileTypeFromData(header[:n]), nil
}

func DetectFileTypeFromData(data []byte) FileType {
	// FIT header carries ".FIT" at bytes 8-11
	if len(data) >= 12 && bytes.Equal(data[8:12], fitSignature) {
		return FIT
	}

	if hasLine(data, tomlMarker) {
		return TOML
	}
	if hasLine(data, yamlMarker) {
		return YAML
	}

	return Unknown
}

// hasLine reports whether a line of data starts with prefix.
func hasLine(data, prefix []byte) bool {
	return bytes.HasPrefix(data, prefix) || bytes.Contains(data, append([]byte("\n"), prefix...))
}
