package parser

import (
	"fmt"
	"path/filepath"
	"strings"
)

// NewParser creates a parser based on file extension or content
func NewParser(filename string, athlete Athlete) (Parser, error) {
	// First try by extension
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".fit":
		return NewFITParser(athlete), nil
	case ".toml":
		return NewTOMLParser(), nil
	case ".yaml", ".yml":
		return NewYAMLParser(), nil
	}

	// If extension doesn't match, detect by content
	fileType, err := DetectFileTypeFromFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to detect file type: %w", err)
	}

	return NewParserForType(fileType, athlete)
}

// NewParserFromData creates a parser based on file content
func NewParserFromData(data []byte, athlete Athlete) (Parser, error) {
	return NewParserForType(DetectFileTypeFromData(data), athlete)
}

func NewParserForType(fileType FileType, athlete Athlete) (Parser, error) {
	switch fileType {
	case FIT:
		return NewFITParser(athlete), nil
	case TOML:
		return NewTOMLParser(), nil
	case YAML:
		return NewYAMLParser(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, fileType)
	}
}
