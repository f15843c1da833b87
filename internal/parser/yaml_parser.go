package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlDocument struct {
	Packages []yamlPackage `yaml:"packages"`
}

type yamlPackage struct {
	Code string `yaml:"code"`
	Data []any  `yaml:"data"`
}

// YAMLParser reads packages from a top-level packages list:
//
//	packages:
//	  - code: RUN
//	    data: [15000, 1, 75]
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (p *YAMLParser) ParseFile(filename string) ([]Package, error) {
	return parseFile(p, filename)
}

func (p *YAMLParser) ParseData(data []byte) ([]Package, error) {
	var doc yamlDocument
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML: %w", err)
	}

	if len(doc.Packages) == 0 {
		return nil, fmt.Errorf("no packages found")
	}

	packages := make([]Package, 0, len(doc.Packages))
	for _, pkg := range doc.Packages {
		packages = append(packages, Package{Code: pkg.Code, Data: pkg.Data})
	}
	return packages, nil
}
