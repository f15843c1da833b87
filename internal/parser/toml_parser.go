package parser

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type tomlDocument struct {
	Packages []tomlPackage `toml:"package"`
}

type tomlPackage struct {
	Code string `toml:"code"`
	Data []any  `toml:"data"`
}

// TOMLParser reads packages written as [[package]] tables:
//
//	[[package]]
//	code = "RUN"
//	data = [15000, 1, 75]
type TOMLParser struct{}

func NewTOMLParser() *TOMLParser {
	return &TOMLParser{}
}

func (p *TOMLParser) ParseFile(filename string) ([]Package, error) {
	return parseFile(p, filename)
}

func (p *TOMLParser) ParseData(data []byte) ([]Package, error) {
	var doc tomlDocument
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to decode TOML: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, fmt.Errorf("unknown keys in TOML: %s", strings.Join(keys, ", "))
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
