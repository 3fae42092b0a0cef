// Package generator renders the per-target assertion entry points (must,
// gotestcmp) from one table that lists every assertion once.
package generator

import (
	"errors"
	"fmt"
	"io"
	"path"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
)

var ErrTable = errors.New("invalid assertion table")

// Table is the decoded codegen.yaml.
type Table struct {
	Groups []Group `yaml:"groups"`
}

// Group is one assertion package. Its methods land in <name>_gen.go of
// every target it is enabled for.
type Group struct {
	Name    string   `yaml:"name"`
	Import  string   `yaml:"import"`
	Noun    string   `yaml:"noun"`
	Prefix  string   `yaml:"prefix"`
	Subject Param    `yaml:"subject"`
	Imports []string `yaml:"imports"`
	Targets []string `yaml:"targets"`
	Methods []Method `yaml:"methods"`
}

// Method names one assertion function of the group's package. Params come
// after the group subject.
type Method struct {
	Name   string  `yaml:"name"`
	Params []Param `yaml:"params"`
	Doc    string  `yaml:"doc"`
}

type Param struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Variadic bool   `yaml:"variadic"`
}

// Alias is the package qualifier used in generated calls.
func (g Group) Alias() string {
	return path.Base(g.Import)
}

// Enabled reports whether the group is generated for target. An empty
// target list means every target.
func (g Group) Enabled(target string) bool {
	return len(g.Targets) == 0 || slices.Contains(g.Targets, target)
}

// Wrapper is the exported name of the generated function.
func (g Group) Wrapper(m Method) string {
	return g.Prefix + m.Name
}

// Load decodes a table. Unknown fields and duplicate keys are errors.
func Load(r io.Reader) (Table, error) {
	decoder := yaml.NewDecoder(r, yaml.Strict(), yaml.DisallowUnknownField())

	var table Table
	if err := decoder.Decode(&table); err != nil {
		if errors.Is(err, io.EOF) {
			return Table{}, fmt.Errorf("%w: table is empty", ErrTable)
		}
		return Table{}, fmt.Errorf("%w: failed to decode YAML: %v", ErrTable, err)
	}

	for i := range table.Groups {
		g := &table.Groups[i]
		g.Name = strings.TrimSpace(g.Name)
		g.Import = strings.TrimSpace(g.Import)
	}

	return table, nil
}
