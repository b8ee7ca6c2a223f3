// SPDX-License-Identifier: MIT

package worksheet

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Worksheet is the decoded form of a YAML worksheet.
type Worksheet struct {
	Matrices map[string][][]float64 `yaml:"matrices"`
	Vectors  map[string][]float64   `yaml:"vectors"`
	Sets     map[string][]int64     `yaml:"sets"`
	Steps    []Step                 `yaml:"steps"`
}

// Step is one operation. Only the fields the op needs are read.
type Step struct {
	Op     string    `yaml:"op"`
	Args   []string  `yaml:"args"`
	Scalar *float64  `yaml:"scalar,omitempty"`
	Angle  float64   `yaml:"angle,omitempty"` // radians
	Axis   string    `yaml:"axis,omitempty"`  // "", x, y or z
	Values []float64 `yaml:"values,omitempty"`
	As     string    `yaml:"as,omitempty"`
}

// Load decodes a worksheet from r and validates it.
func Load(r io.Reader) (*Worksheet, error) {
	var ws Worksheet
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ws); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode worksheet: %w", err)
	}
	if err := ws.Validate(); err != nil {
		return nil, err
	}

	return &ws, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Worksheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open worksheet: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Names returns every declared operand name in ascending order.
func (ws *Worksheet) Names() []string {
	names := append(lo.Keys(ws.Matrices), lo.Keys(ws.Vectors)...)
	names = append(names, lo.Keys(ws.Sets)...)
	slices.Sort(names)

	return names
}

// Validate checks operand names are unique and every op is known.
// Operand references are resolved during evaluation, since steps may
// introduce names.
func (ws *Worksheet) Validate() error {
	if dups := lo.FindDuplicates(ws.Names()); len(dups) > 0 {
		return fmt.Errorf("%w: %v", ErrDuplicateName, dups)
	}
	for i, st := range ws.Steps {
		if _, ok := ops[st.Op]; !ok {
			return fmt.Errorf("step %d: %w %q", i+1, ErrUnknownOp, st.Op)
		}
	}

	return nil
}
