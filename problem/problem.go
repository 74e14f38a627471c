// SPDX-License-Identifier: MIT

package problem

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mckp/knapsack"
)

var (
	// ErrEmptyFile is returned when the document holds no YAML node at all.
	ErrEmptyFile = errors.New("problem: empty document")

	// ErrInvalidFile wraps struct validation failures.
	ErrInvalidFile = errors.New("problem: invalid document")

	// ErrInvalidValue is returned for a value scalar that is not a number.
	ErrInvalidValue = errors.New("problem: value is not a number")
)

// fileValidate is the validator instance for problem documents.
// Field names in its errors follow the yaml keys.
var fileValidate *validator.Validate

func init() {
	fileValidate = validator.New()
	fileValidate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})
	_ = fileValidate.RegisterValidation("duration", validateDuration)
}

// validateDuration accepts a non-negative time.ParseDuration string.
func validateDuration(fl validator.FieldLevel) bool {
	d, err := time.ParseDuration(fl.Field().String())

	return err == nil && d >= 0
}

// File is one decoded problem document.
type File struct {
	Capacity int      `yaml:"capacity" validate:"gte=0"`
	Options  Settings `yaml:"options"`
	Items    []Item   `yaml:"items" validate:"dive"`
}

// Settings mirror the knapsack options a document may carry.
// Zero values leave the library defaults in place.
type Settings struct {
	Verbose        bool    `yaml:"verbose"`
	RuntimeBudget  string  `yaml:"runtime_budget" validate:"omitempty,duration"`
	Calibration    float64 `yaml:"calibration" validate:"gte=0"`
	CheckIntegrity bool    `yaml:"check_integrity"`
}

// Item is one candidate. Name is the payload reported back in results.
type Item struct {
	Name   string `yaml:"name" validate:"required"`
	Weight int    `yaml:"weight" validate:"gte=0"`
	Value  Value  `yaml:"value"`
	Group  string `yaml:"group" validate:"required"`
}

// Value is an exact integer item value decoded from an int or integral float.
type Value int

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Value) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w", n.Line, ErrInvalidValue)
	}

	switch n.ShortTag() {
	case "!!int":
		var i int
		if err := n.Decode(&i); err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		*v = Value(i)
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		i, err := knapsack.IntegerValue(f)
		if err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		*v = Value(i)
	default:
		return fmt.Errorf("line %d: %w: %q", n.Line, ErrInvalidValue, n.Value)
	}

	return nil
}

// Load reads and parses the document at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("problem: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse decodes one document and validates it. Unknown keys are errors.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFile
		}

		return nil, fmt.Errorf("problem: decode: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Validate checks the struct tags of f and its items.
func (f *File) Validate() error {
	if err := fileValidate.Struct(f); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	return nil
}

// Instance converts f into a knapsack problem. Group labels become ids
// 0,1,2,... in order of first appearance and items are stably regrouped, so
// items sharing a label keep their relative order.
func (f *File) Instance() knapsack.Problem[Item] {
	ids := make(map[string]int, len(f.Items))
	for _, it := range f.Items {
		if _, ok := ids[it.Group]; !ok {
			ids[it.Group] = len(ids)
		}
	}

	items := make([]Item, len(f.Items))
	copy(items, f.Items)
	sort.SliceStable(items, func(a, b int) bool {
		return ids[items[a].Group] < ids[items[b].Group]
	})

	p := knapsack.Problem[Item]{
		Items:    items,
		Capacity: f.Capacity,
		Weights:  make([]int, len(items)),
		Values:   make([]int, len(items)),
		Groups:   make([]int, len(items)),
	}
	for i, it := range items {
		p.Weights[i] = it.Weight
		p.Values[i] = int(it.Value)
		p.Groups[i] = ids[it.Group]
	}

	return p
}

// SolverOptions translates the document settings into knapsack options.
// Unset settings produce no option.
func (f *File) SolverOptions() ([]knapsack.Option, error) {
	s := f.Options
	var opts []knapsack.Option
	if s.Verbose {
		opts = append(opts, knapsack.WithVerbose(true))
	}
	if s.RuntimeBudget != "" {
		d, err := time.ParseDuration(s.RuntimeBudget)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("%w: runtime_budget %q", ErrInvalidFile, s.RuntimeBudget)
		}
		opts = append(opts, knapsack.WithRuntimeBudget(d))
	}
	if math.IsInf(s.Calibration, 0) {
		return nil, fmt.Errorf("%w: calibration must be finite", ErrInvalidFile)
	}
	if s.Calibration > 0 {
		opts = append(opts, knapsack.WithCalibration(s.Calibration))
	}
	if s.CheckIntegrity {
		opts = append(opts, knapsack.WithIntegrityCheck())
	}

	return opts, nil
}
