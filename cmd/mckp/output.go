// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mckp/knapsack"
	"github.com/katalvlaran/mckp/problem"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func checkFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("%w: --format %q, want text, json or yaml", errBadFlag, format)
	}
}

// solveReport is the printed outcome of one file.
type solveReport struct {
	File     string       `json:"file" yaml:"file"`
	Capacity int          `json:"capacity" yaml:"capacity"`
	Value    int          `json:"value" yaml:"value"`
	Weight   int          `json:"weight" yaml:"weight"`
	Items    []reportItem `json:"items" yaml:"items"`
}

type reportItem struct {
	Name   string `json:"name" yaml:"name"`
	Group  string `json:"group" yaml:"group"`
	Weight int    `json:"weight" yaml:"weight"`
	Value  int    `json:"value" yaml:"value"`
}

func newSolveReport(file string, p knapsack.Problem[problem.Item], res knapsack.Result[problem.Item]) solveReport {
	r := solveReport{
		File:     file,
		Capacity: p.Capacity,
		Value:    res.Value,
		Weight:   res.Weight(p.Weights),
		Items:    make([]reportItem, len(res.Items)),
	}
	for i, it := range res.Items {
		r.Items[i] = reportItem{Name: it.Name, Group: it.Group, Weight: it.Weight, Value: int(it.Value)}
	}

	return r
}

// estimateReport is the printed runtime estimate of one file.
type estimateReport struct {
	File         string  `json:"file" yaml:"file"`
	Items        int     `json:"items" yaml:"items"`
	Groups       int     `json:"groups" yaml:"groups"`
	Capacity     int     `json:"capacity" yaml:"capacity"`
	MaxGroupSize int     `json:"max_group_size" yaml:"max_group_size"`
	Seconds      float64 `json:"seconds" yaml:"seconds"`
	Budget       string  `json:"budget" yaml:"budget"`
	Fits         bool    `json:"fits" yaml:"fits"`
}

// write renders v as json or yaml, or calls text for the text format.
func write(w io.Writer, format string, v any, text func() string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := io.WriteString(w, text())
		return err
	}
}

func solveText(reports []solveReport) string {
	var b strings.Builder
	for _, r := range reports {
		fmt.Fprintf(&b, "%s: value %d, weight %d/%d\n", r.File, r.Value, r.Weight, r.Capacity)
		if len(r.Items) == 0 {
			b.WriteString("  (nothing selected)\n")
		}
		for _, it := range r.Items {
			fmt.Fprintf(&b, "  %s (%s) weight %d value %d\n", it.Name, it.Group, it.Weight, it.Value)
		}
	}

	return b.String()
}

func estimateText(reports []estimateReport) string {
	var b strings.Builder
	for _, r := range reports {
		verdict := "fits"
		if !r.Fits {
			verdict = "exceeds"
		}
		fmt.Fprintf(&b, "%s: n=%d groups=%d capacity=%d maxGroupSize=%d est=%.6fs %s budget %s\n",
			r.File, r.Items, r.Groups, r.Capacity, r.MaxGroupSize, r.Seconds, verdict, r.Budget)
	}

	return b.String()
}
