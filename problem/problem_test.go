// SPDX-License-Identifier: MIT

package problem_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mckp/knapsack"
	"github.com/katalvlaran/mckp/problem"
)

const loadoutYAML = `
capacity: 130
options:
  runtime_budget: 50ms
  calibration: 0.0000001
  check_integrity: true
items:
  - {name: iron sword,  weight: 30, value: 5,  group: weapon}
  - {name: leather,     weight: 20, value: 3,  group: armor}
  - {name: steel sword, weight: 70, value: 12, group: weapon}
  - {name: chain,       weight: 50, value: 8.0, group: armor}
  - {name: plate,       weight: 90, value: 14, group: armor}
  - {name: sandals,     weight: 10, value: 1,  group: boots}
`

func names(items []problem.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}

	return out
}

func applied(opts []knapsack.Option) knapsack.Options {
	o := knapsack.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func TestParse_Loadout(t *testing.T) {
	f, err := problem.Parse([]byte(loadoutYAML))
	require.NoError(t, err)
	assert.Equal(t, 130, f.Capacity)
	require.Len(t, f.Items, 6)
	assert.Equal(t, problem.Value(8), f.Items[3].Value, "integral float accepted")

	p := f.Instance()
	want := knapsack.Problem[problem.Item]{
		Capacity: 130,
		Weights:  []int{30, 70, 20, 50, 90, 10},
		Values:   []int{5, 12, 3, 8, 14, 1},
		Groups:   []int{0, 0, 1, 1, 1, 2},
	}
	if diff := cmp.Diff(want.Weights, p.Weights); diff != "" {
		t.Errorf("weights mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want.Values, p.Values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want.Groups, p.Groups); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t,
		[]string{"iron sword", "steel sword", "leather", "chain", "plate", "sandals"},
		names(p.Items))

	// The document order is untouched.
	assert.Equal(t, "leather", f.Items[1].Name)
}

func TestParse_SolvesEndToEnd(t *testing.T) {
	f, err := problem.Parse([]byte(loadoutYAML))
	require.NoError(t, err)
	opts, err := f.SolverOptions()
	require.NoError(t, err)

	res, err := knapsack.SolveProblem(f.Instance(), opts...)
	require.NoError(t, err)
	assert.Equal(t, 21, res.Value)
	assert.Equal(t, []string{"sandals", "chain", "steel sword"}, names(res.Items))
}

func TestParse_JSON(t *testing.T) {
	doc := `{"capacity": 5, "items": [
		{"name": "x", "weight": 3, "value": 4, "group": "0"},
		{"name": "y", "weight": 4, "value": 5, "group": "0"}]}`
	f, err := problem.Parse([]byte(doc))
	require.NoError(t, err)

	res, err := knapsack.SolveProblem(f.Instance())
	require.NoError(t, err)
	assert.Equal(t, 5, res.Value)
	assert.Equal(t, []string{"y"}, names(res.Items))
}

func TestParse_NumericGroupLabels(t *testing.T) {
	doc := `
capacity: 10
items:
  - {name: a, weight: 1, value: 1, group: 7}
  - {name: b, weight: 1, value: 1, group: 3}
  - {name: c, weight: 1, value: 1, group: 7}
`
	f, err := problem.Parse([]byte(doc))
	require.NoError(t, err)
	p := f.Instance()
	assert.Equal(t, []int{0, 0, 1}, p.Groups)
	assert.Equal(t, []string{"a", "c", "b"}, names(p.Items))
}

func TestParse_Values(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  error
	}{
		{"fractional", "12.5", knapsack.ErrNonIntegerValue},
		{"out of range", "1e300", knapsack.ErrNonIntegerValue},
		{"not a number", "many", problem.ErrInvalidValue},
		{"quoted", `"12"`, problem.ErrInvalidValue},
		{"sequence", "[1, 2]", problem.ErrInvalidValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := "capacity: 1\nitems:\n  - {name: a, weight: 1, group: g, value: " + tc.value + "}\n"
			_, err := problem.Parse([]byte(doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_NegativeValueAllowed(t *testing.T) {
	f, err := problem.Parse([]byte("capacity: 1\nitems:\n  - {name: a, weight: 1, value: -3, group: g}\n"))
	require.NoError(t, err)
	assert.Equal(t, problem.Value(-3), f.Items[0].Value)
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		doc   string
		field string
	}{
		{"negative capacity", "capacity: -1", "capacity"},
		{"negative weight", "capacity: 1\nitems: [{name: a, weight: -1, value: 1, group: g}]", "weight"},
		{"missing name", "capacity: 1\nitems: [{weight: 1, value: 1, group: g}]", "name"},
		{"missing group", "capacity: 1\nitems: [{name: a, weight: 1, value: 1}]", "group"},
		{"bad duration", "capacity: 1\noptions: {runtime_budget: soon}", "runtime_budget"},
		{"negative duration", "capacity: 1\noptions: {runtime_budget: -1s}", "runtime_budget"},
		{"negative calibration", "capacity: 1\noptions: {calibration: -2}", "calibration"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := problem.Parse([]byte(tc.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, problem.ErrInvalidFile)

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			require.NotEmpty(t, verrs)
			assert.Equal(t, tc.field, verrs[0].Field())
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := problem.Parse(nil)
	assert.ErrorIs(t, err, problem.ErrEmptyFile)

	_, err = problem.Parse([]byte("capacity: 1\nbogus: true\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = problem.Parse([]byte("capacity: [1\n"))
	assert.Error(t, err)
}

func TestSolverOptions(t *testing.T) {
	f, err := problem.Parse([]byte(loadoutYAML))
	require.NoError(t, err)
	opts, err := f.SolverOptions()
	require.NoError(t, err)

	o := applied(opts)
	assert.Equal(t, 50*time.Millisecond, o.RuntimeBudget)
	assert.Equal(t, 0.0000001, o.Calibration)
	assert.True(t, o.CheckIntegrity)
	assert.False(t, o.Verbose)
}

func TestSolverOptions_Defaults(t *testing.T) {
	f, err := problem.Parse([]byte("capacity: 0\n"))
	require.NoError(t, err)
	opts, err := f.SolverOptions()
	require.NoError(t, err)
	assert.Empty(t, opts)

	o := applied(opts)
	assert.Equal(t, knapsack.DefaultRuntimeBudget, o.RuntimeBudget)
	assert.Equal(t, knapsack.DefaultCalibration, o.Calibration)
}

func TestSolverOptions_ZeroBudgetDisablesGuard(t *testing.T) {
	f, err := problem.Parse([]byte("capacity: 1\noptions: {runtime_budget: 0s, verbose: true}\n"))
	require.NoError(t, err)
	opts, err := f.SolverOptions()
	require.NoError(t, err)

	o := applied(opts)
	assert.Equal(t, time.Duration(0), o.RuntimeBudget)
	assert.True(t, o.Verbose)
}

func TestSolverOptions_InfiniteCalibration(t *testing.T) {
	f, err := problem.Parse([]byte("capacity: 1\noptions: {calibration: .inf}\n"))
	require.NoError(t, err)
	_, err = f.SolverOptions()
	assert.ErrorIs(t, err, problem.ErrInvalidFile)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loadout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(loadoutYAML), 0o600))

	f, err := problem.Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Items, 6)

	_, err = problem.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("capacity: -4\n"), 0o600))
	_, err = problem.Load(bad)
	assert.ErrorIs(t, err, problem.ErrInvalidFile)
	assert.Contains(t, err.Error(), "bad.yaml")
}
