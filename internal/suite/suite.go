// Package suite runs a table of Num construction and expression checks described in YAML.
// The default table is embedded in the binary.
package suite

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/vipcxj/num/internal/calc"
	"github.com/vipcxj/num/internal/num"
)

//go:embed suite.yaml
var defaultSuite []byte

// ErrInvalidCase is wrapped by Load when a case is malformed.
var ErrInvalidCase = errors.New("invalid test case")

type Want struct {
	Value string `yaml:"value"`
	Error string `yaml:"error"`
}

// Case is one check. Exactly one of New and Expr is set.
type Case struct {
	Name string `yaml:"name"`
	New  any    `yaml:"new"`
	Expr string `yaml:"expr"`
	Want Want   `yaml:"want"`
}

type Suite struct {
	Tests []Case `yaml:"tests"`
}

type Result struct {
	Index  int
	Name   string
	Passed bool
	Got    string
	Want   string
}

type Report struct {
	Results []Result
	Passed  int
	Failed  int
}

// Default returns the embedded suite.
func Default() (*Suite, error) {
	return Load(bytes.NewReader(defaultSuite))
}

// Load decodes and checks a suite document. Unknown keys are rejected.
func Load(r io.Reader) (*Suite, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Suite
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode suite: %w", err)
	}
	for i, c := range s.Tests {
		if err := c.check(); err != nil {
			return nil, fmt.Errorf("case %d (%s): %w", i+1, c.Name, err)
		}
	}
	return &s, nil
}

func (c Case) check() error {
	if c.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidCase)
	}
	if (c.New == nil) == (c.Expr == "") {
		return fmt.Errorf("%w: exactly one of new and expr is required", ErrInvalidCase)
	}
	if (c.Want.Value == "") == (c.Want.Error == "") {
		return fmt.Errorf("%w: exactly one of want.value and want.error is required", ErrInvalidCase)
	}
	return nil
}

// Run executes the case and reports what it produced: the string form of the
// result, or the error message.
func (c Case) Run() (got string, err error) {
	if c.Expr != "" {
		v, err := calc.Eval(c.Expr, nil)
		if err != nil {
			return "", err
		}
		return v.String(), nil
	}
	n, err := num.New(c.New)
	if err != nil {
		return "", err
	}
	return n.String(), nil
}

func (c Case) wanted() string {
	if c.Want.Error != "" {
		return "error " + c.Want.Error
	}
	return c.Want.Value
}

// Run executes every case in order.
func (s *Suite) Run() Report {
	var rep Report
	for i, c := range s.Tests {
		got, err := c.Run()
		res := Result{Index: i + 1, Name: c.Name, Want: c.wanted()}
		if err != nil {
			res.Got = "error " + err.Error()
			res.Passed = c.Want.Error != "" && err.Error() == c.Want.Error
		} else {
			res.Got = got
			res.Passed = c.Want.Error == "" && got == c.Want.Value
		}
		if res.Passed {
			rep.Passed++
		} else {
			rep.Failed++
			slog.Warn("suite case failed", "index", res.Index, "name", res.Name, "got", res.Got, "want", res.Want)
		}
		rep.Results = append(rep.Results, res)
	}
	return rep
}

func (r Report) Total() int {
	return len(r.Results)
}

func (r Report) OK() bool {
	return r.Failed == 0
}

// Write prints one line per case followed by a summary line.
func (r Report) Write(w io.Writer) error {
	for _, res := range r.Results {
		var err error
		if res.Passed {
			_, err = fmt.Fprintf(w, "✓ Test %d: %s\n", res.Index, res.Name)
		} else {
			_, err = fmt.Fprintf(w, "✗ Test %d: %s (got %s, want %s)\n", res.Index, res.Name, res.Got, res.Want)
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Test suite completed: %d/%d tests passed\n", r.Passed, r.Total())
	return err
}
