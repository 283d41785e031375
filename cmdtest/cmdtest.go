// Package cmdtest runs in-process command line programs against YAML case files
// and compares stdout, stderr and the exit code separately.
//
// A case file looks like
//
//	command: num
//	cases:
//	  - name: out of range
//	    args: [new, "0"]
//	    env: {NUM_LOG_LEVEL: error}
//	    stdin: ""
//	    want:
//	      stderr: "Error: Out of range\n"
//	      exit: 1
package cmdtest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type Case struct {
	Name  string            `yaml:"name"`
	Args  []string          `yaml:"args,flow"`
	Env   map[string]string `yaml:"env,omitempty"`
	Stdin string            `yaml:"stdin,omitempty"`
	Want  Output            `yaml:"want"`
}

type Output struct {
	Stdout string `yaml:"stdout,omitempty"`
	Stderr string `yaml:"stderr,omitempty"`
	Exit   int    `yaml:"exit,omitempty"`
}

// File is one case file. Command names the registered program its cases run.
type File struct {
	path    string
	Command string `yaml:"command"`
	Cases   []Case `yaml:"cases"`
}

type Suite struct {
	files    []*File
	programs map[string]func() int
}

// Read loads every .yaml and .yml file below dir, in lexical order.
func Read(dir string) (*Suite, error) {
	s := &Suite{programs: make(map[string]func() int)}
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
		default:
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		f := &File{path: path}
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(f); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		if f.Command == "" {
			return fmt.Errorf("%s: missing command", path)
		}
		s.files = append(s.files, f)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(s.files, func(i, j int) bool { return s.files[i].path < s.files[j].path })
	return s, nil
}

// Register binds a command name to an in-process entry point returning an exit code.
func (s *Suite) Register(name string, run func() int) {
	s.programs[name] = run
}

// Run executes every case. With update, mismatching expectations are replaced by
// what the program produced and the files are rewritten.
func (s *Suite) Run(t *testing.T, update bool) {
	for _, f := range s.files {
		t.Run(filepath.Base(f.path), func(t *testing.T) {
			run, ok := s.programs[f.Command]
			if !ok {
				t.Fatalf("command %q not registered", f.Command)
			}
			changed := false
			for i := range f.Cases {
				c := &f.Cases[i]
				name := c.Name
				if name == "" {
					name = fmt.Sprintf("case-%d", i)
				}
				t.Run(name, func(t *testing.T) {
					got := invoke(t, f.Command, run, c)
					if got == c.Want {
						return
					}
					if update {
						c.Want = got
						changed = true
						return
					}
					compare(t, c.Want, got)
				})
			}
			if changed {
				if err := f.write(); err != nil {
					t.Fatalf("update %s: %v", f.path, err)
				}
				t.Logf("cmdtest: updated %s", f.path)
			}
		})
	}
}

func compare(t *testing.T, want, got Output) {
	t.Helper()
	if got.Exit != want.Exit {
		t.Errorf("exit code: got %d want %d", got.Exit, want.Exit)
	}
	if got.Stdout != want.Stdout {
		t.Errorf("stdout mismatch:\nwant:\n%s\ngot:\n%s", want.Stdout, got.Stdout)
	}
	if got.Stderr != want.Stderr {
		t.Errorf("stderr mismatch:\nwant:\n%s\ngot:\n%s", want.Stderr, got.Stderr)
	}
}

// invoke runs the program with the process's arguments, environment and standard
// streams swapped for those of the case, and restores them afterwards.
func invoke(t *testing.T, name string, run func() int, c *Case) Output {
	t.Helper()
	for k, v := range c.Env {
		t.Setenv(k, v)
	}

	oldArgs, oldIn, oldOut, oldErr := os.Args, os.Stdin, os.Stdout, os.Stderr
	defer func() {
		os.Args, os.Stdin, os.Stdout, os.Stderr = oldArgs, oldIn, oldOut, oldErr
	}()
	os.Args = append([]string{name}, c.Args...)

	rIn, wIn, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdin, os.Stdout, os.Stderr = rIn, wOut, wErr

	go func() {
		_, _ = io.WriteString(wIn, c.Stdin)
		_ = wIn.Close()
	}()
	stdout := drain(rOut)
	stderr := drain(rErr)

	var got Output
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("panic: %v", r)
				got.Exit = -1
			}
		}()
		got.Exit = run()
	}()

	_ = wOut.Close()
	_ = wErr.Close()
	got.Stdout = <-stdout
	got.Stderr = <-stderr
	_ = rIn.Close()
	return got
}

func drain(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		ch <- buf.String()
	}()
	return ch
}

func (f *File) write() error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return os.WriteFile(f.path, buf.Bytes(), 0o644)
}
