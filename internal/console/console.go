// Package console implements the interactive Num terminal.
//
// Input is line oriented. A line is either one of a fixed set of commands or an
// expression handed to calc; nothing else is executed.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vipcxj/num/internal/calc"
	"github.com/vipcxj/num/internal/num"
	"github.com/vipcxj/num/internal/suite"
)

const (
	Title     = "Num Interactive Terminal v1.0.0"
	clearSeq  = "\033[H\033[2J"
	maxLineSz = 64 * 1024
)

var helpLines = []string{
	"Available commands:",
	"  help - Show this help message",
	"  clear - Clear terminal",
	"  test - Run tests",
	"  instances [filter] - Show created instances (filter: all, N, N-M, N-, -M joined by _)",
	"  new <value> - Create an instance",
	"  exit - Leave the terminal",
	"  <a> <op> <b> - Evaluate; operands are numbers or instance names,",
	"                 op is one of + - * / // % ** < > <= >= == !=",
}

type Console struct {
	in     io.Reader
	out    *errWriter
	prompt string
	banner bool
	reg    *Registry
	suite  func() (*suite.Suite, error)
}

type Option func(*Console)

// WithPrompt sets the text written before each line is read. Empty disables it.
func WithPrompt(prompt string) Option {
	return func(c *Console) {
		c.prompt = prompt
	}
}

func WithBanner(banner bool) Option {
	return func(c *Console) {
		c.banner = banner
	}
}

// WithSuite replaces the suite run by the "test" command.
func WithSuite(load func() (*suite.Suite, error)) Option {
	return func(c *Console) {
		c.suite = load
	}
}

func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:     in,
		out:    &errWriter{w: out},
		prompt: "$ ",
		banner: true,
		reg:    NewRegistry(),
		suite:  suite.Default,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Registry exposes the instances created so far.
func (c *Console) Registry() *Registry {
	return c.reg
}

// Run reads lines until EOF, an exit command or ctx is done. Cancellation is
// observed between lines. The returned error is a read or write failure, never
// a failure of a command.
func (c *Console) Run(ctx context.Context) error {
	if c.banner {
		c.writeBanner()
	}
	sc := bufio.NewScanner(c.in)
	sc.Buffer(make([]byte, 0, 4096), maxLineSz)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.prompt != "" {
			c.out.printf("%s", c.prompt)
		}
		if !sc.Scan() {
			break
		}
		if quit := c.Exec(sc.Text()); quit {
			break
		}
		if c.out.err != nil {
			return c.out.err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return c.out.err
}

// Exec runs a single line and reports whether the session should end.
func (c *Console) Exec(line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	slog.Debug("console command", "cmd", cmd, "arg", arg)

	switch cmd {
	case "exit", "quit":
		return true
	case "help":
		for _, l := range helpLines {
			c.out.println(l)
		}
	case "clear":
		c.out.printf("%s", clearSeq)
		c.writeBanner()
	case "test":
		c.runSuite()
	case "instances":
		c.listInstances(arg)
	case "new":
		c.create(arg)
	default:
		c.eval(line)
	}
	return false
}

func (c *Console) writeBanner() {
	c.out.println(Title)
	c.out.println("Type 'help' for available commands")
}

func (c *Console) create(arg string) {
	if arg == "" {
		c.out.println("! usage: new <value>")
		return
	}
	n, err := num.Parse(arg)
	if err != nil {
		c.out.printf("> new Num(%s)\n", arg)
		c.out.printf("! %s\n", err)
		return
	}
	name := c.reg.Add(n)
	slog.Info("instance created", "name", name, "value", n.String())
	c.out.printf("> const %s = new Num(%s);\n", name, n)
	c.out.printf("< %s.toString() = %q\n", name, n.String())
}

func (c *Console) listInstances(arg string) {
	filter, err := ParseIndexFilter(arg)
	if err != nil {
		c.out.printf("! invalid filter: %s\n", err)
		return
	}
	if c.reg.Len() == 0 {
		c.out.println("No instances created yet.")
		return
	}
	entries := c.reg.Select(filter)
	if len(entries) == 0 {
		c.out.printf("No instances match %s.\n", filter)
		return
	}
	for _, e := range entries {
		c.out.printf("  %s = %s\n", e.Name, e.Value)
	}
}

func (c *Console) runSuite() {
	s, err := c.suite()
	if err != nil {
		c.out.printf("! %s\n", err)
		return
	}
	rep := s.Run()
	for _, res := range rep.Results {
		mark := "✓"
		if !res.Passed {
			mark = "✗"
		}
		c.out.printf("  %s Test %d: %s\n", mark, res.Index, res.Name)
	}
	c.out.printf("> Test suite completed: %d/%d tests passed\n", rep.Passed, rep.Total())
}

func (c *Console) eval(line string) {
	v, err := calc.Eval(line, c.reg)
	if err != nil {
		c.out.printf("! %s\n", err)
		return
	}
	c.out.printf("< %s\n", v)
}

// errWriter remembers the first write error and drops everything after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	ew.printf("%s\n", s)
}
