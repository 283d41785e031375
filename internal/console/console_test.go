package console_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vipcxj/num/internal/console"
	"github.com/vipcxj/num/internal/suite"
)

func run(t *testing.T, input string, opts ...console.Option) (string, *console.Console) {
	t.Helper()
	var out bytes.Buffer
	opts = append([]console.Option{console.WithPrompt(""), console.WithBanner(false)}, opts...)
	c := console.New(strings.NewReader(input), &out, opts...)
	require.NoError(t, c.Run(context.Background()))
	return out.String(), c
}

func TestConsole_CreateAndEvaluate(t *testing.T) {
	out, c := run(t, "new 3\nnew 4\nnum1 + num2\nnum1 < num2\nnum2 / 8\n")

	want := `> const num1 = new Num(3);
< num1.toString() = "3"
> const num2 = new Num(4);
< num2.toString() = "4"
< 7
< true
< 0.5
`
	assert.Equal(t, want, out)
	assert.Equal(t, 2, c.Registry().Len())
}

func TestConsole_Errors(t *testing.T) {
	out, c := run(t, "new 0\nnew abc\nnew 1_0\nnew\n3 + 11\nnum9\nalert(1)\n")

	want := `> new Num(0)
! Out of range
> new Num(abc)
! Not a Number
> new Num(1_0)
! Not a Number
! usage: new <value>
! Out of range
! unknown name: num9
! syntax error: unexpected '(' at 5
`
	assert.Equal(t, want, out)
	assert.Equal(t, 0, c.Registry().Len())
}

func TestConsole_Instances(t *testing.T) {
	out, _ := run(t, "instances\nnew 5\nnew 6.5\nnew 7\ninstances\ninstances 2-\ninstances 9\ninstances 3_1\n")

	want := `No instances created yet.
> const num1 = new Num(5);
< num1.toString() = "5"
> const num2 = new Num(6.5);
< num2.toString() = "6.5"
> const num3 = new Num(7);
< num3.toString() = "7"
  num1 = 5
  num2 = 6.5
  num3 = 7
  num2 = 6.5
  num3 = 7
No instances match 9.
! invalid filter: numbers must be non-decreasing: 1 < 3
`
	assert.Equal(t, want, out)
}

func TestConsole_NamesAreNotReused(t *testing.T) {
	out, c := run(t, "new 1\nnew 99\nnew 2\n")
	assert.Contains(t, out, "const num2 = new Num(2)")
	_, ok := c.Registry().Lookup("num2")
	assert.True(t, ok)
	_, ok = c.Registry().Lookup("num3")
	assert.False(t, ok)
}

func TestConsole_ExitStopsReading(t *testing.T) {
	out, _ := run(t, "3 + 4\nexit\n3 * 4\n")
	assert.Equal(t, "< 7\n", out)
}

func TestConsole_Help(t *testing.T) {
	out, _ := run(t, "help\n")
	assert.True(t, strings.HasPrefix(out, "Available commands:\n"))
	assert.Contains(t, out, "  test - Run tests\n")
	assert.Contains(t, out, "  instances [filter]")
}

func TestConsole_BannerPromptAndClear(t *testing.T) {
	var out bytes.Buffer
	c := console.New(strings.NewReader("clear\n"), &out, console.WithPrompt("> "))
	require.NoError(t, c.Run(context.Background()))

	banner := console.Title + "\nType 'help' for available commands\n"
	want := banner + "> " + "\033[H\033[2J" + banner + "> "
	assert.Equal(t, want, out.String())
}

func TestConsole_Test(t *testing.T) {
	out, _ := run(t, "test\n")
	s, err := suite.Default()
	require.NoError(t, err)

	assert.Contains(t, out, "  ✓ Test 1: Creates instance\n")
	assert.NotContains(t, out, "✗")
	summary := fmt.Sprintf("> Test suite completed: %d/%d tests passed\n", len(s.Tests), len(s.Tests))
	assert.True(t, strings.HasSuffix(out, summary), out)
}

func TestConsole_TestWithCustomSuite(t *testing.T) {
	load := func() (*suite.Suite, error) {
		return suite.Load(strings.NewReader("tests:\n  - name: wrong\n    expr: 3 + 4\n    want: {value: \"8\"}\n"))
	}
	out, _ := run(t, "test\n", console.WithSuite(load))
	assert.Equal(t, "  ✗ Test 1: wrong\n> Test suite completed: 0/1 tests passed\n", out)

	broken := func() (*suite.Suite, error) { return nil, errors.New("boom") }
	out, _ = run(t, "test\n", console.WithSuite(broken))
	assert.Equal(t, "! boom\n", out)
}

func TestConsole_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	c := console.New(strings.NewReader("new 5\n"), &out, console.WithBanner(false))
	assert.ErrorIs(t, c.Run(ctx), context.Canceled)
	assert.Empty(t, out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestConsole_WriteError(t *testing.T) {
	c := console.New(strings.NewReader("3 + 4\n"), failingWriter{})
	assert.EqualError(t, c.Run(context.Background()), "closed")
}
