// Package calc evaluates one-operator expressions over num.Num values.
//
// It is the only way the console turns user text into computation: the grammar
// is fixed and every operand goes through num's validating constructors.
//
//	expr    := operand [op operand]
//	operand := number | identifier
//	op      := + - * / // % ** < > <= >= == !=
package calc

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/vipcxj/num/internal/num"
)

// ErrUnknownName is returned when an identifier has no binding in the Resolver.
var ErrUnknownName = errors.New("unknown name")

type Op string

const (
	OpAdd            Op = "+"
	OpSub            Op = "-"
	OpMul            Op = "*"
	OpDiv            Op = "/"
	OpFloorDiv       Op = "//"
	OpMod            Op = "%"
	OpPow            Op = "**"
	OpLess           Op = "<"
	OpGreater        Op = ">"
	OpLessOrEqual    Op = "<="
	OpGreaterOrEqual Op = ">="
	OpEqual          Op = "=="
	OpNotEqual       Op = "!="
)

var arithmetic = map[Op]func(a, b num.Num) float64{
	OpAdd:      num.Add,
	OpSub:      num.Sub,
	OpMul:      num.Mul,
	OpDiv:      num.Div,
	OpFloorDiv: num.FloorDiv,
	OpMod:      num.Mod,
	OpPow:      num.Pow,
}

var comparison = map[Op]func(a, b num.Num) bool{
	OpLess:           num.Less,
	OpGreater:        num.Greater,
	OpLessOrEqual:    num.LessOrEqual,
	OpGreaterOrEqual: num.GreaterOrEqual,
	OpEqual:          num.Equal,
	OpNotEqual:       num.NotEqual,
}

// Name returns a human label for the operator, e.g. "Addition" or "Less than".
func (op Op) Name() string {
	switch op {
	case OpAdd:
		return "Addition"
	case OpSub:
		return "Subtraction"
	case OpMul:
		return "Multiplication"
	case OpDiv:
		return "Division"
	case OpFloorDiv:
		return "Floor division"
	case OpMod:
		return "Modulo"
	case OpPow:
		return "Power"
	case OpLess:
		return "Less than"
	case OpGreater:
		return "Greater than"
	case OpLessOrEqual:
		return "Less than or equal"
	case OpGreaterOrEqual:
		return "Greater than or equal"
	case OpEqual:
		return "Equal"
	case OpNotEqual:
		return "Not equal"
	}
	return string(op)
}

// Resolver looks up named Num values.
type Resolver interface {
	Lookup(name string) (num.Num, bool)
}

// Operand is either a literal to be parsed into a Num or a name to resolve.
type Operand struct {
	Literal string
	Name    string
}

func (o Operand) String() string {
	if o.Name != "" {
		return o.Name
	}
	return o.Literal
}

func (o Operand) resolve(r Resolver) (num.Num, error) {
	if o.Name == "" {
		return num.Parse(o.Literal)
	}
	if r != nil {
		if n, ok := r.Lookup(o.Name); ok {
			return n, nil
		}
	}
	return num.Num{}, fmt.Errorf("%w: %s", ErrUnknownName, o.Name)
}

// Expr is a parsed expression. Op is empty for a lone operand.
type Expr struct {
	Left  Operand
	Op    Op
	Right Operand
}

func (e Expr) String() string {
	if e.Op == "" {
		return e.Left.String()
	}
	return fmt.Sprintf("%s %s %s", e.Left, e.Op, e.Right)
}

// Parse reads src into an Expr without evaluating it.
func Parse(src string) (Expr, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return Expr{}, err
	}
	if len(tokens) == 0 {
		return Expr{}, fmt.Errorf("%w: empty expression", ErrSyntax)
	}

	left, err := operand(tokens[0])
	if err != nil {
		return Expr{}, err
	}
	if len(tokens) == 1 {
		return Expr{Left: left}, nil
	}

	opTok := tokens[1]
	if opTok.Kind != TokenOp {
		return Expr{}, fmt.Errorf("%w: expected operator at %d, got %q", ErrSyntax, opTok.Pos, opTok.Text)
	}
	if len(tokens) == 2 {
		return Expr{}, fmt.Errorf("%w: missing operand after %q", ErrSyntax, opTok.Text)
	}
	right, err := operand(tokens[2])
	if err != nil {
		return Expr{}, err
	}
	if len(tokens) > 3 {
		return Expr{}, fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, tokens[3].Text, tokens[3].Pos)
	}
	return Expr{Left: left, Op: Op(opTok.Text), Right: right}, nil
}

func operand(tok Token) (Operand, error) {
	switch tok.Kind {
	case TokenNumber:
		return Operand{Literal: tok.Text}, nil
	case TokenIdent:
		return Operand{Name: tok.Text}, nil
	}
	return Operand{}, fmt.Errorf("%w: expected operand at %d, got %q", ErrSyntax, tok.Pos, tok.Text)
}

// Eval resolves both operands and applies the operator. Construction failures of
// literal operands are returned unwrapped, so their message is exactly the num error.
func (e Expr) Eval(r Resolver) (Value, error) {
	left, err := e.Left.resolve(r)
	if err != nil {
		return Value{}, err
	}
	if e.Op == "" {
		return Number(left.Float64()), nil
	}
	right, err := e.Right.resolve(r)
	if err != nil {
		return Value{}, err
	}

	if fn, ok := arithmetic[e.Op]; ok {
		return Number(fn(left, right)), nil
	}
	if fn, ok := comparison[e.Op]; ok {
		return Bool(fn(left, right)), nil
	}
	return Value{}, fmt.Errorf("%w: unsupported operator %q", ErrSyntax, e.Op)
}

// Eval parses and evaluates src in one step.
func Eval(src string, r Resolver) (Value, error) {
	expr, err := Parse(src)
	if err != nil {
		return Value{}, err
	}
	v, err := expr.Eval(r)
	if err != nil {
		slog.Debug("calc failed", "expr", src, "err", err)
		return Value{}, err
	}
	slog.Debug("calc evaluated", "expr", expr.String(), "result", v.String())
	return v, nil
}

// Value is the plain result of an expression: a number or a boolean.
type Value struct {
	number float64
	truth  bool
	isBool bool
}

func Number(f float64) Value {
	return Value{number: f}
}

func Bool(b bool) Value {
	return Value{truth: b, isBool: true}
}

func (v Value) IsBool() bool {
	return v.isBool
}

// Float64 returns the numeric result; it is 0 for boolean values.
func (v Value) Float64() float64 {
	return v.number
}

// Truth returns the boolean result; it is false for numeric values.
func (v Value) Truth() bool {
	return v.truth
}

func (v Value) String() string {
	if v.isBool {
		return strconv.FormatBool(v.truth)
	}
	return num.FormatFloat(v.number)
}
