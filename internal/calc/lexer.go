package calc

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrSyntax is wrapped by every lexing and parsing error.
var ErrSyntax = errors.New("syntax error")

type TokenKind string

const (
	TokenNumber TokenKind = "Number"
	TokenIdent  TokenKind = "Ident"
	TokenOp     TokenKind = "Op"
)

type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}

func (tok Token) String() string {
	return fmt.Sprintf("<%s@%d = %q>", tok.Kind, tok.Pos, tok.Text)
}

// symbols is ordered so that two-character operators win over their one-character prefixes.
var symbols = []string{"**", "//", "<=", ">=", "==", "!=", "+", "-", "*", "/", "%", "<", ">"}

// Tokenize splits src into numbers, identifiers and operators. A '+' or '-' directly
// followed by a digit is read as the sign of a number when it appears where an
// operand is expected, so "-5" is one literal but "3-4" is three tokens.
func Tokenize(src string) ([]Token, error) {
	var out []Token
	pos := 0
	for pos < len(src) {
		r, size := utf8.DecodeRuneInString(src[pos:])
		if unicode.IsSpace(r) {
			pos += size
			continue
		}

		expectOperand := len(out) == 0 || out[len(out)-1].Kind == TokenOp
		switch {
		case isDigit(r) || r == '.' || (expectOperand && (r == '-' || r == '+') && startsNumber(src[pos+1:])):
			n := scanNumber(src[pos:])
			out = append(out, Token{Kind: TokenNumber, Text: src[pos : pos+n], Pos: pos})
			pos += n
		case r == '_' || unicode.IsLetter(r):
			n := scanIdent(src[pos:])
			out = append(out, Token{Kind: TokenIdent, Text: src[pos : pos+n], Pos: pos})
			pos += n
		default:
			sym := matchSymbol(src[pos:])
			if sym == "" {
				return nil, fmt.Errorf("%w: unexpected %q at %d", ErrSyntax, r, pos)
			}
			out = append(out, Token{Kind: TokenOp, Text: sym, Pos: pos})
			pos += len(sym)
		}
	}
	return out, nil
}

func matchSymbol(s string) string {
	for _, sym := range symbols {
		if strings.HasPrefix(s, sym) {
			return sym
		}
	}
	return ""
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func startsNumber(s string) bool {
	if s == "" {
		return false
	}
	return isDigit(rune(s[0])) || s[0] == '.'
}

// scanNumber returns the length of the numeric literal at the start of s:
// an optional sign, digits with at most one '.', and an optional exponent.
func scanNumber(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	dot := false
	for i < len(s) && (isDigit(rune(s[i])) || (s[i] == '.' && !dot)) {
		if s[i] == '.' {
			dot = true
		}
		i++
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(rune(s[j])) {
			for j < len(s) && isDigit(rune(s[j])) {
				j++
			}
			i = j
		}
	}
	return i
}

func scanIdent(s string) int {
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		i += size
	}
	return i
}
