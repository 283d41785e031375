// Package shellenv renders values as environment variable assignments for the
// user's shell, so that `eval "$(num export LIMIT 7)"` and its PowerShell and
// cmd equivalents work.
package shellenv

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

var ErrInvalidName = errors.New("invalid variable name")

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// EnvName turns key into a variable name: dashes become underscores, letters are
// upper-cased and prefix is prepended as is.
func EnvName(prefix, key string) string {
	return prefix + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// splitPreserveNewlines splits s keeping each "\r\n", "\r" or "\n" as its own element.
// "a\r\nb\nc\r" -> ["a", "\r\n", "b", "\n", "c", "\r"]
func splitPreserveNewlines(s string) []string {
	if s == "" {
		return []string{""}
	}
	var parts []string
	var buf strings.Builder
	flush := func() {
		if buf.Len() > 0 {
			parts = append(parts, buf.String())
			buf.Reset()
		}
	}
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; {
		case ch == '\r' && i+1 < len(s) && s[i+1] == '\n':
			flush()
			parts = append(parts, "\r\n")
			i++
		case ch == '\r' || ch == '\n':
			flush()
			parts = append(parts, string(ch))
		default:
			buf.WriteByte(ch)
		}
	}
	flush()
	return parts
}

// shLiteral single-quotes s. An embedded single quote closes the quoting, is
// added backslash-escaped and the quoting is reopened.
func shLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// powershellLiteral returns an expression: single-quoted chunks joined with +,
// newlines as "`n" style double-quoted escapes.
func powershellLiteral(s string) string {
	if s == "" {
		return "''"
	}
	var out []string
	for _, p := range splitPreserveNewlines(s) {
		switch p {
		case "\n":
			out = append(out, "\"`n\"")
		case "\r":
			out = append(out, "\"`r\"")
		case "\r\n":
			out = append(out, "\"`r`n\"")
		default:
			out = append(out, "'"+strings.ReplaceAll(p, "'", "''")+"'")
		}
	}
	return strings.Join(out, " + ")
}

func cmdLiteral(s string) string {
	var b strings.Builder
	for _, p := range splitPreserveNewlines(s) {
		switch p {
		case "\n":
			b.WriteString(`\n`)
		case "\r":
			b.WriteString(`\r`)
		case "\r\n":
			b.WriteString(`\r\n`)
		default:
			b.WriteString(strings.ReplaceAll(p, `"`, `\"`))
		}
	}
	return b.String()
}

// Assignment renders name=value for a concrete shell. With export the variable is
// exported (sh) or persisted for the user (powershell, cmd).
func Assignment(shell ShellType, name, value string, export bool) (string, error) {
	if !identRe.MatchString(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	switch shell {
	case ShellTypeSh:
		if export {
			return fmt.Sprintf("export %s=%s", name, shLiteral(value)), nil
		}
		return fmt.Sprintf("%s=%s", name, shLiteral(value)), nil
	case ShellTypePowershell:
		if export {
			return fmt.Sprintf("[System.Environment]::SetEnvironmentVariable('%s',%s,'User')", name, powershellLiteral(value)), nil
		}
		return fmt.Sprintf("$Env:%s = %s", name, powershellLiteral(value)), nil
	case ShellTypeCmd:
		if export {
			return fmt.Sprintf("setx %s \"%s\"", name, cmdLiteral(value)), nil
		}
		return fmt.Sprintf("set \"%s=%s\"", name, cmdLiteral(value)), nil
	default:
		return "", fmt.Errorf("unsupported shell type: %v", shell)
	}
}

// Resolve returns shell unchanged unless it is ShellTypeAuto, in which case the
// user's shell is detected. Anything not recognised as powershell or cmd is sh.
func Resolve(shell ShellType) (ShellType, error) {
	switch shell {
	case ShellTypeSh, ShellTypePowershell, ShellTypeCmd:
		return shell, nil
	case ShellTypeAuto:
	default:
		return ShellTypeAuto, fmt.Errorf("unsupported shell type: %v", shell)
	}
	name, err := detect()
	if err != nil {
		return ShellTypeAuto, fmt.Errorf("cannot detect user shell: %w", err)
	}
	resolved := classify(name)
	slog.Debug("detected shell", "name", name, "type", resolved)
	return resolved, nil
}

func classify(name string) ShellType {
	name = strings.TrimSuffix(strings.ToLower(name), ".exe")
	switch name {
	case "powershell", "pwsh":
		return ShellTypePowershell
	case "cmd":
		return ShellTypeCmd
	default:
		return ShellTypeSh
	}
}
