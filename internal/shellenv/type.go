//go:generate go run github.com/dmarkham/enumer -type=ShellType -trimprefix=ShellType -transform=kebab
package shellenv

import (
	"fmt"
	"strings"
)

type ShellType int

const (
	ShellTypeAuto ShellType = iota
	ShellTypeSh
	ShellTypePowershell
	ShellTypeCmd
)

// Set implements pflag.Value so a ShellType can back a --shell flag directly.
func (i *ShellType) Set(s string) error {
	v, err := ShellTypeString(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("must be one of %s", strings.Join(ShellTypeStrings(), ", "))
	}
	*i = v
	return nil
}

func (i *ShellType) Type() string {
	return "shell"
}
