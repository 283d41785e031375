package shellenv

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

var knownShells = []string{
	"bash", "zsh", "fish", "ksh", "dash", "tcsh", "csh", "sh",
	"powershell", "pwsh", "cmd",
}

// detect is swapped out in tests.
var detect = Detect

// Detect returns the name of the shell that started this process ("bash", "pwsh",
// "cmd.exe", ...). It walks the parent process chain and falls back to $SHELL and
// then %COMSPEC%, which only name the default shell.
func Detect() (string, error) {
	if name, ok := walkParents(int32(os.Getppid())); ok {
		return name, nil
	}
	if sh := os.Getenv("SHELL"); sh != "" {
		return filepath.Base(sh), nil
	}
	if com := os.Getenv("COMSPEC"); com != "" {
		return filepath.Base(com), nil
	}
	return "", errors.New("user shell not detected")
}

func walkParents(pid int32) (string, bool) {
	p, err := process.NewProcess(pid)
	if err != nil {
		return "", false
	}
	seen := map[int32]struct{}{}
	for p != nil {
		if _, ok := seen[p.Pid]; ok {
			break
		}
		seen[p.Pid] = struct{}{}

		name, _ := p.Name()
		if name == "" {
			if exe, _ := p.Exe(); exe != "" {
				name = filepath.Base(exe)
			}
		}
		if isShell(name) {
			return name, true
		}

		parent, err := p.Parent()
		if err != nil {
			break
		}
		p = parent
	}
	return "", false
}

func isShell(name string) bool {
	n := strings.TrimSuffix(strings.ToLower(name), ".exe")
	if n == "" {
		return false
	}
	for _, k := range knownShells {
		if strings.Contains(n, k) {
			return true
		}
	}
	return false
}
