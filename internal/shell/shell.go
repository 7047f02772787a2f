// Package shell hands the final directory back to the invoking shell.
package shell

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/LFroesch/cdnav/internal/config"
)

// Shells lists the shells InitScript supports.
var Shells = []string{"bash", "zsh", "fish"}

// Quote wraps s in single quotes for a POSIX shell.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// CdCommand returns the command that changes into dir.
func CdCommand(dir string) string {
	return "cd " + Quote(dir)
}

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

// Emit sends the cd command for dir to target. w receives it for the
// stdout target; cdFile is written for the file target.
func Emit(target, cdFile, dir string, w io.Writer) error {
	cmd := CdCommand(dir)

	switch target {
	case config.TargetStdout, "":
		_, err := fmt.Fprintln(w, cmd)
		return err
	case config.TargetFile:
		if cdFile == "" {
			return fmt.Errorf("target %q needs a cd file path", target)
		}
		if err := os.MkdirAll(filepath.Dir(cdFile), 0755); err != nil {
			return fmt.Errorf("create cd file directory: %w", err)
		}
		if err := os.WriteFile(cdFile, []byte(cmd+"\n"), 0644); err != nil {
			return fmt.Errorf("write cd file: %w", err)
		}
		return nil
	case config.TargetClipboard:
		if err := clipboardWrite(cmd); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown target %q", target)
	}
}

const posixInit = `# cdnav: add to ~/.%[1]src with
#   eval "$(cdnav init %[1]s)"
cdnav() {
  local cmd
  cmd="$(command cdnav "$@")" && [ -n "$cmd" ] && eval "$cmd"
}
`

const fishInit = `# cdnav: add to ~/.config/fish/config.fish with
#   cdnav init fish | source
function cdnav
  set -l cmd (command cdnav $argv)
  and test -n "$cmd"
  and eval $cmd
end
`

// InitScript returns a wrapper function that evals what cdnav prints.
func InitScript(shell string) (string, error) {
	switch shell {
	case "bash", "zsh":
		return fmt.Sprintf(posixInit, shell), nil
	case "fish":
		return fishInit, nil
	default:
		return "", fmt.Errorf("unsupported shell %q (want one of %s)", shell, strings.Join(Shells, ", "))
	}
}
