package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// Status is the git state of a directory as shown in the status bar.
type Status struct {
	Branch   string
	Modified int
}

// GetStatus returns the branch and the number of changed paths for dir.
// ok is false when dir is not in a repository or git is unavailable.
func GetStatus(dir string) (status Status, ok bool) {
	branch := GetBranch(dir)
	if branch == "" {
		return Status{}, false
	}
	status.Branch = branch

	cmd := exec.Command("git", "status", "--porcelain", "--", ".")
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return status, true
	}
	status.Modified = countChanged(string(output))
	return status, true
}

// countChanged counts porcelain lines: two status chars, a space, a path.
func countChanged(porcelain string) int {
	n := 0
	for _, line := range strings.Split(porcelain, "\n") {
		if len(line) > 3 && strings.TrimSpace(line[3:]) != "" {
			n++
		}
	}
	return n
}

// GetBranch returns the current git branch name
func GetBranch(dir string) string {
	cmd := exec.Command("git", "rev-parse", "--abbrev-ref", "HEAD")
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(output))
}

// String renders the status as "branch" or "branch +N".
func (s Status) String() string {
	if s.Modified == 0 {
		return s.Branch
	}
	return fmt.Sprintf("%s +%d", s.Branch, s.Modified)
}
