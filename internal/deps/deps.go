package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// requirement names a program revolver runs as a subprocess. A missing
// required program blocks a batch before its first job. A missing optional
// one disables only the feature that uses it.
type requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status is the lookup outcome for one requirement. When Available, Command
// holds the resolved path; otherwise Detail says what went wrong.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// lookup resolves req against PATH. A blank command is reported as not
// configured instead of being looked up.
func lookup(req requirement) Status {
	status := Status{
		Name:        req.Name,
		Command:     strings.TrimSpace(req.Command),
		Description: strings.TrimSpace(req.Description),
		Optional:    req.Optional,
	}
	if status.Command == "" {
		status.Detail = "command not configured"
		return status
	}
	resolved, err := exec.LookPath(status.Command)
	if err != nil {
		status.Detail = fmt.Sprintf("binary %q not found", status.Command)
		return status
	}
	status.Command, status.Available = resolved, true
	return status
}

// CheckFFprobe reports whether the media inspector is usable. It is optional:
// without it swaps keep the session's frame size and source surveys are skipped.
func CheckFFprobe(command string) Status {
	return lookup(requirement{
		Name:        "FFprobe",
		Command:     command,
		Description: "Reads clip properties for swaps and source surveys",
		Optional:    true,
	})
}
