package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"revolver/internal/preflight"
)

// statusKind is the bracketed verdict printed by `revolver check`.
type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	statusLabelWidth = 20
	statusIndent     = "  "
)

var statusStyles = map[statusKind]struct{ label, color string }{
	statusInfo:  {"INFO", ansiBlue},
	statusOK:    {"OK", ansiGreen},
	statusWarn:  {"WARN", ansiYellow},
	statusError: {"ERROR", ansiRed},
}

func (k statusKind) String() string {
	if style, ok := statusStyles[k]; ok {
		return style.label
	}
	return statusStyles[statusInfo].label
}

// resultKind maps a preflight result onto a verdict. Optional tools that are
// missing only warn.
func resultKind(r preflight.Result) statusKind {
	switch {
	case r.Passed:
		return statusOK
	case r.Optional:
		return statusWarn
	default:
		return statusError
	}
}

// renderStatusLine prints "  Label:    [KIND] message", tinted as a whole
// line when colorize is set.
func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	verdict := "[" + kind.String() + "]"
	if message != "" {
		verdict += " " + message
	}
	line := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", verdict)
	if !colorize {
		return line
	}
	color := statusStyles[statusInfo].color
	if style, ok := statusStyles[kind]; ok {
		color = style.color
	}
	return color + line + ansiReset
}

func renderSectionHeader(title string, colorize bool) []string {
	header := "== " + strings.TrimSpace(title) + " =="
	rule := strings.Repeat("-", len(header))
	if colorize {
		return []string{ansiBlue + header + ansiReset, ansiBlue + rule + ansiReset}
	}
	return []string{header, rule}
}

// isTerminal reports whether writer is an interactive terminal. The encode
// progress bar is drawn only when it is.
func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// shouldColorize honours the NO_COLOR convention (https://no-color.org): any
// non-empty value disables ANSI color even on a terminal.
func shouldColorize(writer io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isTerminal(writer)
}
