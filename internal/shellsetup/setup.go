// Package shellsetup prints a shell function that wraps twinpane so the shell
// changes into the last browsed directory when the browser exits.
package shellsetup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"
)

// ErrUnsupportedShell is returned for shells without a wrapper script.
var ErrUnsupportedShell = errors.New("unsupported shell")

type ParentShellFunc func() string

type Config struct {
	// Executable is embedded in the script; empty means os.Executable.
	Executable   string
	DetectParent ParentShellFunc
}

const posixScript = `twinpane() {
    tp_cwd_file=$(mktemp "${TMPDIR:-/tmp}/twinpane.XXXXXX") || return 1
    command %[1]s --cwd-file "$tp_cwd_file" "$@"
    tp_status=$?
    if [ -s "$tp_cwd_file" ] && [ ! -L "$tp_cwd_file" ]; then
        tp_dest=$(cat "$tp_cwd_file" 2>/dev/null)
        if [ -n "$tp_dest" ] && [ -d "$tp_dest" ] && [ "$tp_dest" != "$PWD" ]; then
            cd -- "$tp_dest" || true
        fi
    fi
    rm -f "$tp_cwd_file"
    unset tp_cwd_file tp_dest
    return $tp_status
}
`

const fishScript = `function twinpane
    set -l tp_cwd_file (mktemp)
    or return 1
    command %[1]s --cwd-file "$tp_cwd_file" $argv
    set -l tp_status $status
    if test -s "$tp_cwd_file" -a ! -L "$tp_cwd_file"
        set -l tp_dest (cat "$tp_cwd_file" 2>/dev/null)
        if test -n "$tp_dest" -a -d "$tp_dest"
            builtin cd "$tp_dest"
        end
    end
    rm -f "$tp_cwd_file"
    return $tp_status
end
`

const pwshScript = `function twinpane {
    $cwdFile = [System.IO.Path]::GetTempFileName()
    try {
        & %[1]s --cwd-file $cwdFile @args
        $dest = Get-Content $cwdFile -Raw -ErrorAction SilentlyContinue
        if ($dest) {
            $dest = $dest.Trim()
            if (Test-Path $dest -PathType Container) {
                Set-Location $dest
            }
        }
    } finally {
        Remove-Item $cwdFile -ErrorAction SilentlyContinue
    }
}
`

// Write prints the wrapper for shellOverride, or for the detected shell when
// shellOverride is empty.
func Write(w io.Writer, shellOverride string, cfg Config) error {
	parent := cfg.DetectParent
	if parent == nil {
		parent = DetectParentShellName
	}

	shell := canonicalShellName(normalizeShellName(shellOverride))
	if shell == "" {
		shell = detectShell(parent)
	}

	exe := cfg.Executable
	if exe == "" {
		var err error
		if exe, err = os.Executable(); err != nil {
			exe = "twinpane"
		}
	}

	var script string
	switch shell {
	case "bash", "zsh", "sh", "ksh", "dash":
		script = posixScript
	case "fish":
		script = fishScript
	case "pwsh":
		script = pwshScript
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedShell, shell)
	}

	_, err := fmt.Fprintf(w, script, strconv.Quote(exe))
	return err
}

func detectShell(parent ParentShellFunc) string {
	return detectShellInternal(runtime.GOOS, os.Getenv, parent)
}

func detectShellInternal(goos string, getenv func(string) string, parent ParentShellFunc) string {
	if shell := canonicalShellName(normalizeShellName(getenv("SHELL"))); shell != "" {
		return shell
	}

	if parent != nil {
		if shell := canonicalShellName(normalizeShellName(parent())); shell != "" {
			return shell
		}
	}

	if strings.EqualFold(goos, "windows") {
		return "pwsh"
	}
	return "bash"
}

func canonicalShellName(name string) string {
	switch name {
	case "powershell":
		return "pwsh"
	default:
		return name
	}
}

// normalizeShellName reduces "/usr/local/bin/zsh -l" or `"C:\...\pwsh.exe"`
// to the lowercase executable base name.
func normalizeShellName(value string) string {
	value = extractExecutable(strings.TrimSpace(value))
	if value == "" {
		return ""
	}
	value = strings.ReplaceAll(value, "\\", "/")
	base := strings.ToLower(path.Base(value))
	return strings.TrimSuffix(base, ".exe")
}

func extractExecutable(value string) string {
	if value == "" {
		return ""
	}
	if q := value[0]; q == '"' || q == '\'' {
		value = value[1:]
		if idx := strings.IndexByte(value, q); idx >= 0 {
			return value[:idx]
		}
		return value
	}
	if idx := strings.IndexAny(value, " \t"); idx >= 0 {
		return value[:idx]
	}
	return value
}
