package app

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"
)

// detectEditorCommand resolves the editor: the configured command first, then
// $VISUAL, $EDITOR and finally a platform default.
func detectEditorCommand(configured string) ([]string, bool) {
	return detectEditorCommandInternal(runtime.GOOS, configured, os.Getenv, exec.LookPath)
}

func detectEditorCommandInternal(goos, configured string, getenv func(string) string, lookPath func(string) (string, error)) ([]string, bool) {
	candidates := []string{configured, getenv("VISUAL"), getenv("EDITOR")}

	for _, candidate := range candidates {
		args := parseEditorCommand(candidate)
		if len(args) == 0 {
			continue
		}
		if resolved, ok := resolveEditorExecutableWithLookup(args[0], lookPath); ok {
			args[0] = resolved
			return args, true
		}
	}

	var defaults [][]string
	if strings.EqualFold(goos, "windows") {
		defaults = [][]string{
			{"code", "--wait"},
			{"notepad.exe"},
		}
	} else {
		defaults = [][]string{
			{"vim"},
			{"nano"},
		}
	}

	for _, def := range defaults {
		if resolved, ok := resolveEditorExecutableWithLookup(def[0], lookPath); ok {
			return append([]string{resolved}, def[1:]...), true
		}
	}

	return nil, false
}

// parseEditorCommand splits cmd into arguments, honouring single and double
// quotes.
func parseEditorCommand(cmd string) []string {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return nil
	}

	var args []string
	var current strings.Builder
	inSingle := false
	inDouble := false

	for _, r := range cmd {
		switch {
		case r == '\'' && !inDouble:
			inSingle = !inSingle
		case r == '"' && !inSingle:
			inDouble = !inDouble
		case !inSingle && !inDouble && unicode.IsSpace(r):
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		args = append(args, current.String())
	}
	if len(args) > 0 {
		args[0] = expandUserPath(args[0])
	}
	return args
}

func expandUserPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if len(path) == 1 {
		return home
	}
	if sep := path[1]; sep != '/' && sep != '\\' {
		return path
	}
	return filepath.Join(home, path[2:])
}

func resolveEditorExecutableWithLookup(cmd string, lookPath func(string) (string, error)) (string, bool) {
	if cmd == "" {
		return "", false
	}
	path, err := lookPath(expandUserPath(cmd))
	if err != nil {
		return "", false
	}
	return path, true
}
