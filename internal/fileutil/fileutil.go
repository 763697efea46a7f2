// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ExpandHome replaces a leading "~" with the user's home directory.
// Paths like "~user/x" are returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// AbsPath expands "~" and returns the absolute, cleaned form of path.
func AbsPath(path string) (string, error) {
	return filepath.Abs(ExpandHome(path))
}

// ReplaceExt swaps the final extension of path for ext (which includes the dot).
// A path without an extension gets ext appended.
//
// Examples:
//   - "report.pdf", ".rmdoc" -> "report.rmdoc"
//   - "a.b.PDF", ".rmdoc" -> "a.b.rmdoc"
//   - "notes", ".rmdoc" -> "notes.rmdoc"
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// HasExt reports whether path ends with ext, ignoring case.
func HasExt(path, ext string) bool {
	return strings.EqualFold(filepath.Ext(path), ext)
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) or starting with "~" is treated as a path.
//
// Examples:
//   - "work" -> false (name)
//   - "./work.yaml" -> true (relative path)
//   - "/etc/pdf2rmdoc.yaml" -> true (absolute)
//   - "~/pdf2rmdoc.yaml" -> true (home)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\") || strings.HasPrefix(s, "~")
}
