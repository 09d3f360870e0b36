package runner

import (
	"errors"
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// ErrNotJava is returned for an explicitly named file that is not Java
// source.
var ErrNotJava = errors.New("not a Java source file")

const languageJava = "Java"

// isJava reports whether the file name denotes Java source.
func isJava(path string) bool {
	lang, _ := enry.GetLanguageByExtension(filepath.Base(path))
	return lang == languageJava
}

// isVendored reports whether a slash-separated relative path lies in a
// vendored or third-party tree. Directories are passed with a trailing
// slash.
func isVendored(rel string) bool {
	return enry.IsVendor(rel)
}

// isGenerated reports whether content carries a generated-code marker.
func isGenerated(path string, content []byte) bool {
	return enry.IsGenerated(path, content)
}
