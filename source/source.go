// Package source reads Z-- programs from files and resolves use statements
// against a list of search directories.
package source

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxLine is the longest source line ReadLines accepts.
const maxLine = 1 << 20

// ReadLines reads r as program source and splits it into lines. The source is
// UTF-8 unless it begins with a UTF-8, UTF-16LE, or UTF-16BE byte order mark.
// Line terminators, including a carriage return before a newline, are
// removed.
func ReadLines(r io.Reader) ([]string, error) {
	d := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	sc := bufio.NewScanner(transform.NewReader(r, d))
	sc.Buffer(make([]byte, 0, 4096), maxLine)
	var lines []string
	for sc.Scan() {
		lines = append(lines, dropCR(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading source")
	}
	return lines, nil
}

func dropCR(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\r' {
		return s[:n-1]
	}
	return s
}

// ReadFile reads the program in the named file.
func ReadFile(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()
	lines, err := ReadLines(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return lines, nil
}

// Loader resolves the paths in use statements. Relative paths are tried
// against each entry of Paths in order, then against the working directory.
// Absolute paths are used as they are.
type Loader struct {
	Paths []string
}

// Import implements the interpreter's Importer. The returned name is the
// absolute, cleaned path of the file that was found.
func (l *Loader) Import(path string) (string, []string, error) {
	name, err := l.Find(path)
	if err != nil {
		return "", nil, err
	}
	lines, err := ReadFile(name)
	if err != nil {
		return "", nil, err
	}
	return name, lines, nil
}

// Find returns the absolute path of the file path refers to.
func (l *Loader) Find(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	for _, dir := range l.Paths {
		p := filepath.Join(dir, path)
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return filepath.Abs(p)
		}
	}
	if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
		return filepath.Abs(path)
	}
	return "", errors.Errorf("%s not found in %d search paths", path, len(l.Paths))
}
