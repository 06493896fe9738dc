// Package output writes generated mocks to disk, or checks that the copy on disk is current.
package output

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/akedrou/textdiff"
	"github.com/toejough/go-reorder"
)

// Exported variables.
var (
	ErrStale = errors.New("generated file is out of date")
)

// FileSystem is the file access output needs.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// Filename returns the file a mock named mockName is written to.
// Mocks for test packages, or requested from test files, get a _test.go suffix.
func Filename(mockName, pkgName, goFile string) string {
	base := "generated_" + strings.TrimSuffix(strings.TrimSuffix(mockName, ".go"), "_test")

	if strings.HasSuffix(pkgName, "_test") || strings.HasSuffix(goFile, "_test.go") {
		return base + "_test.go"
	}

	return base + ".go"
}

// WriteGeneratedCode orders the declarations of code and writes it to filename.
// In check mode nothing is written; a difference from the file on disk is reported as a
// unified diff on out and returned as ErrStale.
func WriteGeneratedCode(code, filename string, check bool, fileSys FileSystem, out io.Writer) error {
	const generatedFilePermissions = 0o600

	reordered, err := reorder.Source(code)
	if err != nil {
		_, _ = fmt.Fprintf(out, "Warning: failed to reorder %s: %v\n", filename, err)

		reordered = code
	}

	if check {
		return checkGeneratedCode(reordered, filename, fileSys, out)
	}

	err = fileSys.WriteFile(filename, []byte(reordered), generatedFilePermissions)
	if err != nil {
		return fmt.Errorf("error writing %s: %w", filename, err)
	}

	_, _ = fmt.Fprintf(out, "%s written successfully.\n", filename)

	return nil
}

func checkGeneratedCode(code, filename string, fileSys FileSystem, out io.Writer) error {
	current, err := fileSys.ReadFile(filename)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error reading %s: %w", filename, err)
	}

	diff := textdiff.Unified(filename+" (current)", filename+" (generated)", string(current), code)
	if diff == "" {
		_, _ = fmt.Fprintf(out, "%s is up to date.\n", filename)

		return nil
	}

	_, _ = fmt.Fprintf(out, "%s\n", diff)

	return fmt.Errorf("%w: %s", ErrStale, filename)
}
