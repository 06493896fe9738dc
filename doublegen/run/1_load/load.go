// Package load parses Go packages into dst syntax trees for the generator.
package load

import (
	"errors"
	"fmt"
	"go/build"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
)

// Exported variables.
var (
	ErrNoPackagesFound = errors.New("no packages found")
)

// PackageDST loads a package by import path and returns its DST files and FileSet.
// "." is the package in the working directory, including its test files so an
// interface can be resolved from the file that holds the go:generate directive.
// Uses DST parsing with no type checking.
func PackageDST(importPath string) ([]*dst.File, *token.FileSet, error) {
	dir, err := resolveDir(importPath)
	if err != nil {
		return nil, nil, err
	}

	return DirDST(dir, importPath == ".")
}

// DirDST parses the .go files in dir. Test files are only included when includeTests is set.
// Files that fail to parse are skipped.
func DirDST(dir string, includeTests bool) ([]*dst.File, *token.FileSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	goFiles := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasSuffix(name, ".go") {
			continue
		}

		if !includeTests && strings.HasSuffix(name, "_test.go") {
			continue
		}

		goFiles = append(goFiles, filepath.Join(dir, name))
	}

	if len(goFiles) == 0 {
		return nil, nil, fmt.Errorf("%w: no .go files in %s", ErrNoPackagesFound, dir)
	}

	fset := token.NewFileSet()
	dec := decorator.NewDecorator(fset)

	allFiles := make([]*dst.File, 0, len(goFiles))

	for _, goFile := range goFiles {
		dstFile, err := dec.ParseFile(goFile, nil, 0)
		if err != nil {
			continue
		}

		allFiles = append(allFiles, dstFile)
	}

	if len(allFiles) == 0 {
		return nil, nil, fmt.Errorf("%w: failed to parse any .go files in %s", ErrNoPackagesFound, dir)
	}

	return allFiles, fset, nil
}

func resolveDir(importPath string) (string, error) {
	srcDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	if importPath == "." {
		return srcDir, nil
	}

	pkg, err := build.Import(importPath, srcDir, build.FindOnly)
	if err != nil {
		return "", fmt.Errorf("failed to find package %q: %w", importPath, err)
	}

	return pkg.Dir, nil
}
