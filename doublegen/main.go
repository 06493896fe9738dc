// doublegen generates typed test doubles for Go interfaces.
// Install it with `go install github.com/toejough/calcdouble/doublegen@latest` and add a
// `//go:generate doublegen <pkg>.<Interface>` comment to a test file. The generated constructor is named
// Mock<Interface>; add `--name <Constructor>` to choose another. The mock is written to
// generated_<Constructor>_test.go in the package holding the go:generate comment. Add `--check` to fail
// instead of writing when that file is out of date.
package main

import (
	"fmt"
	"go/token"
	"os"

	"github.com/dave/dst"
	"github.com/toejough/calcdouble/doublegen/run"
	load "github.com/toejough/calcdouble/doublegen/run/1_load"
)

// main is the entry point of the doublegen tool.
func main() {
	err := run.Run(os.Args, os.Getenv, &realFileSystem{}, &realPackageLoader{}, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// realFileSystem implements FileSystem using os package.
type realFileSystem struct{}

// ReadFile reads the file named by name and returns the contents.
func (fs *realFileSystem) ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", name, err)
	}

	return data, nil
}

// WriteFile writes data to the file named by name.
func (fs *realFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	err := os.WriteFile(name, data, perm)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", name, err)
	}

	return nil
}

// realPackageLoader implements PackageLoader using direct DST parsing.
type realPackageLoader struct{}

// Load loads a package by import path and returns its DST files and FileSet.
func (pl *realPackageLoader) Load(importPath string) ([]*dst.File, *token.FileSet, error) {
	files, fset, err := load.PackageDST(importPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load package %q: %w", importPath, err)
	}

	return files, fset, nil
}
