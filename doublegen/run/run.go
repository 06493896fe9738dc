// Package run implements the main logic for the doublegen tool in a testable way.
package run

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	detect "github.com/toejough/calcdouble/doublegen/run/2_detect"
	generate "github.com/toejough/calcdouble/doublegen/run/3_generate"
	output "github.com/toejough/calcdouble/doublegen/run/4_output"
)

// Exported variables.
var (
	ErrMissingPackage = errors.New("GOPACKAGE is not set; run doublegen through go generate")
)

// FileSystem interface for mocking.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// PackageLoader loads a package by import path. "." is the package being generated into.
type PackageLoader interface {
	Load(importPath string) ([]*dst.File, *token.FileSet, error)
}

// Run executes the doublegen tool logic. It takes command-line arguments, an environment variable getter, a
// FileSystem for file operations, and a PackageLoader for package operations. On success, it writes a Go source
// file holding a typed mock of the named interface into the calling package, or, with --check, verifies that the
// file on disk matches what would be written.
func Run(args []string, getEnv func(string) string, fileSys FileSystem, pkgLoader PackageLoader, out io.Writer) error {
	info, err := getGeneratorCallInfo(args, getEnv)
	if err != nil {
		return err
	}

	importPath := ""

	if info.qualifier != "" {
		importPath, err = resolveImportPath(info, fileSys, pkgLoader)
		if err != nil {
			return err
		}
	}

	loadPath := importPath
	if loadPath == "" {
		loadPath = "."
	}

	files, _, err := pkgLoader.Load(loadPath)
	if err != nil {
		return fmt.Errorf("failed to load package %q: %w", loadPath, err)
	}

	iface, err := detect.Describe(files, info.interfaceName, info.qualifier)
	if err != nil {
		return err
	}

	code, err := generate.Mock(iface, generate.Options{
		PkgName:     info.pkgName,
		Qualifier:   info.qualifier,
		ImportPath:  importPath,
		Constructor: info.mockName,
	})
	if err != nil {
		return err
	}

	filename := output.Filename(info.mockName, info.pkgName, info.goFile)

	return output.WriteGeneratedCode(code, filename, info.check, fileSys, out)
}

// cliArgs defines the command-line arguments for the generator.
type cliArgs struct {
	Interface string `arg:"positional,required" help:"interface to mock (e.g. Calculator or calculator.Calculator)"`
	Name      string `arg:"--name"              help:"name of the generated constructor (defaults to Mock<Interface>)"`
	Check     bool   `arg:"--check"             help:"fail instead of writing when the generated file is out of date"`
}

// generatorInfo holds information gathered for generation.
type generatorInfo struct {
	pkgName, goFile          string
	qualifier, interfaceName string
	mockName                 string
	check                    bool
}

// getGeneratorCallInfo returns basic information about the current call to the generator.
func getGeneratorCallInfo(args []string, getEnv func(string) string) (generatorInfo, error) {
	pkgName := getEnv("GOPACKAGE")
	if pkgName == "" {
		return generatorInfo{}, ErrMissingPackage
	}

	parsed, err := parseArgs(args)
	if err != nil {
		return generatorInfo{}, err
	}

	qualifier := detect.ExtractPackageName(parsed.Interface)
	interfaceName := strings.TrimPrefix(parsed.Interface, qualifier+".")

	mockName := parsed.Name
	if mockName == "" {
		mockName = "Mock" + interfaceName
	}

	return generatorInfo{
		pkgName:       pkgName,
		goFile:        getEnv("GOFILE"),
		qualifier:     qualifier,
		interfaceName: interfaceName,
		mockName:      mockName,
		check:         parsed.Check,
	}, nil
}

// parseArgs parses command-line arguments into cliArgs.
func parseArgs(args []string) (cliArgs, error) {
	var parsed cliArgs

	parser, err := arg.NewParser(arg.Config{Program: "doublegen"}, &parsed)
	if err != nil {
		return cliArgs{}, fmt.Errorf("failed to create argument parser: %w", err)
	}

	var cmdArgs []string
	if len(args) > 1 {
		cmdArgs = args[1:]
	}

	err = parser.Parse(cmdArgs)
	if err != nil {
		return cliArgs{}, fmt.Errorf("failed to parse arguments: %w", err)
	}

	return parsed, nil
}

// resolveImportPath finds the import path of the interface's qualifier, preferring the imports of
// the file holding the go:generate directive over the rest of the package.
func resolveImportPath(info generatorInfo, fileSys FileSystem, pkgLoader PackageLoader) (string, error) {
	if info.goFile != "" {
		src, err := fileSys.ReadFile(info.goFile)
		if err == nil {
			file, err := decorator.Parse(src)
			if err == nil {
				importPath, err := detect.FindImportPath([]*dst.File{file}, info.qualifier)
				if err == nil {
					return importPath, nil
				}
			}
		}
	}

	files, _, err := pkgLoader.Load(".")
	if err != nil {
		return "", fmt.Errorf("failed to load package %q: %w", ".", err)
	}

	return detect.FindImportPath(files, info.qualifier)
}
