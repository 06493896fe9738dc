//go:build targ

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/akedrou/textdiff"
	"github.com/toejough/go-reorder"
	"github.com/toejough/targ"
	"github.com/toejough/targ/file"
	"github.com/toejough/targ/sh"
)

// Build builds the local doublegen binary.
func Build() error {
	fmt.Println("Building doublegen...")

	if err := os.MkdirAll("bin", 0o755); err != nil {
		return fmt.Errorf("failed to create bin directory: %w", err)
	}

	return sh.Run("go", "build", "-o", "bin/doublegen", "./doublegen")
}

// Check runs all checks & fixes on the code, in order of correctness.
func Check() error {
	fmt.Println("Checking...")

	return targ.Deps(
		Tidy,          // clean up the module dependencies
		CheckCoverage, // does our code work?
		ReorderDecls,  // linter will yell about declaration order if not correct
		Lint,
	)
}

// CheckCoverage checks that function coverage meets the minimum threshold.
func CheckCoverage() error {
	fmt.Println("Checking coverage...")

	if err := targ.Deps(Test); err != nil {
		return err
	}

	out, err := output("go", "tool", "cover", "-func=coverage.out")
	if err != nil {
		return err
	}

	percentPattern := regexp.MustCompile(`\d+\.\d`)
	linesAndCoverage := []lineAndCoverage{}

	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "main.go") ||
			strings.Contains(line, "generated_") ||
			strings.Contains(line, "total:") {
			continue
		}

		percent, err := strconv.ParseFloat(percentPattern.FindString(line), 64)
		if err != nil {
			return err
		}

		linesAndCoverage = append(linesAndCoverage, lineAndCoverage{line, percent})
	}

	if len(linesAndCoverage) == 0 {
		return errors.New("no coverage data found")
	}

	slices.SortStableFunc(linesAndCoverage, func(a, b lineAndCoverage) int {
		switch {
		case a.coverage < b.coverage:
			return -1
		case a.coverage > b.coverage:
			return 1
		default:
			return 0
		}
	})

	for _, lc := range linesAndCoverage {
		fmt.Println(lc.line)
	}

	lowest := linesAndCoverage[0]

	const coverage = 80.0
	if lowest.coverage < coverage {
		return fmt.Errorf("function coverage was less than the limit of %.1f:\n  %s", coverage, lowest.line)
	}

	return nil
}

// CheckForFail runs all checks on the code for determining whether any fail.
func CheckForFail() error {
	fmt.Println("Checking...")

	// Checks from fastest to slowest
	return targ.Deps(
		ReorderDeclsCheck,
		GenerateCheck,
		LintForFail,
		TestForFail,
		CheckCoverage,
	)
}

// Clean cleans up the dev env.
func Clean() {
	fmt.Println("Cleaning...")
	os.Remove("coverage.out")
	os.RemoveAll("bin")
}

// Generate runs go generate on all packages using the locally-built doublegen binary.
func Generate() error {
	fmt.Println("Generating...")

	if err := targ.Deps(Build); err != nil {
		return err
	}

	binDir, err := filepath.Abs("bin")
	if err != nil {
		return fmt.Errorf("failed to get absolute path for bin: %w", err)
	}

	cmd := exec.Command("go", "generate", "./...")
	cmd.Env = append(os.Environ(), "PATH="+binDir+string(filepath.ListSeparator)+os.Getenv("PATH"))
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

// GenerateCheck fails if any checked-in double is out of date with its interface.
func GenerateCheck() error {
	fmt.Println("Checking generated doubles...")

	if err := targ.Deps(Build); err != nil {
		return err
	}

	binary, err := filepath.Abs(filepath.Join("bin", "doublegen"))
	if err != nil {
		return fmt.Errorf("failed to get absolute path for doublegen: %w", err)
	}

	files, err := sourceFiles()
	if err != nil {
		return err
	}

	stale := 0

	for _, path := range files {
		directives, pkgName, err := doublegenDirectives(path)
		if err != nil {
			return err
		}

		for _, args := range directives {
			cmd := exec.Command(binary, append(args, "--check")...)
			cmd.Dir = filepath.Dir(path)
			cmd.Env = append(os.Environ(), "GOPACKAGE="+pkgName, "GOFILE="+filepath.Base(path))
			cmd.Stdout = os.Stdout
			cmd.Stderr = os.Stderr

			if cmd.Run() != nil {
				stale++
			}
		}
	}

	if stale > 0 {
		return fmt.Errorf("%d generated double(s) are out of date; run 'targ generate'", stale)
	}

	return nil
}

// Lint lints the codebase.
func Lint() error {
	fmt.Println("Linting...")
	return sh.Run("golangci-lint", "run", "-c", "dev/golangci.toml")
}

// LintForFail lints the codebase purely to find out whether anything fails.
func LintForFail() error {
	fmt.Println("Linting to check for overall pass/fail...")

	return sh.Run(
		"golangci-lint", "run",
		"-c", "dev/golangci.toml",
		"--fix=false",
		"--max-issues-per-linter=1",
		"--max-same-issues=1",
		"--allow-parallel-runners",
	)
}

// Mutate runs the mutation tests.
func Mutate() error {
	fmt.Println("Running mutation tests...")

	if err := targ.Deps(TestForFail); err != nil {
		return err
	}

	return sh.Run(
		"go",
		"test",
		"-timeout=6000s",
		"-tags=mutation",
		"-ooze.v",
		".",
		"-run=TestMutation",
	)
}

// ReorderDecls reorders declarations in Go files per conventions.
func ReorderDecls() error {
	fmt.Println("Reordering declarations...")

	files, err := sourceFiles()
	if err != nil {
		return err
	}

	reorderedCount := 0

	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		reordered, err := reorder.Source(string(content))
		if err != nil {
			fmt.Printf("Warning: failed to reorder %s: %v\n", path, err)

			continue
		}

		if string(content) == reordered {
			continue
		}

		err = os.WriteFile(path, []byte(reordered), 0o600)
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		fmt.Printf("  Reordered: %s\n", path)
		reorderedCount++
	}

	fmt.Printf("Reordered %d file(s).\n", reorderedCount)

	return nil
}

// ReorderDeclsCheck checks which files need reordering without modifying them.
func ReorderDeclsCheck() error {
	fmt.Println("Checking declaration order...")

	files, err := sourceFiles()
	if err != nil {
		return err
	}

	outOfOrderFiles := 0
	filesProcessed := 0

	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		sectionOrder, err := reorder.AnalyzeSectionOrder(string(content))
		if err != nil {
			fmt.Printf("Warning: failed to analyze %s: %v\n", path, err)

			continue
		}

		filesProcessed++

		reordered, err := reorder.Source(string(content))
		if err != nil {
			fmt.Printf("Warning: failed to reorder %s: %v\n", path, err)

			continue
		}

		if string(content) == reordered {
			continue
		}

		outOfOrderFiles++

		fmt.Printf("\n%s:\n  Current order:\n", path)

		for i, section := range sectionOrder.Sections {
			expectedNote := ""
			if section.Expected != i+1 {
				expectedNote = fmt.Sprintf(" <- should be #%d", section.Expected)
			}

			fmt.Printf("    %d. %-24s%s\n", i+1, section.Name, expectedNote)
		}

		diff := textdiff.Unified(path+" (current)", path+" (reordered)", string(content), reordered)
		if diff != "" {
			fmt.Printf("\n%s\n", diff)
		}
	}

	if outOfOrderFiles > 0 {
		fmt.Printf("\n%d file(s) need reordering (out of %d processed). Run 'targ reorder-decls' to fix.\n",
			outOfOrderFiles, filesProcessed)

		return fmt.Errorf("%d file(s) need reordering", outOfOrderFiles)
	}

	fmt.Printf("All files are correctly ordered (%d files processed).\n", filesProcessed)

	return nil
}

// Test runs the unit tests.
func Test() error {
	fmt.Println("Running unit tests...")

	if err := targ.Deps(Generate); err != nil {
		return err
	}

	// Use -count=1 to disable caching so coverage is regenerated
	return sh.Run(
		"go",
		"test",
		"-timeout=2m",
		"-race",
		"-count=1",
		"-coverprofile=coverage.out",
		"-coverpkg=./...",
		"-cover",
		"./...",
	)
}

// TestForFail runs the unit tests purely to find out whether any fail.
func TestForFail() error {
	fmt.Println("Running unit tests for overall pass/fail...")

	if err := targ.Deps(Generate); err != nil {
		return err
	}

	return sh.Run("go", "test", "-timeout=30s", "./...", "-failfast")
}

// Tidy tidies up go.mod.
func Tidy() error {
	fmt.Println("Tidying go.mod...")
	return sh.Run("go", "mod", "tidy")
}

// Watch re-runs Check whenever files change.
func Watch(ctx context.Context) error {
	fmt.Println("Watching...")

	return file.Watch(ctx, []string{"**/*.go", "**/*.toml"}, file.WatchOptions{}, func(changes file.ChangeSet) error {
		// Generated files and coverage output are written by Check itself
		if !hasRelevantChanges(changes) {
			return nil
		}

		fmt.Println("Change detected...")

		targ.ResetDeps()

		err := Check()
		if err != nil {
			fmt.Println("continuing to watch after check failure (see errors above)")
		} else {
			fmt.Println("continuing to watch after all checks passed!")
		}

		return nil
	})
}

type lineAndCoverage struct {
	line     string
	coverage float64
}

// doublegenDirectives returns the arguments of each doublegen go:generate directive in path,
// along with the file's package name.
func doublegenDirectives(path string) ([][]string, string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	parsed, err := parser.ParseFile(token.NewFileSet(), path, content, parser.PackageClauseOnly)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var directives [][]string

	for _, line := range strings.Split(string(content), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != "//go:generate" || fields[1] != "doublegen" {
			continue
		}

		directives = append(directives, fields[2:])
	}

	return directives, parsed.Name.Name, nil
}

// hasRelevantChanges returns true if the changeset contains files we care about.
func hasRelevantChanges(changes file.ChangeSet) bool {
	allFiles := slices.Concat(changes.Added, changes.Removed, changes.Modified)

	for _, f := range allFiles {
		if strings.Contains(f, "generated_") || strings.HasSuffix(f, "coverage.out") {
			continue
		}

		return true
	}

	return false
}

func isGeneratedFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, 200)

	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	content := string(buf[:n])

	return strings.Contains(content, "Code generated") || strings.Contains(content, "DO NOT EDIT"), nil
}

// output runs a command and captures stdout only (stderr goes to os.Stderr).
func output(command string, args ...string) (string, error) {
	buf := &bytes.Buffer{}
	cmd := exec.Command(command, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = buf
	cmd.Stderr = os.Stderr
	err := cmd.Run()

	return strings.TrimSuffix(buf.String(), "\n"), err
}

// sourceFiles lists the hand-written Go files declaration ordering applies to.
func sourceFiles() ([]string, error) {
	var files []string

	err := filepath.WalkDir(".", func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("unable to walk %s: %w", path, err)
		}

		if entry.IsDir() {
			name := entry.Name()
			if path != "." && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "vendor") {
				return filepath.SkipDir
			}

			return nil
		}

		if filepath.Ext(path) != ".go" || strings.Contains(path, "generated_") {
			return nil
		}

		generated, err := isGeneratedFile(path)
		if err != nil {
			return err
		}

		if !generated {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find Go files: %w", err)
	}

	return files, nil
}
