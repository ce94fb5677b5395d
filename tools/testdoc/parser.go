package main

import (
	"cmp"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// TestFunc is a documented Go test function.
type TestFunc struct {
	Name     string
	File     string // base name of the declaring file
	Summary  string // first line of the doc comment, without the test name
	Scenario string // text after "Scenario:"
	Expected string // text after "Expected:"
}

// TestPackage holds the tests of one directory, in file then source order.
type TestPackage struct {
	Name  string // slash-separated directory relative to the scan root
	Tests []TestFunc
}

// ParseTestFiles collects the test functions of every *_test.go file below
// root. Directories the go tool ignores (vendor, and names starting with "."
// or "_") are skipped. With integrationOnly, only *_integration_test.go files
// are read.
func ParseTestFiles(root string, integrationOnly bool) ([]TestPackage, error) {
	suffix := "_test.go"
	if integrationOnly {
		suffix = "_integration_test.go"
	}

	byDir := make(map[string][]TestFunc)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && (name == "vendor" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(name, suffix) {
			return nil
		}

		tests, err := parseTestFile(path)
		if err != nil {
			return err
		}
		if len(tests) > 0 {
			dir := filepath.Dir(path)
			byDir[dir] = append(byDir[dir], tests...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	packages := make([]TestPackage, 0, len(byDir))
	for dir, tests := range byDir {
		rel, err := filepath.Rel(root, dir)
		if err != nil || rel == "." {
			rel = filepath.Base(dir)
		}
		packages = append(packages, TestPackage{Name: filepath.ToSlash(rel), Tests: tests})
	}
	slices.SortFunc(packages, func(a, b TestPackage) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return packages, nil
}

// parseTestFile returns the Test* functions taking a single *testing.T
// declared in path.
func parseTestFile(path string) ([]TestFunc, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	var tests []TestFunc
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv != nil || !strings.HasPrefix(fn.Name.Name, "Test") || !takesTestingT(fn) {
			continue
		}

		doc := strings.TrimSpace(fn.Doc.Text())
		tests = append(tests, TestFunc{
			Name:     fn.Name.Name,
			File:     filepath.Base(path),
			Summary:  summary(doc, fn.Name.Name),
			Scenario: docSection(doc, "Scenario:"),
			Expected: docSection(doc, "Expected:"),
		})
	}
	return tests, nil
}

func takesTestingT(fn *ast.FuncDecl) bool {
	params := fn.Type.Params.List
	if len(params) != 1 {
		return false
	}
	star, ok := params[0].Type.(*ast.StarExpr)
	if !ok {
		return false
	}
	sel, ok := star.X.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	pkg, ok := sel.X.(*ast.Ident)
	return ok && pkg.Name == "testing" && sel.Sel.Name == "T"
}

// summary returns the first line of doc with a leading test name removed.
func summary(doc, name string) string {
	line, _, _ := strings.Cut(doc, "\n")
	line = strings.TrimSpace(strings.TrimPrefix(line, name+" "))
	if line == "" {
		return ""
	}
	return strings.ToUpper(line[:1]) + line[1:]
}

// docSection returns the text following label in doc, joined with any
// continuation lines up to the next blank line or label.
func docSection(doc, label string) string {
	var parts []string
	in := false
	for line := range strings.Lines(doc) {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, label):
			in = true
			parts = append(parts, strings.TrimSpace(strings.TrimPrefix(line, label)))
		case !in:
		case line == "" || strings.HasPrefix(line, "Scenario:") || strings.HasPrefix(line, "Expected:"):
			return strings.Join(parts, " ")
		default:
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}
