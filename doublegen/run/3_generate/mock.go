// Package generate renders the typed mock source for a described interface.
package generate

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strconv"
	"strings"
	"unicode"

	detect "github.com/toejough/calcdouble/doublegen/run/2_detect"
)

// Options controls how a mock is rendered.
type Options struct {
	PkgName     string // Package the generated file belongs to
	Qualifier   string // How the generated code names the interface's package; "" for the same package
	ImportPath  string // Import path of the interface's package; ignored when Qualifier is ""
	Constructor string // Name of the constructor; defaults to Mock<Interface>
}

// Mock renders and formats the mock source for iface.
func Mock(iface detect.Interface, opts Options) (string, error) {
	data := newMockData(iface, opts)

	var buf bytes.Buffer

	err := mockTemplate.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("failed to render mock for %s: %w", iface.Name, err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("failed to format mock for %s: %w", iface.Name, err)
	}

	return string(formatted), nil
}

// MockTypeName returns the struct type name generated for a constructor, e.g. CalculatorMock for MockCalculator.
func MockTypeName(constructor string) string {
	return strings.TrimPrefix(constructor, "Mock") + "Mock"
}

type methodData struct {
	Name        string
	Qualified   string // Interface-qualified name used in diagnostics
	TypedParams string // "x int, y int"
	AnyParams   string // "x any, y any"
	ArgNames    string // "x, y"
	ResultList  string // "int" or "(int, error)"
	Results     []resultData
}

type mockData struct {
	PkgName     string
	Imports     []detect.Import
	Constructor string
	MockType    string
	ImplType    string
	IfaceName   string
	IfaceType   string // Interface type as named from the generated package
	Methods     []methodData
}

type resultData struct {
	Name string
	Type string
}

func joinResults(results []resultData) string {
	switch len(results) {
	case 0:
		return ""
	case 1:
		return results[0].Type
	}

	types := make([]string, 0, len(results))
	for _, result := range results {
		types = append(types, result.Type)
	}

	return "(" + strings.Join(types, ", ") + ")"
}

func lowerFirst(name string) string {
	if name == "" {
		return name
	}

	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])

	return string(runes)
}

func newMethodData(ifaceName string, method detect.Method) methodData {
	typed := make([]string, 0, len(method.Params))
	anyParams := make([]string, 0, len(method.Params))
	names := make([]string, 0, len(method.Params))

	for _, param := range method.Params {
		paramType := param.Type
		if param.Variadic {
			paramType = "..." + paramType
		}

		typed = append(typed, param.Name+" "+paramType)
		anyParams = append(anyParams, param.Name+" any")
		names = append(names, param.Name)
	}

	results := make([]resultData, 0, len(method.Results))
	for i, resultType := range method.Results {
		results = append(results, resultData{Name: "result" + strconv.Itoa(i), Type: resultType})
	}

	return methodData{
		Name:        method.Name,
		Qualified:   ifaceName + "." + method.Name,
		TypedParams: strings.Join(typed, ", "),
		AnyParams:   strings.Join(anyParams, ", "),
		ArgNames:    strings.Join(names, ", "),
		ResultList:  joinResults(results),
		Results:     results,
	}
}

func newMockData(iface detect.Interface, opts Options) mockData {
	constructor := opts.Constructor
	if constructor == "" {
		constructor = "Mock" + iface.Name
	}

	ifaceType := iface.Name
	imports := []detect.Import{{Name: "calcdouble", Path: calcdoubleImportPath}}

	if opts.Qualifier != "" {
		ifaceType = opts.Qualifier + "." + iface.Name
		imports = append(imports, detect.Import{Name: opts.Qualifier, Path: opts.ImportPath})
	}

	for _, imp := range iface.Imports {
		if imp.Path != opts.ImportPath {
			imports = append(imports, imp)
		}
	}

	data := mockData{
		PkgName:     opts.PkgName,
		Imports:     imports,
		Constructor: constructor,
		MockType:    MockTypeName(constructor),
		ImplType:    lowerFirst(iface.Name) + "Impl",
		IfaceName:   iface.Name,
		IfaceType:   ifaceType,
	}

	for _, method := range iface.Methods {
		data.Methods = append(data.Methods, newMethodData(iface.Name, method))
	}

	sort.Slice(data.Methods, func(i, j int) bool {
		return data.Methods[i].Name < data.Methods[j].Name
	})

	return data
}

// unexported constants.
const (
	calcdoubleImportPath = "github.com/toejough/calcdouble"
)
