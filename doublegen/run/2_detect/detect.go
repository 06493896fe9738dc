// Package detect finds the interface to double and describes its methods.
package detect

import (
	"errors"
	"fmt"
	"go/token"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/dave/dst"
)

// Exported variables.
var (
	ErrInterfaceNotFound = errors.New("interface not found")
	ErrPackageNotFound   = errors.New("package not found")
	ErrUnsupported       = errors.New("unsupported interface")
)

// Import is a package the generated code must import.
type Import struct {
	Name string // Name the generated code refers to the package by
	Path string
}

// Alias returns the explicit import name, or "" when Name matches the path's last element.
func (i Import) Alias() string {
	if i.Name == path.Base(i.Path) {
		return ""
	}

	return i.Name
}

// Interface describes an interface to double.
type Interface struct {
	Name    string   // Local interface name, e.g. "Calculator"
	Methods []Method // In declaration order
	Imports []Import // Packages referenced by method signatures, sorted by path
}

// Method describes one interface method.
type Method struct {
	Name    string
	Params  []Param
	Results []string // Result types
}

// Param describes one method parameter.
type Param struct {
	Name     string
	Type     string // For a variadic parameter, the element type
	Variadic bool
}

// Describe extracts the methods of the interface named name from files.
// qualifier is how the generated code refers to the interface's package ("" for the same package);
// exported identifiers of that package are qualified with it.
func Describe(files []*dst.File, name, qualifier string) (Interface, error) {
	iface, imports, err := findInterface(files, name)
	if err != nil {
		return Interface{}, err
	}

	resolver := &typeResolver{qualifier: qualifier, fileImports: imports, used: map[string]Import{}}
	described := Interface{Name: name}

	if iface.Methods == nil {
		return described, nil
	}

	for _, field := range iface.Methods.List {
		funcType, ok := field.Type.(*dst.FuncType)
		if !ok || len(field.Names) == 0 {
			return Interface{}, fmt.Errorf(
				"%w: %s embeds %s", ErrUnsupported, name, StringifyExpr(field.Type),
			)
		}

		method, err := resolver.method(field.Names[0].Name, funcType)
		if err != nil {
			return Interface{}, fmt.Errorf("%w: %s.%s: %w", ErrUnsupported, name, field.Names[0].Name, err)
		}

		described.Methods = append(described.Methods, method)
	}

	for _, imp := range resolver.used {
		described.Imports = append(described.Imports, imp)
	}

	sort.Slice(described.Imports, func(i, j int) bool {
		return described.Imports[i].Path < described.Imports[j].Path
	})

	return described, nil
}

// ExtractPackageName returns the qualifier of a qualified name ("calculator" for
// "calculator.Calculator"), or "" when the name is unqualified.
func ExtractPackageName(qualifiedName string) string {
	parts := strings.Split(qualifiedName, ".")
	if len(parts) > 1 {
		return parts[0]
	}

	return ""
}

// FindImportPath resolves the package name pkgName through the imports of files.
// Files are searched in order; pass only the go:generate source file to restrict the lookup to it.
func FindImportPath(files []*dst.File, pkgName string) (string, error) {
	for _, file := range files {
		for _, imp := range file.Imports {
			importPath, err := strconv.Unquote(imp.Path.Value)
			if err != nil {
				continue
			}

			if importName(imp, importPath) == pkgName {
				return importPath, nil
			}
		}
	}

	return "", fmt.Errorf("%w: %s is not imported", ErrPackageNotFound, pkgName)
}

// StringifyExpr converts a DST type expression to its Go source form.
func StringifyExpr(expr dst.Expr) string {
	str, err := (&typeResolver{used: map[string]Import{}}).typeString(expr)
	if err != nil {
		return fmt.Sprintf("<%T>", expr)
	}

	return str
}

// unexported variables.
var (
	errUnsupportedType = errors.New("unsupported type")
)

// typeResolver renders types for use outside their declaring package and records the imports they need.
type typeResolver struct {
	qualifier   string
	fileImports []*dst.ImportSpec
	used        map[string]Import
}

func (r *typeResolver) fieldTypes(fields *dst.FieldList) ([]string, error) {
	if fields == nil {
		return nil, nil
	}

	var types []string

	for _, field := range fields.List {
		typeStr, err := r.typeString(field.Type)
		if err != nil {
			return nil, err
		}

		count := max(len(field.Names), 1)
		for range count {
			types = append(types, typeStr)
		}
	}

	return types, nil
}

func (r *typeResolver) funcSignature(funcType *dst.FuncType) (string, error) {
	params, err := r.fieldTypes(funcType.Params)
	if err != nil {
		return "", err
	}

	results, err := r.fieldTypes(funcType.Results)
	if err != nil {
		return "", err
	}

	signature := "func(" + strings.Join(params, ", ") + ")"

	switch len(results) {
	case 0:
		return signature, nil
	case 1:
		return signature + " " + results[0], nil
	default:
		return signature + " (" + strings.Join(results, ", ") + ")", nil
	}
}

func (r *typeResolver) method(name string, funcType *dst.FuncType) (Method, error) {
	method := Method{Name: name}

	index := 0

	for _, field := range funcType.Params.List {
		typeExpr := field.Type
		variadic := false

		if ellipsis, ok := typeExpr.(*dst.Ellipsis); ok {
			typeExpr = ellipsis.Elt
			variadic = true
		}

		typeStr, err := r.typeString(typeExpr)
		if err != nil {
			return Method{}, err
		}

		names := make([]string, 0, len(field.Names))
		for _, ident := range field.Names {
			names = append(names, ident.Name)
		}

		if len(names) == 0 {
			names = append(names, "")
		}

		for _, paramName := range names {
			method.Params = append(method.Params, Param{
				Name:     paramIdentifier(paramName, index),
				Type:     typeStr,
				Variadic: variadic,
			})
			index++
		}
	}

	results, err := r.fieldTypes(funcType.Results)
	if err != nil {
		return Method{}, err
	}

	method.Results = results

	return method, nil
}

//nolint:cyclop // Type-switch dispatcher over the supported DST expressions
func (r *typeResolver) typeString(expr dst.Expr) (string, error) {
	switch typed := expr.(type) {
	case *dst.Ident:
		if r.qualifier != "" && token.IsExported(typed.Name) {
			return r.qualifier + "." + typed.Name, nil
		}

		return typed.Name, nil
	case *dst.SelectorExpr:
		pkgIdent, ok := typed.X.(*dst.Ident)
		if !ok {
			return "", fmt.Errorf("%w: selector on %T", errUnsupportedType, typed.X)
		}

		r.use(pkgIdent.Name)

		return pkgIdent.Name + "." + typed.Sel.Name, nil
	case *dst.StarExpr:
		inner, err := r.typeString(typed.X)

		return "*" + inner, err
	case *dst.ArrayType:
		elem, err := r.typeString(typed.Elt)
		if err != nil {
			return "", err
		}

		if typed.Len == nil {
			return "[]" + elem, nil
		}

		length, ok := typed.Len.(*dst.BasicLit)
		if !ok {
			return "", fmt.Errorf("%w: array length %T", errUnsupportedType, typed.Len)
		}

		return "[" + length.Value + "]" + elem, nil
	case *dst.MapType:
		key, err := r.typeString(typed.Key)
		if err != nil {
			return "", err
		}

		value, err := r.typeString(typed.Value)

		return "map[" + key + "]" + value, err
	case *dst.ChanType:
		value, err := r.typeString(typed.Value)

		switch typed.Dir {
		case dst.SEND:
			return "chan<- " + value, err
		case dst.RECV:
			return "<-chan " + value, err
		default:
			return "chan " + value, err
		}
	case *dst.FuncType:
		return r.funcSignature(typed)
	case *dst.InterfaceType:
		if typed.Methods == nil || len(typed.Methods.List) == 0 {
			return "interface{}", nil
		}

		return "", fmt.Errorf("%w: non-empty interface literal", errUnsupportedType)
	case *dst.StructType:
		if typed.Fields == nil || len(typed.Fields.List) == 0 {
			return "struct{}", nil
		}

		return "", fmt.Errorf("%w: non-empty struct literal", errUnsupportedType)
	default:
		return "", fmt.Errorf("%w: %T", errUnsupportedType, expr)
	}
}

func (r *typeResolver) use(pkgName string) {
	for _, imp := range r.fileImports {
		importPath, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}

		if importName(imp, importPath) == pkgName {
			r.used[importPath] = Import{Name: pkgName, Path: importPath}

			return
		}
	}
}

func findInterface(files []*dst.File, name string) (*dst.InterfaceType, []*dst.ImportSpec, error) {
	for _, file := range files {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*dst.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}

			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*dst.TypeSpec)
				if !ok || typeSpec.Name.Name != name {
					continue
				}

				iface, ok := typeSpec.Type.(*dst.InterfaceType)
				if !ok {
					continue
				}

				if typeSpec.TypeParams != nil && len(typeSpec.TypeParams.List) > 0 {
					return nil, nil, fmt.Errorf("%w: %s has type parameters", ErrUnsupported, name)
				}

				return iface, file.Imports, nil
			}
		}
	}

	return nil, nil, fmt.Errorf("%w: %s", ErrInterfaceNotFound, name)
}

func importName(imp *dst.ImportSpec, importPath string) string {
	if imp.Name != nil {
		return imp.Name.Name
	}

	return path.Base(importPath)
}

func paramIdentifier(name string, index int) string {
	if name == "" || name == "_" {
		return "arg" + strconv.Itoa(index)
	}

	if _, reserved := reservedNames[name]; reserved {
		return name + "Arg"
	}

	return name
}

//nolint:gochecknoglobals // Identifiers the generated code declares in method scope
var reservedNames = map[string]struct{}{
	"c": {}, "m": {}, "n": {}, "impl": {}, "returns": {}, "value": {}, "ok": {},
}
