package generate

import "text/template"

//nolint:gochecknoglobals // Parsed once; execution is read-only
var mockTemplate = template.Must(template.New("mock").Parse(`// Code generated by doublegen. DO NOT EDIT.

package {{.PkgName}}

import (
{{- range .Imports}}
	{{with .Alias}}{{.}} {{end}}"{{.Path}}"
{{- end}}
)

// {{.MockType}} is the mock implementation returned by {{.Constructor}}.
type {{.MockType}} struct {
	double *calcdouble.Double
{{- range .Methods}}
	{{.Name}} *{{$.MockType}}{{.Name}}Method
{{- end}}
}

// Double returns the double that records this mock's expectations.
func (m *{{.MockType}}) Double() *calcdouble.Double {
	return m.double
}

// Interface returns the mock as a {{.IfaceType}} implementation.
func (m *{{.MockType}}) Interface() {{.IfaceType}} {
	return &{{.ImplType}}{mock: m}
}
{{range .Methods}}
// {{$.MockType}}{{.Name}}Call is an expectation registered on {{$.MockType}}.{{.Name}}.
type {{$.MockType}}{{.Name}}Call struct {
	*calcdouble.Expectation
}

// InjectPanicValue makes matching calls panic with value.
func (c *{{$.MockType}}{{.Name}}Call) InjectPanicValue(value any) *{{$.MockType}}{{.Name}}Call {
	c.Panic(value)

	return c
}

// InjectReturnValues sets the values matching calls return.
func (c *{{$.MockType}}{{.Name}}Call) InjectReturnValues({{range $i, $r := .Results}}{{if $i}}, {{end}}{{$r.Name}} {{$r.Type}}{{end}}) *{{$.MockType}}{{.Name}}Call {
	c.Return({{range $i, $r := .Results}}{{if $i}}, {{end}}{{$r.Name}}{{end}})

	return c
}

// Times sets exactly how many calls the expectation must receive.
func (c *{{$.MockType}}{{.Name}}Call) Times(n int) *{{$.MockType}}{{.Name}}Call {
	c.Expectation.Times(n)

	return c
}

// {{$.MockType}}{{.Name}}Method registers expectations for {{.Qualified}}.
type {{$.MockType}}{{.Name}}Method struct {
	*calcdouble.Method
}

// ExpectCalledWithExactly expects a call with exactly these arguments.
func (m *{{$.MockType}}{{.Name}}Method) ExpectCalledWithExactly({{.TypedParams}}) *{{$.MockType}}{{.Name}}Call {
	return &{{$.MockType}}{{.Name}}Call{Expectation: m.Method.ExpectCalledWithExactly({{.ArgNames}})}
}

// ExpectCalledWithMatches expects a call whose arguments satisfy these matchers or equal these values.
func (m *{{$.MockType}}{{.Name}}Method) ExpectCalledWithMatches({{.AnyParams}}) *{{$.MockType}}{{.Name}}Call {
	return &{{$.MockType}}{{.Name}}Call{Expectation: m.Method.ExpectCalledWithMatches({{.ArgNames}})}
}
{{end}}
// {{.Constructor}} creates a new mock for the {{.IfaceName}} interface.
// Mocks created with the same test share one double, verified when the test completes.
func {{.Constructor}}(t calcdouble.TestReporter) *{{.MockType}} {
	double, ok := t.(*calcdouble.Double)
	if !ok {
		double = calcdouble.GetOrCreateDouble(t)
	}

	return &{{.MockType}}{
		double: double,
{{- range .Methods}}
		{{.Name}}: &{{$.MockType}}{{.Name}}Method{Method: calcdouble.NewMethod(double, "{{.Qualified}}")},
{{- end}}
	}
}

// {{.ImplType}} implements {{.IfaceType}} by invoking the mock's double.
type {{.ImplType}} struct {
	mock *{{.MockType}}
}
{{range .Methods}}
// {{.Name}} implements {{.Qualified}}.
func (impl *{{$.ImplType}}) {{.Name}}({{.TypedParams}}) {{.ResultList}} {
{{- if .Results}}
	returns := impl.mock.{{.Name}}.Call({{.ArgNames}})
{{range $i, $r := .Results}}
	var {{$r.Name}} {{$r.Type}}
	if len(returns) > {{$i}} {
		if value, ok := returns[{{$i}}].({{$r.Type}}); ok {
			{{$r.Name}} = value
		}
	}
{{end}}
	return {{range $i, $r := .Results}}{{if $i}}, {{end}}{{$r.Name}}{{end}}
{{- else}}
	impl.mock.{{.Name}}.Call({{.ArgNames}})
{{- end}}
}
{{end}}`))
