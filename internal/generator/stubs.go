package generator

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/example/rbstub-gen/internal/rustdoc"
)

const (
	// DefaultHeader marks the output as generated.
	DefaultHeader = "# Auto-generated Ruby methods with RDoc"
	// DefaultModule is the Ruby module wrapping all stubs.
	DefaultModule = "RustBindings"
)

const moduleTemplate = `{{.Header}}
module {{.Module}}
{{- range $i, $stub := .Stubs}}
{{if $i}}
{{end}}{{$stub}}
{{- end}}
end
`

var moduleTmpl = template.Must(template.New("module").Parse(moduleTemplate))

// StubGenerator generates a Ruby module of method stubs from documented functions.
type StubGenerator struct {
	module string
	header string
	style  Style
}

// NewStubGenerator creates a generator for the given Ruby module name.
func NewStubGenerator(module string) *StubGenerator {
	if module == "" {
		module = DefaultModule
	}
	return &StubGenerator{
		module: module,
		header: DefaultHeader,
		style:  DefaultStyle,
	}
}

// WithHeader overrides the first line of the generated file.
func (g *StubGenerator) WithHeader(header string) *StubGenerator {
	g.header = header
	return g
}

// GenerateStub renders a single stub.
func (g *StubGenerator) GenerateStub(fn rustdoc.Function) string {
	return g.style.FormatStub(fn.Name, fn.Docs)
}

// GenerateStubs renders stubs in the order of fns.
func (g *StubGenerator) GenerateStubs(fns []rustdoc.Function) []string {
	stubs := make([]string, 0, len(fns))
	for _, fn := range fns {
		stubs = append(stubs, g.GenerateStub(fn))
	}
	return stubs
}

// RenderModule wraps stubs in the header and module declaration.
func (g *StubGenerator) RenderModule(stubs []string) ([]byte, error) {
	data := struct {
		Header string
		Module string
		Stubs  []string
	}{
		Header: g.header,
		Module: g.module,
		Stubs:  stubs,
	}

	var buf bytes.Buffer
	if err := moduleTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute module template: %w", err)
	}
	return buf.Bytes(), nil
}

// Generate renders the complete file for fns.
func (g *StubGenerator) Generate(fns []rustdoc.Function) ([]byte, error) {
	return g.RenderModule(g.GenerateStubs(fns))
}
