package gen

import (
	"bytes"
	"fmt"
	"go/token"
	"slices"
	"text/template"

	"golang.org/x/tools/imports"

	"binding-generator/internal/common"
	"binding-generator/internal/plan"
)

// DefaultWireImport is the import path of the runtime the bindings use.
const DefaultWireImport = "binding-generator/pkg/wire"

// defaultPackageName is used when neither the config, the schema nor the
// output directory gives a usable name.
const defaultPackageName = "bindings"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package. Empty uses the
	// schema's package, then the last element of OutputDir.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// WireImport is the import path of the wire runtime.
	WireImport string
	// GenerateComments copies schema descriptions into doc comments.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputDir:        "./generated",
		WireImport:       DefaultWireImport,
		GenerateComments: true,
	}
}

// Generator generates Go bindings from a resolved binding plan.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.WireImport == "" {
		config.WireImport = DefaultWireImport
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "objects.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// templateData holds all data the templates need.
type templateData struct {
	PackageName string
	WireImport  string
	Comments    bool
	Plan        *plan.BindingPlan
	// Imports are the standard library packages of the file being rendered.
	Imports []string
	// Fields lists every field descriptor once: own object fields, then
	// params and returns.
	Fields []*plan.FieldPlan
}

// Generate generates Go code from a BindingPlan. Files with nothing to hold
// are not produced.
func (g *Generator) Generate(p *plan.BindingPlan) ([]GeneratedFile, error) {
	data, err := g.buildTemplateData(p)
	if err != nil {
		return nil, err
	}

	callableImports := []string{"context"}
	if slices.ContainsFunc(p.Callables, (*plan.CallablePlan).HasArgs) {
		callableImports = append(callableImports, "errors", "fmt")
	}

	parts := []struct {
		filename string
		tmpl     *template.Template
		imports  []string
		empty    bool
	}{
		{"wire_fields.go", wireFieldsTemplate, nil, len(p.Codecs) == 0 && len(data.Fields) == 0},
		{"objects.go", objectsTemplate, []string{"errors", "fmt"}, len(p.Objects) == 0},
		{"unions.go", unionsTemplate, nil, len(p.Unions) == 0},
		{"callables.go", callablesTemplate, callableImports, len(p.Callables) == 0},
	}

	var files []GeneratedFile

	for _, part := range parts {
		if part.empty {
			continue
		}

		fileData := *data
		fileData.Imports = part.imports

		file, err := g.render(part.filename, part.tmpl, &fileData)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", part.filename, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

func (g *Generator) buildTemplateData(p *plan.BindingPlan) (*templateData, error) {
	name := g.config.PackageName
	if name == "" {
		name = p.Package
	}

	if name == "" {
		name = common.PkgAlias(g.config.OutputDir)
		if !token.IsIdentifier(name) || token.IsKeyword(name) {
			name = defaultPackageName
		}
	}

	if !token.IsIdentifier(name) || token.IsKeyword(name) {
		return nil, fmt.Errorf("invalid package name %q", name)
	}

	data := &templateData{
		PackageName: name,
		WireImport:  g.config.WireImport,
		Comments:    g.config.GenerateComments,
		Plan:        p,
	}

	for _, o := range p.Objects {
		for _, f := range o.Fields {
			if o.Own(f) {
				data.Fields = append(data.Fields, f)
			}
		}
	}

	for _, c := range p.Callables {
		data.Fields = append(data.Fields, c.Params...)
		data.Fields = append(data.Fields, c.Return)
	}

	return data, nil
}

// render executes tmpl and formats the result, sorting the import block. On
// a formatting failure the unformatted source is returned with the error and
// written next to the output for inspection.
func (g *Generator) render(filename string, tmpl *template.Template, data *templateData) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}
