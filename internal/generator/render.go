package generator

import (
	"embed"
	"fmt"
	"go/format"
	"slices"
	"strings"
	texttemplate "text/template"

	"github.com/jacoelho/restassert/internal/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type targetSpec struct {
	imports  []string
	template *texttemplate.Template
}

var targets = map[string]targetSpec{
	"must":      {template: parseTemplate("must")},
	"gotestcmp": {imports: []string{"gotest.tools/v3/assert/cmp"}, template: parseTemplate("gotestcmp")},
}

func parseTemplate(name string) *texttemplate.Template {
	text, err := templateFS.ReadFile("templates/" + name + ".tmpl")
	if err != nil {
		panic(err)
	}
	return template.MustParse(name, string(text))
}

// File is one rendered, gofmt-ed source file.
type File struct {
	Name    string
	Target  string
	Methods int
	Content []byte
}

type fileData struct {
	Package string
	Imports string
	Alias   string
	Noun    string
	Methods []methodData
}

type methodData struct {
	Wrapper string
	Name    string
	Doc     string
	Params  string
	Args    string
}

// Render produces one file per group enabled for target, in table order.
func Render(table Table, target string) ([]File, error) {
	tgt, ok := targets[target]
	if !ok {
		return nil, fmt.Errorf("%w: unknown target %q (known: %s)", ErrTable, target, strings.Join(Targets(), ", "))
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}

	var files []File
	for _, g := range table.Groups {
		if !g.Enabled(target) {
			continue
		}

		data := fileData{
			Package: target,
			Imports: importBlock(append(slices.Clone(tgt.imports), append([]string{g.Import}, g.Imports...)...)),
			Alias:   g.Alias(),
			Noun:    g.Noun,
		}
		if data.Noun == "" {
			data.Noun = g.Name
		}

		for _, m := range g.Methods {
			data.Methods = append(data.Methods, methodFor(g, m))
		}

		text, err := template.Execute(tgt.template, data)
		if err != nil {
			return nil, fmt.Errorf("render %s/%s: %w", target, g.Name, err)
		}

		source, err := format.Source([]byte(text))
		if err != nil {
			return nil, fmt.Errorf("format %s/%s: %w", target, g.Name, err)
		}

		files = append(files, File{
			Name:    g.Name + "_gen.go",
			Target:  target,
			Methods: len(g.Methods),
			Content: source,
		})
	}

	return files, nil
}

func methodFor(g Group, m Method) methodData {
	params := []string{g.Subject.Name + " " + g.Subject.Type}
	args := []string{g.Subject.Name}
	for _, p := range m.Params {
		if p.Variadic {
			params = append(params, p.Name+" ..."+p.Type)
			args = append(args, p.Name+"...")
			continue
		}
		params = append(params, p.Name+" "+p.Type)
		args = append(args, p.Name)
	}

	return methodData{
		Wrapper: g.Wrapper(m),
		Name:    m.Name,
		Doc:     m.Doc,
		Params:  strings.Join(params, ", "),
		Args:    strings.Join(args, ", "),
	}
}

// importBlock groups standard library paths before the rest, sorted and
// deduplicated.
func importBlock(paths []string) string {
	var std, ext []string
	seen := make(map[string]bool)
	for _, p := range paths {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		if first, _, _ := strings.Cut(p, "/"); strings.Contains(first, ".") {
			ext = append(ext, p)
		} else {
			std = append(std, p)
		}
	}
	slices.Sort(std)
	slices.Sort(ext)

	var b strings.Builder
	for _, p := range std {
		fmt.Fprintf(&b, "\t%q\n", p)
	}
	if len(std) > 0 && len(ext) > 0 {
		b.WriteString("\n")
	}
	for _, p := range ext {
		fmt.Fprintf(&b, "\t%q\n", p)
	}
	return b.String()
}
