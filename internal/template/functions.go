package template

import (
	"strings"
	"text/template"

	"github.com/iancoleman/strcase"
)

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"phrase":     phrase,
		"snake":      strcase.ToSnake,
		"lowerCamel": strcase.ToLowerCamel,
		"camel":      strcase.ToCamel,

		"lower": strings.ToLower,
		"trim":  strings.TrimSpace,
		"join":  strings.Join,

		"article": article,
	}
}

// phrase turns an identifier into lower case words: IsJSONEqualTo becomes
// "is json equal to".
func phrase(name string) string {
	return strcase.ToDelimited(name, ' ')
}

// article picks "a" or "an" for the word that follows.
func article(word string) string {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return "a"
	}
	switch word[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an"
	}
	return "a"
}

func NewTemplate(name string) *template.Template {
	return template.New(name).Option("missingkey=error").Funcs(FuncMap())
}

// MustParse panics if the template cannot be parsed.
func MustParse(name, text string) *template.Template {
	return template.Must(NewTemplate(name).Parse(text))
}

// Execute renders tmpl with data into a string.
func Execute(tmpl *template.Template, data any) (string, error) {
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
