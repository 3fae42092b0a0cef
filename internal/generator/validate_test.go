package generator

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGroup() Group {
	return Group{
		Name:    "http",
		Import:  "github.com/jacoelho/restassert/httpassert",
		Subject: Param{Name: "r", Type: "httpassert.Response"},
		Methods: []Method{{Name: "HasStatus", Params: []Param{{Name: "code", Type: "int"}}}},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Table)
		want   []string
	}{
		{
			name:   "valid",
			mutate: func(*Table) {},
		},
		{
			name:   "no groups",
			mutate: func(tb *Table) { tb.Groups = nil },
			want:   []string{"no groups"},
		},
		{
			name: "missing names",
			mutate: func(tb *Table) {
				tb.Groups[0].Name = ""
				tb.Groups[0].Methods = append(tb.Groups[0].Methods, Method{})
			},
			want: []string{"groups[0]: missing name", "groups[0] methods[1]: missing name"},
		},
		{
			name: "bad identifiers",
			mutate: func(tb *Table) {
				tb.Groups[0].Methods[0].Name = "hasStatus"
				tb.Groups[0].Methods[0].Params[0].Name = "1code"
				tb.Groups[0].Prefix = "cookie"
			},
			want: []string{
				`prefix "cookie" is not an exported identifier`,
				`method "hasStatus": name is not an exported identifier`,
				`params[0]: name "1code" is not an identifier`,
			},
		},
		{
			name: "variadic not last",
			mutate: func(tb *Table) {
				tb.Groups[0].Methods[0].Params = []Param{
					{Name: "paths", Type: "string", Variadic: true},
					{Name: "code", Type: "int"},
				}
			},
			want: []string{`variadic param "paths" must be last`},
		},
		{
			name: "unknown target",
			mutate: func(tb *Table) {
				tb.Groups[0].Targets = []string{"should"}
			},
			want: []string{`unknown target "should" (known: gotestcmp, must)`},
		},
		{
			name: "duplicate wrapper",
			mutate: func(tb *Table) {
				other := validGroup()
				other.Name = "cookie"
				other.Targets = []string{"must"}
				tb.Groups = append(tb.Groups, other)
			},
			want: []string{`wrapper must.HasStatus already generated for http.HasStatus`},
		},
		{
			name: "reserved param",
			mutate: func(tb *Table) {
				tb.Groups[0].Subject.Name = "t"
			},
			want: []string{`subject: name "t" is reserved for the test handle`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			table := Table{Groups: []Group{validGroup()}}
			tt.mutate(&table)

			err := table.Validate()
			if len(tt.want) == 0 {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			merr, ok := err.(*multierror.Error)
			require.True(t, ok, "Expected a multierror.Error")
			require.Len(t, merr.Errors, len(tt.want), "errors: %v", merr.Errors)
			for i, want := range tt.want {
				assert.ErrorIs(t, merr.Errors[i], ErrTable)
				assert.Contains(t, merr.Errors[i].Error(), want)
			}
		})
	}
}
