package number

import (
	"encoding/json"
	"testing"
)

func TestToFloat64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		ok    bool
		want  float64
	}{
		{name: "int", input: int(10), ok: true, want: 10},
		{name: "uint16", input: uint16(7), ok: true, want: 7},
		{name: "float64", input: 12.5, ok: true, want: 12.5},
		{name: "json_number", input: json.Number("42"), ok: true, want: 42},
		{name: "bad_json_number", input: json.Number("4x"), ok: false, want: 0},
		{name: "non_numeric", input: "x", ok: false, want: 0},
		{name: "nil", input: nil, ok: false, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToFloat64(tt.input)
			if ok != tt.ok {
				t.Fatalf("ToFloat64(%v) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if got != tt.want {
				t.Fatalf("ToFloat64(%v) value = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestToStrictInt(t *testing.T) {
	t.Parallel()

	if got, err := ToStrictInt(int64(7)); err != nil || got != 7 {
		t.Fatalf("ToStrictInt(int64(7)) = (%d, %v), want (7, nil)", got, err)
	}

	if _, err := ToStrictInt(4.0); err == nil {
		t.Fatal("ToStrictInt(4.0) expected error")
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want bool
	}{
		{a: "1", b: "1", want: true},
		{a: "1", b: "1.0", want: true},
		{a: "1e0", b: "1.00", want: true},
		{a: "-0", b: "0", want: true},
		{a: "1.0", b: "1.1", want: false},
		{a: "0.1", b: "0.10000000000000001", want: false},
		{a: "12345678901234567890", b: "12345678901234567891", want: false},
	}

	for _, tt := range tests {
		if got := Equal(json.Number(tt.a), json.Number(tt.b)); got != tt.want {
			t.Errorf("Equal(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
