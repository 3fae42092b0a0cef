package jsonassert

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jacoelho/restassert/internal/number"
)

// ErrInvalidJSON indicates a document is not valid RFC 8259 JSON.
var ErrInvalidJSON = errors.New("invalid json")

// Kind is the type tag of a Value. The zero Kind is KindAbsent.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// absentMarker is how a missing value renders; it can never collide with a
// rendered JSON value.
const absentMarker = "<absent>"

// Member is one key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Value is an immutable parsed JSON value. Objects keep their members in
// document order. The zero Value is Absent, which is distinct from Null.
type Value struct {
	kind    Kind
	boolean bool
	text    string // string contents, or the number literal
	items   []Value
	members []Member
	index   map[string]int
}

// Absent is the value of a location that does not exist.
var Absent = Value{}

func Null() Value {
	return Value{kind: KindNull}
}

func Bool(b bool) Value {
	return Value{kind: KindBool, boolean: b}
}

// Number keeps the literal as written; equality is numeric.
func Number(n json.Number) Value {
	return Value{kind: KindNumber, text: string(n)}
}

func String(s string) Value {
	return Value{kind: KindString, text: s}
}

func Array(items ...Value) Value {
	return Value{kind: KindArray, items: append([]Value{}, items...)}
}

// Object builds an object from members in order. A repeated key keeps its
// first position and takes the last value.
func Object(members ...Member) Value {
	v := Value{kind: KindObject, members: make([]Member, 0, len(members)), index: make(map[string]int, len(members))}
	for _, m := range members {
		if i, ok := v.index[m.Key]; ok {
			v.members[i].Value = m.Value
			continue
		}
		v.index[m.Key] = len(v.members)
		v.members = append(v.members, m)
	}
	return v
}

// Parse decodes exactly one JSON document.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return Absent, fmt.Errorf("%w: document is empty", ErrInvalidJSON)
	}
	if err != nil {
		return Absent, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	v, err := decodeToken(dec, tok)
	if err != nil {
		return Absent, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Absent, fmt.Errorf("%w: unexpected data after top-level value", ErrInvalidJSON)
	}

	return v, nil
}

// FromAny converts a Go value through encoding/json.
func FromAny(in any) (Value, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return Absent, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return Parse(data)
}

func decodeToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return Absent, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return String(t), nil
	case json.Number:
		return Number(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	default:
		return Absent, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeObject(dec *json.Decoder) (Value, error) {
	var members []Member
	for {
		tok, err := dec.Token()
		if err != nil {
			return Absent, err
		}

		if d, ok := tok.(json.Delim); ok && d == '}' {
			return Object(members...), nil
		}

		key, ok := tok.(string)
		if !ok {
			return Absent, fmt.Errorf("object key must be a string, got %v", tok)
		}

		valueTok, err := dec.Token()
		if err != nil {
			return Absent, err
		}

		value, err := decodeToken(dec, valueTok)
		if err != nil {
			return Absent, err
		}
		members = append(members, Member{Key: key, Value: value})
	}
}

func decodeArray(dec *json.Decoder) (Value, error) {
	items := make([]Value, 0)
	for {
		tok, err := dec.Token()
		if err != nil {
			return Absent, err
		}

		if d, ok := tok.(json.Delim); ok && d == ']' {
			return Value{kind: KindArray, items: items}, nil
		}

		value, err := decodeToken(dec, tok)
		if err != nil {
			return Absent, err
		}
		items = append(items, value)
	}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsAbsent() bool {
	return v.kind == KindAbsent
}

// Len is the number of items or members, zero for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.members)
	default:
		return 0
	}
}

// Get returns the member value for key, or Absent.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Absent, false
	}
	i, ok := v.index[key]
	if !ok {
		return Absent, false
	}
	return v.members[i].Value, true
}

// Index returns the i-th item, or Absent.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.items) {
		return Absent, false
	}
	return v.items[i], true
}

// Keys returns object keys in document order.
func (v Value) Keys() []string {
	keys := make([]string, 0, len(v.members))
	for _, m := range v.members {
		keys = append(keys, m.Key)
	}
	return keys
}

func (v Value) Members() []Member {
	return append([]Member(nil), v.members...)
}

func (v Value) Items() []Value {
	return append([]Value(nil), v.items...)
}

// Equal reports JSON equality: numbers by value, objects regardless of key
// order, arrays by position.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindAbsent, KindNull:
		return true
	case KindBool:
		return v.boolean == other.boolean
	case KindString:
		return v.text == other.text
	case KindNumber:
		return number.Equal(json.Number(v.text), json.Number(other.text))
	case KindArray:
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.members) != len(other.members) {
			return false
		}
		for _, m := range v.members {
			o, ok := other.Get(m.Key)
			if !ok || !m.Value.Equal(o) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders v as compact JSON with keys in document order. Absent
// renders as "<absent>".
func (v Value) String() string {
	var b strings.Builder
	v.render(&b)
	return b.String()
}

func (v Value) render(b *strings.Builder) {
	switch v.kind {
	case KindAbsent:
		b.WriteString(absentMarker)
	case KindNull:
		b.WriteString("null")
	case KindBool:
		if v.boolean {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindNumber:
		b.WriteString(v.text)
	case KindString:
		b.WriteString(quote(v.text))
	case KindArray:
		b.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				b.WriteByte(',')
			}
			item.render(b)
		}
		b.WriteByte(']')
	case KindObject:
		b.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quote(m.Key))
			b.WriteByte(':')
			m.Value.render(b)
		}
		b.WriteByte('}')
	}
}

func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return `"` + s + `"`
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
