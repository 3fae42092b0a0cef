package jsonassert

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidPath indicates a path expression could not be parsed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrRangeNotResolvable is returned by Resolve for paths ending in a range,
	// which address many elements rather than one value.
	ErrRangeNotResolvable = errors.New("range path cannot be resolved to a single value")
)

type SegmentKind uint8

const (
	SegmentField SegmentKind = iota
	SegmentIndex
	SegmentRange
)

// Segment is one step of a Path. Range bounds are half-open; an End of -1
// means up to the last element.
type Segment struct {
	Kind  SegmentKind
	Name  string
	Index int
	Start int
	End   int
}

func field(name string) Segment { return Segment{Kind: SegmentField, Name: name} }
func index(i int) Segment       { return Segment{Kind: SegmentIndex, Index: i} }

// covers reports whether s, taken from an ignored path, addresses the
// traversal segment other.
func (s Segment) covers(other Segment) bool {
	switch s.Kind {
	case SegmentField:
		return other.Kind == SegmentField && other.Name == s.Name
	case SegmentIndex:
		return other.Kind == SegmentIndex && other.Index == s.Index
	case SegmentRange:
		return other.Kind == SegmentIndex && other.Index >= s.Start && (s.End < 0 || other.Index < s.End)
	default:
		return false
	}
}

// Path is a parsed path expression. The zero Path addresses the document root.
type Path struct {
	raw      string
	segments []Segment
}

// ParsePath accepts a bare key (name), a dotted path with an optional
// leading "$." (a.b, $.a.b), bracket indexes (array[0]), quoted names
// (['a.b']) and, as the last segment only, a half-open range (array[0:3]).
func ParsePath(raw string) (Path, error) {
	expr := strings.TrimSpace(raw)
	if expr == "" {
		return Path{}, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	switch {
	case expr == "$":
		return Path{raw: raw}, nil
	case strings.HasPrefix(expr, "$."):
		expr = expr[2:]
	case strings.HasPrefix(expr, "$["):
		expr = expr[1:]
	}

	p := &pathParser{raw: raw, input: expr}
	segments, err := p.parse()
	if err != nil {
		return Path{}, err
	}

	for i, seg := range segments {
		if seg.Kind == SegmentRange && i != len(segments)-1 {
			return Path{}, fmt.Errorf("%w: %q: range is only allowed as the last segment", ErrInvalidPath, raw)
		}
	}

	return Path{raw: raw, segments: segments}, nil
}

// MustParsePath is ParsePath for literals known to be valid.
func MustParsePath(raw string) Path {
	p, err := ParsePath(raw)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Path) Segments() []Segment {
	return append([]Segment(nil), p.segments...)
}

func (p Path) IsRoot() bool {
	return len(p.segments) == 0
}

// String renders the canonical form, "$" for the root.
func (p Path) String() string {
	if p.IsRoot() {
		return "$"
	}
	return renderSegments(p.segments)
}

// covers reports whether the traversal location at is p or below it.
func (p Path) covers(at []Segment) bool {
	if len(p.segments) > len(at) {
		return false
	}
	for i, seg := range p.segments {
		if !seg.covers(at[i]) {
			return false
		}
	}
	return true
}

// Resolve walks v along p. Missing keys, out of range indexes and segments
// that do not fit the value's type all yield Absent.
func Resolve(v Value, p Path) (Value, error) {
	current := v
	for _, seg := range p.segments {
		switch seg.Kind {
		case SegmentField:
			current, _ = current.Get(seg.Name)
		case SegmentIndex:
			current, _ = current.Index(seg.Index)
		case SegmentRange:
			return Absent, fmt.Errorf("%w: %s", ErrRangeNotResolvable, p)
		}
		if current.IsAbsent() {
			return Absent, nil
		}
	}
	return current, nil
}

// renderSegments is the textual path used in mismatch messages: the root is
// "", names are dot separated and indexes are bracketed.
var quotedName = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func renderSegments(segments []Segment) string {
	var b strings.Builder
	for i, seg := range segments {
		switch seg.Kind {
		case SegmentField:
			if plainName(seg.Name) {
				if i > 0 {
					b.WriteByte('.')
				}
				b.WriteString(seg.Name)
			} else {
				b.WriteString("['")
				b.WriteString(quotedName.Replace(seg.Name))
				b.WriteString("']")
			}
		case SegmentIndex:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(seg.Index))
			b.WriteByte(']')
		case SegmentRange:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(seg.Start))
			b.WriteByte(':')
			if seg.End >= 0 {
				b.WriteString(strconv.Itoa(seg.End))
			}
			b.WriteByte(']')
		}
	}
	return b.String()
}

func plainName(name string) bool {
	return name != "" && !strings.ContainsAny(name, ".[]'\"")
}

type pathParser struct {
	raw   string
	input string
	pos   int
}

func (p *pathParser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %q: %s", ErrInvalidPath, p.raw, fmt.Sprintf(format, args...))
}

func (p *pathParser) parse() ([]Segment, error) {
	var segments []Segment

	if p.peek() != '[' {
		name, err := p.name()
		if err != nil {
			return nil, err
		}
		segments = append(segments, field(name))
	}

	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case '.':
			p.pos++
			name, err := p.name()
			if err != nil {
				return nil, err
			}
			segments = append(segments, field(name))
		case '[':
			seg, err := p.bracket()
			if err != nil {
				return nil, err
			}
			segments = append(segments, seg)
		default:
			return nil, p.errorf("unexpected %q at offset %d", p.input[p.pos], p.pos)
		}
	}

	return segments, nil
}

func (p *pathParser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *pathParser) name() (string, error) {
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] != '.' && p.input[p.pos] != '[' {
		if p.input[p.pos] == ']' {
			return "", p.errorf("unexpected ']' at offset %d", p.pos)
		}
		p.pos++
	}
	if p.pos == start {
		return "", p.errorf("empty name at offset %d", start)
	}
	return p.input[start:p.pos], nil
}

func (p *pathParser) bracket() (Segment, error) {
	open := p.pos
	p.pos++ // '['

	if q := p.peek(); q == '\'' || q == '"' {
		return p.quoted(open, q)
	}

	end := strings.IndexByte(p.input[p.pos:], ']')
	if end < 0 {
		return Segment{}, p.errorf("unterminated bracket at offset %d", open)
	}
	body := strings.TrimSpace(p.input[p.pos : p.pos+end])
	p.pos += end + 1

	if before, after, ok := strings.Cut(body, ":"); ok {
		return p.rangeSegment(before, after)
	}

	i, err := p.bound(body)
	if err != nil {
		return Segment{}, err
	}
	return index(i), nil
}

func (p *pathParser) quoted(open int, quote byte) (Segment, error) {
	p.pos++ // opening quote

	var b strings.Builder
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		switch {
		case c == '\\' && p.pos+1 < len(p.input):
			b.WriteByte(p.input[p.pos+1])
			p.pos += 2
		case c == quote:
			p.pos++
			if p.peek() != ']' {
				return Segment{}, p.errorf("unterminated bracket at offset %d", open)
			}
			p.pos++
			return field(b.String()), nil
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return Segment{}, p.errorf("unterminated bracket at offset %d", open)
}

func (p *pathParser) rangeSegment(start, end string) (Segment, error) {
	seg := Segment{Kind: SegmentRange, End: -1}

	if s := strings.TrimSpace(start); s != "" {
		v, err := p.bound(s)
		if err != nil {
			return Segment{}, err
		}
		seg.Start = v
	}
	if e := strings.TrimSpace(end); e != "" {
		v, err := p.bound(e)
		if err != nil {
			return Segment{}, err
		}
		seg.End = v
	}

	if seg.End >= 0 && seg.End < seg.Start {
		return Segment{}, p.errorf("range end %d is before start %d", seg.End, seg.Start)
	}
	return seg, nil
}

func (p *pathParser) bound(text string) (int, error) {
	v, err := strconv.Atoi(text)
	if err != nil || v < 0 {
		return 0, p.errorf("index %q is not a non-negative integer", text)
	}
	return v, nil
}
