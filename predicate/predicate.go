// Package predicate evaluates a single comparison against a decoded JSON
// value, such as the selection of a JSONPath expression.
package predicate

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/jacoelho/restassert/internal/number"
)

var (
	ErrInvalidInput = errors.New("invalid predicate input")
	ErrUnsupported  = errors.New("unsupported predicate operation")
)

type Operator string

const (
	OpEquals             Operator = "equals"
	OpNotEquals          Operator = "not_equals"
	OpContains           Operator = "contains"
	OpNotContains        Operator = "not_contains"
	OpRegex              Operator = "regex"
	OpExists             Operator = "exists"
	OpLength             Operator = "length"
	OpGreaterThan        Operator = "greater_than"
	OpLessThan           Operator = "less_than"
	OpGreaterThanOrEqual Operator = "greater_than_or_equal"
	OpLessThanOrEqual    Operator = "less_than_or_equal"
	OpStartsWith         Operator = "starts_with"
	OpEndsWith           Operator = "ends_with"
	OpIn                 Operator = "in"
	OpTypeIs             Operator = "type_is"
)

// Expr is one operator applied to an optional expected value.
type Expr struct {
	Op       Operator
	Value    any
	HasValue bool
}

func with(op Operator, value any) Expr {
	return Expr{Op: op, Value: value, HasValue: true}
}

func Equals(value any) Expr         { return with(OpEquals, value) }
func NotEquals(value any) Expr      { return with(OpNotEquals, value) }
func Contains(s string) Expr        { return with(OpContains, s) }
func NotContains(s string) Expr     { return with(OpNotContains, s) }
func Matches(pattern string) Expr   { return with(OpRegex, pattern) }
func HasLength(n int) Expr          { return with(OpLength, n) }
func GreaterThan(value any) Expr    { return with(OpGreaterThan, value) }
func LessThan(value any) Expr       { return with(OpLessThan, value) }
func AtLeast(value any) Expr        { return with(OpGreaterThanOrEqual, value) }
func AtMost(value any) Expr         { return with(OpLessThanOrEqual, value) }
func StartsWith(prefix string) Expr { return with(OpStartsWith, prefix) }
func EndsWith(suffix string) Expr   { return with(OpEndsWith, suffix) }
func In(values ...any) Expr         { return with(OpIn, values) }
func TypeIs(jsonType string) Expr   { return with(OpTypeIs, jsonType) }

// Exists holds for non-nil values that are not empty strings or collections.
func Exists() Expr { return Expr{Op: OpExists} }

// String renders the expression for failure messages, e.g. `greater_than 3`.
func (e Expr) String() string {
	if !e.HasValue {
		return string(e.Op)
	}
	if s, ok := e.Value.(string); ok {
		return fmt.Sprintf("%s %q", e.Op, s)
	}
	return fmt.Sprintf("%s %v", e.Op, e.Value)
}

type operation struct {
	takesValue bool
	eval       func(actual, expected any) (bool, error)
}

var operations = map[Operator]operation{
	OpEquals: {takesValue: true, eval: func(actual, expected any) (bool, error) {
		return equalValues(actual, expected), nil
	}},
	OpNotEquals: {takesValue: true, eval: func(actual, expected any) (bool, error) {
		return !equalValues(actual, expected), nil
	}},
	OpContains:    {takesValue: true, eval: stringOp(OpContains, strings.Contains)},
	OpNotContains: {takesValue: true, eval: stringOp(OpNotContains, func(a, b string) bool { return !strings.Contains(a, b) })},
	OpStartsWith:  {takesValue: true, eval: stringOp(OpStartsWith, strings.HasPrefix)},
	OpEndsWith:    {takesValue: true, eval: stringOp(OpEndsWith, strings.HasSuffix)},
	OpRegex:       {takesValue: true, eval: evaluateRegex},
	OpExists: {eval: func(actual, _ any) (bool, error) {
		return exists(actual), nil
	}},
	OpLength:             {takesValue: true, eval: evaluateLength},
	OpGreaterThan:        {takesValue: true, eval: numericOp(OpGreaterThan, func(a, b float64) bool { return a > b })},
	OpLessThan:           {takesValue: true, eval: numericOp(OpLessThan, func(a, b float64) bool { return a < b })},
	OpGreaterThanOrEqual: {takesValue: true, eval: numericOp(OpGreaterThanOrEqual, func(a, b float64) bool { return a >= b })},
	OpLessThanOrEqual:    {takesValue: true, eval: numericOp(OpLessThanOrEqual, func(a, b float64) bool { return a <= b })},
	OpIn:                 {takesValue: true, eval: evaluateIn},
	OpTypeIs:             {takesValue: true, eval: evaluateTypeIs},
}

var jsonTypes = []string{"array", "object", "string", "number", "boolean", "null"}

// ParseOperator accepts the snake_case operator names.
func ParseOperator(input string) (Operator, error) {
	op := Operator(input)
	if _, ok := operations[op]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupported, input)
	}
	return op, nil
}

// Validate checks the operator is known and the value presence fits it.
func (e Expr) Validate() error {
	op, ok := operations[e.Op]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupported, e.Op)
	}

	switch {
	case op.takesValue && !e.HasValue:
		return fmt.Errorf("%w: operation %q requires a value", ErrInvalidInput, e.Op)
	case !op.takesValue && e.HasValue:
		return fmt.Errorf("%w: operation %q does not accept a value", ErrInvalidInput, e.Op)
	}

	if e.Op == OpTypeIs {
		if _, err := parseJSONType(e.Value); err != nil {
			return err
		}
	}
	return nil
}

// Evaluate applies e to actual. Type errors (a regex on a number, say) are
// returned as errors wrapping ErrInvalidInput, not as false.
func (e Expr) Evaluate(actual any) (bool, error) {
	if err := e.Validate(); err != nil {
		return false, err
	}
	return operations[e.Op].eval(actual, e.Value)
}

func equalValues(actual, expected any) bool {
	an, aIsJSON := actual.(json.Number)
	en, eIsJSON := expected.(json.Number)
	if aIsJSON && eIsJSON {
		return number.Equal(an, en)
	}

	if reflect.DeepEqual(actual, expected) {
		return true
	}

	af, aIsNumber := number.ToFloat64(actual)
	ef, eIsNumber := number.ToFloat64(expected)
	return aIsNumber && eIsNumber && af == ef
}

func stringOp(op Operator, compare func(actual, expected string) bool) func(actual, expected any) (bool, error) {
	return func(actual, expected any) (bool, error) {
		a, err := requireString(op, "actual", actual)
		if err != nil {
			return false, err
		}
		e, err := requireString(op, "expected", expected)
		if err != nil {
			return false, err
		}
		return compare(a, e), nil
	}
}

func numericOp(op Operator, compare func(actual, expected float64) bool) func(actual, expected any) (bool, error) {
	return func(actual, expected any) (bool, error) {
		a, aOK := number.ToFloat64(actual)
		e, eOK := number.ToFloat64(expected)
		if !aOK || !eOK {
			return false, fmt.Errorf("%w: %q requires numeric values, got %T and %T", ErrInvalidInput, op, actual, expected)
		}
		return compare(a, e), nil
	}
}

func requireString(op Operator, side string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q requires string %s value, got %T", ErrInvalidInput, op, side, value)
	}
	return s, nil
}

var regexCache sync.Map // pattern -> *regexp.Regexp

func compileRegex(pattern string) (*regexp.Regexp, error) {
	if cached, ok := regexCache.Load(pattern); ok {
		return cached.(*regexp.Regexp), nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid regex %q: %v", ErrInvalidInput, pattern, err)
	}
	regexCache.Store(pattern, re)
	return re, nil
}

func evaluateRegex(actual, expected any) (bool, error) {
	s, err := requireString(OpRegex, "actual", actual)
	if err != nil {
		return false, err
	}
	pattern, err := requireString(OpRegex, "expected", expected)
	if err != nil {
		return false, err
	}

	re, err := compileRegex(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

func exists(actual any) bool {
	if actual == nil {
		return false
	}

	v := reflect.ValueOf(actual)
	switch v.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return v.Len() > 0
	case reflect.Ptr, reflect.Interface:
		return !v.IsNil()
	default:
		return true
	}
}

func evaluateLength(actual, expected any) (bool, error) {
	want, err := number.ToStrictInt(expected)
	if err != nil {
		return false, fmt.Errorf("%w: %q requires integer expected value: %v", ErrInvalidInput, OpLength, err)
	}

	if actual != nil {
		v := reflect.ValueOf(actual)
		switch v.Kind() {
		case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
			return v.Len() == want, nil
		}
	}
	return false, fmt.Errorf("%w: %q requires string/slice/map/array actual value, got %T", ErrInvalidInput, OpLength, actual)
}

func evaluateIn(actual, expected any) (bool, error) {
	v := reflect.ValueOf(expected)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return false, fmt.Errorf("%w: %q requires array/slice expected value, got %T", ErrInvalidInput, OpIn, expected)
	}

	for i := range v.Len() {
		if equalValues(actual, v.Index(i).Interface()) {
			return true, nil
		}
	}
	return false, nil
}

func evaluateTypeIs(actual, expected any) (bool, error) {
	want, err := parseJSONType(expected)
	if err != nil {
		return false, err
	}
	return jsonTypeOf(actual) == want, nil
}

func parseJSONType(value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q requires string expected value, got %T", ErrInvalidInput, OpTypeIs, value)
	}

	normalized := strings.ToLower(strings.TrimSpace(s))
	for _, t := range jsonTypes {
		if t == normalized {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q requires one of %v, got %q", ErrInvalidInput, OpTypeIs, jsonTypes, s)
}

func jsonTypeOf(value any) string {
	if value == nil {
		return "null"
	}
	if _, ok := value.(json.Number); ok {
		return "number"
	}

	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return "null"
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Array, reflect.Slice:
		return "array"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	default:
		return "object"
	}
}
