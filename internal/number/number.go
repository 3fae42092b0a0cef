// Package number normalises the numeric shapes found in decoded JSON and in
// caller-supplied expectations.
package number

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
)

// ToFloat64 converts Go numeric kinds and json.Number to float64.
func ToFloat64(value any) (float64, bool) {
	if n, ok := value.(json.Number); ok {
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return parsed, true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}

// ToStrictInt accepts integer kinds only; floats are rejected even when whole.
func ToStrictInt(value any) (int, error) {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(v.Uint()), nil
	default:
		return 0, fmt.Errorf("value %T is not an integer", value)
	}
}

// Equal compares two JSON number literals by exact decimal value, so "1",
// "1.0" and "1e0" are equal while "1.0" and "1.1" are not.
func Equal(a, b json.Number) bool {
	if a == b {
		return true
	}

	x, okX := new(big.Rat).SetString(string(a))
	y, okY := new(big.Rat).SetString(string(b))
	if !okX || !okY {
		return false
	}

	return x.Cmp(y) == 0
}
