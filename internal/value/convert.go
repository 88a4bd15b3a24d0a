package value

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FromNative converts data as produced by YAML or TOML decoders into a Value.
func FromNative(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Nil, nil
	case Value:
		return val, nil
	case bool:
		return Boolean(val), nil
	case int:
		return Number(val), nil
	case int32:
		return Number(val), nil
	case int64:
		return Number(val), nil
	case uint:
		return Number(val), nil
	case uint64:
		return Number(val), nil
	case float32:
		return Number(val), nil
	case float64:
		return Number(val), nil
	case string:
		return String(val), nil
	case time.Time:
		return String(val.Format(time.RFC3339)), nil
	case []any:
		arr := make(Array, len(val))
		for i, elem := range val {
			converted, err := FromNative(elem)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr[i] = converted
		}
		return arr, nil
	case []map[string]any:
		arr := make(Array, len(val))
		for i, elem := range val {
			converted, err := FromNative(elem)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr[i] = converted
		}
		return arr, nil
	case map[string]any:
		dict := NewDictionary()
		for k, elem := range val {
			converted, err := FromNative(elem)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			dict.Set(k, converted)
		}
		return dict, nil
	}
	return nil, fmt.Errorf("unsupported native type %T", v)
}

// ToNumber converts v into a number. Strings are parsed, booleans become
// 0 or 1 and nil becomes 0.
func ToNumber(v Value) (float64, error) {
	if IsNil(v) {
		return 0, nil
	}
	switch v.Type() {
	case TypeNumber:
		return v.(Number).Value(), nil
	case TypeBoolean:
		if v.(Boolean) {
			return 1, nil
		}
		return 0, nil
	case TypeString:
		s := strings.TrimSpace(v.String())
		if s == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("can't convert %q to number: %w", s, err)
		}
		return f, nil
	}
	return 0, fmt.Errorf("can't convert %s to number", v.Type())
}
