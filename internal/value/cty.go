package value

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// FromCty converts a cty.Value, as decoded from HCL, into a Value.
// Null and unknown values become Nil.
func FromCty(v cty.Value) (Value, error) {
	if v.IsNull() || !v.IsKnown() {
		return Nil, nil
	}

	ty := v.Type()

	switch {
	case ty == cty.String:
		return String(v.AsString()), nil

	case ty == cty.Number:
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("convert number: %w", err)
		}
		return Number(f), nil

	case ty == cty.Bool:
		return Boolean(v.True()), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		arr := make(Array, 0, v.LengthInt())
		it := v.ElementIterator()
		for it.Next() {
			_, elem := it.Element()
			converted, err := FromCty(elem)
			if err != nil {
				return nil, err
			}
			arr = append(arr, converted)
		}
		return arr, nil

	case ty.IsObjectType() || ty.IsMapType():
		dict := NewDictionary()
		it := v.ElementIterator()
		for it.Next() {
			key, elem := it.Element()
			converted, err := FromCty(elem)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key.AsString(), err)
			}
			dict.Set(key.AsString(), converted)
		}
		return dict, nil
	}

	return nil, fmt.Errorf("unsupported cty type %s", ty.FriendlyName())
}
