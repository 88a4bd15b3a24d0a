package value

import (
	"sort"
	"strings"
)

// Dictionary maps string keys to values. The zero value is not usable,
// use NewDictionary.
type Dictionary struct {
	Fields map[string]Value
}

func NewDictionary() *Dictionary {
	return &Dictionary{
		Fields: make(map[string]Value),
	}
}

func (*Dictionary) Type() Type { return TypeDictionary }

// Set stores value under key. Setting a key to nil or Nil removes it.
func (d *Dictionary) Set(key string, value Value) {
	if IsNil(value) {
		delete(d.Fields, key)
	} else {
		d.Fields[key] = value
	}
}

func (d *Dictionary) Get(key string) (Value, bool) {
	if d == nil {
		return nil, false
	}
	val, ok := d.Fields[key]
	return val, ok
}

func (d *Dictionary) Contains(key string) bool {
	_, ok := d.Get(key)
	return ok
}

func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Fields)
}

// Keys returns all keys in ascending order.
func (d *Dictionary) Keys() []string {
	if d == nil {
		return nil
	}
	keys := make([]string, 0, len(d.Fields))
	for k := range d.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (d *Dictionary) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range d.Keys() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k)
		sb.WriteString(" = ")
		sb.WriteString(d.Fields[k].String())
	}
	sb.WriteByte('}')
	return sb.String()
}
