package base

import (
	"fmt"

	"github.com/tsatke/sentinel/internal/value"
)

type method struct {
	name string
	// args is the minimum amount of arguments, not counting the receiver.
	args int
	fn   func(s String, args []value.Value) (value.Value, error)
}

var methods = []method{
	{"len", 0, func(s String, _ []value.Value) (value.Value, error) {
		return value.NewNumber(float64(s.Len())), nil
	}},
	{"contains", 1, func(s String, args []value.Value) (value.Value, error) {
		return value.Boolean(s.Contains(FromValue(args[0]))), nil
	}},
	{"find", 1, func(s String, args []value.Value) (value.Value, error) {
		pos, err := intArg(args, 1, 0)
		if err != nil {
			return nil, err
		}
		return value.NewNumber(float64(s.Find(FromValue(args[0]), pos))), nil
	}},
	{"substr", 1, func(s String, args []value.Value) (value.Value, error) {
		first, err := positionArg(s, args, 0)
		if err != nil {
			return nil, err
		}
		length, err := intArg(args, 1, NPos)
		if err != nil {
			return nil, err
		}
		return value.NewString(s.SubStr(first, length).String()), nil
	}},
	{"split", 1, func(s String, args []value.Value) (value.Value, error) {
		var tokens value.Array
		for tok := range s.SplitSeq(FromValue(args[0])) {
			tokens = append(tokens, value.NewString(tok.String()))
		}
		return tokens, nil
	}},
	{"trim", 0, func(s String, _ []value.Value) (value.Value, error) {
		return value.NewString(s.Trim().String()), nil
	}},
	{"to_lower", 0, func(s String, _ []value.Value) (value.Value, error) {
		return value.NewString(s.ToLower().String()), nil
	}},
	{"to_upper", 0, func(s String, _ []value.Value) (value.Value, error) {
		return value.NewString(s.ToUpper().String()), nil
	}},
	{"reverse", 0, func(s String, _ []value.Value) (value.Value, error) {
		return value.NewString(s.Reverse().String()), nil
	}},
	{"replace", 3, func(s String, args []value.Value) (value.Value, error) {
		first, err := positionArg(s, args, 0)
		if err != nil {
			return nil, err
		}
		count, err := intArg(args, 1, 0)
		if err != nil {
			return nil, err
		}
		s.Replace(first, count, FromValue(args[2]))
		return value.NewString(s.String()), nil
	}},
}

// Prototype returns the methods of String as script functions, keyed by
// their script name. Each function takes the string it operates on as its
// first argument, followed by the arguments of the method.
//
//	find, _ := Prototype().Get("find")
//	find.(*value.Function).Call(value.NewString("a,b"), value.NewString(",")) // 1
func Prototype() *value.Dictionary {
	proto := value.NewDictionary()
	for _, m := range methods {
		proto.Set(m.name, value.NewFunction(m.name, func(args ...value.Value) (value.Value, error) {
			if len(args) == 0 {
				return nil, fmt.Errorf("%s: missing string argument", m.name)
			}
			return m.call(FromValue(args[0]), args[1:])
		}))
	}
	return proto
}

// Methods returns the prototype functions bound to s, so they don't take
// the string as an argument. Functions without further arguments can be
// used as macros, for example $host.vars.fqdn.to_lower$.
func (s String) Methods() *value.Dictionary {
	bound := value.NewDictionary()
	for _, m := range methods {
		bound.Set(m.name, value.NewFunction(m.name, func(args ...value.Value) (value.Value, error) {
			return m.call(s, args)
		}))
	}
	return bound
}

func (m method) call(s String, args []value.Value) (value.Value, error) {
	if len(args) < m.args {
		return nil, fmt.Errorf("%s: expected %d arguments, got %d", m.name, m.args, len(args))
	}
	v, err := m.fn(s, args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", m.name, err)
	}
	return v, nil
}

// intArg returns args[i] as an int, or def if there is no such argument.
func intArg(args []value.Value, i, def int) (int, error) {
	if i >= len(args) {
		return def, nil
	}
	f, err := value.ToNumber(args[i])
	if err != nil {
		return 0, fmt.Errorf("argument %d: %w", i+1, err)
	}
	return int(f), nil
}

// positionArg is like intArg, but requires a position within s.
func positionArg(s String, args []value.Value, i int) (int, error) {
	pos, err := intArg(args, i, 0)
	if err != nil {
		return 0, err
	}
	if pos < 0 || pos > s.Len() {
		return 0, fmt.Errorf("position %d out of range [0, %d]", pos, s.Len())
	}
	return pos, nil
}
