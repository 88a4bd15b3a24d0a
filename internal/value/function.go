package value

// Callable is the Go implementation of a Function.
type Callable func(...Value) (Value, error)

type Function struct {
	Name     string
	Callable Callable
}

func NewFunction(name string, callable Callable) *Function {
	return &Function{
		Name:     name,
		Callable: callable,
	}
}

func (*Function) Type() Type { return TypeFunction }

func (f *Function) String() string {
	return "function " + f.Name
}

// Call invokes the function with the given arguments. A nil result
// is returned as Nil.
func (f *Function) Call(args ...Value) (Value, error) {
	result, err := f.Callable(args...)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return Nil, nil
	}
	return result, nil
}
