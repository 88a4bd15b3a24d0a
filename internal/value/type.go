package value

// Type is the kind of a Value.
type Type uint8

const (
	TypeInvalid Type = iota
	TypeNil
	TypeBoolean
	TypeNumber
	TypeString
	TypeArray
	TypeDictionary
	TypeFunction
)

var typeNames = [...]string{
	TypeInvalid:    "<invalid>",
	TypeNil:        "nil",
	TypeBoolean:    "boolean",
	TypeNumber:     "number",
	TypeString:     "string",
	TypeArray:      "array",
	TypeDictionary: "dictionary",
	TypeFunction:   "function",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return typeNames[TypeInvalid]
}
