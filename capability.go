package weave

// The three transformation capabilities a tag can be bound to. Each is a
// single-method interface so that stateful implementations and bare
// functions are interchangeable; the Func adapters wrap the latter.

// Encoder rewrites every occurrence of a tag in content into its target
// representation, returning the transformed string.
type Encoder interface {
	Encode(content string, tag Tag) (string, error)
}

// EncoderFunc adapts a plain function to the Encoder interface.
type EncoderFunc func(content string, tag Tag) (string, error)

func (f EncoderFunc) Encode(content string, tag Tag) (string, error) {
	return f(content, tag)
}

// Decoder rewrites a tag's target representation in content back into the
// source dialect, returning the transformed string.
type Decoder interface {
	Decode(content string, tag Tag) (string, error)
}

// DecoderFunc adapts a plain function to the Decoder interface.
type DecoderFunc func(content string, tag Tag) (string, error)

func (f DecoderFunc) Decode(content string, tag Tag) (string, error) {
	return f(content, tag)
}

// Validator inspects content against one tag's rules without transforming
// it. A nil return means the content passed.
type Validator interface {
	Validate(content string, tag Tag) error
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc func(content string, tag Tag) error

func (f ValidatorFunc) Validate(content string, tag Tag) error {
	return f(content, tag)
}
