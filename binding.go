package weave

import (
	"errors"
	"fmt"
)

var (
	ErrDecoderNotProvided = errors.New("no decoder provided for this binding")
)

// TagCodec binds the transformation pair for one (tag, format) combination:
// the encoder that rewrites the tag into the target format and, optionally,
// the decoder that rewrites it back. A TagCodec with a nil Decoder can only
// encode; decode attempts on it fail with ErrDecoderNotProvided.
type TagCodec struct {
	Encoder Encoder
	Decoder Decoder
}

// Encode rewrites content toward the binding's target format.
func (tc TagCodec) Encode(content string, tag Tag) (string, error) {
	if tc.Encoder == nil {
		return "", fmt.Errorf("%w: binding for tag %q has no encoder", ErrInvalidCapability, tag.Start())
	}
	return tc.Encoder.Encode(content, tag)
}

// Decode rewrites content back from the binding's target format.
func (tc TagCodec) Decode(content string, tag Tag) (string, error) {
	if tc.Decoder == nil {
		return "", fmt.Errorf("%w: tag %q", ErrDecoderNotProvided, tag.Start())
	}
	return tc.Decoder.Decode(content, tag)
}

// CanDecode reports whether a decoder was configured for this binding.
func (tc TagCodec) CanDecode() bool { return tc.Decoder != nil }
