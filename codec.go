package weave

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	ErrNilRegistry = errors.New("codec requires a tag registry")
)

// CodecOpts configures NewCodec.
type CodecOpts struct {
	// Registry supplies the tags, validators, and bindings. Required.
	Registry *TagRegistry

	// Logger receives debug events for each validation and rewrite pass.
	// Nil disables logging.
	Logger *zap.Logger
}

// Codec is the transcoding entry point. It holds a reference to one
// registry (it does not own or mutate it) and applies every registered tag
// to whole template strings: Validate checks them, Encode rewrites them
// toward a target format, Decode rewrites them back.
//
// All three operations are all-or-nothing: any failure aborts immediately
// and no partially transformed output is ever returned alongside an error.
type Codec struct {
	registry *TagRegistry
	logger   *zap.Logger
}

// NewCodec builds a Codec over a registry.
func NewCodec(opts CodecOpts) (*Codec, error) {
	if opts.Registry == nil {
		return nil, ErrNilRegistry
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Codec{registry: opts.Registry, logger: logger}, nil
}

// Validate runs every registered tag's validator against the full template,
// in registration order. The first failure aborts the scan and is returned
// as a *TemplateValidationError naming the tag; remaining tags are not
// validated. Validators always see the complete original template, never a
// decomposed region of it.
func (c *Codec) Validate(template string) error {
	for _, tv := range c.registry.ListValidators() {
		c.logger.Debug("validating", zap.String("tag", tv.Tag.Start()))
		if err := tv.Validator.Validate(template, tv.Tag); err != nil {
			var tve *TemplateValidationError
			if errors.As(err, &tve) {
				return err
			}
			return &TemplateValidationError{Tag: tv.Tag, Err: err}
		}
	}
	return nil
}

// Encode validates the template and then rewrites it for the target format.
//
// Each (tag, codec) pair bound to format runs in registration order, and
// each encoder receives the cumulative output of the encoders before it,
// not the original template. A tag without a binding for format contributes
// no rewrite; if no tag is bound to format at all, the validated template
// is returned unchanged.
func (c *Codec) Encode(template string, format string) (string, error) {
	if err := c.Validate(template); err != nil {
		return "", err
	}

	out := template
	for _, tb := range c.registry.ListCodecs(format) {
		encoded, err := tb.Codec.Encode(out, tb.Tag)
		if err != nil {
			return "", fmt.Errorf("encoding tag %q for format %q: %w", tb.Tag.Start(), format, err)
		}
		c.logger.Debug("encoded",
			zap.String("tag", tb.Tag.Start()),
			zap.String("format", format),
		)
		out = encoded
	}
	return out, nil
}

// Decode rewrites a template back from the target format, threading it
// through each bound codec's decoder in registration order. A binding
// without a decoder fails the whole operation with ErrDecoderNotProvided.
//
// No validation runs before decoding: the input is target markup, not the
// source dialect the validators understand.
func (c *Codec) Decode(template string, format string) (string, error) {
	out := template
	for _, tb := range c.registry.ListCodecs(format) {
		decoded, err := tb.Codec.Decode(out, tb.Tag)
		if err != nil {
			return "", fmt.Errorf("decoding tag %q for format %q: %w", tb.Tag.Start(), format, err)
		}
		c.logger.Debug("decoded",
			zap.String("tag", tb.Tag.Start()),
			zap.String("format", format),
		)
		out = decoded
	}
	return out, nil
}

// Registry returns the registry this codec reads from.
func (c *Codec) Registry() *TagRegistry { return c.registry }
