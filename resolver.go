package weave

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrUnknownReference  = errors.New("no capability registered under this reference")
	ErrInvalidCapability = errors.New("registration cannot yield a usable capability")
)

// Factory types produce a ready-to-use capability each time a reference is
// resolved. Stateless capabilities may return a shared value; stateful ones
// should return a fresh instance.
type (
	EncoderFactory   func() Encoder
	DecoderFactory   func() Decoder
	ValidatorFactory func() Validator
)

// Resolver maps textual capability references to factories. A TagRegistry
// resolves every encoder, decoder, and validator reference in its
// configuration through exactly one Resolver.
//
// Resolution is deterministic: the same reference always hits the same
// factory, and a reference either resolves or fails loudly. A factory that
// produces nil is reported as ErrInvalidCapability, never treated as a
// silent no-op.
//
// Hosts usually register at startup, but the tables tolerate concurrent
// registration and resolution. The zero value is not usable; call
// NewResolver or use the package default.
type Resolver struct {
	mu         sync.RWMutex
	encoders   map[string]EncoderFactory
	decoders   map[string]DecoderFactory
	validators map[string]ValidatorFactory
}

// NewResolver returns an empty Resolver, for hosts that want isolation from
// the package default and its built-in capability set.
func NewResolver() *Resolver {
	return &Resolver{
		encoders:   make(map[string]EncoderFactory),
		decoders:   make(map[string]DecoderFactory),
		validators: make(map[string]ValidatorFactory),
	}
}

// RegisterEncoder binds ref to an encoder factory. Registering an existing
// reference replaces it.
func (r *Resolver) RegisterEncoder(ref string, factory EncoderFactory) error {
	if err := checkRegistration(ref, factory == nil); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.encoders[ref] = factory
	return nil
}

// RegisterDecoder binds ref to a decoder factory. Registering an existing
// reference replaces it.
func (r *Resolver) RegisterDecoder(ref string, factory DecoderFactory) error {
	if err := checkRegistration(ref, factory == nil); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decoders[ref] = factory
	return nil
}

// RegisterValidator binds ref to a validator factory. Registering an
// existing reference replaces it.
func (r *Resolver) RegisterValidator(ref string, factory ValidatorFactory) error {
	if err := checkRegistration(ref, factory == nil); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.validators[ref] = factory
	return nil
}

func checkRegistration(ref string, nilFactory bool) error {
	if ref == "" {
		return fmt.Errorf("%w: empty reference", ErrInvalidCapability)
	}
	if nilFactory {
		return fmt.Errorf("%w: nil factory for reference %q", ErrInvalidCapability, ref)
	}
	return nil
}

// ResolveEncoder produces the encoder registered under ref.
func (r *Resolver) ResolveEncoder(ref string) (Encoder, error) {
	r.mu.RLock()
	factory, ok := r.encoders[ref]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: encoder %q", ErrUnknownReference, ref)
	}
	enc := factory()
	if enc == nil {
		return nil, fmt.Errorf("%w: encoder factory %q returned nil", ErrInvalidCapability, ref)
	}
	return enc, nil
}

// ResolveDecoder produces the decoder registered under ref.
func (r *Resolver) ResolveDecoder(ref string) (Decoder, error) {
	r.mu.RLock()
	factory, ok := r.decoders[ref]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: decoder %q", ErrUnknownReference, ref)
	}
	dec := factory()
	if dec == nil {
		return nil, fmt.Errorf("%w: decoder factory %q returned nil", ErrInvalidCapability, ref)
	}
	return dec, nil
}

// ResolveValidator produces the validator registered under ref.
func (r *Resolver) ResolveValidator(ref string) (Validator, error) {
	r.mu.RLock()
	factory, ok := r.validators[ref]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: validator %q", ErrUnknownReference, ref)
	}
	v := factory()
	if v == nil {
		return nil, fmt.Errorf("%w: validator factory %q returned nil", ErrInvalidCapability, ref)
	}
	return v, nil
}

///////////////////////////////////////////////////////////////////////////////
// Global Singleton and Package Functions
///////////////////////////////////////////////////////////////////////////////

var _gResolver *Resolver = nil

func init() {
	_gResolver = NewResolver()
	registerBuiltins(_gResolver)
}

// registerBuiltins installs the built-in validators and the BBCode pair
// codecs onto r. None of these registrations can fail: every reference is
// a non-empty constant and every factory returns a value.
func registerBuiltins(r *Resolver) {
	_ = r.RegisterValidator(NoopValidatorRef, func() Validator { return NoopValidator{} })
	_ = r.RegisterValidator(BalancedValidatorRef, func() Validator { return BalancedValidator{} })
	_ = r.RegisterValidator(SelfNestingValidatorRef, func() Validator { return SelfNestingValidator{} })

	for _, p := range builtinHTMLPairs {
		p := p
		_ = r.RegisterEncoder(p.encoderRef, func() Encoder {
			return PairEncoder{Open: p.open, Close: p.closing}
		})
		_ = r.RegisterDecoder(p.decoderRef, func() Decoder {
			return PairDecoder{Open: p.open, Close: p.closing}
		})
	}

	// Markdown delimiters are symmetric, so a blind pair decoder cannot
	// tell an opener from a closer. Encoder only.
	for _, p := range builtinMarkdownPairs {
		p := p
		_ = r.RegisterEncoder(p.encoderRef, func() Encoder {
			return PairEncoder{Open: p.open, Close: p.closing}
		})
	}
}

// DefaultResolver returns the package-level resolver carrying the built-in
// capability set. Registries built without an explicit Resolver use it.
func DefaultResolver() *Resolver { return _gResolver }

// RegisterEncoder binds ref to an encoder factory on the default resolver.
func RegisterEncoder(ref string, factory EncoderFactory) error {
	return _gResolver.RegisterEncoder(ref, factory)
}

// RegisterDecoder binds ref to a decoder factory on the default resolver.
func RegisterDecoder(ref string, factory DecoderFactory) error {
	return _gResolver.RegisterDecoder(ref, factory)
}

// RegisterValidator binds ref to a validator factory on the default resolver.
func RegisterValidator(ref string, factory ValidatorFactory) error {
	return _gResolver.RegisterValidator(ref, factory)
}

// ResolveEncoder produces the encoder registered under ref on the default
// resolver.
func ResolveEncoder(ref string) (Encoder, error) {
	return _gResolver.ResolveEncoder(ref)
}

// ResolveDecoder produces the decoder registered under ref on the default
// resolver.
func ResolveDecoder(ref string) (Decoder, error) {
	return _gResolver.ResolveDecoder(ref)
}

// ResolveValidator produces the validator registered under ref on the
// default resolver.
func ResolveValidator(ref string) (Validator, error) {
	return _gResolver.ResolveValidator(ref)
}
