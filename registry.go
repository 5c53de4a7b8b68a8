package weave

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	ErrDuplicateTag = errors.New("a different tag with this start delimiter is already registered")
)

// TagValidator pairs a registered tag with its combined validator.
type TagValidator struct {
	Tag       Tag
	Validator Validator
}

// TagCodecBinding pairs a registered tag with its codec for one format.
type TagCodecBinding struct {
	Tag   Tag
	Codec TagCodec
}

// registryEntry is one registered tag with every reference resolved.
type registryEntry struct {
	tag       Tag
	validator Validator
	codecs    map[string]TagCodec
}

// TagRegistryOpts configures NewTagRegistry.
type TagRegistryOpts struct {
	// Config lists the tags to register, in order.
	Config Config

	// Resolver resolves the configuration's capability references.
	// Nil selects the package default resolver and its built-in set.
	Resolver *Resolver

	// Logger receives debug events for registrations. Nil disables logging.
	Logger *zap.Logger
}

// TagRegistry owns every registered tag together with its resolved
// validator and per-format codecs. Entries keep registration order, and
// every listing walks them in that order; iteration never depends on map
// ordering.
//
// Construction resolves all references up front, so a registry that exists
// is fully usable. It is read-only for the Codec that holds it; concurrent
// reads are safe as long as the host has stopped registering.
type TagRegistry struct {
	resolver *Resolver
	logger   *zap.Logger
	entries  []registryEntry
	index    map[string]int // start delimiter -> position in entries
}

// NewTagRegistry builds a registry from a configuration, resolving every
// validator, encoder, and decoder reference through the resolver. Any
// invalid tag, unknown reference, or delimiter conflict fails the whole
// construction; no partially built registry is returned.
func NewTagRegistry(opts TagRegistryOpts) (*TagRegistry, error) {
	resolver := opts.Resolver
	if resolver == nil {
		resolver = _gResolver
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	reg := &TagRegistry{
		resolver: resolver,
		logger:   logger,
		index:    make(map[string]int),
	}

	for _, tc := range opts.Config.Tags {
		if err := reg.Register(tc); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

// Register resolves one tag configuration and inserts it.
//
// Registering a tag whose start and end both match an existing entry
// replaces that entry in place, keeping its position. A start delimiter
// already registered with a different end is rejected with ErrDuplicateTag.
func (reg *TagRegistry) Register(cfg TagConfig) error {
	tag, err := NewTag(cfg)
	if err != nil {
		return err
	}

	validators := make([]Validator, 0, len(cfg.Validators))
	for _, ref := range cfg.Validators {
		v, err := reg.resolver.ResolveValidator(ref)
		if err != nil {
			return fmt.Errorf("tag %q: %w", tag.Start(), err)
		}
		validators = append(validators, v)
	}

	codecs := make(map[string]TagCodec, len(cfg.Codecs))
	for format, cc := range cfg.Codecs {
		codec, err := reg.resolveCodec(cc)
		if err != nil {
			return fmt.Errorf("tag %q: format %q: %w", tag.Start(), format, err)
		}
		codecs[format] = codec
	}

	entry := registryEntry{
		tag:       tag,
		validator: CombineValidators(validators...),
		codecs:    codecs,
	}

	if pos, exists := reg.index[tag.Start()]; exists {
		if reg.entries[pos].tag.End() != tag.End() {
			return fmt.Errorf(
				"%w: start %q already maps to end %q",
				ErrDuplicateTag, tag.Start(), reg.entries[pos].tag.End(),
			)
		}
		reg.entries[pos] = entry
		reg.logger.Debug("tag replaced",
			zap.String("start", tag.Start()),
			zap.Int("position", pos),
		)
		return nil
	}

	reg.index[tag.Start()] = len(reg.entries)
	reg.entries = append(reg.entries, entry)
	reg.logger.Debug("tag registered",
		zap.String("start", tag.Start()),
		zap.Int("formats", len(codecs)),
		zap.Int("validators", len(cfg.Validators)),
	)
	return nil
}

func (reg *TagRegistry) resolveCodec(cc CodecConfig) (TagCodec, error) {
	if cc.Encoder == "" {
		return TagCodec{}, fmt.Errorf("%w: an encoder reference is required", ErrInvalidCapability)
	}
	enc, err := reg.resolver.ResolveEncoder(cc.Encoder)
	if err != nil {
		return TagCodec{}, err
	}

	codec := TagCodec{Encoder: enc}
	if cc.Decoder != "" {
		dec, err := reg.resolver.ResolveDecoder(cc.Decoder)
		if err != nil {
			return TagCodec{}, err
		}
		codec.Decoder = dec
	}
	return codec, nil
}

// ListValidators returns one (tag, validator) pair per registered tag, in
// registration order. Tags configured without validators carry a
// NoopValidator.
func (reg *TagRegistry) ListValidators() []TagValidator {
	out := make([]TagValidator, 0, len(reg.entries))
	for _, e := range reg.entries {
		out = append(out, TagValidator{Tag: e.tag, Validator: e.validator})
	}
	return out
}

// ListCodecs returns the (tag, codec) pairs bound to format, in
// registration order. Tags without a binding for format are silently
// omitted; an unknown format simply yields an empty list.
func (reg *TagRegistry) ListCodecs(format string) []TagCodecBinding {
	out := make([]TagCodecBinding, 0, len(reg.entries))
	for _, e := range reg.entries {
		if codec, exists := e.codecs[format]; exists {
			out = append(out, TagCodecBinding{Tag: e.tag, Codec: codec})
		}
	}
	return out
}

// Tags returns every registered tag, in registration order.
func (reg *TagRegistry) Tags() []Tag {
	out := make([]Tag, 0, len(reg.entries))
	for _, e := range reg.entries {
		out = append(out, e.tag)
	}
	return out
}

// Len returns the number of registered tags.
func (reg *TagRegistry) Len() int { return len(reg.entries) }
