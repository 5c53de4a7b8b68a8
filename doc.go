// Package weave is a declarative template-markup transcoding library.
//
// It recognizes tagged regions in a template string, such as BBCode
// `[b]...[/b]`, and rewrites them into an equivalent representation in a
// target format, such as HTML `<strong>...</strong>`, with an optional
// inverse (decode) direction. Which tags exist, how each one is validated,
// and how it is rewritten per format is driven entirely by configuration
// rather than hard-coded per dialect.
//
// The package is built from a small set of pieces:
//   - Tag: an immutable description of one markup construct, its start and
//     end delimiters, and its nesting rules.
//   - Encoder, Decoder, Validator: the three capability contracts a tag can
//     be bound to. Stateful implementations and bare functions are
//     interchangeable through the EncoderFunc, DecoderFunc, and
//     ValidatorFunc adapters.
//   - Resolver: a registration table mapping the textual references used in
//     configuration ("bbcode-html-bold-encoder") to capability factories.
//     A package-level default carries the built-in set; hosts register
//     their own capabilities on it, or on an isolated Resolver.
//   - TagRegistry: the resolved tag set. Built once from a Config, it owns
//     every Tag together with its combined validator and its per-format
//     TagCodec bindings, in registration order.
//   - Codec: the entry point. Validate checks a template against every
//     registered tag's rules; Encode validates and then threads the
//     template through every encoder bound to the target format; Decode
//     runs the inverse direction.
//
// Configurations load from JSON (ConfigFromJSON), YAML (ConfigFromYAML),
// or either (ParseConfig), and can equally be built in code; BBCodeConfig
// returns a ready-made tag set for the classic BBCode formatting tags.
//
// A typical round trip:
//
//	registry, err := weave.NewTagRegistry(weave.TagRegistryOpts{
//		Config: weave.BBCodeConfig(),
//	})
//	if err != nil { ... }
//	codec, err := weave.NewCodec(weave.CodecOpts{Registry: registry})
//	if err != nil { ... }
//
//	html, err := codec.Encode("[b]Hello, World![/b]", weave.FormatHTML)
//	// html == "<strong>Hello, World!</strong>"
//	back, err := codec.Decode(html, weave.FormatHTML)
//	// back == "[b]Hello, World![/b]"
//
// Encoding is whole-string and sequential: each tag's encoder is an
// independent, order-composable rewrite over the full template, receiving
// the cumulative output of the encoders before it. There is no tokenizer
// and no parse tree; correctness rests on every open delimiter having a
// matching close delimiter, which the built-in BalancedValidator enforces,
// and on encoders not colliding on overlapping delimiter text.
//
// All failures are explicit typed errors that surface immediately:
// configuration problems fail registry construction, validation problems
// fail the whole operation before any rewriting, and a missing decoder
// fails Decode with ErrDecoderNotProvided. An operation either returns a
// complete result or an error, never a partially transformed string.
package weave

/**
PLANNING:
- Attribute-carrying tags, e.g. [url=https://example.com]...[/url], need a
  pattern-based encoder alongside the plain pair substitution.
- A cross-tag structural validator that consults AllowsChildren, once
  validators can see the whole registry instead of a single tag.
*/
