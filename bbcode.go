package weave

import (
	"fmt"
	"strings"
)

// PairEncoder rewrites a tag's delimiters into a fixed open/close pair,
// globally across the content. The whole built-in encoder family is this
// one type with different pairs: BBCode bold to HTML is
// PairEncoder{Open: "<strong>", Close: "</strong>"}.
//
// It is a pure whole-string substitution and needs an end delimiter:
// applying it to a self-closing tag fails with ErrNotApplicable.
type PairEncoder struct {
	Open  string
	Close string
}

func (p PairEncoder) Encode(content string, tag Tag) (string, error) {
	if tag.End() == "" {
		return "", fmt.Errorf(
			"%w: pair encoder needs an end delimiter, tag %q is self-closing",
			ErrNotApplicable, tag.Start(),
		)
	}
	content = strings.ReplaceAll(content, tag.Start(), p.Open)
	return strings.ReplaceAll(content, tag.End(), p.Close), nil
}

// PairDecoder inverts a PairEncoder with the same pair: every occurrence of
// Open becomes the tag's start delimiter and every occurrence of Close
// becomes its end delimiter. Same applicability rule as the encoder.
type PairDecoder struct {
	Open  string
	Close string
}

func (p PairDecoder) Decode(content string, tag Tag) (string, error) {
	if tag.End() == "" {
		return "", fmt.Errorf(
			"%w: pair decoder needs an end delimiter, tag %q is self-closing",
			ErrNotApplicable, tag.Start(),
		)
	}
	content = strings.ReplaceAll(content, p.Open, tag.Start())
	return strings.ReplaceAll(content, p.Close, tag.End()), nil
}

///////////////////////////////////////////////////////////////////////////////
// Built-in BBCode pairs
///////////////////////////////////////////////////////////////////////////////

type builtinPair struct {
	encoderRef string
	decoderRef string
	open       string
	closing    string
}

// builtinHTMLPairs carry both directions: the HTML markup is distinct
// enough to decode blindly.
var builtinHTMLPairs = []builtinPair{
	{BBCodeHTMLBoldEncoderRef, BBCodeHTMLBoldDecoderRef, "<strong>", "</strong>"},
	{BBCodeHTMLItalicEncoderRef, BBCodeHTMLItalicDecoderRef, "<em>", "</em>"},
	{BBCodeHTMLUnderlineEncoderRef, BBCodeHTMLUnderlineDecoderRef, "<u>", "</u>"},
	{BBCodeHTMLStrikeEncoderRef, BBCodeHTMLStrikeDecoderRef, "<del>", "</del>"},
}

// builtinMarkdownPairs are encode-only; see registerBuiltins.
var builtinMarkdownPairs = []builtinPair{
	{encoderRef: BBCodeMarkdownBoldEncoderRef, open: "**", closing: "**"},
	{encoderRef: BBCodeMarkdownItalicEncoderRef, open: "*", closing: "*"},
	{encoderRef: BBCodeMarkdownStrikeEncoderRef, open: "~~", closing: "~~"},
}

// BBCodeConfig returns the canned configuration for the classic BBCode
// formatting tags: bold, italic, underline, and strikethrough. Every tag
// checks balanced closure, binds HTML with both directions, and (underline
// excepted, Markdown has no underline) binds Markdown encode-only.
//
// Feed it to NewTagRegistry as-is, or extend Tags before building.
func BBCodeConfig() Config {
	return Config{
		Tags: []TagConfig{
			{
				Start:       "[b]",
				End:         "[/b]",
				Name:        "bold",
				Description: "Makes the wrapped text bold.",
				Codecs: map[string]CodecConfig{
					FormatHTML: {
						Encoder: BBCodeHTMLBoldEncoderRef,
						Decoder: BBCodeHTMLBoldDecoderRef,
					},
					FormatMarkdown: {
						Encoder: BBCodeMarkdownBoldEncoderRef,
					},
				},
				Validators: []string{BalancedValidatorRef},
			},
			{
				Start:       "[i]",
				End:         "[/i]",
				Name:        "italic",
				Description: "Makes the wrapped text italic.",
				Codecs: map[string]CodecConfig{
					FormatHTML: {
						Encoder: BBCodeHTMLItalicEncoderRef,
						Decoder: BBCodeHTMLItalicDecoderRef,
					},
					FormatMarkdown: {
						Encoder: BBCodeMarkdownItalicEncoderRef,
					},
				},
				Validators: []string{BalancedValidatorRef},
			},
			{
				Start:       "[u]",
				End:         "[/u]",
				Name:        "underline",
				Description: "Underlines the wrapped text.",
				Codecs: map[string]CodecConfig{
					FormatHTML: {
						Encoder: BBCodeHTMLUnderlineEncoderRef,
						Decoder: BBCodeHTMLUnderlineDecoderRef,
					},
				},
				Validators: []string{BalancedValidatorRef},
			},
			{
				Start:       "[s]",
				End:         "[/s]",
				Name:        "strikethrough",
				Description: "Strikes through the wrapped text.",
				Codecs: map[string]CodecConfig{
					FormatHTML: {
						Encoder: BBCodeHTMLStrikeEncoderRef,
						Decoder: BBCodeHTMLStrikeDecoderRef,
					},
					FormatMarkdown: {
						Encoder: BBCodeMarkdownStrikeEncoderRef,
					},
				},
				Validators: []string{BalancedValidatorRef},
			},
		},
	}
}
