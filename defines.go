package weave

// constants for target formats covered by the built-in codec set
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// constants for built-in validator references
const (
	NoopValidatorRef        = "noop-validator"
	BalancedValidatorRef    = "balanced-validator"
	SelfNestingValidatorRef = "self-nesting-validator"
)

// constants for built-in BBCode encoder and decoder references
const (
	BBCodeHTMLBoldEncoderRef      = "bbcode-html-bold-encoder"
	BBCodeHTMLBoldDecoderRef      = "bbcode-html-bold-decoder"
	BBCodeHTMLItalicEncoderRef    = "bbcode-html-italic-encoder"
	BBCodeHTMLItalicDecoderRef    = "bbcode-html-italic-decoder"
	BBCodeHTMLUnderlineEncoderRef = "bbcode-html-underline-encoder"
	BBCodeHTMLUnderlineDecoderRef = "bbcode-html-underline-decoder"
	BBCodeHTMLStrikeEncoderRef    = "bbcode-html-strike-encoder"
	BBCodeHTMLStrikeDecoderRef    = "bbcode-html-strike-decoder"

	BBCodeMarkdownBoldEncoderRef   = "bbcode-markdown-bold-encoder"
	BBCodeMarkdownItalicEncoderRef = "bbcode-markdown-italic-encoder"
	BBCodeMarkdownStrikeEncoderRef = "bbcode-markdown-strike-encoder"
)
