package weave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagRegistry(t *testing.T) {
	t.Run("FromBBCodeConfig", func(t *testing.T) {
		reg, err := NewTagRegistry(TagRegistryOpts{Config: BBCodeConfig()})
		require.NoError(t, err)
		require.Equal(t, 4, reg.Len())

		starts := make([]string, 0, reg.Len())
		for _, tag := range reg.Tags() {
			starts = append(starts, tag.Start())
		}
		assert.Equal(t, []string{"[b]", "[i]", "[u]", "[s]"}, starts,
			"tags must keep registration order")
	})

	t.Run("ListValidators_OnePerTag", func(t *testing.T) {
		reg, err := NewTagRegistry(TagRegistryOpts{Config: BBCodeConfig()})
		require.NoError(t, err)

		pairs := reg.ListValidators()
		require.Len(t, pairs, 4)
		for _, pair := range pairs {
			assert.NotNil(t, pair.Validator)
		}
		assert.Equal(t, "[b]", pairs[0].Tag.Start())
		assert.Equal(t, "[s]", pairs[3].Tag.Start())
	})

	t.Run("ListCodecs_FiltersByFormat", func(t *testing.T) {
		reg, err := NewTagRegistry(TagRegistryOpts{Config: BBCodeConfig()})
		require.NoError(t, err)

		html := reg.ListCodecs(FormatHTML)
		require.Len(t, html, 4)

		markdown := reg.ListCodecs(FormatMarkdown)
		require.Len(t, markdown, 3, "underline has no markdown binding")
		for _, binding := range markdown {
			assert.NotEqual(t, "[u]", binding.Tag.Start())
			assert.False(t, binding.Codec.CanDecode(), "markdown bindings are encode-only")
		}

		assert.Empty(t, reg.ListCodecs("pdf"), "unknown format yields an empty list")
	})

	t.Run("Register_NoValidatorsGetsNoop", func(t *testing.T) {
		reg, err := NewTagRegistry(TagRegistryOpts{Config: Config{Tags: []TagConfig{
			{Start: "[b]", End: "[/b]"},
		}}})
		require.NoError(t, err)

		pairs := reg.ListValidators()
		require.Len(t, pairs, 1)
		assert.IsType(t, NoopValidator{}, pairs[0].Validator)
	})

	t.Run("Register_ManyValidatorsGetChained", func(t *testing.T) {
		reg, err := NewTagRegistry(TagRegistryOpts{Config: Config{Tags: []TagConfig{
			{
				Start:      "[b]",
				End:        "[/b]",
				Validators: []string{BalancedValidatorRef, SelfNestingValidatorRef},
			},
		}}})
		require.NoError(t, err)

		pairs := reg.ListValidators()
		require.Len(t, pairs, 1)
		assert.IsType(t, &ChainValidator{}, pairs[0].Validator)
	})

	t.Run("Register_SamePairReplacesInPlace", func(t *testing.T) {
		reg, err := NewTagRegistry(TagRegistryOpts{Config: BBCodeConfig()})
		require.NoError(t, err)

		err = reg.Register(TagConfig{
			Start: "[b]",
			End:   "[/b]",
			Name:  "bold-as-emphasis",
			Codecs: map[string]CodecConfig{
				FormatHTML: {Encoder: BBCodeHTMLItalicEncoderRef},
			},
		})
		require.NoError(t, err)

		require.Equal(t, 4, reg.Len(), "replacement must not grow the registry")
		assert.Equal(t, "[b]", reg.Tags()[0].Start(), "replacement must keep its position")
		assert.Equal(t, "bold-as-emphasis", reg.Tags()[0].Name())

		binding := reg.ListCodecs(FormatHTML)[0]
		out, err := binding.Codec.Encode("[b]x[/b]", binding.Tag)
		require.NoError(t, err)
		assert.Equal(t, "<em>x</em>", out, "replacement must swap in the new binding")
	})

	t.Run("Register_SameStartDifferentEndRejected", func(t *testing.T) {
		reg, err := NewTagRegistry(TagRegistryOpts{Config: BBCodeConfig()})
		require.NoError(t, err)

		err = reg.Register(TagConfig{Start: "[b]", End: "[/bold]"})
		assert.ErrorIs(t, err, ErrDuplicateTag)
		assert.Equal(t, 4, reg.Len())
	})

	t.Run("Build_UnknownValidatorReference", func(t *testing.T) {
		_, err := NewTagRegistry(TagRegistryOpts{Config: Config{Tags: []TagConfig{
			{Start: "[b]", End: "[/b]", Validators: []string{"no-such-validator"}},
		}}})
		assert.ErrorIs(t, err, ErrUnknownReference)
	})

	t.Run("Build_UnknownEncoderReference", func(t *testing.T) {
		_, err := NewTagRegistry(TagRegistryOpts{Config: Config{Tags: []TagConfig{
			{
				Start:  "[b]",
				End:    "[/b]",
				Codecs: map[string]CodecConfig{FormatHTML: {Encoder: "no-such-encoder"}},
			},
		}}})
		assert.ErrorIs(t, err, ErrUnknownReference)
	})

	t.Run("Build_MissingEncoderReference", func(t *testing.T) {
		_, err := NewTagRegistry(TagRegistryOpts{Config: Config{Tags: []TagConfig{
			{
				Start:  "[b]",
				End:    "[/b]",
				Codecs: map[string]CodecConfig{FormatHTML: {Decoder: BBCodeHTMLBoldDecoderRef}},
			},
		}}})
		assert.ErrorIs(t, err, ErrInvalidCapability)
	})

	t.Run("Build_InvalidTag", func(t *testing.T) {
		_, err := NewTagRegistry(TagRegistryOpts{Config: Config{Tags: []TagConfig{
			{Start: "[b]"},
		}}})
		assert.ErrorIs(t, err, ErrTagInvalid)
	})

	t.Run("Build_WithIsolatedResolver", func(t *testing.T) {
		resolver := NewResolver()
		require.NoError(t, resolver.RegisterEncoder("shout-encoder", func() Encoder {
			return PairEncoder{Open: "<SHOUT>", Close: "</SHOUT>"}
		}))

		reg, err := NewTagRegistry(TagRegistryOpts{
			Config: Config{Tags: []TagConfig{
				{
					Start:  "[y]",
					End:    "[/y]",
					Codecs: map[string]CodecConfig{FormatHTML: {Encoder: "shout-encoder"}},
				},
			}},
			Resolver: resolver,
		})
		require.NoError(t, err)
		require.Equal(t, 1, reg.Len())

		// The isolated resolver has none of the built-ins.
		err = reg.Register(TagConfig{
			Start:      "[b]",
			End:        "[/b]",
			Validators: []string{BalancedValidatorRef},
		})
		assert.ErrorIs(t, err, ErrUnknownReference)
	})
}
