package weave

import (
	"fmt"
	"strings"
)

// Example of how easy it is to extend the codec with custom capabilities
// through the registration surface.

// StripEncoder removes a tag's delimiters entirely, rendering the template
// as plain text. Unlike the pair codecs it also applies to self-closing
// tags, whose single delimiter is simply dropped.
type StripEncoder struct{}

func (StripEncoder) Encode(content string, tag Tag) (string, error) {
	content = strings.ReplaceAll(content, tag.Start(), "")
	if tag.End() != "" {
		content = strings.ReplaceAll(content, tag.End(), "")
	}
	return content, nil
}

// MaxLength returns a validator that rejects templates longer than limit
// bytes, demonstrating the ValidatorFunc adapter for capabilities that are
// more naturally a closure than a type.
func MaxLength(limit int) Validator {
	return ValidatorFunc(func(content string, tag Tag) error {
		if len(content) > limit {
			return fmt.Errorf("template exceeds %d bytes", limit)
		}
		return nil
	})
}
