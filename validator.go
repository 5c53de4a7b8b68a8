package weave

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotApplicable   = errors.New("capability is not applicable to this tag")
	ErrTemplateInvalid = errors.New("template validation failed")
)

// TemplateValidationError reports which tag, and under which rule, a
// template was rejected. It matches ErrTemplateInvalid with errors.Is.
type TemplateValidationError struct {
	Tag  Tag
	Rule string
	Err  error
}

func (e *TemplateValidationError) Error() string {
	msg := fmt.Sprintf("template validation failed: tag %q", e.Tag.Start())
	if e.Rule != "" {
		msg = fmt.Sprintf("%s: rule %q", msg, e.Rule)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *TemplateValidationError) Is(target error) bool {
	return target == ErrTemplateInvalid
}

func (e *TemplateValidationError) Unwrap() error { return e.Err }

///////////////////////////////////////////////////////////////////////////////
// Combinators
///////////////////////////////////////////////////////////////////////////////

// NoopValidator accepts every template.
type NoopValidator struct{}

func (NoopValidator) Validate(content string, tag Tag) error { return nil }

// ChainValidator runs its members in order and stops at the first failure,
// returning that member's error unchanged. Members after the failing one
// are not invoked, and failures are never aggregated.
type ChainValidator struct {
	validators []Validator
}

func NewChainValidator(validators ...Validator) *ChainValidator {
	return &ChainValidator{validators: validators}
}

func (c *ChainValidator) Validate(content string, tag Tag) error {
	for _, v := range c.validators {
		if err := v.Validate(content, tag); err != nil {
			return err
		}
	}
	return nil
}

// CombineValidators collapses a validator list into a single Validator:
// none becomes a NoopValidator, one is used directly, more are wrapped in
// a ChainValidator.
func CombineValidators(validators ...Validator) Validator {
	switch len(validators) {
	case 0:
		return NoopValidator{}
	case 1:
		return validators[0]
	default:
		return NewChainValidator(validators...)
	}
}

///////////////////////////////////////////////////////////////////////////////
// Built-in Validators
///////////////////////////////////////////////////////////////////////////////

// BalancedValidator checks that every start delimiter of a tag is matched
// by an end delimiter: a balanced-parenthesis scan specialized to one
// delimiter pair. It only tracks its own tag; other tags' delimiters are
// invisible to it.
//
// The scan advances one byte at a time and tests the start delimiter before
// the end delimiter, so for a single tag (start == end) every occurrence
// counts as an opener and any occurrence at all fails the check.
type BalancedValidator struct{}

func (BalancedValidator) Validate(content string, tag Tag) error {
	if tag.End() == "" {
		return fmt.Errorf(
			"%w: balanced check needs an end delimiter, tag %q is self-closing",
			ErrNotApplicable, tag.Start(),
		)
	}

	var opened []int
	for i := 0; i < len(content); i++ {
		if strings.HasPrefix(content[i:], tag.Start()) {
			opened = append(opened, i)
		} else if strings.HasPrefix(content[i:], tag.End()) {
			if len(opened) == 0 {
				return &TemplateValidationError{
					Tag:  tag,
					Rule: BalancedValidatorRef,
					Err:  errors.New("tag is not correctly closed"),
				}
			}
			opened = opened[:len(opened)-1]
		}
	}
	if len(opened) > 0 {
		return &TemplateValidationError{
			Tag:  tag,
			Rule: BalancedValidatorRef,
			Err:  errors.New("tag is not correctly closed"),
		}
	}
	return nil
}

// SelfNestingValidator rejects templates that open a tag again before the
// previous occurrence closed, unless the tag declares AllowsSelfNesting.
//
// Single tags are skipped: with identical delimiters an opener cannot be
// told apart from a closer. Pair it with a BalancedValidator; it assumes
// closers match openers and only watches the depth.
type SelfNestingValidator struct{}

func (SelfNestingValidator) Validate(content string, tag Tag) error {
	if tag.End() == "" {
		return fmt.Errorf(
			"%w: self-nesting check needs an end delimiter, tag %q is self-closing",
			ErrNotApplicable, tag.Start(),
		)
	}
	if tag.AllowsSelfNesting() || tag.IsSingle() {
		return nil
	}

	depth := 0
	for i := 0; i < len(content); i++ {
		if strings.HasPrefix(content[i:], tag.Start()) {
			depth++
			if depth > 1 {
				return &TemplateValidationError{
					Tag:  tag,
					Rule: SelfNestingValidatorRef,
					Err:  errors.New("tag does not allow nesting inside itself"),
				}
			}
		} else if strings.HasPrefix(content[i:], tag.End()) {
			if depth > 0 {
				depth--
			}
		}
	}
	return nil
}
