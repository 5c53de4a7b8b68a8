package weave

import (
	"errors"
	"fmt"
)

var (
	ErrTagInvalid = errors.New("tag configuration is invalid")
)

// Tag describes one markup construct: the delimiters that open and close it
// in the source dialect, and the nesting rules declared for it.
//
// A Tag is immutable once constructed. The registry owns every Tag it
// registers; callers only ever read them. Identity within a registry is the
// start delimiter: two tags with the same start and end are the same tag.
//
// A tag with no end delimiter is self-closing: a single atomic unit with no
// paired closer. Pair-oriented encoders and validators do not apply to it.
type Tag struct {
	start             string
	end               string
	name              string
	description       string
	selfClosing       bool
	allowsChildren    bool
	allowsSelfNesting bool
	single            bool
}

// NewTag builds a Tag from its configuration.
//
// The start delimiter is required. A tag that is not self-closing must also
// declare an end delimiter; a missing one fails with ErrTagInvalid.
// AllowsChildren defaults to true when left unset.
func NewTag(cfg TagConfig) (Tag, error) {
	if cfg.Start == "" {
		return Tag{}, fmt.Errorf("%w: start delimiter is required", ErrTagInvalid)
	}
	if !cfg.SelfClosing && cfg.End == "" {
		return Tag{}, fmt.Errorf(
			"%w: tag %q is not self-closing and has no end delimiter",
			ErrTagInvalid, cfg.Start,
		)
	}

	t := Tag{
		start:             cfg.Start,
		end:               cfg.End,
		name:              cfg.Name,
		description:       cfg.Description,
		selfClosing:       cfg.SelfClosing,
		allowsChildren:    orDefault(cfg.AllowsChildren, true),
		allowsSelfNesting: cfg.AllowsSelfNesting,
	}
	t.single = t.start == t.end

	return t, nil
}

// Start returns the opening delimiter.
func (t Tag) Start() string { return t.start }

// End returns the closing delimiter. It is empty for self-closing tags.
func (t Tag) End() string { return t.end }

// Name returns the documentation name. Never consulted by transcoding logic.
func (t Tag) Name() string { return t.name }

// Description returns the documentation text. Never consulted by
// transcoding logic.
func (t Tag) Description() string { return t.description }

// SelfClosing reports whether the tag is a single atomic unit with no
// paired closer.
func (t Tag) SelfClosing() bool { return t.selfClosing }

// AllowsChildren reports whether other tags may appear inside this one.
func (t Tag) AllowsChildren() bool { return t.allowsChildren }

// AllowsSelfNesting reports whether the tag may appear inside itself.
func (t Tag) AllowsSelfNesting() bool { return t.allowsSelfNesting }

// IsSingle reports whether the start and end delimiters are textually
// identical, e.g. a bare "---" separator. Derived once at construction.
func (t Tag) IsSingle() bool { return t.single }

func (t Tag) String() string {
	if t.end == "" {
		return fmt.Sprintf("Tag(%s)", t.start)
	}
	return fmt.Sprintf("Tag(%s...%s)", t.start, t.end)
}
