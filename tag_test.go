package weave

import (
	"errors"
	"testing"
)

func TestNewTag(t *testing.T) {
	tag, err := NewTag(TagConfig{
		Start:       "[b]",
		End:         "[/b]",
		Name:        "bold",
		Description: "Makes the wrapped text bold.",
	})
	if err != nil {
		t.Fatalf("Failed to create tag: %v", err)
	}

	if tag.Start() != "[b]" {
		t.Errorf("Expected start '[b]', got '%s'", tag.Start())
	}
	if tag.End() != "[/b]" {
		t.Errorf("Expected end '[/b]', got '%s'", tag.End())
	}
	if tag.Name() != "bold" {
		t.Errorf("Expected name 'bold', got '%s'", tag.Name())
	}
	if tag.SelfClosing() {
		t.Error("Expected SelfClosing to default to false")
	}
	if !tag.AllowsChildren() {
		t.Error("Expected AllowsChildren to default to true")
	}
	if tag.AllowsSelfNesting() {
		t.Error("Expected AllowsSelfNesting to default to false")
	}
	if tag.IsSingle() {
		t.Error("Expected IsSingle to be false for distinct delimiters")
	}
}

func TestNewTagMissingStart(t *testing.T) {
	_, err := NewTag(TagConfig{End: "[/b]"})
	if !errors.Is(err, ErrTagInvalid) {
		t.Fatalf("Expected ErrTagInvalid, got %v", err)
	}
}

func TestNewTagMissingEnd(t *testing.T) {
	_, err := NewTag(TagConfig{Start: "[b]", Name: "bold"})
	if !errors.Is(err, ErrTagInvalid) {
		t.Fatalf("Expected ErrTagInvalid, got %v", err)
	}
}

func TestNewTagSelfClosing(t *testing.T) {
	tag, err := NewTag(TagConfig{Start: "[hr]", SelfClosing: true})
	if err != nil {
		t.Fatalf("Failed to create self-closing tag: %v", err)
	}
	if tag.End() != "" {
		t.Errorf("Expected empty end, got '%s'", tag.End())
	}
	if !tag.SelfClosing() {
		t.Error("Expected SelfClosing to be true")
	}
	if tag.IsSingle() {
		t.Error("Expected IsSingle to be false for a self-closing tag")
	}
}

func TestNewTagSingle(t *testing.T) {
	tag, err := NewTag(TagConfig{Start: "---", End: "---"})
	if err != nil {
		t.Fatalf("Failed to create tag: %v", err)
	}
	if !tag.IsSingle() {
		t.Error("Expected IsSingle to be true when start equals end")
	}
}

func TestNewTagAllowsChildrenOverride(t *testing.T) {
	tag, err := NewTag(TagConfig{
		Start:          "[code]",
		End:            "[/code]",
		AllowsChildren: Ptr(false),
	})
	if err != nil {
		t.Fatalf("Failed to create tag: %v", err)
	}
	if tag.AllowsChildren() {
		t.Error("Expected AllowsChildren to be false when explicitly disabled")
	}
}

func TestNewTagAllowsSelfNesting(t *testing.T) {
	tag, err := NewTag(TagConfig{
		Start:             "[list]",
		End:               "[/list]",
		AllowsSelfNesting: true,
	})
	if err != nil {
		t.Fatalf("Failed to create tag: %v", err)
	}
	if !tag.AllowsSelfNesting() {
		t.Error("Expected AllowsSelfNesting to be true")
	}
}

func TestTagString(t *testing.T) {
	tag, err := NewTag(TagConfig{Start: "[b]", End: "[/b]"})
	if err != nil {
		t.Fatalf("Failed to create tag: %v", err)
	}
	if tag.String() != "Tag([b]...[/b])" {
		t.Errorf("Unexpected String(): %s", tag.String())
	}

	selfClosing, err := NewTag(TagConfig{Start: "[hr]", SelfClosing: true})
	if err != nil {
		t.Fatalf("Failed to create tag: %v", err)
	}
	if selfClosing.String() != "Tag([hr])" {
		t.Errorf("Unexpected String(): %s", selfClosing.String())
	}
}
