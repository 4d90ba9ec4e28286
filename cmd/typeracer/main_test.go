package main

import "testing"

func TestWrapPlainBreaksAtWidth(t *testing.T) {
	lines := wrapPlain("one two three", 8)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != "one two" || lines[1] != "three" {
		t.Fatalf("unexpected wrap: %q", lines)
	}
}

func TestWrapPlainUsesDisplayWidth(t *testing.T) {
	// Two double-width CJK words: 4 cells each, 6 bytes each. They fit
	// on one 9-cell line; byte counting would split them.
	lines := wrapPlain("文字 文字", 9)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line for 9 display cells, got %d: %q", len(lines), lines)
	}
}

func TestWrapPlainEmptyText(t *testing.T) {
	if lines := wrapPlain("", 10); len(lines) != 0 {
		t.Fatalf("expected no lines, got %q", lines)
	}
}
