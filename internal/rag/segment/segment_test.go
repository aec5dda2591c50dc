package segment

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"  hello   world ", "hello world"},
		{"a\n\nb\tc", "a b c"},
		{"", ""},
		{"   \n\t  ", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.expected {
			t.Errorf("Normalize(%q) = %q; want %q", tt.in, got, tt.expected)
		}
	}
}

func TestSplit_EmptyInput(t *testing.T) {
	if got := Split("   \n  ", 10, 3); got != nil {
		t.Errorf("expected no chunks for whitespace input, got %v", got)
	}
}

func TestSplit_SmallText(t *testing.T) {
	chunks := Split("short", 100, 10)
	if len(chunks) != 1 || chunks[0] != "short" {
		t.Errorf("expected single chunk [short], got %v", chunks)
	}
}

// 25 characters, window 10, overlap 3: full windows of 10 with a short
// remainder, each consecutive pair sharing 3 characters.
func TestSplit_WindowAndRemainder(t *testing.T) {
	text := "abcdefghijklmnopqrstuvwxy" //25 chars
	chunks := Split(text, 10, 3)

	if len(chunks) != 4 {
		t.Fatalf("expected 4 chunks, got %d: %v", len(chunks), chunks)
	}
	for i, c := range chunks[:len(chunks)-1] {
		if len(c) != 10 {
			t.Errorf("chunk %d length = %d; want 10", i, len(c))
		}
	}
	if last := chunks[len(chunks)-1]; len(last) >= 10 || len(last) == 0 {
		t.Errorf("last chunk should be a short remainder, got %q", last)
	}
}

func TestSplit_OverlapInvariant(t *testing.T) {
	text := strings.Repeat("the quick brown fox jumps over the lazy dog ", 30)
	overlap := 17
	chunks := Split(text, 100, overlap)

	if len(chunks) < 3 {
		t.Fatalf("expected several chunks, got %d", len(chunks))
	}
	for i := 0; i < len(chunks)-1; i++ {
		tail := chunks[i][len(chunks[i])-overlap:]
		head := chunks[i+1][:overlap]
		if tail != head {
			t.Errorf("chunks %d/%d overlap mismatch: %q vs %q", i, i+1, tail, head)
		}
	}
}

// Concatenating each chunk's non-overlap region rebuilds the source.
func TestSplit_Coverage(t *testing.T) {
	text := strings.Repeat("grounded answers only no hallucinations allowed ", 25)
	clean := Normalize(text)
	overlap := 40
	chunks := Split(text, 150, overlap)

	var rebuilt strings.Builder
	for i, c := range chunks {
		if i == 0 {
			rebuilt.WriteString(c)
			continue
		}
		rebuilt.WriteString(c[overlap:])
	}
	if rebuilt.String() != clean {
		t.Error("concatenated non-overlap regions do not reconstruct the normalized text")
	}
}

func TestSplit_Deterministic(t *testing.T) {
	text := "Some   profile text\nwith  uneven\t\twhitespace runs in it."
	a := Split(text, 20, 5)
	b := Split(text, 20, 5)
	if len(a) != len(b) {
		t.Fatalf("run lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("chunk %d differs between runs", i)
		}
	}
}
