package envelope

import (
	"strings"
	"testing"
)

func TestRenderQuestionCarriesExtractableID(t *testing.T) {
	text := RenderQuestion("Aziz Karimov", 555, "knee pain", 42)

	if !strings.Contains(text, "Aziz Karimov") {
		t.Errorf("envelope missing requester name: %q", text)
	}
	if !strings.Contains(text, "ID: 555") {
		t.Errorf("envelope missing requester id: %q", text)
	}
	id, ok := ExtractQuestionID(text)
	if !ok {
		t.Fatalf("ExtractQuestionID failed on rendered envelope: %q", text)
	}
	if id != 42 {
		t.Errorf("extracted id = %d, want 42", id)
	}
}

func TestExtractQuestionID(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int64
		ok   bool
	}{
		{"uzbek label", "savol matni\n\nID savol: 42", 42, true},
		{"legacy russian label", "текст вопроса\n\nID вопроса: 17", 17, true},
		{"trailing prose after id", "ID savol: 9 (javob kutilmoqda)", 9, true},
		{"no label", "oddiy xabar", 0, false},
		{"label without number", "ID savol: keyin", 0, false},
		{"empty", "", 0, false},
		{"negative id", "ID savol: -5", 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			id, ok := ExtractQuestionID(c.text)
			if ok != c.ok || id != c.want {
				t.Errorf("ExtractQuestionID(%q) = (%d, %v), want (%d, %v)", c.text, id, ok, c.want, c.ok)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 50); got != "short" {
		t.Errorf("Truncate(short) = %q", got)
	}
	long := strings.Repeat("a", 60)
	if got := Truncate(long, 50); got != strings.Repeat("a", 50)+"..." {
		t.Errorf("Truncate long = %q", got)
	}
	// 60 Cyrillic runes is 120 bytes; truncation must count runes.
	cyr := strings.Repeat("ж", 60)
	got := Truncate(cyr, 50)
	if got != strings.Repeat("ж", 50)+"..." {
		t.Errorf("Truncate cyrillic = %q", got)
	}
}
