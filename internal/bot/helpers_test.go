package bot

import (
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kineziomed/medbot/internal/gate"
)

func TestGateChecklist(t *testing.T) {
	status := gate.Status{Telegram: true, Instagram: false, YouTube: false}

	full := gateChecklist(status, true)
	if !strings.Contains(full, "✅ "+platformTelegram) {
		t.Errorf("checklist should mark telegram satisfied:\n%s", full)
	}
	if !strings.Contains(full, "❌ "+platformInstagram) || !strings.Contains(full, "❌ "+platformYouTube) {
		t.Errorf("checklist should mark missing platforms:\n%s", full)
	}

	missing := gateChecklist(status, false)
	if strings.Contains(missing, platformTelegram) {
		t.Errorf("missing-only list should omit satisfied platforms:\n%s", missing)
	}
	if !strings.Contains(missing, platformInstagram) || !strings.Contains(missing, platformYouTube) {
		t.Errorf("missing-only list should keep unsatisfied platforms:\n%s", missing)
	}
}

func TestStripUsername(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"@doctor_uz", "doctor_uz", true},
		{"doctor_uz", "doctor_uz", true},
		{"123456789", "", false},
		{"two words", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := stripUsername(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("stripUsername(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestLooksLikePhone(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"+998 90 123", true},
		{"998901234", true},
		{"+7 (495) 123-45-67", true},
		{"@username", false},
		{"123456789", false},
		{"+998abc", false},
	}
	for _, tc := range cases {
		if got := looksLikePhone(tc.in); got != tc.want {
			t.Errorf("looksLikePhone(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestMessageText(t *testing.T) {
	if text, ok := messageText(&tgbotapi.Message{Text: "savol"}); !ok || text != "savol" {
		t.Errorf("text message: got %q, %v", text, ok)
	}
	if text, ok := messageText(&tgbotapi.Message{Caption: "rasm izohi", Photo: []tgbotapi.PhotoSize{{}}}); !ok || text != "rasm izohi" {
		t.Errorf("captioned photo: got %q, %v", text, ok)
	}
	if text, ok := messageText(&tgbotapi.Message{Video: &tgbotapi.Video{}}); !ok || text != mediaPlaceholder {
		t.Errorf("captionless media should use placeholder: got %q, %v", text, ok)
	}
	if _, ok := messageText(&tgbotapi.Message{Sticker: &tgbotapi.Sticker{}}); ok {
		t.Error("sticker should not produce question text")
	}
}
