// Package envelope renders the messages exchanged between patients and
// doctors and recovers the question ID embedded in them.
//
// Correlation relies on a label token inside the forwarded text: a doctor
// answers by replying to the envelope, and the question ID is parsed back out
// of the replied-to text. The encoding is kept compatible with messages
// already delivered to doctors, so the legacy Russian label is still
// recognized on extraction.
package envelope

import (
	"fmt"
	"strconv"
	"strings"
)

const questionIDLabel = "ID savol:"

// Labels recognized when scanning a replied-to message for a question ID.
// The second one was used by earlier envelope revisions.
var extractLabels = []string{questionIDLabel, "ID вопроса:"}

// RenderQuestion builds the HTML envelope fanned out to doctors. The trailing
// label line carries the question ID for reply correlation.
func RenderQuestion(userName string, userID int64, questionText string, questionID int64) string {
	return fmt.Sprintf(
		"❓ <b>Yangi savol bemordan:</b>\n\n"+
			"👤 %s\nID: %d\n\n"+
			"📝 <b>Savol:</b>\n%s\n\n"+
			"%s %d",
		userName, userID, questionText, questionIDLabel, questionID)
}

// RenderAnswer builds the HTML message delivered back to the patient.
func RenderAnswer(doctorName, questionText, answerText string) string {
	return fmt.Sprintf(
		"👨‍⚕️ <b>Javob shifokordan %s</b>\n\n"+
			"📝 <b>Sizning savolingiz:</b>\n%s\n\n"+
			"💬 <b>Javob:</b>\n%s",
		doctorName, Truncate(questionText, 100), answerText)
}

// ExtractQuestionID scans a replied-to message for one of the known labels and
// parses the integer that follows it. Returns false when no label is present
// or the trailing token is not a number.
func ExtractQuestionID(text string) (int64, bool) {
	for _, label := range extractLabels {
		idx := strings.LastIndex(text, label)
		if idx < 0 {
			continue
		}
		rest := strings.TrimSpace(text[idx+len(label):])
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			continue
		}
		id, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		return id, true
	}
	return 0, false
}

// Truncate shortens s to at most n runes, appending an ellipsis marker when
// anything was cut. Rune-based so Cyrillic text is not split mid-character.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
