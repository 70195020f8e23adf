package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/kineziomed/medbot/internal/envelope"
	"github.com/kineziomed/medbot/internal/models"
	"github.com/kineziomed/medbot/internal/storage"
)

// messageText returns the question/answer body of a message: the text, or
// the caption of a media message, or a placeholder for captionless media.
func messageText(message *tgbotapi.Message) (string, bool) {
	if message.Text != "" {
		return message.Text, true
	}
	if message.Caption != "" {
		return message.Caption, true
	}
	if len(message.Photo) > 0 || message.Video != nil || message.Document != nil {
		return mediaPlaceholder, true
	}
	return "", false
}

func (b *Bot) handleUserQuestion(ctx context.Context, message *tgbotapi.Message) {
	userID := message.From.ID

	status := b.gate.Evaluate(ctx, userID)
	if !status.AllSubscribed() {
		b.sendGatePrompt(message.Chat.ID, status, gateHeaderBlock, false)
		return
	}

	text, ok := messageText(message)
	if !ok {
		b.sendHTML(message.Chat.ID, emptyQuestionPrompt)
		return
	}

	questionID, err := b.storage.AddQuestion(ctx, userID, message.MessageID, text)
	if err != nil {
		b.logger.Error("failed to save question", zap.Error(err), zap.Int64("user_id", userID))
		b.sendHTML(message.Chat.ID, questionSaveFailedText)
		return
	}

	doctors, err := b.storage.ListDoctors(ctx)
	if err != nil {
		b.logger.Error("failed to list doctors", zap.Error(err))
		doctors = nil
	}
	if len(doctors) == 0 {
		b.sendHTML(message.Chat.ID, fmt.Sprintf(questionSavedNoDoctorsText, questionID))
		return
	}

	name := userFullName(message.From)
	if name == "" {
		name = fmt.Sprintf("Foydalanuvchi %d", userID)
	}
	envelopeText := envelope.RenderQuestion(name, userID, text, questionID)

	delivered := 0
	for _, doc := range doctors {
		if err := b.forwardContent(doc.ID, message, envelopeText); err != nil {
			b.logger.Warn("failed to deliver question to doctor",
				zap.Int64("doctor_id", doc.ID),
				zap.Int64("question_id", questionID),
				zap.Error(err))
			continue
		}
		delivered++
	}
	b.logger.Info("question relayed",
		zap.Int64("question_id", questionID),
		zap.Int64("user_id", userID),
		zap.Int("doctors", delivered))

	b.sendHTML(message.Chat.ID, fmt.Sprintf(questionSentText, questionID))
}

// handleDoctorReply processes a doctor replying to a relayed question
// envelope. It reports whether the message was consumed; replies from
// non-doctors fall through to the regular flows.
func (b *Bot) handleDoctorReply(ctx context.Context, message *tgbotapi.Message) bool {
	doctorID := message.From.ID

	user, err := b.storage.GetUser(ctx, doctorID)
	if err != nil || user.Role != models.RoleDoctor {
		return false
	}

	replied := message.ReplyToMessage
	repliedText := replied.Text
	if repliedText == "" {
		repliedText = replied.Caption
	}

	questionID, ok := envelope.ExtractQuestionID(repliedText)
	if !ok {
		b.sendHTML(message.Chat.ID, answerNoQuestionText)
		return true
	}

	question, err := b.storage.GetQuestion(ctx, questionID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			b.sendHTML(message.Chat.ID, answerUnknownIDText)
		} else {
			b.logger.Error("failed to load question", zap.Error(err), zap.Int64("question_id", questionID))
			b.sendHTML(message.Chat.ID, answerSaveFailedText)
		}
		return true
	}

	answerText, ok := messageText(message)
	if !ok {
		b.sendHTML(message.Chat.ID, answerNoQuestionText)
		return true
	}

	if _, err := b.storage.AddAnswer(ctx, questionID, doctorID, message.MessageID, answerText); err != nil {
		b.logger.Error("failed to save answer", zap.Error(err), zap.Int64("question_id", questionID))
		b.sendHTML(message.Chat.ID, answerSaveFailedText)
		return true
	}

	envelopeText := envelope.RenderAnswer(userFullName(message.From), question.Text, answerText)
	if err := b.forwardContent(question.UserID, message, envelopeText); err != nil {
		b.logger.Error("failed to deliver answer",
			zap.Int64("question_id", questionID),
			zap.Int64("user_id", question.UserID),
			zap.Error(err))
		b.sendHTML(message.Chat.ID, answerDeliveryFailText)
		return true
	}

	b.logger.Info("answer delivered",
		zap.Int64("question_id", questionID),
		zap.Int64("doctor_id", doctorID),
		zap.Int64("user_id", question.UserID))
	b.sendHTML(message.Chat.ID, answerDeliveredText)
	return true
}

func (b *Bot) handleMyQuestions(ctx context.Context, message *tgbotapi.Message) {
	userID := message.From.ID

	status := b.gate.Evaluate(ctx, userID)
	if !status.AllSubscribed() {
		b.sendGatePrompt(message.Chat.ID, status, gateHeaderBlock, false)
		return
	}

	questions, err := b.storage.GetUserQuestions(ctx, userID, 10)
	if err != nil {
		b.logger.Error("failed to load user questions", zap.Error(err), zap.Int64("user_id", userID))
		b.sendHTML(message.Chat.ID, noQuestionsText)
		return
	}
	if len(questions) == 0 {
		b.sendHTML(message.Chat.ID, noQuestionsText)
		return
	}

	var sb strings.Builder
	sb.WriteString(questionsListHeader)
	for _, q := range questions {
		glyph, label := "⏳", "Javob kutilmoqda"
		if q.Status == models.StatusAnswered {
			glyph, label = "✅", "Javob berildi"
		}
		sb.WriteString(fmt.Sprintf("%s <b>ID %d</b> — %s\n%s\n\n",
			glyph, q.ID, label, envelope.Truncate(q.Text, 50)))
	}
	if len(questions) == 10 {
		sb.WriteString(questionsListFooter)
	}
	b.sendHTML(message.Chat.ID, sb.String())
}
