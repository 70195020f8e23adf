package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/kineziomed/medbot/internal/phone"
	"github.com/kineziomed/medbot/internal/session"
)

// adminKeyboard is the panel reply keyboard. Button presses come back as
// ordinary text messages and are matched against the labels verbatim.
func adminKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnAddDoctor),
			tgbotapi.NewKeyboardButton(btnRemoveDoctor)),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnListDoctors),
			tgbotapi.NewKeyboardButton(btnSearchChannel)),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnChangePassword),
			tgbotapi.NewKeyboardButton(btnLogout)))
	kb.ResizeKeyboard = true
	return kb
}

// contactRequestKeyboard is shown during doctor addition so the doctor's
// contact can be forwarded instead of typing an ID.
func contactRequestKeyboard() tgbotapi.ReplyKeyboardMarkup {
	btn := tgbotapi.NewKeyboardButtonContact(btnShareContact)
	kb := tgbotapi.NewReplyKeyboard(tgbotapi.NewKeyboardButtonRow(btn))
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}

func (b *Bot) handleAdminCommand(_ context.Context, message *tgbotapi.Message) {
	sess := b.sessions.Get(message.From.ID)
	if sess.Authorized() {
		b.showPanel(sess, message.Chat.ID)
		return
	}

	sess.State = session.StateAwaitingLogin
	msg, err := b.sendHTMLMarkup(message.Chat.ID, adminLoginPrompt, tgbotapi.NewRemoveKeyboard(false))
	if err == nil {
		sess.TrackPanelMessage(msg.MessageID)
	}
}

// showPanel sends the panel message with its reply keyboard and remembers
// the message so logout can clean it up.
func (b *Bot) showPanel(sess *session.Session, chatID int64) {
	msg, err := b.sendHTMLMarkup(chatID, adminPanelText, adminKeyboard())
	if err != nil {
		b.logger.Error("failed to send admin panel", zap.Error(err))
		return
	}
	sess.TrackPanelMessage(msg.MessageID)
}

// handleAdminMessage consumes messages belonging to an admin conversation.
// It reports whether the message was handled.
func (b *Bot) handleAdminMessage(ctx context.Context, message *tgbotapi.Message) bool {
	sess, ok := b.sessions.Peek(message.From.ID)
	if !ok || sess.State == session.StateAnonymous {
		return false
	}

	sess.TrackPanelMessage(message.MessageID)

	switch sess.State {
	case session.StateAwaitingLogin:
		b.handleLoginStep(sess, message)
	case session.StateAwaitingPassword:
		b.handlePasswordStep(ctx, sess, message)
	case session.StateAwaitingAddDoctor:
		if !b.dispatchPanelButton(ctx, sess, message) {
			b.handleAddDoctorStep(ctx, sess, message)
		}
	case session.StateAwaitingRemoveDoctor:
		if !b.dispatchPanelButton(ctx, sess, message) {
			b.handleRemoveDoctorStep(ctx, sess, message)
		}
	case session.StateAwaitingNewPassword:
		if !b.dispatchPanelButton(ctx, sess, message) {
			b.handleNewPasswordStep(ctx, sess, message)
		}
	case session.StateAuthorized:
		if !b.dispatchPanelButton(ctx, sess, message) {
			b.showPanel(sess, message.Chat.ID)
		}
	default:
		return false
	}
	return true
}

func (b *Bot) handleLoginStep(sess *session.Session, message *tgbotapi.Message) {
	if message.Text == "" {
		b.trackReply(sess, message.Chat.ID, adminLoginNotText)
		return
	}
	if sess.SubmitLogin(strings.TrimSpace(message.Text)) {
		b.trackReply(sess, message.Chat.ID, adminLoginAccepted)
		return
	}
	b.trackReply(sess, message.Chat.ID, adminLoginWrong)
}

func (b *Bot) handlePasswordStep(ctx context.Context, sess *session.Session, message *tgbotapi.Message) {
	if message.Text == "" {
		b.trackReply(sess, message.Chat.ID, adminPasswordNoText)
		return
	}

	stored, err := b.storage.GetAdminPassword(ctx)
	if err != nil {
		b.logger.Error("failed to load admin password", zap.Error(err))
		b.trackReply(sess, message.Chat.ID, adminPasswordWrong)
		return
	}

	if sess.SubmitPassword(strings.TrimSpace(message.Text), stored) {
		b.showPanel(sess, message.Chat.ID)
		return
	}
	b.trackReply(sess, message.Chat.ID, adminPasswordWrong)
}

// dispatchPanelButton matches panel button presses. Buttons work from any
// authorized state: pressing one abandons the data entry in progress.
func (b *Bot) dispatchPanelButton(ctx context.Context, sess *session.Session, message *tgbotapi.Message) bool {
	switch message.Text {
	case btnAddDoctor:
		sess.FinishAction()
		sess.Begin(session.StateAwaitingAddDoctor)
		b.trackReplyMarkup(sess, message.Chat.ID, adminAddDoctorPrompt, contactRequestKeyboard())
	case btnRemoveDoctor:
		sess.FinishAction()
		sess.Begin(session.StateAwaitingRemoveDoctor)
		b.trackReply(sess, message.Chat.ID, adminRemoveDoctorPrompt)
	case btnListDoctors:
		sess.FinishAction()
		b.sendDoctorList(ctx, sess, message.Chat.ID)
	case btnSearchChannel:
		sess.FinishAction()
		b.sendChannelAdmins(sess, message.Chat.ID)
	case btnChangePassword:
		sess.FinishAction()
		sess.Begin(session.StateAwaitingNewPassword)
		b.trackReply(sess, message.Chat.ID, adminChangePasswordPrompt)
	case btnLogout:
		b.handleLogout(ctx, message)
	default:
		return false
	}
	return true
}

func (b *Bot) handleAddDoctorStep(ctx context.Context, sess *session.Session, message *tgbotapi.Message) {
	if message.Contact != nil {
		b.handleDoctorContact(ctx, sess, message)
		return
	}
	if message.Text == "" {
		b.trackReplyMarkup(sess, message.Chat.ID, adminNoIDText, contactRequestKeyboard())
		return
	}

	text := strings.TrimSpace(message.Text)

	if normalized, ok := phone.Normalize(text); ok {
		b.trackReplyMarkup(sess, message.Chat.ID,
			fmt.Sprintf(adminPhoneNoLookupText, normalized), contactRequestKeyboard())
		return
	}
	if looksLikePhone(text) {
		b.trackReplyMarkup(sess, message.Chat.ID, adminBadPhoneText, contactRequestKeyboard())
		return
	}

	if username, ok := stripUsername(text); ok {
		b.handleDoctorUsername(ctx, sess, message.Chat.ID, username)
		return
	}

	id, ok := session.ParseIdentity(text)
	if !ok {
		b.trackReplyMarkup(sess, message.Chat.ID, adminNoIDText, contactRequestKeyboard())
		return
	}
	b.addDoctorByID(ctx, sess, message.Chat.ID, id, nil, nil)
}

func (b *Bot) handleDoctorContact(ctx context.Context, sess *session.Session, message *tgbotapi.Message) {
	contact := message.Contact

	if contact.UserID != 0 {
		var fullName *string
		if name := strings.TrimSpace(strings.TrimSpace(contact.FirstName) + " " + strings.TrimSpace(contact.LastName)); name != "" {
			fullName = &name
		}
		b.addDoctorByID(ctx, sess, message.Chat.ID, contact.UserID, nil, fullName)
		return
	}

	// Contact without a Telegram user behind it; phone numbers cannot be
	// resolved to a user ID through the Bot API.
	normalized, ok := phone.Normalize(contact.PhoneNumber)
	if !ok {
		b.trackReplyMarkup(sess, message.Chat.ID, adminBadPhoneText, contactRequestKeyboard())
		return
	}
	b.trackReplyMarkup(sess, message.Chat.ID,
		fmt.Sprintf(adminForeignContactText, normalized), contactRequestKeyboard())
}

func (b *Bot) handleDoctorUsername(ctx context.Context, sess *session.Session, chatID int64, username string) {
	chat, err := b.resolveChatByUsername(username)
	if err != nil {
		b.trackReplyMarkup(sess, chatID,
			fmt.Sprintf(adminUsernameNotFoundText, username), contactRequestKeyboard())
		return
	}
	if chat.Type != "private" {
		b.trackReplyMarkup(sess, chatID,
			fmt.Sprintf(adminUsernameNotUserText, username), contactRequestKeyboard())
		return
	}

	var un, fn *string
	if chat.UserName != "" {
		v := chat.UserName
		un = &v
	}
	if name := chatFullName(chat); name != "" {
		fn = &name
	}
	b.addDoctorByID(ctx, sess, chatID, chat.ID, un, fn)
}

// addDoctorByID stores the doctor, enriching missing profile fields from a
// best-effort getChat lookup first.
func (b *Bot) addDoctorByID(ctx context.Context, sess *session.Session, chatID, doctorID int64, username, fullName *string) {
	if username == nil || fullName == nil {
		if chat, err := b.resolveChat(doctorID); err == nil {
			if username == nil && chat.UserName != "" {
				v := chat.UserName
				username = &v
			}
			if fullName == nil {
				if name := chatFullName(chat); name != "" {
					fullName = &name
				}
			}
		}
	}

	if err := b.storage.AddDoctor(ctx, doctorID, username, fullName); err != nil {
		b.logger.Error("failed to add doctor", zap.Error(err), zap.Int64("doctor_id", doctorID))
		b.trackReply(sess, chatID, adminDoctorAddFailedText)
		sess.FinishAction()
		b.showPanel(sess, chatID)
		return
	}

	name := "—"
	if fullName != nil {
		name = *fullName
	}
	un := "—"
	if username != nil {
		un = *username
	}
	b.trackReply(sess, chatID, fmt.Sprintf(adminDoctorAddedText, doctorID, name, un))
	b.logger.Info("doctor added", zap.Int64("doctor_id", doctorID))
	sess.FinishAction()
	b.showPanel(sess, chatID)
}

func (b *Bot) handleRemoveDoctorStep(ctx context.Context, sess *session.Session, message *tgbotapi.Message) {
	id, ok := session.ParseIdentity(message.Text)
	if !ok {
		b.trackReply(sess, message.Chat.ID, adminRemoveBadFormatText)
		return
	}

	removed, err := b.storage.RemoveDoctor(ctx, id)
	if err != nil {
		b.logger.Error("failed to remove doctor", zap.Error(err), zap.Int64("doctor_id", id))
		b.trackReply(sess, message.Chat.ID, adminRemoveDoctorFailText)
	} else if removed {
		b.trackReply(sess, message.Chat.ID, fmt.Sprintf(adminDoctorRemovedText, id))
		b.logger.Info("doctor removed", zap.Int64("doctor_id", id))
	} else {
		b.trackReply(sess, message.Chat.ID, fmt.Sprintf(adminDoctorNotFoundText, id))
	}

	sess.FinishAction()
	b.showPanel(sess, message.Chat.ID)
}

func (b *Bot) handleNewPasswordStep(ctx context.Context, sess *session.Session, message *tgbotapi.Message) {
	password, ok := session.ParsePassword(message.Text)
	if !ok {
		b.trackReply(sess, message.Chat.ID, adminPasswordTooShortText)
		return
	}

	if err := b.storage.SetAdminPassword(ctx, password); err != nil {
		b.logger.Error("failed to change admin password", zap.Error(err))
		b.trackReply(sess, message.Chat.ID, adminPasswordChangeFail)
	} else {
		b.trackReply(sess, message.Chat.ID, fmt.Sprintf(adminPasswordChangedText, password))
		b.logger.Info("admin password changed")
	}

	sess.FinishAction()
	b.showPanel(sess, message.Chat.ID)
}

func (b *Bot) sendDoctorList(ctx context.Context, sess *session.Session, chatID int64) {
	doctors, err := b.storage.ListDoctors(ctx)
	if err != nil {
		b.logger.Error("failed to list doctors", zap.Error(err))
		b.trackReply(sess, chatID, adminRemoveDoctorFailText)
		return
	}
	if len(doctors) == 0 {
		b.trackReply(sess, chatID, adminNoDoctorsText)
		return
	}

	var sb strings.Builder
	sb.WriteString("📋 <b>Shifokorlar ro'yxati:</b>\n\n")
	for i, doc := range doctors {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, doc.DisplayName()))
		if doc.Username != nil {
			sb.WriteString(fmt.Sprintf("   🔗 @%s\n", *doc.Username))
		}
		sb.WriteString(fmt.Sprintf("   👤 ID: <code>%d</code>\n\n", doc.ID))
	}
	b.trackReply(sess, chatID, sb.String())
}

func (b *Bot) sendChannelAdmins(sess *session.Session, chatID int64) {
	if b.cfg.Telegram.ChannelID == "" {
		b.trackReply(sess, chatID, adminNoChannelText)
		return
	}

	admins, err := b.api.GetChatAdministrators(tgbotapi.ChatAdministratorsConfig{
		ChatConfig: b.channelChatConfig(),
	})
	if err != nil {
		b.trackReply(sess, chatID, fmt.Sprintf(adminChannelSearchFailText, err.Error()))
		return
	}

	var users []tgbotapi.ChatMember
	for _, member := range admins {
		if member.User != nil && !member.User.IsBot {
			users = append(users, member)
		}
	}
	if len(users) == 0 {
		b.trackReply(sess, chatID, adminNoChannelAdminsText)
		return
	}

	var sb strings.Builder
	sb.WriteString("🔍 <b>Kanal administratorlari:</b>\n\n")
	for i, member := range users {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, userFullName(member.User)))
		if member.User.UserName != "" {
			sb.WriteString(fmt.Sprintf("   🔗 @%s\n", member.User.UserName))
		}
		sb.WriteString(fmt.Sprintf("   👤 ID: <code>%d</code>\n\n", member.User.ID))
	}
	b.trackReply(sess, chatID, sb.String())
}

func (b *Bot) handleLogout(ctx context.Context, message *tgbotapi.Message) {
	userID := message.From.ID

	if sess, ok := b.sessions.Peek(userID); ok {
		for _, msgID := range sess.DrainPanelMessages() {
			// Best effort: old messages may already be gone.
			if _, err := b.api.Request(tgbotapi.NewDeleteMessage(message.Chat.ID, msgID)); err != nil {
				b.logger.Debug("failed to delete panel message",
					zap.Int("message_id", msgID), zap.Error(err))
			}
		}
	}
	b.sessions.Delete(userID)

	if _, err := b.sendHTMLMarkup(message.Chat.ID, adminLogoutText, tgbotapi.NewRemoveKeyboard(false)); err != nil {
		b.logger.Warn("failed to send logout message", zap.Error(err))
	}
	b.handleStart(ctx, message)
}

// trackReply sends an HTML message and records it for logout cleanup.
func (b *Bot) trackReply(sess *session.Session, chatID int64, text string) {
	if msg, err := b.sendHTML(chatID, text); err == nil {
		sess.TrackPanelMessage(msg.MessageID)
	}
}

func (b *Bot) trackReplyMarkup(sess *session.Session, chatID int64, text string, markup any) {
	if msg, err := b.sendHTMLMarkup(chatID, text, markup); err == nil {
		sess.TrackPanelMessage(msg.MessageID)
	}
}

// stripUsername extracts a bare username from "@name" or "name" input.
// Plain digits are not usernames; they are treated as IDs by the caller.
func stripUsername(text string) (string, bool) {
	if name, ok := strings.CutPrefix(text, "@"); ok && name != "" {
		return name, true
	}
	if text == "" || strings.ContainsAny(text, " \n") {
		return "", false
	}
	for _, r := range text {
		if r >= '0' && r <= '9' {
			continue
		}
		return text, true
	}
	return "", false
}

// looksLikePhone reports whether the input was probably meant as a phone
// number even though it failed normalization.
func looksLikePhone(text string) bool {
	if !strings.HasPrefix(text, "+") && !strings.HasPrefix(text, "998") {
		return false
	}
	digits := 0
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' || r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return digits >= 7
}
