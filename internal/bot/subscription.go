package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/kineziomed/medbot/internal/gate"
	"github.com/kineziomed/medbot/internal/models"
)

// subscriptionKeyboard builds the inline keyboard for the gate message. Each
// unsatisfied platform gets its subscribe button above its confirm button;
// when showSatisfied is set, satisfied platforms keep a confirm button so the
// user can re-check (the /start variant).
func (b *Bot) subscriptionKeyboard(status gate.Status, showSatisfied bool) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	if !status.Telegram {
		rows = append(rows,
			tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(btnTelegramJoin, cbGetInviteLink)),
			tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(btnTelegramConfirm, cbCheckTelegramSub)))
	} else if showSatisfied {
		rows = append(rows,
			tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(btnTelegramConfirm, cbCheckTelegramSub)))
	}

	if !status.Instagram {
		rows = append(rows,
			tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonURL(platformInstagram, b.cfg.Social.InstagramURL)),
			tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(btnInstagramConfirm, cbConfirmInstagram)))
	} else if showSatisfied {
		rows = append(rows,
			tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(btnInstagramConfirm, cbConfirmInstagram)))
	}

	if !status.YouTube {
		rows = append(rows,
			tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonURL(platformYouTube, b.cfg.Social.YouTubeURL)),
			tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(btnYouTubeConfirm, cbConfirmYouTube)))
	} else if showSatisfied {
		rows = append(rows,
			tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(btnYouTubeConfirm, cbConfirmYouTube)))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// gateChecklist renders the per-platform status lines. When checklist is
// false only the unsatisfied platforms are listed.
func gateChecklist(status gate.Status, checklist bool) string {
	var lines []string
	add := func(satisfied bool, label string) {
		switch {
		case !satisfied:
			if checklist {
				lines = append(lines, "• ❌ "+label)
			} else {
				lines = append(lines, "• "+label)
			}
		case checklist:
			lines = append(lines, "• ✅ "+label)
		}
	}
	add(status.Telegram, platformTelegram)
	add(status.Instagram, platformInstagram)
	add(status.YouTube, platformYouTube)
	return strings.Join(lines, "\n")
}

// sendGatePrompt sends the "subscribe first" message. The /start variant
// (checklist=true) opens with the welcome intro and shows every platform.
func (b *Bot) sendGatePrompt(chatID int64, status gate.Status, header string, checklist bool) {
	text := header + "\n\n" + gateChecklist(status, checklist) + "\n\n" + gateFooter
	if checklist {
		text = welcomeIntro + "\n\n" + text
	}
	b.sendHTMLMarkup(chatID, text, b.subscriptionKeyboard(status, checklist))
}

// refreshGateMessage re-evaluates the gate after a confirmation callback and
// edits the originating message in place, falling back to a fresh message
// when the edit is rejected.
func (b *Bot) refreshGateMessage(ctx context.Context, query *tgbotapi.CallbackQuery) {
	userID := query.From.ID
	chatID := query.Message.Chat.ID
	status := b.gate.Evaluate(ctx, userID)

	if status.AllSubscribed() {
		edit := tgbotapi.NewEditMessageText(chatID, query.Message.MessageID, allSubscribedText)
		edit.ParseMode = tgbotapi.ModeHTML
		if _, err := b.api.Send(edit); err != nil {
			b.logger.Warn("failed to edit gate message", zap.Error(err))
			b.sendHTML(chatID, allSubscribedText)
		}
		return
	}

	text := gateHeaderBlock + "\n\n" + gateChecklist(status, false) + "\n\n" + gateFooter
	markup := b.subscriptionKeyboard(status, false)
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, query.Message.MessageID, text, markup)
	edit.ParseMode = tgbotapi.ModeHTML
	if _, err := b.api.Send(edit); err != nil {
		b.logger.Warn("failed to edit gate message", zap.Error(err))
		b.sendHTMLMarkup(chatID, text, markup)
	}
}

func (b *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		b.answerCallback(query.ID, "", false)
		return
	}

	switch query.Data {
	case cbGetInviteLink:
		b.handleInviteLinkCallback(query)
	case cbCheckTelegramSub:
		b.handleTelegramCheckCallback(ctx, query)
	case cbConfirmInstagram:
		b.handleSocialConfirmCallback(ctx, query, models.PlatformInstagram, "Instagramга обуна тасдиқланди! ✅")
	case cbConfirmYouTube:
		b.handleSocialConfirmCallback(ctx, query, models.PlatformYouTube, "YouTubeга обуна тасдиқланди! ✅")
	default:
		b.answerCallback(query.ID, "", false)
	}
}

func (b *Bot) handleInviteLinkCallback(query *tgbotapi.CallbackQuery) {
	link := b.createInviteLink(query.From.ID)
	if link == "" {
		b.answerCallback(query.ID, "Havola yaratishda xatolik yuz berdi", true)
		return
	}
	b.answerCallback(query.ID, "Havola yuborildi! ✅", false)
	b.sendHTML(query.Message.Chat.ID, fmt.Sprintf(inviteLinkText, link))
}

func (b *Bot) handleTelegramCheckCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	userID := query.From.ID

	subscribed := true
	if b.cfg.Telegram.ChannelID != "" {
		member, err := b.IsChannelMember(ctx, userID)
		if err != nil {
			b.logger.Error("channel membership check failed",
				zap.Error(err),
				zap.Int64("user_id", userID))
			member = false
		}
		subscribed = member
	}

	if subscribed {
		b.answerCallback(query.ID, "Telegram каналга обуна тасдиқланди! ✅", false)
		b.refreshGateMessage(ctx, query)
		return
	}

	b.answerCallback(query.ID, "❌ Siz hali kanalga obuna bo'lmadingiz", true)

	link := b.createInviteLink(userID)
	text := fmt.Sprintf(notSubscribedRetryText, link)
	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(btnTelegramJoin, cbGetInviteLink)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(btnTelegramConfirm, cbCheckTelegramSub)))

	edit := tgbotapi.NewEditMessageTextAndMarkup(query.Message.Chat.ID, query.Message.MessageID, text, markup)
	edit.ParseMode = tgbotapi.ModeHTML
	if _, err := b.api.Send(edit); err != nil {
		b.logger.Warn("failed to edit gate message", zap.Error(err))
		b.sendHTMLMarkup(query.Message.Chat.ID, text, markup)
	}
}

func (b *Bot) handleSocialConfirmCallback(ctx context.Context, query *tgbotapi.CallbackQuery, platform, confirmation string) {
	if err := b.storage.SetSocialSubscription(ctx, query.From.ID, platform, true); err != nil {
		b.answerCallback(query.ID, "Xatolik yuz berdi, qayta urinib ko'ring", true)
		return
	}
	b.answerCallback(query.ID, confirmation, false)
	b.refreshGateMessage(ctx, query)
}
