package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// channelChatConfig addresses the configured channel: numeric IDs go into
// ChatID, @usernames into SuperGroupUsername.
func (b *Bot) channelChatConfig() tgbotapi.ChatConfig {
	channel := b.cfg.Telegram.ChannelID
	if id, err := strconv.ParseInt(channel, 10, 64); err == nil {
		return tgbotapi.ChatConfig{ChatID: id}
	}
	if !strings.HasPrefix(channel, "@") {
		channel = "@" + channel
	}
	return tgbotapi.ChatConfig{SuperGroupUsername: channel}
}

// IsChannelMember implements gate.ChannelChecker with a live getChatMember
// call. Statuses member, administrator and creator count as subscribed.
func (b *Bot) IsChannelMember(ctx context.Context, userID int64) (bool, error) {
	chat := b.channelChatConfig()
	member, err := b.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			ChatID:             chat.ChatID,
			SuperGroupUsername: chat.SuperGroupUsername,
			UserID:             userID,
		},
	})
	if err != nil {
		return false, fmt.Errorf("getChatMember: %w", err)
	}
	switch member.Status {
	case "member", "administrator", "creator":
		return true, nil
	}
	return false, nil
}

// createInviteLink makes a single-use invite link for the configured channel.
// When the link cannot be created the public t.me link is returned instead;
// an empty string means no channel is configured at all.
func (b *Bot) createInviteLink(userID int64) string {
	channel := strings.TrimPrefix(b.cfg.Telegram.ChannelID, "@")
	if channel == "" {
		return ""
	}

	publicLink := "https://t.me/" + channel

	var chatID int64
	if id, err := strconv.ParseInt(channel, 10, 64); err == nil {
		chatID = id
	} else {
		chat, err := b.api.GetChat(tgbotapi.ChatInfoConfig{
			ChatConfig: tgbotapi.ChatConfig{SuperGroupUsername: "@" + channel},
		})
		if err != nil {
			b.logger.Warn("failed to resolve channel chat id",
				zap.Error(err),
				zap.String("channel", channel))
			return publicLink
		}
		chatID = chat.ID
	}

	resp, err := b.api.Request(tgbotapi.CreateChatInviteLinkConfig{
		ChatConfig:  tgbotapi.ChatConfig{ChatID: chatID},
		Name:        fmt.Sprintf("User_%d_%s", userID, uuid.NewString()[:8]),
		MemberLimit: 1,
	})
	if err != nil {
		b.logger.Error("failed to create invite link",
			zap.Error(err),
			zap.Int64("user_id", userID))
		return publicLink
	}

	var link tgbotapi.ChatInviteLink
	if err := json.Unmarshal(resp.Result, &link); err != nil {
		b.logger.Error("failed to decode invite link response", zap.Error(err))
		return publicLink
	}
	return link.InviteLink
}

// resolveChat looks a user up by ID for roster enrichment.
func (b *Bot) resolveChat(userID int64) (*tgbotapi.Chat, error) {
	chat, err := b.api.GetChat(tgbotapi.ChatInfoConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: userID},
	})
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

// resolveChatByUsername looks a user up by @username. Telegram only resolves
// usernames of accounts the bot has seen.
func (b *Bot) resolveChatByUsername(username string) (*tgbotapi.Chat, error) {
	chat, err := b.api.GetChat(tgbotapi.ChatInfoConfig{
		ChatConfig: tgbotapi.ChatConfig{SuperGroupUsername: "@" + username},
	})
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

func chatFullName(chat *tgbotapi.Chat) string {
	name := strings.TrimSpace(strings.TrimSpace(chat.FirstName) + " " + strings.TrimSpace(chat.LastName))
	return name
}

func userFullName(user *tgbotapi.User) string {
	return strings.TrimSpace(strings.TrimSpace(user.FirstName) + " " + strings.TrimSpace(user.LastName))
}

// setupBotProfile registers the command menu and bot descriptions.
// Best-effort: a failure is logged and startup continues.
func (b *Bot) setupBotProfile() {
	commands := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: "Botni ishga tushirish"},
		tgbotapi.BotCommand{Command: "myquestions", Description: "Mening savollarim"},
		tgbotapi.BotCommand{Command: "help", Description: "Yordam"},
	)
	if _, err := b.api.Request(commands); err != nil {
		b.logger.Warn("failed to set bot commands", zap.Error(err))
	}

	if _, err := b.api.MakeRequest("setMyDescription", tgbotapi.Params{
		"description": botDescription,
	}); err != nil {
		b.logger.Warn("failed to set bot description", zap.Error(err))
	}
	if _, err := b.api.MakeRequest("setMyShortDescription", tgbotapi.Params{
		"short_description": botShortDescription,
	}); err != nil {
		b.logger.Warn("failed to set bot short description", zap.Error(err))
	}
}

// sendHTML sends an HTML-formatted message, logging and returning any error.
func (b *Bot) sendHTML(chatID int64, text string) (tgbotapi.Message, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	sent, err := b.api.Send(msg)
	if err != nil {
		b.logger.Error("failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
	return sent, err
}

// sendHTMLMarkup is sendHTML with a reply markup (inline or reply keyboard).
func (b *Bot) sendHTMLMarkup(chatID int64, text string, markup any) (tgbotapi.Message, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = markup
	sent, err := b.api.Send(msg)
	if err != nil {
		b.logger.Error("failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
	return sent, err
}

// forwardContent delivers the source message's media kind with the given
// HTML envelope: media keeps its file ID with the envelope as caption, plain
// text is sent as a message.
func (b *Bot) forwardContent(chatID int64, src *tgbotapi.Message, envelopeText string) error {
	var chattable tgbotapi.Chattable
	switch {
	case len(src.Photo) > 0:
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(src.Photo[len(src.Photo)-1].FileID))
		photo.Caption = envelopeText
		photo.ParseMode = tgbotapi.ModeHTML
		chattable = photo
	case src.Video != nil:
		video := tgbotapi.NewVideo(chatID, tgbotapi.FileID(src.Video.FileID))
		video.Caption = envelopeText
		video.ParseMode = tgbotapi.ModeHTML
		chattable = video
	case src.Document != nil:
		document := tgbotapi.NewDocument(chatID, tgbotapi.FileID(src.Document.FileID))
		document.Caption = envelopeText
		document.ParseMode = tgbotapi.ModeHTML
		chattable = document
	default:
		msg := tgbotapi.NewMessage(chatID, envelopeText)
		msg.ParseMode = tgbotapi.ModeHTML
		chattable = msg
	}
	_, err := b.api.Send(chattable)
	return err
}

// answerCallback acknowledges a callback query with a toast or alert.
func (b *Bot) answerCallback(queryID, text string, alert bool) {
	callback := tgbotapi.NewCallback(queryID, text)
	callback.ShowAlert = alert
	if _, err := b.api.Request(callback); err != nil {
		b.logger.Warn("failed to answer callback query", zap.Error(err))
	}
}
