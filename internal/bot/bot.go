package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/kineziomed/medbot/internal/gate"
	"github.com/kineziomed/medbot/internal/models"
	"github.com/kineziomed/medbot/internal/session"
	"github.com/kineziomed/medbot/internal/storage"
	"github.com/kineziomed/medbot/pkg/config"
)

type Bot struct {
	api      *tgbotapi.BotAPI
	storage  storage.Storage
	sessions *session.Store
	gate     *gate.Gate
	cfg      *config.Config
	logger   *zap.Logger
}

func New(cfg *config.Config, store storage.Storage, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	b := &Bot{
		api:      api,
		storage:  store,
		sessions: session.NewStore(),
		cfg:      cfg,
		logger:   logger,
	}
	b.gate = gate.New(b, store, cfg.Telegram.ChannelID != "", logger)
	return b, nil
}

func (b *Bot) Start() error {
	b.setupBotProfile()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	b.logger.Info("bot started", zap.String("username", b.api.Self.UserName))

	// Updates are processed one at a time in delivery order; the admin state
	// machine and the reply correlation both rely on that.
	for update := range updates {
		b.handleUpdate(update)
	}
	return nil
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	ctx := context.Background()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		return
	}

	if message.IsCommand() {
		b.handleCommand(ctx, message)
		return
	}

	// Doctor replies are matched before anything else, mirroring the
	// dispatch order users rely on: a doctor replying to an envelope is
	// answering, not asking.
	if message.ReplyToMessage != nil {
		if b.handleDoctorReply(ctx, message) {
			return
		}
	}

	// Admin conversation steps (login, password, panel data entry).
	if b.handleAdminMessage(ctx, message) {
		return
	}

	b.handleUserQuestion(ctx, message)
}

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		b.handleStart(ctx, message)
	case "help":
		b.handleHelp(ctx, message)
	case "myquestions":
		b.handleMyQuestions(ctx, message)
	case "admin":
		b.handleAdminCommand(ctx, message)
	case "setdoctor":
		b.sendHTML(message.Chat.ID, deprecatedCommandText)
	default:
		b.sendHTML(message.Chat.ID, unknownCommandText)
	}
}

func (b *Bot) handleStart(ctx context.Context, message *tgbotapi.Message) {
	from := message.From

	user := &models.User{ID: from.ID}
	if from.UserName != "" {
		username := from.UserName
		user.Username = &username
	}
	if name := userFullName(from); name != "" {
		user.FullName = &name
	}
	if err := b.storage.AddUser(ctx, user); err != nil {
		b.logger.Error("failed to register user", zap.Error(err), zap.Int64("user_id", from.ID))
	}

	status := b.gate.Evaluate(ctx, from.ID)
	if !status.AllSubscribed() {
		b.sendGatePrompt(message.Chat.ID, status, gateHeaderStart, true)
		return
	}

	stored, err := b.storage.GetUser(ctx, from.ID)
	if err == nil && stored.Role == models.RoleDoctor {
		b.sendHTML(message.Chat.ID, doctorWelcomeText)
		return
	}

	b.sendHTML(message.Chat.ID, welcomeText)
}

func (b *Bot) handleHelp(ctx context.Context, message *tgbotapi.Message) {
	status := b.gate.Evaluate(ctx, message.From.ID)
	if !status.AllSubscribed() {
		b.sendGatePrompt(message.Chat.ID, status, gateHeaderBlock, false)
		return
	}
	b.sendHTML(message.Chat.ID, helpText)
}
