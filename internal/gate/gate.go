// Package gate aggregates the per-platform subscription checks into one
// decision. Telegram membership is checked live against the configured
// channel; Instagram and YouTube are self-reported flags read from storage.
package gate

import (
	"context"

	"go.uber.org/zap"

	"github.com/kineziomed/medbot/internal/models"
	"github.com/kineziomed/medbot/internal/storage"
)

// ChannelChecker answers whether a user is currently a member of the
// configured Telegram channel. The bot API client implements this.
type ChannelChecker interface {
	IsChannelMember(ctx context.Context, userID int64) (bool, error)
}

// Status holds the per-platform results of one evaluation.
type Status struct {
	Telegram  bool
	Instagram bool
	YouTube   bool
}

// AllSubscribed reports whether every configured platform check passed.
func (s Status) AllSubscribed() bool {
	return s.Telegram && s.Instagram && s.YouTube
}

type Gate struct {
	checker    ChannelChecker
	store      storage.Storage
	hasChannel bool
	logger     *zap.Logger
}

// New builds a gate. hasChannel=false makes the Telegram check vacuously
// true, matching a deployment with no required channel.
func New(checker ChannelChecker, store storage.Storage, hasChannel bool, logger *zap.Logger) *Gate {
	return &Gate{
		checker:    checker,
		store:      store,
		hasChannel: hasChannel,
		logger:     logger,
	}
}

// Evaluate is a pure read; it never fails. A channel membership lookup error
// counts as not subscribed, and missing flag rows read as false.
func (g *Gate) Evaluate(ctx context.Context, userID int64) Status {
	status := Status{Telegram: true}

	if g.hasChannel {
		member, err := g.checker.IsChannelMember(ctx, userID)
		if err != nil {
			g.logger.Error("channel membership check failed",
				zap.Error(err),
				zap.Int64("user_id", userID))
			member = false
		}
		status.Telegram = member
	}

	subs, err := g.store.SocialSubscriptions(ctx, userID)
	if err != nil {
		g.logger.Error("failed to read social subscriptions",
			zap.Error(err),
			zap.Int64("user_id", userID))
		return status
	}
	status.Instagram = subs[models.PlatformInstagram]
	status.YouTube = subs[models.PlatformYouTube]
	return status
}
