package gate

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/kineziomed/medbot/internal/models"
	"github.com/kineziomed/medbot/internal/storage"
)

type fakeChecker struct {
	member bool
	err    error
	calls  int
}

func (f *fakeChecker) IsChannelMember(ctx context.Context, userID int64) (bool, error) {
	f.calls++
	return f.member, f.err
}

func TestEvaluateAllPlatforms(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStorage()
	checker := &fakeChecker{member: true}
	g := New(checker, store, true, zap.NewNop())

	status := g.Evaluate(ctx, 555)
	if !status.Telegram {
		t.Error("telegram check failed for a member")
	}
	if status.Instagram || status.YouTube {
		t.Error("social flags true without confirmation")
	}
	if status.AllSubscribed() {
		t.Error("AllSubscribed true with missing social flags")
	}

	store.SetSocialSubscription(ctx, 555, models.PlatformInstagram, true)
	store.SetSocialSubscription(ctx, 555, models.PlatformYouTube, true)

	status = g.Evaluate(ctx, 555)
	if !status.AllSubscribed() {
		t.Errorf("AllSubscribed false with everything confirmed: %+v", status)
	}
}

func TestEvaluateFailsClosedOnAPIError(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStorage()
	checker := &fakeChecker{err: errors.New("telegram: 502")}
	g := New(checker, store, true, zap.NewNop())

	status := g.Evaluate(ctx, 555)
	if status.Telegram {
		t.Error("membership error must read as not subscribed")
	}
}

func TestEvaluateWithoutConfiguredChannel(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStorage()
	checker := &fakeChecker{}
	g := New(checker, store, false, zap.NewNop())

	status := g.Evaluate(ctx, 555)
	if !status.Telegram {
		t.Error("telegram check must be vacuously true without a channel")
	}
	if checker.calls != 0 {
		t.Errorf("membership API called %d times without a configured channel", checker.calls)
	}
}
