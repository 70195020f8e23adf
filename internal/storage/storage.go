package storage

import (
	"context"
	"errors"

	"github.com/kineziomed/medbot/internal/models"
)

// ErrNotFound is returned when a looked-up row does not exist.
var ErrNotFound = errors.New("storage: not found")

// Storage is the persistence boundary. Errors never carry driver specifics
// past this interface; callers log them and tell the user to retry.
type Storage interface {
	// Users and the doctor roster.
	AddUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id int64) (*models.User, error)
	SetUserRole(ctx context.Context, id int64, role models.Role) error
	// AddDoctor creates the user as a doctor or promotes an existing one.
	// Non-nil username/full name overwrite stored values; nil never erases.
	AddDoctor(ctx context.Context, id int64, username, fullName *string) error
	// RemoveDoctor demotes a doctor back to a regular user. The bool reports
	// whether a doctor row was actually demoted.
	RemoveDoctor(ctx context.Context, id int64) (bool, error)
	ListDoctors(ctx context.Context) ([]*models.User, error)

	// Questions and answers.
	AddQuestion(ctx context.Context, userID int64, messageID int, text string) (int64, error)
	GetQuestion(ctx context.Context, id int64) (*models.Question, error)
	GetUserQuestions(ctx context.Context, userID int64, limit int) ([]*models.Question, error)
	// AddAnswer appends an answer and flips the question to answered.
	// Answering an already-answered question is permitted.
	AddAnswer(ctx context.Context, questionID, doctorID int64, messageID int, text string) (int64, error)

	// Admin settings.
	GetAdminPassword(ctx context.Context) (string, error)
	SetAdminPassword(ctx context.Context, password string) error

	// Self-reported social subscription flags.
	SetSocialSubscription(ctx context.Context, userID int64, platform string, subscribed bool) error
	SocialSubscriptions(ctx context.Context, userID int64) (map[string]bool, error)

	// Maintenance (cmd/cleardb).
	ClearAllData(ctx context.Context, keepAdminSettings bool) error
	ClearCompletely(ctx context.Context) error

	Close() error
}
