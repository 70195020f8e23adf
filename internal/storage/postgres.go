package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/kineziomed/medbot/internal/models"
)

//go:embed migrations.sql
var migrations embed.FS

// DatabaseConfig describes a Postgres connection for deployments that outgrow
// the sqlite file (or run on platforms that only offer DATABASE_URL).
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type PostgresStorage struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresStorage(config DatabaseConfig, logger *zap.Logger) (*PostgresStorage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	storage := &PostgresStorage{db: db, logger: logger}
	if err := storage.initializeSchema(); err != nil {
		return nil, fmt.Errorf("error initializing database schema: %w", err)
	}
	return storage, nil
}

func (s *PostgresStorage) initializeSchema() error {
	migrationSQL, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("error reading migrations file: %w", err)
	}
	if _, err := s.db.Exec(string(migrationSQL)); err != nil {
		return fmt.Errorf("error executing migrations: %w", err)
	}
	return nil
}

func (s *PostgresStorage) AddUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (user_id, username, full_name, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO NOTHING`

	_, err := s.db.ExecContext(ctx, query, user.ID, user.Username, user.FullName, roleOrDefault(user.Role))
	if err != nil {
		s.logger.Error("failed to add user", zap.Error(err), zap.Int64("user_id", user.ID))
		return fmt.Errorf("error adding user: %w", err)
	}
	return nil
}

func roleOrDefault(role models.Role) models.Role {
	if role == "" {
		return models.RoleUser
	}
	return role
}

func (s *PostgresStorage) GetUser(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT user_id, username, full_name, role, created_at
		FROM users
		WHERE user_id = $1`

	user := &models.User{}
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.Username, &user.FullName, &user.Role, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying user: %w", err)
	}
	return user, nil
}

func (s *PostgresStorage) SetUserRole(ctx context.Context, id int64, role models.Role) error {
	_, err := s.db.ExecContext(ctx, `UPDATE users SET role = $1 WHERE user_id = $2`, role, id)
	if err != nil {
		return fmt.Errorf("error setting user role: %w", err)
	}
	return nil
}

func (s *PostgresStorage) AddDoctor(ctx context.Context, id int64, username, fullName *string) error {
	query := `
		INSERT INTO users (user_id, username, full_name, role)
		VALUES ($1, $2, $3, 'doctor')
		ON CONFLICT (user_id) DO UPDATE SET
			role = 'doctor',
			username = COALESCE(EXCLUDED.username, users.username),
			full_name = COALESCE(EXCLUDED.full_name, users.full_name)`

	_, err := s.db.ExecContext(ctx, query, id, username, fullName)
	if err != nil {
		s.logger.Error("failed to add doctor", zap.Error(err), zap.Int64("user_id", id))
		return fmt.Errorf("error adding doctor: %w", err)
	}
	return nil
}

func (s *PostgresStorage) RemoveDoctor(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE users SET role = 'user' WHERE user_id = $1 AND role = 'doctor'`, id)
	if err != nil {
		s.logger.Error("failed to remove doctor", zap.Error(err), zap.Int64("user_id", id))
		return false, fmt.Errorf("error removing doctor: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error getting rows affected: %w", err)
	}
	return affected > 0, nil
}

func (s *PostgresStorage) ListDoctors(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT user_id, username, full_name, role, created_at
		FROM users
		WHERE role = 'doctor'
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying doctors: %w", err)
	}
	defer rows.Close()

	var doctors []*models.User
	for rows.Next() {
		doctor := &models.User{}
		if err := rows.Scan(&doctor.ID, &doctor.Username, &doctor.FullName, &doctor.Role, &doctor.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning doctor: %w", err)
		}
		doctors = append(doctors, doctor)
	}
	return doctors, rows.Err()
}

func (s *PostgresStorage) AddQuestion(ctx context.Context, userID int64, messageID int, text string) (int64, error) {
	query := `
		INSERT INTO questions (user_id, message_id, question_text)
		VALUES ($1, $2, $3)
		RETURNING question_id`

	var id int64
	err := s.db.QueryRowContext(ctx, query, userID, messageID, text).Scan(&id)
	if err != nil {
		s.logger.Error("failed to add question", zap.Error(err), zap.Int64("user_id", userID))
		return 0, fmt.Errorf("error adding question: %w", err)
	}
	return id, nil
}

func (s *PostgresStorage) GetQuestion(ctx context.Context, id int64) (*models.Question, error) {
	query := `
		SELECT question_id, user_id, message_id, question_text, status, created_at
		FROM questions
		WHERE question_id = $1`

	question := &models.Question{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&question.ID, &question.UserID, &question.MessageID,
		&question.Text, &question.Status, &question.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying question: %w", err)
	}
	return question, nil
}

func (s *PostgresStorage) GetUserQuestions(ctx context.Context, userID int64, limit int) ([]*models.Question, error) {
	query := `
		SELECT question_id, user_id, message_id, question_text, status, created_at
		FROM questions
		WHERE user_id = $1
		ORDER BY created_at DESC, question_id DESC
		LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying user questions: %w", err)
	}
	defer rows.Close()

	var questions []*models.Question
	for rows.Next() {
		question := &models.Question{}
		if err := rows.Scan(
			&question.ID, &question.UserID, &question.MessageID,
			&question.Text, &question.Status, &question.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning question: %w", err)
		}
		questions = append(questions, question)
	}
	return questions, rows.Err()
}

// AddAnswer keeps the original two-statement shape: the insert and the status
// flip are separate statements on one connection, not wrapped in an explicit
// transaction. A crash in between leaves an answered question marked pending.
func (s *PostgresStorage) AddAnswer(ctx context.Context, questionID, doctorID int64, messageID int, text string) (int64, error) {
	query := `
		INSERT INTO answers (question_id, doctor_id, message_id, answer_text)
		VALUES ($1, $2, $3, $4)
		RETURNING answer_id`

	var id int64
	err := s.db.QueryRowContext(ctx, query, questionID, doctorID, messageID, text).Scan(&id)
	if err != nil {
		s.logger.Error("failed to add answer",
			zap.Error(err),
			zap.Int64("question_id", questionID),
			zap.Int64("doctor_id", doctorID))
		return 0, fmt.Errorf("error adding answer: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE questions SET status = 'answered' WHERE question_id = $1`, questionID)
	if err != nil {
		s.logger.Error("failed to mark question answered",
			zap.Error(err),
			zap.Int64("question_id", questionID))
		return 0, fmt.Errorf("error updating question status: %w", err)
	}
	return id, nil
}

func (s *PostgresStorage) GetAdminPassword(ctx context.Context) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM admin_settings WHERE key = $1`, models.AdminPasswordKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultAdminPassword, nil
	}
	if err != nil {
		return "", fmt.Errorf("error querying admin password: %w", err)
	}
	return value, nil
}

func (s *PostgresStorage) SetAdminPassword(ctx context.Context, password string) error {
	query := `
		INSERT INTO admin_settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`

	if _, err := s.db.ExecContext(ctx, query, models.AdminPasswordKey, password); err != nil {
		s.logger.Error("failed to set admin password", zap.Error(err))
		return fmt.Errorf("error setting admin password: %w", err)
	}
	return nil
}

func (s *PostgresStorage) SetSocialSubscription(ctx context.Context, userID int64, platform string, subscribed bool) error {
	query := `
		INSERT INTO social_subscriptions (user_id, platform, subscribed, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id, platform) DO UPDATE SET
			subscribed = EXCLUDED.subscribed,
			updated_at = CURRENT_TIMESTAMP`

	if _, err := s.db.ExecContext(ctx, query, userID, platform, subscribed); err != nil {
		s.logger.Error("failed to set social subscription",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("platform", platform))
		return fmt.Errorf("error setting %s subscription: %w", platform, err)
	}
	return nil
}

func (s *PostgresStorage) SocialSubscriptions(ctx context.Context, userID int64) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT platform, subscribed FROM social_subscriptions WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying social subscriptions: %w", err)
	}
	defer rows.Close()

	result := map[string]bool{
		models.PlatformInstagram: false,
		models.PlatformYouTube:   false,
	}
	for rows.Next() {
		var platform string
		var subscribed bool
		if err := rows.Scan(&platform, &subscribed); err != nil {
			return nil, fmt.Errorf("error scanning subscription: %w", err)
		}
		result[platform] = subscribed
	}
	return result, rows.Err()
}

func (s *PostgresStorage) ClearAllData(ctx context.Context, keepAdminSettings bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	statements := []string{
		`DELETE FROM answers`,
		`DELETE FROM questions`,
		`DELETE FROM social_subscriptions`,
		`DELETE FROM users`,
	}
	if !keepAdminSettings {
		statements = append(statements,
			`DELETE FROM admin_settings`,
			`INSERT INTO admin_settings (key, value) VALUES ('admin_password', 'admin123')`)
	}
	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			s.logger.Error("failed to clear database", zap.Error(err))
			return fmt.Errorf("error clearing database: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing clear: %w", err)
	}
	s.logger.Info("database cleared", zap.Bool("kept_admin_settings", keepAdminSettings))
	return nil
}

func (s *PostgresStorage) ClearCompletely(ctx context.Context) error {
	return s.ClearAllData(ctx, false)
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}
