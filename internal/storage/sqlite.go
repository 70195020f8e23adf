package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kineziomed/medbot/internal/models"
)

// GormStorage is the default file-backed store. The schema is migrated on
// open and the sentinel admin password is seeded when missing.
type GormStorage struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSQLiteStorage(path string, logger *zap.Logger) (*GormStorage, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening database %q: %w", path, err)
	}
	return NewGormStorage(db, logger)
}

// NewGormStorage wraps a pre-configured *gorm.DB; tests inject an in-memory
// sqlite handle here.
func NewGormStorage(db *gorm.DB, logger *zap.Logger) (*GormStorage, error) {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.Answer{},
		&models.AdminSetting{},
		&models.SocialSubscription{},
	); err != nil {
		return nil, fmt.Errorf("error migrating schema: %w", err)
	}

	// Seed the default panel password only when no row exists.
	seed := models.AdminSetting{Key: models.AdminPasswordKey, Value: models.DefaultAdminPassword}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return nil, fmt.Errorf("error seeding admin password: %w", err)
	}

	return &GormStorage{db: db, logger: logger}, nil
}

func (s *GormStorage) AddUser(ctx context.Context, user *models.User) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(user).Error
	if err != nil {
		s.logger.Error("failed to add user", zap.Error(err), zap.Int64("user_id", user.ID))
		return fmt.Errorf("error adding user: %w", err)
	}
	return nil
}

func (s *GormStorage) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "user_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying user: %w", err)
	}
	return &user, nil
}

func (s *GormStorage) SetUserRole(ctx context.Context, id int64, role models.Role) error {
	err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("user_id = ?", id).
		Update("role", role).Error
	if err != nil {
		return fmt.Errorf("error setting user role: %w", err)
	}
	return nil
}

func (s *GormStorage) AddDoctor(ctx context.Context, id int64, username, fullName *string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.First(&existing, "user_id = ?", id).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&models.User{
				ID:       id,
				Username: username,
				FullName: fullName,
				Role:     models.RoleDoctor,
			}).Error
		case err != nil:
			return err
		}

		updates := map[string]any{"role": models.RoleDoctor}
		if username != nil {
			updates["username"] = *username
		}
		if fullName != nil {
			updates["full_name"] = *fullName
		}
		return tx.Model(&models.User{}).Where("user_id = ?", id).Updates(updates).Error
	})
	if err != nil {
		s.logger.Error("failed to add doctor", zap.Error(err), zap.Int64("user_id", id))
		return fmt.Errorf("error adding doctor: %w", err)
	}
	return nil
}

func (s *GormStorage) RemoveDoctor(ctx context.Context, id int64) (bool, error) {
	res := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("user_id = ? AND role = ?", id, models.RoleDoctor).
		Update("role", models.RoleUser)
	if res.Error != nil {
		s.logger.Error("failed to remove doctor", zap.Error(res.Error), zap.Int64("user_id", id))
		return false, fmt.Errorf("error removing doctor: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (s *GormStorage) ListDoctors(ctx context.Context) ([]*models.User, error) {
	var doctors []*models.User
	err := s.db.WithContext(ctx).
		Where("role = ?", models.RoleDoctor).
		Order("created_at DESC").
		Find(&doctors).Error
	if err != nil {
		return nil, fmt.Errorf("error listing doctors: %w", err)
	}
	return doctors, nil
}

func (s *GormStorage) AddQuestion(ctx context.Context, userID int64, messageID int, text string) (int64, error) {
	question := models.Question{
		UserID:    userID,
		MessageID: messageID,
		Text:      text,
		Status:    models.StatusPending,
	}
	if err := s.db.WithContext(ctx).Create(&question).Error; err != nil {
		s.logger.Error("failed to add question", zap.Error(err), zap.Int64("user_id", userID))
		return 0, fmt.Errorf("error adding question: %w", err)
	}
	return question.ID, nil
}

func (s *GormStorage) GetQuestion(ctx context.Context, id int64) (*models.Question, error) {
	var question models.Question
	err := s.db.WithContext(ctx).First(&question, "question_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying question: %w", err)
	}
	return &question, nil
}

func (s *GormStorage) GetUserQuestions(ctx context.Context, userID int64, limit int) ([]*models.Question, error) {
	var questions []*models.Question
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, question_id DESC").
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("error querying user questions: %w", err)
	}
	return questions, nil
}

func (s *GormStorage) AddAnswer(ctx context.Context, questionID, doctorID int64, messageID int, text string) (int64, error) {
	answer := models.Answer{
		QuestionID: questionID,
		DoctorID:   doctorID,
		MessageID:  messageID,
		Text:       text,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&answer).Error; err != nil {
			return err
		}
		return tx.Model(&models.Question{}).
			Where("question_id = ?", questionID).
			Update("status", models.StatusAnswered).Error
	})
	if err != nil {
		s.logger.Error("failed to add answer",
			zap.Error(err),
			zap.Int64("question_id", questionID),
			zap.Int64("doctor_id", doctorID))
		return 0, fmt.Errorf("error adding answer: %w", err)
	}
	return answer.ID, nil
}

func (s *GormStorage) GetAdminPassword(ctx context.Context) (string, error) {
	var setting models.AdminSetting
	err := s.db.WithContext(ctx).First(&setting, "key = ?", models.AdminPasswordKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultAdminPassword, nil
	}
	if err != nil {
		return "", fmt.Errorf("error querying admin password: %w", err)
	}
	return setting.Value, nil
}

func (s *GormStorage) SetAdminPassword(ctx context.Context, password string) error {
	setting := models.AdminSetting{Key: models.AdminPasswordKey, Value: password}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&setting).Error
	if err != nil {
		s.logger.Error("failed to set admin password", zap.Error(err))
		return fmt.Errorf("error setting admin password: %w", err)
	}
	return nil
}

func (s *GormStorage) SetSocialSubscription(ctx context.Context, userID int64, platform string, subscribed bool) error {
	sub := models.SocialSubscription{
		UserID:     userID,
		Platform:   platform,
		Subscribed: subscribed,
		UpdatedAt:  time.Now(),
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&sub).Error
	if err != nil {
		s.logger.Error("failed to set social subscription",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("platform", platform))
		return fmt.Errorf("error setting %s subscription: %w", platform, err)
	}
	return nil
}

func (s *GormStorage) SocialSubscriptions(ctx context.Context, userID int64) (map[string]bool, error) {
	var subs []models.SocialSubscription
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&subs).Error
	if err != nil {
		return nil, fmt.Errorf("error querying social subscriptions: %w", err)
	}
	result := map[string]bool{
		models.PlatformInstagram: false,
		models.PlatformYouTube:   false,
	}
	for _, sub := range subs {
		result[sub.Platform] = sub.Subscribed
	}
	return result, nil
}

func (s *GormStorage) ClearAllData(ctx context.Context, keepAdminSettings bool) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{
			&models.Answer{},
			&models.Question{},
			&models.SocialSubscription{},
			&models.User{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}
		if keepAdminSettings {
			return nil
		}
		if err := tx.Where("1 = 1").Delete(&models.AdminSetting{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.AdminSetting{
			Key:   models.AdminPasswordKey,
			Value: models.DefaultAdminPassword,
		}).Error
	})
	if err != nil {
		s.logger.Error("failed to clear database", zap.Error(err))
		return fmt.Errorf("error clearing database: %w", err)
	}
	s.logger.Info("database cleared", zap.Bool("kept_admin_settings", keepAdminSettings))
	return nil
}

func (s *GormStorage) ClearCompletely(ctx context.Context) error {
	return s.ClearAllData(ctx, false)
}

func (s *GormStorage) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
