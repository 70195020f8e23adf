package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kineziomed/medbot/internal/models"
)

// MemoryStorage keeps everything in process memory. Used for local runs
// without a database file and as a fixture in bot-level tests.
type MemoryStorage struct {
	mu            sync.RWMutex
	users         map[int64]*models.User
	questions     map[int64]*models.Question
	answers       map[int64]*models.Answer
	settings      map[string]string
	subscriptions map[int64]map[string]bool

	nextQuestionID int64
	nextAnswerID   int64
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users:          make(map[int64]*models.User),
		questions:      make(map[int64]*models.Question),
		answers:        make(map[int64]*models.Answer),
		settings:       make(map[string]string),
		subscriptions:  make(map[int64]map[string]bool),
		nextQuestionID: 1,
		nextAnswerID:   1,
	}
}

func (s *MemoryStorage) AddUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.ID]; exists {
		return nil
	}
	stored := *user
	if stored.Role == "" {
		stored.Role = models.RoleUser
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	s.users[user.ID] = &stored
	return nil
}

func (s *MemoryStorage) GetUser(ctx context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[id]
	if !exists {
		return nil, ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *MemoryStorage) SetUserRole(ctx context.Context, id int64, role models.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user, exists := s.users[id]; exists {
		user.Role = role
	}
	return nil
}

func (s *MemoryStorage) AddDoctor(ctx context.Context, id int64, username, fullName *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[id]
	if !exists {
		s.users[id] = &models.User{
			ID:        id,
			Username:  username,
			FullName:  fullName,
			Role:      models.RoleDoctor,
			CreatedAt: time.Now(),
		}
		return nil
	}

	user.Role = models.RoleDoctor
	if username != nil {
		user.Username = username
	}
	if fullName != nil {
		user.FullName = fullName
	}
	return nil
}

func (s *MemoryStorage) RemoveDoctor(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.users[id]
	if !exists || user.Role != models.RoleDoctor {
		return false, nil
	}
	user.Role = models.RoleUser
	return true, nil
}

func (s *MemoryStorage) ListDoctors(ctx context.Context) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var doctors []*models.User
	for _, user := range s.users {
		if user.Role == models.RoleDoctor {
			copied := *user
			doctors = append(doctors, &copied)
		}
	}
	sort.Slice(doctors, func(i, j int) bool {
		return doctors[i].CreatedAt.After(doctors[j].CreatedAt)
	})
	return doctors, nil
}

func (s *MemoryStorage) AddQuestion(ctx context.Context, userID int64, messageID int, text string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextQuestionID
	s.nextQuestionID++
	s.questions[id] = &models.Question{
		ID:        id,
		UserID:    userID,
		MessageID: messageID,
		Text:      text,
		Status:    models.StatusPending,
		CreatedAt: time.Now(),
	}
	return id, nil
}

func (s *MemoryStorage) GetQuestion(ctx context.Context, id int64) (*models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	question, exists := s.questions[id]
	if !exists {
		return nil, ErrNotFound
	}
	copied := *question
	return &copied, nil
}

func (s *MemoryStorage) GetUserQuestions(ctx context.Context, userID int64, limit int) ([]*models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var questions []*models.Question
	for _, question := range s.questions {
		if question.UserID == userID {
			copied := *question
			questions = append(questions, &copied)
		}
	}
	sort.Slice(questions, func(i, j int) bool {
		return questions[i].ID > questions[j].ID
	})
	if len(questions) > limit {
		questions = questions[:limit]
	}
	return questions, nil
}

func (s *MemoryStorage) AddAnswer(ctx context.Context, questionID, doctorID int64, messageID int, text string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextAnswerID
	s.nextAnswerID++
	s.answers[id] = &models.Answer{
		ID:         id,
		QuestionID: questionID,
		DoctorID:   doctorID,
		MessageID:  messageID,
		Text:       text,
		CreatedAt:  time.Now(),
	}
	if question, exists := s.questions[questionID]; exists {
		question.Status = models.StatusAnswered
	}
	return id, nil
}

func (s *MemoryStorage) GetAdminPassword(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if value, exists := s.settings[models.AdminPasswordKey]; exists {
		return value, nil
	}
	return models.DefaultAdminPassword, nil
}

func (s *MemoryStorage) SetAdminPassword(ctx context.Context, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings[models.AdminPasswordKey] = password
	return nil
}

func (s *MemoryStorage) SetSocialSubscription(ctx context.Context, userID int64, platform string, subscribed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.subscriptions[userID]; !exists {
		s.subscriptions[userID] = make(map[string]bool)
	}
	s.subscriptions[userID][platform] = subscribed
	return nil
}

func (s *MemoryStorage) SocialSubscriptions(ctx context.Context, userID int64) (map[string]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := map[string]bool{
		models.PlatformInstagram: false,
		models.PlatformYouTube:   false,
	}
	for platform, subscribed := range s.subscriptions[userID] {
		result[platform] = subscribed
	}
	return result, nil
}

func (s *MemoryStorage) ClearAllData(ctx context.Context, keepAdminSettings bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = make(map[int64]*models.User)
	s.questions = make(map[int64]*models.Question)
	s.answers = make(map[int64]*models.Answer)
	s.subscriptions = make(map[int64]map[string]bool)
	s.nextQuestionID = 1
	s.nextAnswerID = 1
	if !keepAdminSettings {
		s.settings = make(map[string]string)
		s.settings[models.AdminPasswordKey] = models.DefaultAdminPassword
	}
	return nil
}

func (s *MemoryStorage) ClearCompletely(ctx context.Context) error {
	return s.ClearAllData(ctx, false)
}

func (s *MemoryStorage) Close() error {
	return nil
}
