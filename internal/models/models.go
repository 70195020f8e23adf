package models

import "time"

type Role string

const (
	RoleUser   Role = "user"
	RoleDoctor Role = "doctor"
)

type QuestionStatus string

const (
	StatusPending  QuestionStatus = "pending"
	StatusAnswered QuestionStatus = "answered"
)

// Social platforms tracked by self-reported subscription flags. Telegram
// membership is checked live and has no flag row.
const (
	PlatformInstagram = "instagram"
	PlatformYouTube   = "youtube"
)

// AdminPasswordKey is the singleton admin_settings row holding the panel
// password. DefaultAdminPassword is used whenever the row is absent.
const (
	AdminPasswordKey     = "admin_password"
	DefaultAdminPassword = "admin123"
)

// User is anyone who has contacted the bot. Doctors are regular users with an
// elevated role; removing a doctor only resets the role, the row stays.
type User struct {
	ID        int64     `json:"user_id" gorm:"column:user_id;primaryKey"`
	Username  *string   `json:"username" gorm:"column:username"`
	FullName  *string   `json:"full_name" gorm:"column:full_name"`
	Role      Role      `json:"role" gorm:"column:role;not null;default:user"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func (User) TableName() string { return "users" }

// DisplayName prefers the stored full name, then the username.
func (u *User) DisplayName() string {
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}
	if u.Username != nil && *u.Username != "" {
		return "@" + *u.Username
	}
	return ""
}

// Question is a single inbound request from a user, fanned out to the doctor
// roster. Status flips to answered once, on the first matching answer.
type Question struct {
	ID        int64          `json:"question_id" gorm:"column:question_id;primaryKey;autoIncrement"`
	UserID    int64          `json:"user_id" gorm:"column:user_id;not null"`
	MessageID int            `json:"message_id" gorm:"column:message_id;not null"`
	Text      string         `json:"question_text" gorm:"column:question_text;not null"`
	Status    QuestionStatus `json:"status" gorm:"column:status;not null;default:pending"`
	CreatedAt time.Time      `json:"created_at" gorm:"column:created_at"`
}

func (Question) TableName() string { return "questions" }

// Answer is a doctor's reply correlated back to a question. Append-only;
// several doctors may answer the same question.
type Answer struct {
	ID         int64     `json:"answer_id" gorm:"column:answer_id;primaryKey;autoIncrement"`
	QuestionID int64     `json:"question_id" gorm:"column:question_id;not null"`
	DoctorID   int64     `json:"doctor_id" gorm:"column:doctor_id;not null"`
	MessageID  int       `json:"message_id" gorm:"column:message_id;not null"`
	Text       string    `json:"answer_text" gorm:"column:answer_text;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Answer) TableName() string { return "answers" }

// AdminSetting is a key-value row; only the admin password lives here today.
type AdminSetting struct {
	Key   string `json:"key" gorm:"column:key;primaryKey"`
	Value string `json:"value" gorm:"column:value;not null"`
}

func (AdminSetting) TableName() string { return "admin_settings" }

// SocialSubscription records a user's self-reported subscription to an
// external platform. There is no verification; the stored flag is trusted.
type SocialSubscription struct {
	UserID     int64     `json:"user_id" gorm:"column:user_id;primaryKey"`
	Platform   string    `json:"platform" gorm:"column:platform;primaryKey"`
	Subscribed bool      `json:"subscribed" gorm:"column:subscribed"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (SocialSubscription) TableName() string { return "social_subscriptions" }
