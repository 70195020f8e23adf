package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/kineziomed/medbot/internal/models"
)

func TestAddUserIsInsertOrIgnore(t *testing.T) {
	for name, s := range testStorages(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			if err := s.AddUser(ctx, &models.User{ID: 555, FullName: strptr("Aziz")}); err != nil {
				t.Fatalf("AddUser: %v", err)
			}
			// A second contact must not overwrite the stored profile.
			if err := s.AddUser(ctx, &models.User{ID: 555, FullName: strptr("Other")}); err != nil {
				t.Fatalf("AddUser repeat: %v", err)
			}

			user, err := s.GetUser(ctx, 555)
			if err != nil {
				t.Fatalf("GetUser: %v", err)
			}
			if user.FullName == nil || *user.FullName != "Aziz" {
				t.Errorf("full name overwritten on repeat AddUser: %+v", user)
			}
			if user.Role != models.RoleUser {
				t.Errorf("default role = %q, want user", user.Role)
			}
		})
	}
}

func TestGetUserNotFound(t *testing.T) {
	for name, s := range testStorages(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := s.GetUser(context.Background(), 404); !errors.Is(err, ErrNotFound) {
				t.Errorf("GetUser(unknown) err = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestAddDoctorUpsertSemantics(t *testing.T) {
	for name, s := range testStorages(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			// First add without a name.
			if err := s.AddDoctor(ctx, 100, strptr("drkarimov"), nil); err != nil {
				t.Fatalf("AddDoctor: %v", err)
			}
			// Second add fills the name in; nil username must not erase.
			if err := s.AddDoctor(ctx, 100, nil, strptr("Dr. Karimov")); err != nil {
				t.Fatalf("AddDoctor repeat: %v", err)
			}

			doctors, err := s.ListDoctors(ctx)
			if err != nil {
				t.Fatalf("ListDoctors: %v", err)
			}
			if len(doctors) != 1 {
				t.Fatalf("roster rows = %d, want 1", len(doctors))
			}
			d := doctors[0]
			if d.Username == nil || *d.Username != "drkarimov" {
				t.Errorf("username = %v, want drkarimov", d.Username)
			}
			if d.FullName == nil || *d.FullName != "Dr. Karimov" {
				t.Errorf("full name = %v, want Dr. Karimov", d.FullName)
			}
		})
	}
}

func TestAddDoctorPromotesExistingUser(t *testing.T) {
	for name, s := range testStorages(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			if err := s.AddUser(ctx, &models.User{ID: 200, Username: strptr("patient")}); err != nil {
				t.Fatalf("AddUser: %v", err)
			}
			if err := s.AddDoctor(ctx, 200, nil, strptr("Dr. New")); err != nil {
				t.Fatalf("AddDoctor: %v", err)
			}

			user, err := s.GetUser(ctx, 200)
			if err != nil {
				t.Fatalf("GetUser: %v", err)
			}
			if user.Role != models.RoleDoctor {
				t.Errorf("role = %q, want doctor", user.Role)
			}
			if user.Username == nil || *user.Username != "patient" {
				t.Errorf("existing username erased: %v", user.Username)
			}
		})
	}
}

func TestRemoveDoctor(t *testing.T) {
	for name, s := range testStorages(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			if err := s.AddDoctor(ctx, 300, nil, nil); err != nil {
				t.Fatalf("AddDoctor: %v", err)
			}

			removed, err := s.RemoveDoctor(ctx, 300)
			if err != nil || !removed {
				t.Fatalf("RemoveDoctor = (%v, %v), want (true, nil)", removed, err)
			}

			user, err := s.GetUser(ctx, 300)
			if err != nil {
				t.Fatalf("GetUser: %v", err)
			}
			if user.Role != models.RoleUser {
				t.Errorf("role after removal = %q, want user", user.Role)
			}

			// Removing again, or removing a non-doctor, reports not found.
			removed, err = s.RemoveDoctor(ctx, 300)
			if err != nil || removed {
				t.Errorf("repeat RemoveDoctor = (%v, %v), want (false, nil)", removed, err)
			}
			removed, err = s.RemoveDoctor(ctx, 999)
			if err != nil || removed {
				t.Errorf("RemoveDoctor(unknown) = (%v, %v), want (false, nil)", removed, err)
			}
		})
	}
}

func TestSetUserRole(t *testing.T) {
	for name, s := range testStorages(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			if err := s.AddUser(ctx, &models.User{ID: 400}); err != nil {
				t.Fatalf("AddUser: %v", err)
			}
			if err := s.SetUserRole(ctx, 400, models.RoleDoctor); err != nil {
				t.Fatalf("SetUserRole: %v", err)
			}

			user, err := s.GetUser(ctx, 400)
			if err != nil {
				t.Fatalf("GetUser: %v", err)
			}
			if user.Role != models.RoleDoctor {
				t.Errorf("role = %q, want doctor", user.Role)
			}
		})
	}
}

func TestQuestionLifecycle(t *testing.T) {
	for name, s := range testStorages(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			if err := s.AddUser(ctx, &models.User{ID: 555}); err != nil {
				t.Fatalf("AddUser: %v", err)
			}
			id, err := s.AddQuestion(ctx, 555, 10, "knee pain")
			if err != nil {
				t.Fatalf("AddQuestion: %v", err)
			}
			if id == 0 {
				t.Fatal("expected non-zero question id")
			}

			questions, err := s.GetUserQuestions(ctx, 555, 10)
			if err != nil {
				t.Fatalf("GetUserQuestions: %v", err)
			}
			if len(questions) != 1 {
				t.Fatalf("questions = %d, want 1", len(questions))
			}
			if questions[0].Status != models.StatusPending {
				t.Errorf("status = %q, want pending", questions[0].Status)
			}
			if questions[0].Text != "knee pain" {
				t.Errorf("text = %q", questions[0].Text)
			}
		})
	}
}

func TestAnswerFlipsStatusIdempotently(t *testing.T) {
	for name, s := range testStorages(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			if err := s.AddUser(ctx, &models.User{ID: 555}); err != nil {
				t.Fatalf("AddUser: %v", err)
			}
			if err := s.AddDoctor(ctx, 700, nil, strptr("Dr. A")); err != nil {
				t.Fatalf("AddDoctor: %v", err)
			}
			qid, err := s.AddQuestion(ctx, 555, 10, "knee pain")
			if err != nil {
				t.Fatalf("AddQuestion: %v", err)
			}

			if _, err := s.AddAnswer(ctx, qid, 700, 20, "rest and ice"); err != nil {
				t.Fatalf("AddAnswer: %v", err)
			}
			question, err := s.GetQuestion(ctx, qid)
			if err != nil {
				t.Fatalf("GetQuestion: %v", err)
			}
			if question.Status != models.StatusAnswered {
				t.Errorf("status = %q, want answered", question.Status)
			}

			// A second answer to the same question must not error.
			if _, err := s.AddAnswer(ctx, qid, 700, 21, "follow up in two weeks"); err != nil {
				t.Errorf("second AddAnswer: %v", err)
			}
			question, _ = s.GetQuestion(ctx, qid)
			if question.Status != models.StatusAnswered {
				t.Errorf("status after second answer = %q", question.Status)
			}
		})
	}
}

func TestGetUserQuestionsNewestFirstWithLimit(t *testing.T) {
	for name, s := range testStorages(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			if err := s.AddUser(ctx, &models.User{ID: 1}); err != nil {
				t.Fatalf("AddUser: %v", err)
			}
			var last int64
			for i := 0; i < 12; i++ {
				id, err := s.AddQuestion(ctx, 1, i, "q")
				if err != nil {
					t.Fatalf("AddQuestion: %v", err)
				}
				last = id
			}

			questions, err := s.GetUserQuestions(ctx, 1, 10)
			if err != nil {
				t.Fatalf("GetUserQuestions: %v", err)
			}
			if len(questions) != 10 {
				t.Fatalf("len = %d, want 10", len(questions))
			}
			if questions[0].ID != last {
				t.Errorf("first id = %d, want newest %d", questions[0].ID, last)
			}
		})
	}
}

func TestAdminPassword(t *testing.T) {
	for name, s := range testStorages(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			password, err := s.GetAdminPassword(ctx)
			if err != nil {
				t.Fatalf("GetAdminPassword: %v", err)
			}
			if password != models.DefaultAdminPassword {
				t.Errorf("default password = %q", password)
			}

			if err := s.SetAdminPassword(ctx, "newpass"); err != nil {
				t.Fatalf("SetAdminPassword: %v", err)
			}
			password, _ = s.GetAdminPassword(ctx)
			if password != "newpass" {
				t.Errorf("password after set = %q", password)
			}
		})
	}
}

func TestSocialSubscriptions(t *testing.T) {
	for name, s := range testStorages(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			subs, err := s.SocialSubscriptions(ctx, 555)
			if err != nil {
				t.Fatalf("SocialSubscriptions: %v", err)
			}
			if subs[models.PlatformInstagram] || subs[models.PlatformYouTube] {
				t.Errorf("fresh user has subscriptions: %v", subs)
			}

			if err := s.SetSocialSubscription(ctx, 555, models.PlatformInstagram, true); err != nil {
				t.Fatalf("SetSocialSubscription: %v", err)
			}
			// Re-confirming must be a plain upsert, not a duplicate.
			if err := s.SetSocialSubscription(ctx, 555, models.PlatformInstagram, true); err != nil {
				t.Fatalf("repeat SetSocialSubscription: %v", err)
			}

			subs, _ = s.SocialSubscriptions(ctx, 555)
			if !subs[models.PlatformInstagram] {
				t.Error("instagram flag not set")
			}
			if subs[models.PlatformYouTube] {
				t.Error("youtube flag set unexpectedly")
			}
		})
	}
}

func TestClearAllData(t *testing.T) {
	for name, s := range testStorages(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			if err := s.AddUser(ctx, &models.User{ID: 1}); err != nil {
				t.Fatalf("AddUser: %v", err)
			}
			if _, err := s.AddQuestion(ctx, 1, 1, "q"); err != nil {
				t.Fatalf("AddQuestion: %v", err)
			}
			if err := s.SetAdminPassword(ctx, "kept"); err != nil {
				t.Fatalf("SetAdminPassword: %v", err)
			}

			if err := s.ClearAllData(ctx, true); err != nil {
				t.Fatalf("ClearAllData: %v", err)
			}
			if _, err := s.GetUser(ctx, 1); !errors.Is(err, ErrNotFound) {
				t.Error("user survived clear")
			}
			password, _ := s.GetAdminPassword(ctx)
			if password != "kept" {
				t.Errorf("password after partial clear = %q, want kept", password)
			}

			if err := s.ClearCompletely(ctx); err != nil {
				t.Fatalf("ClearCompletely: %v", err)
			}
			password, _ = s.GetAdminPassword(ctx)
			if password != models.DefaultAdminPassword {
				t.Errorf("password after full clear = %q, want sentinel", password)
			}
		})
	}
}
