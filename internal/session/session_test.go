package session

import "testing"

func TestLoginFlow(t *testing.T) {
	s := &Session{State: StateAwaitingLogin}

	// Wrong logins never advance the state, no matter how many attempts.
	for i := 0; i < 25; i++ {
		if s.SubmitLogin("root") {
			t.Fatal("wrong login accepted")
		}
		if s.State != StateAwaitingLogin {
			t.Fatalf("state after wrong login = %v", s.State)
		}
	}

	if !s.SubmitLogin("admin") {
		t.Fatal("correct login rejected")
	}
	if s.State != StateAwaitingPassword {
		t.Fatalf("state after login = %v", s.State)
	}

	if s.SubmitPassword("wrong", "secret1") {
		t.Fatal("wrong password accepted")
	}
	if s.State != StateAwaitingPassword {
		t.Fatalf("state after wrong password = %v", s.State)
	}

	if !s.SubmitPassword("secret1", "secret1") {
		t.Fatal("correct password rejected")
	}
	if !s.Authorized() {
		t.Fatal("session not authorized after full login")
	}
}

func TestSubmitStepsOnlyApplyInTheirOwnState(t *testing.T) {
	s := &Session{State: StateAnonymous}
	if s.SubmitLogin("admin") {
		t.Error("login accepted while anonymous")
	}
	if s.SubmitPassword("x", "x") {
		t.Error("password accepted while anonymous")
	}
	if s.Begin(StateAwaitingAddDoctor) {
		t.Error("data entry started while anonymous")
	}
}

func TestDataEntryReturnsToAuthorized(t *testing.T) {
	s := &Session{State: StateAuthorized}

	for _, target := range []State{StateAwaitingAddDoctor, StateAwaitingRemoveDoctor, StateAwaitingNewPassword} {
		if !s.Begin(target) {
			t.Fatalf("Begin(%v) refused", target)
		}
		if s.State != target {
			t.Fatalf("state = %v, want %v", s.State, target)
		}
		if !s.Authorized() {
			t.Fatalf("data-entry state %v lost authorization", target)
		}
		s.FinishAction()
		if s.State != StateAuthorized {
			t.Fatalf("state after FinishAction = %v", s.State)
		}
	}

	if s.Begin(StateAwaitingLogin) {
		t.Error("Begin accepted a non-data-entry target")
	}
}

func TestStoreLifecycle(t *testing.T) {
	st := NewStore()

	if _, ok := st.Peek(7); ok {
		t.Fatal("Peek created a session")
	}

	s := st.Get(7)
	if s.State != StateAnonymous {
		t.Fatalf("fresh session state = %v", s.State)
	}
	s.State = StateAuthorized
	s.TrackPanelMessage(100)
	s.TrackPanelMessage(101)

	again := st.Get(7)
	if again != s {
		t.Fatal("Get returned a different session for the same user")
	}

	ids := again.DrainPanelMessages()
	if len(ids) != 2 || ids[0] != 100 || ids[1] != 101 {
		t.Fatalf("drained panel messages = %v", ids)
	}
	if len(again.PanelMessages) != 0 {
		t.Fatal("panel messages not cleared by drain")
	}

	st.Delete(7)
	if _, ok := st.Peek(7); ok {
		t.Fatal("session survived Delete")
	}
}

func TestParseIdentity(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"123456789", 123456789, true},
		{"ID:123456789", 123456789, true},
		{"ID: 123456789 ", 123456789, true},
		{"  42\n", 42, true},
		{"ID:", 0, false},
		{"@username", 0, false},
		{"-5", 0, false},
		{"0", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseIdentity(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseIdentity(%q) = (%d, %v), want (%d, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestParsePassword(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"secret", "secret", true},
		{"parol:secret", "secret", true},
		{"parol: secret ", "secret", true},
		{"abc", "abc", true},
		{"жок", "жок", true}, // three runes, six bytes
		{"ab", "", false},
		{"parol:ab", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := ParsePassword(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ParsePassword(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}
