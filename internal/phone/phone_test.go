package phone

import "testing"

func TestNormalizeCanonicalForms(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"+998901234567", "+998901234567"},
		{"998901234567", "+998901234567"},
		{"901234567", "+998901234567"},
		{"+998 90 123-45-67", "+998901234567"},
		{"(99) 123.45.67", "+998991234567"},
		{"97 123 45 67", "+998971234567"},
	}
	for _, c := range cases {
		got, ok := Normalize(c.in)
		if !ok {
			t.Errorf("Normalize(%q) rejected, want %q", c.in, c.want)
			continue
		}
		if got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeRejectsInvalid(t *testing.T) {
	cases := []string{
		"",
		"hello",
		"123456789",        // does not start with 9
		"921234567",        // 92 is not an assigned operator code
		"9012345678",       // ten digits
		"90123456",         // eight digits
		"+998801234567",    // 80 operator code
		"+99890123456",     // too short after country code
		"+7 900 123 45 67", // wrong country
		"90123456a",
	}
	for _, c := range cases {
		if got, ok := Normalize(c); ok {
			t.Errorf("Normalize(%q) = %q, want rejection", c, got)
		}
	}
}
