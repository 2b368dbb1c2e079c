package validation

import "testing"

func TestEmail(t *testing.T) {
	valid := []string{
		"rep@example.com",
		"first.last@example.co.uk",
		"user+tag@sub.example.com",
	}
	for _, e := range valid {
		v := Violations{}
		Email("email", e, v)
		if !v.Empty() {
			t.Errorf("expected %q to be valid: %v", e, v)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"missing@tld",
		"double..dot@example.com",
		".leading@example.com",
		"trailing@example.com.",
		"@example.com",
	}
	for _, e := range invalid {
		v := Violations{}
		Email("email", e, v)
		if v.Empty() {
			t.Errorf("expected %q to be rejected", e)
		}
	}
}

func TestZipCode(t *testing.T) {
	for _, z := range []string{"12345", "12345-6789"} {
		v := Violations{}
		ZipCode("zip", z, v)
		if !v.Empty() {
			t.Errorf("expected %q to be valid", z)
		}
	}
	for _, z := range []string{"", "1234", "123456", "12345-678", "abcde"} {
		v := Violations{}
		ZipCode("zip", z, v)
		if v.Empty() {
			t.Errorf("expected %q to be rejected", z)
		}
	}
}

func TestPhone(t *testing.T) {
	valid := []string{
		"(555) 123-4567",
		"555-123-4567",
		"555.123.4567",
		"+1 5551234567",
		"5551234567",
	}
	for _, p := range valid {
		v := Violations{}
		Phone("phone", p, v)
		if !v.Empty() {
			t.Errorf("expected %q to be valid", p)
		}
	}
	for _, p := range []string{"", "555-12-34567", "phone", "55512345678901"} {
		v := Violations{}
		Phone("phone", p, v)
		if v.Empty() {
			t.Errorf("expected %q to be rejected", p)
		}
	}
}

func TestDate(t *testing.T) {
	v := Violations{}
	Date("start_date", "2024-02-29", v)
	if !v.Empty() {
		t.Errorf("leap day should be valid: %v", v)
	}

	for _, d := range []string{"", "2024-13-01", "2024-02-30", "02/29/2024", "2024-2-9"} {
		v := Violations{}
		Date("start_date", d, v)
		if v.Empty() {
			t.Errorf("expected %q to be rejected", d)
		}
	}
}

func TestCurrency(t *testing.T) {
	for _, a := range []float64{0.01, 100, 999999999.99, 12.34} {
		v := Violations{}
		Currency("amount", a, v)
		if !v.Empty() {
			t.Errorf("expected %v to be valid: %v", a, v)
		}
	}
	for _, a := range []float64{0, -5, 0.001, 1000000000, 12.345} {
		v := Violations{}
		Currency("amount", a, v)
		if v.Empty() {
			t.Errorf("expected %v to be rejected", a)
		}
	}
}

func TestRating(t *testing.T) {
	for _, r := range []float64{0.0, 2.5, 5.0} {
		v := Violations{}
		Rating("rating", r, v)
		if !v.Empty() {
			t.Errorf("expected %v to be valid", r)
		}
	}
	for _, r := range []float64{-0.1, 5.1} {
		v := Violations{}
		Rating("rating", r, v)
		if v.Empty() {
			t.Errorf("expected %v to be rejected", r)
		}
	}
}

func TestTrackingID(t *testing.T) {
	for _, id := range []string{"VQ24-1", "VQ99-123"} {
		if !ValidTrackingID(id) {
			t.Errorf("expected %q to be valid", id)
		}
	}
	for _, id := range []string{"", "VQ24-", "VQ2-1", "vq24-1", "VQ24-1a", "XX24-1"} {
		if ValidTrackingID(id) {
			t.Errorf("expected %q to be rejected", id)
		}
	}
}

func TestChoice(t *testing.T) {
	choices := []string{"active", "inactive", "prospect"}
	v := Violations{}
	Choice("status", "active", choices, v)
	if !v.Empty() {
		t.Errorf("expected active to be allowed")
	}
	Choice("status", "archived", choices, v)
	if v.Empty() {
		t.Errorf("expected archived to be rejected")
	}
}

func TestAddKeepsFirstMessage(t *testing.T) {
	v := Violations{}
	v.Add("name", "first")
	v.Add("name", "second")
	if v["name"] != "first" {
		t.Errorf("expected first message to win, got %q", v["name"])
	}
}
