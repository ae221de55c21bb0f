package utils

import "testing"

func TestGenerateUUIDIsUnique(t *testing.T) {
	a := GenerateUUID()
	b := GenerateUUID()
	if a == b {
		t.Errorf("expected two distinct UUIDs, got %q twice", a)
	}
	if len(a) != 36 {
		t.Errorf("expected a 36-character UUID string, got %q (%d chars)", a, len(a))
	}
}

func TestSanitizeStringEscapesAngleBrackets(t *testing.T) {
	got := SanitizeString("  <script>alert(1)</script>  ")
	want := "&lt;script&gt;alert(1)&lt;/script&gt;"
	if got != want {
		t.Errorf("SanitizeString = %q, want %q", got, want)
	}
}

func TestMinIntMaxInt(t *testing.T) {
	if MinInt(3, 5) != 3 {
		t.Errorf("MinInt(3, 5) != 3")
	}
	if MaxInt(3, 5) != 5 {
		t.Errorf("MaxInt(3, 5) != 5")
	}
}

func TestRandomIntIsWithinBounds(t *testing.T) {
	for i := 0; i < 50; i++ {
		n := RandomInt(10)
		if n < 0 || n >= 10 {
			t.Fatalf("RandomInt(10) = %d, out of [0,10) range", n)
		}
	}
}
