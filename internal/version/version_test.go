package version

import (
	"errors"
	"testing"
)

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"1.21.9", "1.21.10", -1},
		{"1.21.10", "1.21.9", 1},
		{"1.21.5", "1.21.5", 0},
		{"11", "11.0.0", 0},
		{"8.5", "8", 1},
		{"3.9.6", "3.10.0", -1},
		{"17.0.2", "11.0.21", 1},
	}
	for _, tc := range cases {
		if got := Compare(tc.a, tc.b); got != tc.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestResolvePrefixPicksGreatestNumeric(t *testing.T) {
	installed := []string{"1.19.2", "1.21.3", "1.21.10", "1.21.9"}
	got, err := Resolve("1.21", installed)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	// Lexicographic ordering would wrongly pick 1.21.9.
	if got != "1.21.10" {
		t.Fatalf("Resolve(1.21) = %s, want 1.21.10", got)
	}
}

func TestResolveExactMatchWins(t *testing.T) {
	installed := []string{"8", "8.5"}
	got, err := Resolve("8", installed)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "8" {
		t.Fatalf("Resolve(8) = %s, want exact match 8", got)
	}
}

func TestResolvePrefixRequiresComponentBoundary(t *testing.T) {
	installed := []string{"1.210.1"}
	if _, err := Resolve("1.21", installed); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
}

func TestResolveNoMatch(t *testing.T) {
	_, err := Resolve("2", []string{"1.19.2", "1.21.3"})
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
}

func TestResolveEmptySpecifier(t *testing.T) {
	if _, err := Resolve("", []string{"1.0.0"}); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
}

func TestLatestUnrestricted(t *testing.T) {
	got, err := Latest("", []string{"3.8.6", "3.9.6", "3.6.3"})
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if got != "3.9.6" {
		t.Fatalf("Latest = %s, want 3.9.6", got)
	}
}

func TestLatestWithMajorRestriction(t *testing.T) {
	got, err := Latest("11", []string{"11.0.2", "11.0.21", "17.0.9", "21.0.1"})
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if got != "11.0.21" {
		t.Fatalf("Latest(11) = %s, want 11.0.21", got)
	}
}

func TestLatestEmptyIndex(t *testing.T) {
	if _, err := Latest("1.21", nil); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
}

func TestSortStable(t *testing.T) {
	versions := []string{"1.21.10", "1.19.2", "1.21.9", "1.21.3"}
	Sort(versions)
	want := []string{"1.19.2", "1.21.3", "1.21.9", "1.21.10"}
	for i := range want {
		if versions[i] != want[i] {
			t.Fatalf("Sort = %v, want %v", versions, want)
		}
	}
}
