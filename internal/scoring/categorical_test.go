package scoring

import (
	"testing"

	"deepmirror/internal/model"
)

func TestRepairOrdinal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value string
		want  int
	}{
		{"never", 1},
		{"rarely", 2},
		{"sometimes", 3},
		{"always", 4},
		{"Always", 4},
		{"", 3},
		{"constantly", 3},
	}
	for _, tc := range cases {
		got := RepairOrdinal(model.Profile{RepairFrequency: tc.value})
		if got != tc.want {
			t.Fatalf("RepairOrdinal(%q) got %d want %d", tc.value, got, tc.want)
		}
	}
}

func TestFightFrequencyOrdinal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value string
		want  int
	}{
		{"daily", 1},
		{"weekly", 2},
		{"monthly", 3},
		{"rarely", 4},
		{"", 3},
		{"hourly", 3},
	}
	for _, tc := range cases {
		got := FightFrequencyOrdinal(model.Profile{FightFrequency: tc.value})
		if got != tc.want {
			t.Fatalf("FightFrequencyOrdinal(%q) got %d want %d", tc.value, got, tc.want)
		}
	}
}

func TestConflictStyleOrdinal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value string
		want  int
	}{
		{"engages", 4},
		{"Engages", 4},
		{"withdraws", 1},
		{"escalates", 1},
		{"deflects", 1},
		{"", 1},
	}
	for _, tc := range cases {
		got := ConflictStyleOrdinal(model.Profile{PartnerConflictStyle: tc.value})
		if got != tc.want {
			t.Fatalf("ConflictStyleOrdinal(%q) got %d want %d", tc.value, got, tc.want)
		}
	}
}

func TestDurationOrdinal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value string
		want  int
	}{
		{"0-6mo", 1},
		{"6mo-2yr", 2},
		{"2-5yr", 3},
		{"5-10yr", 4},
		{"10+yr", 5},
		{"", 3},
		{"forever", 3},
	}
	for _, tc := range cases {
		got := DurationOrdinal(model.Profile{RelationshipDuration: tc.value})
		if got != tc.want {
			t.Fatalf("DurationOrdinal(%q) got %d want %d", tc.value, got, tc.want)
		}
	}
}

func TestFearOrdinals(t *testing.T) {
	t.Parallel()

	if got := FearPresenceOrdinal(model.Profile{}); got != 0 {
		t.Fatalf("FearPresenceOrdinal(empty) got %d want 0", got)
	}
	if got := FearPresenceOrdinal(model.Profile{BiggestFear: "   "}); got != 0 {
		t.Fatalf("FearPresenceOrdinal(blank) got %d want 0", got)
	}
	if got := FearPresenceOrdinal(model.Profile{BiggestFear: "being alone"}); got != 5 {
		t.Fatalf("FearPresenceOrdinal(text) got %d want 5", got)
	}
	if got := FearLoveOrdinal(model.Profile{BiggestFear: "being alone"}); got != 0 {
		t.Fatalf("FearLoveOrdinal(no love mention) got %d want 0", got)
	}
	if got := FearLoveOrdinal(model.Profile{BiggestFear: "That I don't love them anymore"}); got != 5 {
		t.Fatalf("FearLoveOrdinal(love mention) got %d want 5", got)
	}
}
