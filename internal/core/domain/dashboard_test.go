package domain

import (
	"testing"
	"time"
)

func TestClassifyTodayStatus(t *testing.T) {
	cases := []struct {
		score int
		want  TodayStatus
	}{
		{1, TodayChallenging},
		{3, TodayChallenging},
		{4, TodayNeutral},
		{5, TodayNeutral},
		{6, TodayNeutral},
		{7, TodayEasier},
		{10, TodayEasier},
	}
	for _, c := range cases {
		if got := ClassifyTodayStatus(c.score); got != c.want {
			t.Errorf("score %d: expected %s, got %s", c.score, c.want, got)
		}
	}
}

func TestClassifyMoodTrend(t *testing.T) {
	cases := []struct {
		name   string
		scores []int
		want   MoodTrend
	}{
		{"empty", nil, TrendStable},
		{"two samples", []int{1, 10}, TrendStable},
		{"improving", []int{2, 2, 2, 8, 8, 8, 8}, TrendImproving},
		{"declining", []int{8, 8, 8, 2, 2, 2, 2}, TrendDeclining},
		{"flat", []int{5, 5, 5, 5, 5, 5}, TrendStable},
		{"gap exactly at threshold", []int{3, 3, 4, 4}, TrendStable},
		{"gap just above threshold", []int{3, 3, 4, 5}, TrendImproving},
	}
	for _, c := range cases {
		if got := ClassifyMoodTrend(c.scores); got != c.want {
			t.Errorf("%s: expected %s, got %s", c.name, c.want, got)
		}
	}
}

func TestSuggestedActions_ThreePerStatus(t *testing.T) {
	for _, status := range []TodayStatus{TodayNeutral, TodayChallenging, TodayEasier} {
		if got := SuggestedActions(status); len(got) != 3 {
			t.Errorf("%s: expected 3 actions, got %d", status, len(got))
		}
	}
}

func TestPartnerInvite_Redeemable(t *testing.T) {
	now := time.Now().UTC()
	invite := &PartnerInvite{ExpiresAt: now.Add(time.Hour)}

	if !invite.Redeemable(now) {
		t.Fatalf("expected fresh invite to be redeemable")
	}

	invite.IsUsed = true
	if invite.Redeemable(now) {
		t.Fatalf("used invite must not be redeemable")
	}

	invite.IsUsed = false
	if invite.Redeemable(now.Add(2 * time.Hour)) {
		t.Fatalf("expired invite must not be redeemable")
	}
}
