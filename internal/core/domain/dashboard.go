package domain

// TodayStatus classifies how the primary user's day is going, derived from
// their most recent mood log of the current day.
type TodayStatus string

const (
	TodayNeutral     TodayStatus = "neutral"
	TodayChallenging TodayStatus = "challenging"
	TodayEasier      TodayStatus = "easier"
)

// MoodTrend classifies the direction of the last seven days of mood logs.
type MoodTrend string

const (
	TrendStable    MoodTrend = "stable"
	TrendImproving MoodTrend = "improving"
	TrendDeclining MoodTrend = "declining"
)

// trendThreshold is the minimum gap between half-sums before the trend is
// considered to move.
const trendThreshold = 2

// ClassifyTodayStatus maps a mood score (1..10) to a day classification.
func ClassifyTodayStatus(moodScore int) TodayStatus {
	switch {
	case moodScore <= 3:
		return TodayChallenging
	case moodScore >= 7:
		return TodayEasier
	default:
		return TodayNeutral
	}
}

// ClassifyMoodTrend compares the first and second half of a chronologically
// ordered score sequence. Fewer than three samples always reads as stable.
// The split uses integer division, so for odd counts the first half is the
// smaller one.
func ClassifyMoodTrend(scores []int) MoodTrend {
	if len(scores) < 3 {
		return TrendStable
	}

	mid := len(scores) / 2
	var first, second int
	for _, s := range scores[:mid] {
		first += s
	}
	for _, s := range scores[mid:] {
		second += s
	}

	switch {
	case second > first+trendThreshold:
		return TrendImproving
	case second < first-trendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// SuggestedActions returns the fixed three-item suggestion list for a status.
func SuggestedActions(status TodayStatus) []string {
	switch status {
	case TodayChallenging:
		return []string{
			"Send a caring message or thoughtful emoji",
			"Offer to help with a household task",
			"Give her some quiet time and space",
		}
	case TodayEasier:
		return []string{
			"Share something positive with her",
			"Plan a relaxing activity together",
			"Express appreciation for her",
		}
	default:
		return []string{
			"Check in with a kind message",
			"Offer to make her favorite drink",
			"Ask how she's feeling today",
		}
	}
}
