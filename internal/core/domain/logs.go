package domain

import "time"

// Closed value domains for tracked logs. Inputs are validated at the
// transport layer; the typed constants keep classification logic exhaustive.

type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

type Frequency string

const (
	FrequencyRare      Frequency = "rare"
	FrequencySometimes Frequency = "sometimes"
	FrequencyOften     Frequency = "often"
	FrequencyConstant  Frequency = "constant"
)

type SleepQuality string

const (
	SleepPoor      SleepQuality = "poor"
	SleepFair      SleepQuality = "fair"
	SleepGood      SleepQuality = "good"
	SleepExcellent SleepQuality = "excellent"
)

// Restful reports whether the night counts as a good sleep day for insights.
func (q SleepQuality) Restful() bool {
	return q == SleepGood || q == SleepExcellent
}

type StressLevel string

const (
	StressLow    StressLevel = "low"
	StressMedium StressLevel = "medium"
	StressHigh   StressLevel = "high"
)

type ExerciseIntensity string

const (
	ExerciseNone     ExerciseIntensity = "none"
	ExerciseLight    ExerciseIntensity = "light"
	ExerciseModerate ExerciseIntensity = "moderate"
	ExerciseIntense  ExerciseIntensity = "intense"
)

type SymptomCategory string

const (
	CategoryPhysical  SymptomCategory = "physical"
	CategoryEmotional SymptomCategory = "emotional"
	CategoryCognitive SymptomCategory = "cognitive"
)

type MenopauseStage string

const (
	StagePre    MenopauseStage = "pre-menopause"
	StagePeri   MenopauseStage = "peri-menopause"
	StageMeno   MenopauseStage = "menopause"
	StagePost   MenopauseStage = "post-menopause"
	StageUnsure MenopauseStage = "not-sure-yet"
)

// SymptomLog records one occurrence of a symptom. SymptomName is denormalised
// from the catalog for display and insight tallies.
type SymptomLog struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	UserID        string    `json:"user_id" bson:"user_id"`
	SymptomID     string    `json:"symptom_id" bson:"symptom_id"`
	SymptomName   string    `json:"symptom_name" bson:"symptom_name"`
	Severity      Severity  `json:"severity" bson:"severity"`
	SeverityScore int       `json:"severity_score" bson:"severity_score"`
	Frequency     Frequency `json:"frequency" bson:"frequency"`
	Notes         string    `json:"notes,omitempty" bson:"notes,omitempty"`
	LoggedAt      time.Time `json:"logged_at" bson:"logged_at"`
}

// MoodLog records a mood check-in. Score runs 1 (very low) to 10 (great).
type MoodLog struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	UserID      string    `json:"user_id" bson:"user_id"`
	MoodScore   int       `json:"mood_score" bson:"mood_score"`
	Emotions    []string  `json:"emotions" bson:"emotions"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	LoggedAt    time.Time `json:"logged_at" bson:"logged_at"`
}

// LifestyleLog records daily lifestyle factors. Every field is optional;
// the zero value of an enum field means "not recorded".
type LifestyleLog struct {
	ID                string            `json:"id" bson:"_id,omitempty"`
	UserID            string            `json:"user_id" bson:"user_id"`
	SleepHours        float64           `json:"sleep_hours,omitempty" bson:"sleep_hours,omitempty"`
	SleepQuality      SleepQuality      `json:"sleep_quality,omitempty" bson:"sleep_quality,omitempty"`
	FoodTags          []string          `json:"food_tags,omitempty" bson:"food_tags,omitempty"`
	WaterIntake       int               `json:"water_intake,omitempty" bson:"water_intake,omitempty"`
	ExerciseIntensity ExerciseIntensity `json:"exercise_intensity,omitempty" bson:"exercise_intensity,omitempty"`
	ExerciseType      string            `json:"exercise_type,omitempty" bson:"exercise_type,omitempty"`
	ExerciseMinutes   int               `json:"exercise_minutes,omitempty" bson:"exercise_minutes,omitempty"`
	StressLevel       StressLevel       `json:"stress_level,omitempty" bson:"stress_level,omitempty"`
	StressSource      string            `json:"stress_source,omitempty" bson:"stress_source,omitempty"`
	WorkDay           string            `json:"work_day,omitempty" bson:"work_day,omitempty"`
	RelationshipNotes string            `json:"relationship_notes,omitempty" bson:"relationship_notes,omitempty"`
	LoggedAt          time.Time         `json:"logged_at" bson:"logged_at"`
}
