package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/adelphi-health/companion-api/internal/api/metrics"
	"github.com/adelphi-health/companion-api/internal/core/domain"
	"github.com/adelphi-health/companion-api/internal/core/ports"
)

type TrackingHandler struct {
	trackingService ports.TrackingService
	insightService  ports.InsightService
}

func NewTrackingHandler(trackingService ports.TrackingService, insightService ports.InsightService) *TrackingHandler {
	return &TrackingHandler{trackingService: trackingService, insightService: insightService}
}

type symptomLogRequest struct {
	SymptomID     string `json:"symptom_id" validate:"required"`
	SymptomName   string `json:"symptom_name" validate:"required"`
	Severity      string `json:"severity" validate:"required,oneof=mild moderate severe"`
	SeverityScore int    `json:"severity_score" validate:"gte=0,lte=10"`
	Frequency     string `json:"frequency" validate:"omitempty,oneof=rare sometimes often constant"`
	Notes         string `json:"notes"`
}

type moodLogRequest struct {
	MoodScore   int      `json:"mood_score" validate:"required,gte=1,lte=10"`
	Emotions    []string `json:"emotions"`
	Description string   `json:"description"`
}

type lifestyleLogRequest struct {
	SleepHours        float64  `json:"sleep_hours" validate:"gte=0,lte=24"`
	SleepQuality      string   `json:"sleep_quality" validate:"omitempty,oneof=poor fair good excellent"`
	FoodTags          []string `json:"food_tags"`
	WaterIntake       int      `json:"water_intake" validate:"gte=0"`
	ExerciseIntensity string   `json:"exercise_intensity" validate:"omitempty,oneof=none light moderate intense"`
	ExerciseType      string   `json:"exercise_type"`
	ExerciseMinutes   int      `json:"exercise_minutes" validate:"gte=0"`
	StressLevel       string   `json:"stress_level" validate:"omitempty,oneof=low medium high"`
	StressSource      string   `json:"stress_source"`
	WorkDay           string   `json:"work_day"`
	RelationshipNotes string   `json:"relationship_notes"`
}

// LogSymptom records a symptom occurrence.
//
// @Summary      Log a symptom
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      symptomLogRequest  true  "Symptom log"
// @Success      201   {object}  domain.SymptomLog
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/logs/symptoms [post]
func (h *TrackingHandler) LogSymptom(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req symptomLogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	log, err := h.trackingService.LogSymptom(c.Request().Context(), user, ports.SymptomLogInput{
		SymptomID:     req.SymptomID,
		SymptomName:   req.SymptomName,
		Severity:      domain.Severity(req.Severity),
		SeverityScore: req.SeverityScore,
		Frequency:     domain.Frequency(req.Frequency),
		Notes:         req.Notes,
	})
	if err != nil {
		return err
	}

	metrics.LogsCreatedTotal.WithLabelValues("symptom").Inc()
	return c.JSON(http.StatusCreated, log)
}

// LogMood records a mood check-in. A low score nudges the linked partner via
// an asynchronous care ping.
//
// @Summary      Log a mood check-in
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      moodLogRequest  true  "Mood log"
// @Success      201   {object}  domain.MoodLog
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/logs/mood [post]
func (h *TrackingHandler) LogMood(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req moodLogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	log, err := h.trackingService.LogMood(c.Request().Context(), user, ports.MoodLogInput{
		MoodScore:   req.MoodScore,
		Emotions:    req.Emotions,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.LogsCreatedTotal.WithLabelValues("mood").Inc()
	return c.JSON(http.StatusCreated, log)
}

// LogLifestyle records a daily lifestyle entry.
//
// @Summary      Log lifestyle factors
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      lifestyleLogRequest  true  "Lifestyle log"
// @Success      201   {object}  domain.LifestyleLog
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/logs/lifestyle [post]
func (h *TrackingHandler) LogLifestyle(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req lifestyleLogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	log, err := h.trackingService.LogLifestyle(c.Request().Context(), user, ports.LifestyleLogInput{
		SleepHours:        req.SleepHours,
		SleepQuality:      domain.SleepQuality(req.SleepQuality),
		FoodTags:          req.FoodTags,
		WaterIntake:       req.WaterIntake,
		ExerciseIntensity: domain.ExerciseIntensity(req.ExerciseIntensity),
		ExerciseType:      req.ExerciseType,
		ExerciseMinutes:   req.ExerciseMinutes,
		StressLevel:       domain.StressLevel(req.StressLevel),
		StressSource:      req.StressSource,
		WorkDay:           req.WorkDay,
		RelationshipNotes: req.RelationshipNotes,
	})
	if err != nil {
		return err
	}

	metrics.LogsCreatedTotal.WithLabelValues("lifestyle").Inc()
	return c.JSON(http.StatusCreated, log)
}

// ListSymptomLogs returns the caller's symptom logs, newest first.
//
// @Summary      List symptom logs
// @Tags         tracking
// @Produce      json
// @Security     BearerAuth
// @Param        days  query    int  false  "Window in days (default 30, max 365)"
// @Success      200   {array}  domain.SymptomLog
// @Router       /v1/logs/symptoms [get]
func (h *TrackingHandler) ListSymptomLogs(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	logs, err := h.trackingService.ListSymptomLogs(c.Request().Context(), user.ID, queryDays(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logs)
}

// ListMoodLogs returns the caller's mood logs, newest first.
//
// @Summary      List mood logs
// @Tags         tracking
// @Produce      json
// @Security     BearerAuth
// @Param        days  query    int  false  "Window in days (default 30, max 365)"
// @Success      200   {array}  domain.MoodLog
// @Router       /v1/logs/mood [get]
func (h *TrackingHandler) ListMoodLogs(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	logs, err := h.trackingService.ListMoodLogs(c.Request().Context(), user.ID, queryDays(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logs)
}

// ListLifestyleLogs returns the caller's lifestyle logs, newest first.
//
// @Summary      List lifestyle logs
// @Tags         tracking
// @Produce      json
// @Security     BearerAuth
// @Param        days  query    int  false  "Window in days (default 30, max 365)"
// @Success      200   {array}  domain.LifestyleLog
// @Router       /v1/logs/lifestyle [get]
func (h *TrackingHandler) ListLifestyleLogs(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	logs, err := h.trackingService.ListLifestyleLogs(c.Request().Context(), user.ID, queryDays(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logs)
}

// TodaySymptomLogs returns the caller's symptom logs since UTC midnight.
//
// @Summary      Today's symptom logs
// @Tags         tracking
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.SymptomLog
// @Router       /v1/logs/symptoms/today [get]
func (h *TrackingHandler) TodaySymptomLogs(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	logs, err := h.trackingService.TodaySymptomLogs(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logs)
}

// TodayMood returns the caller's latest mood log since UTC midnight, or 404
// when nothing has been logged yet today.
//
// @Summary      Today's mood
// @Tags         tracking
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.MoodLog
// @Failure      404  {object}  map[string]string
// @Router       /v1/logs/mood/today [get]
func (h *TrackingHandler) TodayMood(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	mood, err := h.trackingService.TodayMood(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mood)
}

// TodayLifestyle returns the caller's latest lifestyle log since UTC midnight,
// or 404 when nothing has been logged yet today.
//
// @Summary      Today's lifestyle entry
// @Tags         tracking
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.LifestyleLog
// @Failure      404  {object}  map[string]string
// @Router       /v1/logs/lifestyle/today [get]
func (h *TrackingHandler) TodayLifestyle(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	lifestyle, err := h.trackingService.TodayLifestyle(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lifestyle)
}

// Insights returns the caller's 30-day summary.
//
// @Summary      Personal insights
// @Tags         tracking
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.Insight
// @Router       /v1/insights [get]
func (h *TrackingHandler) Insights(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	insights, err := h.insightService.Insights(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, insights)
}

func queryDays(c echo.Context) int {
	days, _ := strconv.Atoi(c.QueryParam("days"))
	return days
}
