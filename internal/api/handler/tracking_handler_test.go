package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adelphi-health/companion-api/internal/core/domain"
	"github.com/adelphi-health/companion-api/internal/core/ports"
)

type stubTrackingService struct {
	todaySymptomsCalled  bool
	todayMoodCalled      bool
	todayLifestyleCalled bool
	todayMood            *domain.MoodLog
}

func (s *stubTrackingService) LogSymptom(_ context.Context, user *domain.User, input ports.SymptomLogInput) (*domain.SymptomLog, error) {
	return &domain.SymptomLog{UserID: user.ID, SymptomName: input.SymptomName}, nil
}

func (s *stubTrackingService) LogMood(_ context.Context, user *domain.User, input ports.MoodLogInput) (*domain.MoodLog, error) {
	return &domain.MoodLog{UserID: user.ID, MoodScore: input.MoodScore}, nil
}

func (s *stubTrackingService) LogLifestyle(_ context.Context, user *domain.User, _ ports.LifestyleLogInput) (*domain.LifestyleLog, error) {
	return &domain.LifestyleLog{UserID: user.ID}, nil
}

func (s *stubTrackingService) ListSymptomLogs(_ context.Context, _ string, _ int) ([]*domain.SymptomLog, error) {
	return nil, nil
}

func (s *stubTrackingService) ListMoodLogs(_ context.Context, _ string, _ int) ([]*domain.MoodLog, error) {
	return nil, nil
}

func (s *stubTrackingService) ListLifestyleLogs(_ context.Context, _ string, _ int) ([]*domain.LifestyleLog, error) {
	return nil, nil
}

func (s *stubTrackingService) TodaySymptomLogs(_ context.Context, userID string) ([]*domain.SymptomLog, error) {
	s.todaySymptomsCalled = true
	return []*domain.SymptomLog{{UserID: userID, SymptomName: "Hot flashes"}}, nil
}

func (s *stubTrackingService) TodayMood(_ context.Context, userID string) (*domain.MoodLog, error) {
	s.todayMoodCalled = true
	if s.todayMood == nil {
		return nil, domain.ErrNotFound
	}
	return s.todayMood, nil
}

func (s *stubTrackingService) TodayLifestyle(_ context.Context, userID string) (*domain.LifestyleLog, error) {
	s.todayLifestyleCalled = true
	return &domain.LifestyleLog{UserID: userID, LoggedAt: time.Now().UTC()}, nil
}

type stubInsightService struct{}

func (s *stubInsightService) Insights(_ context.Context, _ string) ([]ports.Insight, error) {
	return nil, nil
}

func todayRequest(e *echo.Echo, path string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	return authedContext(e, req, rec), rec
}

func TestTrackingHandler_TodaySymptomLogs(t *testing.T) {
	e := echo.New()
	svc := &stubTrackingService{}
	h := NewTrackingHandler(svc, &stubInsightService{})

	c, rec := todayRequest(e, "/v1/logs/symptoms/today")
	if err := h.TodaySymptomLogs(c); err != nil {
		t.Fatalf("TodaySymptomLogs returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !svc.todaySymptomsCalled {
		t.Fatalf("expected the today lookup to reach the service")
	}
}

func TestTrackingHandler_TodayMood(t *testing.T) {
	e := echo.New()
	svc := &stubTrackingService{todayMood: &domain.MoodLog{UserID: "user-1", MoodScore: 6}}
	h := NewTrackingHandler(svc, &stubInsightService{})

	c, rec := todayRequest(e, "/v1/logs/mood/today")
	if err := h.TodayMood(c); err != nil {
		t.Fatalf("TodayMood returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !svc.todayMoodCalled {
		t.Fatalf("expected the today lookup to reach the service")
	}
}

func TestTrackingHandler_TodayMood_NothingLogged(t *testing.T) {
	e := echo.New()
	h := NewTrackingHandler(&stubTrackingService{}, &stubInsightService{})

	c, _ := todayRequest(e, "/v1/logs/mood/today")
	if err := h.TodayMood(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound to propagate to the error handler, got %v", err)
	}
}

func TestTrackingHandler_TodayLifestyle(t *testing.T) {
	e := echo.New()
	svc := &stubTrackingService{}
	h := NewTrackingHandler(svc, &stubInsightService{})

	c, rec := todayRequest(e, "/v1/logs/lifestyle/today")
	if err := h.TodayLifestyle(c); err != nil {
		t.Fatalf("TodayLifestyle returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !svc.todayLifestyleCalled {
		t.Fatalf("expected the today lookup to reach the service")
	}
}
