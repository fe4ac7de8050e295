package ports

import (
	"context"
	"time"

	"github.com/adelphi-health/companion-api/internal/core/domain"
)

// ArticleFilter narrows the article list. Search matches title, content or
// tags case-insensitively.
type ArticleFilter struct {
	Category string
	Stage    domain.MenopauseStage
	Audience string
	Search   string
}

// EventFilter narrows the event list. UpcomingOnly keeps events starting at
// or after Now.
type EventFilter struct {
	EventType    string
	UpcomingOnly bool
	Now          time.Time
}

// SpecialistFilter narrows the specialist directory.
type SpecialistFilter struct {
	Specialty string
	Location  string
	IsOnline  *bool
}

// SymptomFilter narrows the symptom catalog. Only reviewed entries are
// returned.
type SymptomFilter struct {
	Category domain.SymptomCategory
	Stage    domain.MenopauseStage
}

// ContentRepository persists the curated library: symptom catalog, articles,
// bookmarks, events and the specialist directory.
type ContentRepository interface {
	ListSymptoms(ctx context.Context, filter SymptomFilter) ([]*domain.Symptom, error)
	InsertSymptom(ctx context.Context, s *domain.Symptom) (*domain.Symptom, error)

	ListArticles(ctx context.Context, filter ArticleFilter) ([]*domain.Article, error)
	FindArticle(ctx context.Context, id string) (*domain.Article, error)
	InsertArticle(ctx context.Context, a *domain.Article) (*domain.Article, error)

	UpsertBookmark(ctx context.Context, userID, articleID string, now time.Time) error
	DeleteBookmark(ctx context.Context, userID, articleID string) error
	ListBookmarkedArticles(ctx context.Context, userID string) ([]*domain.Article, error)

	ListEvents(ctx context.Context, filter EventFilter) ([]*domain.Event, error)
	FindEvent(ctx context.Context, id string) (*domain.Event, error)
	InsertEvent(ctx context.Context, e *domain.Event) (*domain.Event, error)

	ListSpecialists(ctx context.Context, filter SpecialistFilter) ([]*domain.Specialist, error)
	FindSpecialist(ctx context.Context, id string) (*domain.Specialist, error)
	InsertSpecialist(ctx context.Context, s *domain.Specialist) (*domain.Specialist, error)
}

// ArticleInput is the admin authoring DTO.
type ArticleInput struct {
	Title         string
	Summary       string
	Content       string
	Category      string
	Tags          []string
	Stages        []domain.MenopauseStage
	SymptomTags   []string
	EthnicityTags []string
	Audience      string
}

// EventInput is the admin authoring DTO.
type EventInput struct {
	Title            string
	Description      string
	EventType        string
	IsOnline         bool
	Location         string
	Link             string
	StartTime        time.Time
	EndTime          *time.Time
	RegistrationLink string
}

// SpecialistInput is the admin authoring DTO.
type SpecialistInput struct {
	Name        string
	Credentials string
	Bio         string
	Specialties []string
	Services    []string
	IsOnline    bool
	Location    string
	Website     string
	Phone       string
	Email       string
	BookingLink string
}

// SymptomInput is the user-proposed catalog entry DTO.
type SymptomInput struct {
	Name        string
	Description string
	Category    domain.SymptomCategory
	Stages      []domain.MenopauseStage
}

type ContentService interface {
	ListSymptoms(ctx context.Context, filter SymptomFilter) ([]*domain.Symptom, error)
	ProposeSymptom(ctx context.Context, user *domain.User, input SymptomInput) (*domain.Symptom, error)

	ListArticles(ctx context.Context, filter ArticleFilter) ([]*domain.Article, error)
	GetArticle(ctx context.Context, id string) (*domain.Article, error)
	CreateArticle(ctx context.Context, author *domain.User, input ArticleInput) (*domain.Article, error)

	BookmarkArticle(ctx context.Context, userID, articleID string) error
	RemoveBookmark(ctx context.Context, userID, articleID string) error
	BookmarkedArticles(ctx context.Context, userID string) ([]*domain.Article, error)

	ListEvents(ctx context.Context, filter EventFilter) ([]*domain.Event, error)
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	CreateEvent(ctx context.Context, author *domain.User, input EventInput) (*domain.Event, error)

	ListSpecialists(ctx context.Context, filter SpecialistFilter) ([]*domain.Specialist, error)
	GetSpecialist(ctx context.Context, id string) (*domain.Specialist, error)
	CreateSpecialist(ctx context.Context, author *domain.User, input SpecialistInput) (*domain.Specialist, error)
}
