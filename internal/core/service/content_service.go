package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/adelphi-health/companion-api/internal/core/domain"
	"github.com/adelphi-health/companion-api/internal/core/ports"
)

// ContentService serves the curated library: symptom catalog, articles and
// bookmarks, events and the specialist directory. Authoring routes are
// admin-gated by the RBAC middleware; the service trusts the resolved user.
type ContentService struct {
	repo   ports.ContentRepository
	logger zerolog.Logger
}

func NewContentService(repo ports.ContentRepository, logger zerolog.Logger) *ContentService {
	return &ContentService{repo: repo, logger: logger}
}

func (s *ContentService) ListSymptoms(ctx context.Context, filter ports.SymptomFilter) ([]*domain.Symptom, error) {
	return s.repo.ListSymptoms(ctx, filter)
}

// ProposeSymptom records a user-defined catalog entry. It stays unreviewed
// (hidden from the catalog) until the content team approves it.
func (s *ContentService) ProposeSymptom(ctx context.Context, user *domain.User, input ports.SymptomInput) (*domain.Symptom, error) {
	symptom := &domain.Symptom{
		Name:          input.Name,
		Description:   input.Description,
		Category:      input.Category,
		Stages:        input.Stages,
		IsUserDefined: true,
		CreatedBy:     user.ID,
		Reviewed:      false,
		CreatedAt:     time.Now().UTC(),
	}
	return s.repo.InsertSymptom(ctx, symptom)
}

func (s *ContentService) ListArticles(ctx context.Context, filter ports.ArticleFilter) ([]*domain.Article, error) {
	return s.repo.ListArticles(ctx, filter)
}

func (s *ContentService) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	return s.repo.FindArticle(ctx, id)
}

func (s *ContentService) CreateArticle(ctx context.Context, author *domain.User, input ports.ArticleInput) (*domain.Article, error) {
	article := &domain.Article{
		Title:         input.Title,
		Summary:       input.Summary,
		Content:       input.Content,
		Category:      input.Category,
		Tags:          input.Tags,
		Stages:        input.Stages,
		SymptomTags:   input.SymptomTags,
		EthnicityTags: input.EthnicityTags,
		Audience:      input.Audience,
		CreatedBy:     author.ID,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.repo.InsertArticle(ctx, article)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("article_id", created.ID).Str("author_id", author.ID).Msg("article published")
	return created, nil
}

func (s *ContentService) BookmarkArticle(ctx context.Context, userID, articleID string) error {
	return s.repo.UpsertBookmark(ctx, userID, articleID, time.Now().UTC())
}

func (s *ContentService) RemoveBookmark(ctx context.Context, userID, articleID string) error {
	return s.repo.DeleteBookmark(ctx, userID, articleID)
}

func (s *ContentService) BookmarkedArticles(ctx context.Context, userID string) ([]*domain.Article, error) {
	return s.repo.ListBookmarkedArticles(ctx, userID)
}

func (s *ContentService) ListEvents(ctx context.Context, filter ports.EventFilter) ([]*domain.Event, error) {
	if filter.UpcomingOnly && filter.Now.IsZero() {
		filter.Now = time.Now().UTC()
	}
	return s.repo.ListEvents(ctx, filter)
}

func (s *ContentService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.FindEvent(ctx, id)
}

func (s *ContentService) CreateEvent(ctx context.Context, author *domain.User, input ports.EventInput) (*domain.Event, error) {
	event := &domain.Event{
		Title:            input.Title,
		Description:      input.Description,
		EventType:        input.EventType,
		IsOnline:         input.IsOnline,
		Location:         input.Location,
		Link:             input.Link,
		StartTime:        input.StartTime,
		EndTime:          input.EndTime,
		RegistrationLink: input.RegistrationLink,
		CreatedBy:        author.ID,
		CreatedAt:        time.Now().UTC(),
	}
	return s.repo.InsertEvent(ctx, event)
}

func (s *ContentService) ListSpecialists(ctx context.Context, filter ports.SpecialistFilter) ([]*domain.Specialist, error) {
	return s.repo.ListSpecialists(ctx, filter)
}

func (s *ContentService) GetSpecialist(ctx context.Context, id string) (*domain.Specialist, error) {
	return s.repo.FindSpecialist(ctx, id)
}

func (s *ContentService) CreateSpecialist(ctx context.Context, author *domain.User, input ports.SpecialistInput) (*domain.Specialist, error) {
	specialist := &domain.Specialist{
		Name:        input.Name,
		Credentials: input.Credentials,
		Bio:         input.Bio,
		Specialties: input.Specialties,
		Services:    input.Services,
		IsOnline:    input.IsOnline,
		Location:    input.Location,
		Website:     input.Website,
		Phone:       input.Phone,
		Email:       input.Email,
		BookingLink: input.BookingLink,
		CreatedAt:   time.Now().UTC(),
	}
	return s.repo.InsertSpecialist(ctx, specialist)
}
