package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adelphi-health/companion-api/internal/core/domain"
	"github.com/adelphi-health/companion-api/internal/core/ports"
)

const (
	collectionSymptoms    = "symptoms"
	collectionArticles    = "articles"
	collectionBookmarks   = "bookmarks"
	collectionEvents      = "events"
	collectionSpecialists = "specialists"
)

type ContentRepository struct {
	symptoms    *mongo.Collection
	articles    *mongo.Collection
	bookmarks   *mongo.Collection
	events      *mongo.Collection
	specialists *mongo.Collection
}

func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{
		symptoms:    db.Collection(collectionSymptoms),
		articles:    db.Collection(collectionArticles),
		bookmarks:   db.Collection(collectionBookmarks),
		events:      db.Collection(collectionEvents),
		specialists: db.Collection(collectionSpecialists),
	}
}

type bookmarkDoc struct {
	UserID    string    `bson:"user_id"`
	ArticleID string    `bson:"article_id"`
	CreatedAt time.Time `bson:"created_at"`
}

// ListSymptoms returns reviewed catalog entries matching the filter.
func (r *ContentRepository) ListSymptoms(ctx context.Context, filter ports.SymptomFilter) ([]*domain.Symptom, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"reviewed": true}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Stage != "" {
		query["stages"] = filter.Stage
	}

	cursor, err := r.symptoms.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var out []*domain.Symptom
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ContentRepository) InsertSymptom(ctx context.Context, s *domain.Symptom) (*domain.Symptom, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if _, err := r.symptoms.InsertOne(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *ContentRepository) ListArticles(ctx context.Context, filter ports.ArticleFilter) ([]*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Stage != "" {
		query["stages"] = filter.Stage
	}
	if filter.Audience != "" {
		query["audience"] = bson.M{"$in": bson.A{filter.Audience, "all"}}
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"content": pattern},
			bson.M{"tags": pattern},
		}
	}

	cursor, err := r.articles.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var out []*domain.Article
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ContentRepository) FindArticle(ctx context.Context, id string) (*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Article
	if err := r.articles.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *ContentRepository) InsertArticle(ctx context.Context, a *domain.Article) (*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if _, err := r.articles.InsertOne(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// UpsertBookmark saves a bookmark; re-bookmarking the same article is a no-op.
func (r *ContentRepository) UpsertBookmark(ctx context.Context, userID, articleID string, now time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"user_id": userID, "article_id": articleID}
	update := bson.M{"$setOnInsert": bookmarkDoc{UserID: userID, ArticleID: articleID, CreatedAt: now}}
	_, err := r.bookmarks.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *ContentRepository) DeleteBookmark(ctx context.Context, userID, articleID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.bookmarks.DeleteOne(ctx, bson.M{"user_id": userID, "article_id": articleID})
	return err
}

func (r *ContentRepository) ListBookmarkedArticles(ctx context.Context, userID string) ([]*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.bookmarks.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	var marks []bookmarkDoc
	if err := cursor.All(ctx, &marks); err != nil {
		return nil, err
	}
	if len(marks) == 0 {
		return []*domain.Article{}, nil
	}

	ids := make([]string, 0, len(marks))
	for _, m := range marks {
		ids = append(ids, m.ArticleID)
	}

	articleCursor, err := r.articles.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var out []*domain.Article
	if err := articleCursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ContentRepository) ListEvents(ctx context.Context, filter ports.EventFilter) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.EventType != "" {
		query["event_type"] = filter.EventType
	}
	if filter.UpcomingOnly {
		query["start_time"] = bson.M{"$gte": filter.Now}
	}

	cursor, err := r.events.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var out []*domain.Event
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ContentRepository) FindEvent(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e domain.Event
	if err := r.events.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *ContentRepository) InsertEvent(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if _, err := r.events.InsertOne(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *ContentRepository) ListSpecialists(ctx context.Context, filter ports.SpecialistFilter) ([]*domain.Specialist, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Specialty != "" {
		query["specialties"] = primitive.Regex{Pattern: filter.Specialty, Options: "i"}
	}
	if filter.Location != "" {
		query["location"] = primitive.Regex{Pattern: filter.Location, Options: "i"}
	}
	if filter.IsOnline != nil {
		query["is_online"] = *filter.IsOnline
	}

	cursor, err := r.specialists.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var out []*domain.Specialist
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ContentRepository) FindSpecialist(ctx context.Context, id string) (*domain.Specialist, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Specialist
	if err := r.specialists.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *ContentRepository) InsertSpecialist(ctx context.Context, s *domain.Specialist) (*domain.Specialist, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if _, err := r.specialists.InsertOne(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// EnsureIndexes creates the filter and uniqueness indexes for library content.
func (r *ContentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := r.bookmarks.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "article_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}); err != nil {
		return err
	}
	if _, err := r.articles.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}); err != nil {
		return err
	}
	_, err := r.events.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "start_time", Value: 1}}},
	})
	return err
}
