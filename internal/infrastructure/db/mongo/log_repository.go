package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adelphi-health/companion-api/internal/core/domain"
	"github.com/adelphi-health/companion-api/internal/core/ports"
)

const (
	collectionSymptomLogs   = "symptom_logs"
	collectionMoodLogs      = "mood_logs"
	collectionLifestyleLogs = "lifestyle_logs"
)

type LogRepository struct {
	symptoms  *mongo.Collection
	moods     *mongo.Collection
	lifestyle *mongo.Collection
}

func NewLogRepository(db *mongo.Database) *LogRepository {
	return &LogRepository{
		symptoms:  db.Collection(collectionSymptomLogs),
		moods:     db.Collection(collectionMoodLogs),
		lifestyle: db.Collection(collectionLifestyleLogs),
	}
}

func (r *LogRepository) InsertSymptomLog(ctx context.Context, log *domain.SymptomLog) (*domain.SymptomLog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	if _, err := r.symptoms.InsertOne(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (r *LogRepository) InsertMoodLog(ctx context.Context, log *domain.MoodLog) (*domain.MoodLog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	if _, err := r.moods.InsertOne(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (r *LogRepository) InsertLifestyleLog(ctx context.Context, log *domain.LifestyleLog) (*domain.LifestyleLog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	if _, err := r.lifestyle.InsertOne(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (r *LogRepository) ListSymptomLogs(ctx context.Context, filter ports.LogFilter) ([]*domain.SymptomLog, error) {
	var out []*domain.SymptomLog
	if err := r.list(ctx, r.symptoms, filter, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *LogRepository) ListMoodLogs(ctx context.Context, filter ports.LogFilter) ([]*domain.MoodLog, error) {
	var out []*domain.MoodLog
	if err := r.list(ctx, r.moods, filter, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *LogRepository) ListLifestyleLogs(ctx context.Context, filter ports.LogFilter) ([]*domain.LifestyleLog, error) {
	var out []*domain.LifestyleLog
	if err := r.list(ctx, r.lifestyle, filter, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *LogRepository) FindLatestMoodSince(ctx context.Context, userID string, since time.Time) (*domain.MoodLog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "logged_at", Value: -1}})
	var log domain.MoodLog
	err := r.moods.FindOne(ctx, sinceFilter(userID, since), opts).Decode(&log)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

func (r *LogRepository) FindLatestLifestyleSince(ctx context.Context, userID string, since time.Time) (*domain.LifestyleLog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "logged_at", Value: -1}})
	var log domain.LifestyleLog
	err := r.lifestyle.FindOne(ctx, sinceFilter(userID, since), opts).Decode(&log)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

func (r *LogRepository) list(ctx context.Context, col *mongo.Collection, filter ports.LogFilter, out any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"user_id": filter.UserID}
	window := bson.M{}
	if !filter.Since.IsZero() {
		window["$gte"] = filter.Since
	}
	if !filter.Until.IsZero() {
		window["$lt"] = filter.Until
	}
	if len(window) > 0 {
		query["logged_at"] = window
	}

	order := -1
	if filter.Ascending {
		order = 1
	}
	opts := options.Find().SetSort(bson.D{{Key: "logged_at", Value: order}})
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cursor, err := col.Find(ctx, query, opts)
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

func sinceFilter(userID string, since time.Time) bson.M {
	return bson.M{
		"user_id":   userID,
		"logged_at": bson.M{"$gte": since},
	}
}

// EnsureIndexes creates the owner+time index each log collection is queried by.
func (r *LogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	keys := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "logged_at", Value: -1}}},
	}
	for _, col := range []*mongo.Collection{r.symptoms, r.moods, r.lifestyle} {
		if _, err := col.Indexes().CreateMany(ctx, keys); err != nil {
			return err
		}
	}
	return nil
}
