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
	collectionProfiles   = "profiles"
	collectionReminders  = "reminders"
	collectionPushTokens = "push_tokens"
)

type ProfileRepository struct {
	profiles   *mongo.Collection
	reminders  *mongo.Collection
	pushTokens *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{
		profiles:   db.Collection(collectionProfiles),
		reminders:  db.Collection(collectionReminders),
		pushTokens: db.Collection(collectionPushTokens),
	}
}

func (r *ProfileRepository) FindProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Profile
	if err := r.profiles.FindOne(ctx, bson.M{"user_id": userID}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// UpsertProfile replaces the user's profile document, creating it on first
// write. One profile per user, keyed by user_id.
func (r *ProfileRepository) UpsertProfile(ctx context.Context, profile *domain.Profile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}

	filter := bson.M{"user_id": profile.UserID}
	update := bson.M{
		"$set": bson.M{
			"age_range":               profile.AgeRange,
			"ethnicity":               profile.Ethnicity,
			"country":                 profile.Country,
			"menopause_stage":         profile.MenopauseStage,
			"medical_conditions":      profile.MedicalConditions,
			"medical_notes":           profile.MedicalNotes,
			"consent_data_storage":    profile.ConsentDataStorage,
			"consent_research":        profile.ConsentResearch,
			"consent_partner_invites": profile.ConsentPartnerInvite,
			"updated_at":              profile.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"_id":        profile.ID,
			"user_id":    profile.UserID,
			"created_at": profile.CreatedAt,
		},
	}

	_, err := r.profiles.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *ProfileRepository) InsertReminder(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if reminder.ID == "" {
		reminder.ID = uuid.NewString()
	}
	if _, err := r.reminders.InsertOne(ctx, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

func (r *ProfileRepository) ListReminders(ctx context.Context, userID string) ([]*domain.Reminder, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.reminders.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var out []*domain.Reminder
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateReminder applies a partial edit. The filter is scoped by user_id so a
// caller cannot touch another user's reminder; a miss either way is ErrNotFound.
func (r *ProfileRepository) UpdateReminder(ctx context.Context, userID, reminderID string, update ports.ReminderUpdate) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	fields := bson.M{}
	if update.Enabled != nil {
		fields["enabled"] = *update.Enabled
	}
	if update.Time != nil {
		fields["time"] = *update.Time
	}
	if update.Days != nil {
		fields["days"] = update.Days
	}
	if update.CustomMessage != nil {
		fields["custom_message"] = *update.CustomMessage
	}
	if len(fields) == 0 {
		return nil
	}

	res, err := r.reminders.UpdateOne(ctx,
		bson.M{"_id": reminderID, "user_id": userID},
		bson.M{"$set": fields},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProfileRepository) DeleteReminder(ctx context.Context, userID, reminderID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.reminders.DeleteOne(ctx, bson.M{"_id": reminderID, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpsertPushToken stores a device token, one document per user+token pair.
func (r *ProfileRepository) UpsertPushToken(ctx context.Context, token *domain.PushToken) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if token.ID == "" {
		token.ID = uuid.NewString()
	}

	filter := bson.M{"user_id": token.UserID, "token": token.Token}
	update := bson.M{
		"$set": bson.M{
			"device_type": token.DeviceType,
			"updated_at":  token.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"_id":     token.ID,
			"user_id": token.UserID,
			"token":   token.Token,
		},
	}
	_, err := r.pushTokens.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// EnsureIndexes creates the per-user lookup and uniqueness indexes.
func (r *ProfileRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := r.profiles.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}); err != nil {
		return err
	}
	if _, err := r.reminders.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}); err != nil {
		return err
	}
	_, err := r.pushTokens.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "token", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	return err
}
