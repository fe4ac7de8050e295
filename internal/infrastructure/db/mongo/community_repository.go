package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adelphi-health/companion-api/internal/core/domain"
)

const (
	collectionGroups      = "groups"
	collectionMemberships = "group_memberships"
	collectionPosts       = "posts"
	collectionComments    = "comments"
)

type CommunityRepository struct {
	groups      *mongo.Collection
	memberships *mongo.Collection
	posts       *mongo.Collection
	comments    *mongo.Collection
}

func NewCommunityRepository(db *mongo.Database) *CommunityRepository {
	return &CommunityRepository{
		groups:      db.Collection(collectionGroups),
		memberships: db.Collection(collectionMemberships),
		posts:       db.Collection(collectionPosts),
		comments:    db.Collection(collectionComments),
	}
}

type membershipDoc struct {
	GroupID  string    `bson:"group_id"`
	UserID   string    `bson:"user_id"`
	JoinedAt time.Time `bson:"joined_at"`
}

func (r *CommunityRepository) ListPublicGroups(ctx context.Context, topic string) ([]*domain.Group, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"is_public": true}
	if topic != "" {
		query["topics"] = topic
	}

	cursor, err := r.groups.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var out []*domain.Group
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CommunityRepository) ListGroupsByIDs(ctx context.Context, ids []string) ([]*domain.Group, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.groups.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var out []*domain.Group
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CommunityRepository) CountMembers(ctx context.Context, groupID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.memberships.CountDocuments(ctx, bson.M{"group_id": groupID})
}

// UpsertMembership joins a user to a group; joining twice is a no-op.
func (r *CommunityRepository) UpsertMembership(ctx context.Context, groupID, userID string, now time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"group_id": groupID, "user_id": userID}
	update := bson.M{"$setOnInsert": membershipDoc{GroupID: groupID, UserID: userID, JoinedAt: now}}
	_, err := r.memberships.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *CommunityRepository) DeleteMembership(ctx context.Context, groupID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.memberships.DeleteOne(ctx, bson.M{"group_id": groupID, "user_id": userID})
	return err
}

func (r *CommunityRepository) ListMembershipGroupIDs(ctx context.Context, userID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.memberships.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	var docs []membershipDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.GroupID)
	}
	return ids, nil
}

func (r *CommunityRepository) ListPosts(ctx context.Context, groupID string) ([]*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.posts.Find(ctx, bson.M{"group_id": groupID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var out []*domain.Post
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CommunityRepository) InsertPost(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if _, err := r.posts.InsertOne(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *CommunityRepository) IncrementReaction(ctx context.Context, postID, reaction string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.posts.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$inc": bson.M{"reactions." + reaction: 1}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CommunityRepository) CountComments(ctx context.Context, postID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.comments.CountDocuments(ctx, bson.M{"post_id": postID})
}

func (r *CommunityRepository) ListComments(ctx context.Context, postID string) ([]*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.comments.Find(ctx, bson.M{"post_id": postID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var out []*domain.Comment
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CommunityRepository) InsertComment(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if _, err := r.comments.InsertOne(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// EnsureIndexes creates membership uniqueness and the list-order indexes.
func (r *CommunityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := r.memberships.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "group_id", Value: 1}, {Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}); err != nil {
		return err
	}
	if _, err := r.posts.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "group_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}); err != nil {
		return err
	}
	_, err := r.comments.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "post_id", Value: 1}, {Key: "created_at", Value: 1}}},
	})
	return err
}
