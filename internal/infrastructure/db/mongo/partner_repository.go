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
)

const (
	collectionInvites = "partner_invites"
	collectionLinks   = "partner_links"
)

type PartnerRepository struct {
	invites *mongo.Collection
	links   *mongo.Collection
	users   *mongo.Collection
	client  *mongo.Client
}

func NewPartnerRepository(db *mongo.Database) *PartnerRepository {
	return &PartnerRepository{
		invites: db.Collection(collectionInvites),
		links:   db.Collection(collectionLinks),
		users:   db.Collection(collectionUsers),
		client:  db.Client(),
	}
}

// CreateInvite inserts an invite. The unique index on invite_code rejects a
// code collision that slipped past the registry.
func (r *PartnerRepository) CreateInvite(ctx context.Context, invite *domain.PartnerInvite) (*domain.PartnerInvite, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if invite.ID == "" {
		invite.ID = uuid.NewString()
	}

	if _, err := r.invites.InsertOne(ctx, invite); err != nil {
		return nil, err
	}
	return invite, nil
}

// FindRedeemableInvite matches code with is_used=false and expires_at>now.
// Missing, used and expired invites all come back as domain.ErrInviteNotFound.
func (r *PartnerRepository) FindRedeemableInvite(ctx context.Context, code string, now time.Time) (*domain.PartnerInvite, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"invite_code": code,
		"is_used":     false,
		"expires_at":  bson.M{"$gt": now},
	}

	var invite domain.PartnerInvite
	if err := r.invites.FindOne(ctx, filter).Decode(&invite); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInviteNotFound
		}
		return nil, err
	}
	return &invite, nil
}

// RedeemInvite applies the three acceptance effects in one transaction: flip
// the invite's is_used flag, create the active link, promote the accepting
// user to the partner role. The flip is guarded on is_used=false so a replayed
// redeem matches nothing and fails with domain.ErrInviteNotFound.
//
// On standalone deployments without transaction support the same operations
// run sequentially; the guarded flip runs first, so a replay still fails
// closed before any link is written.
func (r *PartnerRepository) RedeemInvite(ctx context.Context, invite *domain.PartnerInvite, partnerUserID string, now time.Time) (*domain.PartnerLink, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	link := &domain.PartnerLink{
		ID:              uuid.NewString(),
		PrimaryUserID:   invite.PrimaryUserID,
		PrimaryUserName: invite.PrimaryUserName,
		PartnerUserID:   partnerUserID,
		Flags:           invite.Flags,
		IsActive:        true,
		CreatedAt:       now,
	}

	session, err := r.client.StartSession()
	if err != nil {
		if applyErr := r.applyRedeem(ctx, invite, link, partnerUserID, now); applyErr != nil {
			return nil, applyErr
		}
		return link, nil
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, r.applyRedeem(sc, invite, link, partnerUserID, now)
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

func (r *PartnerRepository) applyRedeem(ctx context.Context, invite *domain.PartnerInvite, link *domain.PartnerLink, partnerUserID string, now time.Time) error {
	res, err := r.invites.UpdateOne(ctx,
		bson.M{"_id": invite.ID, "is_used": false},
		bson.M{"$set": bson.M{"is_used": true}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrInviteNotFound
	}

	if _, err := r.links.InsertOne(ctx, link); err != nil {
		return err
	}

	_, err = r.users.UpdateOne(ctx,
		bson.M{"_id": partnerUserID},
		bson.M{"$set": bson.M{"role": domain.RolePartner, "updated_at": now}},
	)
	return err
}

func (r *PartnerRepository) FindActiveLinkByPrimary(ctx context.Context, primaryUserID string) (*domain.PartnerLink, error) {
	return r.findActiveLink(ctx, bson.M{"primary_user_id": primaryUserID, "is_active": true})
}

func (r *PartnerRepository) FindActiveLinkByPartner(ctx context.Context, partnerUserID string) (*domain.PartnerLink, error) {
	return r.findActiveLink(ctx, bson.M{"partner_user_id": partnerUserID, "is_active": true})
}

func (r *PartnerRepository) findActiveLink(ctx context.Context, filter bson.M) (*domain.PartnerLink, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var link domain.PartnerLink
	if err := r.links.FindOne(ctx, filter).Decode(&link); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoActiveLink
		}
		return nil, err
	}
	return &link, nil
}

// RevokeActiveLinks deactivates every active link held by the primary user.
func (r *PartnerRepository) RevokeActiveLinks(ctx context.Context, primaryUserID string, now time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.links.UpdateMany(ctx,
		bson.M{"primary_user_id": primaryUserID, "is_active": true},
		bson.M{"$set": bson.M{"is_active": false, "revoked_at": now}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNoActiveLink
	}
	return nil
}

func (r *PartnerRepository) UpdateActiveLinkFlags(ctx context.Context, primaryUserID string, flags domain.SharingFlags) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.links.UpdateOne(ctx,
		bson.M{"primary_user_id": primaryUserID, "is_active": true},
		bson.M{"$set": bson.M{"flags": flags}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNoActiveLink
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the invite and link collections.
func (r *PartnerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.invites.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "invite_code", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "primary_user_id", Value: 1}}},
	})
	if err != nil {
		return err
	}

	_, err = r.links.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "primary_user_id", Value: 1}, {Key: "is_active", Value: 1}}},
		{Keys: bson.D{{Key: "partner_user_id", Value: 1}, {Key: "is_active", Value: 1}}},
	})
	return err
}
