package ports

import (
	"context"
	"time"

	"github.com/adelphi-health/companion-api/internal/core/domain"
)

// PartnerRepository persists invites and links.
//
// RedeemInvite applies the three acceptance effects — create the active link,
// flip the invite's is_used flag, set the accepting user's role to partner —
// inside one transactional boundary. The is_used flip must be guarded on
// is_used=false so a replayed redeem fails with domain.ErrInviteNotFound
// instead of double-linking.
type PartnerRepository interface {
	CreateInvite(ctx context.Context, invite *domain.PartnerInvite) (*domain.PartnerInvite, error)
	// FindRedeemableInvite matches code with is_used=false and expires_at>now.
	// Missing, used and expired invites are indistinguishable: all return
	// domain.ErrInviteNotFound.
	FindRedeemableInvite(ctx context.Context, code string, now time.Time) (*domain.PartnerInvite, error)
	RedeemInvite(ctx context.Context, invite *domain.PartnerInvite, partnerUserID string, now time.Time) (*domain.PartnerLink, error)

	FindActiveLinkByPrimary(ctx context.Context, primaryUserID string) (*domain.PartnerLink, error)
	FindActiveLinkByPartner(ctx context.Context, partnerUserID string) (*domain.PartnerLink, error)
	RevokeActiveLinks(ctx context.Context, primaryUserID string, now time.Time) error
	UpdateActiveLinkFlags(ctx context.Context, primaryUserID string, flags domain.SharingFlags) error
}

// InviteCodeRegistry reserves invite codes so two concurrent invites cannot
// share one. Reserve returns false when the code is already taken.
type InviteCodeRegistry interface {
	Reserve(ctx context.Context, code string, ttl time.Duration) (bool, error)
}

// AcceptResult is returned after a successful invite acceptance.
type AcceptResult struct {
	Link            *domain.PartnerLink
	PrimaryUserName string
}

// PartnerService drives the invite/link lifecycle and the partner dashboard.
type PartnerService interface {
	CreateInvite(ctx context.Context, primary *domain.User, flags domain.SharingFlags) (*domain.PartnerInvite, error)
	AcceptInvite(ctx context.Context, code string, acceptor *domain.User) (*AcceptResult, error)
	GetLink(ctx context.Context, user *domain.User) (*domain.PartnerLink, error)
	RevokeLink(ctx context.Context, primary *domain.User) error
	UpdateLinkSettings(ctx context.Context, primary *domain.User, flags domain.SharingFlags) error
}
