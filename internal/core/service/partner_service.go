package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adelphi-health/companion-api/internal/core/domain"
	"github.com/adelphi-health/companion-api/internal/core/ports"
)

// codeReserveAttempts bounds the regeneration loop on code collisions.
const codeReserveAttempts = 5

// PartnerService drives the invite/link lifecycle.
type PartnerService struct {
	repo   ports.PartnerRepository
	codes  ports.InviteCodeRegistry
	logger zerolog.Logger
}

func NewPartnerService(repo ports.PartnerRepository, codes ports.InviteCodeRegistry, logger zerolog.Logger) *PartnerService {
	return &PartnerService{repo: repo, codes: codes, logger: logger}
}

// CreateInvite issues a single-use invite for the primary user. Codes are
// reserved in the registry before insert; the unique index on invite_code is
// the durable backstop when the registry is unavailable.
func (s *PartnerService) CreateInvite(ctx context.Context, primary *domain.User, flags domain.SharingFlags) (*domain.PartnerInvite, error) {
	now := time.Now().UTC()

	code, err := s.reserveCode(ctx)
	if err != nil {
		return nil, err
	}

	invite := &domain.PartnerInvite{
		Code:            code,
		PrimaryUserID:   primary.ID,
		PrimaryUserName: primary.Name,
		Flags:           flags,
		ExpiresAt:       now.Add(domain.InviteTTL),
		CreatedAt:       now,
	}

	created, err := s.repo.CreateInvite(ctx, invite)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("primary_user_id", primary.ID).Str("invite_code", code).Msg("partner invite created")
	return created, nil
}

// AcceptInvite redeems a code for the accepting user. The three acceptance
// effects (link creation, invite consumption, role change) are applied by the
// repository inside one transactional boundary.
func (s *PartnerService) AcceptInvite(ctx context.Context, code string, acceptor *domain.User) (*ports.AcceptResult, error) {
	now := time.Now().UTC()

	invite, err := s.repo.FindRedeemableInvite(ctx, strings.ToUpper(strings.TrimSpace(code)), now)
	if err != nil {
		return nil, err
	}

	// At most one active link per primary user and per partner user.
	if _, err := s.repo.FindActiveLinkByPrimary(ctx, invite.PrimaryUserID); err == nil {
		return nil, domain.ErrLinkExists
	} else if !errors.Is(err, domain.ErrNoActiveLink) {
		return nil, err
	}
	if _, err := s.repo.FindActiveLinkByPartner(ctx, acceptor.ID); err == nil {
		return nil, domain.ErrLinkExists
	} else if !errors.Is(err, domain.ErrNoActiveLink) {
		return nil, err
	}

	link, err := s.repo.RedeemInvite(ctx, invite, acceptor.ID, now)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("primary_user_id", invite.PrimaryUserID).
		Str("partner_user_id", acceptor.ID).
		Msg("partner invite accepted")

	return &ports.AcceptResult{Link: link, PrimaryUserName: invite.PrimaryUserName}, nil
}

// GetLink returns the caller's active link, looked up from whichever side of
// the relation the caller is on.
func (s *PartnerService) GetLink(ctx context.Context, user *domain.User) (*domain.PartnerLink, error) {
	if user.Role == domain.RolePrimary {
		return s.repo.FindActiveLinkByPrimary(ctx, user.ID)
	}
	return s.repo.FindActiveLinkByPartner(ctx, user.ID)
}

// RevokeLink deactivates the primary user's active links. History is kept.
func (s *PartnerService) RevokeLink(ctx context.Context, primary *domain.User) error {
	if err := s.repo.RevokeActiveLinks(ctx, primary.ID, time.Now().UTC()); err != nil {
		return err
	}
	s.logger.Info().Str("primary_user_id", primary.ID).Msg("partner link revoked")
	return nil
}

// UpdateLinkSettings overwrites the sharing flags on the active link.
func (s *PartnerService) UpdateLinkSettings(ctx context.Context, primary *domain.User, flags domain.SharingFlags) error {
	return s.repo.UpdateActiveLinkFlags(ctx, primary.ID, flags)
}

// reserveCode generates codes until the registry accepts one. When the
// registry errors the generated code is used as-is; the invite_code unique
// index still rejects a true collision on insert.
func (s *PartnerService) reserveCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < codeReserveAttempts; attempt++ {
		code := generateInviteCode()
		ok, err := s.codes.Reserve(ctx, code, domain.InviteTTL)
		if err != nil {
			s.logger.Warn().Err(err).Msg("invite code registry unavailable, relying on unique index")
			return code, nil
		}
		if ok {
			return code, nil
		}
	}
	return "", errors.New("invite code space exhausted after retries")
}

// generateInviteCode returns an 8-character uppercase alphanumeric code.
func generateInviteCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:domain.InviteCodeLength])
}
