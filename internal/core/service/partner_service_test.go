package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/adelphi-health/companion-api/internal/core/domain"
)

var inviteCodePattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

func newPartnerService(repo *memPartnerRepo, codes *memCodeRegistry) *PartnerService {
	return NewPartnerService(repo, codes, zerolog.Nop())
}

func primaryUser() *domain.User {
	return &domain.User{ID: "primary-1", Name: "Jane", Role: domain.RolePrimary}
}

func acceptorUser() *domain.User {
	return &domain.User{ID: "partner-1", Name: "Sam", Role: domain.RolePrimary}
}

func TestPartnerService_CreateInvite(t *testing.T) {
	repo := newMemPartnerRepo()
	svc := newPartnerService(repo, newMemCodeRegistry())

	flags := domain.SharingFlags{ShareMood: true, EnableNotifications: true}
	invite, err := svc.CreateInvite(context.Background(), primaryUser(), flags)
	if err != nil {
		t.Fatalf("CreateInvite returned error: %v", err)
	}

	if !inviteCodePattern.MatchString(invite.Code) {
		t.Fatalf("expected 8-char uppercase alphanumeric code, got %q", invite.Code)
	}
	if invite.PrimaryUserID != "primary-1" || invite.PrimaryUserName != "Jane" {
		t.Fatalf("invite does not carry the primary user: %+v", invite)
	}
	if invite.Flags != flags {
		t.Fatalf("expected flags %+v, got %+v", flags, invite.Flags)
	}
	if invite.IsUsed {
		t.Fatalf("new invite must not be marked used")
	}

	ttl := time.Until(invite.ExpiresAt)
	if ttl < domain.InviteTTL-time.Minute || ttl > domain.InviteTTL {
		t.Fatalf("expected ~7 day expiry, got %v", ttl)
	}
}

func TestPartnerService_CreateInvite_RegistryDown(t *testing.T) {
	repo := newMemPartnerRepo()
	codes := newMemCodeRegistry()
	codes.err = errors.New("registry unavailable")

	invite, err := newPartnerService(repo, codes).CreateInvite(context.Background(), primaryUser(), domain.SharingFlags{})
	if err != nil {
		t.Fatalf("expected invite despite registry failure, got %v", err)
	}
	if !inviteCodePattern.MatchString(invite.Code) {
		t.Fatalf("unexpected code %q", invite.Code)
	}
}

func TestPartnerService_AcceptInvite(t *testing.T) {
	repo := newMemPartnerRepo()
	svc := newPartnerService(repo, newMemCodeRegistry())

	flags := domain.SharingFlags{ShareMood: true, ShareSymptoms: true}
	invite, err := svc.CreateInvite(context.Background(), primaryUser(), flags)
	if err != nil {
		t.Fatalf("CreateInvite failed: %v", err)
	}

	result, err := svc.AcceptInvite(context.Background(), invite.Code, acceptorUser())
	if err != nil {
		t.Fatalf("AcceptInvite returned error: %v", err)
	}
	if result.PrimaryUserName != "Jane" {
		t.Fatalf("expected primary user name in result, got %q", result.PrimaryUserName)
	}
	if result.Link.PrimaryUserID != "primary-1" || result.Link.PartnerUserID != "partner-1" {
		t.Fatalf("link connects the wrong users: %+v", result.Link)
	}
	if result.Link.Flags != flags {
		t.Fatalf("flags not copied onto link: %+v", result.Link.Flags)
	}
	if !result.Link.IsActive {
		t.Fatalf("new link must be active")
	}
}

func TestPartnerService_AcceptInvite_NormalisesCode(t *testing.T) {
	repo := newMemPartnerRepo()
	svc := newPartnerService(repo, newMemCodeRegistry())

	invite, err := svc.CreateInvite(context.Background(), primaryUser(), domain.SharingFlags{})
	if err != nil {
		t.Fatalf("CreateInvite failed: %v", err)
	}

	padded := "  " + invite.Code + " "
	if _, err := svc.AcceptInvite(context.Background(), padded, acceptorUser()); err != nil {
		t.Fatalf("expected trimmed code to redeem, got %v", err)
	}
}

func TestPartnerService_AcceptInvite_OneShot(t *testing.T) {
	repo := newMemPartnerRepo()
	svc := newPartnerService(repo, newMemCodeRegistry())

	invite, err := svc.CreateInvite(context.Background(), primaryUser(), domain.SharingFlags{})
	if err != nil {
		t.Fatalf("CreateInvite failed: %v", err)
	}
	if _, err := svc.AcceptInvite(context.Background(), invite.Code, acceptorUser()); err != nil {
		t.Fatalf("first accept failed: %v", err)
	}

	other := &domain.User{ID: "partner-2", Name: "Alex", Role: domain.RolePrimary}
	if _, err := svc.AcceptInvite(context.Background(), invite.Code, other); !errors.Is(err, domain.ErrInviteNotFound) {
		t.Fatalf("expected ErrInviteNotFound on replay, got %v", err)
	}
	if len(repo.links) != 1 {
		t.Fatalf("expected exactly one link, got %d", len(repo.links))
	}
}

func TestPartnerService_AcceptInvite_Expired(t *testing.T) {
	repo := newMemPartnerRepo()
	svc := newPartnerService(repo, newMemCodeRegistry())

	invite := &domain.PartnerInvite{
		Code:          "EXPIRED1",
		PrimaryUserID: "primary-1",
		ExpiresAt:     time.Now().UTC().Add(-time.Hour),
	}
	if _, err := repo.CreateInvite(context.Background(), invite); err != nil {
		t.Fatalf("seed invite failed: %v", err)
	}

	if _, err := svc.AcceptInvite(context.Background(), "EXPIRED1", acceptorUser()); !errors.Is(err, domain.ErrInviteNotFound) {
		t.Fatalf("expected ErrInviteNotFound for expired invite, got %v", err)
	}
}

func TestPartnerService_AcceptInvite_ExistingLink(t *testing.T) {
	repo := newMemPartnerRepo()
	svc := newPartnerService(repo, newMemCodeRegistry())

	first, err := svc.CreateInvite(context.Background(), primaryUser(), domain.SharingFlags{})
	if err != nil {
		t.Fatalf("CreateInvite failed: %v", err)
	}
	if _, err := svc.AcceptInvite(context.Background(), first.Code, acceptorUser()); err != nil {
		t.Fatalf("first accept failed: %v", err)
	}

	// Primary already linked: a second invite from them cannot be redeemed.
	second, err := svc.CreateInvite(context.Background(), primaryUser(), domain.SharingFlags{})
	if err != nil {
		t.Fatalf("CreateInvite failed: %v", err)
	}
	other := &domain.User{ID: "partner-2", Name: "Alex"}
	if _, err := svc.AcceptInvite(context.Background(), second.Code, other); !errors.Is(err, domain.ErrLinkExists) {
		t.Fatalf("expected ErrLinkExists for linked primary, got %v", err)
	}

	// Partner already linked: they cannot redeem a different primary's invite.
	otherPrimary := &domain.User{ID: "primary-2", Name: "Kim", Role: domain.RolePrimary}
	third, err := svc.CreateInvite(context.Background(), otherPrimary, domain.SharingFlags{})
	if err != nil {
		t.Fatalf("CreateInvite failed: %v", err)
	}
	if _, err := svc.AcceptInvite(context.Background(), third.Code, acceptorUser()); !errors.Is(err, domain.ErrLinkExists) {
		t.Fatalf("expected ErrLinkExists for linked partner, got %v", err)
	}
}

func TestPartnerService_GetLink_BothSides(t *testing.T) {
	repo := newMemPartnerRepo()
	svc := newPartnerService(repo, newMemCodeRegistry())

	invite, err := svc.CreateInvite(context.Background(), primaryUser(), domain.SharingFlags{})
	if err != nil {
		t.Fatalf("CreateInvite failed: %v", err)
	}
	if _, err := svc.AcceptInvite(context.Background(), invite.Code, acceptorUser()); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	fromPrimary, err := svc.GetLink(context.Background(), primaryUser())
	if err != nil {
		t.Fatalf("GetLink for primary failed: %v", err)
	}
	fromPartner, err := svc.GetLink(context.Background(), &domain.User{ID: "partner-1", Role: domain.RolePartner})
	if err != nil {
		t.Fatalf("GetLink for partner failed: %v", err)
	}
	if fromPrimary.ID != fromPartner.ID {
		t.Fatalf("both sides must resolve the same link")
	}
}

func TestPartnerService_RevokeLink(t *testing.T) {
	repo := newMemPartnerRepo()
	svc := newPartnerService(repo, newMemCodeRegistry())

	invite, err := svc.CreateInvite(context.Background(), primaryUser(), domain.SharingFlags{})
	if err != nil {
		t.Fatalf("CreateInvite failed: %v", err)
	}
	if _, err := svc.AcceptInvite(context.Background(), invite.Code, acceptorUser()); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	if err := svc.RevokeLink(context.Background(), primaryUser()); err != nil {
		t.Fatalf("RevokeLink returned error: %v", err)
	}
	if _, err := svc.GetLink(context.Background(), primaryUser()); !errors.Is(err, domain.ErrNoActiveLink) {
		t.Fatalf("expected ErrNoActiveLink after revoke, got %v", err)
	}
	// History is kept, only deactivated.
	if len(repo.links) != 1 || repo.links[0].IsActive || repo.links[0].RevokedAt == nil {
		t.Fatalf("revoked link record malformed: %+v", repo.links[0])
	}
}

func TestPartnerService_UpdateLinkSettings(t *testing.T) {
	repo := newMemPartnerRepo()
	svc := newPartnerService(repo, newMemCodeRegistry())

	invite, err := svc.CreateInvite(context.Background(), primaryUser(), domain.SharingFlags{ShareMood: true})
	if err != nil {
		t.Fatalf("CreateInvite failed: %v", err)
	}
	if _, err := svc.AcceptInvite(context.Background(), invite.Code, acceptorUser()); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	flags := domain.SharingFlags{ShareSymptoms: true, EnableNotifications: true}
	if err := svc.UpdateLinkSettings(context.Background(), primaryUser(), flags); err != nil {
		t.Fatalf("UpdateLinkSettings returned error: %v", err)
	}

	link, err := svc.GetLink(context.Background(), primaryUser())
	if err != nil {
		t.Fatalf("GetLink failed: %v", err)
	}
	if link.Flags != flags {
		t.Fatalf("expected flags %+v, got %+v", flags, link.Flags)
	}
}

func TestGenerateInviteCode_Format(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := generateInviteCode()
		if !inviteCodePattern.MatchString(code) {
			t.Fatalf("code %q is not 8-char uppercase alphanumeric", code)
		}
		seen[code] = true
	}
	if len(seen) < 90 {
		t.Fatalf("expected mostly unique codes, got %d distinct of 100", len(seen))
	}
}
