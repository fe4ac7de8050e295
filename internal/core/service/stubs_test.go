package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/adelphi-health/companion-api/internal/core/domain"
	"github.com/adelphi-health/companion-api/internal/core/ports"
)

// In-memory fakes shared by the service tests. Each fake implements just
// enough of its port to exercise the service under test.

// --- users ---

type memUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	clone := *user
	clone.ID = fmt.Sprintf("user-%d", r.seq)
	r.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (r *memUserRepo) SetName(_ context.Context, id, name string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Name = name
	return nil
}

func (r *memUserRepo) SetOnboardingComplete(_ context.Context, id string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.HasCompletedOnboarding = true
	return nil
}

// --- profiles ---

type memProfileRepo struct {
	profiles  map[string]*domain.Profile
	reminders map[string]*domain.Reminder
	tokens    []*domain.PushToken
	seq       int
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{
		profiles:  make(map[string]*domain.Profile),
		reminders: make(map[string]*domain.Reminder),
	}
}

func (r *memProfileRepo) FindProfile(_ context.Context, userID string) (*domain.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *p
	return &out, nil
}

func (r *memProfileRepo) UpsertProfile(_ context.Context, profile *domain.Profile) error {
	clone := *profile
	r.profiles[profile.UserID] = &clone
	return nil
}

func (r *memProfileRepo) InsertReminder(_ context.Context, rem *domain.Reminder) (*domain.Reminder, error) {
	r.seq++
	clone := *rem
	clone.ID = fmt.Sprintf("reminder-%d", r.seq)
	r.reminders[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memProfileRepo) ListReminders(_ context.Context, userID string) ([]*domain.Reminder, error) {
	var out []*domain.Reminder
	for _, rem := range r.reminders {
		if rem.UserID == userID {
			clone := *rem
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memProfileRepo) UpdateReminder(_ context.Context, userID, reminderID string, update ports.ReminderUpdate) error {
	rem, ok := r.reminders[reminderID]
	if !ok || rem.UserID != userID {
		return domain.ErrNotFound
	}
	if update.Enabled != nil {
		rem.Enabled = *update.Enabled
	}
	if update.Time != nil {
		rem.Time = *update.Time
	}
	if update.Days != nil {
		rem.Days = update.Days
	}
	if update.CustomMessage != nil {
		rem.CustomMessage = *update.CustomMessage
	}
	return nil
}

func (r *memProfileRepo) DeleteReminder(_ context.Context, userID, reminderID string) error {
	rem, ok := r.reminders[reminderID]
	if !ok || rem.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.reminders, reminderID)
	return nil
}

func (r *memProfileRepo) UpsertPushToken(_ context.Context, token *domain.PushToken) error {
	for i, t := range r.tokens {
		if t.UserID == token.UserID && t.Token == token.Token {
			clone := *token
			r.tokens[i] = &clone
			return nil
		}
	}
	clone := *token
	r.tokens = append(r.tokens, &clone)
	return nil
}

// --- partner invites and links ---

type memPartnerRepo struct {
	invites map[string]*domain.PartnerInvite
	links   []*domain.PartnerLink
	seq     int
}

func newMemPartnerRepo() *memPartnerRepo {
	return &memPartnerRepo{invites: make(map[string]*domain.PartnerInvite)}
}

func (r *memPartnerRepo) CreateInvite(_ context.Context, invite *domain.PartnerInvite) (*domain.PartnerInvite, error) {
	r.seq++
	clone := *invite
	clone.ID = fmt.Sprintf("invite-%d", r.seq)
	r.invites[clone.Code] = &clone
	out := clone
	return &out, nil
}

func (r *memPartnerRepo) FindRedeemableInvite(_ context.Context, code string, now time.Time) (*domain.PartnerInvite, error) {
	invite, ok := r.invites[code]
	if !ok || !invite.Redeemable(now) {
		return nil, domain.ErrInviteNotFound
	}
	out := *invite
	return &out, nil
}

func (r *memPartnerRepo) RedeemInvite(_ context.Context, invite *domain.PartnerInvite, partnerUserID string, now time.Time) (*domain.PartnerLink, error) {
	stored, ok := r.invites[invite.Code]
	if !ok || stored.IsUsed {
		return nil, domain.ErrInviteNotFound
	}
	stored.IsUsed = true

	r.seq++
	link := &domain.PartnerLink{
		ID:              fmt.Sprintf("link-%d", r.seq),
		PrimaryUserID:   stored.PrimaryUserID,
		PrimaryUserName: stored.PrimaryUserName,
		PartnerUserID:   partnerUserID,
		Flags:           stored.Flags,
		IsActive:        true,
		CreatedAt:       now,
	}
	r.links = append(r.links, link)
	out := *link
	return &out, nil
}

func (r *memPartnerRepo) FindActiveLinkByPrimary(_ context.Context, primaryUserID string) (*domain.PartnerLink, error) {
	for _, l := range r.links {
		if l.IsActive && l.PrimaryUserID == primaryUserID {
			out := *l
			return &out, nil
		}
	}
	return nil, domain.ErrNoActiveLink
}

func (r *memPartnerRepo) FindActiveLinkByPartner(_ context.Context, partnerUserID string) (*domain.PartnerLink, error) {
	for _, l := range r.links {
		if l.IsActive && l.PartnerUserID == partnerUserID {
			out := *l
			return &out, nil
		}
	}
	return nil, domain.ErrNoActiveLink
}

func (r *memPartnerRepo) RevokeActiveLinks(_ context.Context, primaryUserID string, now time.Time) error {
	found := false
	for _, l := range r.links {
		if l.IsActive && l.PrimaryUserID == primaryUserID {
			l.IsActive = false
			revoked := now
			l.RevokedAt = &revoked
			found = true
		}
	}
	if !found {
		return domain.ErrNoActiveLink
	}
	return nil
}

func (r *memPartnerRepo) UpdateActiveLinkFlags(_ context.Context, primaryUserID string, flags domain.SharingFlags) error {
	for _, l := range r.links {
		if l.IsActive && l.PrimaryUserID == primaryUserID {
			l.Flags = flags
			return nil
		}
	}
	return domain.ErrNoActiveLink
}

// --- invite code registry ---

type memCodeRegistry struct {
	reserved map[string]bool
	err      error
}

func newMemCodeRegistry() *memCodeRegistry {
	return &memCodeRegistry{reserved: make(map[string]bool)}
}

func (r *memCodeRegistry) Reserve(_ context.Context, code string, _ time.Duration) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if r.reserved[code] {
		return false, nil
	}
	r.reserved[code] = true
	return true, nil
}

// --- logs ---

type memLogRepo struct {
	symptoms  []*domain.SymptomLog
	moods     []*domain.MoodLog
	lifestyle []*domain.LifestyleLog
	seq       int
}

func newMemLogRepo() *memLogRepo { return &memLogRepo{} }

func (r *memLogRepo) nextID(prefix string) string {
	r.seq++
	return fmt.Sprintf("%s-%d", prefix, r.seq)
}

func (r *memLogRepo) InsertSymptomLog(_ context.Context, log *domain.SymptomLog) (*domain.SymptomLog, error) {
	clone := *log
	clone.ID = r.nextID("symptom")
	r.symptoms = append(r.symptoms, &clone)
	out := clone
	return &out, nil
}

func (r *memLogRepo) InsertMoodLog(_ context.Context, log *domain.MoodLog) (*domain.MoodLog, error) {
	clone := *log
	clone.ID = r.nextID("mood")
	r.moods = append(r.moods, &clone)
	out := clone
	return &out, nil
}

func (r *memLogRepo) InsertLifestyleLog(_ context.Context, log *domain.LifestyleLog) (*domain.LifestyleLog, error) {
	clone := *log
	clone.ID = r.nextID("lifestyle")
	r.lifestyle = append(r.lifestyle, &clone)
	out := clone
	return &out, nil
}

func inWindow(loggedAt time.Time, filter ports.LogFilter) bool {
	if !filter.Since.IsZero() && loggedAt.Before(filter.Since) {
		return false
	}
	if !filter.Until.IsZero() && !loggedAt.Before(filter.Until) {
		return false
	}
	return true
}

func (r *memLogRepo) ListSymptomLogs(_ context.Context, filter ports.LogFilter) ([]*domain.SymptomLog, error) {
	var out []*domain.SymptomLog
	for _, l := range r.symptoms {
		if l.UserID == filter.UserID && inWindow(l.LoggedAt, filter) {
			clone := *l
			out = append(out, &clone)
		}
	}
	sortByTime(out, filter.Ascending, func(l *domain.SymptomLog) time.Time { return l.LoggedAt })
	return capLimit(out, filter.Limit), nil
}

func (r *memLogRepo) ListMoodLogs(_ context.Context, filter ports.LogFilter) ([]*domain.MoodLog, error) {
	var out []*domain.MoodLog
	for _, l := range r.moods {
		if l.UserID == filter.UserID && inWindow(l.LoggedAt, filter) {
			clone := *l
			out = append(out, &clone)
		}
	}
	sortByTime(out, filter.Ascending, func(l *domain.MoodLog) time.Time { return l.LoggedAt })
	return capLimit(out, filter.Limit), nil
}

func (r *memLogRepo) ListLifestyleLogs(_ context.Context, filter ports.LogFilter) ([]*domain.LifestyleLog, error) {
	var out []*domain.LifestyleLog
	for _, l := range r.lifestyle {
		if l.UserID == filter.UserID && inWindow(l.LoggedAt, filter) {
			clone := *l
			out = append(out, &clone)
		}
	}
	sortByTime(out, filter.Ascending, func(l *domain.LifestyleLog) time.Time { return l.LoggedAt })
	return capLimit(out, filter.Limit), nil
}

func (r *memLogRepo) FindLatestMoodSince(_ context.Context, userID string, since time.Time) (*domain.MoodLog, error) {
	var latest *domain.MoodLog
	for _, l := range r.moods {
		if l.UserID != userID || l.LoggedAt.Before(since) {
			continue
		}
		if latest == nil || l.LoggedAt.After(latest.LoggedAt) {
			latest = l
		}
	}
	if latest == nil {
		return nil, domain.ErrNotFound
	}
	out := *latest
	return &out, nil
}

func (r *memLogRepo) FindLatestLifestyleSince(_ context.Context, userID string, since time.Time) (*domain.LifestyleLog, error) {
	var latest *domain.LifestyleLog
	for _, l := range r.lifestyle {
		if l.UserID != userID || l.LoggedAt.Before(since) {
			continue
		}
		if latest == nil || l.LoggedAt.After(latest.LoggedAt) {
			latest = l
		}
	}
	if latest == nil {
		return nil, domain.ErrNotFound
	}
	out := *latest
	return &out, nil
}

func sortByTime[T any](items []T, ascending bool, at func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		if ascending {
			return at(items[i]).Before(at(items[j]))
		}
		return at(items[i]).After(at(items[j]))
	})
}

func capLimit[T any](items []T, limit int64) []T {
	if limit > 0 && int64(len(items)) > limit {
		return items[:limit]
	}
	return items
}

// --- notifications ---

type memNotificationRepo struct {
	notifications []*domain.Notification
	seq           int
}

func newMemNotificationRepo() *memNotificationRepo { return &memNotificationRepo{} }

func (r *memNotificationRepo) Insert(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	r.seq++
	clone := *n
	clone.ID = fmt.Sprintf("notification-%d", r.seq)
	r.notifications = append(r.notifications, &clone)
	out := clone
	return &out, nil
}

func (r *memNotificationRepo) ListByPartner(_ context.Context, partnerUserID string, limit int64) ([]*domain.Notification, error) {
	var out []*domain.Notification
	for _, n := range r.notifications {
		if n.PartnerUserID == partnerUserID {
			clone := *n
			out = append(out, &clone)
		}
	}
	sortByTime(out, false, func(n *domain.Notification) time.Time { return n.CreatedAt })
	return capLimit(out, limit), nil
}

// --- care ping dedup ---

type memDedup struct {
	marked map[string]bool
	err    error
}

func newMemDedup() *memDedup { return &memDedup{marked: make(map[string]bool)} }

func dedupKey(primaryUserID string, day time.Time) string {
	return primaryUserID + ":" + day.UTC().Format("2006-01-02")
}

func (d *memDedup) IsDuplicate(_ context.Context, primaryUserID string, day time.Time) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	return d.marked[dedupKey(primaryUserID, day)], nil
}

func (d *memDedup) Mark(_ context.Context, primaryUserID string, day time.Time) error {
	if d.err != nil {
		return d.err
	}
	d.marked[dedupKey(primaryUserID, day)] = true
	return nil
}

// --- dispatcher ---

type stubDispatcher struct {
	enqueued []ports.CarePingInput
}

func (d *stubDispatcher) Enqueue(ping ports.CarePingInput) {
	d.enqueued = append(d.enqueued, ping)
}
