package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/adelphi-health/companion-api/internal/core/domain"
	"github.com/adelphi-health/companion-api/internal/core/ports"
)

// CommunityService serves public groups, memberships, posts and comments.
type CommunityService struct {
	repo   ports.CommunityRepository
	logger zerolog.Logger
}

func NewCommunityService(repo ports.CommunityRepository, logger zerolog.Logger) *CommunityService {
	return &CommunityService{repo: repo, logger: logger}
}

func (s *CommunityService) ListGroups(ctx context.Context, topic string) ([]ports.GroupSummary, error) {
	groups, err := s.repo.ListPublicGroups(ctx, topic)
	if err != nil {
		return nil, err
	}
	return s.withMemberCounts(ctx, groups)
}

func (s *CommunityService) JoinGroup(ctx context.Context, user *domain.User, groupID string) error {
	return s.repo.UpsertMembership(ctx, groupID, user.ID, time.Now().UTC())
}

func (s *CommunityService) LeaveGroup(ctx context.Context, user *domain.User, groupID string) error {
	return s.repo.DeleteMembership(ctx, groupID, user.ID)
}

func (s *CommunityService) JoinedGroups(ctx context.Context, user *domain.User) ([]ports.GroupSummary, error) {
	ids, err := s.repo.ListMembershipGroupIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []ports.GroupSummary{}, nil
	}
	groups, err := s.repo.ListGroupsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return s.withMemberCounts(ctx, groups)
}

func (s *CommunityService) GroupPosts(ctx context.Context, groupID string) ([]ports.PostSummary, error) {
	posts, err := s.repo.ListPosts(ctx, groupID)
	if err != nil {
		return nil, err
	}

	out := make([]ports.PostSummary, 0, len(posts))
	for _, p := range posts {
		count, err := s.repo.CountComments(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, ports.PostSummary{Post: p, CommentCount: count})
	}
	return out, nil
}

func (s *CommunityService) CreatePost(ctx context.Context, user *domain.User, groupID, content string) (*domain.Post, error) {
	post := &domain.Post{
		GroupID:   groupID,
		UserID:    user.ID,
		UserName:  user.Name,
		Content:   content,
		Reactions: map[string]int{},
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.InsertPost(ctx, post)
}

func (s *CommunityService) ReactToPost(ctx context.Context, postID, reaction string) error {
	return s.repo.IncrementReaction(ctx, postID, reaction)
}

func (s *CommunityService) PostComments(ctx context.Context, postID string) ([]*domain.Comment, error) {
	return s.repo.ListComments(ctx, postID)
}

func (s *CommunityService) CreateComment(ctx context.Context, user *domain.User, postID, content string) (*domain.Comment, error) {
	comment := &domain.Comment{
		PostID:    postID,
		UserID:    user.ID,
		UserName:  user.Name,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.InsertComment(ctx, comment)
}

func (s *CommunityService) withMemberCounts(ctx context.Context, groups []*domain.Group) ([]ports.GroupSummary, error) {
	out := make([]ports.GroupSummary, 0, len(groups))
	for _, g := range groups {
		count, err := s.repo.CountMembers(ctx, g.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, ports.GroupSummary{Group: g, MemberCount: count})
	}
	return out, nil
}
