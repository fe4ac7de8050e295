package ports

import (
	"context"
	"time"

	"github.com/adelphi-health/companion-api/internal/core/domain"
)

// GroupSummary is a group plus its live member count.
type GroupSummary struct {
	Group       *domain.Group
	MemberCount int64
}

// PostSummary is a post plus its live comment count.
type PostSummary struct {
	Post         *domain.Post
	CommentCount int64
}

// CommunityRepository persists groups, memberships, posts and comments.
type CommunityRepository interface {
	ListPublicGroups(ctx context.Context, topic string) ([]*domain.Group, error)
	ListGroupsByIDs(ctx context.Context, ids []string) ([]*domain.Group, error)
	CountMembers(ctx context.Context, groupID string) (int64, error)

	UpsertMembership(ctx context.Context, groupID, userID string, now time.Time) error
	DeleteMembership(ctx context.Context, groupID, userID string) error
	ListMembershipGroupIDs(ctx context.Context, userID string) ([]string, error)

	ListPosts(ctx context.Context, groupID string) ([]*domain.Post, error)
	InsertPost(ctx context.Context, p *domain.Post) (*domain.Post, error)
	IncrementReaction(ctx context.Context, postID, reaction string) error
	CountComments(ctx context.Context, postID string) (int64, error)

	ListComments(ctx context.Context, postID string) ([]*domain.Comment, error)
	InsertComment(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
}

type CommunityService interface {
	ListGroups(ctx context.Context, topic string) ([]GroupSummary, error)
	JoinGroup(ctx context.Context, user *domain.User, groupID string) error
	LeaveGroup(ctx context.Context, user *domain.User, groupID string) error
	JoinedGroups(ctx context.Context, user *domain.User) ([]GroupSummary, error)

	GroupPosts(ctx context.Context, groupID string) ([]PostSummary, error)
	CreatePost(ctx context.Context, user *domain.User, groupID, content string) (*domain.Post, error)
	ReactToPost(ctx context.Context, postID, reaction string) error

	PostComments(ctx context.Context, postID string) ([]*domain.Comment, error)
	CreateComment(ctx context.Context, user *domain.User, postID, content string) (*domain.Comment, error)
}
