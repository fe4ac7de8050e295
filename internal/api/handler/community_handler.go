package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adelphi-health/companion-api/internal/core/domain"
	"github.com/adelphi-health/companion-api/internal/core/ports"
)

type CommunityHandler struct {
	communityService ports.CommunityService
}

func NewCommunityHandler(communityService ports.CommunityService) *CommunityHandler {
	return &CommunityHandler{communityService: communityService}
}

type postRequest struct {
	Content string `json:"content" validate:"required,max=5000"`
}

type commentRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

type reactionRequest struct {
	Reaction string `json:"reaction" validate:"required,oneof=heart hug strength"`
}

type groupResponse struct {
	Group       *domain.Group `json:"group"`
	MemberCount int64         `json:"member_count"`
}

type postResponse struct {
	Post         *domain.Post `json:"post"`
	CommentCount int64        `json:"comment_count"`
}

func toGroupResponses(summaries []ports.GroupSummary) []groupResponse {
	out := make([]groupResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, groupResponse{Group: s.Group, MemberCount: s.MemberCount})
	}
	return out
}

// ListGroups returns public groups, optionally filtered by topic.
//
// @Summary      List community groups
// @Tags         community
// @Produce      json
// @Security     BearerAuth
// @Param        topic  query    string  false  "Topic filter"
// @Success      200    {array}  groupResponse
// @Router       /v1/groups [get]
func (h *CommunityHandler) ListGroups(c echo.Context) error {
	groups, err := h.communityService.ListGroups(c.Request().Context(), c.QueryParam("topic"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toGroupResponses(groups))
}

// JoinGroup adds the caller to a group. Joining twice is a no-op.
//
// @Summary      Join a group
// @Tags         community
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Group id"
// @Success      200  {object}  statusResponse
// @Router       /v1/groups/{id}/join [post]
func (h *CommunityHandler) JoinGroup(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.communityService.JoinGroup(c.Request().Context(), user, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

// LeaveGroup removes the caller from a group.
//
// @Summary      Leave a group
// @Tags         community
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Group id"
// @Success      200  {object}  statusResponse
// @Router       /v1/groups/{id}/leave [post]
func (h *CommunityHandler) LeaveGroup(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.communityService.LeaveGroup(c.Request().Context(), user, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

// JoinedGroups returns the groups the caller belongs to.
//
// @Summary      List joined groups
// @Tags         community
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  groupResponse
// @Router       /v1/groups/joined [get]
func (h *CommunityHandler) JoinedGroups(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	groups, err := h.communityService.JoinedGroups(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toGroupResponses(groups))
}

// GroupPosts returns a group's posts, newest first.
//
// @Summary      List group posts
// @Tags         community
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Group id"
// @Success      200  {array}  postResponse
// @Router       /v1/groups/{id}/posts [get]
func (h *CommunityHandler) GroupPosts(c echo.Context) error {
	posts, err := h.communityService.GroupPosts(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, postResponse{Post: p.Post, CommentCount: p.CommentCount})
	}
	return c.JSON(http.StatusOK, out)
}

// CreatePost publishes a message in a group.
//
// @Summary      Create a post
// @Tags         community
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Group id"
// @Param        body  body      postRequest  true  "Post content"
// @Success      201   {object}  domain.Post
// @Failure      400   {object}  map[string]string
// @Router       /v1/groups/{id}/posts [post]
func (h *CommunityHandler) CreatePost(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req postRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	post, err := h.communityService.CreatePost(c.Request().Context(), user, c.Param("id"), req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, post)
}

// ReactToPost adds a supportive reaction to a post.
//
// @Summary      React to a post
// @Tags         community
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Post id"
// @Param        body  body      reactionRequest  true  "Reaction"
// @Success      200   {object}  statusResponse
// @Router       /v1/posts/{id}/react [post]
func (h *CommunityHandler) ReactToPost(c echo.Context) error {
	var req reactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.communityService.ReactToPost(c.Request().Context(), c.Param("id"), req.Reaction); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

// PostComments returns a post's comments, oldest first.
//
// @Summary      List comments
// @Tags         community
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Post id"
// @Success      200  {array}  domain.Comment
// @Router       /v1/posts/{id}/comments [get]
func (h *CommunityHandler) PostComments(c echo.Context) error {
	comments, err := h.communityService.PostComments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// CreateComment replies to a post.
//
// @Summary      Comment on a post
// @Tags         community
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Post id"
// @Param        body  body      commentRequest  true  "Comment content"
// @Success      201   {object}  domain.Comment
// @Failure      400   {object}  map[string]string
// @Router       /v1/posts/{id}/comments [post]
func (h *CommunityHandler) CreateComment(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	comment, err := h.communityService.CreateComment(c.Request().Context(), user, c.Param("id"), req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}
