package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adelphi-health/companion-api/internal/core/domain"
	"github.com/adelphi-health/companion-api/internal/core/ports"
)

type ContentHandler struct {
	contentService ports.ContentService
}

func NewContentHandler(contentService ports.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

type symptomProposalRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" validate:"required,oneof=physical emotional cognitive"`
	Stages      []string `json:"stages"`
}

type articleRequest struct {
	Title         string   `json:"title" validate:"required"`
	Summary       string   `json:"summary"`
	Content       string   `json:"content" validate:"required"`
	Category      string   `json:"category" validate:"required"`
	Tags          []string `json:"tags"`
	Stages        []string `json:"stages"`
	SymptomTags   []string `json:"symptom_tags"`
	EthnicityTags []string `json:"ethnicity_tags"`
	Audience      string   `json:"audience" validate:"omitempty,oneof=primary partner all"`
}

type eventRequest struct {
	Title            string     `json:"title" validate:"required"`
	Description      string     `json:"description"`
	EventType        string     `json:"event_type" validate:"required"`
	IsOnline         bool       `json:"is_online"`
	Location         string     `json:"location"`
	Link             string     `json:"link"`
	StartTime        time.Time  `json:"start_time" validate:"required"`
	EndTime          *time.Time `json:"end_time"`
	RegistrationLink string     `json:"registration_link"`
}

type specialistRequest struct {
	Name        string   `json:"name" validate:"required"`
	Credentials string   `json:"credentials"`
	Bio         string   `json:"bio"`
	Specialties []string `json:"specialties"`
	Services    []string `json:"services"`
	IsOnline    bool     `json:"is_online"`
	Location    string   `json:"location"`
	Website     string   `json:"website"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email" validate:"omitempty,email"`
	BookingLink string   `json:"booking_link"`
}

func toStages(in []string) []domain.MenopauseStage {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.MenopauseStage, 0, len(in))
	for _, s := range in {
		out = append(out, domain.MenopauseStage(s))
	}
	return out
}

// ListSymptoms returns the reviewed symptom catalog.
//
// @Summary      List catalog symptoms
// @Tags         library
// @Produce      json
// @Security     BearerAuth
// @Param        category  query    string  false  "physical, emotional or cognitive"
// @Param        stage     query    string  false  "Menopause stage filter"
// @Success      200       {array}  domain.Symptom
// @Router       /v1/symptoms [get]
func (h *ContentHandler) ListSymptoms(c echo.Context) error {
	symptoms, err := h.contentService.ListSymptoms(c.Request().Context(), ports.SymptomFilter{
		Category: domain.SymptomCategory(c.QueryParam("category")),
		Stage:    domain.MenopauseStage(c.QueryParam("stage")),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, symptoms)
}

// ProposeSymptom submits a user-defined catalog entry for review.
//
// @Summary      Propose a custom symptom
// @Tags         library
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      symptomProposalRequest  true  "Symptom details"
// @Success      201   {object}  domain.Symptom
// @Failure      400   {object}  map[string]string
// @Router       /v1/symptoms [post]
func (h *ContentHandler) ProposeSymptom(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req symptomProposalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	symptom, err := h.contentService.ProposeSymptom(c.Request().Context(), user, ports.SymptomInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    domain.SymptomCategory(req.Category),
		Stages:      toStages(req.Stages),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, symptom)
}

// ListArticles returns library articles matching the filters.
//
// @Summary      List articles
// @Tags         library
// @Produce      json
// @Security     BearerAuth
// @Param        category  query    string  false  "Category filter"
// @Param        stage     query    string  false  "Menopause stage filter"
// @Param        audience  query    string  false  "primary, partner or all"
// @Param        search    query    string  false  "Free-text search over title, content and tags"
// @Success      200       {array}  domain.Article
// @Router       /v1/articles [get]
func (h *ContentHandler) ListArticles(c echo.Context) error {
	articles, err := h.contentService.ListArticles(c.Request().Context(), ports.ArticleFilter{
		Category: c.QueryParam("category"),
		Stage:    domain.MenopauseStage(c.QueryParam("stage")),
		Audience: c.QueryParam("audience"),
		Search:   c.QueryParam("search"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

// GetArticle returns a single article.
//
// @Summary      Get an article
// @Tags         library
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Article id"
// @Success      200  {object}  domain.Article
// @Failure      404  {object}  map[string]string
// @Router       /v1/articles/{id} [get]
func (h *ContentHandler) GetArticle(c echo.Context) error {
	article, err := h.contentService.GetArticle(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, article)
}

// CreateArticle publishes a new library article. Admin only.
//
// @Summary      Publish an article
// @Tags         library
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      articleRequest  true  "Article content"
// @Success      201   {object}  domain.Article
// @Failure      403   {object}  map[string]string
// @Router       /v1/articles [post]
func (h *ContentHandler) CreateArticle(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req articleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	article, err := h.contentService.CreateArticle(c.Request().Context(), user, ports.ArticleInput{
		Title:         req.Title,
		Summary:       req.Summary,
		Content:       req.Content,
		Category:      req.Category,
		Tags:          req.Tags,
		Stages:        toStages(req.Stages),
		SymptomTags:   req.SymptomTags,
		EthnicityTags: req.EthnicityTags,
		Audience:      req.Audience,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, article)
}

// Bookmark saves an article to the caller's reading list.
//
// @Summary      Bookmark an article
// @Tags         library
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Article id"
// @Success      200  {object}  statusResponse
// @Router       /v1/articles/{id}/bookmark [post]
func (h *ContentHandler) Bookmark(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.contentService.BookmarkArticle(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

// RemoveBookmark drops an article from the caller's reading list.
//
// @Summary      Remove a bookmark
// @Tags         library
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Article id"
// @Success      200  {object}  statusResponse
// @Router       /v1/articles/{id}/bookmark [delete]
func (h *ContentHandler) RemoveBookmark(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.contentService.RemoveBookmark(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

// Bookmarks returns the caller's bookmarked articles.
//
// @Summary      List bookmarked articles
// @Tags         library
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Article
// @Router       /v1/bookmarks [get]
func (h *ContentHandler) Bookmarks(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	articles, err := h.contentService.BookmarkedArticles(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

// ListEvents returns events, optionally only upcoming ones.
//
// @Summary      List events
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        event_type  query    string  false  "Event type filter"
// @Param        upcoming    query    bool    false  "Only events starting from now"
// @Success      200         {array}  domain.Event
// @Router       /v1/events [get]
func (h *ContentHandler) ListEvents(c echo.Context) error {
	upcoming, _ := strconv.ParseBool(c.QueryParam("upcoming"))
	events, err := h.contentService.ListEvents(c.Request().Context(), ports.EventFilter{
		EventType:    c.QueryParam("event_type"),
		UpcomingOnly: upcoming,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// GetEvent returns a single event.
//
// @Summary      Get an event
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Event id"
// @Success      200  {object}  domain.Event
// @Failure      404  {object}  map[string]string
// @Router       /v1/events/{id} [get]
func (h *ContentHandler) GetEvent(c echo.Context) error {
	event, err := h.contentService.GetEvent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// CreateEvent publishes a new event. Admin only.
//
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      eventRequest  true  "Event details"
// @Success      201   {object}  domain.Event
// @Failure      403   {object}  map[string]string
// @Router       /v1/events [post]
func (h *ContentHandler) CreateEvent(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	event, err := h.contentService.CreateEvent(c.Request().Context(), user, ports.EventInput{
		Title:            req.Title,
		Description:      req.Description,
		EventType:        req.EventType,
		IsOnline:         req.IsOnline,
		Location:         req.Location,
		Link:             req.Link,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		RegistrationLink: req.RegistrationLink,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, event)
}

// ListSpecialists returns the specialist directory.
//
// @Summary      List specialists
// @Tags         specialists
// @Produce      json
// @Security     BearerAuth
// @Param        specialty  query    string  false  "Specialty filter"
// @Param        location   query    string  false  "Location filter"
// @Param        online     query    bool    false  "Only online (or only in-person when false)"
// @Success      200        {array}  domain.Specialist
// @Router       /v1/specialists [get]
func (h *ContentHandler) ListSpecialists(c echo.Context) error {
	filter := ports.SpecialistFilter{
		Specialty: c.QueryParam("specialty"),
		Location:  c.QueryParam("location"),
	}
	if raw := c.QueryParam("online"); raw != "" {
		online, err := strconv.ParseBool(raw)
		if err == nil {
			filter.IsOnline = &online
		}
	}

	specialists, err := h.contentService.ListSpecialists(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, specialists)
}

// GetSpecialist returns a single directory entry.
//
// @Summary      Get a specialist
// @Tags         specialists
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Specialist id"
// @Success      200  {object}  domain.Specialist
// @Failure      404  {object}  map[string]string
// @Router       /v1/specialists/{id} [get]
func (h *ContentHandler) GetSpecialist(c echo.Context) error {
	specialist, err := h.contentService.GetSpecialist(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, specialist)
}

// CreateSpecialist adds a directory entry. Admin only.
//
// @Summary      Add a specialist
// @Tags         specialists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      specialistRequest  true  "Specialist details"
// @Success      201   {object}  domain.Specialist
// @Failure      403   {object}  map[string]string
// @Router       /v1/specialists [post]
func (h *ContentHandler) CreateSpecialist(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req specialistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	specialist, err := h.contentService.CreateSpecialist(c.Request().Context(), user, ports.SpecialistInput{
		Name:        req.Name,
		Credentials: req.Credentials,
		Bio:         req.Bio,
		Specialties: req.Specialties,
		Services:    req.Services,
		IsOnline:    req.IsOnline,
		Location:    req.Location,
		Website:     req.Website,
		Phone:       req.Phone,
		Email:       req.Email,
		BookingLink: req.BookingLink,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, specialist)
}
