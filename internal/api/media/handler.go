package media

import (
	"encoding/json"
	"errors"

	"media-catalog/internal/api/respond"
	"media-catalog/internal/apperrors"
	domain "media-catalog/internal/domain/media"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const duplicateMessage = "Media with this title, year, and type already exists"

// Handler holds the dependencies for the media endpoints. The DB handle is
// injected rather than read from a package global so tests and future
// callers control the storage they talk to.
type Handler struct {
	db       *gorm.DB
	validate *validator.Validate
}

func NewHandler(db *gorm.DB, validate *validator.Validate) *Handler {
	return &Handler{db: db, validate: validate}
}

// fail records err for the error-handler middleware and stops the chain.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ------------------------------
// GET /api/media
// ------------------------------
func (h *Handler) List(c *gin.Context) {
	q, violations := ParseListQuery(c)
	if len(violations) > 0 {
		fail(c, apperrors.ValidationFailed(violations))
		return
	}

	var totalCount int64
	if err := filteredMediaQuery(h.db, q).Count(&totalCount).Error; err != nil {
		fail(c, apperrors.FromDB(err))
		return
	}

	items := make([]domain.Media, 0, q.Limit)
	if err := orderAndPage(filteredMediaQuery(h.db, q), q).Find(&items).Error; err != nil {
		fail(c, apperrors.FromDB(err))
		return
	}

	respond.OK(c, PaginatedMedia{
		Data:       items,
		Pagination: paginationMeta(q, totalCount),
	})
}

// ------------------------------
// GET /api/media/:id
// ------------------------------
func (h *Handler) GetByID(c *gin.Context) {
	id, violations := ParseID(c.Param("id"))
	if len(violations) > 0 {
		fail(c, apperrors.ValidationFailed(violations))
		return
	}

	var m domain.Media
	if err := h.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, apperrors.NotFound("Media not found"))
		} else {
			fail(c, apperrors.FromDB(err))
		}
		return
	}

	respond.OK(c, m)
}

// ------------------------------
// POST /api/media
// ------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req CreateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.ValidationFailed([]apperrors.ValidationError{
			{Field: "body", Message: "Invalid JSON payload", Code: "invalid_json"},
		}))
		return
	}

	req.trimStrings()
	if err := h.validate.Struct(req); err != nil {
		fail(c, apperrors.ValidationFailed(translate(err)))
		return
	}

	// Soft uniqueness check on (title, year, type). Read-then-write, so two
	// concurrent identical creates can still both land; see DESIGN.md.
	var existing int64
	if err := duplicateTripleQuery(h.db, req.Title, req.Year, domain.MediaType(req.Type)).
		Count(&existing).Error; err != nil {
		fail(c, apperrors.FromDB(err))
		return
	}
	if existing > 0 {
		fail(c, apperrors.Conflict(duplicateMessage))
		return
	}

	m := domain.Media{
		Title:       req.Title,
		Type:        domain.MediaType(req.Type),
		Director:    req.Director,
		Budget:      req.Budget,
		Location:    req.Location,
		Duration:    req.Duration,
		Year:        req.Year,
		Rating:      req.Rating,
		Description: req.Description,
		Language:    req.Language,
		PosterURL:   req.PosterURL,
	}
	if req.Genre != nil {
		g := domain.Genre(*req.Genre)
		m.Genre = &g
	}

	if err := h.db.Create(&m).Error; err != nil {
		fail(c, apperrors.FromDB(err))
		return
	}

	respond.Created(c, "Media created successfully", m)
}

// ------------------------------
// PUT /api/media/:id
// ------------------------------
func (h *Handler) Update(c *gin.Context) {
	id, violations := ParseID(c.Param("id"))
	if len(violations) > 0 {
		fail(c, apperrors.ValidationFailed(violations))
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		fail(c, apperrors.ValidationFailed([]apperrors.ValidationError{
			{Field: "body", Message: "Invalid request body", Code: "invalid_json"},
		}))
		return
	}

	// The raw key set distinguishes "field absent" (leave unchanged) from
	// "field explicitly null".
	var present map[string]json.RawMessage
	var req UpdateMediaRequest
	if err := json.Unmarshal(body, &present); err != nil || json.Unmarshal(body, &req) != nil {
		fail(c, apperrors.ValidationFailed([]apperrors.ValidationError{
			{Field: "body", Message: "Invalid JSON payload", Code: "invalid_json"},
		}))
		return
	}

	req.trimStrings()
	if err := h.validate.Struct(req); err != nil {
		fail(c, apperrors.ValidationFailed(translate(err)))
		return
	}
	if v := requiredFieldNulls(present, req); len(v) > 0 {
		fail(c, apperrors.ValidationFailed(v))
		return
	}

	var existing domain.Media
	if err := h.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, apperrors.NotFound("Media not found"))
		} else {
			fail(c, apperrors.FromDB(err))
		}
		return
	}

	// If any part of the uniqueness triple is touched, the resulting triple
	// must not collide with another record.
	if req.Title != nil || req.Year != nil || req.Type != nil {
		title := existing.Title
		if req.Title != nil {
			title = *req.Title
		}
		year := existing.Year
		if req.Year != nil {
			year = req.Year
		}
		mediaType := existing.Type
		if req.Type != nil {
			mediaType = domain.MediaType(*req.Type)
		}

		var collisions int64
		if err := duplicateTripleQuery(h.db, title, year, mediaType).
			Where("id <> ?", id).
			Count(&collisions).Error; err != nil {
			fail(c, apperrors.FromDB(err))
			return
		}
		if collisions > 0 {
			fail(c, apperrors.Conflict(duplicateMessage))
			return
		}
	}

	updates := buildUpdates(present, req)
	if len(updates) > 0 {
		if err := h.db.Model(&existing).Updates(updates).Error; err != nil {
			fail(c, apperrors.FromDB(err))
			return
		}
	}

	var updated domain.Media
	if err := h.db.First(&updated, id).Error; err != nil {
		fail(c, apperrors.FromDB(err))
		return
	}

	respond.OKWithMessage(c, "Media updated successfully", updated)
}

// requiredFieldNulls rejects explicit nulls on the two non-nullable fields.
func requiredFieldNulls(present map[string]json.RawMessage, req UpdateMediaRequest) []apperrors.ValidationError {
	var out []apperrors.ValidationError
	if _, ok := present["title"]; ok && req.Title == nil {
		out = append(out, apperrors.ValidationError{Field: "title", Message: "Title cannot be null", Code: "invalid_type"})
	}
	if _, ok := present["type"]; ok && req.Type == nil {
		out = append(out, apperrors.ValidationError{Field: "type", Message: "Type cannot be null", Code: "invalid_type"})
	}
	return out
}

// buildUpdates assembles the column set for a partial update. Present fields
// are written (explicit null clears nullable columns); absent fields are left
// alone. posterUrl has one extra rule: an explicit empty string also clears.
func buildUpdates(present map[string]json.RawMessage, req UpdateMediaRequest) map[string]interface{} {
	updates := map[string]interface{}{}
	set := func(key, column string, value interface{}, isNil bool) {
		if _, ok := present[key]; !ok {
			return
		}
		if isNil {
			updates[column] = nil
			return
		}
		updates[column] = value
	}

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Type != nil {
		updates["type"] = domain.MediaType(*req.Type)
	}
	set("director", "director", req.Director, req.Director == nil)
	set("budget", "budget", req.Budget, req.Budget == nil)
	set("location", "location", req.Location, req.Location == nil)
	set("duration", "duration", req.Duration, req.Duration == nil)
	set("year", "year", req.Year, req.Year == nil)
	set("genre", "genre", req.Genre, req.Genre == nil)
	set("rating", "rating", req.Rating, req.Rating == nil)
	set("description", "description", req.Description, req.Description == nil)
	set("language", "language", req.Language, req.Language == nil)

	if _, ok := present["posterUrl"]; ok {
		if req.PosterURL == nil || *req.PosterURL == "" {
			updates["poster_url"] = nil
		} else {
			updates["poster_url"] = *req.PosterURL
		}
	}

	return updates
}

// ------------------------------
// DELETE /api/media/:id
// ------------------------------
func (h *Handler) Delete(c *gin.Context) {
	id, violations := ParseID(c.Param("id"))
	if len(violations) > 0 {
		fail(c, apperrors.ValidationFailed(violations))
		return
	}

	var m domain.Media
	if err := h.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, apperrors.NotFound("Media not found"))
		} else {
			fail(c, apperrors.FromDB(err))
		}
		return
	}

	if err := h.db.Delete(&domain.Media{}, id).Error; err != nil {
		fail(c, apperrors.FromDB(err))
		return
	}

	respond.OKWithMessage(c, "Media deleted successfully", gin.H{"id": id})
}

// ------------------------------
// GET /api/media/stats/overview
// ------------------------------
func (h *Handler) Stats(c *gin.Context) {
	var stats MediaStats

	if err := h.db.Model(&domain.Media{}).Count(&stats.TotalCount).Error; err != nil {
		fail(c, apperrors.FromDB(err))
		return
	}
	if err := h.db.Model(&domain.Media{}).Where("type = ?", domain.TypeMovie).
		Count(&stats.MovieCount).Error; err != nil {
		fail(c, apperrors.FromDB(err))
		return
	}
	if err := h.db.Model(&domain.Media{}).Where("type = ?", domain.TypeTVShow).
		Count(&stats.TVShowCount).Error; err != nil {
		fail(c, apperrors.FromDB(err))
		return
	}

	stats.GenreDistribution = make([]GenreCount, 0)
	if err := h.db.Model(&domain.Media{}).
		Select("genre, COUNT(*) AS count").
		Group("genre").
		Order("count DESC").
		Scan(&stats.GenreDistribution).Error; err != nil {
		fail(c, apperrors.FromDB(err))
		return
	}

	stats.RecentlyAdded = make([]RecentMedia, 0, 5)
	if err := h.db.Model(&domain.Media{}).
		Select("id, title, type, year, created_at").
		Order("created_at DESC").
		Limit(5).
		Scan(&stats.RecentlyAdded).Error; err != nil {
		fail(c, apperrors.FromDB(err))
		return
	}

	respond.OK(c, stats)
}
