package media

import (
	"time"

	domain "media-catalog/internal/domain/media"
)

// ---------- requests

type CreateMediaRequest struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Type        string   `json:"type" validate:"required,mediatype"`
	Director    *string  `json:"director" validate:"omitempty,max=255"`
	Budget      *float64 `json:"budget" validate:"omitempty,gt=0,lte=999999999999999"`
	Location    *string  `json:"location" validate:"omitempty,max=255"`
	Duration    *int     `json:"duration" validate:"omitempty,gt=0,lte=10000"`
	Year        *int     `json:"year" validate:"omitempty,releaseyear"`
	Genre       *string  `json:"genre" validate:"omitempty,mediagenre"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=10"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Language    *string  `json:"language" validate:"omitempty,max=100"`
	PosterURL   *string  `json:"posterUrl,omitempty" validate:"omitempty,url,max=500"`
}

// UpdateMediaRequest mirrors CreateMediaRequest with every field optional.
// Absent fields are left unchanged; see handler.Update for the posterUrl
// explicit-clear rule.
type UpdateMediaRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Type        *string  `json:"type,omitempty" validate:"omitempty,mediatype"`
	Director    *string  `json:"director,omitempty" validate:"omitempty,max=255"`
	Budget      *float64 `json:"budget,omitempty" validate:"omitempty,gt=0,lte=999999999999999"`
	Location    *string  `json:"location,omitempty" validate:"omitempty,max=255"`
	Duration    *int     `json:"duration,omitempty" validate:"omitempty,gt=0,lte=10000"`
	Year        *int     `json:"year,omitempty" validate:"omitempty,releaseyear"`
	Genre       *string  `json:"genre,omitempty" validate:"omitempty,mediagenre"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=10"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Language    *string  `json:"language,omitempty" validate:"omitempty,max=100"`
	PosterURL   *string  `json:"posterUrl,omitempty" validate:"omitempty,url,max=500"`
}

// ListQuery is the normalized, typed form of the list query string.
type ListQuery struct {
	Page      int
	Limit     int
	Search    string
	Type      *domain.MediaType
	Genre     *domain.Genre
	Year      *int
	SortBy    string
	SortOrder string
}

// ---------- responses

type PaginationMeta struct {
	CurrentPage     int   `json:"currentPage"`
	TotalPages      int   `json:"totalPages"`
	TotalCount      int64 `json:"totalCount"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
	Limit           int   `json:"limit"`
}

type PaginatedMedia struct {
	Data       []domain.Media `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

type GenreCount struct {
	Genre *domain.Genre `json:"genre"`
	Count int64         `json:"count"`
}

type RecentMedia struct {
	ID        uint             `json:"id"`
	Title     string           `json:"title"`
	Type      domain.MediaType `json:"type"`
	Year      *int             `json:"year"`
	CreatedAt time.Time        `json:"createdAt"`
}

type MediaStats struct {
	TotalCount        int64         `json:"totalCount"`
	MovieCount        int64         `json:"movieCount"`
	TVShowCount       int64         `json:"tvShowCount"`
	GenreDistribution []GenreCount  `json:"genreDistribution"`
	RecentlyAdded     []RecentMedia `json:"recentlyAdded"`
}
