package media

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"media-catalog/internal/apperrors"
	domain "media-catalog/internal/domain/media"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	digitsRe   = regexp.MustCompile(`^\d+$`)
	yearRe     = regexp.MustCompile(`^\d{4}$`)
	sortFields = []string{"title", "year", "rating", "createdAt", "updatedAt"}
)

// NewValidator builds the validator used for request bodies. Field names in
// violations come from the json tag, and the enum / release-year rules are
// registered here so struct tags stay declarative.
func NewValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("mediatype", func(fl validator.FieldLevel) bool {
		return domain.ValidType(fl.Field().String())
	})
	_ = v.RegisterValidation("mediagenre", func(fl validator.FieldLevel) bool {
		return domain.ValidGenre(fl.Field().String())
	})
	_ = v.RegisterValidation("releaseyear", func(fl validator.FieldLevel) bool {
		y := fl.Field().Int()
		return y >= 1888 && y <= int64(time.Now().Year()+10)
	})

	return v
}

// fieldMessages carries the human-readable text per field+rule. Rules without
// an entry fall back to a generic message; the rule tag is always the code.
var fieldMessages = map[string]string{
	"title.required":       "Title is required",
	"title.min":            "Title is required",
	"title.max":            "Title must be less than 255 characters",
	"type.required":        "Type is required",
	"type.mediatype":       "Type must be MOVIE or TV_SHOW",
	"director.max":         "Director name must be less than 255 characters",
	"budget.gt":            "Budget must be a positive number",
	"budget.lte":           "Budget is too large",
	"location.max":         "Location must be less than 255 characters",
	"duration.gt":          "Duration must be positive",
	"duration.lte":         "Duration seems unrealistic",
	"year.releaseyear":     "Year must be between 1888 and ten years from now",
	"genre.mediagenre":     "Genre is not a recognized value",
	"rating.gte":           "Rating must be at least 0",
	"rating.lte":           "Rating must be at most 10",
	"description.max":      "Description must be less than 2000 characters",
	"language.max":         "Language must be less than 100 characters",
	"posterUrl.url":        "Poster URL must be a valid URL",
	"posterUrl.max":        "Poster URL must be less than 500 characters",
}

// translate flattens validator violations into the wire format, preserving
// declaration order so clients see every failure at once.
func translate(err error) []apperrors.ValidationError {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []apperrors.ValidationError{{Field: "body", Message: err.Error(), Code: "invalid"}}
	}
	out := make([]apperrors.ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("Invalid value for %s", fe.Field())
		}
		out = append(out, apperrors.ValidationError{
			Field:   fe.Field(),
			Message: msg,
			Code:    fe.Tag(),
		})
	}
	return out
}

// trimStrings normalizes string inputs before validation, the same way the
// API has always trimmed them.
func (r *CreateMediaRequest) trimStrings() {
	r.Title = strings.TrimSpace(r.Title)
	trimPtr(r.Director)
	trimPtr(r.Location)
	trimPtr(r.Description)
	trimPtr(r.Language)
}

func (r *UpdateMediaRequest) trimStrings() {
	trimPtr(r.Title)
	trimPtr(r.Director)
	trimPtr(r.Location)
	trimPtr(r.Description)
	trimPtr(r.Language)
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

// ParseID validates a path id: digits only, coerced to uint. A malformed id
// is a validation failure, never a 404.
func ParseID(raw string) (uint, []apperrors.ValidationError) {
	if !digitsRe.MatchString(raw) {
		return 0, []apperrors.ValidationError{{
			Field:   "id",
			Message: "ID must be a positive integer",
			Code:    "invalid_format",
		}}
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, []apperrors.ValidationError{{
			Field:   "id",
			Message: "ID must be a positive integer",
			Code:    "out_of_range",
		}}
	}
	return uint(id), nil
}

// ParseListQuery validates and normalizes the list query string. All
// violations are collected before returning, so a request with a bad page
// and a bad limit reports both.
func ParseListQuery(c *gin.Context) (ListQuery, []apperrors.ValidationError) {
	q := ListQuery{
		Page:      1,
		Limit:     10,
		SortBy:    "createdAt",
		SortOrder: "desc",
	}
	var violations []apperrors.ValidationError
	add := func(field, message, code string) {
		violations = append(violations, apperrors.ValidationError{Field: field, Message: message, Code: code})
	}

	if raw, ok := c.GetQuery("page"); ok {
		if !digitsRe.MatchString(raw) {
			add("page", "Page must be a positive integer", "invalid_format")
		} else if n, err := strconv.Atoi(raw); err != nil || n <= 0 {
			add("page", "Page must be greater than 0", "out_of_range")
		} else {
			q.Page = n
		}
	}

	if raw, ok := c.GetQuery("limit"); ok {
		if !digitsRe.MatchString(raw) {
			add("limit", "Limit must be a positive integer", "invalid_format")
		} else if n, err := strconv.Atoi(raw); err != nil || n < 1 || n > 100 {
			add("limit", "Limit must be between 1 and 100", "out_of_range")
		} else {
			q.Limit = n
		}
	}

	if raw, ok := c.GetQuery("search"); ok {
		s := strings.TrimSpace(raw)
		if len(s) > 255 {
			add("search", "Search term must be less than 255 characters", "too_long")
		} else {
			q.Search = s
		}
	}

	if raw, ok := c.GetQuery("type"); ok && raw != "" {
		if !domain.ValidType(raw) {
			add("type", "Type must be MOVIE or TV_SHOW", "invalid_enum_value")
		} else {
			t := domain.MediaType(raw)
			q.Type = &t
		}
	}

	if raw, ok := c.GetQuery("genre"); ok && raw != "" {
		if !domain.ValidGenre(raw) {
			add("genre", "Genre is not a recognized value", "invalid_enum_value")
		} else {
			g := domain.Genre(raw)
			q.Genre = &g
		}
	}

	if raw, ok := c.GetQuery("year"); ok && raw != "" {
		if !yearRe.MatchString(raw) {
			add("year", "Year must be 4 digits", "invalid_format")
		} else {
			y, _ := strconv.Atoi(raw)
			q.Year = &y
		}
	}

	if raw, ok := c.GetQuery("sortBy"); ok && raw != "" {
		if !contains(sortFields, raw) {
			add("sortBy", "sortBy must be one of: "+strings.Join(sortFields, ", "), "invalid_enum_value")
		} else {
			q.SortBy = raw
		}
	}

	if raw, ok := c.GetQuery("sortOrder"); ok && raw != "" {
		if raw != "asc" && raw != "desc" {
			add("sortOrder", "sortOrder must be asc or desc", "invalid_enum_value")
		} else {
			q.SortOrder = raw
		}
	}

	return q, violations
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
