package media

import (
	domain "media-catalog/internal/domain/media"

	"gorm.io/gorm"
)

// sortColumns maps the public sortBy values onto real columns. Anything not
// in this table never reaches the ORDER BY clause.
var sortColumns = map[string]string{
	"title":     "title",
	"year":      "year",
	"rating":    "rating",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// filteredMediaQuery applies the search and equality filters from q.
//
// Search is a substring match OR-combined over title, director and
// description. Case-sensitivity is whatever the engine gives LIKE (Postgres:
// case-sensitive) - a known limitation, intentionally not papered over.
func filteredMediaQuery(db *gorm.DB, q ListQuery) *gorm.DB {
	tx := db.Model(&domain.Media{})

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		tx = tx.Where(
			db.Where("title LIKE ?", pattern).
				Or("director LIKE ?", pattern).
				Or("description LIKE ?", pattern),
		)
	}
	if q.Type != nil {
		tx = tx.Where("type = ?", *q.Type)
	}
	if q.Genre != nil {
		tx = tx.Where("genre = ?", *q.Genre)
	}
	if q.Year != nil {
		tx = tx.Where("year = ?", *q.Year)
	}

	return tx
}

// orderAndPage adds the sort and skip/take clauses on top of the filters.
func orderAndPage(tx *gorm.DB, q ListQuery) *gorm.DB {
	return tx.
		Order(sortColumns[q.SortBy] + " " + q.SortOrder).
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit)
}

// duplicateTripleQuery matches records sharing the (title, year, type)
// uniqueness triple. A nil year matches rows where year IS NULL.
func duplicateTripleQuery(db *gorm.DB, title string, year *int, mediaType domain.MediaType) *gorm.DB {
	cond := map[string]interface{}{
		"title": title,
		"type":  mediaType,
		"year":  nil,
	}
	if year != nil {
		cond["year"] = *year
	}
	return db.Model(&domain.Media{}).Where(cond)
}

// paginationMeta computes the response metadata for a filtered count.
func paginationMeta(q ListQuery, totalCount int64) PaginationMeta {
	totalPages := int((totalCount + int64(q.Limit) - 1) / int64(q.Limit))
	return PaginationMeta{
		CurrentPage:     q.Page,
		TotalPages:      totalPages,
		TotalCount:      totalCount,
		HasNextPage:     q.Page < totalPages,
		HasPreviousPage: q.Page > 1,
		Limit:           q.Limit,
	}
}
