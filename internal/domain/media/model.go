package media

import (
	"time"
)

type MediaType string

const (
	TypeMovie  MediaType = "MOVIE"
	TypeTVShow MediaType = "TV_SHOW"
)

type Genre string

// Genres is the fixed set of allowed genre values.
var Genres = []Genre{
	"ACTION", "ADVENTURE", "ANIMATION", "BIOGRAPHY", "COMEDY",
	"CRIME", "DOCUMENTARY", "DRAMA", "FAMILY", "FANTASY",
	"HISTORY", "HORROR", "MUSIC", "MYSTERY", "ROMANCE",
	"SCIENCE_FICTION", "THRILLER", "WAR", "WESTERN", "OTHER",
}

func ValidType(v string) bool {
	return v == string(TypeMovie) || v == string(TypeTVShow)
}

func ValidGenre(v string) bool {
	for _, g := range Genres {
		if v == string(g) {
			return true
		}
	}
	return false
}

// Media is one movie or TV-show catalog entry.
//
// (title, year, type) is treated as a soft uniqueness key, enforced by a
// pre-write lookup in the handler rather than a DB constraint.
type Media struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title string    `gorm:"size:255;not null;index" json:"title"`
	Type  MediaType `gorm:"type:varchar(20);not null;index" json:"type"`

	Director    *string  `gorm:"size:255" json:"director"`
	Budget      *float64 `json:"budget"`
	Location    *string  `gorm:"size:255" json:"location"`
	Duration    *int     `json:"duration"`
	Year        *int     `gorm:"index" json:"year"`
	Genre       *Genre   `gorm:"type:varchar(30);index" json:"genre"`
	Rating      *float64 `json:"rating"`
	Description *string  `gorm:"size:2000" json:"description"`
	Language    *string  `gorm:"size:100" json:"language"`
	PosterURL   *string  `gorm:"size:500;column:poster_url" json:"posterUrl"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
