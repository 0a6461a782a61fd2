package home

import "time"

// HomeText is a block of paragraphs shown on the landing page.
type HomeText struct {
	ID         int64     `json:"id"`
	Paragrafos []string  `json:"paragrafos"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
