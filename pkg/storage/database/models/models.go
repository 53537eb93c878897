package models

import "time"

type Link struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Description string `gorm:"not null"`
	URL         string `gorm:"not null"`
	CreatedAt   time.Time
}

// SeedLinks are the records every fresh store starts with, in order.
func SeedLinks() []Link {
	return []Link{
		{
			ID:          1,
			URL:         "www.howtographql.com",
			Description: "Fullstack tutorial for GraphQl",
		},
		{
			ID:          2,
			URL:         "graphql.org",
			Description: "GraphQL official website",
		},
	}
}
