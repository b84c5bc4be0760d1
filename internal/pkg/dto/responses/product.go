package responses

import "time"

type Product struct {
	ID                string    `json:"id"`
	ServiceProviderID string    `json:"serviceProviderId"`
	Name              string    `json:"name"`
	Slug              string    `json:"slug"`
	Category          string    `json:"category"`
	Price             float64   `json:"price"`
	Description       string    `json:"description"`
	ExternalLink      string    `json:"externalLink"`
	ImageURL          string    `json:"imageUrl,omitempty"`
	Tags              []string  `json:"tags"`
	Status            string    `json:"status"`
	Views             int64     `json:"views"`
	Clicks            int64     `json:"clicks"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type ProductCategory struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type ProductClick struct {
	ExternalLink string `json:"externalLink"`
	Clicks       int64  `json:"clicks"`
}
