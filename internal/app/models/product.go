package models

import (
	"mommycare-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	ServiceProviderID string             `bson:"serviceProviderId"`
	Name              string             `bson:"name"`
	Slug              string             `bson:"slug"`
	Category          string             `bson:"category"`
	Price             float64            `bson:"price"`
	Description       string             `bson:"description"`
	ExternalLink      string             `bson:"externalLink"`
	Image             string             `bson:"image,omitempty"`
	Tags              []string           `bson:"tags"`
	Status            string             `bson:"status"`
	Views             int64              `bson:"views"`
	Clicks            int64              `bson:"clicks"`
	TimeModel         `bson:",inline"`
}

type ProductCategoryCount struct {
	Name  string `bson:"_id" json:"name"`
	Count int64  `bson:"count" json:"count"`
}

func (p *Product) ConvertIntoResponse(imageURL string) responses.Product {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return responses.Product{
		ID:                p.ID.Hex(),
		ServiceProviderID: p.ServiceProviderID,
		Name:              p.Name,
		Slug:              p.Slug,
		Category:          p.Category,
		Price:             p.Price,
		Description:       p.Description,
		ExternalLink:      p.ExternalLink,
		ImageURL:          imageURL,
		Tags:              tags,
		Status:            p.Status,
		Views:             p.Views,
		Clicks:            p.Clicks,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (c ProductCategoryCount) ConvertIntoResponse() responses.ProductCategory {
	return responses.ProductCategory{
		Name:  c.Name,
		Count: c.Count,
	}
}
