package requests

type ProductFilter struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

type CreateProduct struct {
	Name         string   `json:"name" validate:"required,max=100"`
	Category     string   `json:"category" validate:"required,product_category"`
	Price        float64  `json:"price" validate:"gte=0"`
	Description  string   `json:"description" validate:"required,max=1000"`
	ExternalLink string   `json:"externalLink" validate:"required,http_url"`
	Image        string   `json:"image" validate:"required"`
	Tags         []string `json:"tags" validate:"max=10,dive,max=30"`
}

type UpdateProduct struct {
	Name         string   `json:"name" validate:"max=100"`
	Category     string   `json:"category" validate:"omitempty,product_category"`
	Price        *float64 `json:"price" validate:"omitempty,gte=0"`
	Description  string   `json:"description" validate:"max=1000"`
	ExternalLink string   `json:"externalLink" validate:"omitempty,http_url"`
	Image        string   `json:"image"`
	Tags         []string `json:"tags" validate:"max=10,dive,max=30"`
}

type ReviewProduct struct {
	Status string `json:"status" validate:"required,oneof=active rejected inactive"`
}
