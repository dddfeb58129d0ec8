package model

// Package is a subscription plan offered to customers.
type Package struct {
	ID               string   `json:"_id"`
	PackageName      string   `json:"packageName"`
	ShortDescription string   `json:"shortDescription"`
	ActualPrice      *float64 `json:"actualPrice,omitempty"`
	DiscountedPrice  *float64 `json:"discountedPrice,omitempty"`
	Features         []string `json:"features"`
}

// UpdatePackageRequest is the DTO for editing a package.
// Prices are only accepted for the pro plan.
type UpdatePackageRequest struct {
	PackageName      string   `json:"packageName" validate:"required,notblank,max=100"`
	ShortDescription string   `json:"shortDescription" validate:"max=500"`
	ActualPrice      *float64 `json:"actualPrice,omitempty" validate:"omitempty,gte=0"`
	DiscountedPrice  *float64 `json:"discountedPrice,omitempty" validate:"omitempty,gte=0"`
	Features         []string `json:"features" validate:"max=50,dive,max=200"`
}

// PlansResponse is the API response for GET /api/packages
type PlansResponse struct {
	Packages []Package `json:"packages"`
	Starter  *Package  `json:"starter"`
	Pro      *Package  `json:"pro"`
}
