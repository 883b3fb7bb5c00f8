package dto

import "github.com/ShivamTripathi028/ibis-stock-sync/internal/model"

type CompanyOrderFilters struct {
	// CompanyID empty means all companies.
	CompanyID string
}

type AmazonOrderFilters struct {
	// Status empty means any status.
	Status model.OrderStatus
	// Search matches sku or product_name, case-insensitive substring.
	Search string
}
