// Package dto converts catalog entities to API types.
package dto

import (
	"shop_backend/internal/api"
	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/usecase"
)

// ToProduct converts a product to its API form.
func ToProduct(p *entity.Product) api.Product {
	created, updated := p.CreatedAt, p.UpdatedAt
	return api.Product{
		Id:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Brand:       p.Brand,
		Available:   p.Available,
		Rating:      p.Rating,
		Category:    nonNil(p.Category),
		Types:       nonNil(p.Types),
		Images:      nonNil(p.Images),
		CreatedAt:   &created,
		UpdatedAt:   &updated,
	}
}

// ToProducts converts a listing.
func ToProducts(ps []entity.Product) []api.Product {
	out := make([]api.Product, 0, len(ps))
	for i := range ps {
		out = append(out, ToProduct(&ps[i]))
	}
	return out
}

// FromCreateRequest maps the request body to usecase input.
func FromCreateRequest(req api.CreateProductRequest) usecase.ProductInput {
	return usecase.ProductInput{
		Title:       req.Title,
		Description: req.Description,
		Brand:       req.Brand,
		Price:       req.Price,
		Available:   req.Available,
		Rating:      deref(req.Rating),
		Category:    derefSlice(req.Category),
		Types:       derefSlice(req.Types),
		Images:      derefSlice(req.Images),
	}
}

// FromUpdateRequest maps the request body to a patch.
func FromUpdateRequest(req api.UpdateProductRequest) usecase.ProductPatch {
	return usecase.ProductPatch{
		Title:       req.Title,
		Description: req.Description,
		Brand:       req.Brand,
		Price:       req.Price,
		Available:   req.Available,
		Rating:      req.Rating,
		Category:    req.Category,
		Types:       req.Types,
		Images:      req.Images,
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func derefSlice(p *[]string) []string {
	if p == nil {
		return nil
	}
	return *p
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
