// Package usecase implements the business logic for the catalog feature.
package usecase

import "errors"

// ErrProductNotFound is returned when no product has the requested id.
var ErrProductNotFound = errors.New("product not found")
