// Package services holds the application's business logic between the HTTP
// controllers and the repositories. Expected failures are sentinel errors the
// controllers translate into HTTP statuses.
package services

import "errors"

var (
	// ErrEmailTaken means registration hit an existing account.
	ErrEmailTaken = errors.New("user already exists with this email")

	// ErrInvalidCredentials is deliberately the same for an unknown email and
	// a wrong password, so login attempts cannot reveal which addresses are
	// registered.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotFound means the referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrEmptyOrder means checkout was attempted with no items.
	ErrEmptyOrder = errors.New("no items in order")

	// ErrInvalidQuantity means an item quantity below one.
	ErrInvalidQuantity = errors.New("item quantity must be at least 1")

	// ErrInvalidItem means a cart line missing its title or carrying a
	// negative price.
	ErrInvalidItem = errors.New("each item requires a title and a non-negative price")

	// ErrIncompleteAddress means one or more shipping address fields are empty.
	ErrIncompleteAddress = errors.New("complete shipping address is required")

	// ErrInvalidStatus means a status outside the enumerated set.
	ErrInvalidStatus = errors.New("invalid order status")

	// ErrMissingImage means artwork creation without an image asset.
	ErrMissingImage = errors.New("image is required")

	// ErrInvalidCategory means a category outside the enumerated set.
	ErrInvalidCategory = errors.New("invalid artwork category")
)
