package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for the failure classes the views react to.
var (
	ErrShopNotFound    = errors.New("shop not found")
	ErrUnauthenticated = errors.New("no valid session")
)
