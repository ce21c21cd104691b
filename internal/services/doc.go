// Package services defines the shared error taxonomy for slate components.
//
// Request-facing operations validate eagerly and fail fast with ErrValidation
// or ErrConfiguration. Background operations never propagate errors outward;
// they persist a terminal status plus the wrapped message instead.
package services
