package domain

import "errors"

var (
	// ErrInvalidTimezone indicates an organization carries an unknown IANA timezone
	ErrInvalidTimezone = errors.New("invalid timezone")

	// ErrOrganizationNotFound indicates the organization does not exist
	ErrOrganizationNotFound = errors.New("organization not found")

	// ErrAutoReplyNotFound indicates the auto-reply rule does not exist
	ErrAutoReplyNotFound = errors.New("auto reply not found")
)
