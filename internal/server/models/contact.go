package models

import "time"

// Contact is a per-user contact record. OwnerUsername references the owning
// User by username and never changes after creation.
type Contact struct {
	ID            string
	OwnerUsername string
	FirstName     string
	LastName      string
	Phone         string
	Email         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ContactUpdate describes a partial update: nil fields are left unchanged.
type ContactUpdate struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Email     *string
}
