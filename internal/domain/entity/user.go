// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is the single resource this service manages. The ID is assigned by
// the persistence layer on creation and never by the caller; it is the hex
// form of the storage engine's native 24-character identifier.
type User struct {
	ID       string `json:"id"`       // Opaque unique identifier, immutable after creation.
	Email    string `json:"email"`    // Primary contact email, unique across all users.
	FullName string `json:"fullName"` // Display name, trimmed, 5-30 letters and spaces.
}
