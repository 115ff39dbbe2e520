// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Store represents a seller storefront on the marketplace.
type Store struct {
	ID                    uuid.UUID  `json:"id"`                       // The Global Unique Identifier (GUID) for the store.
	Name                  string     `json:"name"`                     // The public display name of the store.
	Description           string     `json:"description"`              // A short description shown on the storefront page.
	OwnerName             string     `json:"owner_name"`               // The name of the store owner.
	Email                 string     `json:"email"`                    // Contact email of the store owner.
	Phone                 string     `json:"phone"`                    // Contact phone number.
	WhatsApp              string     `json:"whatsapp"`                 // WhatsApp number used for customer contact.
	Category              string     `json:"category"`                 // The marketplace category the store belongs to.
	IsActive              bool       `json:"is_active"`                // Whether the store subscription is active (admin controlled).
	IsVisible             bool       `json:"is_visible"`               // Whether the store is listed on the public storefront.
	ReferredByAffiliateID *uuid.UUID `json:"referred_by_affiliate_id"` // The affiliate that referred this store, if any.
	CreatedAt             time.Time  `json:"created_at"`               // Timestamp of when this record was created.
	UpdatedAt             time.Time  `json:"updated_at"`               // Timestamp of the last modification.
}
