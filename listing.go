package gpa

import (
	"context"
	"time"
)

// Availability is the closed set of availability statuses a listing can
// report. Anything the extraction service returns outside this set is
// down-normalized to AvailabilityUnknown.
type Availability string

// Availability statuses.
const (
	AvailabilityAvailable    Availability = "available"
	AvailabilityOutOfStock   Availability = "out_of_stock"
	AvailabilityComingSoon   Availability = "coming_soon"
	AvailabilityPreorder     Availability = "preorder"
	AvailabilityFree         Availability = "free"
	AvailabilityUnavailable  Availability = "unavailable"
	AvailabilityEarlyAccess  Availability = "early_access"
	AvailabilityBeta         Availability = "beta"
	AvailabilityRegionLocked Availability = "region_locked"
	AvailabilityUnknown      Availability = "unknown"
)

// Valid reports whether a is a member of the closed availability set.
func (a Availability) Valid() bool {
	switch a {
	case AvailabilityAvailable, AvailabilityOutOfStock, AvailabilityComingSoon,
		AvailabilityPreorder, AvailabilityFree, AvailabilityUnavailable,
		AvailabilityEarlyAccess, AvailabilityBeta, AvailabilityRegionLocked,
		AvailabilityUnknown:
		return true
	}
	return false
}

// NormalizeAvailability maps a raw status string to a member of the closed
// availability set, falling back to AvailabilityUnknown.
func NormalizeAvailability(s string) Availability {
	a := Availability(s)
	if a.Valid() {
		return a
	}
	return AvailabilityUnknown
}

// UnknownPrice is the sentinel for a price that could not be determined or
// converted.
const UnknownPrice float64 = -1

// Listing is one observed occurrence of a Game on a Platform at scrape
// time. Listings are immutable once created; repeated scrapes append new
// rows rather than deduplicating history.
type Listing struct {
	ID             string         `json:"id"`
	NameOnPlatform string         `json:"nameOnPlatform"`
	Price          float64        `json:"price"`
	PriceUSD       float64        `json:"priceInUsd"`
	Currency       string         `json:"currency"`
	Availability   Availability   `json:"availabilityStatus"`
	URLOnPlatform  string         `json:"urlOnPlatform"`
	Rating         *float64       `json:"rating"`
	ReviewsCount   *int           `json:"reviewsCount"`
	SearchPosition *int           `json:"searchPosition"`
	SpecialContent map[string]any `json:"specialContent"`
	DiscountInfo   map[string]any `json:"discountInfo"`
	GameID         string         `json:"gameId"`
	PlatformID     string         `json:"platformId"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// Validate returns an error if the listing contains invalid fields.
func (l *Listing) Validate() error {
	if l.NameOnPlatform == "" {
		return Errorf(EINVALID, "listing name required")
	}
	if l.URLOnPlatform == "" {
		return Errorf(EINVALID, "listing URL required")
	}
	if !l.Availability.Valid() {
		return Errorf(EINVALID, "invalid availability status %q", l.Availability)
	}
	if l.GameID == "" {
		return Errorf(EINVALID, "listing game ID required")
	}
	if l.PlatformID == "" {
		return Errorf(EINVALID, "listing platform ID required")
	}
	return nil
}

// ListingService represents a service for managing listings.
type ListingService interface {
	// CreateListing creates a new listing.
	CreateListing(ctx context.Context, listing *Listing) error

	// FindListingByID retrieves a listing by ID.
	// Returns ENOTFOUND if the listing does not exist.
	FindListingByID(ctx context.Context, id string) (*Listing, error)

	// FindListings retrieves listings matching the filter.
	FindListings(ctx context.Context, filter ListingFilter) ([]*Listing, error)
}

// ListingFilter represents a filter for FindListings.
type ListingFilter struct {
	GameID     *string `json:"gameId"`
	PlatformID *string `json:"platformId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
