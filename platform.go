package gpa

import (
	"context"
	"time"
)

// Platform represents a storefront that lists games. Platforms are managed
// through the CRUD layer and are read-only from the scrape flow's
// perspective.
type Platform struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	BaseURL           string    `json:"baseUrl"`
	SearchURLTemplate string    `json:"searchUrlTemplate"`
	GameDataSelector  string    `json:"gameDataSelector"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Validate returns an error if the platform contains invalid fields.
func (p *Platform) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "platform name required")
	}
	if p.BaseURL == "" {
		return Errorf(EINVALID, "platform base URL required")
	}
	if p.SearchURLTemplate == "" {
		return Errorf(EINVALID, "platform search URL template required")
	}
	return nil
}

// PlatformService represents a service for managing platforms.
// Platform names are unique; CreatePlatform returns ECONFLICT on duplicates.
type PlatformService interface {
	// CreatePlatform creates a new platform.
	CreatePlatform(ctx context.Context, platform *Platform) error

	// FindPlatformByID retrieves a platform by ID.
	// Returns ENOTFOUND if the platform does not exist.
	FindPlatformByID(ctx context.Context, id string) (*Platform, error)

	// FindPlatforms retrieves platforms matching the filter.
	FindPlatforms(ctx context.Context, filter PlatformFilter) ([]*Platform, error)

	// UpdatePlatform updates an existing platform.
	// Returns ENOTFOUND if the platform does not exist.
	UpdatePlatform(ctx context.Context, id string, upd PlatformUpdate) (*Platform, error)

	// DeletePlatform permanently removes a platform.
	// Returns ENOTFOUND if the platform does not exist.
	DeletePlatform(ctx context.Context, id string) error
}

// PlatformFilter represents a filter for FindPlatforms.
type PlatformFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// PlatformUpdate represents fields that can be updated on a platform.
type PlatformUpdate struct {
	Name              *string `json:"name"`
	BaseURL           *string `json:"baseUrl"`
	SearchURLTemplate *string `json:"searchUrlTemplate"`
	GameDataSelector  *string `json:"gameDataSelector"`
}
