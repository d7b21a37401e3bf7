package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	gpa "github.com/taimg1/game-platform-analyzer"

	"github.com/google/uuid"
)

var _ gpa.ListingService = (*ListingService)(nil)

// ListingService implements gpa.ListingService using SQLite. Listings are
// append-only: repeated scrapes of the same game and platform produce new
// rows so price history survives.
type ListingService struct {
	db *DB
}

// NewListingService creates a new ListingService.
func NewListingService(db *DB) *ListingService {
	return &ListingService{db: db}
}

// CreateListing creates a new listing.
func (s *ListingService) CreateListing(ctx context.Context, listing *gpa.Listing) error {
	if err := listing.Validate(); err != nil {
		return err
	}

	listing.ID = uuid.New().String()
	listing.CreatedAt = time.Now().UTC()

	specialContent, err := marshalJSON(listing.SpecialContent)
	if err != nil {
		return err
	}
	discountInfo, err := marshalJSON(listing.DiscountInfo)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO scraped_game_data (
			id, name_on_platform, price, price_in_usd, currency, availability_status,
			url_on_platform, rating, reviews_count, search_position,
			special_content, discount_info, game_id, platform_id, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, listing.ID, listing.NameOnPlatform, listing.Price, listing.PriceUSD, listing.Currency,
		string(listing.Availability), listing.URLOnPlatform, listing.Rating, listing.ReviewsCount,
		listing.SearchPosition, specialContent, discountInfo, listing.GameID, listing.PlatformID,
		listing.CreatedAt.Format(time.RFC3339))

	return err
}

// FindListingByID retrieves a listing by ID.
func (s *ListingService) FindListingByID(ctx context.Context, id string) (*gpa.Listing, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name_on_platform, price, price_in_usd, currency, availability_status,
			url_on_platform, rating, reviews_count, search_position,
			special_content, discount_info, game_id, platform_id, created_at
		FROM scraped_game_data
		WHERE id = ?
	`, id)

	listing, err := scanListing(row.Scan)
	if err == sql.ErrNoRows {
		return nil, gpa.Errorf(gpa.ENOTFOUND, "listing not found")
	}
	return listing, err
}

// FindListings retrieves listings matching the filter, newest first.
func (s *ListingService) FindListings(ctx context.Context, filter gpa.ListingFilter) ([]*gpa.Listing, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, name_on_platform, price, price_in_usd, currency, availability_status,
		url_on_platform, rating, reviews_count, search_position,
		special_content, discount_info, game_id, platform_id, created_at
		FROM scraped_game_data WHERE 1=1`)

	if filter.GameID != nil {
		query.WriteString(" AND game_id = ?")
		args = append(args, *filter.GameID)
	}
	if filter.PlatformID != nil {
		query.WriteString(" AND platform_id = ?")
		args = append(args, *filter.PlatformID)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []*gpa.Listing
	for rows.Next() {
		listing, err := scanListing(rows.Scan)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}

	return listings, rows.Err()
}

// scanListing scans one listing row.
func scanListing(scan func(...any) error) (*gpa.Listing, error) {
	var listing gpa.Listing
	var availability string
	var rating sql.NullFloat64
	var reviewsCount, searchPosition sql.NullInt64
	var specialContent, discountInfo sql.NullString
	var createdAt string

	if err := scan(&listing.ID, &listing.NameOnPlatform, &listing.Price, &listing.PriceUSD,
		&listing.Currency, &availability, &listing.URLOnPlatform, &rating, &reviewsCount,
		&searchPosition, &specialContent, &discountInfo, &listing.GameID, &listing.PlatformID,
		&createdAt); err != nil {
		return nil, err
	}

	listing.Availability = gpa.Availability(availability)
	if rating.Valid {
		listing.Rating = &rating.Float64
	}
	if reviewsCount.Valid {
		n := int(reviewsCount.Int64)
		listing.ReviewsCount = &n
	}
	if searchPosition.Valid {
		n := int(searchPosition.Int64)
		listing.SearchPosition = &n
	}

	var err error
	if listing.SpecialContent, err = unmarshalJSON(specialContent, "special_content"); err != nil {
		return nil, err
	}
	if listing.DiscountInfo, err = unmarshalJSON(discountInfo, "discount_info"); err != nil {
		return nil, err
	}
	if listing.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &listing, nil
}
