// Package mock provides function-field mock implementations of the gpa
// domain interfaces for testing.
package mock

import (
	"context"

	gpa "github.com/taimg1/game-platform-analyzer"
)

var _ gpa.PlatformService = (*PlatformService)(nil)

// PlatformService is a mock implementation of gpa.PlatformService.
type PlatformService struct {
	CreatePlatformFn   func(ctx context.Context, platform *gpa.Platform) error
	FindPlatformByIDFn func(ctx context.Context, id string) (*gpa.Platform, error)
	FindPlatformsFn    func(ctx context.Context, filter gpa.PlatformFilter) ([]*gpa.Platform, error)
	UpdatePlatformFn   func(ctx context.Context, id string, upd gpa.PlatformUpdate) (*gpa.Platform, error)
	DeletePlatformFn   func(ctx context.Context, id string) error
}

func (s *PlatformService) CreatePlatform(ctx context.Context, platform *gpa.Platform) error {
	return s.CreatePlatformFn(ctx, platform)
}

func (s *PlatformService) FindPlatformByID(ctx context.Context, id string) (*gpa.Platform, error) {
	return s.FindPlatformByIDFn(ctx, id)
}

func (s *PlatformService) FindPlatforms(ctx context.Context, filter gpa.PlatformFilter) ([]*gpa.Platform, error) {
	return s.FindPlatformsFn(ctx, filter)
}

func (s *PlatformService) UpdatePlatform(ctx context.Context, id string, upd gpa.PlatformUpdate) (*gpa.Platform, error) {
	return s.UpdatePlatformFn(ctx, id, upd)
}

func (s *PlatformService) DeletePlatform(ctx context.Context, id string) error {
	return s.DeletePlatformFn(ctx, id)
}

var _ gpa.GameService = (*GameService)(nil)

// GameService is a mock implementation of gpa.GameService.
type GameService struct {
	CreateGameFn     func(ctx context.Context, game *gpa.Game) error
	FindGameByIDFn   func(ctx context.Context, id string) (*gpa.Game, error)
	FindGameByNameFn func(ctx context.Context, name string) (*gpa.Game, error)
	FindGamesFn      func(ctx context.Context, filter gpa.GameFilter) ([]*gpa.Game, error)
	DeleteGameFn     func(ctx context.Context, id string) error
}

func (s *GameService) CreateGame(ctx context.Context, game *gpa.Game) error {
	return s.CreateGameFn(ctx, game)
}

func (s *GameService) FindGameByID(ctx context.Context, id string) (*gpa.Game, error) {
	return s.FindGameByIDFn(ctx, id)
}

func (s *GameService) FindGameByName(ctx context.Context, name string) (*gpa.Game, error) {
	return s.FindGameByNameFn(ctx, name)
}

func (s *GameService) FindGames(ctx context.Context, filter gpa.GameFilter) ([]*gpa.Game, error) {
	return s.FindGamesFn(ctx, filter)
}

func (s *GameService) DeleteGame(ctx context.Context, id string) error {
	return s.DeleteGameFn(ctx, id)
}

var _ gpa.ListingService = (*ListingService)(nil)

// ListingService is a mock implementation of gpa.ListingService.
type ListingService struct {
	CreateListingFn   func(ctx context.Context, listing *gpa.Listing) error
	FindListingByIDFn func(ctx context.Context, id string) (*gpa.Listing, error)
	FindListingsFn    func(ctx context.Context, filter gpa.ListingFilter) ([]*gpa.Listing, error)
}

func (s *ListingService) CreateListing(ctx context.Context, listing *gpa.Listing) error {
	return s.CreateListingFn(ctx, listing)
}

func (s *ListingService) FindListingByID(ctx context.Context, id string) (*gpa.Listing, error) {
	return s.FindListingByIDFn(ctx, id)
}

func (s *ListingService) FindListings(ctx context.Context, filter gpa.ListingFilter) ([]*gpa.Listing, error) {
	return s.FindListingsFn(ctx, filter)
}

var _ gpa.ScrapeRequestService = (*ScrapeRequestService)(nil)

// ScrapeRequestService is a mock implementation of gpa.ScrapeRequestService.
type ScrapeRequestService struct {
	CreateScrapeRequestFn   func(ctx context.Context, req *gpa.ScrapeRequest) error
	FindScrapeRequestByIDFn func(ctx context.Context, id string) (*gpa.ScrapeRequest, error)
	FindScrapeRequestsFn    func(ctx context.Context, filter gpa.ScrapeRequestFilter) ([]*gpa.ScrapeRequest, error)
	UpdateScrapeRequestFn   func(ctx context.Context, id string, upd gpa.ScrapeRequestUpdate) (*gpa.ScrapeRequest, error)
}

func (s *ScrapeRequestService) CreateScrapeRequest(ctx context.Context, req *gpa.ScrapeRequest) error {
	return s.CreateScrapeRequestFn(ctx, req)
}

func (s *ScrapeRequestService) FindScrapeRequestByID(ctx context.Context, id string) (*gpa.ScrapeRequest, error) {
	return s.FindScrapeRequestByIDFn(ctx, id)
}

func (s *ScrapeRequestService) FindScrapeRequests(ctx context.Context, filter gpa.ScrapeRequestFilter) ([]*gpa.ScrapeRequest, error) {
	return s.FindScrapeRequestsFn(ctx, filter)
}

func (s *ScrapeRequestService) UpdateScrapeRequest(ctx context.Context, id string, upd gpa.ScrapeRequestUpdate) (*gpa.ScrapeRequest, error) {
	return s.UpdateScrapeRequestFn(ctx, id, upd)
}

var _ gpa.ScrapeDetailService = (*ScrapeDetailService)(nil)

// ScrapeDetailService is a mock implementation of gpa.ScrapeDetailService.
type ScrapeDetailService struct {
	CreateScrapeDetailFn func(ctx context.Context, detail *gpa.ScrapeDetail) error
	FindScrapeDetailsFn  func(ctx context.Context, filter gpa.ScrapeDetailFilter) ([]*gpa.ScrapeDetail, error)
}

func (s *ScrapeDetailService) CreateScrapeDetail(ctx context.Context, detail *gpa.ScrapeDetail) error {
	return s.CreateScrapeDetailFn(ctx, detail)
}

func (s *ScrapeDetailService) FindScrapeDetails(ctx context.Context, filter gpa.ScrapeDetailFilter) ([]*gpa.ScrapeDetail, error) {
	return s.FindScrapeDetailsFn(ctx, filter)
}

var _ gpa.ScrapeResultService = (*ScrapeResultService)(nil)

// ScrapeResultService is a mock implementation of gpa.ScrapeResultService.
type ScrapeResultService struct {
	CreateScrapeResultFn          func(ctx context.Context, result *gpa.ScrapeResult) error
	FindScrapeResultByRequestIDFn func(ctx context.Context, requestID string) (*gpa.ScrapeResult, error)
}

func (s *ScrapeResultService) CreateScrapeResult(ctx context.Context, result *gpa.ScrapeResult) error {
	return s.CreateScrapeResultFn(ctx, result)
}

func (s *ScrapeResultService) FindScrapeResultByRequestID(ctx context.Context, requestID string) (*gpa.ScrapeResult, error) {
	return s.FindScrapeResultByRequestIDFn(ctx, requestID)
}
