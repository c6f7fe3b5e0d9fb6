package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"marketdesk/internal/adapter/api/handler"
	"marketdesk/internal/adapter/api/router"
	"marketdesk/internal/adapter/repository"
	"marketdesk/internal/domain/entity"
	"marketdesk/internal/domain/schema"
	"marketdesk/internal/infrastructure/websocket"
	"marketdesk/internal/usecase"
	"marketdesk/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	listingRemote := repository.NewRestListingRepository(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)
	vendorRemote := repository.NewRestVendorRepository(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)
	orderRemote := repository.NewRestOrderRepository(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)
	reviewRemote := repository.NewRestReviewRepository(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)

	// Stores seed from the built-in fallback datasets so a dead upstream
	// still yields a usable console.
	listingStore := usecase.NewSnapshotStore(usecase.FallbackListings())
	vendorStore := usecase.NewSnapshotStore(usecase.FallbackVendors())
	orderStore := usecase.NewSnapshotStore(usecase.FallbackOrders())
	reviewStore := usecase.NewSnapshotStore(usecase.FallbackReviews())

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	listingStore.Subscribe(func(items []entity.Listing) {
		wsManager.BroadcastSnapshotEvent(string(entity.KindListing), len(items))
	})
	vendorStore.Subscribe(func(items []entity.Vendor) {
		wsManager.BroadcastSnapshotEvent(string(entity.KindVendor), len(items))
	})
	orderStore.Subscribe(func(items []entity.Order) {
		wsManager.BroadcastSnapshotEvent(string(entity.KindOrder), len(items))
	})
	reviewStore.Subscribe(func(items []entity.Review) {
		wsManager.BroadcastSnapshotEvent(string(entity.KindReview), len(items))
	})

	listingUseCase := usecase.NewListingUseCase(listingStore, listingRemote)
	vendorUseCase := usecase.NewVendorUseCase(vendorStore, vendorRemote)
	orderUseCase := usecase.NewOrderUseCase(orderStore, orderRemote)
	reviewUseCase := usecase.NewReviewUseCase(reviewStore, reviewRemote)

	registry := schema.NewRegistry()

	handler.Setup(listingUseCase, vendorUseCase, orderUseCase, reviewUseCase, registry, wsManager)

	// Initial hydration. Failures are tolerated: the stores keep the
	// fallback data and the next manual refresh retries.
	if err := listingUseCase.Refresh(ctx); err != nil {
		log.Printf("Initial listing load failed: %v", err)
	}
	if err := vendorUseCase.Refresh(ctx); err != nil {
		log.Printf("Initial vendor load failed: %v", err)
	}
	if err := orderUseCase.Refresh(ctx); err != nil {
		log.Printf("Initial order load failed: %v", err)
	}
	if err := reviewUseCase.Refresh(ctx); err != nil {
		log.Printf("Initial review load failed: %v", err)
	}

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	router.Setup(e)

	log.Printf("Starting console on port %s...", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
