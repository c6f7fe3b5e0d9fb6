package handler

import (
	"marketdesk/internal/domain/schema"
	ws "marketdesk/internal/infrastructure/websocket"
	"marketdesk/internal/usecase"
)

var (
	listingHandler   *ListingHandler
	vendorHandler    *VendorHandler
	orderHandler     *OrderHandler
	reviewHandler    *ReviewHandler
	schemaHandler    *SchemaHandler
	webSocketHandler *WebSocketHandler
	healthHandler    *HealthHandler
)

func Setup(
	listingUseCase *usecase.ListingUseCase,
	vendorUseCase *usecase.VendorUseCase,
	orderUseCase *usecase.OrderUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	registry *schema.Registry,
	wsManager *ws.Manager,
) {
	listingHandler = NewListingHandler(listingUseCase)
	vendorHandler = NewVendorHandler(vendorUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	schemaHandler = NewSchemaHandler(registry)
	webSocketHandler = NewWebSocketHandler(wsManager)
	healthHandler = NewHealthHandler()
}

func GetListingHandler() *ListingHandler {
	return listingHandler
}

func GetVendorHandler() *VendorHandler {
	return vendorHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetSchemaHandler() *SchemaHandler {
	return schemaHandler
}

func GetWebSocketHandler() *WebSocketHandler {
	return webSocketHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
