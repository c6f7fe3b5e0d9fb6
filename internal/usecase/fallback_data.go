package usecase

import (
	"time"

	"marketdesk/internal/domain/entity"
)

// Built-in fallback datasets, served whenever the upstream marketplace
// cannot be reached before a first successful load. Showing stale demo
// data beats showing an empty console.

func fallbackTime(daysAgo int) time.Time {
	return time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo)
}

func FallbackListings() []entity.Listing {
	flagged1 := fallbackTime(3)
	flagged2 := fallbackTime(9)
	return []entity.Listing{
		{ID: "L1", Name: "Harborfront Loft", VendorID: "V1", VendorName: "Golden Gate Events", Category: "venues", Status: entity.StatusActive, Price: 2400, Regions: []string{"bay-area", "north-coast"}, Bookings: 182, Rating: 4.8, ReviewCount: 96, UpdatedAt: fallbackTime(1)},
		{ID: "L2", Name: "Sierra Barn Weddings", VendorID: "V2", VendorName: "Sierra Celebrations", Category: "venues", Status: entity.StatusActive, Price: 3100, Regions: []string{"sierra"}, Bookings: 95, Rating: 4.6, ReviewCount: 41, UpdatedAt: fallbackTime(2)},
		{ID: "L3", Name: "Coastal Catering Co", VendorID: "V3", VendorName: "Coastal Catering Co", Category: "catering", Status: entity.StatusActive, Price: 58, Regions: []string{"bay-area", "central-coast"}, Bookings: 240, Rating: 4.9, ReviewCount: 188, UpdatedAt: fallbackTime(4)},
		{ID: "L4", Name: "Lens & Light Photography", VendorID: "V4", VendorName: "Lens & Light", Category: "photography", Status: entity.StatusActive, Price: 1800, Regions: []string{"bay-area"}, Bookings: 77, Rating: 4.4, ReviewCount: 52, UpdatedAt: fallbackTime(5)},
		{ID: "L5", Name: "Valley String Quartet", VendorID: "V5", VendorName: "Valley Strings", Category: "entertainment", Status: entity.StatusActive, Price: 950, Regions: []string{"central-valley", "sierra"}, Bookings: 134, Rating: 4.7, ReviewCount: 63, UpdatedAt: fallbackTime(6)},
		{ID: "L6", Name: "Uptown Taco Truck", VendorID: "V6", VendorName: "Uptown Eats", Category: "catering", Status: entity.StatusActive, Price: 22, Regions: []string{"bay-area"}, Bookings: 310, Rating: 4.5, ReviewCount: 204, UpdatedAt: fallbackTime(7)},
		{ID: "L7", Name: "Redwood Grove Retreat", VendorID: "V2", VendorName: "Sierra Celebrations", Category: "venues", Status: entity.StatusActive, Price: 4200, Regions: []string{"north-coast"}, Bookings: 41, Rating: 4.2, ReviewCount: 19, UpdatedAt: fallbackTime(8)},
		{ID: "L8", Name: "Ballroom on Fifth", VendorID: "V1", VendorName: "Golden Gate Events", Category: "venues", Status: entity.StatusInactive, Price: 5200, Regions: []string{"bay-area"}, Bookings: 67, Rating: 4.1, ReviewCount: 30, UpdatedAt: fallbackTime(12)},
		{ID: "L9", Name: "Midnight DJ Collective", VendorID: "V5", VendorName: "Valley Strings", Category: "entertainment", Status: entity.StatusInactive, Price: 700, Regions: []string{"central-valley"}, Bookings: 58, Rating: 3.9, ReviewCount: 27, UpdatedAt: fallbackTime(15)},
		{ID: "L10", Name: "Budget Banquet Hall", VendorID: "V7", VendorName: "Quick Events LLC", Category: "venues", Status: entity.StatusFlagged, Price: 800, Regions: []string{"central-valley"}, Bookings: 12, Rating: 2.8, ReviewCount: 9, FlagReason: "misleading photos", FlaggedAt: &flagged1, UpdatedAt: fallbackTime(3)},
		{ID: "L11", Name: "Five Star Fireworks", VendorID: "V7", VendorName: "Quick Events LLC", Category: "entertainment", Status: entity.StatusFlagged, Price: 2600, Regions: []string{"sierra"}, Bookings: 5, Rating: 3.1, ReviewCount: 4, FlagReason: "unlicensed operation", FlaggedAt: &flagged2, UpdatedAt: fallbackTime(9)},
		{ID: "L12", Name: "Garden Party Package", VendorID: "V3", VendorName: "Coastal Catering Co", Category: "catering", Status: entity.StatusDraft, Price: 45, Regions: []string{"central-coast"}, Bookings: 0, Rating: 0, ReviewCount: 0, UpdatedAt: fallbackTime(0)},
	}
}

func FallbackVendors() []entity.Vendor {
	trialDays := 9
	return []entity.Vendor{
		{ID: "V1", BusinessName: "Golden Gate Events", Category: "venues", Status: entity.StatusActive, SubscriptionPlan: "pro", Regions: []string{"bay-area", "north-coast"}, ListingsCount: 2, Rating: 4.6, UpdatedAt: fallbackTime(1)},
		{ID: "V2", BusinessName: "Sierra Celebrations", Category: "venues", Status: entity.StatusActive, SubscriptionPlan: "standard", Regions: []string{"sierra", "north-coast"}, ListingsCount: 2, Rating: 4.4, UpdatedAt: fallbackTime(2)},
		{ID: "V3", BusinessName: "Coastal Catering Co", Category: "catering", Status: entity.StatusActive, SubscriptionPlan: "pro", Regions: []string{"bay-area", "central-coast"}, ListingsCount: 2, Rating: 4.9, UpdatedAt: fallbackTime(4)},
		{ID: "V4", BusinessName: "Lens & Light", Category: "photography", Status: entity.StatusTrial, SubscriptionPlan: "trial", Regions: []string{"bay-area"}, ListingsCount: 1, Rating: 4.4, TrialDaysLeft: &trialDays, UpdatedAt: fallbackTime(5)},
		{ID: "V5", BusinessName: "Valley Strings", Category: "entertainment", Status: entity.StatusActive, SubscriptionPlan: "standard", Regions: []string{"central-valley", "sierra"}, ListingsCount: 2, Rating: 4.3, UpdatedAt: fallbackTime(6)},
		{ID: "V6", BusinessName: "Uptown Eats", Category: "catering", Status: entity.StatusInactive, SubscriptionPlan: "standard", Regions: []string{"bay-area"}, ListingsCount: 1, Rating: 4.5, UpdatedAt: fallbackTime(20)},
		{ID: "V7", BusinessName: "Quick Events LLC", Category: "venues", Status: entity.StatusSuspended, SubscriptionPlan: "standard", Regions: []string{"central-valley", "sierra"}, ListingsCount: 2, Rating: 2.9, UpdatedAt: fallbackTime(3)},
	}
}

func FallbackOrders() []entity.Order {
	return []entity.Order{
		{ID: "O1", CustomerID: "C11", VendorID: "V1", Status: entity.StatusUpcoming, PaymentStatus: entity.PaymentPaid, Date: fallbackTime(-14), Total: 2400, UpdatedAt: fallbackTime(1)},
		{ID: "O2", CustomerID: "C12", VendorID: "V3", Status: entity.StatusUpcoming, PaymentStatus: entity.PaymentPending, Date: fallbackTime(-7), Total: 1740, UpdatedAt: fallbackTime(2)},
		{ID: "O3", CustomerID: "C13", VendorID: "V5", Status: entity.StatusInProgress, PaymentStatus: entity.PaymentPaid, Date: fallbackTime(0), Total: 950, UpdatedAt: fallbackTime(0)},
		{ID: "O4", CustomerID: "C11", VendorID: "V2", Status: entity.StatusCompleted, PaymentStatus: entity.PaymentPaid, Date: fallbackTime(10), Total: 3100, UpdatedAt: fallbackTime(9)},
		{ID: "O5", CustomerID: "C14", VendorID: "V7", Status: entity.StatusDisputed, PaymentStatus: entity.PaymentPaid, Date: fallbackTime(5), Total: 800, UpdatedAt: fallbackTime(4)},
		{ID: "O6", CustomerID: "C15", VendorID: "V6", Status: entity.StatusCancelled, PaymentStatus: entity.PaymentFailed, Date: fallbackTime(3), Total: 660, UpdatedAt: fallbackTime(3)},
	}
}

func FallbackReviews() []entity.Review {
	responded := fallbackTime(6)
	return []entity.Review{
		{ID: "R1", ListingID: "L1", VendorID: "V1", CustomerID: "C11", Rating: 5, Content: "Stunning view, seamless booking.", Status: entity.StatusPublished, UpdatedAt: fallbackTime(2)},
		{ID: "R2", ListingID: "L3", VendorID: "V3", CustomerID: "C12", Rating: 4, Content: "Great food, slightly late setup.", Status: entity.StatusPublished, VendorResponse: &entity.VendorResponse{Text: "Thanks for the patience, setup delays are fixed.", RespondedAt: responded}, UpdatedAt: fallbackTime(5)},
		{ID: "R3", ListingID: "L10", VendorID: "V7", CustomerID: "C14", Rating: 1, Content: "Hall looked nothing like the photos.", Status: entity.StatusFlagged, UpdatedAt: fallbackTime(3)},
		{ID: "R4", ListingID: "L5", VendorID: "V5", CustomerID: "C13", Rating: 5, Content: "The quartet made the evening.", Status: entity.StatusPendingResponse, UpdatedAt: fallbackTime(1)},
		{ID: "R5", ListingID: "L6", VendorID: "V6", CustomerID: "C15", Rating: 3, Content: "Tasty but the line was long.", Status: entity.StatusHidden, UpdatedAt: fallbackTime(8)},
		{ID: "R6", ListingID: "L2", VendorID: "V2", CustomerID: "C11", Rating: 2, Content: "Road access was rough.", Status: entity.StatusPublished, UpdatedAt: fallbackTime(11)},
	}
}
