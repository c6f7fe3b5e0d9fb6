package schema

// Form structs per listing category. Tags drive validation; json names
// match the console's form field names.

type VenueForm struct {
	Name     string   `json:"name" validate:"required"`
	Capacity int      `json:"capacity" validate:"required,min=1"`
	Price    float64  `json:"price" validate:"required,min=0"`
	Regions  []string `json:"regions" validate:"required,min=1,dive,required"`
	Indoor   bool     `json:"indoor"`
}

type CateringForm struct {
	Name         string   `json:"name" validate:"required"`
	CuisineType  string   `json:"cuisine_type" validate:"required"`
	PricePerHead float64  `json:"price_per_head" validate:"required,min=0"`
	MinGuests    int      `json:"min_guests" validate:"min=0"`
	Regions      []string `json:"regions" validate:"required,min=1,dive,required"`
}

type PhotographyForm struct {
	Name       string   `json:"name" validate:"required"`
	Style      string   `json:"style" validate:"required,oneof=documentary editorial traditional candid"`
	HourlyRate float64  `json:"hourly_rate" validate:"required,min=0"`
	Regions    []string `json:"regions" validate:"required,min=1,dive,required"`
}

type EntertainmentForm struct {
	Name        string   `json:"name" validate:"required"`
	ActType     string   `json:"act_type" validate:"required"`
	SetLength   int      `json:"set_length_minutes" validate:"required,min=15"`
	Price       float64  `json:"price" validate:"required,min=0"`
	Regions     []string `json:"regions" validate:"required,min=1,dive,required"`
	NeedsPower  bool     `json:"needs_power"`
}

func builtinDefinitions() []Definition {
	return []Definition{
		{Category: "venues", NewForm: func() interface{} { return &VenueForm{} }},
		{Category: "catering", NewForm: func() interface{} { return &CateringForm{} }},
		{Category: "photography", NewForm: func() interface{} { return &PhotographyForm{} }},
		{Category: "entertainment", NewForm: func() interface{} { return &EntertainmentForm{} }},
	}
}
