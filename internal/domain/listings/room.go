package listings

// Highlight is a short selling point on the room page.
type Highlight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type PriceDetails struct {
	BasePrice     float64 `json:"basePrice"`
	OriginalPrice float64 `json:"originalPrice"`
	Discount      float64 `json:"discount"`
	CleaningFee   float64 `json:"cleaningFee"`
	ServiceFee    float64 `json:"serviceFee"`
	Taxes         float64 `json:"taxes"`
}

// Total sums the charges and subtracts the discount.
func (p PriceDetails) Total() float64 {
	return p.BasePrice + p.CleaningFee + p.ServiceFee + p.Taxes - p.Discount
}

type Host struct {
	Name         string `json:"name"`
	IsSuperhost  bool   `json:"isSuperhost"`
	YearsHosting int    `json:"yearsHosting"`
	ResponseRate string `json:"responseRate"`
	ResponseTime string `json:"responseTime"`
	ReviewsCount int    `json:"reviewsCount"`
	Verified     bool   `json:"verified"`
}

// Detail is the full room record from GET /hotelrooms/{id}.
type Detail struct {
	Listing
	Description        string       `json:"description"`
	Amenities          []string     `json:"amenities"`
	Highlights         []Highlight  `json:"highlights"`
	HouseRules         []string     `json:"houseRules"`
	SafetyInfo         []string     `json:"safetyInfo"`
	CancellationPolicy string       `json:"cancellationPolicy"`
	CheckInTime        string       `json:"checkInTime"`
	CheckOutTime       string       `json:"checkOutTime"`
	PriceDetails       PriceDetails `json:"priceDetails"`
	Host               *Host        `json:"host"`
}

const (
	DefaultMaxGuests          = 2
	DefaultBedrooms           = 1
	DefaultBathrooms          = 1
	DefaultCheckInTime        = "4:00 PM"
	DefaultCheckOutTime       = "11:00 AM"
	DefaultCancellationPolicy = "Free cancellation for 48 hours"
)

// DefaultHost stands in for a room without host data.
func DefaultHost() Host {
	return Host{Name: "Host", ResponseRate: "100%", ResponseTime: "within an hour", YearsHosting: 1}
}

// Room is a Detail with every optional field resolved for display.
type Room struct {
	Detail
	Gallery []string
	Host    Host
}

func (d Detail) Room() Room {
	r := Room{Detail: d}
	if r.Title == "" {
		r.Title = "Room"
	}
	if r.MaxGuests <= 0 {
		r.MaxGuests = DefaultMaxGuests
	}
	if r.Bedrooms <= 0 {
		r.Bedrooms = DefaultBedrooms
	}
	if r.Bathrooms <= 0 {
		r.Bathrooms = DefaultBathrooms
	}
	if r.CheckInTime == "" {
		r.CheckInTime = DefaultCheckInTime
	}
	if r.CheckOutTime == "" {
		r.CheckOutTime = DefaultCheckOutTime
	}
	if r.CancellationPolicy == "" {
		r.CancellationPolicy = DefaultCancellationPolicy
	}
	if d.Host != nil {
		r.Host = *d.Host
	} else {
		r.Host = DefaultHost()
	}
	r.Gallery = append([]string(nil), d.Images...)
	if len(r.Gallery) == 0 {
		r.Gallery = []string{d.Image()}
	}
	return r
}
