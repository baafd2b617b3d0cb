package client

// Wire shapes mirrored from the API responses.

type UserProfile struct {
	ID                 string   `json:"id"`
	Email              string   `json:"email"`
	FullName           string   `json:"full_name"`
	Phone              string   `json:"phone"`
	City               string   `json:"city"`
	AvatarURL          string   `json:"avatar_url"`
	Role               string   `json:"role"`
	FavoriteCategories []string `json:"favorite_categories"`
	FavoriteEvents     []string `json:"favorite_events"`
}

type Event struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	Tags           []string `json:"tags"`
	Date           string   `json:"date"`
	Time           string   `json:"time"`
	City           string   `json:"city"`
	Location       string   `json:"location"`
	Price          float64  `json:"price"`
	TicketType     string   `json:"ticket_type"`
	Capacity       int      `json:"capacity"`
	ImageURL       string   `json:"image_url"`
	CreatedBy      string   `json:"created_by"`
	OrganizerName  string   `json:"organizer_name"`
	AttendeesCount int      `json:"attendees_count"`
	Status         string   `json:"status"`
}

type Seat struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

type Grid struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
}

type ReservedSeats struct {
	EventID  string `json:"event_id"`
	Grid     Grid   `json:"grid"`
	Reserved []Seat `json:"reserved"`
}

type Booking struct {
	ID            string  `json:"id"`
	EventID       string  `json:"event_id"`
	UserID        string  `json:"user_id"`
	EventTitle    string  `json:"event_title"`
	EventDate     string  `json:"event_date"`
	EventTime     string  `json:"event_time"`
	EventCity     string  `json:"event_city"`
	EventLocation string  `json:"event_location"`
	Seats         []Seat  `json:"seats"`
	NumTickets    int     `json:"num_tickets"`
	TotalPrice    float64 `json:"total_price"`
	Status        string  `json:"status"`
}

type SearchResult struct {
	Count   int     `json:"count"`
	Results []Event `json:"results"`
}

type authPayload struct {
	Token   string      `json:"token"`
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	User    UserProfile `json:"user"`
}

// accessToken prefers the canonical "token" key, falling back to
// "access" for servers that only emit the pair.
func (p authPayload) accessToken() string {
	if p.Token != "" {
		return p.Token
	}
	return p.Access
}

type favoritePayload struct {
	Favorited bool        `json:"favorited"`
	Profile   UserProfile `json:"profile"`
}

// SearchParams are the query parameters of the discovery endpoint.
type SearchParams struct {
	Query    string
	Category string
	MaxPrice float64
	City     string
	Date     string
	Sort     string
}
