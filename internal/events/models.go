package events

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Title       string    `json:"title" gorm:"not null;size:255"`
	Description string    `json:"description" gorm:"type:text"`
	Category    string    `json:"category" gorm:"not null;size:60;index"`
	Subcategory string    `json:"subcategory" gorm:"size:60"`
	Tags        []string  `json:"tags" gorm:"serializer:json;type:jsonb"`

	// Date is the calendar day in YYYY-MM-DD; Time is the local start time
	// as shown on the listing (e.g. "19:30").
	Date    string `json:"date" gorm:"not null;size:10;index"`
	Time    string `json:"time" gorm:"size:20"`
	EndDate string `json:"end_date" gorm:"size:10"`

	City     string `json:"city" gorm:"size:120;index"`
	Location string `json:"location" gorm:"size:255"`
	Address  string `json:"address" gorm:"size:255"`

	Price      float64    `json:"price" gorm:"not null;default:0"`
	TicketType TicketType `json:"ticket_type" gorm:"type:varchar(10);not null;default:'Free'"`
	Capacity   int        `json:"capacity" gorm:"not null;default:0"`

	ImageURL  string `json:"image_url" gorm:"size:500"`
	BannerURL string `json:"banner_url" gorm:"size:500"`

	Featured bool `json:"featured" gorm:"not null;default:false"`

	CreatedBy      uuid.UUID `json:"created_by" gorm:"type:uuid;not null;index"`
	OrganizerName  string    `json:"organizer_name" gorm:"size:255"`
	OrganizerEmail string    `json:"organizer_email" gorm:"size:255"`

	AttendeesCount int `json:"attendees_count" gorm:"not null;default:0"`

	Status EventStatus `json:"status" gorm:"type:varchar(20);not null;default:'Published';index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}

type CreateEventRequest struct {
	Title       string   `json:"title" binding:"required,min=3,max=255"`
	Description string   `json:"description" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Subcategory string   `json:"subcategory" binding:"omitempty,max=60"`
	Tags        []string `json:"tags"`
	Date        string   `json:"date" binding:"required,datetime=2006-01-02"`
	Time        string   `json:"time" binding:"omitempty,max=20"`
	EndDate     string   `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	City        string   `json:"city" binding:"required,max=120"`
	Location    string   `json:"location" binding:"required,max=255"`
	Address     string   `json:"address" binding:"omitempty,max=255"`
	Price       float64  `json:"price" binding:"min=0"`
	TicketType  string   `json:"ticket_type" binding:"required,tickettype"`
	Capacity    int      `json:"capacity" binding:"min=0"`
	ImageURL    string   `json:"image_url" binding:"omitempty,max=500"`
	BannerURL   string   `json:"banner_url" binding:"omitempty,max=500"`
	Featured    bool     `json:"featured"`
}

type UpdateEventRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=3,max=255"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Subcategory *string  `json:"subcategory" binding:"omitempty,max=60"`
	Tags        []string `json:"tags"`
	Date        *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Time        *string  `json:"time" binding:"omitempty,max=20"`
	EndDate     *string  `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	City        *string  `json:"city" binding:"omitempty,max=120"`
	Location    *string  `json:"location" binding:"omitempty,max=255"`
	Address     *string  `json:"address" binding:"omitempty,max=255"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	TicketType  *string  `json:"ticket_type" binding:"omitempty,tickettype"`
	Capacity    *int     `json:"capacity" binding:"omitempty,min=0"`
	ImageURL    *string  `json:"image_url" binding:"omitempty,max=500"`
	BannerURL   *string  `json:"banner_url" binding:"omitempty,max=500"`
	Featured    *bool    `json:"featured"`
	Status      *string  `json:"status"`
}

// ListFilters narrows event listings at the database layer. Zero values
// mean "no filter"; richer in-memory filtering lives in internal/discovery.
type ListFilters struct {
	Status    EventStatus
	Category  string
	CreatedBy uuid.UUID
	Limit     int
}
