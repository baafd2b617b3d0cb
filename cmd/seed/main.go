package main

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"gatherly/internal/bookings"
	"gatherly/internal/events"
	"gatherly/internal/seats"
	"gatherly/internal/shared/config"
	"gatherly/internal/shared/database"
	"gatherly/internal/users"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Gatherly Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables, bookings first so nothing dangles.
func (s *Seeder) CleanDatabase() error {
	pg := s.db.GetPostgreSQL()
	for _, table := range []string{"bookings", "events", "users"} {
		if err := pg.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	// drop any stale seat claims and cached listings
	ctx := context.Background()
	if err := s.db.GetRedisClient().FlushDB(ctx).Err(); err != nil {
		return fmt.Errorf("failed to flush redis: %w", err)
	}
	return nil
}

func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	seededUsers, err := s.seedUsers(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("👤 Seeded %d users\n", len(seededUsers))

	seededEvents, err := s.seedEvents(ctx, seededUsers)
	if err != nil {
		return err
	}
	fmt.Printf("🎫 Seeded %d events\n", len(seededEvents))

	count, err := s.seedBookings(ctx, seededUsers, seededEvents)
	if err != nil {
		return err
	}
	fmt.Printf("📒 Seeded %d bookings\n", count)

	return nil
}

func (s *Seeder) seedUsers(ctx context.Context) ([]users.User, error) {
	password, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	list := []users.User{
		{
			ID:       uuid.New(),
			Email:    "admin@gatherly.app",
			Password: string(password),
			FullName: "Gatherly Admin",
			City:     "Mumbai",
			Role:     users.RoleAdmin,
		},
		{
			ID:       uuid.New(),
			Email:    "asha@example.com",
			Password: string(password),
			FullName: "Asha Verma",
			Phone:    "+91-98200-00001",
			City:     "Mumbai",
			Role:     users.RoleUser,

			FavoriteCategories: []string{"Music", "Food"},
		},
		{
			ID:       uuid.New(),
			Email:    "rohan@example.com",
			Password: string(password),
			FullName: "Rohan Iyer",
			Phone:    "+91-98200-00002",
			City:     "Bengaluru",
			Role:     users.RoleUser,

			FavoriteCategories: []string{"Tech"},
		},
	}

	repo := users.NewRepository(s.db.GetPostgreSQL())
	for i := range list {
		if err := repo.Create(ctx, &list[i]); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (s *Seeder) seedEvents(ctx context.Context, seededUsers []users.User) ([]events.Event, error) {
	organizer := seededUsers[1]
	other := seededUsers[2]

	list := []events.Event{
		{
			ID:             uuid.New(),
			Title:          "Indie Nights Live",
			Description:    "An evening of independent music across three stages.",
			Category:       "Music",
			Tags:           []string{"live", "indie", "concert"},
			Date:           "2026-10-14",
			Time:           "19:30",
			City:           "Mumbai",
			Location:       "Phoenix Amphitheatre",
			Price:          49.99,
			TicketType:     events.TicketPaid,
			Capacity:       80,
			CreatedBy:      organizer.ID,
			OrganizerName:  organizer.FullName,
			OrganizerEmail: organizer.Email,
			Status:         events.StatusPublished,
		},
		{
			ID:             uuid.New(),
			Title:          "Go Meetup: Concurrency Patterns",
			Description:    "Monthly community meetup. Talks, pizza, hallway track.",
			Category:       "Tech",
			Tags:           []string{"golang", "meetup", "community"},
			Date:           "2026-09-20",
			Time:           "18:00",
			City:           "Bengaluru",
			Location:       "WeWork Galaxy",
			Price:          0,
			TicketType:     events.TicketFree,
			Capacity:       80,
			CreatedBy:      other.ID,
			OrganizerName:  other.FullName,
			OrganizerEmail: other.Email,
			Status:         events.StatusPublished,
		},
		{
			ID:             uuid.New(),
			Title:          "Street Food Festival",
			Description:    "Forty stalls of regional street food, live cooking demos.",
			Category:       "Food",
			Tags:           []string{"festival", "food"},
			Date:           "2026-10-14",
			Time:           "11:00",
			City:           "Mumbai",
			Location:       "Carter Road Promenade",
			Price:          15,
			TicketType:     events.TicketDonation,
			Capacity:       80,
			CreatedBy:      organizer.ID,
			OrganizerName:  organizer.FullName,
			OrganizerEmail: organizer.Email,
			Status:         events.StatusPublished,
		},
	}

	repo := events.NewRepository(s.db.GetPostgreSQL())
	for i := range list {
		if err := repo.Create(ctx, &list[i]); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (s *Seeder) seedBookings(ctx context.Context, seededUsers []users.User, seededEvents []events.Event) (int, error) {
	booker := seededUsers[2]
	concert := seededEvents[0]

	seatPicks := []seats.Seat{{Row: 2, Column: 4}, {Row: 2, Column: 5}}
	booking := &bookings.Booking{
		ID:      uuid.New(),
		EventID: concert.ID,
		UserID:  booker.ID,

		EventTitle:    concert.Title,
		EventDate:     concert.Date,
		EventTime:     concert.Time,
		EventCity:     concert.City,
		EventLocation: concert.Location,

		UserEmail: booker.Email,
		UserName:  booker.FullName,

		Seats:      seatPicks,
		NumTickets: len(seatPicks),
		TotalPrice: concert.TicketType.TotalPrice(concert.Price, len(seatPicks)),
		Status:     bookings.StatusConfirmed,
	}

	repo := bookings.NewRepository(s.db.GetPostgreSQL())
	if err := repo.CreateWithSeatCheck(ctx, booking); err != nil {
		return 0, err
	}

	eventRepo := events.NewRepository(s.db.GetPostgreSQL())
	if err := eventRepo.IncrementAttendees(ctx, concert.ID, booking.NumTickets); err != nil {
		return 0, err
	}

	return 1, nil
}
