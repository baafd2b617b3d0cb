package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds database indexes used by the hot booking paths.
// Seat uniqueness itself is enforced at booking time inside a transaction,
// since seats live as jsonb arrays on the bookings row.
func MigrateConstraints(db *gorm.DB) error {
	// Reserved-seat lookups scan confirmed bookings per event
	err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_event_status
		ON bookings (event_id, status);
	`).Error
	if err != nil {
		return err
	}

	// "My bookings" queries filter by user and order by creation time
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_user_created
		ON bookings (user_id, created_at DESC);
	`).Error
	if err != nil {
		return err
	}

	// Discovery listings filter status + category and sort by date
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_events_status_category_date
		ON events (status, category, date);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
