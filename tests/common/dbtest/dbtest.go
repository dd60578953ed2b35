//go:build unit || e2e

package dbtest

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetDB truncates all application tables so each subtest starts clean.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		TRUNCATE TABLE
			notifications,
			messages,
			conversations,
			wishlist_items,
			property_rating_stats,
			reviews,
			booking_calendar,
			bookings,
			properties,
			users
		RESTART IDENTITY CASCADE
	`)
	return err
}
