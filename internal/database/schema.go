package database

import (
	"context"
	"database/sql"
)

// schemaStatements holds the DDL for the three tables, in dependency
// order.  seats carries the composite uniqueness constraint that makes a
// seat key (show_id, screen_id, seat_number) refer to at most one row,
// and foreign keys so a seat can never outlive its show or screen.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS screens (
		id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name        VARCHAR(255)    NOT NULL,
		capacity    INT UNSIGNED    NOT NULL,
		created_at  TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at  TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS shows (
		id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name        VARCHAR(255)    NOT NULL,
		start_time  DATETIME        NOT NULL,
		end_time    DATETIME        NOT NULL,
		created_at  TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at  TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_shows_start_time (start_time)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS seats (
		id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		show_id     BIGINT UNSIGNED NOT NULL,
		screen_id   BIGINT UNSIGNED NOT NULL,
		seat_number INT UNSIGNED    NOT NULL,
		is_booked   TINYINT(1)      NOT NULL DEFAULT 0,
		created_at  TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at  TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_seats_key (show_id, screen_id, seat_number),
		CONSTRAINT fk_seats_show   FOREIGN KEY (show_id)   REFERENCES shows (id),
		CONSTRAINT fk_seats_screen FOREIGN KEY (screen_id) REFERENCES screens (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the screens, shows and seats tables when they do
// not already exist.  All statements are idempotent so the function is
// safe to run on every startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
