package database

import (
	"context"
	"database/sql"
)

// schema holds the idempotent DDL for the three booking tables. Ticket
// rows reference user and event through named foreign keys; the
// constraint names are matched by the ticket repository to translate
// errno 1452 into the user/event reference sentinels.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS event (
		id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		event_name  VARCHAR(255)    NOT NULL,
		location    VARCHAR(255)    NOT NULL DEFAULT '',
		date        DATETIME        NOT NULL,
		max_tickets INT             NOT NULL,
		type        VARCHAR(100)    NOT NULL DEFAULT '',
		PRIMARY KEY (id),
		KEY idx_event_date (date)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS user (
		id       BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name     VARCHAR(255)    NOT NULL,
		rol      VARCHAR(100)    NOT NULL,
		email    VARCHAR(255)    NOT NULL,
		password VARCHAR(255)    NOT NULL,
		PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS ticket (
		id           BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		user_id      BIGINT UNSIGNED NOT NULL,
		event_id     BIGINT UNSIGNED NOT NULL,
		booking_date DATETIME        NOT NULL,
		PRIMARY KEY (id),
		KEY idx_ticket_user (user_id),
		KEY idx_ticket_event (event_id),
		CONSTRAINT fk_ticket_user  FOREIGN KEY (user_id)  REFERENCES user (id),
		CONSTRAINT fk_ticket_event FOREIGN KEY (event_id) REFERENCES event (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the event, user and ticket tables if they do not
// exist yet. Called once at startup before the server accepts traffic.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
