package app

import (
	"go-rms/internal/attendance"
	"go-rms/internal/catalog"
	"go-rms/internal/employee"
	"go-rms/internal/ordering"
	"go-rms/internal/payroll"

	"gorm.io/gorm"
)

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&employee.Employee{},
		&catalog.MenuItem{},
		&catalog.Table{},
		&ordering.Order{},
		&ordering.LineItem{},
		&ordering.LineItemExtra{},
		&attendance.Attendance{},
		&payroll.Payroll{},
		&payroll.Deduction{},
	); err != nil {
		return err
	}

	// Counters and the outbox are plain SQL tables, not gorm models.
	for _, stmt := range []string{
		`CREATE TABLE IF NOT EXISTS counters (
			counter_type VARCHAR(50) PRIMARY KEY,
			last_value   BIGINT NOT NULL DEFAULT 0,
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS outbox_events (
			id             UUID PRIMARY KEY,
			request_id     VARCHAR(100),
			aggregate_type VARCHAR(50) NOT NULL,
			aggregate_id   VARCHAR(100) NOT NULL,
			event_type     VARCHAR(100) NOT NULL,
			topic          VARCHAR(200) NOT NULL,
			payload        JSONB NOT NULL,
			status         VARCHAR(20) NOT NULL DEFAULT 'pending',
			retry_count    INT NOT NULL DEFAULT 0,
			next_retry_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
			processed_at   TIMESTAMPTZ,
			last_error     TEXT,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_outbox_events_pending
			ON outbox_events (next_retry_at) WHERE status = 'pending'`,
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
