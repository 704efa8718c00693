package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_applications",
		SQL: `CREATE TABLE IF NOT EXISTS applications (
  id                  UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  application_no      TEXT        NOT NULL,
  applicant_name      TEXT        NOT NULL,
  industry            TEXT        NOT NULL,
  loan_amount         BIGINT      NOT NULL CHECK (loan_amount >= 0),
  loan_amount_display TEXT        NOT NULL,
  legal_entity_type   TEXT        NOT NULL,
  application_stage   TEXT        NOT NULL,
  documents_status    TEXT        NOT NULL,
  application_status  TEXT        NOT NULL,
  review_status       TEXT        NOT NULL,
  is_overdue          BOOLEAN     NOT NULL DEFAULT false,
  analysis            JSONB       NOT NULL DEFAULT '{}'::jsonb,
  created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_applications_applicant_name",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_applications_applicant_name ON applications (applicant_name);`,
	},
	{
		Name: "create_index_applications_review_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_applications_review_status ON applications (review_status);`,
	},
	{
		Name: "create_table_chat_messages",
		SQL: `CREATE TABLE IF NOT EXISTS chat_messages (
  id             UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  session_id     TEXT        NOT NULL,
  application_id UUID        NULL,
  role           TEXT        NOT NULL,
  content        TEXT        NOT NULL,
  timestamp      TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_chat_messages_session",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_chat_messages_session ON chat_messages (session_id, timestamp);`,
	},
	{
		Name: "create_table_attachments",
		SQL: `CREATE TABLE IF NOT EXISTS attachments (
  id             UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  application_id UUID        NOT NULL REFERENCES applications (id) ON DELETE CASCADE,
  filename       TEXT        NOT NULL,
  storage_path   TEXT        NOT NULL UNIQUE,
  size           BIGINT      NOT NULL CHECK (size >= 0),
  content_type   TEXT        NOT NULL,
  uploaded_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_attachments_application",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_attachments_application ON attachments (application_id);`,
	},
}

// EnsureMigrated checks if the 'applications' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.applications') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
