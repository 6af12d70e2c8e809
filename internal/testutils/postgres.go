package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/itsd-lab/vendorgate/internal/domain/attachment"
	"github.com/itsd-lab/vendorgate/internal/domain/audit"
	"github.com/itsd-lab/vendorgate/internal/domain/formdef"
	"github.com/itsd-lab/vendorgate/internal/domain/project"
	"github.com/itsd-lab/vendorgate/internal/domain/submission"
	"github.com/itsd-lab/vendorgate/internal/domain/survey"
	"github.com/itsd-lab/vendorgate/internal/domain/user"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func migrateAll(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&user.User{},
		&project.Project{},
		&formdef.FormDefinition{},
		&submission.FormSubmission{},
		&survey.SatisfactionSurvey{},
		&attachment.Attachment{},
		&audit.AuditLog{},
	)
}

// SetupPostgresForIntegration starts a disposable Postgres container, or uses
// TEST_DB_DSN when set, and migrates the full schema.
func SetupPostgresForIntegration() (*gorm.DB, func()) {
	// Check if an external DB DSN is provided
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		gdb, err := gorm.Open(gormpg.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatal(err)
		}
		if err := migrateAll(gdb); err != nil {
			log.Fatal(err)
		}
		return gdb, func() {
			if sqlDB, err := gdb.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "vendorgate",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatal(err)
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/vendorgate?sslmode=disable", host, port.Port())

	// retry db connect
	var db *sql.DB
	for i := 0; i < 10; i++ {
		db, err = sql.Open("postgres", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				break
			}
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		log.Fatal(err)
	}
	_ = db.Close()

	gdb, err := gorm.Open(gormpg.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}
	if err := migrateAll(gdb); err != nil {
		log.Fatal(err)
	}

	cleanup := func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
		_ = pg.Terminate(ctx)
	}

	return gdb, cleanup
}
