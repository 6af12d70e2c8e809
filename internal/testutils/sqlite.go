package testutils

import (
	"testing"

	"github.com/itsd-lab/vendorgate/internal/domain/attachment"
	"github.com/itsd-lab/vendorgate/internal/domain/audit"
	"github.com/itsd-lab/vendorgate/internal/domain/formdef"
	"github.com/itsd-lab/vendorgate/internal/domain/project"
	"github.com/itsd-lab/vendorgate/internal/domain/submission"
	"github.com/itsd-lab/vendorgate/internal/domain/survey"
	"github.com/itsd-lab/vendorgate/internal/domain/user"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenSQLite gives each test its own throwaway in-memory database with the
// full schema migrated.
func OpenSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_fk=1"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := gdb.AutoMigrate(
		&user.User{},
		&project.Project{},
		&formdef.FormDefinition{},
		&submission.FormSubmission{},
		&survey.SatisfactionSurvey{},
		&attachment.Attachment{},
		&audit.AuditLog{},
	); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return gdb
}
