package application_test

import (
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/itsd-lab/vendorgate/internal/application"
	"github.com/itsd-lab/vendorgate/internal/domain/project"
	"github.com/itsd-lab/vendorgate/internal/domain/user"
	"github.com/itsd-lab/vendorgate/internal/repository"
	"github.com/itsd-lab/vendorgate/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type importerMocks struct {
	svc  *application.ImportService
	user *mock.MockUserRepo
	proj *mock.MockProjectRepo
}

func setupImporterMocks(t *testing.T) importerMocks {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	mockProject := mock.NewMockProjectRepo(ctrl)

	repos := &repository.Repos{
		User:    mockUser,
		Project: mockProject,
	}
	return importerMocks{
		svc:  application.NewImportService(repos),
		user: mockUser,
		proj: mockProject,
	}
}

func TestPreview_HeaderMatching(t *testing.T) {
	m := setupImporterMocks(t)

	t.Run("unknown table", func(t *testing.T) {
		_, err := m.svc.Preview("vendors", strings.NewReader("a,b\n1,2\n"))
		assert.ErrorIs(t, err, application.ErrUnknownImportTable)
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := m.svc.Preview("users", strings.NewReader(""))
		assert.ErrorIs(t, err, application.ErrEmptyImport)
	})

	t.Run("missing required column", func(t *testing.T) {
		_, err := m.svc.Preview("users", strings.NewReader("username,role\nalice,assessor\n"))
		assert.ErrorContains(t, err, `required column "password" is missing`)
	})

	t.Run("unmatched headers become warnings", func(t *testing.T) {
		csv := "username,password,Role,nickname\nalice,secret,assessor,al\n"
		preview, err := m.svc.Preview("users", strings.NewReader(csv))
		assert.NoError(t, err)

		// header match is case sensitive, so "Role" does not bind
		assert.Len(t, preview.Warnings, 2)
		assert.Contains(t, preview.Warnings[0], `"Role"`)
		assert.Contains(t, preview.Warnings[1], `"nickname"`)

		assert.Len(t, preview.Rows, 1)
		assert.Equal(t, "alice", preview.Rows[0]["username"])
		_, hasRole := preview.Rows[0]["role"]
		assert.False(t, hasRole, "unmatched cells are dropped")
	})

	t.Run("header only yields zero rows", func(t *testing.T) {
		preview, err := m.svc.Preview("users", strings.NewReader("username,password\n"))
		assert.NoError(t, err)
		assert.Empty(t, preview.Rows)
	})
}

func TestApply_Users(t *testing.T) {
	m := setupImporterMocks(t)

	csv := "username,password,role,email\n" +
		"alice,secret1,reviewer,alice@bank.test\n" +
		"bob,secret2,,\n"
	preview, err := m.svc.Preview("users", strings.NewReader(csv))
	assert.NoError(t, err)

	var replaced []user.User
	m.user.EXPECT().ReplaceAll(gomock.Any()).Do(func(users []user.User) {
		replaced = users
	}).Return(nil)

	assert.NoError(t, m.svc.Apply(preview))
	assert.Len(t, replaced, 2)

	assert.Equal(t, "alice", replaced[0].Username)
	assert.Equal(t, "reviewer", replaced[0].Role)
	assert.NotNil(t, replaced[0].Email)
	assert.Equal(t, "alice@bank.test", *replaced[0].Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(replaced[0].Password), []byte("secret1")))

	// blank role falls back to assessor, blank optionals stay nil
	assert.Equal(t, "assessor", replaced[1].Role)
	assert.Nil(t, replaced[1].Email)
}

func TestApply_Projects(t *testing.T) {
	m := setupImporterMocks(t)

	t.Run("valid rows replace the table", func(t *testing.T) {
		csv := "project_name,description,assessor_id,reviewer_id,status\n" +
			"Vendor X,cloud CRM,10,20,Completed\n" +
			"Vendor Y,,11,21,\n"
		preview, err := m.svc.Preview("projects", strings.NewReader(csv))
		assert.NoError(t, err)

		var replaced []project.Project
		m.proj.EXPECT().ReplaceAll(gomock.Any()).Do(func(projects []project.Project) {
			replaced = projects
		}).Return(nil)

		assert.NoError(t, m.svc.Apply(preview))
		assert.Len(t, replaced, 2)
		assert.Equal(t, uint(10), replaced[0].AssessorID)
		assert.Equal(t, uint(20), replaced[0].ReviewerID)
		assert.Equal(t, "Completed", replaced[0].Status)
		assert.Equal(t, "In Progress", replaced[1].Status)
	})

	t.Run("non numeric assignment refuses the whole import", func(t *testing.T) {
		csv := "project_name,assessor_id,reviewer_id\nVendor Z,ten,20\n"
		preview, err := m.svc.Preview("projects", strings.NewReader(csv))
		assert.NoError(t, err)

		err = m.svc.Apply(preview)
		assert.ErrorContains(t, err, `invalid assessor_id "ten"`)
	})
}

func TestApply_UnknownTable(t *testing.T) {
	m := setupImporterMocks(t)
	err := m.svc.Apply(application.ImportPreview{Table: "vendors"})
	assert.ErrorIs(t, err, application.ErrUnknownImportTable)
}
