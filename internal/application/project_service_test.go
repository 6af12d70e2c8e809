package application_test

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/itsd-lab/vendorgate/internal/application"
	"github.com/itsd-lab/vendorgate/internal/domain/project"
	"github.com/itsd-lab/vendorgate/internal/domain/user"
	"github.com/itsd-lab/vendorgate/internal/repository"
	"github.com/itsd-lab/vendorgate/internal/repository/mock"
	"github.com/itsd-lab/vendorgate/pkg/utils"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type projectMocks struct {
	svc  *application.ProjectService
	proj *mock.MockProjectRepo
	user *mock.MockUserRepo
}

func setupProjectMocks(t *testing.T) projectMocks {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockProject := mock.NewMockProjectRepo(ctrl)
	mockUser := mock.NewMockUserRepo(ctrl)

	oldLog := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repository.AuditRepo) {
	}
	t.Cleanup(func() { utils.LogAuditWithConsole = oldLog })

	repos := &repository.Repos{Project: mockProject, User: mockUser}
	return projectMocks{
		svc:  application.NewProjectService(repos),
		proj: mockProject,
		user: mockUser,
	}
}

func TestCreateProject(t *testing.T) {
	input := project.CreateProjectDTO{
		ProjectName: "Vendor X",
		AssessorID:  10,
		ReviewerID:  20,
	}

	t.Run("assignee with the wrong role is refused", func(t *testing.T) {
		m := setupProjectMocks(t)
		m.user.EXPECT().GetUserByID(uint(10)).Return(user.User{UID: 10, Role: "reviewer"}, nil)

		_, err := m.svc.CreateProject(assessorCtx(), input)
		assert.ErrorIs(t, err, application.ErrAssessorRole)
	})

	t.Run("missing assignee is refused", func(t *testing.T) {
		m := setupProjectMocks(t)
		m.user.EXPECT().GetUserByID(uint(10)).Return(user.User{}, gorm.ErrRecordNotFound)

		_, err := m.svc.CreateProject(assessorCtx(), input)
		assert.ErrorIs(t, err, application.ErrUserNotFound)
	})

	t.Run("valid assignment lands in progress", func(t *testing.T) {
		m := setupProjectMocks(t)
		m.user.EXPECT().GetUserByID(uint(10)).Return(user.User{UID: 10, Role: "assessor"}, nil)
		m.user.EXPECT().GetUserByID(uint(20)).Return(user.User{UID: 20, Role: "reviewer"}, nil)
		m.proj.EXPECT().CreateProject(gomock.Any()).Return(nil)

		p, err := m.svc.CreateProject(adminCtx(), input)
		assert.NoError(t, err)
		assert.Equal(t, "In Progress", p.Status)
	})
}

func TestListProjectsForUser(t *testing.T) {
	t.Run("assessor sees own projects", func(t *testing.T) {
		m := setupProjectMocks(t)
		m.proj.EXPECT().ListProjectsByAssessor(uint(10)).Return([]project.Project{{PID: 1}}, nil)

		projects, err := m.svc.ListProjectsForUser(10, "assessor")
		assert.NoError(t, err)
		assert.Len(t, projects, 1)
	})

	t.Run("admin sees everything", func(t *testing.T) {
		m := setupProjectMocks(t)
		m.proj.EXPECT().ListProjects().Return([]project.Project{{PID: 1}, {PID: 2}}, nil)

		projects, err := m.svc.ListProjectsForUser(30, "admin")
		assert.NoError(t, err)
		assert.Len(t, projects, 2)
	})
}

func TestUpdateProject(t *testing.T) {
	t.Run("reassignment revalidates the role", func(t *testing.T) {
		m := setupProjectMocks(t)
		m.proj.EXPECT().GetProjectByID(uint(1)).Return(testProject(), nil)
		m.user.EXPECT().GetUserByID(uint(20)).Return(user.User{UID: 20, Role: "reviewer"}, nil)

		_, err := m.svc.UpdateProject(adminCtx(), 1, project.UpdateProjectDTO{AssessorID: ptrUint(20)})
		assert.ErrorIs(t, err, application.ErrAssessorRole)
	})

	t.Run("unknown project", func(t *testing.T) {
		m := setupProjectMocks(t)
		m.proj.EXPECT().GetProjectByID(uint(9)).Return(project.Project{}, gorm.ErrRecordNotFound)

		_, err := m.svc.UpdateProject(adminCtx(), 9, project.UpdateProjectDTO{})
		assert.ErrorIs(t, err, application.ErrProjectNotFound)
	})
}

func ptrUint(v uint) *uint {
	return &v
}
