package application

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/itsd-lab/vendorgate/internal/config"
	"github.com/itsd-lab/vendorgate/internal/domain/project"
	"github.com/itsd-lab/vendorgate/internal/repository"
	"github.com/itsd-lab/vendorgate/pkg/utils"
	"gorm.io/gorm"
)

var (
	ErrAssessorRole = errors.New("assigned assessor must hold the assessor role")
	ErrReviewerRole = errors.New("assigned reviewer must hold the reviewer role")
)

type ProjectService struct {
	Repos *repository.Repos
}

func NewProjectService(repos *repository.Repos) *ProjectService {
	return &ProjectService{Repos: repos}
}

// CreateProject registers a vendor engagement. Both assignees must exist and
// carry the matching role.
func (s *ProjectService) CreateProject(c *gin.Context, input project.CreateProjectDTO) (*project.Project, error) {
	if err := s.checkAssignee(input.AssessorID, config.RoleAssessor, ErrAssessorRole); err != nil {
		return nil, err
	}
	if err := s.checkAssignee(input.ReviewerID, config.RoleReviewer, ErrReviewerRole); err != nil {
		return nil, err
	}

	p := &project.Project{
		ProjectName: input.ProjectName,
		Description: input.Description,
		AssessorID:  input.AssessorID,
		ReviewerID:  input.ReviewerID,
		Status:      string(project.StatusInProgress),
	}
	if err := s.Repos.Project.CreateProject(p); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "CREATE", "project", fmt.Sprint(p.PID), nil, p, p.ProjectName, s.Repos.Audit)
	return p, nil
}

func (s *ProjectService) GetProjectByID(id uint) (project.Project, error) {
	p, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, err
	}
	return p, nil
}

func (s *ProjectService) ListProjects() ([]project.Project, error) {
	return s.Repos.Project.ListProjects()
}

// ListProjectsForUser scopes the listing by role: assessors and reviewers see
// only their assigned projects, admins see everything.
func (s *ProjectService) ListProjectsForUser(uid uint, role string) ([]project.Project, error) {
	switch role {
	case config.RoleAssessor:
		return s.Repos.Project.ListProjectsByAssessor(uid)
	case config.RoleReviewer:
		return s.Repos.Project.ListProjectsByReviewer(uid)
	default:
		return s.Repos.Project.ListProjects()
	}
}

func (s *ProjectService) UpdateProject(c *gin.Context, id uint, input project.UpdateProjectDTO) (*project.Project, error) {
	p, err := s.GetProjectByID(id)
	if err != nil {
		return nil, err
	}
	old := p

	if input.ProjectName != nil {
		p.ProjectName = *input.ProjectName
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.AssessorID != nil {
		if err := s.checkAssignee(*input.AssessorID, config.RoleAssessor, ErrAssessorRole); err != nil {
			return nil, err
		}
		p.AssessorID = *input.AssessorID
	}
	if input.ReviewerID != nil {
		if err := s.checkAssignee(*input.ReviewerID, config.RoleReviewer, ErrReviewerRole); err != nil {
			return nil, err
		}
		p.ReviewerID = *input.ReviewerID
	}
	if input.Status != nil {
		p.Status = *input.Status
	}

	if err := s.Repos.Project.UpdateProject(&p); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "UPDATE", "project", fmt.Sprint(p.PID), old, p, p.ProjectName, s.Repos.Audit)
	return &p, nil
}

func (s *ProjectService) checkAssignee(uid uint, role string, roleErr error) error {
	usr, err := s.Repos.User.GetUserByID(uid)
	if err != nil {
		return ErrUserNotFound
	}
	if usr.Role != role {
		return roleErr
	}
	return nil
}
