package application

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/itsd-lab/vendorgate/internal/config"
	"github.com/itsd-lab/vendorgate/internal/domain/project"
	"github.com/itsd-lab/vendorgate/internal/domain/user"
	"github.com/itsd-lab/vendorgate/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUnknownImportTable = errors.New("unknown import table")
	ErrEmptyImport        = errors.New("csv file has no header row")
)

// Column describes one importable table column. The same descriptor drives
// every registry table instead of per-page copies.
type Column struct {
	Key      string
	Required bool
}

// ImportPreview is returned before the caller confirms the overwrite.
type ImportPreview struct {
	Table    string              `json:"table"`
	Rows     []map[string]string `json:"rows"`
	Warnings []string            `json:"warnings"`
}

// ImportService replaces whole registry tables from CSV uploads. Import is
// all-or-nothing: either every row lands or the table is left untouched.
type ImportService struct {
	Repos *repository.Repos
}

func NewImportService(repos *repository.Repos) *ImportService {
	return &ImportService{Repos: repos}
}

var importTables = map[string][]Column{
	"users": {
		{Key: "username", Required: true},
		{Key: "password", Required: true},
		{Key: "role"},
		{Key: "email"},
		{Key: "full_name"},
		{Key: "department"},
	},
	"projects": {
		{Key: "project_name", Required: true},
		{Key: "description"},
		{Key: "assessor_id", Required: true},
		{Key: "reviewer_id", Required: true},
		{Key: "status"},
	},
}

// ParseCSVTable matches the header row case-sensitively against the declared
// columns. Unmatched file headers are reported as warnings and their cells
// dropped; missing required columns fail the whole parse.
func ParseCSVTable(r io.Reader, table string, columns []Column) (ImportPreview, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return ImportPreview{}, err
	}
	if len(records) == 0 {
		return ImportPreview{}, ErrEmptyImport
	}

	known := map[string]bool{}
	for _, col := range columns {
		known[col.Key] = true
	}

	header := records[0]
	var warnings []string
	matched := map[int]string{}
	seen := map[string]bool{}
	for i, h := range header {
		h = strings.TrimSpace(h)
		if known[h] {
			matched[i] = h
			seen[h] = true
		} else {
			warnings = append(warnings, fmt.Sprintf("column %q is not recognized and was ignored", h))
		}
	}

	for _, col := range columns {
		if col.Required && !seen[col.Key] {
			return ImportPreview{}, fmt.Errorf("required column %q is missing", col.Key)
		}
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := map[string]string{}
		for i, key := range matched {
			if i < len(rec) {
				row[key] = rec[i]
			}
		}
		rows = append(rows, row)
	}

	return ImportPreview{Table: table, Rows: rows, Warnings: warnings}, nil
}

// Preview parses without touching the table; the caller inspects warnings and
// re-posts with confirmation.
func (s *ImportService) Preview(table string, r io.Reader) (ImportPreview, error) {
	columns, ok := importTables[table]
	if !ok {
		return ImportPreview{}, ErrUnknownImportTable
	}
	return ParseCSVTable(r, table, columns)
}

// Apply overwrites the whole target table with the parsed rows.
func (s *ImportService) Apply(preview ImportPreview) error {
	switch preview.Table {
	case "users":
		return s.applyUsers(preview.Rows)
	case "projects":
		return s.applyProjects(preview.Rows)
	default:
		return ErrUnknownImportTable
	}
}

func (s *ImportService) applyUsers(rows []map[string]string) error {
	users := make([]user.User, 0, len(rows))
	for i, row := range rows {
		hashed, err := bcrypt.GenerateFromPassword([]byte(row["password"]), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+1, ErrPasswordHashFailure)
		}
		role := row["role"]
		if role == "" {
			role = config.RoleAssessor
		}
		u := user.User{
			Username: row["username"],
			Password: string(hashed),
			Role:     role,
		}
		if v := row["email"]; v != "" {
			u.Email = &v
		}
		if v := row["full_name"]; v != "" {
			u.FullName = &v
		}
		if v := row["department"]; v != "" {
			u.Department = &v
		}
		users = append(users, u)
	}
	return s.Repos.User.ReplaceAll(users)
}

func (s *ImportService) applyProjects(rows []map[string]string) error {
	projects := make([]project.Project, 0, len(rows))
	for i, row := range rows {
		assessorID, err := strconv.ParseUint(row["assessor_id"], 10, 32)
		if err != nil {
			return fmt.Errorf("row %d: invalid assessor_id %q", i+1, row["assessor_id"])
		}
		reviewerID, err := strconv.ParseUint(row["reviewer_id"], 10, 32)
		if err != nil {
			return fmt.Errorf("row %d: invalid reviewer_id %q", i+1, row["reviewer_id"])
		}
		status := row["status"]
		if status == "" {
			status = string(project.StatusInProgress)
		}
		projects = append(projects, project.Project{
			ProjectName: row["project_name"],
			Description: row["description"],
			AssessorID:  uint(assessorID),
			ReviewerID:  uint(reviewerID),
			Status:      status,
		})
	}
	return s.Repos.Project.ReplaceAll(projects)
}
