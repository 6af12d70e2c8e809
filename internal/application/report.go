package application

import (
	"errors"

	"github.com/itsd-lab/vendorgate/internal/domain/submission"
	"github.com/itsd-lab/vendorgate/internal/repository"
	"gorm.io/gorm"
)

// AggregateStatus classifies one workflow step across all projects.
type AggregateStatus string

const (
	AggRejected      AggregateStatus = AggregateStatus(submission.StatusRejected)
	AggPendingReview AggregateStatus = AggregateStatus(submission.StatusPendingReview)
	AggDraft         AggregateStatus = AggregateStatus(submission.StatusDraft)
	AggApproved      AggregateStatus = AggregateStatus(submission.StatusApproved)
	AggInProgress    AggregateStatus = "In Progress"
	AggNotStarted    AggregateStatus = AggregateStatus(submission.StatusNotStarted)
)

// StatusSummary is the per-status population over every (project, form) pair.
type StatusSummary struct {
	Total  int                           `json:"total"`
	Counts map[submission.FormStatus]int `json:"counts"`
}

// WorkflowStep is one chevron in the workflow diagram, bound to a form key.
type WorkflowStep struct {
	FormKey string          `json:"form_key"`
	Label   string          `json:"label"`
	Status  AggregateStatus `json:"status"`
}

// Segment is one conic-gradient arc of the status doughnut, in degrees.
type Segment struct {
	Status submission.FormStatus `json:"status"`
	Count  int                   `json:"count"`
	Share  float64               `json:"share"`
	From   float64               `json:"from_deg"`
	To     float64               `json:"to_deg"`
}

// ReportService recomputes every aggregate from the full submission list per
// request. No caching; acceptable at this data scale.
type ReportService struct {
	Repos *repository.Repos
}

func NewReportService(repos *repository.Repos) *ReportService {
	return &ReportService{Repos: repos}
}

// StatusCounts tallies each (project, form) pair; a pair without a stored
// submission counts as Not Started. Total is |projects| x |forms|.
func (s *ReportService) StatusCounts() (StatusSummary, error) {
	projects, err := s.Repos.Project.ListProjects()
	if err != nil {
		return StatusSummary{}, err
	}
	defs, err := s.Repos.FormDef.ListDefinitions()
	if err != nil {
		return StatusSummary{}, err
	}
	subs, err := s.Repos.Submission.FindAll()
	if err != nil {
		return StatusSummary{}, err
	}

	byPair := indexSubmissions(subs)

	summary := StatusSummary{
		Total:  len(projects) * len(defs),
		Counts: map[submission.FormStatus]int{},
	}
	for _, p := range projects {
		for _, d := range defs {
			if sub, ok := byPair[pairKey{p.PID, d.Key}]; ok {
				summary.Counts[sub.Status]++
			} else {
				summary.Counts[submission.StatusNotStarted]++
			}
		}
	}
	return summary, nil
}

// WorkflowSteps classifies each form's aggregate status across all projects,
// in definition order.
func (s *ReportService) WorkflowSteps() ([]WorkflowStep, error) {
	projects, err := s.Repos.Project.ListProjects()
	if err != nil {
		return nil, err
	}
	defs, err := s.Repos.FormDef.ListDefinitions()
	if err != nil {
		return nil, err
	}
	subs, err := s.Repos.Submission.FindAll()
	if err != nil {
		return nil, err
	}

	byPair := indexSubmissions(subs)

	var steps []WorkflowStep
	for _, d := range defs {
		statuses := make([]submission.FormStatus, 0, len(projects))
		for _, p := range projects {
			if sub, ok := byPair[pairKey{p.PID, d.Key}]; ok {
				statuses = append(statuses, sub.Status)
			} else {
				statuses = append(statuses, submission.StatusNotStarted)
			}
		}
		steps = append(steps, WorkflowStep{
			FormKey: d.Key,
			Label:   d.Label,
			Status:  AggregateStepStatus(statuses),
		})
	}
	return steps, nil
}

// ProjectProgress lists the effective status of every defined form for one
// project (chevron diagram detail view, gate not applied).
func (s *ReportService) ProjectProgress(projectID uint) ([]submission.StatusEntry, error) {
	if _, err := s.Repos.Project.GetProjectByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	defs, err := s.Repos.FormDef.ListDefinitions()
	if err != nil {
		return nil, err
	}
	subs, err := s.Repos.Submission.FindByProject(projectID)
	if err != nil {
		return nil, err
	}

	byKey := map[string]submission.FormSubmission{}
	for _, sub := range subs {
		byKey[sub.FormKey] = sub
	}

	var entries []submission.StatusEntry
	for _, d := range defs {
		status := submission.StatusNotStarted
		if sub, ok := byKey[d.Key]; ok {
			status = sub.Status
		}
		entries = append(entries, submission.StatusEntry{
			FormKey: d.Key,
			Label:   d.Label,
			Status:  status,
		})
	}
	return entries, nil
}

// AggregateStepStatus applies the fixed precedence: rejection is the most
// urgent signal and dominates the aggregate regardless of how many projects
// have progressed further.
func AggregateStepStatus(statuses []submission.FormStatus) AggregateStatus {
	counts := map[submission.FormStatus]int{}
	for _, st := range statuses {
		counts[st]++
	}

	switch {
	case counts[submission.StatusRejected] > 0:
		return AggRejected
	case counts[submission.StatusPendingReview] > 0:
		return AggPendingReview
	case counts[submission.StatusDraft] > 0:
		return AggDraft
	case len(statuses) > 0 && counts[submission.StatusApproved] == len(statuses):
		return AggApproved
	}

	started := counts[submission.StatusApproved] +
		counts[submission.StatusDraft] +
		counts[submission.StatusPendingReview] +
		counts[submission.StatusRejected] +
		counts[submission.StatusCompleted]
	if started > 0 {
		return AggInProgress
	}
	return AggNotStarted
}

// DoughnutSegments converts a summary into conic-gradient stops. A zero-share
// status contributes no segment, avoiding degenerate zero-width arcs.
func DoughnutSegments(summary StatusSummary) []Segment {
	if summary.Total == 0 {
		return nil
	}

	order := []submission.FormStatus{
		submission.StatusNotStarted,
		submission.StatusDraft,
		submission.StatusPendingReview,
		submission.StatusApproved,
		submission.StatusRejected,
		submission.StatusCompleted,
	}

	var segments []Segment
	from := 0.0
	for _, st := range order {
		count := summary.Counts[st]
		if count == 0 {
			continue
		}
		share := float64(count) / float64(summary.Total)
		to := from + share*360
		segments = append(segments, Segment{
			Status: st,
			Count:  count,
			Share:  share,
			From:   from,
			To:     to,
		})
		from = to
	}
	return segments
}

type pairKey struct {
	projectID uint
	formKey   string
}

func indexSubmissions(subs []submission.FormSubmission) map[pairKey]submission.FormSubmission {
	byPair := make(map[pairKey]submission.FormSubmission, len(subs))
	for _, sub := range subs {
		byPair[pairKey{sub.ProjectID, sub.FormKey}] = sub
	}
	return byPair
}
