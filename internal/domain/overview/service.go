package overview

import (
	"context"
	"fmt"

	"hrdash/internal/domain/employee"
	"hrdash/internal/domain/leave"
	"hrdash/internal/domain/workhours"
)

// Snapshot is the assembled overview for one date.
type Snapshot struct {
	Date        string              `json:"date"`
	Metrics     Metrics             `json:"metrics"`
	Departments []DepartmentInsight `json:"departments"`
	LeaveTypes  []LeaveTypeUsage    `json:"leaveTypes"`
	Alerts      []string            `json:"alerts"`
}

// Service composes the three report services into the landing-page overview.
type Service struct {
	employees *employee.Service
	leave     *leave.Service
	workhours *workhours.Service
}

func NewService(employees *employee.Service, leaveSvc *leave.Service, workhoursSvc *workhours.Service) *Service {
	return &Service{employees: employees, leave: leaveSvc, workhours: workhoursSvc}
}

// Build fetches the directory, leave dashboard and the date's attendance and
// derives the overview. Any upstream failure fails the whole snapshot; the
// overview has no partial mode.
func (s *Service) Build(ctx context.Context, date string) (Snapshot, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("overview employees: %w", err)
	}
	balances, err := s.leave.List(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("overview leave balances: %w", err)
	}
	hours, err := s.workhours.ForDate(ctx, date)
	if err != nil {
		return Snapshot{}, fmt.Errorf("overview work hours: %w", err)
	}

	metrics := BuildMetrics(employees, balances, hours)
	return Snapshot{
		Date:        date,
		Metrics:     metrics,
		Departments: DepartmentInsights(employees, balances, hours),
		LeaveTypes:  LeaveTypeBreakdown(balances),
		Alerts:      Alerts(metrics),
	}, nil
}
