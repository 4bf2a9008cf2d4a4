package workhours

import (
	"context"
	"fmt"

	"hrdash/internal/erp"
)

type Service struct {
	erp *erp.Client
}

func NewService(client *erp.Client) *Service {
	return &Service{erp: client}
}

// ForDate fetches per-day attendance rows for a single date.
func (s *Service) ForDate(ctx context.Context, date string) ([]WorkHour, error) {
	if err := ValidateRange(date, date); err != nil {
		return nil, err
	}
	var rows []WorkHour
	if err := s.erp.WorkHours(ctx, date, &rows); err != nil {
		return nil, fmt.Errorf("fetch work hours: %w", err)
	}
	return rows, nil
}

// ForRange fetches per-day rows covering [start, end]. Callers roll them up
// per employee with Rollup for the multi-day view.
func (s *Service) ForRange(ctx context.Context, start, end string) ([]WorkHour, error) {
	if err := ValidateRange(start, end); err != nil {
		return nil, err
	}
	var rows []WorkHour
	if err := s.erp.WorkHoursRange(ctx, start, end, &rows); err != nil {
		return nil, fmt.Errorf("fetch work hours range: %w", err)
	}
	return rows, nil
}
