package leave

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

// List fetches the leave dashboard and returns balances with the on-leave
// flag joined in and remaining quantities clamped.
func (s *Service) List(ctx context.Context) ([]Balance, error) {
	var dashboard Dashboard
	if err := s.erp.LeaveDashboard(ctx, &dashboard); err != nil {
		return nil, fmt.Errorf("fetch leave dashboard: %w", err)
	}
	return MarkOnLeave(dashboard.Balances, dashboard.OnLeave), nil
}
