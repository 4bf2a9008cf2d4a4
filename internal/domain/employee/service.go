package employee

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

// List fetches the current employee directory snapshot from the ERP.
func (s *Service) List(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	if err := s.erp.Employees(ctx, &employees); err != nil {
		return nil, fmt.Errorf("fetch employees: %w", err)
	}
	return employees, nil
}
