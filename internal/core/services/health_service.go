package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/diary_app/internal/apperrors"
	portsrepo "github.com/SscSPs/diary_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/diary_app/internal/core/ports/services"
)

type healthServiceImpl struct {
	BaseService
	checker portsrepo.HealthChecker
}

// NewHealthService creates a health service backed by the store's ping.
func NewHealthService(checker portsrepo.HealthChecker) portssvc.HealthSvc {
	return &healthServiceImpl{checker: checker}
}

var _ portssvc.HealthSvc = (*healthServiceImpl)(nil)

func (s *healthServiceImpl) CheckStore(ctx context.Context) error {
	if err := s.checker.Ping(ctx); err != nil {
		s.LogError(ctx, err, "Store health check failed")
		return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	return nil
}
