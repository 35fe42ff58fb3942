package services

import (
	"context"
	"fmt"
	"time"

	"github.com/CellkomStore/cellkom_store_app/internal/apperrors"
	portsrepo "github.com/CellkomStore/cellkom_store_app/internal/core/ports/repositories"
	portssvc "github.com/CellkomStore/cellkom_store_app/internal/core/ports/services"
	"github.com/CellkomStore/cellkom_store_app/internal/dto"
)

type reportingService struct {
	reportingRepo portsrepo.ReportingRepositoryFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) SalesSummary(ctx context.Context, from time.Time, to time.Time) (*dto.SalesSummaryResponse, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: report range end precedes start", apperrors.ErrValidation)
	}

	rows, err := s.reportingRepo.SalesSummary(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sales: %w", err)
	}
	resp := dto.ToSalesSummaryResponse(from, to, rows)
	return &resp, nil
}

func (s *reportingService) OutstandingLedgerSummary(ctx context.Context) (*dto.OutstandingSummaryResponse, error) {
	summary, err := s.reportingRepo.OutstandingLedgerSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate outstanding ledger: %w", err)
	}
	resp := dto.ToOutstandingSummaryResponse(summary)
	return &resp, nil
}
