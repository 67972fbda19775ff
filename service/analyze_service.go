package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/labstack/gommon/log"

	"debt-projection/domain"
	"debt-projection/repository"
)

// SnapshotSource produces the dataset the analyzer runs against.
type SnapshotSource interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
}

// AnalyzeService gates analysis behind a one-time data load. Until
// Initialize succeeds every Analyze call fails with ErrServiceNotReady.
type AnalyzeService struct {
	source SnapshotSource

	initMu   sync.Mutex
	analyzer atomic.Pointer[DebtAnalyzer]
}

func NewAnalyzeService(source SnapshotSource) *AnalyzeService {
	return &AnalyzeService{source: source}
}

// Initialize loads the snapshot. It is a no-op once it has succeeded.
func (s *AnalyzeService) Initialize(ctx context.Context) error {
	s.initMu.Lock()
	defer s.initMu.Unlock()

	if s.analyzer.Load() != nil {
		return nil
	}

	log.Infof("[AnalyzeService] Initializing and loading data")
	snap, err := s.source.Load(ctx)
	if err != nil {
		log.Errorf("[AnalyzeService] Data load failed: %v", err)
		return fmt.Errorf("failed to initialize service: %w", err)
	}

	repo := repository.NewDebtDataRepositoryMemory(snap)
	s.analyzer.Store(NewDebtAnalyzer(repo))
	log.Infof("[AnalyzeService] Data loaded successfully")
	return nil
}

func (s *AnalyzeService) IsReady() bool {
	return s.analyzer.Load() != nil
}

func (s *AnalyzeService) AnalyzeDebt(customerID string, productType domain.ProductType) (domain.AnalysisResult, error) {
	analyzer := s.analyzer.Load()
	if analyzer == nil {
		return domain.AnalysisResult{}, domain.ErrServiceNotReady
	}
	return analyzer.Analyze(customerID, productType)
}
