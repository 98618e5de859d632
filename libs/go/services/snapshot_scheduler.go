package services

import (
	"context"
	"sync"
	"time"

	"github.com/fiscalia/fiscalia-api/libs/go/db"
	"github.com/fiscalia/fiscalia-api/libs/go/logger"
	"github.com/fiscalia/fiscalia-api/libs/go/types/business"
	"go.uber.org/zap"
)

// SnapshotScheduler recomputes and stores the current-quarter cash-flow
// snapshot on a daily cadence, so dashboards and the liquidation countdown
// stay fresh without a request having to trigger the work.
type SnapshotScheduler struct {
	queries  db.Querier
	cashFlow *CashFlowService
	logger   *zap.Logger
	stopCh   chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewSnapshotScheduler creates a new snapshot scheduler.
func NewSnapshotScheduler(queries db.Querier) *SnapshotScheduler {
	return &SnapshotScheduler{
		queries:  queries,
		cashFlow: NewCashFlowService(),
		logger:   logger.Log,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the scheduled snapshot runs. A snapshot is computed
// immediately on startup, then once per day shortly after midnight.
func (s *SnapshotScheduler) Start() {
	s.logger.Info("Starting cash-flow snapshot scheduler")

	go s.computeSnapshot()

	s.wg.Add(1)
	go s.runDailySchedule()
}

// Stop gracefully shuts down the scheduler.
func (s *SnapshotScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Info("Stopping cash-flow snapshot scheduler")
		close(s.stopCh)
		s.wg.Wait()
	})
}

func (s *SnapshotScheduler) runDailySchedule() {
	defer s.wg.Done()

	now := time.Now()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 5, 0, 0, now.Location())

	select {
	case <-time.After(tomorrow.Sub(now)):
	case <-s.stopCh:
		return
	}

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.computeSnapshot()
		case <-s.stopCh:
			return
		}
	}
}

// computeSnapshot loads the current quarter's records, recomputes the
// snapshot and persists it.
func (s *SnapshotScheduler) computeSnapshot() {
	ctx := context.Background()
	now := time.Now()
	quarter := s.cashFlow.CurrentQuarter(now)

	sales, err := s.queries.ListSalesBetween(ctx, quarter.Start, quarter.End)
	if err != nil {
		s.logger.Error("Failed to load sales for snapshot", zap.Error(err))
		return
	}
	invoices, err := s.queries.ListInvoicesBetween(ctx, quarter.Start, quarter.End)
	if err != nil {
		s.logger.Error("Failed to load invoices for snapshot", zap.Error(err))
		return
	}
	fixedCosts, err := s.queries.ListFixedCosts(ctx)
	if err != nil {
		s.logger.Error("Failed to load fixed costs for snapshot", zap.Error(err))
		return
	}

	cfg := business.DefaultFiscalConfig()
	if stored, err := s.queries.GetFiscalConfig(ctx); err != nil {
		s.logger.Warn("Failed to load fiscal config, using defaults", zap.Error(err))
	} else if stored != nil {
		cfg = *stored
	}

	snapshot := s.cashFlow.Snapshot(now, sales, invoices, fixedCosts, cfg)
	if err := s.queries.SaveCashFlowSnapshot(ctx, snapshot); err != nil {
		s.logger.Error("Failed to store cash-flow snapshot", zap.Error(err))
		return
	}

	s.logger.Info("Stored cash-flow snapshot",
		zap.Int("year", snapshot.Quarter.Year),
		zap.Int("quarter", snapshot.Quarter.Quarter),
		zap.Float64("net_cash", snapshot.NetCash),
		zap.Int("days_to_filing", snapshot.NextLiquidation.DaysRemaining),
	)
}
