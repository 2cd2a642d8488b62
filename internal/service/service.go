package service

import (
	"github.com/hance08/fbar/internal/config"
	"github.com/hance08/fbar/internal/source"
	"github.com/hance08/fbar/internal/store"
	"go.uber.org/zap"
)

type Service struct {
	Account *AccountService
	Report  *ReportService
	Sync    *SyncService
	Config  *config.Config
}

// NewService wires the services around src. upstream is the remote source a
// sync copies from into ledger; it may be nil when no credential is set.
func NewService(src, upstream source.AccountSource, ledger store.Repository, cfg *config.Config, logger *zap.Logger) *Service {
	return &Service{
		Account: NewAccountService(src),
		Report:  NewReportService(src, cfg, logger),
		Sync:    NewSyncService(upstream, ledger, logger),
		Config:  cfg,
	}
}
