package services

import (
	"context"
	"fmt"
	"time"

	"sustainshare-api/models"
	"sustainshare-api/ports"
)

// DonationLogService is a passthrough to the donation log repository.
type DonationLogService struct {
	logRepo ports.DonationLogRepository
}

var _ ports.DonationLogService = (*DonationLogService)(nil)

func NewDonationLogService(logRepo ports.DonationLogRepository) *DonationLogService {
	return &DonationLogService{logRepo: logRepo}
}

func (s *DonationLogService) Save(ctx context.Context, log models.DonationLog) (*models.DonationLog, error) {
	log.ID = 0
	if log.DonatedAt.IsZero() {
		log.DonatedAt = time.Now()
	}
	saved, err := s.logRepo.Save(ctx, &log)
	if err != nil {
		return nil, fmt.Errorf("save donation log: %w", err)
	}
	return saved, nil
}

func (s *DonationLogService) List(ctx context.Context) ([]models.DonationLog, error) {
	return s.logRepo.FindAll(ctx)
}

func (s *DonationLogService) Get(ctx context.Context, id uint) (*models.DonationLog, error) {
	return s.logRepo.FindByID(ctx, id)
}

func (s *DonationLogService) Delete(ctx context.Context, id uint) error {
	return s.logRepo.DeleteByID(ctx, id)
}
