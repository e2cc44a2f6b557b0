package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/BookABite/reservation-service/internal/domain"
	storage "github.com/BookABite/reservation-service/internal/infra/storage/blockedinterval"
	schedulestorage "github.com/BookABite/reservation-service/internal/infra/storage/schedule"
	"github.com/BookABite/reservation-service/internal/integrations/groupservice"
)

// Service управление рабочими часами и блокирующими интервалами юнита
type Service struct {
	scheduleRepo ScheduleRepository
	blockedRepo  BlockedIntervalRepository
	groupService GroupServiceClient
	txManager    TxManager
	log          Logger
}

// NewService создает новый сервис расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	blockedRepo BlockedIntervalRepository,
	groupService GroupServiceClient,
	txManager TxManager,
	log Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		blockedRepo:  blockedRepo,
		groupService: groupService,
		txManager:    txManager,
		log:          log,
	}
}

// GetWeek возвращает недельное расписание юнита.
// Если расписание не задано, возвращается расписание по умолчанию.
func (s *Service) GetWeek(ctx context.Context, unitID int64) (domain.WeekSchedule, error) {
	if _, err := s.checkUnit(ctx, unitID); err != nil {
		return nil, err
	}

	week, err := s.scheduleRepo.GetWeek(ctx, unitID)
	if err != nil {
		if errors.Is(err, schedulestorage.ErrScheduleNotFound) {
			return domain.DefaultWeekSchedule(), nil
		}
		s.log.Error("Failed to get schedule for unit_id=%d: %v", unitID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return week, nil
}

// ReplaceWeek заменяет недельное расписание юнита целиком.
// Расписание принимается только полным: ровно одно правило на каждый день
// недели. Доступ только менеджерам юнита.
func (s *Service) ReplaceWeek(ctx context.Context, unitID, userID int64, week domain.WeekSchedule) error {
	if err := s.checkManagerAccess(ctx, unitID, userID); err != nil {
		return err
	}

	if err := week.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	txErr := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.scheduleRepo.ReplaceWeek(txCtx, unitID, week)
	})
	if txErr != nil {
		s.log.Error("Failed to replace schedule for unit_id=%d: %v", unitID, txErr)
		return fmt.Errorf("%w: %v", ErrInternal, txErr)
	}

	s.log.Info("Schedule replaced: unit_id=%d, by user_id=%d", unitID, userID)
	return nil
}

// AddBlockedInterval создает блокирующий интервал.
// Интервал полуоткрытый [starts_at, ends_at) и требует непустую причину.
func (s *Service) AddBlockedInterval(ctx context.Context, userID int64, interval *domain.BlockedInterval) (*domain.BlockedInterval, error) {
	if err := s.checkManagerAccess(ctx, interval.UnitID, userID); err != nil {
		return nil, err
	}

	if err := interval.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}
	if len(interval.Reason) > domain.MaxBlockReasonLength {
		return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInterval, domain.MaxBlockReasonLength)
	}

	created, err := s.blockedRepo.Create(ctx, interval)
	if err != nil {
		s.log.Error("Failed to create blocked interval for unit_id=%d: %v", interval.UnitID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.log.Info("Blocked interval created: interval_id=%d, unit_id=%d, reason=%s",
		created.ID, created.UnitID, created.Reason)

	return created, nil
}

// RemoveBlockedInterval удаляет блокирующий интервал юнита.
// Существующие бронирования внутри интервала не затрагиваются: блокировка
// действует только на новые бронирования.
func (s *Service) RemoveBlockedInterval(ctx context.Context, unitID, userID, intervalID int64) error {
	if err := s.checkManagerAccess(ctx, unitID, userID); err != nil {
		return err
	}

	if err := s.blockedRepo.Delete(ctx, unitID, intervalID); err != nil {
		if errors.Is(err, storage.ErrIntervalNotFound) {
			return fmt.Errorf("%w: interval_id=%d", ErrIntervalNotFound, intervalID)
		}
		s.log.Error("Failed to delete blocked interval interval_id=%d: %v", intervalID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.log.Info("Blocked interval removed: interval_id=%d, unit_id=%d, by user_id=%d", intervalID, unitID, userID)
	return nil
}

// ListBlockedIntervals возвращает блокирующие интервалы юнита.
// Доступ только менеджерам юнита.
func (s *Service) ListBlockedIntervals(ctx context.Context, unitID, userID int64) ([]*domain.BlockedInterval, error) {
	if err := s.checkManagerAccess(ctx, unitID, userID); err != nil {
		return nil, err
	}

	intervals, err := s.blockedRepo.ListByUnit(ctx, unitID)
	if err != nil {
		s.log.Error("Failed to list blocked intervals for unit_id=%d: %v", unitID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return intervals, nil
}

func (s *Service) checkUnit(ctx context.Context, unitID int64) (*groupservice.Unit, error) {
	if unitID <= 0 {
		return nil, fmt.Errorf("%w: unit_id must be positive", ErrInvalidInput)
	}

	unit, err := s.groupService.GetUnit(ctx, unitID)
	if err != nil {
		if errors.Is(err, groupservice.ErrUnitNotFound) {
			return nil, fmt.Errorf("%w: unit_id=%d", ErrUnitNotFound, unitID)
		}
		s.log.Error("GroupService check failed for unit_id=%d: %v", unitID, err)
		return nil, fmt.Errorf("%w: group service unavailable: %v", ErrInternal, err)
	}

	return unit, nil
}

func (s *Service) checkManagerAccess(ctx context.Context, unitID, userID int64) error {
	unit, err := s.checkUnit(ctx, unitID)
	if err != nil {
		return err
	}

	if !unit.IsManager(userID) {
		return fmt.Errorf("%w: user_id=%d is not a manager of unit_id=%d", ErrAccessDenied, userID, unitID)
	}

	return nil
}
