package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BookABite/reservation-service/internal/config"
	"github.com/BookABite/reservation-service/internal/domain"
	"github.com/BookABite/reservation-service/internal/infra/storage/schedule"
	"github.com/BookABite/reservation-service/internal/integrations/groupservice"
	"github.com/BookABite/reservation-service/pkg/ptr"
	"github.com/BookABite/reservation-service/pkg/types"
)

// UseCase для получения доступных слотов бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	blockedRepo  BlockedIntervalRepository
	groupService GroupServiceClient
	txManager    TxManager
	timeProvider TimeProvider
	policy       config.BookingPolicy
	log          Logger
}

// NewUseCase создает новый usecase для получения доступных слотов
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	blockedRepo BlockedIntervalRepository,
	groupService GroupServiceClient,
	txManager TxManager,
	timeProvider TimeProvider,
	policy config.BookingPolicy,
	log Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		blockedRepo:  blockedRepo,
		groupService: groupService,
		txManager:    txManager,
		timeProvider: timeProvider,
		policy:       policy,
		log:          log,
	}
}

// Execute возвращает доступные времена начала бронирования на указанную дату.
// Слот доступен, если интервал [start, start+duration) целиком лежит в рабочих
// часах дня, не пересекается с блокирующими интервалами и с подтвержденными
// бронированиями. Результат отсортирован по возрастанию и детерминирован:
// повторный запрос при неизменном состоянии дает тот же список.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.GranularityMinutes == 0 {
		req.GranularityMinutes = uc.policy.SlotGranularityMinutes
	}

	if err := uc.validateRequest(req); err != nil {
		return nil, err
	}

	// Проверяем существование юнита через GroupService
	if _, err := uc.groupService.GetUnit(ctx, req.UnitID); err != nil {
		if errors.Is(err, groupservice.ErrUnitNotFound) {
			return nil, fmt.Errorf("%w: unit_id=%d", ErrUnitNotFound, req.UnitID)
		}
		uc.log.Error("GroupService check failed for unit_id=%d: %v", req.UnitID, err)
		return nil, fmt.Errorf("%w: group service unavailable: %v", ErrInternal, err)
	}

	rule, err := uc.ruleForDate(ctx, req.UnitID, req.Date)
	if err != nil {
		return nil, err
	}

	slots, err := generateTimeSlots(rule, req.DurationMinutes, req.GranularityMinutes)
	if err != nil {
		return nil, err
	}

	// Для закрытого дня дальше считать нечего
	if len(slots) == 0 {
		return uc.buildResponse(req, slots), nil
	}

	slots = filterPastSlots(slots, req.Date, uc.timeProvider.Now(), uc.policy.MinNoticeMinutes)

	// Оба чтения выполняются в одной read-only транзакции: блокировки и
	// бронирования берутся из одного снимка данных
	if err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		if slots, err = uc.excludeBlocked(txCtx, req, slots); err != nil {
			return err
		}
		slots, err = uc.excludeBooked(txCtx, req, slots)
		return err
	}); err != nil {
		return nil, err
	}

	uc.log.Info("Available slots computed: unit_id=%d, date=%s, duration=%d, slots=%d",
		req.UnitID, req.Date.Format(domain.DateFormat), req.DurationMinutes, len(slots))

	return uc.buildResponse(req, slots), nil
}

// ruleForDate получает правило рабочих часов на день недели запрошенной даты.
// Если расписание для юнита не задано, используется расписание по умолчанию.
func (uc *UseCase) ruleForDate(ctx context.Context, unitID int64, date time.Time) (domain.WorkingHourRule, error) {
	week, err := uc.scheduleRepo.GetWeek(ctx, unitID)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			week = domain.DefaultWeekSchedule()
		} else {
			uc.log.Error("Failed to load schedule for unit_id=%d: %v", unitID, err)
			return domain.WorkingHourRule{}, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
		}
	}

	rule, ok := week.RuleFor(date.Weekday())
	if !ok {
		return domain.WorkingHourRule{}, fmt.Errorf("%w: no rule for %s", ErrInternal, date.Weekday())
	}

	return rule, nil
}

// excludeBlocked убирает слоты, пересекающиеся с блокирующими интервалами дня
func (uc *UseCase) excludeBlocked(ctx context.Context, req *Request, slots []types.TimeString) ([]types.TimeString, error) {
	dayStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	intervals, err := uc.blockedRepo.ListOverlapping(ctx, req.UnitID, dayStart, dayEnd)
	if err != nil {
		uc.log.Error("Failed to load blocked intervals for unit_id=%d: %v", req.UnitID, err)
		return nil, fmt.Errorf("%w: failed to load blocked intervals: %v", ErrInternal, err)
	}

	return filterBlockedSlots(slots, req.Date, req.DurationMinutes, intervals)
}

// excludeBooked убирает слоты, пересекающиеся с подтвержденными бронированиями
func (uc *UseCase) excludeBooked(ctx context.Context, req *Request, slots []types.TimeString) ([]types.TimeString, error) {
	bookings, err := uc.bookingRepo.GetByUnitWithFilter(ctx, domain.UnitBookingsFilter{
		UnitID: req.UnitID,
		Date:   &req.Date,
		Status: ptr.Ptr(domain.StatusConfirmed),
	})
	if err != nil {
		uc.log.Error("Failed to load bookings for unit_id=%d: %v", req.UnitID, err)
		return nil, fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
	}

	return filterConflictingSlots(slots, req.DurationMinutes, bookings)
}

func (uc *UseCase) buildResponse(req *Request, slots []types.TimeString) *Response {
	return &Response{
		UnitID:             req.UnitID,
		Date:               req.Date,
		DurationMinutes:    req.DurationMinutes,
		GranularityMinutes: req.GranularityMinutes,
		Slots:              slots,
	}
}
