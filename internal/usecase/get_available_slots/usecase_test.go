package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BookABite/reservation-service/internal/config"
	"github.com/BookABite/reservation-service/internal/domain"
	schedulestorage "github.com/BookABite/reservation-service/internal/infra/storage/schedule"
	"github.com/BookABite/reservation-service/internal/integrations/groupservice"
	"github.com/BookABite/reservation-service/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByUnitWithFilter(_ context.Context, _ domain.UnitBookingsFilter) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

type fakeScheduleRepo struct {
	week domain.WeekSchedule
	err  error
}

func (f *fakeScheduleRepo) GetWeek(_ context.Context, _ int64) (domain.WeekSchedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.week == nil {
		return nil, schedulestorage.ErrScheduleNotFound
	}
	return f.week, nil
}

type fakeBlockedRepo struct {
	intervals []*domain.BlockedInterval
}

func (f *fakeBlockedRepo) ListOverlapping(_ context.Context, _ int64, _, _ time.Time) ([]*domain.BlockedInterval, error) {
	return f.intervals, nil
}

type fakeGroupService struct {
	unit *groupservice.Unit
	err  error
}

func (f *fakeGroupService) GetUnit(_ context.Context, _ int64) (*groupservice.Unit, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.unit, nil
}

type fakeTxManager struct {
	readOnlyCalls int
}

func (f *fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	f.readOnlyCalls++
	return fn(ctx)
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testPolicy() config.BookingPolicy {
	return config.BookingPolicy{
		MinDurationMinutes:     30,
		MaxDurationMinutes:     240,
		MaxPartySize:           20,
		SlotGranularityMinutes: 30,
		MinNoticeMinutes:       60,
	}
}

// openAllWeek расписание 10:00-22:00 без выходных
func openAllWeek() domain.WeekSchedule {
	week := make(domain.WeekSchedule, 0, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		week = append(week, domain.WorkingHourRule{
			DayOfWeek:   day,
			OpeningTime: "10:00",
			ClosingTime: "22:00",
		})
	}
	return week
}

func newTestUseCase(bookingRepo *fakeBookingRepo, scheduleRepo *fakeScheduleRepo, blockedRepo *fakeBlockedRepo) *UseCase {
	return NewUseCase(
		bookingRepo,
		scheduleRepo,
		blockedRepo,
		&fakeGroupService{unit: &groupservice.Unit{ID: 1, GroupID: 10}},
		&fakeTxManager{},
		&fakeClock{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)},
		testPolicy(),
		nopLogger{},
	)
}

func slotStrings(slots []types.TimeString) []string {
	result := make([]string, 0, len(slots))
	for _, s := range slots {
		result = append(result, s.String())
	}
	return result
}

// 2026-09-15 вторник
var testDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

func TestExecute_ExcludesConfirmedBookings(t *testing.T) {
	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, StartTime: "19:00", DurationMinutes: 120, Status: domain.StatusConfirmed},
	}}
	uc := newTestUseCase(bookingRepo, &fakeScheduleRepo{week: openAllWeek()}, &fakeBlockedRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		UnitID:             1,
		Date:               testDate,
		DurationMinutes:    120,
		GranularityMinutes: 60,
	})
	require.NoError(t, err)

	// Кандидаты 10:00..20:00; бронирование [19:00, 21:00) выбивает 18:00-20:00
	assert.Equal(t, []string{
		"10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00",
	}, slotStrings(resp.Slots))
}

func TestExecute_TouchingBookingDoesNotConflict(t *testing.T) {
	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, StartTime: "12:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
	}}
	uc := newTestUseCase(bookingRepo, &fakeScheduleRepo{week: openAllWeek()}, &fakeBlockedRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		UnitID:             1,
		Date:               testDate,
		DurationMinutes:    60,
		GranularityMinutes: 60,
	})
	require.NoError(t, err)

	slots := slotStrings(resp.Slots)
	// Слот, заканчивающийся ровно в начале бронирования, доступен
	assert.Contains(t, slots, "11:00")
	// Слот, начинающийся ровно в конце бронирования, доступен
	assert.Contains(t, slots, "13:00")
	assert.NotContains(t, slots, "12:00")
}

func TestExecute_ClosedDayReturnsEmptyList(t *testing.T) {
	week := openAllWeek()
	week[2].IsClosed = true // вторник

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{week: week}, &fakeBlockedRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		UnitID:             1,
		Date:               testDate,
		DurationMinutes:    60,
		GranularityMinutes: 60,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ExcludesBlockedIntervals(t *testing.T) {
	blockedRepo := &fakeBlockedRepo{intervals: []*domain.BlockedInterval{
		{
			ID:       1,
			StartsAt: time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC),
			EndsAt:   time.Date(2026, 9, 15, 14, 0, 0, 0, time.UTC),
			Reason:   "Manutenção",
		},
	}}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{week: openAllWeek()}, blockedRepo)

	resp, err := uc.Execute(context.Background(), &Request{
		UnitID:             1,
		Date:               testDate,
		DurationMinutes:    60,
		GranularityMinutes: 60,
	})
	require.NoError(t, err)

	slots := slotStrings(resp.Slots)
	assert.NotContains(t, slots, "12:00")
	assert.NotContains(t, slots, "13:00")
	// Касание границ блокировки допустимо
	assert.Contains(t, slots, "11:00")
	assert.Contains(t, slots, "14:00")
}

func TestExecute_SlotMustFitBeforeClosing(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{week: openAllWeek()}, &fakeBlockedRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		UnitID:             1,
		Date:               testDate,
		DurationMinutes:    90,
		GranularityMinutes: 30,
	})
	require.NoError(t, err)

	slots := slotStrings(resp.Slots)
	// Последний слот заканчивается ровно в закрытие: 20:30 + 90 = 22:00
	assert.Equal(t, "20:30", slots[len(slots)-1])
	assert.Equal(t, "10:00", slots[0])
}

func TestExecute_DefaultScheduleWhenNoneStored(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeBlockedRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		UnitID:             1,
		Date:               testDate,
		DurationMinutes:    60,
		GranularityMinutes: 60,
	})
	require.NoError(t, err)

	// Расписание по умолчанию 09:00-18:00
	slots := slotStrings(resp.Slots)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "17:00", slots[len(slots)-1])
}

func TestExecute_GranularityDefaultsToPolicy(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{week: openAllWeek()}, &fakeBlockedRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		UnitID:          1,
		Date:            testDate,
		DurationMinutes: 60,
	})
	require.NoError(t, err)
	assert.Equal(t, 30, resp.GranularityMinutes)
}

func TestExecute_Deterministic(t *testing.T) {
	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, StartTime: "13:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
	}}
	uc := newTestUseCase(bookingRepo, &fakeScheduleRepo{week: openAllWeek()}, &fakeBlockedRepo{})

	req := &Request{UnitID: 1, Date: testDate, DurationMinutes: 60, GranularityMinutes: 30}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}

func TestExecute_SameDayMinNoticeFilter(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{week: openAllWeek()},
		&fakeBlockedRepo{},
		&fakeGroupService{unit: &groupservice.Unit{ID: 1, GroupID: 10}},
		&fakeTxManager{},
		&fakeClock{now: time.Date(2026, 9, 15, 17, 0, 0, 0, time.UTC)},
		testPolicy(),
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		UnitID:             1,
		Date:               testDate,
		DurationMinutes:    60,
		GranularityMinutes: 60,
	})
	require.NoError(t, err)

	slots := slotStrings(resp.Slots)
	// Минимальное время предзаказа 60 минут от 17:00
	assert.NotContains(t, slots, "17:00")
	assert.Contains(t, slots, "18:00")
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{week: openAllWeek()}, &fakeBlockedRepo{})

	t.Run("past date", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			UnitID:             1,
			Date:               time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			DurationMinutes:    60,
			GranularityMinutes: 60,
		})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("duration below minimum", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			UnitID:             1,
			Date:               testDate,
			DurationMinutes:    15,
			GranularityMinutes: 60,
		})
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("duration above maximum", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			UnitID:             1,
			Date:               testDate,
			DurationMinutes:    300,
			GranularityMinutes: 60,
		})
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("granularity out of range", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			UnitID:             1,
			Date:               testDate,
			DurationMinutes:    60,
			GranularityMinutes: 3,
		})
		assert.ErrorIs(t, err, ErrInvalidGranularity)
	})
}

func TestExecute_UnitNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{week: openAllWeek()},
		&fakeBlockedRepo{},
		&fakeGroupService{err: groupservice.ErrUnitNotFound},
		&fakeTxManager{},
		&fakeClock{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)},
		testPolicy(),
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		UnitID:             42,
		Date:               testDate,
		DurationMinutes:    60,
		GranularityMinutes: 60,
	})
	assert.ErrorIs(t, err, ErrUnitNotFound)
}

func TestExecute_ReadsShareOneReadOnlyTransaction(t *testing.T) {
	txManager := &fakeTxManager{}
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{week: openAllWeek()},
		&fakeBlockedRepo{},
		&fakeGroupService{unit: &groupservice.Unit{ID: 1, GroupID: 10}},
		txManager,
		&fakeClock{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)},
		testPolicy(),
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		UnitID:             1,
		Date:               testDate,
		DurationMinutes:    60,
		GranularityMinutes: 60,
	})
	require.NoError(t, err)
	// Блокировки и бронирования читаются в одной read-only транзакции
	assert.Equal(t, 1, txManager.readOnlyCalls)

	// Для закрытого дня чтения не выполняются вовсе
	week := openAllWeek()
	week[2].IsClosed = true // вторник
	closedTx := &fakeTxManager{}
	ucClosed := NewUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{week: week},
		&fakeBlockedRepo{},
		&fakeGroupService{unit: &groupservice.Unit{ID: 1, GroupID: 10}},
		closedTx,
		&fakeClock{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)},
		testPolicy(),
		nopLogger{},
	)

	_, err = ucClosed.Execute(context.Background(), &Request{
		UnitID:             1,
		Date:               testDate,
		DurationMinutes:    60,
		GranularityMinutes: 60,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, closedTx.readOnlyCalls)
}

func TestExecute_CanceledBookingsDoNotBlock(t *testing.T) {
	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, StartTime: "12:00", DurationMinutes: 60, Status: domain.StatusCanceled},
		{ID: 2, StartTime: "14:00", DurationMinutes: 60, Status: domain.StatusFinished},
	}}
	uc := newTestUseCase(bookingRepo, &fakeScheduleRepo{week: openAllWeek()}, &fakeBlockedRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		UnitID:             1,
		Date:               testDate,
		DurationMinutes:    60,
		GranularityMinutes: 60,
	})
	require.NoError(t, err)

	slots := slotStrings(resp.Slots)
	assert.Contains(t, slots, "12:00")
	assert.Contains(t, slots, "14:00")
}
