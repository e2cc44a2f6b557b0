package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BookABite/reservation-service/internal/config"
	"github.com/BookABite/reservation-service/internal/domain"
	schedulestorage "github.com/BookABite/reservation-service/internal/infra/storage/schedule"
	"github.com/BookABite/reservation-service/internal/integrations/groupservice"
	"github.com/BookABite/reservation-service/internal/integrations/notifier"
)

// fakeBookingRepo хранит бронирования в памяти; доступ сериализуется
// fakeTxManager, как это делает сериализуемая транзакция в Postgres
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []*domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	created := *booking
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.bookings = append(f.bookings, &created)
	return &created, nil
}

func (f *fakeBookingRepo) GetByUnitWithFilter(_ context.Context, filter domain.UnitBookingsFilter) ([]*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.UnitID != filter.UnitID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

type fakeScheduleRepo struct {
	week domain.WeekSchedule
}

func (f *fakeScheduleRepo) GetWeek(_ context.Context, _ int64) (domain.WeekSchedule, error) {
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

type fakeNotifier struct {
	mu     sync.Mutex
	events []*notifier.BookingEvent
}

func (f *fakeNotifier) NotifyBookingConfirmed(_ context.Context, event *notifier.BookingEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

// fakeTxManager сериализует проверку и вставку mutex'ом, имитируя
// сериализуемую транзакцию
type fakeTxManager struct {
	mu sync.Mutex
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
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

// 2026-09-15 вторник
var testDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

type testEnv struct {
	uc          *UseCase
	bookingRepo *fakeBookingRepo
	notifier    *fakeNotifier
}

func newTestEnv(scheduleRepo *fakeScheduleRepo, blockedRepo *fakeBlockedRepo) *testEnv {
	bookingRepo := &fakeBookingRepo{}
	notifierClient := &fakeNotifier{}

	uc := NewUseCase(
		bookingRepo,
		scheduleRepo,
		blockedRepo,
		&fakeGroupService{unit: &groupservice.Unit{ID: 1, GroupID: 10}},
		notifierClient,
		&fakeTxManager{},
		&fakeClock{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)},
		testPolicy(),
		nopLogger{},
	)

	return &testEnv{uc: uc, bookingRepo: bookingRepo, notifier: notifierClient}
}

func validRequest() *Request {
	return &Request{
		UnitID:          1,
		ReservationDate: testDate,
		StartTime:       "19:00",
		DurationMinutes: 90,
		AmountOfPeople:  4,
		CustomerName:    "Ana Souza",
		CustomerPhone:   "+5511999998888",
	}
}

func TestExecute_CreatesConfirmedBooking(t *testing.T) {
	env := newTestEnv(&fakeScheduleRepo{week: openAllWeek()}, &fakeBlockedRepo{})

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.BookingID)
	assert.Equal(t, int64(10), resp.GroupID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "19:00", resp.StartTime.String())
	assert.Equal(t, "20:30", resp.EndTime.String())

	require.Len(t, env.notifier.events, 1)
	assert.Equal(t, int64(1), env.notifier.events[0].BookingID)
}

func TestExecute_RejectsClosedDay(t *testing.T) {
	week := openAllWeek()
	week[2].IsClosed = true // вторник

	env := newTestEnv(&fakeScheduleRepo{week: week}, &fakeBlockedRepo{})

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrClosed)
	assert.Equal(t, domain.ReasonClosed, RejectionReasonFor(err))
}

func TestExecute_RejectsOutsideWorkingHours(t *testing.T) {
	env := newTestEnv(&fakeScheduleRepo{week: openAllWeek()}, &fakeBlockedRepo{})

	req := validRequest()
	req.StartTime = "21:00" // 21:00 + 90 минут выходит за закрытие 22:00
	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestExecute_AllowsBookingEndingAtClosing(t *testing.T) {
	env := newTestEnv(&fakeScheduleRepo{week: openAllWeek()}, &fakeBlockedRepo{})

	req := validRequest()
	req.StartTime = "20:30" // заканчивается ровно в 22:00
	_, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_RejectsBlockedInterval(t *testing.T) {
	blockedRepo := &fakeBlockedRepo{intervals: []*domain.BlockedInterval{
		{
			ID:       1,
			StartsAt: time.Date(2026, 9, 15, 18, 0, 0, 0, time.UTC),
			EndsAt:   time.Date(2026, 9, 15, 20, 0, 0, 0, time.UTC),
			Reason:   "Manutenção",
		},
	}}
	env := newTestEnv(&fakeScheduleRepo{week: openAllWeek()}, blockedRepo)

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBlocked)
	assert.Equal(t, domain.ReasonBlocked, RejectionReasonFor(err))
}

func TestExecute_AllowsTouchingBlockedInterval(t *testing.T) {
	blockedRepo := &fakeBlockedRepo{intervals: []*domain.BlockedInterval{
		{
			ID:       1,
			StartsAt: time.Date(2026, 9, 15, 17, 0, 0, 0, time.UTC),
			EndsAt:   time.Date(2026, 9, 15, 19, 0, 0, 0, time.UTC),
			Reason:   "Evento privado",
		},
	}}
	env := newTestEnv(&fakeScheduleRepo{week: openAllWeek()}, blockedRepo)

	// Бронирование начинается ровно в конце блокировки
	_, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestExecute_RejectsConflictingBooking(t *testing.T) {
	env := newTestEnv(&fakeScheduleRepo{week: openAllWeek()}, &fakeBlockedRepo{})

	_, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.StartTime = "20:00" // пересекается с [19:00, 20:30)
	_, err = env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, domain.ReasonConflict, RejectionReasonFor(err))
}

func TestExecute_AllowsTouchingBooking(t *testing.T) {
	env := newTestEnv(&fakeScheduleRepo{week: openAllWeek()}, &fakeBlockedRepo{})

	_, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.StartTime = "20:30" // начинается ровно в конце [19:00, 20:30)
	_, err = env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_RejectsInvalidPartySize(t *testing.T) {
	env := newTestEnv(&fakeScheduleRepo{week: openAllWeek()}, &fakeBlockedRepo{})

	req := validRequest()
	req.AmountOfPeople = 0
	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidPartySize)

	req = validRequest()
	req.AmountOfPeople = 21
	_, err = env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidPartySize)
	assert.Equal(t, domain.ReasonInvalidPartySize, RejectionReasonFor(err))
}

func TestExecute_RejectsInvalidDuration(t *testing.T) {
	env := newTestEnv(&fakeScheduleRepo{week: openAllWeek()}, &fakeBlockedRepo{})

	req := validRequest()
	req.DurationMinutes = 15
	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	req = validRequest()
	req.DurationMinutes = 300
	_, err = env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDuration)
	assert.Equal(t, domain.ReasonInvalidDuration, RejectionReasonFor(err))
}

func TestExecute_RejectsPastDate(t *testing.T) {
	env := newTestEnv(&fakeScheduleRepo{week: openAllWeek()}, &fakeBlockedRepo{})

	req := validRequest()
	req.ReservationDate = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_RejectsMissingCustomerData(t *testing.T) {
	env := newTestEnv(&fakeScheduleRepo{week: openAllWeek()}, &fakeBlockedRepo{})

	req := validRequest()
	req.CustomerName = "  "
	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.CustomerPhone = ""
	_, err = env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_UnitNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{week: openAllWeek()},
		&fakeBlockedRepo{},
		&fakeGroupService{err: groupservice.ErrUnitNotFound},
		&fakeNotifier{},
		&fakeTxManager{},
		&fakeClock{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)},
		testPolicy(),
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrUnitNotFound)
}

// Два конкурентных запроса на пересекающиеся интервалы: ровно один
// успешен, второй получает отклонение CONFLICT.
func TestExecute_ConcurrentOverlappingRequests(t *testing.T) {
	env := newTestEnv(&fakeScheduleRepo{week: openAllWeek()}, &fakeBlockedRepo{})

	first := validRequest()
	second := validRequest()
	second.StartTime = "19:30"
	second.CustomerName = "Bruno Lima"

	var wg sync.WaitGroup
	errs := make([]error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = env.uc.Execute(context.Background(), first)
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = env.uc.Execute(context.Background(), second)
	}()
	wg.Wait()

	succeeded := 0
	conflicts := 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case RejectionReasonFor(err) == domain.ReasonConflict:
			conflicts++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, conflicts)
	assert.Len(t, env.bookingRepo.bookings, 1)
}
