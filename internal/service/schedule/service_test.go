package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BookABite/reservation-service/internal/domain"
	blockedstorage "github.com/BookABite/reservation-service/internal/infra/storage/blockedinterval"
	schedulestorage "github.com/BookABite/reservation-service/internal/infra/storage/schedule"
	"github.com/BookABite/reservation-service/internal/integrations/groupservice"
)

type fakeScheduleRepo struct {
	week     domain.WeekSchedule
	replaced domain.WeekSchedule
}

func (f *fakeScheduleRepo) GetWeek(_ context.Context, _ int64) (domain.WeekSchedule, error) {
	if f.week == nil {
		return nil, schedulestorage.ErrScheduleNotFound
	}
	return f.week, nil
}

func (f *fakeScheduleRepo) ReplaceWeek(_ context.Context, _ int64, week domain.WeekSchedule) error {
	f.replaced = week
	return nil
}

type fakeBlockedRepo struct {
	intervals []*domain.BlockedInterval
	deleted   []int64
	nextID    int64
}

func (f *fakeBlockedRepo) Create(_ context.Context, interval *domain.BlockedInterval) (*domain.BlockedInterval, error) {
	f.nextID++
	created := *interval
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.intervals = append(f.intervals, &created)
	return &created, nil
}

func (f *fakeBlockedRepo) Delete(_ context.Context, _ int64, id int64) error {
	for _, interval := range f.intervals {
		if interval.ID == id {
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return blockedstorage.ErrIntervalNotFound
}

func (f *fakeBlockedRepo) ListByUnit(_ context.Context, _ int64) ([]*domain.BlockedInterval, error) {
	return f.intervals, nil
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

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func managedUnit() *groupservice.Unit {
	return &groupservice.Unit{ID: 1, GroupID: 10, ManagerIDs: []int64{100}}
}

func newTestService(scheduleRepo *fakeScheduleRepo, blockedRepo *fakeBlockedRepo, group *fakeGroupService) *Service {
	return NewService(scheduleRepo, blockedRepo, group, fakeTxManager{}, nopLogger{})
}

func TestService_GetWeek(t *testing.T) {
	t.Run("returns stored schedule", func(t *testing.T) {
		week := domain.DefaultWeekSchedule()
		week[1].OpeningTime = "08:00"
		svc := newTestService(&fakeScheduleRepo{week: week}, &fakeBlockedRepo{}, &fakeGroupService{unit: managedUnit()})

		result, err := svc.GetWeek(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, week, result)
	})

	t.Run("falls back to default schedule", func(t *testing.T) {
		svc := newTestService(&fakeScheduleRepo{}, &fakeBlockedRepo{}, &fakeGroupService{unit: managedUnit()})

		result, err := svc.GetWeek(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultWeekSchedule(), result)
	})

	t.Run("unit not found", func(t *testing.T) {
		svc := newTestService(&fakeScheduleRepo{}, &fakeBlockedRepo{}, &fakeGroupService{err: groupservice.ErrUnitNotFound})

		_, err := svc.GetWeek(context.Background(), 42)
		assert.ErrorIs(t, err, ErrUnitNotFound)
	})
}

func TestService_ReplaceWeek(t *testing.T) {
	t.Run("manager replaces full week", func(t *testing.T) {
		repo := &fakeScheduleRepo{}
		svc := newTestService(repo, &fakeBlockedRepo{}, &fakeGroupService{unit: managedUnit()})

		week := domain.DefaultWeekSchedule()
		require.NoError(t, svc.ReplaceWeek(context.Background(), 1, 100, week))
		assert.Equal(t, week, repo.replaced)
	})

	t.Run("rejects incomplete week", func(t *testing.T) {
		svc := newTestService(&fakeScheduleRepo{}, &fakeBlockedRepo{}, &fakeGroupService{unit: managedUnit()})

		err := svc.ReplaceWeek(context.Background(), 1, 100, domain.DefaultWeekSchedule()[:5])
		assert.ErrorIs(t, err, ErrInvalidSchedule)
	})

	t.Run("non-manager denied", func(t *testing.T) {
		svc := newTestService(&fakeScheduleRepo{}, &fakeBlockedRepo{}, &fakeGroupService{unit: managedUnit()})

		err := svc.ReplaceWeek(context.Background(), 1, 999, domain.DefaultWeekSchedule())
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestService_BlockedIntervals(t *testing.T) {
	interval := &domain.BlockedInterval{
		UnitID:   1,
		StartsAt: time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2026, 9, 15, 14, 0, 0, 0, time.UTC),
		Reason:   "Manutenção",
	}

	t.Run("manager adds interval", func(t *testing.T) {
		repo := &fakeBlockedRepo{}
		svc := newTestService(&fakeScheduleRepo{}, repo, &fakeGroupService{unit: managedUnit()})

		created, err := svc.AddBlockedInterval(context.Background(), 100, interval)
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
	})

	t.Run("rejects inverted interval", func(t *testing.T) {
		svc := newTestService(&fakeScheduleRepo{}, &fakeBlockedRepo{}, &fakeGroupService{unit: managedUnit()})

		inverted := *interval
		inverted.StartsAt, inverted.EndsAt = inverted.EndsAt, inverted.StartsAt
		_, err := svc.AddBlockedInterval(context.Background(), 100, &inverted)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("rejects blank reason", func(t *testing.T) {
		svc := newTestService(&fakeScheduleRepo{}, &fakeBlockedRepo{}, &fakeGroupService{unit: managedUnit()})

		blank := *interval
		blank.Reason = "  "
		_, err := svc.AddBlockedInterval(context.Background(), 100, &blank)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("manager removes interval", func(t *testing.T) {
		repo := &fakeBlockedRepo{}
		svc := newTestService(&fakeScheduleRepo{}, repo, &fakeGroupService{unit: managedUnit()})

		created, err := svc.AddBlockedInterval(context.Background(), 100, interval)
		require.NoError(t, err)

		require.NoError(t, svc.RemoveBlockedInterval(context.Background(), 1, 100, created.ID))
		assert.Equal(t, []int64{created.ID}, repo.deleted)
	})

	t.Run("removing missing interval", func(t *testing.T) {
		svc := newTestService(&fakeScheduleRepo{}, &fakeBlockedRepo{}, &fakeGroupService{unit: managedUnit()})

		err := svc.RemoveBlockedInterval(context.Background(), 1, 100, 42)
		assert.ErrorIs(t, err, ErrIntervalNotFound)
	})
}
