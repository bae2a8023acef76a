package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-api/internal/apperr"
	"github.com/BruksfildServices01/barbershop-api/internal/domain/domaintest"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase"
)

func ptr[T any](v T) *T { return &v }

type fixture struct {
	uc    *Schedules
	store *domaintest.MockStore[models.Schedule]
	dir   *domaintest.MockDirectory
}

func setup() fixture {
	store := new(domaintest.MockStore[models.Schedule])
	dir := new(domaintest.MockDirectory)
	return fixture{uc: New(store, dir, nil), store: store, dir: dir}
}

func TestSchedules_CreateNormalizesTimes(t *testing.T) {
	f := setup()
	ctx := context.Background()

	f.dir.On("AccountExists", ctx, uint(2)).Return(true, nil)
	f.store.On("Create", ctx, mock.MatchedBy(func(s *models.Schedule) bool {
		return s.BarberID == 2 && s.DayOfWeek == 3 && s.StartTime == "09:00:00" && s.EndTime == "17:00:00" && s.Active
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Schedule).ID = 1
	}).Return(nil).Once()
	f.store.On("Get", ctx, uint(1)).Return(&models.Schedule{ID: 1}, nil).Once()

	_, err := f.uc.Create(ctx, ScheduleInput{
		Barber:    ptr(uint(2)),
		DayOfWeek: ptr(3),
		StartTime: ptr("09:00"),
		EndTime:   ptr("17:00"),
	})

	require.NoError(t, err)
	f.store.AssertExpectations(t)
}

func TestSchedules_CreateReversedWindowRejected(t *testing.T) {
	f := setup()
	ctx := context.Background()

	f.dir.On("AccountExists", ctx, uint(2)).Return(true, nil)

	_, err := f.uc.Create(ctx, ScheduleInput{
		Barber:    ptr(uint(2)),
		DayOfWeek: ptr(3),
		StartTime: ptr("17:00"),
		EndTime:   ptr("09:00"),
	})

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("end_time"))
	f.store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSchedules_CreateMissingFields(t *testing.T) {
	f := setup()

	_, err := f.uc.Create(context.Background(), ScheduleInput{DayOfWeek: ptr(1)})

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)
}

func TestSchedules_PatchValidatedAgainstStoredWindow(t *testing.T) {
	f := setup()
	ctx := context.Background()

	existing := &models.Schedule{ID: 4, BarberID: 2, DayOfWeek: 1, StartTime: "09:00:00", EndTime: "12:00:00", Active: true}
	f.store.On("Get", ctx, uint(4)).Return(existing, nil)

	_, err := f.uc.Update(ctx, 4, ScheduleInput{StartTime: ptr("13:00")}, usecase.ModePatch)

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "end_time", verr.Fields[0].Field)
	f.store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSchedules_PatchBoundaryDays(t *testing.T) {
	for _, day := range []int{1, 7} {
		f := setup()
		ctx := context.Background()

		existing := &models.Schedule{ID: 4, BarberID: 2, DayOfWeek: 3, StartTime: "09:00:00", EndTime: "12:00:00"}
		f.store.On("Get", ctx, uint(4)).Return(existing, nil)
		f.store.On("Save", ctx, existing).Return(nil).Once()

		s, err := f.uc.Update(ctx, 4, ScheduleInput{DayOfWeek: ptr(day)}, usecase.ModePatch)
		require.NoError(t, err)
		assert.Equal(t, day, s.DayOfWeek)
	}
}

func TestSchedules_PutReportsMissingAndInvalidTogether(t *testing.T) {
	f := setup()
	ctx := context.Background()

	existing := &models.Schedule{ID: 4, BarberID: 2, DayOfWeek: 1, StartTime: "09:00:00", EndTime: "12:00:00", Active: true}
	f.store.On("Get", ctx, uint(4)).Return(existing, nil)
	f.dir.On("AccountExists", ctx, uint(2)).Return(true, nil)

	_, err := f.uc.Update(ctx, 4, ScheduleInput{
		Barber:    ptr(uint(2)),
		DayOfWeek: ptr(9),
		StartTime: ptr("10:00"),
	}, usecase.ModeReplace)

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("day_of_week"))
	assert.True(t, verr.Has("end_time"))
	assert.False(t, verr.Has("start_time"))
	assert.Len(t, verr.Fields, 2)
	f.store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSchedules_PutDoesNotInheritStoredTimes(t *testing.T) {
	f := setup()
	ctx := context.Background()

	existing := &models.Schedule{ID: 4, BarberID: 2, DayOfWeek: 1, StartTime: "09:00:00", EndTime: "12:00:00", Active: true}
	f.store.On("Get", ctx, uint(4)).Return(existing, nil)

	_, err := f.uc.Update(ctx, 4, ScheduleInput{EndTime: ptr("08:00")}, usecase.ModeReplace)

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"barber", "day_of_week", "start_time"}, fieldNames(verr))
}

func fieldNames(verr *apperr.ValidationError) []string {
	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}
