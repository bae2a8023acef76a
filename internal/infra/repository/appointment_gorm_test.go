package repository

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/query"
)

func dryRun(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test password=test dbname=test sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func TestOverlapping_SQL(t *testing.T) {
	start := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)
	ap := &models.Appointment{ID: 7, BarberID: 2, AppointmentDatetime: start, DurationMinutes: 45, Status: "confirmed", Active: true}

	var count int64
	stmt := overlapping(dryRun(t), ap).Count(&count).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, `SELECT count(*) FROM "appointments"`)
	assert.Contains(t, sql, "barber_id = $1 AND active = $2 AND status NOT IN ($3,$4)")
	assert.Contains(t, sql, "id <> $5")
	assert.Contains(t, sql, "appointment_datetime < $6")
	assert.Contains(t, sql, "appointment_datetime + (duration_minutes * interval '1 minute') > $7")

	assert.Equal(t, []any{
		uint(2), true, "cancelled", "no_show",
		uint(7),
		start.Add(45 * time.Minute),
		start,
	}, stmt.Vars)
}

func TestOverlapping_NewAppointmentExcludesNothing(t *testing.T) {
	ap := &models.Appointment{BarberID: 2, AppointmentDatetime: time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC), DurationMinutes: 30}

	var count int64
	stmt := overlapping(dryRun(t), ap).Count(&count).Statement

	assert.Equal(t, uint(0), stmt.Vars[4])
}

func TestOccupiesBarber(t *testing.T) {
	for _, tc := range []struct {
		status string
		active bool
		want   bool
	}{
		{"pending", true, true},
		{"confirmed", true, true},
		{"completed", true, true},
		{"cancelled", true, false},
		{"no_show", true, false},
		{"pending", false, false},
		{"confirmed", false, false},
	} {
		ap := &models.Appointment{Status: tc.status, Active: tc.active}
		assert.Equal(t, tc.want, occupiesBarber(ap), "%s active=%v", tc.status, tc.active)
	}
}

func TestGormStore_ListQueries(t *testing.T) {
	store := NewGormStore[models.Appointment](dryRun(t), query.Appointments)
	ctx := context.Background()

	q, err := query.Parse(query.Appointments, url.Values{"status": {"pending"}, "ordering": {"-duration_minutes"}}, time.UTC)
	require.NoError(t, err)

	var total int64
	count := store.countQuery(ctx, q).Count(&total).Statement
	assert.Contains(t, count.SQL.String(), `SELECT count(*) FROM "appointments" WHERE appointments.status = $1`)
	assert.NotContains(t, count.SQL.String(), "ORDER BY")
	assert.NotContains(t, count.SQL.String(), "LIMIT")

	var items []models.Appointment
	page := store.pageQuery(ctx, q, query.Page{Number: 3, Size: 10}).Find(&items).Statement

	sql := page.SQL.String()
	assert.Contains(t, sql, "SELECT appointments.* FROM")
	assert.Contains(t, sql, "WHERE appointments.status = $1")
	assert.Contains(t, sql, "ORDER BY appointments.duration_minutes DESC,appointments.id ASC")
	assert.Contains(t, sql, "LIMIT")
	assert.Contains(t, sql, "OFFSET")
	assert.Equal(t, "pending", page.Vars[0])

	for _, rel := range query.Appointments.Preloads {
		assert.Contains(t, page.Preloads, rel)
	}
}
