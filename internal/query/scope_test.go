package query

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

// dryRun renders SQL through the postgres dialector without a server.
func dryRun(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test password=test dbname=test sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func TestScope_ServicesPriceBandDescending(t *testing.T) {
	q, err := Parse(Services, url.Values{
		"price__gte": {"10"},
		"price__lte": {"50"},
		"ordering":   {"-price"},
	}, time.UTC)
	require.NoError(t, err)

	stmt := dryRun(t).
		Model(&models.Service{}).
		Scopes(q.Filter, q.Sort, Page{Number: 1, Size: 20}.Scope).
		Find(&[]models.Service{}).
		Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "SELECT services.* FROM")
	assert.Contains(t, sql, "services.price >= $1 AND services.price <= $2")
	assert.Contains(t, sql, "ORDER BY services.price DESC,services.id ASC")
	assert.Equal(t, []any{10.0, 50.0}, stmt.Vars[:2])
}

func TestScope_SearchJoinsAndLowercasesEveryField(t *testing.T) {
	q, err := Parse(Appointments, url.Values{"search": {"Ana"}}, time.UTC)
	require.NoError(t, err)

	stmt := dryRun(t).
		Model(&models.Appointment{}).
		Scopes(q.Filter, q.Sort).
		Find(&[]models.Appointment{}).
		Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "LEFT JOIN accounts AS client_account ON client_account.id = appointments.client_id")
	assert.Contains(t, sql, "LEFT JOIN accounts AS barber_account ON barber_account.id = appointments.barber_id")
	assert.Contains(t, sql, "LOWER(appointments.notes) LIKE $1 OR LOWER(client_account.username) LIKE $2 OR LOWER(barber_account.username) LIKE $3")
	assert.Equal(t, []any{"%ana%", "%ana%", "%ana%"}, stmt.Vars)
}

func TestScope_NoJoinWithoutSearch(t *testing.T) {
	q, err := Parse(Schedules, url.Values{"barber": {"4"}}, time.UTC)
	require.NoError(t, err)

	sql := dryRun(t).
		Model(&models.Schedule{}).
		Scopes(q.Filter).
		Find(&[]models.Schedule{}).
		Statement.SQL.String()

	assert.NotContains(t, sql, "JOIN")
	assert.Contains(t, sql, "schedules.barber_id = $1")
}

func TestScope_SearchTermsAreEscaped(t *testing.T) {
	q, err := Parse(Payments, url.Values{"search": {"50%_off"}}, time.UTC)
	require.NoError(t, err)

	stmt := dryRun(t).
		Model(&models.Payment{}).
		Scopes(q.Filter).
		Find(&[]models.Payment{}).
		Statement

	assert.Equal(t, []any{`%50\%\_off%`}, stmt.Vars)
}
