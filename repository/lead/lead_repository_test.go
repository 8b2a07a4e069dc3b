package lead

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShohjahonSohibov/Aberno/constant"
	"github.com/ShohjahonSohibov/Aberno/model"
)

func newRepoWithMock(t *testing.T) (LeadRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewLeadRepository(sqlx.NewDb(db, "sqlmock")), mock
}

var leadCols = []string{"id", "name", "text", "phone", "email", "status", "is_active", "created_at", "updated_at"}

func TestList_StatusAndSearch(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now().UTC()

	where := "WHERE l.status = ? AND (LOWER(l.name) LIKE ? OR LOWER(l.text) LIKE ? OR LOWER(l.phone) LIKE ? OR LOWER(l.email) LIKE ?)"
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM leads l " + where)).
		WithArgs("new", "%99\\_%", "%99\\_%", "%99\\_%", "%99\\_%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(where + " ORDER BY l.created_at DESC, l.id DESC LIMIT ? OFFSET ?")).
		WithArgs("new", "%99\\_%", "%99\\_%", "%99\\_%", "%99\\_%", 10, 0).
		WillReturnRows(sqlmock.NewRows(leadCols).
			AddRow("l1", "Ali", "", "+99_1", "", "new", true, now, now))

	items, total, err := repo.List(context.Background(), model.ListFilter{Status: "new", Search: "99_"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, constant.LeadStatusNew, items[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_Missing(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM leads l WHERE l.id = ?")).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	lead, err := repo.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, lead)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE leads SET status = ?, updated_at = ? WHERE id = ?")).
		WithArgs(constant.LeadStatusCalled, sqlmock.AnyArg(), "l1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), "l1", constant.LeadStatusCalled))
	assert.NoError(t, mock.ExpectationsWereMet())
}
