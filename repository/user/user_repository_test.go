package user

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShohjahonSohibov/Aberno/model"
)

func newRepoWithMock(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewUserRepository(sqlx.NewDb(db, "sqlmock")), mock
}

var userCols = []string{"id", "fullname", "phone", "email", "password_hash", "created_at", "updated_at"}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (id, fullname, phone, email, password_hash, created_at, updated_at)")).
		WithArgs(sqlmock.AnyArg(), "", "", "a@x.com", "hash", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Create(context.Background(), &model.UserEntity{Email: "a@x.com", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Len(t, got.ID, 36)
	assert.False(t, got.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec("INSERT INTO users").WillReturnError(errors.New("db down"))

	got, err := repo.Create(context.Background(), &model.UserEntity{Phone: "998901234567", PasswordHash: "hash"})
	assert.Nil(t, got)
	assert.EqualError(t, err, "db down")
}

func TestGet(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name     string
		filter   *model.UserFilter
		mockCall func(m sqlmock.Sqlmock)
		want     *model.UserEntity
		wantErr  bool
	}{
		{
			name:   "found by email",
			filter: &model.UserFilter{Email: "a@x.com"},
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("FROM users WHERE true AND email = ? LIMIT 1")).
					WithArgs("a@x.com").
					WillReturnRows(sqlmock.NewRows(userCols).AddRow("u-1", "Ali", "", "a@x.com", "hash", now, now))
			},
			want: &model.UserEntity{
				ID: "u-1", Fullname: "Ali", Email: "a@x.com", PasswordHash: "hash",
				Timestamps: model.Timestamps{CreatedAt: now, UpdatedAt: now},
			},
		},
		{
			name:   "id and phone are combined",
			filter: &model.UserFilter{ID: "u-2", Phone: "998901234567"},
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("WHERE true AND id = ? AND phone = ? LIMIT 1")).
					WithArgs("u-2", "998901234567").
					WillReturnRows(sqlmock.NewRows(userCols).AddRow("u-2", "", "998901234567", "", "hash", now, now))
			},
			want: &model.UserEntity{
				ID: "u-2", Phone: "998901234567", PasswordHash: "hash",
				Timestamps: model.Timestamps{CreatedAt: now, UpdatedAt: now},
			},
		},
		{
			name:   "not found",
			filter: &model.UserFilter{Email: "ghost@x.com"},
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("FROM users").WithArgs("ghost@x.com").WillReturnError(sql.ErrNoRows)
			},
		},
		{
			name:     "empty filter matches nothing",
			filter:   &model.UserFilter{},
			mockCall: func(m sqlmock.Sqlmock) {},
		},
		{
			name:   "db error",
			filter: &model.UserFilter{ID: "u-1"},
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("FROM users").WithArgs("u-1").WillReturnError(errors.New("db err"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepoWithMock(t)
			tt.mockCall(mock)

			got, err := repo.Get(context.Background(), tt.filter)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET fullname = ?, phone = NULLIF(?, ''), email = NULLIF(?, '')")).
		WithArgs("Ali", "998901234567", "", "hash", sqlmock.AnyArg(), "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), &model.UserEntity{ID: "u-1", Fullname: "Ali", Phone: "998901234567", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
