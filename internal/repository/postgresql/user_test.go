package postgresql_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "github.com/coliride/backend/internal/db/mocks"
	"github.com/coliride/backend/internal/repository"
	"github.com/coliride/backend/internal/repository/postgresql"
)

// rowStub satisfies pgx.Row for ExecQueryRow expectations.
type rowStub struct {
	vals []interface{}
	err  error
}

func (r rowStub) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	for i, v := range r.vals {
		switch d := dest[i].(type) {
		case *bool:
			*d = v.(bool)
		case *int:
			*d = v.(int)
		case *float64:
			*d = v.(float64)
		}
	}
	return nil
}

func TestUserRepo_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	user := &repository.User{
		ID:        "u-1",
		Email:     "alice@example.com",
		Role:      repository.RoleSender,
		CreatedAt: now,
		UpdatedAt: now,
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().Exec(
			gomock.Any(), gomock.Any(),
			gomock.Eq(user.ID), gomock.Eq(user.Email),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(),
			gomock.Eq(user.Role), gomock.Eq(false),
			gomock.Eq(now), gomock.Eq(now),
		).Return(pgconn.CommandTag("INSERT 0 1"), nil)

		assert.NoError(t, repo.Create(ctx, user))
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		assert.ErrorIs(t, repo.Create(ctx, user), repository.ErrDuplicateEmail)
	})
}

func TestUserRepo_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq("u-1")).
			DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
				u := dest.(*repository.User)
				u.ID = "u-1"
				u.Email = "alice@example.com"
				return nil
			})

		user, err := repo.GetByID(ctx, "u-1")
		require.NoError(t, err)
		assert.Equal(t, "u-1", user.ID)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq("missing")).
			Return(pgx.ErrNoRows)

		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		boom := errors.New("connection reset")
		mockDB.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(boom)

		_, err := repo.GetByID(ctx, "u-1")
		assert.ErrorIs(t, err, boom)
	})
}

func TestUserRepo_Exists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewUserRepo(mockDB)

	mockDB.EXPECT().
		ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Eq("u-1")).
		Return(rowStub{vals: []interface{}{true}})

	exists, err := repo.Exists(context.Background(), "u-1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserRepo_ListFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewUserRepo(mockDB)

	verified := true
	params := repository.ListParams{
		Search:   "mart",
		Role:     repository.RoleCarrier,
		Verified: &verified,
		Page:     2,
		Limit:    10,
	}

	mockDB.EXPECT().
		Select(gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Eq("mart"), gomock.Eq(repository.RoleCarrier), gomock.Eq(true),
			gomock.Eq(10), gomock.Eq(10)).
		DoAndReturn(func(_ context.Context, _ interface{}, query string, _ ...interface{}) error {
			assert.Contains(t, query, "ILIKE")
			assert.Contains(t, query, "role = $2")
			assert.Contains(t, query, "is_verified = $3")
			assert.Contains(t, query, "ORDER BY created_at DESC")
			assert.True(t, strings.Contains(query, "LIMIT $4") && strings.Contains(query, "OFFSET $5"))
			return nil
		})

	_, err := repo.List(context.Background(), params)
	assert.NoError(t, err)
}

func TestUserRepo_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Eq("u-1")).
			Return(pgconn.CommandTag("DELETE 1"), nil)

		assert.NoError(t, repo.Delete(ctx, "u-1"))
	})

	t.Run("missing row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Eq("missing")).
			Return(pgconn.CommandTag("DELETE 0"), nil)

		assert.ErrorIs(t, repo.Delete(ctx, "missing"), repository.ErrObjectNotFound)
	})
}
