package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"recipe-box/internal/database"
	"recipe-box/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func scanUser(u model.User) func(dest ...any) {
	return func(dest ...any) {
		*dest[0].(*int) = u.ID
		*dest[1].(*string) = u.Name
		*dest[2].(*string) = u.Email
		*dest[3].(*string) = u.PasswordHash
		*dest[4].(*bool) = u.IsActive
		*dest[5].(*bool) = u.IsStaff
		*dest[6].(*bool) = u.IsSuperuser
		*dest[7].(**time.Time) = u.LastLoginAt
		*dest[8].(*time.Time) = u.CreatedAt
	}
}

func TestGetUserByID(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	want := model.User{ID: 1, Name: "Alice", Email: "alice@example.com", PasswordHash: "h", IsActive: true, CreatedAt: now}

	db := &database.FakeDB{QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
		require.Equal(t, []any{1}, args)
		return fakeRow{scanFn: scanUser(want)}
	}}
	got, err := GetUserByID(ctx, db, 1)
	require.NoError(t, err)
	require.Equal(t, want, *got)

	db.QueryRowFn = func(context.Context, string, ...any) pgx.Row { return fakeRow{scanErr: pgx.ErrNoRows} }
	_, err = GetUserByID(ctx, db, 1)
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestGetUserByEmail(t *testing.T) {
	ctx := context.Background()
	want := model.User{ID: 2, Email: "Bob@example.com", IsStaff: true}

	db := &database.FakeDB{QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
		require.Equal(t, []any{"Bob@example.com"}, args)
		return fakeRow{scanFn: scanUser(want)}
	}}
	got, err := GetUserByEmail(ctx, db, "Bob@example.com")
	require.NoError(t, err)
	require.Equal(t, 2, got.ID)
	require.True(t, got.IsStaff)

	db.QueryRowFn = func(context.Context, string, ...any) pgx.Row { return fakeRow{scanErr: pgx.ErrNoRows} }
	_, err = GetUserByEmail(ctx, db, "none@example.com")
	require.Error(t, err)
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	var gotArgs []any
	db := &database.FakeDB{QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
		gotArgs = args
		return fakeRow{scanFn: func(dest ...any) {
			*dest[0].(*int) = 10
			*dest[1].(*time.Time) = now
		}}
	}}
	u := &model.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "h", IsActive: true}
	created, err := CreateUser(ctx, db, u)
	require.NoError(t, err)
	require.Equal(t, 10, created.ID)
	require.Equal(t, now, created.CreatedAt)
	require.Equal(t, []any{"Alice", "alice@example.com", "h", true, false, false}, gotArgs)

	db.QueryRowFn = func(context.Context, string, ...any) pgx.Row { return fakeRow{scanErr: errors.New("dup")} }
	_, err = CreateUser(ctx, db, u)
	require.Error(t, err)
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	u := &model.User{ID: 1, Name: "Alice", Email: "alice@example.com", IsActive: true}

	db := &database.FakeDB{ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
		require.Equal(t, []any{"Alice", "alice@example.com", true, false, false, 1}, args)
		return pgconn.NewCommandTag("UPDATE 1"), nil
	}}
	require.NoError(t, UpdateUser(ctx, db, u))

	db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.NewCommandTag("UPDATE 0"), nil
	}
	require.ErrorIs(t, UpdateUser(ctx, db, u), pgx.ErrNoRows)

	db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.CommandTag{}, errors.New("e")
	}
	require.Error(t, UpdateUser(ctx, db, u))
}

func TestUpdateUserPassword(t *testing.T) {
	ctx := context.Background()
	db := &database.FakeDB{ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
		require.Equal(t, []any{"newhash", 1}, args)
		return pgconn.NewCommandTag("UPDATE 1"), nil
	}}
	require.NoError(t, UpdateUserPassword(ctx, db, 1, "newhash"))

	db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.CommandTag{}, errors.New("e")
	}
	require.Error(t, UpdateUserPassword(ctx, db, 1, "newhash"))
}

func TestUpdateUserLastLogin(t *testing.T) {
	ctx := context.Background()
	at := time.Now().UTC()
	db := &database.FakeDB{ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
		require.Equal(t, []any{at, 3}, args)
		return pgconn.NewCommandTag("UPDATE 1"), nil
	}}
	require.NoError(t, UpdateUserLastLogin(ctx, db, 3, at))

	db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.CommandTag{}, errors.New("e")
	}
	require.Error(t, UpdateUserLastLogin(ctx, db, 3, at))
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	db := &database.FakeDB{ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
		require.Equal(t, []any{1}, args)
		return pgconn.NewCommandTag("DELETE 1"), nil
	}}
	require.NoError(t, DeleteUser(ctx, db, 1))

	db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.NewCommandTag("DELETE 0"), nil
	}
	require.ErrorIs(t, DeleteUser(ctx, db, 1), pgx.ErrNoRows)

	db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.CommandTag{}, errors.New("e")
	}
	require.Error(t, DeleteUser(ctx, db, 1))
}
