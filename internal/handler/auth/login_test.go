package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"affiliate-search/internal/cache"
	"affiliate-search/internal/database"
	"affiliate-search/internal/model"
	"affiliate-search/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func okCache() *cache.FakeCache {
	return &cache.FakeCache{
		SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("OK", nil)
		},
	}
}

func TestLoginHandler(t *testing.T) {

	// bind error
	e := echo.New()
	e.Binder = errBinder{}
	ctx, rec := newFormCtx(e, "")
	h := LoginHandler(&database.FakeDB{}, okCache())
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validate error
	e = echo.New()
	e.Validator = errValidator{}
	ctx, rec = newFormCtx(e, "email=a@b.com&password=b")
	h = LoginHandler(&database.FakeDB{}, okCache())
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// user not found
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newFormCtx(e, "email=a@b.com&password=b")
	h = LoginHandler(&database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return fakeUserRow{scanErr: pgx.ErrNoRows}
	}}, okCache())
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// wrong password
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newFormCtx(e, "email=a@b.com&password=b")
	badHash, _ := service.HashPassword("other")
	h = LoginHandler(&database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return fakeUserRow{user: model.User{PasswordHash: badHash, IsActive: true}}
	}}, okCache())
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// inactive user
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newFormCtx(e, "email=a@b.com&password=b")
	goodHash, _ := service.HashPassword("b")
	h = LoginHandler(&database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return fakeUserRow{user: model.User{PasswordHash: goodHash, IsActive: false}}
	}}, okCache())
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// issue token error (JWT_SECRET not set)
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newFormCtx(e, "email=a@b.com&password=b")
	t.Setenv("JWT_SECRET", "")
	h = LoginHandler(&database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return fakeUserRow{user: model.User{PasswordHash: goodHash, IsActive: true}}
	}}, okCache())
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// refresh token store error
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newFormCtx(e, "email=a@b.com&password=b")
	t.Setenv("JWT_SECRET", "s")
	h = LoginHandler(&database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return fakeUserRow{user: model.User{ID: "u-1", PasswordHash: goodHash, IsActive: true}}
	}}, &cache.FakeCache{SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
		return redis.NewStatusResult("", errors.New("set"))
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// success
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newFormCtx(e, "email=a@b.com&password=b")
	h = LoginHandler(&database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return fakeUserRow{user: model.User{ID: "u-1", PasswordHash: goodHash, IsActive: true}}
	}}, okCache())
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "access_token")
	require.Contains(t, rec.Body.String(), "refresh_token")
}
