package affiliate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"affiliate-search/internal/cache"
	"affiliate-search/internal/database"
	"affiliate-search/internal/dto"
	"affiliate-search/internal/model"
	"affiliate-search/internal/worker"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type fakeCharityRows struct {
	charities []model.Charity
	idx       int
}

func (r *fakeCharityRows) Close()                                       {}
func (r *fakeCharityRows) Err() error                                   { return nil }
func (r *fakeCharityRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeCharityRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeCharityRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeCharityRows) RawValues() [][]byte                          { return nil }
func (r *fakeCharityRows) Conn() *pgx.Conn                              { return nil }
func (r *fakeCharityRows) Next() bool                                   { return r.idx < len(r.charities) }

func (r *fakeCharityRows) Scan(dest ...any) error {
	ch := r.charities[r.idx]
	r.idx++
	*dest[0].(*string) = ch.ID
	*dest[1].(*string) = ch.Name
	*dest[2].(*string) = ch.Description
	*dest[3].(*string) = ch.Website
	return nil
}

func missCache() *cache.FakeCache {
	return &cache.FakeCache{
		GetFn: func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("", redis.Nil)
		},
		SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("OK", nil)
		},
	}
}

func TestCharitiesHandler(t *testing.T) {
	samples := []model.Charity{
		{ID: "c1", Name: "Clean Oceans Fund", Description: "a", Website: "w1"},
		{ID: "c2", Name: "Global Literacy Project", Description: "b", Website: "w2"},
	}
	e := echo.New()

	// 快取命中，不碰資料庫
	cached, _ := json.Marshal([]dto.CharityResponse{{ID: "c1", Name: "Cached"}})
	ctx, rec := newJSONCtx(e, http.MethodGet, "/affiliate/charities", "")
	rdb := &cache.FakeCache{GetFn: func(_ context.Context, key string) *redis.StringCmd {
		require.Equal(t, charitiesCacheKey, key)
		return redis.NewStringResult(string(cached), nil)
	}}
	require.NoError(t, CharitiesHandler(&database.FakeDB{}, rdb, &worker.FakePool{})(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Cached")

	// 快取內容損毀時回退到資料庫
	ctx, rec = newJSONCtx(e, http.MethodGet, "/affiliate/charities", "")
	rdb = missCache()
	rdb.GetFn = func(context.Context, string) *redis.StringCmd {
		return redis.NewStringResult("{not json", nil)
	}
	db := &database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
		return &fakeCharityRows{charities: samples}, nil
	}}
	require.NoError(t, CharitiesHandler(db, rdb, &worker.FakePool{})(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Clean Oceans Fund")

	// 資料庫錯誤
	ctx, rec = newJSONCtx(e, http.MethodGet, "/affiliate/charities", "")
	db = &database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
		return nil, errors.New("query")
	}}
	require.NoError(t, CharitiesHandler(db, missCache(), &worker.FakePool{})(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// 未命中：查資料庫、回應、並由 worker 補快取
	ctx, rec = newJSONCtx(e, http.MethodGet, "/affiliate/charities", "")
	var setKey string
	var setVal []byte
	var setTTL time.Duration
	rdb = missCache()
	rdb.SetFn = func(_ context.Context, key string, val any, ttl time.Duration) *redis.StatusCmd {
		setKey = key
		setVal = val.([]byte)
		setTTL = ttl
		return redis.NewStatusResult("OK", nil)
	}
	db = &database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
		return &fakeCharityRows{charities: samples}, nil
	}}
	require.NoError(t, CharitiesHandler(db, rdb, &worker.FakePool{})(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, charitiesCacheKey, setKey)
	require.Equal(t, charitiesCacheTTL, setTTL)
	var filled []dto.CharityResponse
	require.NoError(t, json.Unmarshal(setVal, &filled))
	require.Len(t, filled, 2)
	require.Equal(t, "c1", filled[0].ID)
	require.Equal(t, "c2", filled[1].ID)
}
