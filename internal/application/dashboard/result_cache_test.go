package dashboard_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion-api/internal/application/dashboard"
	"github.com/jhoicas/facturacion-api/internal/application/dto"
)

func counter(n *int) func(context.Context) (dto.DashboardSummaryDTO, error) {
	return func(context.Context) (dto.DashboardSummaryDTO, error) {
		*n++
		return dto.DashboardSummaryDTO{InvoiceCount: *n}, nil
	}
}

// Dentro del TTL compute se ejecuta como mucho una vez; con forceRefresh siempre.
func TestResultCache_ComputeUnaVezDentroDelTTL(t *testing.T) {
	clock := newFakeClock()
	cache := dashboard.NewResultCache(30 * time.Second).WithClock(clock.Now)
	key := dashboard.CacheKey{UserID: "7", Year: "2025", Period: "all"}
	ctx := context.Background()

	calls := 0
	for i := 0; i < 5; i++ {
		data, hit, err := cache.GetOrCompute(ctx, key, false, counter(&calls))
		require.NoError(t, err)
		assert.Equal(t, 1, data.InvoiceCount)
		assert.Equal(t, i > 0, hit, "solo la primera llamada calcula")
		clock.Advance(5 * time.Second)
	}
	assert.Equal(t, 1, calls)

	for i := 0; i < 3; i++ {
		_, hit, err := cache.GetOrCompute(ctx, key, true, counter(&calls))
		require.NoError(t, err)
		assert.False(t, hit)
	}
	assert.Equal(t, 4, calls, "forceRefresh recalcula siempre")
}

func TestResultCache_ExpiraTrasTTL(t *testing.T) {
	clock := newFakeClock()
	cache := dashboard.NewResultCache(30 * time.Second).WithClock(clock.Now)
	key := dashboard.CacheKey{UserID: "7", Year: "2025", Period: "q1"}
	ctx := context.Background()

	calls := 0
	_, _, _ = cache.GetOrCompute(ctx, key, false, counter(&calls))
	clock.Advance(29 * time.Second)
	_, hit, _ := cache.GetOrCompute(ctx, key, false, counter(&calls))
	assert.True(t, hit)

	clock.Advance(time.Second)
	data, hit, _ := cache.GetOrCompute(ctx, key, false, counter(&calls))
	assert.False(t, hit, "en now == expiry la entrada ya no es válida")
	assert.Equal(t, 2, data.InvoiceCount)
}

func TestResultCache_ClavesIndependientes(t *testing.T) {
	cache := dashboard.NewResultCache(time.Minute)
	ctx := context.Background()
	calls := 0

	_, _, _ = cache.GetOrCompute(ctx, dashboard.CacheKey{UserID: "7", Year: "2025", Period: "q1"}, false, counter(&calls))
	_, _, _ = cache.GetOrCompute(ctx, dashboard.CacheKey{UserID: "7", Year: "2025", Period: "q2"}, false, counter(&calls))
	_, _, _ = cache.GetOrCompute(ctx, dashboard.CacheKey{UserID: "8", Year: "2025", Period: "q1"}, false, counter(&calls))

	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, cache.Size())
}

func TestResultCache_ErrorNoSeGuarda(t *testing.T) {
	cache := dashboard.NewResultCache(time.Minute)
	key := dashboard.CacheKey{UserID: "7", Period: "all"}
	ctx := context.Background()

	_, _, err := cache.GetOrCompute(ctx, key, false, func(context.Context) (dto.DashboardSummaryDTO, error) {
		return dto.DashboardSummaryDTO{}, errStorage
	})
	require.ErrorIs(t, err, errStorage)
	assert.Zero(t, cache.Size())

	calls := 0
	_, hit, err := cache.GetOrCompute(ctx, key, false, counter(&calls))
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 1, calls)
}

func TestResultCache_ClearUser(t *testing.T) {
	cache := dashboard.NewResultCache(time.Minute)
	ctx := context.Background()
	calls := 0
	for _, p := range []string{"all", "q1", "m3"} {
		_, _, _ = cache.GetOrCompute(ctx, dashboard.CacheKey{UserID: "7", Year: "2025", Period: p}, false, counter(&calls))
	}
	_, _, _ = cache.GetOrCompute(ctx, dashboard.CacheKey{UserID: "8", Year: "2025", Period: "all"}, false, counter(&calls))

	assert.Equal(t, 3, cache.ClearUser("7"))
	assert.Equal(t, 0, cache.ClearUser("7"), "segunda limpieza no encuentra nada")
	assert.Equal(t, 1, cache.Size(), "las entradas de otros usuarios se conservan")
}

func TestResultCache_PurgeExpired(t *testing.T) {
	clock := newFakeClock()
	cache := dashboard.NewResultCache(30 * time.Second).WithClock(clock.Now)
	ctx := context.Background()
	calls := 0

	_, _, _ = cache.GetOrCompute(ctx, dashboard.CacheKey{UserID: "7", Period: "q1"}, false, counter(&calls))
	clock.Advance(20 * time.Second)
	_, _, _ = cache.GetOrCompute(ctx, dashboard.CacheKey{UserID: "7", Period: "q2"}, false, counter(&calls))
	clock.Advance(15 * time.Second)

	assert.Equal(t, 1, cache.PurgeExpired())
	assert.Equal(t, 1, cache.Size())
}

func TestResultCache_AccesoConcurrente(t *testing.T) {
	cache := dashboard.NewResultCache(time.Minute)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := dashboard.CacheKey{UserID: "7", Period: []string{"q1", "q2", "q3", "q4"}[i%4]}
			_, _, err := cache.GetOrCompute(ctx, key, i%5 == 0, func(context.Context) (dto.DashboardSummaryDTO, error) {
				return dto.DashboardSummaryDTO{InvoiceCount: i}, nil
			})
			assert.NoError(t, err)
			if i%10 == 0 {
				cache.PurgeExpired()
			}
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, cache.Size(), 4)
}

// Fallos simultáneos de la misma clave comparten un único cálculo.
func TestResultCache_FallosSimultaneosCalculanUnaVez(t *testing.T) {
	cache := dashboard.NewResultCache(time.Minute)
	key := dashboard.CacheKey{UserID: "7", Year: "2025", Period: "q2"}
	ctx := context.Background()

	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	compute := func(context.Context) (dto.DashboardSummaryDTO, error) {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-release
		return dto.DashboardSummaryDTO{InvoiceCount: 3}, nil
	}

	var wg sync.WaitGroup
	results := make([]dto.DashboardSummaryDTO, 20)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			data, _, err := cache.GetOrCompute(ctx, key, false, compute)
			assert.NoError(t, err)
			results[i] = data
		}(i)
	}
	<-started
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Equal(t, 3, r.InvoiceCount)
	}
}
