package scheduler_test

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion-api/internal/application/dashboard"
	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/infrastructure/scheduler"
)

type countingJob struct {
	runs atomic.Int32
	err  error
}

func (j *countingJob) Name() string { return "contador" }
func (j *countingJob) Run() error {
	j.runs.Add(1)
	return j.err
}

func TestScheduler_ExpresionInvalida(t *testing.T) {
	s := scheduler.New(zerolog.Nop())
	err := s.AddJob("cada minuto", &countingJob{})
	require.Error(t, err)
}

func TestScheduler_EjecutaSegunCalendario(t *testing.T) {
	s := scheduler.New(zerolog.Nop())
	job := &countingJob{}
	require.NoError(t, s.AddJob("@every 1s", job))

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool { return job.runs.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)
}

func TestScheduler_RegistraFallos(t *testing.T) {
	var buf bytes.Buffer
	s := scheduler.New(zerolog.New(&buf))
	job := &countingJob{err: errors.New("boom")}
	require.NoError(t, s.AddJob("@every 1s", job))

	s.Start()
	assert.Eventually(t, func() bool { return job.runs.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)
	s.Stop()

	assert.Contains(t, buf.String(), "tarea fallida")
}

func TestCachePurgeJob(t *testing.T) {
	now := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	cache := dashboard.NewResultCache(30 * time.Second).WithClock(func() time.Time { return now })
	compute := func(context.Context) (dto.DashboardSummaryDTO, error) { return dto.DashboardSummaryDTO{}, nil }
	_, _, _ = cache.GetOrCompute(context.Background(), dashboard.CacheKey{UserID: "7", Period: "all"}, false, compute)
	require.Equal(t, 1, cache.Size())

	job := scheduler.NewCachePurgeJob(cache, zerolog.Nop())
	require.NoError(t, job.Run())
	assert.Equal(t, 1, cache.Size(), "la entrada sigue vigente")

	now = now.Add(time.Minute)
	s := scheduler.New(zerolog.Nop())
	require.NoError(t, s.RunNow(job))
	assert.Zero(t, cache.Size())
}
