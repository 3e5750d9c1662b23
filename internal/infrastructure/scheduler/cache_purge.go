package scheduler

import "github.com/rs/zerolog"

// Purger lo cumple la caché de resultados del dashboard.
type Purger interface {
	PurgeExpired() int
}

// CachePurgeJob elimina de la caché los resúmenes caducados para que no se acumulen
// entradas de usuarios que ya no consultan.
type CachePurgeJob struct {
	cache Purger
	log   zerolog.Logger
}

// NewCachePurgeJob crea la tarea de purga.
func NewCachePurgeJob(cache Purger, log zerolog.Logger) *CachePurgeJob {
	return &CachePurgeJob{cache: cache, log: log.With().Str("job", "cache_purge").Logger()}
}

// Name nombre de la tarea.
func (j *CachePurgeJob) Name() string { return "cache_purge" }

// Run purga las entradas expiradas.
func (j *CachePurgeJob) Run() error {
	if n := j.cache.PurgeExpired(); n > 0 {
		j.log.Debug().Int("purged", n).Msg("entradas expiradas eliminadas")
	}
	return nil
}
