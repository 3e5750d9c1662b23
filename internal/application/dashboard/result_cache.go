package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/facturacion-api/internal/application/dto"
)

// DefaultCacheTTL vida por defecto de un resumen cacheado.
const DefaultCacheTTL = 30 * time.Second

// CacheKey identifica un resumen: usuario + año + periodo normalizados.
type CacheKey struct {
	UserID string
	Year   string
	Period string
}

// String clave de singleflight; %q evita colisiones entre componentes.
func (k CacheKey) String() string {
	return fmt.Sprintf("%q/%q/%q", k.UserID, k.Year, k.Period)
}

type cacheEntry struct {
	data      dto.DashboardSummaryDTO
	timestamp time.Time
	expiry    time.Time
}

// ResultCache caché en memoria de resúmenes por clave, con expiración fija.
// Segura para uso concurrente. Los fallos simultáneos de una misma clave comparten
// un único cálculo; con forceRefresh cada llamada calcula y gana la última escritura.
type ResultCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[CacheKey]cacheEntry
	group   singleflight.Group
}

// NewResultCache crea la caché. ttl <= 0 usa DefaultCacheTTL.
func NewResultCache(ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ResultCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[CacheKey]cacheEntry),
	}
}

// WithClock sustituye el reloj (tests).
func (c *ResultCache) WithClock(now func() time.Time) *ResultCache {
	c.now = now
	return c
}

// GetOrCompute devuelve el resumen cacheado si sigue vigente y no se fuerza el refresco;
// si no, ejecuta compute y guarda el resultado. hit indica si vino de la caché.
// Un compute fallido no deja nada guardado.
func (c *ResultCache) GetOrCompute(
	ctx context.Context,
	key CacheKey,
	forceRefresh bool,
	compute func(ctx context.Context) (dto.DashboardSummaryDTO, error),
) (data dto.DashboardSummaryDTO, hit bool, err error) {
	if forceRefresh {
		data, err = c.computeAndStore(ctx, key, compute)
		return data, false, err
	}
	if data, ok := c.lookup(key); ok {
		return data, true, nil
	}

	v, err, _ := c.group.Do(key.String(), func() (any, error) {
		// otra llamada pudo guardar la entrada entre lookup y Do
		if data, ok := c.lookup(key); ok {
			return data, nil
		}
		return c.computeAndStore(ctx, key, compute)
	})
	if err != nil {
		return dto.DashboardSummaryDTO{}, false, err
	}
	return v.(dto.DashboardSummaryDTO), false, nil
}

func (c *ResultCache) lookup(key CacheKey) (dto.DashboardSummaryDTO, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && c.now().Before(e.expiry) {
		return e.data, true
	}
	return dto.DashboardSummaryDTO{}, false
}

func (c *ResultCache) computeAndStore(
	ctx context.Context,
	key CacheKey,
	compute func(ctx context.Context) (dto.DashboardSummaryDTO, error),
) (dto.DashboardSummaryDTO, error) {
	data, err := compute(ctx)
	if err != nil {
		return dto.DashboardSummaryDTO{}, err
	}
	ts := c.now()
	c.mu.Lock()
	c.entries[key] = cacheEntry{data: data, timestamp: ts, expiry: ts.Add(c.ttl)}
	c.mu.Unlock()
	return data, nil
}

// ClearUser elimina todas las entradas del usuario y devuelve cuántas había.
func (c *ResultCache) ClearUser(userID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for k := range c.entries {
		if k.UserID == userID {
			delete(c.entries, k)
			n++
		}
	}
	return n
}

// PurgeExpired elimina las entradas caducadas de cualquier usuario.
func (c *ResultCache) PurgeExpired() int {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for k, e := range c.entries {
		if !now.Before(e.expiry) {
			delete(c.entries, k)
			n++
		}
	}
	return n
}

// Size número de entradas guardadas, vigentes o no.
func (c *ResultCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
