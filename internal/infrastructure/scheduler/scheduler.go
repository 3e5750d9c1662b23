// Package scheduler ejecuta tareas periódicas en segundo plano con robfig/cron.
package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Job tarea programada.
type Job interface {
	Run() error
	Name() string
}

// Scheduler envoltorio sobre cron con logging por ejecución.
type Scheduler struct {
	cron *cron.Cron
	log  zerolog.Logger
}

// New crea el scheduler. Las expresiones admiten segundos y descriptores ("@every 1m").
func New(log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithSeconds()),
		log:  log.With().Str("component", "scheduler").Logger(),
	}
}

// Start arranca el scheduler en su propia goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Msg("scheduler iniciado")
}

// Stop detiene el scheduler y espera a que terminen las tareas en curso.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info().Msg("scheduler detenido")
}

// AddJob registra job con la expresión cron schedule.
func (s *Scheduler) AddJob(schedule string, job Job) error {
	_, err := s.cron.AddFunc(schedule, func() { s.run(job) })
	if err != nil {
		return fmt.Errorf("scheduler: expresión %q para %s: %w", schedule, job.Name(), err)
	}
	s.log.Info().Str("schedule", schedule).Str("job", job.Name()).Msg("tarea registrada")
	return nil
}

// RunNow ejecuta job fuera de calendario.
func (s *Scheduler) RunNow(job Job) error {
	return job.Run()
}

func (s *Scheduler) run(job Job) {
	if err := job.Run(); err != nil {
		s.log.Error().Err(err).Str("job", job.Name()).Msg("tarea fallida")
		return
	}
	s.log.Debug().Str("job", job.Name()).Msg("tarea completada")
}
