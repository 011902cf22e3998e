package scheduler

import (
	"context"
	"log"
	"sync"
	"time"
)

// Job - периодическая задача планировщика.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

type scheduledJob struct {
	Job
	mu sync.Mutex
}

// tryRun выполняет задачу, если её предыдущий запуск уже завершился.
// Два запуска одной задачи никогда не идут одновременно.
func (j *scheduledJob) tryRun(ctx context.Context, logger *log.Logger) bool {
	if !j.mu.TryLock() {
		logger.Printf("scheduler: job %s is still running, skipping this tick", j.Name)
		return false
	}
	defer j.mu.Unlock()

	if err := j.Run(ctx); err != nil {
		logger.Printf("scheduler: job %s failed: %v", j.Name, err)
	}
	return true
}

// Scheduler запускает периодические задачи движка ротации.
type Scheduler struct {
	Logger *log.Logger
	jobs   []*scheduledJob
	wg     sync.WaitGroup
}

// New создаёт новый экземпляр Scheduler.
func New(logger *log.Logger) *Scheduler {
	return &Scheduler{Logger: logger}
}

// AddJob регистрирует периодическую задачу. Вызывается до Start.
func (s *Scheduler) AddJob(name string, interval time.Duration, run func(ctx context.Context) error) {
	s.jobs = append(s.jobs, &scheduledJob{Job: Job{Name: name, Interval: interval, Run: run}})
}

// Start запускает все задачи. Каждая задача живёт в своей горутине и выполняется
// по тикеру до отмены контекста; пропущенные тики не накапливаются.
func (s *Scheduler) Start(ctx context.Context) {
	for _, job := range s.jobs {
		s.wg.Add(1)
		go func(j *scheduledJob) {
			defer s.wg.Done()

			ticker := time.NewTicker(j.Interval)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					j.tryRun(ctx, s.Logger)
				}
			}
		}(job)
	}
}

// Wait блокируется, пока все задачи не остановятся после отмены контекста.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}
