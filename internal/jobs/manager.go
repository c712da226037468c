package jobs

import (
	"context"
	"sync"
	"time"
)

type job struct {
	interval time.Duration
	run      func()
}

// Manager runs registered jobs on fixed intervals until the context
// is cancelled.
type Manager struct {
	jobs []job
}

func New() *Manager {
	return &Manager{}
}

func (m *Manager) Register(interval time.Duration, run func()) {
	m.jobs = append(m.jobs, job{interval: interval, run: run})
}

func (m *Manager) Start(ctx context.Context) {

	var wg sync.WaitGroup

	for _, j := range m.jobs {
		wg.Add(1)

		go func(j job) {
			defer wg.Done()

			ticker := time.NewTicker(j.interval)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					j.run()
				}
			}
		}(j)
	}

	wg.Wait()
}
