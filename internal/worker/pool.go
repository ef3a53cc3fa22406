// Package worker runs export jobs on a fixed pool so concurrent exports
// cannot oversubscribe the encoder.
package worker

import (
	"fmt"
	"sync"

	"github.com/nickthelegend/podio-ai/internal/config"
)

// Job is a unit of work the pool executes.
type Job interface {
	Execute() error
	ID() string
}

// Worker pulls jobs from a shared pool of job channels.
type Worker struct {
	ID         int
	WorkerPool chan chan Job
	JobChannel chan Job
	Quit       chan bool
	Wg         *sync.WaitGroup
}

// NewWorker creates a new Worker registered against the given pool.
func NewWorker(id int, workerPool chan chan Job, wg *sync.WaitGroup) Worker {
	return Worker{
		ID:         id,
		WorkerPool: workerPool,
		JobChannel: make(chan Job),
		Quit:       make(chan bool),
		Wg:         wg,
	}
}

// Start makes the Worker listen for jobs on its JobChannel.
func (w Worker) Start() {
	w.Wg.Add(1)
	go func() {
		defer w.Wg.Done()
		for {
			w.WorkerPool <- w.JobChannel

			select {
			case job := <-w.JobChannel:
				log := config.Log.WithFields(map[string]interface{}{
					"worker": w.ID,
					"job_id": job.ID(),
				})
				log.Info("Worker started job")
				if err := job.Execute(); err != nil {
					log.WithError(err).Error("Worker job failed")
				} else {
					log.Info("Worker finished job")
				}
			case <-w.Quit:
				return
			}
		}
	}()
}

// Stop signals the worker to stop processing new jobs.
func (w Worker) Stop() {
	go func() {
		w.Quit <- true
	}()
}

// Dispatcher manages a pool of workers and dispatches jobs to them.
type Dispatcher struct {
	MaxWorkers int
	WorkerPool chan chan Job
	JobQueue   chan Job
	Workers    []Worker
	Wg         sync.WaitGroup
	Quit       chan bool
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(maxWorkers int, jobQueueSize int) *Dispatcher {
	return &Dispatcher{
		MaxWorkers: maxWorkers,
		WorkerPool: make(chan chan Job, maxWorkers),
		JobQueue:   make(chan Job, jobQueueSize),
		Workers:    make([]Worker, 0, maxWorkers),
		Quit:       make(chan bool),
	}
}

// Run starts the dispatcher and its workers.
func (d *Dispatcher) Run() {
	config.Log.WithField("workers", d.MaxWorkers).Info("Dispatcher starting")
	for i := 1; i <= d.MaxWorkers; i++ {
		worker := NewWorker(i, d.WorkerPool, &d.Wg)
		d.Workers = append(d.Workers, worker)
		worker.Start()
	}
	go d.dispatch()
}

func (d *Dispatcher) dispatch() {
	for {
		select {
		case job := <-d.JobQueue:
			go func(job Job) {
				jobChannel := <-d.WorkerPool
				jobChannel <- job
			}(job)
		case <-d.Quit:
			return
		}
	}
}

// SubmitJob adds a job to the queue without blocking. A full queue is an
// error the caller surfaces to the client instead of stalling the request.
func (d *Dispatcher) SubmitJob(job Job) error {
	select {
	case d.JobQueue <- job:
		config.Log.WithField("job_id", job.ID()).Info("Job submitted to queue")
		return nil
	default:
		return fmt.Errorf("job queue is full")
	}
}

// Stop gracefully shuts down the dispatcher and all its workers.
func (d *Dispatcher) Stop() {
	d.Quit <- true
	for _, worker := range d.Workers {
		worker.Stop()
	}
	d.Wg.Wait()
	close(d.JobQueue)
	close(d.WorkerPool)
	config.Log.Info("Dispatcher shut down")
}
