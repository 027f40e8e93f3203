package parallel

import (
	"errors"
	"fmt"
	"sync"
)

// CreateJobQueue starts poolSize workers draining a queue of queueSize pending jobs.
func CreateJobQueue(queueSize int, poolSize int) *JobQueue {
	if poolSize < 1 {
		poolSize = 1
	}

	queue := &JobQueue{
		jobsChannel: make(chan func() error, queueSize),
		waitGroup:   &sync.WaitGroup{},
	}

	for i := 1; i <= poolSize; i++ {
		go queue.worker()
	}
	return queue
}

type JobQueue struct {
	jobsChannel chan func() error
	waitGroup   *sync.WaitGroup
	errorsMutex sync.Mutex
	errs        []error
}

func (queue *JobQueue) Add(job func() error) error {
	if job == nil {
		return fmt.Errorf("nil job")
	}

	queue.waitGroup.Add(1)
	queue.jobsChannel <- job
	return nil
}

// Wait blocks until every added job finished and returns their joined errors.
func (queue *JobQueue) Wait() error {
	queue.waitGroup.Wait()
	queue.errorsMutex.Lock()
	defer queue.errorsMutex.Unlock()
	return errors.Join(queue.errs...)
}

func (queue *JobQueue) Close() {
	close(queue.jobsChannel)
}

func (queue *JobQueue) worker() {
	for job := range queue.jobsChannel {
		if err := job(); err != nil {
			queue.errorsMutex.Lock()
			queue.errs = append(queue.errs, err)
			queue.errorsMutex.Unlock()
		}
		queue.waitGroup.Done()
	}
}
