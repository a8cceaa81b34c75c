package parallel

import (
	"errors"
	"fmt"
	"sync"
)

func CreateJobQueue(queueSize int, poolSize int) *JobQueue {
	if poolSize < 1 {
		poolSize = 1
	}

	group := &JobQueue{
		jobsChannel: make(chan func() error, queueSize),
		waitGroup:   &sync.WaitGroup{},
	}

	for i := 1; i <= poolSize; i++ {
		go group.worker()
	}
	return group
}

// JobQueue runs jobs on a fixed pool of workers. Errors returned by jobs are collected and
// reported by Wait.
type JobQueue struct {
	jobsChannel chan func() error
	waitGroup   *sync.WaitGroup
	errorsLock  sync.Mutex
	errors      []error
}

func (queue *JobQueue) Add(function func() error) error {
	if function == nil {
		return fmt.Errorf("nil function")
	}

	queue.waitGroup.Add(1)
	queue.jobsChannel <- function
	return nil
}

// Wait blocks until every added job has finished and returns their errors joined, or nil.
func (queue *JobQueue) Wait() error {
	queue.waitGroup.Wait()
	queue.errorsLock.Lock()
	defer queue.errorsLock.Unlock()
	return errors.Join(queue.errors...)
}

func (queue *JobQueue) Close() {
	close(queue.jobsChannel)
}

func (queue *JobQueue) worker() {
	for job := range queue.jobsChannel {
		if err := job(); err != nil {
			queue.errorsLock.Lock()
			queue.errors = append(queue.errors, err)
			queue.errorsLock.Unlock()
		}
		queue.waitGroup.Done()
	}
}
