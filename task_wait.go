package apibridge

import (
	"context"
	"math/rand"
	"time"
)

// WaitForTask polls a queued extraction until it reaches SUCCESS, FAILURE or
// REVOKED. The status is checked immediately, then with a delay that grows
// by 1.5x (with jitter) up to the configured maximum.
//
// A failed or revoked task returns its final status together with a
// *TaskFailedError. A failed status check is returned as is; it is not
// retried. Polling stops after the wait timeout (DefaultWaitTimeout unless
// WithWaitTimeout is given) or when ctx ends, whichever comes first, and
// ctx.Err() of the bounded context is returned. The server reports unknown
// task IDs as PENDING, so the timeout is what ends a wait on a mistyped ID.
//
// Example:
//
//	task, err := client.Bridges.Run(ctx, bridgeID)
//	if err != nil {
//	    return err
//	}
//	status, err := client.Bridges.WaitForTask(ctx, task.TaskID)
func (s *BridgesService) WaitForTask(ctx context.Context, taskID string, opts ...WaitOption) (*TaskStatus, error) {
	cfg := &waitConfig{
		timeout:         DefaultWaitTimeout,
		pollInterval:    DefaultPollInterval,
		maxPollInterval: defaultMaxPollInterval,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.pollInterval <= 0 {
		cfg.pollInterval = DefaultPollInterval
	}
	if cfg.maxPollInterval < cfg.pollInterval {
		cfg.maxPollInterval = cfg.pollInterval
	}
	if cfg.timeout <= 0 {
		cfg.timeout = DefaultWaitTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	interval := cfg.pollInterval
	for {
		status, err := s.Task(ctx, taskID)
		if err != nil {
			return nil, err
		}

		switch status.Status {
		case TaskSuccess:
			return status, nil
		case TaskFailure, TaskRevoked:
			return status, &TaskFailedError{
				TaskID:  taskID,
				Status:  status.Status,
				Message: status.Error,
			}
		}

		timer := time.NewTimer(withJitter(interval))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		interval = nextPollInterval(interval, cfg.maxPollInterval)
	}
}

func nextPollInterval(current, limit time.Duration) time.Duration {
	next := time.Duration(float64(current) * pollBackoffMultiplier)
	if next > limit {
		next = limit
	}
	return next
}

// withJitter spreads d by up to pollJitterFactor in either direction.
func withJitter(d time.Duration) time.Duration {
	spread := (rand.Float64()*2 - 1) * pollJitterFactor
	return time.Duration(float64(d) * (1 + spread))
}
