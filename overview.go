package apibridge

import (
	"context"
	"sync"
)

// Overview is the dashboard snapshot. Each section is fetched independently;
// a failed section carries its error and leaves the others intact.
type Overview struct {
	Stats         *Stats
	StatsErr      error
	SecurityPulse *SecurityPulse
	SecurityErr   error
	Health        *Health
	HealthErr     error
	Logs          []UsageLog
	LogsErr       error
}

// Err returns the first section error, or nil when every section loaded.
func (o *Overview) Err() error {
	for _, err := range []error{o.StatsErr, o.SecurityErr, o.HealthErr, o.LogsErr} {
		if err != nil {
			return err
		}
	}
	return nil
}

// Overview fetches stats, security pulse, health and recent logs
// concurrently and waits for all four.
func (c *Client) Overview(ctx context.Context) *Overview {
	o := &Overview{}

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		o.Stats, o.StatsErr = c.Bridges.Stats(ctx)
	}()
	go func() {
		defer wg.Done()
		o.SecurityPulse, o.SecurityErr = c.Bridges.SecurityPulse(ctx)
	}()
	go func() {
		defer wg.Done()
		o.Health, o.HealthErr = c.System.Health(ctx)
	}()
	go func() {
		defer wg.Done()
		o.Logs, o.LogsErr = c.Bridges.AllLogs(ctx)
	}()
	wg.Wait()

	return o
}
