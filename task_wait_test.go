package apibridge

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// taskServer answers the task endpoint with statuses in order, repeating the
// last one.
func taskServer(t *testing.T, statuses ...string) (*Client, *atomic.Int32) {
	t.Helper()
	var polls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/bridges/tasks/t-1", r.URL.Path)
		n := int(polls.Add(1)) - 1
		if n >= len(statuses) {
			n = len(statuses) - 1
		}
		switch statuses[n] {
		case TaskSuccess:
			fmt.Fprintf(w, `{"task_id":"t-1","status":"SUCCESS","result":{"items":3}}`)
		case TaskFailure:
			fmt.Fprintf(w, `{"task_id":"t-1","status":"FAILURE","error":"Target blocked by robots.txt"}`)
		default:
			fmt.Fprintf(w, `{"task_id":"t-1","status":%q}`, statuses[n])
		}
	})
	return client, &polls
}

func TestWaitForTask_Success(t *testing.T) {
	t.Parallel()

	client, polls := taskServer(t, TaskPending, TaskStarted, TaskSuccess)

	status, err := client.Bridges.WaitForTask(context.Background(), "t-1",
		WithPollInterval(time.Millisecond),
		WithMaxPollInterval(5*time.Millisecond),
	)
	require.NoError(t, err)
	assert.Equal(t, TaskSuccess, status.Status)
	assert.JSONEq(t, `{"items":3}`, string(status.Result))
	assert.Equal(t, int32(3), polls.Load())
}

func TestWaitForTask_ImmediateSuccess(t *testing.T) {
	t.Parallel()

	client, polls := taskServer(t, TaskSuccess)

	status, err := client.Bridges.WaitForTask(context.Background(), "t-1")
	require.NoError(t, err)
	assert.Equal(t, TaskSuccess, status.Status)
	assert.Equal(t, int32(1), polls.Load())
}

func TestWaitForTask_Failure(t *testing.T) {
	t.Parallel()

	client, _ := taskServer(t, TaskPending, TaskFailure)

	status, err := client.Bridges.WaitForTask(context.Background(), "t-1", WithPollInterval(time.Millisecond))
	require.Error(t, err)
	require.NotNil(t, status)
	assert.Equal(t, TaskFailure, status.Status)

	var failed *TaskFailedError
	require.True(t, errors.As(err, &failed))
	assert.Equal(t, "t-1", failed.TaskID)
	assert.Equal(t, "Target blocked by robots.txt", failed.Message)
	assert.ErrorIs(t, err, ErrTaskFailed)
	assert.NotErrorIs(t, err, ErrTaskRevoked)
}

func TestWaitForTask_Revoked(t *testing.T) {
	t.Parallel()

	client, _ := taskServer(t, TaskRevoked)

	_, err := client.Bridges.WaitForTask(context.Background(), "t-1")
	assert.ErrorIs(t, err, ErrTaskFailed)
	assert.ErrorIs(t, err, ErrTaskRevoked)
}

func TestWaitForTask_ContextDeadline(t *testing.T) {
	t.Parallel()

	client, _ := taskServer(t, TaskPending)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	status, err := client.Bridges.WaitForTask(ctx, "t-1", WithPollInterval(5*time.Millisecond))
	assert.Nil(t, status)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWaitForTask_WaitTimeout(t *testing.T) {
	t.Parallel()

	client, polls := taskServer(t, TaskPending)

	start := time.Now()
	status, err := client.Bridges.WaitForTask(context.Background(), "t-1",
		WithWaitTimeout(50*time.Millisecond),
		WithPollInterval(5*time.Millisecond),
		WithMaxPollInterval(10*time.Millisecond),
	)
	assert.Nil(t, status)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Greater(t, polls.Load(), int32(1))
}

func TestWaitForTask_NonPositiveTimeoutUsesDefault(t *testing.T) {
	t.Parallel()

	client, _ := taskServer(t, TaskPending, TaskSuccess)

	status, err := client.Bridges.WaitForTask(context.Background(), "t-1",
		WithWaitTimeout(0),
		WithPollInterval(time.Millisecond),
	)
	require.NoError(t, err)
	assert.Equal(t, TaskSuccess, status.Status)
}

func TestWaitForTask_CallErrorNotRetried(t *testing.T) {
	t.Parallel()

	var polls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		polls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"broker unavailable"}`))
	})

	_, err := client.Bridges.WaitForTask(context.Background(), "t-1", WithPollInterval(time.Millisecond))
	require.Error(t, err)
	assert.Equal(t, "broker unavailable", err.Error())
	assert.ErrorIs(t, err, ErrServer)
	assert.Equal(t, int32(1), polls.Load())
}

func TestNextPollInterval(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1500*time.Millisecond, nextPollInterval(time.Second, 15*time.Second))
	assert.Equal(t, 15*time.Second, nextPollInterval(12*time.Second, 15*time.Second))
	assert.Equal(t, 15*time.Second, nextPollInterval(15*time.Second, 15*time.Second))
}

func TestWithJitter(t *testing.T) {
	t.Parallel()

	base := time.Second
	for i := 0; i < 200; i++ {
		d := withJitter(base)
		assert.GreaterOrEqual(t, d, 700*time.Millisecond)
		assert.LessOrEqual(t, d, 1300*time.Millisecond)
	}
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	for _, s := range []string{TaskSuccess, TaskFailure, TaskRevoked} {
		assert.True(t, IsTerminal(s), s)
	}
	for _, s := range []string{TaskPending, TaskStarted, TaskRetry, "pending", ""} {
		assert.False(t, IsTerminal(s), s)
	}
}
