package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoller_ChecksRepeatedly(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"backend_status":"ok","message":"ready"}`))
	}))
	defer server.Close()

	prober := New(server.URL, nil)
	poller := NewPoller(prober, 20*time.Millisecond)
	poller.Start(context.Background())
	defer poller.Stop()

	assert.Eventually(t, func() bool {
		return hits.Load() >= 3
	}, 3*time.Second, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		return prober.State().Status == StatusConnected
	}, time.Second, 10*time.Millisecond)
}

func TestPoller_StartAndStopIdempotent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"backend_status":"ok","message":"ready"}`))
	}))
	defer server.Close()

	poller := NewPoller(New(server.URL, nil), 50*time.Millisecond)
	poller.Start(context.Background())
	poller.Start(context.Background())
	assert.True(t, poller.Running())

	poller.Stop()
	poller.Stop()
	assert.False(t, poller.Running())
}

func TestNewPoller_DefaultInterval(t *testing.T) {
	poller := NewPoller(New("http://127.0.0.1:8000", nil), 0)
	assert.Equal(t, 30*time.Second, poller.interval)
}
