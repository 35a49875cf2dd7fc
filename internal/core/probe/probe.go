package probe

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	statusPath = "/api/status"
	docsPath   = "/docs"

	checkingMessage     = "Connecting to backend..."
	disconnectedMessage = "Failed to connect to backend"
)

type statusBody struct {
	BackendStatus string `json:"backend_status"`
	Message       string `json:"message"`
}

// Prober performs one-shot connectivity checks against a backend base
// address and reports a tri-state outcome to observers.
//
// The base address is a constructor parameter, never ambient environment,
// so tests can inject arbitrary values. Each Check bumps a generation
// counter and a settling call applies its result only while it is still
// the most recently issued one.
type Prober struct {
	mu         sync.Mutex
	baseURL    string
	client     *http.Client
	state      State
	generation uint64
	events     []chan Event
}

// New creates a Prober for the given base URL. A nil client falls back to
// a default client; no timeout is imposed beyond what the client carries.
func New(baseURL string, client *http.Client) *Prober {
	if client == nil {
		client = &http.Client{}
	}
	return &Prober{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		state:   State{Status: StatusUnknown},
	}
}

// BaseURL returns the configured base address.
func (prober *Prober) BaseURL() string {
	return prober.baseURL
}

// DocsURL returns the address of the backend API documentation page.
func (prober *Prober) DocsURL() string {
	return prober.baseURL + docsPath
}

// State returns a snapshot of the current probe state.
func (prober *Prober) State() State {
	prober.mu.Lock()
	defer prober.mu.Unlock()
	return prober.state
}

// Subscribe registers a new observer channel.
func (prober *Prober) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	prober.mu.Lock()
	prober.events = append(prober.events, ch)
	prober.mu.Unlock()
	return ch
}

// Close closes all observer channels.
func (prober *Prober) Close() {
	prober.mu.Lock()
	events := prober.events
	prober.events = nil
	prober.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Check issues a single status request in the background. The state moves
// to checking immediately; the settled outcome is applied when the request
// completes, unless a newer Check has been issued since.
func (prober *Prober) Check(ctx context.Context) {
	generation := prober.beginCheck()
	go func() {
		prober.settle(generation, prober.fetch(ctx))
	}()
}

type checkResult struct {
	connected     bool
	message       string
	backendStatus string
	failure       FailureKind
	httpStatus    int
}

func (prober *Prober) beginCheck() uint64 {
	prober.mu.Lock()
	prober.generation++
	generation := prober.generation
	// Prior result fields stay in place until the call settles.
	prober.state.Status = StatusChecking
	prober.state.Message = checkingMessage
	snapshot := prober.state
	prober.mu.Unlock()

	prober.emit(Event{
		Type:  EventChecking,
		State: snapshot,
		At:    time.Now(),
	})
	return generation
}

func (prober *Prober) fetch(ctx context.Context) checkResult {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, prober.baseURL+statusPath, nil)
	if err != nil {
		return checkResult{failure: FailureTransport}
	}

	response, err := prober.client.Do(request)
	if err != nil {
		return checkResult{failure: FailureTransport}
	}
	defer func() {
		_ = response.Body.Close()
	}()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return checkResult{failure: FailureStatus, httpStatus: response.StatusCode}
	}

	var body statusBody
	if err := json.NewDecoder(response.Body).Decode(&body); err != nil {
		return checkResult{failure: FailureParse, httpStatus: response.StatusCode}
	}
	if body.BackendStatus == "" || body.Message == "" {
		return checkResult{failure: FailureParse, httpStatus: response.StatusCode}
	}

	return checkResult{
		connected:     true,
		message:       body.Message,
		backendStatus: body.BackendStatus,
		httpStatus:    response.StatusCode,
	}
}

func (prober *Prober) settle(generation uint64, result checkResult) {
	prober.mu.Lock()
	if generation != prober.generation {
		// A newer check was issued while this one was in flight.
		prober.mu.Unlock()
		return
	}

	if result.connected {
		prober.state = State{
			Status:        StatusConnected,
			Message:       result.message,
			BackendStatus: result.backendStatus,
			Failure:       FailureNone,
			HTTPStatus:    result.httpStatus,
			LastCheckedAt: time.Now(),
		}
	} else {
		// Every failure kind collapses to the same user-visible message;
		// the kind itself stays available for diagnostics.
		prober.state = State{
			Status:        StatusDisconnected,
			Message:       disconnectedMessage,
			Failure:       result.failure,
			HTTPStatus:    result.httpStatus,
			LastCheckedAt: time.Now(),
		}
	}
	snapshot := prober.state
	prober.mu.Unlock()

	prober.emit(Event{
		Type:  EventSettled,
		State: snapshot,
		At:    time.Now(),
	})
}

func (prober *Prober) emit(event Event) {
	prober.mu.Lock()
	events := append([]chan Event(nil), prober.events...)
	prober.mu.Unlock()

	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
