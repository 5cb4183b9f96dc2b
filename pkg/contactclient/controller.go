package contactclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/khorlingling/site/contact"
)

// State is the form status shown to the user.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateError   State = "error"
)

// Messages shown to the user.
const (
	MsgInvalidEmail = "Please enter a valid email address (e.g., name@example.com)."
	MsgSuccess      = "Thank you for reaching out! Your message has been sent successfully."
	MsgFallback     = "Something went wrong. Please try again."
	MsgNetwork      = "Failed to send message. Please try again later."
)

// DefaultDismissDelay is how long a success message stays visible.
const DefaultDismissDelay = 5 * time.Second

// Form holds the four inquiry fields.
type Form struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
	Message      string `json:"message"`
}

// Snapshot is the observable controller state.
type Snapshot struct {
	State   State
	Message string
}

// Controller drives one contact form. It is safe for concurrent use.
type Controller struct {
	endpoint string
	client   *http.Client
	dismiss  time.Duration
	onChange func(Snapshot)

	mu     sync.Mutex
	state  State
	msg    string
	timer  *time.Timer
	gen    uint64
	closed bool
}

// Option configures a Controller.
type Option func(*Controller)

func WithHTTPClient(c *http.Client) Option {
	return func(ctrl *Controller) {
		if c != nil {
			ctrl.client = c
		}
	}
}

// WithDismissDelay sets how long success stays before returning to idle.
func WithDismissDelay(d time.Duration) Option {
	return func(ctrl *Controller) {
		if d > 0 {
			ctrl.dismiss = d
		}
	}
}

// WithOnChange registers a callback for every state change.
// It runs outside the controller lock and may call State.
func WithOnChange(fn func(Snapshot)) Option {
	return func(ctrl *Controller) {
		ctrl.onChange = fn
	}
}

// New creates a Controller posting to endpoint.
func New(endpoint string, opts ...Option) *Controller {
	c := &Controller{
		endpoint: endpoint,
		client:   http.DefaultClient,
		dismiss:  DefaultDismissDelay,
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state and message.
func (c *Controller) State() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{State: c.state, Message: c.msg}
}

// Submit validates f, posts it and returns the resulting state.
// The only errors are ErrBusy while a submission is in flight and
// ErrClosed after Close; every other outcome is reported in the Snapshot.
// On success f is cleared. Nothing is retried.
func (c *Controller) Submit(ctx context.Context, f *Form) (Snapshot, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return Snapshot{}, ErrClosed
	}
	if c.state == StateLoading {
		c.mu.Unlock()
		return Snapshot{}, ErrBusy
	}
	c.stopTimer()
	c.gen++
	gen := c.gen

	if !contact.ValidEmail(f.Email) {
		snap := c.set(StateError, MsgInvalidEmail)
		c.mu.Unlock()
		c.notify(snap)
		return snap, nil
	}

	snap := c.set(StateLoading, "")
	c.mu.Unlock()
	c.notify(snap)

	state, msg := c.post(ctx, *f)

	c.mu.Lock()
	snap = c.set(state, msg)
	if state == StateSuccess {
		*f = Form{}
		if !c.closed {
			c.timer = time.AfterFunc(c.dismiss, func() { c.dismissSuccess(gen) })
		}
	}
	c.mu.Unlock()
	c.notify(snap)

	return snap, nil
}

// Close cancels a pending dismiss. Later submissions fail with ErrClosed.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.stopTimer()
}

func (c *Controller) post(ctx context.Context, f Form) (State, string) {
	payload, err := json.Marshal(f)
	if err != nil {
		return StateError, MsgNetwork
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return StateError, MsgNetwork
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return StateError, MsgNetwork
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return StateError, MsgNetwork
	}

	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return StateError, MsgNetwork
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return StateSuccess, MsgSuccess
	}

	// A JSON null body has no error field to read.
	if data == nil {
		return StateError, MsgNetwork
	}
	if obj, ok := data.(map[string]any); ok {
		if msg, ok := obj["error"].(string); ok && msg != "" {
			return StateError, msg
		}
	}
	return StateError, MsgFallback
}

func (c *Controller) dismissSuccess(gen uint64) {
	c.mu.Lock()
	if c.closed || c.gen != gen || c.state != StateSuccess {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	snap := c.set(StateIdle, "")
	c.mu.Unlock()
	c.notify(snap)
}

// set must be called with mu held.
func (c *Controller) set(state State, msg string) Snapshot {
	c.state = state
	c.msg = msg
	return Snapshot{State: state, Message: msg}
}

// stopTimer must be called with mu held.
func (c *Controller) stopTimer() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) notify(s Snapshot) {
	if c.onChange != nil {
		c.onChange(s)
	}
}
