// Package keepalive periodically pings a health URL so hosting platforms
// that idle out quiet processes keep this one warm.
package keepalive

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// defaultRequestTimeout bounds a single ping. It stays well under any sane
// ping interval so requests never pile up.
const defaultRequestTimeout = 10 * time.Second

// Pinger issues a GET against a fixed URL on a fixed interval. It runs on
// its own goroutine and never touches application state.
type Pinger struct {
	url        string
	interval   time.Duration
	client     *http.Client
	ctx        context.Context
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
	logger     *slog.Logger
}

// NewPinger creates a new Pinger for the given URL and interval.
func NewPinger(url string, interval time.Duration, logger *slog.Logger) *Pinger {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for Pinger")
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Pinger{
		url:        url,
		interval:   interval,
		client:     &http.Client{Timeout: defaultRequestTimeout},
		ctx:        ctx,
		cancelFunc: cancel,
		logger:     logger.With(slog.String("component", "keepalive")),
	}
}

// Start launches the ping loop. The first ping fires immediately, then one
// per interval until Stop is called.
func (p *Pinger) Start() {
	p.wg.Add(1)
	go p.loop()
}

// Stop gracefully shuts down the pinger and waits for the loop to exit.
func (p *Pinger) Stop() {
	p.cancelFunc()
	p.wg.Wait()
}

func (p *Pinger) loop() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.ping()

	for {
		select {
		case <-p.ctx.Done():
			return

		case <-ticker.C:
			p.ping()
		}
	}
}

// ping performs one GET. Failures are logged and swallowed; the loop keeps
// going regardless of outcome.
func (p *Pinger) ping() {
	req, err := http.NewRequestWithContext(p.ctx, http.MethodGet, p.url, nil)
	if err != nil {
		p.logger.Warn("keep-alive request could not be built",
			slog.String("url", p.url),
			slog.String("error", err.Error()))
		return
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Warn("keep-alive ping failed",
			slog.String("url", p.url),
			slog.String("error", err.Error()))
		return
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		p.logger.Warn("keep-alive ping answered with error status",
			slog.String("url", p.url),
			slog.Int("status", resp.StatusCode))
		return
	}

	p.logger.Debug("keep-alive ping succeeded",
		slog.String("url", p.url),
		slog.Int("status", resp.StatusCode))
}
