package simulation

import (
	"context"
	"time"
)

// Profile describes the delay distribution of an endpoint class: a fixed
// base plus a uniform draw in [0, Variance).
type Profile struct {
	Base     time.Duration
	Variance time.Duration
}

// Per-endpoint latency profiles. Values mirror the backend this server
// stands in for; the health endpoint responds immediately.
var (
	ProfileHealth       = Profile{}
	ProfileListProducts = Profile{Base: 20 * time.Millisecond, Variance: 80 * time.Millisecond}
	ProfileFlashSale    = Profile{Base: 30 * time.Millisecond, Variance: 100 * time.Millisecond}
	ProfileGetProduct   = Profile{Base: 15 * time.Millisecond, Variance: 60 * time.Millisecond}
	ProfileReviews      = Profile{Base: 50 * time.Millisecond, Variance: 150 * time.Millisecond}
	ProfileListUsers    = Profile{Base: 10 * time.Millisecond, Variance: 40 * time.Millisecond}
	ProfileGetUser      = Profile{Base: 15 * time.Millisecond, Variance: 50 * time.Millisecond}
	ProfileCreateUser   = Profile{Base: 30 * time.Millisecond, Variance: 100 * time.Millisecond}
	ProfileCreateCart   = Profile{Base: 20 * time.Millisecond, Variance: 80 * time.Millisecond}
	ProfileAddToCart    = Profile{Base: 25 * time.Millisecond, Variance: 90 * time.Millisecond}
	ProfileGetCart      = Profile{Base: 15 * time.Millisecond, Variance: 60 * time.Millisecond}
	ProfileCreateOrder  = Profile{Base: 100 * time.Millisecond, Variance: 300 * time.Millisecond}
	ProfileGetOrder     = Profile{Base: 20 * time.Millisecond, Variance: 70 * time.Millisecond}
	ProfileLogIngest    = Profile{Base: 5 * time.Millisecond, Variance: 20 * time.Millisecond}
	ProfileHeavy        = Profile{Base: 200 * time.Millisecond, Variance: 500 * time.Millisecond}
	ProfileSlow         = Profile{Base: 2 * time.Second, Variance: 1 * time.Second}
)

// Waiter blocks for the given duration or until the context is done.
type Waiter func(ctx context.Context, d time.Duration) error

// Latency injects randomized delay into request handling. Each call blocks
// only the calling goroutine; concurrent requests experience independent
// delays.
type Latency struct {
	rand  Rand
	scale float64
	wait  Waiter
}

// LatencyOption configures a Latency.
type LatencyOption func(*Latency)

// WithWaiter replaces the real timer wait, so tests can observe requested
// delays without sleeping.
func WithWaiter(w Waiter) LatencyOption {
	return func(l *Latency) {
		l.wait = w
	}
}

// NewLatency creates a latency simulator. Every computed delay is
// multiplied by scale; a scale of 0 disables delays entirely.
func NewLatency(rnd Rand, scale float64, opts ...LatencyOption) *Latency {
	l := &Latency{
		rand:  rnd,
		scale: scale,
		wait:  timerWait,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Delay suspends the calling handler for base + U(0,1)*variance, scaled by
// the configured factor. It returns the context's error if the request is
// cancelled before the delay elapses.
func (l *Latency) Delay(ctx context.Context, p Profile) error {
	d := p.Base + time.Duration(l.rand.Float64()*float64(p.Variance))
	d = time.Duration(float64(d) * l.scale)
	if d <= 0 {
		return nil
	}
	return l.wait(ctx, d)
}

func timerWait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
