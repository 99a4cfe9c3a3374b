package util

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter spaces outgoing requests so we don't hammer the forum.
// One crawl only talks to one host, so a single token bucket is enough.
type Limiter struct {
	lim *rate.Limiter
}

func NewLimiter(reqPerSec float64, burst int) *Limiter {
	if reqPerSec <= 0 {
		reqPerSec = 1
	}
	if burst < 1 {
		burst = 1
	}
	return &Limiter{lim: rate.NewLimiter(rate.Limit(reqPerSec), burst)}
}

func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil {
		return nil
	}
	return l.lim.Wait(ctx)
}
