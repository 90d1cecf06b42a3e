// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package retry

import (
	"context"
	"time"

	"github.com/staranto/scenarios/internal/config"
	"github.com/staranto/scenarios/internal/log"
)

// Config bounds a retry loop. The operation runs at most MaxRetries+1 times.
// Interval is the wait before each retry. A Multiplier above 1 grows the wait
// geometrically after every failure; zero or one keeps it fixed.
type Config struct {
	Interval   time.Duration
	MaxRetries int
	Multiplier float64
}

// FromConfig reads retry.interval_ms and retry.max_retries from the user
// configuration, falling back to def for anything unset.
func FromConfig(def Config) Config {
	def.Interval, _ = config.GetDuration("retry.interval_ms", def.Interval)
	def.MaxRetries, _ = config.GetInt("retry.max_retries", def.MaxRetries)
	return def
}

// Do calls fn until it returns a nil error, waiting cfg.Interval between
// attempts. The first successful result is returned immediately. When every
// attempt fails the last error is returned. Cancelling ctx ends a pending wait
// and returns ctx.Err().
func Do[T any](ctx context.Context, cfg Config, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	maxRetries := max(cfg.MaxRetries, 0)
	interval := cfg.Interval

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			if err := Wait(ctx, interval); err != nil {
				return zero, err
			}
			if cfg.Multiplier > 1 {
				interval = time.Duration(float64(interval) * cfg.Multiplier)
			}
		}

		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err
		log.Debugf("attempt %d/%d failed: %v", attempt+1, maxRetries+1, err)
	}

	return zero, lastErr
}

// Run is Do for operations that produce no value.
func Run(ctx context.Context, cfg Config, fn func(context.Context) error) error {
	_, err := Do(ctx, cfg, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// Wait suspends for d or until ctx is done, whichever comes first.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
