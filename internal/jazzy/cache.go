// SPDX-License-Identifier: MPL-2.0

package jazzy

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/singleflight"
)

type (
	// ComputeFunc produces the report for one configuration.
	ComputeFunc func(ctx context.Context, configPath string) (*CoverageReport, error)

	// ReportCache memoizes one outcome per configuration path. Concurrent
	// requests for the same configuration share a single computation.
	ReportCache struct {
		compute ComputeFunc
		group   singleflight.Group

		mu       sync.RWMutex
		outcomes map[string]outcome
	}

	outcome struct {
		report *CoverageReport
		err    error
	}
)

// NewReportCache creates an empty cache backed by compute.
func NewReportCache(compute ComputeFunc) *ReportCache {
	return &ReportCache{compute: compute, outcomes: make(map[string]outcome)}
}

// Get returns the report for configPath, computing it on first use. A failed
// computation is remembered and returned again without recomputing. The
// only outcome that is not stored is one cut short by cancellation of ctx.
func (c *ReportCache) Get(ctx context.Context, configPath string) (*CoverageReport, error) {
	if o, ok := c.lookup(configPath); ok {
		return o.report, o.err
	}

	v, err, _ := c.group.Do(configPath, func() (any, error) {
		if o, ok := c.lookup(configPath); ok {
			return o.report, o.err
		}

		report, err := c.compute(ctx, configPath)
		if isCancellation(ctx, err) {
			return nil, err
		}

		c.mu.Lock()
		c.outcomes[configPath] = outcome{report: report, err: err}
		c.mu.Unlock()
		return report, err
	})
	report, _ := v.(*CoverageReport)

	// The shared computation may have been canceled by another caller's context.
	if err != nil && ctx.Err() == nil && !c.Has(configPath) && isContextErr(err) {
		return c.Get(ctx, configPath)
	}
	return report, err
}

// Has reports whether an outcome is stored for configPath.
func (c *ReportCache) Has(configPath string) bool {
	_, ok := c.lookup(configPath)
	return ok
}

// Len returns the number of stored outcomes.
func (c *ReportCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.outcomes)
}

func (c *ReportCache) lookup(configPath string) (outcome, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	o, ok := c.outcomes[configPath]
	return o, ok
}

func isCancellation(ctx context.Context, err error) bool {
	return err != nil && ctx.Err() != nil && isContextErr(err)
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
