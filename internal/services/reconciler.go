package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"pickup-coordination-service/internal/domain"
	"pickup-coordination-service/internal/ports"
)

type legResult struct {
	updated bool
	err     error
}

// Reconciler refreshes the status of every non-terminal leg against the
// flight-data vendor.
//
// Legs are resolved through a bounded worker pool so one slow vendor
// call never stalls the whole pass, and each per-leg write is
// independently atomic: a failure on one leg does not roll back or stop
// the others. Reads are never blocked by a pass; listing returns the
// last known-good statuses.
type Reconciler struct {
	Repo        ports.GuestRepository
	Resolver    *StatusResolver
	Interval    time.Duration
	CallTimeout time.Duration
	Workers     int
}

func NewReconciler(repo ports.GuestRepository, resolver *StatusResolver) *Reconciler {
	return &Reconciler{
		Repo:        repo,
		Resolver:    resolver,
		Interval:    10 * time.Minute,
		CallTimeout: 8 * time.Second,
		Workers:     4,
	}
}

// Run triggers a pass every Interval until the context is canceled.
func (rc *Reconciler) Run(ctx context.Context) {
	ticker := time.NewTicker(rc.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updated, err := rc.RunPass(ctx, time.Now())
			if err != nil {
				log.Printf("reconciliation pass finished with errors: updated=%d err=%v", updated, err)
				continue
			}
			log.Printf("reconciliation pass complete: updated=%d", updated)
		}
	}
}

// RunPass reconciles all open legs once and returns how many statuses
// changed. Per-leg persistence errors are collected; the first one is
// returned after the pass completes.
func (rc *Reconciler) RunPass(ctx context.Context, now time.Time) (int, error) {
	legs, err := rc.Repo.ListOpenLegs(ctx)
	if err != nil {
		return 0, fmt.Errorf("reconcile pass: list open legs: %w", err)
	}
	if len(legs) == 0 {
		return 0, nil
	}

	workers := rc.Workers
	if workers < 1 {
		workers = 1
	}

	sem := make(chan struct{}, workers)
	resultsCh := make(chan legResult, len(legs))
	var wg sync.WaitGroup

	for _, leg := range legs {
		wg.Add(1)
		go func(leg *domain.FlightLeg) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			callCtx, cancel := context.WithTimeout(ctx, rc.CallTimeout)
			defer cancel()

			res := rc.Resolver.Resolve(callCtx, leg.Airline, leg.FlightNumber, leg.ETA)
			next := Reconcile(leg.Status, res, leg.ETA, now)
			if next == leg.Status {
				resultsCh <- legResult{}
				return
			}

			if err := rc.Repo.UpdateLegStatus(ctx, leg.LegID, next); err != nil {
				resultsCh <- legResult{
					err: fmt.Errorf("reconcile pass: update leg %d: %w", leg.LegID, err),
				}
				return
			}

			resultsCh <- legResult{updated: true}
		}(leg)
	}

	wg.Wait()
	close(resultsCh)

	updated := 0
	var firstErr error
	for res := range resultsCh {
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
			}
			continue
		}
		if res.updated {
			updated++
		}
	}

	return updated, firstErr
}
