package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	campaignRepo "scanner-srv/internal/campaign/repository"
	"scanner-srv/internal/model"
	"scanner-srv/internal/scan"
)

const lockKeyPrefix = "scanner:scan_lock:"

// TriggerDue scans every due campaign once. Campaigns run on a bounded
// worker pool; each campaign's schedule advances exactly once per tick,
// no matter how the scan itself went.
func (uc *implUseCase) TriggerDue(ctx context.Context) (scan.TriggerDueOutput, error) {
	now := time.Now()

	campaigns, err := uc.campaignRepo.ListDue(ctx, campaignRepo.ListDueOptions{Now: now})
	if err != nil {
		uc.l.Errorf(ctx, "scan.usecase.TriggerDue: list due failed: %v", err)
		return scan.TriggerDueOutput{}, err
	}

	out := scan.TriggerDueOutput{Due: len(campaigns)}
	if len(campaigns) == 0 {
		return out, nil
	}

	uc.l.Infof(ctx, "scan.usecase.TriggerDue: %d campaigns due", len(campaigns))

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = make(chan struct{}, uc.cfg.CampaignWorkers)
	)

	for _, c := range campaigns {
		wg.Add(1)
		sem <- struct{}{}
		go func(c model.Campaign) {
			defer wg.Done()
			defer func() { <-sem }()

			err := uc.scanWithSchedule(ctx, c)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				out.Scanned++
			case errors.Is(err, scan.ErrScanInProgress):
				out.Skipped++
			default:
				out.Failed++
			}
		}(c)
	}
	wg.Wait()

	return out, nil
}

// TriggerCampaign runs one campaign scan on demand.
func (uc *implUseCase) TriggerCampaign(ctx context.Context, sc model.Scope, input scan.TriggerCampaignInput) error {
	c, err := uc.campaignRepo.GetByID(ctx, input.CampaignID)
	if err != nil {
		if errors.Is(err, campaignRepo.ErrNotFound) {
			return scan.ErrCampaignNotFound
		}
		uc.l.Errorf(ctx, "scan.usecase.TriggerCampaign: get campaign failed: %v", err)
		return err
	}

	if !c.IsActive() {
		return scan.ErrCampaignNotActive
	}
	if c.IsExpired(time.Now()) {
		return scan.ErrCampaignExpired
	}

	return uc.scanWithSchedule(ctx, c)
}

// scanWithSchedule wraps one scan in a panic barrier, the overlap lock
// and the schedule advance. The advance happens in a deferred step so a
// panicking or failing scan still moves next_scan_at forward; a stuck
// campaign must never wedge the scheduler into retrying it every tick.
// The recover runs last, so a recovered panic cannot skip the advance
// or the lock release, and one broken campaign cannot take down the
// process hosting its sibling scans.
func (uc *implUseCase) scanWithSchedule(ctx context.Context, c model.Campaign) (err error) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "scan.usecase.scanWithSchedule: campaign %s panicked: %v", c.ID, r)
			err = fmt.Errorf("scan panicked: %v", r)
			uc.appendLog(ctx, c, model.ScanLogStatusError, model.LogTypeFinal, err.Error(), nil)
		}
	}()

	if !uc.acquireLock(ctx, c.ID) {
		uc.l.Infof(ctx, "scan.usecase.scanWithSchedule: campaign %s already locked, skipping", c.ID)
		return scan.ErrScanInProgress
	}
	defer uc.releaseLock(ctx, c.ID)

	defer func() {
		next := time.Now().Add(c.CadenceDuration())
		if updateErr := uc.campaignRepo.UpdateNextScanAt(ctx, campaignRepo.UpdateNextScanAtOptions{
			ID:         c.ID,
			NextScanAt: next,
		}); updateErr != nil {
			uc.l.Errorf(ctx, "scan.usecase.scanWithSchedule: advance schedule failed for %s: %v", c.ID, updateErr)
			if err == nil {
				err = updateErr
			}
		}
	}()

	return uc.runScan(ctx, c)
}

// acquireLock takes the per-campaign Redis lock. Without Redis the lock
// degrades to a no-op and overlap protection is lost.
func (uc *implUseCase) acquireLock(ctx context.Context, campaignID string) bool {
	if uc.redis == nil {
		return true
	}

	ttl := time.Duration(uc.cfg.LockTTLSeconds) * time.Second
	ok, err := uc.redis.SetNX(ctx, lockKeyPrefix+campaignID, time.Now().Unix(), ttl)
	if err != nil {
		uc.l.Warnf(ctx, "scan.usecase.acquireLock: redis failed, proceeding unlocked: %v", err)
		return true
	}
	return ok
}

func (uc *implUseCase) releaseLock(ctx context.Context, campaignID string) {
	if uc.redis == nil {
		return
	}
	if err := uc.redis.Delete(ctx, lockKeyPrefix+campaignID); err != nil {
		uc.l.Warnf(ctx, "scan.usecase.releaseLock: %v", err)
	}
}
