package usecase

import (
	"context"
	"fmt"
	"time"

	"scanner-srv/internal/model"
	"scanner-srv/internal/scanlog"
)

// fetchFunc pulls items for one campaign. Each source type has one.
type fetchFunc func(ctx context.Context, c model.Campaign, stats *scanStats) ([]fetchedItem, error)

func (uc *implUseCase) fetchers() map[string]fetchFunc {
	return map[string]fetchFunc{
		model.SourceTypeFacebook: uc.fetchFacebook,
		model.SourceTypeWebsite:  uc.fetchWebsites,
		model.SourceTypeCombined: uc.fetchCombined,
	}
}

// runScan executes one campaign scan end to end. A run appends progress
// entries for its stages and exactly one final entry. A campaign with an
// unknown source type is skipped without logging anything; its schedule
// still advances so the scheduler does not pick it up again immediately.
func (uc *implUseCase) runScan(ctx context.Context, c model.Campaign) error {
	fetch, ok := uc.fetchers()[c.SourceType]
	if !ok {
		uc.l.Warnf(ctx, "scan.usecase.runScan: campaign %s has unsupported source type %q, skipping", c.ID, c.SourceType)
		return nil
	}

	stats := &scanStats{StartedAt: time.Now()}

	uc.appendLog(ctx, c, model.ScanLogStatusInfo, model.LogTypeProgress,
		fmt.Sprintf("Scan started (%s, %d sources)", c.SourceType, len(c.Sources)), nil)

	err := uc.runStages(ctx, c, fetch, stats)
	if err != nil {
		uc.appendLog(ctx, c, model.ScanLogStatusError, model.LogTypeFinal, err.Error(),
			map[string]interface{}{"found_items": stats.Persisted})
		uc.publishEvent(ctx, c, false, stats)
		return err
	}

	// Some failed sources do not fail the run; the partial failure is
	// already recorded on the fetch progress entry.
	uc.appendLog(ctx, c, model.ScanLogStatusSuccess, model.LogTypeFinal,
		fmt.Sprintf("Scan completed: %d fetched, %d matched, %d persisted",
			stats.Fetched, stats.Matched, stats.Persisted),
		map[string]interface{}{"found_items": stats.Persisted})
	uc.publishEvent(ctx, c, true, stats)
	return nil
}

// runStages walks the pipeline. Each stage announces itself with a
// progress entry before it starts, so a hung scan shows its in-flight
// stage in the trail.
func (uc *implUseCase) runStages(ctx context.Context, c model.Campaign, fetch fetchFunc, stats *scanStats) error {
	uc.appendLog(ctx, c, model.ScanLogStatusInfo, model.LogTypeProgress,
		fmt.Sprintf("Stage 1/4: fetching from %d sources", len(c.Sources)), nil)
	items, err := fetch(ctx, c, stats)
	if err != nil {
		return err
	}
	items = filterByStartDate(c, items)
	stats.Fetched = len(items)

	if n := len(stats.SourceErrors); n > 0 {
		failed := make([]string, 0, n)
		for _, se := range stats.SourceErrors {
			failed = append(failed, se.Source)
		}
		uc.appendLog(ctx, c, model.ScanLogStatusError, model.LogTypeProgress,
			fmt.Sprintf("Fetched %d items; %d sources failed", len(items), n),
			map[string]interface{}{"failed_sources": failed})
	}

	uc.archiveSnapshot(ctx, c, items)

	uc.appendLog(ctx, c, model.ScanLogStatusInfo, model.LogTypeProgress,
		fmt.Sprintf("Stage 2/4: filtering %d items against %d keywords",
			len(items), len(c.Keywords)), nil)
	matched := uc.filterItems(c, items)
	stats.Matched = len(matched)

	if len(matched) == 0 {
		return nil
	}

	uc.appendLog(ctx, c, model.ScanLogStatusInfo, model.LogTypeProgress,
		fmt.Sprintf("Stage 3/4: enriching %d items", len(matched)), nil)
	if enrichFailures := uc.enrichItems(ctx, c, matched); enrichFailures > 0 {
		uc.appendLog(ctx, c, model.ScanLogStatusInfo, model.LogTypeProgress,
			fmt.Sprintf("AI evaluation failed for %d of %d items", enrichFailures, len(matched)), nil)
	}

	uc.appendLog(ctx, c, model.ScanLogStatusInfo, model.LogTypeProgress,
		fmt.Sprintf("Stage 4/4: persisting %d items", len(matched)), nil)
	persisted, err := uc.persistItems(ctx, c, matched)
	if err != nil {
		return err
	}
	stats.Persisted = persisted

	return nil
}

// filterByStartDate drops items older than the campaign's content lower
// bound. Items without a timestamp (web pages) are kept.
func filterByStartDate(c model.Campaign, items []fetchedItem) []fetchedItem {
	if c.ScanStartDate == nil {
		return items
	}
	var out []fetchedItem
	for _, it := range items {
		if it.Post != nil && it.Post.PostedAt != nil && it.Post.PostedAt.Before(*c.ScanStartDate) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// appendLog writes one scan log entry. Log failures must not abort a
// scan; they are reported and swallowed.
func (uc *implUseCase) appendLog(ctx context.Context, c model.Campaign, status, logType, message string, details map[string]interface{}) {
	_, err := uc.scanlogUC.Append(ctx, scanlog.AppendInput{
		CampaignID: c.ID,
		Status:     status,
		Message:    message,
		Details:    details,
		SourceType: c.SourceType,
		LogType:    logType,
	})
	if err != nil {
		uc.l.Errorf(ctx, "scan.usecase.appendLog: append %s failed for %s: %v", status, c.ID, err)
	}
}
