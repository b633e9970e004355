package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"scanner-srv/internal/model"
	"scanner-srv/pkg/minio"
)

// snapshotItem is one raw fetched item as archived, before filtering.
type snapshotItem struct {
	Source   string     `json:"source"`
	PostID   string     `json:"post_id,omitempty"`
	URL      string     `json:"url,omitempty"`
	Title    string     `json:"title,omitempty"`
	Content  string     `json:"content"`
	PostedAt *time.Time `json:"posted_at,omitempty"`
}

type snapshot struct {
	CampaignID string         `json:"campaign_id"`
	CapturedAt time.Time      `json:"captured_at"`
	Items      []snapshotItem `json:"items"`
}

// archiveSnapshot stores the raw fetch result as a JSON object. Archiving
// is best effort; a storage failure never affects the scan.
func (uc *implUseCase) archiveSnapshot(ctx context.Context, c model.Campaign, items []fetchedItem) {
	if uc.storage == nil || uc.cfg.SnapshotBucket == "" || len(items) == 0 {
		return
	}

	snap := snapshot{
		CampaignID: c.ID,
		CapturedAt: time.Now(),
		Items:      make([]snapshotItem, 0, len(items)),
	}
	for _, it := range items {
		si := snapshotItem{Source: it.Source, Content: it.Text()}
		if it.Post != nil {
			si.PostID = it.Post.PostID
			si.PostedAt = it.Post.PostedAt
		}
		if it.Page != nil {
			si.URL = it.Page.URL
			si.Title = it.Page.Title
		}
		snap.Items = append(snap.Items, si)
	}

	payload, err := json.Marshal(snap)
	if err != nil {
		uc.l.Warnf(ctx, "scan.usecase.archiveSnapshot: marshal failed for %s: %v", c.ID, err)
		return
	}

	if err := uc.storage.EnsureBucket(ctx, uc.cfg.SnapshotBucket); err != nil {
		uc.l.Warnf(ctx, "scan.usecase.archiveSnapshot: ensure bucket failed: %v", err)
		return
	}

	objectName := fmt.Sprintf("%s/%s.json", c.ID, snap.CapturedAt.UTC().Format("20060102T150405Z"))
	_, err = uc.storage.UploadFile(ctx, &minio.UploadRequest{
		BucketName:  uc.cfg.SnapshotBucket,
		ObjectName:  objectName,
		Reader:      bytes.NewReader(payload),
		Size:        int64(len(payload)),
		ContentType: "application/json",
		Metadata:    map[string]string{"campaign_id": c.ID},
	})
	if err != nil {
		uc.l.Warnf(ctx, "scan.usecase.archiveSnapshot: upload %s failed: %v", objectName, err)
	}
}
