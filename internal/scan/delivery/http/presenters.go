package http

import (
	"scanner-srv/internal/scan"
)

type triggerScanReq struct {
	CampaignID string
}

func (r triggerScanReq) toInput() scan.TriggerCampaignInput {
	return scan.TriggerCampaignInput{
		CampaignID: r.CampaignID,
	}
}

type triggerScanResp struct {
	CampaignID string `json:"campaign_id"`
}

type triggerDueResp struct {
	Due     int `json:"due"`
	Scanned int `json:"scanned"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

func (h *handler) newTriggerDueResp(o scan.TriggerDueOutput) triggerDueResp {
	return triggerDueResp{
		Due:     o.Due,
		Scanned: o.Scanned,
		Skipped: o.Skipped,
		Failed:  o.Failed,
	}
}
