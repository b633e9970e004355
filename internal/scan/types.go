package scan

type TriggerCampaignInput struct {
	CampaignID string
}

type TriggerDueOutput struct {
	Due     int
	Scanned int
	Skipped int
	Failed  int
}
