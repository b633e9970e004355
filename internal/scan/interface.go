package scan

import (
	"context"

	"scanner-srv/internal/model"
	"scanner-srv/pkg/facebook"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// TriggerDue scans every due campaign once. Schedules always advance,
	// whether the scan completed, failed, or was skipped.
	TriggerDue(ctx context.Context) (TriggerDueOutput, error)
	// TriggerCampaign runs one campaign scan on demand. The schedule
	// advances the same way a scheduled run would.
	TriggerCampaign(ctx context.Context, sc model.Scope, input TriggerCampaignInput) error
}

// FacebookClientFactory builds a Graph API client for an access token.
// Tokens are per-user, so clients cannot be shared across campaigns.
type FacebookClientFactory func(accessToken string) facebook.IClient
