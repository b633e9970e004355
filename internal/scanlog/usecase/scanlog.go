package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"scanner-srv/internal/campaign/repository"
	"scanner-srv/internal/model"
	"scanner-srv/internal/scanlog"
	"scanner-srv/pkg/rabbitmq"
)

var validStatuses = map[string]struct{}{
	model.ScanLogStatusInfo:    {},
	model.ScanLogStatusSuccess: {},
	model.ScanLogStatusError:   {},
}

var validLogTypes = map[string]struct{}{
	model.LogTypeProgress: {},
	model.LogTypeFinal:    {},
}

// Append writes one entry and fans it out over RabbitMQ. An empty log
// type defaults to progress.
func (uc *implUseCase) Append(ctx context.Context, input scanlog.AppendInput) (model.ScanLog, error) {
	if input.CampaignID == "" {
		return model.ScanLog{}, scanlog.ErrCampaignRequired
	}
	if _, ok := validStatuses[input.Status]; !ok {
		return model.ScanLog{}, scanlog.ErrInvalidStatus
	}
	if input.LogType == "" {
		input.LogType = model.LogTypeProgress
	}
	if _, ok := validLogTypes[input.LogType]; !ok {
		return model.ScanLog{}, scanlog.ErrInvalidLogType
	}

	entry, err := uc.repo.Insert(ctx, toInsertOptions(input))
	if err != nil {
		uc.l.Errorf(ctx, "scanlog.usecase.Append: %v", err)
		return model.ScanLog{}, err
	}

	uc.publish(ctx, entry)

	return entry, nil
}

// List returns a campaign's entries, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input scanlog.ListInput) (scanlog.ListOutput, error) {
	if input.CampaignID == "" {
		return scanlog.ListOutput{}, scanlog.ErrCampaignRequired
	}

	if _, err := uc.campaignRepo.GetByID(ctx, input.CampaignID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return scanlog.ListOutput{}, scanlog.ErrCampaignNotFound
		}
		uc.l.Errorf(ctx, "scanlog.usecase.List: %v", err)
		return scanlog.ListOutput{}, err
	}

	input.PaginateQuery.Adjust()

	logs, total, err := uc.repo.List(ctx, toListOptions(input))
	if err != nil {
		uc.l.Errorf(ctx, "scanlog.usecase.List: %v", err)
		return scanlog.ListOutput{}, err
	}

	return buildListOutput(input, logs, total), nil
}

// ListSessions derives scan sessions from the log stream. A session is
// the run of entries up to and including a final entry; a trailing run
// without one is reported as running.
func (uc *implUseCase) ListSessions(ctx context.Context, sc model.Scope, input scanlog.ListSessionsInput) ([]model.ScanSession, error) {
	if input.CampaignID == "" {
		return nil, scanlog.ErrCampaignRequired
	}

	if _, err := uc.campaignRepo.GetByID(ctx, input.CampaignID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, scanlog.ErrCampaignNotFound
		}
		uc.l.Errorf(ctx, "scanlog.usecase.ListSessions: %v", err)
		return nil, err
	}

	logs, err := uc.repo.ListByCampaignAsc(ctx, input.CampaignID)
	if err != nil {
		uc.l.Errorf(ctx, "scanlog.usecase.ListSessions: %v", err)
		return nil, err
	}

	sessions := GroupSessions(logs)

	// Newest session first.
	for i, j := 0, len(sessions)-1; i < j; i, j = i+1, j-1 {
		sessions[i], sessions[j] = sessions[j], sessions[i]
	}
	if input.Limit > 0 && len(sessions) > input.Limit {
		sessions = sessions[:input.Limit]
	}

	return sessions, nil
}

// GroupSessions cuts an ascending log stream into sessions. Each final
// entry closes the session it belongs to; the next entry opens a new
// one. A trailing run with no final entry is left as running.
func GroupSessions(logs []model.ScanLog) []model.ScanSession {
	var sessions []model.ScanSession
	var current *model.ScanSession

	for _, entry := range logs {
		if current == nil {
			current = &model.ScanSession{
				CampaignID: entry.CampaignID,
				StartedAt:  entry.CreatedAt,
				Status:     model.SessionStatusRunning,
			}
		}

		current.Logs = append(current.Logs, entry)

		if entry.IsFinal() {
			endedAt := entry.CreatedAt
			current.EndedAt = &endedAt
			if entry.Status == model.ScanLogStatusError {
				current.Status = model.SessionStatusFailed
			} else {
				current.Status = model.SessionStatusCompleted
			}
			sessions = append(sessions, *current)
			current = nil
		}
	}
	if current != nil {
		sessions = append(sessions, *current)
	}

	return sessions
}

// publish fans the entry out to the scan log exchange. Failures are
// logged and swallowed; the write already happened.
func (uc *implUseCase) publish(ctx context.Context, entry model.ScanLog) {
	if uc.amqp == nil {
		return
	}

	ch, err := uc.amqp.Channel()
	if err != nil {
		uc.l.Warnf(ctx, "scanlog.usecase.publish: channel failed: %v", err)
		return
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(rabbitmq.ExchangeArgs{
		Name:    uc.exchange,
		Type:    rabbitmq.ExchangeTypeFanout,
		Durable: true,
	}); err != nil {
		uc.l.Warnf(ctx, "scanlog.usecase.publish: exchange declare failed: %v", err)
		return
	}

	body, err := json.Marshal(buildLogEvent(entry))
	if err != nil {
		uc.l.Warnf(ctx, "scanlog.usecase.publish: marshal failed: %v", err)
		return
	}

	if err := ch.Publish(ctx, rabbitmq.PublishArgs{
		Exchange: uc.exchange,
		Msg: rabbitmq.Publishing{
			ContentType: rabbitmq.ContentTypeJSON,
			Body:        body,
		},
	}); err != nil {
		uc.l.Warnf(ctx, "scanlog.usecase.publish: publish failed: %v", err)
	}
}
