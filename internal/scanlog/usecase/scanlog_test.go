package usecase

import (
	"testing"
	"time"

	"scanner-srv/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logAt(t *testing.T, minute int, status, logType string) model.ScanLog {
	t.Helper()
	return model.ScanLog{
		ID:         int64(minute),
		CampaignID: "c1",
		Status:     status,
		LogType:    logType,
		CreatedAt:  time.Date(2026, 1, 1, 10, minute, 0, 0, time.UTC),
	}
}

func TestGroupSessions(t *testing.T) {
	t.Run("two complete sessions cut at final entries", func(t *testing.T) {
		logs := []model.ScanLog{
			logAt(t, 0, model.ScanLogStatusInfo, model.LogTypeProgress),
			logAt(t, 1, model.ScanLogStatusInfo, model.LogTypeProgress),
			logAt(t, 2, model.ScanLogStatusSuccess, model.LogTypeFinal),
			logAt(t, 10, model.ScanLogStatusInfo, model.LogTypeProgress),
			logAt(t, 11, model.ScanLogStatusError, model.LogTypeFinal),
		}

		sessions := GroupSessions(logs)
		require.Len(t, sessions, 2)

		assert.Equal(t, model.SessionStatusCompleted, sessions[0].Status)
		assert.Len(t, sessions[0].Logs, 3)
		assert.Equal(t, logs[0].CreatedAt, sessions[0].StartedAt)
		require.NotNil(t, sessions[0].EndedAt)
		assert.Equal(t, logs[2].CreatedAt, *sessions[0].EndedAt)

		assert.Equal(t, model.SessionStatusFailed, sessions[1].Status)
		assert.Len(t, sessions[1].Logs, 2)
	})

	t.Run("trailing run without final entry is running", func(t *testing.T) {
		logs := []model.ScanLog{
			logAt(t, 0, model.ScanLogStatusSuccess, model.LogTypeFinal),
			logAt(t, 5, model.ScanLogStatusInfo, model.LogTypeProgress),
			logAt(t, 6, model.ScanLogStatusInfo, model.LogTypeProgress),
		}

		sessions := GroupSessions(logs)
		require.Len(t, sessions, 2)
		assert.Equal(t, model.SessionStatusRunning, sessions[1].Status)
		assert.Nil(t, sessions[1].EndedAt)
	})

	t.Run("error progress entries do not close a session", func(t *testing.T) {
		logs := []model.ScanLog{
			logAt(t, 0, model.ScanLogStatusInfo, model.LogTypeProgress),
			logAt(t, 1, model.ScanLogStatusError, model.LogTypeProgress),
			logAt(t, 2, model.ScanLogStatusSuccess, model.LogTypeFinal),
		}

		sessions := GroupSessions(logs)
		require.Len(t, sessions, 1)
		assert.Equal(t, model.SessionStatusCompleted, sessions[0].Status)
		assert.Len(t, sessions[0].Logs, 3)
	})

	t.Run("final-only session stands alone", func(t *testing.T) {
		logs := []model.ScanLog{
			logAt(t, 0, model.ScanLogStatusError, model.LogTypeFinal),
			logAt(t, 1, model.ScanLogStatusInfo, model.LogTypeProgress),
		}

		sessions := GroupSessions(logs)
		require.Len(t, sessions, 2)
		assert.Equal(t, model.SessionStatusFailed, sessions[0].Status)
		assert.Equal(t, model.SessionStatusRunning, sessions[1].Status)
	})

	t.Run("derivation is idempotent", func(t *testing.T) {
		logs := []model.ScanLog{
			logAt(t, 0, model.ScanLogStatusInfo, model.LogTypeProgress),
			logAt(t, 1, model.ScanLogStatusInfo, model.LogTypeProgress),
			logAt(t, 2, model.ScanLogStatusSuccess, model.LogTypeFinal),
		}

		first := GroupSessions(logs)
		second := GroupSessions(logs)
		assert.Equal(t, first, second)
	})

	t.Run("empty stream yields no sessions", func(t *testing.T) {
		assert.Empty(t, GroupSessions(nil))
	})
}
