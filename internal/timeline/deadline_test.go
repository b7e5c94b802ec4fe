package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vincenthsieh/tokyosync/internal/domain"
)

func TestDeadlineCountdown_UnderThirtyMinutesIsCritical(t *testing.T) {
	c, ok := DeadlineCountdown(at(13, 5), "13:20")
	require.True(t, ok)
	assert.Equal(t, domain.WarningCritical, c.Level)
	assert.Equal(t, "15 min left", c.Text)
}

func TestDeadlineCountdown_PassedIsCritical(t *testing.T) {
	c, ok := DeadlineCountdown(at(13, 30), "13:20")
	require.True(t, ok)
	assert.Equal(t, domain.WarningCritical, c.Level)
	assert.Contains(t, c.Text, "passed")
}

func TestDeadlineCountdown_UnderAnHourIsCaution(t *testing.T) {
	c, ok := DeadlineCountdown(at(12, 30), "13:20")
	require.True(t, ok)
	assert.Equal(t, domain.WarningCaution, c.Level)
	assert.Equal(t, "50 min left", c.Text)
}

func TestDeadlineCountdown_AnHourOrMoreIsNormal(t *testing.T) {
	c, ok := DeadlineCountdown(at(10, 15), "13:20")
	require.True(t, ok)
	assert.Equal(t, domain.WarningNormal, c.Level)
	assert.Equal(t, "3h 05m left", c.Text)
}

func TestDeadlineCountdown_BandBoundaries(t *testing.T) {
	// 30 minutes remaining is caution, 29 is critical.
	c, _ := DeadlineCountdown(at(12, 50), "13:20")
	assert.Equal(t, domain.WarningCaution, c.Level)
	c, _ = DeadlineCountdown(at(12, 51), "13:20")
	assert.Equal(t, domain.WarningCritical, c.Level)

	// Exactly 60 minutes remaining is normal.
	c, _ = DeadlineCountdown(at(12, 20), "13:20")
	assert.Equal(t, domain.WarningNormal, c.Level)

	// Exactly zero minutes remaining still shows a count, not passed.
	c, _ = DeadlineCountdown(at(13, 20), "13:20")
	assert.Equal(t, domain.WarningCritical, c.Level)
	assert.Equal(t, "0 min left", c.Text)
}

func TestDeadlineCountdown_UnparseableDeadline(t *testing.T) {
	_, ok := DeadlineCountdown(at(12, 0), "midnight")
	assert.False(t, ok)
	_, ok = DeadlineCountdown(at(12, 0), "")
	assert.False(t, ok)
}
