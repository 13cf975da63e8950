package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOperatingHoursIsClosedOn(t *testing.T) {
	hours := DefaultOperatingHours()

	tuesday := time.Date(2026, time.January, 6, 0, 0, 0, 0, time.UTC)
	wednesday := time.Date(2026, time.January, 7, 0, 0, 0, 0, time.UTC)

	assert.True(t, hours.IsClosedOn(tuesday))
	assert.False(t, hours.IsClosedOn(wednesday))
}

func TestOperatingHoursBounds(t *testing.T) {
	hours := DefaultOperatingHours()

	// Границы включительные
	assert.False(t, hours.BeforeOpening("10:30:00"))
	assert.False(t, hours.AfterClosing("21:30:00"))

	assert.True(t, hours.BeforeOpening("10:29:59"))
	assert.True(t, hours.AfterClosing("21:30:01"))

	assert.False(t, hours.BeforeOpening("15:00:00"))
	assert.False(t, hours.AfterClosing("15:00:00"))
}
