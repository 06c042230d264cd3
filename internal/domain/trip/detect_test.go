package trip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFlagResolve(t *testing.T) {
	t.Parallel()

	assert.True(t, FlagAuto.Resolve(true))
	assert.False(t, FlagAuto.Resolve(false))
	assert.True(t, FlagOn.Resolve(false))
	assert.False(t, FlagOff.Resolve(true))
}

func TestFlagPtrRoundTrip(t *testing.T) {
	t.Parallel()

	assert.Nil(t, FlagAuto.Ptr())
	for _, f := range []Flag{FlagAuto, FlagOn, FlagOff} {
		assert.Equal(t, f, FlagFromPtr(f.Ptr()))
	}
}

func TestDetectFlatbed(t *testing.T) {
	t.Parallel()

	assert.True(t, DetectFlatbed("Xe sàn 40ft"))
	assert.True(t, DetectFlatbed("XE SÀN"))
	assert.False(t, DetectFlatbed("Container 20ft"))
	assert.False(t, DetectFlatbed(""))
}

func TestDetectInternalCargo(t *testing.T) {
	t.Parallel()

	assert.True(t, DetectInternalCargo("hàng xá ximăng"))
	assert.True(t, DetectInternalCargo("HÀNG XÁ"))
	assert.False(t, DetectInternalCargo("hàng lạnh"))
}

func TestDetectHoliday(t *testing.T) {
	t.Parallel()

	// 2024-12-07/08 are Saturday and Sunday; 2024-12-04 a Wednesday.
	assert.True(t, DetectHoliday(time.Date(2024, time.December, 7, 0, 0, 0, 0, time.UTC)))
	assert.True(t, DetectHoliday(time.Date(2024, time.December, 8, 0, 0, 0, 0, time.UTC)))
	assert.False(t, DetectHoliday(time.Date(2024, time.December, 4, 0, 0, 0, 0, time.UTC)))

	// Fixed national holidays hold on weekdays.
	assert.True(t, DetectHoliday(time.Date(2024, time.September, 2, 0, 0, 0, 0, time.UTC)))
	assert.True(t, DetectHoliday(time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC)))
	assert.True(t, DetectHoliday(time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, DetectHoliday(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)))
}
