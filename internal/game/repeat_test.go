package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyRepeat(t *testing.T) {
	k := keyRepeat{delay: 0.25, interval: 0.125}

	assert.False(t, k.update(false, 0))
	assert.True(t, k.update(true, 0), "initial press")
	assert.False(t, k.update(true, 0.1), "inside delay")
	assert.False(t, k.update(true, 0.2))
	assert.True(t, k.update(true, 0.25), "first repeat")
	assert.False(t, k.update(true, 0.3))
	assert.True(t, k.update(true, 0.375))

	assert.False(t, k.update(false, 0.4), "release")
	assert.True(t, k.update(true, 0.5), "press again")
}

func TestKeyRepeatDoesNotBurstAfterStall(t *testing.T) {
	k := keyRepeat{delay: 0.25, interval: 0.125}
	k.update(true, 0)
	assert.True(t, k.update(true, 5))
	assert.False(t, k.update(true, 5.01), "one press per stalled frame")
}
