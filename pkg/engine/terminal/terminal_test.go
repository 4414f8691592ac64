package terminal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withSize(t *testing.T, w, h int, err error) {
	t.Helper()
	orig := sizeOf
	sizeOf = func(int) (int, int, error) { return w, h, err }
	t.Cleanup(func() { sizeOf = orig })
}

func TestGetSize(t *testing.T) {
	withSize(t, 120, 40, nil)
	w, h := GetSize()
	assert.Equal(t, 120, w)
	assert.Equal(t, 40, h)
}

func TestGetSize_FallsBack(t *testing.T) {
	withSize(t, 0, 0, errors.New("not a terminal"))
	w, h := GetSize()
	assert.Equal(t, DefaultWidth, w)
	assert.Equal(t, DefaultHeight, h)

	withSize(t, 0, 0, nil)
	w, h = GetSize()
	assert.Equal(t, DefaultWidth, w)
	assert.Equal(t, DefaultHeight, h)
}

func TestFits(t *testing.T) {
	withSize(t, 80, 24, nil)
	assert.True(t, Fits(21, 15, 32, 9))
	assert.False(t, Fits(51, 15, 32, 9))
	assert.False(t, Fits(21, 21, 32, 9))
}
