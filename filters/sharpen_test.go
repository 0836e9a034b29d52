package filters_test

import (
	"testing"

	"github.com/katalvlaran/lvimg/filters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnsharpOptions(t *testing.T) {
	o := filters.DefaultUnsharpOptions()
	assert.Equal(t, 7, o.KernelSize)
	assert.Equal(t, 1.5, o.Amount)
	assert.Equal(t, 10.0, o.Threshold)
	assert.NoError(t, o.Validate())
	assert.InDelta(t, 1.4, o.Sigma(), 1e-12)
	assert.InDelta(t, 0.8, filters.UnsharpOptions{KernelSize: 3}.Sigma(), 1e-12)

	bad := []filters.UnsharpOptions{
		{KernelSize: 4, Amount: 1},
		{KernelSize: 1, Amount: 1},
		{KernelSize: 5, Amount: -1},
		{KernelSize: 5, Amount: 1, Threshold: -2},
	}
	for _, b := range bad {
		assert.ErrorIs(t, b.Validate(), filters.ErrInvalidParameter, "%+v", b)
		_, err := filters.UnsharpMask(uniform(3, 3, 9), b)
		assert.ErrorIs(t, err, filters.ErrInvalidParameter, "%+v", b)
	}
}

func TestUnsharpMask_FlatUnchanged(t *testing.T) {
	img := uniform(11, 7, 120)
	out, err := filters.UnsharpMask(img, filters.DefaultUnsharpOptions())
	require.NoError(t, err)
	assert.Equal(t, img.Pix, out.Pix)
}

// TestUnsharpMask_StepOvershoots: next to a step the dark side gets darker
// and the bright side brighter.
func TestUnsharpMask_StepOvershoots(t *testing.T) {
	img := step(20, 9, 80, 160)
	out, err := filters.UnsharpMask(img, filters.UnsharpOptions{KernelSize: 5, Amount: 1.5, Threshold: 0})
	require.NoError(t, err)

	assert.Less(t, gray(out, 9, 4), uint8(80))
	assert.Greater(t, gray(out, 10, 4), uint8(160))
	assert.Equal(t, uint8(255), out.RGBAAt(9, 4).A)
}

// TestUnsharpMask_ThresholdSkipsSmallSteps: a step smaller than the
// threshold produces differences below it everywhere.
func TestUnsharpMask_ThresholdSkipsSmallSteps(t *testing.T) {
	img := step(20, 9, 100, 106)
	out, err := filters.UnsharpMask(img, filters.UnsharpOptions{KernelSize: 7, Amount: 2, Threshold: 10})
	require.NoError(t, err)
	assert.Equal(t, img.Pix, out.Pix)
}

func TestKernelSharpen(t *testing.T) {
	// Every tap of a 1×1 image clamps to the same pixel; the kernel sums to 1.
	out, err := filters.KernelSharpen(uniform(1, 1, 50))
	require.NoError(t, err)
	assert.Equal(t, uint8(50), gray(out, 0, 0))

	flat := uniform(6, 6, 77)
	out, err = filters.KernelSharpen(flat)
	require.NoError(t, err)
	assert.Equal(t, uint8(77), gray(out, 3, 3))

	img := step(10, 6, 60, 120)
	out, err = filters.KernelSharpen(img)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), gray(out, 4, 3), "9·60 − 3·60 − 3·120 − 2·60 clips at 0")
	assert.Equal(t, uint8(255), gray(out, 5, 3), "9·120 − 3·60 − 5·120 = 300 clips at 255")

	_, err = filters.KernelSharpen(nil)
	assert.ErrorIs(t, err, filters.ErrNilImage)
}

func TestSharpen_Dispatch(t *testing.T) {
	img := step(10, 6, 60, 120)
	byKernel, err := filters.Sharpen(img, filters.MethodKernel, filters.DefaultUnsharpOptions())
	require.NoError(t, err)
	byCV2, err := filters.Sharpen(img, "CV2", filters.DefaultUnsharpOptions())
	require.NoError(t, err)
	assert.Equal(t, byKernel.Pix, byCV2.Pix)

	byMask, err := filters.Sharpen(img, filters.MethodUnsharpMask, filters.DefaultUnsharpOptions())
	require.NoError(t, err)
	direct, err := filters.UnsharpMask(img, filters.DefaultUnsharpOptions())
	require.NoError(t, err)
	assert.Equal(t, direct.Pix, byMask.Pix)

	_, err = filters.Sharpen(img, "tensorflow", filters.DefaultUnsharpOptions())
	assert.ErrorIs(t, err, filters.ErrUnknownMethod)
}
