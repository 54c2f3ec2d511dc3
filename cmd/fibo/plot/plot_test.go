// Copyright (c) 2016-2019, Andreas T Jonsson
// All rights reserved.

package plot

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gudals2040/250911-first-repo/cmd/fibo/config"
)

func TestRender(t *testing.T) {
	img := render([]int32{0, 1, 1, 2})
	require.Equal(t, 4*barWidth, img.Bounds().Dx())
	require.Equal(t, chartHeight, img.Bounds().Dy())

	// F(0) has no bar, F(3) fills the full height.
	require.Equal(t, background, img.RGBAAt(barWidth/2, chartHeight-1))
	require.Equal(t, barColor, img.RGBAAt(3*barWidth+barWidth/2, 0))
	require.Equal(t, barColor, img.RGBAAt(barWidth+barWidth/2, chartHeight-1))
	require.Equal(t, background, img.RGBAAt(barWidth+barWidth/2, 0))
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, config.Plot{Bound: 12, Width: 120, Height: 60}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 120, img.Bounds().Dx())
	require.Equal(t, 60, img.Bounds().Dy())
}

func TestRunNegativeBound(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, run(&buf, config.Plot{Bound: -1, Width: 10, Height: 10}))
	require.Zero(t, buf.Len())
}
