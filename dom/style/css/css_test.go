package css

import (
	"math"
	"testing"

	"github.com/npillmayer/domsnap/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDisplay(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domsnap.style")
	defer teardown()
	//
	tests := []struct {
		in   style.Property
		mode DisplayMode
		err  bool
	}{
		{"none", DisplayNone, false},
		{" NONE ", DisplayNone, false},
		{"block", BlockMode | InnerBlockMode, false},
		{"inline-flex", InlineMode | FlexMode, false},
		{"table-cell", TableMode, false},
		{"", NoMode, false},
		{"wobbly", BlockMode, true},
	}
	for _, tt := range tests {
		mode, err := ParseDisplay(tt.in)
		assert.Equal(t, tt.mode, mode, "display %q", tt.in)
		assert.Equal(t, tt.err, err != nil, "display %q", tt.in)
	}
	assert.True(t, IsDisplayNone("none"))
	assert.False(t, IsDisplayNone("contents"))
	assert.Equal(t, "inline inner-inline", (InlineMode | InnerInlineMode).String())
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "15.9", FormatNumber(16-0.1))
	assert.Equal(t, "-10", FormatNumber(-10))
	assert.Equal(t, "0", FormatNumber(math.Copysign(0, -1)))
	assert.Equal(t, "1e-7", FormatNumber(1e-7))
	assert.Equal(t, "0.5", FormatNumber(0.5))
}

func TestTranslateIdentity(t *testing.T) {
	m, err := ParseTransform("none")
	require.NoError(t, err)
	assert.True(t, m.IsIdentity())
	assert.Equal(t, "matrix(1, 0, 0, 1, -10, -5)", m.Translate(-10, -5).String())
}

func TestTranslateComposes(t *testing.T) {
	tests := []struct {
		transform style.Property
		want      string
	}{
		{"", "matrix(1, 0, 0, 1, -10, -5)"},
		{"translate(3px, 4px)", "matrix(1, 0, 0, 1, -7, -1)"},
		{"scale(2)", "matrix(2, 0, 0, 2, -20, -10)"},
		{"matrix(1, 0, 0, 1, 100, 50)", "matrix(1, 0, 0, 1, 90, 45)"},
		{"translateX(1px) translateY(2px)", "matrix(1, 0, 0, 1, -9, -3)"},
	}
	for _, tt := range tests {
		m, err := ParseTransform(tt.transform)
		require.NoError(t, err, tt.transform)
		assert.Equal(t, tt.want, m.Translate(-10, -5).String(), "transform %q", tt.transform)
	}
}

func TestRotate(t *testing.T) {
	m, err := ParseTransform("rotate(90deg)")
	require.NoError(t, err)
	x, y := m.Apply(1, 0)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 1, y, 1e-9)
	m2, err := ParseTransform("rotate(0.25turn)")
	require.NoError(t, err)
	assert.InDelta(t, m.C, m2.C, 1e-9)
}

func TestParseTransformErrors(t *testing.T) {
	for _, in := range []style.Property{
		"translate3d(1px, 2px, 3px)",
		"translate(50%)",
		"rotate(45)",
		"matrix(1, 2)",
		"scale(",
	} {
		_, err := ParseTransform(in)
		assert.Error(t, err, "transform %q", in)
	}
	_, err := ParseTransform("perspective(10px)")
	assert.ErrorIs(t, err, ErrNot2D)
}
