package pptx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInchesRoundTrip(t *testing.T) {
	e := Inches(1)
	assert.Equal(t, Emu(914400), e)
	assert.InDelta(t, 1.0, e.Inches(), 1e-9)
}

func TestUnitConversions(t *testing.T) {
	assert.Equal(t, Emu(360000), Centimeters(1))
	assert.Equal(t, Emu(36000), Millimeters(1))
	assert.Equal(t, Emu(12700), Points(1))
	assert.Equal(t, Emu(635), Twips(1))
}

func TestCentipointsRoundTrip(t *testing.T) {
	e := Centipoints(1800)
	assert.Equal(t, int64(1800), e.Centipoints())
	assert.InDelta(t, 18.0, PointsFromCentipoints(1800), 1e-9)
	assert.Equal(t, int64(1800), CentipointsFromPoints(18))
}

func TestEmuFromFloatClampsOverflow(t *testing.T) {
	huge := emuFromFloat(1e30)
	assert.Equal(t, Emu(maxEMU), huge)
	tiny := emuFromFloat(-1e30)
	assert.Equal(t, Emu(-maxEMU), tiny)
}
