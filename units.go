package pptx

import "math"

// Emu is the canonical length unit of the package: a signed English
// Metric Unit count. 914400 EMU per inch, 360000 per centimeter, 12700
// per point, 36000 per millimeter. Arithmetic on Emu is total within
// the int64 range used to represent it.
type Emu int64

// Conversion factors, EMU per unit.
const (
	emuPerInch       Emu = 914400
	emuPerCentimeter Emu = 360000
	emuPerMillimeter Emu = 36000
	emuPerPoint      Emu = 12700
	emuPerTwip       Emu = 635
	// maxEMU bounds float-to-EMU conversions against overflow; real
	// slide geometry never approaches this.
	maxEMU = math.MaxInt64 / 2
)

// Inches converts a float64 inch count to Emu.
func Inches(v float64) Emu { return emuFromFloat(v * float64(emuPerInch)) }

// Centimeters converts a float64 centimeter count to Emu.
func Centimeters(v float64) Emu { return emuFromFloat(v * float64(emuPerCentimeter)) }

// Millimeters converts a float64 millimeter count to Emu.
func Millimeters(v float64) Emu { return emuFromFloat(v * float64(emuPerMillimeter)) }

// Points converts a float64 point count to Emu.
func Points(v float64) Emu { return emuFromFloat(v * float64(emuPerPoint)) }

// Twips converts a float64 twip (1/20 point) count to Emu.
func Twips(v float64) Emu { return emuFromFloat(v * float64(emuPerTwip)) }

// Centipoints converts a float64 centipoint (1/100 point) count to
// Emu. Centipoints are the unit font sizes are serialized in (sz
// attribute on rPr).
func Centipoints(v float64) Emu { return emuFromFloat(v * float64(emuPerPoint) / 100) }

// Inches returns the receiver expressed in inches.
func (e Emu) Inches() float64 { return float64(e) / float64(emuPerInch) }

// Centimeters returns the receiver expressed in centimeters.
func (e Emu) Centimeters() float64 { return float64(e) / float64(emuPerCentimeter) }

// Millimeters returns the receiver expressed in millimeters.
func (e Emu) Millimeters() float64 { return float64(e) / float64(emuPerMillimeter) }

// Points returns the receiver expressed in points.
func (e Emu) Points() float64 { return float64(e) / float64(emuPerPoint) }

// Twips returns the receiver expressed in twips.
func (e Emu) Twips() float64 { return float64(e) / float64(emuPerTwip) }

// Centipoints returns the receiver expressed in centipoints, rounded
// to the nearest integer, matching the `sz` attribute's int semantics.
func (e Emu) Centipoints() int64 {
	return int64(math.Round(float64(e) / float64(emuPerPoint) * 100))
}

// emuFromFloat clamps a float64 EMU value into the safe int64 range
// before truncating, so pathological caller input cannot overflow.
func emuFromFloat(v float64) Emu {
	if v > float64(maxEMU) {
		return Emu(maxEMU)
	}
	if v < -float64(maxEMU) {
		return Emu(-maxEMU)
	}
	return Emu(v)
}

// PointsFromCentipoints converts the `sz` attribute's centipoint
// integer (e.g. 1800 for 18pt) to a float64 point size.
func PointsFromCentipoints(sz int64) float64 {
	return float64(sz) / 100
}

// CentipointsFromPoints converts a float64 point size to the `sz`
// attribute's centipoint integer, rounding to the nearest integer as
// the Font emission table requires.
func CentipointsFromPoints(pt float64) int64 {
	return int64(math.Round(pt * 100))
}
