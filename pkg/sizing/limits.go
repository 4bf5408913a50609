package sizing

import "math"

// Limits bounds the values the controls accept.
type Limits struct {
	MinVoltage, MaxVoltage, VoltageStep    float64
	MinCapacity, MaxCapacity, CapacityStep float64
}

// DefaultLimits are the slider ranges of the designer controls.
var DefaultLimits = Limits{
	MinVoltage:   3.7,
	MaxVoltage:   100,
	VoltageStep:  0.1,
	MinCapacity:  3,
	MaxCapacity:  100,
	CapacityStep: 0.5,
}

// Default targets used when nothing else is configured.
const (
	DefaultVoltage  = 48.0
	DefaultCapacity = 15.0
)

// Clamp returns req with voltage and capacity forced into l's ranges.
// NaN values are replaced by the range minimum.
func (l Limits) Clamp(req Request) Request {
	req.Voltage = clamp(req.Voltage, l.MinVoltage, l.MaxVoltage)
	req.Capacity = clamp(req.Capacity, l.MinCapacity, l.MaxCapacity)
	return req
}

// StepVoltage moves v by n slider steps and clamps the result. The result is
// snapped to the step grid so repeated key presses do not accumulate
// floating point drift.
func (l Limits) StepVoltage(v float64, n int) float64 {
	return clamp(snap(v+float64(n)*l.VoltageStep, l.VoltageStep), l.MinVoltage, l.MaxVoltage)
}

// StepCapacity moves c by n slider steps and clamps the result.
func (l Limits) StepCapacity(c float64, n int) float64 {
	return clamp(snap(c+float64(n)*l.CapacityStep, l.CapacityStep), l.MinCapacity, l.MaxCapacity)
}

// Clamp applies DefaultLimits.
func Clamp(req Request) Request {
	return DefaultLimits.Clamp(req)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func snap(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Round(v/step) * step
}
