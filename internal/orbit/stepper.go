package orbit

import "fmt"

// ReferenceRate is the refresh rate the fixed per-tick steps were tuned
// for. ElapsedStep uses it to turn seconds into "ticks".
const ReferenceRate = 60

// Stepper converts a frame's delta time into a multiplier for per-tick steps.
type Stepper interface {
	Scale(deltaTime float32) float32
}

// FixedStep advances by exactly one step per tick, so motion speed follows
// the display refresh rate.
type FixedStep struct{}

func (FixedStep) Scale(float32) float32 { return 1 }

// ElapsedStep scales each step by the real time elapsed, relative to Rate.
type ElapsedStep struct {
	Rate float32
}

func (s ElapsedStep) Scale(deltaTime float32) float32 {
	rate := s.Rate
	if rate <= 0 {
		rate = ReferenceRate
	}
	return deltaTime * rate
}

// NewStepper maps a config mode name to a Stepper.
func NewStepper(mode string) (Stepper, error) {
	switch mode {
	case "", "fixed":
		return FixedStep{}, nil
	case "elapsed":
		return ElapsedStep{Rate: ReferenceRate}, nil
	default:
		return nil, fmt.Errorf("orbit: unknown step mode %q", mode)
	}
}
