package dancevis

import "fmt"

// DefaultSpeed is used by nodes that were given no speed: 100 px per second.
var DefaultSpeed = Speed{ppms: 0.1}

// minDuration replaces a zero duration to keep rate derivation finite.
var minDuration = Milliseconds(1)

// Speed is a rate of travel in pixels per millisecond.
type Speed struct {
	ppms float64
}

// SpeedSet holds the inputs for NewSpeed. Exactly one of three combinations
// may be supplied:
//
//   - Speed: an explicit rate
//   - Distance with Duration
//   - StartPosition and EndPosition with Duration
//
// A zero Duration is raised to 1 ms.
type SpeedSet struct {
	Speed         float64
	Distance      float64
	Duration      Time
	StartPosition *Position
	EndPosition   *Position
}

// NewSpeed derives a speed from ss.
func NewSpeed(ss SpeedSet) (Speed, error) {
	if !isFinite(ss.Speed) || !isFinite(ss.Distance) || !isFinite(ss.Duration.ms) {
		return Speed{}, validationErrorf("NewSpeed", "speed inputs must be finite numbers")
	}
	if ss.Duration.ms < 0 {
		return Speed{}, validationErrorf("NewSpeed", "duration must be >= 0, got %v", ss.Duration)
	}
	duration := ss.Duration
	if duration.ms == 0 {
		duration = minDuration
	}

	byRate := ss.Speed != 0
	byDistance := ss.Distance != 0
	byPositions := ss.StartPosition != nil && ss.EndPosition != nil
	if (ss.StartPosition == nil) != (ss.EndPosition == nil) {
		return Speed{}, validationErrorf("NewSpeed", "start and end position must be given together")
	}

	n := 0
	for _, b := range [...]bool{byRate, byDistance, byPositions} {
		if b {
			n++
		}
	}
	switch {
	case n == 0:
		return Speed{}, validationErrorf("NewSpeed", "(1) speed or (2) distance and duration or (3) start/end position and duration must be provided")
	case n > 1:
		return Speed{}, validationErrorf("NewSpeed", "speed, distance and start/end position are mutually exclusive")
	case byRate:
		return Speed{ppms: ss.Speed}, nil
	case byDistance:
		return Speed{ppms: ss.Distance / duration.ms}, nil
	default:
		if !ss.StartPosition.isFinite() || !ss.EndPosition.isFinite() {
			return Speed{}, validationErrorf("NewSpeed", "positions must be finite")
		}
		return Speed{ppms: ss.StartPosition.Distance(*ss.EndPosition) / duration.ms}, nil
	}
}

// PixelsPerMillisecond returns an explicit rate. ppms must be finite.
func PixelsPerMillisecond(ppms float64) Speed {
	return Speed{ppms: ppms}
}

// PixelsPerMillisecond returns the rate.
func (s Speed) PixelsPerMillisecond() float64 { return s.ppms }

// DistanceIn returns how far the speed travels in elapsed.
func (s Speed) DistanceIn(elapsed Time) float64 { return s.ppms * elapsed.ms }

// IsZero reports whether s is the zero speed.
func (s Speed) IsZero() bool { return s.ppms == 0 }

// Equals reports whether both rates are exactly equal.
func (s Speed) Equals(other Speed) bool { return s.ppms == other.ppms }

// String formats the rate, e.g. "(0.10 ppms)".
func (s Speed) String() string {
	return fmt.Sprintf("(%.2f ppms)", s.ppms)
}
