package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// scriptRand replays a fixed sequence of Float64 draws.
type scriptRand struct {
	draws []float64
	i     int
}

func (r *scriptRand) Float64() float64 {
	v := r.draws[r.i%len(r.draws)]
	r.i++
	return v
}

func (r *scriptRand) Intn(n int) int { return 0 }

func TestFailureInjector_PaymentFails(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		draw float64
		want bool
	}{
		{"draw below rate fails", 0.05, 0.049, true},
		{"draw at rate succeeds", 0.05, 0.05, false},
		{"draw above rate succeeds", 0.05, 0.9, false},
		{"zero rate never fails", 0, 0, false},
		{"full rate always fails", 1.0, 0.999, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFailureInjector(&scriptRand{draws: []float64{tt.draw}}, tt.rate, 0.3, 0.2)
			assert.Equal(t, tt.want, f.PaymentFails())
		})
	}
}

func TestFailureInjector_ErrorOutcome(t *testing.T) {
	tests := []struct {
		name string
		draw float64
		want Outcome
	}{
		{"low draw is internal error", 0.0, OutcomeInternalError},
		{"just under error rate", 0.29, OutcomeInternalError},
		{"error rate boundary is unavailable", 0.3, OutcomeUnavailable},
		{"inside unavailable band", 0.49, OutcomeUnavailable},
		{"band boundary succeeds", 0.5, OutcomeOK},
		{"high draw succeeds", 0.99, OutcomeOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFailureInjector(&scriptRand{draws: []float64{tt.draw}}, 0.05, 0.3, 0.2)
			assert.Equal(t, tt.want, f.ErrorOutcome())
		})
	}
}

func TestFailureInjector_DisabledGates(t *testing.T) {
	f := NewFailureInjector(&scriptRand{draws: []float64{0, 0, 0}}, -1, -1, -1)

	assert.False(t, f.PaymentFails())
	assert.Equal(t, OutcomeOK, f.ErrorOutcome())
}
