package simulation

// Outcome is the result of a randomized failure draw.
type Outcome int

const (
	// OutcomeOK means the request proceeds normally.
	OutcomeOK Outcome = iota
	// OutcomeInternalError maps to a 500 response.
	OutcomeInternalError
	// OutcomeUnavailable maps to a 503 response.
	OutcomeUnavailable
)

// FailureInjector raises randomized errors independent of request content.
// Deterministic validation errors (not-found, out-of-stock) are not its
// business; those stay with the store lookups.
type FailureInjector struct {
	rand               Rand
	paymentFailureRate float64
	errorRate          float64
	unavailableRate    float64
}

// NewFailureInjector creates a failure injector with the given rates.
// paymentFailureRate gates order creation; errorRate and unavailableRate
// partition the error endpoint's outcome space.
func NewFailureInjector(rnd Rand, paymentFailureRate, errorRate, unavailableRate float64) *FailureInjector {
	return &FailureInjector{
		rand:               rnd,
		paymentFailureRate: paymentFailureRate,
		errorRate:          errorRate,
		unavailableRate:    unavailableRate,
	}
}

// PaymentFails reports whether the current order creation should be
// rejected with a payment error. Callers must check this before touching
// the order counter.
func (f *FailureInjector) PaymentFails() bool {
	return f.rand.Float64() < f.paymentFailureRate
}

// ErrorOutcome draws one uniform value r and buckets it: r below the error
// rate yields an internal error, r inside the next band yields service
// unavailable, anything else succeeds.
func (f *FailureInjector) ErrorOutcome() Outcome {
	r := f.rand.Float64()
	switch {
	case r < f.errorRate:
		return OutcomeInternalError
	case r < f.errorRate+f.unavailableRate:
		return OutcomeUnavailable
	default:
		return OutcomeOK
	}
}
