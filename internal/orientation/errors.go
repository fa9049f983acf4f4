package orientation

// ControllerError is a custom error type for controller construction errors
type ControllerError string

// Error implements the error interface
func (e ControllerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig       ControllerError = "config cannot be nil"
	ErrNilRandom       ControllerError = "random source cannot be nil"
	ErrInvalidDieKind  ControllerError = "unsupported die kind"
	ErrNoFaces         ControllerError = "die has no faces"
	ErrBadStepFraction ControllerError = "step fraction must be at most 1"
)
