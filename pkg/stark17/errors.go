package stark17

import (
	"errors"
	"fmt"

	"github.com/tinystark/stark17/internal/stark17/core"
	"github.com/tinystark/stark17/internal/stark17/protocols"
)

// ErrorCode classifies why proof generation or verification failed.
type ErrorCode int

const (
	// ErrUnknown is the zero value and should never be returned.
	ErrUnknown ErrorCode = iota
	// ErrProofGeneration means the prover failed to construct a proof.
	ErrProofGeneration
	// ErrMerkleVerificationFailed means an authentication path did not
	// reproduce its claimed root.
	ErrMerkleVerificationFailed
	// ErrConstraintEquationMismatch means the opened values do not
	// satisfy the composition equation.
	ErrConstraintEquationMismatch
	// ErrFriFoldMismatch means an opened FRI layer pair did not fold to
	// the next layer's claimed value.
	ErrFriFoldMismatch
	// ErrTerminalMismatch means the FRI terminal scalar does not match
	// the verifier's own recomputation.
	ErrTerminalMismatch
	// ErrInvalidProof covers structurally malformed proofs, such as a
	// query index transcript mismatch.
	ErrInvalidProof
	// ErrFieldInversionOfZero means the prover attempted to invert the
	// zero field element while evaluating a constraint or FRI fold; a
	// programming error, not a malicious input.
	ErrFieldInversionOfZero
	// ErrInterpolationDuplicatePoints means Lagrange interpolation was
	// asked to fit two points sharing an x-coordinate; a programming
	// error, not a malicious input.
	ErrInterpolationDuplicatePoints
)

func (c ErrorCode) String() string {
	switch c {
	case ErrProofGeneration:
		return "ProofGeneration"
	case ErrMerkleVerificationFailed:
		return "MerkleVerificationFailed"
	case ErrConstraintEquationMismatch:
		return "ConstraintEquationMismatch"
	case ErrFriFoldMismatch:
		return "FriFoldMismatch"
	case ErrTerminalMismatch:
		return "TerminalMismatch"
	case ErrInvalidProof:
		return "InvalidProof"
	case ErrFieldInversionOfZero:
		return "FieldInversionOfZero"
	case ErrInterpolationDuplicatePoints:
		return "InterpolationDuplicatePoints"
	default:
		return "Unknown"
	}
}

// Error is the error type every exported function in this package
// returns, pairing a stable ErrorCode with the underlying cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("stark17: %s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("stark17: %s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target shares this error's code, so callers can
// write errors.Is(err, &stark17.Error{Code: stark17.ErrTerminalMismatch}).
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Code == other.Code
	}
	return false
}

// wrapProveErr classifies an internal prover failure into the public
// ErrorCode taxonomy, distinguishing the two named programming-error
// causes from the generic ErrProofGeneration fallback.
func wrapProveErr(err error) error {
	if err == nil {
		return nil
	}
	var zeroInvErr *core.ZeroInversionError
	var dupPointErr *core.DuplicateInterpolationPointError

	switch {
	case errors.As(err, &zeroInvErr):
		return &Error{Code: ErrFieldInversionOfZero, Message: "field inversion of zero", Cause: err}
	case errors.As(err, &dupPointErr):
		return &Error{Code: ErrInterpolationDuplicatePoints, Message: "interpolation points share an x-coordinate", Cause: err}
	default:
		return &Error{Code: ErrProofGeneration, Message: "failed to generate proof", Cause: err}
	}
}

// wrapVerifyErr classifies an internal protocols error into the
// public ErrorCode taxonomy.
func wrapVerifyErr(err error) error {
	if err == nil {
		return nil
	}
	var merkleErr *protocols.MerkleVerificationFailedError
	var constraintErr *protocols.ConstraintEquationMismatchError
	var friErr *protocols.FriFoldMismatchError
	var terminalErr *protocols.TerminalMismatchError

	switch {
	case errors.As(err, &merkleErr):
		return &Error{Code: ErrMerkleVerificationFailed, Message: merkleErr.Error(), Cause: err}
	case errors.As(err, &constraintErr):
		return &Error{Code: ErrConstraintEquationMismatch, Message: constraintErr.Error(), Cause: err}
	case errors.As(err, &friErr):
		return &Error{Code: ErrFriFoldMismatch, Message: friErr.Error(), Cause: err}
	case errors.As(err, &terminalErr):
		return &Error{Code: ErrTerminalMismatch, Message: terminalErr.Error(), Cause: err}
	default:
		return &Error{Code: ErrInvalidProof, Message: "proof verification failed", Cause: err}
	}
}
