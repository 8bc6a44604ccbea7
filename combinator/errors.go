package combinator

import "fmt"

// RecoverableError signals that a parser alternative does not apply and
// that a caller (Or, Many, Possibly, SeparatedList, First, GenFirst) should
// try another one instead. It is the "this alternative does not apply" leg
// of the two-tier failure model.
type RecoverableError struct {
	Desc string
}

func (e *RecoverableError) Error() string {
	if e.Desc == "" {
		return "recoverable parse failure"
	}
	return fmt.Sprintf("recoverable parse failure: %s", e.Desc)
}

// NewRecoverableError builds a RecoverableError with a diagnostic description.
func NewRecoverableError(desc string) error {
	return &RecoverableError{Desc: desc}
}

// ErrEndOfInput is the recoverable failure raised by Next (and by anything
// composed from it) when the cursor has been advanced past the end of the
// stream. It is distinct in kind from an ordinary token mismatch only in
// naming; both are RecoverableError and are caught identically.
var ErrEndOfInput = &RecoverableError{Desc: "end of input"}

// FatalError signals that the input is definitively malformed at this
// point. It is produced only by NoCatch, Commit, and CommitHead, and is
// never caught by Or, Many, Possibly, SeparatedList, First, or GenFirst —
// it always propagates to the top-level caller.
type FatalError struct {
	Msg   string
	Start int
	Stop  int
}

func (e *FatalError) Error() string {
	return e.Msg
}

// IsRecoverable reports whether err is a *RecoverableError (the only kind
// that Or/Many/Possibly/SeparatedList/First/GenFirst are allowed to catch).
func IsRecoverable(err error) bool {
	_, ok := err.(*RecoverableError)
	return ok
}

// IsFatal reports whether err is a *FatalError.
func IsFatal(err error) bool {
	_, ok := err.(*FatalError)
	return ok
}
