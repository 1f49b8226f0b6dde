package errors

import (
	"errors"
	"fmt"
)

// SuccessABCICode is the code of a successful response.
const SuccessABCICode = 0

// Errors without a registered root are reported with this code and log.
const (
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo returns the code and the log of an ABCI response for err.
// Unregistered errors get code 1 and, unless debugging, a generic log.
// In debug mode the log includes the stack trace.
func ABCIInfo(err error, debug bool) (uint32, string) {
	code := abciCode(err)
	switch {
	case code == SuccessABCICode:
		return code, ""
	case debug:
		return code, fmt.Sprintf("%+v", err)
	case code == internalABCICode:
		return code, internalABCILog
	}
	return code, err.Error()
}

// abciCode returns the code of the first registered error in the err
// chain.
func abciCode(err error) uint32 {
	if isNilErr(err) {
		return SuccessABCICode
	}
	code := internalABCICode
	walk(err, func(cur error) bool {
		c, ok := cur.(interface{ ABCICode() uint32 })
		if ok {
			code = c.ABCICode()
		}
		return ok
	})
	return code
}

// Redact replaces unregistered errors and panics with a generic error,
// unless debugging.
func Redact(err error, debug bool) error {
	if debug {
		return err
	}
	if ErrPanic.Is(err) || abciCode(err) == internalABCICode {
		return errors.New(internalABCILog)
	}
	return err
}
