/*
Package errors implements the error kinds used across the vault application.

Every failure returned by a handler or a controller must wrap one of the
registered root errors. The root error carries the ABCI code that is returned
to the client, so the client can tell apart for example an unauthorized call
from a missing escrow.

Use Register(code, description) to declare a new root error. Codes must be
unique, an attempt to register the same code twice panics. Extensions register
their kinds in a package level var block.

Wrap the root error at the point of failure to attach a stack trace and
context:

	return errors.Wrapf(errors.ErrNotFound, "escrow %d", id)

Test for an error kind with the Is method of the root error:

	if errors.ErrNotFound.Is(err) { ... }

Format an error with %+v to print the stack trace recorded by the first wrap.
*/
package errors
