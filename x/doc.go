/*
Package x contains the interfaces shared by all extensions, most notably the
Authenticator used to verify who authorized a transaction and the Gate built
on top of it.

Concrete extensions live in subpackages. x/sigs verifies ed25519 signatures,
x/tradefin implements the trade finance state machine and x/utils provides
generic decorators.
*/
package x
