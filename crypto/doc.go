/*
Package crypto implements the ed25519 signing keys used to authorize
transactions. The public key of a signer is represented as the
"sigs/ed25519/<pubkey>" condition, so the address of an account is the digest
of that condition.

Keys can be generated at random or derived from a BIP39 recovery phrase
following SLIP-10 with the DefaultDerivationPath.
*/
package crypto
