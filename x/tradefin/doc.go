/*
Package tradefin implements trade finance collateral and escrows.

A collateral token is a tokenized claim on a real world asset, created by
its owner. A trade escrow binds a buyer, a seller and a collateral token
together with an amount. Every escrow names an oracle, the only identity
that can release it.

	Pending --activate--> Active --release(oracle)--> Released

Activation does not require any signature. Collaterals and escrows are
never deleted, ids of both start at 1 and are never reused.
*/
package tradefin
