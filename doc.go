/*
Package vault defines the interfaces used throughout the trade finance
application: storage, transactions, handlers, results and events. Concrete
implementations live in subpackages.

We pass context through context.Context between app, middleware, and
handlers. Vault defines some common keys to store info, such as block height,
chain id and block time. Each extension, such as sigs, may add its own keys to
enrich the context with specific data.

There should exist two functions for every XYZ of type T that we want to
support in Context:

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)

WithXYZ may panic if the value was previously set to avoid lower-level
modules overwriting the value (eg. height, chain id).
*/
package vault
