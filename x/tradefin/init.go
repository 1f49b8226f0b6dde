package tradefin

import (
	"context"

	"github.com/iov-one/vault"
)

const optKey = "tradefin"

// Genesis is the "tradefin" section of the genesis app state.
type Genesis struct {
	Admin vault.Address `json:"admin"`
}

// Initializer fulfils the Initializer interface to record the admin from
// the genesis file.
type Initializer struct{}

var _ vault.Initializer = Initializer{}

// FromGenesis initializes the admin if one is declared. A missing section
// leaves the system uninitialized, so that InitializeMsg can be used.
func (Initializer) FromGenesis(opts vault.Options, kv vault.KVStore) error {
	var gen Genesis
	if err := opts.ReadOptions(optKey, &gen); err != nil {
		return err
	}
	if len(gen.Admin) == 0 {
		return nil
	}
	// Initialization does not consult the gate.
	return NewController(nil).Initialize(context.Background(), kv, gen.Admin)
}
