package app

import (
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

func checkResponse(res *vault.CheckResult) abci.ResponseCheckTx {
	if res == nil {
		return abci.ResponseCheckTx{}
	}
	return abci.ResponseCheckTx{
		Data:      res.Data,
		Log:       res.Log,
		GasWanted: res.GasAllocated,
	}
}

func deliverResponse(res *vault.DeliverResult) abci.ResponseDeliverTx {
	if res == nil {
		return abci.ResponseDeliverTx{}
	}
	return abci.ResponseDeliverTx{
		Data:    res.Data,
		Log:     res.Log,
		Tags:    res.Tags,
		GasUsed: res.GasUsed,
	}
}

// checkFailed reports err with its registered code. Unless debugging,
// unregistered errors are redacted.
func checkFailed(err error, debug bool) abci.ResponseCheckTx {
	code, log := errors.ABCIInfo(err, debug)
	return abci.ResponseCheckTx{Code: code, Log: "check tx: " + log}
}

func deliverFailed(err error, debug bool) abci.ResponseDeliverTx {
	code, log := errors.ABCIInfo(err, debug)
	return abci.ResponseDeliverTx{Code: code, Log: "deliver tx: " + log}
}
