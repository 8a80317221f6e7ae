//go:build js && wasm

// injwallet-wasm exposes wallet generation to a browser page. Go callbacks
// cannot raise JavaScript exceptions, so the raw functions are registered
// under the injwallet object and return an Error value on failure;
// injwallet.js turns those into the throwing globals
//
//	generate_injective_wallet()                  -> JSON string
//	get_wallet_export_text(address, private_key) -> string
package main

import (
	"encoding/json"
	"errors"
	"os"
	"syscall/js"

	"github.com/Klingon-tech/injwallet/internal/log"
	"github.com/Klingon-tech/injwallet/internal/wallet"
)

var errArgs = errors.New("expected (address, private_key)")

func main() {
	log.SetOutput(os.Stderr, "warn")

	gen := wallet.NewGenerator()
	api := js.Global().Get("Object").New()
	api.Set("generate", js.FuncOf(func(_ js.Value, _ []js.Value) any {
		data, err := generateJSON(gen)
		if err != nil {
			return jsError(err)
		}
		return data
	}))
	api.Set("exportText", js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) != 2 || args[0].Type() != js.TypeString || args[1].Type() != js.TypeString {
			return jsError(errArgs)
		}
		return gen.ExportText(wallet.Record{
			Address:    args[0].String(),
			PrivateKey: args[1].String(),
		})
	}))
	js.Global().Set("injwallet", api)
	log.App.Info().Msg("Wallet module ready")

	select {}
}

func generateJSON(gen *wallet.Generator) (string, error) {
	rec, err := gen.GenerateWallet()
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func jsError(err error) js.Value {
	return js.Global().Get("Error").New(err.Error())
}
