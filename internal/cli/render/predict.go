package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/trebuchet-org/crater/internal/usecase"
	"github.com/trebuchet-org/crater/pkg/create2"
)

// PredictRenderer renders address prediction results
type PredictRenderer struct {
	out  io.Writer
	json bool
}

// NewPredictRenderer creates a new predict renderer
func NewPredictRenderer(out io.Writer, jsonOutput bool) *PredictRenderer {
	return &PredictRenderer{out: out, json: jsonOutput}
}

// Render writes the prediction result
func (r *PredictRenderer) Render(result *usecase.PredictAddressResult) error {
	if r.json {
		return r.renderJSON(result)
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)

	if result.ContractName != "" {
		t.AppendRow(table.Row{"Contract", result.ContractName})
	}
	t.AppendRow(table.Row{"Deployer", create2.AddressHex(result.Deployer)})
	t.AppendRow(table.Row{"Salt", fmt.Sprintf("0x%x", result.SaltBytes)})
	t.AppendRow(table.Row{"Init code hash", result.InitCodeHash.Hex()})
	t.AppendRow(table.Row{"Predicted address", create2.AddressHex(result.Address)})
	t.Render()

	if result.Deployed != nil {
		if *result.Deployed {
			fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("Already deployed on %s", result.Network.Name)))
		} else {
			fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Address is free on %s", result.Network.Name)))
		}
	}

	return nil
}

func (r *PredictRenderer) renderJSON(result *usecase.PredictAddressResult) error {
	payload := struct {
		Contract     string `json:"contract,omitempty"`
		Deployer     string `json:"deployer"`
		Salt         string `json:"salt"`
		InitCodeHash string `json:"initCodeHash"`
		Address      string `json:"address"`
		Deployed     *bool  `json:"deployed,omitempty"`
		Network      string `json:"network,omitempty"`
	}{
		Contract:     result.ContractName,
		Deployer:     create2.AddressHex(result.Deployer),
		Salt:         fmt.Sprintf("0x%x", result.SaltBytes),
		InitCodeHash: result.InitCodeHash.Hex(),
		Address:      create2.AddressHex(result.Address),
		Deployed:     result.Deployed,
	}
	if result.Network != nil {
		payload.Network = result.Network.Name
	}

	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
