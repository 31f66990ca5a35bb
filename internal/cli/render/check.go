package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/trebuchet-org/crater/internal/usecase"
	"github.com/trebuchet-org/crater/pkg/create2"
)

// CheckRenderer renders deployment existence checks
type CheckRenderer struct {
	out  io.Writer
	json bool
}

// NewCheckRenderer creates a new check renderer
func NewCheckRenderer(out io.Writer, jsonOutput bool) *CheckRenderer {
	return &CheckRenderer{out: out, json: jsonOutput}
}

// Render writes the check result
func (r *CheckRenderer) Render(result *usecase.CheckDeploymentResult) error {
	if r.json {
		payload := struct {
			Address  string `json:"address"`
			Deployed bool   `json:"deployed"`
			Reason   string `json:"reason,omitempty"`
			ChainID  uint64 `json:"chainId"`
			Network  string `json:"network"`
		}{
			Address:  create2.AddressHex(result.Address),
			Deployed: result.Deployed,
			Reason:   result.Reason,
			ChainID:  result.ChainID,
			Network:  result.Network.Name,
		}
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	where := fmt.Sprintf("%s on %s (chain ID %d)", create2.AddressHex(result.Address), result.Network.Name, result.ChainID)
	if result.Deployed {
		fmt.Fprintln(r.out, FormatSuccess("Contract deployed at "+where))
	} else {
		fmt.Fprintln(r.out, FormatWarning("No contract at "+where))
	}

	return nil
}
