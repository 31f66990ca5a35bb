package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/trebuchet-org/crater/internal/usecase"
)

// NetworksRenderer renders the configured network list
type NetworksRenderer struct {
	out  io.Writer
	json bool
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, jsonOutput bool) *NetworksRenderer {
	return &NetworksRenderer{out: out, json: jsonOutput}
}

// Render writes the network list
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if r.json {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Networks)
	}

	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, FormatWarning("No networks configured in foundry.toml [rpc_endpoints]"))
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Network", "RPC URL", "Explorer"})

	for _, network := range result.Networks {
		t.AppendRow(table.Row{network.Name, network.RPCURL, network.Explorer})
	}

	t.Render()
	return nil
}
