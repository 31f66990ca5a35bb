package artifacts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/sahilm/fuzzy"

	domainconfig "github.com/trebuchet-org/crater/internal/domain/config"
	"github.com/trebuchet-org/crater/internal/domain/models"
	"github.com/trebuchet-org/crater/internal/usecase"
	"github.com/trebuchet-org/crater/pkg/create2"
)

// maxSuggestions caps the "did you mean" list for unknown contracts
const maxSuggestions = 5

// Loader reads compiled contract artifacts from the Foundry out/ directory
type Loader struct {
	config *domainconfig.RuntimeConfig
}

// NewLoader creates a new artifact loader
func NewLoader(cfg *domainconfig.RuntimeConfig) *Loader {
	return &Loader{config: cfg}
}

// foundryArtifact mirrors the fields of a Foundry artifact JSON we need
type foundryArtifact struct {
	ABI      json.RawMessage `json:"abi"`
	Bytecode struct {
		Object string `json:"object"`
	} `json:"bytecode"`
}

// Load finds the artifact for a contract name under out/. Matching is on
// the artifact file stem (out/Counter.sol/Counter.json -> "Counter").
func (l *Loader) Load(ctx context.Context, name string) (*models.Artifact, error) {
	outDir := filepath.Join(l.config.ProjectRoot, l.config.OutDir())

	paths, err := l.index(outDir)
	if err != nil {
		return nil, err
	}

	var matches []string
	for stem := range paths {
		if strings.EqualFold(stem, name) {
			matches = append(matches, stem)
		}
	}

	switch len(matches) {
	case 0:
		return nil, l.unknownContractError(name, paths)
	case 1:
		return l.parse(matches[0], paths[matches[0]])
	default:
		return nil, fmt.Errorf("contract name %q is ambiguous: %v", name, matches)
	}
}

// index maps artifact file stems to their paths
func (l *Loader) index(outDir string) (map[string]string, error) {
	paths := make(map[string]string)

	err := filepath.WalkDir(outDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		stem := strings.TrimSuffix(d.Name(), ".json")
		// First hit wins; duplicate stems across directories are rare and
		// surfaced through the ambiguity error above when matched.
		if _, seen := paths[stem]; !seen {
			paths[stem] = path
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s (did you run forge build?): %w", outDir, err)
	}

	return paths, nil
}

// parse loads one artifact JSON into the domain model
func (l *Loader) parse(stem, path string) (*models.Artifact, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from our own index
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", path, err)
	}

	var raw foundryArtifact
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}

	if raw.Bytecode.Object == "" || raw.Bytecode.Object == "0x" {
		return nil, fmt.Errorf("artifact %s has no creation bytecode (interface or abstract contract?)", stem)
	}

	parsedABI, err := abi.JSON(bytes.NewReader(raw.ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI in %s: %w", path, err)
	}

	bytecode, err := create2.ParseHexBytes(raw.Bytecode.Object)
	if err != nil {
		return nil, fmt.Errorf("bad bytecode in %s: %w", path, err)
	}

	rel, err := filepath.Rel(l.config.ProjectRoot, path)
	if err != nil {
		rel = path
	}

	return &models.Artifact{
		ContractName: stem,
		Path:         rel,
		ABI:          parsedABI,
		Bytecode:     bytecode,
	}, nil
}

// unknownContractError builds an error with fuzzy-ranked suggestions
func (l *Loader) unknownContractError(name string, paths map[string]string) error {
	stems := make([]string, 0, len(paths))
	for stem := range paths {
		stems = append(stems, stem)
	}

	ranked := fuzzy.Find(name, stems)
	suggestions := make([]string, 0, maxSuggestions)
	for i, match := range ranked {
		if i >= maxSuggestions {
			break
		}
		suggestions = append(suggestions, match.Str)
	}

	if len(suggestions) > 0 {
		return fmt.Errorf("contract %q not found; did you mean one of %v?", name, suggestions)
	}
	return fmt.Errorf("contract %q not found in %s", name, l.config.OutDir())
}

// Ensure the adapter implements the interface
var _ usecase.ArtifactRepository = (*Loader)(nil)
