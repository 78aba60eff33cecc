// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

// The core packages must stay independent of orchestration and presentation:
// align/locator know nothing about the pipeline, and nothing below the app
// layer may reach back into cli or cmd.
func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"vlocate/internal/align": {
			"vlocate/internal/pipeline", "vlocate/internal/locator",
			"vlocate/internal/output", "vlocate/internal/pretty",
			"vlocate/internal/cli", "vlocate/internal/app", "vlocate/cmd/",
		},
		"vlocate/internal/locator": {
			"vlocate/internal/pipeline", "vlocate/internal/output",
			"vlocate/internal/cli", "vlocate/internal/app", "vlocate/cmd/",
		},
		"vlocate/internal/pipeline": {
			"vlocate/internal/output", "vlocate/internal/pretty",
			"vlocate/internal/cli", "vlocate/internal/app", "vlocate/cmd/",
		},
		"vlocate/internal/output": {
			"vlocate/internal/cli", "vlocate/internal/app", "vlocate/cmd/",
		},
		"vlocate/internal/pretty": {
			"vlocate/internal/cli", "vlocate/internal/app", "vlocate/cmd/",
		},
		"vlocate/internal/refseq": {
			"vlocate/internal/align", "vlocate/internal/pipeline",
			"vlocate/internal/cli", "vlocate/internal/app", "vlocate/cmd/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "vlocate/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "vlocate/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
