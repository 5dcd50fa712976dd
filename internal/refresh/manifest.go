package refresh

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonesrussell/rosterwatch/internal/domain"
)

// manifestPerm is the file mode for failure manifests.
const manifestPerm = 0o644

// ManifestPath returns the failure manifest location for a run mode. One
// manifest exists per mode, overwritten each run.
func ManifestPath(dir string, mode Mode) string {
	return filepath.Join(dir, fmt.Sprintf("failed_colleges_%s.json", mode))
}

// WriteManifest serializes the colleges that failed during a run to a JSON
// array for operator inspection. An empty run still writes the manifest so
// a previous run's failures don't linger.
func WriteManifest(dir string, mode Mode, failed []*domain.College) error {
	if failed == nil {
		failed = []*domain.College{}
	}

	data, err := json.MarshalIndent(failed, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	path := ManifestPath(dir, mode)
	if err := os.WriteFile(path, data, manifestPerm); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}

	return nil
}
