// Package catalog provides versioning utilities for Catalog.
package catalog

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

// ComputeVersion computes a deterministic version for a Catalog.
// Priority: catalog Version, else SHA256(catalog JSON)[:8].
func ComputeVersion(c *Catalog) string {
	if c.Version != "" {
		return c.Version
	}

	data, err := json.Marshal(c)
	if err != nil {
		// Fallback (should not happen for a decoded catalog)
		return "invalid"
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash[:8])
}
