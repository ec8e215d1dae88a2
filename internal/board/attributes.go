package board

import (
	"fmt"

	"github.com/embeddedci/boardcat/internal/catalog"
)

// BuildAttributes resolves the build attributes for a board from the
// target catalog at the given path. The board's type is the name of its
// entry in the catalog.
func BuildAttributes(b Board, targetsJSONPath string) (*catalog.Resolved, error) {
	cat, err := catalog.LoadCatalog(targetsJSONPath)
	if err != nil {
		return nil, err
	}

	resolved, err := cat.Resolve(b.BoardType)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve build attributes for board %q: %w", b.BoardType, err)
	}
	return resolved, nil
}
