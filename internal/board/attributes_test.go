package board

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/embeddedci/boardcat/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func writeTargetsJSON(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "targets.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestBuildAttributes(t *testing.T) {
	t.Parallel()

	path := writeTargetsJSON(t, `{
		"Family": {"public": false, "core": "Cortex-M4", "macros": ["BASE"]},
		"K64F": {"inherits": ["Family"], "macros_add": ["FRDM"]}
	}`)

	resolved, err := BuildAttributes(Board{BoardType: "K64F"}, path)
	require.NoError(t, err)

	assert.True(t, resolved.Attributes["core"].RawEquals(cty.StringVal("Cortex-M4")))
	assert.Equal(t, []string{"Family", "K64F"}, resolved.Labels)
}

func TestBuildAttributes_UnknownBoardType(t *testing.T) {
	t.Parallel()

	path := writeTargetsJSON(t, `{"K64F": {}}`)

	_, err := BuildAttributes(Board{BoardType: "NOT_A_TARGET"}, path)
	require.ErrorIs(t, err, catalog.ErrTargetNotFound)
	assert.Contains(t, err.Error(), "NOT_A_TARGET")
}

func TestBuildAttributes_MissingCatalog(t *testing.T) {
	t.Parallel()

	_, err := BuildAttributes(Board{BoardType: "K64F"}, filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
