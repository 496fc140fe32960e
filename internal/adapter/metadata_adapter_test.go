package adapter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	m "github.com/mouse-blink/covobj/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMetadata = `{
  "packages": [
    {
      "name": "dancebox-runtime",
      "id": "path+file:///ws/runtime/dancebox#dancebox-runtime@0.1.0",
      "targets": [
        {"kind": ["lib"], "name": "dancebox_runtime"},
        {"kind": ["test"], "name": "integration_test"}
      ]
    },
    {
      "name": "tanssi-node",
      "id": "path+file:///ws/node#tanssi-node@0.1.0",
      "targets": [{"kind": ["bin"], "name": "tanssi-node"}]
    }
  ],
  "workspace_members": [
    "path+file:///ws/runtime/dancebox#dancebox-runtime@0.1.0",
    "path+file:///ws/node#tanssi-node@0.1.0"
  ],
  "target_directory": "/ws/target",
  "version": 1
}`

func TestParseMetadata(t *testing.T) {
	index, err := ParseMetadata(strings.NewReader(sampleMetadata))
	require.NoError(t, err)

	assert.Len(t, index.MemberIDs, 2)
	assert.Equal(t, "dancebox-runtime", index.PackagesByID[index.MemberIDs[0]].Name)
	assert.Equal(t,
		[]string{"dancebox-runtime", "dancebox_runtime", "integration_test", "tanssi-node"},
		index.Names())
}

func TestParseMetadata_Invalid(t *testing.T) {
	_, err := ParseMetadata(strings.NewReader("{not json"))
	assert.ErrorContains(t, err, "decode cargo metadata")
}

func TestCargoMetadataAdapter_LoadFile(t *testing.T) {
	adapter := NewCargoMetadataAdapter()

	path := filepath.Join(t.TempDir(), "metadata.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleMetadata), 0o600))

	index, err := adapter.LoadFile(m.Path(path))
	require.NoError(t, err)
	assert.Contains(t, index.Names(), "tanssi-node")

	_, err = adapter.LoadFile(m.Path(filepath.Join(t.TempDir(), "missing.json")))
	assert.Error(t, err)
}
