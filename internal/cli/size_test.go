package cli

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/fdr2csv/internal/schema"
)

func TestSizeCommand(t *testing.T) {
	stdout, err := runCommand(t, "size")
	require.NoError(t, err)

	assert.Contains(t, stdout, "elac_1_bus")
	assert.Contains(t, stdout, "engine")
	assert.Contains(t, stdout, "total")
	assert.Contains(t, stdout, fmt.Sprintf("%d bytes", schema.A32NX().ByteSize()))
	assert.Contains(t, stdout, fmt.Sprintf("interface version %d", schema.InterfaceVersion))
}
