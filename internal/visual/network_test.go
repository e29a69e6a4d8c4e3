package visual

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsgirard/tweetlab/internal/analysis"
)

func TestNetwork(t *testing.T) {
	pairs := []analysis.Pair{
		{A: "change", B: "climate", Count: 3},
		{A: "climate", B: "policy", Count: 2},
	}

	var buf bytes.Buffer
	require.NoError(t, Network("cooccurrence", pairs, &buf))

	out := buf.String()
	assert.Contains(t, out, "graph cooccurrence")
	assert.Contains(t, out, "climate")
	assert.Contains(t, out, "change")
	assert.Contains(t, out, "policy")
	assert.Contains(t, out, `weight=3`)
}

func TestNetworkEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Network("cooccurrence", nil, &buf))
	assert.Zero(t, buf.Len())
}
