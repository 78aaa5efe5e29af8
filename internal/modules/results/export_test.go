package results

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestWriteJSON_RecordShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, testTable()))

	// Field names are part of the output contract
	var raw []map[string]float64
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	require.Len(t, raw, 4)

	assert.Equal(t, -0.05, raw[0]["angle_deviation"])
	assert.Equal(t, 0.0, raw[0]["noise_strength"])
	assert.Equal(t, 0.999, raw[0]["fidelity"])

	// Table order is preserved
	assert.Equal(t, 0.01, raw[3]["noise_strength"])
}

func TestWriteMsgpack_RoundTrip(t *testing.T) {
	table := testTable()

	var buf bytes.Buffer
	require.NoError(t, WriteMsgpack(&buf, table))

	var decoded []Record
	require.NoError(t, msgpack.NewDecoder(&buf).Decode(&decoded))
	assert.Equal(t, Records(table), decoded)
}
