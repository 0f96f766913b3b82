package transform

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_MarshalKeepsOrderAndLiterals(t *testing.T) {
	rec := Record{
		{Key: "単語", Value: "食べる"},
		{Key: "意味", Value: "<eat> & \"drink\""},
		{Key: "基幹", Value: ""},
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	require.NoError(t, enc.Encode(rec))
	assert.Equal(t, `{"単語":"食べる","意味":"<eat> & \"drink\"","基幹":""}`+"\n", buf.String())
}

func TestRecord_MarshalWithDefaultEscaping(t *testing.T) {
	rec := Record{{Key: "意味", Value: "<eat> & 食べる"}}

	out, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, `{"意味":"\u003ceat\u003e \u0026 食べる"}`, string(out))
}

func TestRecord_UnmarshalKeepsOrder(t *testing.T) {
	var rec Record
	require.NoError(t, json.Unmarshal([]byte(`{"z":"1","a":"2","m":""}`), &rec))

	assert.Equal(t, []string{"z", "a", "m"}, rec.Keys())
	assert.Equal(t, map[string]string{"z": "1", "a": "2", "m": ""}, rec.Map())
}

func TestRecord_UnmarshalRejectsNonStrings(t *testing.T) {
	var rec Record
	assert.Error(t, json.Unmarshal([]byte(`{"a":null}`), &rec))
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &rec))
	assert.Error(t, json.Unmarshal([]byte(`["a"]`), &rec))
}
