package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saturnines/notion-verbs/pkg/errors"
)

func TestVerbs(t *testing.T) {
	s := Verbs()

	assert.Equal(t, "verbs", s.Name)
	assert.Equal(t, []string{
		"単語", "意味", "基幹", "接頭辞", "英訳", "接頭辞基本意味", "語感", "構文",
		"分離性", "活用", "例文1", "日本語訳1", "例文2", "日本語訳2", "派生語", "対応英単語",
	}, s.Names())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
		msg     string
	}{
		{name: "bad_yaml", yaml: "fields: [", wantErr: errors.ErrConfiguration, msg: "parse schema YAML"},
		{name: "no_fields", yaml: "name: x\nfields: []\n", wantErr: errors.ErrValidation, msg: "at least one field"},
		{name: "empty_name", yaml: "name: x\nfields:\n  - name: \" \"\n", wantErr: errors.ErrValidation, msg: "fields[0].name is required"},
		{name: "duplicate", yaml: "name: x\nfields:\n  - name: a\n  - name: a\n", wantErr: errors.ErrValidation, msg: "duplicated"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Parse([]byte(tc.yaml))
			assert.Nil(t, s)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr))
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}
