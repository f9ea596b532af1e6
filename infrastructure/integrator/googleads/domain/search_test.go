package googleadsdomain

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt64Value_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Int64Value
		wantErr  bool
	}{
		{name: "texto", raw: `"23145678901"`, expected: 23145678901},
		{name: "número", raw: `42`, expected: 42},
		{name: "acima de 2^53 sem perda", raw: `"9007199254740993"`, expected: 9007199254740993},
		{name: "com casa decimal", raw: `"12.0"`, expected: 12},
		{name: "nulo", raw: `null`, expected: 0},
		{name: "vazio", raw: `""`, expected: 0},
		{name: "inválido", raw: `"abc"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Int64Value
			err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal([]byte(tt.raw), &v)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}
