package loadenv

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestCoerce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    string
		kind  Kind
		int   int64
		float float64
	}{
		{in: "123", kind: KindInt, int: 123},
		{in: " -42 ", kind: KindInt, int: -42},
		{in: "+7", kind: KindInt, int: 7},
		{in: "007", kind: KindInt, int: 7},
		{in: "56.97", kind: KindFloat, float: 56.97},
		{in: ".5", kind: KindFloat, float: 0.5},
		{in: "1e3", kind: KindFloat, float: 1000},
		{in: "3.", kind: KindFloat, float: 3},
		{in: "99999999999999999999", kind: KindFloat, float: 1e20},
		{in: "E=MC^2", kind: KindString},
		{in: "", kind: KindString},
		{in: "   ", kind: KindString},
		{in: "0x1F", kind: KindString},
		{in: "NaN", kind: KindString},
		{in: "Inf", kind: KindString},
		{in: "1_000", kind: KindString},
		{in: "12abc", kind: KindString},
		{in: "1.2.3", kind: KindString},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v := Coerce(tt.in)
			assert.Equal(t, tt.kind, v.Kind)
			assert.Equal(t, tt.in, v.Str)
			switch tt.kind {
			case KindInt:
				assert.Equal(t, tt.int, v.Int)
			case KindFloat:
				assert.InDelta(t, tt.float, v.Float, 1e-9)
			}
		})
	}
}

func TestValue_Marshal(t *testing.T) {
	t.Parallel()

	table := coerceAll(map[string]string{"A": "123", "B": "56.97", "C": "E=MC^2"})

	out, err := json.Marshal(table)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"A":123,"B":56.97,"C":"E=MC^2"}`, string(out))

	y, err := yaml.Marshal(table)
	assert.NoError(t, err)
	assert.Equal(t, "A: 123\nB: 56.97\nC: E=MC^2\n", string(y))
}

func TestTable_Accessors(t *testing.T) {
	t.Parallel()

	table := coerceAll(map[string]string{"N": "5", "F": "2.5", "S": "hello"})

	n, ok := table.Int("N")
	assert.True(t, ok)
	assert.Equal(t, int64(5), n)

	_, ok = table.Int("F")
	assert.False(t, ok)

	f, ok := table.Float("N")
	assert.True(t, ok)
	assert.Equal(t, 5.0, f)

	_, ok = table.Float("S")
	assert.False(t, ok)
	_, ok = table.Float("MISSING")
	assert.False(t, ok)

	assert.Equal(t, "hello", table.String("S"))
	assert.Equal(t, "", table.String("MISSING"))
	assert.Equal(t, []string{"F", "N", "S"}, table.Keys())
	assert.Equal(t, []string{"N"}, table.Subset([]string{"N", "MISSING"}).Keys())
}
