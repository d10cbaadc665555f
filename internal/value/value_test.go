package value_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/leonardinius/golox/internal/value"
	"github.com/stretchr/testify/assert"
)

func TestDisplay(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		in       value.Value
		display  string
		goString string
		typ      value.Type
	}{
		{"nil", value.NilValue, "nil", "nil", value.NilType},
		{"true", value.TrueValue, "true", "true", value.BoolType},
		{"false", value.FalseValue, "false", "false", value.BoolType},
		{"integral", value.Number(7), "7", "7", value.NumberType},
		{"negative", value.Number(-4), "-4", "-4", value.NumberType},
		{"fraction", value.Number(4.5), "4.5", "4.5", value.NumberType},
		{"shortest", value.Number(1.0 / 3.0), "0.3333333333333333", "0.3333333333333333", value.NumberType},
		{"large", value.Number(1e21), "1000000000000000000000", "1000000000000000000000", value.NumberType},
		{"infinity", value.Number(math.Inf(1)), "+Inf", "+Inf", value.NumberType},
		{"string", value.String("ab"), "ab", `"ab"`, value.StringType},
		{"empty string", value.String(""), "", `""`, value.StringType},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.display, tc.in.String())
			assert.Equal(t, tc.goString, fmt.Sprintf("%#v", tc.in))
			assert.Equal(t, tc.typ, tc.in.Type())
		})
	}
}

func TestOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, value.TrueValue, value.Of(true))
	assert.Equal(t, value.FalseValue, value.Of(false))
}

func TestTypeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "number", value.NumberType.String())
	assert.Equal(t, "Type(42)", value.Type(42).String())
}
