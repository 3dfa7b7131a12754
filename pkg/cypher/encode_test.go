package cypher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/memload/pkg/memload"
)

func TestEncodeLabels_SingleLabel(t *testing.T) {
	got, err := EncodeLabels("Person")
	require.NoError(t, err)
	assert.Equal(t, ":Person", got)
}

func TestEncodeLabels_EmptyInputs(t *testing.T) {
	for _, input := range []any{nil, "", []string{}, []any{}} {
		got, err := EncodeLabels(input)
		require.NoError(t, err)
		assert.Empty(t, got, "input %#v", input)
	}
}

func TestEncodeLabels_OrderPreserved(t *testing.T) {
	got, err := EncodeLabels([]string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, ":A:B", got)

	got, err = EncodeLabels([]string{"B", "A"})
	require.NoError(t, err)
	assert.Equal(t, ":B:A", got)
}

func TestEncodeLabels_AnySlice(t *testing.T) {
	got, err := EncodeLabels([]any{"Person", "Employee"})
	require.NoError(t, err)
	assert.Equal(t, ":Person:Employee", got)
}

func TestEncodeLabels_SkipsEmptyEntries(t *testing.T) {
	got, err := EncodeLabels([]string{"A", "", "B"})
	require.NoError(t, err)
	assert.Equal(t, ":A:B", got)
}

func TestEncodeLabels_UnsupportedType(t *testing.T) {
	_, err := EncodeLabels(42)
	assert.ErrorIs(t, err, memload.ErrUnsupportedValue)

	_, err = EncodeLabels([]any{"Person", 42})
	assert.ErrorIs(t, err, memload.ErrUnsupportedValue)
}

func TestEncodeProperties_Empty(t *testing.T) {
	got, err := EncodeProperties(nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = EncodeProperties(map[string]any{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEncodeProperties_SortedKeys(t *testing.T) {
	got, err := EncodeProperties(map[string]any{
		"name": "Alice",
		"age":  30,
	})
	require.NoError(t, err)
	assert.Equal(t, `{age: 30, name: "Alice"}`, got)
}

func TestEncodeProperties_UnsupportedValue(t *testing.T) {
	_, err := EncodeProperties(map[string]any{"ch": make(chan int)})
	assert.ErrorIs(t, err, memload.ErrUnsupportedValue)
	assert.Contains(t, err.Error(), `"ch"`)
}

func TestEncodeValue_Primitives(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"string", "hello", `"hello"`},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"int", 42, "42"},
		{"negative int", -7, "-7"},
		{"int64", int64(1 << 40), "1099511627776"},
		{"uint", uint(8), "8"},
		{"float", 2.5, "2.5"},
		{"integral float", float64(30), "30"},
		{"float32", float32(1.5), "1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeValue(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeValue_StringEscaping(t *testing.T) {
	got, err := EncodeValue(`say "hi"` + "\n" + `c:\temp`)
	require.NoError(t, err)
	assert.Equal(t, `"say \"hi\"\nc:\\temp"`, got)
}

func TestEncodeValue_Slices(t *testing.T) {
	got, err := EncodeValue([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 3]", got)

	got, err = EncodeValue([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, `["a", "b"]`, got)

	got, err = EncodeValue([]any{1, "two", true})
	require.NoError(t, err)
	assert.Equal(t, `[1, "two", true]`, got)
}

func TestEncodeValue_UnsupportedElement(t *testing.T) {
	_, err := EncodeValue([]any{1, struct{}{}})
	assert.ErrorIs(t, err, memload.ErrUnsupportedValue)
}

func TestEncodeValue_UnsupportedType(t *testing.T) {
	_, err := EncodeValue(map[int]int{1: 2})
	assert.ErrorIs(t, err, memload.ErrUnsupportedValue)
}
