package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeColumn(t *testing.T) {
	t.Run("plain text is scalar", func(t *testing.T) {
		v := DecodeColumn("Welcome")
		assert.Equal(t, KindScalar, v.Kind)
		assert.Equal(t, "Welcome", v.Text)
	})

	t.Run("array literal is list", func(t *testing.T) {
		v := DecodeColumn(`["Step 1","Step 2"]`)
		assert.Equal(t, KindList, v.Kind)
		assert.Equal(t, []string{"Step 1", "Step 2"}, v.Items)
	})

	t.Run("surrounding whitespace is tolerated", func(t *testing.T) {
		v := DecodeColumn("  [\"a\"]\n")
		assert.Equal(t, KindList, v.Kind)
		assert.Equal(t, []string{"a"}, v.Items)
	})

	t.Run("malformed literal degrades to scalar", func(t *testing.T) {
		raw := `[broken, not json]`
		v := DecodeColumn(raw)
		assert.Equal(t, KindScalar, v.Kind)
		assert.Equal(t, raw, v.Text)
	})

	t.Run("bracketed prose stays scalar", func(t *testing.T) {
		raw := `[citation needed]`
		v := DecodeColumn(raw)
		assert.Equal(t, KindScalar, v.Kind)
		assert.Equal(t, raw, v.Text)
	})
}

func TestValue_RoundTrip(t *testing.T) {
	// An ordered list must survive encode + decode with order intact.
	original := ListValue("Step 1", "Step 2", "Step 3")
	decoded := DecodeColumn(original.EncodeColumn())

	assert.Equal(t, KindList, decoded.Kind)
	assert.Equal(t, []string{"Step 1", "Step 2", "Step 3"}, decoded.Items)
	assert.True(t, original.Equal(decoded))
}

func TestValue_JSON(t *testing.T) {
	t.Run("scalar as string", func(t *testing.T) {
		data, err := json.Marshal(ScalarValue("hello"))
		require.NoError(t, err)
		assert.Equal(t, `"hello"`, string(data))

		var v Value
		require.NoError(t, json.Unmarshal(data, &v))
		assert.True(t, v.Equal(ScalarValue("hello")))
	})

	t.Run("list as array", func(t *testing.T) {
		data, err := json.Marshal(ListValue("a", "b"))
		require.NoError(t, err)
		assert.Equal(t, `["a","b"]`, string(data))

		var v Value
		require.NoError(t, json.Unmarshal(data, &v))
		assert.True(t, v.Equal(ListValue("a", "b")))
	})
}

func TestFieldFromKey(t *testing.T) {
	assert.Equal(t, "title", FieldFromKey("hero.title", "hero"))
	// Field names containing the separator stay intact because the split
	// uses the row's stored section, not a pattern.
	assert.Equal(t, "cta.label", FieldFromKey("hero.cta.label", "hero"))
	// Key without a section prefix is already the field name.
	assert.Equal(t, "title", FieldFromKey("title", "hero"))
}

func TestLangValues(t *testing.T) {
	var lv LangValues
	assert.True(t, lv.Set(LangSV, ScalarValue("Hej")))
	assert.False(t, lv.Set("fr", ScalarValue("Bonjour")))

	got, ok := lv.Get(LangSV)
	assert.True(t, ok)
	assert.Equal(t, "Hej", got.Text)

	_, ok = lv.Get("fr")
	assert.False(t, ok)
}
