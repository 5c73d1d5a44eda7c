package expression

import (
	"context"
	"encoding/json"
	"testing"

	apperrors "cortex-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) interface{} {
	t.Helper()
	var v interface{}
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func eval(t *testing.T, expr string, root interface{}) interface{} {
	t.Helper()
	e, err := CompileJSON([]byte(expr))
	require.NoError(t, err, expr)
	v, err := e.Evaluate(context.Background(), NewScope(root))
	require.NoError(t, err, expr)
	return v
}

func TestEvaluate(t *testing.T) {
	root := map[string]interface{}{
		"c_name":  "Widget",
		"c_price": 12.5,
		"c_qty":   4,
		"c_tags":  []interface{}{"a", "b"},
		"c_dims":  map[string]interface{}{"w": 2, "h": 3},
		"c_none":  nil,
		"c_flag":  true,
	}

	testCases := []struct {
		name     string
		expr     string
		expected interface{}
	}{
		{"literal number", `5`, 5.0},
		{"literal string", `"plain"`, "plain"},
		{"$literal keeps operators", `{"$literal": {"$add": [1, 2]}}`, map[string]interface{}{"$add": []interface{}{1.0, 2.0}}},
		{"field path", `"$c_name"`, "Widget"},
		{"nested field path", `"$c_dims.h"`, 3.0},
		{"array index path", `"$c_tags.1"`, "b"},
		{"missing path", `"$c_missing.x"`, nil},
		{"root variable", `"$$ROOT.c_qty"`, 4.0},
		{"add", `{"$add": ["$c_price", 1, 2]}`, 15.5},
		{"add with null", `{"$add": ["$c_none", 1]}`, nil},
		{"subtract", `{"$subtract": [10, "$c_qty"]}`, 6.0},
		{"multiply", `{"$multiply": ["$c_price", "$c_qty"]}`, 50.0},
		{"divide", `{"$divide": [9, 2]}`, 4.5},
		{"mod", `{"$mod": [9, 4]}`, 1.0},
		{"abs", `{"$abs": -3}`, 3.0},
		{"floor", `{"$floor": 2.7}`, 2.0},
		{"ceil", `{"$ceil": 2.1}`, 3.0},
		{"eq", `{"$eq": ["$c_name", "Widget"]}`, true},
		{"ne mixed types", `{"$ne": [1, "1"]}`, true},
		{"gt", `{"$gt": ["$c_qty", 3]}`, true},
		{"lt null sorts first", `{"$lt": [null, 0]}`, true},
		{"cmp", `{"$cmp": ["a", "b"]}`, -1.0},
		{"and", `{"$and": ["$c_flag", {"$gt": ["$c_qty", 1]}]}`, true},
		{"and short circuits", `{"$and": [false, {"$divide": [1, 0]}]}`, false},
		{"or", `{"$or": [0, null, "x"]}`, true},
		{"not", `{"$not": [0]}`, true},
		{"cond array", `{"$cond": [{"$gt": ["$c_qty", 10]}, "many", "few"]}`, "few"},
		{"cond object", `{"$cond": {"if": "$c_flag", "then": 1, "else": 2}}`, 1.0},
		{"ifNull", `{"$ifNull": ["$c_none", "fallback"]}`, "fallback"},
		{"concat", `{"$concat": ["$c_name", "-", "x"]}`, "Widget-x"},
		{"concat null", `{"$concat": ["a", "$c_none"]}`, nil},
		{"toLower", `{"$toLower": "$c_name"}`, "widget"},
		{"toUpper null", `{"$toUpper": null}`, nil},
		{"toLower missing field", `{"$toLower": "$c_none"}`, nil},
		{"trim", `{"$trim": "  x "}`, "x"},
		{"substr", `{"$substr": ["héllo", 1, 3]}`, "éll"},
		{"substr null", `{"$substr": [null, 0, 1]}`, nil},
		{"substr huge length", `{"$substr": ["abc", 0, 1e19]}`, "abc"},
		{"substr huge start", `{"$substr": ["abc", 1e19, 1]}`, ""},
		{"substr negative length", `{"$substr": ["abc", 1, -1]}`, "bc"},
		{"strLenCP", `{"$strLenCP": "héllo"}`, 5.0},
		{"strLenCP null", `{"$strLenCP": "$c_none"}`, nil},
		{"split", `{"$split": ["a,b", ","]}`, []interface{}{"a", "b"}},
		{"regexMatch", `{"$regexMatch": {"input": "$c_name", "regex": "^wid", "options": "i"}}`, true},
		{"regexMatch null", `{"$regexMatch": {"input": "$c_none", "regex": "x"}}`, nil},
		{"size", `{"$size": "$c_tags"}`, 2.0},
		{"in", `{"$in": ["b", "$c_tags"]}`, true},
		{"arrayElemAt negative", `{"$arrayElemAt": ["$c_tags", -1]}`, "b"},
		{"arrayElemAt out of range", `{"$arrayElemAt": ["$c_tags", 5]}`, nil},
		{"arrayElemAt huge index", `{"$arrayElemAt": ["$c_tags", 1e19]}`, nil},
		{"arrayElemAt huge negative index", `{"$arrayElemAt": ["$c_tags", -1e19]}`, nil},
		{"isArray", `{"$isArray": ["$c_tags"]}`, true},
		{"type", `{"$type": "$c_dims"}`, "object"},
		{"toString", `{"$toString": 2.5}`, "2.5"},
		{"toNumber", `{"$toNumber": " 42 "}`, 42.0},
		{"toBool", `{"$toBool": ""}`, true},
		{"object literal", `{"total": {"$add": [1, 1]}}`, map[string]interface{}{"total": 2.0}},
		{"array literal", `[1, "$c_qty"]`, []interface{}{1.0, 4.0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, eval(t, tc.expr, root))
		})
	}
}

func TestVariables(t *testing.T) {
	e, err := Compile(decode(t, `{"$gt": [{"$strLenCP": "$$VALUE"}, 2]}`))
	require.NoError(t, err)

	ok, err := e.EvaluateBool(context.Background(), NewScope(nil).With(VarValue, "abc"))
	require.NoError(t, err)
	assert.True(t, ok)

	e, err = Compile("$$PRINCIPAL.roles.0")
	require.NoError(t, err)
	scope := NewScope(nil).With(VarPrincipal, map[string]interface{}{"roles": []string{"developer"}})
	v, err := e.Evaluate(context.Background(), scope)
	require.NoError(t, err)
	assert.Equal(t, "developer", v)

	e, err = Compile("$$NOW")
	require.NoError(t, err)
	v, err = e.Evaluate(context.Background(), NewScope(nil))
	require.NoError(t, err)
	assert.NotEmpty(t, v)
}

func TestCompileErrors(t *testing.T) {
	testCases := []struct {
		name string
		expr string
		path string
	}{
		{"unknown operator", `{"$bogus": 1}`, ""},
		{"unknown variable", `"$$SECRET"`, ""},
		{"mixed operator object", `{"$add": [1], "x": 1}`, ""},
		{"arity", `{"$subtract": [1]}`, "$subtract"},
		{"nested arity", `{"$add": [1, {"$divide": [1]}]}`, "$add.1.$divide"},
		{"bad regex", `{"$regexMatch": {"input": "x", "regex": "("}}`, "$regexMatch"},
		{"bad regex option", `{"$regexMatch": {"input": "x", "regex": "a", "options": "g"}}`, "$regexMatch"},
		{"cond shape", `{"$cond": {"if": true, "then": 1}}`, "$cond"},
		{"empty path", `"$"`, ""},
		{"empty segment", `"$a..b"`, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CompileJSON([]byte(tc.expr))
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrExpression)
			f := apperrors.From(err)
			assert.Equal(t, tc.path, f.Path)
		})
	}
}

func TestCompileLimits(t *testing.T) {
	var deep interface{} = 1.0
	for i := 0; i < maxDepth+2; i++ {
		deep = map[string]interface{}{"$abs": []interface{}{deep}}
	}
	_, err := Compile(deep)
	assert.Error(t, err)

	wide := make([]interface{}, maxNodes+1)
	for i := range wide {
		wide[i] = 1.0
	}
	_, err = Compile(map[string]interface{}{"$add": wide})
	assert.Error(t, err)
}

func TestRuntimeErrors(t *testing.T) {
	for _, expr := range []string{
		`{"$divide": [1, 0]}`,
		`{"$add": ["a", 1]}`,
		`{"$size": "x"}`,
		`{"$toNumber": "abc"}`,
		`{"$concat": ["a", 1]}`,
		`{"$substr": ["abc", 0.5, 1]}`,
		`{"$substr": ["abc", 0, 1.5]}`,
		`{"$substr": ["abc", -1, 1]}`,
	} {
		e, err := CompileJSON([]byte(expr))
		require.NoError(t, err, expr)
		_, err = e.Evaluate(context.Background(), NewScope(nil))
		assert.ErrorIs(t, err, apperrors.ErrExpression, expr)
	}
}

func TestCancelledContext(t *testing.T) {
	e := MustCompile(decode(t, `{"$add": [1, 2]}`))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.Evaluate(ctx, NewScope(nil))
	assert.True(t, apperrors.IsTimeout(err))
}

func TestCompareOrdering(t *testing.T) {
	ordered := []interface{}{nil, -1.0, 3.0, "a", "b", map[string]interface{}{}, []interface{}{}, false, true}
	for i := 0; i < len(ordered)-1; i++ {
		assert.Equal(t, -1, Compare(ordered[i], ordered[i+1]), "%v < %v", ordered[i], ordered[i+1])
		assert.Equal(t, 1, Compare(ordered[i+1], ordered[i]))
	}
	assert.Equal(t, 0, Compare([]interface{}{1.0, "x"}, []interface{}{1.0, "x"}))
}

func TestNormalize(t *testing.T) {
	v := Normalize(map[interface{}]interface{}{"a": 1, "b": []interface{}{int64(2), float32(1.5)}})
	assert.Equal(t, map[string]interface{}{"a": 1.0, "b": []interface{}{2.0, 1.5}}, v)
	assert.Equal(t, 3.0, Normalize(json.Number("3")))
}
