package expression

import (
	"context"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

type operatorSpec struct {
	min int
	max int // -1 means unbounded
	fn  opFunc
}

var operatorTable map[string]operatorSpec

func init() {
	operatorTable = map[string]operatorSpec{
		// arithmetic
		"$add":      {min: 1, max: -1, fn: opAdd},
		"$subtract": {min: 2, max: 2, fn: opSubtract},
		"$multiply": {min: 1, max: -1, fn: opMultiply},
		"$divide":   {min: 2, max: 2, fn: opDivide},
		"$mod":      {min: 2, max: 2, fn: opMod},
		"$abs":      {min: 1, max: 1, fn: unaryMath(math.Abs)},
		"$ceil":     {min: 1, max: 1, fn: unaryMath(math.Ceil)},
		"$floor":    {min: 1, max: 1, fn: unaryMath(math.Floor)},

		// comparison
		"$eq":  {min: 2, max: 2, fn: comparison(func(c int) bool { return c == 0 })},
		"$ne":  {min: 2, max: 2, fn: comparison(func(c int) bool { return c != 0 })},
		"$gt":  {min: 2, max: 2, fn: comparison(func(c int) bool { return c > 0 })},
		"$gte": {min: 2, max: 2, fn: comparison(func(c int) bool { return c >= 0 })},
		"$lt":  {min: 2, max: 2, fn: comparison(func(c int) bool { return c < 0 })},
		"$lte": {min: 2, max: 2, fn: comparison(func(c int) bool { return c <= 0 })},
		"$cmp": {min: 2, max: 2, fn: opCmp},

		// boolean
		"$and": {min: 1, max: -1, fn: opAnd},
		"$or":  {min: 1, max: -1, fn: opOr},
		"$not": {min: 1, max: 1, fn: opNot},

		// conditional
		"$ifNull": {min: 2, max: 2, fn: opIfNull},

		// string
		"$concat":   {min: 1, max: -1, fn: opConcat},
		"$toLower":  {min: 1, max: 1, fn: caseOp(strings.ToLower)},
		"$toUpper":  {min: 1, max: 1, fn: caseOp(strings.ToUpper)},
		"$trim":     {min: 1, max: 1, fn: opTrim},
		"$substr":   {min: 3, max: 3, fn: opSubstr},
		"$strLenCP": {min: 1, max: 1, fn: opStrLen},
		"$split":    {min: 2, max: 2, fn: opSplit},

		// array
		"$size":        {min: 1, max: 1, fn: opSize},
		"$in":          {min: 2, max: 2, fn: opIn},
		"$arrayElemAt": {min: 2, max: 2, fn: opArrayElemAt},
		"$isArray":     {min: 1, max: 1, fn: opIsArray},

		// type
		"$type":     {min: 1, max: 1, fn: opType},
		"$toString": {min: 1, max: 1, fn: opToString},
		"$toNumber": {min: 1, max: 1, fn: opToNumber},
		"$toBool":   {min: 1, max: 1, fn: opToBool},
	}
}

// Operators lists the names of every supported operator
func Operators() []string {
	names := make([]string, 0, len(operatorTable)+3)
	for name := range operatorTable {
		names = append(names, name)
	}
	names = append(names, "$literal", "$cond", "$regexMatch")
	return names
}

func evalAll(ctx context.Context, s *Scope, args []node) ([]interface{}, error) {
	out := make([]interface{}, len(args))
	for i, a := range args {
		v, err := a.eval(ctx, s)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// numbers evaluates args as numbers. ok is false when any of them is null.
func numbers(ctx context.Context, s *Scope, args []node) (nums []float64, ok bool, err error) {
	vals, err := evalAll(ctx, s, args)
	if err != nil {
		return nil, false, err
	}
	nums = make([]float64, len(vals))
	for i, v := range vals {
		if v == nil {
			return nil, false, nil
		}
		n, isNum := v.(float64)
		if !isNum {
			return nil, false, opErrorf("only supports numeric types, got %s", typeName(v))
		}
		nums[i] = n
	}
	return nums, true, nil
}

func opAdd(ctx context.Context, s *Scope, args []node) (interface{}, error) {
	nums, ok, err := numbers(ctx, s, args)
	if err != nil || !ok {
		return nil, err
	}
	sum := 0.0
	for _, n := range nums {
		sum += n
	}
	return sum, nil
}

func opSubtract(ctx context.Context, s *Scope, args []node) (interface{}, error) {
	nums, ok, err := numbers(ctx, s, args)
	if err != nil || !ok {
		return nil, err
	}
	return nums[0] - nums[1], nil
}

func opMultiply(ctx context.Context, s *Scope, args []node) (interface{}, error) {
	nums, ok, err := numbers(ctx, s, args)
	if err != nil || !ok {
		return nil, err
	}
	product := 1.0
	for _, n := range nums {
		product *= n
	}
	return product, nil
}

func opDivide(ctx context.Context, s *Scope, args []node) (interface{}, error) {
	nums, ok, err := numbers(ctx, s, args)
	if err != nil || !ok {
		return nil, err
	}
	if nums[1] == 0 {
		return nil, opErrorf("division by zero")
	}
	return nums[0] / nums[1], nil
}

func opMod(ctx context.Context, s *Scope, args []node) (interface{}, error) {
	nums, ok, err := numbers(ctx, s, args)
	if err != nil || !ok {
		return nil, err
	}
	if nums[1] == 0 {
		return nil, opErrorf("division by zero")
	}
	return math.Mod(nums[0], nums[1]), nil
}

func unaryMath(fn func(float64) float64) opFunc {
	return func(ctx context.Context, s *Scope, args []node) (interface{}, error) {
		nums, ok, err := numbers(ctx, s, args)
		if err != nil || !ok {
			return nil, err
		}
		return fn(nums[0]), nil
	}
}

func comparison(test func(int) bool) opFunc {
	return func(ctx context.Context, s *Scope, args []node) (interface{}, error) {
		vals, err := evalAll(ctx, s, args)
		if err != nil {
			return nil, err
		}
		return test(Compare(vals[0], vals[1])), nil
	}
}

func opCmp(ctx context.Context, s *Scope, args []node) (interface{}, error) {
	vals, err := evalAll(ctx, s, args)
	if err != nil {
		return nil, err
	}
	return float64(Compare(vals[0], vals[1])), nil
}

func opAnd(ctx context.Context, s *Scope, args []node) (interface{}, error) {
	for _, a := range args {
		v, err := a.eval(ctx, s)
		if err != nil {
			return nil, err
		}
		if !Truthy(v) {
			return false, nil
		}
	}
	return true, nil
}

func opOr(ctx context.Context, s *Scope, args []node) (interface{}, error) {
	for _, a := range args {
		v, err := a.eval(ctx, s)
		if err != nil {
			return nil, err
		}
		if Truthy(v) {
			return true, nil
		}
	}
	return false, nil
}

func opNot(ctx context.Context, s *Scope, args []node) (interface{}, error) {
	v, err := args[0].eval(ctx, s)
	if err != nil {
		return nil, err
	}
	return !Truthy(v), nil
}

func opCond(ctx context.Context, s *Scope, args []node) (interface{}, error) {
	test, err := args[0].eval(ctx, s)
	if err != nil {
		return nil, err
	}
	if Truthy(test) {
		return args[1].eval(ctx, s)
	}
	return args[2].eval(ctx, s)
}

func opIfNull(ctx context.Context, s *Scope, args []node) (interface{}, error) {
	v, err := args[0].eval(ctx, s)
	if err != nil {
		return nil, err
	}
	if v != nil {
		return v, nil
	}
	return args[1].eval(ctx, s)
}

func opConcat(ctx context.Context, s *Scope, args []node) (interface{}, error) {
	vals, err := evalAll(ctx, s, args)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	for _, v := range vals {
		if v == nil {
			return nil, nil
		}
		str, ok := v.(string)
		if !ok {
			return nil, opErrorf("only supports strings, got %s", typeName(v))
		}
		b.WriteString(str)
	}
	return b.String(), nil
}

func caseOp(fn func(string) string) opFunc {
	return func(ctx context.Context, s *Scope, args []node) (interface{}, error) {
		v, err := args[0].eval(ctx, s)
		if err != nil {
			return nil, err
		}
		switch t := v.(type) {
		case nil:
			return nil, nil
		case string:
			return fn(t), nil
		case float64:
			return fn(formatNumber(t)), nil
		}
		return nil, opErrorf("cannot convert %s to a string", typeName(v))
	}
}

func opTrim(ctx context.Context, s *Scope, args []node) (interface{}, error) {
	v, err := args[0].eval(ctx, s)
	if err != nil || v == nil {
		return nil, err
	}
	str, ok := v.(string)
	if !ok {
		return nil, opErrorf("input must be a string, got %s", typeName(v))
	}
	return strings.TrimSpace(str), nil
}

func opSubstr(ctx context.Context, s *Scope, args []node) (interface{}, error) {
	vals, err := evalAll(ctx, s, args)
	if err != nil {
		return nil, err
	}
	if vals[0] == nil {
		return nil, nil
	}
	str, ok := vals[0].(string)
	if !ok {
		return nil, opErrorf("input must be a string, got %s", typeName(vals[0]))
	}
	start, okStart := vals[1].(float64)
	length, okLen := vals[2].(float64)
	if !okStart || !okLen || start != math.Trunc(start) || length != math.Trunc(length) || start < 0 {
		return nil, opErrorf("start and length must be integers, start non-negative")
	}
	runes := []rune(str)
	// bounds are clamped before conversion so huge values cannot overflow int
	n := float64(len(runes))
	if start >= n {
		return "", nil
	}
	end := n
	if length >= 0 && length < n-start {
		end = start + length
	}
	return string(runes[int(start):int(end)]), nil
}

func opStrLen(ctx context.Context, s *Scope, args []node) (interface{}, error) {
	v, err := args[0].eval(ctx, s)
	if err != nil || v == nil {
		return nil, err
	}
	str, ok := v.(string)
	if !ok {
		return nil, opErrorf("input must be a string, got %s", typeName(v))
	}
	return float64(utf8.RuneCountInString(str)), nil
}

func opSplit(ctx context.Context, s *Scope, args []node) (interface{}, error) {
	vals, err := evalAll(ctx, s, args)
	if err != nil {
		return nil, err
	}
	if vals[0] == nil {
		return nil, nil
	}
	str, ok := vals[0].(string)
	sep, okSep := vals[1].(string)
	if !ok || !okSep || sep == "" {
		return nil, opErrorf("requires a string input and a non-empty string delimiter")
	}
	parts := strings.Split(str, sep)
	out := make([]interface{}, len(parts))
	for i, p := range parts {
		out[i] = p
	}
	return out, nil
}

func opSize(ctx context.Context, s *Scope, args []node) (interface{}, error) {
	v, err := args[0].eval(ctx, s)
	if err != nil {
		return nil, err
	}
	arr, ok := v.([]interface{})
	if !ok {
		return nil, opErrorf("argument must be an array, got %s", typeName(v))
	}
	return float64(len(arr)), nil
}

func opIn(ctx context.Context, s *Scope, args []node) (interface{}, error) {
	vals, err := evalAll(ctx, s, args)
	if err != nil {
		return nil, err
	}
	arr, ok := vals[1].([]interface{})
	if !ok {
		return nil, opErrorf("second argument must be an array, got %s", typeName(vals[1]))
	}
	for _, item := range arr {
		if Compare(vals[0], item) == 0 {
			return true, nil
		}
	}
	return false, nil
}

func opArrayElemAt(ctx context.Context, s *Scope, args []node) (interface{}, error) {
	vals, err := evalAll(ctx, s, args)
	if err != nil {
		return nil, err
	}
	if vals[0] == nil || vals[1] == nil {
		return nil, nil
	}
	arr, ok := vals[0].([]interface{})
	idx, okIdx := vals[1].(float64)
	if !ok || !okIdx || idx != math.Trunc(idx) {
		return nil, opErrorf("requires an array and an integer index")
	}
	if idx < 0 {
		idx += float64(len(arr))
	}
	if idx < 0 || idx >= float64(len(arr)) {
		return nil, nil
	}
	return arr[int(idx)], nil
}

func opIsArray(ctx context.Context, s *Scope, args []node) (interface{}, error) {
	v, err := args[0].eval(ctx, s)
	if err != nil {
		return nil, err
	}
	_, ok := v.([]interface{})
	return ok, nil
}

func opType(ctx context.Context, s *Scope, args []node) (interface{}, error) {
	v, err := args[0].eval(ctx, s)
	if err != nil {
		return nil, err
	}
	return typeName(v), nil
}

func opToString(ctx context.Context, s *Scope, args []node) (interface{}, error) {
	v, err := args[0].eval(ctx, s)
	if err != nil {
		return nil, err
	}
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		return t, nil
	case float64:
		return formatNumber(t), nil
	case bool:
		return strconv.FormatBool(t), nil
	}
	return nil, opErrorf("cannot convert %s to a string", typeName(v))
}

func opToNumber(ctx context.Context, s *Scope, args []node) (interface{}, error) {
	v, err := args[0].eval(ctx, s)
	if err != nil {
		return nil, err
	}
	switch t := v.(type) {
	case nil:
		return nil, nil
	case float64:
		return t, nil
	case bool:
		if t {
			return 1.0, nil
		}
		return 0.0, nil
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, opErrorf("cannot convert %q to a number", t)
		}
		return n, nil
	}
	return nil, opErrorf("cannot convert %s to a number", typeName(v))
}

func opToBool(ctx context.Context, s *Scope, args []node) (interface{}, error) {
	v, err := args[0].eval(ctx, s)
	if err != nil {
		return nil, err
	}
	return Truthy(v), nil
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
