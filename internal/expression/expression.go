// Package expression compiles and evaluates JSON-shaped expressions built from
// $-prefixed operators, field paths and $$ variables.
package expression

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	apperrors "cortex-backend/internal/errors"

	"github.com/tidwall/gjson"
)

const (
	maxDepth = 32
	maxNodes = 1000
)

// Built-in variable names
const (
	VarRoot      = "ROOT"
	VarValue     = "VALUE"
	VarNow       = "NOW"
	VarPrincipal = "PRINCIPAL"
	VarOrg       = "ORG"
)

var knownVariables = map[string]bool{
	VarRoot:      true,
	VarValue:     true,
	VarNow:       true,
	VarPrincipal: true,
	VarOrg:       true,
}

var variableName = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// Expression is a compiled expression, safe for concurrent evaluation.
type Expression struct {
	raw  interface{}
	root node
}

// Raw returns the source the expression was compiled from
func (e *Expression) Raw() interface{} {
	return e.raw
}

// Evaluate runs the expression against scope
func (e *Expression) Evaluate(ctx context.Context, scope *Scope) (interface{}, error) {
	if scope == nil {
		scope = NewScope(nil)
	}
	return e.root.eval(ctx, scope)
}

// EvaluateBool runs the expression and reports the truthiness of the result
func (e *Expression) EvaluateBool(ctx context.Context, scope *Scope) (bool, error) {
	v, err := e.Evaluate(ctx, scope)
	if err != nil {
		return false, err
	}
	return Truthy(v), nil
}

// Scope holds the variables visible to an evaluation. A scope must not be
// shared between goroutines.
type Scope struct {
	vars      map[string]interface{}
	snapshots map[string][]byte
}

// NewScope creates a scope with ROOT bound to root and NOW to the current time
func NewScope(root interface{}) *Scope {
	return &Scope{
		vars: map[string]interface{}{
			VarRoot: Normalize(root),
			VarNow:  time.Now().UTC().Format(time.RFC3339Nano),
		},
		snapshots: make(map[string][]byte),
	}
}

// With binds a variable and returns the scope for chaining
func (s *Scope) With(name string, value interface{}) *Scope {
	s.vars[name] = Normalize(value)
	delete(s.snapshots, name)
	return s
}

// Var returns a bound variable
func (s *Scope) Var(name string) (interface{}, bool) {
	v, ok := s.vars[name]
	return v, ok
}

func (s *Scope) lookup(name, path string) (interface{}, error) {
	v, ok := s.vars[name]
	if !ok {
		return nil, nil
	}
	if path == "" {
		return v, nil
	}
	snap, ok := s.snapshots[name]
	if !ok {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, apperrors.ErrExpression.WithReason(fmt.Sprintf("variable %s is not addressable", name))
		}
		snap = b
		s.snapshots[name] = snap
	}
	res := gjson.GetBytes(snap, path)
	if !res.Exists() {
		return nil, nil
	}
	return res.Value(), nil
}

// Compile parses raw into an Expression. raw is any JSON-compatible value.
func Compile(raw interface{}) (*Expression, error) {
	c := &compiler{}
	root, err := c.compile(Normalize(raw), "", 0)
	if err != nil {
		return nil, err
	}
	return &Expression{raw: raw, root: root}, nil
}

// CompileJSON parses and compiles a JSON document
func CompileJSON(data []byte) (*Expression, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, apperrors.ErrExpression.WithReason("expression is not valid JSON")
	}
	return Compile(raw)
}

// MustCompile is like Compile but panics on error
func MustCompile(raw interface{}) *Expression {
	e, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return e
}

type compiler struct {
	nodes int
}

func compileError(location, reason string) error {
	f := apperrors.ErrExpression.WithReason(reason)
	if location != "" {
		f = f.WithPath(location)
	}
	return f
}

func join(location, part string) string {
	if location == "" {
		return part
	}
	return location + "." + part
}

func (c *compiler) compile(raw interface{}, location string, depth int) (node, error) {
	if depth > maxDepth {
		return nil, compileError(location, fmt.Sprintf("expression exceeds maximum depth of %d", maxDepth))
	}
	c.nodes++
	if c.nodes > maxNodes {
		return nil, compileError(location, fmt.Sprintf("expression exceeds maximum size of %d nodes", maxNodes))
	}

	switch v := raw.(type) {
	case string:
		return c.compileString(v, location)
	case []interface{}:
		items := make([]node, len(v))
		for i, item := range v {
			n, err := c.compile(item, join(location, fmt.Sprint(i)), depth+1)
			if err != nil {
				return nil, err
			}
			items[i] = n
		}
		return &arrayNode{items: items}, nil
	case map[string]interface{}:
		return c.compileObject(v, location, depth)
	default:
		return &literalNode{value: v}, nil
	}
}

func (c *compiler) compileString(s, location string) (node, error) {
	if !strings.HasPrefix(s, "$") {
		return &literalNode{value: s}, nil
	}
	if strings.HasPrefix(s, "$$") {
		name, path, _ := strings.Cut(s[2:], ".")
		if !variableName.MatchString(name) || !knownVariables[name] {
			return nil, compileError(location, fmt.Sprintf("unknown variable $$%s", name))
		}
		p, err := gjsonPath(path)
		if err != nil {
			return nil, compileError(location, err.Error())
		}
		return &pathNode{variable: name, path: p, source: s}, nil
	}
	if len(s) == 1 {
		return nil, compileError(location, "empty field path")
	}
	p, err := gjsonPath(s[1:])
	if err != nil {
		return nil, compileError(location, err.Error())
	}
	return &pathNode{variable: VarRoot, path: p, source: s}, nil
}

func (c *compiler) compileObject(obj map[string]interface{}, location string, depth int) (node, error) {
	operators := 0
	for k := range obj {
		if strings.HasPrefix(k, "$") {
			operators++
		}
	}
	if operators == 0 {
		keys := sortedKeys(obj)
		vals := make([]node, len(keys))
		for i, k := range keys {
			n, err := c.compile(obj[k], join(location, k), depth+1)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return &objectNode{keys: keys, vals: vals}, nil
	}
	if len(obj) != 1 {
		return nil, compileError(location, "an operator object must have exactly one key")
	}

	var name string
	var arg interface{}
	for k, v := range obj {
		name, arg = k, v
	}
	opLocation := join(location, name)

	switch name {
	case "$literal":
		return &literalNode{value: arg}, nil
	case "$cond":
		return c.compileCond(arg, opLocation, depth)
	case "$regexMatch":
		return c.compileRegexMatch(arg, opLocation, depth)
	}

	spec, ok := operatorTable[name]
	if !ok {
		return nil, compileError(location, fmt.Sprintf("unknown operator %s", name))
	}

	var rawArgs []interface{}
	if list, isList := arg.([]interface{}); isList {
		rawArgs = list
	} else {
		rawArgs = []interface{}{arg}
	}
	if len(rawArgs) < spec.min || (spec.max >= 0 && len(rawArgs) > spec.max) {
		return nil, compileError(opLocation, arityMessage(name, spec))
	}
	args := make([]node, len(rawArgs))
	for i, a := range rawArgs {
		n, err := c.compile(a, join(opLocation, fmt.Sprint(i)), depth+1)
		if err != nil {
			return nil, err
		}
		args[i] = n
	}
	return &opNode{name: name, args: args, fn: spec.fn}, nil
}

func (c *compiler) compileCond(arg interface{}, location string, depth int) (node, error) {
	var parts []interface{}
	switch v := arg.(type) {
	case []interface{}:
		parts = v
	case map[string]interface{}:
		ifPart, okIf := v["if"]
		thenPart, okThen := v["then"]
		elsePart, okElse := v["else"]
		if !okIf || !okThen || !okElse || len(v) != 3 {
			return nil, compileError(location, "$cond requires if, then and else")
		}
		parts = []interface{}{ifPart, thenPart, elsePart}
	}
	if len(parts) != 3 {
		return nil, compileError(location, "$cond requires exactly 3 arguments")
	}
	args := make([]node, 3)
	for i, p := range parts {
		n, err := c.compile(p, join(location, fmt.Sprint(i)), depth+1)
		if err != nil {
			return nil, err
		}
		args[i] = n
	}
	return &opNode{name: "$cond", args: args, fn: opCond}, nil
}

func (c *compiler) compileRegexMatch(arg interface{}, location string, depth int) (node, error) {
	obj, ok := arg.(map[string]interface{})
	if !ok {
		return nil, compileError(location, "$regexMatch requires an object with input and regex")
	}
	input, okInput := obj["input"]
	pattern, okRegex := obj["regex"].(string)
	if !okInput || !okRegex {
		return nil, compileError(location, "$regexMatch requires input and a string regex")
	}
	options, _ := obj["options"].(string)
	for _, o := range options {
		if !strings.ContainsRune("ims", o) {
			return nil, compileError(location, fmt.Sprintf("unsupported regex option %q", o))
		}
	}
	if options != "" {
		pattern = "(?" + options + ")" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, compileError(location, fmt.Sprintf("invalid regex: %v", err))
	}
	in, err := c.compile(input, join(location, "input"), depth+1)
	if err != nil {
		return nil, err
	}
	return &regexNode{input: in, re: re}, nil
}

func arityMessage(name string, spec operatorSpec) string {
	switch {
	case spec.max < 0:
		return fmt.Sprintf("%s requires at least %d arguments", name, spec.min)
	case spec.min == spec.max:
		return fmt.Sprintf("%s requires exactly %d arguments", name, spec.min)
	default:
		return fmt.Sprintf("%s requires between %d and %d arguments", name, spec.min, spec.max)
	}
}

// gjsonPath converts a dotted document path into an escaped gjson path
func gjsonPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	segments := strings.Split(path, ".")
	for i, seg := range segments {
		if seg == "" {
			return "", fmt.Errorf("invalid field path %q", path)
		}
		segments[i] = escapeSegment(seg)
	}
	return strings.Join(segments, "."), nil
}

func escapeSegment(seg string) string {
	var b strings.Builder
	for _, r := range seg {
		if strings.ContainsRune(`\.*?|#@!=<>%`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

type node interface {
	eval(ctx context.Context, s *Scope) (interface{}, error)
}

type literalNode struct {
	value interface{}
}

func (n *literalNode) eval(context.Context, *Scope) (interface{}, error) {
	return n.value, nil
}

type arrayNode struct {
	items []node
}

func (n *arrayNode) eval(ctx context.Context, s *Scope) (interface{}, error) {
	out := make([]interface{}, len(n.items))
	for i, item := range n.items {
		v, err := item.eval(ctx, s)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

type objectNode struct {
	keys []string
	vals []node
}

func (n *objectNode) eval(ctx context.Context, s *Scope) (interface{}, error) {
	out := make(map[string]interface{}, len(n.keys))
	for i, k := range n.keys {
		v, err := n.vals[i].eval(ctx, s)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

type pathNode struct {
	variable string
	path     string
	source   string
}

func (n *pathNode) eval(_ context.Context, s *Scope) (interface{}, error) {
	return s.lookup(n.variable, n.path)
}

type opFunc func(ctx context.Context, s *Scope, args []node) (interface{}, error)

type opNode struct {
	name string
	args []node
	fn   opFunc
}

func (n *opNode) eval(ctx context.Context, s *Scope) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.ErrTimeout.Wrap(err)
	}
	v, err := n.fn(ctx, s, n.args)
	if err != nil {
		if f, ok := err.(*opError); ok {
			return nil, apperrors.ErrExpression.WithReason(n.name + ": " + f.msg)
		}
		return nil, err
	}
	return v, nil
}

type regexNode struct {
	input node
	re    *regexp.Regexp
}

func (n *regexNode) eval(ctx context.Context, s *Scope) (interface{}, error) {
	v, err := n.input.eval(ctx, s)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	str, ok := v.(string)
	if !ok {
		return nil, apperrors.ErrExpression.WithReason("$regexMatch: input must be a string")
	}
	return n.re.MatchString(str), nil
}

type opError struct {
	msg string
}

func (e *opError) Error() string {
	return e.msg
}

func opErrorf(format string, args ...interface{}) error {
	return &opError{msg: fmt.Sprintf(format, args...)}
}
