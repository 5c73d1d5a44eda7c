package property

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"cortex-backend/internal/acl"
	apperrors "cortex-backend/internal/errors"
	"cortex-backend/internal/sandbox"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func boolPtr(b bool) *bool { return &b }

func parseDefs(t *testing.T, raw string) []Definition {
	t.Helper()
	var defs []Definition
	require.NoError(t, json.Unmarshal([]byte(raw), &defs))
	return defs
}

// faultPaths maps child fault paths to their error codes
func faultPaths(t *testing.T, err error) map[string]string {
	t.Helper()
	require.Error(t, err)
	f := apperrors.From(err)
	require.Equal(t, apperrors.ErrCodeValidation, f.ErrCode, err.Error())
	out := make(map[string]string, len(f.Faults))
	for _, child := range f.Faults {
		out[child.Path] = child.ErrCode
	}
	return out
}

func TestCastScalar(t *testing.T) {
	testCases := []struct {
		name     string
		def      Definition
		in       interface{}
		expected interface{}
		ok       bool
	}{
		{"string", Definition{Type: TypeString}, "x", "x", true},
		{"string rejects number", Definition{Type: TypeString}, 1.0, nil, false},
		{"number", Definition{Type: TypeNumber}, 2.5, 2.5, true},
		{"numeric string", Definition{Type: TypeNumber}, " 42 ", 42.0, true},
		{"number rejects text", Definition{Type: TypeNumber}, "abc", nil, false},
		{"number rejects NaN string", Definition{Type: TypeNumber}, "NaN", nil, false},
		{"boolean", Definition{Type: TypeBoolean}, true, true, true},
		{"boolean string", Definition{Type: TypeBoolean}, "FALSE", false, true},
		{"boolean rejects number", Definition{Type: TypeBoolean}, 1.0, nil, false},
		{"date to utc", Definition{Type: TypeDate}, "2024-03-01T12:00:00+02:00", "2024-03-01T10:00:00Z", true},
		{"date only", Definition{Type: TypeDate, DateOnly: true}, "2024-03-01T23:00:00Z", "2024-03-01", true},
		{"date rejects garbage", Definition{Type: TypeDate}, "yesterday", nil, false},
		{"binary", Definition{Type: TypeBinary}, "aGVsbG8=", "aGVsbG8=", true},
		{"binary rejects bad base64", Definition{Type: TypeBinary}, "***", nil, false},
		{"uuid lower cased", Definition{Type: TypeUUID}, "6BA7B810-9DAD-11D1-80B4-00C04FD430C8", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", true},
		{"uuid rejects garbage", Definition{Type: TypeUUID}, "nope", nil, false},
		{"coordinate pair", Definition{Type: TypeCoordinate}, []interface{}{10.0, 20.0}, []interface{}{10.0, 20.0}, true},
		{"coordinate object", Definition{Type: TypeCoordinate}, map[string]interface{}{"lng": -1.0, "lat": 2.0}, []interface{}{-1.0, 2.0}, true},
		{"coordinate out of range", Definition{Type: TypeCoordinate}, []interface{}{10.0, 95.0}, nil, false},
		{"expression", Definition{Type: TypeExpression}, map[string]interface{}{"$add": []interface{}{1.0, 2.0}}, map[string]interface{}{"$add": []interface{}{1.0, 2.0}}, true},
		{"expression rejects unknown operator", Definition{Type: TypeExpression}, map[string]interface{}{"$nope": 1.0}, nil, false},
		{"any", Definition{Type: TypeAny}, map[string]interface{}{"a": 1.0}, map[string]interface{}{"a": 1.0}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, fault := castScalar(&tc.def, tc.in, "p")
			if !tc.ok {
				require.NotNil(t, fault)
				assert.Equal(t, "p", fault.Path)
				return
			}
			require.Nil(t, fault)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestValidateDefinitions(t *testing.T) {
	testCases := []struct {
		name string
		defs string
		path string
	}{
		{"bad name", `[{"name": "Bad-Name", "type": "String"}]`, "Bad-Name"},
		{"reserved name", `[{"name": "owner", "type": "String"}]`, "owner"},
		{"duplicate", `[{"name": "a", "type": "String"}, {"name": "a", "type": "Number"}]`, "a"},
		{"unknown type", `[{"name": "a", "type": "Blob"}]`, "a"},
		{"validator on wrong type", `[{"name": "a", "type": "Number", "validators": [{"name": "email"}]}]`, "a.validators.0"},
		{"unknown validator", `[{"name": "a", "type": "String", "validators": [{"name": "nope"}]}]`, "a.validators.0"},
		{"bad pattern", `[{"name": "a", "type": "String", "validators": [{"name": "pattern", "definition": {"regex": "("}}]}]`, "a.validators.0"},
		{"bad expression", `[{"name": "a", "type": "String", "validators": [{"name": "expression", "definition": {"expression": {"$bogus": 1}}}]}]`, "a.validators.0"},
		{"bad script", `[{"name": "a", "type": "String", "validators": [{"name": "script", "definition": {"script": "return ("}}]}]`, "a.validators.0"},
		{"inverted range", `[{"name": "a", "type": "Number", "validators": [{"name": "number", "definition": {"min": 5, "max": 1}}]}]`, "a.validators.0"},
		{"uniqueValues on scalar", `[{"name": "a", "type": "String", "validators": [{"name": "uniqueValues"}]}]`, "a.validators.0"},
		{"auto increment on string", `[{"name": "a", "type": "String", "autoIncrement": true}]`, "a"},
		{"nested auto increment", `[{"name": "doc", "type": "Document", "properties": [{"name": "n", "type": "Number", "autoIncrement": true}]}]`, "doc.n"},
		{"default mismatch", `[{"name": "a", "type": "Number", "default": "many"}]`, "a"},
		{"nested bad child", `[{"name": "doc", "type": "Document", "properties": [{"name": "_x", "type": "String"}]}]`, "doc._x"},
		{"empty document", `[{"name": "doc", "type": "Document"}]`, "doc"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			paths := faultPaths(t, ValidateDefinitions(parseDefs(t, tc.defs)))
			assert.Contains(t, paths, tc.path)
		})
	}
}

func TestValidateDefinitionsDepth(t *testing.T) {
	leaf := Definition{Name: "leaf", Type: TypeString}
	def := leaf
	for i := 0; i < MaxDepth; i++ {
		def = Definition{Name: "d", Type: TypeDocument, Properties: []Definition{def}}
	}
	assert.Error(t, ValidateDefinitions([]Definition{def}))

	shallow := Definition{Name: "d", Type: TypeDocument, Properties: []Definition{leaf}}
	assert.NoError(t, ValidateDefinitions([]Definition{shallow}))
}

type SchemaTestSuite struct {
	suite.Suite
	ctx    context.Context
	schema *Schema
	env    Env
	issued []string
}

func (suite *SchemaTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.issued = nil

	defs := parseDefs(suite.T(), `[
		{"name": "title", "type": "String", "required": true,
		 "validators": [{"name": "string", "definition": {"min": 2, "max": 20}}]},
		{"name": "email", "type": "String", "validators": [{"name": "email"}]},
		{"name": "homepage", "type": "String", "validators": [{"name": "url"}]},
		{"name": "status", "type": "String", "default": "new",
		 "validators": [{"name": "stringEnum", "definition": {"values": ["new", "done"]}}]},
		{"name": "priority", "type": "Number",
		 "validators": [{"name": "number", "definition": {"min": 1, "max": 5, "allowDecimal": false}}]},
		{"name": "tags", "type": "String", "array": true, "maxItems": 3,
		 "validators": [{"name": "uniqueValues"}, {"name": "pattern", "definition": {"regex": "^[a-z]+$"}}]},
		{"name": "code", "type": "String", "readOnly": true},
		{"name": "ref", "type": "UUID", "autoGenerate": true},
		{"name": "number", "type": "Number", "autoIncrement": true},
		{"name": "internal", "type": "String", "writable": false},
		{"name": "secret", "type": "String", "readAccess": 6, "writeAccess": 6},
		{"name": "due", "type": "Date", "validators": [{"name": "dateRange", "definition": {"min": "2020-01-01"}}]},
		{"name": "budget", "type": "Number",
		 "validators": [{"name": "expression", "definition": {"expression": {"$lte": ["$$VALUE", "$limit"]}, "message": "over limit"}}]},
		{"name": "limit", "type": "Number", "default": 100},
		{"name": "nickname", "type": "String",
		 "validators": [{"name": "script", "definition": {"script": "return script.arguments.value !== 'root'"}}]},
		{"name": "address", "type": "Document", "properties": [
			{"name": "city", "type": "String", "required": true},
			{"name": "zip", "type": "String", "default": "00000"},
			{"name": "note", "type": "String", "readAccess": 6}
		]}
	]`)

	runner := sandbox.NewRunner(sandbox.Config{Timeout: time.Second})
	schema, err := NewSchema(defs, runner)
	suite.Require().NoError(err)
	suite.schema = schema
	suite.env = Env{
		Access: acl.Update,
		Org:    "acme",
		NextValue: func(_ context.Context, path string) (int64, error) {
			suite.issued = append(suite.issued, path)
			return int64(len(suite.issued)), nil
		},
	}
}

func (suite *SchemaTestSuite) TestCreateAppliesDefaultsAndAutoValues() {
	doc, err := suite.schema.Create(suite.ctx, suite.env, map[string]interface{}{
		"title":   "Hello",
		"code":    "X1",
		"address": map[string]interface{}{"city": "Oslo"},
	})
	suite.Require().NoError(err)

	suite.Equal("Hello", doc["title"])
	suite.Equal("new", doc["status"])
	suite.Equal(100.0, doc["limit"])
	suite.Equal(1.0, doc["number"])
	suite.Equal([]string{"number"}, suite.issued)
	suite.NotEmpty(doc["ref"])
	suite.Equal("X1", doc["code"])
	suite.Equal(map[string]interface{}{"city": "Oslo", "zip": "00000"}, doc["address"])
}

func (suite *SchemaTestSuite) TestCreateCollectsAllFaults() {
	_, err := suite.schema.Create(suite.ctx, suite.env, map[string]interface{}{
		"title":    "H",
		"email":    "not-an-email",
		"homepage": "nope",
		"status":   "open",
		"priority": 2.5,
		"tags":     []interface{}{"a", "a", "B"},
		"nickname": "root",
		"due":      "2019-06-01",
		"budget":   500,
		"address":  map[string]interface{}{"zip": "1"},
	})
	paths := faultPaths(suite.T(), err)

	suite.Equal("cortex.invalidArgument.string", paths["title"])
	suite.Equal("cortex.invalidArgument.email", paths["email"])
	suite.Equal("cortex.invalidArgument.url", paths["homepage"])
	suite.Equal("cortex.invalidArgument.stringEnum", paths["status"])
	suite.Equal("cortex.invalidArgument.number", paths["priority"])
	suite.Equal("cortex.invalidArgument.uniqueValues", paths["tags.1"])
	suite.Equal("cortex.invalidArgument.pattern", paths["tags.2"])
	suite.Equal("cortex.invalidArgument.script", paths["nickname"])
	suite.Equal("cortex.invalidArgument.dateRange", paths["due"])
	suite.Equal("cortex.invalidArgument.expression", paths["budget"])
	suite.Equal("cortex.invalidArgument.required", paths["address.city"])
}

func (suite *SchemaTestSuite) TestCreateRejectsUnknownAndUnwritable() {
	_, err := suite.schema.Create(suite.ctx, suite.env, map[string]interface{}{
		"title":    "Hello",
		"bogus":    1,
		"internal": "x",
		"number":   7,
		"priority": "high",
		"tags":     []interface{}{"a", "b", "c", "d"},
	})
	paths := faultPaths(suite.T(), err)

	suite.Equal("cortex.invalidArgument.unknownProperty", paths["bogus"])
	suite.Equal("cortex.invalidArgument.notWritable", paths["internal"])
	suite.Equal("cortex.invalidArgument.notWritable", paths["number"])
	suite.Equal("cortex.invalidArgument.castError", paths["priority"])
	suite.Equal("cortex.invalidArgument.maxItems", paths["tags"])
}

func (suite *SchemaTestSuite) TestCreateRequiresTitle() {
	_, err := suite.schema.Create(suite.ctx, suite.env, map[string]interface{}{})
	paths := faultPaths(suite.T(), err)
	suite.Equal("cortex.invalidArgument.required", paths["title"])
}

func (suite *SchemaTestSuite) TestWriteAccessDenied() {
	_, err := suite.schema.Create(suite.ctx, suite.env, map[string]interface{}{
		"title":  "Hello",
		"secret": "s",
	})
	suite.ErrorIs(err, apperrors.ErrPropertyUpdate)
	suite.Equal("secret", apperrors.From(err).Path)

	env := suite.env
	env.Access = acl.Delete
	doc, err := suite.schema.Create(suite.ctx, env, map[string]interface{}{
		"title":  "Hello",
		"secret": "s",
	})
	suite.NoError(err)
	suite.Equal("s", doc["secret"])
}

func (suite *SchemaTestSuite) TestUpdateMergesAndUnsets() {
	current, err := suite.schema.Create(suite.ctx, suite.env, map[string]interface{}{
		"title":    "Hello",
		"priority": 3,
		"code":     "X1",
		"address":  map[string]interface{}{"city": "Oslo", "zip": "0150"},
	})
	suite.Require().NoError(err)

	doc, err := suite.schema.Update(suite.ctx, suite.env, current, map[string]interface{}{
		"priority": nil,
		"status":   "done",
		"address":  map[string]interface{}{"city": "Bergen"},
	})
	suite.Require().NoError(err)

	suite.NotContains(doc, "priority")
	suite.Equal("done", doc["status"])
	suite.Equal(map[string]interface{}{"city": "Bergen", "zip": "0150"}, doc["address"])
	suite.Equal("X1", doc["code"])
	suite.Equal(3.0, current["priority"], "update must not mutate the current document")
}

func (suite *SchemaTestSuite) TestUpdateRejectsReadOnlyAndRequiredUnset() {
	current, err := suite.schema.Create(suite.ctx, suite.env, map[string]interface{}{"title": "Hello"})
	suite.Require().NoError(err)

	_, err = suite.schema.Update(suite.ctx, suite.env, current, map[string]interface{}{
		"code":  "X2",
		"title": nil,
	})
	paths := faultPaths(suite.T(), err)
	suite.Equal("cortex.invalidArgument.readOnly", paths["code"])
	suite.Equal("cortex.invalidArgument.required", paths["title"])
}

func (suite *SchemaTestSuite) TestUpdateUnsetRequired() {
	current, err := suite.schema.Create(suite.ctx, suite.env, map[string]interface{}{"title": "Hello"})
	suite.Require().NoError(err)

	_, err = suite.schema.Update(suite.ctx, suite.env, current, map[string]interface{}{"title": nil})
	paths := faultPaths(suite.T(), err)
	suite.Equal("cortex.invalidArgument.required", paths["title"])
}

func (suite *SchemaTestSuite) TestExpressionValidatorSeesRoot() {
	_, err := suite.schema.Create(suite.ctx, suite.env, map[string]interface{}{
		"title":  "Hello",
		"budget": 500,
		"limit":  1000,
	})
	suite.NoError(err)
}

func (suite *SchemaTestSuite) TestProject() {
	doc := map[string]interface{}{
		"title":   "Hello",
		"secret":  "s",
		"stale":   "gone",
		"address": map[string]interface{}{"city": "Oslo", "note": "private"},
	}

	out := suite.schema.Project(doc, acl.Update)
	suite.Equal(map[string]interface{}{
		"title":   "Hello",
		"address": map[string]interface{}{"city": "Oslo"},
	}, out)

	out = suite.schema.Project(doc, acl.Delete)
	suite.Equal("s", out["secret"])
	suite.Equal("private", out["address"].(map[string]interface{})["note"])
	suite.NotContains(out, "stale")
}

func TestSchemaTestSuite(t *testing.T) {
	suite.Run(t, new(SchemaTestSuite))
}

func TestCreateValidatesAlongsideCastFaults(t *testing.T) {
	defs := parseDefs(t, `[
		{"name": "age", "type": "Number", "validators": [{"name": "number", "definition": {"min": 0}}]},
		{"name": "title", "type": "String", "validators": [{"name": "string", "definition": {"max": 3}}]},
		{"name": "code", "type": "String", "required": true}
	]`)
	schema, err := NewSchema(defs, nil)
	require.NoError(t, err)

	_, err = schema.Create(context.Background(), Env{Access: acl.Update}, map[string]interface{}{
		"age":   "not-a-number",
		"title": "far too long",
	})
	require.Error(t, err)
	f := apperrors.From(err)
	assert.Equal(t, apperrors.ErrCodeValidation, f.ErrCode)
	require.Len(t, f.Faults, 3)

	paths := faultPaths(t, err)
	assert.Equal(t, "cortex.invalidArgument.castError", paths["age"])
	assert.Equal(t, "cortex.invalidArgument.string", paths["title"])
	assert.Equal(t, "cortex.invalidArgument.required", paths["code"])
}

func TestExpressionValidatorWithHugeBounds(t *testing.T) {
	defs := parseDefs(t, `[
		{"name": "s", "type": "String", "validators": [{"name": "expression",
		 "definition": {"expression": {"$substr": ["$$VALUE", 0, "$$ROOT.n"]}}}]},
		{"name": "n", "type": "Number"}
	]`)
	schema, err := NewSchema(defs, nil)
	require.NoError(t, err)

	doc, err := schema.Create(context.Background(), Env{Access: acl.Update}, map[string]interface{}{
		"s": "abc",
		"n": 1e19,
	})
	require.NoError(t, err)
	assert.Equal(t, "abc", doc["s"])
}

func TestDefinitionFlags(t *testing.T) {
	d := Definition{Name: "a", Type: TypeNumber}
	assert.True(t, d.IsWritable())
	d.Writable = boolPtr(false)
	assert.False(t, d.IsWritable())
	d = Definition{Name: "a", Type: TypeNumber, AutoIncrement: true}
	assert.False(t, d.IsWritable())

	d = Definition{Name: "a", Type: TypeString, Validators: []Validator{{Name: "required"}}}
	assert.True(t, d.IsRequired())
}

func TestValidatorNames(t *testing.T) {
	names := ValidatorNames()
	assert.Contains(t, names, "email")
	assert.Contains(t, names, "script")
	assert.Len(t, names, 13)
}
