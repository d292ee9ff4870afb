package marshaller_test

import (
	"bytes"
	"testing"

	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/internal/version"
	"github.com/speakeasy-api/asyncapi/marshaller"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"github.com/speakeasy-api/asyncapi/validation"
	"github.com/speakeasy-api/asyncapi/yml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type testBroker struct {
	Host     string                                   `key:"host" required:"true"`
	Port     *int                                     `key:"port"`
	Weight   *float64                                 `key:"weight"`
	TLS      *bool                                    `key:"tls"`
	Topics   []string                                 `key:"topics"`
	Labels   *sequencedmap.Map[string, *testLabel]    `key:"labels"`
	Replicas *sequencedmap.Map[string, []string]      `key:"replicas"`
	Region   *string                                  `key:"region" since:"2.3.0"`
	Raw      *yaml.Node                               `key:"raw"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

type testLabel struct {
	Value string `key:"value" required:"true"`

	Extensions *extensions.Extensions `key:"extensions"`
}

func parse(t *testing.T, src string) *yaml.Node {
	t.Helper()

	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &node))
	return &node
}

func decodeBroker(t *testing.T, src string, opts ...marshaller.Option) (*testBroker, *marshaller.Decoder) {
	t.Helper()

	d := marshaller.NewDecoder(opts...)
	var b testBroker
	d.Decode(t.Context(), parse(t, src), &b)
	return &b, d
}

func validationErrors(t *testing.T, d *marshaller.Decoder) []*validation.Error {
	t.Helper()

	var out []*validation.Error
	for _, err := range d.Errors() {
		var vErr *validation.Error
		require.ErrorAs(t, err, &vErr)
		out = append(out, vErr)
	}
	return out
}

func TestDecoder_Decode_Success(t *testing.T) {
	t.Parallel()

	b, d := decodeBroker(t, `
host: broker.local
port: 9092
weight: 1
tls: true
topics: [a, b]
labels:
  env:
    value: prod
    x-owner: team-a
replicas:
  eu: [one, two]
raw: {any: [thing]}
x-vendor: 1
`)
	require.NoError(t, d.Err())

	assert.Equal(t, "broker.local", b.Host)
	assert.Equal(t, 9092, *b.Port)
	assert.InDelta(t, 1.0, *b.Weight, 0)
	assert.True(t, *b.TLS)
	assert.Equal(t, []string{"a", "b"}, b.Topics)
	assert.Equal(t, "prod", b.Labels.GetOrZero("env").Value)
	assert.Equal(t, []string{"one", "two"}, b.Replicas.GetOrZero("eu"))
	assert.Equal(t, yaml.MappingNode, b.Raw.Kind)
	assert.Nil(t, b.Region)
	assert.Nil(t, b.Unrecognized)

	owner, ok := b.Labels.GetOrZero("env").Extensions.Get("x-owner")
	require.True(t, ok)
	assert.Equal(t, "team-a", owner.Value)

	vendor, ok := b.Extensions.Get("x-vendor")
	require.True(t, ok)
	assert.Equal(t, "1", vendor.Value)
	assert.Equal(t, 0, vendor.Line, "raw values are stored without positions")
}

func TestDecoder_Decode_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		opts     []marshaller.Option
		wantRule string
		wantPath string
		wantErr  string
	}{
		{
			name:     "missing required field",
			src:      "port: 1\n",
			wantRule: validation.RuleValidationRequiredField,
			wantPath: "/",
			wantErr:  "[1:1] missing required field `host` at /",
		},
		{
			name:     "wrong scalar type",
			src:      "host: a\nport: eighty\n",
			wantRule: validation.RuleValidationTypeMismatch,
			wantPath: "/port",
			wantErr:  "[2:7] expected integer, got string at /port",
		},
		{
			name:     "null required field",
			src:      "host: null\nport: 1\n",
			wantRule: validation.RuleValidationTypeMismatch,
			wantPath: "/host",
			wantErr:  "[1:7] expected string, got null at /host",
		},
		{
			name:     "infinite number",
			src:      "host: a\nweight: .inf\n",
			wantRule: validation.RuleValidationTypeMismatch,
			wantPath: "/weight",
			wantErr:  "[2:9] expected finite number, got .inf at /weight",
		},
		{
			name:     "not a number",
			src:      "host: a\nweight: .NaN\n",
			wantRule: validation.RuleValidationTypeMismatch,
			wantPath: "/weight",
		},
		{
			name:     "sequence item",
			src:      "host: a\ntopics: [a, {b: c}]\n",
			wantRule: validation.RuleValidationTypeMismatch,
			wantPath: "/topics/1",
		},
		{
			name:     "nested map value",
			src:      "host: a\nlabels:\n  env: {}\n",
			wantRule: validation.RuleValidationRequiredField,
			wantPath: "/labels/env",
		},
		{
			name:     "object expected",
			src:      "- host\n",
			wantRule: validation.RuleValidationTypeMismatch,
			wantPath: "/",
			wantErr:  "[1:1] expected object, got sequence at /",
		},
		{
			name:     "strict unknown field",
			src:      "host: a\nport: 1\nlegacy: true\n",
			opts:     []marshaller.Option{marshaller.WithMode(marshaller.ModeStrict)},
			wantRule: validation.RuleValidationUnknownField,
			wantPath: "/legacy",
			wantErr:  "[3:1] unknown field `legacy` at /legacy",
		},
		{
			name:     "strict field from a later version",
			src:      "host: a\nregion: eu\n",
			opts:     []marshaller.Option{marshaller.WithMode(marshaller.ModeStrict), marshaller.WithVersion(version.MustParse("2.1.0"))},
			wantRule: validation.RuleValidationUnknownField,
			wantPath: "/region",
			wantErr:  "[2:1] field `region` is not available before asyncapi 2.3.0 at /region",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, d := decodeBroker(t, tt.src, tt.opts...)
			require.Error(t, d.Err())

			errs := validationErrors(t, d)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantRule, errs[0].Rule)
			assert.Equal(t, tt.wantPath, string(errs[0].Path))
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, errs[0].Error())
			}
		})
	}
}

func TestDecoder_Decode_CollectsAllErrors(t *testing.T) {
	t.Parallel()

	_, d := decodeBroker(t, "tls: maybe\nport: x\n", marshaller.WithMode(marshaller.ModeStrict))

	errs := validationErrors(t, d)
	require.Len(t, errs, 3)
	assert.Equal(t, "/", string(errs[0].Path))
	assert.Equal(t, "/tls", string(errs[1].Path))
	assert.Equal(t, "/port", string(errs[2].Path))
}

func TestDecoder_Decode_Lenient(t *testing.T) {
	t.Parallel()

	b, d := decodeBroker(t, "host: a\nlegacy: {keep: me}\nregion: eu\n", marshaller.WithVersion(version.MustParse("2.1.0")))
	require.NoError(t, d.Err())

	legacy, ok := b.Unrecognized.Get("legacy")
	require.True(t, ok)
	assert.Equal(t, yaml.MappingNode, legacy.Kind)
	require.NotNil(t, b.Region)
	assert.Equal(t, "eu", *b.Region)
}

func TestDecoder_Decode_MergeKeysAndAliases(t *testing.T) {
	t.Parallel()

	b, d := decodeBroker(t, `
defaults: &defaults
  host: shared
  port: 1
<<: *defaults
port: 2
topics: &topics [x]
`)
	require.NoError(t, d.Err())

	assert.Equal(t, "shared", b.Host)
	assert.Equal(t, 2, *b.Port)
	assert.Equal(t, []string{"x"}, b.Topics)
}

func TestEncode_RoundTrip_Success(t *testing.T) {
	t.Parallel()

	src := `host: broker.local
port: 9092
weight: 0.5
topics: []
labels:
  env:
    value: prod
    x-owner: team-a
legacy: kept
x-vendor:
  nested: [1, 2]
`
	b, d := decodeBroker(t, src)
	require.NoError(t, d.Err())

	node := marshaller.Encode(t.Context(), b)

	var buf bytes.Buffer
	require.NoError(t, marshaller.Render(t.Context(), node, &buf))
	assert.Equal(t, src, buf.String())

	d2 := marshaller.NewDecoder()
	var again testBroker
	d2.Decode(t.Context(), node, &again)
	require.NoError(t, d2.Err())
	assert.Equal(t, b, &again)
}

func TestDecoder_Decode_BuiltTreeHasNoPosition(t *testing.T) {
	t.Parallel()

	d := marshaller.NewDecoder()
	var b testBroker
	d.Decode(t.Context(), yml.CreateMapNode(yml.CreateKeyNode(t.Context(), "port"), yml.CreateIntNode(1)), &b)

	errs := validationErrors(t, d)
	require.Len(t, errs, 1)
	assert.Equal(t, -1, errs[0].GetLineNumber())
	assert.Equal(t, -1, errs[0].GetColumnNumber())
	assert.Equal(t, "[-1:-1] missing required field `host` at /", errs[0].Error())
}

func TestEncode_CopiesRawValues(t *testing.T) {
	t.Parallel()

	src := "host: a\nraw: {k: v}\nlegacy: [1]\nx-vendor: {nested: true}\n"
	b, d := decodeBroker(t, src)
	require.NoError(t, d.Err())
	want, _ := decodeBroker(t, src)

	node := marshaller.Encode(t.Context(), b)
	var overwrite func(n *yaml.Node)
	overwrite = func(n *yaml.Node) {
		n.Value = "changed"
		for _, c := range n.Content {
			overwrite(c)
		}
	}
	overwrite(node)

	assert.Equal(t, want, b)
}

func TestIsExtensionKey(t *testing.T) {
	t.Parallel()

	assert.True(t, marshaller.IsExtensionKey("x-owner"))
	assert.False(t, marshaller.IsExtensionKey("owner"))
	assert.Equal(t, marshaller.ExtensionPrefix, extensions.Prefix)
}

func TestEncode_NilAndEmpty(t *testing.T) {
	t.Parallel()

	assert.Nil(t, marshaller.Encode(t.Context(), nil))
	assert.Nil(t, marshaller.Encode(t.Context(), (*testBroker)(nil)))
	assert.Nil(t, marshaller.EncodeFields(t.Context(), (*testBroker)(nil)))

	node := marshaller.Encode(t.Context(), &testBroker{Host: "h", Topics: []string{}, Labels: sequencedmap.New[string, *testLabel]()})
	var buf bytes.Buffer
	require.NoError(t, marshaller.Render(t.Context(), node, &buf))
	assert.Equal(t, "host: h\ntopics: []\nlabels: {}\n", buf.String())
}

func TestRender_JSON_Success(t *testing.T) {
	t.Parallel()

	cfg := yml.GetDefaultConfig()
	cfg.OutputFormat = yml.OutputFormatJSON
	cfg.Indentation = 2
	ctx := yml.ContextWithConfig(t.Context(), cfg)

	port := 80
	node := marshaller.Encode(ctx, &testBroker{Host: "h", Port: &port, Topics: []string{"a"}})

	var buf bytes.Buffer
	require.NoError(t, marshaller.Render(ctx, node, &buf))
	assert.Equal(t, "{\n  \"host\": \"h\",\n  \"port\": 80,\n  \"topics\": [\n    \"a\"\n  ]\n}\n", buf.String())
}

func TestMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		src   string
		want  bool
	}{
		{name: "string scalar", value: "", src: "abc", want: true},
		{name: "string from number", value: "", src: "1.5", want: true},
		{name: "string rejects null", value: "", src: "null", want: false},
		{name: "string rejects sequence", value: "", src: "[a]", want: false},
		{name: "slice", value: []string{}, src: "[a]", want: true},
		{name: "bool", value: false, src: "true", want: true},
		{name: "int rejects float", value: 0, src: "1.5", want: false},
		{name: "float accepts int", value: 0.0, src: "1", want: true},
		{name: "struct", value: testLabel{}, src: "{value: a}", want: true},
		{name: "struct rejects scalar", value: testLabel{}, src: "a", want: false},
		{name: "raw accepts anything", value: &yaml.Node{}, src: "a", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, marshaller.Matches(typeOf(tt.value), parse(t, tt.src)))
		})
	}
}

func TestShapeName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "string", marshaller.ShapeName(typeOf("")))
	assert.Equal(t, "array of string", marshaller.ShapeName(typeOf([]string{})))
	assert.Equal(t, "object", marshaller.ShapeName(typeOf(&testLabel{})))
	assert.Equal(t, "any value", marshaller.ShapeName(typeOf(&yaml.Node{})))
}

func TestMode_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "lenient", marshaller.ModeLenient.String())
	assert.Equal(t, "strict", marshaller.ModeStrict.String())
}
