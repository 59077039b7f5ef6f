package rustdoc

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extract(t *testing.T, input string, opts Options) ([]Function, error) {
	t.Helper()
	doc, err := Parse([]byte(input))
	require.NoError(t, err)
	return Extract(doc, opts)
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Function
	}{
		{
			name:  "documented function",
			input: `{"index": {"1": {"name": "open", "inner": {"function": {}}, "docs": "Opens a file.\nReturns a handle."}}}`,
			want:  []Function{{ID: "1", Name: "open", Docs: "Opens a file.\nReturns a handle."}},
		},
		{
			name:  "empty docs",
			input: `{"index": {"1": {"name": "open", "inner": {"function": {}}, "docs": ""}}}`,
		},
		{
			name:  "null docs",
			input: `{"index": {"1": {"name": "open", "inner": {"function": {}}, "docs": null}}}`,
		},
		{
			name:  "missing docs",
			input: `{"index": {"1": {"name": "open", "inner": {"function": {}}}}}`,
		},
		{
			name:  "struct",
			input: `{"index": {"1": {"name": "Operator", "inner": {"struct": {}}, "docs": "An operator."}}}`,
		},
		{
			name:  "missing inner",
			input: `{"index": {"1": {"name": "open", "docs": "Opens."}}}`,
		},
		{
			name:  "empty index",
			input: `{"index": {}}`,
		},
		{
			name:  "other top-level keys ignored",
			input: `{"root": "0", "paths": {}, "index": {"1": {"name": "stat", "inner": {"function": null}, "docs": "Stats."}}}`,
			want:  []Function{{ID: "1", Name: "stat", Docs: "Stats."}},
		},
		{
			name: "duplicates kept in index order",
			input: `{"index": {
				"2": {"name": "read", "inner": {"function": {}}, "docs": "first"},
				"1": {"name": "write", "inner": {"struct": {}}, "docs": "skip"},
				"3": {"name": "read", "inner": {"function": {}}, "docs": "second"}
			}}`,
			want: []Function{
				{ID: "2", Name: "read", Docs: "first"},
				{ID: "3", Name: "read", Docs: "second"},
			},
		},
		{
			name:  "name passes through",
			input: `{"index": {"1": {"name": "r#type?", "inner": {"function": {}}, "docs": "Raw."}}}`,
			want:  []Function{{ID: "1", Name: "r#type?", Docs: "Raw."}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extract(t, tt.input, Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractSchemaErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
	}{
		{
			name:  "numeric name",
			input: `{"index": {"1": {"name": 7, "inner": {"function": {}}, "docs": "x"}}}`,
			field: "name",
		},
		{
			name:  "null name",
			input: `{"index": {"1": {"name": null, "inner": {"function": {}}, "docs": "x"}}}`,
			field: "name",
		},
		{
			name:  "false docs",
			input: `{"index": {"1": {"name": "open", "inner": {"function": {}}, "docs": false}}}`,
			field: "docs",
		},
		{
			name:  "zero docs",
			input: `{"index": {"1": {"name": "open", "inner": {"function": {}}, "docs": 0}}}`,
			field: "docs",
		},
		{
			name:  "array docs",
			input: `{"index": {"1": {"name": "open", "inner": {"function": {}}, "docs": ["x"]}}}`,
			field: "docs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := extract(t, tt.input, Options{})
			var se *SchemaError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, "1", se.ID)
			assert.Equal(t, tt.field, se.Field)
		})
	}
}

func TestExtractIgnoresBadFieldsOnSkippedItems(t *testing.T) {
	got, err := extract(t, `{"index": {
		"1": {"name": null, "inner": {"impl": {}}, "docs": 3},
		"2": {"name": 1, "inner": {"function": {}}, "docs": null}
	}}`, Options{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExtractMissingIndex(t *testing.T) {
	_, err := extract(t, `{"items": {}}`, Options{})
	assert.ErrorIs(t, err, ErrMissingIndex)
}

func TestExtractOptions(t *testing.T) {
	input := `{"index": {
		"1": {"name": "local_pub", "crate_id": 0, "visibility": "public", "inner": {"function": {}}, "docs": "a"},
		"2": {"name": "local_priv", "crate_id": 0, "visibility": "default", "inner": {"function": {}}, "docs": "b"},
		"3": {"name": "dep_pub", "crate_id": 4, "visibility": "public", "inner": {"function": {}}, "docs": "c"}
	}}`

	names := func(fns []Function) []string {
		var out []string
		for _, f := range fns {
			out = append(out, f.Name)
		}
		return out
	}

	cases := []struct {
		name string
		opts Options
		want []string
	}{
		{"none", Options{}, []string{"local_pub", "local_priv", "dep_pub"}},
		{"local", Options{LocalOnly: true}, []string{"local_pub", "local_priv"}},
		{"public", Options{PublicOnly: true}, []string{"local_pub", "dep_pub"}},
		{"both", Options{LocalOnly: true, PublicOnly: true}, []string{"local_pub"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := extract(t, input, c.opts)
			require.NoError(t, err)
			assert.Equal(t, c.want, names(got))
		})
	}
}

func TestExtractTestdata(t *testing.T) {
	doc, err := Load(afero.NewOsFs(), "testdata/opendal_ruby.json")
	require.NoError(t, err)

	fns, err := Extract(doc, Options{})
	require.NoError(t, err)

	var got []string
	for _, f := range fns {
		got = append(got, f.Name)
	}
	assert.Equal(t, []string{"read", "write", "stat", "delete"}, got)
}
