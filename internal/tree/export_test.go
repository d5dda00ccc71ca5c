package tree

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExport(t *testing.T) {
	tr := Build(mustParse(t, "M  src/main.py", "R  a.py -> src/b.py", "D  README.md"))

	want := []ExportNode{
		{
			Name: "src",
			Type: "dir",
			Children: []ExportNode{
				{Name: "main.py", Type: "file", Status: "M", Category: "modified"},
				{Name: "b.py", Type: "file", Status: "R", Category: "renamed", Origin: "a.py"},
			},
		},
		{Name: "README.md", Type: "file", Status: "D", Category: "deleted"},
	}
	assert.Equal(t, want, Export(tr))
}

func TestEncodeYAML(t *testing.T) {
	tr := Build(mustParse(t, "M  src/main.py", "A  src/util.py"))

	var buf bytes.Buffer
	require.NoError(t, EncodeYAML(&buf, tr))

	var decoded []ExportNode
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, Export(tr), decoded)
	assert.Contains(t, buf.String(), "- name: src\n")
}

func TestEncodeJSON(t *testing.T) {
	tr := Build(mustParse(t, " M pkg/a.go"))

	var buf bytes.Buffer
	require.NoError(t, EncodeJSON(&buf, tr))

	var decoded []ExportNode
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	require.Len(t, decoded[0].Children, 1)
	assert.Equal(t, " ", decoded[0].Children[0].Status)
	assert.Equal(t, "unmodified", decoded[0].Children[0].Category)
}

func TestEncodeEmpty(t *testing.T) {
	tr := New()

	var y bytes.Buffer
	require.NoError(t, EncodeYAML(&y, tr))
	assert.Equal(t, "[]\n", y.String())

	var j bytes.Buffer
	require.NoError(t, EncodeJSON(&j, tr))
	assert.Equal(t, "[]\n", j.String())
}
