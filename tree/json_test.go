package tree

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTreeFile(t *testing.T, path string) (Node, error) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTree(f)
}

func TestMarshalTree_RoundTrip(t *testing.T) {
	root, names := growMarineTree(t)

	data, err := MarshalTree(root)
	require.NoError(t, err)

	restored, err := UnmarshalTree(data)
	require.NoError(t, err)
	assert.Equal(t, root, restored)

	got, err := Classify(restored, names, Example{Num(1), Num(1)})
	require.NoError(t, err)
	assert.Equal(t, Str("yes"), got)
}

func TestMarshalTree_Deterministic(t *testing.T) {
	root, _ := growMarineTree(t)

	first, err := MarshalTree(root)
	require.NoError(t, err)
	second, err := MarshalTree(root)
	require.NoError(t, err)
	assert.Equal(t, first, second, "branch ordering must not depend on map iteration")
}

func TestMarshalTree_SingleLeaf(t *testing.T) {
	data, err := MarshalTree(&Leaf{Label: Str("yes")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"leaf","label":"yes"}`, string(data))
}

func TestMarshalTree_PreservesValueKinds(t *testing.T) {
	root := &Split{
		Attribute: "mixed",
		Branches: map[Value]Node{
			Num(1):   &Leaf{Label: Str("numeric branch")},
			Str("1"): &Leaf{Label: Str("textual branch")},
		},
	}
	data, err := MarshalTree(root)
	require.NoError(t, err)

	restored, err := UnmarshalTree(data)
	require.NoError(t, err)
	assert.Equal(t, root, restored)
}

func TestWriteTree_ReadTree(t *testing.T) {
	root, _ := growMarineTree(t)

	var buf bytes.Buffer
	require.NoError(t, WriteTree(&buf, root))
	assert.True(t, strings.Contains(buf.String(), "no-surfacing"))

	restored, err := ReadTree(&buf)
	require.NoError(t, err)
	assert.Equal(t, root, restored)
}

func TestUnmarshalTree_RejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown kind", `{"kind":"branchy"}`},
		{"leaf without label", `{"kind":"leaf"}`},
		{"split without attribute", `{"kind":"split","branches":[{"value":1,"child":{"kind":"leaf","label":"x"}}]}`},
		{"split without branches", `{"kind":"split","attribute":"a"}`},
		{"branch without child", `{"kind":"split","attribute":"a","branches":[{"value":1}]}`},
		{"null leaf label", `{"kind":"leaf","label":null}`},
		{"null branch value", `{"kind":"split","attribute":"a","branches":[{"value":null,"child":{"kind":"leaf","label":"x"}}]}`},
		{"not json", `{{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalTree([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
