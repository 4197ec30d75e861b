package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/scaffoldview/pkg/geometry"
)

const singleBox = `{"parts":[{"name":"A","width":2,"depth":2,"height":1,"ecsBox":[1,0,0,0,0,1,0,0,0,0,1,0]}]}`

func TestDecodeSinglePart(t *testing.T) {
	model, err := Decode(strings.NewReader(singleBox))
	require.NoError(t, err)
	require.Equal(t, 1, model.PartCount())

	p := model.Parts[0]
	assert.Equal(t, "A", p.Name)
	assert.Equal(t, 2.0, p.Width)
	assert.Equal(t, 2.0, p.Depth)
	assert.Equal(t, 1.0, p.Height)
	assert.Equal(t, [12]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0}, p.ECSBox)

	local := p.LocalVertices()
	placement := p.Placement()
	for i, v := range local {
		assert.Equal(t, v, placement.Apply(v), "vertex %d", i)
	}
	assert.Equal(t, geometry.BoxVertices(2, 2, 1), local)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join("testdata", "scaffold-1.json")
	model, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, path, model.Source)
	assert.Equal(t, 4, model.PartCount())
	assert.Equal(t, []int{1, 2}, model.Named("Leg"))
	assert.Empty(t, model.Named("leg"))
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDecodeEmptyParts(t *testing.T) {
	model, err := Decode(strings.NewReader(`{"parts":[]}`))
	require.NoError(t, err)
	assert.Equal(t, 0, model.PartCount())
}

func TestDecodeMissingParts(t *testing.T) {
	for _, doc := range []string{
		`{}`,
		`{"items":[]}`,
		`{"parts":null}`,
		`{"PARTS":[{"name":"A","width":2,"depth":2,"height":1,"ecsBox":[1,0,0,0,0,1,0,0,0,0,1,0]}]}`,
		`{"Parts":[]}`,
	} {
		_, err := Decode(strings.NewReader(doc))
		assert.ErrorIs(t, err, ErrMissingParts, doc)
	}
}

func TestDecodeMalformedJSON(t *testing.T) {
	for _, doc := range []string{
		``,
		`{"parts":[`,
		`[1,2,3]`,
		`{"parts":"x"}`,
		`{"parts":[]} trailing garbage`,
		`{"parts":[]}{"parts":[]}`,
	} {
		_, err := Decode(strings.NewReader(doc))
		require.Error(t, err, doc)
		assert.NotErrorIs(t, err, ErrMissingParts, doc)
	}
}

func TestDecodeMalformedPart(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"no width", `{"parts":[{"name":"A","depth":1,"height":1,"ecsBox":[1,0,0,0,0,1,0,0,0,0,1,0]}]}`, "width"},
		{"no height", `{"parts":[{"name":"A","width":1,"depth":1,"ecsBox":[1,0,0,0,0,1,0,0,0,0,1,0]}]}`, "height"},
		{"no ecsBox", `{"parts":[{"name":"A","width":1,"depth":1,"height":1}]}`, "ecsBox"},
		{"no name", `{"parts":[{"width":1,"depth":1,"height":1,"ecsBox":[1,0,0,0,0,1,0,0,0,0,1,0]}]}`, "name"},
		{"short ecsBox", `{"parts":[{"name":"A","width":1,"depth":1,"height":1,"ecsBox":[1,0,0]}]}`, "ecsBox"},
		{"null part", `{"parts":[null]}`, "name"},
		{"part not an object", `{"parts":[1]}`, "part"},
		{"capitalized width", `{"parts":[{"name":"A","Width":1,"depth":1,"height":1,"ecsBox":[1,0,0,0,0,1,0,0,0,0,1,0]}]}`, "width"},
		{"upper case keys", `{"parts":[{"NAME":"A","width":1,"depth":1,"height":1,"ECSBOX":[1,0,0,0,0,1,0,0,0,0,1,0]}]}`, "name"},
		{"upper case ecsBox", `{"parts":[{"name":"A","width":1,"depth":1,"height":1,"ECSBOX":[1,0,0,0,0,1,0,0,0,0,1,0]}]}`, "ecsBox"},
		{"null in ecsBox", `{"parts":[{"name":"A","width":1,"depth":1,"height":1,"ecsBox":[null,0,0,0,0,1,0,0,0,0,1,0]}]}`, "ecsBox"},
		{"null width", `{"parts":[{"name":"A","width":null,"depth":1,"height":1,"ecsBox":[1,0,0,0,0,1,0,0,0,0,1,0]}]}`, "width"},
		{"string depth", `{"parts":[{"name":"A","width":1,"depth":"1","height":1,"ecsBox":[1,0,0,0,0,1,0,0,0,0,1,0]}]}`, "depth"},
		{"numeric name", `{"parts":[{"name":7,"width":1,"depth":1,"height":1,"ecsBox":[1,0,0,0,0,1,0,0,0,0,1,0]}]}`, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			require.ErrorIs(t, err, ErrMalformedPart)

			var partErr *PartError
			require.True(t, errors.As(err, &partErr))
			assert.Equal(t, 0, partErr.Index)
			assert.Equal(t, tt.field, partErr.Field)
		})
	}
}

func TestDecodeReportsFailingIndex(t *testing.T) {
	doc := `{"parts":[
		{"name":"A","width":1,"depth":1,"height":1,"ecsBox":[1,0,0,0,0,1,0,0,0,0,1,0]},
		{"name":"B","width":1,"depth":1,"ecsBox":[1,0,0,0,0,1,0,0,0,0,1,0]}
	]}`
	_, err := Decode(strings.NewReader(doc))

	var partErr *PartError
	require.ErrorAs(t, err, &partErr)
	assert.Equal(t, 1, partErr.Index)
	assert.Equal(t, "height", partErr.Field)
}

func TestDecodeAllowsTrailingWhitespace(t *testing.T) {
	model, err := Decode(strings.NewReader(singleBox + "\n\t \n"))
	require.NoError(t, err)
	assert.Equal(t, 1, model.PartCount())
}

func TestDecodeIgnoresUnknownKeys(t *testing.T) {
	doc := `{"version":2,"parts":[{"name":"A","id":9,"width":1,"depth":1,"height":1,"ecsBox":[1,0,0,0,0,1,0,0,0,0,1,0]}]}`
	model, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "A", model.Parts[0].Name)
}

func TestDecodeAcceptsZeroAndDuplicateParts(t *testing.T) {
	doc := `{"parts":[
		{"name":"Flat","width":0,"depth":3,"height":0,"ecsBox":[1,0,0,0,0,1,0,0,0,0,1,0]},
		{"name":"Flat","width":1,"depth":1,"height":1,"ecsBox":[1,0,0,0,0,1,0,0,0,0,1,0]}
	]}`
	model, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, model.Named("Flat"))
}
