package data

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"derivatives-case-study/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePathJSON_BareArray(t *testing.T) {
	t.Parallel()

	pf, err := DecodePathJSON(strings.NewReader(`[{"month":1,"rate":1.6},{"month":2,"rate":1.9}]`))
	require.NoError(t, err)
	assert.Equal(t, model.ScenarioPath{{Month: 1, Rate: 1.6}, {Month: 2, Rate: 1.9}}, pf.Path)
	assert.Empty(t, pf.Name)
}

func TestDecodePathJSON_Object(t *testing.T) {
	t.Parallel()

	pf, err := DecodePathJSON(strings.NewReader(`{"name":"q4","path":[{"month":1,"rate":2.18}]}`))
	require.NoError(t, err)
	assert.Equal(t, "q4", pf.Name)
	assert.Len(t, pf.Path, 1)
}

func TestDecodePathJSON_Errors(t *testing.T) {
	t.Parallel()

	_, err := DecodePathJSON(strings.NewReader(`not json`))
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = DecodePathJSON(strings.NewReader(`[{"month":2,"rate":1.6}]`))
	assert.ErrorIs(t, err, model.ErrPreconditionViolation)

	_, err = DecodePathJSON(strings.NewReader(`[]`))
	assert.ErrorIs(t, err, model.ErrPreconditionViolation)
}

func TestLoadPathJSON(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "path.json")
	require.NoError(t, os.WriteFile(p, []byte(`[{"month":1,"rate":1.6}]`), 0o644))

	pf, err := LoadPathJSON(p)
	require.NoError(t, err)
	assert.Len(t, pf.Path, 1)

	_, err = LoadPathJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestHistorical2008(t *testing.T) {
	t.Parallel()

	p := Historical2008()
	require.Len(t, p, 12)
	require.NoError(t, p.Validate())
	assert.Equal(t, 1.77, p[0].Rate)
	assert.Equal(t, 2.34, p[11].Rate)

	p[0].Rate = 99
	assert.Equal(t, 1.77, Historical2008()[0].Rate)
}

func TestSavePathJSON(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "out", "path.json")
	in := &PathFile{Name: "BRL/USD 2008", Path: Historical2008()}
	require.NoError(t, SavePathJSON(p, in))

	got, err := LoadPathJSON(p)
	require.NoError(t, err)
	assert.Equal(t, in.Name, got.Name)
	assert.Equal(t, in.Path, got.Path)
}
