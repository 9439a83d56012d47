package param_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-multipart/header/param"
)

func TestParse(t *testing.T) {
	t.Parallel()

	_, err := param.Parse("form:data")
	assert.Error(t, err)

	pv, err := param.Parse("inline")
	assert.NoError(t, err)

	assert.Equal(t, "inline", pv.Disposition())
	assert.Equal(t, "inline", pv.Value())
	assert.Equal(t, map[string]string{}, pv.Parameters())

	pv, err = param.Parse(`form-data; name=avatar; filename="me.png"`)
	assert.NoError(t, err)

	assert.Equal(t, "form-data", pv.Disposition())
	assert.Equal(t, "avatar", pv.Name())
	assert.Equal(t, "me.png", pv.Filename())
	assert.Equal(t, map[string]string{
		"name":     "avatar",
		"filename": "me.png",
	}, pv.Parameters())
}

func TestParse_ParameterCase(t *testing.T) {
	t.Parallel()

	pv, err := param.Parse(`form-data; NAME=upper; FileName="mixed.txt"`)
	assert.NoError(t, err)

	assert.Equal(t, "upper", pv.Name())
	assert.Equal(t, "mixed.txt", pv.Filename())

	v, ok := pv.Parameter("Name")
	assert.True(t, ok)
	assert.Equal(t, "upper", v)

	_, ok = pv.Parameter("missing")
	assert.False(t, ok)
}

func TestNew(t *testing.T) {
	t.Parallel()

	pv := param.New("form-data", map[string]string{
		"Name": "document",
	})

	assert.Equal(t, "form-data", pv.Disposition())
	assert.Equal(t, "document", pv.Name())
	assert.Equal(t, map[string]string{"name": "document"}, pv.Parameters())

	pv = param.New("attachment")
	assert.Equal(t, "attachment", pv.Disposition())
	assert.Equal(t, map[string]string{}, pv.Parameters())
}

func TestModify(t *testing.T) {
	t.Parallel()

	pv := param.New("form-data")
	assert.Equal(t, "form-data", pv.String())

	pv = param.Modify(pv,
		param.Set(param.Name, "upload"),
		param.Set(param.Filename, "data.bin"),
	)
	assert.Equal(t, `form-data; filename=data.bin; name=upload`, pv.String())

	next := param.Modify(pv,
		param.Change("attachment"),
		param.Delete(param.Name),
	)
	assert.Equal(t, `attachment; filename=data.bin`, next.String())
	assert.Equal(t, []byte(`attachment; filename=data.bin`), next.Bytes())

	// the original is untouched
	assert.Equal(t, "upload", pv.Name())
	assert.Equal(t, "form-data", pv.Disposition())
}

func TestValue_Clone(t *testing.T) {
	t.Parallel()

	pv := param.New("form-data", map[string]string{"name": "a"})
	cp := pv.Clone()

	mod := param.Modify(cp, param.Set("name", "b"))
	assert.Equal(t, "a", pv.Name())
	assert.Equal(t, "a", cp.Name())
	assert.Equal(t, "b", mod.Name())
}

func TestValue_Quoting(t *testing.T) {
	t.Parallel()

	pv := param.New("form-data", map[string]string{
		"name": "two words",
	})
	assert.Equal(t, `form-data; name="two words"`, pv.String())

	rt, err := param.Parse(pv.String())
	assert.NoError(t, err)
	assert.Equal(t, "two words", rt.Name())
}
