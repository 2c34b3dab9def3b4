package canonjson_test

import (
	"bytes"
	"errors"
	"testing"

	"canonjson"

	"github.com/go-kit/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := canonjson.NewStore(fs, nil)

	v := canonjson.Object{
		"name":  canonjson.String("seg_9"),
		"count": canonjson.Integer(100),
	}
	require.NoError(t, store.Write("seg_9/manifest.json", v))

	raw, err := afero.ReadFile(fs, "seg_9/manifest.json")
	require.NoError(t, err)
	require.Equal(t, "{\n  \"count\": 100,\n  \"name\": \"seg_9\"\n}\n", string(raw))

	back, err := store.Read("seg_9/manifest.json")
	require.NoError(t, err)
	obj, ok := back.(canonjson.Object)
	require.True(t, ok)
	require.Equal(t, canonjson.String("seg_9"), obj["name"])
	require.Equal(t, canonjson.Float(100), obj["count"])
}

func TestStoreReadMissingFile(t *testing.T) {
	store := canonjson.NewStore(afero.NewMemMapFs(), nil)
	_, err := store.Read("no/such.json")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no/such.json")
}

func TestStoreReadParseFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "bad.json", []byte("{oops"), 0o644))

	_, err := canonjson.NewStore(fs, nil).Read("bad.json")
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad.json")

	var perr *canonjson.ParseError
	require.True(t, errors.As(err, &perr), "underlying cause should be a *ParseError")
}

func TestStoreWriteRejectsScalarRoot(t *testing.T) {
	fs := afero.NewMemMapFs()
	err := canonjson.NewStore(fs, nil).Write("out.json", canonjson.Integer(5))
	require.Error(t, err)

	var eerr *canonjson.EncodeError
	require.True(t, errors.As(err, &eerr))

	// Nothing was opened or written.
	exists, ferr := afero.Exists(fs, "out.json")
	require.NoError(t, ferr)
	require.False(t, exists)
}

func TestStoreLogsReadsAndWrites(t *testing.T) {
	var logged bytes.Buffer
	store := canonjson.NewStore(afero.NewMemMapFs(), log.NewLogfmtLogger(&logged))

	require.NoError(t, store.Write("m.json", canonjson.Array{canonjson.Integer(1)}))
	_, err := store.Read("m.json")
	require.NoError(t, err)

	out := logged.String()
	require.Contains(t, out, "path=m.json")
	require.Contains(t, out, "wrote json value")
	require.Contains(t, out, "read json value")
}

func TestReadWriteFileHelpers(t *testing.T) {
	fs := afero.NewMemMapFs()
	v := canonjson.Object{"ok": canonjson.Bool(true)}
	require.NoError(t, canonjson.WriteFile(fs, "helper.json", v))

	back, err := canonjson.ReadFile(fs, "helper.json")
	require.NoError(t, err)
	require.Equal(t, canonjson.Object{"ok": canonjson.Bool(true)}, back)
}
