package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-config-store/internal/mock"
	"github.com/MKhiriev/go-config-store/internal/repair"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── FromJSON ──────────────────────────────────────────────────────────────────

// TestFromJSON_ForwardCompatible verifies that unknown keys are merged next
// to known ones.
func TestFromJSON_ForwardCompatible(t *testing.T) {
	s := newTestStore(t, "")
	require.NoError(t, s.Set("a", 1))

	data, err := s.FromJSON(`{"a": 1, "b": "new"}`)

	require.NoError(t, err)
	expected := map[string]any{"a": float64(1), "b": "new"}
	assert.Equal(t, expected, data)
	assert.Equal(t, expected, s.Data())
}

// TestFromJSON_Coercion verifies that a numeric string lands as a number.
func TestFromJSON_Coercion(t *testing.T) {
	s := newTestStore(t, "")
	require.NoError(t, s.Set("a", 1))

	_, err := s.FromJSON(`{"a": "5"}`)

	require.NoError(t, err)
	v, _ := s.Get("a")
	assert.Equal(t, float64(5), v)
}

// TestFromJSON_TypeMismatchLeavesDataUntouched verifies all-or-nothing merging.
// TestFromJSON_NullDefaultRejectsValue verifies that a key holding null
// keeps its type across loads.
func TestFromJSON_NullDefaultRejectsValue(t *testing.T) {
	// Arrange
	s := newTestStore(t, "app")
	require.NoError(t, s.Set("a", nil))

	// Act
	_, err := s.FromJSON(`{"a":"x"}`)

	// Assert
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.EqualError(t, err, "app key a is not of type null")
	assert.Equal(t, map[string]any{"a": nil}, s.Data())
}

func TestFromJSON_TypeMismatchLeavesDataUntouched(t *testing.T) {
	// Arrange
	s := newTestStore(t, "")
	require.NoError(t, s.SetDefaults(map[string]any{"a": 1, "b": "x", "c": true}))
	before := s.Data()

	// Act
	data, err := s.FromJSON(`{"a": 2, "b": "y", "c": "not a bool", "d": 4}`)

	// Assert
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Nil(t, data)
	assert.Equal(t, before, s.Data())
}

func TestFromJSON_ArrayExemption(t *testing.T) {
	s := newTestStore(t, "", WithIgnoreArray(true))
	require.NoError(t, s.Set("a", 1))

	data, err := s.FromJSON(`{"a": [1, 2, 3]}`)

	require.NoError(t, err)
	assert.Equal(t, []any{float64(1), float64(2), float64(3)}, data["a"])
}

// TestFromJSON_ShallowMerge verifies that a nested object in the payload
// replaces the stored one instead of being merged into it.
func TestFromJSON_ShallowMerge(t *testing.T) {
	s := newTestStore(t, "")
	require.NoError(t, s.Set("server", map[string]any{"host": "localhost", "port": 80}))

	data, err := s.FromJSON(`{"server": {"port": 81}}`)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"port": float64(81)}, data["server"])
}

func TestFromJSON_ParseFailure(t *testing.T) {
	s := newTestStore(t, "", WithJSONFixer(false))

	data, err := s.FromJSON(`{"a": 1,}`)

	assert.Nil(t, data)
	assert.ErrorIs(t, err, ErrParse)
	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
}

func TestFromJSON_EmptyText(t *testing.T) {
	t.Run("fixer enabled reads as empty object", func(t *testing.T) {
		s := newTestStore(t, "")
		require.NoError(t, s.Set("a", 1))

		data, err := s.FromJSON("")

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": float64(1)}, data)
	})

	t.Run("fixer disabled fails", func(t *testing.T) {
		s := newTestStore(t, "", WithJSONFixer(false))

		_, err := s.FromJSON("")

		assert.ErrorIs(t, err, ErrParse)
	})
}

func TestFromJSON_NotObject(t *testing.T) {
	for _, text := range []string{`[1, 2]`, `5`, `"text"`, `null`} {
		t.Run(text, func(t *testing.T) {
			s := newTestStore(t, "")

			_, err := s.FromJSON(text)

			assert.ErrorIs(t, err, ErrParse)
			assert.ErrorIs(t, err, ErrNotObject)
		})
	}
}

// TestFromJSON_RepairWithoutExactPath verifies that fixable text is parsed and
// that nothing is written while the backing path is only derived from the name.
func TestFromJSON_RepairWithoutExactPath(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	fs := mock.NewMockFileSystem(ctrl) // no calls expected

	s := newTestStore(t, "", WithFileSystem(fs))
	require.NoError(t, s.Set("a", 1))

	// Act
	data, err := s.FromJSON(`{'a': 2, b: true,}`)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": float64(2), "b": true}, data)
}

// TestFromJSON_RepairFailureFallsThroughToParser verifies that a fixer error
// surfaces as a parse failure.
func TestFromJSON_RepairFailureFallsThroughToParser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	fixer := mock.NewMockFixer(ctrl)
	fixer.EXPECT().Fix("{bad").Return(repair.Result{}, errors.New("cannot repair"))

	s := newTestStore(t, "", WithFixer(fixer))

	_, err := s.FromJSON("{bad")

	assert.ErrorIs(t, err, ErrParse)
}

func TestFromJSON_FixerReceivesEmptyObjectForEmptyText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	fixer := mock.NewMockFixer(ctrl)
	fixer.EXPECT().Fix("{}").Return(repair.Result{Data: map[string]any{}}, nil)

	s := newTestStore(t, "", WithFixer(fixer))

	data, err := s.FromJSON("")

	require.NoError(t, err)
	assert.Empty(t, data)
}

// TestFromJSON_RepairedWriteFailure verifies that a failed write-back of a
// repaired file is reported and nothing is merged.
func TestFromJSON_RepairedWriteFailure(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	fs := mock.NewMockFileSystem(ctrl)
	writeErr := errors.New("disk full")

	path := "settings.json"
	gomock.InOrder(
		fs.EXPECT().Exists(path).Return(true, nil),
		fs.EXPECT().ReadFile(path).Return([]byte(`{"a": 2,}`), nil),
		fs.EXPECT().WriteFile(path, []byte(`{"a":2}`), DefaultFileMode).Return(writeErr),
	)

	s := newTestStore(t, "", WithFileSystem(fs))

	// Act
	data, err := s.FromFile(path)

	// Assert
	assert.Nil(t, data)
	assert.Equal(t, writeErr, err)
	assert.Empty(t, s.Data())
}

// ── FromMap ───────────────────────────────────────────────────────────────────

func TestFromMap_DoesNotModifyPayload(t *testing.T) {
	s := newTestStore(t, "")
	require.NoError(t, s.Set("server", map[string]any{"port": 80}))
	payload := map[string]any{"server": map[string]any{"port": "81"}}

	data, err := s.FromMap(payload)

	require.NoError(t, err)
	assert.Equal(t, float64(81), data["server"].(map[string]any)["port"])
	assert.Equal(t, "81", payload["server"].(map[string]any)["port"])

	// later changes to the payload do not reach the store
	payload["server"].(map[string]any)["port"] = "99"
	v, _ := s.Get("server")
	assert.Equal(t, float64(81), v.(map[string]any)["port"])
}

// ── FromFile ──────────────────────────────────────────────────────────────────

// TestFromFile_BootstrapsMissingFile verifies that a missing file is created
// from the current data before loading.
func TestFromFile_BootstrapsMissingFile(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "app.json")
	s := newTestStore(t, "app")
	require.NoError(t, s.SetDefaults(map[string]any{"a": 1, "name": "svc"}))

	// Act
	data, err := s.FromFile(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": float64(1), "name": "svc"}, data)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1,"name":"svc"}`, string(raw))

	assert.Equal(t, path, s.Path())
	assert.True(t, s.ExactPathKnown())
}

// TestFromFile_DefaultPath verifies that without a path the name-derived path
// is used and the exact path stays unknown.
func TestFromFile_DefaultPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	fs := mock.NewMockFileSystem(ctrl)
	gomock.InOrder(
		fs.EXPECT().Exists("app.json").Return(false, nil),
		fs.EXPECT().WriteFile("app.json", []byte("{}"), DefaultFileMode).Return(nil),
		fs.EXPECT().ReadFile("app.json").Return([]byte("{}"), nil),
	)

	s := newTestStore(t, "app", WithFileSystem(fs))

	data, err := s.FromFile("")

	require.NoError(t, err)
	assert.Empty(t, data)
	assert.False(t, s.ExactPathKnown())
}

// TestFromFile_ExactPathIsOneWay verifies that a later call without a path
// keeps the explicit path.
func TestFromFile_ExactPathIsOneWay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.json")
	s := newTestStore(t, "app")

	_, err := s.FromFile(path)
	require.NoError(t, err)

	_, err = s.FromFile("")
	require.NoError(t, err)

	assert.Equal(t, path, s.Path())
	assert.True(t, s.ExactPathKnown())
}

// TestFromFile_PersistsRepairedJSON verifies that a fixable file is loaded and
// rewritten in repaired form once its exact path is known.
func TestFromFile_PersistsRepairedJSON(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a": 2, "list": [1, 2,],}`), 0o600))

	s := newTestStore(t, "")
	require.NoError(t, s.Set("a", 1))

	// Act
	data, err := s.FromFile(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": float64(2), "list": []any{float64(1), float64(2)}}, data)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"a":2,"list":[1,2]}`, string(raw))
}

// TestFromFile_ValidJSONNotRewritten verifies that valid files are left as they are.
func TestFromFile_ValidJSONNotRewritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok.json")
	original := "{\n    \"a\": 2\n}"
	require.NoError(t, os.WriteFile(path, []byte(original), 0o600))

	s := newTestStore(t, "")

	_, err := s.FromFile(path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(raw))
}

func TestFromFile_TypeMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": "http"}`), 0o600))

	s := newTestStore(t, "app")
	require.NoError(t, s.Set("port", 80))

	data, err := s.FromFile(path)

	assert.Nil(t, data)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.EqualError(t, err, "app key port is not of type number")
}

func TestFromFile_IOFailures(t *testing.T) {
	ioErr := errors.New("permission denied")

	tests := []struct {
		name  string
		setup func(fs *mock.MockFileSystem)
	}{
		{
			name: "exists check fails",
			setup: func(fs *mock.MockFileSystem) {
				fs.EXPECT().Exists("config.json").Return(false, ioErr)
			},
		},
		{
			name: "bootstrap write fails",
			setup: func(fs *mock.MockFileSystem) {
				fs.EXPECT().Exists("config.json").Return(false, nil)
				fs.EXPECT().WriteFile("config.json", gomock.Any(), gomock.Any()).Return(ioErr)
			},
		},
		{
			name: "read fails",
			setup: func(fs *mock.MockFileSystem) {
				fs.EXPECT().Exists("config.json").Return(true, nil)
				fs.EXPECT().ReadFile("config.json").Return(nil, ioErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			fs := mock.NewMockFileSystem(ctrl)
			tt.setup(fs)

			s := newTestStore(t, "", WithFileSystem(fs))

			data, err := s.FromFile("")

			assert.Nil(t, data)
			// I/O errors are passed through unwrapped
			assert.Equal(t, ioErr, err)
		})
	}
}

// TestRoundTrip verifies that data saved by one store is read back unchanged
// by a store without defaults.
func TestRoundTrip(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "roundtrip.json")
	m := map[string]any{
		"name":    "svc",
		"port":    float64(8080),
		"ratio":   0.25,
		"debug":   true,
		"nothing": nil,
		"tags":    []any{"a", float64(1), false, nil},
		"server": map[string]any{
			"host": "<localhost>",
			"tls":  map[string]any{"enabled": false, "ciphers": []any{}},
		},
	}

	for _, pretty := range []bool{false, true} {
		writer := newTestStore(t, "", WithPrettify(pretty))
		_, err := writer.FromMap(m)
		require.NoError(t, err)
		_, err = writer.SaveTo(path)
		require.NoError(t, err)

		// Act
		reader := newTestStore(t, "")
		data, err := reader.FromFile(path)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, m, data)
		assert.Equal(t, m, reader.Data())
	}
}
