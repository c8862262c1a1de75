package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/cv-builder/internal/schemas"
	"github.com/jonathan/cv-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// exerciseSlot runs the behaviour every Slot implementation must share.
func exerciseSlot(t *testing.T, slot Slot) {
	t.Helper()
	ctx := context.Background()
	key := "test-" + t.Name()

	_, err := slot.Load(ctx, key)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, slot.Save(ctx, key, []byte(`{"v":1}`)))
	got, err := slot.Load(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":1}`, string(got))

	require.NoError(t, slot.Save(ctx, key, []byte(`{"v":2}`)))
	got, err = slot.Load(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":2}`, string(got))
}

func TestMemorySlot(t *testing.T) {
	slot := NewMemorySlot()
	exerciseSlot(t, slot)
	assert.Equal(t, 2, slot.Saves())
}

func TestMemorySlot_CopiesValues(t *testing.T) {
	slot := NewMemorySlot()
	ctx := context.Background()
	value := []byte("abc")

	require.NoError(t, slot.Save(ctx, "k", value))
	value[0] = 'x'

	got, err := slot.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestFileSlot(t *testing.T) {
	slot, err := NewFileSlot(filepath.Join(t.TempDir(), "nested", "dir"))
	require.NoError(t, err)
	exerciseSlot(t, slot)
	require.NoError(t, slot.Close())
}

func TestFileSlot_PathSanitizesKey(t *testing.T) {
	dir := t.TempDir()
	slot, err := NewFileSlot(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "cv-builder-data.json"), slot.Path(types.StorageKey))
	assert.Equal(t, dir, filepath.Dir(slot.Path("../../etc/passwd")))
}

func TestFileSlot_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	slot, err := NewFileSlot(dir)
	require.NoError(t, err)

	require.NoError(t, slot.Save(context.Background(), "k", []byte("{}")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "k.json", entries[0].Name())
}

func TestNewFileSlot_EmptyDir(t *testing.T) {
	_, err := NewFileSlot("")
	require.Error(t, err)
	var storageErr *Error
	assert.ErrorAs(t, err, &storageErr)
}

func TestSQLiteSlot(t *testing.T) {
	slot, err := OpenSQLite(filepath.Join(t.TempDir(), "cv.db"))
	require.NoError(t, err)
	defer slot.Close()

	exerciseSlot(t, slot)
}

func TestOpenSQLite_ClosesDatabaseWhenMigrationFails(t *testing.T) {
	var migrated *gorm.DB
	original := migrateSnapshots
	migrateSnapshots = func(db *gorm.DB) error {
		migrated = db
		return errors.New("table is locked")
	}
	t.Cleanup(func() { migrateSnapshots = original })

	slot, err := OpenSQLite(filepath.Join(t.TempDir(), "cv.db"))
	require.Error(t, err)
	assert.Nil(t, slot)
	assert.Contains(t, err.Error(), "failed to migrate snapshot table")

	require.NotNil(t, migrated)
	sqlDB, err := migrated.DB()
	require.NoError(t, err)
	assert.ErrorContains(t, sqlDB.Ping(), "database is closed")
}

func TestSQLiteSlot_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.db")
	ctx := context.Background()

	slot, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, slot.Save(ctx, types.StorageKey, []byte(`{"a":true}`)))
	require.NoError(t, slot.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Load(ctx, types.StorageKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":true}`, string(got))
}

func TestOpen_Backends(t *testing.T) {
	ctx := context.Background()

	slot, err := Open(ctx, Options{Dir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &FileSlot{}, slot)

	slot, err = Open(ctx, Options{Backend: BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemorySlot{}, slot)

	slot, err = Open(ctx, Options{Backend: BackendSQLite, SQLitePath: filepath.Join(t.TempDir(), "x.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteSlot{}, slot)
	require.NoError(t, slot.Close())

	_, err = Open(ctx, Options{Backend: "floppy"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage backend")

	_, err = Open(ctx, Options{Backend: BackendPostgres})
	assert.Error(t, err)

	_, err = Open(ctx, Options{Backend: BackendRedis})
	assert.Error(t, err)
}

func TestSnapshot_RoundTrip(t *testing.T) {
	doc := types.DefaultDocument()
	doc.PersonalInfo.FullName = "Ada Lovelace"
	doc.CustomSections = []types.CustomSection{{ID: "c", Title: "Extra", Items: []types.CustomItem{{ID: "i", Content: "x"}}}}

	data, err := EncodeSnapshot(doc)
	require.NoError(t, err)

	decoded, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, doc, decoded)
}

func TestDecodeSnapshot_Malformed(t *testing.T) {
	_, err := DecodeSnapshot([]byte("not json"))
	require.Error(t, err)

	var storageErr *Error
	require.ErrorAs(t, err, &storageErr)
	var loadErr *schemas.SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestDecodeSnapshot_ShapeMismatch(t *testing.T) {
	_, err := DecodeSnapshot([]byte(`{"personalInfo": {"fullName": "X", "jobTitle": "Y"}}`))
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestEncodeSnapshot_NilCollections(t *testing.T) {
	doc := types.DefaultDocument()
	doc.Skills = nil

	data, err := EncodeSnapshot(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"skills":[]`)

	_, err = DecodeSnapshot(data)
	assert.NoError(t, err)
}
