package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safewatch-chatbot/pkg"
)

func testReport(drug string) *pkg.AdverseEventReport {
	return &pkg.AdverseEventReport{
		ID:        "id-" + drug,
		Drug:      drug,
		Reaction:  "dizziness",
		Age:       "30",
		Gender:    pkg.GenderMale,
		Timestamp: time.Now(),
	}
}

func readReports(t *testing.T, path string) []pkg.AdverseEventReport {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var reports []pkg.AdverseEventReport
	require.NoError(t, json.Unmarshal(raw, &reports))
	return reports
}

func TestFileSinkAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adverse_events.json")
	sink := NewFileSink(path)

	require.NoError(t, sink.Save(context.Background(), testReport("Aspirin")))
	require.NoError(t, sink.Save(context.Background(), testReport("Tylenol")))

	reports := readReports(t, path)
	require.Len(t, reports, 2)
	assert.Equal(t, "Aspirin", reports[0].Drug)
	assert.Equal(t, "Tylenol", reports[1].Drug)
}

// A corrupted data file is treated as empty instead of wedging reporting.
func TestFileSinkRecoversFromCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adverse_events.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	sink := NewFileSink(path)
	require.NoError(t, sink.Save(context.Background(), testReport("Aspirin")))

	reports := readReports(t, path)
	require.Len(t, reports, 1)
	assert.Equal(t, "Aspirin", reports[0].Drug)
}

func TestFileSinkCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested.json")
	sink := NewFileSink(path)
	require.NoError(t, sink.Save(context.Background(), testReport("Aspirin")))
	assert.Len(t, readReports(t, path), 1)
}

func TestNewSelectsBackend(t *testing.T) {
	sink, err := New(Config{Backend: BackendFile, FilePath: filepath.Join(t.TempDir(), "x.json")})
	require.NoError(t, err)
	assert.IsType(t, &FileSink{}, sink)

	// Empty backend name falls back to the file sink.
	sink, err = New(Config{FilePath: filepath.Join(t.TempDir(), "y.json")})
	require.NoError(t, err)
	assert.IsType(t, &FileSink{}, sink)

	_, err = New(Config{Backend: BackendPostgres})
	assert.Error(t, err, "postgres without a connection must fail")

	_, err = New(Config{Backend: "etcd"})
	assert.Error(t, err)
}
