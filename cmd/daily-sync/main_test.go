package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

func TestRecordAbort_WritesErrorRecord(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "history")
	startedAt := time.Now().Add(-2 * time.Second)

	recordAbort(dir, errors.New("erro ao conectar no banco"), startedAt)

	files, err := filepath.Glob(filepath.Join(dir, "daily_update_ERROR_*.json"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)

	var record domain.SyncErrorRecord
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &record))
	assert.Equal(t, "erro ao conectar no banco", record.Error)
	assert.False(t, record.Success)
	assert.GreaterOrEqual(t, record.DurationSeconds, 2.0)
}
