package matchbase

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

func TestMatchmgr(t *testing.T) {
	mgr := NewMatchmgr()
	a, err := mgr.Create(nil)
	require.NoError(t, err)
	b, err := mgr.Create(DefaultConfig())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, mgr.Count())
	assert.Same(t, a, mgr.Load(a.ID))

	mgr.Delete(a.ID)
	assert.Nil(t, mgr.Load(a.ID))
	assert.Equal(t, 1, mgr.Count())

	_, err = mgr.Create(&Config{StartingPoint: -1})
	assert.Error(t, err)
	assert.Equal(t, 1, mgr.Count())
}

func TestMatchmgrConcurrentCreate(t *testing.T) {
	mgr := NewMatchmgr()
	const n = 32
	var wg sync.WaitGroup
	ids := make([]int32, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, err := mgr.Create(nil)
			if assert.NoError(t, err) {
				ids[i] = m.ID
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, n, mgr.Count())
	seen := make(map[int32]bool)
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
}

func TestMatchmgrLogDir(t *testing.T) {
	prev := logger.Log
	t.Cleanup(func() { logger.SetLogger(prev) })

	dir := t.TempDir()
	conf := DefaultConfig()
	conf.LogDir = dir
	mgr := NewMatchmgr()
	m, err := mgr.Create(conf)
	require.NoError(t, err)

	files, err := filepath.Glob(filepath.Join(dir, "*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "[info]")
	assert.Contains(t, string(data), "start at EAST-1")
	assert.Equal(t, 1, mgr.Count())
	assert.Same(t, m, mgr.Load(m.ID))

	bad := DefaultConfig()
	bad.LogDir = dir
	bad.LogLevel = "loud"
	mgr = NewMatchmgr()
	_, err = mgr.Create(bad)
	assert.Error(t, err)
	assert.Equal(t, 0, mgr.Count())
}
