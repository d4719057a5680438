package matchbase

import (
	"path/filepath"
	"sync"

	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

// Matchmgr 管理多场互不相关的比赛
type Matchmgr struct {
	mu     sync.RWMutex
	matchs map[int32]*Match
	nextID int32
	logDir string
}

func NewMatchmgr() *Matchmgr {
	return &Matchmgr{
		matchs: make(map[int32]*Match),
	}
}

// Create 创建比赛并分配 ID
func (m *Matchmgr) Create(conf *Config, opts ...MatchOption) (*Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if conf != nil && conf.LogDir != "" && conf.LogDir != m.logDir {
		if err := conf.Validate(); err != nil {
			return nil, err
		}
		if err := SetupLogging(conf); err != nil {
			return nil, err
		}
		m.logDir = conf.LogDir
	}
	id := m.nextID + 1
	match, err := NewMatch(id, conf, opts...)
	if err != nil {
		return nil, err
	}
	m.nextID = id
	m.matchs[id] = match
	return match, nil
}

func (m *Matchmgr) Load(id int32) *Match {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.matchs[id]
}

func (m *Matchmgr) Delete(id int32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.matchs, id)
}

func (m *Matchmgr) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.matchs)
}

// LoadConfigs 加载目录下所有 yaml 比赛配置
func LoadConfigs(dir string) ([]*Config, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	confs := make([]*Config, 0, len(files))
	for _, file := range files {
		logger.Log.Infof("加载比赛配置: %s", file)
		conf, err := LoadConfig(file)
		if err != nil {
			return nil, err
		}
		confs = append(confs, conf)
	}
	return confs, nil
}
