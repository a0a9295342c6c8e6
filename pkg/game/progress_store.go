package game

import (
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/quasilyte/gdata/v2"
)

// ProgressStore 持久化网关：最高分与代币余额
//
// 读取失败（不存在或内容损坏）一律视为 0；写入失败只记录日志，不影响游戏。
type ProgressStore interface {
	Load() (bestScore, balance int)
	Save(bestScore, balance int)
}

// 存储路径常量
const (
	progressObject      = "progress"
	bestScoreProperty   = "best_score"
	balanceProperty     = "balance"
	defaultGdataAppName = "cryptowolf"
)

// OpenGdata 打开 gdata 跨平台存储（桌面为用户数据目录，wasm 为 localStorage）
//
// 返回：
//   - *gdata.Manager: 打开失败时为 nil（降级模式，仅内存存储）
func OpenGdata(appName string) *gdata.Manager {
	if appName == "" {
		appName = defaultGdataAppName
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[ProgressStore] Warning: gdata unavailable (%v), progress will not persist", err)
		return nil
	}
	return manager
}

// GdataProgressStore 基于 gdata 的进度存储
// 每个数值单独存为一个属性（十进制文本），便于人工查看和修改
type GdataProgressStore struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式）
}

// NewGdataProgressStore 创建进度存储
//
// 参数：
//   - gdataManager: gdata 存储管理器，可为 nil（降级模式：Load 返回 0，Save 不做任何事）
func NewGdataProgressStore(gdataManager *gdata.Manager) *GdataProgressStore {
	return &GdataProgressStore{gdataManager: gdataManager}
}

// Load 读取最高分和余额
func (s *GdataProgressStore) Load() (bestScore, balance int) {
	return s.loadInt(bestScoreProperty), s.loadInt(balanceProperty)
}

// Save 保存最高分和余额
func (s *GdataProgressStore) Save(bestScore, balance int) {
	s.saveInt(bestScoreProperty, bestScore)
	s.saveInt(balanceProperty, balance)
}

func (s *GdataProgressStore) loadInt(property string) int {
	if s.gdataManager == nil {
		return 0
	}
	if !s.gdataManager.ObjectPropExists(progressObject, property) {
		return 0
	}

	data, err := s.gdataManager.LoadObjectProp(progressObject, property)
	if err != nil {
		log.Printf("[ProgressStore] Warning: failed to load %s: %v (using 0)", property, err)
		return 0
	}
	return parseStoredInt(string(data))
}

func (s *GdataProgressStore) saveInt(property string, value int) {
	if s.gdataManager == nil {
		return
	}
	data := []byte(strconv.Itoa(value))
	if err := s.gdataManager.SaveObjectProp(progressObject, property, data); err != nil {
		log.Printf("[ProgressStore] Warning: failed to save %s: %v", property, err)
	}
}

// parseStoredInt 解析存储的整数，损坏或负数一律视为 0
func parseStoredInt(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// MemoryProgressStore 内存进度存储（测试与无头模拟使用）
type MemoryProgressStore struct {
	mu        sync.Mutex
	bestScore int
	balance   int
	saves     int
}

// NewMemoryProgressStore 创建带初始值的内存存储
func NewMemoryProgressStore(bestScore, balance int) *MemoryProgressStore {
	return &MemoryProgressStore{bestScore: bestScore, balance: balance}
}

// Load 实现 ProgressStore
func (s *MemoryProgressStore) Load() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bestScore, s.balance
}

// Save 实现 ProgressStore
func (s *MemoryProgressStore) Save(bestScore, balance int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bestScore = bestScore
	s.balance = balance
	s.saves++
}

// SaveCount 返回 Save 被调用的次数
func (s *MemoryProgressStore) SaveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
