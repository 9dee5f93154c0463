package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu               sync.Mutex
	commands         map[string]int
	upstreamRequests map[string]int
	upstreamFailures map[string]int
	cacheHits        map[string]int
	cacheMisses      map[string]int
	slackNotifSent   int
	slackNotifFailed int
	startupTime      float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		commands:         make(map[string]int),
		upstreamRequests: make(map[string]int),
		upstreamFailures: make(map[string]int),
		cacheHits:        make(map[string]int),
		cacheMisses:      make(map[string]int),
	}
}

var _ Metrics = (*Mock)(nil)

func (m *Mock) IncCommandReceived(command string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commands[command]++
}

func (m *Mock) IncUpstreamRequest(provider string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upstreamRequests[provider]++
}

func (m *Mock) IncUpstreamFailure(provider string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upstreamFailures[provider]++
}

func (m *Mock) IncCacheHit(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheHits[kind]++
}

func (m *Mock) IncCacheMiss(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheMisses[kind]++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// Commands returns how many times the given command was recorded.
func (m *Mock) Commands(command string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commands[command]
}

// UpstreamRequests returns how many requests were recorded for a provider.
func (m *Mock) UpstreamRequests(provider string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.upstreamRequests[provider]
}

// UpstreamFailures returns how many failures were recorded for a provider.
func (m *Mock) UpstreamFailures(provider string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.upstreamFailures[provider]
}

// CacheHits returns how many fresh hits were recorded for a query kind.
func (m *Mock) CacheHits(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cacheHits[kind]
}

// CacheMisses returns how many misses were recorded for a query kind.
func (m *Mock) CacheMisses(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cacheMisses[kind]
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
