package mock

import (
	"sort"
	"sync"
	"time"

	"tusk.dev/launcher/internal/database/delegate"
	"tusk.dev/launcher/internal/database/importer"
	"tusk.dev/launcher/internal/entity"
)

// MockDelegate keeps everything in memory. A nil CurrentHash makes
// GetStoredCacheHash fail with Error.
type MockDelegate struct {
	FailOpen          bool
	FailMigration     bool
	FailStoreImported bool
	FailStoreDbHash   bool
	Error             error
	Stored            bool
	CurrentHash       *[]byte

	mu            sync.Mutex
	opened        bool
	hashes        map[string][]byte
	recentApps    map[string]entity.RecentApp
	launchOptions map[string]entity.LaunchOptions
	iconPaths     map[string]string
}

func (m *MockDelegate) Open() error {
	if m.FailOpen {
		return m.Error
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opened = true
	m.hashes = map[string][]byte{}
	m.recentApps = map[string]entity.RecentApp{}
	m.launchOptions = map[string]entity.LaunchOptions{}
	m.iconPaths = map[string]string{}
	return nil
}

func (m *MockDelegate) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opened = false
	return nil
}

func (m *MockDelegate) Migrate() error {
	if m.FailMigration {
		return m.Error
	}
	return nil
}

func (m *MockDelegate) StoreImported(apps []importer.App) error {
	if m.FailStoreImported {
		return m.Error
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	for index, app := range apps {
		if app.Recent {
			if _, ok := m.recentApps[app.Name]; !ok {
				m.recentApps[app.Name] = entity.RecentApp{
					Name:         app.Name,
					LastLaunched: now.Add(-time.Duration(index) * time.Second),
					LaunchCount:  1,
				}
			}
		}
		if app.LaunchOptions != nil {
			m.launchOptions[app.Name] = *app.LaunchOptions
		}
		if app.IconPath != "" {
			m.iconPaths[app.Name] = app.IconPath
		}
	}
	m.Stored = true
	return nil
}

func (m *MockDelegate) GetStoredCacheHash(name string) ([]byte, error) {
	if m.CurrentHash == nil {
		return nil, m.Error
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if hash, ok := m.hashes[name]; ok {
		return hash, nil
	}
	return *m.CurrentHash, nil
}

func (m *MockDelegate) SetStoredCacheHash(name string, hash []byte) error {
	if m.FailStoreDbHash {
		return m.Error
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hashes[name] = hash
	return nil
}

func (m *MockDelegate) RecordLaunch(name string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	recentApp := m.recentApps[name]
	recentApp.Name = name
	recentApp.LastLaunched = at
	recentApp.LaunchCount++
	m.recentApps[name] = recentApp
	return nil
}

func (m *MockDelegate) GetRecentApps(limit int) ([]entity.RecentApp, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	recentApps := make([]entity.RecentApp, 0, len(m.recentApps))
	for _, recentApp := range m.recentApps {
		recentApps = append(recentApps, recentApp)
	}
	sort.Slice(recentApps, func(i, j int) bool {
		if !recentApps[i].LastLaunched.Equal(recentApps[j].LastLaunched) {
			return recentApps[i].LastLaunched.After(recentApps[j].LastLaunched)
		}
		return recentApps[i].Name < recentApps[j].Name
	})
	if limit > 0 && len(recentApps) > limit {
		recentApps = recentApps[:limit]
	}
	return recentApps, nil
}

func (m *MockDelegate) GetLaunchOptions(name string) (entity.LaunchOptions, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if options, ok := m.launchOptions[name]; ok {
		return options, nil
	}
	return entity.LaunchOptions{}, delegate.ErrNotFound
}

func (m *MockDelegate) SetLaunchOptions(name string, options entity.LaunchOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.launchOptions[name] = options
	return nil
}

func (m *MockDelegate) GetAllLaunchOptions() (map[string]entity.LaunchOptions, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make(map[string]entity.LaunchOptions, len(m.launchOptions))
	for name, options := range m.launchOptions {
		all[name] = options
	}
	return all, nil
}

func (m *MockDelegate) GetIconPath(name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if path, ok := m.iconPaths[name]; ok {
		return path, nil
	}
	return "", delegate.ErrNotFound
}

func (m *MockDelegate) SetIconPath(name string, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.iconPaths[name] = path
	return nil
}
