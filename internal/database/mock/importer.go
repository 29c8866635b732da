package mock

import "tusk.dev/launcher/internal/database/importer"

type MockImporter struct {
	ImporterName  string
	ImportStarted bool
	Error         error
	ImportedHash  *[]byte
	Apps          []importer.App
}

func (m *MockImporter) Name() string {
	if m.ImporterName == "" {
		return "mock"
	}
	return m.ImporterName
}

func (m *MockImporter) Import(currentHash []byte) (importedHash []byte, err error) {
	m.ImportStarted = true
	if m.Error != nil {
		return nil, m.Error
	}
	if m.ImportedHash != nil {
		return *m.ImportedHash, nil
	}
	return nil, nil
}

func (m *MockImporter) GetApps() []importer.App {
	return m.Apps
}
