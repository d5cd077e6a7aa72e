package testutil

import (
	"sort"
	"sync"

	"database/sql"

	"meeting-followup/internal/app/model"
)

// MockEmailRecordDAO is an in-memory repository.EmailRecordDAO for tests.
type MockEmailRecordDAO struct {
	mu      sync.Mutex
	nextID  int
	records map[int]model.EmailRecord

	SaveErr error
	LoadErr error
}

// NewMockEmailRecordDAO creates an empty in-memory DAO.
func NewMockEmailRecordDAO() *MockEmailRecordDAO {
	return &MockEmailRecordDAO{nextID: 1, records: make(map[int]model.EmailRecord)}
}

func (m *MockEmailRecordDAO) Close() error { return nil }

func (m *MockEmailRecordDAO) Save(record *model.EmailRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	record.ID = m.nextID
	m.nextID++
	m.records[record.ID] = *record
	return nil
}

func (m *MockEmailRecordDAO) GetByID(id int) (*model.EmailRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	record, ok := m.records[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &record, nil
}

func (m *MockEmailRecordDAO) GetAll() ([]model.EmailRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	all := make([]model.EmailRecord, 0, len(m.records))
	for _, r := range m.records {
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return all, nil
}

func (m *MockEmailRecordDAO) CountSent() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return 0, m.LoadErr
	}
	count := 0
	for _, r := range m.records {
		if r.Sent() {
			count++
		}
	}
	return count, nil
}

func (m *MockEmailRecordDAO) Delete(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.records, id)
	return nil
}
