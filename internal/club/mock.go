package club

// MockStore is a mock implementation of the ClubStore interface for testing.
type MockStore struct {
	AddMemberFunc    func(m Member) error
	UpdateMemberFunc func(m Member) error
	RemoveMemberFunc func(name string) error
	GetMemberFunc    func(name string) (*Member, error)
	ListMembersFunc  func() ([]Member, error)
	ListActiveFunc   func() ([]Member, error)
	ListRegularsFunc func() ([]Member, error)
	GenderMapFunc    func(names []string) (map[string]Gender, error)
	CreateGroupFunc  func(name string, members []string) (int64, error)
	ListGroupsFunc   func() ([]Group, error)
	GroupMembersFunc func(groupID int64) ([]string, error)
	InGroupFunc      func(groupID int64, name string) (bool, error)

	GenderMapCalls [][]string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) AddMember(member Member) error {
	if m.AddMemberFunc != nil {
		return m.AddMemberFunc(member)
	}
	return nil
}

func (m *MockStore) UpdateMember(member Member) error {
	if m.UpdateMemberFunc != nil {
		return m.UpdateMemberFunc(member)
	}
	return nil
}

func (m *MockStore) RemoveMember(name string) error {
	if m.RemoveMemberFunc != nil {
		return m.RemoveMemberFunc(name)
	}
	return nil
}

func (m *MockStore) GetMember(name string) (*Member, error) {
	if m.GetMemberFunc != nil {
		return m.GetMemberFunc(name)
	}
	return nil, ErrNotFound
}

func (m *MockStore) ListMembers() ([]Member, error) {
	if m.ListMembersFunc != nil {
		return m.ListMembersFunc()
	}
	return nil, nil
}

func (m *MockStore) ListActive() ([]Member, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc()
	}
	return nil, nil
}

func (m *MockStore) ListRegulars() ([]Member, error) {
	if m.ListRegularsFunc != nil {
		return m.ListRegularsFunc()
	}
	return nil, nil
}

func (m *MockStore) GenderMap(names []string) (map[string]Gender, error) {
	m.GenderMapCalls = append(m.GenderMapCalls, names)
	if m.GenderMapFunc != nil {
		return m.GenderMapFunc(names)
	}
	return map[string]Gender{}, nil
}

func (m *MockStore) CreateGroup(name string, members []string) (int64, error) {
	if m.CreateGroupFunc != nil {
		return m.CreateGroupFunc(name, members)
	}
	return 0, nil
}

func (m *MockStore) ListGroups() ([]Group, error) {
	if m.ListGroupsFunc != nil {
		return m.ListGroupsFunc()
	}
	return nil, nil
}

func (m *MockStore) GroupMembers(groupID int64) ([]string, error) {
	if m.GroupMembersFunc != nil {
		return m.GroupMembersFunc(groupID)
	}
	return nil, nil
}

func (m *MockStore) InGroup(groupID int64, name string) (bool, error) {
	if m.InGroupFunc != nil {
		return m.InGroupFunc(groupID, name)
	}
	return false, nil
}
