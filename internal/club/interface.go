package club

// ClubStore defines the interface for interacting with the club roster.
type ClubStore interface {
	AddMember(m Member) error
	UpdateMember(m Member) error
	RemoveMember(name string) error
	GetMember(name string) (*Member, error)
	ListMembers() ([]Member, error)
	ListActive() ([]Member, error)
	ListRegulars() ([]Member, error)
	GenderMap(names []string) (map[string]Gender, error)

	CreateGroup(name string, members []string) (int64, error)
	ListGroups() ([]Group, error)
	GroupMembers(groupID int64) ([]string, error)
	InGroup(groupID int64, name string) (bool, error)
}
