package match

import "github.com/glzpr1598/burn-to-win/internal/club"

// GenderSource resolves member names to genders for classification.
// club.ClubStore satisfies it.
type GenderSource interface {
	GenderMap(names []string) (map[string]club.Gender, error)
}

// MatchStore defines the interface for match record persistence.
// Create and Update both recompute the result pair and the match type;
// a stored type is never trusted across an edit.
type MatchStore interface {
	Create(r *Record) error
	Update(r *Record) error
	Delete(id int64) error
	Get(id int64) (*Record, error)
	ListAll() ([]Record, error)
	ListCompleted() ([]Record, error)
	DistinctCourts() ([]string, error)
}
