package exchange

// ExchangeStore tracks matches played against other clubs. Details are
// a fixed court-by-round grid under a master event; updating a detail
// recomputes its result from the scores.
type ExchangeStore interface {
	CreateMaster(matchDate, opponent string) (*Master, error)
	ListMasters() ([]Master, error)
	DeleteMaster(id int64) error
	ListDetails(masterID int64) ([]Detail, error)
	GetDetail(masterID int64, courtNum, matchRound int) (*Detail, error)
	UpdateDetail(d *Detail) error
}
