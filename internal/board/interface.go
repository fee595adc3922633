package board

// BoardStore manages the free and notice bulletin boards. Deleting a
// post removes its comments with it.
type BoardStore interface {
	CreatePost(kind Kind, author, title, content string) (*Post, error)
	ListPosts(kind Kind) ([]Post, error)
	GetPost(id string) (*Post, error)
	DeletePost(id string) error
	AddComment(postID, author, content string) (*Comment, error)
	ListComments(postID string) ([]Comment, error)
}
