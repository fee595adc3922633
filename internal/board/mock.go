package board

type MockStore struct {
	CreatePostFunc   func(kind Kind, author, title, content string) (*Post, error)
	ListPostsFunc    func(kind Kind) ([]Post, error)
	GetPostFunc      func(id string) (*Post, error)
	DeletePostFunc   func(id string) error
	AddCommentFunc   func(postID, author, content string) (*Comment, error)
	ListCommentsFunc func(postID string) ([]Comment, error)
}

func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) CreatePost(kind Kind, author, title, content string) (*Post, error) {
	if m.CreatePostFunc != nil {
		return m.CreatePostFunc(kind, author, title, content)
	}
	return &Post{Board: kind, Author: author, Title: title, Content: content}, nil
}

func (m *MockStore) ListPosts(kind Kind) ([]Post, error) {
	if m.ListPostsFunc != nil {
		return m.ListPostsFunc(kind)
	}
	return nil, nil
}

func (m *MockStore) GetPost(id string) (*Post, error) {
	if m.GetPostFunc != nil {
		return m.GetPostFunc(id)
	}
	return nil, ErrNotFound
}

func (m *MockStore) DeletePost(id string) error {
	if m.DeletePostFunc != nil {
		return m.DeletePostFunc(id)
	}
	return nil
}

func (m *MockStore) AddComment(postID, author, content string) (*Comment, error) {
	if m.AddCommentFunc != nil {
		return m.AddCommentFunc(postID, author, content)
	}
	return &Comment{PostID: postID, Author: author, Content: content}, nil
}

func (m *MockStore) ListComments(postID string) ([]Comment, error) {
	if m.ListCommentsFunc != nil {
		return m.ListCommentsFunc(postID)
	}
	return nil, nil
}
