package http

import (
	"encoding/json"
	"net/http"

	"github.com/glzpr1598/burn-to-win/internal/board"
)

type postRequest struct {
	Author  string `json:"author"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (s *Server) ListPostsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := board.Kind(r.PathValue("board"))
		if !kind.Valid() {
			respondError(w, http.StatusNotFound, "게시판을 찾을 수 없습니다.")
			return
		}
		posts, err := s.Boards.ListPosts(kind)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondData(w, posts)
	}
}

func (s *Server) createPost(kind board.Kind, w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}
	if req.Author == "" || req.Title == "" {
		respondError(w, http.StatusBadRequest, "작성자와 제목을 입력해 주세요.")
		return
	}

	post, err := s.Boards.CreatePost(kind, req.Author, req.Title, req.Content)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondData(w, post)
}

func (s *Server) CreateFreePostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.createPost(board.KindFree, w, r)
	}
}

func (s *Server) CreateNoticePostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.createPost(board.KindNotice, w, r)
	}
}

func (s *Server) GetPostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		post, err := s.Boards.GetPost(id)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		comments, err := s.Boards.ListComments(id)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondData(w, map[string]any{"post": post, "comments": comments})
	}
}

func (s *Server) DeletePostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Boards.DeletePost(r.PathValue("id")); err != nil {
			respondStoreError(w, err)
			return
		}
		respondOK(w, "게시글을 삭제했습니다.")
	}
}

func (s *Server) AddCommentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Author  string `json:"author"`
			Content string `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Author == "" || req.Content == "" {
			respondError(w, http.StatusBadRequest, "작성자와 내용을 입력해 주세요.")
			return
		}

		comment, err := s.Boards.AddComment(r.PathValue("id"), req.Author, req.Content)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondData(w, comment)
	}
}
