package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/glzpr1598/burn-to-win/internal/club"
)

func (s *Server) ListMembersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			members []club.Member
			err     error
		)
		switch r.URL.Query().Get("filter") {
		case "regulars":
			members, err = s.Club.ListRegulars()
		case "active":
			members, err = s.Club.ListActive()
		default:
			members, err = s.Club.ListMembers()
		}
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondData(w, members)
	}
}

func (s *Server) AddMemberHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var m club.Member
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			respondError(w, http.StatusBadRequest, "잘못된 요청입니다.")
			return
		}
		if m.Name == "" {
			respondError(w, http.StatusBadRequest, "회원 이름을 입력해 주세요.")
			return
		}
		if m.Gender != club.GenderMale && m.Gender != club.GenderFemale {
			respondError(w, http.StatusBadRequest, "성별은 M 또는 F 여야 합니다.")
			return
		}

		if err := s.Club.AddMember(m); err != nil {
			respondStoreError(w, err)
			return
		}
		respondData(w, m)
	}
}

func (s *Server) UpdateMemberHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var m club.Member
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			respondError(w, http.StatusBadRequest, "잘못된 요청입니다.")
			return
		}
		m.Name = r.PathValue("name")

		if err := s.Club.UpdateMember(m); err != nil {
			respondStoreError(w, err)
			return
		}
		respondData(w, m)
	}
}

func (s *Server) RemoveMemberHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Club.RemoveMember(r.PathValue("name")); err != nil {
			respondStoreError(w, err)
			return
		}
		respondOK(w, "회원을 삭제했습니다.")
	}
}

func (s *Server) ListGroupsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groups, err := s.Club.ListGroups()
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondData(w, groups)
	}
}

func (s *Server) CreateGroupHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name    string   `json:"name"`
			Members []string `json:"members"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
			respondError(w, http.StatusBadRequest, "그룹 이름을 입력해 주세요.")
			return
		}

		id, err := s.Club.CreateGroup(req.Name, req.Members)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondData(w, club.Group{ID: id, Name: req.Name})
	}
}

func (s *Server) GroupMembersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "잘못된 그룹 번호입니다.")
			return
		}
		names, err := s.Club.GroupMembers(id)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondData(w, names)
	}
}
