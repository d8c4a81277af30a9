package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/aqqnoor/aunichance/internal/db"
	"github.com/aqqnoor/aunichance/internal/types"
)

var validate = validator.New()

// generateTipsRequest is the POST /programs/{id}/tips body: the student's
// profile scores, all optional.
type generateTipsRequest struct {
	GPA             *float64 `json:"gpa" validate:"omitempty,gte=0,lte=5"`
	GPAScale        *float64 `json:"gpa_scale" validate:"omitempty,eq=4|eq=5"`
	IELTS           *float64 `json:"ielts" validate:"omitempty,gte=0,lte=9"`
	TOEFL           *int     `json:"toefl" validate:"omitempty,gte=0,lte=120"`
	SAT             *int     `json:"sat" validate:"omitempty,gte=400,lte=1600"`
	GREVerbal       *int     `json:"gre_verbal" validate:"omitempty,gte=130,lte=170"`
	GREQuant        *int     `json:"gre_quant" validate:"omitempty,gte=130,lte=170"`
	ExperienceYears int      `json:"experience_years" validate:"gte=0"`
	HasPortfolio    bool     `json:"has_portfolio"`
	Achievements    []string `json:"achievements"`
}

func (r *generateTipsRequest) profile() *types.Profile {
	return &types.Profile{
		GPA:             r.GPA,
		GPAScale:        r.GPAScale,
		IELTS:           r.IELTS,
		TOEFL:           r.TOEFL,
		SAT:             r.SAT,
		GREVerbal:       r.GREVerbal,
		GREQuant:        r.GREQuant,
		ExperienceYears: r.ExperienceYears,
		HasPortfolio:    r.HasPortfolio,
		Achievements:    r.Achievements,
	}
}

// parseDocumentRequest is the POST /documents/parse body.
type parseDocumentRequest struct {
	URL       string `json:"url" validate:"required,url"`
	ProgramID string `json:"program_id" validate:"omitempty,uuid"`
}

// handleGenerateTips computes and persists improvement tips for a profile
// against a stored program.
func (s *Server) handleGenerateTips(w http.ResponseWriter, r *http.Request) {
	programID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid program id")
		return
	}

	var req generateTipsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	tips, err := s.service.GenerateTips(r.Context(), programID, req.profile())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"program_id": programID,
		"tips":       tips,
	})
}

// handleListTips returns a program's saved tips, newest first.
func (s *Server) handleListTips(w http.ResponseWriter, r *http.Request) {
	programID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid program id")
		return
	}

	tips, err := s.service.GetSavedTips(r.Context(), programID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if tips == nil {
		tips = []db.SavedTip{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"program_id": programID,
		"tips":       tips,
	})
}

// handleParseDocument acquires and extracts an admission document, persisting
// the result when a program id is supplied.
func (s *Server) handleParseDocument(w http.ResponseWriter, r *http.Request) {
	var req parseDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var programID *uuid.UUID
	if req.ProgramID != "" {
		id, err := uuid.Parse(req.ProgramID)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid program id")
			return
		}
		programID = &id
	}

	result, err := s.service.ParseDocument(r.Context(), req.URL, programID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}
