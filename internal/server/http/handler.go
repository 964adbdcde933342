package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aspira-project/aspira-backend/internal/common"
	"github.com/aspira-project/aspira-backend/internal/timex"
	"github.com/go-playground/validator/v10"
)

// loginRequest is the explicit schema of the login body. DateOfBirth stays a
// string through validation so a bad date surfaces as a field error instead
// of a decode failure.
type loginRequest struct {
	UniqueID    string `json:"unique_id" validate:"required,max=7"`
	DateOfBirth string `json:"date_of_birth" validate:"required"`
}

type loginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type whoamiResponse struct {
	UniqueID  string `json:"unique_id"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

type healthResponse struct {
	Status string `json:"status"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// fieldErrors maps request fields to their validation messages, one entry
// per invalid field.
type fieldErrors map[string][]string

func (s *Server) validateLogin(req *loginRequest) (timex.Date, fieldErrors) {
	fe := fieldErrors{}

	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, v := range verrs {
				switch v.StructField() {
				case "UniqueID":
					if v.Tag() == "max" {
						fe["unique_id"] = append(fe["unique_id"], "Ensure this field has no more than 7 characters.")
					} else {
						fe["unique_id"] = append(fe["unique_id"], "This field is required.")
					}
				case "DateOfBirth":
					fe["date_of_birth"] = append(fe["date_of_birth"], "This field is required.")
				}
			}
		} else {
			fe["non_field_errors"] = append(fe["non_field_errors"], "Invalid request.")
		}
	}

	var dob timex.Date
	if req.DateOfBirth != "" {
		parsed, err := timex.ParseDate(req.DateOfBirth)
		if err != nil {
			fe["date_of_birth"] = append(fe["date_of_birth"], "Date has wrong format. Use one of these formats instead: YYYY-MM-DD.")
		} else {
			dob = parsed
		}
	}

	if len(fe) > 0 {
		return timex.Date{}, fe
	}
	return dob, nil
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, fieldErrors{"non_field_errors": {"Malformed request body."}})
		return
	}

	// Validation failures never reach storage.
	dob, fe := s.validateLogin(&req)
	if fe != nil {
		writeJSON(w, http.StatusBadRequest, fe)
		return
	}

	token, err := s.auth.Authenticate(r.Context(), req.UniqueID, dob)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Invalid credentials"})
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token.Value, Message: "Login successful"})
}

func (s *Server) handleWhoami(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	user, ok := userFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Invalid token"})
		return
	}

	writeJSON(w, http.StatusOK, whoamiResponse{
		UniqueID:  user.UniqueID,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "OK"})
}
