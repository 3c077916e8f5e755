package httpapi

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/filehost/internal/common"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type confirmUploadRequest struct {
	Filename string `json:"filename"`
	Size     json.Number `json:"size"`
	Key      string `json:"key"`
}

// readCredentials treats an undecodable body the same as missing fields.
func readCredentials(w http.ResponseWriter, r *http.Request) (credentialsRequest, error) {
	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil || req.Username == "" || req.Password == "" {
		return req, PublicError{http.StatusBadRequest, msgCredentialsRequired}
	}
	return req, nil
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) error {
	req, err := readCredentials(w, r)
	if err != nil {
		return err
	}

	res, err := s.accounts.Signup(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, common.ErrorValidation):
		return PublicError{http.StatusBadRequest, msgCredentialsRequired}
	case errors.Is(err, common.ErrUsernameTaken):
		return PublicError{http.StatusConflict, msgUsernameTaken}
	case err != nil:
		return serverError(msgInternal, err)
	}

	writeJSON(w, http.StatusCreated, jMap{
		"message": msgUserCreated,
		"user":    res.User,
		"token":   res.Token,
	})
	return nil
}

func (s *Server) handleSignin(w http.ResponseWriter, r *http.Request) error {
	req, err := readCredentials(w, r)
	if err != nil {
		return err
	}

	res, err := s.accounts.Signin(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, common.ErrorValidation):
		return PublicError{http.StatusBadRequest, msgCredentialsRequired}
	case errors.Is(err, common.ErrorUnauthorized):
		return PublicError{http.StatusUnauthorized, msgInvalidCredentials}
	case err != nil:
		return serverError(msgInternal, err)
	}

	writeJSON(w, http.StatusOK, jMap{
		"message": msgLoginSuccessful,
		"user":    res.User,
		"token":   res.Token,
	})
	return nil
}

func (s *Server) handleListFiles(w http.ResponseWriter, r *http.Request) error {
	id := IdentityFromContext(r.Context())

	files, err := s.files.List(r.Context(), id.UserID)
	if err != nil {
		return serverError(msgFetchFilesFailed, err)
	}

	writeJSON(w, http.StatusOK, jMap{"files": files})
	return nil
}

func (s *Server) handleDeleteFile(w http.ResponseWriter, r *http.Request) error {
	id := IdentityFromContext(r.Context())

	// Ids that are not integers cannot match any record.
	fileID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return PublicError{http.StatusNotFound, msgFileNotFound}
	}

	err = s.files.Delete(r.Context(), fileID, id.UserID)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return PublicError{http.StatusNotFound, msgFileNotFound}
	case errors.Is(err, common.ErrorForbidden):
		return PublicError{http.StatusForbidden, msgDeleteForbidden}
	case err != nil:
		return serverError(msgDeleteFailed, err)
	}

	writeJSON(w, http.StatusOK, jMap{"message": msgFileDeleted})
	return nil
}

func (s *Server) handleRequestUpload(w http.ResponseWriter, r *http.Request) error {
	id := IdentityFromContext(r.Context())
	q := r.URL.Query()

	filename := q.Get("filename")
	if filename == "" {
		return PublicError{http.StatusBadRequest, msgFilenameRequired}
	}

	ticket, err := s.uploads.RequestUpload(r.Context(), id.UserID, filename, q.Get("contentType"))
	if err != nil {
		return serverError(msgUploadURLFailed, err)
	}

	writeJSON(w, http.StatusOK, jMap{
		"uploadUrl": ticket.UploadURL,
		"key":       ticket.Key,
		"expiresIn": ticket.ExpiresIn,
		"message":   msgUploadURLGenerated,
	})
	return nil
}

// parseSize accepts a positive whole number written as 10, 10.0 or "10".
func parseSize(n json.Number) (int64, bool) {
	if n == "" {
		return 0, false
	}
	if v, err := n.Int64(); err == nil {
		return v, v > 0
	}
	f, err := n.Float64()
	if err != nil || f <= 0 || f != math.Trunc(f) || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func (s *Server) handleConfirmUpload(w http.ResponseWriter, r *http.Request) error {
	id := IdentityFromContext(r.Context())

	var req confirmUploadRequest
	if err := decodeJSON(w, r, &req); err != nil || req.Filename == "" || req.Key == "" {
		return PublicError{http.StatusBadRequest, msgConfirmFieldsMissing}
	}
	size, ok := parseSize(req.Size)
	if !ok {
		return PublicError{http.StatusBadRequest, msgConfirmFieldsMissing}
	}

	file, err := s.uploads.ConfirmUpload(r.Context(), id.UserID, req.Filename, size, req.Key)
	switch {
	case errors.Is(err, common.ErrorValidation):
		return PublicError{http.StatusBadRequest, msgConfirmFieldsMissing}
	case err != nil:
		return serverError(msgFileSaveFailed, err)
	}

	writeJSON(w, http.StatusCreated, jMap{
		"message": msgFileSaved,
		"file":    file,
	})
	return nil
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) error {
	snap, err := s.metrics.Collect(r.Context())
	if err != nil {
		return serverError(msgMetricsFailed, err)
	}

	writeJSON(w, http.StatusOK, snap)
	return nil
}
