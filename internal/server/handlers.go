package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/maxwalkley/dotqr/pkg/errors"
	"github.com/maxwalkley/dotqr/pkg/qrencode"
	"github.com/maxwalkley/dotqr/pkg/render/symbol"
	"github.com/maxwalkley/dotqr/pkg/render/symbol/sink"
	"github.com/maxwalkley/dotqr/pkg/vcard"
)

// maxUploadBytes bounds multipart logo uploads.
const maxUploadBytes = 10 << 20

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleLink renders a link QR from query parameters.
func (s *Server) handleLink(w http.ResponseWriter, r *http.Request) {
	link := qrencode.NormalizeURL(r.URL.Query().Get("data"))
	if err := errors.ValidateURL(link); err != nil {
		s.writeError(w, err)
		return
	}

	cfg, level, err := s.styleFromQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	m, err := qrencode.Encode(link, qrencode.Resolve(level, false))
	if err != nil {
		s.writeError(w, err)
		return
	}

	res, err := symbol.Render(m, cfg)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writePNG(w, res, "link")
}

// handleLinkUpload renders a link QR with an optional logo from a
// multipart form. A logo that fails to decode does not fail the
// request; the symbol is returned logoless with a warning header.
func (s *Server) handleLinkUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse multipart form"))
		return
	}

	link := qrencode.NormalizeURL(r.FormValue("data"))
	if err := errors.ValidateURL(link); err != nil {
		s.writeError(w, err)
		return
	}

	cfg, level, err := s.styleFromQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var opts []symbol.RenderOption
	logoPresent := false
	if file, _, err := r.FormFile("logo"); err == nil {
		defer file.Close()
		opts = append(opts, symbol.WithLogoReader(file))
		logoPresent = true
	}

	m, err := qrencode.Encode(link, qrencode.Resolve(level, logoPresent))
	if err != nil {
		s.writeError(w, err)
		return
	}

	res, err := symbol.Render(m, cfg, opts...)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if res.LogoErr != nil {
		s.logger.Warn("logo skipped", "err", res.LogoErr)
		w.Header().Set("X-Logo-Skipped", errors.UserMessage(res.LogoErr))
	}
	s.writePNG(w, res, "link")
}

// handleVCard renders a contact QR from form fields.
func (s *Server) handleVCard(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse form"))
		return
	}

	card := vcard.Card{
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		Org:       r.FormValue("org"),
		Phone:     r.FormValue("phone"),
		Email:     r.FormValue("email"),
		URL:       r.FormValue("url"),
	}

	cfg, level, err := s.styleFromQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	m, err := qrencode.Encode(card.Build(), qrencode.Resolve(level, false))
	if err != nil {
		s.writeError(w, err)
		return
	}

	res, err := symbol.Render(m, cfg)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writePNG(w, res, "vcard")
}

func (s *Server) writePNG(w http.ResponseWriter, res symbol.Result, kind string) {
	data, err := sink.EncodePNG(res.Image)
	if err != nil {
		s.writeError(w, err)
		return
	}

	name := fmt.Sprintf("%s-qr-%s.png", kind, uuid.NewString())
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.logger.Error("write response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(errors.GetCode(err))
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, map[string]string{"error": errors.UserMessage(err)})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeConfigRange,
		errors.ErrCodeInvalidColor,
		errors.ErrCodeInvalidLevel,
		errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidMatrix:
		return http.StatusBadRequest
	case errors.ErrCodeInsufficientCanvas:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
