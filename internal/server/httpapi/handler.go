// Package httpapi exposes the customer service as the JSON REST API the
// client talks to.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/clientdesk/internal/common"
	"github.com/dmitrijs2005/clientdesk/internal/logging"
	"github.com/dmitrijs2005/clientdesk/internal/server/customers"
)

const maxBodySize = 1 << 20

// CustomerService is what the handler needs from the domain layer.
type CustomerService interface {
	List(ctx context.Context) ([]customers.Customer, error)
	Create(ctx context.Context, in customers.Input) (*customers.Customer, error)
	Update(ctx context.Context, id string, in customers.Input) (*customers.Customer, error)
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	svc    CustomerService
	logger logging.Logger
}

func NewHandler(svc CustomerService, logger logging.Logger) *Handler {
	return &Handler{svc: svc, logger: logger.With("module", "http_handler")}
}

// Routes registers the /users endpoints.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users", h.list)
	mux.HandleFunc("POST /users", h.create)
	mux.HandleFunc("PATCH /users/{id}", h.update)
	mux.HandleFunc("DELETE /users/{id}", h.delete)
	return mux
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if items == nil {
		items = []customers.Customer{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	in, err := decodeInput(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	in, err := decodeInput(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

var errBadBody = errors.New("invalid JSON body")

func decodeInput(r *http.Request) (customers.Input, error) {
	var in customers.Input
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	if err := dec.Decode(&in); err != nil {
		return in, errBadBody
	}
	return in, nil
}

// errorResponse is the error envelope. Message is a list for validation
// errors and a single string otherwise.
type errorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    any    `json:"message"`
	Error      string `json:"error"`
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		status  int
		message any
		verr    *customers.ValidationError
	)

	switch {
	case errors.As(err, &verr):
		status, message = http.StatusBadRequest, verr.Messages
	case errors.Is(err, errBadBody):
		status, message = http.StatusBadRequest, []string{errBadBody.Error()}
	case errors.Is(err, common.ErrNotFound):
		status, message = http.StatusNotFound, customers.MsgNotFound
	case errors.Is(err, common.ErrAlreadyExists):
		status, message = http.StatusConflict, customers.MsgEmailInUse
	default:
		h.logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		status, message = http.StatusInternalServerError, "Internal server error"
	}

	writeJSON(w, status, errorResponse{
		StatusCode: status,
		Message:    message,
		Error:      http.StatusText(status),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
