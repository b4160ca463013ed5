// Package httpapi is the gateway's HTTP surface: chi routes for the identity
// operations, the Access Guard for protected routes, health probes and
// metrics.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/dmitrijs2005/authgate/internal/authrpc"
	"github.com/dmitrijs2005/authgate/internal/gateway/client"
	"github.com/dmitrijs2005/authgate/internal/logging"
	"github.com/go-playground/validator/v10"
)

// Handler error messages.
const (
	MsgInvalidBody      = "invalid request body"
	MsgUserExists       = "User with this email already exists"
	MsgRegisterFailed   = "Failed to register user"
	MsgInvalidLogin     = "Invalid email or password"
	MsgListUsersFailed  = "Failed to fetch users"
	MsgServiceNotReady  = "auth service unavailable"
	MsgNotFound         = "not found"
	MsgMethodNotAllowed = "method not allowed"
	MsgTooManyRequests  = "too many requests"
)

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Handler struct {
	client   client.AuthClient
	validate *validator.Validate
	logger   logging.Logger
}

func NewHandler(c client.AuthClient, l logging.Logger) *Handler {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return &Handler{client: c, validate: v, logger: l.With("module", "auth_handler")}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !h.decode(w, r, &req) {
		return
	}

	h.logger.Info(r.Context(), "Registering user", "email", req.Email)

	user, err := h.client.Register(r.Context(), &authrpc.RegisterUserRequest{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.logger.Error(r.Context(), "Error registering user", "email", req.Email, "error", err)
		switch {
		case errors.Is(err, client.ErrConflict):
			writeError(w, http.StatusConflict, MsgUserExists)
		case errors.Is(err, client.ErrBadRequest):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, MsgRegisterFailed)
		}
		return
	}

	h.logger.Info(r.Context(), "User registered", "id", user.ID)
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.decode(w, r, &req) {
		return
	}

	h.logger.Info(r.Context(), "Login attempt", "email", req.Email)

	resp, err := h.client.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Warn(r.Context(), "Login failed", "email", req.Email, "error", err)
		writeError(w, http.StatusUnauthorized, MsgInvalidLogin)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.client.ListUsers(r.Context())
	if err != nil {
		h.logger.Error(r.Context(), "Error fetching users", "error", err)
		writeError(w, http.StatusInternalServerError, MsgListUsersFailed)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, MsgInvalidToken)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// decode reads and validates a JSON body, answering 400 itself on failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, MsgInvalidBody)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return MsgInvalidBody
	}

	msgs := make([]string, 0, len(ves))
	for _, fe := range ves {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email", fe.Field()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return strings.Join(msgs, "; ")
}
