package handlers

import (
	"net/http"
	"strings"

	zlog "github.com/rs/zerolog/log"

	"github.com/placeshare/places-service/internal/application/users"
	"github.com/placeshare/places-service/internal/domain"
	"github.com/placeshare/places-service/internal/transport/http/dto"
	"github.com/placeshare/places-service/internal/transport/http/response"
	"github.com/placeshare/places-service/internal/transport/http/validate"
)

type UsersHandler struct {
	svc            *users.Service
	images         ImageStore
	maxUploadBytes int64
}

func NewUsersHandler(svc *users.Service, images ImageStore, maxUploadBytes int64) *UsersHandler {
	return &UsersHandler{svc: svc, images: images, maxUploadBytes: maxUploadBytes}
}

func (h *UsersHandler) resolveURL(key string) string {
	return h.images.PublicURL(key)
}

func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	us, err := h.svc.List(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.ToUserList(us, h.resolveURL))
}

// Signup accepts a multipart form: name, email, password and an optional
// avatar image.
func (h *UsersHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadBytes + 64*1024); err != nil {
		response.WriteError(w, r, domain.ErrInvalidField("body", "malformed multipart form"))
		return
	}

	req := dto.SignupReq{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
	}
	// reject bad fields before the avatar reaches the store
	if err := validate.Struct(req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	imageKey, err := readImageUpload(r.Context(), r, h.images, "image", h.maxUploadBytes, false)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Register(r.Context(), req.Name, req.Email, req.Password, imageKey)
	if err != nil {
		if imageKey != "" {
			if relErr := h.images.Release(r.Context(), imageKey); relErr != nil {
				zlog.Warn().Err(relErr).Str("image_key", imageKey).Msg("orphan image release failed")
			}
		}
		response.WriteError(w, r, err)
		return
	}
	response.Created(w, dto.ToAuthResp(res, h.resolveURL))
}

func (h *UsersHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginReq
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := validate.Struct(req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.ToAuthResp(res, h.resolveURL))
}
