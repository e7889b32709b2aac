package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	zlog "github.com/rs/zerolog/log"

	"github.com/placeshare/places-service/internal/application/places"
	"github.com/placeshare/places-service/internal/domain"
	"github.com/placeshare/places-service/internal/transport/http/dto"
	"github.com/placeshare/places-service/internal/transport/http/middleware"
	"github.com/placeshare/places-service/internal/transport/http/response"
	"github.com/placeshare/places-service/internal/transport/http/validate"
)

type PlacesHandler struct {
	svc            *places.Service
	images         ImageStore
	maxUploadBytes int64
}

func NewPlacesHandler(svc *places.Service, images ImageStore, maxUploadBytes int64) *PlacesHandler {
	return &PlacesHandler{svc: svc, images: images, maxUploadBytes: maxUploadBytes}
}

func (h *PlacesHandler) resolveURL(key string) string {
	return h.images.PublicURL(key)
}

func (h *PlacesHandler) Get(w http.ResponseWriter, r *http.Request) {
	placeID := chi.URLParam(r, "place_id")

	p, err := h.svc.Get(r.Context(), placeID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.ToPlaceResp(p, h.resolveURL))
}

func (h *PlacesHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	ps, err := h.svc.ListByUser(r.Context(), userID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.ToPlaceList(ps, h.resolveURL))
}

// Create accepts a multipart form: title, description, address and an
// image file. The image goes to the store first; if the create itself
// then fails the uploaded object is released again.
func (h *PlacesHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.UserID(r)

	if err := r.ParseMultipartForm(h.maxUploadBytes + 64*1024); err != nil {
		response.WriteError(w, r, domain.ErrInvalidField("body", "malformed multipart form"))
		return
	}

	req := dto.CreatePlaceReq{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Address:     strings.TrimSpace(r.FormValue("address")),
	}
	// reject bad fields before the image reaches the store
	if err := validate.Struct(req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	imageKey, err := readImageUpload(r.Context(), r, h.images, "image", h.maxUploadBytes, true)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	p, err := h.svc.Create(r.Context(), places.CreateCmd{
		ActorID:     actorID,
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		ImageKey:    imageKey,
	})
	if err != nil {
		// the place never existed, so the fresh upload has no owner
		if relErr := h.images.Release(r.Context(), imageKey); relErr != nil {
			zlog.Warn().Err(relErr).Str("image_key", imageKey).Msg("orphan image release failed")
		}
		response.WriteError(w, r, err)
		return
	}
	response.Created(w, dto.ToPlaceResp(p, h.resolveURL))
}

func (h *PlacesHandler) Update(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.UserID(r)
	placeID := chi.URLParam(r, "place_id")

	var req dto.UpdatePlaceReq
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	p, err := h.svc.Update(r.Context(), places.UpdateCmd{
		ActorID:     actorID,
		PlaceID:     placeID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.ToPlaceResp(p, h.resolveURL))
}

func (h *PlacesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.UserID(r)
	placeID := chi.URLParam(r, "place_id")

	if err := h.svc.Delete(r.Context(), actorID, placeID); err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, map[string]string{"message": "deleted place"})
}
