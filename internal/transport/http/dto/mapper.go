package dto

import (
	"github.com/placeshare/places-service/internal/application/users"
	"github.com/placeshare/places-service/internal/domain"
)

// URLResolver turns a stored image key into a browser-facing URL.
type URLResolver func(key string) string

func ToPlaceResp(p *domain.Place, resolve URLResolver) PlaceResp {
	imageURL := ""
	if p.ImageKey != "" && resolve != nil {
		imageURL = resolve(p.ImageKey)
	}

	return PlaceResp{
		ID:          p.ID,
		CreatorID:   p.CreatorID,
		Title:       p.Title,
		Description: p.Description,
		Address:     p.Address,
		Location:    LocationResp{Lat: p.Location.Lat, Lng: p.Location.Lng},
		ImageURL:    imageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToPlaceList(ps []*domain.Place, resolve URLResolver) []PlaceResp {
	out := make([]PlaceResp, 0, len(ps))
	for _, p := range ps {
		out = append(out, ToPlaceResp(p, resolve))
	}
	return out
}

func ToUserResp(u domain.User, resolve URLResolver) UserResp {
	imageURL := ""
	if u.ImageKey != "" && resolve != nil {
		imageURL = resolve(u.ImageKey)
	}

	return UserResp{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		ImageURL:  imageURL,
		CreatedAt: u.CreatedAt,
	}
}

func ToUserList(us []domain.User, resolve URLResolver) []UserResp {
	out := make([]UserResp, 0, len(us))
	for _, u := range us {
		out = append(out, ToUserResp(u, resolve))
	}
	return out
}

func ToAuthResp(res users.AuthResult, resolve URLResolver) AuthResp {
	return AuthResp{
		User:        ToUserResp(res.User, resolve),
		AccessToken: res.Tokens.AccessToken,
		TokenType:   res.Tokens.TokenType,
		ExpiresIn:   res.Tokens.ExpiresIn,
	}
}
