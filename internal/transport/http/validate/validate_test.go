package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/placeshare/places-service/internal/domain"
	"github.com/placeshare/places-service/internal/transport/http/dto"
)

func TestStruct_CreatePlaceReq(t *testing.T) {
	ok := dto.CreatePlaceReq{
		Title:       "221B Baker Street",
		Description: "The residence of the famous detective",
		Address:     "221B Baker Street, London",
	}
	assert.NoError(t, Struct(ok))

	missingTitle := ok
	missingTitle.Title = ""
	err := Struct(missingTitle)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	shortDesc := ok
	shortDesc.Description = "tiny"
	assert.Error(t, Struct(shortDesc))

	longTitle := ok
	longTitle.Title = strings.Repeat("x", 121)
	assert.Error(t, Struct(longTitle))
}

func TestStruct_UpdatePlaceReq(t *testing.T) {
	assert.NoError(t, Struct(dto.UpdatePlaceReq{}))

	title := "new title"
	assert.NoError(t, Struct(dto.UpdatePlaceReq{Title: &title}))

	bad := strings.Repeat("x", 121)
	assert.Error(t, Struct(dto.UpdatePlaceReq{Title: &bad}))
}

func TestStruct_SignupReq(t *testing.T) {
	assert.NoError(t, Struct(dto.SignupReq{Name: "Ada", Email: "ada@example.com", Password: "s3cretpw"}))

	assert.Error(t, Struct(dto.SignupReq{Name: "Ada", Email: "not-an-email", Password: "s3cretpw"}))
	assert.Error(t, Struct(dto.SignupReq{Name: "Ada", Email: "ada@example.com", Password: "tiny"}))
}

func TestStruct_LoginReq(t *testing.T) {
	assert.NoError(t, Struct(dto.LoginReq{Email: "ada@example.com", Password: "x"}))
	assert.Error(t, Struct(dto.LoginReq{Email: "", Password: "x"}))
}
