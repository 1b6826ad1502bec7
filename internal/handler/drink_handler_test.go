package handler_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "mixbook/internal/errors"
	"mixbook/internal/model"
	"mixbook/internal/service"
)

func sampleDrink(owner string) *model.Drink {
	return &model.Drink{
		ID:             uuid.New(),
		DrinkName:      "Dark And Stormy",
		DrinkImage:     "https://img.example.com/das.png",
		IngredientList: []string{"Dark Rum", "Ginger Beer", "Lime"},
		Instructions:   "Build over ice, lime to finish.",
		ModifiedDate:   time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC),
		CreatedBy:      owner,
	}
}

func TestHome_ListsLatestDrinks(t *testing.T) {
	v := newEnv(t)
	drink := sampleDrink("alice")
	v.drinks.On("ListLatest", mock.Anything).Return([]model.Drink{*drink}, nil)
	v.ingredients.On("List", mock.Anything).Return([]model.Ingredient{}, nil)

	rec := v.get("/", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dark And Stormy")
}

func TestShowDrink_MalformedIDIsNotFound(t *testing.T) {
	v := newEnv(t)

	rec := v.get("/drink/not-a-uuid", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	v.drinks.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestShowDrink_UnknownIDIsNotFound(t *testing.T) {
	v := newEnv(t)
	id := uuid.New()
	v.drinks.On("Get", mock.Anything, id).Return(nil, apperrors.ErrNotFound)

	rec := v.get("/drink/"+id.String(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestShowDrink_RendersAnonymously(t *testing.T) {
	v := newEnv(t)
	drink := sampleDrink("alice")
	v.drinks.On("Get", mock.Anything, drink.ID).Return(drink, nil)

	rec := v.get("/drink/"+drink.ID.String(), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), drink.DrinkName)
	assert.Contains(t, rec.Body.String(), "Ginger Beer")
}

func TestShowDrink_RandomOnEmptyCabinetIsNotFound(t *testing.T) {
	v := newEnv(t)
	v.drinks.On("GetRandom", mock.Anything).Return(nil, apperrors.ErrEmptyCollection)

	rec := v.get("/drink/randomDrink", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestShowDrink_InsertFormRequiresLogin(t *testing.T) {
	v := newEnv(t)

	rec := v.get("/drink/insertDrink", nil)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestSaveDrink_InsertCreatesForSessionOwner(t *testing.T) {
	v := newEnv(t)
	cookie := v.loginAs(t, "bob")
	created := sampleDrink("bob")
	v.drinks.On("CreateOrGet", mock.Anything, service.DrinkInput{
		Name:         "dark and stormy",
		ImageURL:     "https://img.example.com/das.png",
		Ingredients:  []string{"Dark Rum", "Ginger Beer", "Lime"},
		Instructions: "Build over ice, lime to finish.",
	}, "bob").Return(created, nil)

	rec := v.postForm("/drink/insertDrink", url.Values{
		"drinkName":      {"dark and stormy"},
		"drinkImage":     {"https://img.example.com/das.png"},
		"ingredientName": {"Dark Rum", "Ginger Beer", "Lime"},
		"instructions":   {"Build over ice, lime to finish."},
	}, cookie)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/drink/"+created.ID.String(), rec.Header().Get(echo.HeaderLocation))
	v.drinks.AssertExpectations(t)
}

func TestSaveDrink_AnonymousIsUnauthorized(t *testing.T) {
	v := newEnv(t)

	rec := v.postForm("/drink/insertDrink", url.Values{
		"drinkName":    {"Negroni"},
		"instructions": {"Stir."},
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	v.drinks.AssertNotCalled(t, "CreateOrGet", mock.Anything, mock.Anything, mock.Anything)
}

func TestSaveDrink_UpdateByNonOwnerIsUnauthorized(t *testing.T) {
	v := newEnv(t)
	cookie := v.loginAs(t, "mallory")
	id := uuid.New()
	v.drinks.On("Update", mock.Anything, id, mock.Anything, "mallory").
		Return(nil, apperrors.ErrForbidden)

	rec := v.postForm("/drink/"+id.String(), url.Values{
		"drinkName":    {"Negroni"},
		"instructions": {"Stir."},
	}, cookie)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeleteDrink_NonOwnerIsUnauthorized(t *testing.T) {
	v := newEnv(t)
	cookie := v.loginAs(t, "mallory")
	id := uuid.New()
	v.drinks.On("Delete", mock.Anything, id, "mallory").Return(apperrors.ErrForbidden)

	rec := v.get("/delete-drink/"+id.String(), cookie)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeleteDrink_OwnerLandsOnOwnCollection(t *testing.T) {
	v := newEnv(t)
	cookie := v.loginAs(t, "alice")
	id := uuid.New()
	v.drinks.On("Delete", mock.Anything, id, "alice").Return(nil)

	rec := v.get("/delete-drink/"+id.String(), cookie)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/collection/my-drinks", rec.Header().Get(echo.HeaderLocation))
}

func TestDeleteDrink_MalformedIDIsNotFound(t *testing.T) {
	v := newEnv(t)

	rec := v.get("/delete-drink/42", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	v.drinks.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestEditDrink_NonOwnerIsUnauthorized(t *testing.T) {
	v := newEnv(t)
	cookie := v.loginAs(t, "mallory")
	drink := sampleDrink("alice")
	v.drinks.On("Get", mock.Anything, drink.ID).Return(drink, nil)

	rec := v.get("/edit-drink/"+drink.ID.String(), cookie)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	v.ingredients.AssertNotCalled(t, "List", mock.Anything)
}

func TestEditDrink_OwnerSeesPrefilledForm(t *testing.T) {
	v := newEnv(t)
	cookie := v.loginAs(t, "alice")
	drink := sampleDrink("alice")
	v.drinks.On("Get", mock.Anything, drink.ID).Return(drink, nil)
	v.ingredients.On("List", mock.Anything).Return([]model.Ingredient{
		{IngredientName: "Dark Rum"},
		{IngredientName: "Campari"},
	}, nil)

	rec := v.get("/edit-drink/"+drink.ID.String(), cookie)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), drink.DrinkName)
	assert.Contains(t, rec.Body.String(), drink.Instructions)
}
