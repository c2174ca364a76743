package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/martify/martify/internal/domain/entity"
	repo "github.com/martify/martify/internal/domain/repository"
)

func TestListingTypeRoutesRequireAdmin(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/listing-types", env.token(t, 7, "ada@example.com", entity.RoleUser),
		map[string]any{"name": "apartment"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	env.types.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListingTypeCreate(t *testing.T) {
	env := newTestEnv()
	env.types.On("Create", mock.Anything, mock.MatchedBy(func(lt *entity.ListingType) bool {
		return lt.Name == "apartment" && string(lt.Schema) != ""
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.ListingType).ID = 3
	}).Return(nil)

	w := env.do(t, http.MethodPost, "/listing-types", adminToken(t, env), map[string]any{
		"name":   "apartment",
		"schema": map[string]any{"rooms": "number", "floor": "number"},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	env.types.AssertExpectations(t)
	data := decodeEnvelope(t, w).Data.(map[string]any)
	assert.Equal(t, "apartment", data["name"])
}

func TestListingTypeCreateDuplicateName(t *testing.T) {
	env := newTestEnv()
	env.types.On("Create", mock.Anything, mock.Anything).Return(repo.ErrConflict)

	w := env.do(t, http.MethodPost, "/listing-types", adminToken(t, env), map[string]any{"name": "apartment"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListingTypeUpdateSchemaOnly(t *testing.T) {
	env := newTestEnv()
	env.types.On("Patch", mock.Anything, int64(3), mock.MatchedBy(func(p repo.ListingTypePatch) bool {
		return p.Name == nil && p.Schema != nil
	})).Return(&entity.ListingType{ID: 3, Name: "apartment", Schema: json.RawMessage(`{"rooms":"number"}`)}, nil)

	w := env.do(t, http.MethodPut, "/listing-types/3", adminToken(t, env), map[string]any{
		"schema": map[string]any{"rooms": "number"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	env.types.AssertExpectations(t)
}

func TestListingTypeUpdateEmptyPatch(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPut, "/listing-types/3", adminToken(t, env), map[string]any{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env.types.AssertNotCalled(t, "Patch", mock.Anything, mock.Anything, mock.Anything)
}

func TestListingTypeUpdateNullSchemaIsEmptyPatch(t *testing.T) {
	env := newTestEnv()

	// {"schema": null} must not overwrite the stored schema with JSON null
	w := env.do(t, http.MethodPut, "/listing-types/3", adminToken(t, env), map[string]any{"schema": nil})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env.types.AssertNotCalled(t, "Patch", mock.Anything, mock.Anything, mock.Anything)
}

func TestListingTypeCreateNullSchemaTreatedAsAbsent(t *testing.T) {
	env := newTestEnv()
	env.types.On("Create", mock.Anything, mock.MatchedBy(func(lt *entity.ListingType) bool {
		return lt.Name == "apartment" && lt.Schema == nil
	})).Return(nil)

	w := env.do(t, http.MethodPost, "/listing-types", adminToken(t, env), map[string]any{
		"name":   "apartment",
		"schema": nil,
	})

	require.Equal(t, http.StatusCreated, w.Code)
	env.types.AssertExpectations(t)
}

func TestListingTypeDeleteInUse(t *testing.T) {
	env := newTestEnv()
	// The listings table references types with ON DELETE RESTRICT; the store
	// surfaces the violation as a conflict.
	env.types.On("Delete", mock.Anything, int64(3)).Return(repo.ErrConflict)

	w := env.do(t, http.MethodDelete, "/listing-types/3", adminToken(t, env), nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListingTypeDelete(t *testing.T) {
	env := newTestEnv()
	env.types.On("Delete", mock.Anything, int64(3)).Return(nil)

	w := env.do(t, http.MethodDelete, "/listing-types/3", adminToken(t, env), nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
