package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cotracker/cotracker/internal/application/checkout/dto"
	"github.com/cotracker/cotracker/internal/application/checkout/usecases"
	"github.com/cotracker/cotracker/internal/domain/checkout"
	"github.com/cotracker/cotracker/internal/interfaces/http/handlers/testutil"
	"github.com/cotracker/cotracker/internal/shared/errors"
	"github.com/cotracker/cotracker/internal/shared/logger"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockListPilotsUC struct {
	result []dto.PilotDTO
	err    error
}

func (m *mockListPilotsUC) Execute(_ context.Context) ([]dto.PilotDTO, error) {
	return m.result, m.err
}

type mockGetPilotDetailUC struct {
	result *dto.PilotDetailDTO
	err    error
	query  usecases.GetPilotDetailQuery
}

func (m *mockGetPilotDetailUC) Execute(_ context.Context, q usecases.GetPilotDetailQuery) (*dto.PilotDetailDTO, error) {
	m.query = q
	return m.result, m.err
}

type mockListAirstripsUC struct {
	result []dto.AirstripDTO
	err    error
}

func (m *mockListAirstripsUC) Execute(_ context.Context) ([]dto.AirstripDTO, error) {
	return m.result, m.err
}

type mockGetAirstripDetailUC struct {
	result *dto.AirstripDetailDTO
	err    error
	query  usecases.GetAirstripDetailQuery
}

func (m *mockGetAirstripDetailUC) Execute(_ context.Context, q usecases.GetAirstripDetailQuery) (*dto.AirstripDetailDTO, error) {
	m.query = q
	return m.result, m.err
}

type mockGetBaseDetailUC struct {
	result *dto.BaseDetailDTO
	err    error
	query  usecases.GetBaseDetailQuery
}

func (m *mockGetBaseDetailUC) Execute(_ context.Context, q usecases.GetBaseDetailQuery) (*dto.BaseDetailDTO, error) {
	m.query = q
	return m.result, m.err
}

type mockFilterCheckoutsUC struct {
	result *dto.CheckoutFilterDTO
	err    error
	params url.Values
}

func (m *mockFilterCheckoutsUC) Execute(_ context.Context, q usecases.FilterCheckoutsQuery) (*dto.CheckoutFilterDTO, error) {
	m.params = q.Params
	return m.result, m.err
}

// =====================================================================
// Test helper
// =====================================================================

type testDeps struct {
	listPilotsUC        usecases.ListPilotsExecutor
	getPilotDetailUC    usecases.GetPilotDetailExecutor
	listAirstripsUC     usecases.ListAirstripsExecutor
	getAirstripDetailUC usecases.GetAirstripDetailExecutor
	listBasesUC         usecases.ListBasesExecutor
	getBaseDetailUC     usecases.GetBaseDetailExecutor
	filterCheckoutsUC   usecases.FilterCheckoutsExecutor
}

func newTestHandler(deps testDeps) *Handler {
	return NewHandler(
		deps.listPilotsUC,
		deps.getPilotDetailUC,
		deps.listAirstripsUC,
		deps.getAirstripDetailUC,
		deps.listBasesUC,
		deps.getBaseDetailUC,
		deps.filterCheckoutsUC,
		logger.Nop(),
	)
}

func decode(t *testing.T, raw json.RawMessage, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, target))
}

// =====================================================================
// Tests
// =====================================================================

func TestHandler_ListPilots(t *testing.T) {
	handler := newTestHandler(testDeps{listPilotsUC: &mockListPilotsUC{
		result: []dto.PilotDTO{{ID: 1, Username: "amy", Label: "Baker, Amy"}},
	}})

	c, w := testutil.NewTestContext(http.MethodGet, "/pilots/", nil)
	handler.ListPilots(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var list struct {
		Items []dto.PilotDTO `json:"items"`
		Total int            `json:"total"`
	}
	decode(t, resp.Data, &list)
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, "Baker, Amy", list.Items[0].Label)
}

func TestHandler_GetPilot(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		uc := &mockGetPilotDetailUC{result: &dto.PilotDetailDTO{
			Pilot:         dto.PilotDTO{Username: "amy"},
			AircraftTypes: []string{"C206", "PC6"},
			ByAirstrip: []checkout.AirstripCheckoutRow{
				{Ident: "WAJW", Name: "Wamena", Aircraft: []bool{false, true}},
			},
		}}
		handler := newTestHandler(testDeps{getPilotDetailUC: uc})

		c, w := testutil.NewTestContext(http.MethodGet, "/pilots/amy/", nil)
		testutil.SetURLParam(c, "username", "amy")
		handler.GetPilot(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "amy", uc.query.Username)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		var detail dto.PilotDetailDTO
		decode(t, resp.Data, &detail)
		assert.Equal(t, []bool{false, true}, detail.ByAirstrip[0].Aircraft)
	})

	t.Run("unknown pilot", func(t *testing.T) {
		handler := newTestHandler(testDeps{getPilotDetailUC: &mockGetPilotDetailUC{
			err: errors.NewNotFoundError("pilot not found"),
		}})

		c, w := testutil.NewTestContext(http.MethodGet, "/pilots/ghost/", nil)
		testutil.SetURLParam(c, "username", "ghost")
		handler.GetPilot(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "not_found", resp.Error.Type)
	})

	t.Run("inconsistent data is a bare 500", func(t *testing.T) {
		handler := newTestHandler(testDeps{getPilotDetailUC: &mockGetPilotDetailUC{
			err: checkout.ErrUnknownAircraftType,
		}})

		c, w := testutil.NewTestContext(http.MethodGet, "/pilots/amy/", nil)
		testutil.SetURLParam(c, "username", "amy")
		handler.GetPilot(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), checkout.ErrUnknownAircraftType.Error())
	})
}

func TestHandler_Airstrips(t *testing.T) {
	detailUC := &mockGetAirstripDetailUC{result: &dto.AirstripDetailDTO{
		Airstrip: dto.AirstripDTO{Ident: "WAJW"},
	}}
	handler := newTestHandler(testDeps{
		listAirstripsUC:     &mockListAirstripsUC{result: []dto.AirstripDTO{{Ident: "WAJW"}, {Ident: "WAJJ"}}},
		getAirstripDetailUC: detailUC,
	})

	c, w := testutil.NewTestContext(http.MethodGet, "/airstrips/", nil)
	handler.ListAirstrips(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.NewTestContext(http.MethodGet, "/airstrips/wajw/", nil)
	testutil.SetURLParam(c, "ident", "wajw")
	handler.GetAirstrip(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "wajw", detailUC.query.Ident)
}

func TestHandler_Bases(t *testing.T) {
	baseUC := &mockGetBaseDetailUC{result: &dto.BaseDetailDTO{Base: dto.AirstripDTO{Ident: "WAJJ"}}}
	handler := newTestHandler(testDeps{
		listBasesUC:     &mockListAirstripsUC{result: []dto.AirstripDTO{{Ident: "WAJJ", IsBase: true}}},
		getBaseDetailUC: baseUC,
	})

	c, w := testutil.NewTestContext(http.MethodGet, "/bases/", nil)
	handler.ListBases(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.NewTestContext(http.MethodGet, "/bases/WAJJ/attached/", nil)
	testutil.SetURLParam(c, "ident", "WAJJ")
	handler.GetBaseAttached(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, baseUC.query.Attached)

	c, w = testutil.NewTestContext(http.MethodGet, "/bases/WAJJ/unattached/", nil)
	testutil.SetURLParam(c, "ident", "WAJJ")
	handler.GetBaseUnattached(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, baseUC.query.Attached)
}

func TestHandler_FilterCheckouts(t *testing.T) {
	t.Run("passes query parameters", func(t *testing.T) {
		uc := &mockFilterCheckoutsUC{result: &dto.CheckoutFilterDTO{Status: checkout.StatusNotCheckedOut}}
		handler := newTestHandler(testDeps{filterCheckoutsUC: uc})

		c, w := testutil.NewTestContext(http.MethodGet, "/checkouts/", nil)
		testutil.SetQueryParams(c, map[string]string{"checkout_status": "belum", "pilot": "3"})
		handler.FilterCheckouts(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "belum", uc.params.Get("checkout_status"))
		assert.Equal(t, "3", uc.params.Get("pilot"))
	})

	t.Run("invalid form", func(t *testing.T) {
		handler := newTestHandler(testDeps{filterCheckoutsUC: &mockFilterCheckoutsUC{
			err: errors.NewValidationError("invalid filter", "checkout_status: This field is required."),
		}})

		c, w := testutil.NewTestContext(http.MethodGet, "/checkouts/?pilot=1", nil)
		handler.FilterCheckouts(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, "validation_error", resp.Error.Type)
		assert.Contains(t, resp.Error.Details, "This field is required.")
	})
}

func TestHandler_HealthCheck(t *testing.T) {
	c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)
	newTestHandler(testDeps{}).HealthCheck(c)
	assert.Equal(t, http.StatusOK, w.Code)
}
