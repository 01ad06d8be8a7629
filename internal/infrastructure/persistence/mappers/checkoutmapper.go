package mappers

import (
	"github.com/cotracker/cotracker/internal/domain/checkout"
	"github.com/cotracker/cotracker/internal/infrastructure/persistence/models"
	"github.com/cotracker/cotracker/internal/shared/mapper"
)

// CheckoutMapper converts between checkout domain entities and their
// persistence models.
type CheckoutMapper interface {
	PilotToModel(p *checkout.Pilot) *models.PilotModel
	PilotToDomain(m *models.PilotModel) *checkout.Pilot
	PilotsToDomain(ms []models.PilotModel) []*checkout.Pilot

	AirstripToModel(a *checkout.Airstrip) *models.AirstripModel
	AirstripToDomain(m *models.AirstripModel) *checkout.Airstrip
	AirstripsToDomain(ms []models.AirstripModel) []*checkout.Airstrip

	AircraftTypeToModel(t *checkout.AircraftType) *models.AircraftTypeModel
	AircraftTypeToDomain(m *models.AircraftTypeModel) *checkout.AircraftType
	AircraftTypesToDomain(ms []models.AircraftTypeModel) []*checkout.AircraftType

	CheckoutToModel(c *checkout.Checkout) *models.CheckoutModel
	// RowsToDomain rebuilds checkouts from joined rows. Entities that appear
	// in several rows are shared, not copied.
	RowsToDomain(rows []models.CheckoutRow) []*checkout.Checkout
}

type CheckoutMapperImpl struct{}

func NewCheckoutMapper() CheckoutMapper {
	return &CheckoutMapperImpl{}
}

func (m *CheckoutMapperImpl) PilotToModel(p *checkout.Pilot) *models.PilotModel {
	return &models.PilotModel{
		ID:        p.ID(),
		Username:  p.Username(),
		FirstName: p.FirstName(),
		LastName:  p.LastName(),
	}
}

func (m *CheckoutMapperImpl) PilotToDomain(model *models.PilotModel) *checkout.Pilot {
	return checkout.ReconstructPilot(model.ID, model.Username, model.FirstName, model.LastName)
}

func (m *CheckoutMapperImpl) PilotsToDomain(ms []models.PilotModel) []*checkout.Pilot {
	return mapper.MapSlice(ms, func(model models.PilotModel) *checkout.Pilot {
		return m.PilotToDomain(&model)
	})
}

func (m *CheckoutMapperImpl) AirstripToModel(a *checkout.Airstrip) *models.AirstripModel {
	return &models.AirstripModel{
		ID:     a.ID(),
		Ident:  a.Ident(),
		Name:   a.Name(),
		IsBase: a.IsBase(),
	}
}

func (m *CheckoutMapperImpl) AirstripToDomain(model *models.AirstripModel) *checkout.Airstrip {
	return checkout.ReconstructAirstrip(model.ID, model.Ident, model.Name, model.IsBase)
}

func (m *CheckoutMapperImpl) AirstripsToDomain(ms []models.AirstripModel) []*checkout.Airstrip {
	return mapper.MapSlice(ms, func(model models.AirstripModel) *checkout.Airstrip {
		return m.AirstripToDomain(&model)
	})
}

func (m *CheckoutMapperImpl) AircraftTypeToModel(t *checkout.AircraftType) *models.AircraftTypeModel {
	return &models.AircraftTypeModel{ID: t.ID(), Name: t.Name()}
}

func (m *CheckoutMapperImpl) AircraftTypeToDomain(model *models.AircraftTypeModel) *checkout.AircraftType {
	return checkout.ReconstructAircraftType(model.ID, model.Name)
}

func (m *CheckoutMapperImpl) AircraftTypesToDomain(ms []models.AircraftTypeModel) []*checkout.AircraftType {
	return mapper.MapSlice(ms, func(model models.AircraftTypeModel) *checkout.AircraftType {
		return m.AircraftTypeToDomain(&model)
	})
}

func (m *CheckoutMapperImpl) CheckoutToModel(c *checkout.Checkout) *models.CheckoutModel {
	return &models.CheckoutModel{
		ID:             c.ID(),
		PilotID:        c.Pilot().ID(),
		AirstripID:     c.Airstrip().ID(),
		AircraftTypeID: c.AircraftType().ID(),
	}
}

func (m *CheckoutMapperImpl) RowsToDomain(rows []models.CheckoutRow) []*checkout.Checkout {
	pilots := make(map[uint]*checkout.Pilot)
	airstrips := make(map[uint]*checkout.Airstrip)
	types := make(map[uint]*checkout.AircraftType)

	return mapper.MapSlice(rows, func(row models.CheckoutRow) *checkout.Checkout {
		p, ok := pilots[row.PilotID]
		if !ok {
			p = checkout.ReconstructPilot(row.PilotID, row.Username, row.FirstName, row.LastName)
			pilots[row.PilotID] = p
		}
		a, ok := airstrips[row.AirstripID]
		if !ok {
			a = checkout.ReconstructAirstrip(row.AirstripID, row.Ident, row.AirstripName, row.IsBase)
			airstrips[row.AirstripID] = a
		}
		t, ok := types[row.AircraftTypeID]
		if !ok {
			t = checkout.ReconstructAircraftType(row.AircraftTypeID, row.AircraftType)
			types[row.AircraftTypeID] = t
		}
		return checkout.ReconstructCheckout(row.ID, p, a, t)
	})
}
