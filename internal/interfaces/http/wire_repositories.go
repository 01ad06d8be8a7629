package http

import (
	"gorm.io/gorm"

	"github.com/cotracker/cotracker/internal/domain/adminuser"
	"github.com/cotracker/cotracker/internal/domain/checkout"
	"github.com/cotracker/cotracker/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	pilotRepo        checkout.PilotRepository
	airstripRepo     checkout.AirstripRepository
	aircraftTypeRepo checkout.AircraftTypeRepository
	checkoutRepo     checkout.CheckoutRepository
	adminUserRepo    adminuser.Repository
}

func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		pilotRepo:        repository.NewPilotRepository(db),
		airstripRepo:     repository.NewAirstripRepository(db),
		aircraftTypeRepo: repository.NewAircraftTypeRepository(db),
		checkoutRepo:     repository.NewCheckoutRepository(db),
		adminUserRepo:    repository.NewAdminUserRepository(db),
	}
}
