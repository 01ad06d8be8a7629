package http

import (
	adminUsecases "github.com/cotracker/cotracker/internal/application/admin/usecases"
	checkoutUsecases "github.com/cotracker/cotracker/internal/application/checkout/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Reports
	listPilotsUC        *checkoutUsecases.ListPilotsUseCase
	getPilotDetailUC    *checkoutUsecases.GetPilotDetailUseCase
	listAirstripsUC     *checkoutUsecases.ListAirstripsUseCase
	getAirstripDetailUC *checkoutUsecases.GetAirstripDetailUseCase
	listBasesUC         *checkoutUsecases.ListBasesUseCase
	getBaseDetailUC     *checkoutUsecases.GetBaseDetailUseCase
	filterCheckoutsUC   *checkoutUsecases.FilterCheckoutsUseCase

	// Admin site
	loginUC         *adminUsecases.LoginUseCase
	adminIndexUC    *adminUsecases.AdminIndexUseCase
	managePilotsUC  *adminUsecases.ManagePilotsUseCase
	manageAirstrips *adminUsecases.ManageAirstripsUseCase
	manageTypesUC   *adminUsecases.ManageAircraftTypesUseCase
	manageCheckouts *adminUsecases.ManageCheckoutsUseCase
}
