package http

import (
	adminHandlers "github.com/cotracker/cotracker/internal/interfaces/http/handlers/admin"
	checkoutHandlers "github.com/cotracker/cotracker/internal/interfaces/http/handlers/checkout"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	checkoutHandler      *checkoutHandlers.Handler
	adminAuthHandler     *adminHandlers.AuthHandler
	adminResourceHandler *adminHandlers.ResourceHandler
}
