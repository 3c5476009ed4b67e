package middleware

import (
	"github.com/avira1987/remix-of-dxb-dubi/services"
	"github.com/avira1987/remix-of-dxb-dubi/structs"

	"github.com/MonkyMars/gecho"
)

type Middleware struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	authService  *services.AuthService
	cacheService *services.CacheService
}

func NewMiddleware(
	cfg *structs.Config,
	logger *gecho.Logger,
	authService *services.AuthService,
	cacheService *services.CacheService,
) *Middleware {
	return &Middleware{
		logger:       logger,
		cfg:          cfg,
		authService:  authService,
		cacheService: cacheService,
	}
}
