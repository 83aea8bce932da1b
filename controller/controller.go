package controller

import (
	"errors"
	"net/http"

	"github.com/guillenLawn/bodega-backend/auth"
	"github.com/guillenLawn/bodega-backend/repository"
	"github.com/guillenLawn/bodega-backend/service"
)

// Controller holds the injected services backing every handler.
type Controller struct {
	usuarios  *service.UserService
	productos *service.ProductService
	pedidos   *service.OrderService
	stats     *service.StatsService
	debug     repository.DebugRepository
	tokens    *auth.Service
}

func New(usuarios *service.UserService, productos *service.ProductService, pedidos *service.OrderService, stats *service.StatsService, debug repository.DebugRepository, tokens *auth.Service) *Controller {
	return &Controller{
		usuarios:  usuarios,
		productos: productos,
		pedidos:   pedidos,
		stats:     stats,
		debug:     debug,
		tokens:    tokens,
	}
}

// statusFor maps service/repository errors to HTTP status codes at the
// boundary. Anything unrecognized is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrDatosInvalidos),
		errors.Is(err, service.ErrPasswordCorta),
		errors.Is(err, service.ErrTotalInvalido),
		errors.Is(err, service.ErrEstadoDesconocido),
		errors.Is(err, service.ErrTransicionInvalida),
		errors.Is(err, repository.ErrEmailRegistrado),
		errors.Is(err, repository.ErrStockInsuficiente):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrCredencialesInvalidas):
		return http.StatusUnauthorized
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
