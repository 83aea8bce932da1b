package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/guillenLawn/bodega-backend/middleware"
	"github.com/guillenLawn/bodega-backend/models"
	"github.com/guillenLawn/bodega-backend/service"
)

type crearPedidoInput struct {
	Items      []service.ItemPedido `json:"items"`
	Total      decimal.Decimal      `json:"total"`
	Direccion  string               `json:"direccion"`
	MetodoPago string               `json:"metodoPago"`
	Notas      string               `json:"notas"`
}

// CreatePedido places an order for the authenticated user. Header, line
// items and stock decrements commit atomically; any failure rolls back the
// whole thing.
func (ct *Controller) CreatePedido(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token de acceso requerido"})
		return
	}

	var input crearPedidoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "JSON inválido"})
		return
	}

	pedido, err := ct.pedidos.Crear(c.Request.Context(), claims.ID, service.CrearPedidoInput{
		Items:      input.Items,
		Total:      input.Total,
		Direccion:  input.Direccion,
		MetodoPago: input.MetodoPago,
		Notas:      input.Notas,
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "message": "Error al crear el pedido: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Pedido creado exitosamente",
		"pedido":  pedido,
	})
}

// GetPedidosUsuario lists the caller's own orders with nested items.
func (ct *Controller) GetPedidosUsuario(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token de acceso requerido"})
		return
	}

	pedidos, err := ct.pedidos.ListarPorUsuario(c.Request.Context(), claims.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error al obtener pedidos: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "pedidos": pedidos})
}

// GetPedidosAll lists every order with owner info. Admin only.
func (ct *Controller) GetPedidosAll(c *gin.Context) {
	pedidos, err := ct.pedidos.ListarTodos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error al obtener pedidos: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "pedidos": pedidos})
}

type cambiarEstadoInput struct {
	Estado models.Estado `json:"estado"`
}

// UpdateEstadoPedido transitions an order through the lifecycle table.
func (ct *Controller) UpdateEstadoPedido(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "ID inválido"})
		return
	}

	var input cambiarEstadoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "JSON inválido"})
		return
	}

	if err := ct.pedidos.CambiarEstado(c.Request.Context(), id, input.Estado); err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Estado actualizado correctamente"})
}
