package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/guillenLawn/bodega-backend/models"
)

// productoInput mirrors the storefront payload: the base fields keep their
// historical English keys, the later catalog additions use the column names.
type productoInput struct {
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Quantity         int             `json:"quantity"`
	Price            decimal.Decimal `json:"price"`
	Descripcion      string          `json:"descripcion"`
	DescripcionLarga string          `json:"descripcion_larga"`
	ImagenURL        string          `json:"imagen_url"`
	Marca            string          `json:"marca"`
	Peso             decimal.Decimal `json:"peso"`
	UnidadMedida     string          `json:"unidad_medida"`
}

func (in *productoInput) producto() models.Producto {
	return models.Producto{
		Nombre:           in.Name,
		Descripcion:      in.Descripcion,
		DescripcionLarga: in.DescripcionLarga,
		Precio:           in.Price,
		Stock:            in.Quantity,
		Categoria:        in.Category,
		ImagenURL:        in.ImagenURL,
		Marca:            in.Marca,
		Peso:             in.Peso,
		UnidadMedida:     in.UnidadMedida,
	}
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}

// GetInventory godoc
// @Summary List the product catalog
// @Tags inventory
// @Produce json
// @Success 200 {array} models.Producto
// @Router /api/inventory [get]
func (ct *Controller) GetInventory(c *gin.Context) {
	productos, err := ct.productos.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, productos)
}

// CreateProducto godoc
// @Summary Add a product to the catalog
// @Tags inventory
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/inventory [post]
func (ct *Controller) CreateProducto(c *gin.Context) {
	var input productoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "JSON inválido"})
		return
	}

	producto := input.producto()
	if err := ct.productos.Crear(c.Request.Context(), &producto); err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Producto agregado correctamente",
		"producto": producto,
	})
}

// UpdateProducto godoc
// @Summary Update a catalog product
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Producto ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/inventory/{id} [put]
func (ct *Controller) UpdateProducto(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "ID inválido"})
		return
	}

	var input productoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "JSON inválido"})
		return
	}

	producto := input.producto()
	producto.ID = id
	if err := ct.productos.Actualizar(c.Request.Context(), &producto); err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Producto actualizado correctamente",
		"producto": producto,
	})
}

// DeleteProducto godoc
// @Summary Remove a catalog product
// @Tags inventory
// @Produce json
// @Param id path int true "Producto ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/inventory/{id} [delete]
func (ct *Controller) DeleteProducto(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "ID inválido"})
		return
	}

	producto, err := ct.productos.Eliminar(c.Request.Context(), id)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Producto eliminado correctamente",
		"producto": producto,
	})
}

// ResetProductos wipes orders and reloads the seed catalog.
func (ct *Controller) ResetProductos(c *gin.Context) {
	total, err := ct.productos.Sembrar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "Productos insertados correctamente",
		"total_productos": total,
	})
}
