package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetEstadisticas returns the admin dashboard aggregates.
func (ct *Controller) GetEstadisticas(c *gin.Context) {
	stats, err := ct.stats.Resumen(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error al obtener estadísticas: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "estadisticas": stats})
}

// GetDebugTablas lists the database tables with their row counts.
func (ct *Controller) GetDebugTablas(c *gin.Context) {
	tablas, err := ct.debug.Tablas(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	nombres := make([]string, 0, len(tablas))
	for _, t := range tablas {
		nombres = append(nombres, t.Nombre)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"total_tablas":   len(tablas),
		"nombres_tablas": nombres,
		"detalles":       tablas,
	})
}
