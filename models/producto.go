package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto corresponds to the 'productos' table.
type Producto struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	Nombre           string          `gorm:"size:255;not null" json:"nombre"`
	Descripcion      string          `json:"descripcion"`
	DescripcionLarga string          `json:"descripcion_larga"`
	Precio           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precio"`
	Stock            int             `gorm:"not null" json:"stock"`
	Categoria        string          `gorm:"size:100" json:"categoria"`
	ImagenURL        string          `gorm:"size:255" json:"imagen_url"`
	Marca            string          `gorm:"size:100" json:"marca"`
	Peso             decimal.Decimal `gorm:"type:decimal(10,2)" json:"peso"`
	UnidadMedida     string          `gorm:"size:20" json:"unidad_medida"`
	CreatedAt        time.Time       `json:"created_at"`
}

func (Producto) TableName() string { return "productos" }
