package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estado is the order lifecycle state. Transitions are restricted to the
// table below; anything else is rejected.
type Estado string

const (
	EstadoPendiente  Estado = "pendiente"
	EstadoEnProceso  Estado = "en_proceso"
	EstadoCompletado Estado = "completado"
	EstadoCancelado  Estado = "cancelado"
)

var transiciones = map[Estado][]Estado{
	EstadoPendiente:  {EstadoEnProceso, EstadoCompletado, EstadoCancelado},
	EstadoEnProceso:  {EstadoCompletado, EstadoCancelado},
	EstadoCompletado: {},
	EstadoCancelado:  {},
}

// Valido reports whether e is a known state.
func (e Estado) Valido() bool {
	_, ok := transiciones[e]
	return ok
}

// PuedeTransicionar reports whether the transition e -> destino is allowed.
func (e Estado) PuedeTransicionar(destino Estado) bool {
	for _, d := range transiciones[e] {
		if d == destino {
			return true
		}
	}
	return false
}

// Pedido is one checkout event. Immutable after creation except Estado.
type Pedido struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	Numero           string          `gorm:"size:36;uniqueIndex" json:"numero"`
	UsuarioID        uint            `gorm:"not null;index" json:"usuario_id"`
	Total            decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Estado           Estado          `gorm:"size:20;default:pendiente" json:"estado"`
	FechaCreacion    time.Time       `gorm:"autoCreateTime" json:"fecha_creacion"`
	DireccionEntrega string          `json:"direccion_entrega"`
	MetodoPago       string          `gorm:"size:50;default:efectivo" json:"metodo_pago"`
	Notas            string          `json:"notas"`

	Detalles []DetallePedido `gorm:"foreignKey:PedidoID" json:"items"`

	// Populated only on the admin listing.
	UsuarioNombre string `gorm:"-" json:"usuario_nombre,omitempty"`
	UsuarioEmail  string `gorm:"-" json:"usuario_email,omitempty"`
}

func (Pedido) TableName() string { return "pedidos" }

// DetallePedido is a line item: a snapshot of the product at purchase time.
// ProductoID is nullable so history survives product deletion.
type DetallePedido struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	PedidoID       uint            `gorm:"not null;index" json:"pedido_id"`
	ProductoID     *uint           `json:"producto_id"`
	ProductoNombre string          `gorm:"size:255;not null" json:"producto_nombre"`
	Cantidad       int             `gorm:"not null" json:"cantidad"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precio_unitario"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
}

func (DetallePedido) TableName() string { return "detalle_pedidos" }
