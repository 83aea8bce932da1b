package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/guillenLawn/bodega-backend/models"
)

var (
	// ErrNotFound is returned when an entity does not exist.
	ErrNotFound = errors.New("no encontrado")
	// ErrEmailRegistrado is returned on a duplicate-email insert.
	ErrEmailRegistrado = errors.New("el email ya está registrado")
	// ErrStockInsuficiente is returned when a conditional stock decrement
	// affects zero rows.
	ErrStockInsuficiente = errors.New("stock insuficiente")
)

type ProductoRepository interface {
	Create(ctx context.Context, p *models.Producto) error
	GetByID(ctx context.Context, id uint) (*models.Producto, error)
	Update(ctx context.Context, p *models.Producto) error
	// Delete returns the removed product so handlers can echo it back.
	Delete(ctx context.Context, id uint) (*models.Producto, error)
	List(ctx context.Context) ([]models.Producto, error)
	// DecrementarStock applies stock = stock - cantidad only while
	// stock >= cantidad, so stock can never go negative under
	// concurrent orders. Zero rows affected -> ErrStockInsuficiente.
	DecrementarStock(ctx context.Context, id uint, cantidad int) error
	// Reemplazar wipes detalle_pedidos, pedidos and productos and
	// inserts the given catalog, atomically.
	Reemplazar(ctx context.Context, productos []models.Producto) error
}

type UsuarioRepository interface {
	Create(ctx context.Context, u *models.Usuario) error
	GetByEmail(ctx context.Context, email string) (*models.Usuario, error)
	GetByID(ctx context.Context, id uint) (*models.Usuario, error)
	Update(ctx context.Context, u *models.Usuario) error
	ExisteAdmin(ctx context.Context) (bool, error)
}

type PedidoRepository interface {
	Create(ctx context.Context, p *models.Pedido) error
	CreateDetalle(ctx context.Context, d *models.DetallePedido) error
	GetByID(ctx context.Context, id uint) (*models.Pedido, error)
	// ListByUsuario returns the user's orders with nested items, newest first.
	ListByUsuario(ctx context.Context, usuarioID uint) ([]models.Pedido, error)
	// ListAll returns every order with nested items plus owner name/email.
	ListAll(ctx context.Context) ([]models.Pedido, error)
	UpdateEstado(ctx context.Context, id uint, estado models.Estado) error
}

// Estadisticas are the admin dashboard aggregates.
type Estadisticas struct {
	TotalProductos  int64           `json:"totalProductos"`
	TotalPedidos    int64           `json:"totalPedidos"`
	TotalUsuarios   int64           `json:"totalUsuarios"`
	IngresosTotales decimal.Decimal `json:"ingresosTotales"`
}

type EstadisticasRepository interface {
	// Resumen counts productos/pedidos/usuarios and sums the total of
	// completed orders.
	Resumen(ctx context.Context) (*Estadisticas, error)
}

// TablaInfo describes one table for the debug endpoint.
type TablaInfo struct {
	Nombre         string `json:"nombre"`
	TotalRegistros int64  `json:"total_registros"`
}

type DebugRepository interface {
	Tablas(ctx context.Context) ([]TablaInfo, error)
}

// TxManager runs fn inside one atomic unit of work. Either every write made
// through the repositories with the given ctx is applied, or none is.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
