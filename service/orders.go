package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/guillenLawn/bodega-backend/models"
	"github.com/guillenLawn/bodega-backend/repository"
)

var (
	ErrDatosInvalidos     = errors.New("datos inválidos")
	ErrTotalInvalido      = errors.New("el total no coincide con los items")
	ErrEstadoDesconocido  = errors.New("estado desconocido")
	ErrTransicionInvalida = errors.New("transición de estado no permitida")
)

// ItemPedido is one line of an incoming cart.
type ItemPedido struct {
	ProductoID uint            `json:"id"`
	Nombre     string          `json:"nombre"`
	Cantidad   int             `json:"cantidad"`
	Precio     decimal.Decimal `json:"precio"`
}

// CrearPedidoInput carries the checkout payload for an authenticated user.
type CrearPedidoInput struct {
	Items      []ItemPedido
	Total      decimal.Decimal
	Direccion  string
	MetodoPago string
	Notas      string
}

// OrderService records checkouts atomically: order header, line items and
// stock decrements all commit together or not at all.
type OrderService struct {
	productos     repository.ProductoRepository
	pedidos       repository.PedidoRepository
	tx            repository.TxManager
	cache         *ProductoCache
	estadoInicial models.Estado
}

func NewOrderService(productos repository.ProductoRepository, pedidos repository.PedidoRepository, tx repository.TxManager, cache *ProductoCache, estadoInicial models.Estado) *OrderService {
	if !estadoInicial.Valido() {
		estadoInicial = models.EstadoPendiente
	}
	return &OrderService{
		productos:     productos,
		pedidos:       pedidos,
		tx:            tx,
		cache:         cache,
		estadoInicial: estadoInicial,
	}
}

// Crear places an order for usuarioID. The supplied total is verified against
// the sum of the line subtotals, never trusted. Stock is decremented with a
// conditional update, so two concurrent orders can never oversell a product.
func (s *OrderService) Crear(ctx context.Context, usuarioID uint, in CrearPedidoInput) (*models.Pedido, error) {
	if usuarioID == 0 || len(in.Items) == 0 {
		return nil, ErrDatosInvalidos
	}
	for _, item := range in.Items {
		if item.ProductoID == 0 || item.Cantidad <= 0 || item.Precio.IsNegative() {
			return nil, ErrDatosInvalidos
		}
	}

	calculado := decimal.Zero
	for _, item := range in.Items {
		calculado = calculado.Add(item.Precio.Mul(decimal.NewFromInt(int64(item.Cantidad))))
	}
	if !calculado.Equal(in.Total) {
		return nil, ErrTotalInvalido
	}

	metodoPago := in.MetodoPago
	if metodoPago == "" {
		metodoPago = "efectivo"
	}

	pedido := models.Pedido{
		Numero:           uuid.NewString(),
		UsuarioID:        usuarioID,
		Total:            calculado,
		Estado:           s.estadoInicial,
		DireccionEntrega: in.Direccion,
		MetodoPago:       metodoPago,
		Notas:            in.Notas,
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.pedidos.Create(ctx, &pedido); err != nil {
			return err
		}
		for _, item := range in.Items {
			producto, err := s.productos.GetByID(ctx, item.ProductoID)
			if err != nil {
				return err
			}
			nombre := item.Nombre
			if nombre == "" {
				nombre = producto.Nombre
			}
			productoID := item.ProductoID
			detalle := models.DetallePedido{
				PedidoID:       pedido.ID,
				ProductoID:     &productoID,
				ProductoNombre: nombre,
				Cantidad:       item.Cantidad,
				PrecioUnitario: item.Precio,
				Subtotal:       item.Precio.Mul(decimal.NewFromInt(int64(item.Cantidad))),
			}
			if err := s.pedidos.CreateDetalle(ctx, &detalle); err != nil {
				return err
			}
			if err := s.productos.DecrementarStock(ctx, item.ProductoID, item.Cantidad); err != nil {
				return err
			}
			pedido.Detalles = append(pedido.Detalles, detalle)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(in.Items))
	for _, item := range in.Items {
		ids = append(ids, item.ProductoID)
	}
	s.cache.Invalidate(ctx, ids...)

	return &pedido, nil
}

// ListarPorUsuario returns the caller's orders, newest first.
func (s *OrderService) ListarPorUsuario(ctx context.Context, usuarioID uint) ([]models.Pedido, error) {
	return s.pedidos.ListByUsuario(ctx, usuarioID)
}

// ListarTodos returns every order with owner info. Admin only; the caller
// enforces that.
func (s *OrderService) ListarTodos(ctx context.Context) ([]models.Pedido, error) {
	return s.pedidos.ListAll(ctx)
}

// CambiarEstado transitions an order through the lifecycle table. Unknown
// states and transitions outside the table are rejected.
func (s *OrderService) CambiarEstado(ctx context.Context, pedidoID uint, nuevo models.Estado) error {
	if !nuevo.Valido() {
		return ErrEstadoDesconocido
	}
	pedido, err := s.pedidos.GetByID(ctx, pedidoID)
	if err != nil {
		return err
	}
	if !pedido.Estado.PuedeTransicionar(nuevo) {
		return ErrTransicionInvalida
	}
	return s.pedidos.UpdateEstado(ctx, pedidoID, nuevo)
}
