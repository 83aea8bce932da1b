package service

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/guillenLawn/bodega-backend/models"
	"github.com/guillenLawn/bodega-backend/repository"
)

type ordersFixture struct {
	store     *repository.MemoryStore
	productos *repository.MemoryProductos
	pedidos   *repository.MemoryPedidos
	usuarios  *repository.MemoryUsuarios
	svc       *OrderService
}

func setupOrders(t *testing.T) *ordersFixture {
	t.Helper()
	store := repository.NewMemoryStore()
	productos := repository.NewMemoryProductos(store)
	pedidos := repository.NewMemoryPedidos(store)
	usuarios := repository.NewMemoryUsuarios(store)
	svc := NewOrderService(productos, pedidos, store, NewProductoCache(nil), models.EstadoPendiente)
	return &ordersFixture{store: store, productos: productos, pedidos: pedidos, usuarios: usuarios, svc: svc}
}

func (f *ordersFixture) producto(t *testing.T, nombre, precio string, stock int) *models.Producto {
	t.Helper()
	p := models.Producto{Nombre: nombre, Precio: decimal.RequireFromString(precio), Stock: stock}
	require.NoError(t, f.productos.Create(context.Background(), &p))
	return &p
}

func (f *ordersFixture) usuario(t *testing.T, email string) *models.Usuario {
	t.Helper()
	u := models.Usuario{Email: email, PasswordHash: "x", Nombre: "Test", Rol: models.RolCliente}
	require.NoError(t, f.usuarios.Create(context.Background(), &u))
	return &u
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCrearPedido(t *testing.T) {
	ctx := context.Background()
	f := setupOrders(t)
	u := f.usuario(t, "cliente@bodega.com")
	arroz := f.producto(t, "Arroz", "4.50", 100)
	cafe := f.producto(t, "Café", "8.90", 70)

	pedido, err := f.svc.Crear(ctx, u.ID, CrearPedidoInput{
		Items: []ItemPedido{
			{ProductoID: arroz.ID, Cantidad: 2, Precio: dec("4.50")},
			{ProductoID: cafe.ID, Cantidad: 1, Precio: dec("8.90")},
		},
		Total:     dec("17.90"),
		Direccion: "Av. Principal 123",
	})
	require.NoError(t, err)
	require.NotZero(t, pedido.ID)
	require.NotEmpty(t, pedido.Numero)
	require.True(t, pedido.Total.Equal(dec("17.90")), "total %s", pedido.Total)
	require.Equal(t, models.EstadoPendiente, pedido.Estado)
	require.Equal(t, "efectivo", pedido.MetodoPago)

	require.Len(t, pedido.Detalles, 2)
	require.Equal(t, "Arroz", pedido.Detalles[0].ProductoNombre)
	require.True(t, pedido.Detalles[0].Subtotal.Equal(dec("9.00")))
	require.True(t, pedido.Detalles[1].Subtotal.Equal(dec("8.90")))

	despuesArroz, err := f.productos.GetByID(ctx, arroz.ID)
	require.NoError(t, err)
	require.Equal(t, 98, despuesArroz.Stock)
	despuesCafe, err := f.productos.GetByID(ctx, cafe.ID)
	require.NoError(t, err)
	require.Equal(t, 69, despuesCafe.Stock)

	guardado, err := f.pedidos.GetByID(ctx, pedido.ID)
	require.NoError(t, err)
	require.Len(t, guardado.Detalles, 2)
}

func TestCrearPedido_ProductoInexistenteRollback(t *testing.T) {
	ctx := context.Background()
	f := setupOrders(t)
	u := f.usuario(t, "cliente@bodega.com")
	arroz := f.producto(t, "Arroz", "4.50", 100)

	_, err := f.svc.Crear(ctx, u.ID, CrearPedidoInput{
		Items: []ItemPedido{
			{ProductoID: arroz.ID, Cantidad: 2, Precio: dec("4.50")},
			{ProductoID: 999, Cantidad: 1, Precio: dec("8.90")},
		},
		Total: dec("17.90"),
	})
	require.ErrorIs(t, err, repository.ErrNotFound)

	// Nothing is visible: no order, no items, stock untouched.
	pedidos, err := f.pedidos.ListByUsuario(ctx, u.ID)
	require.NoError(t, err)
	require.Empty(t, pedidos)
	despues, err := f.productos.GetByID(ctx, arroz.ID)
	require.NoError(t, err)
	require.Equal(t, 100, despues.Stock)
}

func TestCrearPedido_StockInsuficienteRollback(t *testing.T) {
	ctx := context.Background()
	f := setupOrders(t)
	u := f.usuario(t, "cliente@bodega.com")
	arroz := f.producto(t, "Arroz", "4.50", 100)
	cafe := f.producto(t, "Café", "8.90", 1)

	_, err := f.svc.Crear(ctx, u.ID, CrearPedidoInput{
		Items: []ItemPedido{
			{ProductoID: arroz.ID, Cantidad: 2, Precio: dec("4.50")},
			{ProductoID: cafe.ID, Cantidad: 5, Precio: dec("8.90")},
		},
		Total: dec("53.50"),
	})
	require.ErrorIs(t, err, repository.ErrStockInsuficiente)

	pedidos, err := f.pedidos.ListByUsuario(ctx, u.ID)
	require.NoError(t, err)
	require.Empty(t, pedidos)
	despues, err := f.productos.GetByID(ctx, arroz.ID)
	require.NoError(t, err)
	require.Equal(t, 100, despues.Stock)
}

func TestCrearPedido_TotalNoCoincide(t *testing.T) {
	ctx := context.Background()
	f := setupOrders(t)
	u := f.usuario(t, "cliente@bodega.com")
	arroz := f.producto(t, "Arroz", "4.50", 100)

	_, err := f.svc.Crear(ctx, u.ID, CrearPedidoInput{
		Items: []ItemPedido{{ProductoID: arroz.ID, Cantidad: 2, Precio: dec("4.50")}},
		Total: dec("1.00"),
	})
	require.ErrorIs(t, err, ErrTotalInvalido)

	despues, err := f.productos.GetByID(ctx, arroz.ID)
	require.NoError(t, err)
	require.Equal(t, 100, despues.Stock)
}

func TestCrearPedido_DatosInvalidos(t *testing.T) {
	ctx := context.Background()
	f := setupOrders(t)
	u := f.usuario(t, "cliente@bodega.com")
	arroz := f.producto(t, "Arroz", "4.50", 100)

	casos := []CrearPedidoInput{
		{Items: nil, Total: dec("0")},
		{Items: []ItemPedido{{ProductoID: arroz.ID, Cantidad: 0, Precio: dec("4.50")}}, Total: dec("0")},
		{Items: []ItemPedido{{ProductoID: arroz.ID, Cantidad: -1, Precio: dec("4.50")}}, Total: dec("-4.50")},
		{Items: []ItemPedido{{ProductoID: 0, Cantidad: 1, Precio: dec("4.50")}}, Total: dec("4.50")},
	}
	for _, in := range casos {
		_, err := f.svc.Crear(ctx, u.ID, in)
		require.ErrorIs(t, err, ErrDatosInvalidos)
	}
}

func TestCrearPedido_UltimaUnidadConcurrente(t *testing.T) {
	ctx := context.Background()
	f := setupOrders(t)
	u := f.usuario(t, "cliente@bodega.com")
	cafe := f.producto(t, "Café", "8.90", 1)

	input := CrearPedidoInput{
		Items: []ItemPedido{{ProductoID: cafe.ID, Cantidad: 1, Precio: dec("8.90")}},
		Total: dec("8.90"),
	}

	var wg sync.WaitGroup
	errores := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errores[i] = f.svc.Crear(ctx, u.ID, input)
		}(i)
	}
	wg.Wait()

	exitos := 0
	for _, err := range errores {
		if err == nil {
			exitos++
		} else {
			require.ErrorIs(t, err, repository.ErrStockInsuficiente)
		}
	}
	require.Equal(t, 1, exitos, "solo un pedido puede llevarse la última unidad")

	despues, err := f.productos.GetByID(ctx, cafe.ID)
	require.NoError(t, err)
	require.Equal(t, 0, despues.Stock)
}

func TestListarPorUsuario_RecientesPrimero(t *testing.T) {
	ctx := context.Background()
	f := setupOrders(t)
	u := f.usuario(t, "cliente@bodega.com")
	otro := f.usuario(t, "otro@bodega.com")
	arroz := f.producto(t, "Arroz", "4.50", 100)

	input := CrearPedidoInput{
		Items: []ItemPedido{{ProductoID: arroz.ID, Cantidad: 1, Precio: dec("4.50")}},
		Total: dec("4.50"),
	}
	primero, err := f.svc.Crear(ctx, u.ID, input)
	require.NoError(t, err)
	segundo, err := f.svc.Crear(ctx, u.ID, input)
	require.NoError(t, err)
	_, err = f.svc.Crear(ctx, otro.ID, input)
	require.NoError(t, err)

	pedidos, err := f.svc.ListarPorUsuario(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, pedidos, 2)
	require.Equal(t, segundo.ID, pedidos[0].ID)
	require.Equal(t, primero.ID, pedidos[1].ID)
	require.Len(t, pedidos[0].Detalles, 1)
}

func TestListarTodos_IncluyeUsuario(t *testing.T) {
	ctx := context.Background()
	f := setupOrders(t)
	u := f.usuario(t, "cliente@bodega.com")
	arroz := f.producto(t, "Arroz", "4.50", 100)

	_, err := f.svc.Crear(ctx, u.ID, CrearPedidoInput{
		Items: []ItemPedido{{ProductoID: arroz.ID, Cantidad: 1, Precio: dec("4.50")}},
		Total: dec("4.50"),
	})
	require.NoError(t, err)

	pedidos, err := f.svc.ListarTodos(ctx)
	require.NoError(t, err)
	require.Len(t, pedidos, 1)
	require.Equal(t, "cliente@bodega.com", pedidos[0].UsuarioEmail)
	require.Equal(t, "Test", pedidos[0].UsuarioNombre)
}

func TestCambiarEstado(t *testing.T) {
	ctx := context.Background()
	f := setupOrders(t)
	u := f.usuario(t, "cliente@bodega.com")
	arroz := f.producto(t, "Arroz", "4.50", 100)

	pedido, err := f.svc.Crear(ctx, u.ID, CrearPedidoInput{
		Items: []ItemPedido{{ProductoID: arroz.ID, Cantidad: 1, Precio: dec("4.50")}},
		Total: dec("4.50"),
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.CambiarEstado(ctx, pedido.ID, models.EstadoEnProceso))
	require.NoError(t, f.svc.CambiarEstado(ctx, pedido.ID, models.EstadoCompletado))

	// completado is terminal
	err = f.svc.CambiarEstado(ctx, pedido.ID, models.EstadoCancelado)
	require.ErrorIs(t, err, ErrTransicionInvalida)

	err = f.svc.CambiarEstado(ctx, pedido.ID, models.Estado("enviado"))
	require.ErrorIs(t, err, ErrEstadoDesconocido)

	err = f.svc.CambiarEstado(ctx, 999, models.EstadoCancelado)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCrearPedido_EstadoInicialConfigurable(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	productos := repository.NewMemoryProductos(store)
	pedidos := repository.NewMemoryPedidos(store)
	usuarios := repository.NewMemoryUsuarios(store)
	svc := NewOrderService(productos, pedidos, store, NewProductoCache(nil), models.EstadoCompletado)

	u := models.Usuario{Email: "c@bodega.com", PasswordHash: "x", Nombre: "C"}
	require.NoError(t, usuarios.Create(ctx, &u))
	p := models.Producto{Nombre: "Arroz", Precio: dec("4.50"), Stock: 10}
	require.NoError(t, productos.Create(ctx, &p))

	pedido, err := svc.Crear(ctx, u.ID, CrearPedidoInput{
		Items: []ItemPedido{{ProductoID: p.ID, Cantidad: 1, Precio: dec("4.50")}},
		Total: dec("4.50"),
	})
	require.NoError(t, err)
	require.Equal(t, models.EstadoCompletado, pedido.Estado)
}
