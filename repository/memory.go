package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guillenLawn/bodega-backend/models"
)

// MemoryStore is an in-memory implementation of the repositories, used by
// tests. Transactions take the write lock for their whole unit of work and
// roll back by restoring a snapshot on error.
type MemoryStore struct {
	mu             sync.RWMutex
	nextProductoID uint
	nextUsuarioID  uint
	nextPedidoID   uint
	nextDetalleID  uint
	productos      map[uint]models.Producto
	usuarios       map[uint]models.Usuario
	pedidos        map[uint]models.Pedido
	detalles       map[uint]models.DetallePedido
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextProductoID: 1,
		nextUsuarioID:  1,
		nextPedidoID:   1,
		nextDetalleID:  1,
		productos:      make(map[uint]models.Producto),
		usuarios:       make(map[uint]models.Usuario),
		pedidos:        make(map[uint]models.Pedido),
		detalles:       make(map[uint]models.DetallePedido),
	}
}

var (
	_ EstadisticasRepository = (*MemoryStore)(nil)
	_ DebugRepository        = (*MemoryStore)(nil)
	_ TxManager              = (*MemoryStore)(nil)
	_ ProductoRepository     = (*MemoryProductos)(nil)
	_ UsuarioRepository      = (*MemoryUsuarios)(nil)
	_ PedidoRepository       = (*MemoryPedidos)(nil)
)

// transaction-aware locking: inside WithTransaction the write lock is
// already held, so repository calls with the tx context skip their own locks.
type memTxKey struct{}

func isTx(ctx context.Context) bool {
	v, ok := ctx.Value(memTxKey{}).(bool)
	return ok && v
}

func (m *MemoryStore) rlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RLock()
	}
}
func (m *MemoryStore) runlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RUnlock()
	}
}
func (m *MemoryStore) wlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Lock()
	}
}
func (m *MemoryStore) wunlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Unlock()
	}
}

type memSnapshot struct {
	nextProductoID, nextUsuarioID, nextPedidoID, nextDetalleID uint

	productos map[uint]models.Producto
	usuarios  map[uint]models.Usuario
	pedidos   map[uint]models.Pedido
	detalles  map[uint]models.DetallePedido
}

func copyMap[K comparable, V any](src map[K]V) map[K]V {
	dst := make(map[K]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// WithTransaction serializes writers and restores the pre-transaction state
// when fn fails, so partial writes are never observable.
func (m *MemoryStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := memSnapshot{
		nextProductoID: m.nextProductoID,
		nextUsuarioID:  m.nextUsuarioID,
		nextPedidoID:   m.nextPedidoID,
		nextDetalleID:  m.nextDetalleID,
		productos:      copyMap(m.productos),
		usuarios:       copyMap(m.usuarios),
		pedidos:        copyMap(m.pedidos),
		detalles:       copyMap(m.detalles),
	}

	ctx = context.WithValue(ctx, memTxKey{}, true)
	if err := fn(ctx); err != nil {
		m.nextProductoID = snap.nextProductoID
		m.nextUsuarioID = snap.nextUsuarioID
		m.nextPedidoID = snap.nextPedidoID
		m.nextDetalleID = snap.nextDetalleID
		m.productos = snap.productos
		m.usuarios = snap.usuarios
		m.pedidos = snap.pedidos
		m.detalles = snap.detalles
		return err
	}
	return nil
}

// --- productos ---

type MemoryProductos struct {
	store *MemoryStore
}

func NewMemoryProductos(store *MemoryStore) *MemoryProductos { return &MemoryProductos{store: store} }

func (r *MemoryProductos) Create(ctx context.Context, p *models.Producto) error {
	m := r.store
	m.wlock(ctx)
	defer m.wunlock(ctx)
	p.ID = m.nextProductoID
	m.nextProductoID++
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	m.productos[p.ID] = *p
	return nil
}

func (r *MemoryProductos) GetByID(ctx context.Context, id uint) (*models.Producto, error) {
	m := r.store
	m.rlock(ctx)
	defer m.runlock(ctx)
	p, ok := m.productos[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := p
	return &cp, nil
}

func (r *MemoryProductos) Update(ctx context.Context, p *models.Producto) error {
	m := r.store
	m.wlock(ctx)
	defer m.wunlock(ctx)
	if _, ok := m.productos[p.ID]; !ok {
		return ErrNotFound
	}
	m.productos[p.ID] = *p
	return nil
}

func (r *MemoryProductos) Delete(ctx context.Context, id uint) (*models.Producto, error) {
	m := r.store
	m.wlock(ctx)
	defer m.wunlock(ctx)
	p, ok := m.productos[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(m.productos, id)
	cp := p
	return &cp, nil
}

func (r *MemoryProductos) List(ctx context.Context) ([]models.Producto, error) {
	m := r.store
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := make([]models.Producto, 0, len(m.productos))
	for _, p := range m.productos {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryProductos) DecrementarStock(ctx context.Context, id uint, cantidad int) error {
	m := r.store
	m.wlock(ctx)
	defer m.wunlock(ctx)
	p, ok := m.productos[id]
	if !ok {
		return ErrNotFound
	}
	if p.Stock < cantidad {
		return ErrStockInsuficiente
	}
	p.Stock -= cantidad
	m.productos[id] = p
	return nil
}

func (r *MemoryProductos) Reemplazar(ctx context.Context, productos []models.Producto) error {
	m := r.store
	m.wlock(ctx)
	defer m.wunlock(ctx)
	m.detalles = make(map[uint]models.DetallePedido)
	m.pedidos = make(map[uint]models.Pedido)
	m.productos = make(map[uint]models.Producto)
	for i := range productos {
		productos[i].ID = m.nextProductoID
		m.nextProductoID++
		if productos[i].CreatedAt.IsZero() {
			productos[i].CreatedAt = time.Now().UTC()
		}
		m.productos[productos[i].ID] = productos[i]
	}
	return nil
}

// --- usuarios ---

type MemoryUsuarios struct {
	store *MemoryStore
}

func NewMemoryUsuarios(store *MemoryStore) *MemoryUsuarios { return &MemoryUsuarios{store: store} }

func (r *MemoryUsuarios) Create(ctx context.Context, u *models.Usuario) error {
	m := r.store
	m.wlock(ctx)
	defer m.wunlock(ctx)
	for _, existente := range m.usuarios {
		if existente.Email == u.Email {
			return ErrEmailRegistrado
		}
	}
	u.ID = m.nextUsuarioID
	m.nextUsuarioID++
	if u.Rol == "" {
		u.Rol = models.RolCliente
	}
	u.Activo = true
	u.FechaCreacion = time.Now().UTC()
	m.usuarios[u.ID] = *u
	return nil
}

func (r *MemoryUsuarios) GetByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	m := r.store
	m.rlock(ctx)
	defer m.runlock(ctx)
	for _, u := range m.usuarios {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUsuarios) GetByID(ctx context.Context, id uint) (*models.Usuario, error) {
	m := r.store
	m.rlock(ctx)
	defer m.runlock(ctx)
	u, ok := m.usuarios[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := u
	return &cp, nil
}

func (r *MemoryUsuarios) Update(ctx context.Context, u *models.Usuario) error {
	m := r.store
	m.wlock(ctx)
	defer m.wunlock(ctx)
	if _, ok := m.usuarios[u.ID]; !ok {
		return ErrNotFound
	}
	m.usuarios[u.ID] = *u
	return nil
}

func (r *MemoryUsuarios) ExisteAdmin(ctx context.Context) (bool, error) {
	m := r.store
	m.rlock(ctx)
	defer m.runlock(ctx)
	for _, u := range m.usuarios {
		if u.Rol == models.RolAdmin {
			return true, nil
		}
	}
	return false, nil
}

// --- pedidos ---

type MemoryPedidos struct {
	store *MemoryStore
}

func NewMemoryPedidos(store *MemoryStore) *MemoryPedidos { return &MemoryPedidos{store: store} }

func (r *MemoryPedidos) Create(ctx context.Context, p *models.Pedido) error {
	m := r.store
	m.wlock(ctx)
	defer m.wunlock(ctx)
	p.ID = m.nextPedidoID
	m.nextPedidoID++
	p.FechaCreacion = time.Now().UTC()
	guardado := *p
	guardado.Detalles = nil
	m.pedidos[p.ID] = guardado
	return nil
}

func (r *MemoryPedidos) CreateDetalle(ctx context.Context, d *models.DetallePedido) error {
	m := r.store
	m.wlock(ctx)
	defer m.wunlock(ctx)
	if _, ok := m.pedidos[d.PedidoID]; !ok {
		return ErrNotFound
	}
	d.ID = m.nextDetalleID
	m.nextDetalleID++
	m.detalles[d.ID] = *d
	return nil
}

func (r *MemoryPedidos) GetByID(ctx context.Context, id uint) (*models.Pedido, error) {
	m := r.store
	m.rlock(ctx)
	defer m.runlock(ctx)
	p, ok := m.pedidos[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := p
	cp.Detalles = m.detallesDe(id)
	return &cp, nil
}

// caller must hold a lock
func (m *MemoryStore) detallesDe(pedidoID uint) []models.DetallePedido {
	out := []models.DetallePedido{}
	for _, d := range m.detalles {
		if d.PedidoID == pedidoID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *MemoryPedidos) ListByUsuario(ctx context.Context, usuarioID uint) ([]models.Pedido, error) {
	m := r.store
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := []models.Pedido{}
	for _, p := range m.pedidos {
		if p.UsuarioID != usuarioID {
			continue
		}
		p.Detalles = m.detallesDe(p.ID)
		out = append(out, p)
	}
	ordenarRecientesPrimero(out)
	return out, nil
}

func (r *MemoryPedidos) ListAll(ctx context.Context) ([]models.Pedido, error) {
	m := r.store
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := []models.Pedido{}
	for _, p := range m.pedidos {
		p.Detalles = m.detallesDe(p.ID)
		if u, ok := m.usuarios[p.UsuarioID]; ok {
			p.UsuarioNombre = u.Nombre
			p.UsuarioEmail = u.Email
		}
		out = append(out, p)
	}
	ordenarRecientesPrimero(out)
	return out, nil
}

func ordenarRecientesPrimero(pedidos []models.Pedido) {
	sort.Slice(pedidos, func(i, j int) bool {
		if pedidos[i].FechaCreacion.Equal(pedidos[j].FechaCreacion) {
			return pedidos[i].ID > pedidos[j].ID
		}
		return pedidos[i].FechaCreacion.After(pedidos[j].FechaCreacion)
	})
}

func (r *MemoryPedidos) UpdateEstado(ctx context.Context, id uint, estado models.Estado) error {
	m := r.store
	m.wlock(ctx)
	defer m.wunlock(ctx)
	p, ok := m.pedidos[id]
	if !ok {
		return ErrNotFound
	}
	p.Estado = estado
	m.pedidos[id] = p
	return nil
}

// --- estadísticas ---

func (m *MemoryStore) Resumen(ctx context.Context) (*Estadisticas, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	stats := Estadisticas{
		TotalProductos:  int64(len(m.productos)),
		TotalPedidos:    int64(len(m.pedidos)),
		TotalUsuarios:   int64(len(m.usuarios)),
		IngresosTotales: decimal.Zero,
	}
	for _, p := range m.pedidos {
		if p.Estado == models.EstadoCompletado {
			stats.IngresosTotales = stats.IngresosTotales.Add(p.Total)
		}
	}
	return &stats, nil
}

// --- debug ---

func (m *MemoryStore) Tablas(ctx context.Context) ([]TablaInfo, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	return []TablaInfo{
		{Nombre: "detalle_pedidos", TotalRegistros: int64(len(m.detalles))},
		{Nombre: "pedidos", TotalRegistros: int64(len(m.pedidos))},
		{Nombre: "productos", TotalRegistros: int64(len(m.productos))},
		{Nombre: "usuarios", TotalRegistros: int64(len(m.usuarios))},
	}, nil
}
