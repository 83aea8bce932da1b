package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/guillenLawn/bodega-backend/models"
)

// GormStore is the shared Postgres handle. Entity repositories are thin
// wrappers around it so each one satisfies its own interface. The DB must be
// opened with TranslateError so unique violations surface as
// gorm.ErrDuplicatedKey.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

var (
	_ EstadisticasRepository = (*GormStore)(nil)
	_ DebugRepository        = (*GormStore)(nil)
	_ TxManager              = (*GormStore)(nil)
	_ ProductoRepository     = (*GormProductos)(nil)
	_ UsuarioRepository      = (*GormUsuarios)(nil)
	_ PedidoRepository       = (*GormPedidos)(nil)
)

type gormTxKey struct{}

// conn returns the transaction bound to ctx, or the ambient pool.
func (s *GormStore) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(gormTxKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return s.db.WithContext(ctx)
}

// WithTransaction pins one connection for the unit of work and commits only
// if fn returns nil; any error discards every write.
func (s *GormStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, gormTxKey{}, tx))
	})
}

// --- productos ---

type GormProductos struct {
	store *GormStore
}

func NewGormProductos(store *GormStore) *GormProductos { return &GormProductos{store: store} }

func (r *GormProductos) Create(ctx context.Context, p *models.Producto) error {
	return r.store.conn(ctx).Create(p).Error
}

func (r *GormProductos) GetByID(ctx context.Context, id uint) (*models.Producto, error) {
	var p models.Producto
	if err := r.store.conn(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormProductos) Update(ctx context.Context, p *models.Producto) error {
	result := r.store.conn(ctx).Model(&models.Producto{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"nombre":            p.Nombre,
		"descripcion":       p.Descripcion,
		"descripcion_larga": p.DescripcionLarga,
		"precio":            p.Precio,
		"stock":             p.Stock,
		"categoria":         p.Categoria,
		"imagen_url":        p.ImagenURL,
		"marca":             p.Marca,
		"peso":              p.Peso,
		"unidad_medida":     p.UnidadMedida,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormProductos) Delete(ctx context.Context, id uint) (*models.Producto, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.store.conn(ctx).Delete(&models.Producto{}, id).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *GormProductos) List(ctx context.Context) ([]models.Producto, error) {
	productos := []models.Producto{}
	if err := r.store.conn(ctx).Order("id").Find(&productos).Error; err != nil {
		return nil, err
	}
	return productos, nil
}

func (r *GormProductos) DecrementarStock(ctx context.Context, id uint, cantidad int) error {
	result := r.store.conn(ctx).Model(&models.Producto{}).
		Where("id = ? AND stock >= ?", id, cantidad).
		Update("stock", gorm.Expr("stock - ?", cantidad))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Either the product is gone or there is not enough stock.
		if _, err := r.GetByID(ctx, id); errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return ErrStockInsuficiente
	}
	return nil
}

func (r *GormProductos) Reemplazar(ctx context.Context, productos []models.Producto) error {
	return r.store.WithTransaction(ctx, func(ctx context.Context) error {
		conn := r.store.conn(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := conn.Delete(&models.DetallePedido{}).Error; err != nil {
			return err
		}
		if err := conn.Delete(&models.Pedido{}).Error; err != nil {
			return err
		}
		if err := conn.Delete(&models.Producto{}).Error; err != nil {
			return err
		}
		return r.store.conn(ctx).Create(&productos).Error
	})
}

// --- usuarios ---

type GormUsuarios struct {
	store *GormStore
}

func NewGormUsuarios(store *GormStore) *GormUsuarios { return &GormUsuarios{store: store} }

func (r *GormUsuarios) Create(ctx context.Context, u *models.Usuario) error {
	if err := r.store.conn(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailRegistrado
		}
		return err
	}
	return nil
}

func (r *GormUsuarios) GetByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	var u models.Usuario
	if err := r.store.conn(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *GormUsuarios) GetByID(ctx context.Context, id uint) (*models.Usuario, error) {
	var u models.Usuario
	if err := r.store.conn(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *GormUsuarios) Update(ctx context.Context, u *models.Usuario) error {
	result := r.store.conn(ctx).Save(u)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormUsuarios) ExisteAdmin(ctx context.Context) (bool, error) {
	var count int64
	err := r.store.conn(ctx).Model(&models.Usuario{}).Where("rol = ?", models.RolAdmin).Count(&count).Error
	return count > 0, err
}

// --- pedidos ---

type GormPedidos struct {
	store *GormStore
}

func NewGormPedidos(store *GormStore) *GormPedidos { return &GormPedidos{store: store} }

func (r *GormPedidos) Create(ctx context.Context, p *models.Pedido) error {
	return r.store.conn(ctx).Omit("Detalles").Create(p).Error
}

func (r *GormPedidos) CreateDetalle(ctx context.Context, d *models.DetallePedido) error {
	return r.store.conn(ctx).Create(d).Error
}

func (r *GormPedidos) GetByID(ctx context.Context, id uint) (*models.Pedido, error) {
	var p models.Pedido
	if err := r.store.conn(ctx).Preload("Detalles").First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormPedidos) ListByUsuario(ctx context.Context, usuarioID uint) ([]models.Pedido, error) {
	pedidos := []models.Pedido{}
	err := r.store.conn(ctx).Preload("Detalles").
		Where("usuario_id = ?", usuarioID).
		Order("fecha_creacion DESC").
		Find(&pedidos).Error
	if err != nil {
		return nil, err
	}
	return pedidos, nil
}

func (r *GormPedidos) ListAll(ctx context.Context) ([]models.Pedido, error) {
	pedidos := []models.Pedido{}
	err := r.store.conn(ctx).Preload("Detalles").
		Order("fecha_creacion DESC").
		Find(&pedidos).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(pedidos))
	for _, p := range pedidos {
		ids = append(ids, p.UsuarioID)
	}
	if len(ids) == 0 {
		return pedidos, nil
	}

	usuarios := []models.Usuario{}
	if err := r.store.conn(ctx).Where("id IN ?", ids).Find(&usuarios).Error; err != nil {
		return nil, err
	}
	porID := make(map[uint]models.Usuario, len(usuarios))
	for _, u := range usuarios {
		porID[u.ID] = u
	}
	for i := range pedidos {
		if u, ok := porID[pedidos[i].UsuarioID]; ok {
			pedidos[i].UsuarioNombre = u.Nombre
			pedidos[i].UsuarioEmail = u.Email
		}
	}
	return pedidos, nil
}

func (r *GormPedidos) UpdateEstado(ctx context.Context, id uint, estado models.Estado) error {
	result := r.store.conn(ctx).Model(&models.Pedido{}).Where("id = ?", id).Update("estado", estado)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- estadísticas ---

func (s *GormStore) Resumen(ctx context.Context) (*Estadisticas, error) {
	conn := s.conn(ctx)
	stats := Estadisticas{IngresosTotales: decimal.Zero}

	if err := conn.Model(&models.Producto{}).Count(&stats.TotalProductos).Error; err != nil {
		return nil, err
	}
	if err := conn.Model(&models.Pedido{}).Count(&stats.TotalPedidos).Error; err != nil {
		return nil, err
	}
	if err := conn.Model(&models.Usuario{}).Count(&stats.TotalUsuarios).Error; err != nil {
		return nil, err
	}

	var fila struct {
		Ingresos decimal.Decimal
	}
	err := conn.Model(&models.Pedido{}).
		Where("estado = ?", models.EstadoCompletado).
		Select("COALESCE(SUM(total), 0) AS ingresos").
		Scan(&fila).Error
	if err != nil {
		return nil, err
	}
	stats.IngresosTotales = fila.Ingresos
	return &stats, nil
}

// --- debug ---

func (s *GormStore) Tablas(ctx context.Context) ([]TablaInfo, error) {
	conn := s.conn(ctx)

	nombres := []string{}
	err := conn.Table("information_schema.tables").
		Where("table_schema = ?", "public").
		Order("table_name").
		Pluck("table_name", &nombres).Error
	if err != nil {
		return nil, err
	}

	tablas := make([]TablaInfo, 0, len(nombres))
	for _, nombre := range nombres {
		var total int64
		if err := conn.Table(nombre).Count(&total).Error; err != nil {
			return nil, err
		}
		tablas = append(tablas, TablaInfo{Nombre: nombre, TotalRegistros: total})
	}
	return tablas, nil
}
