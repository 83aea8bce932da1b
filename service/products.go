package service

import (
	"context"

	"github.com/guillenLawn/bodega-backend/models"
	"github.com/guillenLawn/bodega-backend/repository"
)

type ProductService struct {
	productos repository.ProductoRepository
	cache     *ProductoCache
}

func NewProductService(productos repository.ProductoRepository, cache *ProductoCache) *ProductService {
	return &ProductService{productos: productos, cache: cache}
}

func (s *ProductService) Listar(ctx context.Context) ([]models.Producto, error) {
	if productos, ok := s.cache.GetList(ctx); ok {
		return productos, nil
	}
	productos, err := s.productos.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetList(ctx, productos)
	return productos, nil
}

func (s *ProductService) Obtener(ctx context.Context, id uint) (*models.Producto, error) {
	if producto, ok := s.cache.Get(ctx, id); ok {
		return producto, nil
	}
	producto, err := s.productos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, producto)
	return producto, nil
}

func (s *ProductService) Crear(ctx context.Context, p *models.Producto) error {
	if p.Nombre == "" || p.Precio.IsNegative() || p.Stock < 0 {
		return ErrDatosInvalidos
	}
	if err := s.productos.Create(ctx, p); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}

func (s *ProductService) Actualizar(ctx context.Context, p *models.Producto) error {
	if p.Nombre == "" || p.Precio.IsNegative() || p.Stock < 0 {
		return ErrDatosInvalidos
	}
	if err := s.productos.Update(ctx, p); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, p.ID)
	return nil
}

func (s *ProductService) Eliminar(ctx context.Context, id uint) (*models.Producto, error) {
	producto, err := s.productos.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, id)
	return producto, nil
}

// Sembrar resets the catalog to the initial product list, dropping every
// order along the way.
func (s *ProductService) Sembrar(ctx context.Context) (int, error) {
	catalogo := CatalogoInicial()
	if err := s.productos.Reemplazar(ctx, catalogo); err != nil {
		return 0, err
	}
	s.cache.Invalidate(ctx)
	return len(catalogo), nil
}
