package service

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/guillenLawn/bodega-backend/models"
)

const (
	allProductosCacheKey = "all_productos"
	productoCacheTTL     = 5 * time.Minute
)

// ProductoCache is a cache-aside layer for the catalog. With a nil redis
// client every operation is a no-op and reads fall through to the database.
type ProductoCache struct {
	client *redis.Client
}

func NewProductoCache(client *redis.Client) *ProductoCache {
	return &ProductoCache{client: client}
}

func productoCacheKey(id uint) string {
	return "producto:" + strconv.FormatUint(uint64(id), 10)
}

func (c *ProductoCache) GetList(ctx context.Context) ([]models.Producto, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, allProductosCacheKey).Result()
	if err != nil {
		return nil, false
	}
	var productos []models.Producto
	if json.Unmarshal([]byte(data), &productos) != nil {
		return nil, false
	}
	return productos, true
}

func (c *ProductoCache) SetList(ctx context.Context, productos []models.Producto) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(productos)
	if err != nil {
		return
	}
	go c.client.Set(context.Background(), allProductosCacheKey, data, productoCacheTTL)
}

func (c *ProductoCache) Get(ctx context.Context, id uint) (*models.Producto, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, productoCacheKey(id)).Result()
	if err != nil {
		return nil, false
	}
	var producto models.Producto
	if json.Unmarshal([]byte(data), &producto) != nil {
		return nil, false
	}
	return &producto, true
}

func (c *ProductoCache) Set(ctx context.Context, p *models.Producto) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	go c.client.Set(context.Background(), productoCacheKey(p.ID), data, productoCacheTTL)
}

// Invalidate drops the list key plus the given product keys, in the
// background; cache invalidation is always best effort.
func (c *ProductoCache) Invalidate(ctx context.Context, ids ...uint) {
	if c == nil || c.client == nil {
		return
	}
	keys := make([]string, 0, len(ids)+1)
	keys = append(keys, allProductosCacheKey)
	for _, id := range ids {
		keys = append(keys, productoCacheKey(id))
	}
	go c.client.Del(context.Background(), keys...)
}
