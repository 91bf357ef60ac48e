package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/LocalizaAeServices/rental-api/internal/models"
)

const (
	catalogKey = "catalog:categories"
	catalogTTL = 5 * time.Minute
)

// Catalog guarda só o catálogo estático (nome, preço, estoque total, imagem).
// Disponibilidade é derivada por requisição e nunca entra no cache.
// Invalidação é explícita, feita por quem muta a categoria.
type Catalog struct {
	rdb *redis.Client
}

// NewCatalog retorna nil quando não há Redis configurado; todos os métodos
// aceitam receiver nil e viram no-op.
func NewCatalog(addr string) *Catalog {
	if addr == "" {
		return nil
	}
	return &Catalog{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (c *Catalog) Get(ctx context.Context) ([]models.Category, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, catalogKey).Bytes()
	if err != nil {
		return nil, false
	}

	var cats []models.Category
	if err := json.Unmarshal(raw, &cats); err != nil {
		return nil, false
	}
	return cats, true
}

func (c *Catalog) Set(ctx context.Context, cats []models.Category) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(cats)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, catalogKey, raw, catalogTTL)
}

func (c *Catalog) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	c.rdb.Del(ctx, catalogKey)
}
