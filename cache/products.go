package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/Kimanzi/duka-api/models"
	"github.com/redis/go-redis/v9"
)

const (
	productListKey = "products:list"
	productListTTL = 5 * time.Minute
)

// ProductCache keeps the unfiltered product list in Redis so the catalog
// landing page does not hit MySQL on every request. A nil client disables
// caching entirely, which is how tests run.
type ProductCache struct {
	rdb *redis.Client
}

func NewProductCache(rdb *redis.Client) *ProductCache {
	return &ProductCache{rdb: rdb}
}

func (c *ProductCache) Get(ctx context.Context) ([]models.Product, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	payload, err := c.rdb.Get(ctx, productListKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Println("Failed to read product cache:", err)
		}
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal(payload, &products); err != nil {
		log.Println("Failed to decode product cache:", err)
		return nil, false
	}
	return products, true
}

func (c *ProductCache) Set(ctx context.Context, products []models.Product) {
	if c == nil || c.rdb == nil {
		return
	}

	payload, err := json.Marshal(products)
	if err != nil {
		log.Println("Failed to encode product cache:", err)
		return
	}
	if err := c.rdb.Set(ctx, productListKey, payload, productListTTL).Err(); err != nil {
		log.Println("Failed to write product cache:", err)
	}
}

func (c *ProductCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, productListKey).Err(); err != nil {
		log.Println("Failed to invalidate product cache:", err)
	}
}
