package finisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	protocolsCacheExpireSeconds = 5 * 60
	protocolsCacheKey           = "protocols::all"
)

// Catalog serves the mobility protocol definitions. They change rarely
// (admin edits only), so reads go through a small in-memory cache.
type Catalog struct {
	repo  protocolsRepo
	cache *freecache.Cache
}

func NewCatalog(repo protocolsRepo) *Catalog {
	megabyte := 1024 * 1024
	return &Catalog{
		repo:  repo,
		cache: freecache.NewCache(1 * megabyte),
	}
}

func (c *Catalog) ListProtocols(ctx context.Context) ([]Protocol, error) {
	if protocolsBytes, err := c.cache.Get([]byte(protocolsCacheKey)); err == nil {
		var protocols []Protocol
		if err = json.Unmarshal(protocolsBytes, &protocols); err == nil {
			log.Tracef("found %d protocols in cache", len(protocols))
			return protocols, nil
		}
		log.Errorf("failed to unmarshal protocols from cache: %s", err)
	}

	protocols, err := c.repo.ListProtocols(ctx)
	if err != nil {
		return nil, err
	}

	protocolsBytes, err := json.Marshal(protocols)
	if err != nil {
		log.Errorf("failed to marshal protocols for cache: %s", err)
		return protocols, nil
	}
	if err := c.cache.Set([]byte(protocolsCacheKey), protocolsBytes, protocolsCacheExpireSeconds); err != nil {
		log.Errorf("failed to write protocols cache: %s", err)
	}

	return protocols, nil
}

func (c *Catalog) GetProtocol(ctx context.Context, id int) (*Protocol, error) {
	cacheKey := fmt.Sprintf("protocols::%d", id)
	if protocolBytes, err := c.cache.Get([]byte(cacheKey)); err == nil {
		var protocol Protocol
		if err = json.Unmarshal(protocolBytes, &protocol); err == nil {
			return &protocol, nil
		}
		log.Errorf("failed to unmarshal protocol %d from cache: %s", id, err)
	}

	protocol, err := c.repo.GetProtocol(ctx, id)
	if err != nil {
		return nil, err
	}

	protocolBytes, err := json.Marshal(protocol)
	if err != nil {
		log.Errorf("failed to marshal protocol %d for cache: %s", id, err)
		return protocol, nil
	}
	if err := c.cache.Set([]byte(cacheKey), protocolBytes, protocolsCacheExpireSeconds); err != nil {
		log.Errorf("failed to write protocol %d cache: %s", id, err)
	}

	return protocol, nil
}
