package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"flight-booking/internal/data/entity"
	"flight-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// FlightCache keeps recent search results so repeated traveler queries
// skip the store. Availability it serves is advisory; booking re-reads.
type FlightCache struct {
	client    *redis.Client
	searchTTL time.Duration
}

func NewFlightCache(cfg utils.RedisConfig) *FlightCache {
	return &FlightCache{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		searchTTL: time.Duration(cfg.SearchTTLMins) * time.Minute,
	}
}

func (c *FlightCache) GetSearch(ctx context.Context, fromPlace, toPlace, travelDate string) ([]*entity.Flight, error) {
	data, err := c.client.Get(ctx, searchKey(fromPlace, toPlace, travelDate)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []*entity.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *FlightCache) SetSearch(ctx context.Context, fromPlace, toPlace, travelDate string, flights []*entity.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, searchKey(fromPlace, toPlace, travelDate), payload, c.searchTTL).Err()
}

func (c *FlightCache) Close() error {
	return c.client.Close()
}

func searchKey(fromPlace, toPlace, travelDate string) string {
	return fmt.Sprintf("search:%s:%s:%s", fromPlace, toPlace, travelDate)
}
