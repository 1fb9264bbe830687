// Package cache decora el catálogo de ubicaciones con Redis. El catálogo es
// dato de referencia que casi nunca cambia: candidato natural a caché con TTL.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmontoya/directorio-usuarios/internal/domain/entity"
	"github.com/jmontoya/directorio-usuarios/internal/domain/repository"
)

var _ repository.LocationRepository = (*CachedLocationRepo)(nil)

// CachedLocationRepo envuelve un LocationRepository con un caché Redis.
// El caché es best-effort: cualquier fallo de Redis cae al repositorio interno
// sin propagar el error. Con cliente nil se comporta como el interno.
type CachedLocationRepo struct {
	inner repository.LocationRepository
	rdb   *redis.Client
	ttl   time.Duration
}

// NewCachedLocationRepository construye el decorador. ttl <= 0 usa una hora.
func NewCachedLocationRepository(inner repository.LocationRepository, rdb *redis.Client, ttl time.Duration) *CachedLocationRepo {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &CachedLocationRepo{inner: inner, rdb: rdb, ttl: ttl}
}

// Countries lista países, sirviendo de Redis cuando hay entrada vigente.
func (r *CachedLocationRepo) Countries() ([]entity.Country, error) {
	var list []entity.Country
	if r.lookup(countriesKey(), &list) {
		return list, nil
	}
	list, err := r.inner.Countries()
	if err != nil {
		return nil, err
	}
	r.store(countriesKey(), list)
	return list, nil
}

// Departments lista los departamentos de un país.
func (r *CachedLocationRepo) Departments(countryID int64) ([]entity.Department, error) {
	var list []entity.Department
	if r.lookup(departmentsKey(countryID), &list) {
		return list, nil
	}
	list, err := r.inner.Departments(countryID)
	if err != nil {
		return nil, err
	}
	r.store(departmentsKey(countryID), list)
	return list, nil
}

// Municipalities lista los municipios de un departamento.
func (r *CachedLocationRepo) Municipalities(departmentID int64) ([]entity.Municipality, error) {
	var list []entity.Municipality
	if r.lookup(municipalitiesKey(departmentID), &list) {
		return list, nil
	}
	list, err := r.inner.Municipalities(departmentID)
	if err != nil {
		return nil, err
	}
	r.store(municipalitiesKey(departmentID), list)
	return list, nil
}

// lookup intenta leer y decodificar una entrada; false en miss o fallo.
func (r *CachedLocationRepo) lookup(key string, dest interface{}) bool {
	if r.rdb == nil {
		return false
	}
	payload, err := r.rdb.Get(context.Background(), key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(payload, dest) == nil
}

// store escribe una entrada con TTL; los fallos de Redis se ignoran.
func (r *CachedLocationRepo) store(key string, value interface{}) {
	if r.rdb == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	r.rdb.Set(context.Background(), key, payload, r.ttl)
}

func countriesKey() string { return "locations:countries" }

func departmentsKey(countryID int64) string {
	return fmt.Sprintf("locations:departments:%d", countryID)
}

func municipalitiesKey(departmentID int64) string {
	return fmt.Sprintf("locations:municipalities:%d", departmentID)
}
