package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmontoya/directorio-usuarios/internal/domain/entity"
	"github.com/jmontoya/directorio-usuarios/internal/infrastructure/cache"
)

// countingCatalog cuenta las llamadas que atraviesan el decorador.
type countingCatalog struct {
	countries, departments, municipalities int
}

func (c *countingCatalog) Countries() ([]entity.Country, error) {
	c.countries++
	return []entity.Country{{ID: 1, Name: "Colombia", IsoCode: "CO"}}, nil
}

func (c *countingCatalog) Departments(countryID int64) ([]entity.Department, error) {
	c.departments++
	return []entity.Department{{ID: 10, CountryID: countryID, Name: "Antioquia"}}, nil
}

func (c *countingCatalog) Municipalities(departmentID int64) ([]entity.Municipality, error) {
	c.municipalities++
	return []entity.Municipality{{ID: 100, DepartmentID: departmentID, Name: "Medellín"}}, nil
}

// Sin cliente Redis el decorador delega siempre al repositorio interno:
// mismo comportamiento, cero caché.
func TestSinRedis_DelegaAlInterno(t *testing.T) {
	inner := &countingCatalog{}
	repo := cache.NewCachedLocationRepository(inner, nil, time.Minute)

	for i := 0; i < 3; i++ {
		countries, err := repo.Countries()
		require.NoError(t, err)
		require.Len(t, countries, 1)
		assert.Equal(t, "Colombia", countries[0].Name)

		departments, err := repo.Departments(1)
		require.NoError(t, err)
		require.Len(t, departments, 1)
		assert.Equal(t, int64(1), departments[0].CountryID)

		municipalities, err := repo.Municipalities(10)
		require.NoError(t, err)
		require.Len(t, municipalities, 1)
		assert.Equal(t, "Medellín", municipalities[0].Name)
	}

	assert.Equal(t, 3, inner.countries)
	assert.Equal(t, 3, inner.departments)
	assert.Equal(t, 3, inner.municipalities)
}
