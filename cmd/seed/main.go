// seed puebla el catálogo de ubicaciones (Colombia) y unos usuarios de
// demostración. Pensado para entornos de desarrollo; las inserciones son
// idempotentes (ON CONFLICT DO NOTHING).
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jmontoya/directorio-usuarios/internal/infrastructure/postgres"
	"github.com/jmontoya/directorio-usuarios/pkg/config"
)

type department struct {
	id             int64
	name           string
	municipalities map[int64]string
}

var colombia = map[int64]department{
	1: {1, "Antioquia", map[int64]string{1: "Medellín", 2: "Envigado", 3: "Rionegro"}},
	2: {2, "Cundinamarca", map[int64]string{4: "Bogotá D.C.", 5: "Soacha", 6: "Chía"}},
	3: {3, "Valle del Cauca", map[int64]string{7: "Cali", 8: "Palmira", 9: "Buenaventura"}},
	4: {4, "Atlántico", map[int64]string{10: "Barranquilla", 11: "Soledad"}},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx,
		`INSERT INTO countries (id, name, iso_code) VALUES (1, 'Colombia', 'CO')
		 ON CONFLICT (id) DO NOTHING`); err != nil {
		fail("insertar país: %v", err)
	}
	for _, d := range colombia {
		if _, err := pool.Exec(ctx,
			`INSERT INTO departments (id, country_id, name) VALUES ($1, 1, $2)
			 ON CONFLICT (id) DO NOTHING`, d.id, d.name); err != nil {
			fail("insertar departamento %s: %v", d.name, err)
		}
		for id, name := range d.municipalities {
			if _, err := pool.Exec(ctx,
				`INSERT INTO municipalities (id, department_id, name) VALUES ($1, $2, $3)
				 ON CONFLICT (id) DO NOTHING`, id, d.id, name); err != nil {
				fail("insertar municipio %s: %v", name, err)
			}
		}
	}

	// Reubicar las secuencias después de insertar con ids explícitos.
	for _, table := range []string{"countries", "departments", "municipalities"} {
		if _, err := pool.Exec(ctx, fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT COALESCE(MAX(id), 1) FROM %s))`,
			table, table)); err != nil {
			fail("ajustar secuencia de %s: %v", table, err)
		}
	}

	demo := [][4]interface{}{
		{"María Gómez", "3001234567", "Cra 43A #1-50", []int64{1, 1, 1}},
		{"Andrés Pérez", "3109876543", "Cl 26 #68-35", []int64{1, 2, 4}},
	}
	for _, u := range demo {
		loc := u[3].([]int64)
		if _, err := pool.Exec(ctx,
			`INSERT INTO users (name, phone, address, country_id, department_id, municipality_id)
			 SELECT $1, $2, $3, $4, $5, $6
			 WHERE NOT EXISTS (SELECT 1 FROM users WHERE phone = $2)`,
			u[0], u[1], u[2], loc[0], loc[1], loc[2]); err != nil {
			fail("insertar usuario demo: %v", err)
		}
	}

	fmt.Println("catálogo y usuarios demo cargados")
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
