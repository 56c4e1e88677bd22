package store

import (
	"errors"

	"gorm.io/gorm"
)

// Store concentra todo el acceso a datos de WellBloom. Los controladores
// nunca tocan gorm directamente: reciben un Store inyectado y trabajan con
// los errores tipados de errors.go.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Ping verifica la conexión con la base de datos
func (s *Store) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Pagina parámetros de paginación por límite/desplazamiento
type Pagina struct {
	Limit  int
	Offset int
}

// Normalizar aplica los valores por defecto del API original
func (p Pagina) Normalizar() Pagina {
	if p.Limit <= 0 {
		p.Limit = 10
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// filtro predicado de igualdad que se acumula sobre una consulta; los
// listados filtrados componen su WHERE a partir de una lista de estos en
// lugar de armar SQL a mano en cada handler.
type filtro struct {
	condicion string
	valor     interface{}
}

func aplicarFiltros(q *gorm.DB, filtros []filtro) *gorm.DB {
	for _, f := range filtros {
		if f.valor != nil {
			q = q.Where(f.condicion, f.valor)
		} else {
			q = q.Where(f.condicion)
		}
	}
	return q
}

// esNoEncontrado traduce el error de fila ausente de gorm al sentinel propio
func esNoEncontrado(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
