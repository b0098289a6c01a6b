package repository

import "github.com/jmoreiradev/fardamento-api/internal/domain/entity"

// LocationRepository porta de persistência para unidades organizacionais.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	Update(location *entity.Location) error
	List(limit, offset int) ([]*entity.Location, error)
}

// ItemTypeRepository porta de persistência para tipos de item.
type ItemTypeRepository interface {
	Create(itemType *entity.ItemType) error
	GetByID(id string) (*entity.ItemType, error)
	Update(itemType *entity.ItemType) error
	List(limit, offset int) ([]*entity.ItemType, error)
}

// ItemVariantRepository porta de persistência para variações de item.
type ItemVariantRepository interface {
	Create(variant *entity.ItemVariant) error
	GetByID(id string) (*entity.ItemVariant, error)
	// GetByIDs resolve um lote de ids em uma única consulta; ids ausentes
	// simplesmente não aparecem no resultado.
	GetByIDs(ids []string) ([]*entity.ItemVariant, error)
	Update(variant *entity.ItemVariant) error
	List(limit, offset int) ([]*entity.ItemVariant, error)
}

// EmployeeRepository porta de persistência para colaboradores.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	Update(employee *entity.Employee) error
	List(limit, offset int) ([]*entity.Employee, error)
}
