package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoreiradev/fardamento-api/internal/application/dto"
	"github.com/jmoreiradev/fardamento-api/internal/domain"
	"github.com/jmoreiradev/fardamento-api/internal/domain/entity"
	"github.com/jmoreiradev/fardamento-api/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD para colaboradores, incluindo a consulta
// do saldo de itens em posse.
type EmployeeUseCase struct {
	repo         repository.EmployeeRepository
	locationRepo repository.LocationRepository
	balanceRepo  repository.EmployeeBalanceRepository
}

// NewEmployeeUseCase constrói o caso de uso.
func NewEmployeeUseCase(
	repo repository.EmployeeRepository,
	locationRepo repository.LocationRepository,
	balanceRepo repository.EmployeeBalanceRepository,
) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, locationRepo: locationRepo, balanceRepo: balanceRepo}
}

// Create cria um colaborador.
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Name == "" || in.Registration == "" {
		return nil, domain.ErrInvalidInput
	}
	location, err := uc.locationRepo.GetByID(in.LocationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrInvalidReference
	}
	now := time.Now()
	employee := &entity.Employee{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Registration: in.Registration,
		LocationID:   in.LocationID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// GetByID obtém um colaborador por ID.
func (uc *EmployeeUseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(employee), nil
}

// Update atualiza um colaborador.
func (uc *EmployeeUseCase) Update(id string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		employee.Name = in.Name
	}
	if in.Registration != "" {
		employee.Registration = in.Registration
	}
	if in.LocationID != "" {
		location, err := uc.locationRepo.GetByID(in.LocationID)
		if err != nil {
			return nil, err
		}
		if location == nil {
			return nil, domain.ErrInvalidReference
		}
		employee.LocationID = in.LocationID
	}
	employee.UpdatedAt = time.Now()
	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// List lista colaboradores com paginação.
func (uc *EmployeeUseCase) List(page dto.PageRequest) ([]*dto.EmployeeResponse, error) {
	page.DefaultPage()
	employees, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeResponse, 0, len(employees))
	for _, employee := range employees {
		out = append(out, toEmployeeResponse(employee))
	}
	return out, nil
}

// Balances lista o saldo de itens em posse do colaborador.
func (uc *EmployeeUseCase) Balances(employeeID string) ([]*dto.EmployeeBalanceResponse, error) {
	employee, err := uc.repo.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	balances, err := uc.balanceRepo.ListByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeBalanceResponse, 0, len(balances))
	for _, b := range balances {
		out = append(out, &dto.EmployeeBalanceResponse{
			ItemVariantID: b.ItemVariantID,
			Quantity:      b.Quantity,
			UpdatedAt:     b.UpdatedAt,
		})
	}
	return out, nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		Registration: e.Registration,
		LocationID:   e.LocationID,
		CreatedAt:    e.CreatedAt,
	}
}
