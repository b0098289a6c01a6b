package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoreiradev/fardamento-api/internal/application/dto"
	"github.com/jmoreiradev/fardamento-api/internal/domain"
	"github.com/jmoreiradev/fardamento-api/internal/domain/entity"
	"github.com/jmoreiradev/fardamento-api/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD para tipos de item e suas variações.
type ItemUseCase struct {
	typeRepo    repository.ItemTypeRepository
	variantRepo repository.ItemVariantRepository
}

// NewItemUseCase constrói o caso de uso.
func NewItemUseCase(typeRepo repository.ItemTypeRepository, variantRepo repository.ItemVariantRepository) *ItemUseCase {
	return &ItemUseCase{typeRepo: typeRepo, variantRepo: variantRepo}
}

// CreateType cria um tipo de item.
func (uc *ItemUseCase) CreateType(in dto.CreateItemTypeRequest) (*dto.ItemTypeResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	itemType := &entity.ItemType{ID: uuid.New().String(), Name: in.Name, CreatedAt: now, UpdatedAt: now}
	if err := uc.typeRepo.Create(itemType); err != nil {
		return nil, err
	}
	return toItemTypeResponse(itemType), nil
}

// ListTypes lista tipos de item.
func (uc *ItemUseCase) ListTypes(page dto.PageRequest) ([]*dto.ItemTypeResponse, error) {
	page.DefaultPage()
	types, err := uc.typeRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ItemTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, toItemTypeResponse(t))
	}
	return out, nil
}

// CreateVariant cria uma variação de um tipo existente.
func (uc *ItemUseCase) CreateVariant(in dto.CreateItemVariantRequest) (*dto.ItemVariantResponse, error) {
	if in.ItemTypeID == "" || in.Size == "" {
		return nil, domain.ErrInvalidInput
	}
	gender := in.Gender
	if gender == "" {
		gender = entity.GenderUnisex
	}
	if gender != entity.GenderMale && gender != entity.GenderFemale && gender != entity.GenderUnisex {
		return nil, domain.ErrInvalidInput
	}
	itemType, err := uc.typeRepo.GetByID(in.ItemTypeID)
	if err != nil {
		return nil, err
	}
	if itemType == nil {
		return nil, domain.ErrInvalidReference
	}
	now := time.Now()
	variant := &entity.ItemVariant{
		ID:         uuid.New().String(),
		ItemTypeID: in.ItemTypeID,
		Size:       in.Size,
		Gender:     gender,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.variantRepo.Create(variant); err != nil {
		return nil, err
	}
	return toItemVariantResponse(variant), nil
}

// GetVariant obtém uma variação por ID.
func (uc *ItemUseCase) GetVariant(id string) (*dto.ItemVariantResponse, error) {
	variant, err := uc.variantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, domain.ErrNotFound
	}
	return toItemVariantResponse(variant), nil
}

// ListVariants lista variações.
func (uc *ItemUseCase) ListVariants(page dto.PageRequest) ([]*dto.ItemVariantResponse, error) {
	page.DefaultPage()
	variants, err := uc.variantRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ItemVariantResponse, 0, len(variants))
	for _, v := range variants {
		out = append(out, toItemVariantResponse(v))
	}
	return out, nil
}

func toItemTypeResponse(t *entity.ItemType) *dto.ItemTypeResponse {
	return &dto.ItemTypeResponse{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt}
}

func toItemVariantResponse(v *entity.ItemVariant) *dto.ItemVariantResponse {
	return &dto.ItemVariantResponse{ID: v.ID, ItemTypeID: v.ItemTypeID, Size: v.Size, Gender: v.Gender, CreatedAt: v.CreatedAt}
}
