package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmoreiradev/fardamento-api/internal/application/dto"
	"github.com/jmoreiradev/fardamento-api/internal/application/usecase"
)

// LocationHandler CRUD de unidades organizacionais (protegido).
type LocationHandler struct {
	uc *usecase.LocationUseCase
}

// NewLocationHandler constrói o handler.
func NewLocationHandler(uc *usecase.LocationUseCase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

// Create cria uma unidade.
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	location, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(location)
}

// GetByID detalha uma unidade.
func (h *LocationHandler) GetByID(c *fiber.Ctx) error {
	location, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(location)
}

// Update atualiza uma unidade.
func (h *LocationHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	location, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(location)
}

// List lista unidades.
func (h *LocationHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginação inválida"})
	}
	locations, err := h.uc.List(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(locations)
}

// ItemHandler CRUD de tipos de item e variações (protegido).
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler constrói o handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// CreateType cria um tipo de item.
func (h *ItemHandler) CreateType(c *fiber.Ctx) error {
	var in dto.CreateItemTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	itemType, err := h.uc.CreateType(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(itemType)
}

// ListTypes lista tipos de item.
func (h *ItemHandler) ListTypes(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginação inválida"})
	}
	types, err := h.uc.ListTypes(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(types)
}

// CreateVariant cria uma variação.
func (h *ItemHandler) CreateVariant(c *fiber.Ctx) error {
	var in dto.CreateItemVariantRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	variant, err := h.uc.CreateVariant(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(variant)
}

// GetVariant detalha uma variação.
func (h *ItemHandler) GetVariant(c *fiber.Ctx) error {
	variant, err := h.uc.GetVariant(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(variant)
}

// ListVariants lista variações.
func (h *ItemHandler) ListVariants(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginação inválida"})
	}
	variants, err := h.uc.ListVariants(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(variants)
}

// EmployeeHandler CRUD de colaboradores + consulta de saldo (protegido).
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler constrói o handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// Create cria um colaborador.
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	employee, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(employee)
}

// GetByID detalha um colaborador.
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	employee, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(employee)
}

// Update atualiza um colaborador.
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	employee, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(employee)
}

// List lista colaboradores.
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginação inválida"})
	}
	employees, err := h.uc.List(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(employees)
}

// Balances godoc
// @Summary      Saldo de itens em posse de um colaborador
// @Tags         employees
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do colaborador"
// @Success      200  {array}   dto.EmployeeBalanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id}/balances [get]
func (h *EmployeeHandler) Balances(c *fiber.Ctx) error {
	balances, err := h.uc.Balances(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(balances)
}
