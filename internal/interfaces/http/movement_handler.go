package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmoreiradev/fardamento-api/internal/application/dto"
	"github.com/jmoreiradev/fardamento-api/internal/application/movement"
)

// MovementHandler trata as requisições HTTP de movimentações (protegido).
type MovementHandler struct {
	uc *movement.UseCase
}

// NewMovementHandler constrói o handler.
func NewMovementHandler(uc *movement.UseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Create godoc
// @Summary      Criar entrega ou devolução
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "kind (ENTREGA|DEVOLUCAO), location_id, employee_id, lines"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	actor := GetActor(c)
	if actor.ID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	mov, err := h.uc.CreateMovement(c.Context(), in, actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(movement.ToResponse(mov))
}

// AdvanceStatus godoc
// @Summary      Avançar o status de uma movimentação
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da movimentação"
// @Param        body  body  dto.AdvanceStatusRequest  true  "status destino"
// @Success      200   {object}  dto.MovementResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/status [post]
func (h *MovementHandler) AdvanceStatus(c *fiber.Ctx) error {
	actor := GetActor(c)
	if actor.ID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.AdvanceStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	mov, err := h.uc.AdvanceStatus(c.Context(), c.Params("id"), in.Status, actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(movement.ToResponse(mov))
}

// List godoc
// @Summary      Listar movimentações
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  false  "Filtrar por unidade"
// @Param        kind         query  string  false  "ENTREGA | DEVOLUCAO"
// @Param        status       query  string  false  "CREATED | IN_TRANSIT | COMPLETED | CANCELED"
// @Param        from         query  string  false  "Data inicial (2006-01-02)"
// @Param        to           query  string  false  "Data final (2006-01-02)"
// @Param        q            query  string  false  "Busca pelo nome do colaborador"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var in dto.ListMovementsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	movements, err := h.uc.List(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, movement.ToResponse(m))
	}
	return c.JSON(fiber.Map{"total": len(out), "movements": out})
}

// GetByID godoc
// @Summary      Detalhar uma movimentação (linhas + eventos)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da movimentação"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	mov, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(movement.ToResponse(mov))
}
