package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmoreiradev/fardamento-api/internal/application/damage"
	"github.com/jmoreiradev/fardamento-api/internal/application/dto"
)

// DamageHandler trata o registro e a consulta de avarias (protegido).
type DamageHandler struct {
	uc *damage.UseCase
}

// NewDamageHandler constrói o handler.
func NewDamageHandler(uc *damage.UseCase) *DamageHandler {
	return &DamageHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar avarias sobre uma devolução concluída
// @Tags         damages
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da devolução"
// @Param        body  body  dto.RegisterDamageRequest  true  "itens avariados"
// @Success      201   {array}   dto.DamageRecordResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/damages [post]
func (h *DamageHandler) Register(c *fiber.Ctx) error {
	actor := GetActor(c)
	if actor.ID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterDamageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	records, err := h.uc.RegisterDamage(c.Context(), c.Params("id"), in, actor)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.DamageRecordResponse, 0, len(records))
	for _, record := range records {
		out = append(out, damage.ToResponse(record))
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByMovement godoc
// @Summary      Listar avarias de uma devolução
// @Tags         damages
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da devolução"
// @Success      200  {array}   dto.DamageRecordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/damages [get]
func (h *DamageHandler) ListByMovement(c *fiber.Ctx) error {
	records, err := h.uc.ListByMovement(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.DamageRecordResponse, 0, len(records))
	for _, record := range records {
		out = append(out, damage.ToResponse(record))
	}
	return c.JSON(out)
}
