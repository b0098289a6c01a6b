package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmoreiradev/fardamento-api/internal/application/dto"
	"github.com/jmoreiradev/fardamento-api/internal/application/usecase"
)

// StockHandler consulta de posições de estoque (protegido).
type StockHandler struct {
	uc *usecase.StockQueryUseCase
}

// NewStockHandler constrói o handler.
func NewStockHandler(uc *usecase.StockQueryUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Posições de estoque de uma unidade
// @Description  Lista total, reservado e disponível por variação na unidade informada
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  true   "ID da unidade"
// @Param        limit        query  int     false  "Limite de itens"
// @Param        offset       query  int     false  "Deslocamento"
// @Success      200  {array}   dto.StockRecordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	locationID := c.Query("location_id")
	if locationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "location_id é obrigatório"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginação inválida"})
	}
	records, err := h.uc.ListByLocation(locationID, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(records)
}
