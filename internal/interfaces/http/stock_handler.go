package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodegas-api/internal/application/dto"
	"github.com/jhoicas/Bodegas-api/internal/application/inventory"
)

// StockHandler maneja las operaciones de stock fuera del motor de traslados (protegido).
type StockHandler struct {
	uc *inventory.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// RegisterOperation godoc
// @Summary      Registrar operación de stock
// @Description  Aplica una entrada (RECEIVE), salida (SALE) o ajuste (ADJUSTMENT)
//	sobre un SKU en una bodega y deja la entrada correspondiente en el ledger.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockOperationRequest  true  "warehouse_id, item_sku, kind, quantity"
// @Success      201   {object}  dto.StockOperationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *StockHandler) RegisterOperation(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.StockOperationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.RegisterOperation(c.Context(), inventory.StockOperationInput{
		CompanyID:   companyID,
		ActorID:     userID,
		WarehouseID: in.WarehouseID,
		ItemSKU:     in.ItemSKU,
		Kind:        in.Kind,
		Quantity:    in.Quantity,
		Note:        in.Note,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.StockOperationResponse{
		LedgerEntryID:    result.LedgerEntryID,
		ItemSKU:          result.ItemSKU,
		WarehouseName:    result.WarehouseName,
		PreviousQuantity: result.PreviousQuantity,
		NewQuantity:      result.NewQuantity,
		Date:             result.Date,
	})
}
