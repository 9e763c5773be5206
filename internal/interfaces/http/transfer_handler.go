package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodegas-api/internal/application/dto"
	"github.com/jhoicas/Bodegas-api/internal/application/transfer"
)

// TransferHandler maneja los traslados entre bodegas (protegido).
type TransferHandler struct {
	engine      *transfer.TransferUseCase
	coordinator *transfer.BulkCoordinator
}

// NewTransferHandler construye el handler.
func NewTransferHandler(engine *transfer.TransferUseCase, coordinator *transfer.BulkCoordinator) *TransferHandler {
	return &TransferHandler{engine: engine, coordinator: coordinator}
}

// Transfer godoc
// @Summary      Trasladar stock entre bodegas
// @Description  Mueve unidades de un SKU de la bodega origen a la destino de forma
//	atómica: débito, crédito, capacidades y entrada de ledger en una sola transacción.
//
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "item_sku, source_warehouse_id, destination_warehouse_id, quantity"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/transfers [post]
func (h *TransferHandler) Transfer(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.engine.Transfer(c.Context(), toTransferInput(companyID, userID, in))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toTransferResponse(result))
}

// BulkTransfer godoc
// @Summary      Trasladar stock en lote
// @Description  Procesa una lista de traslados uno a uno. Cada línea es su propia
//	transacción: las que fallan no afectan a las demás y se reportan con su índice.
//
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkTransferRequest  true  "lista no vacía de traslados"
// @Success      200   {object}  dto.BulkTransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/transfers/bulk [post]
func (h *TransferHandler) BulkTransfer(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.BulkTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	inputs := make([]transfer.TransferInput, 0, len(in.Transfers))
	for _, req := range in.Transfers {
		inputs = append(inputs, toTransferInput(companyID, userID, req))
	}
	result, err := h.coordinator.BulkTransfer(c.Context(), inputs)
	if err != nil {
		return writeDomainError(c, err)
	}

	out := dto.BulkTransferResponse{
		Total:               result.Total,
		SuccessfulTransfers: make([]dto.TransferResponse, 0, len(result.SuccessfulTransfers)),
		FailedTransfers:     make([]dto.BulkTransferFailure, 0, len(result.FailedTransfers)),
	}
	for _, r := range result.SuccessfulTransfers {
		out.SuccessfulTransfers = append(out.SuccessfulTransfers, toTransferResponse(r))
	}
	for _, f := range result.FailedTransfers {
		out.FailedTransfers = append(out.FailedTransfers, dto.BulkTransferFailure{
			Index:   f.Index,
			ItemSKU: f.SKU,
			Message: f.Message,
		})
	}
	return c.JSON(out)
}

func toTransferInput(companyID, userID string, in dto.TransferRequest) transfer.TransferInput {
	return transfer.TransferInput{
		CompanyID:              companyID,
		ActorID:                userID,
		ItemSKU:                in.ItemSKU,
		SourceWarehouseID:      in.SourceWarehouseID,
		DestinationWarehouseID: in.DestinationWarehouseID,
		Quantity:               in.Quantity,
		Note:                   in.Note,
	}
}

func toTransferResponse(r *transfer.TransferResult) dto.TransferResponse {
	return dto.TransferResponse{
		LedgerEntryID:            r.LedgerEntryID,
		ItemSKU:                  r.ItemSKU,
		ItemName:                 r.ItemName,
		SourceWarehouseName:      r.SourceWarehouseName,
		DestinationWarehouseName: r.DestinationWarehouseName,
		Quantity:                 r.Quantity,
		PreviousQuantity:         r.PreviousQuantity,
		NewQuantity:              r.NewQuantity,
		Date:                     r.Date,
		ActorID:                  r.ActorID,
		Note:                     r.Note,
		Summary:                  r.Summary,
	}
}
