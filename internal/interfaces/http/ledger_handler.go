package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodegas-api/internal/application/dto"
	"github.com/jhoicas/Bodegas-api/internal/application/ledger"
)

// LedgerHandler expone el ledger de actividad como proyección de solo lectura (protegido).
type LedgerHandler struct {
	uc *ledger.QueryUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.QueryUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// List godoc
// @Summary      Consultar el ledger de actividad
// @Description  Filtros opcionales por item, SKU, bodega (origen o destino), actor,
//	tipo y rango de fechas RFC 3339. Orden: más reciente primero.
//
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        sku           query  string  false  "SKU"
// @Param        warehouse_id  query  string  false  "Bodega origen o destino"
// @Param        kind          query  string  false  "RECEIVE | TRANSFER | SALE | ADJUSTMENT | UPDATE | DELETE"
// @Param        from          query  string  false  "Fecha inicial RFC 3339"
// @Param        to            query  string  false  "Fecha final RFC 3339"
// @Param        limit         query  int     false  "Límite"  default(20)
// @Param        offset        query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.LedgerListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ledger [get]
func (h *LedgerHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.LedgerQueryRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query params inválidos"})
	}
	out, err := h.uc.List(companyID, in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener una entrada del ledger
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la entrada"
// @Success      200  {object}  dto.LedgerEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ledger/{id} [get]
func (h *LedgerHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	id := c.Params("id")
	out, err := h.uc.GetByID(companyID, id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}
