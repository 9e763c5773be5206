package ledger

import (
	"time"

	"github.com/jhoicas/Bodegas-api/internal/application/dto"
	"github.com/jhoicas/Bodegas-api/internal/domain"
	"github.com/jhoicas/Bodegas-api/internal/domain/entity"
	"github.com/jhoicas/Bodegas-api/internal/domain/repository"
)

// QueryUseCase proyecciones de solo lectura sobre el ledger para historial y
// auditoría. No participa en el camino de escritura del motor.
type QueryUseCase struct {
	repo repository.LedgerRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(repo repository.LedgerRepository) *QueryUseCase {
	return &QueryUseCase{repo: repo}
}

// List consulta el ledger con filtros por item, SKU, bodega (origen o destino),
// actor, tipo y rango de fechas (RFC 3339), con paginación.
func (uc *QueryUseCase) List(companyID string, in dto.LedgerQueryRequest) (*dto.LedgerListResponse, error) {
	filter := repository.LedgerFilter{
		ItemID:      in.ItemID,
		SKU:         in.SKU,
		WarehouseID: in.WarehouseID,
		ActorID:     in.ActorID,
		Kind:        in.Kind,
	}
	if in.From != "" {
		from, err := time.Parse(time.RFC3339, in.From)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.From = &from
	}
	if in.To != "" {
		to, err := time.Parse(time.RFC3339, in.To)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.To = &to
	}

	if in.Limit <= 0 {
		in.Limit = 20
	}
	if in.Limit > 100 {
		in.Limit = 100
	}
	if in.Offset < 0 {
		in.Offset = 0
	}

	list, err := uc.repo.List(companyID, filter, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	entries := make([]dto.LedgerEntryResponse, 0, len(list))
	for _, e := range list {
		entries = append(entries, *toLedgerEntryResponse(e))
	}
	return &dto.LedgerListResponse{
		Entries: entries,
		Page:    dto.PageResponse{Limit: in.Limit, Offset: in.Offset},
	}, nil
}

// GetByID obtiene una entrada del ledger.
func (uc *QueryUseCase) GetByID(companyID, id string) (*dto.LedgerEntryResponse, error) {
	entry, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	if entry.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return toLedgerEntryResponse(entry), nil
}

func toLedgerEntryResponse(e *entity.LedgerEntry) *dto.LedgerEntryResponse {
	return &dto.LedgerEntryResponse{
		ID:                     e.ID,
		ItemID:                 e.ItemID,
		SKU:                    e.SKU,
		Kind:                   e.Kind,
		QuantityChange:         e.QuantityChange,
		PreviousQuantity:       e.PreviousQuantity,
		NewQuantity:            e.NewQuantity,
		SourceWarehouseID:      e.SourceWarehouseID,
		DestinationWarehouseID: e.DestinationWarehouseID,
		ActorID:                e.ActorID,
		Note:                   e.Note,
		CreatedAt:              e.CreatedAt,
	}
}
