package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodegas-api/internal/application/dto"
	"github.com/jhoicas/Bodegas-api/internal/domain"
	"github.com/jhoicas/Bodegas-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Bodegas-api/internal/domain/inventory"
	"github.com/jhoicas/Bodegas-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD para bodegas. La capacidad usada
// (CurrentCapacity) solo la mutan el motor de traslados y las operaciones de
// stock; aquí se crea, consulta y edita el resto de campos.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// Create crea una nueva bodega con capacidad usada en cero.
func (uc *WarehouseUseCase) Create(companyID string, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.Name == "" || in.MaxCapacity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.AlertThresholdPercent < 0 || in.AlertThresholdPercent > 100 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:                    uuid.New().String(),
		CompanyID:             companyID,
		Name:                  in.Name,
		Location:              in.Location,
		MaxCapacity:           in.MaxCapacity,
		CurrentCapacity:       decimal.Zero,
		AlertThresholdPercent: in.AlertThresholdPercent,
		Active:                true,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := uc.repo.Create(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID obtiene una bodega por ID.
func (uc *WarehouseUseCase) GetByID(companyID, id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.get(companyID, id)
	if err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// Update actualiza nombre, ubicación, capacidad máxima, umbral o estado.
// Bajar MaxCapacity por debajo del volumen en uso se rechaza: rompería la
// invariante de capacidad.
func (uc *WarehouseUseCase) Update(companyID, id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.get(companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		warehouse.Name = *in.Name
	}
	if in.Location != nil {
		warehouse.Location = *in.Location
	}
	if in.MaxCapacity != nil {
		if in.MaxCapacity.LessThan(warehouse.CurrentCapacity) {
			return nil, &domain.InvalidOperationError{Reason: "capacidad máxima menor que el volumen en uso"}
		}
		warehouse.MaxCapacity = *in.MaxCapacity
	}
	if in.AlertThresholdPercent != nil {
		if *in.AlertThresholdPercent < 0 || *in.AlertThresholdPercent > 100 {
			return nil, domain.ErrInvalidInput
		}
		warehouse.AlertThresholdPercent = *in.AlertThresholdPercent
	}
	if in.Active != nil {
		warehouse.Active = *in.Active
	}
	warehouse.UpdatedAt = time.Now()
	if err := uc.repo.Update(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// List lista bodegas por empresa con paginación.
func (uc *WarehouseUseCase) List(companyID string, limit, offset int) (*dto.WarehouseListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Deactivate baja lógica de una bodega. Las bodegas inactivas no participan en traslados.
func (uc *WarehouseUseCase) Deactivate(companyID, id string) error {
	if _, err := uc.get(companyID, id); err != nil {
		return err
	}
	return uc.repo.Deactivate(id)
}

// AlertStatus devuelve el estado de alerta de capacidad de la bodega.
func (uc *WarehouseUseCase) AlertStatus(companyID, id string) (*dto.WarehouseAlertResponse, error) {
	warehouse, err := uc.get(companyID, id)
	if err != nil {
		return nil, err
	}
	usagePct := decimal.Zero
	if !warehouse.MaxCapacity.IsZero() {
		usagePct = warehouse.CurrentCapacity.Div(warehouse.MaxCapacity).Mul(decimal.NewFromInt(100)).Round(2)
	}
	resp := &dto.WarehouseAlertResponse{
		WarehouseID:           warehouse.ID,
		Name:                  warehouse.Name,
		MaxCapacity:           warehouse.MaxCapacity,
		CurrentCapacity:       warehouse.CurrentCapacity,
		UsagePercent:          usagePct,
		AlertThresholdPercent: warehouse.AlertThresholdPercent,
		AlertTriggered:        domaininv.IsAlertTriggered(warehouse),
	}
	if resp.AlertTriggered {
		resp.Message = fmt.Sprintf("la bodega %s alcanzó el %s%% de su capacidad", warehouse.Name, usagePct.String())
	}
	return resp, nil
}

func (uc *WarehouseUseCase) get(companyID, id string) (*entity.Warehouse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if warehouse.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return warehouse, nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:                    w.ID,
		CompanyID:             w.CompanyID,
		Name:                  w.Name,
		Location:              w.Location,
		MaxCapacity:           w.MaxCapacity,
		CurrentCapacity:       w.CurrentCapacity,
		AlertThresholdPercent: w.AlertThresholdPercent,
		Active:                w.Active,
		CreatedAt:             w.CreatedAt,
		UpdatedAt:             w.UpdatedAt,
	}
}
