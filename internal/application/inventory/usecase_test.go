package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodegas-api/internal/application/inventory"
	"github.com/jhoicas/Bodegas-api/internal/domain"
	"github.com/jhoicas/Bodegas-api/internal/domain/entity"
	"github.com/jhoicas/Bodegas-api/internal/testutil"
)

const (
	testCompanyID = "00000000-0000-0000-0000-00000000000a"
	testActorID   = "00000000-0000-0000-0000-00000000000b"
)

// escenario base: una bodega activa con un item SKU-1 (cantidad 100, volumen 1).
func buildScenario() (*testutil.MemState, *inventory.StockUseCase) {
	s := testutil.NewMemState()
	s.Warehouses["wh-1"] = &entity.Warehouse{
		ID: "wh-1", CompanyID: testCompanyID, Name: "Bodega Central",
		MaxCapacity: decimal.NewFromInt(500), CurrentCapacity: decimal.NewFromInt(100),
		Active: true,
	}
	s.Items["item-1"] = &entity.Item{
		ID: "item-1", CompanyID: testCompanyID, WarehouseID: "wh-1",
		SKU: "SKU-1", Name: "Tornillo 3/8", Quantity: 100,
		VolumePerUnit: decimal.NewFromInt(1), Active: true,
	}
	runner := &testutil.MemTxRunner{State: s}
	return s, inventory.NewStockUseCase(runner)
}

func baseInput(kind string, qty int64) inventory.StockOperationInput {
	return inventory.StockOperationInput{
		CompanyID:   testCompanyID,
		ActorID:     testActorID,
		WarehouseID: "wh-1",
		ItemSKU:     "SKU-1",
		Kind:        kind,
		Quantity:    qty,
	}
}

func TestRegisterOperation_RECEIVESumaStockYCapacidad(t *testing.T) {
	s, uc := buildScenario()

	result, err := uc.RegisterOperation(context.Background(), baseInput(entity.LedgerKindRECEIVE, 30))

	require.NoError(t, err)
	assert.Equal(t, int64(100), result.PreviousQuantity)
	assert.Equal(t, int64(130), result.NewQuantity)
	assert.Equal(t, int64(130), s.Items["item-1"].Quantity)
	assert.True(t, s.Warehouses["wh-1"].CurrentCapacity.Equal(decimal.NewFromInt(130)))

	require.Len(t, s.Ledger, 1)
	entry := s.Ledger[0]
	assert.Equal(t, entity.LedgerKindRECEIVE, entry.Kind)
	assert.Equal(t, int64(30), entry.QuantityChange)
	require.NotNil(t, entry.DestinationWarehouseID)
	assert.Equal(t, "wh-1", *entry.DestinationWarehouseID)
	assert.Nil(t, entry.SourceWarehouseID)
}

func TestRegisterOperation_SALERestaStockYLiberaCapacidad(t *testing.T) {
	s, uc := buildScenario()

	result, err := uc.RegisterOperation(context.Background(), baseInput(entity.LedgerKindSALE, 40))

	require.NoError(t, err)
	assert.Equal(t, int64(60), result.NewQuantity)
	assert.Equal(t, int64(60), s.Items["item-1"].Quantity)
	assert.True(t, s.Warehouses["wh-1"].CurrentCapacity.Equal(decimal.NewFromInt(60)))

	require.Len(t, s.Ledger, 1)
	assert.Equal(t, int64(-40), s.Ledger[0].QuantityChange)
	assert.Nil(t, s.Ledger[0].SourceWarehouseID)
	assert.Nil(t, s.Ledger[0].DestinationWarehouseID)
}

func TestRegisterOperation_SALESinStockSuficiente(t *testing.T) {
	s, uc := buildScenario()

	_, err := uc.RegisterOperation(context.Background(), baseInput(entity.LedgerKindSALE, 150))

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "SKU-1", stockErr.SKU)
	assert.Equal(t, int64(100), stockErr.Available)
	assert.Equal(t, int64(150), stockErr.Requested)

	// nada cambió
	assert.Equal(t, int64(100), s.Items["item-1"].Quantity)
	assert.True(t, s.Warehouses["wh-1"].CurrentCapacity.Equal(decimal.NewFromInt(100)))
	assert.Empty(t, s.Ledger)
}

func TestRegisterOperation_ADJUSTMENTNegativo(t *testing.T) {
	s, uc := buildScenario()

	result, err := uc.RegisterOperation(context.Background(), baseInput(entity.LedgerKindADJUSTMENT, -25))

	require.NoError(t, err)
	assert.Equal(t, int64(75), result.NewQuantity)
	assert.True(t, s.Warehouses["wh-1"].CurrentCapacity.Equal(decimal.NewFromInt(75)))
	require.Len(t, s.Ledger, 1)
	assert.Equal(t, int64(-25), s.Ledger[0].QuantityChange)
}

func TestRegisterOperation_ADJUSTMENTNoPuedeDejarStockNegativo(t *testing.T) {
	s, uc := buildScenario()

	_, err := uc.RegisterOperation(context.Background(), baseInput(entity.LedgerKindADJUSTMENT, -120))

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(100), s.Items["item-1"].Quantity)
	assert.Empty(t, s.Ledger)
}

func TestRegisterOperation_RECEIVEExcedeCapacidad(t *testing.T) {
	s, uc := buildScenario()
	s.Warehouses["wh-1"].CurrentCapacity = decimal.NewFromInt(490)

	_, err := uc.RegisterOperation(context.Background(), baseInput(entity.LedgerKindRECEIVE, 20))

	var capErr *domain.CapacityExceededError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, "Bodega Central", capErr.WarehouseName)

	assert.Equal(t, int64(100), s.Items["item-1"].Quantity)
	assert.True(t, s.Warehouses["wh-1"].CurrentCapacity.Equal(decimal.NewFromInt(490)))
	assert.Empty(t, s.Ledger)
}

func TestRegisterOperation_ValidacionesDeEntrada(t *testing.T) {
	_, uc := buildScenario()

	tests := []struct {
		name  string
		input inventory.StockOperationInput
	}{
		{"tipo desconocido", baseInput("TRANSFER", 10)},
		{"RECEIVE con cantidad cero", baseInput(entity.LedgerKindRECEIVE, 0)},
		{"SALE con cantidad negativa", baseInput(entity.LedgerKindSALE, -5)},
		{"ADJUSTMENT con cantidad cero", baseInput(entity.LedgerKindADJUSTMENT, 0)},
		{"sin SKU", func() inventory.StockOperationInput {
			in := baseInput(entity.LedgerKindRECEIVE, 10)
			in.ItemSKU = ""
			return in
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.RegisterOperation(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRegisterOperation_BodegaInexistente(t *testing.T) {
	_, uc := buildScenario()
	in := baseInput(entity.LedgerKindRECEIVE, 10)
	in.WarehouseID = "wh-999"

	_, err := uc.RegisterOperation(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterOperation_BodegaDeOtraEmpresa(t *testing.T) {
	_, uc := buildScenario()
	in := baseInput(entity.LedgerKindRECEIVE, 10)
	in.CompanyID = "00000000-0000-0000-0000-0000000000ff"

	_, err := uc.RegisterOperation(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestReconcileCapacity_CorrigeCacheDerivado(t *testing.T) {
	s, _ := buildScenario()
	// el cache dice 100 pero el item real suma 100×1; forzamos deriva
	s.Warehouses["wh-1"].CurrentCapacity = decimal.NewFromInt(137)
	uc := inventory.NewReconcileUseCase(&testutil.MemTxRunner{State: s})

	result, err := uc.ReconcileCapacity(context.Background(), testCompanyID, "wh-1")

	require.NoError(t, err)
	assert.True(t, result.Corrected)
	assert.True(t, result.PreviousCapacity.Equal(decimal.NewFromInt(137)))
	assert.True(t, result.RecomputedCapacity.Equal(decimal.NewFromInt(100)))
	assert.True(t, s.Warehouses["wh-1"].CurrentCapacity.Equal(decimal.NewFromInt(100)))
}

func TestReconcileCapacity_CacheExactoNoSeToca(t *testing.T) {
	s, _ := buildScenario()
	uc := inventory.NewReconcileUseCase(&testutil.MemTxRunner{State: s})

	result, err := uc.ReconcileCapacity(context.Background(), testCompanyID, "wh-1")

	require.NoError(t, err)
	assert.False(t, result.Corrected)
	assert.True(t, s.Warehouses["wh-1"].CurrentCapacity.Equal(decimal.NewFromInt(100)))
}

func TestReconcileCapacity_IgnoraItemsInactivos(t *testing.T) {
	s, _ := buildScenario()
	s.Items["item-2"] = &entity.Item{
		ID: "item-2", CompanyID: testCompanyID, WarehouseID: "wh-1",
		SKU: "SKU-2", Quantity: 50, VolumePerUnit: decimal.NewFromInt(2), Active: false,
	}
	uc := inventory.NewReconcileUseCase(&testutil.MemTxRunner{State: s})

	result, err := uc.ReconcileCapacity(context.Background(), testCompanyID, "wh-1")

	require.NoError(t, err)
	assert.True(t, result.RecomputedCapacity.Equal(decimal.NewFromInt(100)),
		"los items dados de baja no ocupan capacidad")
}
