package transfer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodegas-api/internal/application/transfer"
	"github.com/jhoicas/Bodegas-api/internal/domain"
	"github.com/jhoicas/Bodegas-api/internal/domain/entity"
	"github.com/jhoicas/Bodegas-api/internal/testutil"
)

const (
	testCompanyID = "00000000-0000-0000-0000-00000000000a"
	testActorID   = "00000000-0000-0000-0000-00000000000b"
)

// escenario base: dos bodegas activas de la misma empresa y un item en la origen.
// SKU-1 con cantidad 100 y volumen unitario 1 en la bodega origen.
func buildScenario() (*testutil.MemState, *testutil.MemTxRunner, *transfer.TransferUseCase) {
	s := testutil.NewMemState()
	s.Warehouses["wh-src"] = &entity.Warehouse{
		ID: "wh-src", CompanyID: testCompanyID, Name: "Bodega Norte",
		MaxCapacity: decimal.NewFromInt(10000), CurrentCapacity: decimal.NewFromInt(100),
		AlertThresholdPercent: 80, Active: true,
	}
	s.Warehouses["wh-dst"] = &entity.Warehouse{
		ID: "wh-dst", CompanyID: testCompanyID, Name: "Bodega Sur",
		MaxCapacity: decimal.NewFromInt(10000), CurrentCapacity: decimal.NewFromInt(50),
		AlertThresholdPercent: 80, Active: true,
	}
	s.Items["item-src"] = &entity.Item{
		ID: "item-src", CompanyID: testCompanyID, WarehouseID: "wh-src",
		SKU: "SKU-1", Name: "Caja de tornillos", Category: "ferretería", Brand: "Acme",
		Quantity: 100, VolumePerUnit: decimal.NewFromInt(1),
		Price: decimal.NewFromInt(10), Cost: decimal.NewFromInt(6), Active: true,
	}
	runner := &testutil.MemTxRunner{State: s}
	return s, runner, transfer.NewTransferUseCase(runner, nil)
}

func validInput() transfer.TransferInput {
	return transfer.TransferInput{
		CompanyID:              testCompanyID,
		ActorID:                testActorID,
		ItemSKU:                "SKU-1",
		SourceWarehouseID:      "wh-src",
		DestinationWarehouseID: "wh-dst",
		Quantity:               20,
		Note:                   "reposición sucursal sur",
	}
}

func TestTransfer_ExitosoCreaItemEnDestino(t *testing.T) {
	s, _, uc := buildScenario()

	res, err := uc.Transfer(context.Background(), validInput())

	require.NoError(t, err)
	require.NotNil(t, res)

	// Lado origen: la cantidad baja exactamente en lo trasladado.
	assert.Equal(t, int64(100), res.PreviousQuantity)
	assert.Equal(t, int64(80), res.NewQuantity)
	assert.Equal(t, int64(80), s.Items["item-src"].Quantity)

	// Lado destino: registro nuevo con los atributos descriptivos copiados.
	require.NotNil(t, res.DestinationItem)
	assert.Equal(t, int64(20), res.DestinationItem.Quantity)
	assert.Equal(t, "Caja de tornillos", res.DestinationItem.Name)
	assert.Equal(t, "Acme", res.DestinationItem.Brand)
	assert.Equal(t, "wh-dst", res.DestinationItem.WarehouseID)

	// Capacidades: el mismo volumen sale de origen y entra a destino.
	assert.True(t, s.Warehouses["wh-src"].CurrentCapacity.Equal(decimal.NewFromInt(80)))
	assert.True(t, s.Warehouses["wh-dst"].CurrentCapacity.Equal(decimal.NewFromInt(70)))

	// Exactamente una entrada TRANSFER en el ledger.
	require.Len(t, s.Ledger, 1)
	entry := s.Ledger[0]
	assert.Equal(t, entity.LedgerKindTRANSFER, entry.Kind)
	assert.Equal(t, int64(-20), entry.QuantityChange)
	assert.Equal(t, int64(100), entry.PreviousQuantity)
	assert.Equal(t, int64(80), entry.NewQuantity)
	require.NotNil(t, entry.SourceWarehouseID)
	require.NotNil(t, entry.DestinationWarehouseID)
	assert.Equal(t, "wh-src", *entry.SourceWarehouseID)
	assert.Equal(t, "wh-dst", *entry.DestinationWarehouseID)
	assert.Equal(t, testActorID, entry.ActorID)
	assert.Equal(t, res.LedgerEntryID, entry.ID)
	assert.NotEmpty(t, res.Summary)
}

func TestTransfer_FusionaConItemExistenteEnDestino(t *testing.T) {
	// Merge sobre registro existente: origen 100, destino 50, traslado 20.
	s, _, uc := buildScenario()
	s.Items["item-dst"] = &entity.Item{
		ID: "item-dst", CompanyID: testCompanyID, WarehouseID: "wh-dst",
		SKU: "SKU-1", Name: "Caja de tornillos", Quantity: 50,
		VolumePerUnit: decimal.NewFromInt(1), Active: true,
	}

	res, err := uc.Transfer(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, int64(80), s.Items["item-src"].Quantity)
	assert.Equal(t, int64(70), s.Items["item-dst"].Quantity, "el merge incrementa el registro existente")
	assert.Equal(t, "item-dst", res.DestinationItem.ID, "no debe crearse un registro nuevo")
	require.Len(t, s.Ledger, 1)
	assert.Equal(t, int64(-20), s.Ledger[0].QuantityChange)
}

func TestTransfer_SumaDeCapacidadesInvariante(t *testing.T) {
	s, _, uc := buildScenario()
	before := s.Warehouses["wh-src"].CurrentCapacity.Add(s.Warehouses["wh-dst"].CurrentCapacity)

	_, err := uc.Transfer(context.Background(), validInput())

	require.NoError(t, err)
	after := s.Warehouses["wh-src"].CurrentCapacity.Add(s.Warehouses["wh-dst"].CurrentCapacity)
	assert.True(t, before.Equal(after), "el traslado mueve volumen, no lo crea ni destruye")
}

func TestTransfer_MismaBodegaRechazadoAntesDeCualquierLookup(t *testing.T) {
	_, runner, uc := buildScenario()
	input := validInput()
	input.DestinationWarehouseID = input.SourceWarehouseID

	_, err := uc.Transfer(context.Background(), input)

	var invalidOp *domain.InvalidOperationError
	require.ErrorAs(t, err, &invalidOp)
	assert.Contains(t, invalidOp.Reason, "misma bodega")
	assert.Zero(t, runner.Runs, "el rechazo debe ocurrir antes de abrir transacción o consultar nada")
}

func TestTransfer_CantidadNoPositivaEsInvalida(t *testing.T) {
	_, _, uc := buildScenario()
	for _, qty := range []int64{0, -5} {
		input := validInput()
		input.Quantity = qty
		_, err := uc.Transfer(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestTransfer_BodegaOrigenInactiva(t *testing.T) {
	s, _, uc := buildScenario()
	s.Warehouses["wh-src"].Active = false

	_, err := uc.Transfer(context.Background(), validInput())

	var invalidOp *domain.InvalidOperationError
	require.ErrorAs(t, err, &invalidOp)
	assert.Contains(t, invalidOp.Reason, "origen inactiva")
	assert.Empty(t, s.Ledger)
}

func TestTransfer_BodegaDestinoInactiva(t *testing.T) {
	s, _, uc := buildScenario()
	s.Warehouses["wh-dst"].Active = false

	_, err := uc.Transfer(context.Background(), validInput())

	var invalidOp *domain.InvalidOperationError
	require.ErrorAs(t, err, &invalidOp)
	assert.Contains(t, invalidOp.Reason, "destino inactiva")
	assert.Empty(t, s.Ledger)
}

func TestTransfer_BodegaInexistente(t *testing.T) {
	_, _, uc := buildScenario()
	input := validInput()
	input.DestinationWarehouseID = "wh-no-existe"

	_, err := uc.Transfer(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransfer_SKUInexistenteEnOrigen(t *testing.T) {
	s, _, uc := buildScenario()
	input := validInput()
	input.ItemSKU = "SKU-FANTASMA"

	_, err := uc.Transfer(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.Ledger, "un traslado rechazado no escribe al ledger")
}

func TestTransfer_StockInsuficienteSinCambios(t *testing.T) {
	s, _, uc := buildScenario()
	input := validInput()
	input.Quantity = 150

	_, err := uc.Transfer(context.Background(), input)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "SKU-1", insufficient.SKU)
	assert.Equal(t, int64(100), insufficient.Available)
	assert.Equal(t, int64(150), insufficient.Requested)

	assert.Equal(t, int64(100), s.Items["item-src"].Quantity)
	assert.True(t, s.Warehouses["wh-src"].CurrentCapacity.Equal(decimal.NewFromInt(100)))
	assert.True(t, s.Warehouses["wh-dst"].CurrentCapacity.Equal(decimal.NewFromInt(50)))
	assert.Empty(t, s.Ledger)
}

func TestTransfer_CapacidadDestinoExcedidaSinCambios(t *testing.T) {
	// Destino casi lleno: max=1000, usado=990, volumen a mover=20.
	s, _, uc := buildScenario()
	s.Warehouses["wh-dst"].MaxCapacity = decimal.NewFromInt(1000)
	s.Warehouses["wh-dst"].CurrentCapacity = decimal.NewFromInt(990)

	_, err := uc.Transfer(context.Background(), validInput())

	var capErr *domain.CapacityExceededError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, "Bodega Sur", capErr.WarehouseName)
	assert.True(t, capErr.Available.Equal(decimal.NewFromInt(10)))
	assert.True(t, capErr.Requested.Equal(decimal.NewFromInt(20)))

	assert.Equal(t, int64(100), s.Items["item-src"].Quantity)
	assert.True(t, s.Warehouses["wh-src"].CurrentCapacity.Equal(decimal.NewFromInt(100)))
	assert.True(t, s.Warehouses["wh-dst"].CurrentCapacity.Equal(decimal.NewFromInt(990)))
	assert.Empty(t, s.Ledger)
}

func TestTransfer_MergeConVolumenUnitarioDistintoRechazado(t *testing.T) {
	s, _, uc := buildScenario()
	s.Items["item-dst"] = &entity.Item{
		ID: "item-dst", CompanyID: testCompanyID, WarehouseID: "wh-dst",
		SKU: "SKU-1", Name: "Caja de tornillos", Quantity: 50,
		VolumePerUnit: decimal.NewFromInt(2), Active: true,
	}

	_, err := uc.Transfer(context.Background(), validInput())

	var invalidOp *domain.InvalidOperationError
	require.ErrorAs(t, err, &invalidOp)
	assert.Contains(t, invalidOp.Reason, "volumen unitario")

	// Rollback completo: ni el débito del origen ni la reserva de capacidad quedan.
	assert.Equal(t, int64(100), s.Items["item-src"].Quantity)
	assert.Equal(t, int64(50), s.Items["item-dst"].Quantity)
	assert.True(t, s.Warehouses["wh-src"].CurrentCapacity.Equal(decimal.NewFromInt(100)))
	assert.True(t, s.Warehouses["wh-dst"].CurrentCapacity.Equal(decimal.NewFromInt(50)))
	assert.Empty(t, s.Ledger)
}

func TestTransfer_EmpresaAjenaProhibida(t *testing.T) {
	_, _, uc := buildScenario()
	input := validInput()
	input.CompanyID = "otra-empresa"

	_, err := uc.Transfer(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTransfer_FallaDeAlmacenamientoRevierteTodo(t *testing.T) {
	// Una falla al escribir el ledger no es un resultado de negocio: aborta el
	// traslado completo sin escritura parcial (sin estado "roto").
	s, runner, _ := buildScenario()
	runner.AppendErr = errors.New("conexión perdida")
	uc := transfer.NewTransferUseCase(runner, nil)

	_, err := uc.Transfer(context.Background(), validInput())

	require.Error(t, err)
	var invalidOp *domain.InvalidOperationError
	var insufficient *domain.InsufficientStockError
	var capErr *domain.CapacityExceededError
	assert.False(t, errors.As(err, &invalidOp) || errors.As(err, &insufficient) || errors.As(err, &capErr),
		"una falla de almacenamiento no debe reportarse como fallo de negocio")

	assert.Equal(t, int64(100), s.Items["item-src"].Quantity)
	assert.True(t, s.Warehouses["wh-src"].CurrentCapacity.Equal(decimal.NewFromInt(100)))
	assert.True(t, s.Warehouses["wh-dst"].CurrentCapacity.Equal(decimal.NewFromInt(50)))
	assert.Empty(t, s.Ledger)
	assert.Len(t, s.Items, 1, "el item destino creado dentro de la tx debe desaparecer con el rollback")
}
