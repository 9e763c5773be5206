package transfer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodegas-api/internal/application/transfer"
	"github.com/jhoicas/Bodegas-api/internal/domain"
)

func TestBulkTransfer_ListaVaciaEsInvalida(t *testing.T) {
	_, _, uc := buildScenario()
	coordinator := transfer.NewBulkCoordinator(uc)

	_, err := coordinator.BulkTransfer(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBulkTransfer_DosTrasladosValidosIdenticos(t *testing.T) {
	// Dos traslados de 20 contra un origen con 100.
	s, _, uc := buildScenario()
	coordinator := transfer.NewBulkCoordinator(uc)

	res, err := coordinator.BulkTransfer(context.Background(), []transfer.TransferInput{
		validInput(), validInput(),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.Len(t, res.SuccessfulTransfers, 2)
	assert.Empty(t, res.FailedTransfers)
	assert.Equal(t, int64(60), s.Items["item-src"].Quantity, "100 - 20 - 20")
	assert.Len(t, s.Ledger, 2, "una entrada TRANSFER por traslado aceptado")
}

func TestBulkTransfer_FallosAisladosPorLinea(t *testing.T) {
	s, _, uc := buildScenario()
	coordinator := transfer.NewBulkCoordinator(uc)

	bad := validInput()
	bad.Quantity = 500 // stock insuficiente
	badSKU := validInput()
	badSKU.ItemSKU = "SKU-FANTASMA"

	res, err := coordinator.BulkTransfer(context.Background(), []transfer.TransferInput{
		validInput(), // índice 0: ok
		bad,          // índice 1: falla
		validInput(), // índice 2: ok
		badSKU,       // índice 3: falla
	})

	require.NoError(t, err, "los fallos por línea no son un error del lote")
	assert.Equal(t, 4, res.Total)
	require.Len(t, res.SuccessfulTransfers, 2)
	require.Len(t, res.FailedTransfers, 2)

	// Los fallos conservan el índice de la lista original.
	assert.Equal(t, 1, res.FailedTransfers[0].Index)
	assert.Equal(t, "SKU-1", res.FailedTransfers[0].SKU)
	assert.Contains(t, res.FailedTransfers[0].Message, "stock insuficiente")
	assert.Equal(t, 3, res.FailedTransfers[1].Index)
	assert.Equal(t, "SKU-FANTASMA", res.FailedTransfers[1].SKU)

	// Las líneas buenas sí entraron: 100 - 20 - 20.
	assert.Equal(t, int64(60), s.Items["item-src"].Quantity)
	assert.Len(t, s.Ledger, 2)
}

func TestBulkTransfer_ExitosEnOrdenDeEntrada(t *testing.T) {
	_, _, uc := buildScenario()
	coordinator := transfer.NewBulkCoordinator(uc)

	first := validInput()
	first.Quantity = 5
	second := validInput()
	second.Quantity = 7

	res, err := coordinator.BulkTransfer(context.Background(), []transfer.TransferInput{first, second})

	require.NoError(t, err)
	require.Len(t, res.SuccessfulTransfers, 2)
	assert.Equal(t, int64(5), res.SuccessfulTransfers[0].Quantity)
	assert.Equal(t, int64(7), res.SuccessfulTransfers[1].Quantity)
}
