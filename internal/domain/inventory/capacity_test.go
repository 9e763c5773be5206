package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodegas-api/internal/domain"
	"github.com/jhoicas/Bodegas-api/internal/domain/entity"
	"github.com/jhoicas/Bodegas-api/internal/domain/inventory"
)

func bodega(max, current int64, threshold int) *entity.Warehouse {
	return &entity.Warehouse{
		ID:                    "wh-1",
		Name:                  "Bodega Central",
		MaxCapacity:           decimal.NewFromInt(max),
		CurrentCapacity:       decimal.NewFromInt(current),
		AlertThresholdPercent: threshold,
		Active:                true,
	}
}

func TestReserve_ConCapacidadDisponible(t *testing.T) {
	w := bodega(1000, 400, 80)

	err := inventory.Reserve(w, decimal.NewFromInt(600))

	require.NoError(t, err)
	assert.True(t, w.CurrentCapacity.Equal(decimal.NewFromInt(1000)),
		"la reserva debe dejar el nuevo volumen usado en la entidad")
}

func TestReserve_ExcedeCapacidadMaxima(t *testing.T) {
	// Bodega casi llena: max=1000, usado=990, volumen a mover=20.
	w := bodega(1000, 990, 80)

	err := inventory.Reserve(w, decimal.NewFromInt(20))

	require.Error(t, err)
	var capErr *domain.CapacityExceededError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, "Bodega Central", capErr.WarehouseName)
	assert.True(t, capErr.Available.Equal(decimal.NewFromInt(10)), "disponible = max - usado")
	assert.True(t, capErr.Requested.Equal(decimal.NewFromInt(20)))
	assert.True(t, w.CurrentCapacity.Equal(decimal.NewFromInt(990)),
		"una reserva rechazada no debe mutar la capacidad")
}

func TestReserve_VolumenNegativoEsInvalido(t *testing.T) {
	w := bodega(1000, 0, 80)
	err := inventory.Reserve(w, decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRelease_SiempreExitosoConPisoEnCero(t *testing.T) {
	w := bodega(1000, 30, 80)

	inventory.Release(w, decimal.NewFromInt(50))

	assert.True(t, w.CurrentCapacity.IsZero(),
		"liberar más de lo usado debe dejar la capacidad en cero, nunca negativa")
}

func TestIsAlertTriggered(t *testing.T) {
	cases := []struct {
		name      string
		max       int64
		current   int64
		threshold int
		want      bool
	}{
		{"debajo del umbral", 1000, 500, 80, false},
		{"exactamente en el umbral", 1000, 800, 80, true},
		{"por encima del umbral", 1000, 950, 80, true},
		{"capacidad maxima cero no alerta", 0, 0, 80, false},
		{"umbral cero siempre alerta", 1000, 0, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := bodega(tc.max, tc.current, tc.threshold)
			assert.Equal(t, tc.want, inventory.IsAlertTriggered(w))
		})
	}
}

func TestUsedVolume_SumaRealDeItems(t *testing.T) {
	items := []*entity.Item{
		{Quantity: 10, VolumePerUnit: decimal.NewFromFloat(2.5)},
		{Quantity: 4, VolumePerUnit: decimal.NewFromInt(3)},
		{Quantity: 0, VolumePerUnit: decimal.NewFromInt(100)},
	}

	total := inventory.UsedVolume(items)

	assert.True(t, total.Equal(decimal.NewFromInt(37)), "10*2.5 + 4*3 + 0 = 37")
}
