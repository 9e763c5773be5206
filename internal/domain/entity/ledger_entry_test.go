package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Bodegas-api/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

func TestLedgerEntryValidate(t *testing.T) {
	cases := []struct {
		name  string
		entry entity.LedgerEntry
		want  bool
	}{
		{
			"TRANSFER con origen y destino distintos",
			entity.LedgerEntry{Kind: entity.LedgerKindTRANSFER, SourceWarehouseID: strPtr("a"), DestinationWarehouseID: strPtr("b")},
			true,
		},
		{
			"TRANSFER sin destino",
			entity.LedgerEntry{Kind: entity.LedgerKindTRANSFER, SourceWarehouseID: strPtr("a")},
			false,
		},
		{
			"TRANSFER origen igual a destino",
			entity.LedgerEntry{Kind: entity.LedgerKindTRANSFER, SourceWarehouseID: strPtr("a"), DestinationWarehouseID: strPtr("a")},
			false,
		},
		{
			"RECEIVE solo con destino",
			entity.LedgerEntry{Kind: entity.LedgerKindRECEIVE, DestinationWarehouseID: strPtr("b")},
			true,
		},
		{
			"RECEIVE con origen es invalido",
			entity.LedgerEntry{Kind: entity.LedgerKindRECEIVE, SourceWarehouseID: strPtr("a"), DestinationWarehouseID: strPtr("b")},
			false,
		},
		{
			"SALE sin bodegas",
			entity.LedgerEntry{Kind: entity.LedgerKindSALE},
			true,
		},
		{
			"ADJUSTMENT sin bodegas",
			entity.LedgerEntry{Kind: entity.LedgerKindADJUSTMENT},
			true,
		},
		{
			"tipo desconocido",
			entity.LedgerEntry{Kind: "FOO"},
			false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.entry.Validate())
		})
	}
}
