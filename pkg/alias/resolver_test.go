package alias_test

import (
	"testing"

	"github.com/eishro/merchantaccess/pkg/alias"
	"github.com/eishro/merchantaccess/pkg/merchant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMap() *alias.Map {
	registry := merchant.NewRegistry([]merchant.Profile{
		{ID: "nawaem", DisplayName: "Nawaem"},
		{ID: "sherine", DisplayName: "Sherine"},
		{ID: "delta", DisplayName: "Delta Store"},
	})
	pairs := []alias.Pair{
		{Alias: "nawaemstore.ly", MerchantID: "nawaem"},
		{Alias: "Nawaem Store", MerchantID: "nawaem"},
		{Alias: "owner@delta-store.ly", MerchantID: "delta"},
	}
	return alias.NewMap(pairs, registry)
}

func TestNormalizeForms(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  [3]string
	}{
		{
			name:  "plain lowercase",
			input: "nawaem",
			want:  [3]string{"nawaem", "nawaem", "nawaem"},
		},
		{
			name:  "mixed case with trailing space",
			input: "NawaemStore.ly ",
			want:  [3]string{"nawaemstore.ly", "nawaemstore.ly", "nawaemstore.ly"},
		},
		{
			name:  "inner whitespace",
			input: "Nawaem Store",
			want:  [3]string{"nawaem store", "nawaemstore", "nawaemstore"},
		},
		{
			name:  "punctuation kept only in compact form rules",
			input: "Delta-Store!",
			want:  [3]string{"delta-store!", "delta-store!", "deltastore"},
		},
		{
			name:  "email survives all forms",
			input: "Owner@Delta-Store.ly",
			want:  [3]string{"owner@delta-store.ly", "owner@delta-store.ly", "owner@deltastore.ly"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, alias.NormalizeForms(tt.input))
		})
	}
}

func TestResolveMerchantID(t *testing.T) {
	t.Parallel()
	m := testMap()

	tests := []struct {
		name   string
		record alias.Record
		wantID string
		wantOK bool
	}{
		{
			name:   "nil record",
			record: nil,
			wantOK: false,
		},
		{
			name:   "empty record",
			record: alias.Record{},
			wantOK: false,
		},
		{
			name:   "canonical id is idempotent",
			record: alias.Record{"id": "nawaem"},
			wantID: "nawaem",
			wantOK: true,
		},
		{
			name:   "subdomain alias with case and trailing space",
			record: alias.Record{"subdomain": "NawaemStore.ly "},
			wantID: "nawaem",
			wantOK: true,
		},
		{
			name:   "display name with inner whitespace",
			record: alias.Record{"nameEn": "Nawaem Store"},
			wantID: "nawaem",
			wantOK: true,
		},
		{
			name:   "email alias",
			record: alias.Record{"ownerEmail": "Owner@Delta-Store.ly"},
			wantID: "delta",
			wantOK: true,
		},
		{
			name:   "registry id matched case-insensitively without alias entry",
			record: alias.Record{"username": "SHERINE"},
			wantID: "sherine",
			wantOK: true,
		},
		{
			name: "field priority order wins over later fields",
			record: alias.Record{
				"id":        "sherine",
				"subdomain": "nawaemstore.ly",
			},
			wantID: "sherine",
			wantOK: true,
		},
		{
			name: "earlier unmatched candidates fall through",
			record: alias.Record{
				"id":        "not-a-store",
				"subdomain": "nawaemstore.ly",
			},
			wantID: "nawaem",
			wantOK: true,
		},
		{
			name:   "unrecognized string does not fuzzy match",
			record: alias.Record{"slug": "nawa"},
			wantOK: false,
		},
		{
			name: "non-string and extra fields are tolerated",
			record: alias.Record{
				"id":      42,
				"theme":   "dark",
				"storeId": "delta",
			},
			wantID: "delta",
			wantOK: true,
		},
		{
			name:   "whitespace-only field is treated as absent",
			record: alias.Record{"email": "   "},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			id, ok := m.ResolveMerchantID(tt.record)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestResolveMerchantIDAllProfiles(t *testing.T) {
	t.Parallel()
	registry := merchant.NewRegistry([]merchant.Profile{
		{ID: "nawaem"}, {ID: "sherine"}, {ID: "pretty"}, {ID: "delta"}, {ID: "magna"}, {ID: "indeesh"},
	})
	m := alias.NewMap(nil, registry)

	for _, id := range registry.IDs() {
		got, ok := m.ResolveMerchantID(alias.Record{"id": id})
		require.True(t, ok, "profile %s must resolve to itself", id)
		assert.Equal(t, id, got)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()
	m := testMap()

	id, ok := m.Lookup("  NAWAEM STORE ")
	require.True(t, ok)
	assert.Equal(t, "nawaem", id)

	_, ok = m.Lookup("unknown-store")
	assert.False(t, ok)
}
