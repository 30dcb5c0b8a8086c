package account

import (
	"testing"

	"go-stationops/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailLookupsIgnoreCase(t *testing.T) {
	t.Run("unique email indexes compare case-insensitively", func(t *testing.T) {
		specs := Indexes()
		require.Len(t, specs, 4)

		for _, spec := range specs {
			require.Len(t, spec.Models, 1, "%s.%s", spec.Store, spec.Collection)
			opts := spec.Models[0].Options
			require.NotNil(t, opts.Collation)
			assert.Equal(t, 2, opts.Collation.Strength)
			assert.True(t, *opts.Unique)
		}
	})

	t.Run("lookups carry the index collation", func(t *testing.T) {
		opts := byEmail()
		require.NotNil(t, opts.Collation)
		assert.Equal(t, emailCollation, opts.Collation)
	})

	t.Run("customer indexes cover both stores", func(t *testing.T) {
		var stores []store.Store
		for _, spec := range Indexes() {
			if spec.Collection == CustomerCollection {
				stores = append(stores, spec.Store)
			}
		}
		assert.ElementsMatch(t, []store.Store{store.Primary, store.CustomerDomain}, stores)
	})
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@example.com", NormalizeEmail("  Ana@Example.COM "))
}
