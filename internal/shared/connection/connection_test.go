package connection_test

import (
	"testing"

	"go-stationops/internal/shared/connection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveURI(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		database string
		want     string
		wantErr  bool
	}{
		{
			name:     "replaces database segment",
			uri:      "mongodb://localhost:27017/stationops",
			database: "stationops_employees",
			want:     "mongodb://localhost:27017/stationops_employees",
		},
		{
			name:     "keeps credentials hosts and options",
			uri:      "mongodb://u:p@h1:27017,h2:27017/main?authSource=admin&replicaSet=rs0",
			database: "customers",
			want:     "mongodb://u:p@h1:27017,h2:27017/customers?authSource=admin&replicaSet=rs0",
		},
		{
			name:     "adds segment when missing",
			uri:      "mongodb+srv://cluster.example.net?retryWrites=true",
			database: "stationops",
			want:     "mongodb+srv://cluster.example.net/stationops?retryWrites=true",
		},
		{
			name:     "missing scheme",
			uri:      "localhost:27017/stationops",
			database: "x",
			wantErr:  true,
		},
		{
			name:     "missing host",
			uri:      "mongodb:///stationops",
			database: "x",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := connection.DeriveURI(tt.uri, tt.database)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
