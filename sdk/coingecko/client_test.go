package coingecko

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/tokenreg/sdk"
	"github.com/smartcontractkit/tokenreg/types"
)

func TestClient_FetchCoin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		apiKey       string
		id           string
		status       int
		body         string
		want         types.CoinMetadata
		wantErr      string
		wantNotFound bool
	}{
		{
			name:   "success",
			apiKey: "CG-test",
			id:     "wrapped-centrifuge",
			status: http.StatusOK,
			body:   `{"id":"wrapped-centrifuge","symbol":"wcfg","name":"Wrapped Centrifuge","market_data":null}`,
			want:   types.CoinMetadata{ID: "wrapped-centrifuge", Symbol: "wcfg", Name: "Wrapped Centrifuge"},
		},
		{
			name:         "failure: not found",
			id:           "does-not-exist",
			status:       http.StatusNotFound,
			body:         `{"error":"coin not found"}`,
			wantNotFound: true,
		},
		{
			name:    "failure: rate limited",
			id:      "wrapped-centrifuge",
			status:  http.StatusTooManyRequests,
			body:    `{}`,
			wantErr: "CoinGecko API returned status 429",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/coins/"+tt.id, r.URL.Path)
				assert.Equal(t, tt.apiKey, r.Header.Get(APIKeyHeader))
				assert.Equal(t, "false", r.URL.Query().Get("tickers"))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(srv.Close)

			client := NewClient(tt.apiKey, WithBaseURL(srv.URL))
			got, err := client.FetchCoin(context.Background(), tt.id)

			switch {
			case tt.wantNotFound:
				require.ErrorIs(t, err, sdk.ErrExternalIDNotFound)
			case tt.wantErr != "":
				require.ErrorContains(t, err, tt.wantErr)
				require.NotErrorIs(t, err, sdk.ErrExternalIDNotFound)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
