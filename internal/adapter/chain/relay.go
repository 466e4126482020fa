package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"wookey-escrow/internal/core/domain"
	"wookey-escrow/internal/core/ports"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TransferRequest is the JSON body posted to the relay for one transfer
// action.
type TransferRequest struct {
	TokenContract string `json:"token_contract"`
	From          string `json:"from"`
	To            string `json:"to"`
	Quantity      string `json:"quantity"` // asset notation, e.g. "5.0000 XPR"
	Memo          string `json:"memo"`
}

// transferResponse is the relay's reply; TxID is informational.
type transferResponse struct {
	TxID  string `json:"tx_id"`
	Error string `json:"error,omitempty"`
}

// Relay implements ports.TokenTransferor by posting transfer actions to
// a signing relay that holds the escrow account's key. Delivery is
// synchronous: the calling ledger operation aborts unless the relay
// acknowledges the transfer.
type Relay struct {
	baseURL    string
	apiKey     string
	sigSvc     ports.SignatureService
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewRelay creates a relay-backed transferor. apiKey signs each request
// body so the relay can authenticate the ledger.
func NewRelay(baseURL, apiKey string, sigSvc ports.SignatureService, httpClient HTTPClient, log zerolog.Logger) *Relay {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Relay{
		baseURL:    baseURL,
		apiKey:     apiKey,
		sigSvc:     sigSvc,
		httpClient: httpClient,
		log:        log,
	}
}

// Transfer posts one transfer action and waits for acknowledgement.
func (r *Relay) Transfer(ctx context.Context, tokenContract, from, to string, quantity domain.Asset, memo string) error {
	body, err := json.Marshal(TransferRequest{
		TokenContract: tokenContract,
		From:          from,
		To:            to,
		Quantity:      quantity.String(),
		Memo:          memo,
	})
	if err != nil {
		return fmt.Errorf("marshal transfer request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/v1/transfers", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create transfer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Signature", r.sigSvc.Sign(r.apiKey, string(body)))

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("relay transfer: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var tr transferResponse
		_ = json.Unmarshal(respBody, &tr)
		if tr.Error != "" {
			return fmt.Errorf("relay rejected transfer: %s", tr.Error)
		}
		return fmt.Errorf("relay rejected transfer: status %d", resp.StatusCode)
	}

	var tr transferResponse
	_ = json.Unmarshal(respBody, &tr)
	r.log.Info().
		Str("to", to).
		Str("quantity", quantity.String()).
		Str("tx_id", tr.TxID).
		Msg("transfer relayed")

	return nil
}
