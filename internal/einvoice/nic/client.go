// Package nic implements the e-invoice AuthorityClient against the NIC
// Invoice Registration Portal API.
package nic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"designdesk/internal/config"
	"designdesk/internal/einvoice"
)

// ackDateFormat is the timestamp format the IRP uses in responses.
const ackDateFormat = "2006-01-02 15:04:05"

type client struct {
	http     *http.Client
	baseURL  string
	username string
	password string
}

// NewClient creates an AuthorityClient talking to the configured IRP
// endpoint. The HTTP client timeout bounds every call; a timeout surfaces to
// the controller as an authority failure like any rejection.
func NewClient(cfg *config.EInvoiceConfig) einvoice.AuthorityClient {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &client{
		http:     &http.Client{Timeout: timeout},
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		username: cfg.Username,
		password: cfg.Password,
	}
}

// irpEnvelope is the IRP's standard response wrapper.
type irpEnvelope struct {
	Status       string          `json:"Status"`
	Data         json.RawMessage `json:"Data"`
	ErrorDetails []irpError      `json:"ErrorDetails"`
}

type irpError struct {
	ErrorCode    string `json:"ErrorCode"`
	ErrorMessage string `json:"ErrorMessage"`
}

type irpSubmitData struct {
	Irn           string          `json:"Irn"`
	AckNo         json.Number     `json:"AckNo"`
	AckDt         string          `json:"AckDt"`
	SignedInvoice json.RawMessage `json:"SignedInvoice"`
}

type irpCancelData struct {
	Irn        string `json:"Irn"`
	CancelDate string `json:"CancelDate"`
}

func (c *client) Submit(ctx context.Context, payload *einvoice.Payload) (*einvoice.SubmitResult, error) {
	var data irpSubmitData
	if err := c.post(ctx, "/eicore/v1.03/Invoice", payload, &data); err != nil {
		return nil, err
	}
	ackDate, err := time.Parse(ackDateFormat, data.AckDt)
	if err != nil {
		return nil, fmt.Errorf("parsing AckDt %q: %w", data.AckDt, err)
	}
	return &einvoice.SubmitResult{
		IRN:           data.Irn,
		AckNumber:     data.AckNo.String(),
		AckDate:       ackDate,
		SignedInvoice: data.SignedInvoice,
	}, nil
}

func (c *client) Cancel(ctx context.Context, irn, reasonCode, remark string) (*einvoice.CancelResult, error) {
	body := map[string]string{
		"Irn":    irn,
		"CnlRsn": reasonCode,
		"CnlRem": remark,
	}
	var data irpCancelData
	if err := c.post(ctx, "/eicore/v1.03/Invoice/Cancel", body, &data); err != nil {
		return nil, err
	}
	cancelledAt, err := time.Parse(ackDateFormat, data.CancelDate)
	if err != nil {
		return nil, fmt.Errorf("parsing CancelDate %q: %w", data.CancelDate, err)
	}
	return &einvoice.CancelResult{CancelledAt: cancelledAt}, nil
}

// post sends a JSON request and decodes the Data section of the IRP
// envelope. IRP rejections are returned with the authority's error text
// preserved verbatim.
func (c *client) post(ctx context.Context, path string, body, out interface{}) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling IRP: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading IRP response: %w", err)
	}

	var envelope irpEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return fmt.Errorf("decoding IRP response (HTTP %d): %s", resp.StatusCode, string(respBody))
	}

	if envelope.Status != "1" {
		msgs := make([]string, 0, len(envelope.ErrorDetails))
		for _, e := range envelope.ErrorDetails {
			msgs = append(msgs, e.ErrorCode+": "+e.ErrorMessage)
		}
		if len(msgs) == 0 {
			msgs = append(msgs, fmt.Sprintf("IRP returned status %q (HTTP %d)", envelope.Status, resp.StatusCode))
		}
		return fmt.Errorf("%s", strings.Join(msgs, "; "))
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decoding IRP data: %w", err)
	}
	return nil
}
