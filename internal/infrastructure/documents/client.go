package documents

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/execution-hub/presentation-hub/internal/domain/document"
)

// Client talks to the document registry service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a document registry client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type shareRequest struct {
	Documents []string         `json:"documents"`
	Companies []string         `json:"companies"`
	Context   document.Context `json:"context"`
	ProductID string           `json:"productId"`
}

func (c *Client) documentsURL() string {
	return fmt.Sprintf("%s/products/%s/documents", c.baseURL, document.ProductTradeFinance)
}

// GetDocumentsByContext lists documents registered under docCtx.
func (c *Client) GetDocumentsByContext(ctx context.Context, docCtx document.Context) ([]*document.Document, error) {
	raw, err := json.Marshal(docCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document context: %w", err)
	}
	endpoint := c.documentsURL() + "?context=" + url.QueryEscape(string(raw))

	var docs []*document.Document
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// ShareDocuments sends documentIDs to every recipient company.
func (c *Client) ShareDocuments(ctx context.Context, documentIDs []string, recipients []string, docCtx document.Context) error {
	payload := shareRequest{
		Documents: documentIDs,
		Companies: recipients,
		Context:   docCtx,
		ProductID: document.ProductTradeFinance,
	}
	endpoint := fmt.Sprintf("%s/products/%s/send-documents", c.baseURL, document.ProductTradeFinance)
	return c.do(ctx, http.MethodPost, endpoint, payload, nil)
}

// DeleteDocument removes a registered document.
func (c *Client) DeleteDocument(ctx context.Context, documentID string) error {
	endpoint := c.documentsURL() + "/" + url.PathEscape(documentID)
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil)
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload, out interface{}) error {
	if c.baseURL == "" {
		return fmt.Errorf("document service base URL is not configured")
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request to document service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("document service returned error status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode document service response: %w", err)
	}
	return nil
}
