package signer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hyperledger/firefly-signer/pkg/abi"
	"github.com/hyperledger/firefly-signer/pkg/ethtypes"
	"github.com/rs/zerolog"

	"github.com/execution-hub/presentation-hub/internal/domain/company"
	"github.com/execution-hub/presentation-hub/internal/domain/lc"
	"github.com/execution-hub/presentation-hub/internal/domain/presentation"
	"github.com/execution-hub/presentation-hub/internal/ledger"
)

const contractName = "LCPresentation"

// Client submits presentation contract transactions through the node's
// signer service. It implements presentation.TransactionSubmitter.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewClient(baseURL string, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger.With().Str("component", "signer").Logger(),
	}
}

type sendRequest struct {
	To         string   `json:"to"`
	Data       string   `json:"data"`
	Recipients []string `json:"recipients"`
}

type deployRequest struct {
	Contract   string         `json:"contract"`
	Arguments  deployArgument `json:"arguments"`
	Recipients []string       `json:"recipients"`
}

type deployArgument struct {
	NominatedBank           string          `json:"nominatedBank"`
	Documents               []tradeDocument `json:"documents"`
	Data                    contractData    `json:"data"`
	IsAdvisingDiscrepancies bool            `json:"isAdvisingDiscrepancies"`
}

type tradeDocument struct {
	DocumentType   string `json:"documentType"`
	DocumentHashes string `json:"documentHashes"`
}

type contractData struct {
	JSONData              string `json:"jsonData"`
	LCAddress             string `json:"lcAddress"`
	BeneficiaryComments   string `json:"beneficiaryComments"`
	NominatedBankComments string `json:"nominatedBankComments"`
	IssuingBankComments   string `json:"issuingBankComments"`
}

type txResponse struct {
	TxHash string `json:"txHash"`
}

func (c *Client) DeployDocPresented(ctx context.Context, p *presentation.Presentation, l *lc.LC) (string, error) {
	availableWith := p.IssuingBankID
	if p.HasNominatedBank() {
		availableWith = *p.NominatedBankID
	}
	return c.deploy(ctx, p, l, false, p.BeneficiaryID, availableWith)
}

func (c *Client) DeployCompliantAsNominatedBank(ctx context.Context, p *presentation.Presentation, l *lc.LC) (string, error) {
	return c.deploy(ctx, p, l, false, p.BeneficiaryID, nominated(p), p.IssuingBankID)
}

func (c *Client) DeployCompliantAsIssuingBank(ctx context.Context, p *presentation.Presentation, l *lc.LC) (string, error) {
	return c.deploy(ctx, p, l, false, p.BeneficiaryID, nominated(p), p.IssuingBankID, p.ApplicantID)
}

func (c *Client) DeployAdviseDiscrepanciesAsNominatedBank(ctx context.Context, p *presentation.Presentation, l *lc.LC) (string, error) {
	return c.deploy(ctx, p, l, true, p.BeneficiaryID, p.IssuingBankID, p.ApplicantID)
}

func (c *Client) DeployAdviseDiscrepanciesAsIssuingBank(ctx context.Context, p *presentation.Presentation, l *lc.LC) (string, error) {
	return c.deploy(ctx, p, l, true, p.BeneficiaryID, p.ApplicantID)
}

func (c *Client) NominatedBankSetDocumentsCompliant(ctx context.Context, contractAddress string) (string, error) {
	return c.call(ctx, contractAddress, "nominatedBankSetDocumentsCompliant", nil)
}

func (c *Client) NominatedBankSetDocumentsDiscrepant(ctx context.Context, contractAddress, comments string) (string, error) {
	return c.call(ctx, contractAddress, "nominatedBankSetDocumentsDiscrepant", &comments)
}

func (c *Client) IssuingBankSetDocumentsCompliant(ctx context.Context, contractAddress string) (string, error) {
	return c.call(ctx, contractAddress, "issuingBankSetDocumentsCompliant", nil)
}

func (c *Client) IssuingBankSetDocumentsDiscrepant(ctx context.Context, contractAddress, comments string) (string, error) {
	return c.call(ctx, contractAddress, "issuingBankSetDocumentsDiscrepant", &comments)
}

func (c *Client) NominatedBankAdviseDiscrepancies(ctx context.Context, contractAddress, comments string) (string, error) {
	return c.call(ctx, contractAddress, "nominatedBankAdviseDiscrepancies", &comments)
}

func (c *Client) IssuingBankAdviseDiscrepancies(ctx context.Context, contractAddress, comments string) (string, error) {
	return c.call(ctx, contractAddress, "issungBankAdviseDiscrepancies", &comments)
}

func (c *Client) IssuingBankSetDiscrepanciesAccepted(ctx context.Context, contractAddress, comments string) (string, error) {
	return c.call(ctx, contractAddress, "issuingBankSetDiscrepanciesAccepted", &comments)
}

func (c *Client) IssuingBankSetDiscrepanciesRejected(ctx context.Context, contractAddress, comments string) (string, error) {
	return c.call(ctx, contractAddress, "issuingBankSetDiscrepanciesRejected", &comments)
}

func (c *Client) ApplicantSetDiscrepanciesAccepted(ctx context.Context, contractAddress, comments string) (string, error) {
	return c.call(ctx, contractAddress, "applicantSetDiscrepanciesAccepted", &comments)
}

func (c *Client) ApplicantSetDiscrepanciesRejected(ctx context.Context, contractAddress, comments string) (string, error) {
	return c.call(ctx, contractAddress, "applicantSetDiscrepanciesRejected", &comments)
}

// call sends a contract method invocation. Recipients are every party that
// must see the transaction, resolved by the signer from the contract.
func (c *Client) call(ctx context.Context, contractAddress, method string, comments *string) (string, error) {
	data, err := EncodeCall(ctx, method, comments)
	if err != nil {
		return "", err
	}
	req := sendRequest{To: contractAddress, Data: data.String(), Recipients: []string{}}
	c.logger.Info().Str("contract_address", contractAddress).Str("method", method).Msg("sending presentation action")
	return c.post(ctx, "/v0/transactions/send", req)
}

func (c *Client) deploy(ctx context.Context, p *presentation.Presentation, l *lc.LC, advising bool, parties ...string) (string, error) {
	args, err := deployArguments(p, l, advising)
	if err != nil {
		return "", err
	}
	req := deployRequest{Contract: contractName, Arguments: args, Recipients: recipientNodes(parties)}
	c.logger.Info().Str("presentation_id", p.StaticID).Str("reference", p.Reference).Bool("advising", advising).Msg("deploying presentation contract")
	return c.post(ctx, "/v0/contracts/deploy", req)
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) (string, error) {
	if c.baseURL == "" {
		return "", fmt.Errorf("signer base url is empty")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("signer request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("signer returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	var out txResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode signer response: %w", err)
	}
	return out.TxHash, nil
}

// EncodeCall returns the call data of a contract action. Actions carrying
// comments take a single string argument.
func EncodeCall(ctx context.Context, method string, comments *string) (ethtypes.HexBytes0xPrefix, error) {
	entry := &abi.Entry{Type: abi.Function, Name: method, Inputs: abi.ParameterArray{}}
	values := []interface{}{}
	if comments != nil {
		entry.Inputs = abi.ParameterArray{{Name: "comments", Type: "string"}}
		values = append(values, *comments)
	}
	cv, err := entry.Inputs.ParseExternalDataCtx(ctx, values)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s arguments: %w", method, err)
	}
	data, err := entry.EncodeCallDataCtx(ctx, cv)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s call: %w", method, err)
	}
	return data, nil
}

func deployArguments(p *presentation.Presentation, l *lc.LC, advising bool) (deployArgument, error) {
	custom, err := json.Marshal(ledger.PresentationData{
		StaticID:    p.StaticID,
		Reference:   p.Reference,
		LCReference: p.LCReference,
	})
	if err != nil {
		return deployArgument{}, err
	}
	docs, err := groupDocuments(p.Documents)
	if err != nil {
		return deployArgument{}, err
	}
	nominatedBank := "0x0"
	if p.HasNominatedBank() {
		nominatedBank = company.NodeHash(*p.NominatedBankID)
	}
	return deployArgument{
		NominatedBank: nominatedBank,
		Documents:     docs,
		Data: contractData{
			JSONData:              string(custom),
			LCAddress:             l.ContractAddress,
			BeneficiaryComments:   p.BeneficiaryComments,
			NominatedBankComments: p.NominatedBankComments,
			IssuingBankComments:   p.IssuingBankComments,
		},
		IsAdvisingDiscrepancies: advising,
	}, nil
}

// groupDocuments groups hashes by document type, keeping first-seen order.
func groupDocuments(documents []presentation.Document) ([]tradeDocument, error) {
	var order []string
	hashes := map[string][]string{}
	for _, d := range documents {
		if _, ok := hashes[d.DocumentTypeID]; !ok {
			order = append(order, d.DocumentTypeID)
		}
		hashes[d.DocumentTypeID] = append(hashes[d.DocumentTypeID], d.DocumentHash)
	}
	out := make([]tradeDocument, 0, len(order))
	for _, typeID := range order {
		encoded, err := json.Marshal(hashes[typeID])
		if err != nil {
			return nil, err
		}
		out = append(out, tradeDocument{
			DocumentType:   ledger.StringToBytes32(typeID),
			DocumentHashes: string(encoded),
		})
	}
	return out, nil
}

func recipientNodes(parties []string) []string {
	nodes := make([]string, 0, len(parties))
	for _, id := range parties {
		if id != "" {
			nodes = append(nodes, company.NodeHash(id))
		}
	}
	return nodes
}

func nominated(p *presentation.Presentation) string {
	if p.HasNominatedBank() {
		return *p.NominatedBankID
	}
	return ""
}
