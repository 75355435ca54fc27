package signer

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"github.com/execution-hub/presentation-hub/internal/domain/company"
	"github.com/execution-hub/presentation-hub/internal/domain/lc"
	"github.com/execution-hub/presentation-hub/internal/domain/presentation"
)

func selector(signature string) string {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(signature))
	return hex.EncodeToString(h.Sum(nil)[:4])
}

func testPresentation(withNominated bool) *presentation.Presentation {
	p := &presentation.Presentation{
		StaticID:            "pres-1",
		Reference:           "PR-1",
		LCReference:         "LC-1",
		BeneficiaryID:       "ben-co",
		ApplicantID:         "app-co",
		IssuingBankID:       "iss-co",
		BeneficiaryComments: "please review",
		Documents: []presentation.Document{
			{DocumentHash: "0xaa", DocumentTypeID: "invoice"},
			{DocumentHash: "0xbb", DocumentTypeID: "bl"},
			{DocumentHash: "0xcc", DocumentTypeID: "invoice"},
		},
	}
	if withNominated {
		nominated := "nom-co"
		p.NominatedBankID = &nominated
	}
	return p
}

func TestEncodeCall(t *testing.T) {
	ctx := context.Background()

	data, err := EncodeCall(ctx, "nominatedBankSetDocumentsCompliant", nil)
	require.NoError(t, err)
	assert.Equal(t, "0x"+selector("nominatedBankSetDocumentsCompliant()"), data.String())

	comments := "late shipment"
	data, err = EncodeCall(ctx, "applicantSetDiscrepanciesRejected", &comments)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(data.String(), "0x"+selector("applicantSetDiscrepanciesRejected(string)")))
	// selector, offset, length, one padded word of content
	assert.Len(t, data, 4+32*3)
}

func TestClient_Deploy(t *testing.T) {
	var got deployRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v0/contracts/deploy", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(txResponse{TxHash: "0xdeploy"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", zerolog.Nop())
	l := &lc.LC{Reference: "LC-1", ContractAddress: "0xlc"}

	t.Run("presented to nominated bank", func(t *testing.T) {
		txHash, err := c.DeployDocPresented(context.Background(), testPresentation(true), l)
		require.NoError(t, err)
		assert.Equal(t, "0xdeploy", txHash)

		assert.Equal(t, contractName, got.Contract)
		assert.Equal(t, []string{company.NodeHash("ben-co"), company.NodeHash("nom-co")}, got.Recipients)
		assert.Equal(t, company.NodeHash("nom-co"), got.Arguments.NominatedBank)
		assert.False(t, got.Arguments.IsAdvisingDiscrepancies)
		assert.Equal(t, "0xlc", got.Arguments.Data.LCAddress)
		assert.Equal(t, "please review", got.Arguments.Data.BeneficiaryComments)
		assert.JSONEq(t, `{"staticId":"pres-1","lcPresentationReference":"PR-1","lcReference":"LC-1"}`, got.Arguments.Data.JSONData)

		require.Len(t, got.Arguments.Documents, 2)
		assert.JSONEq(t, `["0xaa","0xcc"]`, got.Arguments.Documents[0].DocumentHashes)
		assert.JSONEq(t, `["0xbb"]`, got.Arguments.Documents[1].DocumentHashes)
	})

	t.Run("presented straight to issuing bank", func(t *testing.T) {
		_, err := c.DeployDocPresented(context.Background(), testPresentation(false), l)
		require.NoError(t, err)
		assert.Equal(t, "0x0", got.Arguments.NominatedBank)
		assert.Equal(t, []string{company.NodeHash("ben-co"), company.NodeHash("iss-co")}, got.Recipients)
	})

	t.Run("compliant as issuing bank skips missing nominated bank", func(t *testing.T) {
		_, err := c.DeployCompliantAsIssuingBank(context.Background(), testPresentation(false), l)
		require.NoError(t, err)
		assert.Equal(t, []string{
			company.NodeHash("ben-co"),
			company.NodeHash("iss-co"),
			company.NodeHash("app-co"),
		}, got.Recipients)
	})

	t.Run("advising flag", func(t *testing.T) {
		_, err := c.DeployAdviseDiscrepanciesAsIssuingBank(context.Background(), testPresentation(false), l)
		require.NoError(t, err)
		assert.True(t, got.Arguments.IsAdvisingDiscrepancies)
		assert.Equal(t, []string{company.NodeHash("ben-co"), company.NodeHash("app-co")}, got.Recipients)
	})
}

func TestClient_Call(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v0/transactions/send", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(txResponse{TxHash: "0xcall"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, zerolog.Nop())
	txHash, err := c.IssuingBankAdviseDiscrepancies(context.Background(), "0xpres", "see notes")
	require.NoError(t, err)
	assert.Equal(t, "0xcall", txHash)
	assert.Equal(t, "0xpres", got.To)
	assert.True(t, strings.HasPrefix(got.Data, "0x"+selector("issungBankAdviseDiscrepancies(string)")))
}

func TestClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nonce too low", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, zerolog.Nop())
	_, err := c.NominatedBankSetDocumentsCompliant(context.Background(), "0xpres")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "nonce too low")

	_, err = NewClient("", zerolog.Nop()).IssuingBankSetDocumentsCompliant(context.Background(), "0xpres")
	assert.Error(t, err)
}
