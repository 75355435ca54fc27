package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/execution-hub/presentation-hub/internal/domain/company"
	"github.com/execution-hub/presentation-hub/internal/domain/presentation"
	"github.com/execution-hub/presentation-hub/internal/ledger"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestStatusesCmd(t *testing.T) {
	out, err := run(t, "", "statuses")
	require.NoError(t, err)

	digest, ok := ledger.DigestFor(presentation.StatusDocumentsPresented)
	require.True(t, ok)
	assert.Contains(t, out, string(presentation.StatusDocumentsPresented))
	assert.Contains(t, out, digest)
}

func TestTopicsCmd(t *testing.T) {
	out, err := run(t, "", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, ledger.EventPresentationCreated)
	assert.Contains(t, out, ledger.EventStateTransition)
}

func TestEncodeThenDecode(t *testing.T) {
	digest, ok := ledger.DigestFor(presentation.StatusDocumentsCompliantByNominatedBank)
	require.True(t, ok)

	encoded, err := run(t, "", "encode", "--version", "1", "--event", ledger.EventStateTransition,
		"--fields", `{"stateId":"`+digest+`","comments":"all good"}`)
	require.NoError(t, err)
	assert.Contains(t, encoded, `"topics"`)

	out, err := run(t, encoded, "decode")
	require.NoError(t, err)
	assert.Contains(t, out, ledger.EventStateTransition+" (version 1")
	assert.Contains(t, out, "all good")
}

func TestDecodeCmd_Invalid(t *testing.T) {
	_, err := run(t, "not json", "decode")
	assert.ErrorContains(t, err, "invalid log")

	_, err = run(t, `{"address":"0x01","topics":["0x1234"],"data":"0x"}`, "decode")
	assert.ErrorContains(t, err, "no schema")
}

func TestEncodeCmd_RequiresEvent(t *testing.T) {
	_, err := run(t, "", "encode")
	assert.Error(t, err)
}

func TestCompaniesNodeCmd(t *testing.T) {
	out, err := run(t, "", "companies", "node", "bank-co")
	require.NoError(t, err)
	assert.Equal(t, company.NodeHash("bank-co")+"\n", out)
}

func TestCompaniesRegisterCmd_RequiresDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	_, err := run(t, "", "companies", "register", "bank-co")
	assert.ErrorContains(t, err, "DATABASE_URL")
}
