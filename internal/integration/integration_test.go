//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "github.com/execution-hub/presentation-hub/internal/api/http"
	"github.com/execution-hub/presentation-hub/internal/application/notification"
	appPresentation "github.com/execution-hub/presentation-hub/internal/application/presentation"
	"github.com/execution-hub/presentation-hub/internal/application/task"
	"github.com/execution-hub/presentation-hub/internal/application/workflow"
	"github.com/execution-hub/presentation-hub/internal/domain/company"
	"github.com/execution-hub/presentation-hub/internal/domain/lc"
	"github.com/execution-hub/presentation-hub/internal/domain/presentation"
	domainTask "github.com/execution-hub/presentation-hub/internal/domain/task"
	"github.com/execution-hub/presentation-hub/internal/infrastructure/documents"
	"github.com/execution-hub/presentation-hub/internal/infrastructure/postgres"
	"github.com/execution-hub/presentation-hub/internal/infrastructure/redisstore"
	"github.com/execution-hub/presentation-hub/internal/infrastructure/signer"
	"github.com/execution-hub/presentation-hub/internal/infrastructure/sse"
	"github.com/execution-hub/presentation-hub/internal/ledger"
	"github.com/execution-hub/presentation-hub/internal/migrations"
)

const (
	issuingBank   = "iss-co"
	lcAddress     = "0x1111111111111111111111111111111111111111"
	contractAddr  = "0x2222222222222222222222222222222222222222"
	zeroNode      = "0x0000000000000000000000000000000000000000000000000000000000000000"
	presentedJSON = `{"staticId":"s-1","lcPresentationReference":"PR-1","lcReference":"LC-1"}`
)

// TestPresentationLifecycleIntegration drives an issuing bank through a
// presentation made straight to it: the created contract opens a review
// task and a compliant transition closes it and deploys the next contract.
func TestPresentationLifecycleIntegration(t *testing.T) {
	server, registry, cleanup := newTestServer(t)
	defer cleanup()
	ctx := context.Background()

	presented, _ := ledger.DigestFor(presentation.StatusDocumentsPresented)
	created, err := registry.Encode(ctx, 2, ledger.EventPresentationCreated, map[string]interface{}{
		"lcAddress":             lcAddress,
		"currentStateId":        presented,
		"beneficiaryGuid":       company.NodeHash("ben-co"),
		"applicantGuid":         company.NodeHash("app-co"),
		"issuingBankGuid":       company.NodeHash(issuingBank),
		"nominatedBankGuid":     zeroNode,
		"lcPresentationData":    presentedJSON,
		"tradeDocuments":        []interface{}{map[string]interface{}{"documentHashes": `["0xaa"]`, "documentType": ledger.StringToBytes32("invoice")}},
		"beneficiaryComments":   "presented in full",
		"nominatedBankComments": "",
		"issuingBankComments":   "",
	})
	require.NoError(t, err)
	created.Address = contractAddr
	created.TransactionHash = "0x01"
	postLog(t, server.URL, created)

	resp, err := http.Get(server.URL + "/v1/presentations/s-1")
	require.NoError(t, err)
	var p presentation.Presentation
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	resp.Body.Close()
	assert.Equal(t, presentation.StatusDocumentsPresented, p.Status)
	assert.Equal(t, "PR-1", p.Reference)
	assert.True(t, p.HasContract(contractAddr))

	open := listTasks(t, server.URL, "status=TO_DO&presentationId=s-1&lcReference=LC-1")
	require.Len(t, open, 1)
	assert.Equal(t, domainTask.TypeReviewPresentation, open[0].Type)

	compliant, _ := ledger.DigestFor(presentation.StatusDocumentsCompliantByIssuingBank)
	transition, err := registry.Encode(ctx, 1, ledger.EventStateTransition, map[string]interface{}{
		"stateId":  compliant,
		"comments": "all good",
	})
	require.NoError(t, err)
	transition.Address = contractAddr
	transition.TransactionHash = "0x02"
	postLog(t, server.URL, transition)

	done := listTasks(t, server.URL, "status=DONE&presentationId=s-1&lcReference=LC-1")
	require.Len(t, done, 1)
	require.NotNil(t, done[0].Outcome)
	assert.True(t, *done[0].Outcome)
}

func postLog(t *testing.T, baseURL string, log *ledger.Log) {
	t.Helper()
	body, err := json.Marshal(log)
	require.NoError(t, err)
	resp, err := http.Post(baseURL+"/v1/ledger/events", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
}

func listTasks(t *testing.T, baseURL, query string) []*domainTask.Task {
	t.Helper()
	resp, err := http.Get(baseURL + "/v1/tasks?" + query)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Tasks []*domainTask.Task `json:"tasks"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out.Tasks
}

// externalServices stands in for the document registry and the signer.
func externalServices() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/documents"):
			_, _ = w.Write([]byte(`[{"id":"d-1","hash":"0xaa","typeId":"invoice"}]`))
		case strings.HasPrefix(r.URL.Path, "/v0/"):
			_, _ = w.Write([]byte(`{"txHash":"0xfeed"}`))
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
}

func newTestServer(t *testing.T) (*httptest.Server, *ledger.Registry, func()) {
	t.Helper()
	dsn := testDatabaseURL(t)

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, dsn)
	if err != nil {
		t.Fatalf("db pool: %v", err)
	}
	if err := postgres.RunMigrations(ctx, pool, migrations.FS); err != nil {
		pool.Close()
		t.Fatalf("migrations: %v", err)
	}
	if err := resetDatabase(ctx, pool); err != nil {
		pool.Close()
		t.Fatalf("reset db: %v", err)
	}

	logger := zerolog.Nop()
	presentationRepo := postgres.NewPresentationRepository(pool)
	lcRepo := postgres.NewLCRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	companies := postgres.NewCompanyRegistry(pool)

	for _, id := range []string{"ben-co", "app-co", issuingBank} {
		require.NoError(t, companies.Register(ctx, &company.Company{StaticID: id, DisplayName: strings.ToUpper(id)}))
	}
	require.NoError(t, lcRepo.Save(ctx, &lc.LC{
		Reference:       "LC-1",
		ContractAddress: lcAddress,
		Status:          lc.StatusIssued,
		BeneficiaryID:   "ben-co",
		ApplicantID:     "app-co",
		IssuingBankID:   issuingBank,
		AvailableWith:   lc.AvailableWithIssuingBank,
	}))

	external := externalServices()
	documentClient := documents.NewClient(external.URL)
	submitter := signer.NewClient(external.URL, logger)

	sseHub := sse.NewHub(0, logger)
	notificationSvc := notification.NewService(notificationRepo, nil, sseHub, logger)
	taskSvc := task.NewService(taskRepo, notificationSvc, issuingBank, logger)
	presentationSvc := appPresentation.NewService(presentationRepo, lcRepo, taskSvc, documentClient, submitter, issuingBank, logger)

	registry, err := ledger.NewDefaultRegistry()
	require.NoError(t, err)
	processors, err := workflow.NewProcessorTable(&workflow.Effects{
		Tasks:     taskSvc,
		Notifier:  notificationSvc,
		Documents: documentClient,
		Submitter: submitter,
		Companies: companies,
	}, logger)
	require.NoError(t, err)
	dispatcher := workflow.NewDispatcher(registry, presentationRepo, lcRepo, companies, processors, issuingBank, logger)
	intake := workflow.NewIntake(dispatcher, redisstore.Noop{}, logger)

	apiServer := httpapi.NewServer(presentationSvc, taskSvc, intake, sseHub, []string{"*"}, logger)
	server := httptest.NewServer(apiServer.Router())

	cleanup := func() {
		server.Close()
		external.Close()
		sseHub.Stop()
		pool.Close()
	}
	return server, registry, cleanup
}

func testDatabaseURL(t *testing.T) string {
	t.Helper()
	if dsn := os.Getenv("TEST_DATABASE_URL"); dsn != "" {
		return dsn
	}
	t.Skip("TEST_DATABASE_URL not set; skipping integration tests")
	return ""
}

func resetDatabase(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		TRUNCATE TABLE
			notifications,
			tasks,
			lc_presentation_field_updates,
			lc_presentation_contracts,
			lc_presentations,
			letters_of_credit,
			companies
		RESTART IDENTITY CASCADE
	`)
	return err
}
