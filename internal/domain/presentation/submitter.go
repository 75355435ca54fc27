package presentation

import (
	"context"

	"github.com/execution-hub/presentation-hub/internal/domain/lc"
)

// TransactionSubmitter submits presentation contract transactions to the
// ledger. Every method returns the transaction hash.
type TransactionSubmitter interface {
	DeployDocPresented(ctx context.Context, p *Presentation, l *lc.LC) (string, error)
	DeployCompliantAsNominatedBank(ctx context.Context, p *Presentation, l *lc.LC) (string, error)
	DeployCompliantAsIssuingBank(ctx context.Context, p *Presentation, l *lc.LC) (string, error)
	DeployAdviseDiscrepanciesAsNominatedBank(ctx context.Context, p *Presentation, l *lc.LC) (string, error)
	DeployAdviseDiscrepanciesAsIssuingBank(ctx context.Context, p *Presentation, l *lc.LC) (string, error)

	NominatedBankSetDocumentsCompliant(ctx context.Context, contractAddress string) (string, error)
	NominatedBankSetDocumentsDiscrepant(ctx context.Context, contractAddress, comments string) (string, error)
	IssuingBankSetDocumentsCompliant(ctx context.Context, contractAddress string) (string, error)
	IssuingBankSetDocumentsDiscrepant(ctx context.Context, contractAddress, comments string) (string, error)
	NominatedBankAdviseDiscrepancies(ctx context.Context, contractAddress, comments string) (string, error)
	IssuingBankAdviseDiscrepancies(ctx context.Context, contractAddress, comments string) (string, error)
	IssuingBankSetDiscrepanciesAccepted(ctx context.Context, contractAddress, comments string) (string, error)
	IssuingBankSetDiscrepanciesRejected(ctx context.Context, contractAddress, comments string) (string, error)
	ApplicantSetDiscrepanciesAccepted(ctx context.Context, contractAddress, comments string) (string, error)
	ApplicantSetDiscrepanciesRejected(ctx context.Context, contractAddress, comments string) (string, error)
}
