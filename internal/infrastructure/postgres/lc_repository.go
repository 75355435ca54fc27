package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/execution-hub/presentation-hub/internal/domain/lc"
)

const lcColumns = `id, reference, contract_address, status, beneficiary_id, applicant_id, issuing_bank_id, advising_bank_id, beneficiary_bank_id, beneficiary_bank_role, available_with, created_at, updated_at`

// LCRepository implements lc.Repository.
type LCRepository struct {
	pool *pgxpool.Pool
}

func NewLCRepository(pool *pgxpool.Pool) *LCRepository {
	return &LCRepository{pool: pool}
}

func (r *LCRepository) GetByReference(ctx context.Context, reference string) (*lc.LC, error) {
	return r.getOne(ctx, `SELECT `+lcColumns+` FROM letters_of_credit WHERE reference=$1`, reference)
}

func (r *LCRepository) GetByContractAddress(ctx context.Context, address string) (*lc.LC, error) {
	return r.getOne(ctx, `SELECT `+lcColumns+` FROM letters_of_credit WHERE lower(contract_address)=lower($1)`, address)
}

func (r *LCRepository) Save(ctx context.Context, l *lc.LC) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO letters_of_credit
		(reference, contract_address, status, beneficiary_id, applicant_id, issuing_bank_id, advising_bank_id, beneficiary_bank_id, beneficiary_bank_role, available_with, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (reference) DO UPDATE SET
			contract_address=EXCLUDED.contract_address, status=EXCLUDED.status,
			beneficiary_id=EXCLUDED.beneficiary_id, applicant_id=EXCLUDED.applicant_id, issuing_bank_id=EXCLUDED.issuing_bank_id,
			advising_bank_id=EXCLUDED.advising_bank_id, beneficiary_bank_id=EXCLUDED.beneficiary_bank_id,
			beneficiary_bank_role=EXCLUDED.beneficiary_bank_role, available_with=EXCLUDED.available_with,
			updated_at=EXCLUDED.updated_at
		RETURNING id
	`, l.Reference, l.ContractAddress, string(l.Status), l.BeneficiaryID, l.ApplicantID, l.IssuingBankID, l.AdvisingBankID,
		l.BeneficiaryBankID, string(l.BeneficiaryBankRole), string(l.AvailableWith), l.CreatedAt, l.UpdatedAt).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("upsert LC: %w", err)
	}
	return nil
}

func (r *LCRepository) getOne(ctx context.Context, query string, args ...interface{}) (*lc.LC, error) {
	var l lc.LC
	var status, role, availableWith string
	err := r.pool.QueryRow(ctx, query, args...).Scan(&l.ID, &l.Reference, &l.ContractAddress, &status, &l.BeneficiaryID, &l.ApplicantID,
		&l.IssuingBankID, &l.AdvisingBankID, &l.BeneficiaryBankID, &role, &availableWith, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get LC: %w", err)
	}
	l.Status = lc.Status(status)
	l.BeneficiaryBankRole = lc.BankRole(role)
	l.AvailableWith = lc.AvailableWith(availableWith)
	return &l, nil
}
