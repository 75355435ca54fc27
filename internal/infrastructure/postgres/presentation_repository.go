package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/execution-hub/presentation-hub/internal/domain/presentation"
)

const presentationSelect = `
	SELECT p.id, p.static_id, p.reference, p.lc_reference, p.beneficiary_id, p.applicant_id, p.issuing_bank_id, p.nominated_bank_id,
		p.documents, p.beneficiary_comments, p.nominated_bank_comments, p.issuing_bank_comments, p.status, p.state_history,
		p.destination_state, p.submitted_at, p.created_at, p.updated_at,
		COALESCE((
			SELECT jsonb_agg(jsonb_build_object('contractAddress', c.contract_address, 'transactionHash', c.transaction_hash, 'key', c.key) ORDER BY c.id)
			FROM lc_presentation_contracts c WHERE c.presentation_static_id = p.static_id
		), '[]'::jsonb)
	FROM lc_presentations p`

// PresentationRepository implements presentation.Repository.
type PresentationRepository struct {
	pool *pgxpool.Pool
}

func NewPresentationRepository(pool *pgxpool.Pool) *PresentationRepository {
	return &PresentationRepository{pool: pool}
}

func (r *PresentationRepository) GetByStaticID(ctx context.Context, staticID string) (*presentation.Presentation, error) {
	return r.getOne(ctx, presentationSelect+` WHERE p.static_id=$1`, staticID)
}

func (r *PresentationRepository) GetByReference(ctx context.Context, reference string) (*presentation.Presentation, error) {
	return r.getOne(ctx, presentationSelect+` WHERE p.reference=$1`, reference)
}

func (r *PresentationRepository) GetByContractAddress(ctx context.Context, address string) (*presentation.Presentation, error) {
	return r.getOne(ctx, presentationSelect+`
		WHERE p.static_id = (SELECT presentation_static_id FROM lc_presentation_contracts WHERE lower(contract_address)=lower($1))`, address)
}

func (r *PresentationRepository) ListByLCReference(ctx context.Context, lcReference string) ([]*presentation.Presentation, error) {
	return r.list(ctx, presentationSelect+` WHERE p.lc_reference=$1 ORDER BY p.created_at DESC`, lcReference)
}

func (r *PresentationRepository) ListStaleDestination(ctx context.Context, olderThan time.Time, limit int) ([]*presentation.Presentation, error) {
	return r.list(ctx, presentationSelect+`
		WHERE p.destination_state IS NOT NULL AND p.updated_at < $1
		ORDER BY p.updated_at ASC LIMIT $2`, olderThan, limit)
}

// Save upserts the aggregate by static id and records any new contracts.
func (r *PresentationRepository) Save(ctx context.Context, p *presentation.Presentation) error {
	if err := p.Validate(); err != nil {
		return err
	}
	documents, err := json.Marshal(p.Documents)
	if err != nil {
		return fmt.Errorf("encode documents: %w", err)
	}
	history, err := json.Marshal(p.StateHistory)
	if err != nil {
		return fmt.Errorf("encode state history: %w", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, `
		INSERT INTO lc_presentations
		(static_id, reference, lc_reference, beneficiary_id, applicant_id, issuing_bank_id, nominated_bank_id, documents,
		 beneficiary_comments, nominated_bank_comments, issuing_bank_comments, status, state_history, destination_state,
		 submitted_at, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		ON CONFLICT (static_id) DO UPDATE SET
			reference=EXCLUDED.reference, lc_reference=EXCLUDED.lc_reference,
			beneficiary_id=EXCLUDED.beneficiary_id, applicant_id=EXCLUDED.applicant_id,
			issuing_bank_id=EXCLUDED.issuing_bank_id, nominated_bank_id=EXCLUDED.nominated_bank_id,
			documents=EXCLUDED.documents, beneficiary_comments=EXCLUDED.beneficiary_comments,
			nominated_bank_comments=EXCLUDED.nominated_bank_comments, issuing_bank_comments=EXCLUDED.issuing_bank_comments,
			status=EXCLUDED.status, state_history=EXCLUDED.state_history, destination_state=EXCLUDED.destination_state,
			submitted_at=EXCLUDED.submitted_at, updated_at=EXCLUDED.updated_at
		RETURNING id
	`, p.StaticID, p.Reference, p.LCReference, p.BeneficiaryID, p.ApplicantID, p.IssuingBankID, p.NominatedBankID, documents,
		p.BeneficiaryComments, p.NominatedBankComments, p.IssuingBankComments, string(p.Status), history, statusPtr(p.DestinationState),
		p.SubmittedAt, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("upsert presentation: %w", err)
	}

	for _, c := range p.Contracts {
		_, err := tx.Exec(ctx, `
			INSERT INTO lc_presentation_contracts (presentation_static_id, contract_address, transaction_hash, key)
			VALUES ($1,$2,$3,$4)
			ON CONFLICT ((lower(contract_address))) DO NOTHING
		`, p.StaticID, c.ContractAddress, c.TransactionHash, c.Key)
		if err != nil {
			return fmt.Errorf("insert presentation contract: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *PresentationRepository) Delete(ctx context.Context, staticID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM lc_presentations WHERE static_id=$1`, staticID)
	if err != nil {
		return fmt.Errorf("delete presentation: %w", err)
	}
	return nil
}

func (r *PresentationRepository) RecordFieldUpdate(ctx context.Context, u *presentation.FieldUpdate) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO lc_presentation_field_updates (presentation_static_id, contract_address, transaction_hash, field, value, applied_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`, u.PresentationStaticID, u.ContractAddress, u.TransactionHash, u.Field, u.Value, u.AppliedAt)
	if err != nil {
		return fmt.Errorf("record field update: %w", err)
	}
	return nil
}

func (r *PresentationRepository) getOne(ctx context.Context, query string, args ...interface{}) (*presentation.Presentation, error) {
	p, err := scanPresentation(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

func (r *PresentationRepository) list(ctx context.Context, query string, args ...interface{}) ([]*presentation.Presentation, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list presentations: %w", err)
	}
	defer rows.Close()
	var out []*presentation.Presentation
	for rows.Next() {
		p, err := scanPresentation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPresentation(row pgx.Row) (*presentation.Presentation, error) {
	var p presentation.Presentation
	var status string
	var destination *string
	var documents, history, contracts []byte
	err := row.Scan(&p.ID, &p.StaticID, &p.Reference, &p.LCReference, &p.BeneficiaryID, &p.ApplicantID, &p.IssuingBankID, &p.NominatedBankID,
		&documents, &p.BeneficiaryComments, &p.NominatedBankComments, &p.IssuingBankComments, &status, &history,
		&destination, &p.SubmittedAt, &p.CreatedAt, &p.UpdatedAt, &contracts)
	if err != nil {
		return nil, err
	}
	p.Status = presentation.Status(status)
	if destination != nil {
		p.SetDestination(presentation.Status(*destination))
	}
	if err := json.Unmarshal(documents, &p.Documents); err != nil {
		return nil, fmt.Errorf("decode documents: %w", err)
	}
	if err := json.Unmarshal(history, &p.StateHistory); err != nil {
		return nil, fmt.Errorf("decode state history: %w", err)
	}
	if err := json.Unmarshal(contracts, &p.Contracts); err != nil {
		return nil, fmt.Errorf("decode contracts: %w", err)
	}
	return &p, nil
}

func statusPtr(s *presentation.Status) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}
