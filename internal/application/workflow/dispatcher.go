package workflow

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/execution-hub/presentation-hub/internal/apperr"
	"github.com/execution-hub/presentation-hub/internal/domain/company"
	"github.com/execution-hub/presentation-hub/internal/domain/lc"
	"github.com/execution-hub/presentation-hub/internal/domain/presentation"
	"github.com/execution-hub/presentation-hub/internal/ledger"
)

// FieldHandler applies a ledger field patch to a presentation.
type FieldHandler func(p *presentation.Presentation, value []byte) error

// Dispatcher advances presentations from decoded ledger events.
type Dispatcher struct {
	registry      *ledger.Registry
	presentations presentation.Repository
	lcs           lc.Repository
	companies     company.Registry
	processors    *ProcessorTable
	fieldHandlers map[string]FieldHandler
	companyID     string
	now           func() time.Time
	logger        zerolog.Logger
}

// NewDispatcher creates a dispatcher acting for the local company.
func NewDispatcher(
	registry *ledger.Registry,
	presentations presentation.Repository,
	lcs lc.Repository,
	companies company.Registry,
	processors *ProcessorTable,
	companyID string,
	logger zerolog.Logger,
) *Dispatcher {
	return &Dispatcher{
		registry:      registry,
		presentations: presentations,
		lcs:           lcs,
		companies:     companies,
		processors:    processors,
		fieldHandlers: defaultFieldHandlers(),
		companyID:     companyID,
		now:           func() time.Time { return time.Now().UTC() },
		logger:        logger.With().Str("service", "dispatcher").Logger(),
	}
}

// Handle decodes a raw log and routes it. Undecodable logs are logged and
// dropped.
func (d *Dispatcher) Handle(ctx context.Context, log *ledger.Log) error {
	decoded := d.registry.Decode(ctx, log)
	if !decoded.OK() {
		d.logRaw(log).Msg("failed to decode ledger log")
		return nil
	}
	ev, err := ledger.ToEvent(decoded)
	if err != nil {
		d.logRaw(log).Err(err).Str("event", decoded.Name).Msg("failed to build ledger event")
		return nil
	}
	return d.HandleEvent(ctx, ev)
}

// HandleEvent routes a typed ledger event.
func (d *Dispatcher) HandleEvent(ctx context.Context, ev ledger.Event) error {
	switch e := ev.(type) {
	case *ledger.PresentationCreated:
		return d.handleCreated(ctx, e)
	case *ledger.StateTransition:
		return d.handleTransition(ctx, e)
	case *ledger.DataUpdated:
		return d.handleDataUpdated(ctx, e)
	}
	return apperr.InvalidMessage("unsupported ledger event %s", ev.EventName())
}

func (d *Dispatcher) handleCreated(ctx context.Context, ev *ledger.PresentationCreated) error {
	status, ok := ledger.StatusFromDigest(ev.CurrentStateID)
	if !ok {
		return apperr.InvalidMessage("unknown contract status %s", ev.CurrentStateID)
	}
	if ev.Data.Reference == "" {
		return apperr.InvalidMessage("presentation reference missing from contract %s", logAddress(ev.Log))
	}
	if ev.Data.StaticID == "" {
		return apperr.InvalidMessage("presentation static id missing from contract %s", logAddress(ev.Log))
	}

	l, err := d.lcs.GetByContractAddress(ctx, ev.LCAddress)
	if err != nil {
		return err
	}
	if l == nil {
		return apperr.NotFound("LC not found for contract %s", ev.LCAddress)
	}

	parties, err := ReconcileParties(ctx, d.companies, ev, l)
	if err != nil {
		return err
	}

	now := d.now()
	p, err := d.presentations.GetByReference(ctx, ev.Data.Reference)
	if err != nil {
		return err
	}
	if p == nil {
		p = parsePresentation(ev, l, parties, now)
	} else {
		p.BeneficiaryComments = ev.BeneficiaryComments
		p.NominatedBankComments = ev.NominatedBankComments
		p.IssuingBankComments = ev.IssuingBankComments
		p.ClearDestination()
	}

	performer := presentation.PerformerForStatus(p, status)
	if !performer.Resolved() {
		return apperr.InvalidMessage("no performer for status %s on presentation %s", status, p.Reference)
	}

	if raw := ev.Log; raw != nil && raw.Address != "" && !p.HasContract(raw.Address) {
		phrase, _ := ledger.PhraseFor(status)
		if err := p.AddContract(presentation.Contract{
			ContractAddress: raw.Address,
			TransactionHash: raw.TransactionHash,
			Key:             phrase,
		}); err != nil && !errors.Is(err, presentation.ErrDuplicateContract) {
			return err
		}
	}
	p.ApplyStatus(status, performer.CompanyID, now)
	p.UpdatedAt = now

	if err := d.presentations.Save(ctx, p); err != nil {
		return err
	}

	role := presentation.CurrentRole(p, d.companyID)
	d.logger.Info().
		Str("presentation_id", p.StaticID).
		Str("contract_address", logAddress(ev.Log)).
		Str("status", string(status)).
		Str("role", string(role)).
		Msg("presentation contract created")

	if !d.processors.Has(TriggerCreated, status) {
		return apperr.InvalidMessage("no processor registered for created status %s", status)
	}
	return d.processors.Process(ctx, TriggerCreated, &Invocation{
		Presentation: p,
		LC:           l,
		Status:       status,
		Role:         role,
		Performer:    performer,
		Event:        ev,
	})
}

func (d *Dispatcher) handleTransition(ctx context.Context, ev *ledger.StateTransition) error {
	status, ok := ledger.StatusFromDigest(ev.StateID)
	if !ok {
		return apperr.InvalidMessage("unknown contract status %s", ev.StateID)
	}
	address := logAddress(ev.Log)

	p, err := d.presentations.GetByContractAddress(ctx, address)
	if err != nil {
		return err
	}
	if p == nil {
		return apperr.NotFound("presentation not found for contract %s", address)
	}
	l, err := d.lcs.GetByReference(ctx, p.LCReference)
	if err != nil {
		return err
	}
	if l == nil {
		return apperr.NotFound("LC %s not found", p.LCReference)
	}

	performer := presentation.PerformerForStatus(p, status)
	if !performer.Resolved() {
		return apperr.InvalidMessage("no performer for status %s on presentation %s", status, p.Reference)
	}

	now := d.now()
	if ev.Comments != "" {
		setComments(p, performer.Role, ev.Comments)
	}
	p.ApplyStatus(status, performer.CompanyID, now)
	p.ClearDestination()
	p.UpdatedAt = now
	if err := d.presentations.Save(ctx, p); err != nil {
		return err
	}

	role := presentation.CurrentRole(p, d.companyID)
	d.logger.Info().
		Str("presentation_id", p.StaticID).
		Str("contract_address", address).
		Str("status", string(status)).
		Str("role", string(role)).
		Msg("presentation state transition")

	if !d.processors.Has(TriggerTransition, status) {
		d.logger.Info().Str("status", string(status)).Msg("no processor for transition status")
		return nil
	}
	return d.processors.Process(ctx, TriggerTransition, &Invocation{
		Presentation: p,
		LC:           l,
		Status:       status,
		Role:         role,
		Performer:    performer,
		Event:        ev,
	})
}

func (d *Dispatcher) handleDataUpdated(ctx context.Context, ev *ledger.DataUpdated) error {
	address := logAddress(ev.Log)
	p, err := d.presentations.GetByContractAddress(ctx, address)
	if err != nil {
		return err
	}
	if p == nil {
		d.logger.Warn().Str("contract_address", address).Msg("data update for unknown presentation")
		return nil
	}
	handler, ok := d.fieldHandlers[ev.FieldName]
	if !ok {
		d.logger.Warn().
			Str("presentation_id", p.StaticID).
			Str("field", ev.FieldName).
			Msg("no handler for updated field")
		return nil
	}
	if err := handler(p, ev.Data); err != nil {
		return apperr.InvalidMessage("invalid %s update: %v", ev.FieldName, err)
	}
	now := d.now()
	p.UpdatedAt = now
	if err := d.presentations.Save(ctx, p); err != nil {
		return err
	}

	update := &presentation.FieldUpdate{
		PresentationStaticID: p.StaticID,
		ContractAddress:      address,
		Field:                ev.FieldName,
		Value:                string(ev.Data),
		AppliedAt:            now,
	}
	if ev.Log != nil {
		update.TransactionHash = ev.Log.TransactionHash
	}
	if err := d.presentations.RecordFieldUpdate(ctx, update); err != nil {
		d.logger.Warn().Err(err).Str("presentation_id", p.StaticID).Msg("failed to record field update")
	}
	return nil
}

func parsePresentation(ev *ledger.PresentationCreated, l *lc.LC, parties presentation.Parties, now time.Time) *presentation.Presentation {
	p := &presentation.Presentation{
		StaticID:              ev.Data.StaticID,
		Reference:             ev.Data.Reference,
		LCReference:           l.Reference,
		Documents:             []presentation.Document{},
		BeneficiaryComments:   ev.BeneficiaryComments,
		NominatedBankComments: ev.NominatedBankComments,
		IssuingBankComments:   ev.IssuingBankComments,
		Contracts:             []presentation.Contract{},
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	p.SetParties(parties)
	for _, td := range ev.TradeDocuments {
		for _, hash := range td.DocumentHashes {
			p.Documents = append(p.Documents, presentation.Document{
				DocumentHash:   hash,
				DocumentTypeID: td.DocumentTypeID,
				DateProvided:   now,
			})
		}
	}
	return p
}

func defaultFieldHandlers() map[string]FieldHandler {
	text := func(set func(p *presentation.Presentation, v string)) FieldHandler {
		return func(p *presentation.Presentation, value []byte) error {
			set(p, string(value))
			return nil
		}
	}
	return map[string]FieldHandler{
		"beneficiaryComments":   text(func(p *presentation.Presentation, v string) { p.BeneficiaryComments = v }),
		"nominatedBankComments": text(func(p *presentation.Presentation, v string) { p.NominatedBankComments = v }),
		"issuingBankComments":   text(func(p *presentation.Presentation, v string) { p.IssuingBankComments = v }),
	}
}

func setComments(p *presentation.Presentation, role presentation.Role, comments string) {
	switch role {
	case presentation.RoleBeneficiary:
		p.BeneficiaryComments = comments
	case presentation.RoleNominatedBank:
		p.NominatedBankComments = comments
	case presentation.RoleIssuingBank:
		p.IssuingBankComments = comments
	}
}

func logAddress(log *ledger.Log) string {
	if log == nil {
		return ""
	}
	return log.Address
}

func (d *Dispatcher) logRaw(log *ledger.Log) *zerolog.Event {
	e := d.logger.Warn()
	if log != nil {
		e = e.Str("contract_address", log.Address).
			Str("tx_hash", log.TransactionHash).
			Uint64("log_index", log.LogIndex)
	}
	return e
}
