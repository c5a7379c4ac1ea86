// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergei Nazarov

package service

import (
	"context"

	"github.com/snazarov/aclsim/internal/audit"
	"github.com/snazarov/aclsim/internal/engine"
	"github.com/snazarov/aclsim/internal/logger"
	"github.com/snazarov/aclsim/internal/store"
	"github.com/snazarov/aclsim/models"
)

type simulatorService struct {
	engine  *engine.Engine
	records *store.CiphertextCollection
	events  *store.EventLog
	audit   *audit.Logger

	logger *logger.Logger
}

// NewSimulatorService wires the permission engine to the session state. The
// returned service is the single writer of records and events.
func NewSimulatorService(
	eng *engine.Engine,
	records *store.CiphertextCollection,
	events *store.EventLog,
	auditLog *audit.Logger,
	logger *logger.Logger,
) Simulator {
	return &simulatorService{
		engine:  eng,
		records: records,
		events:  events,
		audit:   auditLog,
		logger:  logger,
	}
}

func (s *simulatorService) CreateCiphertext(ctx context.Context, owner, payload string) string {
	ct, events := s.engine.CreateCiphertext(owner, payload)
	s.records.Insert(ct)
	s.record(events...)

	s.logger.Info().Str("id", ct.ID).Str("owner", owner).Msg("ciphertext created")
	return ct.ID
}

func (s *simulatorService) GrantPermanent(ctx context.Context, id, identity string) {
	next, ev := s.engine.GrantPermanent(s.records.MustGet(id), identity)
	s.records.Replace(id, next)
	s.record(ev)
}

func (s *simulatorService) GrantTransient(ctx context.Context, id, identity string) {
	next, ev := s.engine.GrantTransient(s.records.MustGet(id), identity)
	s.records.Replace(id, next)
	s.record(ev)
}

func (s *simulatorService) MakePublic(ctx context.Context, id string) {
	next, ev := s.engine.MakePublic(s.records.MustGet(id))
	s.records.Replace(id, next)
	s.record(ev)
}

func (s *simulatorService) AttemptDecrypt(ctx context.Context, id, requester string) models.Outcome {
	events, outcome := s.engine.AttemptDecrypt(s.records.MustGet(id), requester)
	s.record(events...)

	s.logger.Info().
		Str("id", id).
		Str("requester", requester).
		Str("outcome", string(outcome)).
		Msg("decryption attempted")
	return outcome
}

func (s *simulatorService) ListCiphertexts(ctx context.Context) []models.Ciphertext {
	return s.records.List()
}

func (s *simulatorService) ListEvents(ctx context.Context) []models.Event {
	return s.events.List()
}

// record lands engine events in the rolling log (production order, so the
// last produced ends up newest) and mirrors them to the audit sink. Audit
// write failures are logged and otherwise ignored: the simulation must not
// stall on a full disk.
func (s *simulatorService) record(events ...models.Event) {
	s.events.Prepend(events...)
	for _, ev := range events {
		if err := s.audit.Log(ev); err != nil {
			s.logger.Error().Err(err).Str("kind", string(ev.Kind)).Msg("audit write failed")
		}
		s.logger.Debug().
			Str("kind", string(ev.Kind)).
			Str("subject", ev.SubjectID).
			Str("actor", ev.Actor).
			Msg(ev.Message)
	}
}
