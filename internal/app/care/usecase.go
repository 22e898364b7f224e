package care

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"plantverse/internal/app/ports"
	"plantverse/internal/domain/garden"
)

var ErrInvalidRequest = errors.New("invalid care request")

type UseCase struct {
	TxManager ports.TxManager
	StateRepo ports.PlantStateRepository
	CareRepo  ports.CareExecutionRepository
	LogRepo   ports.InteractionRepository
	Metrics   ports.CareMetrics
	Notifier  ports.CareNotifier
	Engine    garden.Engine
	Now       func() time.Time
}

// Execute applies one care action inside a transaction. The optimistic
// version check on save serializes concurrent transitions for the same
// plant; the idempotency key makes client retries safe.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.PlantID = strings.TrimSpace(req.PlantID)
	req.IdempotencyKey = strings.TrimSpace(req.IdempotencyKey)
	req.Action = garden.ActionType(strings.TrimSpace(string(req.Action)))
	if req.PlantID == "" || req.IdempotencyKey == "" {
		return Response{}, ErrInvalidRequest
	}
	if !garden.IsValidAction(req.Action) {
		return Response{}, garden.ErrInvalidAction
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	var events []ports.CareEvent
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		exec, err := u.CareRepo.GetByIdempotencyKey(txCtx, req.PlantID, req.IdempotencyKey)
		if err == nil && exec != nil {
			out = Response{
				UpdatedState: exec.Result.UpdatedState,
				Records:      exec.Result.Records,
				Unlocked:     exec.Result.Unlocked,
			}
			return nil
		}
		if err != nil && !errors.Is(err, ports.ErrNotFound) {
			return err
		}

		state, err := u.StateRepo.GetByPlantID(txCtx, req.PlantID)
		if err != nil {
			return err
		}

		result, err := u.Engine.Apply(state, req.Action, nowFn())
		if err != nil {
			return err
		}
		if result.ClockSkew {
			log.Printf("care: clock skew clamped for plant %s", req.PlantID)
		}

		if err := u.StateRepo.SaveWithVersion(txCtx, result.UpdatedState, state.Version); err != nil {
			return err
		}
		if err := u.LogRepo.Append(txCtx, result.Records); err != nil {
			return err
		}

		execution := ports.CareExecutionRecord{
			PlantID:        req.PlantID,
			IdempotencyKey: req.IdempotencyKey,
			Action:         string(req.Action),
			Result: ports.CareResult{
				UpdatedState: result.UpdatedState,
				Records:      result.Records,
				Unlocked:     result.Unlocked,
			},
			AppliedAt: nowFn(),
		}
		if err := u.CareRepo.SaveExecution(txCtx, execution); err != nil {
			return err
		}

		events = buildCareEvents(u.Engine, state, result, nowFn())
		out = Response{
			UpdatedState: result.UpdatedState,
			Records:      result.Records,
			Unlocked:     result.Unlocked,
		}
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			if errors.Is(err, ports.ErrConflict) {
				u.Metrics.RecordConflict()
			} else {
				u.Metrics.RecordFailure()
			}
		}
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordSuccess(req.Action)
	}

	// Best effort: a lost event never fails an applied transition.
	if u.Notifier != nil {
		for _, evt := range events {
			if err := u.Notifier.Notify(ctx, evt); err != nil {
				log.Printf("care: notify %s: %v", evt.Type, err)
			}
		}
	}

	return out, nil
}

func buildCareEvents(engine garden.Engine, before garden.PlantState, result garden.TransitionResult, now time.Time) []ports.CareEvent {
	after := result.UpdatedState
	var events []ports.CareEvent
	if after.Level > before.Level {
		events = append(events, ports.CareEvent{
			Type:       ports.CareEventLevelUp,
			PlantID:    after.PlantID,
			OccurredAt: now,
			Payload:    map[string]any{"level": after.Level, "xp": after.XP},
		})
	}
	for _, id := range result.Unlocked {
		events = append(events, ports.CareEvent{
			Type:       ports.CareEventBadgeUnlocked,
			PlantID:    after.PlantID,
			OccurredAt: now,
			Payload:    map[string]any{"badge": string(id), "label": engine.LabelFor(id)},
		})
	}
	if before.Health == garden.MinStat && after.Health > garden.MinStat {
		events = append(events, ports.CareEvent{
			Type:       ports.CareEventPlantRevived,
			PlantID:    after.PlantID,
			OccurredAt: now,
			Payload:    map[string]any{"health": after.Health},
		})
	}
	return events
}
