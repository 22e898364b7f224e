// Package tick settles pending decay for a plant without any user action.
// It is how neglect becomes visible: callers (or the plant listing) run a
// tick before showing state.
package tick

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"plantverse/internal/app/ports"
	"plantverse/internal/domain/garden"
)

var ErrInvalidRequest = errors.New("invalid tick request")

type Request struct {
	PlantID string
}

type Response struct {
	UpdatedState garden.PlantState          `json:"updated_state"`
	Records      []garden.InteractionRecord `json:"records"`
	Settled      bool                       `json:"settled"`
}

type UseCase struct {
	TxManager ports.TxManager
	StateRepo ports.PlantStateRepository
	LogRepo   ports.InteractionRepository
	Engine    garden.Engine
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.PlantID = strings.TrimSpace(req.PlantID)
	if req.PlantID == "" {
		return Response{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		state, err := u.StateRepo.GetByPlantID(txCtx, req.PlantID)
		if err != nil {
			return err
		}

		result, err := u.Engine.Apply(state, garden.ActionNone, nowFn())
		if err != nil {
			return err
		}
		if result.ClockSkew {
			log.Printf("tick: clock skew clamped for plant %s", req.PlantID)
		}

		// The engine signals a no-op by not bumping the version.
		if result.UpdatedState.Version == state.Version {
			out = Response{UpdatedState: state}
			return nil
		}

		if err := u.StateRepo.SaveWithVersion(txCtx, result.UpdatedState, state.Version); err != nil {
			return err
		}
		if err := u.LogRepo.Append(txCtx, result.Records); err != nil {
			return err
		}
		out = Response{UpdatedState: result.UpdatedState, Records: result.Records, Settled: true}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}
