package plants

import (
	"context"
	"errors"
	"strings"
	"time"

	"plantverse/internal/app/ports"
	"plantverse/internal/app/tick"
	"plantverse/internal/domain/garden"

	"github.com/google/uuid"
)

var ErrInvalidRequest = errors.New("invalid plant request")

type CreateRequest struct {
	OwnerID string
	Name    string
}

type GetRequest struct {
	PlantID string
}

type ListRequest struct {
	OwnerID string
}

type Response struct {
	Plant garden.PlantState `json:"plant"`
}

type ListResponse struct {
	Plants []garden.PlantState `json:"plants"`
}

type UseCase struct {
	TxManager ports.TxManager
	StateRepo ports.PlantStateRepository
	Tick      tick.UseCase
	Engine    garden.Engine
	Now       func() time.Time
}

func (u UseCase) Create(ctx context.Context, req CreateRequest) (Response, error) {
	req.OwnerID = strings.TrimSpace(req.OwnerID)
	req.Name = strings.TrimSpace(req.Name)
	if req.OwnerID == "" || req.Name == "" {
		return Response{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	state := u.Engine.NewPlantState(req.OwnerID, uuid.NewString(), req.Name, nowFn())
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		return u.StateRepo.SaveWithVersion(txCtx, state, 0)
	})
	if err != nil {
		return Response{}, err
	}
	return Response{Plant: state}, nil
}

// Get settles pending decay before returning, so callers always see the
// plant as it is now, not as it was at the last interaction.
func (u UseCase) Get(ctx context.Context, req GetRequest) (Response, error) {
	req.PlantID = strings.TrimSpace(req.PlantID)
	if req.PlantID == "" {
		return Response{}, ErrInvalidRequest
	}

	out, err := u.Tick.Execute(ctx, tick.Request{PlantID: req.PlantID})
	if err != nil {
		return Response{}, err
	}
	return Response{Plant: out.UpdatedState}, nil
}

func (u UseCase) List(ctx context.Context, req ListRequest) (ListResponse, error) {
	req.OwnerID = strings.TrimSpace(req.OwnerID)
	if req.OwnerID == "" {
		return ListResponse{}, ErrInvalidRequest
	}

	states, err := u.StateRepo.ListByOwnerID(ctx, req.OwnerID)
	if err != nil {
		return ListResponse{}, err
	}

	settled := make([]garden.PlantState, 0, len(states))
	for _, state := range states {
		out, err := u.Tick.Execute(ctx, tick.Request{PlantID: state.PlantID})
		if err != nil {
			return ListResponse{}, err
		}
		settled = append(settled, out.UpdatedState)
	}
	return ListResponse{Plants: settled}, nil
}
