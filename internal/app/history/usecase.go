package history

import (
	"context"
	"errors"
	"strings"
	"time"

	"plantverse/internal/app/ports"
	"plantverse/internal/domain/garden"
)

var ErrInvalidRequest = errors.New("invalid history request")

const defaultLimit = 20

type Request struct {
	PlantID string
	Limit   int
	From    int64
	To      int64
}

type Response struct {
	Records []garden.InteractionRecord `json:"records"`
}

type UseCase struct {
	LogRepo ports.InteractionRepository
}

// Execute returns a plant's interaction log, newest first.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.PlantID = strings.TrimSpace(req.PlantID)
	if req.PlantID == "" {
		return Response{}, ErrInvalidRequest
	}
	if req.Limit <= 0 {
		req.Limit = defaultLimit
	}

	q := ports.InteractionQuery{Limit: req.Limit}
	if req.From > 0 {
		q.From = time.Unix(req.From, 0)
	}
	if req.To > 0 {
		q.To = time.Unix(req.To, 0)
	}

	records, err := u.LogRepo.ListByPlantID(ctx, req.PlantID, q)
	if err != nil {
		return Response{}, err
	}
	return Response{Records: records}, nil
}
