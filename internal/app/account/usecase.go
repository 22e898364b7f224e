package account

import (
	"context"
	"errors"
	"strings"
	"time"

	"plantverse/internal/app/ports"

	"github.com/google/uuid"
)

var ErrInvalidRequest = errors.New("invalid register request")

type RegisterRequest struct {
	Username string
	Email    string
}

type RegisterResponse struct {
	Owner    ports.OwnerRecord `json:"owner"`
	Existing bool              `json:"existing"`
}

type UseCase struct {
	TxManager ports.TxManager
	Owners    ports.OwnerRepository
	Now       func() time.Time
}

// Register creates an owner, or welcomes back an existing one with the
// same username.
func (u UseCase) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" {
		return RegisterResponse{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out RegisterResponse
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := u.Owners.GetByUsername(txCtx, req.Username)
		if err == nil {
			out = RegisterResponse{Owner: existing, Existing: true}
			return nil
		}
		if !errors.Is(err, ports.ErrNotFound) {
			return err
		}

		owner := ports.OwnerRecord{
			OwnerID:   uuid.NewString(),
			Username:  req.Username,
			Email:     req.Email,
			CreatedAt: nowFn(),
		}
		if err := u.Owners.Create(txCtx, owner); err != nil {
			return err
		}
		out = RegisterResponse{Owner: owner}
		return nil
	})
	if err != nil {
		return RegisterResponse{}, err
	}
	return out, nil
}
