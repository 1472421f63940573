package httpadapter

import (
	"context"
	"log/slog"

	"madr/contexts/identity-access/account-service/application"
	"madr/contexts/identity-access/account-service/ports"
	httptransport "madr/contexts/identity-access/account-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) RegisterHandler(ctx context.Context, req httptransport.CreateAccountRequest) (httptransport.UserResponse, error) {
	user, err := h.Service.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		return httptransport.UserResponse{}, err
	}
	return userResponse(user), nil
}

func (h Handler) LoginHandler(ctx context.Context, identifier, password string) (httptransport.TokenResponse, error) {
	raw, err := h.Service.Login(ctx, identifier, password)
	if err != nil {
		return httptransport.TokenResponse{}, err
	}
	return httptransport.TokenResponse{
		AccessToken: raw,
		TokenType:   "bearer",
	}, nil
}

// ResolveHandler authenticates a bearer token; the returned principal
// feeds the ownership checks of every protected route.
func (h Handler) ResolveHandler(ctx context.Context, raw string) (ports.User, error) {
	return h.Service.Resolve(ctx, raw)
}

func (h Handler) UpdateHandler(ctx context.Context, principal ports.User, targetID int64, req httptransport.UpdateAccountRequest) (httptransport.UserResponse, error) {
	user, err := h.Service.Update(ctx, principal, targetID, req.Username, req.Email, req.Password)
	if err != nil {
		return httptransport.UserResponse{}, err
	}
	return userResponse(user), nil
}

func (h Handler) DeleteHandler(ctx context.Context, principal ports.User, targetID int64) (httptransport.MessageResponse, error) {
	if err := h.Service.Delete(ctx, principal, targetID); err != nil {
		return httptransport.MessageResponse{}, err
	}
	return httptransport.MessageResponse{Message: "Account deleted successfully"}, nil
}

func userResponse(user ports.User) httptransport.UserResponse {
	return httptransport.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}
