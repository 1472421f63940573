package httpadapter

import (
	"context"
	"log/slog"

	"madr/contexts/catalog/novelist-service/application"
	"madr/contexts/catalog/novelist-service/ports"
	httptransport "madr/contexts/catalog/novelist-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateHandler(ctx context.Context, req httptransport.NovelistRequest) (httptransport.NovelistResponse, error) {
	novelist, err := h.Service.Create(ctx, req.Name)
	if err != nil {
		return httptransport.NovelistResponse{}, err
	}
	return novelistResponse(novelist), nil
}

func (h Handler) GetHandler(ctx context.Context, id int64) (httptransport.NovelistResponse, error) {
	novelist, err := h.Service.Get(ctx, id)
	if err != nil {
		return httptransport.NovelistResponse{}, err
	}
	return novelistResponse(novelist), nil
}

func (h Handler) ListHandler(ctx context.Context, filter ports.ListFilter) (httptransport.NovelistListResponse, error) {
	novelists, err := h.Service.List(ctx, filter)
	if err != nil {
		return httptransport.NovelistListResponse{}, err
	}
	resp := httptransport.NovelistListResponse{
		Novelists: make([]httptransport.NovelistResponse, 0, len(novelists)),
	}
	for _, novelist := range novelists {
		resp.Novelists = append(resp.Novelists, novelistResponse(novelist))
	}
	return resp, nil
}

func (h Handler) UpdateHandler(ctx context.Context, id int64, req httptransport.NovelistRequest) (httptransport.NovelistResponse, error) {
	novelist, err := h.Service.Update(ctx, id, req.Name)
	if err != nil {
		return httptransport.NovelistResponse{}, err
	}
	return novelistResponse(novelist), nil
}

func (h Handler) DeleteHandler(ctx context.Context, id int64) (httptransport.MessageResponse, error) {
	if err := h.Service.Delete(ctx, id); err != nil {
		return httptransport.MessageResponse{}, err
	}
	return httptransport.MessageResponse{Message: "Novelist deleted in the MADR"}, nil
}

func novelistResponse(novelist ports.Novelist) httptransport.NovelistResponse {
	return httptransport.NovelistResponse{
		ID:   novelist.ID,
		Name: novelist.Name,
	}
}
