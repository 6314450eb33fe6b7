package usecase

import (
	"context"

	"gestao_os/internal/domain/entities"
	"gestao_os/internal/domain/faults"
	"gestao_os/internal/usecase/interfaces"
	"gestao_os/internal/usecase/pipeline"
)

// IClientUseCase exposes the client registration operations. Clients have no
// lifecycle beyond create/update/delete.

type IClientUseCase interface {
	Create(ctx context.Context, cmd CreateClientCommand) (*entities.Client, error)
	Update(ctx context.Context, cmd UpdateClientCommand) (*entities.Client, error)
	Delete(ctx context.Context, cmd DeleteClientCommand) error
	GetByID(ctx context.Context, query GetClientQuery) (*entities.Client, error)
	List(ctx context.Context, query ListClientsQuery) (Page[*entities.Client], error)
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func (u *ClientUseCase) Create(ctx context.Context, cmd CreateClientCommand) (*entities.Client, error) {
	return pipeline.Run(ctx, cmd, u.create)
}

func (u *ClientUseCase) Update(ctx context.Context, cmd UpdateClientCommand) (*entities.Client, error) {
	return pipeline.Run(ctx, cmd, u.update)
}

func (u *ClientUseCase) Delete(ctx context.Context, cmd DeleteClientCommand) error {
	_, err := pipeline.Run(ctx, cmd, u.delete)
	return err
}

func (u *ClientUseCase) GetByID(ctx context.Context, query GetClientQuery) (*entities.Client, error) {
	return pipeline.Run(ctx, query, u.getByID)
}

func (u *ClientUseCase) List(ctx context.Context, query ListClientsQuery) (Page[*entities.Client], error) {
	return pipeline.Run(ctx, query, u.list)
}

func (u *ClientUseCase) create(ctx context.Context, cmd CreateClientCommand) (*entities.Client, error) {
	client, err := entities.NewClient(cmd.LegalName, cmd.TradeName, cmd.CNPJ, cmd.Email, cmd.Phone, cmd.Address, cmd.City, cmd.State, cmd.PostalCode)
	if err != nil {
		return nil, err
	}
	return u.repo.Create(ctx, client)
}

func (u *ClientUseCase) update(ctx context.Context, cmd UpdateClientCommand) (*entities.Client, error) {
	client, err := u.loadClient(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if err := client.UpdateRegistration(cmd.LegalName, cmd.TradeName, cmd.CNPJ, cmd.Email, cmd.Phone, cmd.Address, cmd.City, cmd.State, cmd.PostalCode); err != nil {
		return nil, err
	}
	if err := u.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (u *ClientUseCase) delete(ctx context.Context, cmd DeleteClientCommand) (struct{}, error) {
	client, err := u.loadClient(ctx, cmd.ID)
	if err != nil {
		return struct{}{}, err
	}
	return struct{}{}, u.repo.Delete(ctx, client.ID())
}

func (u *ClientUseCase) getByID(ctx context.Context, query GetClientQuery) (*entities.Client, error) {
	return u.loadClient(ctx, query.ID)
}

func (u *ClientUseCase) list(ctx context.Context, query ListClientsQuery) (Page[*entities.Client], error) {
	items, total, err := u.repo.GetPaged(ctx, query.Page, query.PageSize, query.Filter)
	if err != nil {
		return Page[*entities.Client]{}, err
	}
	return newPage(items, total, query.Page, query.PageSize), nil
}

func (u *ClientUseCase) loadClient(ctx context.Context, id string) (*entities.Client, error) {
	client, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, faults.NewNotFound("client", id)
	}
	return client, nil
}
