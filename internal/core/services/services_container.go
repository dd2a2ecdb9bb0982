package services

import (
	portsrepo "github.com/SscSPs/money_transfer_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_transfer_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// Both services share the same account store, which is what makes transfers and direct
// balance adjustments serialize on the same per-account locks.
func NewServiceContainer(repos portsrepo.RepositoryProvider, transferOptions ...TransferServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:  NewAccountService(repos.AccountStore),
		Transfer: NewTransferService(repos.AccountStore, repos.TransferLedger, transferOptions...),
	}
}
