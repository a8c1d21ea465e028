package services

import (
	"github.com/corebanc/bankledger_app/internal/core/domain"
	portsrepo "github.com/corebanc/bankledger_app/internal/core/ports/repositories"
	portssvc "github.com/corebanc/bankledger_app/internal/core/ports/services"
	"github.com/corebanc/bankledger_app/internal/platform/config"
)

// NewServiceContainer creates the service container with its dependencies
// wired. The account factories are built once here and fix which account
// types the service can open.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	factories := domain.NewAccountFactories()

	return &portssvc.ServiceContainer{
		Account: NewAccountService(repos.AccountRepo, repos.ClientRepo, repos.TransactionRepo, factories),
		Client:  NewClientService(repos.ClientRepo, repos.AccountRepo),
		Auth:    NewAuthService(cfg, repos.ClientRepo),
	}
}

var (
	_ portssvc.AccountSvcFacade = (*accountService)(nil)
	_ portssvc.ClientSvcFacade  = (*clientService)(nil)
	_ portssvc.AuthSvcFacade    = (*authService)(nil)
)
