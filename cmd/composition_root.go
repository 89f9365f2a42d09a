package cmd

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	adapterhttp "starwings/internal/adapters/in/http"
	"starwings/internal/adapters/out/postgres"
	"starwings/internal/core/application/usecases/commands"
	"starwings/internal/core/application/usecases/queries"
	"starwings/internal/core/domain/model/access"
	"starwings/internal/core/domain/model/kernel"
	"starwings/internal/core/domain/services"
	"starwings/internal/core/ports"
	"starwings/internal/jobs"
	"starwings/internal/pkg/errs"
)

type CompositionRoot struct {
	gormDB           *gorm.DB
	uowFactory       postgres.GormUnitOfWorkFactory
	handleFactory    services.FlightHandleFactory
	servicePrincipal kernel.Principal
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, notifier ports.Notifier) (CompositionRoot, error) {
	namespace, err := kernel.UUIDFromString(config.FlightNamespace)
	if err != nil {
		return CompositionRoot{}, err
	}
	handleFactory, err := services.NewFlightHandleFactory(namespace)
	if err != nil {
		return CompositionRoot{}, err
	}
	servicePrincipal, err := kernel.NewPrincipal(config.BootstrapPrincipal)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:           gormDB,
		uowFactory:       *postgres.NewGormUnitOfWorkFactory(gormDB, notifier),
		handleFactory:    handleFactory,
		servicePrincipal: servicePrincipal,
	}, nil
}

// BootstrapAccessRegistry seeds the role registry on first start. The given
// principal becomes the default admin; an already bootstrapped registry is
// left untouched.
func (c *CompositionRoot) BootstrapAccessRegistry(ctx context.Context, principal string) error {
	admin, err := kernel.NewPrincipal(principal)
	if err != nil {
		return err
	}

	uow := c.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err = uow.AccessRepository().Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	registry, err := access.NewRegistry(admin)
	if err != nil {
		return err
	}
	if err = uow.AccessRepository().Save(ctx, registry); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

func (c *CompositionRoot) CreateGrantRoleCommandHandler() commands.GrantRoleCommandHandler {
	var f commands.AccessUoWFactory = FuncAccessUoWFactory(func() commands.AccessUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGrantRoleCommandHandler(f)
}

func (c *CompositionRoot) CreateRevokeRoleCommandHandler() commands.RevokeRoleCommandHandler {
	var f commands.AccessUoWFactory = FuncAccessUoWFactory(func() commands.AccessUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRevokeRoleCommandHandler(f)
}

func (c *CompositionRoot) CreateRenounceRoleCommandHandler() commands.RenounceRoleCommandHandler {
	var f commands.AccessUoWFactory = FuncAccessUoWFactory(func() commands.AccessUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRenounceRoleCommandHandler(f)
}

func (c *CompositionRoot) CreateSetRoleAdminCommandHandler() commands.SetRoleAdminCommandHandler {
	var f commands.AccessUoWFactory = FuncAccessUoWFactory(func() commands.AccessUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetRoleAdminCommandHandler(f)
}

func (c *CompositionRoot) CreateAddConopsCommandHandler() commands.AddConopsCommandHandler {
	var f commands.ConopsUoWFactory = FuncConopsUoWFactory(func() commands.ConopsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddConopsCommandHandler(f)
}

func (c *CompositionRoot) CreateSetConopsActivationCommandHandler() commands.SetConopsActivationCommandHandler {
	var f commands.ConopsUoWFactory = FuncConopsUoWFactory(func() commands.ConopsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetConopsActivationCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateSetDeliveryStatusCommandHandler() commands.SetDeliveryStatusCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetDeliveryStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAddPilotCommandHandler() commands.AddPilotCommandHandler {
	var f commands.CrewUoWFactory = FuncCrewUoWFactory(func() commands.CrewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddPilotCommandHandler(f)
}

func (c *CompositionRoot) CreateDeletePilotCommandHandler() commands.DeletePilotCommandHandler {
	var f commands.CrewUoWFactory = FuncCrewUoWFactory(func() commands.CrewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeletePilotCommandHandler(f)
}

func (c *CompositionRoot) CreateAddDroneCommandHandler() commands.AddDroneCommandHandler {
	var f commands.CrewUoWFactory = FuncCrewUoWFactory(func() commands.CrewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddDroneCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteDroneCommandHandler() commands.DeleteDroneCommandHandler {
	var f commands.CrewUoWFactory = FuncCrewUoWFactory(func() commands.CrewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteDroneCommandHandler(f)
}

func (c *CompositionRoot) CreateAllocateFlightCommandHandler() commands.AllocateFlightCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAllocateFlightCommandHandler(f, c.handleFactory)
}

func (c *CompositionRoot) CreateInitializeFlightCommandHandler() commands.InitializeFlightCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewInitializeFlightCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeFlightStatusCommandHandler() commands.ChangeFlightStatusCommandHandler {
	var f commands.FlightUoWFactory = FuncFlightUoWFactory(func() commands.FlightUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeFlightStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelFlightCommandHandler() commands.CancelFlightCommandHandler {
	var f commands.FlightUoWFactory = FuncFlightUoWFactory(func() commands.FlightUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelFlightCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteFlightCheckCommandHandler() commands.CompleteFlightCheckCommandHandler {
	var f commands.FlightUoWFactory = FuncFlightUoWFactory(func() commands.FlightUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteFlightCheckCommandHandler(f)
}

func (c *CompositionRoot) CreateSetAirRiskValidationCommandHandler() commands.SetAirRiskValidationCommandHandler {
	var f commands.FlightUoWFactory = FuncFlightUoWFactory(func() commands.FlightUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetAirRiskValidationCommandHandler(f)
}

func (c *CompositionRoot) CreatePickUpParcelCommandHandler() commands.PickUpParcelCommandHandler {
	var f commands.FlightUoWFactory = FuncFlightUoWFactory(func() commands.FlightUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPickUpParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateDeliverParcelCommandHandler() commands.DeliverParcelCommandHandler {
	var f commands.FlightUoWFactory = FuncFlightUoWFactory(func() commands.FlightUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeliverParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateAddCheckpointCommandHandler() commands.AddCheckpointCommandHandler {
	var f commands.FlightUoWFactory = FuncFlightUoWFactory(func() commands.FlightUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCheckpointCommandHandler(f)
}

func (c *CompositionRoot) CreateAddRiskEventCommandHandler() commands.AddRiskEventCommandHandler {
	var f commands.FlightUoWFactory = FuncFlightUoWFactory(func() commands.FlightUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddRiskEventCommandHandler(f)
}

func (c *CompositionRoot) CreateGetRolesQueryHandler() queries.GetRolesQueryHandler {
	return queries.NewGetRolesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllConopsQueryHandler() queries.GetAllConopsQueryHandler {
	return queries.NewGetAllConopsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetConopsQueryHandler() queries.GetConopsQueryHandler {
	return queries.NewGetConopsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllDeliveriesQueryHandler() queries.GetAllDeliveriesQueryHandler {
	return queries.NewGetAllDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPilotsQueryHandler() queries.GetPilotsQueryHandler {
	return queries.NewGetPilotsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPilotQueryHandler() queries.GetPilotQueryHandler {
	return queries.NewGetPilotQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDronesQueryHandler() queries.GetDronesQueryHandler {
	return queries.NewGetDronesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDroneQueryHandler() queries.GetDroneQueryHandler {
	return queries.NewGetDroneQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFlightHandlesQueryHandler() queries.GetFlightHandlesQueryHandler {
	return queries.NewGetFlightHandlesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFlightQueryHandler() queries.GetFlightQueryHandler {
	return queries.NewGetFlightQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the full API surface.
func (c *CompositionRoot) CreateHTTPServer() *adapterhttp.Server {
	return adapterhttp.NewServer(
		adapterhttp.CommandHandlers{
			GrantRole:            c.CreateGrantRoleCommandHandler(),
			RevokeRole:           c.CreateRevokeRoleCommandHandler(),
			RenounceRole:         c.CreateRenounceRoleCommandHandler(),
			SetRoleAdmin:         c.CreateSetRoleAdminCommandHandler(),
			AddConops:            c.CreateAddConopsCommandHandler(),
			SetConopsActivation:  c.CreateSetConopsActivationCommandHandler(),
			CreateDelivery:       c.CreateCreateDeliveryCommandHandler(),
			SetDeliveryStatus:    c.CreateSetDeliveryStatusCommandHandler(),
			AddPilot:             c.CreateAddPilotCommandHandler(),
			DeletePilot:          c.CreateDeletePilotCommandHandler(),
			AddDrone:             c.CreateAddDroneCommandHandler(),
			DeleteDrone:          c.CreateDeleteDroneCommandHandler(),
			AllocateFlight:       c.CreateAllocateFlightCommandHandler(),
			InitializeFlight:     c.CreateInitializeFlightCommandHandler(),
			ChangeFlightStatus:   c.CreateChangeFlightStatusCommandHandler(),
			CancelFlight:         c.CreateCancelFlightCommandHandler(),
			CompleteFlightCheck:  c.CreateCompleteFlightCheckCommandHandler(),
			SetAirRiskValidation: c.CreateSetAirRiskValidationCommandHandler(),
			PickUpParcel:         c.CreatePickUpParcelCommandHandler(),
			DeliverParcel:        c.CreateDeliverParcelCommandHandler(),
			AddCheckpoint:        c.CreateAddCheckpointCommandHandler(),
			AddRiskEvent:         c.CreateAddRiskEventCommandHandler(),
		},
		adapterhttp.QueryHandlers{
			GetRoles:         c.CreateGetRolesQueryHandler(),
			GetAllConops:     c.CreateGetAllConopsQueryHandler(),
			GetConops:        c.CreateGetConopsQueryHandler(),
			GetAllDeliveries: c.CreateGetAllDeliveriesQueryHandler(),
			GetDelivery:      c.CreateGetDeliveryQueryHandler(),
			GetPilots:        c.CreateGetPilotsQueryHandler(),
			GetPilot:         c.CreateGetPilotQueryHandler(),
			GetDrones:        c.CreateGetDronesQueryHandler(),
			GetDrone:         c.CreateGetDroneQueryHandler(),
			GetFlightHandles: c.CreateGetFlightHandlesQueryHandler(),
			GetFlight:        c.CreateGetFlightQueryHandler(),
		},
	)
}

// CreateJobManager assembles the scheduled background jobs. The jobs read
// through the query side as the bootstrap principal.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.servicePrincipal,
		c.CreateGetFlightHandlesQueryHandler(),
		c.CreateGetFlightQueryHandler(),
		c.CreateGetAllDeliveriesQueryHandler(),
		logger,
	)
}

type FuncAccessUoWFactory func() commands.AccessUoW

func (f FuncAccessUoWFactory) Create() commands.AccessUoW {
	return f()
}

type FuncConopsUoWFactory func() commands.ConopsUoW

func (f FuncConopsUoWFactory) Create() commands.ConopsUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncCrewUoWFactory func() commands.CrewUoW

func (f FuncCrewUoWFactory) Create() commands.CrewUoW {
	return f()
}

type FuncFlightUoWFactory func() commands.FlightUoW

func (f FuncFlightUoWFactory) Create() commands.FlightUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
