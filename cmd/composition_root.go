package cmd

import (
	"log/slog"

	adapterhttp "fastfeet/internal/adapters/in/http"
	"fastfeet/internal/adapters/out/mailer"
	"fastfeet/internal/adapters/out/memqueue"
	"fastfeet/internal/adapters/out/postgres"
	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/application/usecases/queries"
	"fastfeet/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	queue      *memqueue.Queue
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	notifier := mailer.NewLogNotifier(logger)

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		queue:      memqueue.NewQueue(notifier, logger),
		logger:     logger,
	}
}

// Queue exposes the notification queue for shutdown handling.
func (c *CompositionRoot) Queue() *memqueue.Queue {
	return c.queue
}

// CreateJobManager wires the background jobs onto the queue and the read side.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.queue, c.CreateGetPickupReportQueryHandler(), c.logger)
}

// CreateServer assembles the HTTP server with every use case handler.
func (c *CompositionRoot) CreateServer() *adapterhttp.Server {
	handlers := adapterhttp.ServerHandlers{
		CreateRecipient:   c.CreateCreateRecipientCommandHandler(),
		UpdateRecipient:   c.CreateUpdateRecipientCommandHandler(),
		CreateDeliveryMan: c.CreateCreateDeliveryManCommandHandler(),
		UpdateDeliveryMan: c.CreateUpdateDeliveryManCommandHandler(),
		DeleteDeliveryMan: c.CreateDeleteDeliveryManCommandHandler(),
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		UpdateOrder:       c.CreateUpdateOrderCommandHandler(),
		DeleteOrder:       c.CreateDeleteOrderCommandHandler(),
		PickUpOrder:       c.CreatePickUpOrderCommandHandler(),
		DeliverOrder:      c.CreateDeliverOrderCommandHandler(),
		ReportProblem:     c.CreateReportProblemCommandHandler(),
		CancelOrder:       c.CreateCancelOrderCommandHandler(),
		StoreFile:         c.CreateStoreFileCommandHandler(),
		GetAllOrders:      c.CreateGetAllOrdersQueryHandler(),
		GetDeliveries:     c.CreateGetDeliveriesQueryHandler(),
		GetAllDeliveryMen: c.CreateGetAllDeliveryMenQueryHandler(),
		GetAllRecipients:  c.CreateGetAllRecipientsQueryHandler(),
		GetProblems:       c.CreateGetProblemsQueryHandler(),
	}

	return adapterhttp.NewServer(handlers, c.config.UploadDir, c.config.BaseURL)
}

func (c *CompositionRoot) CreateCreateRecipientCommandHandler() commands.CreateRecipientCommandHandler {
	var f commands.RecipientUoWFactory = FuncRecipientUoWFactory(func() commands.RecipientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRecipientCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateRecipientCommandHandler() commands.UpdateRecipientCommandHandler {
	var f commands.RecipientUoWFactory = FuncRecipientUoWFactory(func() commands.RecipientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateRecipientCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDeliveryManCommandHandler() commands.CreateDeliveryManCommandHandler {
	var f commands.DeliveryManUoWFactory = FuncDeliveryManUoWFactory(func() commands.DeliveryManUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryManCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDeliveryManCommandHandler() commands.UpdateDeliveryManCommandHandler {
	var f commands.DeliveryManUoWFactory = FuncDeliveryManUoWFactory(func() commands.DeliveryManUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryManCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteDeliveryManCommandHandler() commands.DeleteDeliveryManCommandHandler {
	var f commands.DeliveryManUoWFactory = FuncDeliveryManUoWFactory(func() commands.DeliveryManUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteDeliveryManCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.fullUoWFactory(), c.queue)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.fullUoWFactory(), c.queue)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.fullUoWFactory(), c.queue)
}

func (c *CompositionRoot) CreatePickUpOrderCommandHandler() commands.PickUpOrderCommandHandler {
	return commands.NewPickUpOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateReportProblemCommandHandler() commands.ReportProblemCommandHandler {
	return commands.NewReportProblemCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.fullUoWFactory(), c.queue)
}

func (c *CompositionRoot) CreateStoreFileCommandHandler() commands.StoreFileCommandHandler {
	var f commands.FileUoWFactory = FuncFileUoWFactory(func() commands.FileUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStoreFileCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveriesQueryHandler() queries.GetDeliveriesQueryHandler {
	return queries.NewGetDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllDeliveryMenQueryHandler() queries.GetAllDeliveryMenQueryHandler {
	return queries.NewGetAllDeliveryMenQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllRecipientsQueryHandler() queries.GetAllRecipientsQueryHandler {
	return queries.NewGetAllRecipientsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProblemsQueryHandler() queries.GetProblemsQueryHandler {
	return queries.NewGetProblemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPickupReportQueryHandler() queries.GetPickupReportQueryHandler {
	return queries.NewGetPickupReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncRecipientUoWFactory func() commands.RecipientUoW

func (f FuncRecipientUoWFactory) Create() commands.RecipientUoW {
	return f()
}

type FuncDeliveryManUoWFactory func() commands.DeliveryManUoW

func (f FuncDeliveryManUoWFactory) Create() commands.DeliveryManUoW {
	return f()
}

type FuncFileUoWFactory func() commands.FileUoW

func (f FuncFileUoWFactory) Create() commands.FileUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
