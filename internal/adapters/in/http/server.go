// Package http contains the inbound REST adapter: request decoding, use case
// dispatch and the mapping from domain errors onto HTTP statuses.
package http

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/application/usecases/queries"
	"fastfeet/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createRecipientHandler   commands.CreateRecipientCommandHandler
	updateRecipientHandler   commands.UpdateRecipientCommandHandler
	createDeliveryManHandler commands.CreateDeliveryManCommandHandler
	updateDeliveryManHandler commands.UpdateDeliveryManCommandHandler
	deleteDeliveryManHandler commands.DeleteDeliveryManCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderHandler       commands.UpdateOrderCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler
	pickUpOrderHandler       commands.PickUpOrderCommandHandler
	deliverOrderHandler      commands.DeliverOrderCommandHandler
	reportProblemHandler     commands.ReportProblemCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	storeFileHandler         commands.StoreFileCommandHandler

	// Query handlers
	getAllOrdersHandler      queries.GetAllOrdersQueryHandler
	getDeliveriesHandler     queries.GetDeliveriesQueryHandler
	getAllDeliveryMenHandler queries.GetAllDeliveryMenQueryHandler
	getAllRecipientsHandler  queries.GetAllRecipientsQueryHandler
	getProblemsHandler       queries.GetProblemsQueryHandler

	uploadDir string
	baseURL   string
}

// ServerHandlers bundles the use case handlers the server dispatches to.
type ServerHandlers struct {
	CreateRecipient   commands.CreateRecipientCommandHandler
	UpdateRecipient   commands.UpdateRecipientCommandHandler
	CreateDeliveryMan commands.CreateDeliveryManCommandHandler
	UpdateDeliveryMan commands.UpdateDeliveryManCommandHandler
	DeleteDeliveryMan commands.DeleteDeliveryManCommandHandler
	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrder       commands.UpdateOrderCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler
	PickUpOrder       commands.PickUpOrderCommandHandler
	DeliverOrder      commands.DeliverOrderCommandHandler
	ReportProblem     commands.ReportProblemCommandHandler
	CancelOrder       commands.CancelOrderCommandHandler
	StoreFile         commands.StoreFileCommandHandler

	GetAllOrders      queries.GetAllOrdersQueryHandler
	GetDeliveries     queries.GetDeliveriesQueryHandler
	GetAllDeliveryMen queries.GetAllDeliveryMenQueryHandler
	GetAllRecipients  queries.GetAllRecipientsQueryHandler
	GetProblems       queries.GetProblemsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
// uploadDir is where file uploads land; baseURL prefixes the served file URLs.
func NewServer(handlers ServerHandlers, uploadDir, baseURL string) *Server {
	return &Server{
		createRecipientHandler:   handlers.CreateRecipient,
		updateRecipientHandler:   handlers.UpdateRecipient,
		createDeliveryManHandler: handlers.CreateDeliveryMan,
		updateDeliveryManHandler: handlers.UpdateDeliveryMan,
		deleteDeliveryManHandler: handlers.DeleteDeliveryMan,
		createOrderHandler:       handlers.CreateOrder,
		updateOrderHandler:       handlers.UpdateOrder,
		deleteOrderHandler:       handlers.DeleteOrder,
		pickUpOrderHandler:       handlers.PickUpOrder,
		deliverOrderHandler:      handlers.DeliverOrder,
		reportProblemHandler:     handlers.ReportProblem,
		cancelOrderHandler:       handlers.CancelOrder,
		storeFileHandler:         handlers.StoreFile,
		getAllOrdersHandler:      handlers.GetAllOrders,
		getDeliveriesHandler:     handlers.GetDeliveries,
		getAllDeliveryMenHandler: handlers.GetAllDeliveryMen,
		getAllRecipientsHandler:  handlers.GetAllRecipients,
		getProblemsHandler:       handlers.GetProblems,
		uploadDir:                uploadDir,
		baseURL:                  baseURL,
	}
}

// RegisterRoutes wires the REST endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/recipients", s.GetRecipients)
	api.POST("/recipients", s.CreateRecipient)
	api.PUT("/recipients/:id", s.UpdateRecipient)

	api.GET("/deliverymen", s.GetDeliveryMen)
	api.POST("/deliverymen", s.CreateDeliveryMan)
	api.PUT("/deliverymen/:id", s.UpdateDeliveryMan)
	api.DELETE("/deliverymen/:id", s.DeleteDeliveryMan)
	api.GET("/deliverymen/:id/deliveries", s.GetDeliveries)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/:id/pickup", s.PickUpOrder)
	api.POST("/orders/:id/deliver", s.DeliverOrder)
	api.POST("/orders/:id/problems", s.ReportProblem)
	api.GET("/orders/:id/problems", s.GetOrderProblems)

	api.GET("/problems", s.GetProblems)
	api.DELETE("/problems/:id", s.CancelOrderByProblem)

	api.POST("/files", s.UploadFile)
}

// pathUUID parses the named path parameter as a UUID.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// GetRecipients handles GET /api/v1/recipients.
func (s *Server) GetRecipients(ctx echo.Context) error {
	recipients, err := s.getAllRecipientsHandler.Handle(ctx.Request().Context(), queries.NewGetAllRecipientsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]RecipientResponse, len(recipients))
	for i, r := range recipients {
		response[i] = RecipientResponse{
			ID:                r.ID.String(),
			Name:              r.Name,
			Street:            r.Street,
			Number:            r.Number,
			AdditionalDetails: r.AdditionalDetails,
			City:              r.City,
			State:             r.State,
			PostalCode:        r.PostalCode,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateRecipient handles POST /api/v1/recipients.
func (s *Server) CreateRecipient(ctx echo.Context) error {
	var req NewRecipientRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	recipientID := kernel.NewUUID()
	cmd, err := commands.NewCreateRecipientCommand(
		recipientID,
		req.Name, req.Street,
		req.Number,
		req.AdditionalDetails, req.City, req.State, req.PostalCode,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createRecipientHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: recipientID.String()})
}

// UpdateRecipient handles PUT /api/v1/recipients/:id.
func (s *Server) UpdateRecipient(ctx echo.Context) error {
	recipientID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid recipient id")
	}

	var req NewRecipientRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateRecipientCommand(
		recipientID,
		req.Name, req.Street,
		req.Number,
		req.AdditionalDetails, req.City, req.State, req.PostalCode,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateRecipientHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveryMen handles GET /api/v1/deliverymen with an optional ?q= name filter.
func (s *Server) GetDeliveryMen(ctx echo.Context) error {
	query := queries.NewGetAllDeliveryMenQuery(ctx.QueryParam("q"))

	deliveryMen, err := s.getAllDeliveryMenHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]DeliveryManResponse, len(deliveryMen))
	for i, dm := range deliveryMen {
		response[i] = DeliveryManResponse{
			ID:        dm.ID.String(),
			Name:      dm.Name,
			Email:     dm.Email,
			AvatarURL: dm.AvatarURL,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDeliveryMan handles POST /api/v1/deliverymen.
func (s *Server) CreateDeliveryMan(ctx echo.Context) error {
	var req NewDeliveryManRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	avatarID, err := optionalUUID(req.AvatarID)
	if err != nil {
		return badRequest(ctx, "Invalid avatar id")
	}

	deliveryManID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryManCommand(deliveryManID, req.Name, req.Email, avatarID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createDeliveryManHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: deliveryManID.String()})
}

// UpdateDeliveryMan handles PUT /api/v1/deliverymen/:id.
func (s *Server) UpdateDeliveryMan(ctx echo.Context) error {
	deliveryManID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid delivery man id")
	}

	var req UpdateDeliveryManRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	avatarID, err := optionalUUID(req.AvatarID)
	if err != nil {
		return badRequest(ctx, "Invalid avatar id")
	}

	cmd, err := commands.NewUpdateDeliveryManCommand(deliveryManID, req.Name, req.Email, avatarID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateDeliveryManHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteDeliveryMan handles DELETE /api/v1/deliverymen/:id.
func (s *Server) DeleteDeliveryMan(ctx echo.Context) error {
	deliveryManID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid delivery man id")
	}

	cmd, err := commands.NewDeleteDeliveryManCommand(deliveryManID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteDeliveryManHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveries handles GET /api/v1/deliverymen/:id/deliveries.
// The default scope is open deliveries; ?delivered=true lists completed ones.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	deliveryManID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid delivery man id")
	}

	delivered := false
	if raw := ctx.QueryParam("delivered"); raw != "" {
		delivered, err = strconv.ParseBool(raw)
		if err != nil {
			return badRequest(ctx, "Invalid delivered filter")
		}
	}

	query, err := queries.NewGetDeliveriesQuery(deliveryManID, delivered)
	if err != nil {
		return writeError(ctx, err)
	}

	deliveries, err := s.getDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]DeliveryResponse, len(deliveries))
	for i, d := range deliveries {
		response[i] = DeliveryResponse{
			ID:         d.ID.String(),
			Product:    d.Product,
			Status:     d.Status.String(),
			StartDate:  d.StartDate,
			EndDate:    d.EndDate,
			CanceledAt: d.CanceledAt,
			CreatedAt:  d.CreatedAt,
			Recipient: OrderRecipientResponse{
				Name:       d.Recipient.Name,
				Street:     d.Recipient.Street,
				Number:     d.Recipient.Number,
				City:       d.Recipient.City,
				State:      d.Recipient.State,
				PostalCode: d.Recipient.PostalCode,
			},
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderResponse{
			ID:           o.ID.String(),
			Product:      o.Product,
			Status:       o.Status.String(),
			StartDate:    o.StartDate,
			EndDate:      o.EndDate,
			CanceledAt:   o.CanceledAt,
			SignatureURL: o.SignatureURL,
			CreatedAt:    o.CreatedAt,
			Recipient: OrderRecipientResponse{
				Name:       o.Recipient.Name,
				Street:     o.Recipient.Street,
				Number:     o.Recipient.Number,
				City:       o.Recipient.City,
				State:      o.Recipient.State,
				PostalCode: o.Recipient.PostalCode,
			},
			DeliveryMan: OrderDeliveryManResponse{
				Name:  o.DeliveryMan.Name,
				Email: o.DeliveryMan.Email,
			},
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	recipientID, err := kernel.UUIDFromString(req.RecipientID)
	if err != nil {
		return badRequest(ctx, "Invalid recipient id")
	}

	deliveryManID, err := kernel.UUIDFromString(req.DeliveryManID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery man id")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, recipientID, deliveryManID, req.Product)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// UpdateOrder handles PUT /api/v1/orders/:id.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	recipientID, err := optionalUUID(req.RecipientID)
	if err != nil {
		return badRequest(ctx, "Invalid recipient id")
	}

	deliveryManID, err := optionalUUID(req.DeliveryManID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery man id")
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, req.Product, recipientID, deliveryManID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PickUpOrder handles POST /api/v1/orders/:id/pickup.
func (s *Server) PickUpOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req PickUpOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	deliveryManID, err := kernel.UUIDFromString(req.DeliveryManID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery man id")
	}

	cmd, err := commands.NewPickUpOrderCommand(orderID, deliveryManID, req.StartDate)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.pickUpOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeliverOrder handles POST /api/v1/orders/:id/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req DeliverOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	deliveryManID, err := kernel.UUIDFromString(req.DeliveryManID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery man id")
	}

	signatureID, err := kernel.UUIDFromString(req.SignatureID)
	if err != nil {
		return badRequest(ctx, "Invalid signature id")
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID, deliveryManID, signatureID, req.EndDate)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReportProblem handles POST /api/v1/orders/:id/problems.
func (s *Server) ReportProblem(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req NewProblemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	problemID := kernel.NewUUID()
	cmd, err := commands.NewReportProblemCommand(problemID, orderID, req.Description)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.reportProblemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: problemID.String()})
}

// GetProblems handles GET /api/v1/problems.
func (s *Server) GetProblems(ctx echo.Context) error {
	problems, err := s.getProblemsHandler.Handle(ctx.Request().Context(), queries.NewGetProblemsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, problemResponses(problems))
}

// GetOrderProblems handles GET /api/v1/orders/:id/problems.
func (s *Server) GetOrderProblems(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderProblemsQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	problems, err := s.getProblemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, problemResponses(problems))
}

// CancelOrderByProblem handles DELETE /api/v1/problems/:id. The problem record
// stays in place; the order it refers to is canceled.
func (s *Server) CancelOrderByProblem(ctx echo.Context) error {
	problemID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid problem id")
	}

	cmd, err := commands.NewCancelOrderCommand(problemID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UploadFile handles POST /api/v1/files with a multipart "file" part. The
// bytes land in the upload directory under a collision-free name and the
// metadata is registered for avatar and signature references.
func (s *Server) UploadFile(ctx echo.Context) error {
	header, err := ctx.FormFile("file")
	if err != nil {
		return badRequest(ctx, "Missing file part")
	}

	src, err := header.Open()
	if err != nil {
		return badRequest(ctx, "Unreadable file part")
	}
	defer src.Close()

	fileID := kernel.NewUUID()
	storedName := fileID.String() + filepath.Ext(header.Filename)
	path := filepath.Join(s.uploadDir, storedName)

	dst, err := os.Create(path)
	if err != nil {
		return writeError(ctx, err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		return writeError(ctx, err)
	}

	url := fmt.Sprintf("%s/files/%s", s.baseURL, storedName)
	cmd, err := commands.NewStoreFileCommand(fileID, header.Filename, path, url)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.storeFileHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, FileResponse{
		ID:   fileID.String(),
		Name: header.Filename,
		Path: path,
		URL:  url,
	})
}

// optionalUUID parses a nullable request field.
func optionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

// problemResponses maps problem read models onto their JSON form.
func problemResponses(problems []queries.GetProblemsQueryResponse) []ProblemResponse {
	response := make([]ProblemResponse, len(problems))
	for i, p := range problems {
		response[i] = ProblemResponse{
			ID:          p.ID.String(),
			OrderID:     p.OrderID.String(),
			Description: p.Description,
			CreatedAt:   p.CreatedAt,
		}
	}
	return response
}
