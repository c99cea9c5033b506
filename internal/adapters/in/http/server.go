// Package http exposes the application use cases over a REST API built on
// echo. Handlers translate between JSON request bodies and the typed
// commands and queries of the application layer.
package http

import (
	"context"
	"net/http"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/application/usecases/queries"
	"inventory/internal/core/domain/model/category"
	"inventory/internal/core/domain/model/customer"
	"inventory/internal/core/domain/model/exportorder"
	"inventory/internal/core/domain/model/order"
	"inventory/internal/core/domain/model/product"
	"inventory/internal/core/domain/model/supplier"

	"github.com/labstack/echo/v4"
)

// Use-case interfaces consumed by the HTTP layer. Each mirrors the Handle
// method of the corresponding application handler so tests can substitute
// stubs without a database.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	UpdateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderCommand) (*order.Order, error)
	}
	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (*order.Order, error)
	}
	GetAllOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetAllOrdersQuery) ([]queries.OrderResponse, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (*queries.OrderResponse, error)
	}

	CreateExportOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateExportOrderCommand) (*exportorder.ExportOrder, error)
	}
	UpdateExportOrderHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateExportOrderCommand) (*exportorder.ExportOrder, error)
	}
	ChangeExportOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeExportOrderStatusCommand) (*exportorder.ExportOrder, error)
	}
	GetAllExportOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetAllExportOrdersQuery) ([]queries.ExportOrderResponse, error)
	}
	GetExportOrderHandler interface {
		Handle(ctx context.Context, query queries.GetExportOrderQuery) (*queries.ExportOrderResponse, error)
	}

	CreateProductHandler interface {
		Handle(ctx context.Context, cmd commands.CreateProductCommand) (*product.Product, error)
	}
	UpdateProductHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateProductCommand) (*product.Product, error)
	}
	ChangeProductActivationHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeProductActivationCommand) (*product.Product, error)
	}
	GetAllProductsHandler interface {
		Handle(ctx context.Context, query queries.GetAllProductsQuery) ([]queries.ProductResponse, error)
	}
	GetProductHandler interface {
		Handle(ctx context.Context, query queries.GetProductQuery) (*queries.ProductResponse, error)
	}
	GetProductsWithCategoriesHandler interface {
		Handle(ctx context.Context, query queries.GetProductsWithCategoriesQuery) ([]queries.ProductWithCategoryResponse, error)
	}

	CreateCategoryHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCategoryCommand) (*category.Category, error)
	}
	UpdateCategoryHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateCategoryCommand) (*category.Category, error)
	}
	ChangeCategoryActivationHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeCategoryActivationCommand) (*category.Category, error)
	}
	GetAllCategoriesHandler interface {
		Handle(ctx context.Context, query queries.GetAllCategoriesQuery) ([]queries.CategoryResponse, error)
	}
	GetCategoryHandler interface {
		Handle(ctx context.Context, query queries.GetCategoryQuery) (*queries.CategoryResponse, error)
	}

	CreateSupplierHandler interface {
		Handle(ctx context.Context, cmd commands.CreateSupplierCommand) (*supplier.Supplier, error)
	}
	UpdateSupplierHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateSupplierCommand) (*supplier.Supplier, error)
	}
	ChangeSupplierActivationHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeSupplierActivationCommand) (*supplier.Supplier, error)
	}
	GetAllSuppliersHandler interface {
		Handle(ctx context.Context, query queries.GetAllSuppliersQuery) ([]queries.SupplierResponse, error)
	}
	GetSupplierHandler interface {
		Handle(ctx context.Context, query queries.GetSupplierQuery) (*queries.SupplierResponse, error)
	}

	CreateCustomerHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCustomerCommand) (*customer.Customer, error)
	}
	UpdateCustomerHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateCustomerCommand) (*customer.Customer, error)
	}
	ChangeCustomerActivationHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeCustomerActivationCommand) (*customer.Customer, error)
	}
	GetAllCustomersHandler interface {
		Handle(ctx context.Context, query queries.GetAllCustomersQuery) ([]queries.CustomerResponse, error)
	}
	GetCustomerHandler interface {
		Handle(ctx context.Context, query queries.GetCustomerQuery) (*queries.CustomerResponse, error)
	}
)

// OrderHandlers groups the use cases behind the /api/orders routes.
type OrderHandlers struct {
	Create       CreateOrderHandler
	Update       UpdateOrderHandler
	ChangeStatus ChangeOrderStatusHandler
	GetAll       GetAllOrdersHandler
	Get          GetOrderHandler
}

// ExportOrderHandlers groups the use cases behind the /api/export-orders routes.
type ExportOrderHandlers struct {
	Create       CreateExportOrderHandler
	Update       UpdateExportOrderHandler
	ChangeStatus ChangeExportOrderStatusHandler
	GetAll       GetAllExportOrdersHandler
	Get          GetExportOrderHandler
}

// ProductHandlers groups the use cases behind the /api/products routes.
type ProductHandlers struct {
	Create            CreateProductHandler
	Update            UpdateProductHandler
	ChangeActivation  ChangeProductActivationHandler
	GetAll            GetAllProductsHandler
	Get               GetProductHandler
	GetWithCategories GetProductsWithCategoriesHandler
}

// CategoryHandlers groups the use cases behind the /api/categories routes.
type CategoryHandlers struct {
	Create           CreateCategoryHandler
	Update           UpdateCategoryHandler
	ChangeActivation ChangeCategoryActivationHandler
	GetAll           GetAllCategoriesHandler
	Get              GetCategoryHandler
}

// SupplierHandlers groups the use cases behind the /api/supplier routes.
type SupplierHandlers struct {
	Create           CreateSupplierHandler
	Update           UpdateSupplierHandler
	ChangeActivation ChangeSupplierActivationHandler
	GetAll           GetAllSuppliersHandler
	Get              GetSupplierHandler
}

// CustomerHandlers groups the use cases behind the /api/customers routes.
type CustomerHandlers struct {
	Create           CreateCustomerHandler
	Update           UpdateCustomerHandler
	ChangeActivation ChangeCustomerActivationHandler
	GetAll           GetAllCustomersHandler
	Get              GetCustomerHandler
}

// Server coordinates between echo routes and application use cases.
type Server struct {
	orders       OrderHandlers
	exportOrders ExportOrderHandlers
	products     ProductHandlers
	categories   CategoryHandlers
	suppliers    SupplierHandlers
	customers    CustomerHandlers
}

// NewServer creates a new HTTP server with the required use-case handlers.
func NewServer(
	orders OrderHandlers,
	exportOrders ExportOrderHandlers,
	products ProductHandlers,
	categories CategoryHandlers,
	suppliers SupplierHandlers,
	customers CustomerHandlers,
) *Server {
	return &Server{
		orders:       orders,
		exportOrders: exportOrders,
		products:     products,
		categories:   categories,
		suppliers:    suppliers,
		customers:    customers,
	}
}

// RegisterRoutes mounts all API routes on the given echo instance.
// The supplier group is mounted singular, matching the public API contract.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")

	products := api.Group("/products")
	products.GET("", s.GetProducts)
	products.GET("/with-categories", s.GetProductsWithCategories)
	products.GET("/:id", s.GetProduct)
	products.POST("", s.CreateProduct)
	products.PUT("/:id", s.UpdateProduct)
	products.PATCH("/:id/status", s.ChangeProductStatus)

	categories := api.Group("/categories")
	categories.GET("", s.GetCategories)
	categories.GET("/:id", s.GetCategory)
	categories.POST("", s.CreateCategory)
	categories.PUT("/:id", s.UpdateCategory)
	categories.PATCH("/:id/status", s.ChangeCategoryStatus)

	suppliers := api.Group("/supplier")
	suppliers.GET("", s.GetSuppliers)
	suppliers.GET("/:id", s.GetSupplier)
	suppliers.POST("", s.CreateSupplier)
	suppliers.PUT("/:id", s.UpdateSupplier)
	suppliers.PATCH("/:id/status", s.ChangeSupplierStatus)

	customers := api.Group("/customers")
	customers.GET("", s.GetCustomers)
	customers.GET("/:id", s.GetCustomer)
	customers.POST("", s.CreateCustomer)
	customers.PUT("/:id", s.UpdateCustomer)
	customers.PATCH("/:id/status", s.ChangeCustomerStatus)

	orders := api.Group("/orders")
	orders.GET("", s.GetOrders)
	orders.GET("/:id", s.GetOrder)
	orders.POST("", s.CreateOrder)
	orders.PUT("/:id", s.UpdateOrder)
	orders.PATCH("/:id/status", s.ChangeOrderStatus)

	exportOrders := api.Group("/export-orders")
	exportOrders.GET("", s.GetExportOrders)
	exportOrders.GET("/:id", s.GetExportOrder)
	exportOrders.POST("", s.CreateExportOrder)
	exportOrders.PUT("/:id", s.UpdateExportOrder)
	exportOrders.PATCH("/:id/status", s.ChangeExportOrderStatus)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}
