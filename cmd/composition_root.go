package cmd

import (
	httpadapter "inventory/internal/adapters/in/http"
	"inventory/internal/adapters/out/postgres"
	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases. All handlers share the same
// unit-of-work factory and gorm connection.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateExportOrderCommandHandler() commands.CreateExportOrderCommandHandler {
	var f commands.ExportOrderUoWFactory = FuncExportOrderUoWFactory(func() commands.ExportOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateExportOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateExportOrderCommandHandler() commands.UpdateExportOrderCommandHandler {
	var f commands.ExportOrderUoWFactory = FuncExportOrderUoWFactory(func() commands.ExportOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateExportOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeExportOrderStatusCommandHandler() commands.ChangeExportOrderStatusCommandHandler {
	var f commands.ExportOrderUoWFactory = FuncExportOrderUoWFactory(func() commands.ExportOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeExportOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeProductActivationCommandHandler() commands.ChangeProductActivationCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeProductActivationCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCategoryCommandHandler() commands.CreateCategoryCommandHandler {
	var f commands.CategoryUoWFactory = FuncCategoryUoWFactory(func() commands.CategoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCategoryCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCategoryCommandHandler() commands.UpdateCategoryCommandHandler {
	var f commands.CategoryUoWFactory = FuncCategoryUoWFactory(func() commands.CategoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCategoryCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeCategoryActivationCommandHandler() commands.ChangeCategoryActivationCommandHandler {
	var f commands.CategoryUoWFactory = FuncCategoryUoWFactory(func() commands.CategoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeCategoryActivationCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateSupplierCommandHandler() commands.CreateSupplierCommandHandler {
	var f commands.SupplierUoWFactory = FuncSupplierUoWFactory(func() commands.SupplierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateSupplierCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateSupplierCommandHandler() commands.UpdateSupplierCommandHandler {
	var f commands.SupplierUoWFactory = FuncSupplierUoWFactory(func() commands.SupplierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateSupplierCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeSupplierActivationCommandHandler() commands.ChangeSupplierActivationCommandHandler {
	var f commands.SupplierUoWFactory = FuncSupplierUoWFactory(func() commands.SupplierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeSupplierActivationCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeCustomerActivationCommandHandler() commands.ChangeCustomerActivationCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeCustomerActivationCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderBacklogQueryHandler() queries.GetOrderBacklogQueryHandler {
	return queries.NewGetOrderBacklogQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the REST server with every route's use case wired.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	createOrder := c.CreateCreateOrderCommandHandler()
	updateOrder := c.CreateUpdateOrderCommandHandler()
	changeOrderStatus := c.CreateChangeOrderStatusCommandHandler()

	createExportOrder := c.CreateCreateExportOrderCommandHandler()
	updateExportOrder := c.CreateUpdateExportOrderCommandHandler()
	changeExportOrderStatus := c.CreateChangeExportOrderStatusCommandHandler()

	createProduct := c.CreateCreateProductCommandHandler()
	updateProduct := c.CreateUpdateProductCommandHandler()
	changeProductActivation := c.CreateChangeProductActivationCommandHandler()

	createCategory := c.CreateCreateCategoryCommandHandler()
	updateCategory := c.CreateUpdateCategoryCommandHandler()
	changeCategoryActivation := c.CreateChangeCategoryActivationCommandHandler()

	createSupplier := c.CreateCreateSupplierCommandHandler()
	updateSupplier := c.CreateUpdateSupplierCommandHandler()
	changeSupplierActivation := c.CreateChangeSupplierActivationCommandHandler()

	createCustomer := c.CreateCreateCustomerCommandHandler()
	updateCustomer := c.CreateUpdateCustomerCommandHandler()
	changeCustomerActivation := c.CreateChangeCustomerActivationCommandHandler()

	return httpadapter.NewServer(
		httpadapter.OrderHandlers{
			Create:       &createOrder,
			Update:       &updateOrder,
			ChangeStatus: &changeOrderStatus,
			GetAll:       queries.NewGetAllOrdersQueryHandler(c.gormDB),
			Get:          queries.NewGetOrderQueryHandler(c.gormDB),
		},
		httpadapter.ExportOrderHandlers{
			Create:       &createExportOrder,
			Update:       &updateExportOrder,
			ChangeStatus: &changeExportOrderStatus,
			GetAll:       queries.NewGetAllExportOrdersQueryHandler(c.gormDB),
			Get:          queries.NewGetExportOrderQueryHandler(c.gormDB),
		},
		httpadapter.ProductHandlers{
			Create:            &createProduct,
			Update:            &updateProduct,
			ChangeActivation:  &changeProductActivation,
			GetAll:            queries.NewGetAllProductsQueryHandler(c.gormDB),
			Get:               queries.NewGetProductQueryHandler(c.gormDB),
			GetWithCategories: queries.NewGetProductsWithCategoriesQueryHandler(c.gormDB),
		},
		httpadapter.CategoryHandlers{
			Create:           &createCategory,
			Update:           &updateCategory,
			ChangeActivation: &changeCategoryActivation,
			GetAll:           queries.NewGetAllCategoriesQueryHandler(c.gormDB),
			Get:              queries.NewGetCategoryQueryHandler(c.gormDB),
		},
		httpadapter.SupplierHandlers{
			Create:           &createSupplier,
			Update:           &updateSupplier,
			ChangeActivation: &changeSupplierActivation,
			GetAll:           queries.NewGetAllSuppliersQueryHandler(c.gormDB),
			Get:              queries.NewGetSupplierQueryHandler(c.gormDB),
		},
		httpadapter.CustomerHandlers{
			Create:           &createCustomer,
			Update:           &updateCustomer,
			ChangeActivation: &changeCustomerActivation,
			GetAll:           queries.NewGetAllCustomersQueryHandler(c.gormDB),
			Get:              queries.NewGetCustomerQueryHandler(c.gormDB),
		},
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncExportOrderUoWFactory func() commands.ExportOrderUoW

func (f FuncExportOrderUoWFactory) Create() commands.ExportOrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncCategoryUoWFactory func() commands.CategoryUoW

func (f FuncCategoryUoWFactory) Create() commands.CategoryUoW {
	return f()
}

type FuncSupplierUoWFactory func() commands.SupplierUoW

func (f FuncSupplierUoWFactory) Create() commands.SupplierUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}
