// Package grocery wires the grocery ordering app: catalogue, carts, orders
// and their payment/delivery records.
package grocery

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"backend-suite/internal/crud"
	"backend-suite/internal/grocery/models"
	"backend-suite/internal/storage"
)

// App bundles the per-entity services. Every service receives its storage
// repo explicitly; there is no registry.
type App struct {
	Users      *crud.Service[models.User]
	Products   *crud.Service[models.Product]
	Discounts  *crud.Service[models.Discount]
	Carts      *crud.Service[models.Cart]
	Orders     *crud.Service[models.Order]
	Payments   *crud.Service[models.Payment]
	Deliveries *crud.Service[models.Delivery]
}

func New(db *gorm.DB) *App {
	return &App{
		Users: crud.New(storage.NewRepo[models.User](db, "user"),
			func(u *models.User) { u.ID = 0 },
			func(dst, src *models.User) {
				// username is the immutable identifier
				dst.Name = src.Name
				dst.Password = src.Password
				dst.Contact = src.Contact
				dst.Address = src.Address
			}),

		Products: crud.New(storage.NewRepo[models.Product](db, "product"),
			func(p *models.Product) { p.ID = 0 },
			func(dst, src *models.Product) {
				dst.ProductName = src.ProductName
				dst.ProductCategory = src.ProductCategory
				dst.ProductPrice = src.ProductPrice
				dst.ProductQuantity = src.ProductQuantity
			}),

		Discounts: crud.New(storage.NewRepo[models.Discount](db, "discount"),
			func(d *models.Discount) { d.ID = 0 },
			func(dst, src *models.Discount) {
				dst.DiscountOfferType = src.DiscountOfferType
				dst.DiscountPercentage = src.DiscountPercentage
			}),

		Carts: crud.New(storage.NewRepo[models.Cart](db, "cart"),
			func(c *models.Cart) { c.ID = 0 },
			func(dst, src *models.Cart) {
				dst.CartTotal = src.CartTotal
				dst.UserID = src.UserID
				dst.DiscountID = src.DiscountID
			}),

		Orders: crud.New(storage.NewRepo[models.Order](db, "order"),
			func(o *models.Order) { o.ID = 0 },
			func(dst, src *models.Order) {
				dst.OrderDate = src.OrderDate
				dst.OrderStatus = src.OrderStatus
				dst.OrderTotal = src.OrderTotal
				dst.UserID = src.UserID
				dst.CartID = src.CartID
			}).WithBeforeCreate(func(o *models.Order) error {
			if o.OrderDate.IsZero() {
				o.OrderDate = time.Now()
			}
			if o.OrderStatus == "" {
				o.OrderStatus = "PENDING"
			}
			return nil
		}),

		Payments: crud.New(storage.NewRepo[models.Payment](db, "payment"),
			func(p *models.Payment) { p.ID = 0 },
			func(dst, src *models.Payment) {
				dst.PaymentMethod = src.PaymentMethod
				dst.PaymentAmount = src.PaymentAmount
				dst.PaymentStatus = src.PaymentStatus
				dst.OrderID = src.OrderID
			}).WithBeforeCreate(func(p *models.Payment) error {
			if p.Reference == "" {
				p.Reference = uuid.NewString()
			}
			return nil
		}),

		Deliveries: crud.New(storage.NewRepo[models.Delivery](db, "delivery"),
			func(d *models.Delivery) { d.ID = 0 },
			func(dst, src *models.Delivery) {
				dst.DeliveryAddress = src.DeliveryAddress
				dst.DeliveryDate = src.DeliveryDate
				dst.DeliveryStatus = src.DeliveryStatus
				dst.OrderID = src.OrderID
			}),
	}
}
