// Package models defines the grocery ordering schema. Relationships are
// explicit foreign-key columns; related rows are loaded with explicit store
// calls, never implicitly.
package models

import "time"

// User is a shop customer.
type User struct {
	ID       uint   `gorm:"column:user_id;primaryKey" json:"userId"`
	Name     string `gorm:"size:64" json:"name"`
	Username string `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Password string `gorm:"size:255;not null" json:"password"`
	Contact  string `gorm:"size:32" json:"contact"`
	Address  string `gorm:"size:255" json:"address"`
}

func (User) TableName() string { return "users" }

// Product is a catalogue item.
type Product struct {
	ID              uint    `gorm:"column:product_id;primaryKey" json:"productId"`
	ProductName     string  `gorm:"size:128;not null" json:"productName"`
	ProductCategory string  `gorm:"size:64" json:"productCategory"`
	ProductPrice    float64 `json:"productPrice"`
	ProductQuantity int     `json:"productQuantity"`
}

func (Product) TableName() string { return "products" }

// Discount is a percentage offer carts may reference.
type Discount struct {
	ID                 uint    `gorm:"column:discount_id;primaryKey" json:"discountId"`
	DiscountOfferType  string  `gorm:"size:64" json:"discountOfferType"`
	DiscountPercentage float64 `json:"discountPercentage"`
}

func (Discount) TableName() string { return "discounts" }

// Cart belongs to a user and may reference a discount.
type Cart struct {
	ID         uint    `gorm:"column:cart_id;primaryKey" json:"cartId"`
	CartTotal  float64 `json:"cartTotal"`
	UserID     *uint   `gorm:"column:user_id" json:"userId"`
	DiscountID *uint   `gorm:"column:discount_id" json:"discountId"`

	// *Ref fields exist so migration emits the foreign-key constraints;
	// they are never preloaded or serialized.
	UserRef     *User     `gorm:"foreignKey:UserID;references:ID" json:"-"`
	DiscountRef *Discount `gorm:"foreignKey:DiscountID;references:ID" json:"-"`
}

func (Cart) TableName() string { return "carts" }

// Order is a placed cart.
type Order struct {
	ID          uint      `gorm:"column:order_id;primaryKey" json:"orderId"`
	OrderDate   time.Time `json:"orderDate"`
	OrderStatus string    `gorm:"size:32" json:"orderStatus"`
	OrderTotal  float64   `json:"orderTotal"`
	UserID      *uint     `gorm:"column:user_id" json:"userId"`
	CartID      *uint     `gorm:"column:cart_id" json:"cartId"`

	UserRef *User `gorm:"foreignKey:UserID;references:ID" json:"-"`
	CartRef *Cart `gorm:"foreignKey:CartID;references:ID" json:"-"`
}

func (Order) TableName() string { return "orders" }

// Payment settles an order. Reference is generated when the caller leaves
// it blank.
type Payment struct {
	ID            uint    `gorm:"column:payment_id;primaryKey" json:"paymentId"`
	PaymentMethod string  `gorm:"size:32" json:"paymentMethod"`
	PaymentAmount float64 `json:"paymentAmount"`
	PaymentStatus string  `gorm:"size:32" json:"paymentStatus"`
	Reference     string  `gorm:"size:64" json:"reference"`
	OrderID       *uint   `gorm:"column:order_id" json:"orderId"`

	OrderRef *Order `gorm:"foreignKey:OrderID;references:ID" json:"-"`
}

func (Payment) TableName() string { return "payments" }

// Delivery tracks the hand-off of an order.
type Delivery struct {
	ID              uint       `gorm:"column:delivery_id;primaryKey" json:"deliveryId"`
	DeliveryAddress string     `gorm:"size:255" json:"deliveryAddress"`
	DeliveryDate    *time.Time `json:"deliveryDate"`
	DeliveryStatus  string     `gorm:"size:32" json:"deliveryStatus"`
	OrderID         *uint      `gorm:"column:order_id" json:"orderId"`

	OrderRef *Order `gorm:"foreignKey:OrderID;references:ID" json:"-"`
}

func (Delivery) TableName() string { return "deliveries" }
