package models

import "time"

type Segment string

const (
	SegmentRetail    Segment = "Retail"
	SegmentCorporate Segment = "Corporate"
	SegmentOnline    Segment = "Online"
	SegmentWholesale Segment = "Wholesale"
)

// Segments lists every customer segment in a stable order.
var Segments = []Segment{SegmentRetail, SegmentCorporate, SegmentOnline, SegmentWholesale}

type OrderStatus string

const (
	OrderCompleted OrderStatus = "Completed"
	OrderPending   OrderStatus = "Pending"
	OrderCancelled OrderStatus = "Cancelled"
)

var OrderStatuses = []OrderStatus{OrderCompleted, OrderPending, OrderCancelled}

type ShipmentStatus string

const (
	ShipmentDelivered ShipmentStatus = "Delivered"
	ShipmentInTransit ShipmentStatus = "In Transit"
)

var ShipmentStatuses = []ShipmentStatus{ShipmentDelivered, ShipmentInTransit}

type Customer struct {
	ID      int64
	Name    string
	City    string
	State   string
	Segment Segment
}

type Product struct {
	ID       int64
	Name     string
	Category string
	Price    int
}

type Order struct {
	ID         int64
	Date       time.Time
	CustomerID int64
	Status     OrderStatus
	SalesRep   string
}

type OrderItem struct {
	OrderID   int64
	ProductID int64
	Quantity  int
	UnitPrice int
}

type Shipment struct {
	OrderID      int64
	ShipDate     time.Time
	DeliveryDate time.Time
	Status       ShipmentStatus
}
