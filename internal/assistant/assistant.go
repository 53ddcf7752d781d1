// Package assistant exposes the read-only product and order views the
// support chatbot consumes. The checkout core never calls back into
// the assistant.
package assistant

import (
	"github.com/lgpharma/herbal-shop-backend/internal/catalog"
	"github.com/lgpharma/herbal-shop-backend/internal/order"
)

type Service struct {
	catalog catalog.ServiceInterface
	orders  order.ServiceInterface
}

func NewService(cs catalog.ServiceInterface, os order.ServiceInterface) *Service {
	return &Service{catalog: cs, orders: os}
}

func (s *Service) ListProducts() []catalog.Product {
	return s.catalog.List()
}

func (s *Service) ListOrders() []order.Order {
	return s.orders.List()
}
