package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type AccountingMeta struct {
	Href string `json:"href"`
	Type string `json:"type"`
}

type AccountingAssortment struct {
	Meta AccountingMeta `json:"meta"`
}

// AccountingPosition строка заказа для учетной системы, цена в копейках
type AccountingPosition struct {
	Quantity   int                  `json:"quantity"`
	Price      int64                `json:"price"`
	Assortment AccountingAssortment `json:"assortment"`
}

// FinalizedDelivery данные доставки, пересчитанные по итоговой сумме корзины
type FinalizedDelivery struct {
	OrderID           uuid.UUID            `json:"orderId"`
	RateID            string               `json:"rateId"`
	MethodName        string               `json:"methodName"`
	EffectiveCost     decimal.Decimal      `json:"effectiveCost"`
	Waived            bool                 `json:"waived"`
	ExternalServiceID string               `json:"externalServiceId,omitempty"`
	DateTime          string               `json:"dateTime,omitempty"`
	Description       []string             `json:"description"`
	Attributes        []OrderAttribute     `json:"attributes"`
	Positions         []AccountingPosition `json:"positions"`
}

// AccountingService услуга из каталога учетной системы
type AccountingService struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
