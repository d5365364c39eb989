package out

import "github.com/suchimauz/checkout-delivery-slots/internal/core/domain"

type MetricsPort interface {
	RatesQuoted(count int)
	SlotsServed(kind string, count int, cached bool)
	SelectionValidated(verdict domain.Verdict)
}
