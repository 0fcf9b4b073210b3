package pdf

import "github.com/zarobax/ams-order-form/internal/domain/order"

type Generator interface {
	Generate(o order.Order, companyName string) ([]byte, error)
}
