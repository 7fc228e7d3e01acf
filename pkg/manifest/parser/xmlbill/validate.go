package xmlbill

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

func (p Party) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Country, validation.Length(2, 3)),
	)
}

func (d Document) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Number, validation.Required),
		validation.Field(&d.Vessel, validation.Required),
		validation.Field(&d.LoadingPort, validation.Required),
		validation.Field(&d.DischargePort, validation.Required),
		validation.Field(&d.Shipper),
		validation.Field(&d.Consignee),
		validation.Field(&d.Lines, validation.Required.Error("at least one LineaDetalle is required"), validation.Skip),
	)
}

func (l Line) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Container, validation.Required),
		validation.Field(&l.Type, validation.Required),
		validation.Field(&l.Gross, validation.By(positive)),
		validation.Field(&l.Tare, validation.By(positive)),
		validation.Field(&l.Net, validation.By(notAbove(l.Gross))),
	)
}

func positive(value any) error {
	d, _ := value.(decimal.Decimal)
	if !d.IsPositive() {
		return errors.New("must be greater than zero")
	}
	return nil
}

func notAbove(limit decimal.Decimal) validation.RuleFunc {
	return func(value any) error {
		d, _ := value.(decimal.Decimal)
		if d.GreaterThan(limit) {
			return errors.New("must not exceed the gross weight")
		}
		return nil
	}
}
