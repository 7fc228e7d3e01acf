package assembler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/normalize"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/reference"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/util"
)

const maxDescriptionLength = 1000

type BillInput struct {
	Number           string
	MasterBillNumber string
	Shipment         model.Shipment
	Shipper          model.Party
	Consignee        model.Party
	Notify           *model.Party
	LoadingPort      model.Port
	DischargePort    model.Port
	IssueDate        time.Time
	LoadingDate      time.Time
	DischargeDate    time.Time
	CargoDescription string
	PermitNumber     string
	FreightTerms     string
	Extra            map[string]string
}

type ItemInput struct {
	Description   string
	PackageCount  int
	PackageType   string
	GrossWeight   decimal.Decimal
	NetWeight     decimal.Decimal
	Volume        decimal.Decimal
	CommodityCode string
	TempMin       *decimal.Decimal
	TempMax       *decimal.Decimal
	Dangerous     bool
	Marks         string
}

// CreateBillOfLading creates a bill unless its number is already stored. An existing number fails
// with ErrBillOfLadingExists under AbortOnDuplicate and returns ErrSkipped under SkipOnDuplicate.
func (a *Assembler) CreateBillOfLading(ctx context.Context, in BillInput, policy DuplicatePolicy) (model.BillOfLading, error) {
	number := normalize.Upper(in.Number)
	if number == "" {
		return model.BillOfLading{}, model.NewValidationError("bill of lading number is required")
	}
	a.Stat(model.StatProcessedBills, 1)

	_, err := a.storage.GetBillOfLadingByNumber(ctx, a.tx, number)
	if err == nil {
		if policy == SkipOnDuplicate {
			a.Stat(model.StatSkippedBills, 1)
			a.Warn("bill %s already exists, skipped", number)
			return model.BillOfLading{}, ErrSkipped
		}
		return model.BillOfLading{}, fmt.Errorf("bill %s: %w", number, model.ErrBillOfLadingExists)
	}
	if !errors.Is(err, model.ErrBillOfLadingNotFound) {
		return model.BillOfLading{}, err
	}

	bill := model.BillOfLading{
		ID:               util.NewID(),
		CompanyID:        a.actor.CompanyID,
		ShipmentID:       in.Shipment.ID,
		Number:           number,
		MasterBillNumber: normalize.Upper(in.MasterBillNumber),
		ShipperID:        in.Shipper.ID,
		ConsigneeID:      in.Consignee.ID,
		LoadingPortID:    in.LoadingPort.ID,
		DischargePortID:  in.DischargePort.ID,
		IssueDate:        model.NewDate(in.IssueDate),
		LoadingDate:      model.NewDate(in.LoadingDate),
		DischargeDate:    model.NewDate(in.DischargeDate),
		CargoDescription: truncate(normalize.Text(in.CargoDescription), maxDescriptionLength),
		PermitNumber:     normalize.Upper(in.PermitNumber),
		FreightTerms:     normalize.Upper(in.FreightTerms),
		Extra:            lo.OmitByValues(in.Extra, []string{""}),
		Status:           model.BillOfLadingStatusDraft,
		CreatedAt:        a.timestamp(),
		CreatedBy:        a.actor.UserID,
	}
	if in.Notify != nil {
		bill.NotifyPartyID = in.Notify.ID
	}
	if len(bill.Extra) == 0 {
		bill.Extra = nil
	}

	if err := a.storage.AddBillOfLading(ctx, a.tx, bill); err != nil {
		return model.BillOfLading{}, err
	}
	a.markCreated(KindBill, bill.ID)
	a.Stat(model.StatCreatedBills, 1)
	a.billIndex[bill.ID] = len(a.bills)
	a.bills = append(a.bills, bill)
	return bill, nil
}

// AddItem appends a cargo line to the bill. The line number is the stored maximum plus one.
func (a *Assembler) AddItem(ctx context.Context, bill model.BillOfLading, container *model.Container, in ItemInput) (model.Item, error) {
	a.Stat(model.StatProcessedItems, 1)

	maxLine, err := a.storage.MaxItemLineNumber(ctx, a.tx, bill.ID)
	if err != nil {
		return model.Item{}, err
	}

	cargoType := a.ClassifyCargo(in.CommodityCode)
	switch {
	case in.Dangerous:
		cargoType = "HAZARDOUS"
	case cargoType == reference.DefaultCargoType && (in.TempMin != nil || in.TempMax != nil):
		cargoType = "REFRIGERATED"
	}

	item := model.Item{
		ID:              util.NewID(),
		BillOfLadingID:  bill.ID,
		LineNumber:      maxLine + 1,
		Description:     truncate(normalize.Text(in.Description), maxDescriptionLength),
		PackageCount:    in.PackageCount,
		PackageTypeCode: a.ClassifyPackaging(in.PackageType),
		GrossWeight:     model.NewDecimal(in.GrossWeight),
		NetWeight:       model.NewDecimal(in.NetWeight),
		Volume:          model.NewDecimal(in.Volume),
		CommodityCode:   normalize.Text(in.CommodityCode),
		CargoTypeCode:   cargoType,
		TempMin:         decimalPtr(in.TempMin),
		TempMax:         decimalPtr(in.TempMax),
		Dangerous:       in.Dangerous,
		Marks:           normalize.Text(in.Marks),
		CreatedAt:       a.timestamp(),
		CreatedBy:       a.actor.UserID,
	}
	if container != nil {
		item.ContainerID = container.ID
	}
	if err := a.storage.AddItem(ctx, a.tx, item); err != nil {
		return model.Item{}, err
	}
	a.markCreated(KindItem, item.ID)
	a.Stat(model.StatCreatedItems, 1)
	return item, nil
}

// FinishBill recomputes the bill totals from its stored items.
func (a *Assembler) FinishBill(ctx context.Context, bill model.BillOfLading) (model.BillOfLading, error) {
	items, err := a.storage.ListItems(ctx, a.tx, bill.ID)
	if err != nil {
		return model.BillOfLading{}, err
	}

	bill.GrossWeight = model.SumDecimal(lo.Map(items, func(i model.Item, _ int) model.Decimal { return i.GrossWeight })...)
	bill.NetWeight = model.SumDecimal(lo.Map(items, func(i model.Item, _ int) model.Decimal { return i.NetWeight })...)
	bill.Volume = model.SumDecimal(lo.Map(items, func(i model.Item, _ int) model.Decimal { return i.Volume })...)
	bill.PackageCount = lo.SumBy(items, func(i model.Item) int { return i.PackageCount })
	if bill.CargoDescription == "" {
		descriptions := lo.Uniq(lo.FilterMap(items, func(i model.Item, _ int) (string, bool) {
			return i.Description, i.Description != ""
		}))
		bill.CargoDescription = truncate(strings.Join(descriptions, "; "), maxDescriptionLength)
	}

	if err := a.storage.UpdateBillOfLading(ctx, a.tx, bill); err != nil {
		return model.BillOfLading{}, err
	}
	if idx, ok := a.billIndex[bill.ID]; ok {
		a.bills[idx] = bill
	}
	return bill, nil
}

// ClassifyCargo maps a commodity code to a cargo type.
func (a *Assembler) ClassifyCargo(commodityCode string) string {
	return a.catalog.CargoType(commodityCode)
}

// ClassifyPackaging maps a package label to a packaging type code.
func (a *Assembler) ClassifyPackaging(label string) string {
	return a.catalog.PackagingType(label)
}

func decimalPtr(d *decimal.Decimal) *model.Decimal {
	if d == nil {
		return nil
	}
	v := model.NewDecimal(*d)
	return &v
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
