package assembler

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/normalize"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/util"
)

// Tare used when the source gives none, by nominal size in feet.
var placeholderTare = map[int]decimal.Decimal{
	20: decimal.NewFromInt(2200),
	40: decimal.NewFromInt(3800),
	45: decimal.NewFromInt(4800),
}

var weightTolerance = decimal.NewFromInt(1)
var weightToleranceRatio = decimal.RequireFromString("0.01")

type ContainerInput struct {
	Number      string
	Type        string // ISO 6346 size-type code or a trade alias such as 40HC.
	TareWeight  decimal.Decimal
	GrossWeight decimal.Decimal
	NetWeight   decimal.Decimal
	VGM         decimal.Decimal
	Seals       []string
	Status      model.ContainerStatus
	Reefer      bool
	TempMin     *decimal.Decimal
	TempMax     *decimal.Decimal
}

// ResolveContainer finds a container by number or creates it. created reports whether this call
// stored a new container. With warnOnReuse a container stored before this import is reported.
func (a *Assembler) ResolveContainer(ctx context.Context, in ContainerInput, warnOnReuse bool) (container model.Container, created bool, err error) {
	number := normalize.ContainerNumber(in.Number)
	if number == "" {
		return model.Container{}, false, model.NewValidationError("container number is required")
	}
	firstSeen := !a.seenContainers[number]
	if firstSeen {
		a.seenContainers[number] = true
		a.Stat(model.StatProcessedContainers, 1)
	}

	container, err = a.storage.GetContainerByNumber(ctx, a.tx, number)
	if err == nil {
		if firstSeen {
			a.Stat(model.StatReusedContainers, 1)
			a.containers = append(a.containers, container)
			if warnOnReuse && !a.createdContainers[number] {
				a.Warn("container %s already exists, reused", number)
			}
		}
		return container, false, nil
	}
	if !errors.Is(err, model.ErrContainerNotFound) {
		return model.Container{}, false, err
	}

	if shape, check := normalize.ValidContainerNumber(number); !shape {
		a.Warn("container %s: not an ISO 6346 number", number)
	} else if !check {
		a.Warn("container %s: check digit mismatch", number)
	}

	isoType, size, reefer := a.containerType(in.Type)
	container = model.Container{
		ID:        util.NewID(),
		Number:    number,
		ISOType:   isoType,
		SizeFeet:  size,
		VGM:       model.NewDecimal(in.VGM),
		Seals:     cleanSeals(in.Seals),
		Status:    in.Status,
		Reefer:    reefer || in.Reefer || in.TempMin != nil || in.TempMax != nil,
		TempMin:   decimalPtr(in.TempMin),
		TempMax:   decimalPtr(in.TempMax),
		CreatedAt: a.timestamp(),
		CreatedBy: a.actor.UserID,
	}
	if container.Status == "" {
		container.Status = model.ContainerStatusFull
	}
	a.fillWeights(&container, in)

	if err := a.storage.AddContainer(ctx, a.tx, container); err != nil {
		return model.Container{}, false, err
	}
	a.markCreated(KindContainer, container.ID)
	a.Stat(model.StatCreatedContainers, 1)
	a.createdContainers[number] = true
	a.containers = append(a.containers, container)
	return container, true, nil
}

func (a *Assembler) containerType(label string) (string, int, bool) {
	if ref, ok := a.catalog.ContainerType(label); ok {
		return ref.Code, ref.Size, ref.Reefer
	}
	code := normalize.Code(label)
	size := 0
	switch {
	case strings.HasPrefix(code, "2"):
		size = 20
	case strings.HasPrefix(code, "4"):
		size = 40
	case strings.HasPrefix(code, "L"):
		size = 45
	}
	return code, size, strings.Contains(code, "R")
}

// fillWeights derives missing weights so that tare <= gross and net = gross - tare.
func (a *Assembler) fillWeights(c *model.Container, in ContainerInput) {
	gross, tare, net := in.GrossWeight, in.TareWeight, in.NetWeight
	if gross.IsZero() && in.VGM.IsPositive() {
		gross = in.VGM
	}

	switch {
	case net.IsZero() && gross.IsPositive() && tare.IsPositive():
		net = gross.Sub(tare)
	case gross.IsZero() && net.IsPositive() && tare.IsPositive():
		gross = net.Add(tare)
	case tare.IsZero() && gross.IsPositive() && net.IsPositive() && gross.GreaterThan(net):
		tare = gross.Sub(net)
	}

	if tare.IsZero() && (gross.IsPositive() || net.IsPositive()) {
		if placeholder, ok := placeholderTare[c.SizeFeet]; ok {
			tare = placeholder
			a.Stat(model.StatWeightPlaceholders, 1)
			a.Warn("container %s: tare missing, %s kg assumed for %d ft", c.Number, placeholder, c.SizeFeet)
			switch {
			case gross.IsZero():
				gross = net.Add(tare)
			case net.IsZero() && gross.GreaterThan(tare):
				net = gross.Sub(tare)
			}
		}
	}

	if tare.GreaterThan(gross) && gross.IsPositive() {
		a.Warn("container %s: tare %s exceeds gross %s", c.Number, tare, gross)
	} else if gross.IsPositive() && net.IsPositive() {
		tolerance := decimal.Max(gross.Mul(weightToleranceRatio), weightTolerance)
		if net.Sub(gross.Sub(tare)).Abs().GreaterThan(tolerance) {
			a.Warn("container %s: net %s differs from gross %s minus tare %s", c.Number, net, gross, tare)
		}
	}

	c.GrossWeight = model.NewDecimal(gross)
	c.TareWeight = model.NewDecimal(tare)
	c.NetWeight = model.NewDecimal(net)
}

func cleanSeals(seals []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, s := range seals {
		for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '/' || r == ';' || r == ',' }) {
			seal := normalize.Upper(part)
			if seal != "" && !seen[seal] {
				seen[seal] = true
				out = append(out, seal)
			}
		}
	}
	return out
}
