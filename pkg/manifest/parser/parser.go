package parser

import (
	"context"
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/assembler"
	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/model"
)

// Capabilities a format may declare.
const (
	CapabilityMultipleBills     = "multiple_bills"
	CapabilityMultipleShipments = "multiple_shipments"
	CapabilityContainers        = "containers"
	CapabilityParties           = "parties"
	CapabilityDangerousGoods    = "dangerous_goods"
	CapabilityReefer            = "reefer"
)

// FormatInfo is the static description of a format. It never depends on the parsed file.
type FormatInfo struct {
	Name            string                    `json:"name"`
	Description     string                    `json:"description"`
	Extensions      []string                  `json:"extensions"`
	Capabilities    []string                  `json:"capabilities"`
	DuplicatePolicy assembler.DuplicatePolicy `json:"duplicate_policy"`
	RequiresVessel  bool                      `json:"requires_vessel"`
}

// Options are the caller supplied import options.
type Options struct {
	VesselID        string            `json:"vessel_id,omitempty"`
	VoyageReference string            `json:"voyage_reference,omitempty"`
	Format          string            `json:"format,omitempty"`
	Extra           map[string]string `json:"extra,omitempty"`
}

var formatNamePattern = regexp.MustCompile(`^[a-z][a-z_]*$`)

func (o Options) Validate() error {
	err := validation.ValidateStruct(&o,
		validation.Field(&o.VesselID, validation.Length(1, 64)),
		validation.Field(&o.VoyageReference, validation.Length(1, 64)),
		validation.Field(&o.Format, validation.Match(formatNamePattern)),
	)
	if err != nil {
		return fmt.Errorf("%s%w", err.Error(), model.ErrInvalidParameter)
	}
	return nil
}

// AsMap flattens the options for the import record.
func (o Options) AsMap() map[string]any {
	m := map[string]any{}
	if o.VesselID != "" {
		m["vessel_id"] = o.VesselID
	}
	if o.VoyageReference != "" {
		m["voyage_reference"] = o.VoyageReference
	}
	if o.Format != "" {
		m["format"] = o.Format
	}
	for k, v := range o.Extra {
		m[k] = v
	}
	return m
}

// Document is the parsed, format specific representation of a file.
type Document any

// Parser turns one file format into canonical entities.
//
// CanParse must not modify anything and must not panic on arbitrary input.
// Extract reads the file, Transform normalizes the document, Validate reports every structural
// problem it finds, and Assemble writes the entities through the assembler.
type Parser interface {
	Info() FormatInfo
	DefaultConfig() map[string]any
	CanParse(path string) bool
	Extract(ctx context.Context, path string, opts Options) (Document, error)
	Transform(doc Document) (Document, error)
	Validate(doc Document) []error
	Assemble(ctx context.Context, asm *assembler.Assembler, doc Document, opts Options) error
}

// Extractor is a Parser working on its own document type.
type Extractor[T any] interface {
	Info() FormatInfo
	DefaultConfig() map[string]any
	CanParse(path string) bool
	Extract(ctx context.Context, path string, opts Options) (T, error)
	Transform(doc T) (T, error)
	Validate(doc T) []error
	Assemble(ctx context.Context, asm *assembler.Assembler, doc T, opts Options) error
}

type _Adapter[T any] struct {
	extractor Extractor[T]
}

// Adapt exposes a typed extractor as a Parser.
func Adapt[T any](e Extractor[T]) Parser {
	return &_Adapter[T]{extractor: e}
}

func (a *_Adapter[T]) Info() FormatInfo {
	return a.extractor.Info()
}

func (a *_Adapter[T]) DefaultConfig() map[string]any {
	return a.extractor.DefaultConfig()
}

func (a *_Adapter[T]) CanParse(path string) bool {
	return a.extractor.CanParse(path)
}

func (a *_Adapter[T]) Extract(ctx context.Context, path string, opts Options) (Document, error) {
	return a.extractor.Extract(ctx, path, opts)
}

func (a *_Adapter[T]) Transform(doc Document) (Document, error) {
	typed, err := a.document(doc)
	if err != nil {
		return nil, err
	}
	return a.extractor.Transform(typed)
}

func (a *_Adapter[T]) Validate(doc Document) []error {
	typed, err := a.document(doc)
	if err != nil {
		return []error{err}
	}
	return a.extractor.Validate(typed)
}

func (a *_Adapter[T]) Assemble(ctx context.Context, asm *assembler.Assembler, doc Document, opts Options) error {
	typed, err := a.document(doc)
	if err != nil {
		return err
	}
	return a.extractor.Assemble(ctx, asm, typed, opts)
}

func (a *_Adapter[T]) document(doc Document) (T, error) {
	typed, ok := doc.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s: unexpected document %T%w", a.extractor.Info().Name, doc, model.ErrUnexpectedFault)
	}
	return typed, nil
}

// Vessel resolves the vessel of a file. An explicit vessel id always wins; otherwise formats that
// require one fail and the others resolve the vessel by name.
func Vessel(ctx context.Context, asm *assembler.Assembler, info FormatInfo, opts Options, fallback assembler.VesselInput) (model.Vessel, error) {
	if opts.VesselID != "" {
		return asm.VesselByID(ctx, opts.VesselID)
	}
	if info.RequiresVessel || fallback.Name == "" {
		return model.Vessel{}, fmt.Errorf("%s: %w", info.Name, model.ErrVesselRequired)
	}
	return asm.ResolveVessel(ctx, fallback)
}

// VoyageReference picks the caller's reference over the one found in the file.
func VoyageReference(opts Options, fromFile ...string) string {
	if opts.VoyageReference != "" {
		return opts.VoyageReference
	}
	for _, ref := range fromFile {
		if ref != "" {
			return ref
		}
	}
	return ""
}
