package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/charan-kumar-kamasani/authentik/internal/api/schema"
	"github.com/charan-kumar-kamasani/authentik/internal/events"
	"github.com/charan-kumar-kamasani/authentik/internal/formconfig"
	"github.com/charan-kumar-kamasani/authentik/internal/metrics"
)

// FormConfigHandler serves the global form configuration endpoints.
type FormConfigHandler struct {
	Store  formconfig.Store
	Policy formconfig.UnknownFieldPolicy
}

type getOutput struct {
	Body formconfig.FormConfig
}

type putInput struct {
	Actor string `header:"X-Actor" doc:"Opaque identity of the administrative actor"`
	Body  schema.FormConfigInput
}

type putOutput struct {
	Body formconfig.FormConfig
}

type validateInput struct {
	Body schema.FormConfigInput
}

type resultOutput struct {
	Body formconfig.Result
}

type recordInput struct {
	Body schema.RecordInput
}

func Register(api huma.API, h *FormConfigHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "getFormConfig",
		Method:      http.MethodGet,
		Path:        "/v1/form-config",
		Summary:     "Get the active global form configuration",
		Tags:        []string{"FormConfig"},
	}, h.get)
	huma.Register(api, huma.Operation{
		OperationID: "putFormConfig",
		Method:      http.MethodPut,
		Path:        "/v1/form-config",
		Summary:     "Create or replace the global form configuration",
		Tags:        []string{"FormConfig"},
		Errors:      []int{http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity},
	}, h.put)
	huma.Register(api, huma.Operation{
		OperationID: "validateFormConfig",
		Method:      http.MethodPost,
		Path:        "/v1/form-config/validate",
		Summary:     "Validate a form configuration without persisting it",
		Tags:        []string{"FormConfig"},
	}, h.validate)
	huma.Register(api, huma.Operation{
		OperationID: "validateRecord",
		Method:      http.MethodPost,
		Path:        "/v1/records/validate",
		Summary:     "Validate a product record against the active configuration",
		Tags:        []string{"Record"},
	}, h.validateRecord)
}

func (h *FormConfigHandler) get(ctx context.Context, _ *struct{}) (*getOutput, error) {
	cfg, err := h.Store.ActiveGlobal(ctx)
	if err != nil {
		if errors.Is(err, formconfig.ErrAmbiguousConfig) {
			return nil, huma.Error500InternalServerError("multiple active global configurations")
		}
		return nil, huma.Error500InternalServerError("configuration store unavailable")
	}
	cfg.CustomFields = formconfig.OrderedFields(cfg)
	cfg.Variants = formconfig.OrderedVariants(cfg)
	return &getOutput{Body: cfg}, nil
}

func (h *FormConfigHandler) put(ctx context.Context, in *putInput) (*putOutput, error) {
	if in.Actor == "" {
		return nil, huma.Error400BadRequest("X-Actor header is required")
	}
	cfg := in.Body.Config()
	if res := formconfig.Validate(cfg); !res.OK() {
		metrics.ShapeViolations.Inc()
		details := make([]error, 0, len(res.Violations))
		for _, v := range res.Violations {
			details = append(details, &huma.ErrorDetail{Location: "body." + v.Path, Message: v.Reason})
		}
		return nil, huma.Error422UnprocessableEntity("configuration is invalid", details...)
	}
	saved, err := h.Store.UpsertGlobal(ctx, cfg, in.Actor)
	if err != nil {
		metrics.ConfigWrites.WithLabelValues("error").Inc()
		if errors.Is(err, formconfig.ErrVersionConflict) {
			return nil, huma.Error409Conflict("configuration was modified concurrently")
		}
		return nil, huma.Error500InternalServerError("configuration store unavailable")
	}
	metrics.ConfigWrites.WithLabelValues("ok").Inc()
	events.Emit(ctx, events.Event{Name: events.ConfigUpdated, Time: time.Now(), Data: saved, ID: saved.ID})
	return &putOutput{Body: saved}, nil
}

func (h *FormConfigHandler) validate(ctx context.Context, in *validateInput) (*resultOutput, error) {
	res := formconfig.Validate(in.Body.Config())
	if !res.OK() {
		metrics.ShapeViolations.Inc()
	}
	return &resultOutput{Body: res}, nil
}

func (h *FormConfigHandler) validateRecord(ctx context.Context, in *recordInput) (*resultOutput, error) {
	cfg, err := h.Store.ActiveGlobal(ctx)
	if err != nil {
		if errors.Is(err, formconfig.ErrAmbiguousConfig) {
			return nil, huma.Error500InternalServerError("multiple active global configurations")
		}
		return nil, huma.Error500InternalServerError("configuration store unavailable")
	}
	res := formconfig.ValidateRecord(cfg, formconfig.Record(in.Body.Record), h.Policy)
	if !res.OK() {
		metrics.RecordViolations.Inc()
	}
	return &resultOutput{Body: res}, nil
}
