// Package api exposes the scheduling kernel over HTTP.
package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/trace"
)

// ScheduleRequest is the body of the schedule and compare endpoints.
// Quantum 0 selects the server's configured quantum.
type ScheduleRequest struct {
	Quantum   int64                   `json:"quantum"`
	Processes []sim.ProcessDescriptor `json:"processes"`
}

// CompareResponse holds one Metrics per policy, in presentation order.
type CompareResponse struct {
	Results []*sim.Metrics `json:"results"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

type SchedulerHandler interface {
	Policies(ctx *fiber.Ctx) error
	Schedule(ctx *fiber.Ctx) error
	Compare(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	quantum int64
}

// NewSchedulerHandlerImpl creates a handler whose requests default to quantum.
func NewSchedulerHandlerImpl(quantum int64) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{quantum: quantum}
}

// NewApp wires h into a fiber app under /api/v1.
func NewApp(h SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Get("/policies", h.Policies)
		v1.Post("/schedule/:policy", h.Schedule)
		v1.Post("/compare", h.Compare)
	}
	return app
}

func (s *SchedulerHandlerImpl) Policies(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"policies": sim.ValidPolicyNames()})
}

func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	req, err := s.parse(ctx)
	if err != nil {
		return fail(ctx, fiber.StatusBadRequest, err)
	}
	policy := ctx.Params("policy")
	res, err := sim.Run(sim.RunConfig{
		Policy:  policy,
		Quantum: req.Quantum,
		Trace:   trace.TraceConfig{Level: trace.TraceLevelDispatch},
	}, req.Processes)
	if err != nil {
		return fail(ctx, statusFor(err), err)
	}
	logrus.Debugf("Scheduled %d processes with %s", len(req.Processes), res.Policy)
	return ctx.JSON(sim.NewMetrics(res))
}

func (s *SchedulerHandlerImpl) Compare(ctx *fiber.Ctx) error {
	req, err := s.parse(ctx)
	if err != nil {
		return fail(ctx, fiber.StatusBadRequest, err)
	}
	results, err := sim.RunAll(req.Processes, req.Quantum, trace.TraceConfig{Level: trace.TraceLevelDispatch})
	if err != nil {
		return fail(ctx, statusFor(err), err)
	}
	resp := CompareResponse{Results: make([]*sim.Metrics, len(results))}
	for i, res := range results {
		resp.Results[i] = sim.NewMetrics(res)
	}
	return ctx.JSON(resp)
}

func (s *SchedulerHandlerImpl) parse(ctx *fiber.Ctx) (*ScheduleRequest, error) {
	var req ScheduleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return nil, errors.New("invalid request format")
	}
	if req.Quantum == 0 {
		req.Quantum = s.quantum
	}
	return &req, nil
}

// statusFor maps kernel errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, sim.ErrUnknownPolicy):
		return fiber.StatusNotFound
	case errors.Is(err, sim.ErrEmptyBatch),
		errors.Is(err, sim.ErrInvalidDescriptor),
		errors.Is(err, sim.ErrInvalidQuantum):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func fail(ctx *fiber.Ctx, status int, err error) error {
	if status >= fiber.StatusInternalServerError {
		logrus.Warnf("%s %s: %v", ctx.Method(), ctx.Path(), err)
	}
	return ctx.Status(status).JSON(ErrorResponse{Error: err.Error()})
}
