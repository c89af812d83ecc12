package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hireloop/slotd/internal/interviews"
	"github.com/hireloop/slotd/internal/repo/models"
	"github.com/hireloop/slotd/pkg/errors"
	"github.com/hireloop/slotd/pkg/logger"
)

type Server interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

func NewServer(cfg Config, log logger.Logger, scheduler interviews.API) Server {
	serveLog := log.With("api_http_server")

	fiberCfg := fiber.Config{
		ReadTimeout:             cfg.HTTP.ReadTimeout,
		WriteTimeout:            cfg.HTTP.WriteTimeout,
		IdleTimeout:             cfg.HTTP.IdleTimeout,
		DisableStartupMessage:   true,
		EnableTrustedProxyCheck: true,
		ProxyHeader:             cfg.Proxy.Header,
		TrustedProxies:          cfg.Proxy.Trusted,
		RequestMethods:          []string{fiber.MethodGet, fiber.MethodHead, fiber.MethodPost, fiber.MethodDelete},
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		serveLog.Warn(errors.WrapFail(err, "handle http request"))
		return c.Status(http.StatusInternalServerError).Send(nil)
	}

	s := &server{
		scheduler: scheduler,
		http:      fiber.New(fiberCfg),
		addr:      cfg.HTTP.Addr,
		secret:    []byte(cfg.Auth.Secret),
		log:       serveLog,
	}

	s.setupRoutes()

	return s
}

type server struct {
	scheduler interviews.API
	http      *fiber.App
	addr      string
	secret    []byte
	log       logger.Logger
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error)
	go func() { errCh <- s.http.Listen(s.addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return errors.Error("serve context done")
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	err := s.http.ShutdownWithContext(ctx)
	return errors.WrapFail(err, "shutdown http server")
}

func (s *server) setupRoutes() {
	s.http.Use(s.authenticate)

	s.http.Post("/interviews", s.handleSchedule)
	s.http.Get("/interviews", s.handleListMine)
	s.http.Get("/interviews/:id", s.handleGet)
	s.http.Post("/interviews/:id/start", s.handleStart)
	s.http.Post("/interviews/:id/complete", s.handleComplete)
	s.http.Delete("/interviews/:id", s.handleCancel)

	s.http.Post("/admin/sweep", s.requireRole(s.handleSweep, RoleHR, RoleAdmin))
}

func (s *server) handleSchedule(c *fiber.Ctx) error {
	var form scheduleForm

	err := c.BodyParser(&form)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal schedule payload"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	err = form.Validate()
	if err != nil {
		return s.sendError(c, http.StatusBadRequest, err.Error())
	}

	at, err := time.Parse(time.RFC3339, form.ScheduledAt)
	if err != nil {
		return s.sendError(c, http.StatusBadRequest, "scheduled_at must be an RFC 3339 instant")
	}

	p := principalFrom(c)

	booked, err := s.scheduler.Schedule(c.Context(), p.UserID, form.JobID, at, form.DurationMinutes)
	if err != nil {
		return s.sendDomainError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(booked)
}

func (s *server) handleStart(c *fiber.Ctx) error {
	id, err := s.getIDOrErr(c)
	if err != nil {
		return s.sendError(c, http.StatusBadRequest, "missing required parameter \"id\"")
	}

	info, err := s.scheduler.Start(c.Context(), id, principalFrom(c).UserID)
	if err != nil {
		return s.sendDomainError(c, err)
	}

	return c.Status(http.StatusOK).JSON(map[string]any{
		"time_remaining_ms": info.TimeRemaining.Milliseconds(),
		"duration_minutes":  info.DurationMinutes,
	})
}

func (s *server) handleComplete(c *fiber.Ctx) error {
	id, err := s.getIDOrErr(c)
	if err != nil {
		return s.sendError(c, http.StatusBadRequest, "missing required parameter \"id\"")
	}

	var form completeForm
	if len(c.Body()) > 0 {
		err = c.BodyParser(&form)
		if err != nil {
			s.log.Warn(errors.WrapFail(err, "unmarshal complete payload"))
			return s.sendError(c, http.StatusBadRequest, "bad json")
		}
	}

	err = form.Validate()
	if err != nil {
		return s.sendError(c, http.StatusBadRequest, err.Error())
	}

	err = s.scheduler.Complete(c.Context(), id, principalFrom(c).UserID, form.Notes)
	if err != nil {
		return s.sendDomainError(c, err)
	}

	return s.sendOK(c)
}

func (s *server) handleCancel(c *fiber.Ctx) error {
	id, err := s.getIDOrErr(c)
	if err != nil {
		return s.sendError(c, http.StatusBadRequest, "missing required parameter \"id\"")
	}

	err = s.scheduler.Cancel(c.Context(), id, principalFrom(c).UserID)
	if err != nil {
		return s.sendDomainError(c, err)
	}

	return s.sendOK(c)
}

func (s *server) handleGet(c *fiber.Ctx) error {
	id, err := s.getIDOrErr(c)
	if err != nil {
		return s.sendError(c, http.StatusBadRequest, "missing required parameter \"id\"")
	}

	view, err := s.scheduler.Get(c.Context(), id, principalFrom(c).UserID)
	if err != nil {
		return s.sendDomainError(c, err)
	}

	return c.Status(http.StatusOK).JSON(viewResponse(*view))
}

func (s *server) handleListMine(c *fiber.Ctx) error {
	views, err := s.scheduler.ListMine(c.Context(), principalFrom(c).UserID)
	if err != nil {
		return s.sendDomainError(c, err)
	}

	resp := make([]interviewResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, viewResponse(v))
	}

	return c.Status(http.StatusOK).JSON(resp)
}

func (s *server) handleSweep(c *fiber.Ctx) error {
	count, err := s.scheduler.SweepExpired(c.Context())
	if err != nil {
		return s.sendDomainError(c, err)
	}

	return c.Status(http.StatusOK).JSON(map[string]int64{"count": count})
}

type interviewResponse struct {
	models.Interview

	EndTime          time.Time `json:"end_time"`
	IsExpired        bool      `json:"is_expired"`
	TimeUntilStartMs int64     `json:"time_until_start_ms"`
	TimeRemainingMs  int64     `json:"time_remaining_ms"`
}

func viewResponse(v interviews.View) interviewResponse {
	return interviewResponse{
		Interview:        v.Interview,
		EndTime:          v.EndTime,
		IsExpired:        v.IsExpired,
		TimeUntilStartMs: v.TimeUntilStart.Milliseconds(),
		TimeRemainingMs:  v.TimeRemaining.Milliseconds(),
	}
}

func (s *server) sendDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, interviews.ErrNotFound), errors.Is(err, interviews.ErrJobNotFound):
		return s.sendError(c, http.StatusNotFound, err.Error())

	case errors.Is(err, interviews.ErrNotApplied), errors.Is(err, interviews.ErrInvalidTime):
		return s.sendError(c, http.StatusUnprocessableEntity, err.Error())

	case errors.Is(err, interviews.ErrSlotConflict):
		return s.sendError(c, http.StatusConflict, err.Error())

	case errors.Is(err, interviews.ErrInvalidTransition):
		body := map[string]any{"status": "ERROR", "message": err.Error()}

		var tErr *interviews.TransitionError
		if errors.As(err, &tErr) && errors.Is(err, interviews.ErrTooEarly) {
			body["time_until_start_ms"] = tErr.TimeUntilStart.Milliseconds()
		}

		return c.Status(http.StatusConflict).JSON(body)

	case errors.Is(err, interviews.ErrStoreUnavailable):
		s.log.Error(err)
		return c.Status(http.StatusServiceUnavailable).
			JSON(map[string]any{"status": "ERROR", "message": "store unavailable", "retryable": true})

	default:
		// unexpected errors fall through to the fiber error handler
		return err
	}
}

func (s *server) sendError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(map[string]string{"status": "ERROR", "message": msg})
}

func (s *server) sendOK(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(map[string]string{"status": "OK"})
}

func (s *server) getIDOrErr(c *fiber.Ctx) (string, error) {
	id := c.Params("id", "")
	if id == "" {
		return "", errors.Error("got empty \"id\" param")
	}

	return id, nil
}
