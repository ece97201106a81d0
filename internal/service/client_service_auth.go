// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-login-bridge/internal/adapter"
	"github.com/MKhiriev/go-login-bridge/internal/callback"
	"github.com/MKhiriev/go-login-bridge/internal/dispatch"
	"github.com/MKhiriev/go-login-bridge/internal/lifecycle"
	"github.com/MKhiriev/go-login-bridge/internal/logger"
	"github.com/MKhiriev/go-login-bridge/internal/store"
	"github.com/MKhiriev/go-login-bridge/internal/utils"
	"github.com/MKhiriev/go-login-bridge/models"
)

type clientAuthService struct {
	loginService adapter.LoginService
	tokens       store.TokenRepository
	io           dispatch.Executor
	timeout      time.Duration

	token atomic.Value

	logger *logger.Logger
}

// NewClientAuthService returns a ClientAuthService that talks to loginService
// on io. tokens may be nil, in which case tokens are only kept in memory.
// A zero timeout waits for the login service for as long as the scope lives.
func NewClientAuthService(
	loginService adapter.LoginService,
	tokens store.TokenRepository,
	io dispatch.Executor,
	timeout time.Duration,
	logger *logger.Logger,
) (ClientAuthService, error) {
	if loginService == nil {
		return nil, ErrNoLoginService
	}
	if io == nil {
		return nil, ErrNoIOExecutor
	}

	return &clientAuthService{
		loginService: loginService,
		tokens:       tokens,
		io:           io,
		timeout:      timeout,
		logger:       logger,
	}, nil
}

func (a *clientAuthService) Login(scope *lifecycle.Scope, creds models.Credentials, view LoginView) *LoginOperation {
	op := newLoginOperation(creds)

	h := scope.Spawn("login", func(f *dispatch.Flow) error {
		return a.run(f, op, view)
	})
	if h == nil {
		return nil
	}
	op.handle = h

	go func() {
		<-h.Done()
		if op.markCancelled() {
			logger.FromContext(scope.Context()).Debug().Msg("login operation cancelled")
		}
		close(op.done)
	}()

	return op
}

func (a *clientAuthService) Token() string {
	token, _ := a.token.Load().(string)
	return token
}

func (a *clientAuthService) LastLogin(ctx context.Context, identifier string) (models.StoredToken, error) {
	if a.tokens == nil {
		return models.StoredToken{}, store.ErrTokenNotFound
	}
	return a.tokens.Latest(ctx, identifier)
}

// run is the body of a login operation. Everything outside RunOn executes on
// the scope's home executor.
func (a *clientAuthService) run(f *dispatch.Flow, op *LoginOperation, view LoginView) error {
	ctx := f.Context()
	log := logger.FromContext(ctx)

	if !op.advance(StageIdle, StageShowingProgress) {
		return nil
	}
	view.SetProgressVisible(true)

	if !op.advance(StageShowingProgress, StageAwaitingResult) {
		return nil
	}

	result, err := dispatch.RunOn(f, a.io, func(ctx context.Context) (models.LoginResult, error) {
		return a.awaitLogin(ctx, op.creds)
	})
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled), errors.Is(err, dispatch.ErrDetached):
		op.markCancelled()
		return err
	case ctx.Err() != nil:
		op.markCancelled()
		return ctx.Err()
	default:
		// io executor refused the attempt
		log.Error().Err(err).Msg("login attempt could not be started")
		result = models.LoginFailed(models.FailureUnavailable)
	}

	return a.report(ctx, op, view, result)
}

// report resolves op with result and hands it to view. A scope cancelled in
// the meantime leaves op Cancelled and the view untouched.
func (a *clientAuthService) report(ctx context.Context, op *LoginOperation, view LoginView, result models.LoginResult) error {
	if !op.resolve(result) {
		return nil
	}
	if result.Succeeded() {
		a.token.Store(result.Token)
	}

	if err := ctx.Err(); err != nil {
		op.markCancelled()
		return err
	}

	view.SetProgressVisible(false)
	view.ReportOutcome(result)

	op.advance(StageResolved, StageDone)
	logger.FromContext(ctx).Info().
		Bool("success", result.Succeeded()).
		Str("reason", string(result.Reason)).
		Msg("login operation finished")
	return nil
}

// awaitLogin runs on the io executor and blocks until the login service
// answers, the timeout fires or ctx is cancelled.
func (a *clientAuthService) awaitLogin(ctx context.Context, creds models.Credentials) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	waitCtx := ctx
	if a.timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	token, ok, err := callback.Adapt(waitCtx, func(c callback.Completion[string]) {
		handler := adapter.LoginHandlerFuncs{
			Success: func(token string) { c.Succeed(token) },
			Failure: func() { c.Fail() },
		}

		cs, native := a.loginService.(adapter.ContextLoginService)
		if !native {
			a.loginService.Login(creds.Identifier, creds.Secret, handler)
			return
		}

		// aborted only through the completion, so an answered call is left alone
		callCtx, abort := context.WithCancel(context.WithoutCancel(waitCtx))
		c.OnCancel(abort)
		cs.LoginContext(callCtx, creds.Identifier, creds.Secret, handler)
	})
	switch {
	case err == nil:
	case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
		log.Warn().Dur("timeout", a.timeout).Msg("login service did not answer in time")
		return models.LoginFailed(models.FailureTimeout), nil
	default:
		return models.LoginResult{}, err
	}

	if !ok || token == "" {
		return models.LoginFailed(models.FailureRejected), nil
	}

	if ctx.Err() == nil {
		a.persist(ctx, creds.Identifier, token)
	}
	return models.LoginSucceeded(token), nil
}

// persist stores token locally. Failures are logged and do not change the
// outcome of the login.
func (a *clientAuthService) persist(ctx context.Context, identifier, token string) {
	if a.tokens == nil {
		return
	}
	log := logger.FromContext(ctx)

	stored := models.StoredToken{Identifier: identifier, Token: token}
	if claims, err := utils.ParseUnverifiedJWTToken(token); err == nil {
		stored.Subject = claims.Subject
		if claims.ExpiresAt != nil {
			stored.ExpiresAt = claims.ExpiresAt.Time
		}
	} else {
		log.Debug().Err(err).Msg("token is not a JWT, storing without claims")
	}

	id, err := a.tokens.Save(ctx, stored)
	if err != nil {
		log.Error().Err(err).Msg("error saving token")
		return
	}
	log.Debug().Int64("token_id", id).Msg("token saved")
}
