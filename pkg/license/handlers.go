// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package license

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/license-service/internal/logging"
	"github.com/canonical/license-service/internal/monitoring"
	"github.com/canonical/license-service/internal/storage"
	"github.com/canonical/license-service/internal/tracing"
	"github.com/canonical/license-service/pkg/authentication"
)

type API struct {
	service  ServiceInterface
	resolver ResolverInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	resolver ResolverInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		resolver: resolver,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/license", a.handleAction)
	mux.Options("/api/v0/license", a.preflight)
}

// preflight short-circuits CORS pre-flight requests with no body; the CORS
// middleware has already attached the response headers.
func (a *API) preflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleAction(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "license.API.handleAction")
	defer span.End()

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, fmt.Errorf("%w: invalid JSON body", ErrBadRequest))
		return
	}

	cmd, err := DecodeCommand(&req)
	if err != nil {
		a.writeError(w, err)
		return
	}

	meta := &RequestMeta{
		IPAddress:           clientIP(r),
		UserAgent:           r.UserAgent(),
		AuthorizationHeader: r.Header.Get("Authorization"),
	}

	var actor *authentication.Actor
	if cmd.RequiresAdmin() {
		actor, err = a.resolver.Resolve(ctx, meta.AuthorizationHeader, req.AdminToken, req.Email)
		if err != nil {
			a.writeError(w, ErrUnauthorized)
			return
		}
	}

	result, err := a.dispatch(ctx, cmd, actor, meta)
	if err != nil {
		a.logger.Debugf("action %s failed: %v", cmd.Name(), err)
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, result)
}

// dispatch is the single exhaustive switch over command variants. A variant
// missing here falls through to the internal-error default, which the tests
// for every action would catch immediately.
func (a *API) dispatch(ctx context.Context, cmd Command, actor *authentication.Actor, meta *RequestMeta) (interface{}, error) {
	switch cmd := cmd.(type) {
	case *ValidateCommand:
		return a.service.Validate(ctx, cmd, meta)
	case *CheckCommand:
		return a.service.Check(ctx, cmd, meta)
	case *GetAddonsCommand:
		return a.service.GetAddons(ctx, cmd)
	case *UpdateAddonsCommand:
		return a.service.UpdateAddons(ctx, cmd)
	case *SyncCompanyCommand:
		return a.service.SyncCompany(ctx, cmd)
	case *IssueTokenCommand:
		token, err := a.service.IssueToken(ctx, cmd, meta)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"success": true, "token": token}, nil

	case *ListAllCommand:
		licenses, err := a.service.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"success": true, "licenses": licenses}, nil
	case *CreateLicenseCommand:
		lic, err := a.service.CreateLicense(ctx, cmd, actor, meta)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"success": true, "license": lic}, nil
	case *UpdateLicenseCommand:
		return okResult(a.service.UpdateLicense(ctx, cmd, actor, meta))
	case *DeleteLicenseCommand:
		return okResult(a.service.DeleteLicense(ctx, cmd, actor, meta))
	case *UpdatePlanCommand:
		return okResult(a.service.UpdatePlan(ctx, cmd, actor, meta))
	case *UpdateLimitsCommand:
		return okResult(a.service.UpdateLimits(ctx, cmd, actor, meta))
	case *UpdateFeaturesCommand:
		return okResult(a.service.UpdateFeatures(ctx, cmd, actor, meta))
	case *UpdateVisibilityCommand:
		return okResult(a.service.UpdateVisibility(ctx, cmd, actor, meta))
	case *ToggleStatusCommand:
		active, err := a.service.ToggleStatus(ctx, cmd, actor, meta)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"success": true, "isActive": active}, nil
	case *MergeCompaniesCommand:
		report, err := a.service.MergeCompanies(ctx, cmd, actor, meta)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"success": true, "report": report}, nil
	case *DetectDuplicatesCommand:
		groups, err := a.service.DetectDuplicates(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"success": true, "duplicates": groups}, nil
	case *AdminGetAddonsCommand:
		return a.service.AdminGetAddons(ctx, cmd)
	case *AdminUpdateAddonsCommand:
		return a.service.AdminUpdateAddons(ctx, cmd, actor, meta)
	case *GetCompanyDataCommand:
		data, err := a.service.GetCompanyData(ctx, cmd)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"success": true, "company": data}, nil
	case *GetUserStatsCommand:
		stats, err := a.service.GetUserStats(ctx, cmd)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"success": true, "stats": stats}, nil
	case *GetUserDetailsCommand:
		details, err := a.service.GetUserDetails(ctx, cmd)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"success": true, "user": details}, nil
	case *GetLoginHistoryCommand:
		entries, err := a.service.GetLoginHistory(ctx, cmd)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"success": true, "logins": entries}, nil
	case *GetAuditLogsCommand:
		entries, err := a.service.GetAuditLogs(ctx, cmd)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"success": true, "logs": entries}, nil
	}

	return nil, fmt.Errorf("unhandled command %q", cmd.Name())
}

func okResult(err error) (interface{}, error) {
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"success": true}, nil
}

type errorResponse struct {
	Success    bool   `json:"success"`
	Valid      bool   `json:"valid"`
	Error      string `json:"error"`
	RetryAfter int    `json:"retryAfter,omitempty"`
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	var rateLimited *RateLimitedError
	if errors.As(err, &rateLimited) {
		w.Header().Set("Retry-After", strconv.Itoa(rateLimited.RetryAfter))
		a.writeJSON(w, http.StatusTooManyRequests, errorResponse{
			Error:      rateLimited.Error(),
			RetryAfter: rateLimited.RetryAfter,
		})
		return
	}

	switch {
	case errors.Is(err, ErrBadRequest):
		a.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, ErrLicenseNotFound), errors.Is(err, storage.ErrNotFound):
		a.writeJSON(w, http.StatusNotFound, errorResponse{Error: ErrLicenseNotFound.Error()})
	case errors.Is(err, ErrNotEntitled), errors.Is(err, ErrInactive), errors.Is(err, ErrUnauthorized):
		a.writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	default:
		// Internal detail is never echoed to callers.
		a.logger.Errorf("internal error: %v", err)
		a.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func (a *API) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

// clientIP prefers the first hop of X-Forwarded-For, since the service is
// expected to sit behind a proxy.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
