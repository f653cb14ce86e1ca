package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/nsflhq/nsfl-api/internal/platform/logging"
	"github.com/nsflhq/nsfl-api/internal/usecase"
)

type Handler struct {
	matchService      *usecase.MatchService
	teamService       *usecase.TeamService
	playerService     *usecase.PlayerService
	standingsService  *usecase.StandingsService
	blogService       *usecase.BlogService
	highlightService  *usecase.HighlightService
	watchliveService  *usecase.WatchliveService
	sponsorService    *usecase.SponsorService
	contactService    *usecase.ContactService
	subscriberService *usecase.SubscriberService
	mediaBaseURL      string
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	matchService *usecase.MatchService,
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	standingsService *usecase.StandingsService,
	blogService *usecase.BlogService,
	highlightService *usecase.HighlightService,
	watchliveService *usecase.WatchliveService,
	sponsorService *usecase.SponsorService,
	contactService *usecase.ContactService,
	subscriberService *usecase.SubscriberService,
	mediaBaseURL string,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matchService:      matchService,
		teamService:       teamService,
		playerService:     playerService,
		standingsService:  standingsService,
		blogService:       blogService,
		highlightService:  highlightService,
		watchliveService:  watchliveService,
		sponsorService:    sponsorService,
		contactService:    contactService,
		subscriberService: subscriberService,
		mediaBaseURL:      mediaBaseURL,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func decodeRequest(r *http.Request, dst any) error {
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			return newFieldError(verr)
		}
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
