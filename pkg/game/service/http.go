package service

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/jackpot-middleware/pkg/app/errors"
	apphttp "github.com/chainsafe/jackpot-middleware/pkg/app/http"
	"github.com/chainsafe/jackpot-middleware/pkg/game"
)

const maxRequestBody = 1 << 20

// CommitRequest is the body of POST /guess/commit.
type CommitRequest struct {
	Guess string `json:"guess"`
}

// TradeRequest is the body of POST /buy and POST /sell. Amount is in whole
// game tokens and may carry up to the token's decimals.
type TradeRequest struct {
	Amount string `json:"amount"`
}

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service       Service
	tokenDecimals uint8
	logger        *zap.Logger
}

// RegisterRoutes registers the guess flow endpoints on r. Amounts in requests
// are parsed with tokenDecimals.
func RegisterRoutes(r chi.Router, service Service, tokenDecimals uint8, logger *zap.Logger) {
	h := &HTTP{
		service:       service,
		tokenDecimals: tokenDecimals,
		logger:        logger,
	}

	r.Post("/connect", apphttp.HandleError(h.connect))
	r.Post("/disconnect", apphttp.HandleError(h.disconnect))
	r.Get("/session", apphttp.HandleError(h.session))
	r.Get("/snapshot", apphttp.HandleError(h.snapshot))

	r.Route("/guess", func(r chi.Router) {
		r.Post("/commit", apphttp.HandleError(h.commitGuess))
		r.Post("/reveal", apphttp.HandleError(h.revealGuess))
		r.Get("/commitment", apphttp.HandleError(h.commitment))
	})
	r.Post("/hint", apphttp.HandleError(h.requestHint))

	r.Get("/quote", apphttp.HandleError(h.quote))
	r.Post("/buy", apphttp.HandleError(h.buy))
	r.Post("/sell", apphttp.HandleError(h.sell))
}

func (h *HTTP) connect(w http.ResponseWriter, r *http.Request) error {
	sess, err := h.service.Connect(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, sess)
	return nil
}

func (h *HTTP) disconnect(w http.ResponseWriter, _ *http.Request) error {
	h.service.Disconnect()
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *HTTP) session(w http.ResponseWriter, _ *http.Request) error {
	sess := h.service.Session()
	if sess == nil {
		return game.ErrNotConnected
	}
	apphttp.WriteJSON(w, http.StatusOK, sess)
	return nil
}

func (h *HTTP) snapshot(w http.ResponseWriter, r *http.Request) error {
	refresh, _ := strconv.ParseBool(r.URL.Query().Get("refresh"))

	var snap *game.Snapshot
	if refresh {
		var err error
		if snap, err = h.service.RefreshSnapshot(r.Context()); err != nil {
			return err
		}
	} else if snap = h.service.Snapshot(); snap == nil {
		return apperrors.ResourceNotFoundError(nil, "no snapshot yet, refresh first")
	}

	apphttp.WriteJSON(w, http.StatusOK, snap)
	return nil
}

func (h *HTTP) commitGuess(w http.ResponseWriter, r *http.Request) error {
	var req CommitRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}

	res, err := h.service.CommitGuess(r.Context(), req.Guess)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, res)
	return nil
}

func (h *HTTP) revealGuess(w http.ResponseWriter, r *http.Request) error {
	res, err := h.service.RevealGuess(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, res)
	return nil
}

func (h *HTTP) commitment(w http.ResponseWriter, _ *http.Request) error {
	pending := h.service.PendingCommitment()
	if pending == nil {
		return apperrors.ResourceNotFoundError(game.ErrNoActiveCommitment, "no pending commitment")
	}
	apphttp.WriteJSON(w, http.StatusOK, pending)
	return nil
}

func (h *HTTP) requestHint(w http.ResponseWriter, r *http.Request) error {
	res, err := h.service.RequestHint(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, res)
	return nil
}

func (h *HTTP) quote(w http.ResponseWriter, r *http.Request) error {
	amount, err := game.ParseAmount(r.URL.Query().Get("amount"), h.tokenDecimals)
	if err != nil {
		return err
	}

	q, err := h.service.QuoteBuy(r.Context(), amount)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, q)
	return nil
}

func (h *HTTP) buy(w http.ResponseWriter, r *http.Request) error {
	var req TradeRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	amount, err := game.ParseAmount(req.Amount, h.tokenDecimals)
	if err != nil {
		return err
	}

	res, err := h.service.Buy(r.Context(), amount)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, res)
	return nil
}

func (h *HTTP) sell(w http.ResponseWriter, r *http.Request) error {
	var req TradeRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	amount, err := game.ParseAmount(req.Amount, h.tokenDecimals)
	if err != nil {
		return err
	}

	res, err := h.service.Sell(r.Context(), amount)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, res)
	return nil
}

func decodeBody(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	return nil
}
