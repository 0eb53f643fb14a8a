package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/nikolayk812/cartstock/internal/domain"
)

type CartService interface {
	ViewCart(ctx context.Context, ownerID string) (domain.Cart, error)
	AddItem(ctx context.Context, ownerID string, productID uuid.UUID, quantity int) (domain.CartItem, error)
	UpdateItem(ctx context.Context, itemID uuid.UUID, quantity int) (domain.CartItem, error)
	RemoveItem(ctx context.Context, itemID uuid.UUID) error
	Clear(ctx context.Context, ownerID string) error
}

type handler struct {
	svc CartService
	log *slog.Logger
}

// NewRouter exposes the cart service under /api/v1/carts.
func NewRouter(svc CartService, log *slog.Logger) http.Handler {
	h := &handler{svc: svc, log: log}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	r.Route("/api/v1/carts", func(r chi.Router) {
		r.Get("/", h.viewCart)
		r.Delete("/", h.clearCart)
		r.Post("/items", h.addItem)
		r.Put("/items/{itemID}", h.updateItem)
		r.Delete("/items/{itemID}", h.removeItem)
	})

	return r
}

func (h *handler) viewCart(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	cart, err := h.svc.ViewCart(r.Context(), ownerID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCartResponse(cart))
}

func (h *handler) clearCart(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.svc.Clear(r.Context(), ownerID); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	if req.UserID == "" {
		h.writeError(w, r, fmt.Errorf("%w: user_id is required", errInvalidArgument))
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: product_id[%s] is not a valid uuid", errInvalidArgument, req.ProductID))
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	item, err := h.svc.AddItem(r.Context(), req.UserID, productID, quantity)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCartItemResponse(item))
}

func (h *handler) updateItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := itemIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req updateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	if req.Quantity == nil {
		h.writeError(w, r, fmt.Errorf("%w: quantity is required", errInvalidArgument))
		return
	}

	item, err := h.svc.UpdateItem(r.Context(), itemID, *req.Quantity)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCartItemResponse(item))
}

func (h *handler) removeItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := itemIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.svc.RemoveItem(r.Context(), itemID); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func userIDParam(r *http.Request) (string, error) {
	ownerID := r.URL.Query().Get("user_id")
	if ownerID == "" {
		return "", fmt.Errorf("%w: user_id is required", errInvalidArgument)
	}
	return ownerID, nil
}

func itemIDParam(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "itemID")

	itemID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: item id[%s] is not a valid uuid", errInvalidArgument, raw)
	}
	return itemID, nil
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: malformed body: %w", errInvalidArgument, err)
	}
	return nil
}

func (h *handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, msg := httpStatusFromError(err)

	if status >= http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "request failed",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("code", code),
			slog.Any("err", err))
	}

	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}

				log.LogAttrs(r.Context(), slog.LevelInfo, "http request",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Int("status", status),
					slog.Duration("duration", time.Since(start)),
					slog.String("request_id", middleware.GetReqID(r.Context())))
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
