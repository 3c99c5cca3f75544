package transport

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	cartapp "github.com/muhammadheryan/cart-reservation/application/cart"
	checkoutapp "github.com/muhammadheryan/cart-reservation/application/checkout"
	reservationapp "github.com/muhammadheryan/cart-reservation/application/reservation"
	"github.com/muhammadheryan/cart-reservation/cmd/config"
	"github.com/muhammadheryan/cart-reservation/constant"
	"github.com/muhammadheryan/cart-reservation/model"
	utilsContext "github.com/muhammadheryan/cart-reservation/utils/context"
	"github.com/muhammadheryan/cart-reservation/utils/errors"
	validatorx "github.com/muhammadheryan/cart-reservation/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	Config   *config.Config
	CartApp  cartapp.CartApp
	Store    reservationapp.ReservationStore
	Checkout checkoutapp.Validator
}

func NewTransport(cfg *config.Config, cart cartapp.CartApp, store reservationapp.ReservationStore, checkout checkoutapp.Validator) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		Config:   cfg,
		CartApp:  cart,
		Store:    store,
		Checkout: checkout,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/session", rh.CreateSession).Methods(http.MethodPost)

	// Session-scoped routes
	mux.HandleFunc("/cart", rh.GetCart).Methods(http.MethodGet)
	mux.HandleFunc("/cart", rh.ClearCart).Methods(http.MethodDelete)
	mux.HandleFunc("/cart/items", rh.AddItem).Methods(http.MethodPost)
	mux.HandleFunc("/cart/items/{productID}", rh.UpdateQuantity).Methods(http.MethodPut)
	mux.HandleFunc("/cart/items/{productID}", rh.RemoveItem).Methods(http.MethodDelete)
	mux.HandleFunc("/reservations", rh.ListReservations).Methods(http.MethodGet)
	mux.HandleFunc("/reservations/{productID}/renew", rh.RenewReservation).Methods(http.MethodPost)
	mux.HandleFunc("/products/{productID}/availability", rh.ProductAvailability).Methods(http.MethodGet)
	mux.HandleFunc("/checkout/validate", rh.ValidateCheckout).Methods(http.MethodPost)

	// Internal routes
	internal := mux.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(cfg.InternalAPIKey))
	internal.HandleFunc("/sweep", rh.TriggerSweep).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(SessionMiddleware(cfg.Session.Secret))

	return mux
}

type sessionResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
}

// CreateSession handler
// @Summary Create cart session
// @Description Issue a token naming a new guest cart session
// @Tags Session
// @Produce json
// @Success 200 {object} sessionResponse
// @Failure 500 {object} errors.CustomError
// @Router /session [post]
func (s *RestHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sessionID := uuid.NewString()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sessionID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(s.Config.Session.TokenTTL).Unix(),
	})
	signed, err := token.SignedString([]byte(s.Config.Session.Secret))
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	writeSuccess(w, sessionResponse{SessionID: sessionID, Token: signed})
}

// GetCart handler
// @Summary Get cart
// @Description List the session's cart lines
// @Tags Cart
// @Produce json
// @Success 200 {object} model.CartResponse
// @Failure 401 {object} errors.CustomError
// @Router /cart [get]
// @Security BearerAuth
func (s *RestHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := utilsContext.GetSessionID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	writeSuccess(w, model.CartResponse{
		Items:          s.CartApp.Lines(sessionID),
		HoldWindowDays: int(constant.CartHoldWindow / (24 * time.Hour)),
	})
}

// AddItem handler
// @Summary Add item to cart
// @Description Add a product to the cart, reserving stock for it
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body model.AddItemRequest true "Add Item Request"
// @Success 200 {object} model.ValidationResult
// @Failure 400 {object} errors.CustomError
// @Router /cart/items [post]
// @Security BearerAuth
func (s *RestHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, ok := utilsContext.GetSessionID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	result, line := s.CartApp.AddItem(ctx, sessionID, &req)
	writeSuccess(w, struct {
		Result *model.ValidationResult `json:"result"`
		Line   *model.CartLine         `json:"line,omitempty"`
	}{Result: result, Line: line})
}

// UpdateQuantity handler
// @Summary Update cart line quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Param productID path int true "Product ID"
// @Param request body model.UpdateQuantityRequest true "Update Quantity Request"
// @Success 200 {object} model.ValidationResult
// @Failure 400 {object} errors.CustomError
// @Router /cart/items/{productID} [put]
// @Security BearerAuth
func (s *RestHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, ok := utilsContext.GetSessionID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	productID, err := parseProductID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	result, line := s.CartApp.UpdateQuantity(ctx, sessionID, productID, req.Quantity)
	writeSuccess(w, struct {
		Result *model.ValidationResult `json:"result"`
		Line   *model.CartLine         `json:"line,omitempty"`
	}{Result: result, Line: line})
}

// RemoveItem handler
// @Summary Remove item from cart
// @Description Remove a cart line and release its reservation
// @Tags Cart
// @Produce json
// @Param productID path int true "Product ID"
// @Success 200 {object} response
// @Failure 400 {object} errors.CustomError
// @Router /cart/items/{productID} [delete]
// @Security BearerAuth
func (s *RestHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, ok := utilsContext.GetSessionID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	productID, err := parseProductID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	s.CartApp.RemoveItem(ctx, sessionID, productID)
	writeSuccess(w, nil)
}

// ClearCart handler
// @Summary Clear cart
// @Description Remove every cart line, releasing each reservation
// @Tags Cart
// @Produce json
// @Success 200 {object} response
// @Router /cart [delete]
// @Security BearerAuth
func (s *RestHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, ok := utilsContext.GetSessionID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	s.CartApp.Clear(ctx, sessionID)
	writeSuccess(w, nil)
}

// ListReservations handler
// @Summary List live reservations
// @Tags Reservation
// @Produce json
// @Success 200 {array} model.Reservation
// @Router /reservations [get]
// @Security BearerAuth
func (s *RestHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := utilsContext.GetSessionID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	writeSuccess(w, s.Store.All(sessionID))
}

// RenewReservation handler
// @Summary Renew a reservation
// @Description Reset a reservation's hold window to the full TTL
// @Tags Reservation
// @Produce json
// @Param productID path int true "Product ID"
// @Success 200 {object} model.Reservation
// @Failure 400 {object} errors.CustomError
// @Router /reservations/{productID}/renew [post]
// @Security BearerAuth
func (s *RestHandler) RenewReservation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, ok := utilsContext.GetSessionID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	productID, err := parseProductID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	rsv := s.CartApp.RenewHold(ctx, sessionID, productID)
	if rsv == nil {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
		return
	}
	writeSuccess(w, rsv)
}

// ProductAvailability handler
// @Summary Product availability hint
// @Description Available stock for a product given its current total stock, minus what other sessions hold
// @Tags Reservation
// @Produce json
// @Param productID path int true "Product ID"
// @Param stock query int true "Total stock reported by the catalog"
// @Success 200 {object} response
// @Failure 400 {object} errors.CustomError
// @Router /products/{productID}/availability [get]
// @Security BearerAuth
func (s *RestHandler) ProductAvailability(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := utilsContext.GetSessionID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	productID, err := parseProductID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	stock, err := strconv.ParseInt(r.URL.Query().Get("stock"), 10, 64)
	if err != nil || stock < 0 {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	writeSuccess(w, struct {
		ProductID uint64 `json:"product_id"`
		Available int64  `json:"available"`
		Reserved  int    `json:"reserved"`
	}{
		ProductID: productID,
		Available: s.Store.AvailableStock(sessionID, productID, stock),
		Reserved:  s.Store.ReservedQuantity(sessionID, productID),
	})
}

// ValidateCheckout handler
// @Summary Validate checkout
// @Description Cross-check every cart line against live reservations and last-known stock
// @Tags Checkout
// @Produce json
// @Success 200 {object} model.CheckoutReport
// @Router /checkout/validate [post]
// @Security BearerAuth
func (s *RestHandler) ValidateCheckout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := utilsContext.GetSessionID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	report := s.Checkout.ValidateCheckout(sessionID, s.CartApp.Lines(sessionID))
	writeSuccess(w, report)
}

// TriggerSweep handler
// @Summary Trigger expiry sweep
// @Description Run the wall-clock reconciliation pass now
// @Tags Internal
// @Produce json
// @Success 200 {object} response
// @Router /internal/sweep [post]
func (s *RestHandler) TriggerSweep(w http.ResponseWriter, r *http.Request) {
	s.Store.Sweep(r.Context())
	writeSuccess(w, nil)
}

func parseProductID(r *http.Request) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)["productID"], 10, 64)
}
